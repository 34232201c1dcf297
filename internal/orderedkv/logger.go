package orderedkv

import "context"

// NoopLoggerAndTracer does no logging and tracing. Pebble requires a
// LoggerAndTracer on its Options; most callers of this demonstration
// store don't want Pebble's own log lines mixed into theirs.
type NoopLoggerAndTracer struct{}

func (NoopLoggerAndTracer) Infof(format string, args ...interface{})  {}
func (NoopLoggerAndTracer) Errorf(format string, args ...interface{}) {}
func (NoopLoggerAndTracer) Fatalf(format string, args ...interface{}) {}
func (NoopLoggerAndTracer) Eventf(ctx context.Context, format string, args ...interface{}) {
}
func (NoopLoggerAndTracer) IsTracingEnabled(ctx context.Context) bool { return false }
