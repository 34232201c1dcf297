// Command lexcodec is a small demonstration driver for the lexcode
// package: it reads newline-delimited JSON rows describing a fixed
// four-field record, encodes each row into a lexcode composite key,
// and stores or scans those keys through internal/orderedkv (a
// Pebble-backed ordered store).
//
// Row shape: {"category": <uint32>, "name": <string>, "score":
// <int64>, "at": "<RFC3339 timestamp>"}. Keys sort first by category,
// then by name, then by score, then by time, matching the field order
// below.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/golang-module/carbon/v2"

	"github.com/josefs/lexcode"
	"github.com/josefs/lexcode/internal/orderedkv"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "lexcodec:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("lexcodec", flag.ContinueOnError)
	dbPath := fs.String("db", "", "path to the Pebble database directory (empty for in-memory)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errors.New("usage: lexcodec [-db path] <put|scan>")
	}

	store, err := openStore(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch fs.Arg(0) {
	case "put":
		return runPut(store, os.Stdin)
	case "scan":
		return runScan(store, os.Stdout)
	default:
		return errors.Newf("unknown subcommand %q", fs.Arg(0))
	}
}

func openStore(path string) (*orderedkv.Store, error) {
	if path == "" {
		return orderedkv.Open("", vfs.NewMem())
	}
	return orderedkv.Open(path, nil)
}

func timeFromUnixNano(nsec int64) time.Time {
	return time.Unix(0, nsec).UTC()
}

type row struct {
	category uint32
	name     string
	score    int64
	at       int64 // unix nanoseconds
}

func parseRow(line []byte) (row, error) {
	var r row
	category, err := jsonparser.GetInt(line, "category")
	if err != nil {
		return row{}, errors.Wrap(err, "category")
	}
	r.category = uint32(category)

	name, err := jsonparser.GetString(line, "name")
	if err != nil {
		return row{}, errors.Wrap(err, "name")
	}
	r.name = name

	score, err := jsonparser.GetInt(line, "score")
	if err != nil {
		return row{}, errors.Wrap(err, "score")
	}
	r.score = score

	at, err := jsonparser.GetString(line, "at")
	if err != nil {
		return row{}, errors.Wrap(err, "at")
	}
	t := carbon.Parse(at)
	if t.Error != nil {
		return row{}, errors.Wrapf(t.Error, "at %q", at)
	}
	r.at = t.ToStdTime().UnixNano()

	return r, nil
}

// encodeKey builds the composite lexcode key for a row: a fixed-arity
// tuple (category, name, score, at), so the Pebble iteration order
// matches the tuple's semantic order.
func encodeKey(r row) []byte {
	e := lexcode.NewEncoder(nil)
	e.EmitUint32(r.category)
	e.EmitText(r.name)
	e.EmitInt64(r.score)
	e.EmitInt64(r.at)
	return e.Bytes()
}

func decodeKey(key []byte) (row, error) {
	var r row
	err := lexcode.DecodeFull(key, func(d *lexcode.Decoder) error {
		var err error
		if r.category, err = d.DecodeUint32(); err != nil {
			return err
		}
		if r.name, err = d.DecodeText(); err != nil {
			return err
		}
		if r.score, err = d.DecodeInt64(); err != nil {
			return err
		}
		if r.at, err = d.DecodeInt64(); err != nil {
			return err
		}
		return nil
	})
	return r, err
}

func runPut(store *orderedkv.Store, in *os.File) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		r, err := parseRow(line)
		if err != nil {
			return err
		}
		key := encodeKey(r)
		value := make([]byte, len(line))
		copy(value, line)
		if err := store.Put(key, value); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func runScan(store *orderedkv.Store, out *os.File) error {
	entries, err := store.Scan(nil, nil)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(out)
	defer w.Flush()
	for _, e := range entries {
		r, err := decodeKey(e.Key)
		if err != nil {
			return err
		}
		when := carbon.CreateFromStdTime(timeFromUnixNano(r.at)).ToRfc3339String()
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", r.category, r.name, r.score, when)
	}
	return nil
}
