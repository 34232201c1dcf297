package lexcode_test

import (
	"fmt"

	"github.com/josefs/lexcode"
)

// Example shows building a composite key (a category, a name, and a
// score) and confirms that sorting the encoded bytes matches sorting
// the original tuples.
func Example() {
	type entry struct {
		category uint32
		name     string
		score    int64
	}

	encode := func(e entry) []byte {
		enc := lexcode.NewEncoder(nil)
		enc.EmitUint32(e.category).EmitText(e.name).EmitInt64(e.score)
		return enc.Bytes()
	}

	a := encode(entry{1, "alice", 10})
	b := encode(entry{1, "bob", 5})

	fmt.Println(lexcode.Compare(a, b) < 0)
	// Output: true
}
