package structdiff_test

import (
	"encoding/json"
	"fmt"

	"github.com/arbor-data/structdiff"
	"github.com/fatih/color"
)

func Example() {
	a, _ := structdiff.DecodeJSON([]byte(`{"a":1,"b":[1,2,3]}`))
	b, _ := structdiff.DecodeJSON([]byte(`{"a":2,"b":[1,2,3,4]}`))

	sc := structdiff.Diff(a, b)
	data, _ := json.Marshal(sc.Deltas())
	fmt.Println(string(data))
	// Output: [[["a"],"r",2],[["b",3],"+",4]]
}

func ExamplePatch() {
	a, _ := structdiff.DecodeJSON([]byte(`{"a":1,"b":[1,2,3]}`))
	b, _ := structdiff.DecodeJSON([]byte(`{"a":2,"b":[1,2,3,4]}`))

	patched, _ := structdiff.Patch(a, structdiff.Diff(a, b))
	data, _ := json.Marshal(patched)
	fmt.Println(string(data))
	// Output: {"a":2,"b":[1,2,3,4]}
}

func ExampleFormatPretty() {
	color.NoColor = true

	a, _ := structdiff.DecodeJSON([]byte(`{"a":1,"b":[1,2,3]}`))
	b, _ := structdiff.DecodeJSON([]byte(`{"a":2,"b":[1,2,3,4]}`))

	sc := structdiff.Diff(a, b)
	pretty, _ := structdiff.FormatPrettyString(sc.Deltas())
	fmt.Print(pretty)
	fmt.Print(structdiff.FormatStats(sc))
	// Output:
	// r /a: 2
	// + /b/3: 4
	// 1 add. 0 deletes. 1 replace. distance 2.
}
