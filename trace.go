package structdiff

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
)

// TraceFunc observes one recursive diff visit. It runs inline on the
// diffing goroutine, before any operation for the visit is recorded;
// implementations should be cheap and must not retain a or b.
type TraceFunc func(p Path, a, b interface{})

// WriteTracer returns a TraceFunc that writes one line per visit to w,
// rendering both values with their concrete types. Useful for inspecting
// why a diff came out the way it did without wiring a debugger.
func WriteTracer(w io.Writer) TraceFunc {
	dump := &spew.ConfigState{
		Indent:                  " ",
		SortKeys:                true,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
	}
	return func(p Path, a, b interface{}) {
		fmt.Fprintf(w, "diff %s: %s -> %s\n", p, dump.Sprintf("%#v", a), dump.Sprintf("%#v", b))
	}
}
