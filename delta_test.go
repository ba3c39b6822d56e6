package structdiff

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDeltaJSON(t *testing.T) {
	dts := Deltas{
		{Type: DTReplace, Path: Path{StringAddr("a")}, Value: float64(2)},
		{Type: DTDelete, Path: Path{StringAddr("b"), IndexAddr(0)}},
		{Type: DTAdd, Path: Path{StringAddr("c")}, Value: []interface{}{float64(1)}},
	}

	data, err := json.Marshal(dts)
	if err != nil {
		t.Fatal(err)
	}
	expect := `[[["a"],"r",2],[["b",0],"-"],[["c"],"+",[1]]]`
	if string(data) != expect {
		t.Errorf("expected %s, got %s", expect, data)
	}

	got := Deltas{}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(dts, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDeltaUnmarshalErrors(t *testing.T) {
	cases := []struct {
		description string
		data        string
	}{
		{"not a tuple", `{"type":"+"}`},
		{"tuple too short", `[["a"]]`},
		{"path not an array", `["a","+"]`},
		{"unknown operation", `[["a"],"?"]`},
		{"operation not a string", `[["a"],5]`},
	}
	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			d := &Delta{}
			if err := json.Unmarshal([]byte(c.data), d); err == nil {
				t.Errorf("expected an error decoding %s", c.data)
			}
		})
	}
}
