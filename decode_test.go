package structdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeJSON(t *testing.T) {
	v, err := DecodeJSON([]byte(`{"a":1,"b":[true,null]}`))
	if err != nil {
		t.Fatal(err)
	}
	expect := map[string]interface{}{
		"a": float64(1),
		"b": []interface{}{true, nil},
	}
	if diff := cmp.Diff(expect, v); diff != "" {
		t.Errorf("decode mismatch (-want +got):\n%s", diff)
	}

	if _, err := DecodeJSON([]byte(`{`)); err == nil {
		t.Error("expected an error for malformed input")
	}
}

func TestDecodeYAML(t *testing.T) {
	src := []byte(`
a: 1
b:
  - one
  - two
`)
	dst := []byte(`
a: 1
b:
  - one
  - three
c: true
`)

	a, err := DecodeYAML(src)
	if err != nil {
		t.Fatal(err)
	}
	b, err := DecodeYAML(dst)
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := a.(map[string]interface{}); !ok {
		t.Fatalf("expected string-keyed map, got %T", a)
	}

	sc := Diff(a, b)
	if sc.Distance() != 2 {
		t.Errorf("expected distance 2, got %d", sc.Distance())
	}

	got, err := Patch(a, sc)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(b, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
