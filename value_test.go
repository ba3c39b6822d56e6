package structdiff

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		v      interface{}
		expect kind
	}{
		{nil, kindScalar},
		{false, kindScalar},
		{float64(1.5), kindScalar},
		{int64(7), kindScalar},
		{"hi", kindScalar},
		{map[string]interface{}{}, kindMap},
		{[]interface{}{}, kindSequence},
		{NewSet(), kindSet},
	}
	for _, c := range cases {
		if got := classify(c.v); got != c.expect {
			t.Errorf("classify(%v): expected %s, got %s", c.v, c.expect, got)
		}
	}
}

func TestEq(t *testing.T) {
	cases := []struct {
		a, b   interface{}
		expect bool
	}{
		{nil, nil, true},
		{float64(1), float64(1), true},
		{float64(1), true, false},
		{float64(1), "1", false},
		{float64(1), int64(1), false},
		{"a", "a", true},
		{map[string]interface{}{"a": float64(1)}, map[string]interface{}{"a": float64(1)}, true},
		{[]interface{}{float64(1)}, []interface{}{float64(2)}, false},
	}
	for _, c := range cases {
		if got := eq(c.a, c.b); got != c.expect {
			t.Errorf("eq(%v, %v): expected %t, got %t", c.a, c.b, c.expect, got)
		}
	}
}

func TestIdentical(t *testing.T) {
	m := map[string]interface{}{"a": float64(1)}
	s := []interface{}{float64(1)}

	if !identical(m, m) || !identical(s, s) {
		t.Error("a composite must be identical to itself")
	}
	if identical(m, map[string]interface{}{"a": float64(1)}) {
		t.Error("equal but distinct maps are not identical")
	}
	if !identical("a", "a") || identical(float64(1), float64(2)) {
		t.Error("comparable scalars compare by value")
	}
	if !identical(nil, nil) || identical(nil, false) {
		t.Error("nil is identical only to nil")
	}
}

func TestSet(t *testing.T) {
	s := NewSet(1, 2)
	if s.Len() != 2 {
		t.Errorf("expected 2 elements, got %d", s.Len())
	}
	if !s.Has(1) || s.Has(3) {
		t.Error("membership mismatch")
	}
	s.Add(3)
	s.Add(3)
	if s.Len() != 3 {
		t.Errorf("duplicate add must be a no-op, got %d elements", s.Len())
	}
}

func TestSortedElems(t *testing.T) {
	s := NewSet("b", 10, "a", 2)
	got := s.sortedElems()
	// typed canonical rendering orders ints apart from strings
	expect := []interface{}{10, 2, "a", "b"}
	if !reflect.DeepEqual(expect, got) {
		t.Errorf("expected %v, got %v", expect, got)
	}
}

func TestDeepCopy(t *testing.T) {
	orig := map[string]interface{}{
		"a": []interface{}{float64(1), map[string]interface{}{"b": true}},
		"s": NewSet(1, 2),
	}
	cp := deepCopy(orig).(map[string]interface{})

	if !eq(orig, cp) {
		t.Fatal("copy must equal the original")
	}

	cp["a"].([]interface{})[1].(map[string]interface{})["b"] = false
	cp["s"].(Set).Add(3)
	if !orig["a"].([]interface{})[1].(map[string]interface{})["b"].(bool) {
		t.Error("mutating the copy reached the original map")
	}
	if orig["s"].(Set).Has(3) {
		t.Error("mutating the copy reached the original set")
	}
}
