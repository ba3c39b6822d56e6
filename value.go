package structdiff

import (
	"fmt"
	"reflect"
	"sort"
)

// kind is the closed universe of value categories the differ dispatches on.
// absence is not a kind: it's a call-site fact passed alongside values, so
// the classifier only ever sees present values. nil classifies as a scalar.
type kind uint8

const (
	kindScalar kind = iota
	kindMap
	kindSequence
	kindSet
)

func (k kind) String() string {
	switch k {
	case kindMap:
		return "map"
	case kindSequence:
		return "sequence"
	case kindSet:
		return "set"
	default:
		return "scalar"
	}
}

// classify buckets a value into one of the four diffable categories
func classify(v interface{}) kind {
	switch v.(type) {
	case map[string]interface{}:
		return kindMap
	case []interface{}:
		return kindSequence
	case Set:
		return kindSet
	default:
		return kindScalar
	}
}

// eq reports deep structural equality. Scalars are equal only when both the
// value and the concrete type match, so float64(1) never equals true, or
// "1", or int64(1)
func eq(a, b interface{}) bool {
	return reflect.DeepEqual(a, b)
}

// identical reports whether a and b are the same value: pointer identity
// for composites, == for comparable scalars. Diff uses this as its
// short-circuit, so diffing a value against itself costs no traversal.
func identical(a, b interface{}) bool {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if !av.IsValid() || !bv.IsValid() {
		return !av.IsValid() && !bv.IsValid()
	}
	if av.Kind() != bv.Kind() {
		return false
	}
	switch av.Kind() {
	case reflect.Map, reflect.Slice:
		return av.UnsafePointer() == bv.UnsafePointer() && av.Len() == bv.Len()
	default:
		return av.Comparable() && a == b
	}
}

// Set is an unordered collection of distinct comparable elements. Sets diff
// by membership: elements only ever appear or disappear, they are never
// substituted or recursed into, and paths address them by the element
// itself rather than by position.
type Set map[interface{}]struct{}

// NewSet returns a Set holding the given elements. Elements must be
// go-comparable; composite elements are a caller precondition violation.
func NewSet(elems ...interface{}) Set {
	s := make(Set, len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

// Has reports element membership
func (s Set) Has(e interface{}) bool {
	_, ok := s[e]
	return ok
}

// Add inserts an element, a no-op if already present
func (s Set) Add(e interface{}) {
	s[e] = struct{}{}
}

// Len returns the number of elements
func (s Set) Len() int {
	return len(s)
}

// sortedElems enumerates elements in canonical-rendering order, giving set
// diffs a deterministic operation order across runs
func (s Set) sortedElems() []interface{} {
	elems := make([]interface{}, 0, len(s))
	for e := range s {
		elems = append(elems, e)
	}
	sort.Slice(elems, func(i, j int) bool {
		return canon(elems[i]) < canon(elems[j])
	})
	return elems
}

// canon renders an element with its concrete type so distinct types that
// print alike (1 and "1") still order apart
func canon(e interface{}) string {
	return fmt.Sprintf("%T %v", e, e)
}

// deepCopy clones composite values so patched results never alias their
// inputs. Scalars are returned as-is.
func deepCopy(v interface{}) interface{} {
	switch x := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(x))
		for k, el := range x {
			m[k] = deepCopy(el)
		}
		return m
	case []interface{}:
		s := make([]interface{}, len(x))
		for i, el := range x {
			s[i] = deepCopy(el)
		}
		return s
	case Set:
		s := make(Set, len(x))
		for e := range x {
			s[e] = struct{}{}
		}
		return s
	default:
		return v
	}
}

// sortedKeys returns map keys in sorted order. go maps iterate randomly,
// diff scripts must not.
func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
