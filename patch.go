package structdiff

import (
	"errors"
	"fmt"
)

var (
	// ErrPathNotFound indicates an operation's path does not resolve in the
	// working value
	ErrPathNotFound = errors.New("path not found")
	// ErrTypeMismatch indicates an operation expected a container shape the
	// addressed value does not have
	ErrTypeMismatch = errors.New("type mismatch")
)

// Patch replays an edit script against a, returning the reconstructed
// target. a is never mutated: operations apply to a deep copy, and values
// inserted from the script are copied as well, so the result shares no
// structure with either input.
//
// Patch is total and deterministic for any script produced by Diff. For
// malformed or foreign scripts it fails on the first operation whose path
// does not resolve, wrapping ErrPathNotFound or ErrTypeMismatch; nothing is
// reported as success after a partial application, and a failed patch
// leaves no usable result.
func Patch(a interface{}, sc *EditScript) (interface{}, error) {
	if sc == nil {
		// Diff returns nil for identical values; replaying nothing
		return deepCopy(a), nil
	}
	return PatchDeltas(a, sc.Deltas())
}

// PatchDeltas replays a bare operation log against a, in order. See Patch.
func PatchDeltas(a interface{}, dts Deltas) (interface{}, error) {
	res := deepCopy(a)
	for i, dlt := range dts {
		var err error
		res, err = applyAt(res, dlt.Path, dlt.Type, dlt.Value)
		if err != nil {
			return nil, fmt.Errorf("delta %d (%s %s): %w", i, dlt.Type, dlt.Path, err)
		}
	}
	return res, nil
}

// applyAt applies one operation beneath v, returning the updated value.
// Containers are mutated in place where possible but sequences reallocate
// on insert and delete, so the updated child is always reassigned into its
// parent on the way back up.
func applyAt(v interface{}, p Path, op Operation, val interface{}) (interface{}, error) {
	if len(p) == 0 {
		switch op {
		case DTAdd, DTReplace:
			return deepCopy(val), nil
		default:
			return nil, fmt.Errorf("%w: cannot delete the document root", ErrTypeMismatch)
		}
	}

	switch x := v.(type) {
	case map[string]interface{}:
		key, ok := p[0].(StringAddr)
		if !ok {
			return nil, fmt.Errorf("%w: step %q into a map", ErrTypeMismatch, p[0])
		}
		k := string(key)
		if len(p) > 1 {
			child, ok := x[k]
			if !ok {
				return nil, fmt.Errorf("%w: no key %q", ErrPathNotFound, k)
			}
			nc, err := applyAt(child, p[1:], op, val)
			if err != nil {
				return nil, err
			}
			x[k] = nc
			return x, nil
		}
		switch op {
		case DTAdd:
			x[k] = deepCopy(val)
		case DTReplace:
			if _, ok := x[k]; !ok {
				return nil, fmt.Errorf("%w: no key %q", ErrPathNotFound, k)
			}
			x[k] = deepCopy(val)
		case DTDelete:
			if _, ok := x[k]; !ok {
				return nil, fmt.Errorf("%w: no key %q", ErrPathNotFound, k)
			}
			delete(x, k)
		}
		return x, nil

	case []interface{}:
		idx, ok := p[0].(IndexAddr)
		if !ok {
			return nil, fmt.Errorf("%w: step %q into a sequence", ErrTypeMismatch, p[0])
		}
		i := int(idx)
		if len(p) > 1 {
			if i < 0 || i >= len(x) {
				return nil, fmt.Errorf("%w: index %d exceeds length %d", ErrPathNotFound, i, len(x))
			}
			nc, err := applyAt(x[i], p[1:], op, val)
			if err != nil {
				return nil, err
			}
			x[i] = nc
			return x, nil
		}
		switch op {
		case DTAdd:
			// insert before i, shifting later elements; i == len appends
			if i < 0 || i > len(x) {
				return nil, fmt.Errorf("%w: index %d exceeds length %d", ErrPathNotFound, i, len(x))
			}
			x = append(x, nil)
			copy(x[i+1:], x[i:])
			x[i] = deepCopy(val)
		case DTReplace:
			if i < 0 || i >= len(x) {
				return nil, fmt.Errorf("%w: index %d exceeds length %d", ErrPathNotFound, i, len(x))
			}
			x[i] = deepCopy(val)
		case DTDelete:
			if i < 0 || i >= len(x) {
				return nil, fmt.Errorf("%w: index %d exceeds length %d", ErrPathNotFound, i, len(x))
			}
			x = append(x[:i], x[i+1:]...)
		}
		return x, nil

	case Set:
		elem, ok := p[0].(ElemAddr)
		if !ok {
			return nil, fmt.Errorf("%w: step %q into a set", ErrTypeMismatch, p[0])
		}
		if len(p) > 1 {
			return nil, fmt.Errorf("%w: set elements have no interior", ErrTypeMismatch)
		}
		switch op {
		case DTAdd:
			x[elem.Elem] = struct{}{}
		case DTDelete:
			if !x.Has(elem.Elem) {
				return nil, fmt.Errorf("%w: no element %v", ErrPathNotFound, elem.Elem)
			}
			delete(x, elem.Elem)
		case DTReplace:
			// sets never substitute; scripts only add and delete elements
			return nil, fmt.Errorf("%w: replace inside a set", ErrTypeMismatch)
		}
		return x, nil

	default:
		return nil, fmt.Errorf("%w: step %q into a scalar", ErrTypeMismatch, p[0])
	}
}
