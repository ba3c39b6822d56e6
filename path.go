package structdiff

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Addr is a single step in a Path: a map key, a sequence index, or a set
// element. Addrs are typed rather than stringly so a path can never be
// mistaken for a data sequence, and so patch can check each step against
// the container it lands on.
type Addr interface {
	// String returns the step as text for path rendering
	String() string

	addr()
}

// StringAddr addresses a map value by key
type StringAddr string

func (s StringAddr) String() string { return string(s) }
func (s StringAddr) addr()          {}

// MarshalJSON encodes the key as a bare JSON string
func (s StringAddr) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// IndexAddr addresses a sequence element by position. Indices are relative
// to the evolving patch result, not the original sequence: a delete at 3
// followed by a delete at 3 removes two adjacent elements.
type IndexAddr int

func (i IndexAddr) String() string { return strconv.Itoa(int(i)) }
func (i IndexAddr) addr()          {}

// MarshalJSON encodes the index as a JSON number
func (i IndexAddr) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(i))
}

// ElemAddr addresses a set element by the element itself, since sets have
// membership but no positions
type ElemAddr struct {
	Elem interface{}
}

func (e ElemAddr) String() string { return fmt.Sprintf("%v", e.Elem) }
func (e ElemAddr) addr()          {}

// MarshalJSON encodes the element value directly
func (e ElemAddr) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Elem)
}

// Path locates a position within a nested value as an ordered sequence of
// steps from the root. The zero-length path addresses the root itself.
type Path []Addr

// String renders the path in slash-separated form: "/a/0/b"
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, a := range p {
		b.WriteByte('/')
		b.WriteString(a.String())
	}
	return b.String()
}

// with returns a new path extended by one step. The receiver is copied so
// paths recorded in deltas never alias the differ's working path.
func (p Path) with(a Addr) Path {
	np := make(Path, len(p)+1)
	copy(np, p)
	np[len(p)] = a
	return np
}

// parsePathTokens converts decoded JSON path tokens back into typed steps.
// JSON strings become map keys and numbers become indices; this is lossy
// for set-element steps, which only round-trip when their element is
// neither a string nor a number.
func parsePathTokens(tokens []interface{}) Path {
	p := make(Path, len(tokens))
	for i, tok := range tokens {
		switch t := tok.(type) {
		case string:
			p[i] = StringAddr(t)
		case float64:
			p[i] = IndexAddr(int(t))
		default:
			p[i] = ElemAddr{Elem: t}
		}
	}
	return p
}
