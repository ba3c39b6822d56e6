package structdiff

import (
	"encoding/json"
	"fmt"
)

// Operation defines the operation of a Delta item
type Operation string

const (
	// DTAdd inserts a value at a path that doesn't exist in the source
	DTAdd = Operation("+")
	// DTDelete removes the value a path points at
	DTDelete = Operation("-")
	// DTReplace substitutes the value at a path. A replace always carries
	// the replacement value; without it a script could not be applied.
	DTReplace = Operation("r")
)

// Delta is a single edit: an operation anchored on a path, with a value for
// adds and replaces. The order deltas appear in a script is significant:
// sequence indices assume all earlier deltas have already been applied.
type Delta struct {
	// the operation to perform
	Type Operation `json:"type"`
	// where in the destination document the operation applies
	Path Path `json:"path"`
	// the value to add or substitute, nil for deletes
	Value interface{} `json:"value,omitempty"`
}

// Deltas is an ordered list of changes
type Deltas []*Delta

// MarshalJSON encodes the delta as a compact tuple:
// [path, "+", value] for adds, [path, "-"] for deletes,
// [path, "r", value] for replaces. path is an array of key/index/element
// tokens.
func (d *Delta) MarshalJSON() ([]byte, error) {
	v := []interface{}{d.Path, d.Type}
	if d.Type != DTDelete {
		v = append(v, d.Value)
	}
	return json.Marshal(v)
}

// UnmarshalJSON decodes the tuple encoding written by MarshalJSON
func (d *Delta) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) < 2 {
		return fmt.Errorf("delta: tuple needs at least a path and an operation")
	}

	var tokens []interface{}
	if err := json.Unmarshal(tuple[0], &tokens); err != nil {
		return fmt.Errorf("delta: decoding path: %w", err)
	}
	d.Path = parsePathTokens(tokens)

	var op string
	if err := json.Unmarshal(tuple[1], &op); err != nil {
		return fmt.Errorf("delta: decoding operation: %w", err)
	}
	switch Operation(op) {
	case DTAdd, DTDelete, DTReplace:
		d.Type = Operation(op)
	default:
		return fmt.Errorf("delta: unknown operation %q", op)
	}

	d.Value = nil
	if len(tuple) > 2 {
		if err := json.Unmarshal(tuple[2], &d.Value); err != nil {
			return fmt.Errorf("delta: decoding value: %w", err)
		}
	}
	return nil
}
