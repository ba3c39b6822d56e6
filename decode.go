package structdiff

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
)

// DecodeJSON unmarshals a JSON document into a diffable value: nested
// map[string]interface{}, []interface{}, and scalars
func DecodeJSON(data []byte) (interface{}, error) {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// DecodeYAML unmarshals a YAML document into a diffable value. Mapping
// keys are coerced to strings so documents decoded from YAML and JSON land
// on the same composite shapes.
func DecodeYAML(data []byte) (interface{}, error) {
	var v interface{}
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return normalize(v), nil
}

func normalize(v interface{}) interface{} {
	switch x := v.(type) {
	case map[string]interface{}:
		for k, el := range x {
			x[k] = normalize(el)
		}
		return x
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(x))
		for k, el := range x {
			m[fmt.Sprintf("%v", k)] = normalize(el)
		}
		return m
	case []interface{}:
		for i, el := range x {
			x[i] = normalize(el)
		}
		return x
	default:
		return v
	}
}
