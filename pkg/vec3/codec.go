package vec3

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	_ fmt.Stringer     = Vector3{}
	_ json.Marshaler   = Vector3{}
	_ json.Unmarshaler = (*Vector3)(nil)
	_ yaml.Marshaler   = Vector3{}
	_ yaml.Unmarshaler = (*Vector3)(nil)
)

// componentKeys maps the accepted object keys to component indices.
var componentKeys = map[string]int{
	"x": 0, "y": 1, "z": 2,
	"r": 0, "g": 1, "b": 2,
}

// ParseVector3 parses the "(x,y,z)" form produced by String. Whitespace around components is ignored.
func ParseVector3(s string) (Vector3, error) {
	var v Vector3
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return v, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	parts := strings.Split(s[1:len(s)-1], ",")
	if len(parts) != 3 {
		return v, fmt.Errorf("%w: got %d in %q", ErrComponentCount, len(parts), s)
	}
	for i, part := range parts {
		c, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return Vector3{}, fmt.Errorf("%w %d: %w", ErrInvalidComponent, i, err)
		}
		v[i] = c
	}
	return v, nil
}

func (v Vector3) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Vector3) UnmarshalText(text []byte) error {
	parsed, err := ParseVector3(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalJSON encodes v as [x,y,z]. A vector with a NaN or infinite component is encoded as its
// "(x,y,z)" text form in a JSON string, which UnmarshalJSON accepts.
func (v Vector3) MarshalJSON() ([]byte, error) {
	if !v.IsFinite() {
		return json.Marshal(v.String())
	}
	buf := make([]byte, 0, 32)
	buf = append(buf, '[')
	for i, c := range v {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendFloat(buf, c, 'g', -1, 64)
	}
	return append(buf, ']'), nil
}

// UnmarshalJSON accepts [x,y,z], {"x":..,"y":..,"z":..} (or r/g/b) and the "(x,y,z)" string form.
func (v *Vector3) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrInvalidFormat
	}

	switch data[0] {
	case 'n':
		if string(data) == "null" {
			return nil
		}
	case '[':
		var comps []*float64
		if err := json.Unmarshal(data, &comps); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidComponent, err)
		}
		if len(comps) != 3 {
			return fmt.Errorf("%w: got %d", ErrComponentCount, len(comps))
		}
		var out Vector3
		for i, c := range comps {
			if c == nil {
				return fmt.Errorf("%w %d: null", ErrInvalidComponent, i)
			}
			out[i] = *c
		}
		*v = out
		return nil
	case '{':
		out, err := decodeJSONObject(data)
		if err != nil {
			return err
		}
		*v = out
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
		}
		return v.UnmarshalText([]byte(s))
	}

	return fmt.Errorf("%w: %s", ErrInvalidFormat, data)
}

// decodeJSONObject walks the object in document order so that a component named twice,
// directly or through its color alias, is reported instead of silently overwritten.
func decodeJSONObject(data []byte) (Vector3, error) {
	var out Vector3
	var set componentSet
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return out, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return out, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
		}
		key, _ := tok.(string)
		idx, err := set.claim(key)
		if err != nil {
			return out, err
		}
		var c *float64
		if err := dec.Decode(&c); err != nil {
			return out, fmt.Errorf("%w %q: %w", ErrInvalidComponent, key, err)
		}
		if c == nil {
			return out, fmt.Errorf("%w %q: null", ErrInvalidComponent, key)
		}
		out[idx] = *c
	}
	if _, err := dec.Token(); err != nil {
		return out, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return out, nil
}

// componentSet records which components a keyed encoding has already assigned.
type componentSet [3]bool

func (s *componentSet) claim(key string) (int, error) {
	idx, ok := componentKeys[strings.ToLower(key)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	if s[idx] {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateComponent, key)
	}
	s[idx] = true
	return idx, nil
}

// MarshalYAML encodes v as a flow sequence [x, y, z].
func (v Vector3) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
	}
	for _, c := range v {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: formatYAMLFloat(c),
		})
	}
	return node, nil
}

// UnmarshalYAML accepts a sequence of three numbers, a mapping keyed by x/y/z or r/g/b
// (missing keys stay zero) and the "(x,y,z)" scalar form.
func (v *Vector3) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.AliasNode:
		return v.UnmarshalYAML(value.Alias)
	case yaml.SequenceNode:
		if len(value.Content) != 3 {
			return fmt.Errorf("%w: got %d at line %d", ErrComponentCount, len(value.Content), value.Line)
		}
		var out Vector3
		for i, n := range value.Content {
			if err := n.Decode(&out[i]); err != nil {
				return fmt.Errorf("%w %d at line %d: %w", ErrInvalidComponent, i, n.Line, err)
			}
		}
		*v = out
		return nil
	case yaml.MappingNode:
		var out Vector3
		var set componentSet
		for i := 0; i+1 < len(value.Content); i += 2 {
			key, val := value.Content[i], value.Content[i+1]
			idx, err := set.claim(key.Value)
			if err != nil {
				return fmt.Errorf("%w at line %d", err, key.Line)
			}
			if err := val.Decode(&out[idx]); err != nil {
				return fmt.Errorf("%w %q at line %d: %w", ErrInvalidComponent, key.Value, val.Line, err)
			}
		}
		*v = out
		return nil
	case yaml.ScalarNode:
		return v.UnmarshalText([]byte(value.Value))
	}
	return fmt.Errorf("%w at line %d", ErrInvalidFormat, value.Line)
}

func formatYAMLFloat(c float64) string {
	switch {
	case math.IsNaN(c):
		return ".nan"
	case math.IsInf(c, 1):
		return ".inf"
	case math.IsInf(c, -1):
		return "-.inf"
	case c == 0 && math.Signbit(c):
		return "-0.0"
	}
	return formatComponent(c)
}
