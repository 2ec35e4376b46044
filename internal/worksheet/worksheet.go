// Package worksheet evaluates YAML-described batches of vector operations.
package worksheet

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/raytrace/pkg/vec3"
)

// Worksheet names a set of input vectors and an ordered list of steps over them.
type Worksheet struct {
	Name    string                  `json:"name" yaml:"name"`
	Vectors map[string]vec3.Vector3 `json:"vectors" yaml:"vectors"`
	Steps   []Step                  `json:"steps" yaml:"steps"`
}

// Step applies Op to the named Args and stores the outcome under Name.
type Step struct {
	Name   string   `json:"name" yaml:"name"`
	Op     string   `json:"op" yaml:"op"`
	Args   []string `json:"args" yaml:"args"`
	Scalar *float64 `json:"scalar,omitempty" yaml:"scalar,omitempty"`
}

// Load decodes and validates a worksheet from YAML.
func Load(r io.Reader) (*Worksheet, error) {
	var w Worksheet
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&w); err != nil {
		return nil, fmt.Errorf("decode worksheet: %w", err)
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &w, nil
}

// LoadFile opens path and loads it. A worksheet without a name takes the file path.
func LoadFile(path string) (*Worksheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	w, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if w.Name == "" {
		w.Name = path
	}
	return w, nil
}

// Validate checks step shape and name uniqueness. Operations and references are resolved at evaluation.
func (w *Worksheet) Validate() error {
	seen := make(map[string]struct{}, len(w.Vectors)+len(w.Steps))
	for name := range w.Vectors {
		if name == "" {
			return fmt.Errorf("%w: vector with empty name", ErrInvalidStep)
		}
		seen[name] = struct{}{}
	}
	for i, s := range w.Steps {
		if s.Name == "" {
			return fmt.Errorf("%w: step %d has no name", ErrInvalidStep, i)
		}
		if s.Op == "" {
			return fmt.Errorf("%w: step %q has no op", ErrInvalidStep, s.Name)
		}
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateName, s.Name)
		}
		seen[s.Name] = struct{}{}
	}
	return nil
}
