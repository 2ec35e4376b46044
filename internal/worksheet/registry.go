package worksheet

import (
	"fmt"
	"sort"
	"sync"

	"github.com/zeusync/raytrace/pkg/vec3"
)

// OpFunc computes a step from its vector arguments and optional scalar.
type OpFunc func(args []vec3.Vector3, scalar float64) Value

// Op describes a named vector operation.
type Op struct {
	Name        string
	Arity       int
	NeedsScalar bool
	Fn          OpFunc
}

// Registry maps operation names to their implementations.
type Registry interface {
	Register(op Op) error
	Lookup(name string) (Op, error)
	Names() []string
}

type reg struct {
	mu  sync.RWMutex
	ops map[string]Op
}

// NewRegistry returns an empty registry.
func NewRegistry() Registry {
	return &reg{ops: make(map[string]Op)}
}

// DefaultRegistry returns a registry holding the built-in operations.
func DefaultRegistry() Registry {
	r := NewRegistry()
	for _, op := range builtins() {
		if err := r.Register(op); err != nil {
			panic(err)
		}
	}
	return r
}

func (r *reg) Register(op Op) error {
	if op.Name == "" || op.Fn == nil {
		return fmt.Errorf("%w: operation needs a name and a function", ErrInvalidStep)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.ops[op.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateOp, op.Name)
	}
	r.ops[op.Name] = op
	return nil
}

func (r *reg) Lookup(name string) (Op, error) {
	r.mu.RLock()
	op, ok := r.ops[name]
	r.mu.RUnlock()
	if !ok {
		return Op{}, fmt.Errorf("%w: %s", ErrUnknownOp, name)
	}
	return op, nil
}

func (r *reg) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

func builtins() []Op {
	return []Op{
		{Name: "negate", Arity: 1, Fn: func(a []vec3.Vector3, _ float64) Value {
			return VectorValue(a[0].Negate())
		}},
		{Name: "add", Arity: 2, Fn: func(a []vec3.Vector3, _ float64) Value {
			return VectorValue(vec3.Add(a[0], a[1]))
		}},
		{Name: "subtract", Arity: 2, Fn: func(a []vec3.Vector3, _ float64) Value {
			return VectorValue(vec3.Subtract(a[0], a[1]))
		}},
		{Name: "multiply", Arity: 2, Fn: func(a []vec3.Vector3, _ float64) Value {
			return VectorValue(vec3.MultiplyElementwise(a[0], a[1]))
		}},
		{Name: "scale", Arity: 1, NeedsScalar: true, Fn: func(a []vec3.Vector3, t float64) Value {
			return VectorValue(vec3.Scale(t, a[0]))
		}},
		{Name: "divide", Arity: 1, NeedsScalar: true, Fn: func(a []vec3.Vector3, t float64) Value {
			return VectorValue(vec3.Divide(a[0], t))
		}},
		{Name: "dot", Arity: 2, Fn: func(a []vec3.Vector3, _ float64) Value {
			return ScalarValue(vec3.Dot(a[0], a[1]))
		}},
		{Name: "cross", Arity: 2, Fn: func(a []vec3.Vector3, _ float64) Value {
			return VectorValue(vec3.Cross(a[0], a[1]))
		}},
		{Name: "length", Arity: 1, Fn: func(a []vec3.Vector3, _ float64) Value {
			return ScalarValue(a[0].Length())
		}},
		{Name: "squared_length", Arity: 1, Fn: func(a []vec3.Vector3, _ float64) Value {
			return ScalarValue(a[0].SquaredLength())
		}},
		{Name: "unit", Arity: 1, Fn: func(a []vec3.Vector3, _ float64) Value {
			return VectorValue(vec3.UnitVector(a[0]))
		}},
		{Name: "lerp", Arity: 2, NeedsScalar: true, Fn: func(a []vec3.Vector3, t float64) Value {
			return VectorValue(vec3.Lerp(a[0], a[1], t))
		}},
		{Name: "reflect", Arity: 2, Fn: func(a []vec3.Vector3, _ float64) Value {
			return VectorValue(a[0].Reflect(a[1]))
		}},
		{Name: "sqrt", Arity: 1, Fn: func(a []vec3.Vector3, _ float64) Value {
			return VectorValue(a[0].Sqrt())
		}},
		// args are copies, so the in-place forms never touch earlier results
		{Name: "add_in_place", Arity: 2, Fn: func(a []vec3.Vector3, _ float64) Value {
			return VectorValue(*a[0].AddInPlace(a[1]))
		}},
		{Name: "divide_in_place", Arity: 1, NeedsScalar: true, Fn: func(a []vec3.Vector3, t float64) Value {
			return VectorValue(*a[0].DivideInPlace(t))
		}},
	}
}
