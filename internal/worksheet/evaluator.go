package worksheet

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zeusync/raytrace/internal/core/observability/log"
	"github.com/zeusync/raytrace/pkg/vec3"
)

// Result is the outcome of one step. Exactly one of Vector and Scalar is set.
type Result struct {
	Name   string        `json:"name" yaml:"name"`
	Op     string        `json:"op" yaml:"op"`
	Vector *vec3.Vector3 `json:"vector,omitempty" yaml:"vector,omitempty"`
	Scalar *float64      `json:"scalar,omitempty" yaml:"scalar,omitempty"`
}

func newResult(step Step, v Value) Result {
	r := Result{Name: step.Name, Op: step.Op}
	if v.IsScalar {
		s := v.Scalar
		r.Scalar = &s
	} else {
		vec := v.Vector
		r.Vector = &vec
	}
	return r
}

// Value returns the result as a Value.
func (r Result) Value() Value {
	if r.Scalar != nil {
		return ScalarValue(*r.Scalar)
	}
	if r.Vector != nil {
		return VectorValue(*r.Vector)
	}
	return Value{}
}

// MarshalJSON keeps NaN and infinite scalars representable; vectors handle that themselves.
func (r Result) MarshalJSON() ([]byte, error) {
	type plain struct {
		Name   string        `json:"name"`
		Op     string        `json:"op"`
		Vector *vec3.Vector3 `json:"vector,omitempty"`
		Scalar *vec3.Scalar  `json:"scalar,omitempty"`
	}
	p := plain{Name: r.Name, Op: r.Op, Vector: r.Vector}
	if r.Scalar != nil {
		s := vec3.Scalar(*r.Scalar)
		p.Scalar = &s
	}
	return json.Marshal(p)
}

func (r Result) String() string {
	return r.Name + " = " + r.Value().String()
}

// Report collects the results of one evaluation in step order.
type Report struct {
	ID      uuid.UUID     `json:"id" yaml:"id"`
	Name    string        `json:"name" yaml:"name"`
	Results []Result      `json:"results" yaml:"results"`
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
}

// Lookup finds a result by step name.
func (r *Report) Lookup(name string) (Result, bool) {
	for _, res := range r.Results {
		if res.Name == name {
			return res, true
		}
	}
	return Result{}, false
}

// Evaluator runs worksheets against a registry of operations.
type Evaluator struct {
	registry Registry
	logger   log.Log
}

func NewEvaluator(registry Registry, logger log.Log) *Evaluator {
	return &Evaluator{
		registry: registry,
		logger:   logger,
	}
}

func (e *Evaluator) Registry() Registry {
	return e.registry
}

// Evaluate runs the steps of w in order. Each step may reference input vectors and earlier steps.
func (e *Evaluator) Evaluate(ctx context.Context, w *Worksheet) (*Report, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	report := &Report{
		ID:      uuid.New(),
		Name:    w.Name,
		Results: make([]Result, 0, len(w.Steps)),
	}
	logger := e.logger.With(log.String("run", report.ID.String()), log.String("worksheet", w.Name))

	env := make(map[string]Value, len(w.Vectors)+len(w.Steps))
	for name, v := range w.Vectors {
		env[name] = VectorValue(v)
	}

	for i, step := range w.Steps {
		if err := ctx.Err(); err != nil {
			logger.Warn("evaluation cancelled", log.Int("step", i), log.Error(err))
			return nil, err
		}

		value, err := e.run(step, env)
		if err != nil {
			err = fmt.Errorf("step %d (%s): %w", i, step.Name, err)
			logger.Error("step failed", log.Int("step", i), log.String("op", step.Op), log.Error(err))
			return nil, err
		}

		env[step.Name] = value
		report.Results = append(report.Results, newResult(step, value))
		logger.Debug("step evaluated",
			log.Int("step", i),
			log.String("name", step.Name),
			log.String("op", step.Op),
			valueField(value),
		)
	}

	report.Elapsed = time.Since(start)
	logger.Info("worksheet evaluated",
		log.Int("steps", len(report.Results)),
		log.Duration("elapsed", report.Elapsed),
	)
	return report, nil
}

func (e *Evaluator) run(step Step, env map[string]Value) (Value, error) {
	op, err := e.registry.Lookup(step.Op)
	if err != nil {
		return Value{}, err
	}
	if len(step.Args) != op.Arity {
		return Value{}, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, op.Name, op.Arity, len(step.Args))
	}

	var scalar float64
	switch {
	case op.NeedsScalar && step.Scalar == nil:
		return Value{}, fmt.Errorf("%w: %s", ErrMissingScalar, op.Name)
	case !op.NeedsScalar && step.Scalar != nil:
		return Value{}, fmt.Errorf("%w: %s", ErrUnexpectedScalar, op.Name)
	case step.Scalar != nil:
		scalar = *step.Scalar
	}

	args := make([]vec3.Vector3, len(step.Args))
	for i, ref := range step.Args {
		v, ok := env[ref]
		if !ok {
			return Value{}, fmt.Errorf("%w: %q", ErrUnknownRef, ref)
		}
		if v.IsScalar {
			return Value{}, fmt.Errorf("%w: %q", ErrNotVector, ref)
		}
		args[i] = v.Vector
	}

	return op.Fn(args, scalar), nil
}

func valueField(v Value) log.Field {
	if v.IsScalar {
		return log.Float64("value", v.Scalar)
	}
	return log.Stringer("value", v.Vector)
}
