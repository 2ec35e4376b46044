package worksheet

import (
	"strconv"

	"github.com/zeusync/raytrace/pkg/vec3"
)

// Value is the outcome of an operation: either a vector or a scalar.
type Value struct {
	Vector   vec3.Vector3
	Scalar   float64
	IsScalar bool
}

func VectorValue(v vec3.Vector3) Value { return Value{Vector: v} }

func ScalarValue(f float64) Value { return Value{Scalar: f, IsScalar: true} }

func (v Value) String() string {
	if v.IsScalar {
		return strconv.FormatFloat(v.Scalar, 'g', -1, 64)
	}
	return v.Vector.String()
}
