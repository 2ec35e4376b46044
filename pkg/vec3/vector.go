// Package vec3 provides the three-component vector used for points, directions and RGB colors.
package vec3

import (
	"math"
	"strconv"
	"strings"
)

// Vector3 is a point, direction or color. Index 0,1,2 maps to x/y/z and r/g/b.
// The zero value is the zero vector.
type Vector3 [3]float64

// Zero is the zero vector.
var Zero = Vector3{}

// New returns the vector (x, y, z).
func New(x, y, z float64) Vector3 {
	return Vector3{x, y, z}
}

// Component returns the i-th component. It panics if i is not 0, 1 or 2.
func (v Vector3) Component(i int) float64 {
	return v[i]
}

func (v Vector3) X() float64 { return v[0] }
func (v Vector3) Y() float64 { return v[1] }
func (v Vector3) Z() float64 { return v[2] }

func (v Vector3) R() float64 { return v[0] }
func (v Vector3) G() float64 { return v[1] }
func (v Vector3) B() float64 { return v[2] }

// Negate returns -v.
func (v Vector3) Negate() Vector3 {
	return Vector3{-v[0], -v[1], -v[2]}
}

// AddInPlace adds o to v and returns v for chaining.
func (v *Vector3) AddInPlace(o Vector3) *Vector3 {
	v[0] += o[0]
	v[1] += o[1]
	v[2] += o[2]
	return v
}

// DivideInPlace divides every component of v by t and returns v for chaining.
// Division by zero follows IEEE-754.
func (v *Vector3) DivideInPlace(t float64) *Vector3 {
	v[0] /= t
	v[1] /= t
	v[2] /= t
	return v
}

// Length returns the Euclidean norm.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.SquaredLength())
}

// SquaredLength returns the sum of squared components.
func (v Vector3) SquaredLength() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Mul multiplies v and o component-wise.
func (v Vector3) Mul(o Vector3) Vector3 {
	return Vector3{v[0] * o[0], v[1] * o[1], v[2] * o[2]}
}

func (v Vector3) Scale(t float64) Vector3 {
	return Vector3{t * v[0], t * v[1], t * v[2]}
}

func (v Vector3) Div(t float64) Vector3 {
	return Vector3{v[0] / t, v[1] / t, v[2] / t}
}

func (v Vector3) Dot(o Vector3) float64 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

// Unit returns v divided by its length. A zero vector yields NaN components.
func (v Vector3) Unit() Vector3 {
	return v.Div(v.Length())
}

// Add returns a + b.
func Add(a, b Vector3) Vector3 { return a.Add(b) }

// Subtract returns a - b.
func Subtract(a, b Vector3) Vector3 { return a.Sub(b) }

// MultiplyElementwise returns the component-wise product of a and b.
func MultiplyElementwise(a, b Vector3) Vector3 { return a.Mul(b) }

// Scale returns t*v.
func Scale(t float64, v Vector3) Vector3 { return v.Scale(t) }

// ScaleBy returns v*t.
func ScaleBy(v Vector3, t float64) Vector3 { return v.Scale(t) }

// Divide returns v/t.
func Divide(v Vector3, t float64) Vector3 { return v.Div(t) }

// Dot returns the dot product of a and b.
func Dot(a, b Vector3) float64 { return a.Dot(b) }

// UnitVector returns v scaled to length 1.
func UnitVector(v Vector3) Vector3 { return v.Unit() }

// String renders v as "(x,y,z)" using the shortest float representation of each component.
func (v Vector3) String() string {
	var sb strings.Builder
	sb.Grow(32)
	sb.WriteByte('(')
	for i, c := range v {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(formatComponent(c))
	}
	sb.WriteByte(')')
	return sb.String()
}

func formatComponent(c float64) string {
	return strconv.FormatFloat(c, 'g', -1, 64)
}
