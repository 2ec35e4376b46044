package vec3

import "gonum.org/v1/gonum/spatial/r3"

// FromR3 converts a gonum vector.
func FromR3(p r3.Vec) Vector3 {
	return Vector3{p.X, p.Y, p.Z}
}

// R3 converts v to a gonum vector.
func (v Vector3) R3() r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}
