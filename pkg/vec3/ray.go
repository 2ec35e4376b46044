package vec3

// Ray is a half-line starting at Origin and heading along Direction.
// Direction is not normalized.
type Ray struct {
	Origin    Vector3 `json:"origin" yaml:"origin"`
	Direction Vector3 `json:"direction" yaml:"direction"`
}

func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Through returns the ray from origin that passes through target at t=1.
func Through(origin, target Vector3) Ray {
	return Ray{Origin: origin, Direction: target.Sub(origin)}
}

// At returns the point Origin + t*Direction.
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

func (r Ray) String() string {
	return "[" + r.Origin.String() + " -> " + r.Direction.String() + "]"
}
