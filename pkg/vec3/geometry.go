package vec3

import "math"

// Cross returns the right-handed cross product v × o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

func Cross(a, b Vector3) Vector3 { return a.Cross(b) }

// Lerp blends from a (t=0) to b (t=1).
func Lerp(a, b Vector3, t float64) Vector3 {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// Reflect mirrors v about the surface normal n. n is expected to be unit length.
func (v Vector3) Reflect(n Vector3) Vector3 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Refract bends the direction of v through a surface with normal n, where ratio is the ratio of
// refractive indices (incident over transmitted). It reports false on total internal reflection.
func (v Vector3) Refract(n Vector3, ratio float64) (Vector3, bool) {
	uv := v.Unit()
	dt := uv.Dot(n)
	discriminant := 1 - ratio*ratio*(1-dt*dt)
	if discriminant <= 0 {
		return Vector3{}, false
	}
	return uv.Sub(n.Scale(dt)).Scale(ratio).Sub(n.Scale(math.Sqrt(discriminant))), true
}

// Schlick approximates the reflectance of a dielectric for the given cosine of the incident angle.
func Schlick(cosine, index float64) float64 {
	r0 := (1 - index) / (1 + index)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

// Sqrt takes the square root of every component (gamma 2 for colors).
func (v Vector3) Sqrt() Vector3 {
	return Vector3{math.Sqrt(v[0]), math.Sqrt(v[1]), math.Sqrt(v[2])}
}

func (v Vector3) IsZero() bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}

// Equal compares components exactly. NaN is never equal to anything.
func (v Vector3) Equal(o Vector3) bool {
	return v[0] == o[0] && v[1] == o[1] && v[2] == o[2]
}

// ApproxEqual reports whether every component of v is within eps of o. NaN never matches.
func (v Vector3) ApproxEqual(o Vector3, eps float64) bool {
	for i := range v {
		if !(math.Abs(v[i]-o[i]) <= eps) {
			return false
		}
	}
	return true
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vector3) IsFinite() bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
