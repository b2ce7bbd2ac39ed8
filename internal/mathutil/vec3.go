package mathutil

import "math"

// Vec3 is a 3-component vector (value type, stack-allocated).
// Every method returns a new value; receivers are never modified.
type Vec3 [3]float64

// Color is a Vec3 whose components are linear RGB, nominally in [0,1].
// Values are not clamped here.
type Color = Vec3

func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

// R, G and B read the channels of a Color.
func (v Vec3) R() float64 { return v[0] }
func (v Vec3) G() float64 { return v[1] }
func (v Vec3) B() float64 { return v[2] }

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Mul multiplies component-wise. Use Scale for a scalar.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Div scales by 1/s. s == 0 yields ±Inf or NaN components per IEEE-754.
func (v Vec3) Div(s float64) Vec3 {
	return v.Scale(1 / s)
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns the right-handed cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Unit returns v / |v|. The zero vector has no direction; the result is
// NaN in every component and callers must not pass one.
func (v Vec3) Unit() Vec3 {
	return v.Div(v.Len())
}

// Lerp blends a*(1-t) + b*t.
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// NearlyEqual reports whether every component of a and b differs by at most eps.
func NearlyEqual(a, b Vec3, eps float64) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}
