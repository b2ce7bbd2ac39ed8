package ray

import "sky-renderer/internal/mathutil"

// Gradient endpoints: White at the horizon (t=0), SkyBlue at the zenith (t=1).
var (
	White   = mathutil.Color{1, 1, 1}
	SkyBlue = mathutil.Color{0.5, 0.7, 1.0}
)

// Ray is a half-line from Origin along Direction. Direction need not be unit length.
type Ray struct {
	Origin    mathutil.Vec3
	Direction mathutil.Vec3
}

func New(origin, direction mathutil.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point Origin + Direction*t.
func (r Ray) At(t float64) mathutil.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Color maps the ray's vertical direction onto a white-to-sky-blue gradient.
// A zero Direction produces NaN channels.
func (r Ray) Color() mathutil.Color {
	unit := r.Direction.Unit()
	t := 0.5 * (unit.Y() + 1.0)
	return mathutil.Lerp(White, SkyBlue, t)
}
