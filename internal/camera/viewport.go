package camera

import (
	"errors"

	"sky-renderer/internal/mathutil"
	"sky-renderer/internal/ray"
)

// Viewport is the image plane rays are cast through: a camera Origin and the
// plane spanned by Horizontal and Vertical from LowerLeftCorner.
// It is configuration, fixed for a whole render and passed by value.
type Viewport struct {
	Origin          mathutil.Vec3 `json:"origin"`
	Horizontal      mathutil.Vec3 `json:"horizontal"`
	Vertical        mathutil.Vec3 `json:"vertical"`
	LowerLeftCorner mathutil.Vec3 `json:"lower_left_corner"`
}

// DefaultViewport returns a camera at the world origin looking down -Z
// through a 4×2 plane at unit focal distance.
func DefaultViewport() Viewport {
	return Viewport{
		Origin:          mathutil.V3(0, 0, 0),
		Horizontal:      mathutil.V3(4, 0, 0),
		Vertical:        mathutil.V3(0, 2, 0),
		LowerLeftCorner: mathutil.V3(-2, -1, -1),
	}
}

// ViewportForAspect derives a viewport centred on the -Z axis whose width is
// aspect*height. ViewportForAspect(2, 2, 1) equals DefaultViewport().
func ViewportForAspect(aspect, height, focalLength float64) Viewport {
	origin := mathutil.V3(0, 0, 0)
	horizontal := mathutil.V3(aspect*height, 0, 0)
	vertical := mathutil.V3(0, height, 0)
	lowerLeft := origin.
		Sub(horizontal.Div(2)).
		Sub(vertical.Div(2)).
		Sub(mathutil.V3(0, 0, focalLength))

	return Viewport{
		Origin:          origin,
		Horizontal:      horizontal,
		Vertical:        vertical,
		LowerLeftCorner: lowerLeft,
	}
}

// RayFor maps normalized plane coordinates to a ray. (0,0) is the lower-left
// corner and (1,1) the upper-right; values outside [0,1] extrapolate.
func (vp Viewport) RayFor(u, v float64) ray.Ray {
	dir := vp.LowerLeftCorner.
		Add(vp.Horizontal.Scale(u)).
		Add(vp.Vertical.Scale(v))
	return ray.New(vp.Origin, dir)
}

var (
	ErrZeroHorizontal = errors.New("camera: horizontal span is zero")
	ErrZeroVertical   = errors.New("camera: vertical span is zero")

	// ErrPlaneThroughOrigin means some (u, v) maps to a zero ray direction.
	ErrPlaneThroughOrigin = errors.New("camera: image plane passes through the world origin")
)

// Validate rejects degenerate planes. Ray directions are
// LowerLeftCorner + Horizontal*u + Vertical*v, so the plane they span must
// not contain the zero vector (which also covers parallel spans).
// DefaultViewport always passes.
func (vp Viewport) Validate() error {
	if vp.Horizontal == (mathutil.Vec3{}) {
		return ErrZeroHorizontal
	}
	if vp.Vertical == (mathutil.Vec3{}) {
		return ErrZeroVertical
	}
	if vp.LowerLeftCorner.Dot(vp.Horizontal.Cross(vp.Vertical)) == 0 {
		return ErrPlaneThroughOrigin
	}
	return nil
}
