package ray

import "sky-renderer/internal/mathutil"

// HitSphere reports whether r's line intersects the sphere (discriminant > 0).
// Tangent rays do not count as hits. The renderer does not call this.
func HitSphere(center mathutil.Vec3, radius float64, r Ray) bool {
	oc := r.Origin.Sub(center)

	a := r.Direction.Dot(r.Direction)
	b := 2.0 * oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius

	return b*b-4*a*c > 0
}
