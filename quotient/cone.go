package quotient

import (
	"math"

	"github.com/MacMayo1993/SEAM-VIZ/geom"
)

// A selection around a projective point is necessarily a double cone: any
// neighborhood of [u] contains points near u and points near -u, or it isn't
// a neighborhood in the quotient topology at all. The functions here measure
// a point against both nappes at once and take the nearer one.

// minAngle is the angle from point to the nearer representative of center.
func minAngle(point geom.Vec3, center Class) float64 {
	reps := center.Representatives()
	return math.Min(point.Angle(reps[0]), point.Angle(reps[1]))
}

// InCone reports whether point falls inside the symmetric double cone of the
// given half-angle aperture around center. By construction the answer is the
// same for point and -point.
func InCone(point geom.Vec3, center Class, aperture float64) bool {
	return minAngle(point, center) <= aperture
}

// ConeWeight returns a linear falloff weight for point against the double
// cone: exactly 1 at either representative, exactly 0 at and beyond the
// aperture boundary, and linear in the angle between. The falloff is
// deliberately piecewise linear rather than smoothstep or cosine shaped; it
// is a geometric weight with exactly testable values, not an anti-aliased
// visual edge.
func ConeWeight(point geom.Vec3, center Class, aperture float64) float64 {
	return math.Max(0, 1-minAngle(point, center)/aperture)
}
