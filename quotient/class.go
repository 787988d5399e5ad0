// Package quotient implements the quotient topology of the real projective
// plane: the unit sphere with antipodal points u and -u identified. Its
// central type is Class, the equivalence class {u, -u} treated as a single
// point, together with the metric, cone neighborhoods, orientation parity,
// and action pullbacks that make the identification workable.
package quotient

import (
	"math"

	"github.com/MacMayo1993/SEAM-VIZ/geom"
)

// SignEpsilon is the magnitude below which a coordinate is treated as zero by
// the canonical sign rule.
const SignEpsilon = 1e-12

// Class is one point of the projective plane: the unordered pair {u, -u} of
// antipodal unit vectors. It stores only the canonical representative; the
// partner is derived on demand, so an inconsistent pair cannot exist. Classes
// are built only through ClassOf and compared only through Equal: structural
// equality of two Classes says nothing, because (1,0,0) and (-1,0,0) name the
// same point.
type Class struct {
	canonical geom.Vec3
}

// ClassOf projects a vector to its equivalence class. The input is normalized
// first (a near-zero vector degrades to the (0,0,1) fallback, see
// geom.Vec3.Normalize). The canonical representative is chosen by a
// lexicographic sign rule: scanning x, y, z in order, the first coordinate
// with magnitude above SignEpsilon must be non-negative; if it is negative
// the whole vector is negated. The rule is deterministic, so ClassOf(v) and
// ClassOf(-v) always produce the same Class.
func ClassOf(v geom.Vec3) Class {
	u := v.Normalize()
	for _, c := range []float64{u.X, u.Y, u.Z} {
		if math.Abs(c) <= SignEpsilon {
			continue
		}
		if c < 0 {
			u = u.Neg()
		}
		break
	}
	return Class{canonical: u}
}

// Canonical returns the canonical representative, a unit vector satisfying
// the sign rule described at ClassOf.
func (c Class) Canonical() geom.Vec3 {
	return c.canonical
}

// Antipode returns the other representative, -canonical.
func (c Class) Antipode() geom.Vec3 {
	return c.canonical.Neg()
}

// Representatives returns both members of the class, canonical first. The
// second is always the exact negation of the first.
func (c Class) Representatives() [2]geom.Vec3 {
	return [2]geom.Vec3{c.canonical, c.canonical.Neg()}
}

// Equal reports whether two classes name the same projective point: a's
// canonical matches either representative of b, within geom.Tolerance per
// component. With both sides canonicalized the second disjunct should never
// fire, but it keeps Equal correct even for classes built from vectors right
// on the sign rule's epsilon boundary.
func (c Class) Equal(other Class) bool {
	return c.canonical.ApproxEq(other.canonical) ||
		c.canonical.ApproxEq(other.canonical.Neg())
}

// Distance returns the projective distance between two classes:
// acos|u·v| for canonical representatives u, v. The absolute value makes the
// result independent of which representative either side picked, so the
// metric is well defined on the quotient. Range is [0, π/2]; orthogonal
// classes are at π/2, the diameter of the projective plane.
func (c Class) Distance(other Class) float64 {
	d := math.Abs(c.canonical.Dot(other.canonical))
	return math.Acos(geom.ClampScalar(d, 0, 1))
}
