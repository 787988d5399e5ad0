package quotient

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/MacMayo1993/SEAM-VIZ/dbg"
	"github.com/MacMayo1993/SEAM-VIZ/geom"
)

// Parity is an element of Z₂, tracking accumulated orientation flips along a
// path in the quotient space. Even is the group identity.
type Parity int

const (
	Even Parity = 0
	Odd  Parity = 1
)

// Compose adds two parities in Z₂ (XOR). Commutative, associative, identity
// Even.
func Compose(a, b Parity) Parity {
	return (a + b) % 2
}

// Invert returns the group inverse, which in Z₂ is the element itself.
func Invert(p Parity) Parity {
	return p
}

// ApplyToVector applies a parity to a vector: identity for Even, negation for
// Odd.
func ApplyToVector(v geom.Vec3, p Parity) geom.Vec3 {
	if p == Odd {
		return v.Neg()
	}
	return v
}

// AntipodalTransitionParity returns the parity picked up by a path segment
// that crosses between antipodal representatives. It is unconditionally Odd:
// this encodes a fact about the covering map (crossing the identification
// reverses orientation), not a computation on the arguments. The arguments
// exist so call sites read as statements about a specific transition.
func AntipodalTransitionParity(from, to geom.Vec3) Parity {
	return Odd
}

func (p Parity) String() string {
	if p == Odd {
		return "ODD"
	}
	return "EVEN"
}

// Path is an ordered sequence of points on the sphere together with the
// orientation parity accumulated along it. Paths are built incrementally;
// the parity field is maintained by the operations below and should not be
// poked directly.
type Path struct {
	Points []geom.Vec3
	Parity Parity
}

// NewPath starts a path at a point with Even parity.
func NewPath(start geom.Vec3) *Path {
	return &Path{Points: []geom.Vec3{start}, Parity: Even}
}

// Append extends the path by one point, returning a new path. The parity
// picks up an Odd contribution when the step crosses to the antipodal side
// (the new point is nearer the negation of the previous point than the point
// itself).
func (p *Path) Append(point geom.Vec3) *Path {
	parity := p.Parity
	if len(p.Points) > 0 {
		last := p.Points[len(p.Points)-1]
		if point.Angle(last.Neg()) < point.Angle(last) {
			parity = Compose(parity, AntipodalTransitionParity(last, point))
		}
	}
	points := make([]geom.Vec3, len(p.Points)+1)
	copy(points, p.Points)
	points[len(p.Points)] = point
	return &Path{Points: points, Parity: parity}
}

// Concat joins two paths end to start; the parities compose in Z₂.
func (p *Path) Concat(other *Path) *Path {
	points := make([]geom.Vec3, 0, len(p.Points)+len(other.Points))
	points = append(points, p.Points...)
	points = append(points, other.Points...)
	return &Path{Points: points, Parity: Compose(p.Parity, other.Parity)}
}

// Reverse returns the path walked backwards. Reversal does not change
// orientation parity: the same crossings are made, in the other order.
func (p *Path) Reverse() *Path {
	points := make([]geom.Vec3, len(p.Points))
	for i, pt := range p.Points {
		points[len(p.Points)-1-i] = pt
	}
	return &Path{Points: points, Parity: p.Parity}
}

// CloseLoop appends the starting point, turning the path into a loop. Parity
// accumulates exactly as for Append.
func (p *Path) CloseLoop() *Path {
	if len(p.Points) == 0 {
		return &Path{Parity: p.Parity}
	}
	return p.Append(p.Points[0])
}

// String renders the path for debugging, with the parity colored green for
// Even and red for Odd.
func (p *Path) String() string {
	parity := aurora.Green(p.Parity.String()).String()
	if p.Parity == Odd {
		parity = aurora.Red(p.Parity.String()).String()
	}
	points := make([]string, len(p.Points))
	for i, pt := range p.Points {
		points[i] = fmt.Sprintf("(%.2f, %.2f, %.2f)", pt.X, pt.Y, pt.Z)
	}
	return fmt.Sprintf("Path %s [%s] %s", dbg.Name(p), strings.Join(points, " → "), parity)
}

// WindingParity is a placeholder. Determining the homotopy class of a loop in
// the projective plane requires lifting it through the covering map and
// checking whether the lift closes; this stub does not do that analysis. It
// returns the path's accumulated transition parity, which agrees with the
// true winding parity only for paths built step by step through Append.
func WindingParity(p *Path) Parity {
	return p.Parity
}

// ParallelTransport is a placeholder. Real parallel transport would carry a
// tangent vector along the path's geodesic segments; this stub only applies
// the path's accumulated parity to the vector.
func ParallelTransport(v geom.Vec3, p *Path) geom.Vec3 {
	return ApplyToVector(v, p.Parity)
}

// IsNullHomotopic is a placeholder. It answers from the accumulated parity
// alone (Even ⇒ contractible), which is the right invariant but not a real
// homotopy computation; it performs no loop analysis.
func IsNullHomotopic(p *Path) bool {
	return p.Parity == Even
}
