package selection

import (
	"github.com/MacMayo1993/SEAM-VIZ/geom"
	"github.com/MacMayo1993/SEAM-VIZ/quotient"
)

// Spotlight asks the renderer for one cone of light along a direction.
type Spotlight struct {
	Direction geom.Vec3
	Color     string
	Aperture  float64
}

// QuotientMarker asks the renderer to mark the selected projective point,
// carrying both representative colors since the single marker stands for the
// pair.
type QuotientMarker struct {
	Class    quotient.Class
	Aperture float64
	Colors   [2]string
}

// Highlight is a per-point weight annotation, produced only on request: most
// frames need just the spotlights and marker.
type Highlight struct {
	Position geom.Vec3
	Weight   float64
}

// RenderDirective is the engine's entire output to the renderer. It is
// regenerated from scratch on every state change and never retained by the
// engine. Highlights is nil unless the caller asked for per-point weights.
type RenderDirective struct {
	Spotlights      [2]Spotlight
	QuotientMarkers []QuotientMarker
	Highlights      []Highlight
}

// RenderDirectives derives the draw list from the state: always exactly one
// spotlight per representative and exactly one quotient marker, whatever the
// aperture. Rendering a selection one-sided would show a
// point of the sphere, not a point of the quotient.
func RenderDirectives(state State) RenderDirective {
	reps := state.Selected.Representatives()
	return RenderDirective{
		Spotlights: [2]Spotlight{
			{Direction: reps[0], Color: state.Colors.U, Aperture: state.Aperture},
			{Direction: reps[1], Color: state.Colors.NegU, Aperture: state.Aperture},
		},
		QuotientMarkers: []QuotientMarker{
			{
				Class:    state.Selected,
				Aperture: state.Aperture,
				Colors:   [2]string{state.Colors.U, state.Colors.NegU},
			},
		},
	}
}

// RenderDirectivesWithHighlights additionally weights the given points
// (typically a mesh's vertex directions) against the selection cone. Points
// outside the cone are dropped; the renderer has nothing to do with them.
func RenderDirectivesWithHighlights(state State, points []geom.Vec3) RenderDirective {
	directive := RenderDirectives(state)
	for _, p := range points {
		if w := SelectionWeight(state, p); w > 0 {
			directive.Highlights = append(directive.Highlights, Highlight{Position: p, Weight: w})
		}
	}
	return directive
}

// IsPointHighlighted reports whether a point falls in the selection's double
// cone.
func IsPointHighlighted(state State, point geom.Vec3) bool {
	return quotient.InCone(point, state.Selected, state.Aperture)
}

// SelectionWeight returns the selection's linear falloff weight at a point.
func SelectionWeight(state State, point geom.Vec3) float64 {
	return quotient.ConeWeight(point, state.Selected, state.Aperture)
}

// CloserRepresentative returns whichever representative of the selection is
// nearer to the point, for effects that want to act on the visible side.
func CloserRepresentative(state State, point geom.Vec3) geom.Vec3 {
	reps := state.Selected.Representatives()
	if point.Angle(reps[1]) < point.Angle(reps[0]) {
		return reps[1]
	}
	return reps[0]
}
