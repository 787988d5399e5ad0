// Package selection is the engine's controller: it owns the shape of the
// application state (current equivalence class, aperture, color pair) and the
// pure intent→state→directive pipeline the UI drives. The state is a plain
// value; the caller keeps the latest one and threads it through ProcessIntent.
// There is no store, no singleton, and no internal mutation anywhere in the
// package.
package selection

import (
	"log"

	"github.com/MacMayo1993/SEAM-VIZ/geom"
	"github.com/MacMayo1993/SEAM-VIZ/quotient"
)

// ColorPair assigns one display color to each representative of the selected
// class. Colors are 6-digit #rrggbb strings, see IsHexColor.
type ColorPair struct {
	U    string
	NegU string
}

// Default selection palette. Note: the pullback module carries its own
// hard-coded effect colors, intentionally left independent of these.
var DefaultColors = ColorPair{
	U:    "#ff6b6b",
	NegU: "#4ecdc4",
}

// DefaultAperture is the initial cone half-angle in radians.
const DefaultAperture = 0.4

// State is the authoritative selection state. It is immutable by convention:
// ProcessIntent returns a new value and never touches its argument, so a
// caller can keep old states around (undo, comparison) for free.
type State struct {
	Selected quotient.Class
	Aperture float64
	Colors   ColorPair
}

// DefaultState selects the class of (0,1,0) at the default aperture.
func DefaultState() State {
	return State{
		Selected: quotient.ClassOf(geom.V(0, 1, 0)),
		Aperture: DefaultAperture,
		Colors:   DefaultColors,
	}
}

// Intent is one user action, a closed tagged union. The concrete types below
// are the only implementations.
type Intent interface {
	isIntent()
}

// ClickQuotient selects the equivalence class of a point clicked on the
// quotient-space view.
type ClickQuotient struct {
	Point geom.Vec3
}

// ClickSource selects the equivalence class of a point clicked on the
// source-sphere view. Handled identically to ClickQuotient; the two types
// exist to document where the click came from, not to branch on.
type ClickSource struct {
	Point geom.Vec3
}

// SetAperture replaces the aperture with the given value, unclamped: range
// policy belongs to the caller (see calib.Config.ClampAperture).
type SetAperture struct {
	Value float64
}

// Reset returns to the default state.
type Reset struct{}

// DragOrbit reports a camera drag. Camera state lives outside the selection
// state, so this intent is a deliberate no-op here; it is part of the closed
// set so the UI can funnel every gesture through one dispatch point.
type DragOrbit struct {
	Delta [2]float64
}

func (ClickQuotient) isIntent() {}
func (ClickSource) isIntent()   {}
func (SetAperture) isIntent()   {}
func (Reset) isIntent()         {}
func (DragOrbit) isIntent()     {}

// ProcessIntent returns the state after applying one intent. It is total
// over the closed intent set and pure: the argument state is never modified.
// An intent type outside the closed set is logged and the state returned
// unchanged; at the UI boundary, keeping the last good state beats
// panicking over a malformed event.
func ProcessIntent(state State, intent Intent) State {
	switch it := intent.(type) {
	case ClickQuotient:
		state.Selected = quotient.ClassOf(it.Point)
		return state
	case ClickSource:
		state.Selected = quotient.ClassOf(it.Point)
		return state
	case SetAperture:
		state.Aperture = it.Value
		return state
	case Reset:
		return DefaultState()
	case DragOrbit:
		return state
	}
	log.Printf("selection: unrecognized intent %T ignored", intent)
	return state
}

// ValidatePairing checks the antipodal invariant on the current selection:
// the second representative must be the exact negation of the first, within
// 1e-6 per component. With Class's smart constructor this cannot fail; the
// check exists for test harnesses and debugging sessions, logs on violation,
// and never throws.
func ValidatePairing(state State) bool {
	reps := state.Selected.Representatives()
	if !reps[1].ApproxEq(reps[0].Neg()) {
		log.Printf("selection: antipodal pairing violated: %v vs %v", reps[0], reps[1])
		return false
	}
	return true
}
