package quotient

import (
	"log"
	"math"

	"github.com/MacMayo1993/SEAM-VIZ/geom"
)

// ActionKind tags the closed set of actions a user can perform on a
// projective point.
type ActionKind string

const (
	ActionSelect ActionKind = "select"
	ActionPaint  ActionKind = "paint"
	ActionStamp  ActionKind = "stamp"
	ActionTrace  ActionKind = "trace"
)

// Action is an operation requested on an equivalence class. Whatever the
// kind, it names a Class, never a bare direction: actions are defined on the
// quotient, and Pullback lifts them back to the sphere.
type Action struct {
	Kind  ActionKind
	Class Class
	// Size is the action's characteristic scale: brush radius for paint,
	// stamp extent for stamp, stroke width for trace. Ignored by select.
	Size float64
}

// SourceEffect is one half of a lifted action: a concrete effect at one
// representative on the sphere.
type SourceEffect struct {
	Type       ActionKind
	Position   geom.Vec3
	Color      string
	Parameters map[string]float64
}

// PullbackResult pairs the two source-space effects produced by lifting one
// action through the covering map.
type PullbackResult struct {
	Action       Action
	EffectOnU    SourceEffect
	EffectOnNegU SourceEffect
}

// Default effect colors per action kind. These are independent of the
// selection module's color pair: an effect carries its own hard-coded
// palette. (The two palettes disagreeing is inherited behavior; do not
// unify them without product guidance.)
const (
	selectEffectColor = "#ffd166"
	paintEffectColor  = "#ef476f"
	stampEffectColor  = "#06d6a0"
	traceEffectColor  = "#118ab2"
)

// Pullback lifts an action on a class to a symmetric pair of effects, one at
// each representative. This is the only way effects are made, which is what
// keeps the antipodal invariant safe at the action layer: no code path can
// produce an effect at u without its partner at -u.
//
// The branches produce matching parameters at both representatives, with one
// exception: a stamp's -u copy carries a half-turn rotation so the stamped
// texture reads consistently from either side of the sphere.
//
// Pullback panics on an unrecognized kind; use the root package's wrapper to
// get an error instead.
func Pullback(action Action) PullbackResult {
	u := action.Class.Canonical()
	negU := action.Class.Antipode()

	switch action.Kind {
	case ActionSelect:
		return PullbackResult{
			Action:       action,
			EffectOnU:    SourceEffect{Type: ActionSelect, Position: u, Color: selectEffectColor},
			EffectOnNegU: SourceEffect{Type: ActionSelect, Position: negU, Color: selectEffectColor},
		}
	case ActionPaint:
		params := map[string]float64{"radius": action.Size}
		return PullbackResult{
			Action:       action,
			EffectOnU:    SourceEffect{Type: ActionPaint, Position: u, Color: paintEffectColor, Parameters: params},
			EffectOnNegU: SourceEffect{Type: ActionPaint, Position: negU, Color: paintEffectColor, Parameters: params},
		}
	case ActionStamp:
		return PullbackResult{
			Action: action,
			EffectOnU: SourceEffect{
				Type:       ActionStamp,
				Position:   u,
				Color:      stampEffectColor,
				Parameters: map[string]float64{"size": action.Size, "rotation": 0},
			},
			EffectOnNegU: SourceEffect{
				Type:       ActionStamp,
				Position:   negU,
				Color:      stampEffectColor,
				Parameters: map[string]float64{"size": action.Size, "rotation": math.Pi},
			},
		}
	case ActionTrace:
		params := map[string]float64{"width": action.Size}
		return PullbackResult{
			Action:       action,
			EffectOnU:    SourceEffect{Type: ActionTrace, Position: u, Color: traceEffectColor, Parameters: params},
			EffectOnNegU: SourceEffect{Type: ActionTrace, Position: negU, Color: traceEffectColor, Parameters: params},
		}
	}
	fatalf("unrecognized action kind %q", action.Kind)
	panic("unreachable")
}

// ValidateSymmetry checks the lifted pair for the invariant Pullback is
// supposed to guarantee: equal effect types and exactly opposite positions.
// A violation is logged and reported, never thrown; this is a diagnostic for
// test harnesses, and callers decide whether to treat it as fatal.
func ValidateSymmetry(result PullbackResult) bool {
	if result.EffectOnU.Type != result.EffectOnNegU.Type {
		log.Printf("pullback symmetry violation: effect types %q and %q differ",
			result.EffectOnU.Type, result.EffectOnNegU.Type)
		return false
	}
	if !result.EffectOnNegU.Position.ApproxEq(result.EffectOnU.Position.Neg()) {
		log.Printf("pullback symmetry violation: positions %v and %v are not antipodal",
			result.EffectOnU.Position, result.EffectOnNegU.Position)
		return false
	}
	return true
}

// ComposePullbacks is a placeholder: it returns the last result rather than
// truly composing the sequence. Real composition would need an effect
// algebra (paint-over, stamp stacking) that doesn't exist yet. The zero
// result comes back for an empty slice.
func ComposePullbacks(results []PullbackResult) PullbackResult {
	if len(results) == 0 {
		return PullbackResult{}
	}
	return results[len(results)-1]
}
