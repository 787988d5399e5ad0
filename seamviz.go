// An interactive quotient-space engine for the real projective plane.
//
// This package is the friendly face over the engine's subpackages: it
// re-exports the main types and wraps the one panicking code path in an
// error-returning function. A UI drives the engine through exactly two
// boundaries, feeding SelectionIntents in and drawing RenderDirectives out,
// and does no geometric computation of its own.
package seamviz

import (
	"github.com/MacMayo1993/SEAM-VIZ/geom"
	"github.com/MacMayo1993/SEAM-VIZ/quotient"
	"github.com/MacMayo1993/SEAM-VIZ/selection"
)

type Vec3 = geom.Vec3
type Class = quotient.Class
type Action = quotient.Action
type PullbackResult = quotient.PullbackResult
type State = selection.State
type Intent = selection.Intent
type RenderDirective = selection.RenderDirective

// Apply runs one turn of the interaction loop: process the intent, derive
// the directive for the resulting state. Both steps are pure; callers must
// thread the returned state into their next call.
func Apply(state State, intent Intent) (State, RenderDirective) {
	next := selection.ProcessIntent(state, intent)
	return next, selection.RenderDirectives(next)
}

// Pullback lifts an action on an equivalence class into its symmetric pair
// of source-sphere effects. Unlike quotient.Pullback, an unrecognized action
// kind comes back as an error instead of a panic.
func Pullback(action Action) (result PullbackResult, err error) {
	defer func() {
		recoveredErr := quotient.HandlePullbackPanicRecover(recover())
		if recoveredErr != nil {
			result = PullbackResult{}
			err = recoveredErr
		}
	}()
	return quotient.Pullback(action), nil
}
