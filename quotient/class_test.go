package quotient

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MacMayo1993/SEAM-VIZ/geom"
)

// A spread of directions that exercises every branch of the sign rule:
// leading positive, leading negative, zero x, zero x and y, near-axis.
var sampleDirections = []geom.Vec3{
	{X: 1, Y: 2, Z: 3},
	{X: -1, Y: 2, Z: 3},
	{X: 0, Y: -1, Z: 4},
	{X: 0, Y: 0, Z: -1},
	{X: -0.001, Y: 5, Z: 0},
	{X: 0.3, Y: -0.7, Z: 0.64},
	{X: -1, Y: -1, Z: -1},
}

func TestCanonicalSignRule(t *testing.T) {
	for _, v := range sampleDirections {
		c := ClassOf(v).Canonical()
		// The first coordinate with real magnitude must be non-negative.
		for _, coord := range []float64{c.X, c.Y, c.Z} {
			if math.Abs(coord) <= SignEpsilon {
				continue
			}
			assert.GreaterOrEqual(t, coord, 0.0, "input %v canonicalized to %v", v, c)
			break
		}
		assert.InDelta(t, 1, c.Norm(), 1e-12, "canonical representative must be unit length")
	}
}

func TestClassOfLiteralCases(t *testing.T) {
	// (1,2,3) already has positive x, so only normalization happens.
	c := ClassOf(geom.V(1, 2, 3)).Canonical()
	assert.Greater(t, c.X, 0.0)

	// (-1,0,0) flips sign exactly.
	assert.Equal(t, geom.V(1, 0, 0), ClassOf(geom.V(-1, 0, 0)).Canonical())
}

func TestClassOfIsWellDefined(t *testing.T) {
	for _, v := range sampleDirections {
		a := ClassOf(v)
		b := ClassOf(v.Neg())
		assert.True(t, a.Equal(b), "ClassOf(%v) and ClassOf(-%v) must be the same class", v, v)
		// The canonical representative is identical, not merely equivalent.
		assert.True(t, a.Canonical().ApproxEq(b.Canonical()))
	}
}

func TestRepresentativesAreAntipodal(t *testing.T) {
	for _, v := range sampleDirections {
		reps := ClassOf(v).Representatives()
		assert.True(t, reps[1].ApproxEq(reps[0].Neg()))
		assert.True(t, reps[0].ApproxEq(ClassOf(v).Canonical()))
	}
}

func TestClassEqual(t *testing.T) {
	a := ClassOf(geom.V(1, 2, 3))
	assert.True(t, a.Equal(ClassOf(geom.V(2, 4, 6))), "scaling does not change the class")
	assert.True(t, a.Equal(ClassOf(geom.V(-1, -2, -3))), "negation does not change the class")
	assert.False(t, a.Equal(ClassOf(geom.V(3, 2, 1))))
}

func TestDistance(t *testing.T) {
	t.Run("bounds and symmetry", func(t *testing.T) {
		for _, v := range sampleDirections {
			for _, w := range sampleDirections {
				a, b := ClassOf(v), ClassOf(w)
				d := a.Distance(b)
				assert.GreaterOrEqual(t, d, 0.0)
				assert.LessOrEqual(t, d, math.Pi/2+1e-12)
				assert.InDelta(t, b.Distance(a), d, 1e-12)
			}
		}
	})

	t.Run("self distance is zero", func(t *testing.T) {
		a := ClassOf(geom.V(0.2, -0.5, 1))
		assert.InDelta(t, 0, a.Distance(a), 1e-9)
	})

	t.Run("representative independence", func(t *testing.T) {
		v := geom.V(0.3, 0.8, -0.5)
		w := geom.V(-1, 0.1, 0.4)
		d := ClassOf(v).Distance(ClassOf(w))
		assert.InDelta(t, d, ClassOf(v.Neg()).Distance(ClassOf(w.Neg())), 1e-12)
		assert.InDelta(t, d, ClassOf(v).Distance(ClassOf(w.Neg())), 1e-12)
	})

	t.Run("orthogonal classes sit at the diameter", func(t *testing.T) {
		d := ClassOf(geom.V(1, 0, 0)).Distance(ClassOf(geom.V(0, 1, 0)))
		assert.InDelta(t, math.Pi/2, d, 1e-12)
	})
}
