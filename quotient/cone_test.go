package quotient

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MacMayo1993/SEAM-VIZ/geom"
)

func TestInCone(t *testing.T) {
	center := ClassOf(geom.V(1, 0, 0))
	aperture := 0.4

	t.Run("both representatives are inside", func(t *testing.T) {
		assert.True(t, InCone(geom.V(1, 0, 0), center, aperture))
		assert.True(t, InCone(geom.V(-1, 0, 0), center, aperture))
	})

	t.Run("antipodal symmetry for arbitrary points", func(t *testing.T) {
		for _, p := range sampleDirections {
			p := p.Normalize()
			assert.Equal(t,
				InCone(p, center, aperture),
				InCone(p.Neg(), center, aperture),
				"membership must agree for %v and its antipode", p)
		}
	})

	t.Run("boundary and outside", func(t *testing.T) {
		inside := geom.V(math.Cos(0.39), math.Sin(0.39), 0)
		outside := geom.V(math.Cos(0.41), math.Sin(0.41), 0)
		assert.True(t, InCone(inside, center, aperture))
		assert.False(t, InCone(outside, center, aperture))
	})

	t.Run("full aperture covers the whole sphere", func(t *testing.T) {
		for _, p := range sampleDirections {
			assert.True(t, InCone(p.Normalize(), center, math.Pi))
		}
	})
}

func TestConeWeight(t *testing.T) {
	center := ClassOf(geom.V(1, 0, 0))
	aperture := 0.4

	t.Run("exactly 1 at either representative", func(t *testing.T) {
		assert.Equal(t, 1.0, ConeWeight(geom.V(1, 0, 0), center, aperture))
		assert.Equal(t, 1.0, ConeWeight(geom.V(-1, 0, 0), center, aperture))
	})

	t.Run("exactly linear: half weight at half the aperture", func(t *testing.T) {
		p := geom.V(math.Cos(0.2), math.Sin(0.2), 0)
		assert.InDelta(t, 0.5, ConeWeight(p, center, aperture), 1e-9)
	})

	t.Run("zero at and beyond the boundary", func(t *testing.T) {
		atBoundary := geom.V(math.Cos(0.4), math.Sin(0.4), 0)
		assert.InDelta(t, 0, ConeWeight(atBoundary, center, aperture), 1e-9)
		assert.Equal(t, 0.0, ConeWeight(geom.V(0, 1, 0), center, aperture))
	})

	t.Run("weight is antipodally symmetric", func(t *testing.T) {
		for _, p := range sampleDirections {
			p := p.Normalize()
			assert.InDelta(t,
				ConeWeight(p, center, aperture),
				ConeWeight(p.Neg(), center, aperture),
				1e-12)
		}
	})
}
