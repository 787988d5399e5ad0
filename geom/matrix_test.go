package geom

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertMat3InDelta(t *testing.T, expected, actual Mat3, delta float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, expected[i][j], actual[i][j], delta, "component [%d][%d]", i, j)
		}
	}
}

func TestRotationMatricesAreOrthogonal(t *testing.T) {
	cases := map[string]Mat3{
		"x axis":     RotationX(0.7),
		"y axis":     RotationY(-1.3),
		"z axis":     RotationZ(2.9),
		"axis angle": RotationAxisAngle(V(1, 2, -1), 0.9),
		"between":    RotationBetween(V(1, 0.2, 0), V(0, -1, 0.4)),
		"composed":   RotationX(0.3).Mul(RotationZ(1.1)),
	}
	for name, r := range cases {
		r := r
		t.Run(name, func(t *testing.T) {
			assertMat3InDelta(t, Identity(), r.Mul(r.Transpose()), 1e-9)

			// Orthogonality means lengths survive the map.
			v := V(0.4, -2, 1.5)
			assert.InDelta(t, v.Norm(), r.MulVec3(v).Norm(), 1e-9)
		})
	}
}

func TestAxisRotationsKnownValues(t *testing.T) {
	assert.True(t, RotationZ(math.Pi/2).MulVec3(V(1, 0, 0)).ApproxEq(V(0, 1, 0)))
	assert.True(t, RotationX(math.Pi/2).MulVec3(V(0, 1, 0)).ApproxEq(V(0, 0, 1)))
	assert.True(t, RotationY(math.Pi/2).MulVec3(V(0, 0, 1)).ApproxEq(V(1, 0, 0)))
}

func TestMatMulIsNotCommutative(t *testing.T) {
	a := RotationX(0.5)
	b := RotationZ(0.5)
	ab := a.Mul(b)
	ba := b.Mul(a)
	v := V(1, 2, 3)
	assert.False(t, ab.MulVec3(v).ApproxEq(ba.MulVec3(v)))
}

func TestRotationAxisAngleMatchesSingleAxisForms(t *testing.T) {
	for _, angle := range []float64{0, 0.4, -1.2, math.Pi} {
		angle := angle
		t.Run(fmt.Sprintf("angle %.1f", angle), func(t *testing.T) {
			assertMat3InDelta(t, RotationX(angle), RotationAxisAngle(V(1, 0, 0), angle), 1e-12)
			assertMat3InDelta(t, RotationY(angle), RotationAxisAngle(V(0, 1, 0), angle), 1e-12)
			assertMat3InDelta(t, RotationZ(angle), RotationAxisAngle(V(0, 0, 1), angle), 1e-12)
		})
	}
}

func TestRotationBetween(t *testing.T) {
	t.Run("aligned vectors give identity", func(t *testing.T) {
		assertMat3InDelta(t, Identity(), RotationBetween(V(0, 3, 0), V(0, 1, 0)), 1e-9)
	})

	t.Run("antiparallel vectors give a half turn", func(t *testing.T) {
		r := RotationBetween(V(0, 0, 1), V(0, 0, -1))
		assert.True(t, r.MulVec3(V(0, 0, 1)).ApproxEq(V(0, 0, -1)))
		assertMat3InDelta(t, Identity(), r.Mul(r.Transpose()), 1e-9)
	})

	t.Run("antiparallel along x picks the y fallback axis", func(t *testing.T) {
		r := RotationBetween(V(1, 0, 0), V(-1, 0, 0))
		assert.True(t, r.MulVec3(V(1, 0, 0)).ApproxEq(V(-1, 0, 0)))
	})

	t.Run("general case maps from onto to", func(t *testing.T) {
		from := V(1, 2, 3)
		to := V(-2, 0.5, 1)
		got := RotationBetween(from, to).MulVec3(from.Normalize())
		assert.True(t, got.ApproxEq(to.Normalize()))
	})
}
