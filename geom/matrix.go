package geom

import "math"

// Mat3 is a 3×3 matrix in row-major order: M[row][col]. Rotation matrices
// produced by this package are right-handed and act on column vectors via
// MulVec3.
type Mat3 [3][3]float64

// Identity returns the identity matrix.
func Identity() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// MulVec3 applies the matrix to a vector.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Mul returns the matrix product m·other. Composition order follows the usual
// convention: (a.Mul(b)).MulVec3(v) first applies b, then a.
func (m Mat3) Mul(other Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				out[i][j] += m[i][k] * other[k][j]
			}
		}
	}
	return out
}

// Transpose returns the transposed matrix. For the rotation matrices produced
// here, the transpose is the inverse.
func (m Mat3) Transpose() Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// RotationX returns the right-handed rotation about the x axis.
func RotationX(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// RotationY returns the right-handed rotation about the y axis.
func RotationY(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// RotationZ returns the right-handed rotation about the z axis.
func RotationZ(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// RotationAxisAngle builds a rotation about an arbitrary axis by the Rodrigues
// formula. The axis is normalized internally, so a zero axis degrades to the
// (0,0,1) fallback rather than producing garbage.
func RotationAxisAngle(axis Vec3, angle float64) Mat3 {
	a := axis.Normalize()
	c, s := math.Cos(angle), math.Sin(angle)
	t := 1 - c
	x, y, z := a.X, a.Y, a.Z
	return Mat3{
		{t*x*x + c, t*x*y - s*z, t*x*z + s*y},
		{t*x*y + s*z, t*y*y + c, t*y*z - s*x},
		{t*x*z - s*y, t*y*z + s*x, t*z*z + c},
	}
}

// RotationBetween returns a rotation taking the direction of from to the
// direction of to. Already-aligned inputs short-circuit to the identity.
// Antiparallel inputs have no unique rotation axis; we rotate 180° about an
// arbitrary perpendicular, preferring the x axis unless from is nearly
// parallel to it. Both short-circuits exist to avoid normalizing a near-zero
// cross product.
func RotationBetween(from, to Vec3) Mat3 {
	f := from.Normalize()
	t := to.Normalize()
	d := ClampScalar(f.Dot(t), -1, 1)

	if d > 1-Tolerance {
		return Identity()
	}
	if d < -1+Tolerance {
		perp := Vec3{1, 0, 0}
		if math.Abs(f.X) > 0.9 {
			perp = Vec3{0, 1, 0}
		}
		axis := f.Cross(perp).Normalize()
		return RotationAxisAngle(axis, math.Pi)
	}

	axis := f.Cross(t).Normalize()
	return RotationAxisAngle(axis, math.Acos(d))
}
