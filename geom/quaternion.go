package geom

import "math"

// Quat is a rotation quaternion with X, Y, Z imaginary components and W real
// component. Unit quaternions double-cover the rotation group: q and -q
// describe the same rotation, the quaternion analog of the antipodal
// identification the rest of the engine is built around.
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromAxisAngle returns the unit quaternion rotating by angle about axis.
// The axis is normalized internally.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	a := axis.Normalize()
	s := math.Sin(angle / 2)
	return Quat{
		X: a.X * s,
		Y: a.Y * s,
		Z: a.Z * s,
		W: math.Cos(angle / 2),
	}
}

// Mul returns the Hamilton product q·other: the rotation that applies other
// first, then q. Not commutative.
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Conjugate returns the conjugate, which for a unit quaternion is the inverse
// rotation.
func (q Quat) Conjugate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Norm returns the quaternion's length.
func (q Quat) Norm() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize returns the unit quaternion in the same orientation. A degenerate
// all-zero quaternion normalizes to the identity, mirroring Vec3.Normalize's
// silent fallback.
func (q Quat) Normalize() Quat {
	n := q.Norm()
	if n < NormalizeEpsilon {
		return QuatIdentity()
	}
	return Quat{X: q.X / n, Y: q.Y / n, Z: q.Z / n, W: q.W / n}
}

// ToMat3 converts a unit quaternion to the equivalent rotation matrix. For
// equal axis and angle this agrees component-wise with RotationAxisAngle.
func (q Quat) ToMat3() Mat3 {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	return Mat3{
		{1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w)},
		{2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w)},
		{2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y)},
	}
}

// RotateVec3 rotates v by the quaternion via the sandwich product q·v·q*.
func (q Quat) RotateVec3(v Vec3) Vec3 {
	p := Quat{X: v.X, Y: v.Y, Z: v.Z}
	r := q.Mul(p).Mul(q.Conjugate())
	return Vec3{X: r.X, Y: r.Y, Z: r.Z}
}
