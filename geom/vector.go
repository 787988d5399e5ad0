package geom

import "math"

// Tolerance for approximate float comparison. Like most tolerance choices in
// this package it is generous: the engine deals in unit vectors and radians,
// so anything below 1e-6 is noise from accumulated rounding, not signal.
const Tolerance = 1e-6

// NormalizeEpsilon is the squared-length floor below which a vector is
// considered degenerate. See Normalize.
const NormalizeEpsilon = 1e-12

// Vec3 is a point or direction in R³. It is copied by value everywhere; no
// operation mutates its receiver or arguments.
type Vec3 struct {
	X, Y, Z float64
}

// V is shorthand for constructing a Vec3.
func V(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns the vector scaled by a scalar.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Neg returns the antipodal (negated) vector.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Norm returns the Euclidean length of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// NormSq returns the squared length, avoiding the square root when only
// comparisons are needed.
func (v Vec3) NormSq() float64 {
	return v.Dot(v)
}

// Normalize returns the unit vector in the same direction. A vector whose
// length is below NormalizeEpsilon has no meaningful direction; rather than
// fail, it normalizes to the fixed fallback (0, 0, 1). Callers that care must
// screen for near-zero input themselves; everything downstream tolerates the
// silent fallback.
func (v Vec3) Normalize() Vec3 {
	n := v.Norm()
	if n < NormalizeEpsilon {
		return Vec3{0, 0, 1}
	}
	return Vec3{v.X / n, v.Y / n, v.Z / n}
}

// Clamp returns the vector with each component clamped to [min, max].
func (v Vec3) Clamp(min, max float64) Vec3 {
	return Vec3{
		X: ClampScalar(v.X, min, max),
		Y: ClampScalar(v.Y, min, max),
		Z: ClampScalar(v.Z, min, max),
	}
}

// Angle returns the unsigned angle in radians between two vectors. The cosine
// is clamped to [-1, 1] before acos, purely to defeat floating point drift on
// nearly parallel unit vectors.
func (v Vec3) Angle(other Vec3) float64 {
	a := v.Normalize()
	b := other.Normalize()
	return math.Acos(ClampScalar(a.Dot(b), -1, 1))
}

// ApproxEq compares per component against Tolerance. Note that this is a box
// test, not a Euclidean distance test: each axis gets the full tolerance
// independently.
func (v Vec3) ApproxEq(other Vec3) bool {
	return math.Abs(v.X-other.X) < Tolerance &&
		math.Abs(v.Y-other.Y) < Tolerance &&
		math.Abs(v.Z-other.Z) < Tolerance
}

// ClampScalar clamps x to [min, max].
func ClampScalar(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

// Equal is tolerance-based scalar equality, the float comparison convention
// used throughout the engine.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}
