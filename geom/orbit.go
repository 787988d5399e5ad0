package geom

import "math"

// PolarLimit keeps the orbit's polar angle away from the poles, where azimuth
// becomes degenerate and the camera would gimbal-flip.
const PolarLimit = 0.1

// OrbitState parameterizes an orbiting camera: distance from the target,
// azimuth about the vertical axis (any real, wraps naturally through the
// trig functions), and polar angle from the vertical, clamped away from the
// poles. Updates return a new state; an OrbitState is never mutated in place.
type OrbitState struct {
	Distance float64
	Azimuth  float64
	Polar    float64
	Target   Vec3
}

// DefaultOrbit places the camera on the +z side at a comfortable distance,
// level with the equator.
func DefaultOrbit() OrbitState {
	return OrbitState{
		Distance: 3,
		Azimuth:  0,
		Polar:    math.Pi / 2,
	}
}

// Position converts the spherical parameters to the Cartesian camera position.
// The vertical axis is y: polar = 0 looks down from above the target.
func (o OrbitState) Position() Vec3 {
	sp := math.Sin(o.Polar)
	return Vec3{
		X: o.Distance * sp * math.Sin(o.Azimuth),
		Y: o.Distance * math.Cos(o.Polar),
		Z: o.Distance * sp * math.Cos(o.Azimuth),
	}.Add(o.Target)
}

// ApplyDrag returns the state after a drag gesture: azimuth and polar move by
// the deltas, polar clamped to [PolarLimit, π−PolarLimit]. Distance and target
// are untouched; zooming and panning are separate gestures.
func (o OrbitState) ApplyDrag(dAzimuth, dPolar float64) OrbitState {
	return OrbitState{
		Distance: o.Distance,
		Azimuth:  o.Azimuth + dAzimuth,
		Polar:    ClampScalar(o.Polar+dPolar, PolarLimit, math.Pi-PolarLimit),
		Target:   o.Target,
	}
}
