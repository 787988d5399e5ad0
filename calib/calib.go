// Package calib maps UI-normalized control values to mathematical units:
// slider positions to aperture angles, viewport sizes to marker scales,
// apertures to solid angles. Nothing here touches the quotient geometry;
// these are scalar conveniences for the layer that owns widgets, and their
// outputs must never feed back into quotient-space computation (a marker
// scale is cosmetic, not a distance).
package calib

import "math"

// Config holds the aperture slider's range in radians. The zero slider
// position maps to MinAperture, the full position to MaxAperture.
type Config struct {
	MinAperture float64
	MaxAperture float64
}

// DefaultConfig is the slider range used by the stock UI: nearly closed up
// to a quarter sphere.
var DefaultConfig = Config{
	MinAperture: 0.05,
	MaxAperture: math.Pi / 2,
}

// SliderToAperture linearly maps a slider value in [0, 1] to an aperture in
// [MinAperture, MaxAperture].
func (c Config) SliderToAperture(slider float64) float64 {
	return c.MinAperture + slider*(c.MaxAperture-c.MinAperture)
}

// ApertureToSlider is the inverse of SliderToAperture. A degenerate config
// with an empty range maps everything to 0.
func (c Config) ApertureToSlider(aperture float64) float64 {
	span := c.MaxAperture - c.MinAperture
	if span == 0 {
		return 0
	}
	return (aperture - c.MinAperture) / span
}

// ClampAperture clamps an aperture into the config's range. The selection
// state layer applies no clamping of its own; a UI that wants bounded
// apertures clamps here before issuing the intent.
func (c Config) ClampAperture(aperture float64) float64 {
	if aperture < c.MinAperture {
		return c.MinAperture
	}
	if aperture > c.MaxAperture {
		return c.MaxAperture
	}
	return aperture
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// ConeSolidAngle returns the solid angle Ω = 2π(1−cos θ) subtended by a cone
// of half-angle θ, in steradians. A full aperture of π gives the whole
// sphere, 4π.
func ConeSolidAngle(aperture float64) float64 {
	return 2 * math.Pi * (1 - math.Cos(aperture))
}

// ApertureForCoverage returns the cone half-angle whose solid angle covers
// the given fraction of the sphere's total 4π. The fraction is clamped to
// [0, 1].
func ApertureForCoverage(fraction float64) float64 {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	// Ω = 4π·fraction = 2π(1−cos θ)  ⇒  cos θ = 1 − 2·fraction
	return math.Acos(1 - 2*fraction)
}

// PixelsPerUnit derives a characteristic scale from the viewport so marker
// sizes stay proportionate across window sizes. The smaller dimension
// governs, since the sphere is fit to it.
func PixelsPerUnit(viewportWidth, viewportHeight float64) float64 {
	return math.Min(viewportWidth, viewportHeight) / 2
}
