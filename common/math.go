package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Radians converts an angle from degrees to radians.
//
// Parameters:
//   - degrees: angle in degrees
//
// Returns:
//   - float32: the angle in radians
func Radians(degrees float32) float32 {
	return degrees * (math32.Pi / 180.0)
}

// Clamp limits value to the inclusive range [min, max].
// If min > max the result is unspecified.
//
// Parameters:
//   - value: the value to limit
//   - min: lower bound of the range
//   - max: upper bound of the range
//
// Returns:
//   - float32: value saturated to [min, max]
func Clamp(value, min, max float32) float32 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// DirectionFromAngles computes the unit direction vector described by a
// yaw/pitch pair in degrees. Yaw rotates about the world Y axis (yaw -90
// faces -Z, the conventional OpenGL forward), pitch tilts toward +Y.
// Pure function: it has no dependency on any camera instance.
//
// Parameters:
//   - yaw: horizontal angle in degrees
//   - pitch: vertical angle in degrees
//
// Returns:
//   - mgl32.Vec3: normalized direction vector
func DirectionFromAngles(yaw, pitch float32) mgl32.Vec3 {
	cosPitch := math32.Cos(Radians(pitch))
	return mgl32.Vec3{
		math32.Cos(Radians(yaw)) * cosPitch,
		math32.Sin(Radians(pitch)),
		math32.Sin(Radians(yaw)) * cosPitch,
	}.Normalize()
}
