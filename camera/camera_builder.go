package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/freecam-go/common"
)

// CameraBuilderOption is a functional option for configuring a Camera.
type CameraBuilderOption func(*cameraImpl)

// WithPosition sets the camera's initial world-space position.
//
// Parameters:
//   - position: world-space coordinates
//
// Returns:
//   - CameraBuilderOption: functional option to set the position
func WithPosition(position mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.position = position
	}
}

// WithWorldUp sets the world up reference vector used for basis derivation.
//
// Parameters:
//   - worldUp: the reference vertical, typically (0, 1, 0)
//
// Returns:
//   - CameraBuilderOption: functional option to set the world up
func WithWorldUp(worldUp mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.worldUp = worldUp
	}
}

// WithYaw sets the initial horizontal orientation angle.
//
// Parameters:
//   - yaw: horizontal angle in degrees (-90 = facing -Z)
//
// Returns:
//   - CameraBuilderOption: functional option to set the yaw
func WithYaw(yaw float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.yaw = yaw
	}
}

// WithPitch sets the initial vertical orientation angle.
//
// Parameters:
//   - pitch: vertical angle in degrees (0 = horizontal)
//
// Returns:
//   - CameraBuilderOption: functional option to set the pitch
func WithPitch(pitch float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.pitch = pitch
	}
}

// WithMovementSpeed sets the keyboard movement speed.
//
// Parameters:
//   - speed: world units per second
//
// Returns:
//   - CameraBuilderOption: functional option to set the movement speed
func WithMovementSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.movementSpeed = speed
	}
}

// WithMouseSensitivity sets the multiplier applied to raw mouse deltas.
//
// Parameters:
//   - sensitivity: multiplier for cursor deltas
//
// Returns:
//   - CameraBuilderOption: functional option to set the mouse sensitivity
func WithMouseSensitivity(sensitivity float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.mouseSensitivity = sensitivity
	}
}

// WithZoom sets the initial vertical field-of-view angle, clamped to [1, 45].
//
// Parameters:
//   - zoom: field of view in degrees
//
// Returns:
//   - CameraBuilderOption: functional option to set the zoom
func WithZoom(zoom float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.zoom = common.Clamp(zoom, minZoom, maxZoom)
	}
}
