package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/freecam-go/common"
)

// Default camera values, matching the conventional OpenGL fly camera setup.
// Yaw -90 faces the camera down -Z with the default world up of +Y.
const (
	DefaultYaw              float32 = -90.0
	DefaultPitch            float32 = 0.0
	DefaultMovementSpeed    float32 = 2.5
	DefaultMouseSensitivity float32 = 0.1
	DefaultZoom             float32 = 45.0
)

// Saturation bounds. Pitch stops short of ±90 to keep the front vector from
// degenerating against the world up at the poles; zoom is a vertical
// field-of-view angle in degrees.
const (
	maxPitch float32 = 89.0
	minZoom  float32 = 1.0
	maxZoom  float32 = 45.0
)

// cameraImpl is the single implementation of Camera.
// The basis vectors (front, right, up) are derived state: they are recomputed
// from yaw/pitch/worldUp whenever orientation changes and are never stale.
// No internal locking — a camera instance belongs to the render loop that
// created it, and thread safety is the caller's responsibility.
type cameraImpl struct {
	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3
	worldUp  mgl32.Vec3

	// Euler angles in degrees
	yaw   float32
	pitch float32

	// Input scaling options
	movementSpeed    float32
	mouseSensitivity float32
	zoom             float32
}

// Camera defines the interface for a free-fly camera.
// The camera holds position and orientation state, converts high-level input
// events into state changes, and derives the view transform the rendering
// pipeline consumes each frame.
type Camera interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space camera position
	Position() mgl32.Vec3

	// Front returns the unit vector the camera is facing along.
	//
	// Returns:
	//   - mgl32.Vec3: world-space front vector
	Front() mgl32.Vec3

	// Right returns the unit vector pointing to the camera's right.
	//
	// Returns:
	//   - mgl32.Vec3: world-space right vector
	Right() mgl32.Vec3

	// Up returns the camera's unit up vector. This is the derived local up,
	// not the world up reference.
	//
	// Returns:
	//   - mgl32.Vec3: world-space up vector
	Up() mgl32.Vec3

	// WorldUp returns the world up reference vector used to derive the basis.
	//
	// Returns:
	//   - mgl32.Vec3: the world up reference
	WorldUp() mgl32.Vec3

	// Yaw returns the horizontal orientation angle in degrees. Yaw is
	// unconstrained and wraps implicitly through the trigonometry.
	//
	// Returns:
	//   - float32: yaw in degrees
	Yaw() float32

	// Pitch returns the vertical orientation angle in degrees.
	//
	// Returns:
	//   - float32: pitch in degrees
	Pitch() float32

	// MovementSpeed returns the keyboard movement speed in world units per second.
	//
	// Returns:
	//   - float32: movement speed
	MovementSpeed() float32

	// MouseSensitivity returns the multiplier applied to raw mouse deltas.
	//
	// Returns:
	//   - float32: mouse sensitivity
	MouseSensitivity() float32

	// Zoom returns the vertical field-of-view angle in degrees, in [1, 45].
	// The caller reads this to build its projection matrix.
	//
	// Returns:
	//   - float32: field of view in degrees
	Zoom() float32

	// ViewMatrix computes the transform mapping world space to camera (eye)
	// space: a look-at transform from the position toward position + front
	// with the derived up as vertical reference. No side effects.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProcessKeyboard translates the camera along its front or right axis by
	// movement speed scaled with the frame's delta time. Orientation is
	// unaffected, so the basis is not recomputed.
	//
	// Parameters:
	//   - direction: one of the Movement values
	//   - deltaTime: elapsed seconds since the previous frame (expected > 0, not validated)
	ProcessKeyboard(direction Movement, deltaTime float32)

	// ProcessMouseMovement applies raw cursor deltas to yaw and pitch after
	// scaling by the mouse sensitivity. When constrainPitch is true the pitch
	// is clamped to [-89, 89] after the addition, preventing the basis from
	// degenerating at the poles. Always recomputes the basis before returning.
	//
	// Parameters:
	//   - xOffset: horizontal cursor delta in pixels
	//   - yOffset: vertical cursor delta in pixels (positive = look up)
	//   - constrainPitch: clamp pitch to [-89, 89] when true
	ProcessMouseMovement(xOffset, yOffset float32, constrainPitch bool)

	// ProcessMouseScroll narrows or widens the field of view by the vertical
	// scroll delta, saturating to [1, 45]. Positive offsets zoom in.
	//
	// Parameters:
	//   - yOffset: vertical scroll wheel delta
	ProcessMouseScroll(yOffset float32)

	// SetPosition sets the camera's world-space position directly.
	//
	// Parameters:
	//   - position: world-space coordinates
	SetPosition(position mgl32.Vec3)

	// SetWorldUp sets the world up reference vector and recomputes the basis.
	//
	// Parameters:
	//   - worldUp: the new world up reference
	SetWorldUp(worldUp mgl32.Vec3)

	// SetYaw sets the horizontal orientation angle directly and recomputes
	// the basis. No wrapping is applied.
	//
	// Parameters:
	//   - yaw: new yaw in degrees
	SetYaw(yaw float32)

	// SetPitch sets the vertical orientation angle directly and recomputes
	// the basis. No clamping is applied; use ProcessMouseMovement with
	// constrainPitch for saturating updates.
	//
	// Parameters:
	//   - pitch: new pitch in degrees
	SetPitch(pitch float32)

	// SetMovementSpeed sets the keyboard movement speed.
	//
	// Parameters:
	//   - speed: world units per second
	SetMovementSpeed(speed float32)

	// SetMouseSensitivity sets the multiplier applied to raw mouse deltas.
	//
	// Parameters:
	//   - sensitivity: multiplier for cursor deltas
	SetMouseSensitivity(sensitivity float32)

	// SetZoom sets the vertical field-of-view angle, clamped to [1, 45].
	//
	// Parameters:
	//   - zoom: field of view in degrees
	SetZoom(zoom float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new free-fly camera with the conventional defaults
// (origin position, +Y world up, yaw -90, pitch 0). The orthonormal basis is
// derived before the camera is returned, so it is never observed stale.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		worldUp:          mgl32.Vec3{0, 1, 0},
		yaw:              DefaultYaw,
		pitch:            DefaultPitch,
		movementSpeed:    DefaultMovementSpeed,
		mouseSensitivity: DefaultMouseSensitivity,
		zoom:             DefaultZoom,
	}
	for _, option := range options {
		option(c)
	}
	c.updateVectors()
	return c
}

// NewCameraFromScalars creates a new free-fly camera from individual position
// and world-up components. Equivalent to NewCamera with WithPosition,
// WithWorldUp, WithYaw, and WithPitch.
//
// Parameters:
//   - posX, posY, posZ: world-space position components
//   - upX, upY, upZ: world up reference components
//   - yaw: initial yaw in degrees
//   - pitch: initial pitch in degrees
//
// Returns:
//   - Camera: the newly created camera
func NewCameraFromScalars(posX, posY, posZ, upX, upY, upZ, yaw, pitch float32) Camera {
	return NewCamera(
		WithPosition(mgl32.Vec3{posX, posY, posZ}),
		WithWorldUp(mgl32.Vec3{upX, upY, upZ}),
		WithYaw(yaw),
		WithPitch(pitch),
	)
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	return c.position
}

func (c *cameraImpl) Front() mgl32.Vec3 {
	return c.front
}

func (c *cameraImpl) Right() mgl32.Vec3 {
	return c.right
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	return c.up
}

func (c *cameraImpl) WorldUp() mgl32.Vec3 {
	return c.worldUp
}

func (c *cameraImpl) Yaw() float32 {
	return c.yaw
}

func (c *cameraImpl) Pitch() float32 {
	return c.pitch
}

func (c *cameraImpl) MovementSpeed() float32 {
	return c.movementSpeed
}

func (c *cameraImpl) MouseSensitivity() float32 {
	return c.mouseSensitivity
}

func (c *cameraImpl) Zoom() float32 {
	return c.zoom
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

func (c *cameraImpl) ProcessKeyboard(direction Movement, deltaTime float32) {
	velocity := c.movementSpeed * deltaTime
	switch direction {
	case MovementForward:
		c.position = c.position.Add(c.front.Mul(velocity))
	case MovementBackward:
		c.position = c.position.Sub(c.front.Mul(velocity))
	case MovementLeft:
		c.position = c.position.Sub(c.right.Mul(velocity))
	case MovementRight:
		c.position = c.position.Add(c.right.Mul(velocity))
	}
}

func (c *cameraImpl) ProcessMouseMovement(xOffset, yOffset float32, constrainPitch bool) {
	c.yaw += xOffset * c.mouseSensitivity
	c.pitch += yOffset * c.mouseSensitivity

	if constrainPitch {
		c.pitch = common.Clamp(c.pitch, -maxPitch, maxPitch)
	}

	c.updateVectors()
}

func (c *cameraImpl) ProcessMouseScroll(yOffset float32) {
	c.zoom = common.Clamp(c.zoom-yOffset, minZoom, maxZoom)
}

func (c *cameraImpl) SetPosition(position mgl32.Vec3) {
	c.position = position
}

func (c *cameraImpl) SetWorldUp(worldUp mgl32.Vec3) {
	c.worldUp = worldUp
	c.updateVectors()
}

func (c *cameraImpl) SetYaw(yaw float32) {
	c.yaw = yaw
	c.updateVectors()
}

func (c *cameraImpl) SetPitch(pitch float32) {
	c.pitch = pitch
	c.updateVectors()
}

func (c *cameraImpl) SetMovementSpeed(speed float32) {
	c.movementSpeed = speed
}

func (c *cameraImpl) SetMouseSensitivity(sensitivity float32) {
	c.mouseSensitivity = sensitivity
}

func (c *cameraImpl) SetZoom(zoom float32) {
	c.zoom = common.Clamp(zoom, minZoom, maxZoom)
}

// updateVectors recomputes the orthonormal basis from the current yaw, pitch,
// and world up. Order matters: right is derived before up since up depends on
// it. Each vector is normalized because front's horizontal component shrinks
// as pitch approaches the poles, which would otherwise slow movement.
func (c *cameraImpl) updateVectors() {
	c.front = common.DirectionFromAngles(c.yaw, c.pitch)
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
