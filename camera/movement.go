package camera

// Movement identifies a camera-relative movement direction. It abstracts
// keyboard input away from any windowing system: the input layer maps its own
// key events to one of these values before calling ProcessKeyboard.
type Movement int

const (
	// MovementForward moves along the camera's front vector.
	MovementForward Movement = iota

	// MovementBackward moves against the camera's front vector.
	MovementBackward

	// MovementLeft strafes against the camera's right vector.
	MovementLeft

	// MovementRight strafes along the camera's right vector.
	MovementRight
)

// String returns a human-readable name for the movement direction.
//
// Returns:
//   - string: the direction name, or "unknown" for out-of-range values
func (m Movement) String() string {
	switch m {
	case MovementForward:
		return "forward"
	case MovementBackward:
		return "backward"
	case MovementLeft:
		return "left"
	case MovementRight:
		return "right"
	default:
		return "unknown"
	}
}
