package camera

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-cam/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera defines the capability interface shared by the first-person and orbit cameras.
// A camera owns its position and pitch/yaw orientation and keeps a cached view matrix that is
// recomputed synchronously by every mutator. Consumers should call ViewMatrix once per frame
// rather than holding on to a previous result.
type Camera interface {
	// ViewMatrix returns the current cached view matrix (column-major). No side effects.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: the position
	Position() mgl32.Vec3

	// Pitch returns the pitch angle in degrees.
	//
	// Returns:
	//   - float32: pitch in degrees
	Pitch() float32

	// Yaw returns the yaw angle in degrees.
	//
	// Returns:
	//   - float32: yaw in degrees
	Yaw() float32

	// Basis returns the derived front/right/up vectors as of the last recompute.
	//
	// Returns:
	//   - Basis: the camera frame
	Basis() Basis

	// SetPosition replaces the position and recomputes the view.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetPosition(x, y, z float32)

	// SetRotation replaces both angles and recomputes the view. No wrapping or clamping is applied.
	//
	// Parameters:
	//   - pitch: pitch in degrees
	//   - yaw: yaw in degrees
	SetRotation(pitch, yaw float32)

	// Rotate adds to the current angles and recomputes the view.
	//
	// Parameters:
	//   - deltaPitch: pitch change in degrees
	//   - deltaYaw: yaw change in degrees
	Rotate(deltaPitch, deltaYaw float32)

	// Translate moves the camera by an offset in world space. The orientation is unchanged.
	//
	// Parameters:
	//   - offset: the world-space offset
	Translate(offset mgl32.Vec3)

	// TranslateRelative moves the camera by an offset expressed in camera-local axes
	// (X along Right, Y along Up, Z along Front), converted with the basis current at the time of the call.
	//
	// Parameters:
	//   - offset: the camera-local offset
	TranslateRelative(offset mgl32.Vec3)

	// AddKeyboardListener attaches the keydown/keyup handler pair to the camera's document.
	// Attaching twice does not register duplicate handlers.
	AddKeyboardListener()

	// RemoveKeyboardListener detaches the keyboard handlers, clears held keys and stops continuous motion.
	// Safe to call when nothing is attached.
	RemoveKeyboardListener()

	// AddMouseListener binds pointer-lock mouse look to surface.
	// Attaching to a different surface moves the binding; attaching to the same one is a no-op.
	//
	// Parameters:
	//   - surface: the interactive surface to bind to
	AddMouseListener(surface input.Surface)

	// RemoveMouseListener detaches mouse look. Safe to call when nothing is attached.
	RemoveMouseListener()

	// AddListeners attaches both the keyboard and mouse listeners.
	//
	// Parameters:
	//   - surface: the interactive surface to bind mouse input to
	AddListeners(surface input.Surface)

	// RemoveListeners detaches every listener the camera holds. Call at session teardown.
	RemoveListeners()
}

// Kind selects a camera implementation.
type Kind string

const (
	// KindFirstPerson is the free-fly first-person camera.
	KindFirstPerson Kind = "first_person"
	// KindOrbit is the orbit camera.
	KindOrbit Kind = "orbit"
)

// ParseKind validates a camera kind name.
//
// Parameters:
//   - s: the kind name
//
// Returns:
//   - Kind: the parsed kind
//   - error: error if s names no known kind
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindFirstPerson, KindOrbit:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown camera kind %q", s)
}

// New creates a camera of the given kind.
//
// Parameters:
//   - kind: which camera to build
//   - position: initial world-space position
//   - pitch, yaw: initial angles in degrees
//   - options: functional options applied to the camera
//
// Returns:
//   - Camera: the new camera
//   - error: error if kind is unknown
func New(kind Kind, position mgl32.Vec3, pitch, yaw float32, options ...CameraOption) (Camera, error) {
	switch kind {
	case KindFirstPerson:
		return NewFirstPersonCamera(position, pitch, yaw, options...), nil
	case KindOrbit:
		return NewOrbitCamera(position, pitch, yaw, options...), nil
	}
	return nil, fmt.Errorf("unknown camera kind %q", kind)
}
