package camera

import (
	"github.com/Carmen-Shannon/oxy-cam/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera is a Camera whose rotation swings the eye around a pivot at a fixed radius,
// and whose wheel input zooms along the look direction.
type OrbitCamera interface {
	Camera

	// Origin returns the pivot point as of the last rotation. It starts at the world origin.
	//
	// Returns:
	//   - mgl32.Vec3: the pivot
	Origin() mgl32.Vec3

	// Distance returns the orbit radius. It changes only when the camera zooms.
	//
	// Returns:
	//   - float32: the radius
	Distance() float32

	// Zoom moves the camera along its look direction by -delta*zoomRate and re-measures the radius.
	// Positive deltas move away from the pivot the camera is looking at. Pitch and yaw are unchanged.
	//
	// Parameters:
	//   - delta: the wheel delta
	Zoom(delta float32)
}

// orbitCamera wraps the first-person camera, overriding rotation and adding wheel zoom.
type orbitCamera struct {
	*firstPersonCamera

	origin   mgl32.Vec3
	distance float32

	wheelSurface input.Surface
	wheel        input.ListenerID
}

var _ OrbitCamera = &orbitCamera{}

// NewOrbitCamera creates an orbit camera. The pivot starts at the world origin and the radius is
// the initial distance from it.
//
// Parameters:
//   - position: initial world-space position
//   - pitch: initial pitch in degrees
//   - yaw: initial yaw in degrees
//   - options: functional options to configure the camera
//
// Returns:
//   - OrbitCamera: the new camera
func NewOrbitCamera(position mgl32.Vec3, pitch, yaw float32, options ...CameraOption) OrbitCamera {
	o := &orbitCamera{
		firstPersonCamera: newFirstPersonCamera(position, pitch, yaw, options...),
	}
	o.distance = o.position.Sub(o.origin).Len()
	o.look = o.orbitLocked
	o.handlers.wheel = o.handleWheel
	return o
}

func (o *orbitCamera) Origin() mgl32.Vec3 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.origin
}

func (o *orbitCamera) Distance() float32 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.distance
}

func (o *orbitCamera) Rotate(deltaPitch, deltaYaw float32) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.orbitLocked(deltaPitch, deltaYaw)
}

func (o *orbitCamera) Zoom(delta float32) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.zoomLocked(delta)
}

func (o *orbitCamera) AddMouseListener(surface input.Surface) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if surface == nil || o.mouse.surface == surface {
		return
	}
	o.removeWheelLocked()
	o.addMouseListenerLocked(surface)
	o.wheelSurface = surface
	o.wheel = surface.AddListener(input.Wheel, o.handlers.wheel)
}

func (o *orbitCamera) RemoveMouseListener() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.removeWheelLocked()
	o.removeMouseListenerLocked()
}

func (o *orbitCamera) AddListeners(surface input.Surface) {
	o.AddKeyboardListener()
	o.AddMouseListener(surface)
}

func (o *orbitCamera) RemoveListeners() {
	o.RemoveKeyboardListener()
	o.RemoveMouseListener()
}

// removeWheelLocked drops the wheel registration if present.
// Caller must hold the mutex.
func (o *orbitCamera) removeWheelLocked() {
	if o.wheelSurface == nil {
		return
	}
	o.wheelSurface.RemoveListener(input.Wheel, o.wheel)
	o.wheelSurface = nil
	o.wheel = 0
}

// orbitLocked re-anchors the pivot at the point currently looked at, applies the angle change,
// then places the eye back along the new look direction at the same radius.
// Caller must hold the mutex.
func (o *orbitCamera) orbitLocked(deltaPitch, deltaYaw float32) {
	o.origin = o.position.Add(o.basis.Front.Mul(o.distance))

	o.pitch += deltaPitch
	o.yaw += deltaYaw

	originFront := DeriveBasis(o.pitch, o.yaw).Front.Mul(-1)
	o.position = o.origin.Add(originFront.Mul(o.distance))
	o.updateView()
}

// zoomLocked dollies along the current front axis.
// Caller must hold the mutex.
func (o *orbitCamera) zoomLocked(delta float32) {
	velocity := delta * o.zoomRate
	o.position = o.position.Add(o.basis.Front.Mul(-velocity))
	o.distance = o.position.Sub(o.origin).Len()
	o.updateView()
}

func (o *orbitCamera) handleWheel(e input.Event) {
	if e.DeltaY == 0 {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.wheelSurface == nil {
		return
	}
	o.zoomLocked(float32(e.DeltaY))
}
