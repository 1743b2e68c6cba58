package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-cam/engine/input"
	"github.com/Carmen-Shannon/oxy-cam/engine/timer"
	"github.com/go-gl/mathgl/mgl32"
)

// firstPersonCamera is the free-fly camera. The orbit camera wraps it and swaps the look hook.
type firstPersonCamera struct {
	mu *sync.Mutex

	position mgl32.Vec3
	pitch    float32
	yaw      float32

	basis Basis
	view  mgl32.Mat4

	settings

	// look applies a mouse-look rotation. Caller must hold the mutex.
	look func(deltaPitch, deltaYaw float32)

	handlers handlers
	keyboard keyboardBinding
	motion   motionState
	mouse    mouseBinding
}

// handlers are the bound event handlers, created once per camera so every registration the
// camera makes refers to the same handler instance.
type handlers struct {
	keyDown   input.Listener
	keyUp     input.Listener
	mouseDown input.Listener
	mouseMove input.Listener
	wheel     input.Listener
}

var _ Camera = &firstPersonCamera{}

// NewFirstPersonCamera creates a first-person camera. The basis and view matrix are computed
// before it returns.
//
// Parameters:
//   - position: initial world-space position
//   - pitch: initial pitch in degrees
//   - yaw: initial yaw in degrees
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the new camera
func NewFirstPersonCamera(position mgl32.Vec3, pitch, yaw float32, options ...CameraOption) Camera {
	return newFirstPersonCamera(position, pitch, yaw, options...)
}

func newFirstPersonCamera(position mgl32.Vec3, pitch, yaw float32, options ...CameraOption) *firstPersonCamera {
	c := &firstPersonCamera{
		mu:       &sync.Mutex{},
		position: position,
		pitch:    pitch,
		yaw:      yaw,
		settings: defaultSettings(),
	}
	for _, option := range options {
		option(&c.settings)
	}
	if c.scheduler == nil {
		c.scheduler = timer.NewTickerScheduler(nil)
	}
	if c.keys == nil {
		c.keys = DefaultKeyMap()
	}
	c.look = c.rotateLocked
	c.handlers = handlers{
		keyDown:   c.handleKeyDown,
		keyUp:     c.handleKeyUp,
		mouseDown: c.handleMouseDown,
		mouseMove: c.handleMouseMove,
	}
	c.updateView()
	return c
}

func (c *firstPersonCamera) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

func (c *firstPersonCamera) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *firstPersonCamera) Pitch() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pitch
}

func (c *firstPersonCamera) Yaw() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.yaw
}

func (c *firstPersonCamera) Basis() Basis {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.basis
}

func (c *firstPersonCamera) SetPosition(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = mgl32.Vec3{x, y, z}
	c.updateView()
}

func (c *firstPersonCamera) SetRotation(pitch, yaw float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pitch = pitch
	c.yaw = yaw
	c.updateView()
}

func (c *firstPersonCamera) Rotate(deltaPitch, deltaYaw float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rotateLocked(deltaPitch, deltaYaw)
}

func (c *firstPersonCamera) Translate(offset mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = c.position.Add(offset)
	c.updateView()
}

func (c *firstPersonCamera) TranslateRelative(offset mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.translateRelativeLocked(offset)
}

func (c *firstPersonCamera) AddListeners(surface input.Surface) {
	c.AddKeyboardListener()
	c.AddMouseListener(surface)
}

func (c *firstPersonCamera) RemoveListeners() {
	c.RemoveKeyboardListener()
	c.RemoveMouseListener()
}

// rotateLocked turns the look direction in place.
// Caller must hold the mutex.
func (c *firstPersonCamera) rotateLocked(deltaPitch, deltaYaw float32) {
	c.pitch += deltaPitch
	c.yaw += deltaYaw
	c.updateView()
}

// translateRelativeLocked converts offset with the current basis before moving, so the motion
// follows the orientation at the moment of the move.
// Caller must hold the mutex.
func (c *firstPersonCamera) translateRelativeLocked(offset mgl32.Vec3) {
	c.position = c.position.Add(c.basis.ToWorld(offset))
	c.updateView()
}

// updateView recomputes the basis from pitch/yaw and the view matrix from the position.
// Caller must hold the mutex.
func (c *firstPersonCamera) updateView() {
	c.basis = DeriveBasis(c.pitch, c.yaw)
	c.view = c.basis.View(c.position)
}
