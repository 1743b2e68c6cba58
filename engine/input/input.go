// Package input models the event targets a camera listens on: a process-wide document that
// receives keyboard and pointer-move events, and interactive surfaces (a canvas or a native window)
// that receive mouse-down and wheel events and scope pointer lock.
package input

// EventKind identifies the kind of an input event.
type EventKind int

const (
	// KeyDown is fired when a key is pressed or auto-repeats.
	KeyDown EventKind = iota
	// KeyUp is fired when a key is released.
	KeyUp
	// MouseDown is fired when a mouse button is pressed over a surface.
	MouseDown
	// MouseMove is fired when the pointer moves.
	MouseMove
	// Wheel is fired when the scroll wheel moves over a surface.
	Wheel
)

func (k EventKind) String() string {
	switch k {
	case KeyDown:
		return "keydown"
	case KeyUp:
		return "keyup"
	case MouseDown:
		return "mousedown"
	case MouseMove:
		return "mousemove"
	case Wheel:
		return "wheel"
	}
	return "unknown"
}

// Event is a single input event. Only the fields relevant to Kind are populated.
type Event struct {
	// Kind is the event kind.
	Kind EventKind

	// Key is the key name for KeyDown/KeyUp (e.g. "w", "W", " ").
	Key string

	// Button is the mouse button index for MouseDown (0 = primary).
	Button int

	// MovementX and MovementY are the pointer deltas in pixels since the previous MouseMove.
	MovementX, MovementY float64

	// DeltaY is the vertical wheel delta. Positive values scroll down (away from the user).
	DeltaY float64
}

// Listener handles a dispatched event.
type Listener func(Event)

// ListenerID identifies one registration on a Target.
// Removal is by ID, so the owner of a registration must keep the ID it was given.
type ListenerID uint64

// Target is anything listeners can be registered on.
type Target interface {
	// AddListener registers l for events of the given kind.
	//
	// Parameters:
	//   - kind: the event kind to listen for
	//   - l: the listener to invoke
	//
	// Returns:
	//   - ListenerID: the registration identity, required for removal
	AddListener(kind EventKind, l Listener) ListenerID

	// RemoveListener removes a registration. Removing an unknown ID is a no-op.
	//
	// Parameters:
	//   - kind: the event kind the listener was registered for
	//   - id: the registration identity returned by AddListener
	RemoveListener(kind EventKind, id ListenerID)
}

// Document is the process-wide event target (the page document, or a native window acting as one).
// Keyboard and pointer-move events are delivered here.
type Document interface {
	Target
}

// Surface is an interactive element a camera binds mouse input to.
type Surface interface {
	Target

	// ClientWidth returns the surface width in pixels.
	ClientWidth() int

	// ClientHeight returns the surface height in pixels.
	ClientHeight() int

	// HasPointerLock reports whether pointer lock is currently held by this surface.
	HasPointerLock() bool

	// RequestPointerLock asks the platform to lock the pointer to this surface.
	RequestPointerLock()

	// ExitPointerLock releases pointer lock.
	ExitPointerLock()
}
