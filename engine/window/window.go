package window

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/Carmen-Shannon/oxy-cam/engine/input"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"
)

// Window provides a native window that doubles as the input document and the camera surface.
// Keyboard, cursor, button and scroll callbacks are translated into input events and dispatched to
// listeners registered through the input.Target methods.
type Window interface {
	input.Document
	input.Surface

	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the window is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Stop asks the message loop to return. Safe to call from any goroutine.
	Stop()

	// Close closes the window and releases platform resources. Must be called on the main thread.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop on the calling (main) thread.
	// Blocks until the window is closed or stopped. Calls the update callback each iteration.
	ProcessMessages()

	// Width returns the current window client area width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current window client area height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, pointer-lock state, and event callbacks.
type engineWindow struct {
	*input.Dispatcher

	mu *sync.Mutex

	// title is the window title displayed in the title bar.
	title string

	// maxWidth, maxHeight, minWidth and minHeight bound the window during resize.
	maxWidth  int
	maxHeight int
	minWidth  int
	minHeight int

	// width and height are the current client area size in pixels.
	width  int
	height int

	// pointerLocked is the requested pointer-lock state; cursorDirty marks that the cursor mode
	// has not yet been applied on the main thread.
	pointerLocked bool
	cursorDirty   bool

	// lastX and lastY are the previous cursor position, valid when hasLast is set.
	lastX, lastY float64
	hasLast      bool

	stopped atomic.Bool

	// queue, when set, receives every dispatch so listeners run on the queue goroutine.
	queue  *input.Queue
	logger zerolog.Logger

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// onUpdate is called each iteration of the message loop (if set).
	onUpdate func()

	// onResize is called when the window is resized.
	onResize func(width, height int)
}

var _ Window = &engineWindow{}

// NewWindow creates and opens a new Window with the specified options.
// Applies default values first, then each option in order. Must be called on the main thread.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the opened window
//   - error: error if GLFW initialization or window creation fails
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := newEngineWindow(options...)
	if err := newPlatformWindow(w); err != nil {
		return nil, err
	}
	w.logger.Debug().Str("title", w.title).Int("width", w.width).Int("height", w.height).Msg("window opened")
	return w, nil
}

func newEngineWindow(options ...WindowBuilderOption) *engineWindow {
	w := &engineWindow{
		Dispatcher: input.NewDispatcher(),
		mu:         &sync.Mutex{},
		title:      "oxy-cam",
		maxWidth:   3840,
		maxHeight:  2160,
		minWidth:   320,
		minHeight:  200,
		width:      1280,
		height:     720,
		logger:     zerolog.Nop(),
	}
	for _, opt := range options {
		opt(w)
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) IsRunning() bool {
	return !w.stopped.Load() && platformIsRunningCheck(w)
}

func (w *engineWindow) Stop() {
	w.stopped.Store(true)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width
}

func (w *engineWindow) Height() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.height
}

func (w *engineWindow) ClientWidth() int {
	return w.Width()
}

func (w *engineWindow) ClientHeight() int {
	return w.Height()
}

func (w *engineWindow) HasPointerLock() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pointerLocked
}

func (w *engineWindow) RequestPointerLock() {
	w.setPointerLock(true)
}

func (w *engineWindow) ExitPointerLock() {
	w.setPointerLock(false)
}

// setPointerLock records the requested lock state. The cursor mode itself is switched on the main
// thread by the message loop, since listeners may run on another goroutine.
func (w *engineWindow) setPointerLock(locked bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pointerLocked == locked {
		return
	}
	w.pointerLocked = locked
	w.cursorDirty = true
	w.hasLast = false
	w.logger.Debug().Bool("locked", locked).Msg("pointer lock changed")
}

// takeCursorMode returns the pending cursor mode, if the lock state changed since the last call.
func (w *engineWindow) takeCursorMode() (int, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.cursorDirty {
		return 0, false
	}
	w.cursorDirty = false
	if w.pointerLocked {
		return glfw.CursorDisabled, true
	}
	return glfw.CursorNormal, true
}

// dispatch delivers e to listeners, through the queue when one is configured.
func (w *engineWindow) dispatch(e input.Event) {
	if w.queue == nil {
		w.Dispatch(e)
		return
	}
	if !w.queue.Post(func() { w.Dispatch(e) }) {
		w.logger.Debug().Stringer("kind", e.Kind).Msg("event dropped: queue closed")
	}
}

// handleKey translates a GLFW key action. Escape closes the window and is not dispatched.
// Returns false when the window should close.
func (w *engineWindow) handleKey(key glfw.Key, action glfw.Action) bool {
	if key == glfw.KeyEscape {
		return action != glfw.Press
	}
	name := common.KeyName(uint32(key))
	if name == "" {
		return true
	}
	switch action {
	case glfw.Press, glfw.Repeat:
		w.dispatch(input.Event{Kind: input.KeyDown, Key: name})
	case glfw.Release:
		w.dispatch(input.Event{Kind: input.KeyUp, Key: name})
	}
	return true
}

// handleMouseButton dispatches MouseDown for left-button presses.
func (w *engineWindow) handleMouseButton(button glfw.MouseButton, action glfw.Action) {
	if button != glfw.MouseButtonLeft || action != glfw.Press {
		return
	}
	w.dispatch(input.Event{Kind: input.MouseDown, Button: 0})
}

// handleCursorPos converts absolute cursor positions into movement deltas.
// Moves are only dispatched while the pointer is locked.
func (w *engineWindow) handleCursorPos(x, y float64) {
	w.mu.Lock()
	dx, dy := x-w.lastX, y-w.lastY
	first := !w.hasLast
	w.lastX, w.lastY, w.hasLast = x, y, true
	locked := w.pointerLocked
	w.mu.Unlock()

	if first || !locked || (dx == 0 && dy == 0) {
		return
	}
	w.dispatch(input.Event{Kind: input.MouseMove, MovementX: dx, MovementY: dy})
}

// handleScroll dispatches Wheel events with the browser sign convention: positive scrolls down.
func (w *engineWindow) handleScroll(yoff float64) {
	if yoff == 0 {
		return
	}
	w.dispatch(input.Event{Kind: input.Wheel, DeltaY: -yoff * 100})
}

// handleResize records the new client size and notifies the resize callback.
func (w *engineWindow) handleResize(width, height int) {
	w.mu.Lock()
	w.width = width
	w.height = height
	w.mu.Unlock()
	if w.onResize != nil {
		w.onResize(width, height)
	}
}
