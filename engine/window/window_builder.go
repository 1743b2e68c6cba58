package window

import (
	"github.com/Carmen-Shannon/oxy-cam/engine/input"
	"github.com/rs/zerolog"
)

// WindowBuilderOption is a functional option for configuring an engineWindow.
// Use the With* functions to create options.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithSize sets the initial window size.
//
// Parameters:
//   - width: initial width in pixels
//   - height: initial height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		if width > 0 {
			w.width = width
		}
		if height > 0 {
			w.height = height
		}
	}
}

// WithQueue routes every input dispatch through q, so listeners run serialized on the queue
// goroutine instead of the main thread.
//
// Parameters:
//   - q: the event queue
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithQueue(q *input.Queue) WindowBuilderOption {
	return func(w *engineWindow) {
		w.queue = q
	}
}

// WithLogger sets the window's logger. Defaults to a no-op logger.
//
// Parameters:
//   - logger: the logger
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithLogger(logger zerolog.Logger) WindowBuilderOption {
	return func(w *engineWindow) {
		w.logger = logger
	}
}

// WithSizeLimits bounds the window size during resize. The limits are applied when the window opens.
//
// Parameters:
//   - minWidth, minHeight: minimum client size in pixels
//   - maxWidth, maxHeight: maximum client size in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSizeLimits(minWidth, minHeight, maxWidth, maxHeight int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.minWidth = minWidth
		w.minHeight = minHeight
		w.maxWidth = maxWidth
		w.maxHeight = maxHeight
	}
}
