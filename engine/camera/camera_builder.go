package camera

import (
	"time"

	"github.com/Carmen-Shannon/oxy-cam/engine/input"
	"github.com/Carmen-Shannon/oxy-cam/engine/timer"
	"github.com/rs/zerolog"
)

const (
	// DefaultKeyboardTranslateRate is the keyboard fly speed in world units per second.
	DefaultKeyboardTranslateRate float32 = 10

	// DefaultMouseRotateRate is the look rotation, in degrees, for a pointer sweep across the full surface.
	DefaultMouseRotateRate float32 = 5000 * 3.141592653589793 / 180

	// DefaultZoomRate scales wheel deltas into orbit zoom distance.
	DefaultZoomRate float32 = 0.025

	// DefaultRepeatInterval is the keyboard motion tick period.
	DefaultRepeatInterval = 4 * time.Millisecond
)

// settings holds the collaborators and tuning shared by both camera kinds.
type settings struct {
	document  input.Document
	scheduler timer.Scheduler
	now       func() time.Time
	logger    zerolog.Logger

	keys                  KeyMap
	keyboardTranslateRate float32
	mouseRotateRate       float32
	zoomRate              float32
	repeatInterval        time.Duration
}

func defaultSettings() settings {
	return settings{
		now:                   time.Now,
		logger:                zerolog.Nop(),
		keys:                  DefaultKeyMap(),
		keyboardTranslateRate: DefaultKeyboardTranslateRate,
		mouseRotateRate:       DefaultMouseRotateRate,
		zoomRate:              DefaultZoomRate,
		repeatInterval:        DefaultRepeatInterval,
	}
}

// CameraOption is a functional option for configuring first-person and orbit cameras.
type CameraOption func(*settings)

// WithDocument sets the process-wide document that keyboard and pointer-move listeners attach to.
//
// Parameters:
//   - doc: the document
//
// Returns:
//   - CameraOption: functional option to set the document
func WithDocument(doc input.Document) CameraOption {
	return func(s *settings) {
		s.document = doc
	}
}

// WithScheduler sets the scheduler that drives keyboard motion ticks.
// Defaults to a time.Ticker scheduler running ticks on its own goroutine.
//
// Parameters:
//   - scheduler: the scheduler
//
// Returns:
//   - CameraOption: functional option to set the scheduler
func WithScheduler(scheduler timer.Scheduler) CameraOption {
	return func(s *settings) {
		s.scheduler = scheduler
	}
}

// WithClock sets the wall clock used to measure elapsed time between motion ticks.
//
// Parameters:
//   - now: function returning the current time
//
// Returns:
//   - CameraOption: functional option to set the clock
func WithClock(now func() time.Time) CameraOption {
	return func(s *settings) {
		s.now = now
	}
}

// WithLogger sets the camera's logger. Defaults to a no-op logger.
//
// Parameters:
//   - logger: the logger
//
// Returns:
//   - CameraOption: functional option to set the logger
func WithLogger(logger zerolog.Logger) CameraOption {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithKeyMap replaces the movement key bindings.
//
// Parameters:
//   - keys: the key map
//
// Returns:
//   - CameraOption: functional option to set the key map
func WithKeyMap(keys KeyMap) CameraOption {
	return func(s *settings) {
		s.keys = keys
	}
}

// WithKeyboardTranslateRate sets the keyboard fly speed.
//
// Parameters:
//   - rate: world units per second while a movement key is held
//
// Returns:
//   - CameraOption: functional option to set the rate
func WithKeyboardTranslateRate(rate float32) CameraOption {
	return func(s *settings) {
		s.keyboardTranslateRate = rate
	}
}

// WithMouseRotateRate sets the mouse-look sensitivity.
//
// Parameters:
//   - rate: degrees of rotation for a pointer sweep across the full surface
//
// Returns:
//   - CameraOption: functional option to set the rate
func WithMouseRotateRate(rate float32) CameraOption {
	return func(s *settings) {
		s.mouseRotateRate = rate
	}
}

// WithZoomRate sets the orbit zoom scale. Ignored by the first-person camera.
//
// Parameters:
//   - rate: distance moved per unit of wheel delta
//
// Returns:
//   - CameraOption: functional option to set the zoom rate
func WithZoomRate(rate float32) CameraOption {
	return func(s *settings) {
		s.zoomRate = rate
	}
}

// WithRepeatInterval sets the keyboard motion tick period.
//
// Parameters:
//   - interval: the tick period
//
// Returns:
//   - CameraOption: functional option to set the interval
func WithRepeatInterval(interval time.Duration) CameraOption {
	return func(s *settings) {
		s.repeatInterval = interval
	}
}
