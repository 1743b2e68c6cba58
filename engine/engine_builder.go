package engine

import (
	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"github.com/Carmen-Shannon/oxy-cam/engine/profiler"
	"github.com/rs/zerolog"
)

// SessionOption is a functional option for configuring a Session.
// Use the With* functions to create options that are applied directly to the session instance.
type SessionOption func(*session)

// WithHost sets the platform the session attaches the camera to.
//
// Parameters:
//   - h: the host (native window or browser page)
//
// Returns:
//   - SessionOption: option function to apply
func WithHost(h Host) SessionOption {
	return func(s *session) {
		s.host = h
	}
}

// WithCamera sets the camera driven by the session.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - SessionOption: option function to apply
func WithCamera(c camera.Camera) SessionOption {
	return func(s *session) {
		s.camera = c
	}
}

// WithLens sets the lens whose aspect ratio follows the host surface. Defaults to camera.NewLens().
//
// Parameters:
//   - l: the lens
//
// Returns:
//   - SessionOption: option function to apply
func WithLens(l *camera.Lens) SessionOption {
	return func(s *session) {
		s.lens = l
	}
}

// WithTickRate sets the frame rate in frames per second.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target frames per second (default 60)
//
// Returns:
//   - SessionOption: option function to apply
func WithTickRate(fps float64) SessionOption {
	return func(s *session) {
		s.tickRate = tickInterval(fps)
	}
}

// WithFrameCallback sets the function called each frame with the freshly sampled view matrix.
//
// Parameters:
//   - callback: function receiving the view matrix and the delta time in seconds
//
// Returns:
//   - SessionOption: option function to apply
func WithFrameCallback(callback FrameCallback) SessionOption {
	return func(s *session) {
		s.frameCallback = callback
	}
}

// WithLogger sets the session logger. The default profiler also writes to it.
//
// Parameters:
//   - logger: the logger
//
// Returns:
//   - SessionOption: option function to apply
func WithLogger(logger zerolog.Logger) SessionOption {
	return func(s *session) {
		s.logger = logger
	}
}

// WithProfiling enables or disables frame statistics.
//
// Parameters:
//   - enabled: if true, frame statistics are logged once per second
//
// Returns:
//   - SessionOption: option function to apply
func WithProfiling(enabled bool) SessionOption {
	return func(s *session) {
		s.profilingEnabled = enabled
	}
}

// WithProfiler replaces the default profiler.
//
// Parameters:
//   - p: the profiler
//
// Returns:
//   - SessionOption: option function to apply
func WithProfiler(p *profiler.Profiler) SessionOption {
	return func(s *session) {
		s.profiler = p
	}
}
