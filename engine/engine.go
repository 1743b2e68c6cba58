// Package engine runs a camera session: it wires a camera to a platform's input targets, ticks a
// frame loop that samples the view transform, and tears the wiring down when the session ends.
package engine

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"github.com/Carmen-Shannon/oxy-cam/engine/input"
	"github.com/Carmen-Shannon/oxy-cam/engine/profiler"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// Host is the surface a session binds mouse input to. Keyboard and pointer-move listeners go to
// the document the camera was built with (camera.WithDocument), which may be the host itself.
type Host interface {
	input.Surface
}

// MessagePump is implemented by hosts whose event loop must run on the calling thread.
type MessagePump interface {
	// ProcessMessages blocks running the platform event loop until the host closes or is stopped.
	ProcessMessages()

	// Stop makes ProcessMessages return. Safe to call from any goroutine.
	Stop()
}

// Resizable is implemented by hosts that report surface size changes.
type Resizable interface {
	// SetResizeCallback sets the function called when the surface is resized.
	SetResizeCallback(callback func(width, height int))
}

// FrameCallback receives the view matrix sampled for a frame and the seconds since the previous one.
type FrameCallback func(view mgl32.Mat4, dt float32)

// Session owns the lifetime of a camera's input wiring.
type Session interface {
	// Run attaches the camera's listeners to the host and ticks the frame loop until ctx is
	// cancelled, the host's message loop ends, or Quit is called. Listeners are detached before
	// Run returns. A session runs at most once.
	//
	// Parameters:
	//   - ctx: context controlling the session lifetime
	//
	// Returns:
	//   - error: error if the session is misconfigured or already ran
	Run(ctx context.Context) error

	// Quit ends the session. Safe to call multiple times and from any goroutine.
	Quit()

	// Camera returns the session camera.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Lens returns the session lens. Its aspect ratio follows the host surface.
	//
	// Returns:
	//   - *camera.Lens: the lens
	Lens() *camera.Lens

	// SetTickRate sets the frame rate. Takes effect immediately if the session is running.
	//
	// Parameters:
	//   - fps: target frames per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)
}

// session implements the Session interface.
type session struct {
	host   Host
	camera camera.Camera
	lens   *camera.Lens
	logger zerolog.Logger

	tickRateChannel chan time.Duration
	tickRate        time.Duration
	frameCallback   FrameCallback

	profiler         *profiler.Profiler
	profilingEnabled bool

	started     atomic.Bool
	running     atomic.Bool
	wg          sync.WaitGroup
	quitChannel chan struct{}
	quitOnce    sync.Once
}

var _ Session = &session{}

// NewSession creates a Session. A host and a camera must be supplied before Run.
//
// Parameters:
//   - options: functional options for session configuration
//
// Returns:
//   - Session: the new session
func NewSession(options ...SessionOption) Session {
	s := &session{
		tickRateChannel: make(chan time.Duration, 1),
		tickRate:        time.Second / 60,
		quitChannel:     make(chan struct{}),
		logger:          zerolog.Nop(),
	}
	for _, opt := range options {
		opt(s)
	}
	if s.lens == nil {
		s.lens = camera.NewLens()
	}
	if s.profiler == nil {
		s.profiler = profiler.NewProfiler(profiler.WithLogger(s.logger))
	}
	return s
}

func (s *session) Camera() camera.Camera {
	return s.camera
}

func (s *session) Lens() *camera.Lens {
	return s.lens
}

func (s *session) Run(ctx context.Context) error {
	if s.host == nil {
		return errors.New("session has no host")
	}
	if s.camera == nil {
		return errors.New("session has no camera")
	}
	if !s.started.CompareAndSwap(false, true) {
		return errors.New("session already ran")
	}

	s.lens.SetViewport(s.host.ClientWidth(), s.host.ClientHeight())
	if r, ok := s.host.(Resizable); ok {
		r.SetResizeCallback(s.lens.SetViewport)
	}

	s.camera.AddListeners(s.host)
	defer s.camera.RemoveListeners()
	s.running.Store(true)
	defer s.running.Store(false)
	s.logger.Info().Msg("session started")

	s.wg.Add(2)
	go s.handleTick()
	go s.handleContext(ctx)

	if pump, ok := s.host.(MessagePump); ok {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			<-s.quitChannel
			pump.Stop()
		}()
		pump.ProcessMessages()
		s.signalQuit()
	} else {
		<-s.quitChannel
	}

	s.wg.Wait()
	s.logger.Info().Msg("session stopped")
	return nil
}

func (s *session) Quit() {
	s.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (s *session) signalQuit() {
	s.quitOnce.Do(func() {
		close(s.quitChannel)
	})
}

// handleContext ends the session when ctx is cancelled.
func (s *session) handleContext(ctx context.Context) {
	defer s.wg.Done()
	select {
	case <-ctx.Done():
		s.signalQuit()
	case <-s.quitChannel:
	}
}

// handleTick runs the fixed-rate frame loop. The view matrix is sampled once per frame, never
// cached across frames, so every frame sees the camera state at the moment it runs.
func (s *session) handleTick() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.tickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-s.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			view := s.camera.ViewMatrix()
			if s.frameCallback != nil {
				s.frameCallback(view, dt)
			}

			if s.profilingEnabled {
				s.profiler.Tick()
			}
		case newRate := <-s.tickRateChannel:
			ticker.Reset(newRate)
			s.tickRate = newRate
		}
	}
}

func (s *session) SetTickRate(fps float64) {
	newRate := tickInterval(fps)

	if !s.running.Load() {
		s.tickRate = newRate
		return
	}
	// Replace any pending update so the latest rate wins.
	select {
	case s.tickRateChannel <- newRate:
	default:
		select {
		case <-s.tickRateChannel:
		default:
		}
		s.tickRateChannel <- newRate
	}
}

// tickInterval converts a frame rate to a ticker period. Non-positive rates fall back to 60Hz.
func tickInterval(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}
