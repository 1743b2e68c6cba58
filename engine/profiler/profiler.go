// Package profiler reports session frame statistics.
package profiler

import (
	"runtime"
	"time"

	"github.com/rs/zerolog"
)

// Profiler tracks frame rate and memory statistics for performance monitoring.
// Emits one Info event per update interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	logger zerolog.Logger
	now    func() time.Time
}

// NewProfiler creates a new Profiler. The update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		logger:         zerolog.Nop(),
		now:            time.Now,
	}
	for _, option := range options {
		option(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per frame.
// Logs FPS, heap usage, allocation rate and GC pauses when the update interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval || elapsed <= 0 {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	gcCount := p.memStats.NumGC
	var lastPause, maxPause time.Duration
	if gcCount > 0 {
		// PauseNs is a circular buffer of the last 256 pauses.
		lastPause = time.Duration(p.memStats.PauseNs[(gcCount-1)%256])
		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			maxPause = max(maxPause, time.Duration(p.memStats.PauseNs[i%256]))
		}
	}

	p.logger.Info().
		Float64("fps", fps).
		Float64("heap_mb", float64(p.memStats.Alloc)/1024/1024).
		Float64("alloc_rate_mb_s", allocRateMB).
		Uint32("gc", gcCount).
		Dur("gc_last_pause", lastPause).
		Dur("gc_max_pause", maxPause).
		Float64("sys_mb", float64(p.memStats.Sys)/1024/1024).
		Msg("frame stats")

	p.frameCount = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithLogger sets where frame statistics are written. Defaults to a no-op logger.
//
// Parameters:
//   - logger: the logger
//
// Returns:
//   - ProfilerOption: option function to apply
func WithLogger(logger zerolog.Logger) ProfilerOption {
	return func(p *Profiler) {
		p.logger = logger
	}
}

// WithInterval sets how often statistics are reported.
//
// Parameters:
//   - interval: the reporting period
//
// Returns:
//   - ProfilerOption: option function to apply
func WithInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		p.updateInterval = interval
	}
}

// WithClock sets the clock used to measure elapsed time.
//
// Parameters:
//   - now: function returning the current time
//
// Returns:
//   - ProfilerOption: option function to apply
func WithClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		p.now = now
	}
}
