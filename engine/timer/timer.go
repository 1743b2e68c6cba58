// Package timer provides cancellable periodic tasks, the building block for input-driven
// continuous motion.
package timer

import (
	"sync"
	"sync/atomic"
	"time"
)

// Task is a running periodic task.
type Task interface {
	// Cancel stops the task. No invocation starts after Cancel returns; one already running is not
	// waited for. Safe to call more than once, including from inside the task's own callback.
	Cancel()
}

// Scheduler starts periodic tasks.
type Scheduler interface {
	// Every runs fn every interval until the returned Task is cancelled.
	//
	// Parameters:
	//   - interval: the period between invocations
	//   - fn: the callback to run
	//
	// Returns:
	//   - Task: handle used to cancel the task
	Every(interval time.Duration, fn func()) Task
}

// Poster hands a callback to an event loop. input.Queue's Post satisfies it.
type Poster func(fn func()) bool

// tickerScheduler runs each task on its own time.Ticker goroutine.
type tickerScheduler struct {
	post Poster
}

var _ Scheduler = &tickerScheduler{}

// NewTickerScheduler creates a Scheduler backed by time.Ticker.
// When post is non-nil every tick is delivered through it, which serializes ticks with whatever
// else runs on that event loop; otherwise ticks run on the ticker goroutine.
//
// Parameters:
//   - post: optional event-loop poster
//
// Returns:
//   - Scheduler: the scheduler
func NewTickerScheduler(post Poster) Scheduler {
	return &tickerScheduler{post: post}
}

func (s *tickerScheduler) Every(interval time.Duration, fn func()) Task {
	if interval <= 0 {
		interval = time.Millisecond
	}
	t := &tickerTask{
		quit: make(chan struct{}),
	}
	go t.run(interval, fn, s.post)
	return t
}

type tickerTask struct {
	cancelled atomic.Bool
	quit      chan struct{}
	once      sync.Once
}

func (t *tickerTask) Cancel() {
	t.once.Do(func() {
		t.cancelled.Store(true)
		close(t.quit)
	})
}

// fire runs fn unless the task was cancelled while the tick was queued.
func (t *tickerTask) fire(fn func()) {
	if t.cancelled.Load() {
		return
	}
	fn()
}

// run is the ticker loop, shaped like the engine tick loop: select on quit or tick.
func (t *tickerTask) run(interval time.Duration, fn func(), post Poster) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	pending := make(chan struct{}, 1)
	for {
		select {
		case <-t.quit:
			return
		case <-ticker.C:
			if post == nil {
				t.fire(fn)
				continue
			}
			// At most one tick is queued at a time; a slow loop coalesces ticks instead of piling them up.
			select {
			case pending <- struct{}{}:
				if !post(func() {
					<-pending
					t.fire(fn)
				}) {
					<-pending
				}
			default:
			}
		}
	}
}
