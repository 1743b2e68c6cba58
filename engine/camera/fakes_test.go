package camera

import (
	"sync"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-cam/engine/input"
	"github.com/Carmen-Shannon/oxy-cam/engine/timer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-5

type fakeDocument struct {
	*input.Dispatcher
}

func newFakeDocument() *fakeDocument {
	return &fakeDocument{Dispatcher: input.NewDispatcher()}
}

type fakeSurface struct {
	*input.Dispatcher
	width, height int
	locked        bool
}

func newFakeSurface(width, height int) *fakeSurface {
	return &fakeSurface{Dispatcher: input.NewDispatcher(), width: width, height: height}
}

func (s *fakeSurface) ClientWidth() int     { return s.width }
func (s *fakeSurface) ClientHeight() int    { return s.height }
func (s *fakeSurface) HasPointerLock() bool { return s.locked }
func (s *fakeSurface) RequestPointerLock()  { s.locked = true }
func (s *fakeSurface) ExitPointerLock()     { s.locked = false }

// manualScheduler records tasks; tests fire them explicitly.
type manualScheduler struct {
	mu    sync.Mutex
	tasks []*manualTask
}

type manualTask struct {
	interval  time.Duration
	fn        func()
	cancelled bool
}

func (t *manualTask) Cancel() { t.cancelled = true }

func (s *manualScheduler) Every(interval time.Duration, fn func()) timer.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTask{interval: interval, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// active returns the tasks not yet cancelled.
func (s *manualScheduler) active() []*manualTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*manualTask
	for _, t := range s.tasks {
		if !t.cancelled {
			out = append(out, t)
		}
	}
	return out
}

// tick fires every live task once.
func (s *manualScheduler) tick() {
	for _, t := range s.active() {
		t.fn()
	}
}

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type harness struct {
	doc     *fakeDocument
	surface *fakeSurface
	sched   *manualScheduler
	clock   *fakeClock
}

func newHarness() *harness {
	return &harness{
		doc:     newFakeDocument(),
		surface: newFakeSurface(800, 600),
		sched:   &manualScheduler{},
		clock:   newFakeClock(),
	}
}

func (h *harness) options(extra ...CameraOption) []CameraOption {
	return append([]CameraOption{
		WithDocument(h.doc),
		WithScheduler(h.sched),
		WithClock(h.clock.Now),
	}, extra...)
}

func (h *harness) press(key string) {
	h.doc.Dispatch(input.Event{Kind: input.KeyDown, Key: key})
}

func (h *harness) release(key string) {
	h.doc.Dispatch(input.Event{Kind: input.KeyUp, Key: key})
}

// step advances the clock and fires the repeat task once.
func (h *harness) step(d time.Duration) {
	h.clock.Advance(d)
	h.sched.tick()
}

// assertVec compares component-wise with an absolute tolerance.
func assertVec(t *testing.T, want, got mgl32.Vec3, delta float64) {
	t.Helper()
	for i := range 3 {
		assert.InDeltaf(t, want[i], got[i], delta, "component %d of %v, want %v", i, got, want)
	}
}
