package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"github.com/Carmen-Shannon/oxy-cam/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHost struct {
	*input.Dispatcher
	mu       sync.Mutex
	locked   bool
	onResize func(width, height int)
}

func newFakeHost() *fakeHost {
	return &fakeHost{Dispatcher: input.NewDispatcher()}
}

func (h *fakeHost) ClientWidth() int  { return 800 }
func (h *fakeHost) ClientHeight() int { return 400 }

func (h *fakeHost) HasPointerLock() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.locked
}

func (h *fakeHost) RequestPointerLock() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.locked = true
}

func (h *fakeHost) ExitPointerLock() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.locked = false
}

func (h *fakeHost) SetResizeCallback(callback func(width, height int)) {
	h.onResize = callback
}

// pumpHost runs a message loop until stopped, like a native window.
type pumpHost struct {
	*fakeHost
	stop    chan struct{}
	once    sync.Once
	pumping atomic.Bool
}

func newPumpHost() *pumpHost {
	return &pumpHost{fakeHost: newFakeHost(), stop: make(chan struct{})}
}

func (h *pumpHost) ProcessMessages() {
	h.pumping.Store(true)
	<-h.stop
}

func (h *pumpHost) Stop() {
	h.once.Do(func() { close(h.stop) })
}

func runAsync(t *testing.T, s Session, ctx context.Context) <-chan error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	return done
}

func waitDone(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("session did not stop")
	}
}

func TestRunRequiresHostAndCamera(t *testing.T) {
	err := NewSession().Run(context.Background())
	assert.ErrorContains(t, err, "no host")

	err = NewSession(WithHost(newFakeHost())).Run(context.Background())
	assert.ErrorContains(t, err, "no camera")
}

func TestRunAttachesAndDetachesListeners(t *testing.T) {
	host := newFakeHost()
	cam := camera.NewOrbitCamera(mgl32.Vec3{0, 0, 5}, 0, 270, camera.WithDocument(host))

	frames := make(chan mgl32.Mat4, 1)
	s := NewSession(
		WithHost(host),
		WithCamera(cam),
		WithTickRate(200),
		WithFrameCallback(func(view mgl32.Mat4, dt float32) {
			select {
			case frames <- view:
			default:
			}
		}),
	)
	done := runAsync(t, s, context.Background())

	select {
	case view := <-frames:
		assert.Equal(t, cam.ViewMatrix(), view)
	case <-time.After(5 * time.Second):
		t.Fatal("no frame")
	}
	assert.Equal(t, 1, host.Count(input.KeyDown))
	assert.Equal(t, 1, host.Count(input.KeyUp))
	assert.Equal(t, 1, host.Count(input.MouseDown))
	assert.Equal(t, 1, host.Count(input.Wheel))
	assert.InDelta(t, 2, s.Lens().Aspect(), 1e-6)

	s.Quit()
	s.Quit()
	waitDone(t, done)

	assert.Equal(t, 0, host.Count(input.KeyDown))
	assert.Equal(t, 0, host.Count(input.KeyUp))
	assert.Equal(t, 0, host.Count(input.MouseDown))
	assert.Equal(t, 0, host.Count(input.Wheel))

	assert.ErrorContains(t, s.Run(context.Background()), "already ran")
}

func TestKeyboardFollowsCameraDocument(t *testing.T) {
	host := newFakeHost()
	doc := input.NewDispatcher()
	cam := camera.NewFirstPersonCamera(mgl32.Vec3{0, 0, 5}, 0, 270, camera.WithDocument(doc))

	s := NewSession(WithHost(host), WithCamera(cam), WithTickRate(200))
	done := runAsync(t, s, context.Background())

	require.Eventually(t, func() bool { return host.Count(input.MouseDown) == 1 }, 5*time.Second, time.Millisecond)
	assert.Equal(t, 1, doc.Count(input.KeyDown))
	assert.Equal(t, 1, doc.Count(input.KeyUp))
	assert.Equal(t, 0, host.Count(input.KeyDown))

	s.Quit()
	waitDone(t, done)
	assert.Equal(t, 0, doc.Count(input.KeyDown))
	assert.Equal(t, 0, host.Count(input.MouseDown))
}

func TestFramesSeeInputChanges(t *testing.T) {
	host := newFakeHost()
	cam := camera.NewOrbitCamera(mgl32.Vec3{0, 0, 5}, 0, 270, camera.WithDocument(host))

	var mu sync.Mutex
	var last mgl32.Mat4
	s := NewSession(
		WithHost(host),
		WithCamera(cam),
		WithTickRate(500),
		WithFrameCallback(func(view mgl32.Mat4, _ float32) {
			mu.Lock()
			last = view
			mu.Unlock()
		}),
	)
	done := runAsync(t, s, context.Background())

	require.Eventually(t, func() bool { return host.Count(input.Wheel) == 1 }, 5*time.Second, time.Millisecond)
	host.Dispatch(input.Event{Kind: input.Wheel, DeltaY: 100})
	want := cam.ViewMatrix()

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return last == want
	}, 5*time.Second, time.Millisecond)

	s.Quit()
	waitDone(t, done)
}

func TestContextCancelStopsSession(t *testing.T) {
	host := newFakeHost()
	cam := camera.NewFirstPersonCamera(mgl32.Vec3{}, 0, 0, camera.WithDocument(host))
	ctx, cancel := context.WithCancel(context.Background())

	s := NewSession(WithHost(host), WithCamera(cam))
	done := runAsync(t, s, ctx)

	require.Eventually(t, func() bool { return host.Count(input.KeyDown) == 1 }, 5*time.Second, time.Millisecond)
	cancel()
	waitDone(t, done)
	assert.Equal(t, 0, host.Count(input.KeyDown))
}

func TestMessagePumpHost(t *testing.T) {
	host := newPumpHost()
	cam := camera.NewFirstPersonCamera(mgl32.Vec3{}, 0, 0, camera.WithDocument(host))
	s := NewSession(WithHost(host), WithCamera(cam))
	done := runAsync(t, s, context.Background())

	require.Eventually(t, host.pumping.Load, 5*time.Second, time.Millisecond)
	s.Quit()
	waitDone(t, done)

	// Closing the host's message loop also ends the session.
	host = newPumpHost()
	cam = camera.NewFirstPersonCamera(mgl32.Vec3{}, 0, 0, camera.WithDocument(host))
	s = NewSession(WithHost(host), WithCamera(cam))
	done = runAsync(t, s, context.Background())

	require.Eventually(t, host.pumping.Load, 5*time.Second, time.Millisecond)
	host.Stop()
	waitDone(t, done)
	assert.Equal(t, 0, host.Count(input.KeyDown))
}

func TestResizeUpdatesLens(t *testing.T) {
	host := newFakeHost()
	cam := camera.NewFirstPersonCamera(mgl32.Vec3{}, 0, 0, camera.WithDocument(host))
	s := NewSession(WithHost(host), WithCamera(cam))
	done := runAsync(t, s, context.Background())

	require.Eventually(t, func() bool { return host.Count(input.KeyDown) == 1 }, 5*time.Second, time.Millisecond)
	host.onResize(300, 300)
	assert.InDelta(t, 1, s.Lens().Aspect(), 1e-6)

	s.Quit()
	waitDone(t, done)
}

func TestTickInterval(t *testing.T) {
	assert.Equal(t, time.Second/60, tickInterval(0))
	assert.Equal(t, time.Second/60, tickInterval(-5))
	assert.Equal(t, 10*time.Millisecond, tickInterval(100))
}
