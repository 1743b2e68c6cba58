package camera

import (
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-cam/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orbitTolerance = 1e-4

func TestNewOrbitCamera(t *testing.T) {
	cam := NewOrbitCamera(mgl32.Vec3{3, 0, 4}, 0, 0)

	assert.Equal(t, mgl32.Vec3{}, cam.Origin())
	assert.InDelta(t, 5, cam.Distance(), tolerance)
	assert.Equal(t, DeriveBasis(0, 0).View(mgl32.Vec3{3, 0, 4}), cam.ViewMatrix())
}

func TestOrbitRotateSwingsAroundPivot(t *testing.T) {
	cam := NewOrbitCamera(mgl32.Vec3{0, 0, 5}, 0, 270)

	cam.Rotate(0, 90)

	assertVec(t, mgl32.Vec3{-5, 0, 0}, cam.Position(), orbitTolerance)
	assertVec(t, mgl32.Vec3{}, cam.Origin(), orbitTolerance)
	assert.InDelta(t, 5, cam.Distance(), orbitTolerance)
	assert.Equal(t, float32(0), cam.Pitch())
	assert.Equal(t, float32(360), cam.Yaw())
	assertVec(t, mgl32.Vec3{1, 0, 0}, cam.Basis().Front, orbitTolerance)
}

func TestOrbitRotateKeepsRadius(t *testing.T) {
	cam := NewOrbitCamera(mgl32.Vec3{2, 3, 6}, -15, 200)
	distance := cam.Distance()

	deltas := [][2]float32{{5, 10}, {-20, 45}, {30, -170}, {0, 360}, {-10, 1}}
	for _, d := range deltas {
		cam.Rotate(d[0], d[1])
		assert.InDelta(t, distance, cam.Distance(), orbitTolerance)
		assert.InDelta(t, distance, cam.Position().Sub(cam.Origin()).Len(), orbitTolerance)
	}
}

func TestOrbitRotateLooksAtPivot(t *testing.T) {
	cam := NewOrbitCamera(mgl32.Vec3{0, 0, 5}, 0, 270)
	cam.Rotate(20, 35)

	target := cam.Position().Add(cam.Basis().Front.Mul(cam.Distance()))
	assertVec(t, cam.Origin(), target, orbitTolerance)
}

func TestOrbitZoom(t *testing.T) {
	cam := NewOrbitCamera(mgl32.Vec3{0, 0, 5}, 0, 270)

	cam.Zoom(100)
	assertVec(t, mgl32.Vec3{0, 0, 7.5}, cam.Position(), orbitTolerance)
	assert.InDelta(t, 7.5, cam.Distance(), orbitTolerance)

	cam.Zoom(-200)
	assertVec(t, mgl32.Vec3{0, 0, 2.5}, cam.Position(), orbitTolerance)
	assert.InDelta(t, 2.5, cam.Distance(), orbitTolerance)

	assert.Equal(t, float32(0), cam.Pitch())
	assert.Equal(t, float32(270), cam.Yaw())
}

func TestOrbitZoomIsMonotonic(t *testing.T) {
	cam := NewOrbitCamera(mgl32.Vec3{0, 0, 10}, 0, 270)

	prev := cam.Distance()
	for range 5 {
		cam.Zoom(10)
		assert.Greater(t, cam.Distance(), prev)
		prev = cam.Distance()
	}
	for range 5 {
		cam.Zoom(-10)
		assert.Less(t, cam.Distance(), prev)
		prev = cam.Distance()
	}
}

func TestOrbitZoomRateOption(t *testing.T) {
	cam := NewOrbitCamera(mgl32.Vec3{0, 0, 5}, 0, 270, WithZoomRate(0.01))
	cam.Zoom(100)
	assertVec(t, mgl32.Vec3{0, 0, 6}, cam.Position(), orbitTolerance)
}

func TestOrbitWheelZooms(t *testing.T) {
	h := newHarness()
	cam := NewOrbitCamera(mgl32.Vec3{0, 0, 5}, 0, 270, h.options()...)
	cam.AddMouseListener(h.surface)
	require.Equal(t, 1, h.surface.Count(input.Wheel))

	h.surface.Dispatch(input.Event{Kind: input.Wheel, DeltaY: 100})
	assert.InDelta(t, 7.5, cam.Distance(), orbitTolerance)

	h.surface.Dispatch(input.Event{Kind: input.Wheel, DeltaY: 0})
	assert.InDelta(t, 7.5, cam.Distance(), orbitTolerance)

	cam.RemoveMouseListener()
	assert.Equal(t, 0, h.surface.Count(input.Wheel))
	assert.Equal(t, 0, h.surface.Count(input.MouseDown))

	h.surface.Dispatch(input.Event{Kind: input.Wheel, DeltaY: 100})
	assert.InDelta(t, 7.5, cam.Distance(), orbitTolerance)
}

func TestOrbitMouseListenerAttachIsIdempotent(t *testing.T) {
	h := newHarness()
	other := newFakeSurface(100, 100)
	cam := NewOrbitCamera(mgl32.Vec3{0, 0, 5}, 0, 270, h.options()...)

	cam.AddMouseListener(h.surface)
	cam.AddMouseListener(h.surface)
	assert.Equal(t, 1, h.surface.Count(input.Wheel))
	assert.Equal(t, 1, h.surface.Count(input.MouseDown))

	cam.AddMouseListener(other)
	assert.Equal(t, 0, h.surface.Count(input.Wheel))
	assert.Equal(t, 0, h.surface.Count(input.MouseDown))
	assert.Equal(t, 1, other.Count(input.Wheel))
	assert.Equal(t, 1, other.Count(input.MouseDown))
}

func TestOrbitMouseLookOrbits(t *testing.T) {
	h := newHarness()
	cam := NewOrbitCamera(mgl32.Vec3{0, 0, 5}, 0, 270, h.options(WithMouseRotateRate(90))...)
	cam.AddMouseListener(h.surface)
	click(h.surface)

	h.doc.Dispatch(input.Event{Kind: input.MouseMove, MovementX: float64(h.surface.width)})

	assertVec(t, mgl32.Vec3{-5, 0, 0}, cam.Position(), orbitTolerance)
	assert.InDelta(t, 5, cam.Distance(), orbitTolerance)
}

func TestOrbitKeyboardTranslates(t *testing.T) {
	h := newHarness()
	cam := NewOrbitCamera(mgl32.Vec3{0, 0, 5}, 0, 270, h.options()...)
	cam.AddKeyboardListener()

	h.press("w")
	h.step(100 * time.Millisecond)

	assertVec(t, mgl32.Vec3{0, 0, 4}, cam.Position(), tolerance)
	// Distance is only re-measured on zoom.
	assert.InDelta(t, 5, cam.Distance(), tolerance)
}

func TestOrbitListenersLifecycle(t *testing.T) {
	h := newHarness()
	var cam Camera = NewOrbitCamera(mgl32.Vec3{0, 0, 5}, 0, 270, h.options()...)

	cam.AddListeners(h.surface)
	assert.Equal(t, 1, h.doc.Count(input.KeyDown))
	assert.Equal(t, 1, h.surface.Count(input.MouseDown))
	assert.Equal(t, 1, h.surface.Count(input.Wheel))

	cam.RemoveListeners()
	assert.Equal(t, 0, h.doc.Count(input.KeyDown))
	assert.Equal(t, 0, h.surface.Count(input.MouseDown))
	assert.Equal(t, 0, h.surface.Count(input.Wheel))

	assert.NotPanics(t, cam.RemoveListeners)
}
