package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFirstPersonCameraComputesView(t *testing.T) {
	cam := NewFirstPersonCamera(mgl32.Vec3{1, 2, 3}, 10, 45)

	assert.Equal(t, mgl32.Vec3{1, 2, 3}, cam.Position())
	assert.Equal(t, float32(10), cam.Pitch())
	assert.Equal(t, float32(45), cam.Yaw())
	assert.Equal(t, DeriveBasis(10, 45), cam.Basis())
	assert.Equal(t, DeriveBasis(10, 45).View(mgl32.Vec3{1, 2, 3}), cam.ViewMatrix())
}

func TestViewMatrixIsIdempotent(t *testing.T) {
	cam := NewFirstPersonCamera(mgl32.Vec3{0, 0, 5}, 0, 270)
	first := cam.ViewMatrix()
	assert.Equal(t, first, cam.ViewMatrix())
	assert.Equal(t, mgl32.Vec3{0, 0, 5}, cam.Position())
}

func TestSetPositionAndRotationRecomputeView(t *testing.T) {
	cam := NewFirstPersonCamera(mgl32.Vec3{}, 0, 0)

	cam.SetPosition(4, 5, 6)
	assert.Equal(t, mgl32.Vec3{4, 5, 6}, cam.Position())
	assert.Equal(t, DeriveBasis(0, 0).View(mgl32.Vec3{4, 5, 6}), cam.ViewMatrix())

	cam.SetRotation(-20, 100)
	assert.Equal(t, DeriveBasis(-20, 100), cam.Basis())
	assert.Equal(t, DeriveBasis(-20, 100).View(mgl32.Vec3{4, 5, 6}), cam.ViewMatrix())
}

func TestRotationIsNotWrappedOrClamped(t *testing.T) {
	cam := NewFirstPersonCamera(mgl32.Vec3{}, 0, 0)

	cam.SetRotation(120, 400)
	assert.Equal(t, float32(120), cam.Pitch())
	assert.Equal(t, float32(400), cam.Yaw())

	cam.Rotate(-30, -500)
	assert.Equal(t, float32(90), cam.Pitch())
	assert.Equal(t, float32(-100), cam.Yaw())
}

func TestRotateKeepsPosition(t *testing.T) {
	cam := NewFirstPersonCamera(mgl32.Vec3{0, 0, 5}, 0, 270)
	cam.Rotate(10, 90)

	assert.Equal(t, mgl32.Vec3{0, 0, 5}, cam.Position())
	assert.Equal(t, float32(10), cam.Pitch())
	assert.Equal(t, float32(360), cam.Yaw())
}

func TestTranslateRelativeZeroIsNoop(t *testing.T) {
	cam := NewFirstPersonCamera(mgl32.Vec3{1, 2, 3}, 15, 30)
	view := cam.ViewMatrix()

	cam.TranslateRelative(mgl32.Vec3{})

	assert.Equal(t, mgl32.Vec3{1, 2, 3}, cam.Position())
	assert.Equal(t, view, cam.ViewMatrix())
}

func TestTranslateRelativeFollowsBasis(t *testing.T) {
	cam := NewFirstPersonCamera(mgl32.Vec3{0, 0, 5}, 0, 270)

	cam.TranslateRelative(mgl32.Vec3{0, 0, 1})
	assertVec(t, mgl32.Vec3{0, 0, 4}, cam.Position(), tolerance)

	cam.TranslateRelative(mgl32.Vec3{1, 0, 0})
	assertVec(t, mgl32.Vec3{-1, 0, 4}, cam.Position(), tolerance)

	cam.TranslateRelative(mgl32.Vec3{0, 2, 0})
	assertVec(t, mgl32.Vec3{-1, 2, 4}, cam.Position(), tolerance)

	// After turning, the same local offset moves along the new front.
	cam.Rotate(0, 90)
	cam.TranslateRelative(mgl32.Vec3{0, 0, 1})
	assertVec(t, mgl32.Vec3{0, 2, 4}, cam.Position(), tolerance)
}

func TestTranslateIsWorldSpace(t *testing.T) {
	cam := NewFirstPersonCamera(mgl32.Vec3{0, 0, 5}, 0, 270)
	cam.Rotate(0, 90)
	front := cam.Basis().Front

	cam.Translate(mgl32.Vec3{1, 2, -3})

	assertVec(t, mgl32.Vec3{1, 2, 2}, cam.Position(), tolerance)
	assertVec(t, front, cam.Basis().Front, tolerance)
	assert.Equal(t, DeriveBasis(0, 360).View(mgl32.Vec3{1, 2, 2}), cam.ViewMatrix())
}

func TestNewByKind(t *testing.T) {
	fp, err := New(KindFirstPerson, mgl32.Vec3{0, 0, 5}, 0, 270)
	require.NoError(t, err)
	_, isOrbit := fp.(OrbitCamera)
	assert.False(t, isOrbit)

	orbit, err := New(KindOrbit, mgl32.Vec3{0, 0, 5}, 0, 270)
	require.NoError(t, err)
	_, isOrbit = orbit.(OrbitCamera)
	assert.True(t, isOrbit)

	_, err = New(Kind("chase"), mgl32.Vec3{}, 0, 0)
	assert.Error(t, err)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("orbit")
	require.NoError(t, err)
	assert.Equal(t, KindOrbit, k)

	k, err = ParseKind("first_person")
	require.NoError(t, err)
	assert.Equal(t, KindFirstPerson, k)

	_, err = ParseKind("")
	assert.ErrorContains(t, err, "unknown camera kind")
}
