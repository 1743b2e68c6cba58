package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Lens holds the perspective settings a renderer pairs with a camera's view matrix.
// It is the projection half of the camera uniform; resize handlers update the aspect ratio.
type Lens struct {
	mu *sync.Mutex

	fov    float32
	aspect float32
	near   float32
	far    float32

	projection mgl32.Mat4
}

// NewLens creates a Lens with default perspective settings (45° fov, aspect 1, near 0.1, far 100).
//
// Parameters:
//   - options: functional options to configure the lens
//
// Returns:
//   - *Lens: the new lens
func NewLens(options ...LensOption) *Lens {
	l := &Lens{
		mu:     &sync.Mutex{},
		fov:    45.0 * (math.Pi / 180.0), // radians
		aspect: 1.0,
		near:   0.1,
		far:    100.0,
	}
	for _, option := range options {
		option(l)
	}
	l.updateProjection()
	return l
}

// Fov returns the vertical field of view in radians.
func (l *Lens) Fov() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fov
}

// Aspect returns the aspect ratio (width / height).
func (l *Lens) Aspect() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.aspect
}

// Near returns the near clipping plane distance.
func (l *Lens) Near() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.near
}

// Far returns the far clipping plane distance.
func (l *Lens) Far() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.far
}

// Projection returns the cached perspective projection matrix.
func (l *Lens) Projection() mgl32.Mat4 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.projection
}

// ViewProjection combines the projection with a view matrix (projection * view).
//
// Parameters:
//   - view: the camera's view matrix
//
// Returns:
//   - mgl32.Mat4: the combined matrix
func (l *Lens) ViewProjection(view mgl32.Mat4) mgl32.Mat4 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.projection.Mul4(view)
}

// SetFov sets the field of view in radians.
func (l *Lens) SetFov(fov float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fov = fov
	l.updateProjection()
}

// SetAspect sets the aspect ratio. Non-positive values are ignored.
func (l *Lens) SetAspect(aspect float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if aspect <= 0 {
		return
	}
	l.aspect = aspect
	l.updateProjection()
}

// SetViewport sets the aspect ratio from surface dimensions. Zero-sized surfaces are ignored.
//
// Parameters:
//   - width, height: the surface size in pixels
func (l *Lens) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	l.SetAspect(float32(width) / float32(height))
}

// SetClip sets the near and far plane distances.
func (l *Lens) SetClip(near, far float32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.near = near
	l.far = far
	l.updateProjection()
}

// updateProjection recalculates the projection matrix.
// Caller must hold the mutex.
func (l *Lens) updateProjection() {
	l.projection = mgl32.Perspective(l.fov, l.aspect, l.near, l.far)
}

// LensOption is a functional option for configuring a Lens.
type LensOption func(*Lens)

// WithFov sets the field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - LensOption: functional option to set the field of view
func WithFov(fov float32) LensOption {
	return func(l *Lens) {
		l.fov = fov
	}
}

// WithAspect sets the aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio
//
// Returns:
//   - LensOption: functional option to set the aspect ratio
func WithAspect(aspect float32) LensOption {
	return func(l *Lens) {
		l.aspect = aspect
	}
}

// WithClip sets the near and far plane distances.
//
// Parameters:
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - LensOption: functional option to set the clip planes
func WithClip(near, far float32) LensOption {
	return func(l *Lens) {
		l.near = near
		l.far = far
	}
}
