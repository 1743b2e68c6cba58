package camera

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUCameraUniform is the byte layout renderers upload for a camera each frame.
// Layout (std140 / WGSL aligned, 144 bytes):
//
//	offset   0: view matrix (mat4x4<f32>)
//	offset  64: projection matrix (mat4x4<f32>)
//	offset 128: world-space camera position (vec3<f32>)
//	offset 140: padding
type GPUCameraUniform struct {
	View       [16]float32
	Projection [16]float32
	Position   [3]float32
	_pad       float32
}

// NewGPUCameraUniform snapshots a camera and lens into a uniform.
// The camera is queried once, so the view and position come from the same state.
//
// Parameters:
//   - cam: the camera
//   - lens: the lens providing the projection
//
// Returns:
//   - GPUCameraUniform: the populated uniform
func NewGPUCameraUniform(cam Camera, lens *Lens) GPUCameraUniform {
	var u GPUCameraUniform
	if fp, ok := cameraState(cam); ok {
		fp.mu.Lock()
		u.View = fp.view
		u.Position = fp.position
		fp.mu.Unlock()
	} else {
		u.View = cam.ViewMatrix()
		u.Position = cam.Position()
	}
	if lens != nil {
		u.Projection = lens.Projection()
	}
	return u
}

// cameraState unwraps the shared first-person state of either camera kind.
func cameraState(cam Camera) (*firstPersonCamera, bool) {
	switch c := cam.(type) {
	case *firstPersonCamera:
		return c, true
	case *orbitCamera:
		return c.firstPersonCamera, true
	}
	return nil, false
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (144)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the uniform into a little-endian byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.View[i]))
	}
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.Projection[i]))
	}
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[128+i*4:], math.Float32bits(g.Position[i]))
	}
	binary.LittleEndian.PutUint32(buf[140:], 0) // _pad
	return buf
}
