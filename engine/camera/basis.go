package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// WorldUp is the fixed world up axis every camera basis is derived against.
var WorldUp = mgl32.Vec3{0, 1, 0}

// Basis is the orthonormal frame derived from a pitch/yaw orientation.
// Right is worldUp × front, so it points to the viewer's left when looking along Front;
// (Right, Up, Front) is right-handed.
type Basis struct {
	Front mgl32.Vec3
	Right mgl32.Vec3
	Up    mgl32.Vec3
}

// DeriveBasis computes the camera frame for the given angles.
// Angles are in degrees; this is the only place they are converted to radians.
// Pitch is not clamped: at ±90° front is parallel to WorldUp and the basis degenerates.
//
// Parameters:
//   - pitch: elevation in degrees (positive looks up)
//   - yaw: heading in degrees (0 looks along +X, 270 along -Z)
//
// Returns:
//   - Basis: the derived front/right/up vectors
func DeriveBasis(pitch, yaw float32) Basis {
	p := float64(pitch) * math.Pi / 180
	y := float64(yaw) * math.Pi / 180

	front := mgl32.Vec3{
		float32(math.Cos(p) * math.Cos(y)),
		float32(math.Sin(p)),
		float32(math.Cos(p) * math.Sin(y)),
	}.Normalize()
	right := WorldUp.Cross(front).Normalize()
	up := front.Cross(right).Normalize()

	return Basis{Front: front, Right: right, Up: up}
}

// ToWorld converts a camera-local offset into world space.
// offset.X runs along Right, offset.Y along Up and offset.Z along Front.
//
// Parameters:
//   - offset: the camera-local offset
//
// Returns:
//   - mgl32.Vec3: the world-space offset
func (b Basis) ToWorld(offset mgl32.Vec3) mgl32.Vec3 {
	return b.Right.Mul(offset[0]).
		Add(b.Up.Mul(offset[1])).
		Add(b.Front.Mul(offset[2]))
}

// View returns lookAt(position, position+front, up).
//
// Parameters:
//   - position: the eye position in world space
//
// Returns:
//   - mgl32.Mat4: the column-major view matrix
func (b Basis) View(position mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(position, position.Add(b.Front), b.Up)
}
