// Package camera provides the camera data the simulation consumes: view and
// projection matrices and the ground-plane movement basis. Orbit and follow
// behavior belongs to the presentation layer.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/grapple/pkg/math"
)

// View is a perspective camera looking from Position at Target.
type View struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	FovY     float32 // degrees
	Near     float32
	Far      float32
}

// NewView creates a camera with a Y-up vector and the given lens.
func NewView(position, target mgl32.Vec3, fovY, near, far float32) View {
	return View{
		Position: position,
		Target:   target,
		Up:       mgl32.Vec3{0, 1, 0},
		FovY:     fovY,
		Near:     near,
		Far:      far,
	}
}

// ViewMatrix returns the world-to-camera matrix.
func (v View) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(v.Position, v.Target, v.Up)
}

// Projection returns the perspective projection for the given aspect ratio
// (width/height).
func (v View) Projection(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(v.FovY), aspect, v.Near, v.Far)
}

// ForwardDirection returns the camera's forward direction flattened onto the
// XZ plane. A camera looking straight down falls back to +Z.
func (v View) ForwardDirection() mgl32.Vec3 {
	f := v.Target.Sub(v.Position)
	f[1] = 0
	if f.Len() < 1e-6 {
		return mgl32.Vec3{0, 0, 1}
	}
	return math.SafeNormalize(f)
}

// RightDirection returns the camera's right direction on the XZ plane.
func (v View) RightDirection() mgl32.Vec3 {
	f := v.ForwardDirection()
	return mgl32.Vec3{-f[2], 0, f[0]}
}

// MoveBasis returns the forward and right XZ directions used to turn
// player intent into world movement.
func (v View) MoveBasis() (forward, right mgl32.Vec3) {
	return v.ForwardDirection(), v.RightDirection()
}
