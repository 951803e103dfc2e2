// Package math provides geometry helpers for the simulation core.
// Vectors and matrices are mgl32 types (column-major, OpenGL compatible).
package math

import (
	"github.com/go-gl/mathgl/mgl32"
)

// BuildTransform returns the world transform for an object at position with
// Euler rotation given in degrees.
// The rotation is applied Z first, then Y, then X, then the translation:
// M = T * Rx * Ry * Rz.
func BuildTransform(position, rotationDeg mgl32.Vec3) mgl32.Mat4 {
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(rotationDeg.X()))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(rotationDeg.Y()))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotationDeg.Z()))

	t := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	return t.Mul4(rx).Mul4(ry).Mul4(rz)
}

// TransformPoint transforms a point (w=1) by m, with perspective divide
// when w is not 1.
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	v := m.Mul4x1(p.Vec4(1))
	if v[3] != 0 && v[3] != 1 {
		return mgl32.Vec3{v[0] / v[3], v[1] / v[3], v[2] / v[3]}
	}
	return v.Vec3()
}

// MulElem returns the component-wise product of a and b.
func MulElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// LerpVec3 linearly interpolates between a and b.
func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// SafeNormalize returns v scaled to unit length, or the zero vector when v
// is (nearly) zero. mgl32's Normalize produces NaNs on zero input.
func SafeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < 1e-6 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}
