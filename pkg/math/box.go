package math

import (
	"github.com/go-gl/mathgl/mgl32"
)

// BoundingBox is an axis-aligned box given by its min and max corners.
type BoundingBox struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewBoundingBox creates a box from two corners, swapping components so that
// Min <= Max on every axis (negative scales produce inverted corners).
func NewBoundingBox(a, b mgl32.Vec3) BoundingBox {
	box := BoundingBox{Min: a, Max: b}
	for i := 0; i < 3; i++ {
		if box.Min[i] > box.Max[i] {
			box.Min[i], box.Max[i] = box.Max[i], box.Min[i]
		}
	}
	return box
}

// CenteredBox returns the box of the given full extents centered on center.
func CenteredBox(center, extents mgl32.Vec3) BoundingBox {
	half := extents.Mul(0.5)
	return NewBoundingBox(center.Sub(half), center.Add(half))
}

// TransformedBoundingBox scales a model-local box about the origin and then
// translates it to position.
func TransformedBoundingBox(local BoundingBox, position, scale mgl32.Vec3) BoundingBox {
	return NewBoundingBox(
		MulElem(local.Min, scale).Add(position),
		MulElem(local.Max, scale).Add(position),
	)
}

// Overlaps reports whether two boxes intersect. Touching faces count as an
// overlap.
func (b BoundingBox) Overlaps(other BoundingBox) bool {
	return b.Max[0] >= other.Min[0] && b.Min[0] <= other.Max[0] &&
		b.Max[1] >= other.Min[1] && b.Min[1] <= other.Max[1] &&
		b.Max[2] >= other.Min[2] && b.Min[2] <= other.Max[2]
}

// Size returns the full extents of the box.
func (b BoundingBox) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Corners returns the 8 corners of the box.
func (b BoundingBox) Corners() [8]mgl32.Vec3 {
	return [8]mgl32.Vec3{
		{b.Min[0], b.Min[1], b.Min[2]},
		{b.Max[0], b.Min[1], b.Min[2]},
		{b.Max[0], b.Min[1], b.Max[2]},
		{b.Min[0], b.Min[1], b.Max[2]},
		{b.Min[0], b.Max[1], b.Min[2]},
		{b.Max[0], b.Max[1], b.Min[2]},
		{b.Max[0], b.Max[1], b.Max[2]},
		{b.Min[0], b.Max[1], b.Max[2]},
	}
}

// Transform returns the axis-aligned bounds of the box after transforming its
// corners by m.
func (b BoundingBox) Transform(m mgl32.Mat4) BoundingBox {
	corners := b.Corners()
	first := TransformPoint(m, corners[0])
	out := BoundingBox{Min: first, Max: first}
	for _, c := range corners[1:] {
		p := TransformPoint(m, c)
		for i := 0; i < 3; i++ {
			if p[i] < out.Min[i] {
				out.Min[i] = p[i]
			}
			if p[i] > out.Max[i] {
				out.Max[i] = p[i]
			}
		}
	}
	return out
}
