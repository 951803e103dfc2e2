package mesh

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBox(t *testing.T) {
	m := Box(mgl32.Vec3{2, 4, 6})
	if m.TriangleCount() != 12 {
		t.Errorf("TriangleCount() = %d, want 12", m.TriangleCount())
	}
	want := mgl32.Vec3{1, 2, 3}
	if m.Bounds.Max != want || m.Bounds.Min != want.Mul(-1) {
		t.Errorf("Bounds = %v, want +-%v", m.Bounds, want)
	}
}

func TestHeightfieldFlat(t *testing.T) {
	m := Heightfield(nil, mgl32.Vec3{100, 10, 50})
	if m.TriangleCount() != 2 {
		t.Fatalf("TriangleCount() = %d, want 2", m.TriangleCount())
	}
	if m.Bounds.Min != (mgl32.Vec3{0, 0, 0}) || m.Bounds.Max != (mgl32.Vec3{100, 0, 50}) {
		t.Errorf("Bounds = %v, want corner-anchored [0,100]x[0,50] at y=0", m.Bounds)
	}
}

func TestHeightfieldHeights(t *testing.T) {
	h := &Heightmap{Width: 3, Depth: 3, Values: []float32{
		0, 0, 0,
		0, 1, 0,
		0, 0, 0,
	}}
	m := Heightfield(h, mgl32.Vec3{4, 10, 4})

	if m.TriangleCount() != 8 {
		t.Errorf("TriangleCount() = %d, want 8", m.TriangleCount())
	}
	center := m.Vertices[4]
	if center != (mgl32.Vec3{2, 10, 2}) {
		t.Errorf("center vertex = %v, want (2, 10, 2)", center)
	}
	if m.Bounds.Max[1] != 10 {
		t.Errorf("Bounds.Max.Y = %v, want 10", m.Bounds.Max[1])
	}
}

func TestNewHeightmapResample(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.SetGray(x, y, color.Gray{Y: 255})
		}
	}

	h := NewHeightmap(src, 4)
	if h.Width != 4 || h.Depth != 4 {
		t.Fatalf("size = %dx%d, want 4x4", h.Width, h.Depth)
	}
	for i, v := range h.Values {
		if v < 0.99 {
			t.Errorf("Values[%d] = %v, want ~1", i, v)
		}
	}
}

func TestHeightmapAtClamps(t *testing.T) {
	h := &Heightmap{Width: 2, Depth: 2, Values: []float32{0.1, 0.2, 0.3, 0.4}}
	if got := h.At(-5, 10); got != 0.3 {
		t.Errorf("At(-5, 10) = %v, want 0.3", got)
	}
}
