// Package mesh provides triangle meshes used for rendering and ray collision.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/grapple/pkg/math"
)

// Mesh is an indexed triangle list in model-local space.
type Mesh struct {
	Vertices []mgl32.Vec3
	Indices  []uint32 // 3 per triangle
	Bounds   math.BoundingBox
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the corners of triangle i.
func (m *Mesh) Triangle(i int) (a, b, c mgl32.Vec3) {
	return m.Vertices[m.Indices[i*3]], m.Vertices[m.Indices[i*3+1]], m.Vertices[m.Indices[i*3+2]]
}

// Box creates a box mesh of the given full extents centered on the origin.
func Box(size mgl32.Vec3) *Mesh {
	bounds := math.CenteredBox(mgl32.Vec3{}, size)
	corners := bounds.Corners()

	// Corners 0-3 are the bottom face, 4-7 the top face, counter-clockwise
	// seen from outside.
	indices := []uint32{
		0, 1, 2, 0, 2, 3, // bottom
		4, 6, 5, 4, 7, 6, // top
		0, 4, 5, 0, 5, 1, // -Z
		3, 2, 6, 3, 6, 7, // +Z
		0, 3, 7, 0, 7, 4, // -X
		1, 5, 6, 1, 6, 2, // +X
	}

	return &Mesh{
		Vertices: corners[:],
		Indices:  indices,
		Bounds:   bounds,
	}
}

func computeBounds(vertices []mgl32.Vec3) math.BoundingBox {
	if len(vertices) == 0 {
		return math.BoundingBox{}
	}
	b := math.BoundingBox{Min: vertices[0], Max: vertices[0]}
	for _, v := range vertices[1:] {
		for i := 0; i < 3; i++ {
			if v[i] < b.Min[i] {
				b.Min[i] = v[i]
			}
			if v[i] > b.Max[i] {
				b.Max[i] = v[i]
			}
		}
	}
	return b
}
