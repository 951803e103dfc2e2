// Package debug provides debug visualization utilities: line lists for
// bounding boxes, block meshes and the rope, ready for a line renderer.
package debug

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/grapple/pkg/math"
)

// BBoxWireframeVertexCount is the number of vertices for a box wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// DefaultBBoxPadding is the default padding for selection boxes.
const DefaultBBoxPadding = 0.05

// boxEdges lists the corner index pairs of math.BoundingBox.Corners that
// form the 12 box edges: bottom face, top face, then verticals.
var boxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// BoxWireframe returns the 24 line endpoints outlining box, grown by padding
// on every side.
func BoxWireframe(box math.BoundingBox, padding float32) []mgl32.Vec3 {
	pad := mgl32.Vec3{padding, padding, padding}
	grown := math.NewBoundingBox(box.Min.Sub(pad), box.Max.Add(pad))
	corners := grown.Corners()

	out := make([]mgl32.Vec3, 0, BBoxWireframeVertexCount)
	for _, e := range boxEdges {
		out = append(out, corners[e[0]], corners[e[1]])
	}
	return out
}
