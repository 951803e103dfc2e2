package debug

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/grapple/internal/engine/mesh"
	"github.com/Faultbox/grapple/pkg/math"
)

// LineVertex is one endpoint of a debug line.
type LineVertex struct {
	Position mgl32.Vec3
	Color    color.RGBA
}

// Wireframe collects debug lines for a frame. It satisfies the block Drawer
// interface, so level blocks can draw themselves into it.
type Wireframe struct {
	Lines []LineVertex
}

// NewWireframe creates an empty line list.
func NewWireframe() *Wireframe {
	return &Wireframe{}
}

// Reset clears collected lines, keeping capacity for the next frame.
func (w *Wireframe) Reset() {
	w.Lines = w.Lines[:0]
}

// DrawMesh outlines every triangle of m after transforming it.
func (w *Wireframe) DrawMesh(m *mesh.Mesh, transform mgl32.Mat4, tint color.RGBA) {
	if m == nil {
		return
	}
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		a = math.TransformPoint(transform, a)
		b = math.TransformPoint(transform, b)
		c = math.TransformPoint(transform, c)
		w.addLine(a, b, tint)
		w.addLine(b, c, tint)
		w.addLine(c, a, tint)
	}
}

// AddBox outlines box grown by padding.
func (w *Wireframe) AddBox(box math.BoundingBox, padding float32, tint color.RGBA) {
	v := BoxWireframe(box, padding)
	for i := 0; i+1 < len(v); i += 2 {
		w.addLine(v[i], v[i+1], tint)
	}
}

// AddPolyline connects consecutive points. Used for the rope curve.
func (w *Wireframe) AddPolyline(points []mgl32.Vec3, tint color.RGBA) {
	for i := 0; i+1 < len(points); i++ {
		w.addLine(points[i], points[i+1], tint)
	}
}

func (w *Wireframe) addLine(a, b mgl32.Vec3, tint color.RGBA) {
	w.Lines = append(w.Lines, LineVertex{a, tint}, LineVertex{b, tint})
}

// LineCount returns the number of collected segments.
func (w *Wireframe) LineCount() int {
	return len(w.Lines) / 2
}

// Interleaved returns the lines as x, y, z, r, g, b floats per vertex with
// color normalized to [0, 1], the layout a line shader consumes.
func (w *Wireframe) Interleaved() []float32 {
	out := make([]float32, 0, len(w.Lines)*6)
	for _, v := range w.Lines {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			float32(v.Color.R)/255, float32(v.Color.G)/255, float32(v.Color.B)/255,
		)
	}
	return out
}
