// Package world holds the static level geometry: blocks used as obstacles,
// ground and grapple targets.
package world

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/grapple/internal/engine/mesh"
	"github.com/Faultbox/grapple/pkg/math"
)

// Layer tags how a block collides.
type Layer int

const (
	// LayerGround is a heightfield collided with by downward ray casts.
	// Ground blocks are drawn anchored by their corner.
	LayerGround Layer = 0
	// LayerSolid is an ordinary obstacle collided with by box overlap.
	LayerSolid Layer = 1
)

// IsGround reports whether the layer uses heightfield collision.
func (l Layer) IsGround() bool {
	return l == LayerGround
}

// Drawer receives block geometry for rendering.
type Drawer interface {
	DrawMesh(m *mesh.Mesh, transform mgl32.Mat4, tint color.RGBA)
}

// Block is a static obstacle.
type Block struct {
	Name     string
	Position mgl32.Vec3 // world-space center
	Scale    mgl32.Vec3 // full extents
	Rotation mgl32.Vec3 // Euler degrees
	Color    color.RGBA
	Layer    Layer

	heightmap *mesh.Heightmap
	mesh      *mesh.Mesh
	lastScale mgl32.Vec3
}

// NewBlock creates a block and builds its mesh.
func NewBlock(name string, position, scale, rotation mgl32.Vec3, tint color.RGBA, layer Layer) *Block {
	b := &Block{
		Name:     name,
		Position: position,
		Scale:    scale,
		Rotation: rotation,
		Color:    tint,
		Layer:    layer,
	}
	b.rebuild()
	return b
}

// SetHeightmap assigns the ground heightmap and rebuilds the mesh.
// Only ground blocks use it.
func (b *Block) SetHeightmap(h *mesh.Heightmap) {
	b.heightmap = h
	b.rebuild()
}

// Mesh returns the block's collision/render mesh, regenerating it only when
// Scale changed since the last build.
func (b *Block) Mesh() *mesh.Mesh {
	if b.mesh == nil || b.Scale != b.lastScale {
		b.rebuild()
	}
	return b.mesh
}

func (b *Block) rebuild() {
	if b.Layer.IsGround() {
		b.mesh = mesh.Heightfield(b.heightmap, b.Scale)
	} else {
		b.mesh = mesh.Box(b.Scale)
	}
	b.lastScale = b.Scale
}

// Transform returns the render transform. Ground blocks are offset by half
// their X/Z extent so the corner-anchored heightfield is centered on
// Position; ray collision uses the same transform to stay aligned.
func (b *Block) Transform() mgl32.Mat4 {
	pos := b.Position
	if b.Layer.IsGround() {
		pos = pos.Sub(mgl32.Vec3{b.Scale.X() / 2, 0, b.Scale.Z() / 2})
	}
	return math.BuildTransform(pos, b.Rotation)
}

// WorldBox returns the coarse centered box used for overlap tests.
// Rotation is ignored.
func (b *Block) WorldBox() math.BoundingBox {
	return math.CenteredBox(b.Position, b.Scale)
}

// Bounds returns the world-space box of the transformed mesh. For ground
// blocks this follows the heightfield surface rather than the centered
// slab.
func (b *Block) Bounds() math.BoundingBox {
	return b.Mesh().Bounds.Transform(b.Transform())
}

// Top returns the Y of the block's top face.
func (b *Block) Top() float32 {
	return b.WorldBox().Max.Y()
}

// Draw hands the block's mesh and transform to d.
func (b *Block) Draw(d Drawer) {
	d.DrawMesh(b.Mesh(), b.Transform(), b.Color)
}
