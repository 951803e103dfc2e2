package sim

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/grapple/internal/engine/debug"
)

// Snapshot is the read-only state a renderer or UI needs for one frame.
type Snapshot struct {
	Frame uint64

	PlayerPosition mgl32.Vec3
	PlayerRotation mgl32.Vec3
	AnimIndex      int
	AnimFrame      int
	Grounded       bool

	RopeActive    bool
	RopePoints    []mgl32.Vec3
	RopeCurve     []mgl32.Vec3
	RopeLength    float32
	TensionMaxed  bool
	SelectedBlock string
}

// Snapshot copies the current state.
func (s *Simulation) Snapshot() Snapshot {
	p := s.Player
	snap := Snapshot{
		Frame:          s.frame,
		PlayerPosition: p.Position,
		PlayerRotation: p.Rotation,
		AnimIndex:      p.AnimIndex,
		Grounded:       p.Grounded,
		RopeActive:     s.Rope.Active(),
	}
	if p.Animator != nil {
		snap.AnimFrame = p.Animator.Frame()
	}
	if s.Rope.Active() {
		snap.RopePoints = s.Rope.Positions()
		snap.RopeCurve = s.Rope.Curve(s.curveSamples)
		snap.RopeLength = s.Rope.Length()
		snap.TensionMaxed = s.Rope.IsTensionMaxed()
	}
	if s.Selected != nil {
		snap.SelectedBlock = s.Selected.Name
	}
	return snap
}

// Debug line colors.
var (
	playerBoxColor   = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	selectedBoxColor = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	ropeColor        = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

// DrawDebug adds blocks, the player box, the selection and the rope curve
// to w.
func (s *Simulation) DrawDebug(w *debug.Wireframe) {
	for _, b := range s.Blocks {
		if b == nil {
			continue
		}
		b.Draw(w)
	}
	w.AddBox(s.Player.Bounds(), 0, playerBoxColor)
	if s.Selected != nil {
		w.AddBox(s.Selected.WorldBox(), debug.DefaultBBoxPadding, selectedBoxColor)
	}
	if s.Rope.Active() {
		w.AddPolyline(s.Rope.Curve(s.curveSamples), ropeColor)
	}
}
