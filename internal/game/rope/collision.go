package rope

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/grapple/internal/game/world"
	"github.com/Faultbox/grapple/pkg/math"
)

// OnRopeCollision snaps free points touching a block's world bounds to the
// top of those bounds.
//
// Each block test sets or clears the point's Y lock, so with several blocks
// only the last one tested decides the final lock state for that frame.
// Adjacent locked points are then averaged to avoid sawtooth edges.
func (r *Rope) OnRopeCollision(blocks []*world.Block) {
	if !r.active || len(r.Points) < 3 {
		return
	}

	h := r.CollisionHalfExtent
	if h <= 0 {
		h = DefaultCollisionHalfExtent
	}
	half := mgl32.Vec3{h, h, h}
	last := len(r.Points) - 1

	for i := 1; i < last; i++ {
		p := &r.Points[i]
		for _, b := range blocks {
			if b == nil {
				continue
			}
			probe := math.NewBoundingBox(p.Position.Sub(half), p.Position.Add(half))
			box := b.Bounds()
			if probe.Overlaps(box) {
				top := box.Max.Y()
				p.Position[1] = top
				p.OldPosition[1] = top
				p.YLocked = true
				p.YLockHeight = top
			} else {
				p.YLocked = false
			}
		}
	}

	r.smoothLocked()
}

// smoothLocked averages the heights of adjacent Y-locked points.
func (r *Rope) smoothLocked() {
	for i := 1; i < len(r.Points)-2; i++ {
		a := &r.Points[i]
		b := &r.Points[i+1]
		if a.YLocked && b.YLocked {
			avg := (a.Position.Y() + b.Position.Y()) / 2
			a.Position[1] = avg
			b.Position[1] = avg
		}
	}
}
