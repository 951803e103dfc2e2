package main

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/grapple/internal/config"
	"github.com/Faultbox/grapple/internal/engine/camera"
	"github.com/Faultbox/grapple/internal/game/sim"
)

// Script timeline, in frames.
const (
	grappleAt = 180 // after landing
	jumpAt    = 480
	releaseAt = 600
)

// script plays a fixed session: fall and land, grapple the first solid
// block, back away until the rope goes taut, jump, walk back, release and
// wander.
type script struct {
	dt       float32
	fov      float32
	near     float32
	far      float32
	viewport mgl32.Vec2
}

func newScript(cfg *config.Config) *script {
	return &script{
		dt:       cfg.Run.FixedDT,
		fov:      cfg.Camera.FOV,
		near:     cfg.Camera.Near,
		far:      cfg.Camera.Far,
		viewport: mgl32.Vec2{float32(cfg.Graphics.Width), float32(cfg.Graphics.Height)},
	}
}

func (sc *script) frame(n int, s *sim.Simulation) sim.Frame {
	f := sim.Frame{DT: sc.dt, Camera: sc.follow(s.Player.Position, mgl32.Vec3{0, 0, 1})}

	target := firstSolid(s.Blocks)
	if s.Selected != nil {
		target = s.Selected
	}
	if target != nil && n >= grappleAt && n < releaseAt {
		f.Camera = sc.aim(s.Player.Position, target.Position)
	}

	switch {
	case n < grappleAt:
	case n == grappleAt:
		if target != nil {
			center := sc.viewport.Mul(0.5)
			f.Click = &center
		}
	case n < jumpAt:
		f.Intent.Move = mgl32.Vec2{0, -1}
	case n == jumpAt:
		f.Intent.Jump = true
	case n < releaseAt:
		f.Intent.Move = mgl32.Vec2{0, 1}
	case n == releaseAt:
		f.Release = true
	default:
		a := float64(n-releaseAt) * 0.02
		f.Intent.Move = mgl32.Vec2{float32(gomath.Sin(a)), float32(gomath.Cos(a))}
	}
	if n > releaseAt && n%240 == 0 {
		f.Intent.Jump = true
	}
	return f
}

// follow places the camera behind and above the player looking along dir.
func (sc *script) follow(p, dir mgl32.Vec3) camera.View {
	eye := p.Add(mgl32.Vec3{0, 3, 0}).Sub(dir.Mul(6))
	return camera.NewView(eye, p.Add(mgl32.Vec3{0, 1, 0}), sc.fov, sc.near, sc.far)
}

// aim looks from just behind the player straight at target.
func (sc *script) aim(p, target mgl32.Vec3) camera.View {
	eye := p.Add(mgl32.Vec3{0, 1, 0})
	dir := target.Sub(eye)
	if dir.Len() < 1e-3 {
		return sc.follow(p, mgl32.Vec3{0, 0, 1})
	}
	eye = eye.Sub(dir.Normalize().Mul(2))
	return camera.NewView(eye, target, sc.fov, sc.near, sc.far)
}

