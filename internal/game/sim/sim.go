// Package sim runs one simulation frame at a time: player input, player
// physics, grapple picking and the rope, in that order.
package sim

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/grapple/internal/config"
	"github.com/Faultbox/grapple/internal/engine/camera"
	"github.com/Faultbox/grapple/internal/engine/picking"
	"github.com/Faultbox/grapple/internal/game/player"
	"github.com/Faultbox/grapple/internal/game/rope"
	"github.com/Faultbox/grapple/internal/game/world"
	"github.com/Faultbox/grapple/internal/logger"
	"github.com/Faultbox/grapple/pkg/math"
)

// Frame is the input for one simulation step.
type Frame struct {
	DT     float32
	Intent player.Intent
	// Click is the screen position of a grapple click this frame, if any.
	Click   *mgl32.Vec2
	Release bool
	Camera  camera.View
}

// Simulation owns the player, the rope and the level blocks.
type Simulation struct {
	Player   *player.Player
	Rope     *rope.Rope
	Blocks   []*world.Block
	Selected *world.Block

	ropePoints   int
	curveSamples int
	maxFrameTime float32
	viewport     mgl32.Vec2
	frame        uint64
	log          *zap.Logger
}

// New creates a simulation over blocks using cfg.
func New(cfg *config.Config, blocks []*world.Block) *Simulation {
	r := rope.New()
	r.Iterations = cfg.Rope.Iterations
	r.Gravity = cfg.Rope.Gravity
	r.MaxTension = cfg.Rope.MaxTension
	r.CollisionHalfExtent = cfg.Rope.CollisionHalfExtent

	return &Simulation{
		Player:       player.New(PlayerConfig(cfg)),
		Rope:         r,
		Blocks:       blocks,
		ropePoints:   cfg.Rope.Points,
		curveSamples: cfg.Rope.CurveSamples,
		maxFrameTime: cfg.Physics.MaxFrameTime,
		viewport:     mgl32.Vec2{float32(cfg.Graphics.Width), float32(cfg.Graphics.Height)},
		log:          logger.Named("sim"),
	}
}

// PlayerConfig maps the player and physics sections of cfg.
func PlayerConfig(cfg *config.Config) player.Config {
	pc := cfg.Player
	return player.Config{
		Spawn:            pc.Spawn.Vec(),
		Scale:            pc.Scale,
		MoveSpeed:        pc.MoveSpeed,
		JumpFactor:       pc.JumpFactor,
		TurnSmoothing:    pc.TurnSmoothing,
		Gravity:          cfg.Physics.Gravity,
		Mass:             pc.Mass,
		LocalBounds:      math.NewBoundingBox(pc.BoundsMin.Vec(), pc.BoundsMax.Vec()),
		GroundRayLift:    pc.GroundRayLift,
		GroundRayLength:  pc.GroundRayLength,
		GroundCorrection: pc.GroundCorrection,
		GroundSlop:       pc.GroundSlop,
		AnimationFrames:  pc.AnimationFrames,
	}
}

// Frames returns the number of steps run so far.
func (s *Simulation) Frames() uint64 {
	return s.frame
}

// SetBlocks replaces the block set, e.g. after a level reload. The current
// grapple target is kept if it is still present.
func (s *Simulation) SetBlocks(blocks []*world.Block) {
	s.Blocks = blocks
	if s.Selected == nil {
		return
	}
	for _, b := range blocks {
		if b == s.Selected {
			return
		}
	}
	s.log.Info("grapple target left the level", zap.String("block", s.Selected.Name))
	s.Release()
}

// Step advances the simulation by one frame.
func (s *Simulation) Step(f Frame) {
	s.frame++
	dt := f.DT
	if dt < 0 {
		dt = 0
	}
	if s.maxFrameTime > 0 && dt > s.maxFrameTime {
		s.log.Warn("frame time clamped", zap.Float32("dt", dt), zap.Float32("max", s.maxFrameTime))
		dt = s.maxFrameTime
	}

	forward, right := f.Camera.MoveBasis()
	s.Player.Move(f.Intent, forward, right, s.Rope, dt)
	s.Player.Update(s.Blocks, dt)

	if f.Release && s.Rope.Active() {
		s.Release()
	}
	if f.Click != nil {
		s.click(*f.Click, f.Camera)
	}

	if s.Rope.Active() && s.Selected != nil {
		s.Rope.Update(s.Player.Position, s.Selected.Position)
		s.Rope.OnRopeCollision(s.Blocks)
	}
}

func (s *Simulation) click(screen mgl32.Vec2, cam camera.View) {
	b := s.Pick(screen, cam)
	if b == nil {
		if s.Selected != nil {
			s.log.Debug("grapple click missed")
			s.Release()
		}
		return
	}
	s.log.Debug("block picked", zap.String("block", b.Name))
	if err := s.Attach(b); err != nil {
		s.log.Warn("grapple not attached", zap.String("block", b.Name), zap.Error(err))
	}
}

// Pick returns the first block under the screen point, or nil.
func (s *Simulation) Pick(screen mgl32.Vec2, cam camera.View) *world.Block {
	ray := picking.ScreenPointToWorldRay(screen, cam.ViewMatrix(), cam.Projection(s.aspect()), s.viewport)
	return world.SelectBlockUnderRay(s.Blocks, ray)
}

// Attach selects b and lays a fresh rope from the player to it. On error the
// previous rope and selection are kept.
func (s *Simulation) Attach(b *world.Block) error {
	if err := s.Rope.Init(s.ropePoints, s.Player.Position, b.Position); err != nil {
		return err
	}
	s.Selected = b
	if s.Rope.RestLength() == 0 {
		s.log.Warn("zero length rope", zap.String("block", b.Name))
	}
	s.log.Info("grapple attached",
		zap.String("block", b.Name),
		zap.Float32("rest_length", s.Rope.RestLength()))
	return nil
}

// Release drops the rope and clears the selection.
func (s *Simulation) Release() {
	if s.Selected != nil {
		s.log.Info("grapple released", zap.String("block", s.Selected.Name))
	}
	s.Rope.Release()
	s.Selected = nil
}

func (s *Simulation) aspect() float32 {
	if s.viewport.Y() <= 0 {
		return 1
	}
	return s.viewport.X() / s.viewport.Y()
}
