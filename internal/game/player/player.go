package player

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/grapple/internal/engine/picking"
	"github.com/Faultbox/grapple/internal/game/world"
	"github.com/Faultbox/grapple/internal/logger"
	"github.com/Faultbox/grapple/pkg/math"
)

// Config holds player tuning values.
type Config struct {
	Spawn         mgl32.Vec3
	Scale         float32
	MoveSpeed     float32
	JumpFactor    float32
	TurnSmoothing float32
	Gravity       float32
	Mass          float32
	// LocalBounds is the model-space box before Scale is applied.
	LocalBounds math.BoundingBox
	// GroundRayLift raises the downward ground probe above the feet so a
	// slightly sunk player still finds the surface.
	GroundRayLift float32
	// GroundRayLength is the probe reach measured from its origin.
	GroundRayLength float32
	// GroundCorrection is the fraction of heightfield penetration removed
	// per update.
	GroundCorrection float32
	// GroundSlop is how far above a heightfield the feet may hover and
	// still count as grounded.
	GroundSlop float32
	// AnimationFrames lists frame counts per clip (idle, run).
	AnimationFrames []int
}

// DefaultConfig returns the default player tuning.
func DefaultConfig() Config {
	return Config{
		Spawn:            mgl32.Vec3{0, 105, 0},
		Scale:            0.01,
		MoveSpeed:        10,
		JumpFactor:       2,
		TurnSmoothing:    0.1,
		Gravity:          DefaultGravity,
		Mass:             1,
		LocalBounds:      math.NewBoundingBox(mgl32.Vec3{-50, 0, -50}, mgl32.Vec3{50, 180, 50}),
		GroundRayLift:    1,
		GroundRayLength:  3,
		GroundCorrection: 0.5,
		GroundSlop:       0.05,
		AnimationFrames:  []int{60, 24},
	}
}

// Player is the controllable character: a gravity body with a cached
// model-space bounding box.
type Player struct {
	Body

	Position mgl32.Vec3
	// Rotation holds Euler angles in degrees; only Y (heading) is driven.
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3

	MoveSpeed     float32
	JumpFactor    float32
	TurnSmoothing float32

	AnimIndex int
	Animator  *Animator

	cfg         Config
	localBounds math.BoundingBox
	log         *zap.Logger
}

// New creates a player at cfg.Spawn.
func New(cfg Config) *Player {
	p := &Player{
		Body: Body{
			Gravity: cfg.Gravity,
			Mass:    cfg.Mass,
		},
		Position:      cfg.Spawn,
		Scale:         mgl32.Vec3{cfg.Scale, cfg.Scale, cfg.Scale},
		MoveSpeed:     cfg.MoveSpeed,
		JumpFactor:    cfg.JumpFactor,
		TurnSmoothing: cfg.TurnSmoothing,
		Animator:      NewAnimator(cfg.AnimationFrames, DefaultAnimationFPS),
		cfg:           cfg,
		log:           logger.Named("player"),
	}
	p.RecalculateBounds(cfg.LocalBounds)
	return p
}

// RecalculateBounds replaces the cached model-space box. Call it when the
// model changes.
func (p *Player) RecalculateBounds(local math.BoundingBox) {
	p.localBounds = local
}

// LocalBounds returns the cached model-space box.
func (p *Player) LocalBounds() math.BoundingBox {
	return p.localBounds
}

// Bounds returns the world-space box: local bounds scaled, then offset by
// position.
func (p *Player) Bounds() math.BoundingBox {
	return math.TransformedBoundingBox(p.localBounds, p.Position, p.Scale)
}

// Respawn puts the player back at the configured spawn point at rest.
func (p *Player) Respawn() {
	p.Position = p.cfg.Spawn
	p.Velocity = mgl32.Vec3{}
	p.Grounded = false
}

// Update applies gravity when airborne, then resolves collisions against
// every block. Grounded is recomputed from scratch each update.
func (p *Player) Update(blocks []*world.Block, dt float32) {
	wasGrounded := p.Grounded
	if !p.Grounded {
		p.ApplyGravity(&p.Position, dt)
	}

	p.Grounded = false
	for _, b := range blocks {
		if b == nil {
			continue
		}
		resolverFor(b.Layer)(p, b)
	}

	if p.Grounded && !wasGrounded {
		p.log.Debug("landed", zap.Float32("y", p.Position.Y()))
	}
	if p.Animator != nil {
		if clip := p.Animator.ClampClip(p.AnimIndex); clip != p.AnimIndex {
			p.log.Warn("animation index out of range", zap.Int("index", p.AnimIndex), zap.Int("clamped", clip))
			p.AnimIndex = clip
		}
		p.Animator.Update(p.AnimIndex, dt)
	}
}

type resolver func(p *Player, b *world.Block)

// resolverFor picks the collision response for a block layer.
func resolverFor(layer world.Layer) resolver {
	if layer.IsGround() {
		return (*Player).resolveGround
	}
	return (*Player).resolveSolid
}

// resolveSolid stands the player on top of any box it overlaps.
func (p *Player) resolveSolid(b *world.Block) {
	box := b.WorldBox()
	if !p.Bounds().Overlaps(box) {
		return
	}
	p.Position[1] = box.Max.Y()
	p.land()
}

// resolveGround probes the heightfield below the player and pushes the
// player out of it gradually.
func (p *Player) resolveGround(b *world.Block) {
	ray := picking.Ray{
		Origin:    p.Position.Add(mgl32.Vec3{0, p.cfg.GroundRayLift, 0}),
		Direction: mgl32.Vec3{0, -1, 0},
	}
	hit := ray.IntersectMesh(b.Mesh(), b.Transform())
	if !hit.Hit || hit.Distance > p.cfg.GroundRayLength {
		return
	}

	penetration := hit.Point.Y() - p.Bounds().Min.Y()
	if penetration > 0 {
		p.Position[1] += penetration * p.cfg.GroundCorrection
	}
	if penetration >= -p.cfg.GroundSlop {
		p.land()
	}
}
