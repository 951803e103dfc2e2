// Package player implements the player physics body and controller:
// gravity, ground and obstacle collision, movement intent and jumping.
package player

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/grapple/pkg/math"
)

// DefaultGravity is the downward acceleration in world units per second².
const DefaultGravity = 9.81

// VelocityClampFactor bounds vertical speed to +-factor*gravity.
const VelocityClampFactor = 2.0

// Body is a point body with flat gravity. Mass is carried for callers but
// does not affect gravity.
type Body struct {
	Velocity mgl32.Vec3
	Gravity  float32
	Mass     float32
	Grounded bool
}

// ApplyGravity integrates vertical velocity over dt, clamps it, and advances
// position.
func (b *Body) ApplyGravity(position *mgl32.Vec3, dt float32) {
	limit := b.Gravity * VelocityClampFactor
	b.Velocity[1] = math.Clamp(b.Velocity[1]-b.Gravity*dt, -limit, limit)
	position[1] += b.Velocity[1] * dt
}

// Jump leaves the ground with an upward speed of factor*gravity.
// It returns false when the body is not grounded.
func (b *Body) Jump(factor float32) bool {
	if !b.Grounded {
		return false
	}
	b.Grounded = false
	b.Velocity[1] = b.Gravity * factor
	return true
}

// land marks the body as supported and stops vertical motion.
func (b *Body) land() {
	b.Grounded = true
	b.Velocity[1] = 0
}
