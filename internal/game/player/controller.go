package player

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/grapple/pkg/math"
)

// TensionGateDot is the alignment with the rope above which movement is
// refused while the rope is at full stretch.
const TensionGateDot = 0.7

// Intent is one frame of player input.
type Intent struct {
	// Move holds X=right and Y=forward, relative to the camera.
	Move mgl32.Vec2
	Jump bool
}

// Tether is the rope state movement is gated on.
type Tether interface {
	Active() bool
	IsTensionMaxed() bool
	// Direction points from the target anchor toward the player.
	Direction() mgl32.Vec3
}

// Move turns camera-relative intent into world motion, heading and jumps.
// forward and right are the camera's horizontal basis. tether may be nil.
// It returns true when the player moved.
func (p *Player) Move(in Intent, forward, right mgl32.Vec3, tether Tether, dt float32) bool {
	moved := false
	p.AnimIndex = AnimIdle

	if in.Move.Len() > 1e-3 {
		p.AnimIndex = AnimRun

		dir := right.Mul(in.Move.X()).Add(forward.Mul(in.Move.Y()))
		dir[1] = 0
		dir = math.SafeNormalize(dir)

		if dir.Len() > 0 && !tetherBlocks(tether, dir) {
			p.Position = p.Position.Add(dir.Mul(p.MoveSpeed * dt))
			target := math.HeadingDegrees(dir.X(), dir.Z())
			p.Rotation[1] = math.LerpAngle(p.Rotation.Y(), target, p.TurnSmoothing)
			moved = true
		}
	}

	if in.Jump && p.Jump(p.JumpFactor) {
		p.log.Debug("jump", zap.Float32("vy", p.Velocity.Y()))
	}
	return moved
}

// tetherBlocks reports whether a taut rope forbids moving along dir.
// The rope direction points away from the anchor, so moving along it
// would stretch the rope further.
func tetherBlocks(t Tether, dir mgl32.Vec3) bool {
	if t == nil || !t.Active() || !t.IsTensionMaxed() {
		return false
	}
	rd := t.Direction()
	rd[1] = 0
	rd = math.SafeNormalize(rd)
	return dir.Dot(rd) > TensionGateDot
}
