package player

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/grapple/internal/game/world"
)

const frame = float32(1.0 / 60.0)

func solidBlock(center, scale mgl32.Vec3) *world.Block {
	return world.NewBlock("solid", center, scale, mgl32.Vec3{}, color.RGBA{R: 255, A: 255}, world.LayerSolid)
}

func groundBlock(y float32) *world.Block {
	return world.NewBlock("ground", mgl32.Vec3{0, y, 0}, mgl32.Vec3{100, 1, 100}, mgl32.Vec3{}, color.RGBA{G: 255, A: 255}, world.LayerGround)
}

func approx(a, b, eps float32) bool {
	d := a - b
	return d < eps && d > -eps
}

func TestNewUsesSpawn(t *testing.T) {
	p := New(DefaultConfig())

	if p.Position != (mgl32.Vec3{0, 105, 0}) {
		t.Errorf("Position = %v, want spawn", p.Position)
	}
	if p.Grounded {
		t.Error("new player should be airborne")
	}

	// Default local box scaled by 0.01 gives a 1x1.8x1 body with its base at the feet.
	b := p.Bounds()
	if !approx(b.Min.Y(), 105, 1e-4) || !approx(b.Max.Y(), 106.8, 1e-4) {
		t.Errorf("Bounds Y = [%v, %v]", b.Min.Y(), b.Max.Y())
	}
	if !approx(b.Max.X()-b.Min.X(), 1, 1e-4) {
		t.Errorf("Bounds width = %v, want 1", b.Max.X()-b.Min.X())
	}
}

func TestGroundSnapOnSolidBlock(t *testing.T) {
	p := New(DefaultConfig())
	block := solidBlock(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{10, 2, 10})

	p.Position = mgl32.Vec3{0, 0.5, 0}
	p.Velocity = mgl32.Vec3{0, -5, 0}
	p.Update([]*world.Block{block}, frame)

	if !p.Grounded {
		t.Fatal("expected grounded after overlap")
	}
	if p.Position.Y() != block.Top() {
		t.Errorf("Y = %v, want block top %v", p.Position.Y(), block.Top())
	}
	if p.Velocity.Y() != 0 {
		t.Errorf("vy = %v, want 0", p.Velocity.Y())
	}
}

func TestStandingStaysGrounded(t *testing.T) {
	p := New(DefaultConfig())
	block := solidBlock(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{10, 2, 10})
	p.Position = mgl32.Vec3{0, 1, 0}
	p.Grounded = true

	for i := 0; i < 120; i++ {
		p.Update([]*world.Block{block}, frame)
		if !p.Grounded || p.Position.Y() != 1 {
			t.Fatalf("frame %d: grounded=%v y=%v", i, p.Grounded, p.Position.Y())
		}
	}
}

func TestJumpThenFall(t *testing.T) {
	p := New(DefaultConfig())
	p.Position = mgl32.Vec3{0, 50, 0}
	p.Grounded = true

	p.Move(Intent{Jump: true}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{-1, 0, 0}, nil, frame)
	if p.Grounded {
		t.Fatal("jump should leave the ground")
	}
	if p.Velocity.Y() <= 0 {
		t.Fatalf("vy after jump = %v, want > 0", p.Velocity.Y())
	}

	floor := -p.Gravity * VelocityClampFactor
	prev := p.Velocity.Y()
	reached := false
	for i := 0; i < 600; i++ {
		p.Update(nil, frame)
		vy := p.Velocity.Y()
		if reached {
			if vy != floor {
				t.Fatalf("frame %d: vy = %v after reaching clamp %v", i, vy, floor)
			}
			continue
		}
		if vy >= prev {
			t.Fatalf("frame %d: vy did not decrease (%v -> %v)", i, prev, vy)
		}
		if vy == floor {
			reached = true
		}
		prev = vy
	}
	if !reached {
		t.Errorf("velocity never reached clamp %v, last %v", floor, prev)
	}
}

func TestJumpRequiresGround(t *testing.T) {
	p := New(DefaultConfig())
	p.Move(Intent{Jump: true}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{-1, 0, 0}, nil, frame)

	if p.Velocity.Y() != 0 {
		t.Errorf("airborne jump changed vy to %v", p.Velocity.Y())
	}
}

func TestFreeFallWithoutBlocks(t *testing.T) {
	p := New(DefaultConfig())
	start := p.Position.Y()

	p.Update(nil, frame)

	if p.Grounded {
		t.Error("no blocks should leave the player airborne")
	}
	if p.Position.Y() >= start {
		t.Errorf("Y = %v, want below %v", p.Position.Y(), start)
	}
}

func TestHeightfieldGroundLanding(t *testing.T) {
	p := New(DefaultConfig())
	ground := groundBlock(0)
	blocks := []*world.Block{ground}

	// Flat heightfield surface sits at y=0 once the ground transform is applied.
	p.Position = mgl32.Vec3{3, 2, -4}
	for i := 0; i < 600 && !p.Grounded; i++ {
		p.Update(blocks, frame)
	}
	if !p.Grounded {
		t.Fatalf("never landed, y=%v", p.Position.Y())
	}
	if p.Velocity.Y() != 0 {
		t.Errorf("vy = %v after landing", p.Velocity.Y())
	}
	if !approx(p.Position.Y(), 0, 0.2) {
		t.Errorf("landed at y=%v, want near 0", p.Position.Y())
	}
}

func TestHeightfieldPenetrationEasesOut(t *testing.T) {
	p := New(DefaultConfig())
	ground := groundBlock(0)
	p.Position = mgl32.Vec3{1, -0.4, -2}
	p.Grounded = true

	p.Update([]*world.Block{ground}, frame)
	first := p.Position.Y()
	if first <= -0.4 || first >= 0 {
		t.Fatalf("first correction y=%v, want partial push toward 0", first)
	}

	for i := 0; i < 30; i++ {
		p.Update([]*world.Block{ground}, frame)
	}
	if !approx(p.Position.Y(), 0, 1e-3) {
		t.Errorf("y = %v, want converged to 0", p.Position.Y())
	}
	if !p.Grounded {
		t.Error("expected grounded on heightfield")
	}
}

func TestRespawn(t *testing.T) {
	p := New(DefaultConfig())
	p.Position = mgl32.Vec3{9, -30, 9}
	p.Velocity = mgl32.Vec3{0, -19, 0}

	p.Respawn()

	if p.Position != DefaultConfig().Spawn || p.Velocity != (mgl32.Vec3{}) {
		t.Errorf("Respawn left pos=%v vel=%v", p.Position, p.Velocity)
	}
}

func TestResolverForLayer(t *testing.T) {
	p := New(DefaultConfig())
	p.Position = mgl32.Vec3{0, 0.5, 0}

	// A ground-layer block is probed by ray, never by box overlap, so a
	// player inside its box but far from its surface stays airborne.
	far := world.NewBlock("deep", mgl32.Vec3{0, -20, 0}, mgl32.Vec3{100, 50, 100}, mgl32.Vec3{}, color.RGBA{}, world.LayerGround)
	resolverFor(far.Layer)(p, far)
	if p.Grounded {
		t.Error("ground layer should not use box overlap")
	}

	solid := solidBlock(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{2, 2, 2})
	resolverFor(solid.Layer)(p, solid)
	if !p.Grounded || p.Position.Y() != 1 {
		t.Errorf("solid layer: grounded=%v y=%v", p.Grounded, p.Position.Y())
	}
}
