// Package rope implements the grapple rope: a position-based-dynamics chain
// of points anchored between the player and a grapple target.
package rope

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/grapple/pkg/math"
)

const (
	// DefaultIterations is the number of constraint relaxation passes per
	// update.
	DefaultIterations = 20
	// DefaultGravity is the downward bias added to free points each update,
	// in world units per frame.
	DefaultGravity = 0.005
	// DefaultMaxTension is the stretch ratio at which the rope counts as
	// taut.
	DefaultMaxTension = 1.5
	// DefaultCollisionHalfExtent is the half size of the probe box tested
	// around each point against blocks.
	DefaultCollisionHalfExtent = 0.05
)

// ErrTooFewPoints is returned by Init when fewer than two points are requested.
var ErrTooFewPoints = errors.New("rope: at least 2 points required")

// Point is a simulated rope vertex.
type Point struct {
	Position    mgl32.Vec3
	OldPosition mgl32.Vec3 // previous position, for Verlet velocity
	Locked      bool       // endpoints, driven by anchors

	YLocked     bool
	YLockHeight float32
}

// Constraint keeps two adjacent points at SegmentLength apart.
type Constraint struct {
	A, B int
}

// Rope is the grapple rope. The zero value is an inactive rope with default
// tuning left unset; use New.
type Rope struct {
	Points        []Point
	Constraints   []Constraint
	SegmentLength float32

	Iterations          int
	Gravity             float32
	MaxTension          float32
	CollisionHalfExtent float32

	active bool
}

// New creates an inactive rope with default tuning.
func New() *Rope {
	return &Rope{
		Iterations:          DefaultIterations,
		Gravity:             DefaultGravity,
		MaxTension:          DefaultMaxTension,
		CollisionHalfExtent: DefaultCollisionHalfExtent,
	}
}

// Active reports whether the rope is attached.
func (r *Rope) Active() bool {
	return r.active
}

// Init resets the rope to pointCount points evenly spaced from start to end
// and activates it. The rest length of every segment is fixed here.
func (r *Rope) Init(pointCount int, start, end mgl32.Vec3) error {
	if pointCount < 2 {
		return ErrTooFewPoints
	}

	r.Points = make([]Point, pointCount)
	r.Constraints = make([]Constraint, 0, pointCount-1)

	last := pointCount - 1
	for i := range r.Points {
		p := math.LerpVec3(start, end, float32(i)/float32(last))
		r.Points[i] = Point{
			Position:    p,
			OldPosition: p,
			Locked:      i == 0 || i == last,
		}
	}
	for i := 0; i < last; i++ {
		r.Constraints = append(r.Constraints, Constraint{A: i, B: i + 1})
	}

	r.SegmentLength = end.Sub(start).Len() / float32(last)
	r.active = true
	return nil
}

// Release discards the rope.
func (r *Rope) Release() {
	r.Points = nil
	r.Constraints = nil
	r.SegmentLength = 0
	r.active = false
}

// Update moves the endpoints onto the anchors, integrates the free points and
// relaxes the distance constraints.
func (r *Rope) Update(playerAnchor, targetAnchor mgl32.Vec3) {
	if !r.active || len(r.Points) < 2 {
		return
	}

	last := len(r.Points) - 1
	r.Points[0].Position = playerAnchor
	r.Points[0].OldPosition = playerAnchor
	r.Points[last].Position = targetAnchor
	r.Points[last].OldPosition = targetAnchor

	for i := range r.Points {
		p := &r.Points[i]
		if p.Locked {
			continue
		}
		velocity := p.Position.Sub(p.OldPosition)
		p.OldPosition = p.Position
		p.Position = p.Position.Add(velocity)
		p.Position[1] -= r.Gravity
	}

	iterations := r.Iterations
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	for n := 0; n < iterations; n++ {
		r.relax()
	}
}

// relax runs one Gauss-Seidel pass over the constraints, moving each
// unlocked end half of the correction.
func (r *Rope) relax() {
	for _, c := range r.Constraints {
		a := &r.Points[c.A]
		b := &r.Points[c.B]

		delta := b.Position.Sub(a.Position)
		dist := delta.Len()
		if dist < 1e-6 {
			continue
		}
		diff := (dist - r.SegmentLength) / dist
		correction := delta.Mul(0.5 * diff)

		if !a.Locked {
			a.Position = a.Position.Add(correction)
		}
		if !b.Locked {
			b.Position = b.Position.Sub(correction)
		}
	}
}

// RestLength returns the unstretched rope length.
func (r *Rope) RestLength() float32 {
	return r.SegmentLength * float32(len(r.Constraints))
}

// Length returns the current summed constraint length.
func (r *Rope) Length() float32 {
	var total float32
	for _, c := range r.Constraints {
		total += r.Points[c.B].Position.Sub(r.Points[c.A].Position).Len()
	}
	return total
}

// IsTensionMaxed reports whether the rope is stretched beyond MaxTension
// times its rest length.
func (r *Rope) IsTensionMaxed() bool {
	if !r.active || len(r.Constraints) == 0 {
		return false
	}
	factor := r.MaxTension
	if factor <= 0 {
		factor = DefaultMaxTension
	}
	return r.Length() > r.RestLength()*factor
}

// Direction returns the unit vector from the target end toward the player
// end, or zero for an inactive or collapsed rope.
func (r *Rope) Direction() mgl32.Vec3 {
	if !r.active || len(r.Points) < 2 {
		return mgl32.Vec3{}
	}
	return math.SafeNormalize(r.Points[0].Position.Sub(r.Points[len(r.Points)-1].Position))
}

// Positions returns a copy of the point positions.
func (r *Rope) Positions() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(r.Points))
	for i, p := range r.Points {
		out[i] = p.Position
	}
	return out
}

// Curve returns a smoothed polyline through the rope points for rendering.
func (r *Rope) Curve(samples int) []mgl32.Vec3 {
	return math.SampleCatmullRom(r.Positions(), samples)
}
