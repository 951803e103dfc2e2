package picking

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/grapple/internal/engine/mesh"
	"github.com/Faultbox/grapple/pkg/math"
)

func near(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-3
}

func TestScreenPointToWorldRayCenter(t *testing.T) {
	eye := mgl32.Vec3{0, 10, -10}
	target := mgl32.Vec3{0, 0, 0}
	view := mgl32.LookAtV(eye, target, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(90), 16.0/9.0, 0.1, 1000)
	viewport := mgl32.Vec2{1920, 1080}

	ray := ScreenPointToWorldRay(mgl32.Vec2{960, 540}, view, proj, viewport)

	want := target.Sub(eye).Normalize()
	if !near(ray.Direction[0], want[0]) || !near(ray.Direction[1], want[1]) || !near(ray.Direction[2], want[2]) {
		t.Errorf("Direction = %v, want %v", ray.Direction, want)
	}
	if ray.Origin.Sub(eye).Len() > 0.2 {
		t.Errorf("Origin = %v, want near eye %v", ray.Origin, eye)
	}
	if l := ray.Direction.Len(); !near(l, 1) {
		t.Errorf("Direction length = %v, want 1", l)
	}
}

func TestScreenPointToWorldRayCorner(t *testing.T) {
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(90), 1, 0.1, 1000)

	// Top-left of the screen points up and to the left.
	ray := ScreenPointToWorldRay(mgl32.Vec2{0, 0}, view, proj, mgl32.Vec2{800, 800})
	if ray.Direction[0] >= 0 || ray.Direction[1] <= 0 || ray.Direction[2] >= 0 {
		t.Errorf("Direction = %v, want (-x, +y, -z)", ray.Direction)
	}
}

func TestIntersectBox(t *testing.T) {
	box := math.CenteredBox(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{2, 2, 2})

	hit := Ray{Origin: mgl32.Vec3{}, Direction: mgl32.Vec3{0, 0, 1}}.IntersectBox(box)
	if !hit.Hit {
		t.Fatal("expected hit")
	}
	if !near(hit.Distance, 9) {
		t.Errorf("Distance = %v, want 9", hit.Distance)
	}
	if hit.Normal != (mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Normal = %v, want (0, 0, -1)", hit.Normal)
	}

	miss := Ray{Origin: mgl32.Vec3{5, 0, 0}, Direction: mgl32.Vec3{0, 0, 1}}.IntersectBox(box)
	if miss.Hit {
		t.Error("expected miss for parallel offset ray")
	}

	behind := Ray{Origin: mgl32.Vec3{0, 0, 20}, Direction: mgl32.Vec3{0, 0, 1}}.IntersectBox(box)
	if behind.Hit {
		t.Error("expected miss for box behind the ray")
	}
}

func TestIntersectBoxFromInside(t *testing.T) {
	box := math.CenteredBox(mgl32.Vec3{}, mgl32.Vec3{2, 2, 2})
	hit := Ray{Origin: mgl32.Vec3{}, Direction: mgl32.Vec3{1, 0, 0}}.IntersectBox(box)
	if !hit.Hit || !near(hit.Distance, 1) {
		t.Errorf("inside hit = %+v, want exit distance 1", hit)
	}
}

func TestIntersectTriangle(t *testing.T) {
	a := mgl32.Vec3{-1, 0, -1}
	b := mgl32.Vec3{1, 0, -1}
	c := mgl32.Vec3{0, 0, 1}

	down := Ray{Origin: mgl32.Vec3{0, 5, 0}, Direction: mgl32.Vec3{0, -1, 0}}
	hit := down.IntersectTriangle(a, b, c)
	if !hit.Hit || !near(hit.Distance, 5) {
		t.Fatalf("hit = %+v, want distance 5", hit)
	}
	if hit.Normal != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("Normal = %v, want facing the ray (0, 1, 0)", hit.Normal)
	}

	outside := Ray{Origin: mgl32.Vec3{3, 5, 0}, Direction: mgl32.Vec3{0, -1, 0}}
	if outside.IntersectTriangle(a, b, c).Hit {
		t.Error("expected miss outside triangle")
	}
}

func TestIntersectMeshTransformed(t *testing.T) {
	m := mesh.Box(mgl32.Vec3{1, 2, 1})
	transform := math.BuildTransform(mgl32.Vec3{0, 0, -10}, mgl32.Vec3{})

	ray := Ray{Origin: mgl32.Vec3{}, Direction: mgl32.Vec3{0, 0, -1}}
	hit := ray.IntersectMesh(m, transform)
	if !hit.Hit {
		t.Fatal("expected hit on translated box")
	}
	if !near(hit.Distance, 9.5) {
		t.Errorf("Distance = %v, want 9.5 (nearest face)", hit.Distance)
	}

	away := Ray{Origin: mgl32.Vec3{}, Direction: mgl32.Vec3{0, 0, 1}}
	if away.IntersectMesh(m, transform).Hit {
		t.Error("expected miss pointing away")
	}
}

func TestIntersectMeshRotated(t *testing.T) {
	// Rotating a 4x2x2 box a quarter turn about Y puts its long side on Z.
	m := mesh.Box(mgl32.Vec3{4, 2, 2})
	transform := math.BuildTransform(mgl32.Vec3{0, 0, -10}, mgl32.Vec3{0, 90, 0})

	ray := Ray{Origin: mgl32.Vec3{0.3, 0.2, 0}, Direction: mgl32.Vec3{0, 0, -1}}
	hit := ray.IntersectMesh(m, transform)
	if !hit.Hit {
		t.Fatal("expected hit on rotated box")
	}
	if !near(hit.Distance, 8) {
		t.Errorf("Distance = %v, want 8", hit.Distance)
	}
	if !near(hit.Point[2], -8) || !near(hit.Point[0], 0.3) {
		t.Errorf("Point = %v, want (0.3, 0.2, -8)", hit.Point)
	}
	if !near(hit.Normal[2], 1) {
		t.Errorf("Normal = %v, want (0, 0, 1)", hit.Normal)
	}
}

func TestIntersectMeshHeightfield(t *testing.T) {
	m := mesh.Heightfield(nil, mgl32.Vec3{100, 10, 100})
	// Corner-anchored grid drawn at (-50, -1, -50) covers the origin.
	transform := math.BuildTransform(mgl32.Vec3{-50, -1, -50}, mgl32.Vec3{})

	ray := Ray{Origin: mgl32.Vec3{3, 4, 7}, Direction: mgl32.Vec3{0, -1, 0}}
	hit := ray.IntersectMesh(m, transform)
	if !hit.Hit {
		t.Fatal("expected hit on heightfield")
	}
	if !near(hit.Point[1], -1) {
		t.Errorf("hit Y = %v, want -1", hit.Point[1])
	}
}

func TestIntersectMeshSharedEdge(t *testing.T) {
	m := mesh.Heightfield(nil, mgl32.Vec3{100, 10, 100})
	transform := math.BuildTransform(mgl32.Vec3{-50, -0.9, -50}, mgl32.Vec3{})

	// The origin lies on the diagonal shared by the two triangles.
	ray := Ray{Origin: mgl32.Vec3{0, 1, 0}, Direction: mgl32.Vec3{0, -1, 0}}
	hit := ray.IntersectMesh(m, transform)
	if !hit.Hit {
		t.Fatal("ray through the shared diagonal missed")
	}
	if !near(hit.Distance, 1.9) {
		t.Errorf("Distance = %v, want 1.9", hit.Distance)
	}
}

func TestIntersectMeshNil(t *testing.T) {
	ray := Ray{Direction: mgl32.Vec3{0, -1, 0}}
	if ray.IntersectMesh(nil, mgl32.Ident4()).Hit {
		t.Error("nil mesh must not be hit")
	}
}
