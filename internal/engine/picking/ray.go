// Package picking provides ray casting and object picking utilities.
package picking

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/grapple/internal/engine/mesh"
	"github.com/Faultbox/grapple/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3 // Normalized direction
}

// Collision describes a ray hit.
type Collision struct {
	Hit      bool
	Distance float32
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// ScreenPointToWorldRay converts a screen position in pixels into a
// world-space ray through the near and far planes.
func ScreenPointToWorldRay(screen mgl32.Vec2, view, projection mgl32.Mat4, viewport mgl32.Vec2) Ray {
	invView := view.Inv()
	invProj := projection.Inv()

	// Screen to normalized device coords (-1 to 1), Y flipped
	ndcX := (screen.X()/viewport.X() - 0.5) * 2
	ndcY := -((screen.Y()/viewport.Y() - 0.5) * 2)

	near := unproject(mgl32.Vec4{ndcX, ndcY, -1, 1}, invProj, invView)
	far := unproject(mgl32.Vec4{ndcX, ndcY, 1, 1}, invProj, invView)

	return Ray{Origin: near, Direction: math.SafeNormalize(far.Sub(near))}
}

// unproject takes an NDC point to camera space, perspective-divides, then
// moves it to world space.
func unproject(ndc mgl32.Vec4, invProj, invView mgl32.Mat4) mgl32.Vec3 {
	cam := invProj.Mul4x1(ndc)
	cam = mgl32.Vec4{cam[0] / cam[3], cam[1] / cam[3], cam[2] / cam[3], 1}
	return invView.Mul4x1(cam).Vec3()
}

// IntersectBox tests ray intersection with an axis-aligned bounding box
// using the slab method.
// If the ray starts inside the box, the exit distance is returned.
func (r Ray) IntersectBox(box math.BoundingBox) Collision {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)
	var nearAxis int
	var nearSign float32

	for axis := 0; axis < 3; axis++ {
		if r.Direction[axis] == 0 {
			if r.Origin[axis] < box.Min[axis] || r.Origin[axis] > box.Max[axis] {
				return Collision{}
			}
			continue
		}
		t1 := (box.Min[axis] - r.Origin[axis]) / r.Direction[axis]
		t2 := (box.Max[axis] - r.Origin[axis]) / r.Direction[axis]
		sign := float32(-1)
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin = t1
			nearAxis = axis
			nearSign = sign
		}
		if t2 < tmax {
			tmax = t2
		}
	}

	if tmax < tmin || tmax < 0 {
		return Collision{}
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	var normal mgl32.Vec3
	normal[nearAxis] = nearSign
	return Collision{Hit: true, Distance: t, Point: r.At(t), Normal: normal}
}

// IntersectTriangle tests the ray against triangle (a, b, c) using the
// Moller-Trumbore algorithm. Both faces are hit.
func (r Ray) IntersectTriangle(a, b, c mgl32.Vec3) Collision {
	const epsilon = 1e-6
	// Barycentric slack so rays through a shared edge hit at least one side.
	const edgeSlack = 1e-5

	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	p := r.Direction.Cross(edge2)
	det := edge1.Dot(p)
	if det > -epsilon && det < epsilon {
		return Collision{}
	}
	invDet := 1 / det

	tv := r.Origin.Sub(a)
	u := tv.Dot(p) * invDet
	if u < -edgeSlack || u > 1+edgeSlack {
		return Collision{}
	}

	q := tv.Cross(edge1)
	v := r.Direction.Dot(q) * invDet
	if v < -edgeSlack || u+v > 1+edgeSlack {
		return Collision{}
	}

	t := edge2.Dot(q) * invDet
	if t <= epsilon {
		return Collision{}
	}

	normal := math.SafeNormalize(edge1.Cross(edge2))
	if normal.Dot(r.Direction) > 0 {
		normal = normal.Mul(-1)
	}
	return Collision{Hit: true, Distance: t, Point: r.At(t), Normal: normal}
}

// IntersectMesh tests the ray against every triangle of m placed in the
// world by transform and returns the nearest hit. The ray is moved into
// mesh space instead of the vertices into world space, so distances stay in
// units of r.Direction.
func (r Ray) IntersectMesh(m *mesh.Mesh, transform mgl32.Mat4) Collision {
	if m == nil || len(m.Indices) == 0 || transform.Det() == 0 {
		return Collision{}
	}

	// Cheap reject against the transformed bounds first.
	if !r.IntersectBox(m.Bounds.Transform(transform)).Hit {
		return Collision{}
	}

	inv := transform.Inv()
	local := Ray{
		Origin:    math.TransformPoint(inv, r.Origin),
		Direction: inv.Mul4x1(r.Direction.Vec4(0)).Vec3(),
	}

	best := Collision{Distance: float32(gomath.MaxFloat32)}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Vertices[m.Indices[i]], m.Vertices[m.Indices[i+1]], m.Vertices[m.Indices[i+2]]
		hit := local.IntersectTriangle(a, b, c)
		if hit.Hit && hit.Distance < best.Distance {
			best = hit
		}
	}
	if !best.Hit {
		return Collision{}
	}

	best.Point = r.At(best.Distance)
	best.Normal = math.SafeNormalize(inv.Transpose().Mat3().Mul3x1(best.Normal))
	if best.Normal.Dot(r.Direction) > 0 {
		best.Normal = best.Normal.Mul(-1)
	}
	return best
}
