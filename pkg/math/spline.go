package math

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CatmullRom interpolates the uniform Catmull-Rom spline between p1 and p2
// using p0 and p3 as flanking control points. t is in [0, 1].
func CatmullRom(p0, p1, p2, p3 mgl32.Vec3, t float32) mgl32.Vec3 {
	t2 := t * t
	t3 := t2 * t

	var out mgl32.Vec3
	for i := 0; i < 3; i++ {
		out[i] = 0.5 * ((2 * p1[i]) +
			(-p0[i]+p2[i])*t +
			(2*p0[i]-5*p1[i]+4*p2[i]-p3[i])*t2 +
			(-p0[i]+3*p1[i]-3*p2[i]+p3[i])*t3)
	}
	return out
}

// SampleCatmullRom returns a smooth polyline through points with samples
// sub-steps per segment. The first and last points are repeated as their own
// flanking controls so the curve passes through both ends.
func SampleCatmullRom(points []mgl32.Vec3, samples int) []mgl32.Vec3 {
	if len(points) < 2 || samples < 1 {
		out := make([]mgl32.Vec3, len(points))
		copy(out, points)
		return out
	}

	last := len(points) - 1
	out := make([]mgl32.Vec3, 0, last*samples+1)
	for i := 0; i < last; i++ {
		p0 := points[max(i-1, 0)]
		p1 := points[i]
		p2 := points[i+1]
		p3 := points[min(i+2, last)]
		for s := 0; s < samples; s++ {
			out = append(out, CatmullRom(p0, p1, p2, p3, float32(s)/float32(samples)))
		}
	}
	return append(out, points[last])
}
