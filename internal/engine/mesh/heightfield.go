package mesh

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/draw"
)

// DefaultResolution is the grid size heightmaps are resampled to.
const DefaultResolution = 256

// Heightmap is a grayscale height grid with values in [0, 1].
type Heightmap struct {
	Width, Depth int
	Values       []float32 // row-major, Values[z*Width+x]
}

// At returns the height sample at grid cell (x, z), clamped to the grid.
func (h *Heightmap) At(x, z int) float32 {
	x = clampi(x, 0, h.Width-1)
	z = clampi(z, 0, h.Depth-1)
	return h.Values[z*h.Width+x]
}

// FlatHeightmap returns a 2x2 grid at height zero.
func FlatHeightmap() *Heightmap {
	return &Heightmap{Width: 2, Depth: 2, Values: make([]float32, 4)}
}

// NewHeightmap resamples img to resolution x resolution with bilinear
// filtering and converts it to normalized gray heights.
// A resolution below 2 keeps the source size.
func NewHeightmap(img image.Image, resolution int) *Heightmap {
	bounds := img.Bounds()
	w, d := bounds.Dx(), bounds.Dy()
	if resolution >= 2 {
		w, d = resolution, resolution
	}
	if w < 2 || d < 2 {
		return FlatHeightmap()
	}

	gray := image.NewGray(image.Rect(0, 0, w, d))
	draw.BiLinear.Scale(gray, gray.Bounds(), img, bounds, draw.Src, nil)

	values := make([]float32, w*d)
	for z := 0; z < d; z++ {
		for x := 0; x < w; x++ {
			values[z*w+x] = float32(gray.GrayAt(x, z).Y) / 255
		}
	}
	return &Heightmap{Width: w, Depth: d, Values: values}
}

// Heightfield builds a terrain mesh spanning [0,size.X] x [0,size.Z] with
// vertex heights of value*size.Y. The mesh is anchored at its corner.
func Heightfield(h *Heightmap, size mgl32.Vec3) *Mesh {
	if h == nil || h.Width < 2 || h.Depth < 2 {
		h = FlatHeightmap()
	}

	stepX := size.X() / float32(h.Width-1)
	stepZ := size.Z() / float32(h.Depth-1)

	vertices := make([]mgl32.Vec3, 0, h.Width*h.Depth)
	for z := 0; z < h.Depth; z++ {
		for x := 0; x < h.Width; x++ {
			vertices = append(vertices, mgl32.Vec3{
				float32(x) * stepX,
				h.At(x, z) * size.Y(),
				float32(z) * stepZ,
			})
		}
	}

	indices := make([]uint32, 0, (h.Width-1)*(h.Depth-1)*6)
	for z := 0; z < h.Depth-1; z++ {
		for x := 0; x < h.Width-1; x++ {
			i0 := uint32(z*h.Width + x)
			i1 := i0 + 1
			i2 := i0 + uint32(h.Width)
			i3 := i2 + 1
			indices = append(indices, i0, i2, i1, i1, i2, i3)
		}
	}

	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Bounds:   computeBounds(vertices),
	}
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
