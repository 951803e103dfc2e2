// Package level loads static level geometry from YAML files and applies it
// to the live block set.
package level

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/grapple/internal/engine/mesh"
	"github.com/Faultbox/grapple/internal/game/world"
	"github.com/Faultbox/grapple/internal/logger"
)

// BlockDesc describes one block in a level file.
type BlockDesc struct {
	Name     string     `yaml:"name"`
	Position [3]float32 `yaml:"position"`
	Scale    [3]float32 `yaml:"scale"`
	Rotation [3]float32 `yaml:"rotation"` // Euler degrees
	Color    [4]uint8   `yaml:"color"`    // RGBA, omitted means white
	Layer    int        `yaml:"layer"`
	// Heightmap is an image path, relative to the level file. Ground only.
	Heightmap string `yaml:"heightmap,omitempty"`
}

// Level is a named set of block descriptors.
type Level struct {
	Name   string      `yaml:"name"`
	Blocks []BlockDesc `yaml:"blocks"`

	// dir resolves relative heightmap paths.
	dir string
}

// Default returns the built-in arena: a flat ground slab and two pillars.
func Default() *Level {
	return &Level{
		Name: "default",
		Blocks: []BlockDesc{
			{Name: "Wall1", Position: [3]float32{0, 0, -10}, Scale: [3]float32{1, 2, 1}, Layer: 1},
			{Name: "Wall2", Position: [3]float32{10, 0, 10}, Scale: [3]float32{1, 2, 1}, Layer: 1},
			{
				Name:     "Ground",
				Position: [3]float32{0, -0.9, 0},
				Scale:    [3]float32{100, 10, 100},
				Color:    [4]uint8{80, 80, 80, 255},
				Layer:    int(world.LayerGround),
			},
		},
	}
}

// Parse decodes and validates a level document.
func Parse(data []byte) (*Level, error) {
	var l Level
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("decoding level: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Load reads a level file.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	l.dir = filepath.Dir(path)
	return l, nil
}

// Validate reports every invalid block at once.
func (l *Level) Validate() error {
	var errs error
	seen := make(map[string]bool, len(l.Blocks))
	for i, b := range l.Blocks {
		if b.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("block %d: missing name", i))
		} else if seen[b.Name] {
			errs = multierr.Append(errs, fmt.Errorf("block %d: duplicate name %q", i, b.Name))
		}
		seen[b.Name] = true

		if b.Scale[0] <= 0 || b.Scale[1] <= 0 || b.Scale[2] <= 0 {
			errs = multierr.Append(errs, fmt.Errorf("block %q: scale must be positive, got %v", b.Name, b.Scale))
		}
		if b.Layer < 0 {
			errs = multierr.Append(errs, fmt.Errorf("block %q: negative layer %d", b.Name, b.Layer))
		}
		if b.Heightmap != "" && world.Layer(b.Layer) != world.LayerGround {
			errs = multierr.Append(errs, fmt.Errorf("block %q: heightmap requires layer 0", b.Name))
		}
	}
	return errs
}

// Build creates fresh blocks for every descriptor.
func (l *Level) Build(resolution int) ([]*world.Block, error) {
	return l.Apply(nil, resolution)
}

// Apply updates blocks in place by name and appends blocks for new names.
// Blocks missing from the level are kept: callers may hold references to
// them (the grapple target). The returned slice replaces blocks. On error no
// block is modified and blocks is returned unchanged.
func (l *Level) Apply(blocks []*world.Block, resolution int) ([]*world.Block, error) {
	log := logger.Named("level")

	// Everything that can fail happens before the first block is touched.
	heightmaps := make([]*mesh.Heightmap, len(l.Blocks))
	for i, d := range l.Blocks {
		if d.Heightmap == "" {
			continue
		}
		hm, err := LoadHeightmap(l.resolve(d.Heightmap), resolution)
		if err != nil {
			return blocks, fmt.Errorf("block %q: %w", d.Name, err)
		}
		heightmaps[i] = hm
	}

	out := make([]*world.Block, len(blocks), len(blocks)+len(l.Blocks))
	copy(out, blocks)

	present := make(map[string]bool, len(l.Blocks))
	for i, d := range l.Blocks {
		present[d.Name] = true
		hm := heightmaps[i]

		b := world.FindByName(out, d.Name)
		if b == nil {
			b = world.NewBlock(d.Name, d.position(), d.scale(), d.rotation(), d.color(), world.Layer(d.Layer))
			if hm != nil {
				b.SetHeightmap(hm)
			}
			out = append(out, b)
			continue
		}

		b.Position = d.position()
		b.Scale = d.scale()
		b.Rotation = d.rotation()
		b.Color = d.color()
		b.Layer = world.Layer(d.Layer)
		b.SetHeightmap(hm)
	}

	for _, b := range out {
		if b != nil && !present[b.Name] {
			log.Info("block missing from level, keeping it", zap.String("block", b.Name))
		}
	}
	return out, nil
}

func (l *Level) resolve(path string) string {
	if filepath.IsAbs(path) || l.dir == "" {
		return path
	}
	return filepath.Join(l.dir, path)
}

func (d BlockDesc) position() mgl32.Vec3 { return mgl32.Vec3(d.Position) }
func (d BlockDesc) scale() mgl32.Vec3    { return mgl32.Vec3(d.Scale) }
func (d BlockDesc) rotation() mgl32.Vec3 { return mgl32.Vec3(d.Rotation) }

func (d BlockDesc) color() color.RGBA {
	if d.Color == [4]uint8{} {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBA{R: d.Color[0], G: d.Color[1], B: d.Color[2], A: d.Color[3]}
}
