package level

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"

	"github.com/Faultbox/grapple/internal/engine/mesh"
	"github.com/Faultbox/grapple/internal/logger"
)

// LoadHeightmap decodes a PNG or BMP image and resamples it into a square
// grid of the given resolution.
func LoadHeightmap(path string, resolution int) (*mesh.Heightmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening heightmap: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding heightmap %s: %w", path, err)
	}
	if resolution <= 0 {
		resolution = mesh.DefaultResolution
	}
	h := mesh.NewHeightmap(img, resolution)
	logger.Named("level").Debug("heightmap loaded",
		zap.String("path", path),
		zap.String("format", format),
		zap.Int("resolution", resolution))
	return h, nil
}
