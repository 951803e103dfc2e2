// grapplesim runs the grapple simulation headless: it loads a level, plays a
// scripted session at a fixed frame time and logs snapshots.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/grapple/internal/config"
	"github.com/Faultbox/grapple/internal/engine/debug"
	"github.com/Faultbox/grapple/internal/game/sim"
	"github.com/Faultbox/grapple/internal/game/world"
	"github.com/Faultbox/grapple/internal/level"
	"github.com/Faultbox/grapple/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== grapplesim ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("simulation failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("simulation finished")
}

func run(ctx context.Context, cfg *config.Config) error {
	lvl, err := loadLevel(cfg)
	if err != nil {
		return err
	}
	blocks, err := lvl.Build(cfg.Level.HeightmapResolution)
	if err != nil {
		return fmt.Errorf("building level %s: %w", lvl.Name, err)
	}
	logger.Info("level loaded", zap.String("level", lvl.Name), zap.Int("blocks", len(blocks)))

	s := sim.New(cfg, blocks)
	sc := newScript(cfg)
	lines := debug.NewWireframe()

	var reloads <-chan string
	if cfg.Level.Watch && cfg.Level.Path != "" {
		w, err := level.NewWatcher(cfg.Level.Path)
		if err != nil {
			return fmt.Errorf("watching level: %w", err)
		}
		defer w.Close()
		reloads = w.Events
		logger.Info("watching level file", zap.String("path", cfg.Level.Path))
	}

	// Pace to wall-clock time only when someone may be editing the level.
	var tick <-chan time.Time
	if reloads != nil && cfg.Graphics.FPSLimit > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(cfg.Graphics.FPSLimit))
		defer ticker.Stop()
		tick = ticker.C
	}

	for n := 0; n < cfg.Run.Frames; n++ {
		select {
		case <-ctx.Done():
			logger.Info("interrupted", zap.Int("frame", n))
			return nil
		case path, ok := <-reloads:
			if !ok {
				reloads = nil
				break
			}
			reload(s, path, cfg.Level.HeightmapResolution)
		default:
		}

		s.Step(sc.frame(n, s))

		if cfg.Run.SnapshotEvery > 0 && n%cfg.Run.SnapshotEvery == 0 {
			lines.Reset()
			s.DrawDebug(lines)
			logSnapshot(s.Snapshot(), lines.LineCount())
		}

		if tick != nil {
			select {
			case <-tick:
			case <-ctx.Done():
				return nil
			}
		}
	}
	logSnapshot(s.Snapshot(), lines.LineCount())
	return nil
}

func loadLevel(cfg *config.Config) (*level.Level, error) {
	if cfg.Level.Path == "" {
		return level.Default(), nil
	}
	return level.Load(cfg.Level.Path)
}

// reload applies an edited level file. A broken file keeps the current
// level.
func reload(s *sim.Simulation, path string, resolution int) {
	lvl, err := level.Load(path)
	if err != nil {
		logger.Warn("level reload failed", zap.String("path", path), zap.Error(err))
		return
	}
	blocks, err := lvl.Apply(s.Blocks, resolution)
	if err != nil {
		logger.Warn("level reload failed", zap.String("path", path), zap.Error(err))
		return
	}
	s.SetBlocks(blocks)
	logger.Info("level reloaded", zap.String("level", lvl.Name), zap.Int("blocks", len(blocks)))
}

func logSnapshot(snap sim.Snapshot, debugLines int) {
	logger.Info("snapshot",
		zap.Uint64("frame", snap.Frame),
		zap.Float32s("position", snap.PlayerPosition[:]),
		zap.Float32("heading", snap.PlayerRotation.Y()),
		zap.Int("anim", snap.AnimIndex),
		zap.Bool("grounded", snap.Grounded),
		zap.Bool("rope", snap.RopeActive),
		zap.String("target", snap.SelectedBlock),
		zap.Float32("rope_length", snap.RopeLength),
		zap.Bool("taut", snap.TensionMaxed),
		zap.Int("debug_lines", debugLines),
	)
}

// firstSolid returns the first non-ground block, the scripted grapple target.
func firstSolid(blocks []*world.Block) *world.Block {
	for _, b := range blocks {
		if b != nil && !b.Layer.IsGround() {
			return b
		}
	}
	return nil
}
