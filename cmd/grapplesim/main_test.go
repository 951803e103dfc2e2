package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/grapple/internal/config"
	"github.com/Faultbox/grapple/internal/game/sim"
	"github.com/Faultbox/grapple/internal/game/world"
	"github.com/Faultbox/grapple/internal/level"
)

func TestScriptTimeline(t *testing.T) {
	cfg := config.Default()
	blocks, err := level.Default().Build(0)
	if err != nil {
		t.Fatal(err)
	}
	s := sim.New(cfg, blocks)
	sc := newScript(cfg)

	if f := sc.frame(0, s); f.Click != nil || f.Release || f.Intent.Jump {
		t.Errorf("frame 0 = %+v, want idle", f)
	}
	if f := sc.frame(grappleAt, s); f.Click == nil {
		t.Error("expected a grapple click")
	}
	if f := sc.frame(jumpAt, s); !f.Intent.Jump {
		t.Error("expected a jump")
	}
	if f := sc.frame(releaseAt, s); !f.Release {
		t.Error("expected a release")
	}
}

func TestRunScriptedSession(t *testing.T) {
	cfg := config.Default()
	cfg.Player.Spawn = config.Vec3{0, 2, -4}
	cfg.Run.Frames = releaseAt + 60

	if err := run(context.Background(), cfg); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	cfg := config.Default()
	cfg.Run.Frames = 1 << 30

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := run(ctx, cfg); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestRunMissingLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Level.Path = filepath.Join(t.TempDir(), "missing.yaml")

	if err := run(context.Background(), cfg); err == nil {
		t.Error("expected error for missing level")
	}
}

func TestReloadKeepsLevelOnError(t *testing.T) {
	cfg := config.Default()
	blocks, _ := level.Default().Build(0)
	s := sim.New(cfg, blocks)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("blocks: [{name: A, scale: [0, 0, 0]}]"), 0644); err != nil {
		t.Fatal(err)
	}
	reload(s, path, 0)

	if len(s.Blocks) != len(blocks) {
		t.Errorf("blocks = %d, want unchanged %d", len(s.Blocks), len(blocks))
	}
}

func TestReloadKeepsLevelOnMissingHeightmap(t *testing.T) {
	cfg := config.Default()
	blocks, _ := level.Default().Build(0)
	s := sim.New(cfg, blocks)
	wall := world.FindByName(s.Blocks, "Wall1")
	before := wall.Position

	path := filepath.Join(t.TempDir(), "level.yaml")
	doc := `
blocks:
  - name: Wall1
    position: [50, 50, 50]
    scale: [1, 2, 1]
    layer: 1
  - name: Ground
    scale: [100, 10, 100]
    layer: 0
    heightmap: missing.png
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	reload(s, path, 0)

	if wall.Position != before {
		t.Errorf("Wall1 = %v after failed reload, want %v", wall.Position, before)
	}
}
