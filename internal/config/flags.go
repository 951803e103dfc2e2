package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagLevel  = flag.String("level", "", "Path to level file")
	flagWatch  = flag.Bool("watch", false, "Reload the level file when it changes")
	flagFrames = flag.Int("frames", 0, "Number of frames to simulate")
	flagDT     = flag.Float64("dt", 0, "Fixed frame time in seconds")
	flagWidth  = flag.Int("width", 0, "Viewport width")
	flagHeight = flag.Int("height", 0, "Viewport height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLevel != "" {
		cfg.Level.Path = *flagLevel
	}
	if *flagWatch {
		cfg.Level.Watch = true
	}
	if *flagFrames > 0 {
		cfg.Run.Frames = *flagFrames
	}
	if *flagDT > 0 {
		cfg.Run.FixedDT = float32(*flagDT)
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
}
