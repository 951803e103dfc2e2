// Package config handles simulator configuration loading and management.
package config

import "github.com/go-gl/mathgl/mgl32"

// Config holds all simulator settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Player   PlayerConfig   `yaml:"player"`
	Rope     RopeConfig     `yaml:"rope"`
	Level    LevelConfig    `yaml:"level"`
	Run      RunConfig      `yaml:"run"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// Vec3 is a YAML-friendly three component vector ([x, y, z]).
type Vec3 [3]float32

// Vec returns v as an mgl32 vector.
func (v Vec3) Vec() mgl32.Vec3 {
	return mgl32.Vec3(v)
}

// GraphicsConfig holds the viewport used for picking.
type GraphicsConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	FPSLimit int `yaml:"fps_limit"`
}

// CameraConfig holds the projection and the initial camera placement.
type CameraConfig struct {
	FOV      float32 `yaml:"fov"` // vertical, degrees
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
	Position Vec3    `yaml:"position"`
	Target   Vec3    `yaml:"target"`
}

// PhysicsConfig holds global physics settings.
type PhysicsConfig struct {
	Gravity float32 `yaml:"gravity"`
	// MaxFrameTime caps dt in seconds so a stalled frame cannot tunnel.
	MaxFrameTime float32 `yaml:"max_frame_time"`
}

// PlayerConfig holds player tuning.
type PlayerConfig struct {
	MoveSpeed        float32 `yaml:"move_speed"`
	JumpFactor       float32 `yaml:"jump_factor"`
	TurnSmoothing    float32 `yaml:"turn_smoothing"`
	Mass             float32 `yaml:"mass"`
	Spawn            Vec3    `yaml:"spawn"`
	Scale            float32 `yaml:"scale"`
	BoundsMin        Vec3    `yaml:"bounds_min"` // model space
	BoundsMax        Vec3    `yaml:"bounds_max"`
	GroundRayLift    float32 `yaml:"ground_ray_lift"`
	GroundRayLength  float32 `yaml:"ground_ray_length"`
	GroundCorrection float32 `yaml:"ground_correction"`
	GroundSlop       float32 `yaml:"ground_slop"`
	AnimationFrames  []int   `yaml:"animation_frames"`
}

// RopeConfig holds rope simulation settings.
type RopeConfig struct {
	Points              int     `yaml:"points"`
	Iterations          int     `yaml:"iterations"`
	Gravity             float32 `yaml:"gravity"`
	MaxTension          float32 `yaml:"max_tension"`
	CollisionHalfExtent float32 `yaml:"collision_half_extent"`
	CurveSamples        int     `yaml:"curve_samples"`
}

// LevelConfig holds level file settings.
type LevelConfig struct {
	Path                string `yaml:"path"` // empty uses the built-in level
	Watch               bool   `yaml:"watch"`
	HeightmapResolution int    `yaml:"heightmap_resolution"`
}

// RunConfig controls the headless driver.
type RunConfig struct {
	Frames        int     `yaml:"frames"`
	FixedDT       float32 `yaml:"fixed_dt"`
	SnapshotEvery int     `yaml:"snapshot_every"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:    1280,
			Height:   720,
			FPSLimit: 60,
		},
		Camera: CameraConfig{
			FOV:      90,
			Near:     0.1,
			Far:      1000,
			Position: Vec3{0, 110, -10},
			Target:   Vec3{0, 100, 0},
		},
		Physics: PhysicsConfig{
			Gravity:      9.81,
			MaxFrameTime: 0.1,
		},
		Player: PlayerConfig{
			MoveSpeed:        10,
			JumpFactor:       2,
			TurnSmoothing:    0.1,
			Mass:             1,
			Spawn:            Vec3{0, 105, 0},
			Scale:            0.01,
			BoundsMin:        Vec3{-50, 0, -50},
			BoundsMax:        Vec3{50, 180, 50},
			GroundRayLift:    1,
			GroundRayLength:  3,
			GroundCorrection: 0.5,
			GroundSlop:       0.05,
			AnimationFrames:  []int{60, 24},
		},
		Rope: RopeConfig{
			Points:              50,
			Iterations:          20,
			Gravity:             0.005,
			MaxTension:          1.5,
			CollisionHalfExtent: 0.05,
			CurveSamples:        8,
		},
		Level: LevelConfig{
			HeightmapResolution: 256,
		},
		Run: RunConfig{
			Frames:        1200,
			FixedDT:       1.0 / 60.0,
			SnapshotEvery: 60,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
