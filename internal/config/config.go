package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Window     WindowConfig     `toml:"window"`
	Loop       LoopConfig       `toml:"loop"`
	Resources  ResourcesConfig  `toml:"resources"`
	Camera     CameraConfig     `toml:"camera"`
	ECS        ECSConfig        `toml:"ecs"`
	Navigation NavigationConfig `toml:"navigation"`
	Scheduler  SchedulerConfig  `toml:"scheduler"`
	Render     RenderConfig     `toml:"render"`
	Logging    LoggingConfig    `toml:"logging"`
	Profile    ProfileConfig    `toml:"profile"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`  // screen pixels, used when the terminal size is unknown
	Height int    `toml:"height"` // screen pixels
}

type LoopConfig struct {
	FrameRate time.Duration `toml:"frame_rate"` // time between frames
	MaxFrames int           `toml:"max_frames"` // 0 = run until quit
}

type ResourcesConfig struct {
	Root    string `toml:"root"`    // sprite sheet documents
	Scripts string `toml:"scripts"` // lua level scripts
}

type CameraConfig struct {
	MinZoom   float64 `toml:"min_zoom"`
	MaxZoom   float64 `toml:"max_zoom"`
	Zoom      float64 `toml:"zoom"`
	PanSpeed  float64 `toml:"pan_speed"`  // world units per second
	ZoomSpeed float64 `toml:"zoom_speed"` // zoom per second
}

type ECSConfig struct {
	MaxEntities int `toml:"max_entities"`
	MaxTerrain  int `toml:"max_terrain"`
}

type NavigationConfig struct {
	FollowSpeed  float64 `toml:"follow_speed"`  // world units per second
	ArriveFactor float64 `toml:"arrive_factor"` // snap within this many frame steps
}

// Frame failure policies.
const (
	OnErrorRollback = "rollback" // discard the failed frame, retry from the last good state
	OnErrorCommit   = "commit"   // keep whatever the failed frame wrote
)

type SchedulerConfig struct {
	OnError string `toml:"on_error"`
}

type RenderConfig struct {
	CellWidth    int     `toml:"cell_width"`  // screen pixels per terminal column
	CellHeight   int     `toml:"cell_height"` // screen pixels per terminal row
	TileSize     float64 `toml:"tile_size"`   // world units per terrain tile
	DebugOverlay bool    `toml:"debug_overlay"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty logs to stderr
}

// Profile modes.
const (
	ProfileOff   = ""
	ProfileCPU   = "cpu"
	ProfileMem   = "mem"
	ProfileTrace = "trace"
)

type ProfileConfig struct {
	Mode string `toml:"mode"`
	Path string `toml:"path"` // directory the profile is written to
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default is the configuration used when no file is given.
func Default() *Config { return defaults() }

// Validate rejects settings the engine cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.ECS.MaxEntities <= 0:
		return fmt.Errorf("ecs.max_entities must be positive, got %d", c.ECS.MaxEntities)
	case c.ECS.MaxTerrain <= 0:
		return fmt.Errorf("ecs.max_terrain must be positive, got %d", c.ECS.MaxTerrain)
	case c.Camera.MinZoom <= 0 || c.Camera.MinZoom > c.Camera.MaxZoom:
		return fmt.Errorf("camera zoom range [%g, %g] is invalid", c.Camera.MinZoom, c.Camera.MaxZoom)
	case c.Loop.FrameRate <= 0:
		return fmt.Errorf("loop.frame_rate must be positive, got %s", c.Loop.FrameRate)
	case c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0:
		return fmt.Errorf("render cell size %dx%d is invalid", c.Render.CellWidth, c.Render.CellHeight)
	case c.Render.TileSize <= 0:
		return fmt.Errorf("render.tile_size must be positive, got %g", c.Render.TileSize)
	}
	switch c.Profile.Mode {
	case ProfileOff, ProfileCPU, ProfileMem, ProfileTrace:
	default:
		return fmt.Errorf("profile.mode must be empty, %q, %q or %q, got %q", ProfileCPU, ProfileMem, ProfileTrace, c.Profile.Mode)
	}
	switch c.Scheduler.OnError {
	case OnErrorRollback, OnErrorCommit:
	default:
		return fmt.Errorf("scheduler.on_error must be %q or %q, got %q", OnErrorRollback, OnErrorCommit, c.Scheduler.OnError)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "zorb",
			Width:  1280,
			Height: 720,
		},
		Loop: LoopConfig{
			FrameRate: 16 * time.Millisecond,
		},
		Resources: ResourcesConfig{
			Root:    "resources/obj",
			Scripts: "scripts",
		},
		Camera: CameraConfig{
			MinZoom:   0.5,
			MaxZoom:   3.0,
			Zoom:      0.5,
			PanSpeed:  300,
			ZoomSpeed: 1,
		},
		ECS: ECSConfig{
			MaxEntities: 8192,
			MaxTerrain:  4,
		},
		Navigation: NavigationConfig{
			FollowSpeed:  500,
			ArriveFactor: 1.5,
		},
		Scheduler: SchedulerConfig{
			OnError: OnErrorRollback,
		},
		Render: RenderConfig{
			CellWidth:    8,
			CellHeight:   16,
			TileSize:     32,
			DebugOverlay: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "zorb.log",
		},
		Profile: ProfileConfig{
			Path: ".",
		},
	}
}
