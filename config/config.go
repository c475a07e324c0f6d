package config

import (
	"image/color"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	HUD
)

// Config holds general window and loop configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"` // Simulation steps per second
	Title  string `yaml:"title"`
}

// BallConfig describes the player-controlled ball
type BallConfig struct {
	Radius      float64    `yaml:"radius"`
	Mass        float64    `yaml:"mass"`
	Restitution float64    `yaml:"restitution"` // Fraction of vertical speed kept on a bounce
	Spawn       mgl64.Vec3 `yaml:"spawn"`
	Color       color.RGBA `yaml:"-"`
}

// MotionConfig contains the input-to-force tuning
type MotionConfig struct {
	Speed        float64       `yaml:"speed"`         // Magnitude of the planar force
	JumpImpulse  float64       `yaml:"jump_impulse"`  // Upward impulse per jump
	JumpCooldown time.Duration `yaml:"jump_cooldown"` // Minimum simulated time between jumps
	Forward      mgl64.Vec3    `yaml:"forward"`
	Up           mgl64.Vec3    `yaml:"up"`
}

// PlatformSpec places one box platform in the scene
type PlatformSpec struct {
	HalfExtents mgl64.Vec3 `yaml:"half_extents"`
	Position    mgl64.Vec3 `yaml:"position"`
}

// PlatformConfig contains platform tuning and the scene's platform list
type PlatformConfig struct {
	RotationRate float64        `yaml:"rotation_rate"` // Radians per simulated second around +Y
	Color        color.RGBA     `yaml:"-"`
	Platforms    []PlatformSpec `yaml:"platforms"`
}

// PhysicsConfig contains the physics adapter tuning
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	RollingDamping float64 `yaml:"rolling_damping"` // Fraction of planar velocity kept after one second
	RestingSpeed   float64 `yaml:"resting_speed"`   // Bounces slower than this settle
	KillHeight     float64 `yaml:"kill_height"`     // Falling below this respawns the ball
}

// CameraConfig contains top-down camera configuration
type CameraConfig struct {
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
	Smoothing     float64 `yaml:"smoothing"`    // Fraction of the distance to the target covered per frame
	HeightScale   float64 `yaml:"height_scale"` // Drawn radius growth per unit of height
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Heartbeat time.Duration `yaml:"heartbeat"` // Interval of the status log line
}

// Global configuration instances
var C *Config
var Ball BallConfig
var Motion MotionConfig
var Platform PlatformConfig
var Physics PhysicsConfig
var Camera CameraConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Background   = color.RGBA{R: 18, G: 20, B: 28, A: 255}
	ShadowColor  = color.RGBA{R: 0, G: 0, B: 0, A: 110}
	MeterBgColor = color.RGBA{R: 60, G: 60, B: 70, A: 255}
)

func init() {
	Reset()
}

// Reset restores every configuration value to its built-in default.
func Reset() {
	C = &Config{
		Width:  960,
		Height: 540,
		TPS:    60,
		Title:  "rollball",
	}

	Ball = BallConfig{
		Radius:      0.5,
		Mass:        1.0,
		Restitution: 0.7,
		Spawn:       mgl64.Vec3{0, 3, 0},
		Color:       color.RGBA{R: 26, G: 51, B: 230, A: 255},
	}

	Motion = MotionConfig{
		Speed:        1.0,
		JumpImpulse:  2.0,
		JumpCooldown: 2 * time.Second,
		Forward:      mgl64.Vec3{1, 0, 0},
		Up:           mgl64.Vec3{0, 1, 0},
	}

	Platform = PlatformConfig{
		RotationRate: 1.0,
		Color:        color.RGBA{R: 77, G: 128, B: 77, A: 255},
		Platforms: []PlatformSpec{
			{HalfExtents: mgl64.Vec3{5, 0.1, 5}, Position: mgl64.Vec3{0, 0, 0}},
		},
	}

	Physics = PhysicsConfig{
		Gravity:        9.81,
		RollingDamping: 0.6,
		RestingSpeed:   0.5,
		KillHeight:     -10,
	}

	Camera = CameraConfig{
		PixelsPerUnit: 40,
		Smoothing:     0.1,
		HeightScale:   0.15,
	}

	Debug = DebugConfig{
		Enabled:   false,
		Heartbeat: 2 * time.Second,
	}

	resetInput()
}
