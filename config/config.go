package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed float64 // horizontal speed and descend speed, units per tick
	JumpSpeed float64
	MaxJumps  int
}

// EnemyConfig contains patrol enemy configuration
type EnemyConfig struct {
	// Fallback patrol speed when a level does not set one
	DefaultSpeed float64
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity            float64
	VerticalSpeedClamp float64 // Maximum vertical speed magnitude
	GroundProbe        float64 // Distance below the player searched for ground
	CellSize           int     // resolv space cell size
}

// AnimationConfig contains animation-related configuration values
type AnimationConfig struct {
	FrameInterval float64 // seconds between frames
}

// CameraConfig contains camera configuration
type CameraConfig struct {
	// Viewport size in world units; zero means the window size
	ViewportWidth  float64
	ViewportHeight float64
}

// HUDConfig contains the score display configuration
type HUDConfig struct {
	ScoreX, ScoreY float64 // GUI coordinates, y up from the bottom edge
	FontSize       float64
	TextColor      color.RGBA
	PulseScale     float32 // extra text scale right after a pickup
	PulseSeconds   float32
}

// LevelConfig names the level to play
type LevelConfig struct {
	Path string // relative to the asset root
}

// Config holds general game configuration
type Config struct {
	Width      int
	Height     int
	Title      string
	Background color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Hitboxes    bool // Draw collision boxes
	HitboxColor color.RGBA
	Mute        bool // Skip the start sound
}

// Default is the ECS layer every entity and renderer uses.
const Default = 0

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Physics PhysicsConfig
var Animation AnimationConfig
var Camera CameraConfig
var HUD HUDConfig
var Level LevelConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	Black          = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White          = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	CornflowerBlue = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	Magenta        = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

func init() {
	Reset()
}

// Reset restores every setting to its default.
func Reset() {
	C = &Config{
		Width:      1000,
		Height:     650,
		Title:      "Side Scroller",
		Background: CornflowerBlue,
	}

	Player = PlayerConfig{
		MoveSpeed: 5,
		JumpSpeed: 15,
		MaxJumps:  2,
	}

	Enemy = EnemyConfig{
		DefaultSpeed: 2,
	}

	Physics = PhysicsConfig{
		Gravity:            1.5,
		VerticalSpeedClamp: 16,
		GroundProbe:        5,
		CellSize:           16,
	}

	Animation = AnimationConfig{
		FrameInterval: 0.1,
	}

	Camera = CameraConfig{}

	HUD = HUDConfig{
		ScoreX:       500,
		ScoreY:       600,
		FontSize:     14,
		TextColor:    Black,
		PulseScale:   0.5,
		PulseSeconds: 0.3,
	}

	Level = LevelConfig{
		Path: "levels/meadow.tmx",
	}

	Debug = DebugConfig{
		HitboxColor: Magenta,
	}
}
