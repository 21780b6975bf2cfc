// Package config handles sandbox configuration loading and management.
package config

import "strings"

// Config holds all sandbox settings.
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Game     GameConfig     `yaml:"game"`
	Movement MovementConfig `yaml:"movement"`
	Debug    DebugConfig    `yaml:"debug"`
	Keybinds KeybindsConfig `yaml:"keybinds"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DisplayConfig holds window settings, persisted for renderer
// frontends.
type DisplayConfig struct {
	Mode   string `yaml:"mode"` // "windowed", "fullscreen_windowed" or "fullscreen"
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	MSAA   bool   `yaml:"msaa"`
}

// GameConfig holds session and scenario settings.
type GameConfig struct {
	ScenarioID    string `yaml:"scenario_id"`    // Empty means pick the first catalog entry
	ScenariosPath string `yaml:"scenarios_path"` // Directory of scenario files
	ShadowMode    string `yaml:"shadow_mode"`    // "blob" or "stencil"
}

// MovementConfig holds character controller tuning.
type MovementConfig struct {
	WalkSpeed   float32 `yaml:"walk_speed"`
	SprintSpeed float32 `yaml:"sprint_speed"`
	TurnSpeed   float32 `yaml:"turn_speed"`
	JumpSpeed   float32 `yaml:"jump_speed"`
	Gravity     float32 `yaml:"gravity"`

	// Foot planting reach limits for the procedural animator.
	FootSupportMaxDrop float32 `yaml:"foot_support_max_drop"`
	FootSupportMaxRise float32 `yaml:"foot_support_max_rise"`
}

// DebugConfig holds diagnostic toggles.
type DebugConfig struct {
	ShowPerformanceOverlay bool `yaml:"show_performance_overlay"`
	ShowCollisionShapes    bool `yaml:"show_collision_shapes"`
	ShowAnimationDebug     bool `yaml:"show_animation_debug"`
	ShowWorldAxes          bool `yaml:"show_world_axes"`
}

// KeybindsConfig maps actions to comma-separated key names.
type KeybindsConfig struct {
	MoveForward  string `yaml:"move_forward"`
	MoveBackward string `yaml:"move_backward"`
	StrafeLeft   string `yaml:"strafe_left"`
	StrafeRight  string `yaml:"strafe_right"`
	TurnLeft     string `yaml:"turn_left"`
	TurnRight    string `yaml:"turn_right"`
	Sprint       string `yaml:"sprint"`
	Jump         string `yaml:"jump"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Mode:   "windowed",
			Width:  1920,
			Height: 1080,
			MSAA:   true,
		},
		Game: GameConfig{
			ScenarioID:    "",
			ScenariosPath: "scenarios",
			ShadowMode:    "blob",
		},
		Movement: MovementConfig{
			WalkSpeed:          5.5,
			SprintSpeed:        9.5,
			TurnSpeed:          2.8,
			JumpSpeed:          7.5,
			Gravity:            -20.0,
			FootSupportMaxDrop: 0.45,
			FootSupportMaxRise: 0.42,
		},
		Debug: DebugConfig{
			ShowPerformanceOverlay: true,
		},
		Keybinds: KeybindsConfig{
			MoveForward:  "W",
			MoveBackward: "S",
			StrafeLeft:   "Q",
			StrafeRight:  "E",
			TurnLeft:     "A",
			TurnRight:    "D",
			Sprint:       "LeftShift",
			Jump:         "Space",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Keys splits a comma-separated binding into its key names.
func Keys(binding string) []string {
	parts := strings.Split(binding, ",")
	keys := parts[:0]
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			keys = append(keys, trimmed)
		}
	}
	return keys
}

// EnsureNonEmpty falls back to the default binding for any action left
// without keys, so every action stays reachable.
func (k *KeybindsConfig) EnsureNonEmpty() {
	def := Default().Keybinds
	bindings := []struct {
		field    *string
		fallback string
	}{
		{&k.MoveForward, def.MoveForward},
		{&k.MoveBackward, def.MoveBackward},
		{&k.StrafeLeft, def.StrafeLeft},
		{&k.StrafeRight, def.StrafeRight},
		{&k.TurnLeft, def.TurnLeft},
		{&k.TurnRight, def.TurnRight},
		{&k.Sprint, def.Sprint},
		{&k.Jump, def.Jump},
	}
	for _, b := range bindings {
		if len(Keys(*b.field)) == 0 {
			*b.field = b.fallback
		}
	}
}
