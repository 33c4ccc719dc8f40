package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceDefaults is reported by LoadOverrides when no file was found.
const SourceDefaults = "defaults"

// Overrides is the YAML shape of a config file. Every field is optional;
// absent fields keep their defaults.
type Overrides struct {
	Window struct {
		Width  *int `yaml:"width"`
		Height *int `yaml:"height"`
	} `yaml:"window"`
	Player struct {
		MoveSpeed *float64 `yaml:"move_speed"`
		JumpSpeed *float64 `yaml:"jump_speed"`
		MaxJumps  *int     `yaml:"max_jumps"`
	} `yaml:"player"`
	Physics struct {
		Gravity            *float64 `yaml:"gravity"`
		VerticalSpeedClamp *float64 `yaml:"vertical_speed_clamp"`
		GroundProbe        *float64 `yaml:"ground_probe"`
	} `yaml:"physics"`
	Animation struct {
		FrameInterval *float64 `yaml:"frame_interval"`
	} `yaml:"animation"`
	Level struct {
		Path *string `yaml:"path"`
	} `yaml:"level"`
	Debug struct {
		Hitboxes *bool `yaml:"hitboxes"`
	} `yaml:"debug"`
}

// LoadOverrides applies a YAML config file on top of the defaults and
// returns the path it used.
// Search order: customPath -> ~/.acorn-run/config.yaml -> ./configs/acorn-run.yaml -> defaults
func LoadOverrides(customPath string) (string, error) {
	if customPath != "" {
		if err := applyFile(customPath); err != nil {
			return "", err
		}
		return customPath, nil
	}

	candidates := []string{userConfigPath("config.yaml"), filepath.Join("configs", "acorn-run.yaml")}
	for _, p := range candidates {
		if p == "" {
			continue
		}
		err := applyFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", err
		}
		return p, nil
	}
	return SourceDefaults, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".acorn-run", filename)
}

func applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := Apply(o); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Apply validates o and copies its set fields over the current settings.
// Nothing is changed when validation fails.
func Apply(o Overrides) error {
	if err := o.validate(); err != nil {
		return err
	}

	setInt(&C.Width, o.Window.Width)
	setInt(&C.Height, o.Window.Height)
	setFloat(&Player.MoveSpeed, o.Player.MoveSpeed)
	setFloat(&Player.JumpSpeed, o.Player.JumpSpeed)
	setInt(&Player.MaxJumps, o.Player.MaxJumps)
	setFloat(&Physics.Gravity, o.Physics.Gravity)
	setFloat(&Physics.VerticalSpeedClamp, o.Physics.VerticalSpeedClamp)
	setFloat(&Physics.GroundProbe, o.Physics.GroundProbe)
	setFloat(&Animation.FrameInterval, o.Animation.FrameInterval)
	if o.Level.Path != nil {
		Level.Path = *o.Level.Path
	}
	if o.Debug.Hitboxes != nil {
		Debug.Hitboxes = *o.Debug.Hitboxes
	}
	return nil
}

func (o Overrides) validate() error {
	positive := map[string]*float64{
		"player.move_speed":            o.Player.MoveSpeed,
		"player.jump_speed":            o.Player.JumpSpeed,
		"physics.vertical_speed_clamp": o.Physics.VerticalSpeedClamp,
		"animation.frame_interval":     o.Animation.FrameInterval,
	}
	for name, v := range positive {
		if v != nil && *v <= 0 {
			return fmt.Errorf("%s must be positive, got %v", name, *v)
		}
	}
	if v := o.Physics.Gravity; v != nil && *v < 0 {
		return fmt.Errorf("physics.gravity must not be negative, got %v", *v)
	}
	if v := o.Physics.GroundProbe; v != nil && *v < 0 {
		return fmt.Errorf("physics.ground_probe must not be negative, got %v", *v)
	}
	if v := o.Player.MaxJumps; v != nil && *v < 0 {
		return fmt.Errorf("player.max_jumps must not be negative, got %d", *v)
	}
	if v := o.Window.Width; v != nil && *v <= 0 {
		return fmt.Errorf("window.width must be positive, got %d", *v)
	}
	if v := o.Window.Height; v != nil && *v <= 0 {
		return fmt.Errorf("window.height must be positive, got %d", *v)
	}
	if v := o.Level.Path; v != nil && *v == "" {
		return errors.New("level.path must not be empty")
	}
	return nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
