package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Logging     LoggingConfig     `yaml:"logging"`
	Simulation  SimulationConfig  `yaml:"simulation"`
	Movement    MovementConfig    `yaml:"movement"`
	Camera      CameraConfig      `yaml:"camera"`
	Weapons     []WeaponConfig    `yaml:"weapons"`
	Inventory   InventoryConfig   `yaml:"inventory"`
	Interaction InteractionConfig `yaml:"interaction"`
	HUD         HUDConfig         `yaml:"hud"`
	Scene       SceneConfig       `yaml:"scene"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type SimulationConfig struct {
	FixedStep        time.Duration `yaml:"fixed_step"`
	FrameInterval    time.Duration `yaml:"frame_interval"`
	MaxStepsPerFrame int           `yaml:"max_steps_per_frame"`
	Gravity          float64       `yaml:"gravity"`
	ReloadDuration   time.Duration `yaml:"reload_duration"`
	ProjectileLife   time.Duration `yaml:"projectile_lifetime"`
}

type MovementConfig struct {
	SpeedWalking float64 `yaml:"speed_walking"`
	SpeedRunning float64 `yaml:"speed_running"`
}

type CameraConfig struct {
	EyeHeight   float64 `yaml:"eye_height"`
	Sensitivity float64 `yaml:"sensitivity"`
	PitchLimit  float64 `yaml:"pitch_limit"`
}

type WeaponConfig struct {
	Name            string      `yaml:"name"`
	Automatic       bool        `yaml:"automatic"`
	RoundsPerMinute float64     `yaml:"rounds_per_minute"`
	Capacity        int         `yaml:"capacity"`
	Impulse         float64     `yaml:"impulse"`
	MaxRange        float64     `yaml:"max_range"`
	Layers          []uint8     `yaml:"layers"`
	Muzzle          *[3]float64 `yaml:"muzzle"`
	Ejection        *[3]float64 `yaml:"ejection"`
}

type InventoryConfig struct {
	EquippedAtStart int `yaml:"equipped_at_start"`
}

type InteractionConfig struct {
	Distance float64 `yaml:"distance"`
	Layer    uint8   `yaml:"layer"`
}

type HUDConfig struct {
	UpdateColor bool       `yaml:"update_color"`
	EmptySpeed  float64    `yaml:"empty_speed"`
	EmptyColor  [4]float64 `yaml:"empty_color"`
}

type SceneConfig struct {
	Spawn     [3]float64     `yaml:"spawn"`
	Colliders []BoxConfig    `yaml:"colliders"`
	NPCs      []NPCConfig    `yaml:"npcs"`
	Buttons   []ButtonConfig `yaml:"wave_buttons"`
}

type BoxConfig struct {
	Min   [3]float64 `yaml:"min"`
	Max   [3]float64 `yaml:"max"`
	Layer uint8      `yaml:"layer"`
}

type NPCConfig struct {
	Name   string    `yaml:"name"`
	Prompt string    `yaml:"prompt"`
	Box    BoxConfig `yaml:"box"`
}

type ButtonConfig struct {
	Prompt string    `yaml:"prompt"`
	Box    BoxConfig `yaml:"box"`
}

// Default returns the reference tuning of the sample scene.
func Default() *Config {
	muzzle := [3]float64{0.15, -0.1, 0.6}
	ejection := [3]float64{0.1, -0.05, 0.3}
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Simulation: SimulationConfig{
			FixedStep:        20 * time.Millisecond,
			FrameInterval:    16 * time.Millisecond,
			MaxStepsPerFrame: 5,
			Gravity:          -9.81,
			ReloadDuration:   1500 * time.Millisecond,
			ProjectileLife:   5 * time.Second,
		},
		Movement: MovementConfig{SpeedWalking: 5, SpeedRunning: 9},
		Camera:   CameraConfig{EyeHeight: 1.6, Sensitivity: 1, PitchLimit: 89},
		Weapons: []WeaponConfig{{
			Name:            "AR",
			Automatic:       true,
			RoundsPerMinute: 200,
			Capacity:        30,
			Impulse:         400,
			MaxRange:        500,
			Muzzle:          &muzzle,
			Ejection:        &ejection,
		}},
		Interaction: InteractionConfig{Distance: 3, Layer: 8},
		HUD: HUDConfig{
			UpdateColor: true,
			EmptySpeed:  1.5,
			EmptyColor:  [4]float64{1, 0, 0, 1},
		},
		Scene: SceneConfig{
			Spawn: [3]float64{0, 1, 0},
			Colliders: []BoxConfig{
				{Min: [3]float64{-50, -1, -50}, Max: [3]float64{50, 0, 50}},
			},
			NPCs: []NPCConfig{{
				Name:   "Merchant",
				Prompt: "[F] Open Shop",
				Box:    BoxConfig{Min: [3]float64{4, 0, 4}, Max: [3]float64{5, 2, 5}, Layer: 8},
			}},
			Buttons: []ButtonConfig{{
				Prompt: "[F] Next Wave",
				Box:    BoxConfig{Min: [3]float64{-5, 0, 4}, Max: [3]float64{-4, 2, 5}, Layer: 8},
			}},
		},
	}
}

// Load reads path on top of Default and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Simulation.FixedStep <= 0 {
		return fmt.Errorf("%w: simulation.fixed_step must be positive", ErrInvalid)
	}
	if c.Simulation.FrameInterval <= 0 {
		return fmt.Errorf("%w: simulation.frame_interval must be positive", ErrInvalid)
	}
	if c.Simulation.MaxStepsPerFrame <= 0 {
		return fmt.Errorf("%w: simulation.max_steps_per_frame must be positive", ErrInvalid)
	}
	if c.Movement.SpeedWalking < 0 || c.Movement.SpeedRunning < 0 {
		return fmt.Errorf("%w: movement speeds must not be negative", ErrInvalid)
	}
	names := make(map[string]int, len(c.Weapons))
	for i, w := range c.Weapons {
		if w.Name == "" {
			return fmt.Errorf("%w: weapons[%d].name is empty", ErrInvalid, i)
		}
		if j, dup := names[w.Name]; dup {
			return fmt.Errorf("%w: weapons[%d] and weapons[%d] are both named %q", ErrInvalid, j, i, w.Name)
		}
		names[w.Name] = i
		if w.Capacity <= 0 {
			return fmt.Errorf("%w: weapons[%d] (%s) capacity must be positive", ErrInvalid, i, w.Name)
		}
		if w.RoundsPerMinute <= 0 {
			return fmt.Errorf("%w: weapons[%d] (%s) rounds_per_minute must be positive", ErrInvalid, i, w.Name)
		}
		if w.Impulse <= 0 {
			return fmt.Errorf("%w: weapons[%d] (%s) impulse must be positive", ErrInvalid, i, w.Name)
		}
		if w.MaxRange <= 0 {
			return fmt.Errorf("%w: weapons[%d] (%s) max_range must be positive", ErrInvalid, i, w.Name)
		}
		for _, l := range w.Layers {
			if l > 31 {
				return fmt.Errorf("%w: weapons[%d] (%s) layer %d out of range", ErrInvalid, i, w.Name, l)
			}
		}
	}
	if c.Interaction.Layer > 31 {
		return fmt.Errorf("%w: interaction.layer %d out of range", ErrInvalid, c.Interaction.Layer)
	}
	return nil
}
