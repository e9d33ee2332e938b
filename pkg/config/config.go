// pkg/config/config.go

// Package config loads the game tuning: world extent, per-entity motion
// constants, wave progression and the optional audio and telemetry outputs.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Environment overrides, applied after the YAML layers.
const (
	EnvRespawnDelay = "STARWAVE_RESPAWN_DELAY"
	EnvSeed         = "STARWAVE_SEED"
	EnvAudio        = "STARWAVE_AUDIO"
	EnvTelemetryDir = "STARWAVE_TELEMETRY_DIR"
)

// GameConfig is the complete configuration.
type GameConfig struct {
	World WorldConfig `yaml:"world"`
	// RespawnDelay is the countdown, in frames, shared by every entity
	// between death and its return to play.
	RespawnDelay int `yaml:"respawn_delay"`
	// Seed feeds the spawn-offset PRNG. Zero picks a random seed.
	Seed      uint64          `yaml:"seed"`
	Player    PlayerConfig    `yaml:"player"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Asteroid  AsteroidConfig  `yaml:"asteroid"`
	Wave      WaveConfig      `yaml:"wave"`
	Audio     AudioConfig     `yaml:"audio"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// WorldConfig is the playfield extent. Enemies and asteroids die when they
// move past it.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Point is a position or vector in world units.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Size is the sprite geometry used for bounding rectangles.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// MotionConfig holds the per-frame kinematic constants of an entity kind.
type MotionConfig struct {
	Thrust   float64 `yaml:"thrust"`
	Damping  float64 `yaml:"damping"`
	MaxSpeed float64 `yaml:"max_speed"`
}

type PlayerConfig struct {
	Spawn           Point        `yaml:"spawn"`
	Motion          MotionConfig `yaml:"motion"`
	Size            Size         `yaml:"size"`
	ExplosionFrames int          `yaml:"explosion_frames"`
	ThrustFrames    int          `yaml:"thrust_frames"`
}

type EnemyConfig struct {
	Count      int          `yaml:"count"`
	Start      Point        `yaml:"start"`
	Motion     MotionConfig `yaml:"motion"`
	ChaseRange float64      `yaml:"chase_range"`
	Size       Size         `yaml:"size"`
}

type AsteroidConfig struct {
	Count        int     `yaml:"count"`
	Start        Point   `yaml:"start"`
	Velocity     Point   `yaml:"velocity"`
	Acceleration Point   `yaml:"acceleration"`
	MaxSpeed     float64 `yaml:"max_speed"`
	Size         Size    `yaml:"size"`
}

// WaveConfig drives the wave manager.
type WaveConfig struct {
	InitialQuota   int `yaml:"initial_quota"`
	QuotaIncrement int `yaml:"quota_increment"`
	// RetainDeferred keeps deferred spawns queued after release and resets
	// every queued entity each frame while admission is open.
	RetainDeferred bool `yaml:"retain_deferred"`
}

type AudioConfig struct {
	Enabled    bool `yaml:"enabled"`
	SampleRate int  `yaml:"sample_rate"`
}

// TelemetryConfig enables per-wave CSV output when Dir is non-empty.
type TelemetryConfig struct {
	Dir string `yaml:"dir"`
}

// DefaultConfig returns the embedded defaults.
func DefaultConfig() *GameConfig {
	cfg := &GameConfig{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults are malformed: %v", err))
	}
	return cfg
}

// Load reads the YAML file at path on top of the embedded defaults. Only the
// fields present in the file are overwritten. An empty path yields the
// defaults.
func Load(path string) (*GameConfig, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// LoadConfig loads path (see Load), applies environment overrides and
// validates the result.
func LoadConfig(path string) (*GameConfig, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes cfg as YAML.
func SaveConfig(cfg *GameConfig, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from STARWAVE_* environment variables.
func (c *GameConfig) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvRespawnDelay); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvRespawnDelay, err)
		}
		c.RespawnDelay = n
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvSeed, err)
		}
		c.Seed = n
	}
	if v, ok := os.LookupEnv(EnvAudio); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvAudio, err)
		}
		c.Audio.Enabled = b
	}
	if v, ok := os.LookupEnv(EnvTelemetryDir); ok {
		c.Telemetry.Dir = v
	}
	return nil
}

// Validate rejects configurations the simulation cannot run with.
func (c *GameConfig) Validate() error {
	switch {
	case c.World.Width < 1 || c.World.Height < 1:
		return fmt.Errorf("%w: world must be at least 1x1, got %vx%v", ErrInvalidConfig, c.World.Width, c.World.Height)
	case c.RespawnDelay < 1:
		return fmt.Errorf("%w: respawn_delay must be positive, got %d", ErrInvalidConfig, c.RespawnDelay)
	case c.Wave.InitialQuota < 1:
		return fmt.Errorf("%w: wave.initial_quota must be positive, got %d", ErrInvalidConfig, c.Wave.InitialQuota)
	case c.Wave.QuotaIncrement < 0:
		return fmt.Errorf("%w: wave.quota_increment must not be negative, got %d", ErrInvalidConfig, c.Wave.QuotaIncrement)
	case c.Enemy.Count < 0 || c.Asteroid.Count < 0:
		return fmt.Errorf("%w: entity counts must not be negative", ErrInvalidConfig)
	case c.Enemy.ChaseRange <= 0:
		return fmt.Errorf("%w: enemy.chase_range must be positive, got %v", ErrInvalidConfig, c.Enemy.ChaseRange)
	case c.Player.ExplosionFrames < 0 || c.Player.ThrustFrames < 1:
		return fmt.Errorf("%w: player animation frame counts out of range", ErrInvalidConfig)
	}

	for name, m := range map[string]MotionConfig{"player": c.Player.Motion, "enemy": c.Enemy.Motion} {
		if m.MaxSpeed <= 0 || m.Damping < 0 || m.Thrust < 0 {
			return fmt.Errorf("%w: %s.motion needs max_speed > 0 and non-negative thrust and damping", ErrInvalidConfig, name)
		}
	}
	if c.Asteroid.MaxSpeed <= 0 {
		return fmt.Errorf("%w: asteroid.max_speed must be positive, got %v", ErrInvalidConfig, c.Asteroid.MaxSpeed)
	}
	if v := c.Asteroid.Velocity; math.Abs(v.X) > c.Asteroid.MaxSpeed || math.Abs(v.Y) > c.Asteroid.MaxSpeed {
		return fmt.Errorf("%w: asteroid.velocity (%v, %v) exceeds asteroid.max_speed %v", ErrInvalidConfig, v.X, v.Y, c.Asteroid.MaxSpeed)
	}

	for name, s := range map[string]Size{"player": c.Player.Size, "enemy": c.Enemy.Size, "asteroid": c.Asteroid.Size} {
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("%w: %s.size must be positive", ErrInvalidConfig, name)
		}
	}

	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: audio.sample_rate must be positive when audio is enabled", ErrInvalidConfig)
	}
	return nil
}
