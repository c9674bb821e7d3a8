package altecs

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds the runtime configuration shared by every resource.
type Config struct {
	// ResourceType is the resource type the Runtime registers for.
	ResourceType string `yaml:"resource_type" env:"RESOURCE_TYPE"`

	// LogLevel is the minimum level forwarded to the host console:
	// debug, info, warn or error.
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`

	// PluginSymbol is the exported MainFunc looked up by the PluginLoader.
	PluginSymbol string `yaml:"plugin_symbol" env:"PLUGIN_SYMBOL"`

	// LogUnknownEvents logs host events the decoder has no variant for.
	LogUnknownEvents bool `yaml:"log_unknown_events" env:"LOG_UNKNOWN_EVENTS"`

	// Registry holds per-kind capacity hints for the object registry.
	Registry RegistryConfig `yaml:"registry" envPrefix:"REGISTRY_"`
}

// RegistryConfig sizes the object registry maps up front.
type RegistryConfig struct {
	Players         int `yaml:"players" env:"PLAYERS"`
	Vehicles        int `yaml:"vehicles" env:"VEHICLES"`
	Blips           int `yaml:"blips" env:"BLIPS"`
	VoiceChannels   int `yaml:"voice_channels" env:"VOICE_CHANNELS"`
	CollisionShapes int `yaml:"collision_shapes" env:"COLLISION_SHAPES"`
	Checkpoints     int `yaml:"checkpoints" env:"CHECKPOINTS"`
}

func (c RegistryConfig) capacity(k ObjectKind) int {
	var n int
	switch k {
	case KindPlayer:
		n = c.Players
	case KindVehicle:
		n = c.Vehicles
	case KindBlip:
		n = c.Blips
	case KindVoiceChannel:
		n = c.VoiceChannels
	case KindCollisionShape:
		n = c.CollisionShapes
	case KindCheckpoint:
		n = c.Checkpoints
	}
	return max(n, 0)
}

func (c RegistryConfig) total() int {
	n := 0
	for k := ObjectKind(0); k < kindCount; k++ {
		n += c.capacity(k)
	}
	return n
}

// DefaultConfig returns Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ResourceType:     "go",
		LogLevel:         "info",
		PluginSymbol:     "Main",
		LogUnknownEvents: true,
		Registry: RegistryConfig{
			Players:         128,
			Vehicles:        256,
			Blips:           64,
			VoiceChannels:   8,
			CollisionShapes: 64,
			Checkpoints:     32,
		},
	}
}

// Level returns the configured slog level. Unknown names map to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadConfig loads config from a YAML file and applies ALTECS_* environment
// overrides on top. If the file doesn't exist, the defaults are used.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "ALTECS_"}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
