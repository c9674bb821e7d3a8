package altecs

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "altecs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
resource_type: golang
log_level: debug
registry:
  players: 1024
`), 0o600))
	t.Setenv("ALTECS_LOG_LEVEL", "warn")
	t.Setenv("ALTECS_REGISTRY_VEHICLES", "12")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "golang", cfg.ResourceType)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 1024, cfg.Registry.Players)
	assert.Equal(t, 12, cfg.Registry.Vehicles)
	assert.Equal(t, DefaultConfig().Registry.Blips, cfg.Registry.Blips)
	assert.Equal(t, "Main", cfg.PluginSymbol)
}

func TestLoadConfigErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("registry: [1, 2"), 0o600))
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "parsing config")

	t.Setenv("ALTECS_REGISTRY_PLAYERS", "many")
	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "parse env")
}

func TestConfigLevel(t *testing.T) {
	for name, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
		"loud":    slog.LevelInfo,
	} {
		assert.Equal(t, want, Config{LogLevel: name}.Level(), name)
	}
}

func TestRegistryCapacity(t *testing.T) {
	c := RegistryConfig{Players: 4, Vehicles: -1, Checkpoints: 2}
	assert.Equal(t, 4, c.capacity(KindPlayer))
	assert.Equal(t, 0, c.capacity(KindVehicle))
	assert.Equal(t, 6, c.total())
}
