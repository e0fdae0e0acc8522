package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8123, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "orrery.db", cfg.Storage.Path)
	assert.Equal(t, 8.0, cfg.Scene.Radius)
	assert.Equal(t, 2.0, cfg.Scene.JitterSpread)
	assert.Equal(t, 200, cfg.Scene.ParticleCount)
	assert.Equal(t, 15.0, cfg.Scene.CameraDistance)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Telemetry.Enabled)
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9000
scene:
  radius: 12
  particle_count: 50
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 12.0, cfg.Scene.Radius)
	assert.Equal(t, 50, cfg.Scene.ParticleCount)
	// Untouched keys keep their defaults.
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 2.0, cfg.Scene.JitterSpread)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8123, cfg.Server.Port)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ORRERY_SERVER_PORT", "7777")
	t.Setenv("ORRERY_SCENE_RADIUS", "20")
	t.Setenv("ORRERY_LOGGING_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7777, cfg.Server.Port)
	assert.Equal(t, 20.0, cfg.Scene.Radius)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad port", key: "ORRERY_SERVER_PORT", value: "-1"},
		{name: "bad radius", key: "ORRERY_SCENE_RADIUS", value: "0"},
		{name: "bad log level", key: "ORRERY_LOGGING_LEVEL", value: "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: ["), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestTransformEnvKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ORRERY_SERVER_PORT", "server.port"},
		{"ORRERY_SCENE_PARTICLE_COUNT", "scene.particle_count"},
		{"ORRERY_STORAGE_PATH", "storage.path"},
	}
	for _, tt := range tests {
		if got := transformEnvKey(tt.in); got != tt.want {
			t.Errorf("transformEnvKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
