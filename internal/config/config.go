// Package config provides configuration loading for orrery.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (ORRERY_SERVER_PORT, ORRERY_SCENE_RADIUS, ...)
//  2. YAML config file
//  3. Hardcoded defaults
package config

import (
	"fmt"
	"time"

	"github.com/orrerylabs/orrery/internal/logging"
	"github.com/orrerylabs/orrery/internal/scene"
	"github.com/orrerylabs/orrery/internal/telemetry"
)

// Config holds the complete orrery configuration.
type Config struct {
	Server    ServerConfig     `koanf:"server"`
	Storage   StorageConfig    `koanf:"storage"`
	Scene     scene.Config     `koanf:"scene"`
	Seed      SeedConfig       `koanf:"seed"`
	Logging   logging.Config   `koanf:"logging"`
	Telemetry telemetry.Config `koanf:"telemetry"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	// CORSOrigins lists allowed origins; ["*"] by default so browser
	// frontends on other hosts can fetch projects and scenes.
	CORSOrigins []string `koanf:"cors_origins"`
}

// StorageConfig holds the SQLite store location.
type StorageConfig struct {
	// Path is the database file, or ":memory:" for an ephemeral store.
	Path string `koanf:"path"`
}

// SeedConfig controls the optional projects seed file.
type SeedConfig struct {
	// Path is a JSON file of project records imported at startup.
	Path string `koanf:"path"`
	// Watch re-imports the file on change and reloads the scene.
	Watch bool `koanf:"watch"`
}

// Validate checks the whole tree.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required")
	}
	if c.Scene.Radius <= 0 {
		return fmt.Errorf("scene.radius must be positive")
	}
	if c.Scene.JitterSpread < 0 {
		return fmt.Errorf("scene.jitter_spread cannot be negative")
	}
	if c.Scene.ParticleCount < 0 {
		return fmt.Errorf("scene.particle_count cannot be negative")
	}
	if c.Seed.Watch && c.Seed.Path == "" {
		return fmt.Errorf("seed.watch requires seed.path")
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Telemetry.Validate(); err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	return nil
}
