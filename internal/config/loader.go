package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces orrery environment variables.
const envPrefix = "ORRERY_"

// defaultYAML is the bottom layer of the precedence stack.
const defaultYAML = `
server:
  host: localhost
  port: 8123
  shutdown_timeout: 10s
  cors_origins: ["*"]
storage:
  path: orrery.db
scene:
  radius: 8
  jitter_spread: 2
  particle_count: 200
  particle_extent: 25
  camera_distance: 15
seed:
  path: ""
  watch: false
logging:
  level: info
  format: json
telemetry:
  enabled: false
  endpoint: localhost:4317
  protocol: grpc
  insecure: true
  service_name: orrery
`

// Load builds the configuration from defaults, an optional YAML file, and
// ORRERY_* environment variables, then validates it.
//
// A missing file at configPath is not an error; the defaults and
// environment still apply. Environment keys map by replacing the first
// underscore after the prefix with a dot:
//
//	ORRERY_SERVER_PORT          -> server.port
//	ORRERY_SCENE_PARTICLE_COUNT -> scene.particle_count
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider([]byte(defaultYAML)), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if configPath != "" {
		content, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", configPath, err)
			}
		case os.IsNotExist(err):
			// Fall through to defaults and environment.
		default:
			return nil, fmt.Errorf("reading config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", transformEnvKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// transformEnvKey maps ORRERY_SECTION_SOME_KEY to section.some_key.
func transformEnvKey(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	return strings.Replace(key, "_", ".", 1)
}
