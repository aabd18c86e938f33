package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults -> config file -> environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir string
}

// NewLoader creates a new configuration loader for the given root directory.
func NewLoader(rootDir string) Loader {
	return &loader{
		rootDir: rootDir,
	}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (GO2UML_*)
// 2. Config file (.go2uml/config.yml or .go2uml/config.yaml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	configDir := filepath.Join(l.rootDir, ".go2uml")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("GO2UML")
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g., GO2UML_RENDERER_ENDPOINT)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("renderer.endpoint")
	v.BindEnv("renderer.cache_size")
	v.BindEnv("watch.debounce_ms")

	setDefaults(v)

	// Missing config file is fine; defaults and env cover everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromDir is a convenience wrapper for loading config rooted at dir.
func LoadFromDir(dir string) (*Config, error) {
	return NewLoader(dir).Load()
}

func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("renderer.endpoint", defaults.Renderer.Endpoint)
	v.SetDefault("renderer.cache_size", defaults.Renderer.CacheSize)
	v.SetDefault("paths.include", defaults.Paths.Include)
	v.SetDefault("paths.ignore", defaults.Paths.Ignore)
	v.SetDefault("watch.debounce_ms", defaults.Watch.DebounceMs)
}
