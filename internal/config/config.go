package config

// Config represents the complete go2uml configuration.
// It can be loaded from .go2uml/config.yml with environment variable overrides.
type Config struct {
	Renderer RendererConfig `yaml:"renderer" mapstructure:"renderer"`
	Paths    PathsConfig    `yaml:"paths" mapstructure:"paths"`
	Watch    WatchConfig    `yaml:"watch" mapstructure:"watch"`
}

// RendererConfig configures the external diagram renderer.
type RendererConfig struct {
	Endpoint  string `yaml:"endpoint" mapstructure:"endpoint"`     // Kroki-compatible service URL
	CacheSize int    `yaml:"cache_size" mapstructure:"cache_size"` // max cached render artifacts
}

// PathsConfig defines which files batch generation and watch mode pick up.
type PathsConfig struct {
	Include []string `yaml:"include" mapstructure:"include"` // glob patterns for source files
	Ignore  []string `yaml:"ignore" mapstructure:"ignore"`   // glob patterns to skip
}

// WatchConfig defines watch-mode behavior.
type WatchConfig struct {
	DebounceMs int `yaml:"debounce_ms" mapstructure:"debounce_ms"` // quiet period before regenerating
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Renderer: RendererConfig{
			Endpoint:  "https://kroki.io",
			CacheSize: 256,
		},
		Paths: PathsConfig{
			Include: []string{
				"**/*.go",
			},
			Ignore: []string{
				"vendor/**",
				".git/**",
				"**/*_test.go",
			},
		},
		Watch: WatchConfig{
			DebounceMs: 500,
		},
	}
}
