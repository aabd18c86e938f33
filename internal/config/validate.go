package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/gobwas/glob"
)

var (
	// ErrEmptyEndpoint indicates a missing renderer endpoint
	ErrEmptyEndpoint = errors.New("empty renderer endpoint")

	// ErrInvalidEndpoint indicates an unparseable renderer endpoint URL
	ErrInvalidEndpoint = errors.New("invalid renderer endpoint")

	// ErrInvalidCacheSize indicates a non-positive render cache size
	ErrInvalidCacheSize = errors.New("invalid renderer cache size")

	// ErrInvalidDebounce indicates a negative watch debounce
	ErrInvalidDebounce = errors.New("invalid watch debounce")

	// ErrEmptyInclude indicates no include patterns configured
	ErrEmptyInclude = errors.New("empty include patterns")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	if cfg.Renderer.Endpoint == "" {
		return ErrEmptyEndpoint
	}
	if u, err := url.Parse(cfg.Renderer.Endpoint); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidEndpoint, cfg.Renderer.Endpoint)
	}
	if cfg.Renderer.CacheSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCacheSize, cfg.Renderer.CacheSize)
	}

	if len(cfg.Paths.Include) == 0 {
		return ErrEmptyInclude
	}
	for _, pattern := range append(cfg.Paths.Include, cfg.Paths.Ignore...) {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
	}

	if cfg.Watch.DebounceMs < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDebounce, cfg.Watch.DebounceMs)
	}

	return nil
}
