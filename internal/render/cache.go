package render

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/maypok86/otter"
)

// CachedRenderer wraps a Renderer with an in-memory result cache keyed by
// diagram text, so re-rendering unchanged input skips the remote round
// trip. Failures are not cached: the next identical request tries the
// renderer again.
type CachedRenderer struct {
	inner Renderer
	cache otter.Cache[string, *Artifact]
}

// NewCachedRenderer creates a caching wrapper around inner. capacity bounds
// the number of retained artifacts.
func NewCachedRenderer(inner Renderer, capacity int) (*CachedRenderer, error) {
	cache, err := otter.MustBuilder[string, *Artifact](capacity).
		WithTTL(time.Hour).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build render cache: %w", err)
	}

	return &CachedRenderer{inner: inner, cache: cache}, nil
}

// Render returns a cached artifact when available, delegating to the
// wrapped renderer otherwise.
func (r *CachedRenderer) Render(ctx context.Context, diagram string) (*Artifact, error) {
	key := diagramKey(diagram)
	if artifact, ok := r.cache.Get(key); ok {
		return artifact, nil
	}

	artifact, err := r.inner.Render(ctx, diagram)
	if err != nil {
		return nil, err
	}

	r.cache.Set(key, artifact)
	return artifact, nil
}

// Close releases the cache.
func (r *CachedRenderer) Close() {
	r.cache.Close()
}

func diagramKey(diagram string) string {
	sum := sha256.Sum256([]byte(diagram))
	return hex.EncodeToString(sum[:])
}
