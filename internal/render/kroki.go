package render

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultEndpoint is the public Kroki instance. Self-hosted deployments
// override it via configuration.
const DefaultEndpoint = "https://kroki.io"

// KrokiRenderer renders Mermaid diagram text through a Kroki-compatible
// HTTP service.
type KrokiRenderer struct {
	endpoint string
	client   *http.Client
}

// NewKrokiRenderer creates a renderer for the given service endpoint. An
// empty endpoint selects DefaultEndpoint.
func NewKrokiRenderer(endpoint string) *KrokiRenderer {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &KrokiRenderer{
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Render posts the diagram text and returns the rendered SVG. A non-2xx
// response surfaces the service's message verbatim as a *render.Error; it
// is never retried here.
func (r *KrokiRenderer) Render(ctx context.Context, diagram string) (*Artifact, error) {
	url := r.endpoint + "/mermaid/svg"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(diagram))
	if err != nil {
		return nil, fmt.Errorf("failed to build render request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("render request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read render response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Message: strings.TrimSpace(string(body))}
	}

	return &Artifact{Data: body, Format: "svg"}, nil
}
