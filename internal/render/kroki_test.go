package render

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKrokiRenderer_Success(t *testing.T) {
	t.Parallel()

	var gotPath, gotBody, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Write([]byte("<svg>diagram</svg>"))
	}))
	defer server.Close()

	renderer := NewKrokiRenderer(server.URL)
	artifact, err := renderer.Render(context.Background(), "classDiagram\n")
	require.NoError(t, err)

	assert.Equal(t, "/mermaid/svg", gotPath)
	assert.Equal(t, "text/plain", gotContentType)
	assert.Equal(t, "classDiagram\n", gotBody)
	assert.Equal(t, []byte("<svg>diagram</svg>"), artifact.Data)
	assert.Equal(t, "svg", artifact.Format)
}

func TestKrokiRenderer_RejectionSurfacesServiceMessage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("error parsing diagram: unexpected token\n"))
	}))
	defer server.Close()

	renderer := NewKrokiRenderer(server.URL)
	_, err := renderer.Render(context.Background(), "classDiagram\n")
	require.Error(t, err)

	var renderErr *Error
	require.True(t, errors.As(err, &renderErr))
	assert.Equal(t, "error parsing diagram: unexpected token", renderErr.Message)
	assert.Contains(t, renderErr.Error(), "renderer rejected diagram")
}

func TestKrokiRenderer_TrailingSlashTrimmed(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mermaid/svg", r.URL.Path)
		w.Write([]byte("<svg/>"))
	}))
	defer server.Close()

	renderer := NewKrokiRenderer(server.URL + "/")
	_, err := renderer.Render(context.Background(), "classDiagram\n")
	require.NoError(t, err)
}

func TestKrokiRenderer_DefaultEndpoint(t *testing.T) {
	t.Parallel()

	renderer := NewKrokiRenderer("")
	assert.Equal(t, DefaultEndpoint, renderer.endpoint)
}

func TestKrokiRenderer_ContextCancellation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	renderer := NewKrokiRenderer(server.URL)
	_, err := renderer.Render(ctx, "classDiagram\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
