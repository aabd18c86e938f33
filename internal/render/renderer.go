// Package render is the boundary to the external diagram-rendering
// collaborator. The extraction engine only ever hands it a finished
// diagram-description string; nothing flows back into extraction.
package render

import (
	"context"
	"fmt"
)

// Artifact is a rendered diagram.
type Artifact struct {
	// Data is the raw rendered bytes (SVG for the default renderer).
	Data []byte
	// Format is the artifact format, e.g. "svg".
	Format string
}

// Renderer turns diagram-description text into a graphical artifact. The
// operation may suspend (network round trip) and may fail with a
// description-syntax error from the remote side.
type Renderer interface {
	Render(ctx context.Context, diagram string) (*Artifact, error)
}

// Error reports a rejection by the external renderer. The remote message is
// preserved verbatim so the user sees exactly what the renderer objected
// to; the prefix distinguishes it from extraction-time failures.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("renderer rejected diagram: %s", e.Message)
}
