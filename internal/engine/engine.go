// Package engine wires the extraction pipeline end to end: comment
// stripping, declaration extraction, member classification, receiver
// linking, relationship inference, and diagram emission.
package engine

import (
	"context"
	"strings"

	"github.com/Samanthapudi-Shakeer/Go2UML/internal/extract"
	"github.com/Samanthapudi-Shakeer/Go2UML/internal/graph"
	"github.com/Samanthapudi-Shakeer/Go2UML/internal/mermaid"
	"github.com/Samanthapudi-Shakeer/Go2UML/internal/render"
)

// Engine runs extraction pipelines. Each run is a pure function of its
// input text; no extraction state survives between runs.
type Engine struct {
	extractor *extract.Extractor
	renderer  render.Renderer
}

// Option configures an Engine.
type Option func(*Engine)

// WithRenderer configures the external renderer used by Render.
func WithRenderer(r render.Renderer) Option {
	return func(e *Engine) {
		e.renderer = r
	}
}

// New creates an engine. Without WithRenderer, Render goes through the
// default Kroki renderer.
func New(opts ...Option) *Engine {
	e := &Engine{
		extractor: extract.NewExtractor(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.renderer == nil {
		e.renderer = render.NewKrokiRenderer("")
	}
	return e
}

// Extract runs the pipeline through relationship inference and returns the
// populated model.
func (e *Engine) Extract(source string) (*graph.Model, error) {
	if strings.TrimSpace(source) == "" {
		return nil, ErrEmptyInput
	}

	stripped := extract.StripComments(source)
	model := e.extractor.Extract(stripped)

	if model.Len() == 0 {
		return nil, ErrNoDeclarations
	}

	graph.NewSatisfactionMatcher(model).InferSatisfactions()

	return model, nil
}

// Diagram extracts the model and emits diagram-description text. Identical
// input yields byte-identical output.
func (e *Engine) Diagram(source string) (string, error) {
	model, err := e.Extract(source)
	if err != nil {
		return "", err
	}
	return mermaid.Emit(model), nil
}

// Render extracts, emits, and hands the diagram text to the external
// renderer. Renderer rejections come back as *render.Error and are not
// retried; a newer call simply supersedes the artifact of an older one.
func (e *Engine) Render(ctx context.Context, source string) (*render.Artifact, error) {
	diagram, err := e.Diagram(source)
	if err != nil {
		return nil, err
	}
	return e.renderer.Render(ctx, diagram)
}
