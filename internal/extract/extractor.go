package extract

import (
	"regexp"
	"strings"

	"github.com/Samanthapudi-Shakeer/Go2UML/internal/graph"
)

// Extractor extracts a structural model from a snippet of Go source text.
//
// It deliberately uses a small set of composable regex matchers instead of a
// real parser: the input is a possibly incomplete source window, and the
// grammar subset (no generics, no nested braces inside type bodies) keeps
// the patterns tractable. Lines that match no pattern are silently ignored
// rather than aborting the run.
type Extractor struct{}

// NewExtractor creates a new source extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

var (
	// type <Name> struct|interface { <body> } - the body is bounded by the
	// first closing brace; nested braces are outside the grammar subset.
	typeDeclRe = regexp.MustCompile(`type\s+(\w+)\s+(struct|interface)\s*\{([^}]*)\}`)

	// func (<recv> <*?Type>) <Name>(<params>) <returns> {
	methodDeclRe = regexp.MustCompile(`func\s*\(\s*\w+\s+(\*?\w+)\s*\)\s*(\w+)\s*\(([^)]*)\)\s*([^{]*)\{`)

	// Bare identifier, optional leading dereference marker: an embedding.
	embedLineRe = regexp.MustCompile(`^\*?(\w+)$`)

	// <fieldName> <typeExpression...>
	fieldLineRe = regexp.MustCompile(`^(\w+)\s+(\S.*)$`)

	// <methodName>(<params>) <returns...>
	methodLineRe = regexp.MustCompile(`^(\w+)\s*\(([^)]*)\)\s*(.*)$`)
)

// Extract runs the full scan over already comment-stripped source text and
// returns the populated model. The model is built fresh per call; no state
// is carried between invocations.
func (e *Extractor) Extract(source string) *graph.Model {
	model := graph.NewModel()

	e.extractDeclarations(source, model)
	e.linkReceiverMethods(source, model)

	return model
}

// extractDeclarations scans for type declaration blocks in source order and
// classifies each body's members.
func (e *Extractor) extractDeclarations(source string, model *graph.Model) {
	for _, match := range typeDeclRe.FindAllStringSubmatch(source, -1) {
		name, keyword, body := match[1], match[2], match[3]

		kind := graph.KindAggregate
		if keyword == "interface" {
			kind = graph.KindContract
		}

		entity := model.Declare(name, kind)
		e.classifyMembers(body, entity, model)
	}
}

// classifyMembers splits a declaration body into trimmed lines and
// classifies each as an embedding, a field (aggregate bodies), or a method
// signature (contract bodies). Unrecognized lines are ignored.
func (e *Extractor) classifyMembers(body string, entity *graph.Entity, model *graph.Model) {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := embedLineRe.FindStringSubmatch(line); m != nil {
			embedded := m[1]
			entity.AddEmbed(embedded)
			model.GetOrCreate(embedded)
			model.AddRelation(graph.Relation{
				From: embedded,
				To:   entity.Name,
				Kind: graph.RelComposition,
			})
			continue
		}

		switch entity.Kind {
		case graph.KindAggregate:
			if m := fieldLineRe.FindStringSubmatch(line); m != nil {
				entity.Fields = append(entity.Fields, graph.Field{
					Name: m[1],
					Type: stripFieldTag(m[2]),
				})
			}
		case graph.KindContract:
			if m := methodLineRe.FindStringSubmatch(line); m != nil {
				entity.Methods = append(entity.Methods, graph.Method{
					Name:    m[1],
					Params:  strings.TrimSpace(m[2]),
					Returns: strings.TrimSpace(m[3]),
				})
			}
		}
	}
}

// linkReceiverMethods scans for standalone method declarations and attaches
// each to its receiver's entity, creating the entity if the type was never
// declared with a body. Pointer and value receivers resolve to the same
// entity.
func (e *Extractor) linkReceiverMethods(source string, model *graph.Model) {
	for _, match := range methodDeclRe.FindAllStringSubmatch(source, -1) {
		receiver := strings.TrimPrefix(match[1], "*")
		entity := model.GetOrCreate(receiver)
		entity.Methods = append(entity.Methods, graph.Method{
			Name:    match[2],
			Params:  strings.TrimSpace(match[3]),
			Returns: strings.TrimSpace(match[4]),
		})
	}
}

// stripFieldTag drops a trailing struct tag from a field type expression.
func stripFieldTag(typeExpr string) string {
	if idx := strings.Index(typeExpr, "`"); idx >= 0 {
		typeExpr = typeExpr[:idx]
	}
	return strings.TrimSpace(typeExpr)
}
