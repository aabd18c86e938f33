package graph

import (
	"fmt"

	"github.com/dominikbraun/graph"
)

// QueryOperation represents the kind of model query to perform.
type QueryOperation string

const (
	// OperationImplementations lists aggregates satisfying a contract.
	OperationImplementations QueryOperation = "implementations"
	// OperationEmbedders lists entities that embed the target.
	OperationEmbedders QueryOperation = "embedders"
	// OperationEmbeds lists entities the target embeds.
	OperationEmbeds QueryOperation = "embeds"
	// OperationContracts lists contracts a target aggregate satisfies.
	OperationContracts QueryOperation = "contracts"
)

// Searcher answers structural queries over one extracted model. It builds
// an in-memory directed graph plus reverse indexes once, then serves
// lookups from the indexes.
type Searcher struct {
	graph graph.Graph[string, *Entity]

	implementations map[string][]string // contract -> aggregates
	contracts       map[string][]string // aggregate -> contracts
	embedders       map[string][]string // embedded -> owners
	embeds          map[string][]string // owner -> embedded
}

// NewSearcher builds a searcher for a fully populated model.
func NewSearcher(model *Model) (*Searcher, error) {
	s := &Searcher{
		graph:           graph.New(func(e *Entity) string { return e.Name }, graph.Directed()),
		implementations: make(map[string][]string),
		contracts:       make(map[string][]string),
		embedders:       make(map[string][]string),
		embeds:          make(map[string][]string),
	}

	for _, entity := range model.Entities() {
		if err := s.graph.AddVertex(entity); err != nil {
			return nil, fmt.Errorf("failed to add entity %s: %w", entity.Name, err)
		}
	}

	for _, rel := range model.Relations() {
		// Both endpoints exist because extraction auto-creates placeholders
		// for referenced names. A composition and a satisfaction edge may
		// share endpoints, so duplicate-edge errors are ignored.
		_ = s.graph.AddEdge(rel.From, rel.To)

		switch rel.Kind {
		case RelSatisfaction:
			s.implementations[rel.From] = append(s.implementations[rel.From], rel.To)
			s.contracts[rel.To] = append(s.contracts[rel.To], rel.From)
		case RelComposition:
			s.embedders[rel.From] = append(s.embedders[rel.From], rel.To)
			s.embeds[rel.To] = append(s.embeds[rel.To], rel.From)
		}
	}

	return s, nil
}

// Query returns the entity names related to target under the given
// operation. An unknown target is an error; a known target with no results
// returns an empty slice.
func (s *Searcher) Query(op QueryOperation, target string) ([]string, error) {
	if _, err := s.graph.Vertex(target); err != nil {
		return nil, fmt.Errorf("unknown entity %q", target)
	}

	var results []string
	switch op {
	case OperationImplementations:
		results = s.implementations[target]
	case OperationEmbedders:
		results = s.embedders[target]
	case OperationEmbeds:
		results = s.embeds[target]
	case OperationContracts:
		results = s.contracts[target]
	default:
		return nil, fmt.Errorf("unknown operation %q", op)
	}

	out := make([]string, len(results))
	copy(out, results)
	return out, nil
}
