package graph

// SatisfactionMatcher infers contract satisfaction via method-name matching.
//
// Limitations of Name-Based Matching:
//
// This implementation compares method names only, without signature or type
// checking. The following scenarios may produce false positives:
//
//   - Signature mismatches: an aggregate method with the right name but the
//     wrong parameters or returns still counts as satisfying the contract.
//
//   - Same-named unrelated methods: a coincidental name collision between a
//     contract method and an aggregate method is treated as satisfaction.
//
// These limitations are inherent to the name-based approach and represent
// trade-offs for working on partial source snippets without a type checker.
type SatisfactionMatcher struct {
	model *Model
}

// NewSatisfactionMatcher creates a matcher over a fully populated model.
func NewSatisfactionMatcher(model *Model) *SatisfactionMatcher {
	return &SatisfactionMatcher{model: model}
}

// InferSatisfactions finds all contract->aggregate satisfaction relations
// and records them on the model. A contract with zero methods never
// satisfies anything: the empty contract would match every aggregate and
// only add diagram noise.
func (m *SatisfactionMatcher) InferSatisfactions() []Relation {
	var contracts []*Entity
	var aggregates []*Entity

	for _, e := range m.model.Entities() {
		switch e.Kind {
		case KindContract:
			contracts = append(contracts, e)
		case KindAggregate:
			aggregates = append(aggregates, e)
		}
	}

	var inferred []Relation
	for _, contract := range contracts {
		if len(contract.Methods) == 0 {
			continue
		}
		for _, aggregate := range aggregates {
			if m.satisfies(aggregate, contract) {
				rel := Relation{
					From: contract.Name,
					To:   aggregate.Name,
					Kind: RelSatisfaction,
				}
				inferred = append(inferred, rel)
				m.model.AddRelation(rel)
			}
		}
	}

	return inferred
}

// satisfies reports whether every method name the contract declares appears
// among the aggregate's methods. Names only; parameters and returns are not
// compared.
func (m *SatisfactionMatcher) satisfies(aggregate, contract *Entity) bool {
	aggregateMethods := make(map[string]bool, len(aggregate.Methods))
	for _, method := range aggregate.Methods {
		aggregateMethods[method.Name] = true
	}

	for _, required := range contract.Methods {
		if !aggregateMethods[required.Name] {
			return false
		}
	}

	return true
}
