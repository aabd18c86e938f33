package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searcherFixture(t *testing.T) *Searcher {
	t.Helper()

	model := NewModel()
	buildEntity(model, "Animal", KindContract, "Speak")
	buildEntity(model, "Dog", KindAggregate, "Speak")
	buildEntity(model, "Cat", KindAggregate, "Speak")
	model.Declare("Base", KindAggregate)
	model.Entity("Dog").AddEmbed("Base")

	model.AddRelation(Relation{From: "Base", To: "Dog", Kind: RelComposition})
	NewSatisfactionMatcher(model).InferSatisfactions()

	s, err := NewSearcher(model)
	require.NoError(t, err)
	return s
}

func TestSearcher_Implementations(t *testing.T) {
	t.Parallel()

	s := searcherFixture(t)
	results, err := s.Query(OperationImplementations, "Animal")

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Dog", "Cat"}, results)
}

func TestSearcher_Contracts(t *testing.T) {
	t.Parallel()

	s := searcherFixture(t)
	results, err := s.Query(OperationContracts, "Dog")

	require.NoError(t, err)
	assert.Equal(t, []string{"Animal"}, results)
}

func TestSearcher_Embedders(t *testing.T) {
	t.Parallel()

	s := searcherFixture(t)
	results, err := s.Query(OperationEmbedders, "Base")

	require.NoError(t, err)
	assert.Equal(t, []string{"Dog"}, results)
}

func TestSearcher_Embeds(t *testing.T) {
	t.Parallel()

	s := searcherFixture(t)
	results, err := s.Query(OperationEmbeds, "Dog")

	require.NoError(t, err)
	assert.Equal(t, []string{"Base"}, results)
}

func TestSearcher_KnownTargetNoResults(t *testing.T) {
	t.Parallel()

	s := searcherFixture(t)
	results, err := s.Query(OperationEmbedders, "Cat")

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearcher_UnknownTarget(t *testing.T) {
	t.Parallel()

	s := searcherFixture(t)
	_, err := s.Query(OperationImplementations, "Ghost")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown entity")
}

func TestSearcher_UnknownOperation(t *testing.T) {
	t.Parallel()

	s := searcherFixture(t)
	_, err := s.Query(QueryOperation("ancestry"), "Dog")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown operation")
}
