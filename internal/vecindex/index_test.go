package vecindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAndGetByTopic(t *testing.T) {
	ix := New(3)

	require.NoError(t, ix.Insert([]float32{1, 0, 0}, Meta{QuestionID: "q1", TopicID: "t1"}))
	require.NoError(t, ix.Insert([]float32{0, 1, 0}, Meta{QuestionID: "q2", TopicID: "t1"}))
	require.NoError(t, ix.Insert([]float32{0, 0, 1}, Meta{QuestionID: "q3", TopicID: "t2"}))

	entries := ix.GetByTopic("t1")
	require.Len(t, entries, 2)
	assert.Equal(t, "q1", entries[0].Meta.QuestionID)
	assert.Equal(t, "q2", entries[1].Meta.QuestionID)

	assert.Empty(t, ix.GetByTopic("unknown"), "unknown topic is empty, not an error")
	assert.Equal(t, 3, ix.Len())
}

func TestInsertIdempotentOnID(t *testing.T) {
	ix := New(2)

	require.NoError(t, ix.Insert([]float32{1, 0}, Meta{QuestionID: "q1", TopicID: "t1"}))
	require.NoError(t, ix.Insert([]float32{0, 1}, Meta{QuestionID: "q1", TopicID: "t1"}))

	assert.Equal(t, 1, ix.Len(), "re-insert overwrites, never duplicates")

	entries := ix.GetByTopic("t1")
	require.Len(t, entries, 1)
	assert.Equal(t, []float32{0, 1}, entries[0].Vector)
}

func TestInsertTopicMove(t *testing.T) {
	ix := New(2)

	require.NoError(t, ix.Insert([]float32{1, 0}, Meta{QuestionID: "q1", TopicID: "t1"}))
	require.NoError(t, ix.Insert([]float32{1, 0}, Meta{QuestionID: "q1", TopicID: "t2"}))

	assert.Empty(t, ix.GetByTopic("t1"))
	require.Len(t, ix.GetByTopic("t2"), 1)
}

func TestInsertValidation(t *testing.T) {
	ix := New(3)

	assert.Error(t, ix.Insert([]float32{1, 0, 0}, Meta{TopicID: "t1"}), "empty question id")
	assert.Error(t, ix.Insert([]float32{1, 0, 0}, Meta{QuestionID: "q1"}), "empty topic id")
	assert.Error(t, ix.Insert([]float32{1, 0}, Meta{QuestionID: "q1", TopicID: "t1"}), "dimension mismatch")
}

func TestGetByTopicsUnionDeduplicated(t *testing.T) {
	ix := New(2)

	require.NoError(t, ix.Insert([]float32{1, 0}, Meta{QuestionID: "q1", TopicID: "t1"}))
	require.NoError(t, ix.Insert([]float32{0, 1}, Meta{QuestionID: "q2", TopicID: "t2"}))

	entries := ix.GetByTopics([]string{"t1", "t2", "t1"})
	require.Len(t, entries, 2)
	assert.Equal(t, "q1", entries[0].Meta.QuestionID)
	assert.Equal(t, "q2", entries[1].Meta.QuestionID)
}

func TestSearchRankingAndThreshold(t *testing.T) {
	ix := New(2)

	require.NoError(t, ix.Insert([]float32{1, 0}, Meta{QuestionID: "q1", TopicID: "t1"}))
	require.NoError(t, ix.Insert([]float32{0.9, 0.1}, Meta{QuestionID: "q2", TopicID: "t1"}))
	require.NoError(t, ix.Insert([]float32{0, 1}, Meta{QuestionID: "q3", TopicID: "t1"}))

	results := ix.Search([]float32{1, 0}, 10, 0.5, nil)
	require.Len(t, results, 2, "orthogonal q3 falls below threshold")
	assert.Equal(t, "q1", results[0].Entry.Meta.QuestionID)
	assert.Equal(t, "q2", results[1].Entry.Meta.QuestionID)
	assert.Greater(t, results[0].Similarity, results[1].Similarity)
}

func TestSearchTieBreakByInsertionOrder(t *testing.T) {
	ix := New(2)

	// Identical vectors: insertion order must decide the ranking.
	require.NoError(t, ix.Insert([]float32{1, 0}, Meta{QuestionID: "qb", TopicID: "t1"}))
	require.NoError(t, ix.Insert([]float32{1, 0}, Meta{QuestionID: "qa", TopicID: "t1"}))

	results := ix.Search([]float32{1, 0}, 2, 0, nil)
	require.Len(t, results, 2)
	assert.Equal(t, "qb", results[0].Entry.Meta.QuestionID, "earlier-indexed wins ties")
}

func TestSearchTopKAndPredicate(t *testing.T) {
	ix := New(2)

	require.NoError(t, ix.Insert([]float32{1, 0}, Meta{QuestionID: "q1", TopicID: "t1"}))
	require.NoError(t, ix.Insert([]float32{1, 0}, Meta{QuestionID: "q2", TopicID: "t2"}))
	require.NoError(t, ix.Insert([]float32{1, 0}, Meta{QuestionID: "q3", TopicID: "t1"}))

	onlyT1 := func(e Entry) bool { return e.Meta.TopicID == "t1" }
	results := ix.Search([]float32{1, 0}, 1, 0, onlyT1)
	require.Len(t, results, 1)
	assert.Equal(t, "q1", results[0].Entry.Meta.QuestionID)
}

func TestSearchEmptyIndex(t *testing.T) {
	ix := New(4)
	assert.Empty(t, ix.Search([]float32{1, 0, 0, 0}, 5, 0, nil))
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 0}, []float32{1, 0}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"zero_vector", []float32{0, 0}, []float32{1, 0}, 0},
		{"length_mismatch", []float32{1}, []float32{1, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Cosine(tt.a, tt.b), 1e-9)
		})
	}
}
