package embedding

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashEmbedder(t *testing.T) {
	ctx := context.Background()

	t.Run("constructor_validation", func(t *testing.T) {
		_, err := NewHashEmbedder(0)
		require.Error(t, err)
		_, err = NewHashEmbedder(-5)
		require.Error(t, err)
	})

	t.Run("empty_input", func(t *testing.T) {
		e, err := NewHashEmbedder(64)
		require.NoError(t, err)
		_, err = e.Embed(ctx, "   ")
		require.Error(t, err)
	})

	t.Run("deterministic", func(t *testing.T) {
		e, err := NewHashEmbedder(128)
		require.NoError(t, err)
		v1, err := e.Embed(ctx, "photosynthesis converts light energy")
		require.NoError(t, err)
		v2, err := e.Embed(ctx, "photosynthesis converts light energy")
		require.NoError(t, err)
		assert.Equal(t, v1, v2)
	})

	t.Run("dimension", func(t *testing.T) {
		e, err := NewHashEmbedder(384)
		require.NoError(t, err)
		vec, err := e.Embed(ctx, "cell division in plants")
		require.NoError(t, err)
		assert.Len(t, vec, 384)
		assert.Equal(t, 384, e.Dimension())
	})

	t.Run("normalized", func(t *testing.T) {
		e, err := NewHashEmbedder(256)
		require.NoError(t, err)
		vec, err := e.Embed(ctx, "quadratic equations and roots")
		require.NoError(t, err)
		assert.InDelta(t, 1.0, vectorNorm(vec), 1e-5)
	})

	t.Run("token_overlap_similarity", func(t *testing.T) {
		e, err := NewHashEmbedder(384)
		require.NoError(t, err)

		a, err := e.Embed(ctx, "fraction addition with unlike denominators")
		require.NoError(t, err)
		b, err := e.Embed(ctx, "fraction addition")
		require.NoError(t, err)
		c, err := e.Embed(ctx, "the treaty of westphalia")
		require.NoError(t, err)

		assert.Greater(t, dot(a, b), dot(a, c),
			"texts sharing tokens should be closer than unrelated texts")
	})

	t.Run("morphological_similarity", func(t *testing.T) {
		e, err := NewHashEmbedder(384)
		require.NoError(t, err)

		a, err := e.Embed(ctx, "dividing decimals")
		require.NoError(t, err)
		b, err := e.Embed(ctx, "decimal division")
		require.NoError(t, err)
		c, err := e.Embed(ctx, "volcanic rock layers")
		require.NoError(t, err)

		assert.Greater(t, dot(a, b), dot(a, c),
			"morphological variants share trigrams and should be closer")
	})
}

func dot(a, b []float32) float64 {
	sum := 0.0
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

func vectorNorm(v []float32) float64 {
	s := 0.0
	for _, x := range v {
		s += float64(x) * float64(x)
	}
	return math.Sqrt(s)
}
