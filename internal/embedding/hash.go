package embedding

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

// HashEmbedder is a deterministic offline embedder: tokens and their
// character trigrams are hashed into D buckets with a hashed sign, then the
// vector is L2-normalized. It is not semantically strong, but it is stable,
// dimensionally compatible with the index, and gives related texts higher
// cosine similarity through token and subword overlap. Used in tests and in
// environments without an embedding backend.
type HashEmbedder struct {
	dim int
}

// trigramWeight discounts subword features relative to whole tokens.
const trigramWeight = 0.5

// NewHashEmbedder creates a HashEmbedder producing vectors of length dim.
func NewHashEmbedder(dim int) (*HashEmbedder, error) {
	if dim <= 0 {
		return nil, &ErrInvalidDimension{Dim: dim}
	}
	return &HashEmbedder{dim: dim}, nil
}

func (h *HashEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil, &ErrEmptyText{}
	}

	vec := make([]float32, h.dim)
	for _, tok := range tokens {
		h.accumulate(vec, tok, 1.0)
		for _, tri := range trigrams(tok) {
			h.accumulate(vec, tri, trigramWeight)
		}
	}

	normalize(vec)
	return vec, nil
}

func (h *HashEmbedder) Dimension() int { return h.dim }

func (h *HashEmbedder) ModelID() string { return "hash-bow" }

// accumulate adds weight into the bucket for feature, with a sign derived
// from a second hash bit so collisions partially cancel instead of biasing
// every bucket positive.
func (h *HashEmbedder) accumulate(vec []float32, feature string, weight float32) {
	hs := fnv.New64a()
	hs.Write([]byte(feature))
	sum := hs.Sum64()

	idx := int(sum % uint64(h.dim))
	if (sum>>63)&1 == 1 {
		weight = -weight
	}
	vec[idx] += weight
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func trigrams(token string) []string {
	if len(token) < 3 {
		return nil
	}
	out := make([]string, 0, len(token)-2)
	for i := 0; i+3 <= len(token); i++ {
		out = append(out, token[i:i+3])
	}
	return out
}

func normalize(vec []float32) {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return
	}
	norm := float32(math.Sqrt(sum))
	for i := range vec {
		vec[i] /= norm
	}
}

// ErrInvalidDimension indicates a non-positive embedding dimension.
type ErrInvalidDimension struct {
	Dim int
}

func (e *ErrInvalidDimension) Error() string {
	return "embedding dimension must be positive"
}
