// Package vecindex provides the in-memory vector index the retrieval engine
// searches. Entries are (vector, metadata) pairs keyed by question id, with a
// secondary topic index maintained incrementally on insert. The index is
// append-mostly and safe for concurrent use; it never reaches out of process.
package vecindex

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// Meta is the closed metadata carried by every index entry.
type Meta struct {
	QuestionID string
	TopicID    string
}

// Entry is an immutable (vector, metadata) pair inside the index.
type Entry struct {
	Vector []float32
	Meta   Meta

	// seq is the insertion order, used as the deterministic tie-break
	// in search results. Re-inserting an id keeps its original seq.
	seq int
}

// Result pairs an entry with its similarity to the search query.
type Result struct {
	Entry      Entry
	Similarity float64
}

// Index holds the question corpus for retrieval.
type Index struct {
	mu      sync.RWMutex
	dim     int
	entries map[string]*Entry
	topics  map[string][]string // topic id → question ids in insertion order
	nextSeq int
}

// New creates an empty Index for vectors of length dim.
func New(dim int) *Index {
	return &Index{
		dim:     dim,
		entries: make(map[string]*Entry),
		topics:  make(map[string][]string),
	}
}

// Dimension returns the vector length this index accepts.
func (ix *Index) Dimension() int { return ix.dim }

// Insert adds or replaces the entry for meta.QuestionID. Inserting an
// existing id overwrites its vector rather than duplicating, and keeps the
// original insertion rank. Each upsert touches only its own entry, so
// concurrent inserts from parallel batches cannot corrupt the topic index.
func (ix *Index) Insert(vector []float32, meta Meta) error {
	if meta.QuestionID == "" {
		return fmt.Errorf("insert: empty question id")
	}
	if meta.TopicID == "" {
		return fmt.Errorf("insert: empty topic id for question %s", meta.QuestionID)
	}
	if len(vector) != ix.dim {
		return fmt.Errorf("insert %s: vector dimension %d, index expects %d", meta.QuestionID, len(vector), ix.dim)
	}

	vec := make([]float32, len(vector))
	copy(vec, vector)

	ix.mu.Lock()
	defer ix.mu.Unlock()

	if existing, ok := ix.entries[meta.QuestionID]; ok {
		if existing.Meta.TopicID != meta.TopicID {
			ix.removeFromTopic(existing.Meta.TopicID, meta.QuestionID)
			ix.topics[meta.TopicID] = append(ix.topics[meta.TopicID], meta.QuestionID)
		}
		ix.entries[meta.QuestionID] = &Entry{Vector: vec, Meta: meta, seq: existing.seq}
		return nil
	}

	ix.entries[meta.QuestionID] = &Entry{Vector: vec, Meta: meta, seq: ix.nextSeq}
	ix.nextSeq++
	ix.topics[meta.TopicID] = append(ix.topics[meta.TopicID], meta.QuestionID)
	return nil
}

// Contains reports whether the index holds an entry for the question id.
func (ix *Index) Contains(questionID string) bool {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	_, ok := ix.entries[questionID]
	return ok
}

// Len returns the number of indexed entries.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.entries)
}

// GetByTopic returns the entries under one topic in insertion order.
// An unknown topic yields an empty slice: emptiness is a signal the
// retrieval engine consumes, not a fault.
func (ix *Index) GetByTopic(topicID string) []Entry {
	return ix.GetByTopics([]string{topicID})
}

// GetByTopics returns the union of entries under the given topics,
// deduplicated, in insertion order.
func (ix *Index) GetByTopics(topicIDs []string) []Entry {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []Entry
	for _, topicID := range topicIDs {
		for _, qid := range ix.topics[topicID] {
			if _, dup := seen[qid]; dup {
				continue
			}
			seen[qid] = struct{}{}
			if e, ok := ix.entries[qid]; ok {
				out = append(out, *e)
			}
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

// Search ranks entries by cosine similarity to query, dropping candidates
// below minSimilarity and entries rejected by the predicate (nil predicate
// accepts all). Ties are broken by insertion order, earlier-indexed first,
// so repeated searches over the same corpus return the same ranking.
// Result length is at most topK.
func (ix *Index) Search(query []float32, topK int, minSimilarity float64, predicate func(Entry) bool) []Result {
	if topK <= 0 {
		return nil
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var results []Result
	for _, e := range ix.entries {
		if predicate != nil && !predicate(*e) {
			continue
		}
		sim := Cosine(query, e.Vector)
		if sim < minSimilarity {
			continue
		}
		results = append(results, Result{Entry: *e, Similarity: sim})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Similarity != results[j].Similarity {
			return results[i].Similarity > results[j].Similarity
		}
		return results[i].Entry.seq < results[j].Entry.seq
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results
}

// Cosine returns the cosine similarity of a and b, or 0 when either vector
// is zero or the lengths differ.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// removeFromTopic deletes qid from a topic's id list. Caller holds the lock.
func (ix *Index) removeFromTopic(topicID, qid string) {
	ids := ix.topics[topicID]
	for i, id := range ids {
		if id == qid {
			ix.topics[topicID] = append(ids[:i], ids[i+1:]...)
			return
		}
	}
}
