package question

import (
	"sort"
	"time"
)

// Record is a single syllabus-aligned question in the bank.
// Records are immutable once created; a text correction is modeled as
// creating a new record and retiring the old one, never as an in-place edit.
type Record struct {
	// ID uniquely identifies the question. UUIDs for generated questions,
	// caller-chosen stable ids for seeded corpora.
	ID string `json:"id"`

	// TopicID is the syllabus topic this question belongs to.
	TopicID string `json:"topic_id"`

	// Text is the question prompt shown to the learner.
	Text string `json:"text"`

	// Type indicates how the learner answers this question.
	Type Type `json:"type"`

	// Options is populated only when Type is TypeSingleChoice.
	Options []string `json:"options,omitempty"`

	// Answers holds one or more accepted correct answers.
	Answers []string `json:"answers"`

	// SyllabusRef points into the official syllabus, e.g. "MATH.7.2.3".
	SyllabusRef string `json:"syllabus_ref"`

	// Difficulty is a coarse tag: "easy", "medium", "hard".
	Difficulty string `json:"difficulty,omitempty"`

	// CreatedAt is when the record entered the bank.
	CreatedAt time.Time `json:"created_at"`

	// Embedding is the cached semantic vector for Text. Computed lazily
	// on first indexing and persisted alongside the record, so warm-up
	// never re-hits the embedding backend. Nil until computed.
	Embedding []float32 `json:"-"`
}

// Type describes how the learner provides their answer.
type Type string

const (
	// TypeSingleChoice means the learner picks one of the Options.
	TypeSingleChoice Type = "single_choice"

	// TypeFreeText means the learner types a free-form answer.
	TypeFreeText Type = "free_text"

	// TypeNumeric means the learner types a numeric answer.
	TypeNumeric Type = "numeric"
)

// Valid reports whether t is a known question type.
func (t Type) Valid() bool {
	return t == TypeSingleChoice || t == TypeFreeText || t == TypeNumeric
}

// SortDefault orders records deterministically when no semantic query is
// available: syllabus reference first, then creation time, then id. This is
// the shared default ordering used by both retrieval and retry selection.
func SortDefault(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].SyllabusRef != records[j].SyllabusRef {
			return records[i].SyllabusRef < records[j].SyllabusRef
		}
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.Before(records[j].CreatedAt)
		}
		return records[i].ID < records[j].ID
	})
}
