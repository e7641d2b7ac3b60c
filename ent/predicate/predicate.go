// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AssembledTest is the predicate function for assembledtest builders.
type AssembledTest func(*sql.Selector)

// ExposureRecord is the predicate function for exposurerecord builders.
type ExposureRecord func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// TestConfig is the predicate function for testconfig builders.
type TestConfig func(*sql.Selector)
