package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name:        "validate-test",
	Description: "schema used by validate tests",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text":  map[string]any{"type": "string"},
			"score": map[string]any{"type": "integer", "minimum": 0},
		},
		"required":             []any{"text", "score"},
		"additionalProperties": false,
	},
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"text": "hello", "score": 3}`)
	if err := validateResponse(testSchema, raw); err != nil {
		t.Errorf("expected valid, got %v", err)
	}
}

func TestValidateResponse_MissingField(t *testing.T) {
	raw := json.RawMessage(`{"text": "hello"}`)
	err := validateResponse(testSchema, raw)
	if err == nil {
		t.Fatal("expected validation failure")
	}
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Errorf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"text": `)
	err := validateResponse(testSchema, raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`"anything"`)); err != nil {
		t.Errorf("nil schema should skip validation, got %v", err)
	}
}

func TestValidateResponse_SchemaCached(t *testing.T) {
	raw := json.RawMessage(`{"text": "a", "score": 1}`)
	// Second call hits the cache; behavior must be identical.
	if err := validateResponse(testSchema, raw); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if err := validateResponse(testSchema, raw); err != nil {
		t.Errorf("cached call: %v", err)
	}
}
