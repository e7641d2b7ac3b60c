package qgen

import (
	"errors"
	"testing"

	"github.com/abhisek/examforge/internal/question"
)

func TestStructuralValidator(t *testing.T) {
	valid := question.Record{
		Text:    "Which fraction is largest?",
		Type:    question.TypeSingleChoice,
		Options: []string{"1/2", "2/3", "3/4", "5/6"},
		Answers: []string{"5/6"},
	}

	tests := []struct {
		name    string
		mutate  func(*question.Record)
		wantErr bool
	}{
		{"valid single_choice", func(r *question.Record) {}, false},
		{"empty text", func(r *question.Record) { r.Text = "  " }, true},
		{"unknown type", func(r *question.Record) { r.Type = "essay" }, true},
		{"no answers", func(r *question.Record) { r.Answers = nil }, true},
		{"three options", func(r *question.Record) { r.Options = r.Options[:3] }, true},
		{"answer not in options", func(r *question.Record) { r.Answers = []string{"7/8"} }, true},
		{"duplicate options", func(r *question.Record) { r.Options = []string{"1/2", "1/2", "3/4", "5/6"} }, true},
		{"answer matches case-insensitively", func(r *question.Record) { r.Answers = []string{" 5/6 "} }, false},
		{"valid numeric", func(r *question.Record) {
			r.Type = question.TypeNumeric
			r.Options = nil
			r.Answers = []string{"0.75"}
		}, false},
		{"numeric with non-number answer", func(r *question.Record) {
			r.Type = question.TypeNumeric
			r.Options = nil
			r.Answers = []string{"three quarters"}
		}, true},
		{"numeric with options", func(r *question.Record) {
			r.Type = question.TypeNumeric
			r.Answers = []string{"0.75"}
		}, true},
		{"valid free_text", func(r *question.Record) {
			r.Type = question.TypeFreeText
			r.Options = nil
			r.Answers = []string{"three quarters"}
		}, false},
	}

	v := StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := valid
			rec.Options = append([]string(nil), valid.Options...)
			rec.Answers = append([]string(nil), valid.Answers...)
			tt.mutate(&rec)

			err := v.Validate(rec, testTopic)
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if err != nil {
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Errorf("error is not *ValidationError: %v", err)
				}
			}
		})
	}
}

func TestSyllabusRefValidator(t *testing.T) {
	tests := []struct {
		name     string
		topicRef string
		recRef   string
		wantErr  bool
	}{
		{"exact match", "MATH.7.2", "MATH.7.2", false},
		{"sub-reference", "MATH.7.2", "MATH.7.2.3", false},
		{"sibling topic", "MATH.7.2", "MATH.7.3", true},
		{"prefix but not boundary", "MATH.7.2", "MATH.7.21", true},
		{"topic without ref accepts anything", "", "SCI.4.1", false},
	}

	v := SyllabusRefValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(
				question.Record{SyllabusRef: tt.recRef},
				TopicContext{SyllabusRef: tt.topicRef},
			)
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
