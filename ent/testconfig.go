// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/examforge/ent/testconfig"
)

// TestConfig is the model entity for the TestConfig schema.
type TestConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Curriculum holds the value of the "curriculum" field.
	Curriculum string `json:"curriculum,omitempty"`
	// Grade holds the value of the "grade" field.
	Grade string `json:"grade,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// Syllabus topics the batch draws from
	TopicIds []string `json:"topic_ids,omitempty"`
	// QuestionCount holds the value of the "question_count" field.
	QuestionCount int `json:"question_count,omitempty"`
	// TestCount holds the value of the "test_count" field.
	TestCount int `json:"test_count,omitempty"`
	// Whether the request excluded previously seen questions
	ExcludeSeen bool `json:"exclude_seen,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TestConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case testconfig.FieldTopicIds:
			values[i] = new([]byte)
		case testconfig.FieldExcludeSeen:
			values[i] = new(sql.NullBool)
		case testconfig.FieldQuestionCount, testconfig.FieldTestCount:
			values[i] = new(sql.NullInt64)
		case testconfig.FieldID, testconfig.FieldUserID, testconfig.FieldCurriculum, testconfig.FieldGrade, testconfig.FieldSubject:
			values[i] = new(sql.NullString)
		case testconfig.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TestConfig fields.
func (_m *TestConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case testconfig.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case testconfig.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case testconfig.FieldCurriculum:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field curriculum", values[i])
			} else if value.Valid {
				_m.Curriculum = value.String
			}
		case testconfig.FieldGrade:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grade", values[i])
			} else if value.Valid {
				_m.Grade = value.String
			}
		case testconfig.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case testconfig.FieldTopicIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field topic_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TopicIds); err != nil {
					return fmt.Errorf("unmarshal field topic_ids: %w", err)
				}
			}
		case testconfig.FieldQuestionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_count", values[i])
			} else if value.Valid {
				_m.QuestionCount = int(value.Int64)
			}
		case testconfig.FieldTestCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field test_count", values[i])
			} else if value.Valid {
				_m.TestCount = int(value.Int64)
			}
		case testconfig.FieldExcludeSeen:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field exclude_seen", values[i])
			} else if value.Valid {
				_m.ExcludeSeen = value.Bool
			}
		case testconfig.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TestConfig.
// This includes values selected through modifiers, order, etc.
func (_m *TestConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TestConfig.
// Note that you need to call TestConfig.Unwrap() before calling this method if this TestConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TestConfig) Update() *TestConfigUpdateOne {
	return NewTestConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TestConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TestConfig) Unwrap() *TestConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TestConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TestConfig) String() string {
	var builder strings.Builder
	builder.WriteString("TestConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("curriculum=")
	builder.WriteString(_m.Curriculum)
	builder.WriteString(", ")
	builder.WriteString("grade=")
	builder.WriteString(_m.Grade)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("topic_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopicIds))
	builder.WriteString(", ")
	builder.WriteString("question_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionCount))
	builder.WriteString(", ")
	builder.WriteString("test_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TestCount))
	builder.WriteString(", ")
	builder.WriteString("exclude_seen=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExcludeSeen))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TestConfigs is a parsable slice of TestConfig.
type TestConfigs []*TestConfig
