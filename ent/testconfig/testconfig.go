// Code generated by ent, DO NOT EDIT.

package testconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the testconfig type in the database.
	Label = "test_config"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldCurriculum holds the string denoting the curriculum field in the database.
	FieldCurriculum = "curriculum"
	// FieldGrade holds the string denoting the grade field in the database.
	FieldGrade = "grade"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldTopicIds holds the string denoting the topic_ids field in the database.
	FieldTopicIds = "topic_ids"
	// FieldQuestionCount holds the string denoting the question_count field in the database.
	FieldQuestionCount = "question_count"
	// FieldTestCount holds the string denoting the test_count field in the database.
	FieldTestCount = "test_count"
	// FieldExcludeSeen holds the string denoting the exclude_seen field in the database.
	FieldExcludeSeen = "exclude_seen"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the testconfig in the database.
	Table = "test_configs"
)

// Columns holds all SQL columns for testconfig fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldCurriculum,
	FieldGrade,
	FieldSubject,
	FieldTopicIds,
	FieldQuestionCount,
	FieldTestCount,
	FieldExcludeSeen,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// QuestionCountValidator is a validator for the "question_count" field. It is called by the builders before save.
	QuestionCountValidator func(int) error
	// TestCountValidator is a validator for the "test_count" field. It is called by the builders before save.
	TestCountValidator func(int) error
	// DefaultExcludeSeen holds the default value on creation for the "exclude_seen" field.
	DefaultExcludeSeen bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the TestConfig queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByCurriculum orders the results by the curriculum field.
func ByCurriculum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurriculum, opts...).ToFunc()
}

// ByGrade orders the results by the grade field.
func ByGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrade, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByQuestionCount orders the results by the question_count field.
func ByQuestionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionCount, opts...).ToFunc()
}

// ByTestCount orders the results by the test_count field.
func ByTestCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestCount, opts...).ToFunc()
}

// ByExcludeSeen orders the results by the exclude_seen field.
func ByExcludeSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExcludeSeen, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
