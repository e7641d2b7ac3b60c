// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssembledTestsColumns holds the columns for the "assembled_tests" table.
	AssembledTestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "config_id", Type: field.TypeString},
		{Name: "question_ids", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AssembledTestsTable holds the schema information for the "assembled_tests" table.
	AssembledTestsTable = &schema.Table{
		Name:       "assembled_tests",
		Columns:    AssembledTestsColumns,
		PrimaryKey: []*schema.Column{AssembledTestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assembledtest_user_id",
				Unique:  false,
				Columns: []*schema.Column{AssembledTestsColumns[1]},
			},
			{
				Name:    "assembledtest_config_id",
				Unique:  false,
				Columns: []*schema.Column{AssembledTestsColumns[2]},
			},
		},
	}
	// ExposureRecordsColumns holds the columns for the "exposure_records" table.
	ExposureRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "first_seen", Type: field.TypeTime},
	}
	// ExposureRecordsTable holds the schema information for the "exposure_records" table.
	ExposureRecordsTable = &schema.Table{
		Name:       "exposure_records",
		Columns:    ExposureRecordsColumns,
		PrimaryKey: []*schema.Column{ExposureRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "exposurerecord_user_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{ExposureRecordsColumns[1], ExposureRecordsColumns[2]},
			},
			{
				Name:    "exposurerecord_user_id",
				Unique:  false,
				Columns: []*schema.Column{ExposureRecordsColumns[1]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[8]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "type", Type: field.TypeString},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "answers", Type: field.TypeJSON},
		{Name: "syllabus_ref", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString, Default: ""},
		{Name: "embedding", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_topic_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[1]},
			},
			{
				Name:    "question_syllabus_ref",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[6]},
			},
		},
	}
	// TestConfigsColumns holds the columns for the "test_configs" table.
	TestConfigsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "curriculum", Type: field.TypeString},
		{Name: "grade", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "topic_ids", Type: field.TypeJSON},
		{Name: "question_count", Type: field.TypeInt},
		{Name: "test_count", Type: field.TypeInt},
		{Name: "exclude_seen", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TestConfigsTable holds the schema information for the "test_configs" table.
	TestConfigsTable = &schema.Table{
		Name:       "test_configs",
		Columns:    TestConfigsColumns,
		PrimaryKey: []*schema.Column{TestConfigsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "testconfig_user_id",
				Unique:  false,
				Columns: []*schema.Column{TestConfigsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssembledTestsTable,
		ExposureRecordsTable,
		LlmRequestEventsTable,
		QuestionsTable,
		TestConfigsTable,
	}
)

func init() {
}
