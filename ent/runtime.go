// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/examforge/ent/assembledtest"
	"github.com/abhisek/examforge/ent/exposurerecord"
	"github.com/abhisek/examforge/ent/llmrequestevent"
	"github.com/abhisek/examforge/ent/question"
	"github.com/abhisek/examforge/ent/schema"
	"github.com/abhisek/examforge/ent/testconfig"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assembledtestFields := schema.AssembledTest{}.Fields()
	_ = assembledtestFields
	// assembledtestDescUserID is the schema descriptor for user_id field.
	assembledtestDescUserID := assembledtestFields[1].Descriptor()
	// assembledtest.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	assembledtest.UserIDValidator = assembledtestDescUserID.Validators[0].(func(string) error)
	// assembledtestDescConfigID is the schema descriptor for config_id field.
	assembledtestDescConfigID := assembledtestFields[2].Descriptor()
	// assembledtest.ConfigIDValidator is a validator for the "config_id" field. It is called by the builders before save.
	assembledtest.ConfigIDValidator = assembledtestDescConfigID.Validators[0].(func(string) error)
	// assembledtestDescCreatedAt is the schema descriptor for created_at field.
	assembledtestDescCreatedAt := assembledtestFields[4].Descriptor()
	// assembledtest.DefaultCreatedAt holds the default value on creation for the created_at field.
	assembledtest.DefaultCreatedAt = assembledtestDescCreatedAt.Default.(func() time.Time)
	// assembledtestDescID is the schema descriptor for id field.
	assembledtestDescID := assembledtestFields[0].Descriptor()
	// assembledtest.IDValidator is a validator for the "id" field. It is called by the builders before save.
	assembledtest.IDValidator = assembledtestDescID.Validators[0].(func(string) error)
	exposurerecordFields := schema.ExposureRecord{}.Fields()
	_ = exposurerecordFields
	// exposurerecordDescUserID is the schema descriptor for user_id field.
	exposurerecordDescUserID := exposurerecordFields[0].Descriptor()
	// exposurerecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	exposurerecord.UserIDValidator = exposurerecordDescUserID.Validators[0].(func(string) error)
	// exposurerecordDescQuestionID is the schema descriptor for question_id field.
	exposurerecordDescQuestionID := exposurerecordFields[1].Descriptor()
	// exposurerecord.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	exposurerecord.QuestionIDValidator = exposurerecordDescQuestionID.Validators[0].(func(string) error)
	// exposurerecordDescFirstSeen is the schema descriptor for first_seen field.
	exposurerecordDescFirstSeen := exposurerecordFields[2].Descriptor()
	// exposurerecord.DefaultFirstSeen holds the default value on creation for the first_seen field.
	exposurerecord.DefaultFirstSeen = exposurerecordDescFirstSeen.Default.(func() time.Time)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescTopicID is the schema descriptor for topic_id field.
	questionDescTopicID := questionFields[1].Descriptor()
	// question.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	question.TopicIDValidator = questionDescTopicID.Validators[0].(func(string) error)
	// questionDescText is the schema descriptor for text field.
	questionDescText := questionFields[2].Descriptor()
	// question.TextValidator is a validator for the "text" field. It is called by the builders before save.
	question.TextValidator = questionDescText.Validators[0].(func(string) error)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[7].Descriptor()
	// question.DefaultDifficulty holds the default value on creation for the difficulty field.
	question.DefaultDifficulty = questionDescDifficulty.Default.(string)
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[9].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	// questionDescID is the schema descriptor for id field.
	questionDescID := questionFields[0].Descriptor()
	// question.IDValidator is a validator for the "id" field. It is called by the builders before save.
	question.IDValidator = questionDescID.Validators[0].(func(string) error)
	testconfigFields := schema.TestConfig{}.Fields()
	_ = testconfigFields
	// testconfigDescUserID is the schema descriptor for user_id field.
	testconfigDescUserID := testconfigFields[1].Descriptor()
	// testconfig.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	testconfig.UserIDValidator = testconfigDescUserID.Validators[0].(func(string) error)
	// testconfigDescQuestionCount is the schema descriptor for question_count field.
	testconfigDescQuestionCount := testconfigFields[6].Descriptor()
	// testconfig.QuestionCountValidator is a validator for the "question_count" field. It is called by the builders before save.
	testconfig.QuestionCountValidator = testconfigDescQuestionCount.Validators[0].(func(int) error)
	// testconfigDescTestCount is the schema descriptor for test_count field.
	testconfigDescTestCount := testconfigFields[7].Descriptor()
	// testconfig.TestCountValidator is a validator for the "test_count" field. It is called by the builders before save.
	testconfig.TestCountValidator = testconfigDescTestCount.Validators[0].(func(int) error)
	// testconfigDescExcludeSeen is the schema descriptor for exclude_seen field.
	testconfigDescExcludeSeen := testconfigFields[8].Descriptor()
	// testconfig.DefaultExcludeSeen holds the default value on creation for the exclude_seen field.
	testconfig.DefaultExcludeSeen = testconfigDescExcludeSeen.Default.(bool)
	// testconfigDescCreatedAt is the schema descriptor for created_at field.
	testconfigDescCreatedAt := testconfigFields[9].Descriptor()
	// testconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	testconfig.DefaultCreatedAt = testconfigDescCreatedAt.Default.(func() time.Time)
	// testconfigDescID is the schema descriptor for id field.
	testconfigDescID := testconfigFields[0].Descriptor()
	// testconfig.IDValidator is a validator for the "id" field. It is called by the builders before save.
	testconfig.IDValidator = testconfigDescID.Validators[0].(func(string) error)
}
