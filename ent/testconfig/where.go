// Code generated by ent, DO NOT EDIT.

package testconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/examforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldEQ(FieldUserID, v))
}

// Curriculum applies equality check predicate on the "curriculum" field. It's identical to CurriculumEQ.
func Curriculum(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldEQ(FieldCurriculum, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldEQ(FieldGrade, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldEQ(FieldSubject, v))
}

// QuestionCount applies equality check predicate on the "question_count" field. It's identical to QuestionCountEQ.
func QuestionCount(v int) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldEQ(FieldQuestionCount, v))
}

// TestCount applies equality check predicate on the "test_count" field. It's identical to TestCountEQ.
func TestCount(v int) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldEQ(FieldTestCount, v))
}

// ExcludeSeen applies equality check predicate on the "exclude_seen" field. It's identical to ExcludeSeenEQ.
func ExcludeSeen(v bool) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldEQ(FieldExcludeSeen, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldContainsFold(FieldUserID, v))
}

// CurriculumEQ applies the EQ predicate on the "curriculum" field.
func CurriculumEQ(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldEQ(FieldCurriculum, v))
}

// CurriculumNEQ applies the NEQ predicate on the "curriculum" field.
func CurriculumNEQ(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldNEQ(FieldCurriculum, v))
}

// CurriculumIn applies the In predicate on the "curriculum" field.
func CurriculumIn(vs ...string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldIn(FieldCurriculum, vs...))
}

// CurriculumNotIn applies the NotIn predicate on the "curriculum" field.
func CurriculumNotIn(vs ...string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldNotIn(FieldCurriculum, vs...))
}

// CurriculumGT applies the GT predicate on the "curriculum" field.
func CurriculumGT(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldGT(FieldCurriculum, v))
}

// CurriculumGTE applies the GTE predicate on the "curriculum" field.
func CurriculumGTE(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldGTE(FieldCurriculum, v))
}

// CurriculumLT applies the LT predicate on the "curriculum" field.
func CurriculumLT(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldLT(FieldCurriculum, v))
}

// CurriculumLTE applies the LTE predicate on the "curriculum" field.
func CurriculumLTE(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldLTE(FieldCurriculum, v))
}

// CurriculumContains applies the Contains predicate on the "curriculum" field.
func CurriculumContains(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldContains(FieldCurriculum, v))
}

// CurriculumHasPrefix applies the HasPrefix predicate on the "curriculum" field.
func CurriculumHasPrefix(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldHasPrefix(FieldCurriculum, v))
}

// CurriculumHasSuffix applies the HasSuffix predicate on the "curriculum" field.
func CurriculumHasSuffix(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldHasSuffix(FieldCurriculum, v))
}

// CurriculumEqualFold applies the EqualFold predicate on the "curriculum" field.
func CurriculumEqualFold(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldEqualFold(FieldCurriculum, v))
}

// CurriculumContainsFold applies the ContainsFold predicate on the "curriculum" field.
func CurriculumContainsFold(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldContainsFold(FieldCurriculum, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldLTE(FieldGrade, v))
}

// GradeContains applies the Contains predicate on the "grade" field.
func GradeContains(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldContains(FieldGrade, v))
}

// GradeHasPrefix applies the HasPrefix predicate on the "grade" field.
func GradeHasPrefix(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldHasPrefix(FieldGrade, v))
}

// GradeHasSuffix applies the HasSuffix predicate on the "grade" field.
func GradeHasSuffix(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldHasSuffix(FieldGrade, v))
}

// GradeEqualFold applies the EqualFold predicate on the "grade" field.
func GradeEqualFold(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldEqualFold(FieldGrade, v))
}

// GradeContainsFold applies the ContainsFold predicate on the "grade" field.
func GradeContainsFold(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldContainsFold(FieldGrade, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldContainsFold(FieldSubject, v))
}

// QuestionCountEQ applies the EQ predicate on the "question_count" field.
func QuestionCountEQ(v int) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldEQ(FieldQuestionCount, v))
}

// QuestionCountNEQ applies the NEQ predicate on the "question_count" field.
func QuestionCountNEQ(v int) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldNEQ(FieldQuestionCount, v))
}

// QuestionCountIn applies the In predicate on the "question_count" field.
func QuestionCountIn(vs ...int) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldIn(FieldQuestionCount, vs...))
}

// QuestionCountNotIn applies the NotIn predicate on the "question_count" field.
func QuestionCountNotIn(vs ...int) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldNotIn(FieldQuestionCount, vs...))
}

// QuestionCountGT applies the GT predicate on the "question_count" field.
func QuestionCountGT(v int) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldGT(FieldQuestionCount, v))
}

// QuestionCountGTE applies the GTE predicate on the "question_count" field.
func QuestionCountGTE(v int) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldGTE(FieldQuestionCount, v))
}

// QuestionCountLT applies the LT predicate on the "question_count" field.
func QuestionCountLT(v int) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldLT(FieldQuestionCount, v))
}

// QuestionCountLTE applies the LTE predicate on the "question_count" field.
func QuestionCountLTE(v int) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldLTE(FieldQuestionCount, v))
}

// TestCountEQ applies the EQ predicate on the "test_count" field.
func TestCountEQ(v int) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldEQ(FieldTestCount, v))
}

// TestCountNEQ applies the NEQ predicate on the "test_count" field.
func TestCountNEQ(v int) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldNEQ(FieldTestCount, v))
}

// TestCountIn applies the In predicate on the "test_count" field.
func TestCountIn(vs ...int) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldIn(FieldTestCount, vs...))
}

// TestCountNotIn applies the NotIn predicate on the "test_count" field.
func TestCountNotIn(vs ...int) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldNotIn(FieldTestCount, vs...))
}

// TestCountGT applies the GT predicate on the "test_count" field.
func TestCountGT(v int) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldGT(FieldTestCount, v))
}

// TestCountGTE applies the GTE predicate on the "test_count" field.
func TestCountGTE(v int) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldGTE(FieldTestCount, v))
}

// TestCountLT applies the LT predicate on the "test_count" field.
func TestCountLT(v int) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldLT(FieldTestCount, v))
}

// TestCountLTE applies the LTE predicate on the "test_count" field.
func TestCountLTE(v int) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldLTE(FieldTestCount, v))
}

// ExcludeSeenEQ applies the EQ predicate on the "exclude_seen" field.
func ExcludeSeenEQ(v bool) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldEQ(FieldExcludeSeen, v))
}

// ExcludeSeenNEQ applies the NEQ predicate on the "exclude_seen" field.
func ExcludeSeenNEQ(v bool) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldNEQ(FieldExcludeSeen, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TestConfig {
	return predicate.TestConfig(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TestConfig) predicate.TestConfig {
	return predicate.TestConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TestConfig) predicate.TestConfig {
	return predicate.TestConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TestConfig) predicate.TestConfig {
	return predicate.TestConfig(sql.NotPredicates(p))
}
