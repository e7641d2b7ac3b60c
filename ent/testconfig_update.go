// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/examforge/ent/predicate"
	"github.com/abhisek/examforge/ent/testconfig"
)

// TestConfigUpdate is the builder for updating TestConfig entities.
type TestConfigUpdate struct {
	config
	hooks    []Hook
	mutation *TestConfigMutation
}

// Where appends a list predicates to the TestConfigUpdate builder.
func (_u *TestConfigUpdate) Where(ps ...predicate.TestConfig) *TestConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TestConfigUpdate) SetUserID(v string) *TestConfigUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TestConfigUpdate) SetNillableUserID(v *string) *TestConfigUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCurriculum sets the "curriculum" field.
func (_u *TestConfigUpdate) SetCurriculum(v string) *TestConfigUpdate {
	_u.mutation.SetCurriculum(v)
	return _u
}

// SetNillableCurriculum sets the "curriculum" field if the given value is not nil.
func (_u *TestConfigUpdate) SetNillableCurriculum(v *string) *TestConfigUpdate {
	if v != nil {
		_u.SetCurriculum(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *TestConfigUpdate) SetGrade(v string) *TestConfigUpdate {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *TestConfigUpdate) SetNillableGrade(v *string) *TestConfigUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *TestConfigUpdate) SetSubject(v string) *TestConfigUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *TestConfigUpdate) SetNillableSubject(v *string) *TestConfigUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopicIds sets the "topic_ids" field.
func (_u *TestConfigUpdate) SetTopicIds(v []string) *TestConfigUpdate {
	_u.mutation.SetTopicIds(v)
	return _u
}

// AppendTopicIds appends value to the "topic_ids" field.
func (_u *TestConfigUpdate) AppendTopicIds(v []string) *TestConfigUpdate {
	_u.mutation.AppendTopicIds(v)
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *TestConfigUpdate) SetQuestionCount(v int) *TestConfigUpdate {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *TestConfigUpdate) SetNillableQuestionCount(v *int) *TestConfigUpdate {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *TestConfigUpdate) AddQuestionCount(v int) *TestConfigUpdate {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetTestCount sets the "test_count" field.
func (_u *TestConfigUpdate) SetTestCount(v int) *TestConfigUpdate {
	_u.mutation.ResetTestCount()
	_u.mutation.SetTestCount(v)
	return _u
}

// SetNillableTestCount sets the "test_count" field if the given value is not nil.
func (_u *TestConfigUpdate) SetNillableTestCount(v *int) *TestConfigUpdate {
	if v != nil {
		_u.SetTestCount(*v)
	}
	return _u
}

// AddTestCount adds value to the "test_count" field.
func (_u *TestConfigUpdate) AddTestCount(v int) *TestConfigUpdate {
	_u.mutation.AddTestCount(v)
	return _u
}

// SetExcludeSeen sets the "exclude_seen" field.
func (_u *TestConfigUpdate) SetExcludeSeen(v bool) *TestConfigUpdate {
	_u.mutation.SetExcludeSeen(v)
	return _u
}

// SetNillableExcludeSeen sets the "exclude_seen" field if the given value is not nil.
func (_u *TestConfigUpdate) SetNillableExcludeSeen(v *bool) *TestConfigUpdate {
	if v != nil {
		_u.SetExcludeSeen(*v)
	}
	return _u
}

// Mutation returns the TestConfigMutation object of the builder.
func (_u *TestConfigUpdate) Mutation() *TestConfigMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestConfigUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestConfigUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := testconfig.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TestConfig.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionCount(); ok {
		if err := testconfig.QuestionCountValidator(v); err != nil {
			return &ValidationError{Name: "question_count", err: fmt.Errorf(`ent: validator failed for field "TestConfig.question_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TestCount(); ok {
		if err := testconfig.TestCountValidator(v); err != nil {
			return &ValidationError{Name: "test_count", err: fmt.Errorf(`ent: validator failed for field "TestConfig.test_count": %w`, err)}
		}
	}
	return nil
}

func (_u *TestConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testconfig.Table, testconfig.Columns, sqlgraph.NewFieldSpec(testconfig.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(testconfig.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Curriculum(); ok {
		_spec.SetField(testconfig.FieldCurriculum, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(testconfig.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(testconfig.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicIds(); ok {
		_spec.SetField(testconfig.FieldTopicIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopicIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, testconfig.FieldTopicIds, value)
		})
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(testconfig.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(testconfig.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TestCount(); ok {
		_spec.SetField(testconfig.FieldTestCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTestCount(); ok {
		_spec.AddField(testconfig.FieldTestCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExcludeSeen(); ok {
		_spec.SetField(testconfig.FieldExcludeSeen, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestConfigUpdateOne is the builder for updating a single TestConfig entity.
type TestConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestConfigMutation
}

// SetUserID sets the "user_id" field.
func (_u *TestConfigUpdateOne) SetUserID(v string) *TestConfigUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TestConfigUpdateOne) SetNillableUserID(v *string) *TestConfigUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCurriculum sets the "curriculum" field.
func (_u *TestConfigUpdateOne) SetCurriculum(v string) *TestConfigUpdateOne {
	_u.mutation.SetCurriculum(v)
	return _u
}

// SetNillableCurriculum sets the "curriculum" field if the given value is not nil.
func (_u *TestConfigUpdateOne) SetNillableCurriculum(v *string) *TestConfigUpdateOne {
	if v != nil {
		_u.SetCurriculum(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *TestConfigUpdateOne) SetGrade(v string) *TestConfigUpdateOne {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *TestConfigUpdateOne) SetNillableGrade(v *string) *TestConfigUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *TestConfigUpdateOne) SetSubject(v string) *TestConfigUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *TestConfigUpdateOne) SetNillableSubject(v *string) *TestConfigUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopicIds sets the "topic_ids" field.
func (_u *TestConfigUpdateOne) SetTopicIds(v []string) *TestConfigUpdateOne {
	_u.mutation.SetTopicIds(v)
	return _u
}

// AppendTopicIds appends value to the "topic_ids" field.
func (_u *TestConfigUpdateOne) AppendTopicIds(v []string) *TestConfigUpdateOne {
	_u.mutation.AppendTopicIds(v)
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *TestConfigUpdateOne) SetQuestionCount(v int) *TestConfigUpdateOne {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *TestConfigUpdateOne) SetNillableQuestionCount(v *int) *TestConfigUpdateOne {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *TestConfigUpdateOne) AddQuestionCount(v int) *TestConfigUpdateOne {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetTestCount sets the "test_count" field.
func (_u *TestConfigUpdateOne) SetTestCount(v int) *TestConfigUpdateOne {
	_u.mutation.ResetTestCount()
	_u.mutation.SetTestCount(v)
	return _u
}

// SetNillableTestCount sets the "test_count" field if the given value is not nil.
func (_u *TestConfigUpdateOne) SetNillableTestCount(v *int) *TestConfigUpdateOne {
	if v != nil {
		_u.SetTestCount(*v)
	}
	return _u
}

// AddTestCount adds value to the "test_count" field.
func (_u *TestConfigUpdateOne) AddTestCount(v int) *TestConfigUpdateOne {
	_u.mutation.AddTestCount(v)
	return _u
}

// SetExcludeSeen sets the "exclude_seen" field.
func (_u *TestConfigUpdateOne) SetExcludeSeen(v bool) *TestConfigUpdateOne {
	_u.mutation.SetExcludeSeen(v)
	return _u
}

// SetNillableExcludeSeen sets the "exclude_seen" field if the given value is not nil.
func (_u *TestConfigUpdateOne) SetNillableExcludeSeen(v *bool) *TestConfigUpdateOne {
	if v != nil {
		_u.SetExcludeSeen(*v)
	}
	return _u
}

// Mutation returns the TestConfigMutation object of the builder.
func (_u *TestConfigUpdateOne) Mutation() *TestConfigMutation {
	return _u.mutation
}

// Where appends a list predicates to the TestConfigUpdate builder.
func (_u *TestConfigUpdateOne) Where(ps ...predicate.TestConfig) *TestConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestConfigUpdateOne) Select(field string, fields ...string) *TestConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TestConfig entity.
func (_u *TestConfigUpdateOne) Save(ctx context.Context) (*TestConfig, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestConfigUpdateOne) SaveX(ctx context.Context) *TestConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestConfigUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := testconfig.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TestConfig.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionCount(); ok {
		if err := testconfig.QuestionCountValidator(v); err != nil {
			return &ValidationError{Name: "question_count", err: fmt.Errorf(`ent: validator failed for field "TestConfig.question_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TestCount(); ok {
		if err := testconfig.TestCountValidator(v); err != nil {
			return &ValidationError{Name: "test_count", err: fmt.Errorf(`ent: validator failed for field "TestConfig.test_count": %w`, err)}
		}
	}
	return nil
}

func (_u *TestConfigUpdateOne) sqlSave(ctx context.Context) (_node *TestConfig, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testconfig.Table, testconfig.Columns, sqlgraph.NewFieldSpec(testconfig.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TestConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, testconfig.FieldID)
		for _, f := range fields {
			if !testconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != testconfig.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(testconfig.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Curriculum(); ok {
		_spec.SetField(testconfig.FieldCurriculum, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(testconfig.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(testconfig.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicIds(); ok {
		_spec.SetField(testconfig.FieldTopicIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopicIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, testconfig.FieldTopicIds, value)
		})
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(testconfig.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(testconfig.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TestCount(); ok {
		_spec.SetField(testconfig.FieldTestCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTestCount(); ok {
		_spec.AddField(testconfig.FieldTestCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExcludeSeen(); ok {
		_spec.SetField(testconfig.FieldExcludeSeen, field.TypeBool, value)
	}
	_node = &TestConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
