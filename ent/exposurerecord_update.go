// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/examforge/ent/exposurerecord"
	"github.com/abhisek/examforge/ent/predicate"
)

// ExposureRecordUpdate is the builder for updating ExposureRecord entities.
type ExposureRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ExposureRecordMutation
}

// Where appends a list predicates to the ExposureRecordUpdate builder.
func (_u *ExposureRecordUpdate) Where(ps ...predicate.ExposureRecord) *ExposureRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ExposureRecordUpdate) SetUserID(v string) *ExposureRecordUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExposureRecordUpdate) SetNillableUserID(v *string) *ExposureRecordUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ExposureRecordUpdate) SetQuestionID(v string) *ExposureRecordUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ExposureRecordUpdate) SetNillableQuestionID(v *string) *ExposureRecordUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// Mutation returns the ExposureRecordMutation object of the builder.
func (_u *ExposureRecordUpdate) Mutation() *ExposureRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExposureRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExposureRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExposureRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExposureRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExposureRecordUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := exposurerecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ExposureRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := exposurerecord.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ExposureRecord.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ExposureRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exposurerecord.Table, exposurerecord.Columns, sqlgraph.NewFieldSpec(exposurerecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(exposurerecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(exposurerecord.FieldQuestionID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exposurerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExposureRecordUpdateOne is the builder for updating a single ExposureRecord entity.
type ExposureRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExposureRecordMutation
}

// SetUserID sets the "user_id" field.
func (_u *ExposureRecordUpdateOne) SetUserID(v string) *ExposureRecordUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExposureRecordUpdateOne) SetNillableUserID(v *string) *ExposureRecordUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ExposureRecordUpdateOne) SetQuestionID(v string) *ExposureRecordUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ExposureRecordUpdateOne) SetNillableQuestionID(v *string) *ExposureRecordUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// Mutation returns the ExposureRecordMutation object of the builder.
func (_u *ExposureRecordUpdateOne) Mutation() *ExposureRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExposureRecordUpdate builder.
func (_u *ExposureRecordUpdateOne) Where(ps ...predicate.ExposureRecord) *ExposureRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExposureRecordUpdateOne) Select(field string, fields ...string) *ExposureRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExposureRecord entity.
func (_u *ExposureRecordUpdateOne) Save(ctx context.Context) (*ExposureRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExposureRecordUpdateOne) SaveX(ctx context.Context) *ExposureRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExposureRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExposureRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExposureRecordUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := exposurerecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ExposureRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := exposurerecord.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ExposureRecord.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ExposureRecordUpdateOne) sqlSave(ctx context.Context) (_node *ExposureRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exposurerecord.Table, exposurerecord.Columns, sqlgraph.NewFieldSpec(exposurerecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExposureRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, exposurerecord.FieldID)
		for _, f := range fields {
			if !exposurerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != exposurerecord.FieldID {
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
		_spec.SetField(exposurerecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(exposurerecord.FieldQuestionID, field.TypeString, value)
	}
	_node = &ExposureRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exposurerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
