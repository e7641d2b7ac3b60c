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
	"github.com/abhisek/examforge/ent/assembledtest"
	"github.com/abhisek/examforge/ent/predicate"
)

// AssembledTestUpdate is the builder for updating AssembledTest entities.
type AssembledTestUpdate struct {
	config
	hooks    []Hook
	mutation *AssembledTestMutation
}

// Where appends a list predicates to the AssembledTestUpdate builder.
func (_u *AssembledTestUpdate) Where(ps ...predicate.AssembledTest) *AssembledTestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AssembledTestUpdate) SetUserID(v string) *AssembledTestUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AssembledTestUpdate) SetNillableUserID(v *string) *AssembledTestUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetConfigID sets the "config_id" field.
func (_u *AssembledTestUpdate) SetConfigID(v string) *AssembledTestUpdate {
	_u.mutation.SetConfigID(v)
	return _u
}

// SetNillableConfigID sets the "config_id" field if the given value is not nil.
func (_u *AssembledTestUpdate) SetNillableConfigID(v *string) *AssembledTestUpdate {
	if v != nil {
		_u.SetConfigID(*v)
	}
	return _u
}

// SetQuestionIds sets the "question_ids" field.
func (_u *AssembledTestUpdate) SetQuestionIds(v []string) *AssembledTestUpdate {
	_u.mutation.SetQuestionIds(v)
	return _u
}

// AppendQuestionIds appends value to the "question_ids" field.
func (_u *AssembledTestUpdate) AppendQuestionIds(v []string) *AssembledTestUpdate {
	_u.mutation.AppendQuestionIds(v)
	return _u
}

// Mutation returns the AssembledTestMutation object of the builder.
func (_u *AssembledTestUpdate) Mutation() *AssembledTestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssembledTestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssembledTestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssembledTestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssembledTestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssembledTestUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := assembledtest.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AssembledTest.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfigID(); ok {
		if err := assembledtest.ConfigIDValidator(v); err != nil {
			return &ValidationError{Name: "config_id", err: fmt.Errorf(`ent: validator failed for field "AssembledTest.config_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AssembledTestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assembledtest.Table, assembledtest.Columns, sqlgraph.NewFieldSpec(assembledtest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(assembledtest.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfigID(); ok {
		_spec.SetField(assembledtest.FieldConfigID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionIds(); ok {
		_spec.SetField(assembledtest.FieldQuestionIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestionIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assembledtest.FieldQuestionIds, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assembledtest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssembledTestUpdateOne is the builder for updating a single AssembledTest entity.
type AssembledTestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssembledTestMutation
}

// SetUserID sets the "user_id" field.
func (_u *AssembledTestUpdateOne) SetUserID(v string) *AssembledTestUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AssembledTestUpdateOne) SetNillableUserID(v *string) *AssembledTestUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetConfigID sets the "config_id" field.
func (_u *AssembledTestUpdateOne) SetConfigID(v string) *AssembledTestUpdateOne {
	_u.mutation.SetConfigID(v)
	return _u
}

// SetNillableConfigID sets the "config_id" field if the given value is not nil.
func (_u *AssembledTestUpdateOne) SetNillableConfigID(v *string) *AssembledTestUpdateOne {
	if v != nil {
		_u.SetConfigID(*v)
	}
	return _u
}

// SetQuestionIds sets the "question_ids" field.
func (_u *AssembledTestUpdateOne) SetQuestionIds(v []string) *AssembledTestUpdateOne {
	_u.mutation.SetQuestionIds(v)
	return _u
}

// AppendQuestionIds appends value to the "question_ids" field.
func (_u *AssembledTestUpdateOne) AppendQuestionIds(v []string) *AssembledTestUpdateOne {
	_u.mutation.AppendQuestionIds(v)
	return _u
}

// Mutation returns the AssembledTestMutation object of the builder.
func (_u *AssembledTestUpdateOne) Mutation() *AssembledTestMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssembledTestUpdate builder.
func (_u *AssembledTestUpdateOne) Where(ps ...predicate.AssembledTest) *AssembledTestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssembledTestUpdateOne) Select(field string, fields ...string) *AssembledTestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssembledTest entity.
func (_u *AssembledTestUpdateOne) Save(ctx context.Context) (*AssembledTest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssembledTestUpdateOne) SaveX(ctx context.Context) *AssembledTest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssembledTestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssembledTestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssembledTestUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := assembledtest.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AssembledTest.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfigID(); ok {
		if err := assembledtest.ConfigIDValidator(v); err != nil {
			return &ValidationError{Name: "config_id", err: fmt.Errorf(`ent: validator failed for field "AssembledTest.config_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AssembledTestUpdateOne) sqlSave(ctx context.Context) (_node *AssembledTest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assembledtest.Table, assembledtest.Columns, sqlgraph.NewFieldSpec(assembledtest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssembledTest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assembledtest.FieldID)
		for _, f := range fields {
			if !assembledtest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assembledtest.FieldID {
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
		_spec.SetField(assembledtest.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfigID(); ok {
		_spec.SetField(assembledtest.FieldConfigID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionIds(); ok {
		_spec.SetField(assembledtest.FieldQuestionIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestionIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assembledtest.FieldQuestionIds, value)
		})
	}
	_node = &AssembledTest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assembledtest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
