// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/examforge/ent/exposurerecord"
)

// ExposureRecordCreate is the builder for creating a ExposureRecord entity.
type ExposureRecordCreate struct {
	config
	mutation *ExposureRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *ExposureRecordCreate) SetUserID(v string) *ExposureRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *ExposureRecordCreate) SetQuestionID(v string) *ExposureRecordCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetFirstSeen sets the "first_seen" field.
func (_c *ExposureRecordCreate) SetFirstSeen(v time.Time) *ExposureRecordCreate {
	_c.mutation.SetFirstSeen(v)
	return _c
}

// SetNillableFirstSeen sets the "first_seen" field if the given value is not nil.
func (_c *ExposureRecordCreate) SetNillableFirstSeen(v *time.Time) *ExposureRecordCreate {
	if v != nil {
		_c.SetFirstSeen(*v)
	}
	return _c
}

// Mutation returns the ExposureRecordMutation object of the builder.
func (_c *ExposureRecordCreate) Mutation() *ExposureRecordMutation {
	return _c.mutation
}

// Save creates the ExposureRecord in the database.
func (_c *ExposureRecordCreate) Save(ctx context.Context) (*ExposureRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExposureRecordCreate) SaveX(ctx context.Context) *ExposureRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExposureRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExposureRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExposureRecordCreate) defaults() {
	if _, ok := _c.mutation.FirstSeen(); !ok {
		v := exposurerecord.DefaultFirstSeen()
		_c.mutation.SetFirstSeen(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExposureRecordCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ExposureRecord.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := exposurerecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ExposureRecord.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "ExposureRecord.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := exposurerecord.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ExposureRecord.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		return &ValidationError{Name: "first_seen", err: errors.New(`ent: missing required field "ExposureRecord.first_seen"`)}
	}
	return nil
}

func (_c *ExposureRecordCreate) sqlSave(ctx context.Context) (*ExposureRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExposureRecordCreate) createSpec() (*ExposureRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ExposureRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(exposurerecord.Table, sqlgraph.NewFieldSpec(exposurerecord.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(exposurerecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(exposurerecord.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.FirstSeen(); ok {
		_spec.SetField(exposurerecord.FieldFirstSeen, field.TypeTime, value)
		_node.FirstSeen = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExposureRecord.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExposureRecordUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExposureRecordCreate) OnConflict(opts ...sql.ConflictOption) *ExposureRecordUpsertOne {
	_c.conflict = opts
	return &ExposureRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExposureRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExposureRecordCreate) OnConflictColumns(columns ...string) *ExposureRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExposureRecordUpsertOne{
		create: _c,
	}
}

type (
	// ExposureRecordUpsertOne is the builder for "upsert"-ing
	//  one ExposureRecord node.
	ExposureRecordUpsertOne struct {
		create *ExposureRecordCreate
	}

	// ExposureRecordUpsert is the "OnConflict" setter.
	ExposureRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *ExposureRecordUpsert) SetUserID(v string) *ExposureRecordUpsert {
	u.Set(exposurerecord.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ExposureRecordUpsert) UpdateUserID() *ExposureRecordUpsert {
	u.SetExcluded(exposurerecord.FieldUserID)
	return u
}

// SetQuestionID sets the "question_id" field.
func (u *ExposureRecordUpsert) SetQuestionID(v string) *ExposureRecordUpsert {
	u.Set(exposurerecord.FieldQuestionID, v)
	return u
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *ExposureRecordUpsert) UpdateQuestionID() *ExposureRecordUpsert {
	u.SetExcluded(exposurerecord.FieldQuestionID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ExposureRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExposureRecordUpsertOne) UpdateNewValues() *ExposureRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.FirstSeen(); exists {
			s.SetIgnore(exposurerecord.FieldFirstSeen)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExposureRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExposureRecordUpsertOne) Ignore() *ExposureRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExposureRecordUpsertOne) DoNothing() *ExposureRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExposureRecordCreate.OnConflict
// documentation for more info.
func (u *ExposureRecordUpsertOne) Update(set func(*ExposureRecordUpsert)) *ExposureRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExposureRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *ExposureRecordUpsertOne) SetUserID(v string) *ExposureRecordUpsertOne {
	return u.Update(func(s *ExposureRecordUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ExposureRecordUpsertOne) UpdateUserID() *ExposureRecordUpsertOne {
	return u.Update(func(s *ExposureRecordUpsert) {
		s.UpdateUserID()
	})
}

// SetQuestionID sets the "question_id" field.
func (u *ExposureRecordUpsertOne) SetQuestionID(v string) *ExposureRecordUpsertOne {
	return u.Update(func(s *ExposureRecordUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *ExposureRecordUpsertOne) UpdateQuestionID() *ExposureRecordUpsertOne {
	return u.Update(func(s *ExposureRecordUpsert) {
		s.UpdateQuestionID()
	})
}

// Exec executes the query.
func (u *ExposureRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExposureRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExposureRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExposureRecordUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExposureRecordUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExposureRecordCreateBulk is the builder for creating many ExposureRecord entities in bulk.
type ExposureRecordCreateBulk struct {
	config
	err      error
	builders []*ExposureRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the ExposureRecord entities in the database.
func (_c *ExposureRecordCreateBulk) Save(ctx context.Context) ([]*ExposureRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExposureRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExposureRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExposureRecordCreateBulk) SaveX(ctx context.Context) []*ExposureRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExposureRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExposureRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExposureRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExposureRecordUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExposureRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExposureRecordUpsertBulk {
	_c.conflict = opts
	return &ExposureRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExposureRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExposureRecordCreateBulk) OnConflictColumns(columns ...string) *ExposureRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExposureRecordUpsertBulk{
		create: _c,
	}
}

// ExposureRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of ExposureRecord nodes.
type ExposureRecordUpsertBulk struct {
	create *ExposureRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExposureRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExposureRecordUpsertBulk) UpdateNewValues() *ExposureRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.FirstSeen(); exists {
				s.SetIgnore(exposurerecord.FieldFirstSeen)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExposureRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExposureRecordUpsertBulk) Ignore() *ExposureRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExposureRecordUpsertBulk) DoNothing() *ExposureRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExposureRecordCreateBulk.OnConflict
// documentation for more info.
func (u *ExposureRecordUpsertBulk) Update(set func(*ExposureRecordUpsert)) *ExposureRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExposureRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *ExposureRecordUpsertBulk) SetUserID(v string) *ExposureRecordUpsertBulk {
	return u.Update(func(s *ExposureRecordUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ExposureRecordUpsertBulk) UpdateUserID() *ExposureRecordUpsertBulk {
	return u.Update(func(s *ExposureRecordUpsert) {
		s.UpdateUserID()
	})
}

// SetQuestionID sets the "question_id" field.
func (u *ExposureRecordUpsertBulk) SetQuestionID(v string) *ExposureRecordUpsertBulk {
	return u.Update(func(s *ExposureRecordUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *ExposureRecordUpsertBulk) UpdateQuestionID() *ExposureRecordUpsertBulk {
	return u.Update(func(s *ExposureRecordUpsert) {
		s.UpdateQuestionID()
	})
}

// Exec executes the query.
func (u *ExposureRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExposureRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExposureRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExposureRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
