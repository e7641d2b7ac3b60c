// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/examforge/ent/assembledtest"
)

// AssembledTestCreate is the builder for creating a AssembledTest entity.
type AssembledTestCreate struct {
	config
	mutation *AssembledTestMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *AssembledTestCreate) SetUserID(v string) *AssembledTestCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetConfigID sets the "config_id" field.
func (_c *AssembledTestCreate) SetConfigID(v string) *AssembledTestCreate {
	_c.mutation.SetConfigID(v)
	return _c
}

// SetQuestionIds sets the "question_ids" field.
func (_c *AssembledTestCreate) SetQuestionIds(v []string) *AssembledTestCreate {
	_c.mutation.SetQuestionIds(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AssembledTestCreate) SetCreatedAt(v time.Time) *AssembledTestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AssembledTestCreate) SetNillableCreatedAt(v *time.Time) *AssembledTestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AssembledTestCreate) SetID(v string) *AssembledTestCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AssembledTestMutation object of the builder.
func (_c *AssembledTestCreate) Mutation() *AssembledTestMutation {
	return _c.mutation
}

// Save creates the AssembledTest in the database.
func (_c *AssembledTestCreate) Save(ctx context.Context) (*AssembledTest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssembledTestCreate) SaveX(ctx context.Context) *AssembledTest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssembledTestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssembledTestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssembledTestCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := assembledtest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssembledTestCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AssembledTest.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := assembledtest.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AssembledTest.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConfigID(); !ok {
		return &ValidationError{Name: "config_id", err: errors.New(`ent: missing required field "AssembledTest.config_id"`)}
	}
	if v, ok := _c.mutation.ConfigID(); ok {
		if err := assembledtest.ConfigIDValidator(v); err != nil {
			return &ValidationError{Name: "config_id", err: fmt.Errorf(`ent: validator failed for field "AssembledTest.config_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionIds(); !ok {
		return &ValidationError{Name: "question_ids", err: errors.New(`ent: missing required field "AssembledTest.question_ids"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AssembledTest.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := assembledtest.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "AssembledTest.id": %w`, err)}
		}
	}
	return nil
}

func (_c *AssembledTestCreate) sqlSave(ctx context.Context) (*AssembledTest, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AssembledTest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AssembledTestCreate) createSpec() (*AssembledTest, *sqlgraph.CreateSpec) {
	var (
		_node = &AssembledTest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assembledtest.Table, sqlgraph.NewFieldSpec(assembledtest.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(assembledtest.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ConfigID(); ok {
		_spec.SetField(assembledtest.FieldConfigID, field.TypeString, value)
		_node.ConfigID = value
	}
	if value, ok := _c.mutation.QuestionIds(); ok {
		_spec.SetField(assembledtest.FieldQuestionIds, field.TypeJSON, value)
		_node.QuestionIds = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(assembledtest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AssembledTest.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AssembledTestUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *AssembledTestCreate) OnConflict(opts ...sql.ConflictOption) *AssembledTestUpsertOne {
	_c.conflict = opts
	return &AssembledTestUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AssembledTest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AssembledTestCreate) OnConflictColumns(columns ...string) *AssembledTestUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AssembledTestUpsertOne{
		create: _c,
	}
}

type (
	// AssembledTestUpsertOne is the builder for "upsert"-ing
	//  one AssembledTest node.
	AssembledTestUpsertOne struct {
		create *AssembledTestCreate
	}

	// AssembledTestUpsert is the "OnConflict" setter.
	AssembledTestUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *AssembledTestUpsert) SetUserID(v string) *AssembledTestUpsert {
	u.Set(assembledtest.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AssembledTestUpsert) UpdateUserID() *AssembledTestUpsert {
	u.SetExcluded(assembledtest.FieldUserID)
	return u
}

// SetConfigID sets the "config_id" field.
func (u *AssembledTestUpsert) SetConfigID(v string) *AssembledTestUpsert {
	u.Set(assembledtest.FieldConfigID, v)
	return u
}

// UpdateConfigID sets the "config_id" field to the value that was provided on create.
func (u *AssembledTestUpsert) UpdateConfigID() *AssembledTestUpsert {
	u.SetExcluded(assembledtest.FieldConfigID)
	return u
}

// SetQuestionIds sets the "question_ids" field.
func (u *AssembledTestUpsert) SetQuestionIds(v []string) *AssembledTestUpsert {
	u.Set(assembledtest.FieldQuestionIds, v)
	return u
}

// UpdateQuestionIds sets the "question_ids" field to the value that was provided on create.
func (u *AssembledTestUpsert) UpdateQuestionIds() *AssembledTestUpsert {
	u.SetExcluded(assembledtest.FieldQuestionIds)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AssembledTest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(assembledtest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AssembledTestUpsertOne) UpdateNewValues() *AssembledTestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(assembledtest.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(assembledtest.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AssembledTest.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AssembledTestUpsertOne) Ignore() *AssembledTestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AssembledTestUpsertOne) DoNothing() *AssembledTestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AssembledTestCreate.OnConflict
// documentation for more info.
func (u *AssembledTestUpsertOne) Update(set func(*AssembledTestUpsert)) *AssembledTestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AssembledTestUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *AssembledTestUpsertOne) SetUserID(v string) *AssembledTestUpsertOne {
	return u.Update(func(s *AssembledTestUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AssembledTestUpsertOne) UpdateUserID() *AssembledTestUpsertOne {
	return u.Update(func(s *AssembledTestUpsert) {
		s.UpdateUserID()
	})
}

// SetConfigID sets the "config_id" field.
func (u *AssembledTestUpsertOne) SetConfigID(v string) *AssembledTestUpsertOne {
	return u.Update(func(s *AssembledTestUpsert) {
		s.SetConfigID(v)
	})
}

// UpdateConfigID sets the "config_id" field to the value that was provided on create.
func (u *AssembledTestUpsertOne) UpdateConfigID() *AssembledTestUpsertOne {
	return u.Update(func(s *AssembledTestUpsert) {
		s.UpdateConfigID()
	})
}

// SetQuestionIds sets the "question_ids" field.
func (u *AssembledTestUpsertOne) SetQuestionIds(v []string) *AssembledTestUpsertOne {
	return u.Update(func(s *AssembledTestUpsert) {
		s.SetQuestionIds(v)
	})
}

// UpdateQuestionIds sets the "question_ids" field to the value that was provided on create.
func (u *AssembledTestUpsertOne) UpdateQuestionIds() *AssembledTestUpsertOne {
	return u.Update(func(s *AssembledTestUpsert) {
		s.UpdateQuestionIds()
	})
}

// Exec executes the query.
func (u *AssembledTestUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AssembledTestCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AssembledTestUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AssembledTestUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AssembledTestUpsertOne.ID is not supported by MySQL driver. Use AssembledTestUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AssembledTestUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AssembledTestCreateBulk is the builder for creating many AssembledTest entities in bulk.
type AssembledTestCreateBulk struct {
	config
	err      error
	builders []*AssembledTestCreate
	conflict []sql.ConflictOption
}

// Save creates the AssembledTest entities in the database.
func (_c *AssembledTestCreateBulk) Save(ctx context.Context) ([]*AssembledTest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssembledTest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssembledTestMutation)
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
func (_c *AssembledTestCreateBulk) SaveX(ctx context.Context) []*AssembledTest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssembledTestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssembledTestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AssembledTest.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AssembledTestUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *AssembledTestCreateBulk) OnConflict(opts ...sql.ConflictOption) *AssembledTestUpsertBulk {
	_c.conflict = opts
	return &AssembledTestUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AssembledTest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AssembledTestCreateBulk) OnConflictColumns(columns ...string) *AssembledTestUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AssembledTestUpsertBulk{
		create: _c,
	}
}

// AssembledTestUpsertBulk is the builder for "upsert"-ing
// a bulk of AssembledTest nodes.
type AssembledTestUpsertBulk struct {
	create *AssembledTestCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AssembledTest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(assembledtest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AssembledTestUpsertBulk) UpdateNewValues() *AssembledTestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(assembledtest.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(assembledtest.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AssembledTest.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AssembledTestUpsertBulk) Ignore() *AssembledTestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AssembledTestUpsertBulk) DoNothing() *AssembledTestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AssembledTestCreateBulk.OnConflict
// documentation for more info.
func (u *AssembledTestUpsertBulk) Update(set func(*AssembledTestUpsert)) *AssembledTestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AssembledTestUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *AssembledTestUpsertBulk) SetUserID(v string) *AssembledTestUpsertBulk {
	return u.Update(func(s *AssembledTestUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AssembledTestUpsertBulk) UpdateUserID() *AssembledTestUpsertBulk {
	return u.Update(func(s *AssembledTestUpsert) {
		s.UpdateUserID()
	})
}

// SetConfigID sets the "config_id" field.
func (u *AssembledTestUpsertBulk) SetConfigID(v string) *AssembledTestUpsertBulk {
	return u.Update(func(s *AssembledTestUpsert) {
		s.SetConfigID(v)
	})
}

// UpdateConfigID sets the "config_id" field to the value that was provided on create.
func (u *AssembledTestUpsertBulk) UpdateConfigID() *AssembledTestUpsertBulk {
	return u.Update(func(s *AssembledTestUpsert) {
		s.UpdateConfigID()
	})
}

// SetQuestionIds sets the "question_ids" field.
func (u *AssembledTestUpsertBulk) SetQuestionIds(v []string) *AssembledTestUpsertBulk {
	return u.Update(func(s *AssembledTestUpsert) {
		s.SetQuestionIds(v)
	})
}

// UpdateQuestionIds sets the "question_ids" field to the value that was provided on create.
func (u *AssembledTestUpsertBulk) UpdateQuestionIds() *AssembledTestUpsertBulk {
	return u.Update(func(s *AssembledTestUpsert) {
		s.UpdateQuestionIds()
	})
}

// Exec executes the query.
func (u *AssembledTestUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AssembledTestCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AssembledTestCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AssembledTestUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
