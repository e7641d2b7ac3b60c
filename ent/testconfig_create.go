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
	"github.com/abhisek/examforge/ent/testconfig"
)

// TestConfigCreate is the builder for creating a TestConfig entity.
type TestConfigCreate struct {
	config
	mutation *TestConfigMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *TestConfigCreate) SetUserID(v string) *TestConfigCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCurriculum sets the "curriculum" field.
func (_c *TestConfigCreate) SetCurriculum(v string) *TestConfigCreate {
	_c.mutation.SetCurriculum(v)
	return _c
}

// SetGrade sets the "grade" field.
func (_c *TestConfigCreate) SetGrade(v string) *TestConfigCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *TestConfigCreate) SetSubject(v string) *TestConfigCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetTopicIds sets the "topic_ids" field.
func (_c *TestConfigCreate) SetTopicIds(v []string) *TestConfigCreate {
	_c.mutation.SetTopicIds(v)
	return _c
}

// SetQuestionCount sets the "question_count" field.
func (_c *TestConfigCreate) SetQuestionCount(v int) *TestConfigCreate {
	_c.mutation.SetQuestionCount(v)
	return _c
}

// SetTestCount sets the "test_count" field.
func (_c *TestConfigCreate) SetTestCount(v int) *TestConfigCreate {
	_c.mutation.SetTestCount(v)
	return _c
}

// SetExcludeSeen sets the "exclude_seen" field.
func (_c *TestConfigCreate) SetExcludeSeen(v bool) *TestConfigCreate {
	_c.mutation.SetExcludeSeen(v)
	return _c
}

// SetNillableExcludeSeen sets the "exclude_seen" field if the given value is not nil.
func (_c *TestConfigCreate) SetNillableExcludeSeen(v *bool) *TestConfigCreate {
	if v != nil {
		_c.SetExcludeSeen(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TestConfigCreate) SetCreatedAt(v time.Time) *TestConfigCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TestConfigCreate) SetNillableCreatedAt(v *time.Time) *TestConfigCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TestConfigCreate) SetID(v string) *TestConfigCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TestConfigMutation object of the builder.
func (_c *TestConfigCreate) Mutation() *TestConfigMutation {
	return _c.mutation
}

// Save creates the TestConfig in the database.
func (_c *TestConfigCreate) Save(ctx context.Context) (*TestConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestConfigCreate) SaveX(ctx context.Context) *TestConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TestConfigCreate) defaults() {
	if _, ok := _c.mutation.ExcludeSeen(); !ok {
		v := testconfig.DefaultExcludeSeen
		_c.mutation.SetExcludeSeen(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := testconfig.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestConfigCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "TestConfig.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := testconfig.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TestConfig.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Curriculum(); !ok {
		return &ValidationError{Name: "curriculum", err: errors.New(`ent: missing required field "TestConfig.curriculum"`)}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "TestConfig.grade"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "TestConfig.subject"`)}
	}
	if _, ok := _c.mutation.TopicIds(); !ok {
		return &ValidationError{Name: "topic_ids", err: errors.New(`ent: missing required field "TestConfig.topic_ids"`)}
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		return &ValidationError{Name: "question_count", err: errors.New(`ent: missing required field "TestConfig.question_count"`)}
	}
	if v, ok := _c.mutation.QuestionCount(); ok {
		if err := testconfig.QuestionCountValidator(v); err != nil {
			return &ValidationError{Name: "question_count", err: fmt.Errorf(`ent: validator failed for field "TestConfig.question_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TestCount(); !ok {
		return &ValidationError{Name: "test_count", err: errors.New(`ent: missing required field "TestConfig.test_count"`)}
	}
	if v, ok := _c.mutation.TestCount(); ok {
		if err := testconfig.TestCountValidator(v); err != nil {
			return &ValidationError{Name: "test_count", err: fmt.Errorf(`ent: validator failed for field "TestConfig.test_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExcludeSeen(); !ok {
		return &ValidationError{Name: "exclude_seen", err: errors.New(`ent: missing required field "TestConfig.exclude_seen"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TestConfig.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := testconfig.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "TestConfig.id": %w`, err)}
		}
	}
	return nil
}

func (_c *TestConfigCreate) sqlSave(ctx context.Context) (*TestConfig, error) {
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
			return nil, fmt.Errorf("unexpected TestConfig.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TestConfigCreate) createSpec() (*TestConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &TestConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(testconfig.Table, sqlgraph.NewFieldSpec(testconfig.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(testconfig.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Curriculum(); ok {
		_spec.SetField(testconfig.FieldCurriculum, field.TypeString, value)
		_node.Curriculum = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(testconfig.FieldGrade, field.TypeString, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(testconfig.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.TopicIds(); ok {
		_spec.SetField(testconfig.FieldTopicIds, field.TypeJSON, value)
		_node.TopicIds = value
	}
	if value, ok := _c.mutation.QuestionCount(); ok {
		_spec.SetField(testconfig.FieldQuestionCount, field.TypeInt, value)
		_node.QuestionCount = value
	}
	if value, ok := _c.mutation.TestCount(); ok {
		_spec.SetField(testconfig.FieldTestCount, field.TypeInt, value)
		_node.TestCount = value
	}
	if value, ok := _c.mutation.ExcludeSeen(); ok {
		_spec.SetField(testconfig.FieldExcludeSeen, field.TypeBool, value)
		_node.ExcludeSeen = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(testconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TestConfig.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TestConfigUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *TestConfigCreate) OnConflict(opts ...sql.ConflictOption) *TestConfigUpsertOne {
	_c.conflict = opts
	return &TestConfigUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TestConfig.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TestConfigCreate) OnConflictColumns(columns ...string) *TestConfigUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TestConfigUpsertOne{
		create: _c,
	}
}

type (
	// TestConfigUpsertOne is the builder for "upsert"-ing
	//  one TestConfig node.
	TestConfigUpsertOne struct {
		create *TestConfigCreate
	}

	// TestConfigUpsert is the "OnConflict" setter.
	TestConfigUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *TestConfigUpsert) SetUserID(v string) *TestConfigUpsert {
	u.Set(testconfig.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *TestConfigUpsert) UpdateUserID() *TestConfigUpsert {
	u.SetExcluded(testconfig.FieldUserID)
	return u
}

// SetCurriculum sets the "curriculum" field.
func (u *TestConfigUpsert) SetCurriculum(v string) *TestConfigUpsert {
	u.Set(testconfig.FieldCurriculum, v)
	return u
}

// UpdateCurriculum sets the "curriculum" field to the value that was provided on create.
func (u *TestConfigUpsert) UpdateCurriculum() *TestConfigUpsert {
	u.SetExcluded(testconfig.FieldCurriculum)
	return u
}

// SetGrade sets the "grade" field.
func (u *TestConfigUpsert) SetGrade(v string) *TestConfigUpsert {
	u.Set(testconfig.FieldGrade, v)
	return u
}

// UpdateGrade sets the "grade" field to the value that was provided on create.
func (u *TestConfigUpsert) UpdateGrade() *TestConfigUpsert {
	u.SetExcluded(testconfig.FieldGrade)
	return u
}

// SetSubject sets the "subject" field.
func (u *TestConfigUpsert) SetSubject(v string) *TestConfigUpsert {
	u.Set(testconfig.FieldSubject, v)
	return u
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *TestConfigUpsert) UpdateSubject() *TestConfigUpsert {
	u.SetExcluded(testconfig.FieldSubject)
	return u
}

// SetTopicIds sets the "topic_ids" field.
func (u *TestConfigUpsert) SetTopicIds(v []string) *TestConfigUpsert {
	u.Set(testconfig.FieldTopicIds, v)
	return u
}

// UpdateTopicIds sets the "topic_ids" field to the value that was provided on create.
func (u *TestConfigUpsert) UpdateTopicIds() *TestConfigUpsert {
	u.SetExcluded(testconfig.FieldTopicIds)
	return u
}

// SetQuestionCount sets the "question_count" field.
func (u *TestConfigUpsert) SetQuestionCount(v int) *TestConfigUpsert {
	u.Set(testconfig.FieldQuestionCount, v)
	return u
}

// UpdateQuestionCount sets the "question_count" field to the value that was provided on create.
func (u *TestConfigUpsert) UpdateQuestionCount() *TestConfigUpsert {
	u.SetExcluded(testconfig.FieldQuestionCount)
	return u
}

// AddQuestionCount adds v to the "question_count" field.
func (u *TestConfigUpsert) AddQuestionCount(v int) *TestConfigUpsert {
	u.Add(testconfig.FieldQuestionCount, v)
	return u
}

// SetTestCount sets the "test_count" field.
func (u *TestConfigUpsert) SetTestCount(v int) *TestConfigUpsert {
	u.Set(testconfig.FieldTestCount, v)
	return u
}

// UpdateTestCount sets the "test_count" field to the value that was provided on create.
func (u *TestConfigUpsert) UpdateTestCount() *TestConfigUpsert {
	u.SetExcluded(testconfig.FieldTestCount)
	return u
}

// AddTestCount adds v to the "test_count" field.
func (u *TestConfigUpsert) AddTestCount(v int) *TestConfigUpsert {
	u.Add(testconfig.FieldTestCount, v)
	return u
}

// SetExcludeSeen sets the "exclude_seen" field.
func (u *TestConfigUpsert) SetExcludeSeen(v bool) *TestConfigUpsert {
	u.Set(testconfig.FieldExcludeSeen, v)
	return u
}

// UpdateExcludeSeen sets the "exclude_seen" field to the value that was provided on create.
func (u *TestConfigUpsert) UpdateExcludeSeen() *TestConfigUpsert {
	u.SetExcluded(testconfig.FieldExcludeSeen)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TestConfig.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(testconfig.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TestConfigUpsertOne) UpdateNewValues() *TestConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(testconfig.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(testconfig.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TestConfig.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TestConfigUpsertOne) Ignore() *TestConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TestConfigUpsertOne) DoNothing() *TestConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TestConfigCreate.OnConflict
// documentation for more info.
func (u *TestConfigUpsertOne) Update(set func(*TestConfigUpsert)) *TestConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TestConfigUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *TestConfigUpsertOne) SetUserID(v string) *TestConfigUpsertOne {
	return u.Update(func(s *TestConfigUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *TestConfigUpsertOne) UpdateUserID() *TestConfigUpsertOne {
	return u.Update(func(s *TestConfigUpsert) {
		s.UpdateUserID()
	})
}

// SetCurriculum sets the "curriculum" field.
func (u *TestConfigUpsertOne) SetCurriculum(v string) *TestConfigUpsertOne {
	return u.Update(func(s *TestConfigUpsert) {
		s.SetCurriculum(v)
	})
}

// UpdateCurriculum sets the "curriculum" field to the value that was provided on create.
func (u *TestConfigUpsertOne) UpdateCurriculum() *TestConfigUpsertOne {
	return u.Update(func(s *TestConfigUpsert) {
		s.UpdateCurriculum()
	})
}

// SetGrade sets the "grade" field.
func (u *TestConfigUpsertOne) SetGrade(v string) *TestConfigUpsertOne {
	return u.Update(func(s *TestConfigUpsert) {
		s.SetGrade(v)
	})
}

// UpdateGrade sets the "grade" field to the value that was provided on create.
func (u *TestConfigUpsertOne) UpdateGrade() *TestConfigUpsertOne {
	return u.Update(func(s *TestConfigUpsert) {
		s.UpdateGrade()
	})
}

// SetSubject sets the "subject" field.
func (u *TestConfigUpsertOne) SetSubject(v string) *TestConfigUpsertOne {
	return u.Update(func(s *TestConfigUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *TestConfigUpsertOne) UpdateSubject() *TestConfigUpsertOne {
	return u.Update(func(s *TestConfigUpsert) {
		s.UpdateSubject()
	})
}

// SetTopicIds sets the "topic_ids" field.
func (u *TestConfigUpsertOne) SetTopicIds(v []string) *TestConfigUpsertOne {
	return u.Update(func(s *TestConfigUpsert) {
		s.SetTopicIds(v)
	})
}

// UpdateTopicIds sets the "topic_ids" field to the value that was provided on create.
func (u *TestConfigUpsertOne) UpdateTopicIds() *TestConfigUpsertOne {
	return u.Update(func(s *TestConfigUpsert) {
		s.UpdateTopicIds()
	})
}

// SetQuestionCount sets the "question_count" field.
func (u *TestConfigUpsertOne) SetQuestionCount(v int) *TestConfigUpsertOne {
	return u.Update(func(s *TestConfigUpsert) {
		s.SetQuestionCount(v)
	})
}

// AddQuestionCount adds v to the "question_count" field.
func (u *TestConfigUpsertOne) AddQuestionCount(v int) *TestConfigUpsertOne {
	return u.Update(func(s *TestConfigUpsert) {
		s.AddQuestionCount(v)
	})
}

// UpdateQuestionCount sets the "question_count" field to the value that was provided on create.
func (u *TestConfigUpsertOne) UpdateQuestionCount() *TestConfigUpsertOne {
	return u.Update(func(s *TestConfigUpsert) {
		s.UpdateQuestionCount()
	})
}

// SetTestCount sets the "test_count" field.
func (u *TestConfigUpsertOne) SetTestCount(v int) *TestConfigUpsertOne {
	return u.Update(func(s *TestConfigUpsert) {
		s.SetTestCount(v)
	})
}

// AddTestCount adds v to the "test_count" field.
func (u *TestConfigUpsertOne) AddTestCount(v int) *TestConfigUpsertOne {
	return u.Update(func(s *TestConfigUpsert) {
		s.AddTestCount(v)
	})
}

// UpdateTestCount sets the "test_count" field to the value that was provided on create.
func (u *TestConfigUpsertOne) UpdateTestCount() *TestConfigUpsertOne {
	return u.Update(func(s *TestConfigUpsert) {
		s.UpdateTestCount()
	})
}

// SetExcludeSeen sets the "exclude_seen" field.
func (u *TestConfigUpsertOne) SetExcludeSeen(v bool) *TestConfigUpsertOne {
	return u.Update(func(s *TestConfigUpsert) {
		s.SetExcludeSeen(v)
	})
}

// UpdateExcludeSeen sets the "exclude_seen" field to the value that was provided on create.
func (u *TestConfigUpsertOne) UpdateExcludeSeen() *TestConfigUpsertOne {
	return u.Update(func(s *TestConfigUpsert) {
		s.UpdateExcludeSeen()
	})
}

// Exec executes the query.
func (u *TestConfigUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TestConfigCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TestConfigUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TestConfigUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TestConfigUpsertOne.ID is not supported by MySQL driver. Use TestConfigUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TestConfigUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TestConfigCreateBulk is the builder for creating many TestConfig entities in bulk.
type TestConfigCreateBulk struct {
	config
	err      error
	builders []*TestConfigCreate
	conflict []sql.ConflictOption
}

// Save creates the TestConfig entities in the database.
func (_c *TestConfigCreateBulk) Save(ctx context.Context) ([]*TestConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TestConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestConfigMutation)
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
func (_c *TestConfigCreateBulk) SaveX(ctx context.Context) []*TestConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TestConfig.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TestConfigUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *TestConfigCreateBulk) OnConflict(opts ...sql.ConflictOption) *TestConfigUpsertBulk {
	_c.conflict = opts
	return &TestConfigUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TestConfig.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TestConfigCreateBulk) OnConflictColumns(columns ...string) *TestConfigUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TestConfigUpsertBulk{
		create: _c,
	}
}

// TestConfigUpsertBulk is the builder for "upsert"-ing
// a bulk of TestConfig nodes.
type TestConfigUpsertBulk struct {
	create *TestConfigCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TestConfig.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(testconfig.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TestConfigUpsertBulk) UpdateNewValues() *TestConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(testconfig.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(testconfig.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TestConfig.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TestConfigUpsertBulk) Ignore() *TestConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TestConfigUpsertBulk) DoNothing() *TestConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TestConfigCreateBulk.OnConflict
// documentation for more info.
func (u *TestConfigUpsertBulk) Update(set func(*TestConfigUpsert)) *TestConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TestConfigUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *TestConfigUpsertBulk) SetUserID(v string) *TestConfigUpsertBulk {
	return u.Update(func(s *TestConfigUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *TestConfigUpsertBulk) UpdateUserID() *TestConfigUpsertBulk {
	return u.Update(func(s *TestConfigUpsert) {
		s.UpdateUserID()
	})
}

// SetCurriculum sets the "curriculum" field.
func (u *TestConfigUpsertBulk) SetCurriculum(v string) *TestConfigUpsertBulk {
	return u.Update(func(s *TestConfigUpsert) {
		s.SetCurriculum(v)
	})
}

// UpdateCurriculum sets the "curriculum" field to the value that was provided on create.
func (u *TestConfigUpsertBulk) UpdateCurriculum() *TestConfigUpsertBulk {
	return u.Update(func(s *TestConfigUpsert) {
		s.UpdateCurriculum()
	})
}

// SetGrade sets the "grade" field.
func (u *TestConfigUpsertBulk) SetGrade(v string) *TestConfigUpsertBulk {
	return u.Update(func(s *TestConfigUpsert) {
		s.SetGrade(v)
	})
}

// UpdateGrade sets the "grade" field to the value that was provided on create.
func (u *TestConfigUpsertBulk) UpdateGrade() *TestConfigUpsertBulk {
	return u.Update(func(s *TestConfigUpsert) {
		s.UpdateGrade()
	})
}

// SetSubject sets the "subject" field.
func (u *TestConfigUpsertBulk) SetSubject(v string) *TestConfigUpsertBulk {
	return u.Update(func(s *TestConfigUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *TestConfigUpsertBulk) UpdateSubject() *TestConfigUpsertBulk {
	return u.Update(func(s *TestConfigUpsert) {
		s.UpdateSubject()
	})
}

// SetTopicIds sets the "topic_ids" field.
func (u *TestConfigUpsertBulk) SetTopicIds(v []string) *TestConfigUpsertBulk {
	return u.Update(func(s *TestConfigUpsert) {
		s.SetTopicIds(v)
	})
}

// UpdateTopicIds sets the "topic_ids" field to the value that was provided on create.
func (u *TestConfigUpsertBulk) UpdateTopicIds() *TestConfigUpsertBulk {
	return u.Update(func(s *TestConfigUpsert) {
		s.UpdateTopicIds()
	})
}

// SetQuestionCount sets the "question_count" field.
func (u *TestConfigUpsertBulk) SetQuestionCount(v int) *TestConfigUpsertBulk {
	return u.Update(func(s *TestConfigUpsert) {
		s.SetQuestionCount(v)
	})
}

// AddQuestionCount adds v to the "question_count" field.
func (u *TestConfigUpsertBulk) AddQuestionCount(v int) *TestConfigUpsertBulk {
	return u.Update(func(s *TestConfigUpsert) {
		s.AddQuestionCount(v)
	})
}

// UpdateQuestionCount sets the "question_count" field to the value that was provided on create.
func (u *TestConfigUpsertBulk) UpdateQuestionCount() *TestConfigUpsertBulk {
	return u.Update(func(s *TestConfigUpsert) {
		s.UpdateQuestionCount()
	})
}

// SetTestCount sets the "test_count" field.
func (u *TestConfigUpsertBulk) SetTestCount(v int) *TestConfigUpsertBulk {
	return u.Update(func(s *TestConfigUpsert) {
		s.SetTestCount(v)
	})
}

// AddTestCount adds v to the "test_count" field.
func (u *TestConfigUpsertBulk) AddTestCount(v int) *TestConfigUpsertBulk {
	return u.Update(func(s *TestConfigUpsert) {
		s.AddTestCount(v)
	})
}

// UpdateTestCount sets the "test_count" field to the value that was provided on create.
func (u *TestConfigUpsertBulk) UpdateTestCount() *TestConfigUpsertBulk {
	return u.Update(func(s *TestConfigUpsert) {
		s.UpdateTestCount()
	})
}

// SetExcludeSeen sets the "exclude_seen" field.
func (u *TestConfigUpsertBulk) SetExcludeSeen(v bool) *TestConfigUpsertBulk {
	return u.Update(func(s *TestConfigUpsert) {
		s.SetExcludeSeen(v)
	})
}

// UpdateExcludeSeen sets the "exclude_seen" field to the value that was provided on create.
func (u *TestConfigUpsertBulk) UpdateExcludeSeen() *TestConfigUpsertBulk {
	return u.Update(func(s *TestConfigUpsert) {
		s.UpdateExcludeSeen()
	})
}

// Exec executes the query.
func (u *TestConfigUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TestConfigCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TestConfigCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TestConfigUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
