// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/examforge/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/examforge/ent/assembledtest"
	"github.com/abhisek/examforge/ent/exposurerecord"
	"github.com/abhisek/examforge/ent/llmrequestevent"
	"github.com/abhisek/examforge/ent/question"
	"github.com/abhisek/examforge/ent/testconfig"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AssembledTest is the client for interacting with the AssembledTest builders.
	AssembledTest *AssembledTestClient
	// ExposureRecord is the client for interacting with the ExposureRecord builders.
	ExposureRecord *ExposureRecordClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// Question is the client for interacting with the Question builders.
	Question *QuestionClient
	// TestConfig is the client for interacting with the TestConfig builders.
	TestConfig *TestConfigClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AssembledTest = NewAssembledTestClient(c.config)
	c.ExposureRecord = NewExposureRecordClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.Question = NewQuestionClient(c.config)
	c.TestConfig = NewTestConfigClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		AssembledTest:   NewAssembledTestClient(cfg),
		ExposureRecord:  NewExposureRecordClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		Question:        NewQuestionClient(cfg),
		TestConfig:      NewTestConfigClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		AssembledTest:   NewAssembledTestClient(cfg),
		ExposureRecord:  NewExposureRecordClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		Question:        NewQuestionClient(cfg),
		TestConfig:      NewTestConfigClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AssembledTest.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.AssembledTest.Use(hooks...)
	c.ExposureRecord.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.Question.Use(hooks...)
	c.TestConfig.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AssembledTest.Intercept(interceptors...)
	c.ExposureRecord.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.Question.Intercept(interceptors...)
	c.TestConfig.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AssembledTestMutation:
		return c.AssembledTest.mutate(ctx, m)
	case *ExposureRecordMutation:
		return c.ExposureRecord.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *QuestionMutation:
		return c.Question.mutate(ctx, m)
	case *TestConfigMutation:
		return c.TestConfig.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AssembledTestClient is a client for the AssembledTest schema.
type AssembledTestClient struct {
	config
}

// NewAssembledTestClient returns a client for the AssembledTest from the given config.
func NewAssembledTestClient(c config) *AssembledTestClient {
	return &AssembledTestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assembledtest.Hooks(f(g(h())))`.
func (c *AssembledTestClient) Use(hooks ...Hook) {
	c.hooks.AssembledTest = append(c.hooks.AssembledTest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assembledtest.Intercept(f(g(h())))`.
func (c *AssembledTestClient) Intercept(interceptors ...Interceptor) {
	c.inters.AssembledTest = append(c.inters.AssembledTest, interceptors...)
}

// Create returns a builder for creating a AssembledTest entity.
func (c *AssembledTestClient) Create() *AssembledTestCreate {
	mutation := newAssembledTestMutation(c.config, OpCreate)
	return &AssembledTestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AssembledTest entities.
func (c *AssembledTestClient) CreateBulk(builders ...*AssembledTestCreate) *AssembledTestCreateBulk {
	return &AssembledTestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssembledTestClient) MapCreateBulk(slice any, setFunc func(*AssembledTestCreate, int)) *AssembledTestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssembledTestCreateBulk{err: fmt.Errorf("calling to AssembledTestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssembledTestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssembledTestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AssembledTest.
func (c *AssembledTestClient) Update() *AssembledTestUpdate {
	mutation := newAssembledTestMutation(c.config, OpUpdate)
	return &AssembledTestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssembledTestClient) UpdateOne(_m *AssembledTest) *AssembledTestUpdateOne {
	mutation := newAssembledTestMutation(c.config, OpUpdateOne, withAssembledTest(_m))
	return &AssembledTestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssembledTestClient) UpdateOneID(id string) *AssembledTestUpdateOne {
	mutation := newAssembledTestMutation(c.config, OpUpdateOne, withAssembledTestID(id))
	return &AssembledTestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AssembledTest.
func (c *AssembledTestClient) Delete() *AssembledTestDelete {
	mutation := newAssembledTestMutation(c.config, OpDelete)
	return &AssembledTestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssembledTestClient) DeleteOne(_m *AssembledTest) *AssembledTestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssembledTestClient) DeleteOneID(id string) *AssembledTestDeleteOne {
	builder := c.Delete().Where(assembledtest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssembledTestDeleteOne{builder}
}

// Query returns a query builder for AssembledTest.
func (c *AssembledTestClient) Query() *AssembledTestQuery {
	return &AssembledTestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssembledTest},
		inters: c.Interceptors(),
	}
}

// Get returns a AssembledTest entity by its id.
func (c *AssembledTestClient) Get(ctx context.Context, id string) (*AssembledTest, error) {
	return c.Query().Where(assembledtest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssembledTestClient) GetX(ctx context.Context, id string) *AssembledTest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AssembledTestClient) Hooks() []Hook {
	return c.hooks.AssembledTest
}

// Interceptors returns the client interceptors.
func (c *AssembledTestClient) Interceptors() []Interceptor {
	return c.inters.AssembledTest
}

func (c *AssembledTestClient) mutate(ctx context.Context, m *AssembledTestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssembledTestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssembledTestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssembledTestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssembledTestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AssembledTest mutation op: %q", m.Op())
	}
}

// ExposureRecordClient is a client for the ExposureRecord schema.
type ExposureRecordClient struct {
	config
}

// NewExposureRecordClient returns a client for the ExposureRecord from the given config.
func NewExposureRecordClient(c config) *ExposureRecordClient {
	return &ExposureRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `exposurerecord.Hooks(f(g(h())))`.
func (c *ExposureRecordClient) Use(hooks ...Hook) {
	c.hooks.ExposureRecord = append(c.hooks.ExposureRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `exposurerecord.Intercept(f(g(h())))`.
func (c *ExposureRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExposureRecord = append(c.inters.ExposureRecord, interceptors...)
}

// Create returns a builder for creating a ExposureRecord entity.
func (c *ExposureRecordClient) Create() *ExposureRecordCreate {
	mutation := newExposureRecordMutation(c.config, OpCreate)
	return &ExposureRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExposureRecord entities.
func (c *ExposureRecordClient) CreateBulk(builders ...*ExposureRecordCreate) *ExposureRecordCreateBulk {
	return &ExposureRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExposureRecordClient) MapCreateBulk(slice any, setFunc func(*ExposureRecordCreate, int)) *ExposureRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExposureRecordCreateBulk{err: fmt.Errorf("calling to ExposureRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExposureRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExposureRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExposureRecord.
func (c *ExposureRecordClient) Update() *ExposureRecordUpdate {
	mutation := newExposureRecordMutation(c.config, OpUpdate)
	return &ExposureRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExposureRecordClient) UpdateOne(_m *ExposureRecord) *ExposureRecordUpdateOne {
	mutation := newExposureRecordMutation(c.config, OpUpdateOne, withExposureRecord(_m))
	return &ExposureRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExposureRecordClient) UpdateOneID(id int) *ExposureRecordUpdateOne {
	mutation := newExposureRecordMutation(c.config, OpUpdateOne, withExposureRecordID(id))
	return &ExposureRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExposureRecord.
func (c *ExposureRecordClient) Delete() *ExposureRecordDelete {
	mutation := newExposureRecordMutation(c.config, OpDelete)
	return &ExposureRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExposureRecordClient) DeleteOne(_m *ExposureRecord) *ExposureRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExposureRecordClient) DeleteOneID(id int) *ExposureRecordDeleteOne {
	builder := c.Delete().Where(exposurerecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExposureRecordDeleteOne{builder}
}

// Query returns a query builder for ExposureRecord.
func (c *ExposureRecordClient) Query() *ExposureRecordQuery {
	return &ExposureRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExposureRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ExposureRecord entity by its id.
func (c *ExposureRecordClient) Get(ctx context.Context, id int) (*ExposureRecord, error) {
	return c.Query().Where(exposurerecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExposureRecordClient) GetX(ctx context.Context, id int) *ExposureRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExposureRecordClient) Hooks() []Hook {
	return c.hooks.ExposureRecord
}

// Interceptors returns the client interceptors.
func (c *ExposureRecordClient) Interceptors() []Interceptor {
	return c.inters.ExposureRecord
}

func (c *ExposureRecordClient) mutate(ctx context.Context, m *ExposureRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExposureRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExposureRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExposureRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExposureRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExposureRecord mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// QuestionClient is a client for the Question schema.
type QuestionClient struct {
	config
}

// NewQuestionClient returns a client for the Question from the given config.
func NewQuestionClient(c config) *QuestionClient {
	return &QuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `question.Hooks(f(g(h())))`.
func (c *QuestionClient) Use(hooks ...Hook) {
	c.hooks.Question = append(c.hooks.Question, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `question.Intercept(f(g(h())))`.
func (c *QuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Question = append(c.inters.Question, interceptors...)
}

// Create returns a builder for creating a Question entity.
func (c *QuestionClient) Create() *QuestionCreate {
	mutation := newQuestionMutation(c.config, OpCreate)
	return &QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Question entities.
func (c *QuestionClient) CreateBulk(builders ...*QuestionCreate) *QuestionCreateBulk {
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionClient) MapCreateBulk(slice any, setFunc func(*QuestionCreate, int)) *QuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionCreateBulk{err: fmt.Errorf("calling to QuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Question.
func (c *QuestionClient) Update() *QuestionUpdate {
	mutation := newQuestionMutation(c.config, OpUpdate)
	return &QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionClient) UpdateOne(_m *Question) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestion(_m))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionClient) UpdateOneID(id string) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestionID(id))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Question.
func (c *QuestionClient) Delete() *QuestionDelete {
	mutation := newQuestionMutation(c.config, OpDelete)
	return &QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionClient) DeleteOne(_m *Question) *QuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionClient) DeleteOneID(id string) *QuestionDeleteOne {
	builder := c.Delete().Where(question.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionDeleteOne{builder}
}

// Query returns a query builder for Question.
func (c *QuestionClient) Query() *QuestionQuery {
	return &QuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a Question entity by its id.
func (c *QuestionClient) Get(ctx context.Context, id string) (*Question, error) {
	return c.Query().Where(question.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionClient) GetX(ctx context.Context, id string) *Question {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestionClient) Hooks() []Hook {
	return c.hooks.Question
}

// Interceptors returns the client interceptors.
func (c *QuestionClient) Interceptors() []Interceptor {
	return c.inters.Question
}

func (c *QuestionClient) mutate(ctx context.Context, m *QuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Question mutation op: %q", m.Op())
	}
}

// TestConfigClient is a client for the TestConfig schema.
type TestConfigClient struct {
	config
}

// NewTestConfigClient returns a client for the TestConfig from the given config.
func NewTestConfigClient(c config) *TestConfigClient {
	return &TestConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `testconfig.Hooks(f(g(h())))`.
func (c *TestConfigClient) Use(hooks ...Hook) {
	c.hooks.TestConfig = append(c.hooks.TestConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `testconfig.Intercept(f(g(h())))`.
func (c *TestConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.TestConfig = append(c.inters.TestConfig, interceptors...)
}

// Create returns a builder for creating a TestConfig entity.
func (c *TestConfigClient) Create() *TestConfigCreate {
	mutation := newTestConfigMutation(c.config, OpCreate)
	return &TestConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TestConfig entities.
func (c *TestConfigClient) CreateBulk(builders ...*TestConfigCreate) *TestConfigCreateBulk {
	return &TestConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TestConfigClient) MapCreateBulk(slice any, setFunc func(*TestConfigCreate, int)) *TestConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TestConfigCreateBulk{err: fmt.Errorf("calling to TestConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TestConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TestConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TestConfig.
func (c *TestConfigClient) Update() *TestConfigUpdate {
	mutation := newTestConfigMutation(c.config, OpUpdate)
	return &TestConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TestConfigClient) UpdateOne(_m *TestConfig) *TestConfigUpdateOne {
	mutation := newTestConfigMutation(c.config, OpUpdateOne, withTestConfig(_m))
	return &TestConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TestConfigClient) UpdateOneID(id string) *TestConfigUpdateOne {
	mutation := newTestConfigMutation(c.config, OpUpdateOne, withTestConfigID(id))
	return &TestConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TestConfig.
func (c *TestConfigClient) Delete() *TestConfigDelete {
	mutation := newTestConfigMutation(c.config, OpDelete)
	return &TestConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TestConfigClient) DeleteOne(_m *TestConfig) *TestConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TestConfigClient) DeleteOneID(id string) *TestConfigDeleteOne {
	builder := c.Delete().Where(testconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TestConfigDeleteOne{builder}
}

// Query returns a query builder for TestConfig.
func (c *TestConfigClient) Query() *TestConfigQuery {
	return &TestConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTestConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a TestConfig entity by its id.
func (c *TestConfigClient) Get(ctx context.Context, id string) (*TestConfig, error) {
	return c.Query().Where(testconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TestConfigClient) GetX(ctx context.Context, id string) *TestConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TestConfigClient) Hooks() []Hook {
	return c.hooks.TestConfig
}

// Interceptors returns the client interceptors.
func (c *TestConfigClient) Interceptors() []Interceptor {
	return c.inters.TestConfig
}

func (c *TestConfigClient) mutate(ctx context.Context, m *TestConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TestConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TestConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TestConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TestConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TestConfig mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AssembledTest, ExposureRecord, LLMRequestEvent, Question, TestConfig []ent.Hook
	}
	inters struct {
		AssembledTest, ExposureRecord, LLMRequestEvent, Question,
		TestConfig []ent.Interceptor
	}
)
