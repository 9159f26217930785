// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/bloomtutor/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/bloomtutor/ent/learnerprofile"
	"github.com/abhisek/bloomtutor/ent/lessonplan"
	"github.com/abhisek/bloomtutor/ent/llmrequestevent"
	"github.com/abhisek/bloomtutor/ent/masteryrecord"
	"github.com/abhisek/bloomtutor/ent/message"
	"github.com/abhisek/bloomtutor/ent/tutorattempt"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// LearnerProfile is the client for interacting with the LearnerProfile builders.
	LearnerProfile *LearnerProfileClient
	// LessonPlan is the client for interacting with the LessonPlan builders.
	LessonPlan *LessonPlanClient
	// MasteryRecord is the client for interacting with the MasteryRecord builders.
	MasteryRecord *MasteryRecordClient
	// Message is the client for interacting with the Message builders.
	Message *MessageClient
	// TutorAttempt is the client for interacting with the TutorAttempt builders.
	TutorAttempt *TutorAttemptClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.LearnerProfile = NewLearnerProfileClient(c.config)
	c.LessonPlan = NewLessonPlanClient(c.config)
	c.MasteryRecord = NewMasteryRecordClient(c.config)
	c.Message = NewMessageClient(c.config)
	c.TutorAttempt = NewTutorAttemptClient(c.config)
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
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		LearnerProfile:  NewLearnerProfileClient(cfg),
		LessonPlan:      NewLessonPlanClient(cfg),
		MasteryRecord:   NewMasteryRecordClient(cfg),
		Message:         NewMessageClient(cfg),
		TutorAttempt:    NewTutorAttemptClient(cfg),
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
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		LearnerProfile:  NewLearnerProfileClient(cfg),
		LessonPlan:      NewLessonPlanClient(cfg),
		MasteryRecord:   NewMasteryRecordClient(cfg),
		Message:         NewMessageClient(cfg),
		TutorAttempt:    NewTutorAttemptClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		LLMRequestEvent.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.LLMRequestEvent, c.LearnerProfile, c.LessonPlan, c.MasteryRecord, c.Message,
		c.TutorAttempt,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.LLMRequestEvent, c.LearnerProfile, c.LessonPlan, c.MasteryRecord, c.Message,
		c.TutorAttempt,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *LearnerProfileMutation:
		return c.LearnerProfile.mutate(ctx, m)
	case *LessonPlanMutation:
		return c.LessonPlan.mutate(ctx, m)
	case *MasteryRecordMutation:
		return c.MasteryRecord.mutate(ctx, m)
	case *MessageMutation:
		return c.Message.mutate(ctx, m)
	case *TutorAttemptMutation:
		return c.TutorAttempt.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
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

// LearnerProfileClient is a client for the LearnerProfile schema.
type LearnerProfileClient struct {
	config
}

// NewLearnerProfileClient returns a client for the LearnerProfile from the given config.
func NewLearnerProfileClient(c config) *LearnerProfileClient {
	return &LearnerProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learnerprofile.Hooks(f(g(h())))`.
func (c *LearnerProfileClient) Use(hooks ...Hook) {
	c.hooks.LearnerProfile = append(c.hooks.LearnerProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learnerprofile.Intercept(f(g(h())))`.
func (c *LearnerProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.LearnerProfile = append(c.inters.LearnerProfile, interceptors...)
}

// Create returns a builder for creating a LearnerProfile entity.
func (c *LearnerProfileClient) Create() *LearnerProfileCreate {
	mutation := newLearnerProfileMutation(c.config, OpCreate)
	return &LearnerProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LearnerProfile entities.
func (c *LearnerProfileClient) CreateBulk(builders ...*LearnerProfileCreate) *LearnerProfileCreateBulk {
	return &LearnerProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearnerProfileClient) MapCreateBulk(slice any, setFunc func(*LearnerProfileCreate, int)) *LearnerProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearnerProfileCreateBulk{err: fmt.Errorf("calling to LearnerProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearnerProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearnerProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LearnerProfile.
func (c *LearnerProfileClient) Update() *LearnerProfileUpdate {
	mutation := newLearnerProfileMutation(c.config, OpUpdate)
	return &LearnerProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearnerProfileClient) UpdateOne(_m *LearnerProfile) *LearnerProfileUpdateOne {
	mutation := newLearnerProfileMutation(c.config, OpUpdateOne, withLearnerProfile(_m))
	return &LearnerProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearnerProfileClient) UpdateOneID(id int) *LearnerProfileUpdateOne {
	mutation := newLearnerProfileMutation(c.config, OpUpdateOne, withLearnerProfileID(id))
	return &LearnerProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LearnerProfile.
func (c *LearnerProfileClient) Delete() *LearnerProfileDelete {
	mutation := newLearnerProfileMutation(c.config, OpDelete)
	return &LearnerProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearnerProfileClient) DeleteOne(_m *LearnerProfile) *LearnerProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearnerProfileClient) DeleteOneID(id int) *LearnerProfileDeleteOne {
	builder := c.Delete().Where(learnerprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearnerProfileDeleteOne{builder}
}

// Query returns a query builder for LearnerProfile.
func (c *LearnerProfileClient) Query() *LearnerProfileQuery {
	return &LearnerProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearnerProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a LearnerProfile entity by its id.
func (c *LearnerProfileClient) Get(ctx context.Context, id int) (*LearnerProfile, error) {
	return c.Query().Where(learnerprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearnerProfileClient) GetX(ctx context.Context, id int) *LearnerProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearnerProfileClient) Hooks() []Hook {
	return c.hooks.LearnerProfile
}

// Interceptors returns the client interceptors.
func (c *LearnerProfileClient) Interceptors() []Interceptor {
	return c.inters.LearnerProfile
}

func (c *LearnerProfileClient) mutate(ctx context.Context, m *LearnerProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearnerProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearnerProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearnerProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearnerProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LearnerProfile mutation op: %q", m.Op())
	}
}

// LessonPlanClient is a client for the LessonPlan schema.
type LessonPlanClient struct {
	config
}

// NewLessonPlanClient returns a client for the LessonPlan from the given config.
func NewLessonPlanClient(c config) *LessonPlanClient {
	return &LessonPlanClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lessonplan.Hooks(f(g(h())))`.
func (c *LessonPlanClient) Use(hooks ...Hook) {
	c.hooks.LessonPlan = append(c.hooks.LessonPlan, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lessonplan.Intercept(f(g(h())))`.
func (c *LessonPlanClient) Intercept(interceptors ...Interceptor) {
	c.inters.LessonPlan = append(c.inters.LessonPlan, interceptors...)
}

// Create returns a builder for creating a LessonPlan entity.
func (c *LessonPlanClient) Create() *LessonPlanCreate {
	mutation := newLessonPlanMutation(c.config, OpCreate)
	return &LessonPlanCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LessonPlan entities.
func (c *LessonPlanClient) CreateBulk(builders ...*LessonPlanCreate) *LessonPlanCreateBulk {
	return &LessonPlanCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LessonPlanClient) MapCreateBulk(slice any, setFunc func(*LessonPlanCreate, int)) *LessonPlanCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LessonPlanCreateBulk{err: fmt.Errorf("calling to LessonPlanClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LessonPlanCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LessonPlanCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LessonPlan.
func (c *LessonPlanClient) Update() *LessonPlanUpdate {
	mutation := newLessonPlanMutation(c.config, OpUpdate)
	return &LessonPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LessonPlanClient) UpdateOne(_m *LessonPlan) *LessonPlanUpdateOne {
	mutation := newLessonPlanMutation(c.config, OpUpdateOne, withLessonPlan(_m))
	return &LessonPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LessonPlanClient) UpdateOneID(id int) *LessonPlanUpdateOne {
	mutation := newLessonPlanMutation(c.config, OpUpdateOne, withLessonPlanID(id))
	return &LessonPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LessonPlan.
func (c *LessonPlanClient) Delete() *LessonPlanDelete {
	mutation := newLessonPlanMutation(c.config, OpDelete)
	return &LessonPlanDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LessonPlanClient) DeleteOne(_m *LessonPlan) *LessonPlanDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LessonPlanClient) DeleteOneID(id int) *LessonPlanDeleteOne {
	builder := c.Delete().Where(lessonplan.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LessonPlanDeleteOne{builder}
}

// Query returns a query builder for LessonPlan.
func (c *LessonPlanClient) Query() *LessonPlanQuery {
	return &LessonPlanQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLessonPlan},
		inters: c.Interceptors(),
	}
}

// Get returns a LessonPlan entity by its id.
func (c *LessonPlanClient) Get(ctx context.Context, id int) (*LessonPlan, error) {
	return c.Query().Where(lessonplan.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LessonPlanClient) GetX(ctx context.Context, id int) *LessonPlan {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LessonPlanClient) Hooks() []Hook {
	return c.hooks.LessonPlan
}

// Interceptors returns the client interceptors.
func (c *LessonPlanClient) Interceptors() []Interceptor {
	return c.inters.LessonPlan
}

func (c *LessonPlanClient) mutate(ctx context.Context, m *LessonPlanMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LessonPlanCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LessonPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LessonPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LessonPlanDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LessonPlan mutation op: %q", m.Op())
	}
}

// MasteryRecordClient is a client for the MasteryRecord schema.
type MasteryRecordClient struct {
	config
}

// NewMasteryRecordClient returns a client for the MasteryRecord from the given config.
func NewMasteryRecordClient(c config) *MasteryRecordClient {
	return &MasteryRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `masteryrecord.Hooks(f(g(h())))`.
func (c *MasteryRecordClient) Use(hooks ...Hook) {
	c.hooks.MasteryRecord = append(c.hooks.MasteryRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `masteryrecord.Intercept(f(g(h())))`.
func (c *MasteryRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.MasteryRecord = append(c.inters.MasteryRecord, interceptors...)
}

// Create returns a builder for creating a MasteryRecord entity.
func (c *MasteryRecordClient) Create() *MasteryRecordCreate {
	mutation := newMasteryRecordMutation(c.config, OpCreate)
	return &MasteryRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MasteryRecord entities.
func (c *MasteryRecordClient) CreateBulk(builders ...*MasteryRecordCreate) *MasteryRecordCreateBulk {
	return &MasteryRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MasteryRecordClient) MapCreateBulk(slice any, setFunc func(*MasteryRecordCreate, int)) *MasteryRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MasteryRecordCreateBulk{err: fmt.Errorf("calling to MasteryRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MasteryRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MasteryRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MasteryRecord.
func (c *MasteryRecordClient) Update() *MasteryRecordUpdate {
	mutation := newMasteryRecordMutation(c.config, OpUpdate)
	return &MasteryRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MasteryRecordClient) UpdateOne(_m *MasteryRecord) *MasteryRecordUpdateOne {
	mutation := newMasteryRecordMutation(c.config, OpUpdateOne, withMasteryRecord(_m))
	return &MasteryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MasteryRecordClient) UpdateOneID(id int) *MasteryRecordUpdateOne {
	mutation := newMasteryRecordMutation(c.config, OpUpdateOne, withMasteryRecordID(id))
	return &MasteryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MasteryRecord.
func (c *MasteryRecordClient) Delete() *MasteryRecordDelete {
	mutation := newMasteryRecordMutation(c.config, OpDelete)
	return &MasteryRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MasteryRecordClient) DeleteOne(_m *MasteryRecord) *MasteryRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MasteryRecordClient) DeleteOneID(id int) *MasteryRecordDeleteOne {
	builder := c.Delete().Where(masteryrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MasteryRecordDeleteOne{builder}
}

// Query returns a query builder for MasteryRecord.
func (c *MasteryRecordClient) Query() *MasteryRecordQuery {
	return &MasteryRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMasteryRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a MasteryRecord entity by its id.
func (c *MasteryRecordClient) Get(ctx context.Context, id int) (*MasteryRecord, error) {
	return c.Query().Where(masteryrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MasteryRecordClient) GetX(ctx context.Context, id int) *MasteryRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MasteryRecordClient) Hooks() []Hook {
	return c.hooks.MasteryRecord
}

// Interceptors returns the client interceptors.
func (c *MasteryRecordClient) Interceptors() []Interceptor {
	return c.inters.MasteryRecord
}

func (c *MasteryRecordClient) mutate(ctx context.Context, m *MasteryRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MasteryRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MasteryRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MasteryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MasteryRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MasteryRecord mutation op: %q", m.Op())
	}
}

// MessageClient is a client for the Message schema.
type MessageClient struct {
	config
}

// NewMessageClient returns a client for the Message from the given config.
func NewMessageClient(c config) *MessageClient {
	return &MessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `message.Hooks(f(g(h())))`.
func (c *MessageClient) Use(hooks ...Hook) {
	c.hooks.Message = append(c.hooks.Message, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `message.Intercept(f(g(h())))`.
func (c *MessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Message = append(c.inters.Message, interceptors...)
}

// Create returns a builder for creating a Message entity.
func (c *MessageClient) Create() *MessageCreate {
	mutation := newMessageMutation(c.config, OpCreate)
	return &MessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Message entities.
func (c *MessageClient) CreateBulk(builders ...*MessageCreate) *MessageCreateBulk {
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageClient) MapCreateBulk(slice any, setFunc func(*MessageCreate, int)) *MessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageCreateBulk{err: fmt.Errorf("calling to MessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Message.
func (c *MessageClient) Update() *MessageUpdate {
	mutation := newMessageMutation(c.config, OpUpdate)
	return &MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageClient) UpdateOne(_m *Message) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessage(_m))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageClient) UpdateOneID(id int) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessageID(id))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Message.
func (c *MessageClient) Delete() *MessageDelete {
	mutation := newMessageMutation(c.config, OpDelete)
	return &MessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageClient) DeleteOne(_m *Message) *MessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageClient) DeleteOneID(id int) *MessageDeleteOne {
	builder := c.Delete().Where(message.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageDeleteOne{builder}
}

// Query returns a query builder for Message.
func (c *MessageClient) Query() *MessageQuery {
	return &MessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a Message entity by its id.
func (c *MessageClient) Get(ctx context.Context, id int) (*Message, error) {
	return c.Query().Where(message.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageClient) GetX(ctx context.Context, id int) *Message {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MessageClient) Hooks() []Hook {
	return c.hooks.Message
}

// Interceptors returns the client interceptors.
func (c *MessageClient) Interceptors() []Interceptor {
	return c.inters.Message
}

func (c *MessageClient) mutate(ctx context.Context, m *MessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Message mutation op: %q", m.Op())
	}
}

// TutorAttemptClient is a client for the TutorAttempt schema.
type TutorAttemptClient struct {
	config
}

// NewTutorAttemptClient returns a client for the TutorAttempt from the given config.
func NewTutorAttemptClient(c config) *TutorAttemptClient {
	return &TutorAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tutorattempt.Hooks(f(g(h())))`.
func (c *TutorAttemptClient) Use(hooks ...Hook) {
	c.hooks.TutorAttempt = append(c.hooks.TutorAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tutorattempt.Intercept(f(g(h())))`.
func (c *TutorAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.TutorAttempt = append(c.inters.TutorAttempt, interceptors...)
}

// Create returns a builder for creating a TutorAttempt entity.
func (c *TutorAttemptClient) Create() *TutorAttemptCreate {
	mutation := newTutorAttemptMutation(c.config, OpCreate)
	return &TutorAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TutorAttempt entities.
func (c *TutorAttemptClient) CreateBulk(builders ...*TutorAttemptCreate) *TutorAttemptCreateBulk {
	return &TutorAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TutorAttemptClient) MapCreateBulk(slice any, setFunc func(*TutorAttemptCreate, int)) *TutorAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TutorAttemptCreateBulk{err: fmt.Errorf("calling to TutorAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TutorAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TutorAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TutorAttempt.
func (c *TutorAttemptClient) Update() *TutorAttemptUpdate {
	mutation := newTutorAttemptMutation(c.config, OpUpdate)
	return &TutorAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TutorAttemptClient) UpdateOne(_m *TutorAttempt) *TutorAttemptUpdateOne {
	mutation := newTutorAttemptMutation(c.config, OpUpdateOne, withTutorAttempt(_m))
	return &TutorAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TutorAttemptClient) UpdateOneID(id int) *TutorAttemptUpdateOne {
	mutation := newTutorAttemptMutation(c.config, OpUpdateOne, withTutorAttemptID(id))
	return &TutorAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TutorAttempt.
func (c *TutorAttemptClient) Delete() *TutorAttemptDelete {
	mutation := newTutorAttemptMutation(c.config, OpDelete)
	return &TutorAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TutorAttemptClient) DeleteOne(_m *TutorAttempt) *TutorAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TutorAttemptClient) DeleteOneID(id int) *TutorAttemptDeleteOne {
	builder := c.Delete().Where(tutorattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TutorAttemptDeleteOne{builder}
}

// Query returns a query builder for TutorAttempt.
func (c *TutorAttemptClient) Query() *TutorAttemptQuery {
	return &TutorAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTutorAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a TutorAttempt entity by its id.
func (c *TutorAttemptClient) Get(ctx context.Context, id int) (*TutorAttempt, error) {
	return c.Query().Where(tutorattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TutorAttemptClient) GetX(ctx context.Context, id int) *TutorAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TutorAttemptClient) Hooks() []Hook {
	return c.hooks.TutorAttempt
}

// Interceptors returns the client interceptors.
func (c *TutorAttemptClient) Interceptors() []Interceptor {
	return c.inters.TutorAttempt
}

func (c *TutorAttemptClient) mutate(ctx context.Context, m *TutorAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TutorAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TutorAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TutorAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TutorAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TutorAttempt mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		LLMRequestEvent, LearnerProfile, LessonPlan, MasteryRecord, Message,
		TutorAttempt []ent.Hook
	}
	inters struct {
		LLMRequestEvent, LearnerProfile, LessonPlan, MasteryRecord, Message,
		TutorAttempt []ent.Interceptor
	}
)
