// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/windlassio/windlass/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/windlassio/windlass/ent/cascadesession"
	"github.com/windlassio/windlass/ent/checkpoint"
	"github.com/windlassio/windlass/ent/logrow"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CascadeSession is the client for interacting with the CascadeSession builders.
	CascadeSession *CascadeSessionClient
	// Checkpoint is the client for interacting with the Checkpoint builders.
	Checkpoint *CheckpointClient
	// LogRow is the client for interacting with the LogRow builders.
	LogRow *LogRowClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CascadeSession = NewCascadeSessionClient(c.config)
	c.Checkpoint = NewCheckpointClient(c.config)
	c.LogRow = NewLogRowClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		CascadeSession: NewCascadeSessionClient(cfg),
		Checkpoint:     NewCheckpointClient(cfg),
		LogRow:         NewLogRowClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		CascadeSession: NewCascadeSessionClient(cfg),
		Checkpoint:     NewCheckpointClient(cfg),
		LogRow:         NewLogRowClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CascadeSession.
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
	c.CascadeSession.Use(hooks...)
	c.Checkpoint.Use(hooks...)
	c.LogRow.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CascadeSession.Intercept(interceptors...)
	c.Checkpoint.Intercept(interceptors...)
	c.LogRow.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CascadeSessionMutation:
		return c.CascadeSession.mutate(ctx, m)
	case *CheckpointMutation:
		return c.Checkpoint.mutate(ctx, m)
	case *LogRowMutation:
		return c.LogRow.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CascadeSessionClient is a client for the CascadeSession schema.
type CascadeSessionClient struct {
	config
}

// NewCascadeSessionClient returns a client for the CascadeSession from the given config.
func NewCascadeSessionClient(c config) *CascadeSessionClient {
	return &CascadeSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cascadesession.Hooks(f(g(h())))`.
func (c *CascadeSessionClient) Use(hooks ...Hook) {
	c.hooks.CascadeSession = append(c.hooks.CascadeSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cascadesession.Intercept(f(g(h())))`.
func (c *CascadeSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.CascadeSession = append(c.inters.CascadeSession, interceptors...)
}

// Create returns a builder for creating a CascadeSession entity.
func (c *CascadeSessionClient) Create() *CascadeSessionCreate {
	mutation := newCascadeSessionMutation(c.config, OpCreate)
	return &CascadeSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CascadeSession entities.
func (c *CascadeSessionClient) CreateBulk(builders ...*CascadeSessionCreate) *CascadeSessionCreateBulk {
	return &CascadeSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CascadeSessionClient) MapCreateBulk(slice any, setFunc func(*CascadeSessionCreate, int)) *CascadeSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CascadeSessionCreateBulk{err: fmt.Errorf("calling to CascadeSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CascadeSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CascadeSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CascadeSession.
func (c *CascadeSessionClient) Update() *CascadeSessionUpdate {
	mutation := newCascadeSessionMutation(c.config, OpUpdate)
	return &CascadeSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CascadeSessionClient) UpdateOne(_m *CascadeSession) *CascadeSessionUpdateOne {
	mutation := newCascadeSessionMutation(c.config, OpUpdateOne, withCascadeSession(_m))
	return &CascadeSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CascadeSessionClient) UpdateOneID(id string) *CascadeSessionUpdateOne {
	mutation := newCascadeSessionMutation(c.config, OpUpdateOne, withCascadeSessionID(id))
	return &CascadeSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CascadeSession.
func (c *CascadeSessionClient) Delete() *CascadeSessionDelete {
	mutation := newCascadeSessionMutation(c.config, OpDelete)
	return &CascadeSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CascadeSessionClient) DeleteOne(_m *CascadeSession) *CascadeSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CascadeSessionClient) DeleteOneID(id string) *CascadeSessionDeleteOne {
	builder := c.Delete().Where(cascadesession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CascadeSessionDeleteOne{builder}
}

// Query returns a query builder for CascadeSession.
func (c *CascadeSessionClient) Query() *CascadeSessionQuery {
	return &CascadeSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCascadeSession},
		inters: c.Interceptors(),
	}
}

// Get returns a CascadeSession entity by its id.
func (c *CascadeSessionClient) Get(ctx context.Context, id string) (*CascadeSession, error) {
	return c.Query().Where(cascadesession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CascadeSessionClient) GetX(ctx context.Context, id string) *CascadeSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryParent queries the parent edge of a CascadeSession.
func (c *CascadeSessionClient) QueryParent(_m *CascadeSession) *CascadeSessionQuery {
	query := (&CascadeSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(cascadesession.Table, cascadesession.FieldID, id),
			sqlgraph.To(cascadesession.Table, cascadesession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, cascadesession.ParentTable, cascadesession.ParentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChildren queries the children edge of a CascadeSession.
func (c *CascadeSessionClient) QueryChildren(_m *CascadeSession) *CascadeSessionQuery {
	query := (&CascadeSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(cascadesession.Table, cascadesession.FieldID, id),
			sqlgraph.To(cascadesession.Table, cascadesession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, cascadesession.ChildrenTable, cascadesession.ChildrenColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLogRows queries the log_rows edge of a CascadeSession.
func (c *CascadeSessionClient) QueryLogRows(_m *CascadeSession) *LogRowQuery {
	query := (&LogRowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(cascadesession.Table, cascadesession.FieldID, id),
			sqlgraph.To(logrow.Table, logrow.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, cascadesession.LogRowsTable, cascadesession.LogRowsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCheckpoints queries the checkpoints edge of a CascadeSession.
func (c *CascadeSessionClient) QueryCheckpoints(_m *CascadeSession) *CheckpointQuery {
	query := (&CheckpointClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(cascadesession.Table, cascadesession.FieldID, id),
			sqlgraph.To(checkpoint.Table, checkpoint.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, cascadesession.CheckpointsTable, cascadesession.CheckpointsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CascadeSessionClient) Hooks() []Hook {
	return c.hooks.CascadeSession
}

// Interceptors returns the client interceptors.
func (c *CascadeSessionClient) Interceptors() []Interceptor {
	return c.inters.CascadeSession
}

func (c *CascadeSessionClient) mutate(ctx context.Context, m *CascadeSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CascadeSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CascadeSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CascadeSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CascadeSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CascadeSession mutation op: %q", m.Op())
	}
}

// CheckpointClient is a client for the Checkpoint schema.
type CheckpointClient struct {
	config
}

// NewCheckpointClient returns a client for the Checkpoint from the given config.
func NewCheckpointClient(c config) *CheckpointClient {
	return &CheckpointClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `checkpoint.Hooks(f(g(h())))`.
func (c *CheckpointClient) Use(hooks ...Hook) {
	c.hooks.Checkpoint = append(c.hooks.Checkpoint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `checkpoint.Intercept(f(g(h())))`.
func (c *CheckpointClient) Intercept(interceptors ...Interceptor) {
	c.inters.Checkpoint = append(c.inters.Checkpoint, interceptors...)
}

// Create returns a builder for creating a Checkpoint entity.
func (c *CheckpointClient) Create() *CheckpointCreate {
	mutation := newCheckpointMutation(c.config, OpCreate)
	return &CheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Checkpoint entities.
func (c *CheckpointClient) CreateBulk(builders ...*CheckpointCreate) *CheckpointCreateBulk {
	return &CheckpointCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CheckpointClient) MapCreateBulk(slice any, setFunc func(*CheckpointCreate, int)) *CheckpointCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CheckpointCreateBulk{err: fmt.Errorf("calling to CheckpointClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CheckpointCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CheckpointCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Checkpoint.
func (c *CheckpointClient) Update() *CheckpointUpdate {
	mutation := newCheckpointMutation(c.config, OpUpdate)
	return &CheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CheckpointClient) UpdateOne(_m *Checkpoint) *CheckpointUpdateOne {
	mutation := newCheckpointMutation(c.config, OpUpdateOne, withCheckpoint(_m))
	return &CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CheckpointClient) UpdateOneID(id string) *CheckpointUpdateOne {
	mutation := newCheckpointMutation(c.config, OpUpdateOne, withCheckpointID(id))
	return &CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Checkpoint.
func (c *CheckpointClient) Delete() *CheckpointDelete {
	mutation := newCheckpointMutation(c.config, OpDelete)
	return &CheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CheckpointClient) DeleteOne(_m *Checkpoint) *CheckpointDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CheckpointClient) DeleteOneID(id string) *CheckpointDeleteOne {
	builder := c.Delete().Where(checkpoint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CheckpointDeleteOne{builder}
}

// Query returns a query builder for Checkpoint.
func (c *CheckpointClient) Query() *CheckpointQuery {
	return &CheckpointQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCheckpoint},
		inters: c.Interceptors(),
	}
}

// Get returns a Checkpoint entity by its id.
func (c *CheckpointClient) Get(ctx context.Context, id string) (*Checkpoint, error) {
	return c.Query().Where(checkpoint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CheckpointClient) GetX(ctx context.Context, id string) *Checkpoint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a Checkpoint.
func (c *CheckpointClient) QuerySession(_m *Checkpoint) *CascadeSessionQuery {
	query := (&CascadeSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(checkpoint.Table, checkpoint.FieldID, id),
			sqlgraph.To(cascadesession.Table, cascadesession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, checkpoint.SessionTable, checkpoint.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CheckpointClient) Hooks() []Hook {
	return c.hooks.Checkpoint
}

// Interceptors returns the client interceptors.
func (c *CheckpointClient) Interceptors() []Interceptor {
	return c.inters.Checkpoint
}

func (c *CheckpointClient) mutate(ctx context.Context, m *CheckpointMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Checkpoint mutation op: %q", m.Op())
	}
}

// LogRowClient is a client for the LogRow schema.
type LogRowClient struct {
	config
}

// NewLogRowClient returns a client for the LogRow from the given config.
func NewLogRowClient(c config) *LogRowClient {
	return &LogRowClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `logrow.Hooks(f(g(h())))`.
func (c *LogRowClient) Use(hooks ...Hook) {
	c.hooks.LogRow = append(c.hooks.LogRow, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `logrow.Intercept(f(g(h())))`.
func (c *LogRowClient) Intercept(interceptors ...Interceptor) {
	c.inters.LogRow = append(c.inters.LogRow, interceptors...)
}

// Create returns a builder for creating a LogRow entity.
func (c *LogRowClient) Create() *LogRowCreate {
	mutation := newLogRowMutation(c.config, OpCreate)
	return &LogRowCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LogRow entities.
func (c *LogRowClient) CreateBulk(builders ...*LogRowCreate) *LogRowCreateBulk {
	return &LogRowCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LogRowClient) MapCreateBulk(slice any, setFunc func(*LogRowCreate, int)) *LogRowCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LogRowCreateBulk{err: fmt.Errorf("calling to LogRowClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LogRowCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LogRowCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LogRow.
func (c *LogRowClient) Update() *LogRowUpdate {
	mutation := newLogRowMutation(c.config, OpUpdate)
	return &LogRowUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LogRowClient) UpdateOne(_m *LogRow) *LogRowUpdateOne {
	mutation := newLogRowMutation(c.config, OpUpdateOne, withLogRow(_m))
	return &LogRowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LogRowClient) UpdateOneID(id string) *LogRowUpdateOne {
	mutation := newLogRowMutation(c.config, OpUpdateOne, withLogRowID(id))
	return &LogRowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LogRow.
func (c *LogRowClient) Delete() *LogRowDelete {
	mutation := newLogRowMutation(c.config, OpDelete)
	return &LogRowDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LogRowClient) DeleteOne(_m *LogRow) *LogRowDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LogRowClient) DeleteOneID(id string) *LogRowDeleteOne {
	builder := c.Delete().Where(logrow.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LogRowDeleteOne{builder}
}

// Query returns a query builder for LogRow.
func (c *LogRowClient) Query() *LogRowQuery {
	return &LogRowQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLogRow},
		inters: c.Interceptors(),
	}
}

// Get returns a LogRow entity by its id.
func (c *LogRowClient) Get(ctx context.Context, id string) (*LogRow, error) {
	return c.Query().Where(logrow.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LogRowClient) GetX(ctx context.Context, id string) *LogRow {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a LogRow.
func (c *LogRowClient) QuerySession(_m *LogRow) *CascadeSessionQuery {
	query := (&CascadeSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(logrow.Table, logrow.FieldID, id),
			sqlgraph.To(cascadesession.Table, cascadesession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, logrow.SessionTable, logrow.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LogRowClient) Hooks() []Hook {
	return c.hooks.LogRow
}

// Interceptors returns the client interceptors.
func (c *LogRowClient) Interceptors() []Interceptor {
	return c.inters.LogRow
}

func (c *LogRowClient) mutate(ctx context.Context, m *LogRowMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LogRowCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LogRowUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LogRowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LogRowDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LogRow mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CascadeSession, Checkpoint, LogRow []ent.Hook
	}
	inters struct {
		CascadeSession, Checkpoint, LogRow []ent.Interceptor
	}
)
