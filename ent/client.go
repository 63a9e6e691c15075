// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/kestrel-ai/kestrel/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/kestrel-ai/kestrel/ent/ambientnotification"
	"github.com/kestrel-ai/kestrel/ent/contextcache"
	"github.com/kestrel-ai/kestrel/ent/contradictionreview"
	"github.com/kestrel-ai/kestrel/ent/conversation"
	"github.com/kestrel-ai/kestrel/ent/conversationblock"
	"github.com/kestrel-ai/kestrel/ent/corememoryblock"
	"github.com/kestrel-ai/kestrel/ent/corememoryversion"
	"github.com/kestrel-ai/kestrel/ent/daemonstate"
	"github.com/kestrel-ai/kestrel/ent/entitymention"
	"github.com/kestrel-ai/kestrel/ent/explorationfinding"
	"github.com/kestrel-ai/kestrel/ent/mediumpresence"
	"github.com/kestrel-ai/kestrel/ent/mission"
	"github.com/kestrel-ai/kestrel/ent/missionexecution"
	"github.com/kestrel-ai/kestrel/ent/projecttask"
	"github.com/kestrel-ai/kestrel/ent/queuetask"
	"github.com/kestrel-ai/kestrel/ent/session"
	"github.com/kestrel-ai/kestrel/ent/summarycontext"
	"github.com/kestrel-ai/kestrel/ent/surfacedfinding"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AmbientNotification is the client for interacting with the AmbientNotification builders.
	AmbientNotification *AmbientNotificationClient
	// ContextCache is the client for interacting with the ContextCache builders.
	ContextCache *ContextCacheClient
	// ContradictionReview is the client for interacting with the ContradictionReview builders.
	ContradictionReview *ContradictionReviewClient
	// Conversation is the client for interacting with the Conversation builders.
	Conversation *ConversationClient
	// ConversationBlock is the client for interacting with the ConversationBlock builders.
	ConversationBlock *ConversationBlockClient
	// CoreMemoryBlock is the client for interacting with the CoreMemoryBlock builders.
	CoreMemoryBlock *CoreMemoryBlockClient
	// CoreMemoryVersion is the client for interacting with the CoreMemoryVersion builders.
	CoreMemoryVersion *CoreMemoryVersionClient
	// DaemonState is the client for interacting with the DaemonState builders.
	DaemonState *DaemonStateClient
	// EntityMention is the client for interacting with the EntityMention builders.
	EntityMention *EntityMentionClient
	// ExplorationFinding is the client for interacting with the ExplorationFinding builders.
	ExplorationFinding *ExplorationFindingClient
	// MediumPresence is the client for interacting with the MediumPresence builders.
	MediumPresence *MediumPresenceClient
	// Mission is the client for interacting with the Mission builders.
	Mission *MissionClient
	// MissionExecution is the client for interacting with the MissionExecution builders.
	MissionExecution *MissionExecutionClient
	// ProjectTask is the client for interacting with the ProjectTask builders.
	ProjectTask *ProjectTaskClient
	// QueueTask is the client for interacting with the QueueTask builders.
	QueueTask *QueueTaskClient
	// Session is the client for interacting with the Session builders.
	Session *SessionClient
	// SummaryContext is the client for interacting with the SummaryContext builders.
	SummaryContext *SummaryContextClient
	// SurfacedFinding is the client for interacting with the SurfacedFinding builders.
	SurfacedFinding *SurfacedFindingClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AmbientNotification = NewAmbientNotificationClient(c.config)
	c.ContextCache = NewContextCacheClient(c.config)
	c.ContradictionReview = NewContradictionReviewClient(c.config)
	c.Conversation = NewConversationClient(c.config)
	c.ConversationBlock = NewConversationBlockClient(c.config)
	c.CoreMemoryBlock = NewCoreMemoryBlockClient(c.config)
	c.CoreMemoryVersion = NewCoreMemoryVersionClient(c.config)
	c.DaemonState = NewDaemonStateClient(c.config)
	c.EntityMention = NewEntityMentionClient(c.config)
	c.ExplorationFinding = NewExplorationFindingClient(c.config)
	c.MediumPresence = NewMediumPresenceClient(c.config)
	c.Mission = NewMissionClient(c.config)
	c.MissionExecution = NewMissionExecutionClient(c.config)
	c.ProjectTask = NewProjectTaskClient(c.config)
	c.QueueTask = NewQueueTaskClient(c.config)
	c.Session = NewSessionClient(c.config)
	c.SummaryContext = NewSummaryContextClient(c.config)
	c.SurfacedFinding = NewSurfacedFindingClient(c.config)
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
		ctx:                 ctx,
		config:              cfg,
		AmbientNotification: NewAmbientNotificationClient(cfg),
		ContextCache:        NewContextCacheClient(cfg),
		ContradictionReview: NewContradictionReviewClient(cfg),
		Conversation:        NewConversationClient(cfg),
		ConversationBlock:   NewConversationBlockClient(cfg),
		CoreMemoryBlock:     NewCoreMemoryBlockClient(cfg),
		CoreMemoryVersion:   NewCoreMemoryVersionClient(cfg),
		DaemonState:         NewDaemonStateClient(cfg),
		EntityMention:       NewEntityMentionClient(cfg),
		ExplorationFinding:  NewExplorationFindingClient(cfg),
		MediumPresence:      NewMediumPresenceClient(cfg),
		Mission:             NewMissionClient(cfg),
		MissionExecution:    NewMissionExecutionClient(cfg),
		ProjectTask:         NewProjectTaskClient(cfg),
		QueueTask:           NewQueueTaskClient(cfg),
		Session:             NewSessionClient(cfg),
		SummaryContext:      NewSummaryContextClient(cfg),
		SurfacedFinding:     NewSurfacedFindingClient(cfg),
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
		ctx:                 ctx,
		config:              cfg,
		AmbientNotification: NewAmbientNotificationClient(cfg),
		ContextCache:        NewContextCacheClient(cfg),
		ContradictionReview: NewContradictionReviewClient(cfg),
		Conversation:        NewConversationClient(cfg),
		ConversationBlock:   NewConversationBlockClient(cfg),
		CoreMemoryBlock:     NewCoreMemoryBlockClient(cfg),
		CoreMemoryVersion:   NewCoreMemoryVersionClient(cfg),
		DaemonState:         NewDaemonStateClient(cfg),
		EntityMention:       NewEntityMentionClient(cfg),
		ExplorationFinding:  NewExplorationFindingClient(cfg),
		MediumPresence:      NewMediumPresenceClient(cfg),
		Mission:             NewMissionClient(cfg),
		MissionExecution:    NewMissionExecutionClient(cfg),
		ProjectTask:         NewProjectTaskClient(cfg),
		QueueTask:           NewQueueTaskClient(cfg),
		Session:             NewSessionClient(cfg),
		SummaryContext:      NewSummaryContextClient(cfg),
		SurfacedFinding:     NewSurfacedFindingClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AmbientNotification.
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
		c.AmbientNotification, c.ContextCache, c.ContradictionReview, c.Conversation,
		c.ConversationBlock, c.CoreMemoryBlock, c.CoreMemoryVersion, c.DaemonState,
		c.EntityMention, c.ExplorationFinding, c.MediumPresence, c.Mission,
		c.MissionExecution, c.ProjectTask, c.QueueTask, c.Session, c.SummaryContext,
		c.SurfacedFinding,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AmbientNotification, c.ContextCache, c.ContradictionReview, c.Conversation,
		c.ConversationBlock, c.CoreMemoryBlock, c.CoreMemoryVersion, c.DaemonState,
		c.EntityMention, c.ExplorationFinding, c.MediumPresence, c.Mission,
		c.MissionExecution, c.ProjectTask, c.QueueTask, c.Session, c.SummaryContext,
		c.SurfacedFinding,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AmbientNotificationMutation:
		return c.AmbientNotification.mutate(ctx, m)
	case *ContextCacheMutation:
		return c.ContextCache.mutate(ctx, m)
	case *ContradictionReviewMutation:
		return c.ContradictionReview.mutate(ctx, m)
	case *ConversationMutation:
		return c.Conversation.mutate(ctx, m)
	case *ConversationBlockMutation:
		return c.ConversationBlock.mutate(ctx, m)
	case *CoreMemoryBlockMutation:
		return c.CoreMemoryBlock.mutate(ctx, m)
	case *CoreMemoryVersionMutation:
		return c.CoreMemoryVersion.mutate(ctx, m)
	case *DaemonStateMutation:
		return c.DaemonState.mutate(ctx, m)
	case *EntityMentionMutation:
		return c.EntityMention.mutate(ctx, m)
	case *ExplorationFindingMutation:
		return c.ExplorationFinding.mutate(ctx, m)
	case *MediumPresenceMutation:
		return c.MediumPresence.mutate(ctx, m)
	case *MissionMutation:
		return c.Mission.mutate(ctx, m)
	case *MissionExecutionMutation:
		return c.MissionExecution.mutate(ctx, m)
	case *ProjectTaskMutation:
		return c.ProjectTask.mutate(ctx, m)
	case *QueueTaskMutation:
		return c.QueueTask.mutate(ctx, m)
	case *SessionMutation:
		return c.Session.mutate(ctx, m)
	case *SummaryContextMutation:
		return c.SummaryContext.mutate(ctx, m)
	case *SurfacedFindingMutation:
		return c.SurfacedFinding.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AmbientNotificationClient is a client for the AmbientNotification schema.
type AmbientNotificationClient struct {
	config
}

// NewAmbientNotificationClient returns a client for the AmbientNotification from the given config.
func NewAmbientNotificationClient(c config) *AmbientNotificationClient {
	return &AmbientNotificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ambientnotification.Hooks(f(g(h())))`.
func (c *AmbientNotificationClient) Use(hooks ...Hook) {
	c.hooks.AmbientNotification = append(c.hooks.AmbientNotification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ambientnotification.Intercept(f(g(h())))`.
func (c *AmbientNotificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.AmbientNotification = append(c.inters.AmbientNotification, interceptors...)
}

// Create returns a builder for creating a AmbientNotification entity.
func (c *AmbientNotificationClient) Create() *AmbientNotificationCreate {
	mutation := newAmbientNotificationMutation(c.config, OpCreate)
	return &AmbientNotificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AmbientNotification entities.
func (c *AmbientNotificationClient) CreateBulk(builders ...*AmbientNotificationCreate) *AmbientNotificationCreateBulk {
	return &AmbientNotificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AmbientNotificationClient) MapCreateBulk(slice any, setFunc func(*AmbientNotificationCreate, int)) *AmbientNotificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AmbientNotificationCreateBulk{err: fmt.Errorf("calling to AmbientNotificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AmbientNotificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AmbientNotificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AmbientNotification.
func (c *AmbientNotificationClient) Update() *AmbientNotificationUpdate {
	mutation := newAmbientNotificationMutation(c.config, OpUpdate)
	return &AmbientNotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AmbientNotificationClient) UpdateOne(_m *AmbientNotification) *AmbientNotificationUpdateOne {
	mutation := newAmbientNotificationMutation(c.config, OpUpdateOne, withAmbientNotification(_m))
	return &AmbientNotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AmbientNotificationClient) UpdateOneID(id string) *AmbientNotificationUpdateOne {
	mutation := newAmbientNotificationMutation(c.config, OpUpdateOne, withAmbientNotificationID(id))
	return &AmbientNotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AmbientNotification.
func (c *AmbientNotificationClient) Delete() *AmbientNotificationDelete {
	mutation := newAmbientNotificationMutation(c.config, OpDelete)
	return &AmbientNotificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AmbientNotificationClient) DeleteOne(_m *AmbientNotification) *AmbientNotificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AmbientNotificationClient) DeleteOneID(id string) *AmbientNotificationDeleteOne {
	builder := c.Delete().Where(ambientnotification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AmbientNotificationDeleteOne{builder}
}

// Query returns a query builder for AmbientNotification.
func (c *AmbientNotificationClient) Query() *AmbientNotificationQuery {
	return &AmbientNotificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAmbientNotification},
		inters: c.Interceptors(),
	}
}

// Get returns a AmbientNotification entity by its id.
func (c *AmbientNotificationClient) Get(ctx context.Context, id string) (*AmbientNotification, error) {
	return c.Query().Where(ambientnotification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AmbientNotificationClient) GetX(ctx context.Context, id string) *AmbientNotification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AmbientNotificationClient) Hooks() []Hook {
	return c.hooks.AmbientNotification
}

// Interceptors returns the client interceptors.
func (c *AmbientNotificationClient) Interceptors() []Interceptor {
	return c.inters.AmbientNotification
}

func (c *AmbientNotificationClient) mutate(ctx context.Context, m *AmbientNotificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AmbientNotificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AmbientNotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AmbientNotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AmbientNotificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AmbientNotification mutation op: %q", m.Op())
	}
}

// ContextCacheClient is a client for the ContextCache schema.
type ContextCacheClient struct {
	config
}

// NewContextCacheClient returns a client for the ContextCache from the given config.
func NewContextCacheClient(c config) *ContextCacheClient {
	return &ContextCacheClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contextcache.Hooks(f(g(h())))`.
func (c *ContextCacheClient) Use(hooks ...Hook) {
	c.hooks.ContextCache = append(c.hooks.ContextCache, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contextcache.Intercept(f(g(h())))`.
func (c *ContextCacheClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContextCache = append(c.inters.ContextCache, interceptors...)
}

// Create returns a builder for creating a ContextCache entity.
func (c *ContextCacheClient) Create() *ContextCacheCreate {
	mutation := newContextCacheMutation(c.config, OpCreate)
	return &ContextCacheCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContextCache entities.
func (c *ContextCacheClient) CreateBulk(builders ...*ContextCacheCreate) *ContextCacheCreateBulk {
	return &ContextCacheCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContextCacheClient) MapCreateBulk(slice any, setFunc func(*ContextCacheCreate, int)) *ContextCacheCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContextCacheCreateBulk{err: fmt.Errorf("calling to ContextCacheClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContextCacheCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContextCacheCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContextCache.
func (c *ContextCacheClient) Update() *ContextCacheUpdate {
	mutation := newContextCacheMutation(c.config, OpUpdate)
	return &ContextCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContextCacheClient) UpdateOne(_m *ContextCache) *ContextCacheUpdateOne {
	mutation := newContextCacheMutation(c.config, OpUpdateOne, withContextCache(_m))
	return &ContextCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContextCacheClient) UpdateOneID(id string) *ContextCacheUpdateOne {
	mutation := newContextCacheMutation(c.config, OpUpdateOne, withContextCacheID(id))
	return &ContextCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContextCache.
func (c *ContextCacheClient) Delete() *ContextCacheDelete {
	mutation := newContextCacheMutation(c.config, OpDelete)
	return &ContextCacheDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContextCacheClient) DeleteOne(_m *ContextCache) *ContextCacheDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContextCacheClient) DeleteOneID(id string) *ContextCacheDeleteOne {
	builder := c.Delete().Where(contextcache.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContextCacheDeleteOne{builder}
}

// Query returns a query builder for ContextCache.
func (c *ContextCacheClient) Query() *ContextCacheQuery {
	return &ContextCacheQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContextCache},
		inters: c.Interceptors(),
	}
}

// Get returns a ContextCache entity by its id.
func (c *ContextCacheClient) Get(ctx context.Context, id string) (*ContextCache, error) {
	return c.Query().Where(contextcache.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContextCacheClient) GetX(ctx context.Context, id string) *ContextCache {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ContextCacheClient) Hooks() []Hook {
	return c.hooks.ContextCache
}

// Interceptors returns the client interceptors.
func (c *ContextCacheClient) Interceptors() []Interceptor {
	return c.inters.ContextCache
}

func (c *ContextCacheClient) mutate(ctx context.Context, m *ContextCacheMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContextCacheCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContextCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContextCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContextCacheDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContextCache mutation op: %q", m.Op())
	}
}

// ContradictionReviewClient is a client for the ContradictionReview schema.
type ContradictionReviewClient struct {
	config
}

// NewContradictionReviewClient returns a client for the ContradictionReview from the given config.
func NewContradictionReviewClient(c config) *ContradictionReviewClient {
	return &ContradictionReviewClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contradictionreview.Hooks(f(g(h())))`.
func (c *ContradictionReviewClient) Use(hooks ...Hook) {
	c.hooks.ContradictionReview = append(c.hooks.ContradictionReview, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contradictionreview.Intercept(f(g(h())))`.
func (c *ContradictionReviewClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContradictionReview = append(c.inters.ContradictionReview, interceptors...)
}

// Create returns a builder for creating a ContradictionReview entity.
func (c *ContradictionReviewClient) Create() *ContradictionReviewCreate {
	mutation := newContradictionReviewMutation(c.config, OpCreate)
	return &ContradictionReviewCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContradictionReview entities.
func (c *ContradictionReviewClient) CreateBulk(builders ...*ContradictionReviewCreate) *ContradictionReviewCreateBulk {
	return &ContradictionReviewCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContradictionReviewClient) MapCreateBulk(slice any, setFunc func(*ContradictionReviewCreate, int)) *ContradictionReviewCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContradictionReviewCreateBulk{err: fmt.Errorf("calling to ContradictionReviewClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContradictionReviewCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContradictionReviewCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContradictionReview.
func (c *ContradictionReviewClient) Update() *ContradictionReviewUpdate {
	mutation := newContradictionReviewMutation(c.config, OpUpdate)
	return &ContradictionReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContradictionReviewClient) UpdateOne(_m *ContradictionReview) *ContradictionReviewUpdateOne {
	mutation := newContradictionReviewMutation(c.config, OpUpdateOne, withContradictionReview(_m))
	return &ContradictionReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContradictionReviewClient) UpdateOneID(id string) *ContradictionReviewUpdateOne {
	mutation := newContradictionReviewMutation(c.config, OpUpdateOne, withContradictionReviewID(id))
	return &ContradictionReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContradictionReview.
func (c *ContradictionReviewClient) Delete() *ContradictionReviewDelete {
	mutation := newContradictionReviewMutation(c.config, OpDelete)
	return &ContradictionReviewDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContradictionReviewClient) DeleteOne(_m *ContradictionReview) *ContradictionReviewDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContradictionReviewClient) DeleteOneID(id string) *ContradictionReviewDeleteOne {
	builder := c.Delete().Where(contradictionreview.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContradictionReviewDeleteOne{builder}
}

// Query returns a query builder for ContradictionReview.
func (c *ContradictionReviewClient) Query() *ContradictionReviewQuery {
	return &ContradictionReviewQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContradictionReview},
		inters: c.Interceptors(),
	}
}

// Get returns a ContradictionReview entity by its id.
func (c *ContradictionReviewClient) Get(ctx context.Context, id string) (*ContradictionReview, error) {
	return c.Query().Where(contradictionreview.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContradictionReviewClient) GetX(ctx context.Context, id string) *ContradictionReview {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ContradictionReviewClient) Hooks() []Hook {
	return c.hooks.ContradictionReview
}

// Interceptors returns the client interceptors.
func (c *ContradictionReviewClient) Interceptors() []Interceptor {
	return c.inters.ContradictionReview
}

func (c *ContradictionReviewClient) mutate(ctx context.Context, m *ContradictionReviewMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContradictionReviewCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContradictionReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContradictionReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContradictionReviewDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContradictionReview mutation op: %q", m.Op())
	}
}

// ConversationClient is a client for the Conversation schema.
type ConversationClient struct {
	config
}

// NewConversationClient returns a client for the Conversation from the given config.
func NewConversationClient(c config) *ConversationClient {
	return &ConversationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversation.Hooks(f(g(h())))`.
func (c *ConversationClient) Use(hooks ...Hook) {
	c.hooks.Conversation = append(c.hooks.Conversation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversation.Intercept(f(g(h())))`.
func (c *ConversationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Conversation = append(c.inters.Conversation, interceptors...)
}

// Create returns a builder for creating a Conversation entity.
func (c *ConversationClient) Create() *ConversationCreate {
	mutation := newConversationMutation(c.config, OpCreate)
	return &ConversationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Conversation entities.
func (c *ConversationClient) CreateBulk(builders ...*ConversationCreate) *ConversationCreateBulk {
	return &ConversationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversationClient) MapCreateBulk(slice any, setFunc func(*ConversationCreate, int)) *ConversationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversationCreateBulk{err: fmt.Errorf("calling to ConversationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Conversation.
func (c *ConversationClient) Update() *ConversationUpdate {
	mutation := newConversationMutation(c.config, OpUpdate)
	return &ConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversationClient) UpdateOne(_m *Conversation) *ConversationUpdateOne {
	mutation := newConversationMutation(c.config, OpUpdateOne, withConversation(_m))
	return &ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversationClient) UpdateOneID(id string) *ConversationUpdateOne {
	mutation := newConversationMutation(c.config, OpUpdateOne, withConversationID(id))
	return &ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Conversation.
func (c *ConversationClient) Delete() *ConversationDelete {
	mutation := newConversationMutation(c.config, OpDelete)
	return &ConversationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversationClient) DeleteOne(_m *Conversation) *ConversationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversationClient) DeleteOneID(id string) *ConversationDeleteOne {
	builder := c.Delete().Where(conversation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversationDeleteOne{builder}
}

// Query returns a query builder for Conversation.
func (c *ConversationClient) Query() *ConversationQuery {
	return &ConversationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversation},
		inters: c.Interceptors(),
	}
}

// Get returns a Conversation entity by its id.
func (c *ConversationClient) Get(ctx context.Context, id string) (*Conversation, error) {
	return c.Query().Where(conversation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversationClient) GetX(ctx context.Context, id string) *Conversation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConversationClient) Hooks() []Hook {
	return c.hooks.Conversation
}

// Interceptors returns the client interceptors.
func (c *ConversationClient) Interceptors() []Interceptor {
	return c.inters.Conversation
}

func (c *ConversationClient) mutate(ctx context.Context, m *ConversationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Conversation mutation op: %q", m.Op())
	}
}

// ConversationBlockClient is a client for the ConversationBlock schema.
type ConversationBlockClient struct {
	config
}

// NewConversationBlockClient returns a client for the ConversationBlock from the given config.
func NewConversationBlockClient(c config) *ConversationBlockClient {
	return &ConversationBlockClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversationblock.Hooks(f(g(h())))`.
func (c *ConversationBlockClient) Use(hooks ...Hook) {
	c.hooks.ConversationBlock = append(c.hooks.ConversationBlock, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversationblock.Intercept(f(g(h())))`.
func (c *ConversationBlockClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConversationBlock = append(c.inters.ConversationBlock, interceptors...)
}

// Create returns a builder for creating a ConversationBlock entity.
func (c *ConversationBlockClient) Create() *ConversationBlockCreate {
	mutation := newConversationBlockMutation(c.config, OpCreate)
	return &ConversationBlockCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConversationBlock entities.
func (c *ConversationBlockClient) CreateBulk(builders ...*ConversationBlockCreate) *ConversationBlockCreateBulk {
	return &ConversationBlockCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversationBlockClient) MapCreateBulk(slice any, setFunc func(*ConversationBlockCreate, int)) *ConversationBlockCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversationBlockCreateBulk{err: fmt.Errorf("calling to ConversationBlockClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversationBlockCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversationBlockCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConversationBlock.
func (c *ConversationBlockClient) Update() *ConversationBlockUpdate {
	mutation := newConversationBlockMutation(c.config, OpUpdate)
	return &ConversationBlockUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversationBlockClient) UpdateOne(_m *ConversationBlock) *ConversationBlockUpdateOne {
	mutation := newConversationBlockMutation(c.config, OpUpdateOne, withConversationBlock(_m))
	return &ConversationBlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversationBlockClient) UpdateOneID(id string) *ConversationBlockUpdateOne {
	mutation := newConversationBlockMutation(c.config, OpUpdateOne, withConversationBlockID(id))
	return &ConversationBlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConversationBlock.
func (c *ConversationBlockClient) Delete() *ConversationBlockDelete {
	mutation := newConversationBlockMutation(c.config, OpDelete)
	return &ConversationBlockDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversationBlockClient) DeleteOne(_m *ConversationBlock) *ConversationBlockDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversationBlockClient) DeleteOneID(id string) *ConversationBlockDeleteOne {
	builder := c.Delete().Where(conversationblock.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversationBlockDeleteOne{builder}
}

// Query returns a query builder for ConversationBlock.
func (c *ConversationBlockClient) Query() *ConversationBlockQuery {
	return &ConversationBlockQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversationBlock},
		inters: c.Interceptors(),
	}
}

// Get returns a ConversationBlock entity by its id.
func (c *ConversationBlockClient) Get(ctx context.Context, id string) (*ConversationBlock, error) {
	return c.Query().Where(conversationblock.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversationBlockClient) GetX(ctx context.Context, id string) *ConversationBlock {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConversationBlockClient) Hooks() []Hook {
	return c.hooks.ConversationBlock
}

// Interceptors returns the client interceptors.
func (c *ConversationBlockClient) Interceptors() []Interceptor {
	return c.inters.ConversationBlock
}

func (c *ConversationBlockClient) mutate(ctx context.Context, m *ConversationBlockMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversationBlockCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversationBlockUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversationBlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversationBlockDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConversationBlock mutation op: %q", m.Op())
	}
}

// CoreMemoryBlockClient is a client for the CoreMemoryBlock schema.
type CoreMemoryBlockClient struct {
	config
}

// NewCoreMemoryBlockClient returns a client for the CoreMemoryBlock from the given config.
func NewCoreMemoryBlockClient(c config) *CoreMemoryBlockClient {
	return &CoreMemoryBlockClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `corememoryblock.Hooks(f(g(h())))`.
func (c *CoreMemoryBlockClient) Use(hooks ...Hook) {
	c.hooks.CoreMemoryBlock = append(c.hooks.CoreMemoryBlock, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `corememoryblock.Intercept(f(g(h())))`.
func (c *CoreMemoryBlockClient) Intercept(interceptors ...Interceptor) {
	c.inters.CoreMemoryBlock = append(c.inters.CoreMemoryBlock, interceptors...)
}

// Create returns a builder for creating a CoreMemoryBlock entity.
func (c *CoreMemoryBlockClient) Create() *CoreMemoryBlockCreate {
	mutation := newCoreMemoryBlockMutation(c.config, OpCreate)
	return &CoreMemoryBlockCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CoreMemoryBlock entities.
func (c *CoreMemoryBlockClient) CreateBulk(builders ...*CoreMemoryBlockCreate) *CoreMemoryBlockCreateBulk {
	return &CoreMemoryBlockCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CoreMemoryBlockClient) MapCreateBulk(slice any, setFunc func(*CoreMemoryBlockCreate, int)) *CoreMemoryBlockCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CoreMemoryBlockCreateBulk{err: fmt.Errorf("calling to CoreMemoryBlockClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CoreMemoryBlockCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CoreMemoryBlockCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CoreMemoryBlock.
func (c *CoreMemoryBlockClient) Update() *CoreMemoryBlockUpdate {
	mutation := newCoreMemoryBlockMutation(c.config, OpUpdate)
	return &CoreMemoryBlockUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CoreMemoryBlockClient) UpdateOne(_m *CoreMemoryBlock) *CoreMemoryBlockUpdateOne {
	mutation := newCoreMemoryBlockMutation(c.config, OpUpdateOne, withCoreMemoryBlock(_m))
	return &CoreMemoryBlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CoreMemoryBlockClient) UpdateOneID(id string) *CoreMemoryBlockUpdateOne {
	mutation := newCoreMemoryBlockMutation(c.config, OpUpdateOne, withCoreMemoryBlockID(id))
	return &CoreMemoryBlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CoreMemoryBlock.
func (c *CoreMemoryBlockClient) Delete() *CoreMemoryBlockDelete {
	mutation := newCoreMemoryBlockMutation(c.config, OpDelete)
	return &CoreMemoryBlockDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CoreMemoryBlockClient) DeleteOne(_m *CoreMemoryBlock) *CoreMemoryBlockDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CoreMemoryBlockClient) DeleteOneID(id string) *CoreMemoryBlockDeleteOne {
	builder := c.Delete().Where(corememoryblock.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CoreMemoryBlockDeleteOne{builder}
}

// Query returns a query builder for CoreMemoryBlock.
func (c *CoreMemoryBlockClient) Query() *CoreMemoryBlockQuery {
	return &CoreMemoryBlockQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCoreMemoryBlock},
		inters: c.Interceptors(),
	}
}

// Get returns a CoreMemoryBlock entity by its id.
func (c *CoreMemoryBlockClient) Get(ctx context.Context, id string) (*CoreMemoryBlock, error) {
	return c.Query().Where(corememoryblock.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CoreMemoryBlockClient) GetX(ctx context.Context, id string) *CoreMemoryBlock {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CoreMemoryBlockClient) Hooks() []Hook {
	return c.hooks.CoreMemoryBlock
}

// Interceptors returns the client interceptors.
func (c *CoreMemoryBlockClient) Interceptors() []Interceptor {
	return c.inters.CoreMemoryBlock
}

func (c *CoreMemoryBlockClient) mutate(ctx context.Context, m *CoreMemoryBlockMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CoreMemoryBlockCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CoreMemoryBlockUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CoreMemoryBlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CoreMemoryBlockDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CoreMemoryBlock mutation op: %q", m.Op())
	}
}

// CoreMemoryVersionClient is a client for the CoreMemoryVersion schema.
type CoreMemoryVersionClient struct {
	config
}

// NewCoreMemoryVersionClient returns a client for the CoreMemoryVersion from the given config.
func NewCoreMemoryVersionClient(c config) *CoreMemoryVersionClient {
	return &CoreMemoryVersionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `corememoryversion.Hooks(f(g(h())))`.
func (c *CoreMemoryVersionClient) Use(hooks ...Hook) {
	c.hooks.CoreMemoryVersion = append(c.hooks.CoreMemoryVersion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `corememoryversion.Intercept(f(g(h())))`.
func (c *CoreMemoryVersionClient) Intercept(interceptors ...Interceptor) {
	c.inters.CoreMemoryVersion = append(c.inters.CoreMemoryVersion, interceptors...)
}

// Create returns a builder for creating a CoreMemoryVersion entity.
func (c *CoreMemoryVersionClient) Create() *CoreMemoryVersionCreate {
	mutation := newCoreMemoryVersionMutation(c.config, OpCreate)
	return &CoreMemoryVersionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CoreMemoryVersion entities.
func (c *CoreMemoryVersionClient) CreateBulk(builders ...*CoreMemoryVersionCreate) *CoreMemoryVersionCreateBulk {
	return &CoreMemoryVersionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CoreMemoryVersionClient) MapCreateBulk(slice any, setFunc func(*CoreMemoryVersionCreate, int)) *CoreMemoryVersionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CoreMemoryVersionCreateBulk{err: fmt.Errorf("calling to CoreMemoryVersionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CoreMemoryVersionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CoreMemoryVersionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CoreMemoryVersion.
func (c *CoreMemoryVersionClient) Update() *CoreMemoryVersionUpdate {
	mutation := newCoreMemoryVersionMutation(c.config, OpUpdate)
	return &CoreMemoryVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CoreMemoryVersionClient) UpdateOne(_m *CoreMemoryVersion) *CoreMemoryVersionUpdateOne {
	mutation := newCoreMemoryVersionMutation(c.config, OpUpdateOne, withCoreMemoryVersion(_m))
	return &CoreMemoryVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CoreMemoryVersionClient) UpdateOneID(id string) *CoreMemoryVersionUpdateOne {
	mutation := newCoreMemoryVersionMutation(c.config, OpUpdateOne, withCoreMemoryVersionID(id))
	return &CoreMemoryVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CoreMemoryVersion.
func (c *CoreMemoryVersionClient) Delete() *CoreMemoryVersionDelete {
	mutation := newCoreMemoryVersionMutation(c.config, OpDelete)
	return &CoreMemoryVersionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CoreMemoryVersionClient) DeleteOne(_m *CoreMemoryVersion) *CoreMemoryVersionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CoreMemoryVersionClient) DeleteOneID(id string) *CoreMemoryVersionDeleteOne {
	builder := c.Delete().Where(corememoryversion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CoreMemoryVersionDeleteOne{builder}
}

// Query returns a query builder for CoreMemoryVersion.
func (c *CoreMemoryVersionClient) Query() *CoreMemoryVersionQuery {
	return &CoreMemoryVersionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCoreMemoryVersion},
		inters: c.Interceptors(),
	}
}

// Get returns a CoreMemoryVersion entity by its id.
func (c *CoreMemoryVersionClient) Get(ctx context.Context, id string) (*CoreMemoryVersion, error) {
	return c.Query().Where(corememoryversion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CoreMemoryVersionClient) GetX(ctx context.Context, id string) *CoreMemoryVersion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CoreMemoryVersionClient) Hooks() []Hook {
	return c.hooks.CoreMemoryVersion
}

// Interceptors returns the client interceptors.
func (c *CoreMemoryVersionClient) Interceptors() []Interceptor {
	return c.inters.CoreMemoryVersion
}

func (c *CoreMemoryVersionClient) mutate(ctx context.Context, m *CoreMemoryVersionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CoreMemoryVersionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CoreMemoryVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CoreMemoryVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CoreMemoryVersionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CoreMemoryVersion mutation op: %q", m.Op())
	}
}

// DaemonStateClient is a client for the DaemonState schema.
type DaemonStateClient struct {
	config
}

// NewDaemonStateClient returns a client for the DaemonState from the given config.
func NewDaemonStateClient(c config) *DaemonStateClient {
	return &DaemonStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `daemonstate.Hooks(f(g(h())))`.
func (c *DaemonStateClient) Use(hooks ...Hook) {
	c.hooks.DaemonState = append(c.hooks.DaemonState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `daemonstate.Intercept(f(g(h())))`.
func (c *DaemonStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.DaemonState = append(c.inters.DaemonState, interceptors...)
}

// Create returns a builder for creating a DaemonState entity.
func (c *DaemonStateClient) Create() *DaemonStateCreate {
	mutation := newDaemonStateMutation(c.config, OpCreate)
	return &DaemonStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DaemonState entities.
func (c *DaemonStateClient) CreateBulk(builders ...*DaemonStateCreate) *DaemonStateCreateBulk {
	return &DaemonStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DaemonStateClient) MapCreateBulk(slice any, setFunc func(*DaemonStateCreate, int)) *DaemonStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DaemonStateCreateBulk{err: fmt.Errorf("calling to DaemonStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DaemonStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DaemonStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DaemonState.
func (c *DaemonStateClient) Update() *DaemonStateUpdate {
	mutation := newDaemonStateMutation(c.config, OpUpdate)
	return &DaemonStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DaemonStateClient) UpdateOne(_m *DaemonState) *DaemonStateUpdateOne {
	mutation := newDaemonStateMutation(c.config, OpUpdateOne, withDaemonState(_m))
	return &DaemonStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DaemonStateClient) UpdateOneID(id string) *DaemonStateUpdateOne {
	mutation := newDaemonStateMutation(c.config, OpUpdateOne, withDaemonStateID(id))
	return &DaemonStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DaemonState.
func (c *DaemonStateClient) Delete() *DaemonStateDelete {
	mutation := newDaemonStateMutation(c.config, OpDelete)
	return &DaemonStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DaemonStateClient) DeleteOne(_m *DaemonState) *DaemonStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DaemonStateClient) DeleteOneID(id string) *DaemonStateDeleteOne {
	builder := c.Delete().Where(daemonstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DaemonStateDeleteOne{builder}
}

// Query returns a query builder for DaemonState.
func (c *DaemonStateClient) Query() *DaemonStateQuery {
	return &DaemonStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDaemonState},
		inters: c.Interceptors(),
	}
}

// Get returns a DaemonState entity by its id.
func (c *DaemonStateClient) Get(ctx context.Context, id string) (*DaemonState, error) {
	return c.Query().Where(daemonstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DaemonStateClient) GetX(ctx context.Context, id string) *DaemonState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DaemonStateClient) Hooks() []Hook {
	return c.hooks.DaemonState
}

// Interceptors returns the client interceptors.
func (c *DaemonStateClient) Interceptors() []Interceptor {
	return c.inters.DaemonState
}

func (c *DaemonStateClient) mutate(ctx context.Context, m *DaemonStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DaemonStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DaemonStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DaemonStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DaemonStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DaemonState mutation op: %q", m.Op())
	}
}

// EntityMentionClient is a client for the EntityMention schema.
type EntityMentionClient struct {
	config
}

// NewEntityMentionClient returns a client for the EntityMention from the given config.
func NewEntityMentionClient(c config) *EntityMentionClient {
	return &EntityMentionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entitymention.Hooks(f(g(h())))`.
func (c *EntityMentionClient) Use(hooks ...Hook) {
	c.hooks.EntityMention = append(c.hooks.EntityMention, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entitymention.Intercept(f(g(h())))`.
func (c *EntityMentionClient) Intercept(interceptors ...Interceptor) {
	c.inters.EntityMention = append(c.inters.EntityMention, interceptors...)
}

// Create returns a builder for creating a EntityMention entity.
func (c *EntityMentionClient) Create() *EntityMentionCreate {
	mutation := newEntityMentionMutation(c.config, OpCreate)
	return &EntityMentionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EntityMention entities.
func (c *EntityMentionClient) CreateBulk(builders ...*EntityMentionCreate) *EntityMentionCreateBulk {
	return &EntityMentionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntityMentionClient) MapCreateBulk(slice any, setFunc func(*EntityMentionCreate, int)) *EntityMentionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntityMentionCreateBulk{err: fmt.Errorf("calling to EntityMentionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntityMentionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntityMentionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EntityMention.
func (c *EntityMentionClient) Update() *EntityMentionUpdate {
	mutation := newEntityMentionMutation(c.config, OpUpdate)
	return &EntityMentionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntityMentionClient) UpdateOne(_m *EntityMention) *EntityMentionUpdateOne {
	mutation := newEntityMentionMutation(c.config, OpUpdateOne, withEntityMention(_m))
	return &EntityMentionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntityMentionClient) UpdateOneID(id string) *EntityMentionUpdateOne {
	mutation := newEntityMentionMutation(c.config, OpUpdateOne, withEntityMentionID(id))
	return &EntityMentionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EntityMention.
func (c *EntityMentionClient) Delete() *EntityMentionDelete {
	mutation := newEntityMentionMutation(c.config, OpDelete)
	return &EntityMentionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntityMentionClient) DeleteOne(_m *EntityMention) *EntityMentionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntityMentionClient) DeleteOneID(id string) *EntityMentionDeleteOne {
	builder := c.Delete().Where(entitymention.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntityMentionDeleteOne{builder}
}

// Query returns a query builder for EntityMention.
func (c *EntityMentionClient) Query() *EntityMentionQuery {
	return &EntityMentionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntityMention},
		inters: c.Interceptors(),
	}
}

// Get returns a EntityMention entity by its id.
func (c *EntityMentionClient) Get(ctx context.Context, id string) (*EntityMention, error) {
	return c.Query().Where(entitymention.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntityMentionClient) GetX(ctx context.Context, id string) *EntityMention {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EntityMentionClient) Hooks() []Hook {
	return c.hooks.EntityMention
}

// Interceptors returns the client interceptors.
func (c *EntityMentionClient) Interceptors() []Interceptor {
	return c.inters.EntityMention
}

func (c *EntityMentionClient) mutate(ctx context.Context, m *EntityMentionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntityMentionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntityMentionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntityMentionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntityMentionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EntityMention mutation op: %q", m.Op())
	}
}

// ExplorationFindingClient is a client for the ExplorationFinding schema.
type ExplorationFindingClient struct {
	config
}

// NewExplorationFindingClient returns a client for the ExplorationFinding from the given config.
func NewExplorationFindingClient(c config) *ExplorationFindingClient {
	return &ExplorationFindingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `explorationfinding.Hooks(f(g(h())))`.
func (c *ExplorationFindingClient) Use(hooks ...Hook) {
	c.hooks.ExplorationFinding = append(c.hooks.ExplorationFinding, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `explorationfinding.Intercept(f(g(h())))`.
func (c *ExplorationFindingClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExplorationFinding = append(c.inters.ExplorationFinding, interceptors...)
}

// Create returns a builder for creating a ExplorationFinding entity.
func (c *ExplorationFindingClient) Create() *ExplorationFindingCreate {
	mutation := newExplorationFindingMutation(c.config, OpCreate)
	return &ExplorationFindingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExplorationFinding entities.
func (c *ExplorationFindingClient) CreateBulk(builders ...*ExplorationFindingCreate) *ExplorationFindingCreateBulk {
	return &ExplorationFindingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExplorationFindingClient) MapCreateBulk(slice any, setFunc func(*ExplorationFindingCreate, int)) *ExplorationFindingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExplorationFindingCreateBulk{err: fmt.Errorf("calling to ExplorationFindingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExplorationFindingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExplorationFindingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExplorationFinding.
func (c *ExplorationFindingClient) Update() *ExplorationFindingUpdate {
	mutation := newExplorationFindingMutation(c.config, OpUpdate)
	return &ExplorationFindingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExplorationFindingClient) UpdateOne(_m *ExplorationFinding) *ExplorationFindingUpdateOne {
	mutation := newExplorationFindingMutation(c.config, OpUpdateOne, withExplorationFinding(_m))
	return &ExplorationFindingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExplorationFindingClient) UpdateOneID(id string) *ExplorationFindingUpdateOne {
	mutation := newExplorationFindingMutation(c.config, OpUpdateOne, withExplorationFindingID(id))
	return &ExplorationFindingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExplorationFinding.
func (c *ExplorationFindingClient) Delete() *ExplorationFindingDelete {
	mutation := newExplorationFindingMutation(c.config, OpDelete)
	return &ExplorationFindingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExplorationFindingClient) DeleteOne(_m *ExplorationFinding) *ExplorationFindingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExplorationFindingClient) DeleteOneID(id string) *ExplorationFindingDeleteOne {
	builder := c.Delete().Where(explorationfinding.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExplorationFindingDeleteOne{builder}
}

// Query returns a query builder for ExplorationFinding.
func (c *ExplorationFindingClient) Query() *ExplorationFindingQuery {
	return &ExplorationFindingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExplorationFinding},
		inters: c.Interceptors(),
	}
}

// Get returns a ExplorationFinding entity by its id.
func (c *ExplorationFindingClient) Get(ctx context.Context, id string) (*ExplorationFinding, error) {
	return c.Query().Where(explorationfinding.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExplorationFindingClient) GetX(ctx context.Context, id string) *ExplorationFinding {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExplorationFindingClient) Hooks() []Hook {
	return c.hooks.ExplorationFinding
}

// Interceptors returns the client interceptors.
func (c *ExplorationFindingClient) Interceptors() []Interceptor {
	return c.inters.ExplorationFinding
}

func (c *ExplorationFindingClient) mutate(ctx context.Context, m *ExplorationFindingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExplorationFindingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExplorationFindingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExplorationFindingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExplorationFindingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExplorationFinding mutation op: %q", m.Op())
	}
}

// MediumPresenceClient is a client for the MediumPresence schema.
type MediumPresenceClient struct {
	config
}

// NewMediumPresenceClient returns a client for the MediumPresence from the given config.
func NewMediumPresenceClient(c config) *MediumPresenceClient {
	return &MediumPresenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mediumpresence.Hooks(f(g(h())))`.
func (c *MediumPresenceClient) Use(hooks ...Hook) {
	c.hooks.MediumPresence = append(c.hooks.MediumPresence, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mediumpresence.Intercept(f(g(h())))`.
func (c *MediumPresenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.MediumPresence = append(c.inters.MediumPresence, interceptors...)
}

// Create returns a builder for creating a MediumPresence entity.
func (c *MediumPresenceClient) Create() *MediumPresenceCreate {
	mutation := newMediumPresenceMutation(c.config, OpCreate)
	return &MediumPresenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MediumPresence entities.
func (c *MediumPresenceClient) CreateBulk(builders ...*MediumPresenceCreate) *MediumPresenceCreateBulk {
	return &MediumPresenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MediumPresenceClient) MapCreateBulk(slice any, setFunc func(*MediumPresenceCreate, int)) *MediumPresenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MediumPresenceCreateBulk{err: fmt.Errorf("calling to MediumPresenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MediumPresenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MediumPresenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MediumPresence.
func (c *MediumPresenceClient) Update() *MediumPresenceUpdate {
	mutation := newMediumPresenceMutation(c.config, OpUpdate)
	return &MediumPresenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MediumPresenceClient) UpdateOne(_m *MediumPresence) *MediumPresenceUpdateOne {
	mutation := newMediumPresenceMutation(c.config, OpUpdateOne, withMediumPresence(_m))
	return &MediumPresenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MediumPresenceClient) UpdateOneID(id string) *MediumPresenceUpdateOne {
	mutation := newMediumPresenceMutation(c.config, OpUpdateOne, withMediumPresenceID(id))
	return &MediumPresenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MediumPresence.
func (c *MediumPresenceClient) Delete() *MediumPresenceDelete {
	mutation := newMediumPresenceMutation(c.config, OpDelete)
	return &MediumPresenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MediumPresenceClient) DeleteOne(_m *MediumPresence) *MediumPresenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MediumPresenceClient) DeleteOneID(id string) *MediumPresenceDeleteOne {
	builder := c.Delete().Where(mediumpresence.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MediumPresenceDeleteOne{builder}
}

// Query returns a query builder for MediumPresence.
func (c *MediumPresenceClient) Query() *MediumPresenceQuery {
	return &MediumPresenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMediumPresence},
		inters: c.Interceptors(),
	}
}

// Get returns a MediumPresence entity by its id.
func (c *MediumPresenceClient) Get(ctx context.Context, id string) (*MediumPresence, error) {
	return c.Query().Where(mediumpresence.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MediumPresenceClient) GetX(ctx context.Context, id string) *MediumPresence {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MediumPresenceClient) Hooks() []Hook {
	return c.hooks.MediumPresence
}

// Interceptors returns the client interceptors.
func (c *MediumPresenceClient) Interceptors() []Interceptor {
	return c.inters.MediumPresence
}

func (c *MediumPresenceClient) mutate(ctx context.Context, m *MediumPresenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MediumPresenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MediumPresenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MediumPresenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MediumPresenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MediumPresence mutation op: %q", m.Op())
	}
}

// MissionClient is a client for the Mission schema.
type MissionClient struct {
	config
}

// NewMissionClient returns a client for the Mission from the given config.
func NewMissionClient(c config) *MissionClient {
	return &MissionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mission.Hooks(f(g(h())))`.
func (c *MissionClient) Use(hooks ...Hook) {
	c.hooks.Mission = append(c.hooks.Mission, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mission.Intercept(f(g(h())))`.
func (c *MissionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Mission = append(c.inters.Mission, interceptors...)
}

// Create returns a builder for creating a Mission entity.
func (c *MissionClient) Create() *MissionCreate {
	mutation := newMissionMutation(c.config, OpCreate)
	return &MissionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Mission entities.
func (c *MissionClient) CreateBulk(builders ...*MissionCreate) *MissionCreateBulk {
	return &MissionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MissionClient) MapCreateBulk(slice any, setFunc func(*MissionCreate, int)) *MissionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MissionCreateBulk{err: fmt.Errorf("calling to MissionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MissionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MissionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Mission.
func (c *MissionClient) Update() *MissionUpdate {
	mutation := newMissionMutation(c.config, OpUpdate)
	return &MissionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MissionClient) UpdateOne(_m *Mission) *MissionUpdateOne {
	mutation := newMissionMutation(c.config, OpUpdateOne, withMission(_m))
	return &MissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MissionClient) UpdateOneID(id string) *MissionUpdateOne {
	mutation := newMissionMutation(c.config, OpUpdateOne, withMissionID(id))
	return &MissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Mission.
func (c *MissionClient) Delete() *MissionDelete {
	mutation := newMissionMutation(c.config, OpDelete)
	return &MissionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MissionClient) DeleteOne(_m *Mission) *MissionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MissionClient) DeleteOneID(id string) *MissionDeleteOne {
	builder := c.Delete().Where(mission.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MissionDeleteOne{builder}
}

// Query returns a query builder for Mission.
func (c *MissionClient) Query() *MissionQuery {
	return &MissionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMission},
		inters: c.Interceptors(),
	}
}

// Get returns a Mission entity by its id.
func (c *MissionClient) Get(ctx context.Context, id string) (*Mission, error) {
	return c.Query().Where(mission.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MissionClient) GetX(ctx context.Context, id string) *Mission {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MissionClient) Hooks() []Hook {
	return c.hooks.Mission
}

// Interceptors returns the client interceptors.
func (c *MissionClient) Interceptors() []Interceptor {
	return c.inters.Mission
}

func (c *MissionClient) mutate(ctx context.Context, m *MissionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MissionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MissionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MissionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Mission mutation op: %q", m.Op())
	}
}

// MissionExecutionClient is a client for the MissionExecution schema.
type MissionExecutionClient struct {
	config
}

// NewMissionExecutionClient returns a client for the MissionExecution from the given config.
func NewMissionExecutionClient(c config) *MissionExecutionClient {
	return &MissionExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `missionexecution.Hooks(f(g(h())))`.
func (c *MissionExecutionClient) Use(hooks ...Hook) {
	c.hooks.MissionExecution = append(c.hooks.MissionExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `missionexecution.Intercept(f(g(h())))`.
func (c *MissionExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.MissionExecution = append(c.inters.MissionExecution, interceptors...)
}

// Create returns a builder for creating a MissionExecution entity.
func (c *MissionExecutionClient) Create() *MissionExecutionCreate {
	mutation := newMissionExecutionMutation(c.config, OpCreate)
	return &MissionExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MissionExecution entities.
func (c *MissionExecutionClient) CreateBulk(builders ...*MissionExecutionCreate) *MissionExecutionCreateBulk {
	return &MissionExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MissionExecutionClient) MapCreateBulk(slice any, setFunc func(*MissionExecutionCreate, int)) *MissionExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MissionExecutionCreateBulk{err: fmt.Errorf("calling to MissionExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MissionExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MissionExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MissionExecution.
func (c *MissionExecutionClient) Update() *MissionExecutionUpdate {
	mutation := newMissionExecutionMutation(c.config, OpUpdate)
	return &MissionExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MissionExecutionClient) UpdateOne(_m *MissionExecution) *MissionExecutionUpdateOne {
	mutation := newMissionExecutionMutation(c.config, OpUpdateOne, withMissionExecution(_m))
	return &MissionExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MissionExecutionClient) UpdateOneID(id string) *MissionExecutionUpdateOne {
	mutation := newMissionExecutionMutation(c.config, OpUpdateOne, withMissionExecutionID(id))
	return &MissionExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MissionExecution.
func (c *MissionExecutionClient) Delete() *MissionExecutionDelete {
	mutation := newMissionExecutionMutation(c.config, OpDelete)
	return &MissionExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MissionExecutionClient) DeleteOne(_m *MissionExecution) *MissionExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MissionExecutionClient) DeleteOneID(id string) *MissionExecutionDeleteOne {
	builder := c.Delete().Where(missionexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MissionExecutionDeleteOne{builder}
}

// Query returns a query builder for MissionExecution.
func (c *MissionExecutionClient) Query() *MissionExecutionQuery {
	return &MissionExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMissionExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a MissionExecution entity by its id.
func (c *MissionExecutionClient) Get(ctx context.Context, id string) (*MissionExecution, error) {
	return c.Query().Where(missionexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MissionExecutionClient) GetX(ctx context.Context, id string) *MissionExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MissionExecutionClient) Hooks() []Hook {
	return c.hooks.MissionExecution
}

// Interceptors returns the client interceptors.
func (c *MissionExecutionClient) Interceptors() []Interceptor {
	return c.inters.MissionExecution
}

func (c *MissionExecutionClient) mutate(ctx context.Context, m *MissionExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MissionExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MissionExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MissionExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MissionExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MissionExecution mutation op: %q", m.Op())
	}
}

// ProjectTaskClient is a client for the ProjectTask schema.
type ProjectTaskClient struct {
	config
}

// NewProjectTaskClient returns a client for the ProjectTask from the given config.
func NewProjectTaskClient(c config) *ProjectTaskClient {
	return &ProjectTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `projecttask.Hooks(f(g(h())))`.
func (c *ProjectTaskClient) Use(hooks ...Hook) {
	c.hooks.ProjectTask = append(c.hooks.ProjectTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `projecttask.Intercept(f(g(h())))`.
func (c *ProjectTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProjectTask = append(c.inters.ProjectTask, interceptors...)
}

// Create returns a builder for creating a ProjectTask entity.
func (c *ProjectTaskClient) Create() *ProjectTaskCreate {
	mutation := newProjectTaskMutation(c.config, OpCreate)
	return &ProjectTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProjectTask entities.
func (c *ProjectTaskClient) CreateBulk(builders ...*ProjectTaskCreate) *ProjectTaskCreateBulk {
	return &ProjectTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectTaskClient) MapCreateBulk(slice any, setFunc func(*ProjectTaskCreate, int)) *ProjectTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectTaskCreateBulk{err: fmt.Errorf("calling to ProjectTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProjectTask.
func (c *ProjectTaskClient) Update() *ProjectTaskUpdate {
	mutation := newProjectTaskMutation(c.config, OpUpdate)
	return &ProjectTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectTaskClient) UpdateOne(_m *ProjectTask) *ProjectTaskUpdateOne {
	mutation := newProjectTaskMutation(c.config, OpUpdateOne, withProjectTask(_m))
	return &ProjectTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectTaskClient) UpdateOneID(id string) *ProjectTaskUpdateOne {
	mutation := newProjectTaskMutation(c.config, OpUpdateOne, withProjectTaskID(id))
	return &ProjectTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProjectTask.
func (c *ProjectTaskClient) Delete() *ProjectTaskDelete {
	mutation := newProjectTaskMutation(c.config, OpDelete)
	return &ProjectTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectTaskClient) DeleteOne(_m *ProjectTask) *ProjectTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectTaskClient) DeleteOneID(id string) *ProjectTaskDeleteOne {
	builder := c.Delete().Where(projecttask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectTaskDeleteOne{builder}
}

// Query returns a query builder for ProjectTask.
func (c *ProjectTaskClient) Query() *ProjectTaskQuery {
	return &ProjectTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProjectTask},
		inters: c.Interceptors(),
	}
}

// Get returns a ProjectTask entity by its id.
func (c *ProjectTaskClient) Get(ctx context.Context, id string) (*ProjectTask, error) {
	return c.Query().Where(projecttask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectTaskClient) GetX(ctx context.Context, id string) *ProjectTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProjectTaskClient) Hooks() []Hook {
	return c.hooks.ProjectTask
}

// Interceptors returns the client interceptors.
func (c *ProjectTaskClient) Interceptors() []Interceptor {
	return c.inters.ProjectTask
}

func (c *ProjectTaskClient) mutate(ctx context.Context, m *ProjectTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProjectTask mutation op: %q", m.Op())
	}
}

// QueueTaskClient is a client for the QueueTask schema.
type QueueTaskClient struct {
	config
}

// NewQueueTaskClient returns a client for the QueueTask from the given config.
func NewQueueTaskClient(c config) *QueueTaskClient {
	return &QueueTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `queuetask.Hooks(f(g(h())))`.
func (c *QueueTaskClient) Use(hooks ...Hook) {
	c.hooks.QueueTask = append(c.hooks.QueueTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `queuetask.Intercept(f(g(h())))`.
func (c *QueueTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.QueueTask = append(c.inters.QueueTask, interceptors...)
}

// Create returns a builder for creating a QueueTask entity.
func (c *QueueTaskClient) Create() *QueueTaskCreate {
	mutation := newQueueTaskMutation(c.config, OpCreate)
	return &QueueTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QueueTask entities.
func (c *QueueTaskClient) CreateBulk(builders ...*QueueTaskCreate) *QueueTaskCreateBulk {
	return &QueueTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QueueTaskClient) MapCreateBulk(slice any, setFunc func(*QueueTaskCreate, int)) *QueueTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QueueTaskCreateBulk{err: fmt.Errorf("calling to QueueTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QueueTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QueueTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QueueTask.
func (c *QueueTaskClient) Update() *QueueTaskUpdate {
	mutation := newQueueTaskMutation(c.config, OpUpdate)
	return &QueueTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QueueTaskClient) UpdateOne(_m *QueueTask) *QueueTaskUpdateOne {
	mutation := newQueueTaskMutation(c.config, OpUpdateOne, withQueueTask(_m))
	return &QueueTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QueueTaskClient) UpdateOneID(id string) *QueueTaskUpdateOne {
	mutation := newQueueTaskMutation(c.config, OpUpdateOne, withQueueTaskID(id))
	return &QueueTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QueueTask.
func (c *QueueTaskClient) Delete() *QueueTaskDelete {
	mutation := newQueueTaskMutation(c.config, OpDelete)
	return &QueueTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QueueTaskClient) DeleteOne(_m *QueueTask) *QueueTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QueueTaskClient) DeleteOneID(id string) *QueueTaskDeleteOne {
	builder := c.Delete().Where(queuetask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QueueTaskDeleteOne{builder}
}

// Query returns a query builder for QueueTask.
func (c *QueueTaskClient) Query() *QueueTaskQuery {
	return &QueueTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQueueTask},
		inters: c.Interceptors(),
	}
}

// Get returns a QueueTask entity by its id.
func (c *QueueTaskClient) Get(ctx context.Context, id string) (*QueueTask, error) {
	return c.Query().Where(queuetask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QueueTaskClient) GetX(ctx context.Context, id string) *QueueTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QueueTaskClient) Hooks() []Hook {
	return c.hooks.QueueTask
}

// Interceptors returns the client interceptors.
func (c *QueueTaskClient) Interceptors() []Interceptor {
	return c.inters.QueueTask
}

func (c *QueueTaskClient) mutate(ctx context.Context, m *QueueTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QueueTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QueueTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QueueTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QueueTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QueueTask mutation op: %q", m.Op())
	}
}

// SessionClient is a client for the Session schema.
type SessionClient struct {
	config
}

// NewSessionClient returns a client for the Session from the given config.
func NewSessionClient(c config) *SessionClient {
	return &SessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `session.Hooks(f(g(h())))`.
func (c *SessionClient) Use(hooks ...Hook) {
	c.hooks.Session = append(c.hooks.Session, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `session.Intercept(f(g(h())))`.
func (c *SessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Session = append(c.inters.Session, interceptors...)
}

// Create returns a builder for creating a Session entity.
func (c *SessionClient) Create() *SessionCreate {
	mutation := newSessionMutation(c.config, OpCreate)
	return &SessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Session entities.
func (c *SessionClient) CreateBulk(builders ...*SessionCreate) *SessionCreateBulk {
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionClient) MapCreateBulk(slice any, setFunc func(*SessionCreate, int)) *SessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionCreateBulk{err: fmt.Errorf("calling to SessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Session.
func (c *SessionClient) Update() *SessionUpdate {
	mutation := newSessionMutation(c.config, OpUpdate)
	return &SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionClient) UpdateOne(_m *Session) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSession(_m))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionClient) UpdateOneID(id string) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSessionID(id))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Session.
func (c *SessionClient) Delete() *SessionDelete {
	mutation := newSessionMutation(c.config, OpDelete)
	return &SessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionClient) DeleteOne(_m *Session) *SessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionClient) DeleteOneID(id string) *SessionDeleteOne {
	builder := c.Delete().Where(session.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionDeleteOne{builder}
}

// Query returns a query builder for Session.
func (c *SessionClient) Query() *SessionQuery {
	return &SessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSession},
		inters: c.Interceptors(),
	}
}

// Get returns a Session entity by its id.
func (c *SessionClient) Get(ctx context.Context, id string) (*Session, error) {
	return c.Query().Where(session.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionClient) GetX(ctx context.Context, id string) *Session {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionClient) Hooks() []Hook {
	return c.hooks.Session
}

// Interceptors returns the client interceptors.
func (c *SessionClient) Interceptors() []Interceptor {
	return c.inters.Session
}

func (c *SessionClient) mutate(ctx context.Context, m *SessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Session mutation op: %q", m.Op())
	}
}

// SummaryContextClient is a client for the SummaryContext schema.
type SummaryContextClient struct {
	config
}

// NewSummaryContextClient returns a client for the SummaryContext from the given config.
func NewSummaryContextClient(c config) *SummaryContextClient {
	return &SummaryContextClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `summarycontext.Hooks(f(g(h())))`.
func (c *SummaryContextClient) Use(hooks ...Hook) {
	c.hooks.SummaryContext = append(c.hooks.SummaryContext, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `summarycontext.Intercept(f(g(h())))`.
func (c *SummaryContextClient) Intercept(interceptors ...Interceptor) {
	c.inters.SummaryContext = append(c.inters.SummaryContext, interceptors...)
}

// Create returns a builder for creating a SummaryContext entity.
func (c *SummaryContextClient) Create() *SummaryContextCreate {
	mutation := newSummaryContextMutation(c.config, OpCreate)
	return &SummaryContextCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SummaryContext entities.
func (c *SummaryContextClient) CreateBulk(builders ...*SummaryContextCreate) *SummaryContextCreateBulk {
	return &SummaryContextCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SummaryContextClient) MapCreateBulk(slice any, setFunc func(*SummaryContextCreate, int)) *SummaryContextCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SummaryContextCreateBulk{err: fmt.Errorf("calling to SummaryContextClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SummaryContextCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SummaryContextCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SummaryContext.
func (c *SummaryContextClient) Update() *SummaryContextUpdate {
	mutation := newSummaryContextMutation(c.config, OpUpdate)
	return &SummaryContextUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SummaryContextClient) UpdateOne(_m *SummaryContext) *SummaryContextUpdateOne {
	mutation := newSummaryContextMutation(c.config, OpUpdateOne, withSummaryContext(_m))
	return &SummaryContextUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SummaryContextClient) UpdateOneID(id string) *SummaryContextUpdateOne {
	mutation := newSummaryContextMutation(c.config, OpUpdateOne, withSummaryContextID(id))
	return &SummaryContextUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SummaryContext.
func (c *SummaryContextClient) Delete() *SummaryContextDelete {
	mutation := newSummaryContextMutation(c.config, OpDelete)
	return &SummaryContextDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SummaryContextClient) DeleteOne(_m *SummaryContext) *SummaryContextDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SummaryContextClient) DeleteOneID(id string) *SummaryContextDeleteOne {
	builder := c.Delete().Where(summarycontext.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SummaryContextDeleteOne{builder}
}

// Query returns a query builder for SummaryContext.
func (c *SummaryContextClient) Query() *SummaryContextQuery {
	return &SummaryContextQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSummaryContext},
		inters: c.Interceptors(),
	}
}

// Get returns a SummaryContext entity by its id.
func (c *SummaryContextClient) Get(ctx context.Context, id string) (*SummaryContext, error) {
	return c.Query().Where(summarycontext.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SummaryContextClient) GetX(ctx context.Context, id string) *SummaryContext {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SummaryContextClient) Hooks() []Hook {
	return c.hooks.SummaryContext
}

// Interceptors returns the client interceptors.
func (c *SummaryContextClient) Interceptors() []Interceptor {
	return c.inters.SummaryContext
}

func (c *SummaryContextClient) mutate(ctx context.Context, m *SummaryContextMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SummaryContextCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SummaryContextUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SummaryContextUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SummaryContextDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SummaryContext mutation op: %q", m.Op())
	}
}

// SurfacedFindingClient is a client for the SurfacedFinding schema.
type SurfacedFindingClient struct {
	config
}

// NewSurfacedFindingClient returns a client for the SurfacedFinding from the given config.
func NewSurfacedFindingClient(c config) *SurfacedFindingClient {
	return &SurfacedFindingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `surfacedfinding.Hooks(f(g(h())))`.
func (c *SurfacedFindingClient) Use(hooks ...Hook) {
	c.hooks.SurfacedFinding = append(c.hooks.SurfacedFinding, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `surfacedfinding.Intercept(f(g(h())))`.
func (c *SurfacedFindingClient) Intercept(interceptors ...Interceptor) {
	c.inters.SurfacedFinding = append(c.inters.SurfacedFinding, interceptors...)
}

// Create returns a builder for creating a SurfacedFinding entity.
func (c *SurfacedFindingClient) Create() *SurfacedFindingCreate {
	mutation := newSurfacedFindingMutation(c.config, OpCreate)
	return &SurfacedFindingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SurfacedFinding entities.
func (c *SurfacedFindingClient) CreateBulk(builders ...*SurfacedFindingCreate) *SurfacedFindingCreateBulk {
	return &SurfacedFindingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SurfacedFindingClient) MapCreateBulk(slice any, setFunc func(*SurfacedFindingCreate, int)) *SurfacedFindingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SurfacedFindingCreateBulk{err: fmt.Errorf("calling to SurfacedFindingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SurfacedFindingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SurfacedFindingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SurfacedFinding.
func (c *SurfacedFindingClient) Update() *SurfacedFindingUpdate {
	mutation := newSurfacedFindingMutation(c.config, OpUpdate)
	return &SurfacedFindingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SurfacedFindingClient) UpdateOne(_m *SurfacedFinding) *SurfacedFindingUpdateOne {
	mutation := newSurfacedFindingMutation(c.config, OpUpdateOne, withSurfacedFinding(_m))
	return &SurfacedFindingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SurfacedFindingClient) UpdateOneID(id string) *SurfacedFindingUpdateOne {
	mutation := newSurfacedFindingMutation(c.config, OpUpdateOne, withSurfacedFindingID(id))
	return &SurfacedFindingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SurfacedFinding.
func (c *SurfacedFindingClient) Delete() *SurfacedFindingDelete {
	mutation := newSurfacedFindingMutation(c.config, OpDelete)
	return &SurfacedFindingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SurfacedFindingClient) DeleteOne(_m *SurfacedFinding) *SurfacedFindingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SurfacedFindingClient) DeleteOneID(id string) *SurfacedFindingDeleteOne {
	builder := c.Delete().Where(surfacedfinding.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SurfacedFindingDeleteOne{builder}
}

// Query returns a query builder for SurfacedFinding.
func (c *SurfacedFindingClient) Query() *SurfacedFindingQuery {
	return &SurfacedFindingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSurfacedFinding},
		inters: c.Interceptors(),
	}
}

// Get returns a SurfacedFinding entity by its id.
func (c *SurfacedFindingClient) Get(ctx context.Context, id string) (*SurfacedFinding, error) {
	return c.Query().Where(surfacedfinding.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SurfacedFindingClient) GetX(ctx context.Context, id string) *SurfacedFinding {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SurfacedFindingClient) Hooks() []Hook {
	return c.hooks.SurfacedFinding
}

// Interceptors returns the client interceptors.
func (c *SurfacedFindingClient) Interceptors() []Interceptor {
	return c.inters.SurfacedFinding
}

func (c *SurfacedFindingClient) mutate(ctx context.Context, m *SurfacedFindingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SurfacedFindingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SurfacedFindingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SurfacedFindingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SurfacedFindingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SurfacedFinding mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AmbientNotification, ContextCache, ContradictionReview, Conversation,
		ConversationBlock, CoreMemoryBlock, CoreMemoryVersion, DaemonState,
		EntityMention, ExplorationFinding, MediumPresence, Mission, MissionExecution,
		ProjectTask, QueueTask, Session, SummaryContext, SurfacedFinding []ent.Hook
	}
	inters struct {
		AmbientNotification, ContextCache, ContradictionReview, Conversation,
		ConversationBlock, CoreMemoryBlock, CoreMemoryVersion, DaemonState,
		EntityMention, ExplorationFinding, MediumPresence, Mission, MissionExecution,
		ProjectTask, QueueTask, Session, SummaryContext,
		SurfacedFinding []ent.Interceptor
	}
)
