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
	"github.com/kestrel-ai/kestrel/ent/summarycontext"
)

// SummaryContextCreate is the builder for creating a SummaryContext entity.
type SummaryContextCreate struct {
	config
	mutation *SummaryContextMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSummary sets the "summary" field.
func (_c *SummaryContextCreate) SetSummary(v string) *SummaryContextCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetSessions sets the "sessions" field.
func (_c *SummaryContextCreate) SetSessions(v []string) *SummaryContextCreate {
	_c.mutation.SetSessions(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *SummaryContextCreate) SetUserID(v string) *SummaryContextCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *SummaryContextCreate) SetNillableUserID(v *string) *SummaryContextCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SummaryContextCreate) SetCreatedAt(v time.Time) *SummaryContextCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SummaryContextCreate) SetNillableCreatedAt(v *time.Time) *SummaryContextCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SummaryContextCreate) SetID(v string) *SummaryContextCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SummaryContextMutation object of the builder.
func (_c *SummaryContextCreate) Mutation() *SummaryContextMutation {
	return _c.mutation
}

// Save creates the SummaryContext in the database.
func (_c *SummaryContextCreate) Save(ctx context.Context) (*SummaryContext, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SummaryContextCreate) SaveX(ctx context.Context) *SummaryContext {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SummaryContextCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SummaryContextCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SummaryContextCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := summarycontext.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SummaryContextCreate) check() error {
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "SummaryContext.summary"`)}
	}
	if _, ok := _c.mutation.Sessions(); !ok {
		return &ValidationError{Name: "sessions", err: errors.New(`ent: missing required field "SummaryContext.sessions"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SummaryContext.created_at"`)}
	}
	return nil
}

func (_c *SummaryContextCreate) sqlSave(ctx context.Context) (*SummaryContext, error) {
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
			return nil, fmt.Errorf("unexpected SummaryContext.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SummaryContextCreate) createSpec() (*SummaryContext, *sqlgraph.CreateSpec) {
	var (
		_node = &SummaryContext{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(summarycontext.Table, sqlgraph.NewFieldSpec(summarycontext.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(summarycontext.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Sessions(); ok {
		_spec.SetField(summarycontext.FieldSessions, field.TypeJSON, value)
		_node.Sessions = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(summarycontext.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(summarycontext.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SummaryContext.Create().
//		SetSummary(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SummaryContextUpsert) {
//			SetSummary(v+v).
//		}).
//		Exec(ctx)
func (_c *SummaryContextCreate) OnConflict(opts ...sql.ConflictOption) *SummaryContextUpsertOne {
	_c.conflict = opts
	return &SummaryContextUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SummaryContext.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SummaryContextCreate) OnConflictColumns(columns ...string) *SummaryContextUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SummaryContextUpsertOne{
		create: _c,
	}
}

type (
	// SummaryContextUpsertOne is the builder for "upsert"-ing
	//  one SummaryContext node.
	SummaryContextUpsertOne struct {
		create *SummaryContextCreate
	}

	// SummaryContextUpsert is the "OnConflict" setter.
	SummaryContextUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessions sets the "sessions" field.
func (u *SummaryContextUpsert) SetSessions(v []string) *SummaryContextUpsert {
	u.Set(summarycontext.FieldSessions, v)
	return u
}

// UpdateSessions sets the "sessions" field to the value that was provided on create.
func (u *SummaryContextUpsert) UpdateSessions() *SummaryContextUpsert {
	u.SetExcluded(summarycontext.FieldSessions)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SummaryContext.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(summarycontext.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SummaryContextUpsertOne) UpdateNewValues() *SummaryContextUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(summarycontext.FieldID)
		}
		if _, exists := u.create.mutation.Summary(); exists {
			s.SetIgnore(summarycontext.FieldSummary)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(summarycontext.FieldUserID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(summarycontext.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SummaryContext.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SummaryContextUpsertOne) Ignore() *SummaryContextUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SummaryContextUpsertOne) DoNothing() *SummaryContextUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SummaryContextCreate.OnConflict
// documentation for more info.
func (u *SummaryContextUpsertOne) Update(set func(*SummaryContextUpsert)) *SummaryContextUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SummaryContextUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessions sets the "sessions" field.
func (u *SummaryContextUpsertOne) SetSessions(v []string) *SummaryContextUpsertOne {
	return u.Update(func(s *SummaryContextUpsert) {
		s.SetSessions(v)
	})
}

// UpdateSessions sets the "sessions" field to the value that was provided on create.
func (u *SummaryContextUpsertOne) UpdateSessions() *SummaryContextUpsertOne {
	return u.Update(func(s *SummaryContextUpsert) {
		s.UpdateSessions()
	})
}

// Exec executes the query.
func (u *SummaryContextUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SummaryContextCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SummaryContextUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SummaryContextUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SummaryContextUpsertOne.ID is not supported by MySQL driver. Use SummaryContextUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SummaryContextUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SummaryContextCreateBulk is the builder for creating many SummaryContext entities in bulk.
type SummaryContextCreateBulk struct {
	config
	err      error
	builders []*SummaryContextCreate
	conflict []sql.ConflictOption
}

// Save creates the SummaryContext entities in the database.
func (_c *SummaryContextCreateBulk) Save(ctx context.Context) ([]*SummaryContext, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SummaryContext, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SummaryContextMutation)
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
func (_c *SummaryContextCreateBulk) SaveX(ctx context.Context) []*SummaryContext {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SummaryContextCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SummaryContextCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SummaryContext.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SummaryContextUpsert) {
//			SetSummary(v+v).
//		}).
//		Exec(ctx)
func (_c *SummaryContextCreateBulk) OnConflict(opts ...sql.ConflictOption) *SummaryContextUpsertBulk {
	_c.conflict = opts
	return &SummaryContextUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SummaryContext.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SummaryContextCreateBulk) OnConflictColumns(columns ...string) *SummaryContextUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SummaryContextUpsertBulk{
		create: _c,
	}
}

// SummaryContextUpsertBulk is the builder for "upsert"-ing
// a bulk of SummaryContext nodes.
type SummaryContextUpsertBulk struct {
	create *SummaryContextCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SummaryContext.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(summarycontext.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SummaryContextUpsertBulk) UpdateNewValues() *SummaryContextUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(summarycontext.FieldID)
			}
			if _, exists := b.mutation.Summary(); exists {
				s.SetIgnore(summarycontext.FieldSummary)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(summarycontext.FieldUserID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(summarycontext.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SummaryContext.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SummaryContextUpsertBulk) Ignore() *SummaryContextUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SummaryContextUpsertBulk) DoNothing() *SummaryContextUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SummaryContextCreateBulk.OnConflict
// documentation for more info.
func (u *SummaryContextUpsertBulk) Update(set func(*SummaryContextUpsert)) *SummaryContextUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SummaryContextUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessions sets the "sessions" field.
func (u *SummaryContextUpsertBulk) SetSessions(v []string) *SummaryContextUpsertBulk {
	return u.Update(func(s *SummaryContextUpsert) {
		s.SetSessions(v)
	})
}

// UpdateSessions sets the "sessions" field to the value that was provided on create.
func (u *SummaryContextUpsertBulk) UpdateSessions() *SummaryContextUpsertBulk {
	return u.Update(func(s *SummaryContextUpsert) {
		s.UpdateSessions()
	})
}

// Exec executes the query.
func (u *SummaryContextUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SummaryContextCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SummaryContextCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SummaryContextUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
