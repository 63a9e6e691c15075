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
	"github.com/kestrel-ai/kestrel/ent/contextcache"
)

// ContextCacheCreate is the builder for creating a ContextCache entity.
type ContextCacheCreate struct {
	config
	mutation *ContextCacheMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *ContextCacheCreate) SetSessionID(v string) *ContextCacheCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetContext sets the "context" field.
func (_c *ContextCacheCreate) SetContext(v string) *ContextCacheCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_c *ContextCacheCreate) SetNillableContext(v *string) *ContextCacheCreate {
	if v != nil {
		_c.SetContext(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ContextCacheCreate) SetMetadata(v map[string]interface{}) *ContextCacheCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ContextCacheCreate) SetUpdatedAt(v time.Time) *ContextCacheCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ContextCacheCreate) SetNillableUpdatedAt(v *time.Time) *ContextCacheCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContextCacheCreate) SetID(v string) *ContextCacheCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ContextCacheMutation object of the builder.
func (_c *ContextCacheCreate) Mutation() *ContextCacheMutation {
	return _c.mutation
}

// Save creates the ContextCache in the database.
func (_c *ContextCacheCreate) Save(ctx context.Context) (*ContextCache, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContextCacheCreate) SaveX(ctx context.Context) *ContextCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContextCacheCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContextCacheCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContextCacheCreate) defaults() {
	if _, ok := _c.mutation.Context(); !ok {
		v := contextcache.DefaultContext
		_c.mutation.SetContext(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := contextcache.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContextCacheCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ContextCache.session_id"`)}
	}
	if _, ok := _c.mutation.Context(); !ok {
		return &ValidationError{Name: "context", err: errors.New(`ent: missing required field "ContextCache.context"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ContextCache.updated_at"`)}
	}
	return nil
}

func (_c *ContextCacheCreate) sqlSave(ctx context.Context) (*ContextCache, error) {
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
			return nil, fmt.Errorf("unexpected ContextCache.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContextCacheCreate) createSpec() (*ContextCache, *sqlgraph.CreateSpec) {
	var (
		_node = &ContextCache{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contextcache.Table, sqlgraph.NewFieldSpec(contextcache.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(contextcache.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(contextcache.FieldContext, field.TypeString, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(contextcache.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(contextcache.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ContextCache.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContextCacheUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ContextCacheCreate) OnConflict(opts ...sql.ConflictOption) *ContextCacheUpsertOne {
	_c.conflict = opts
	return &ContextCacheUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ContextCache.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ContextCacheCreate) OnConflictColumns(columns ...string) *ContextCacheUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ContextCacheUpsertOne{
		create: _c,
	}
}

type (
	// ContextCacheUpsertOne is the builder for "upsert"-ing
	//  one ContextCache node.
	ContextCacheUpsertOne struct {
		create *ContextCacheCreate
	}

	// ContextCacheUpsert is the "OnConflict" setter.
	ContextCacheUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *ContextCacheUpsert) SetSessionID(v string) *ContextCacheUpsert {
	u.Set(contextcache.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *ContextCacheUpsert) UpdateSessionID() *ContextCacheUpsert {
	u.SetExcluded(contextcache.FieldSessionID)
	return u
}

// SetContext sets the "context" field.
func (u *ContextCacheUpsert) SetContext(v string) *ContextCacheUpsert {
	u.Set(contextcache.FieldContext, v)
	return u
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *ContextCacheUpsert) UpdateContext() *ContextCacheUpsert {
	u.SetExcluded(contextcache.FieldContext)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *ContextCacheUpsert) SetMetadata(v map[string]interface{}) *ContextCacheUpsert {
	u.Set(contextcache.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *ContextCacheUpsert) UpdateMetadata() *ContextCacheUpsert {
	u.SetExcluded(contextcache.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *ContextCacheUpsert) ClearMetadata() *ContextCacheUpsert {
	u.SetNull(contextcache.FieldMetadata)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ContextCacheUpsert) SetUpdatedAt(v time.Time) *ContextCacheUpsert {
	u.Set(contextcache.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ContextCacheUpsert) UpdateUpdatedAt() *ContextCacheUpsert {
	u.SetExcluded(contextcache.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ContextCache.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(contextcache.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ContextCacheUpsertOne) UpdateNewValues() *ContextCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(contextcache.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ContextCache.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ContextCacheUpsertOne) Ignore() *ContextCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContextCacheUpsertOne) DoNothing() *ContextCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContextCacheCreate.OnConflict
// documentation for more info.
func (u *ContextCacheUpsertOne) Update(set func(*ContextCacheUpsert)) *ContextCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContextCacheUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *ContextCacheUpsertOne) SetSessionID(v string) *ContextCacheUpsertOne {
	return u.Update(func(s *ContextCacheUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *ContextCacheUpsertOne) UpdateSessionID() *ContextCacheUpsertOne {
	return u.Update(func(s *ContextCacheUpsert) {
		s.UpdateSessionID()
	})
}

// SetContext sets the "context" field.
func (u *ContextCacheUpsertOne) SetContext(v string) *ContextCacheUpsertOne {
	return u.Update(func(s *ContextCacheUpsert) {
		s.SetContext(v)
	})
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *ContextCacheUpsertOne) UpdateContext() *ContextCacheUpsertOne {
	return u.Update(func(s *ContextCacheUpsert) {
		s.UpdateContext()
	})
}

// SetMetadata sets the "metadata" field.
func (u *ContextCacheUpsertOne) SetMetadata(v map[string]interface{}) *ContextCacheUpsertOne {
	return u.Update(func(s *ContextCacheUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *ContextCacheUpsertOne) UpdateMetadata() *ContextCacheUpsertOne {
	return u.Update(func(s *ContextCacheUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *ContextCacheUpsertOne) ClearMetadata() *ContextCacheUpsertOne {
	return u.Update(func(s *ContextCacheUpsert) {
		s.ClearMetadata()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ContextCacheUpsertOne) SetUpdatedAt(v time.Time) *ContextCacheUpsertOne {
	return u.Update(func(s *ContextCacheUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ContextCacheUpsertOne) UpdateUpdatedAt() *ContextCacheUpsertOne {
	return u.Update(func(s *ContextCacheUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ContextCacheUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ContextCacheCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContextCacheUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ContextCacheUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ContextCacheUpsertOne.ID is not supported by MySQL driver. Use ContextCacheUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ContextCacheUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ContextCacheCreateBulk is the builder for creating many ContextCache entities in bulk.
type ContextCacheCreateBulk struct {
	config
	err      error
	builders []*ContextCacheCreate
	conflict []sql.ConflictOption
}

// Save creates the ContextCache entities in the database.
func (_c *ContextCacheCreateBulk) Save(ctx context.Context) ([]*ContextCache, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContextCache, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContextCacheMutation)
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
func (_c *ContextCacheCreateBulk) SaveX(ctx context.Context) []*ContextCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContextCacheCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContextCacheCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ContextCache.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContextCacheUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ContextCacheCreateBulk) OnConflict(opts ...sql.ConflictOption) *ContextCacheUpsertBulk {
	_c.conflict = opts
	return &ContextCacheUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ContextCache.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ContextCacheCreateBulk) OnConflictColumns(columns ...string) *ContextCacheUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ContextCacheUpsertBulk{
		create: _c,
	}
}

// ContextCacheUpsertBulk is the builder for "upsert"-ing
// a bulk of ContextCache nodes.
type ContextCacheUpsertBulk struct {
	create *ContextCacheCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ContextCache.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(contextcache.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ContextCacheUpsertBulk) UpdateNewValues() *ContextCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(contextcache.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ContextCache.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ContextCacheUpsertBulk) Ignore() *ContextCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContextCacheUpsertBulk) DoNothing() *ContextCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContextCacheCreateBulk.OnConflict
// documentation for more info.
func (u *ContextCacheUpsertBulk) Update(set func(*ContextCacheUpsert)) *ContextCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContextCacheUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *ContextCacheUpsertBulk) SetSessionID(v string) *ContextCacheUpsertBulk {
	return u.Update(func(s *ContextCacheUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *ContextCacheUpsertBulk) UpdateSessionID() *ContextCacheUpsertBulk {
	return u.Update(func(s *ContextCacheUpsert) {
		s.UpdateSessionID()
	})
}

// SetContext sets the "context" field.
func (u *ContextCacheUpsertBulk) SetContext(v string) *ContextCacheUpsertBulk {
	return u.Update(func(s *ContextCacheUpsert) {
		s.SetContext(v)
	})
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *ContextCacheUpsertBulk) UpdateContext() *ContextCacheUpsertBulk {
	return u.Update(func(s *ContextCacheUpsert) {
		s.UpdateContext()
	})
}

// SetMetadata sets the "metadata" field.
func (u *ContextCacheUpsertBulk) SetMetadata(v map[string]interface{}) *ContextCacheUpsertBulk {
	return u.Update(func(s *ContextCacheUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *ContextCacheUpsertBulk) UpdateMetadata() *ContextCacheUpsertBulk {
	return u.Update(func(s *ContextCacheUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *ContextCacheUpsertBulk) ClearMetadata() *ContextCacheUpsertBulk {
	return u.Update(func(s *ContextCacheUpsert) {
		s.ClearMetadata()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ContextCacheUpsertBulk) SetUpdatedAt(v time.Time) *ContextCacheUpsertBulk {
	return u.Update(func(s *ContextCacheUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ContextCacheUpsertBulk) UpdateUpdatedAt() *ContextCacheUpsertBulk {
	return u.Update(func(s *ContextCacheUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ContextCacheUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ContextCacheCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ContextCacheCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContextCacheUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
