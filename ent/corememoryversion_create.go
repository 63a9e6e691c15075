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
	"github.com/kestrel-ai/kestrel/ent/corememoryversion"
)

// CoreMemoryVersionCreate is the builder for creating a CoreMemoryVersion entity.
type CoreMemoryVersionCreate struct {
	config
	mutation *CoreMemoryVersionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBlockID sets the "block_id" field.
func (_c *CoreMemoryVersionCreate) SetBlockID(v string) *CoreMemoryVersionCreate {
	_c.mutation.SetBlockID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *CoreMemoryVersionCreate) SetVersion(v int) *CoreMemoryVersionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *CoreMemoryVersionCreate) SetContent(v string) *CoreMemoryVersionCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *CoreMemoryVersionCreate) SetReason(v string) *CoreMemoryVersionCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *CoreMemoryVersionCreate) SetNillableReason(v *string) *CoreMemoryVersionCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CoreMemoryVersionCreate) SetCreatedAt(v time.Time) *CoreMemoryVersionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CoreMemoryVersionCreate) SetNillableCreatedAt(v *time.Time) *CoreMemoryVersionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CoreMemoryVersionCreate) SetID(v string) *CoreMemoryVersionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CoreMemoryVersionMutation object of the builder.
func (_c *CoreMemoryVersionCreate) Mutation() *CoreMemoryVersionMutation {
	return _c.mutation
}

// Save creates the CoreMemoryVersion in the database.
func (_c *CoreMemoryVersionCreate) Save(ctx context.Context) (*CoreMemoryVersion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CoreMemoryVersionCreate) SaveX(ctx context.Context) *CoreMemoryVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CoreMemoryVersionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CoreMemoryVersionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CoreMemoryVersionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := corememoryversion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CoreMemoryVersionCreate) check() error {
	if _, ok := _c.mutation.BlockID(); !ok {
		return &ValidationError{Name: "block_id", err: errors.New(`ent: missing required field "CoreMemoryVersion.block_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "CoreMemoryVersion.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := corememoryversion.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "CoreMemoryVersion.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "CoreMemoryVersion.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CoreMemoryVersion.created_at"`)}
	}
	return nil
}

func (_c *CoreMemoryVersionCreate) sqlSave(ctx context.Context) (*CoreMemoryVersion, error) {
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
			return nil, fmt.Errorf("unexpected CoreMemoryVersion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CoreMemoryVersionCreate) createSpec() (*CoreMemoryVersion, *sqlgraph.CreateSpec) {
	var (
		_node = &CoreMemoryVersion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(corememoryversion.Table, sqlgraph.NewFieldSpec(corememoryversion.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BlockID(); ok {
		_spec.SetField(corememoryversion.FieldBlockID, field.TypeString, value)
		_node.BlockID = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(corememoryversion.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(corememoryversion.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(corememoryversion.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(corememoryversion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CoreMemoryVersion.Create().
//		SetBlockID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CoreMemoryVersionUpsert) {
//			SetBlockID(v+v).
//		}).
//		Exec(ctx)
func (_c *CoreMemoryVersionCreate) OnConflict(opts ...sql.ConflictOption) *CoreMemoryVersionUpsertOne {
	_c.conflict = opts
	return &CoreMemoryVersionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CoreMemoryVersion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CoreMemoryVersionCreate) OnConflictColumns(columns ...string) *CoreMemoryVersionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CoreMemoryVersionUpsertOne{
		create: _c,
	}
}

type (
	// CoreMemoryVersionUpsertOne is the builder for "upsert"-ing
	//  one CoreMemoryVersion node.
	CoreMemoryVersionUpsertOne struct {
		create *CoreMemoryVersionCreate
	}

	// CoreMemoryVersionUpsert is the "OnConflict" setter.
	CoreMemoryVersionUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CoreMemoryVersion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(corememoryversion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CoreMemoryVersionUpsertOne) UpdateNewValues() *CoreMemoryVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(corememoryversion.FieldID)
		}
		if _, exists := u.create.mutation.BlockID(); exists {
			s.SetIgnore(corememoryversion.FieldBlockID)
		}
		if _, exists := u.create.mutation.Version(); exists {
			s.SetIgnore(corememoryversion.FieldVersion)
		}
		if _, exists := u.create.mutation.Content(); exists {
			s.SetIgnore(corememoryversion.FieldContent)
		}
		if _, exists := u.create.mutation.Reason(); exists {
			s.SetIgnore(corememoryversion.FieldReason)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(corememoryversion.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CoreMemoryVersion.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CoreMemoryVersionUpsertOne) Ignore() *CoreMemoryVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CoreMemoryVersionUpsertOne) DoNothing() *CoreMemoryVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CoreMemoryVersionCreate.OnConflict
// documentation for more info.
func (u *CoreMemoryVersionUpsertOne) Update(set func(*CoreMemoryVersionUpsert)) *CoreMemoryVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CoreMemoryVersionUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *CoreMemoryVersionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CoreMemoryVersionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CoreMemoryVersionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CoreMemoryVersionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CoreMemoryVersionUpsertOne.ID is not supported by MySQL driver. Use CoreMemoryVersionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CoreMemoryVersionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CoreMemoryVersionCreateBulk is the builder for creating many CoreMemoryVersion entities in bulk.
type CoreMemoryVersionCreateBulk struct {
	config
	err      error
	builders []*CoreMemoryVersionCreate
	conflict []sql.ConflictOption
}

// Save creates the CoreMemoryVersion entities in the database.
func (_c *CoreMemoryVersionCreateBulk) Save(ctx context.Context) ([]*CoreMemoryVersion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CoreMemoryVersion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CoreMemoryVersionMutation)
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
func (_c *CoreMemoryVersionCreateBulk) SaveX(ctx context.Context) []*CoreMemoryVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CoreMemoryVersionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CoreMemoryVersionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CoreMemoryVersion.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CoreMemoryVersionUpsert) {
//			SetBlockID(v+v).
//		}).
//		Exec(ctx)
func (_c *CoreMemoryVersionCreateBulk) OnConflict(opts ...sql.ConflictOption) *CoreMemoryVersionUpsertBulk {
	_c.conflict = opts
	return &CoreMemoryVersionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CoreMemoryVersion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CoreMemoryVersionCreateBulk) OnConflictColumns(columns ...string) *CoreMemoryVersionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CoreMemoryVersionUpsertBulk{
		create: _c,
	}
}

// CoreMemoryVersionUpsertBulk is the builder for "upsert"-ing
// a bulk of CoreMemoryVersion nodes.
type CoreMemoryVersionUpsertBulk struct {
	create *CoreMemoryVersionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CoreMemoryVersion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(corememoryversion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CoreMemoryVersionUpsertBulk) UpdateNewValues() *CoreMemoryVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(corememoryversion.FieldID)
			}
			if _, exists := b.mutation.BlockID(); exists {
				s.SetIgnore(corememoryversion.FieldBlockID)
			}
			if _, exists := b.mutation.Version(); exists {
				s.SetIgnore(corememoryversion.FieldVersion)
			}
			if _, exists := b.mutation.Content(); exists {
				s.SetIgnore(corememoryversion.FieldContent)
			}
			if _, exists := b.mutation.Reason(); exists {
				s.SetIgnore(corememoryversion.FieldReason)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(corememoryversion.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CoreMemoryVersion.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CoreMemoryVersionUpsertBulk) Ignore() *CoreMemoryVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CoreMemoryVersionUpsertBulk) DoNothing() *CoreMemoryVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CoreMemoryVersionCreateBulk.OnConflict
// documentation for more info.
func (u *CoreMemoryVersionUpsertBulk) Update(set func(*CoreMemoryVersionUpsert)) *CoreMemoryVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CoreMemoryVersionUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *CoreMemoryVersionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CoreMemoryVersionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CoreMemoryVersionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CoreMemoryVersionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
