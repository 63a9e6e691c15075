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
	"github.com/kestrel-ai/kestrel/ent/daemonstate"
)

// DaemonStateCreate is the builder for creating a DaemonState entity.
type DaemonStateCreate struct {
	config
	mutation *DaemonStateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSuppressedUntil sets the "suppressed_until" field.
func (_c *DaemonStateCreate) SetSuppressedUntil(v time.Time) *DaemonStateCreate {
	_c.mutation.SetSuppressedUntil(v)
	return _c
}

// SetNillableSuppressedUntil sets the "suppressed_until" field if the given value is not nil.
func (_c *DaemonStateCreate) SetNillableSuppressedUntil(v *time.Time) *DaemonStateCreate {
	if v != nil {
		_c.SetSuppressedUntil(*v)
	}
	return _c
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_c *DaemonStateCreate) SetLastInteractionAt(v time.Time) *DaemonStateCreate {
	_c.mutation.SetLastInteractionAt(v)
	return _c
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_c *DaemonStateCreate) SetNillableLastInteractionAt(v *time.Time) *DaemonStateCreate {
	if v != nil {
		_c.SetLastInteractionAt(*v)
	}
	return _c
}

// SetLastProactiveContactAt sets the "last_proactive_contact_at" field.
func (_c *DaemonStateCreate) SetLastProactiveContactAt(v time.Time) *DaemonStateCreate {
	_c.mutation.SetLastProactiveContactAt(v)
	return _c
}

// SetNillableLastProactiveContactAt sets the "last_proactive_contact_at" field if the given value is not nil.
func (_c *DaemonStateCreate) SetNillableLastProactiveContactAt(v *time.Time) *DaemonStateCreate {
	if v != nil {
		_c.SetLastProactiveContactAt(*v)
	}
	return _c
}

// SetAutonomousWorkCount sets the "autonomous_work_count" field.
func (_c *DaemonStateCreate) SetAutonomousWorkCount(v int) *DaemonStateCreate {
	_c.mutation.SetAutonomousWorkCount(v)
	return _c
}

// SetNillableAutonomousWorkCount sets the "autonomous_work_count" field if the given value is not nil.
func (_c *DaemonStateCreate) SetNillableAutonomousWorkCount(v *int) *DaemonStateCreate {
	if v != nil {
		_c.SetAutonomousWorkCount(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DaemonStateCreate) SetUpdatedAt(v time.Time) *DaemonStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DaemonStateCreate) SetNillableUpdatedAt(v *time.Time) *DaemonStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DaemonStateCreate) SetID(v string) *DaemonStateCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DaemonStateMutation object of the builder.
func (_c *DaemonStateCreate) Mutation() *DaemonStateMutation {
	return _c.mutation
}

// Save creates the DaemonState in the database.
func (_c *DaemonStateCreate) Save(ctx context.Context) (*DaemonState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DaemonStateCreate) SaveX(ctx context.Context) *DaemonState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DaemonStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DaemonStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DaemonStateCreate) defaults() {
	if _, ok := _c.mutation.AutonomousWorkCount(); !ok {
		v := daemonstate.DefaultAutonomousWorkCount
		_c.mutation.SetAutonomousWorkCount(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := daemonstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DaemonStateCreate) check() error {
	if _, ok := _c.mutation.AutonomousWorkCount(); !ok {
		return &ValidationError{Name: "autonomous_work_count", err: errors.New(`ent: missing required field "DaemonState.autonomous_work_count"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DaemonState.updated_at"`)}
	}
	return nil
}

func (_c *DaemonStateCreate) sqlSave(ctx context.Context) (*DaemonState, error) {
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
			return nil, fmt.Errorf("unexpected DaemonState.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DaemonStateCreate) createSpec() (*DaemonState, *sqlgraph.CreateSpec) {
	var (
		_node = &DaemonState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(daemonstate.Table, sqlgraph.NewFieldSpec(daemonstate.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SuppressedUntil(); ok {
		_spec.SetField(daemonstate.FieldSuppressedUntil, field.TypeTime, value)
		_node.SuppressedUntil = &value
	}
	if value, ok := _c.mutation.LastInteractionAt(); ok {
		_spec.SetField(daemonstate.FieldLastInteractionAt, field.TypeTime, value)
		_node.LastInteractionAt = &value
	}
	if value, ok := _c.mutation.LastProactiveContactAt(); ok {
		_spec.SetField(daemonstate.FieldLastProactiveContactAt, field.TypeTime, value)
		_node.LastProactiveContactAt = &value
	}
	if value, ok := _c.mutation.AutonomousWorkCount(); ok {
		_spec.SetField(daemonstate.FieldAutonomousWorkCount, field.TypeInt, value)
		_node.AutonomousWorkCount = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(daemonstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DaemonState.Create().
//		SetSuppressedUntil(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DaemonStateUpsert) {
//			SetSuppressedUntil(v+v).
//		}).
//		Exec(ctx)
func (_c *DaemonStateCreate) OnConflict(opts ...sql.ConflictOption) *DaemonStateUpsertOne {
	_c.conflict = opts
	return &DaemonStateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DaemonState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DaemonStateCreate) OnConflictColumns(columns ...string) *DaemonStateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DaemonStateUpsertOne{
		create: _c,
	}
}

type (
	// DaemonStateUpsertOne is the builder for "upsert"-ing
	//  one DaemonState node.
	DaemonStateUpsertOne struct {
		create *DaemonStateCreate
	}

	// DaemonStateUpsert is the "OnConflict" setter.
	DaemonStateUpsert struct {
		*sql.UpdateSet
	}
)

// SetSuppressedUntil sets the "suppressed_until" field.
func (u *DaemonStateUpsert) SetSuppressedUntil(v time.Time) *DaemonStateUpsert {
	u.Set(daemonstate.FieldSuppressedUntil, v)
	return u
}

// UpdateSuppressedUntil sets the "suppressed_until" field to the value that was provided on create.
func (u *DaemonStateUpsert) UpdateSuppressedUntil() *DaemonStateUpsert {
	u.SetExcluded(daemonstate.FieldSuppressedUntil)
	return u
}

// ClearSuppressedUntil clears the value of the "suppressed_until" field.
func (u *DaemonStateUpsert) ClearSuppressedUntil() *DaemonStateUpsert {
	u.SetNull(daemonstate.FieldSuppressedUntil)
	return u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *DaemonStateUpsert) SetLastInteractionAt(v time.Time) *DaemonStateUpsert {
	u.Set(daemonstate.FieldLastInteractionAt, v)
	return u
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *DaemonStateUpsert) UpdateLastInteractionAt() *DaemonStateUpsert {
	u.SetExcluded(daemonstate.FieldLastInteractionAt)
	return u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *DaemonStateUpsert) ClearLastInteractionAt() *DaemonStateUpsert {
	u.SetNull(daemonstate.FieldLastInteractionAt)
	return u
}

// SetLastProactiveContactAt sets the "last_proactive_contact_at" field.
func (u *DaemonStateUpsert) SetLastProactiveContactAt(v time.Time) *DaemonStateUpsert {
	u.Set(daemonstate.FieldLastProactiveContactAt, v)
	return u
}

// UpdateLastProactiveContactAt sets the "last_proactive_contact_at" field to the value that was provided on create.
func (u *DaemonStateUpsert) UpdateLastProactiveContactAt() *DaemonStateUpsert {
	u.SetExcluded(daemonstate.FieldLastProactiveContactAt)
	return u
}

// ClearLastProactiveContactAt clears the value of the "last_proactive_contact_at" field.
func (u *DaemonStateUpsert) ClearLastProactiveContactAt() *DaemonStateUpsert {
	u.SetNull(daemonstate.FieldLastProactiveContactAt)
	return u
}

// SetAutonomousWorkCount sets the "autonomous_work_count" field.
func (u *DaemonStateUpsert) SetAutonomousWorkCount(v int) *DaemonStateUpsert {
	u.Set(daemonstate.FieldAutonomousWorkCount, v)
	return u
}

// UpdateAutonomousWorkCount sets the "autonomous_work_count" field to the value that was provided on create.
func (u *DaemonStateUpsert) UpdateAutonomousWorkCount() *DaemonStateUpsert {
	u.SetExcluded(daemonstate.FieldAutonomousWorkCount)
	return u
}

// AddAutonomousWorkCount adds v to the "autonomous_work_count" field.
func (u *DaemonStateUpsert) AddAutonomousWorkCount(v int) *DaemonStateUpsert {
	u.Add(daemonstate.FieldAutonomousWorkCount, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DaemonStateUpsert) SetUpdatedAt(v time.Time) *DaemonStateUpsert {
	u.Set(daemonstate.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DaemonStateUpsert) UpdateUpdatedAt() *DaemonStateUpsert {
	u.SetExcluded(daemonstate.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DaemonState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(daemonstate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DaemonStateUpsertOne) UpdateNewValues() *DaemonStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(daemonstate.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DaemonState.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DaemonStateUpsertOne) Ignore() *DaemonStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DaemonStateUpsertOne) DoNothing() *DaemonStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DaemonStateCreate.OnConflict
// documentation for more info.
func (u *DaemonStateUpsertOne) Update(set func(*DaemonStateUpsert)) *DaemonStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DaemonStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetSuppressedUntil sets the "suppressed_until" field.
func (u *DaemonStateUpsertOne) SetSuppressedUntil(v time.Time) *DaemonStateUpsertOne {
	return u.Update(func(s *DaemonStateUpsert) {
		s.SetSuppressedUntil(v)
	})
}

// UpdateSuppressedUntil sets the "suppressed_until" field to the value that was provided on create.
func (u *DaemonStateUpsertOne) UpdateSuppressedUntil() *DaemonStateUpsertOne {
	return u.Update(func(s *DaemonStateUpsert) {
		s.UpdateSuppressedUntil()
	})
}

// ClearSuppressedUntil clears the value of the "suppressed_until" field.
func (u *DaemonStateUpsertOne) ClearSuppressedUntil() *DaemonStateUpsertOne {
	return u.Update(func(s *DaemonStateUpsert) {
		s.ClearSuppressedUntil()
	})
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *DaemonStateUpsertOne) SetLastInteractionAt(v time.Time) *DaemonStateUpsertOne {
	return u.Update(func(s *DaemonStateUpsert) {
		s.SetLastInteractionAt(v)
	})
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *DaemonStateUpsertOne) UpdateLastInteractionAt() *DaemonStateUpsertOne {
	return u.Update(func(s *DaemonStateUpsert) {
		s.UpdateLastInteractionAt()
	})
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *DaemonStateUpsertOne) ClearLastInteractionAt() *DaemonStateUpsertOne {
	return u.Update(func(s *DaemonStateUpsert) {
		s.ClearLastInteractionAt()
	})
}

// SetLastProactiveContactAt sets the "last_proactive_contact_at" field.
func (u *DaemonStateUpsertOne) SetLastProactiveContactAt(v time.Time) *DaemonStateUpsertOne {
	return u.Update(func(s *DaemonStateUpsert) {
		s.SetLastProactiveContactAt(v)
	})
}

// UpdateLastProactiveContactAt sets the "last_proactive_contact_at" field to the value that was provided on create.
func (u *DaemonStateUpsertOne) UpdateLastProactiveContactAt() *DaemonStateUpsertOne {
	return u.Update(func(s *DaemonStateUpsert) {
		s.UpdateLastProactiveContactAt()
	})
}

// ClearLastProactiveContactAt clears the value of the "last_proactive_contact_at" field.
func (u *DaemonStateUpsertOne) ClearLastProactiveContactAt() *DaemonStateUpsertOne {
	return u.Update(func(s *DaemonStateUpsert) {
		s.ClearLastProactiveContactAt()
	})
}

// SetAutonomousWorkCount sets the "autonomous_work_count" field.
func (u *DaemonStateUpsertOne) SetAutonomousWorkCount(v int) *DaemonStateUpsertOne {
	return u.Update(func(s *DaemonStateUpsert) {
		s.SetAutonomousWorkCount(v)
	})
}

// AddAutonomousWorkCount adds v to the "autonomous_work_count" field.
func (u *DaemonStateUpsertOne) AddAutonomousWorkCount(v int) *DaemonStateUpsertOne {
	return u.Update(func(s *DaemonStateUpsert) {
		s.AddAutonomousWorkCount(v)
	})
}

// UpdateAutonomousWorkCount sets the "autonomous_work_count" field to the value that was provided on create.
func (u *DaemonStateUpsertOne) UpdateAutonomousWorkCount() *DaemonStateUpsertOne {
	return u.Update(func(s *DaemonStateUpsert) {
		s.UpdateAutonomousWorkCount()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DaemonStateUpsertOne) SetUpdatedAt(v time.Time) *DaemonStateUpsertOne {
	return u.Update(func(s *DaemonStateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DaemonStateUpsertOne) UpdateUpdatedAt() *DaemonStateUpsertOne {
	return u.Update(func(s *DaemonStateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DaemonStateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DaemonStateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DaemonStateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DaemonStateUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DaemonStateUpsertOne.ID is not supported by MySQL driver. Use DaemonStateUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DaemonStateUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DaemonStateCreateBulk is the builder for creating many DaemonState entities in bulk.
type DaemonStateCreateBulk struct {
	config
	err      error
	builders []*DaemonStateCreate
	conflict []sql.ConflictOption
}

// Save creates the DaemonState entities in the database.
func (_c *DaemonStateCreateBulk) Save(ctx context.Context) ([]*DaemonState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DaemonState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DaemonStateMutation)
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
func (_c *DaemonStateCreateBulk) SaveX(ctx context.Context) []*DaemonState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DaemonStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DaemonStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DaemonState.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DaemonStateUpsert) {
//			SetSuppressedUntil(v+v).
//		}).
//		Exec(ctx)
func (_c *DaemonStateCreateBulk) OnConflict(opts ...sql.ConflictOption) *DaemonStateUpsertBulk {
	_c.conflict = opts
	return &DaemonStateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DaemonState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DaemonStateCreateBulk) OnConflictColumns(columns ...string) *DaemonStateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DaemonStateUpsertBulk{
		create: _c,
	}
}

// DaemonStateUpsertBulk is the builder for "upsert"-ing
// a bulk of DaemonState nodes.
type DaemonStateUpsertBulk struct {
	create *DaemonStateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DaemonState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(daemonstate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DaemonStateUpsertBulk) UpdateNewValues() *DaemonStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(daemonstate.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DaemonState.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DaemonStateUpsertBulk) Ignore() *DaemonStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DaemonStateUpsertBulk) DoNothing() *DaemonStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DaemonStateCreateBulk.OnConflict
// documentation for more info.
func (u *DaemonStateUpsertBulk) Update(set func(*DaemonStateUpsert)) *DaemonStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DaemonStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetSuppressedUntil sets the "suppressed_until" field.
func (u *DaemonStateUpsertBulk) SetSuppressedUntil(v time.Time) *DaemonStateUpsertBulk {
	return u.Update(func(s *DaemonStateUpsert) {
		s.SetSuppressedUntil(v)
	})
}

// UpdateSuppressedUntil sets the "suppressed_until" field to the value that was provided on create.
func (u *DaemonStateUpsertBulk) UpdateSuppressedUntil() *DaemonStateUpsertBulk {
	return u.Update(func(s *DaemonStateUpsert) {
		s.UpdateSuppressedUntil()
	})
}

// ClearSuppressedUntil clears the value of the "suppressed_until" field.
func (u *DaemonStateUpsertBulk) ClearSuppressedUntil() *DaemonStateUpsertBulk {
	return u.Update(func(s *DaemonStateUpsert) {
		s.ClearSuppressedUntil()
	})
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *DaemonStateUpsertBulk) SetLastInteractionAt(v time.Time) *DaemonStateUpsertBulk {
	return u.Update(func(s *DaemonStateUpsert) {
		s.SetLastInteractionAt(v)
	})
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *DaemonStateUpsertBulk) UpdateLastInteractionAt() *DaemonStateUpsertBulk {
	return u.Update(func(s *DaemonStateUpsert) {
		s.UpdateLastInteractionAt()
	})
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *DaemonStateUpsertBulk) ClearLastInteractionAt() *DaemonStateUpsertBulk {
	return u.Update(func(s *DaemonStateUpsert) {
		s.ClearLastInteractionAt()
	})
}

// SetLastProactiveContactAt sets the "last_proactive_contact_at" field.
func (u *DaemonStateUpsertBulk) SetLastProactiveContactAt(v time.Time) *DaemonStateUpsertBulk {
	return u.Update(func(s *DaemonStateUpsert) {
		s.SetLastProactiveContactAt(v)
	})
}

// UpdateLastProactiveContactAt sets the "last_proactive_contact_at" field to the value that was provided on create.
func (u *DaemonStateUpsertBulk) UpdateLastProactiveContactAt() *DaemonStateUpsertBulk {
	return u.Update(func(s *DaemonStateUpsert) {
		s.UpdateLastProactiveContactAt()
	})
}

// ClearLastProactiveContactAt clears the value of the "last_proactive_contact_at" field.
func (u *DaemonStateUpsertBulk) ClearLastProactiveContactAt() *DaemonStateUpsertBulk {
	return u.Update(func(s *DaemonStateUpsert) {
		s.ClearLastProactiveContactAt()
	})
}

// SetAutonomousWorkCount sets the "autonomous_work_count" field.
func (u *DaemonStateUpsertBulk) SetAutonomousWorkCount(v int) *DaemonStateUpsertBulk {
	return u.Update(func(s *DaemonStateUpsert) {
		s.SetAutonomousWorkCount(v)
	})
}

// AddAutonomousWorkCount adds v to the "autonomous_work_count" field.
func (u *DaemonStateUpsertBulk) AddAutonomousWorkCount(v int) *DaemonStateUpsertBulk {
	return u.Update(func(s *DaemonStateUpsert) {
		s.AddAutonomousWorkCount(v)
	})
}

// UpdateAutonomousWorkCount sets the "autonomous_work_count" field to the value that was provided on create.
func (u *DaemonStateUpsertBulk) UpdateAutonomousWorkCount() *DaemonStateUpsertBulk {
	return u.Update(func(s *DaemonStateUpsert) {
		s.UpdateAutonomousWorkCount()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DaemonStateUpsertBulk) SetUpdatedAt(v time.Time) *DaemonStateUpsertBulk {
	return u.Update(func(s *DaemonStateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DaemonStateUpsertBulk) UpdateUpdatedAt() *DaemonStateUpsertBulk {
	return u.Update(func(s *DaemonStateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DaemonStateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DaemonStateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DaemonStateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DaemonStateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
