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
	"github.com/kestrel-ai/kestrel/ent/mediumpresence"
)

// MediumPresenceCreate is the builder for creating a MediumPresence entity.
type MediumPresenceCreate struct {
	config
	mutation *MediumPresenceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetMedium sets the "medium" field.
func (_c *MediumPresenceCreate) SetMedium(v string) *MediumPresenceCreate {
	_c.mutation.SetMedium(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *MediumPresenceCreate) SetUserID(v string) *MediumPresenceCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *MediumPresenceCreate) SetStatus(v string) *MediumPresenceCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MediumPresenceCreate) SetNillableStatus(v *string) *MediumPresenceCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_c *MediumPresenceCreate) SetLastHeartbeat(v time.Time) *MediumPresenceCreate {
	_c.mutation.SetLastHeartbeat(v)
	return _c
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_c *MediumPresenceCreate) SetNillableLastHeartbeat(v *time.Time) *MediumPresenceCreate {
	if v != nil {
		_c.SetLastHeartbeat(*v)
	}
	return _c
}

// SetChannels sets the "channels" field.
func (_c *MediumPresenceCreate) SetChannels(v []map[string]interface{}) *MediumPresenceCreate {
	_c.mutation.SetChannels(v)
	return _c
}

// SetID sets the "id" field.
func (_c *MediumPresenceCreate) SetID(v string) *MediumPresenceCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MediumPresenceMutation object of the builder.
func (_c *MediumPresenceCreate) Mutation() *MediumPresenceMutation {
	return _c.mutation
}

// Save creates the MediumPresence in the database.
func (_c *MediumPresenceCreate) Save(ctx context.Context) (*MediumPresence, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MediumPresenceCreate) SaveX(ctx context.Context) *MediumPresence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MediumPresenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MediumPresenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MediumPresenceCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := mediumpresence.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.LastHeartbeat(); !ok {
		v := mediumpresence.DefaultLastHeartbeat()
		_c.mutation.SetLastHeartbeat(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MediumPresenceCreate) check() error {
	if _, ok := _c.mutation.Medium(); !ok {
		return &ValidationError{Name: "medium", err: errors.New(`ent: missing required field "MediumPresence.medium"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "MediumPresence.user_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "MediumPresence.status"`)}
	}
	if _, ok := _c.mutation.LastHeartbeat(); !ok {
		return &ValidationError{Name: "last_heartbeat", err: errors.New(`ent: missing required field "MediumPresence.last_heartbeat"`)}
	}
	return nil
}

func (_c *MediumPresenceCreate) sqlSave(ctx context.Context) (*MediumPresence, error) {
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
			return nil, fmt.Errorf("unexpected MediumPresence.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MediumPresenceCreate) createSpec() (*MediumPresence, *sqlgraph.CreateSpec) {
	var (
		_node = &MediumPresence{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mediumpresence.Table, sqlgraph.NewFieldSpec(mediumpresence.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Medium(); ok {
		_spec.SetField(mediumpresence.FieldMedium, field.TypeString, value)
		_node.Medium = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(mediumpresence.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(mediumpresence.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LastHeartbeat(); ok {
		_spec.SetField(mediumpresence.FieldLastHeartbeat, field.TypeTime, value)
		_node.LastHeartbeat = value
	}
	if value, ok := _c.mutation.Channels(); ok {
		_spec.SetField(mediumpresence.FieldChannels, field.TypeJSON, value)
		_node.Channels = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MediumPresence.Create().
//		SetMedium(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MediumPresenceUpsert) {
//			SetMedium(v+v).
//		}).
//		Exec(ctx)
func (_c *MediumPresenceCreate) OnConflict(opts ...sql.ConflictOption) *MediumPresenceUpsertOne {
	_c.conflict = opts
	return &MediumPresenceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MediumPresence.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MediumPresenceCreate) OnConflictColumns(columns ...string) *MediumPresenceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MediumPresenceUpsertOne{
		create: _c,
	}
}

type (
	// MediumPresenceUpsertOne is the builder for "upsert"-ing
	//  one MediumPresence node.
	MediumPresenceUpsertOne struct {
		create *MediumPresenceCreate
	}

	// MediumPresenceUpsert is the "OnConflict" setter.
	MediumPresenceUpsert struct {
		*sql.UpdateSet
	}
)

// SetMedium sets the "medium" field.
func (u *MediumPresenceUpsert) SetMedium(v string) *MediumPresenceUpsert {
	u.Set(mediumpresence.FieldMedium, v)
	return u
}

// UpdateMedium sets the "medium" field to the value that was provided on create.
func (u *MediumPresenceUpsert) UpdateMedium() *MediumPresenceUpsert {
	u.SetExcluded(mediumpresence.FieldMedium)
	return u
}

// SetUserID sets the "user_id" field.
func (u *MediumPresenceUpsert) SetUserID(v string) *MediumPresenceUpsert {
	u.Set(mediumpresence.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *MediumPresenceUpsert) UpdateUserID() *MediumPresenceUpsert {
	u.SetExcluded(mediumpresence.FieldUserID)
	return u
}

// SetStatus sets the "status" field.
func (u *MediumPresenceUpsert) SetStatus(v string) *MediumPresenceUpsert {
	u.Set(mediumpresence.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MediumPresenceUpsert) UpdateStatus() *MediumPresenceUpsert {
	u.SetExcluded(mediumpresence.FieldStatus)
	return u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (u *MediumPresenceUpsert) SetLastHeartbeat(v time.Time) *MediumPresenceUpsert {
	u.Set(mediumpresence.FieldLastHeartbeat, v)
	return u
}

// UpdateLastHeartbeat sets the "last_heartbeat" field to the value that was provided on create.
func (u *MediumPresenceUpsert) UpdateLastHeartbeat() *MediumPresenceUpsert {
	u.SetExcluded(mediumpresence.FieldLastHeartbeat)
	return u
}

// SetChannels sets the "channels" field.
func (u *MediumPresenceUpsert) SetChannels(v []map[string]interface{}) *MediumPresenceUpsert {
	u.Set(mediumpresence.FieldChannels, v)
	return u
}

// UpdateChannels sets the "channels" field to the value that was provided on create.
func (u *MediumPresenceUpsert) UpdateChannels() *MediumPresenceUpsert {
	u.SetExcluded(mediumpresence.FieldChannels)
	return u
}

// ClearChannels clears the value of the "channels" field.
func (u *MediumPresenceUpsert) ClearChannels() *MediumPresenceUpsert {
	u.SetNull(mediumpresence.FieldChannels)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MediumPresence.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mediumpresence.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MediumPresenceUpsertOne) UpdateNewValues() *MediumPresenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(mediumpresence.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MediumPresence.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MediumPresenceUpsertOne) Ignore() *MediumPresenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MediumPresenceUpsertOne) DoNothing() *MediumPresenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MediumPresenceCreate.OnConflict
// documentation for more info.
func (u *MediumPresenceUpsertOne) Update(set func(*MediumPresenceUpsert)) *MediumPresenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MediumPresenceUpsert{UpdateSet: update})
	}))
	return u
}

// SetMedium sets the "medium" field.
func (u *MediumPresenceUpsertOne) SetMedium(v string) *MediumPresenceUpsertOne {
	return u.Update(func(s *MediumPresenceUpsert) {
		s.SetMedium(v)
	})
}

// UpdateMedium sets the "medium" field to the value that was provided on create.
func (u *MediumPresenceUpsertOne) UpdateMedium() *MediumPresenceUpsertOne {
	return u.Update(func(s *MediumPresenceUpsert) {
		s.UpdateMedium()
	})
}

// SetUserID sets the "user_id" field.
func (u *MediumPresenceUpsertOne) SetUserID(v string) *MediumPresenceUpsertOne {
	return u.Update(func(s *MediumPresenceUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *MediumPresenceUpsertOne) UpdateUserID() *MediumPresenceUpsertOne {
	return u.Update(func(s *MediumPresenceUpsert) {
		s.UpdateUserID()
	})
}

// SetStatus sets the "status" field.
func (u *MediumPresenceUpsertOne) SetStatus(v string) *MediumPresenceUpsertOne {
	return u.Update(func(s *MediumPresenceUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MediumPresenceUpsertOne) UpdateStatus() *MediumPresenceUpsertOne {
	return u.Update(func(s *MediumPresenceUpsert) {
		s.UpdateStatus()
	})
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (u *MediumPresenceUpsertOne) SetLastHeartbeat(v time.Time) *MediumPresenceUpsertOne {
	return u.Update(func(s *MediumPresenceUpsert) {
		s.SetLastHeartbeat(v)
	})
}

// UpdateLastHeartbeat sets the "last_heartbeat" field to the value that was provided on create.
func (u *MediumPresenceUpsertOne) UpdateLastHeartbeat() *MediumPresenceUpsertOne {
	return u.Update(func(s *MediumPresenceUpsert) {
		s.UpdateLastHeartbeat()
	})
}

// SetChannels sets the "channels" field.
func (u *MediumPresenceUpsertOne) SetChannels(v []map[string]interface{}) *MediumPresenceUpsertOne {
	return u.Update(func(s *MediumPresenceUpsert) {
		s.SetChannels(v)
	})
}

// UpdateChannels sets the "channels" field to the value that was provided on create.
func (u *MediumPresenceUpsertOne) UpdateChannels() *MediumPresenceUpsertOne {
	return u.Update(func(s *MediumPresenceUpsert) {
		s.UpdateChannels()
	})
}

// ClearChannels clears the value of the "channels" field.
func (u *MediumPresenceUpsertOne) ClearChannels() *MediumPresenceUpsertOne {
	return u.Update(func(s *MediumPresenceUpsert) {
		s.ClearChannels()
	})
}

// Exec executes the query.
func (u *MediumPresenceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MediumPresenceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MediumPresenceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MediumPresenceUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MediumPresenceUpsertOne.ID is not supported by MySQL driver. Use MediumPresenceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MediumPresenceUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MediumPresenceCreateBulk is the builder for creating many MediumPresence entities in bulk.
type MediumPresenceCreateBulk struct {
	config
	err      error
	builders []*MediumPresenceCreate
	conflict []sql.ConflictOption
}

// Save creates the MediumPresence entities in the database.
func (_c *MediumPresenceCreateBulk) Save(ctx context.Context) ([]*MediumPresence, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MediumPresence, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MediumPresenceMutation)
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
func (_c *MediumPresenceCreateBulk) SaveX(ctx context.Context) []*MediumPresence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MediumPresenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MediumPresenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MediumPresence.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MediumPresenceUpsert) {
//			SetMedium(v+v).
//		}).
//		Exec(ctx)
func (_c *MediumPresenceCreateBulk) OnConflict(opts ...sql.ConflictOption) *MediumPresenceUpsertBulk {
	_c.conflict = opts
	return &MediumPresenceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MediumPresence.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MediumPresenceCreateBulk) OnConflictColumns(columns ...string) *MediumPresenceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MediumPresenceUpsertBulk{
		create: _c,
	}
}

// MediumPresenceUpsertBulk is the builder for "upsert"-ing
// a bulk of MediumPresence nodes.
type MediumPresenceUpsertBulk struct {
	create *MediumPresenceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MediumPresence.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mediumpresence.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MediumPresenceUpsertBulk) UpdateNewValues() *MediumPresenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(mediumpresence.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MediumPresence.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MediumPresenceUpsertBulk) Ignore() *MediumPresenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MediumPresenceUpsertBulk) DoNothing() *MediumPresenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MediumPresenceCreateBulk.OnConflict
// documentation for more info.
func (u *MediumPresenceUpsertBulk) Update(set func(*MediumPresenceUpsert)) *MediumPresenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MediumPresenceUpsert{UpdateSet: update})
	}))
	return u
}

// SetMedium sets the "medium" field.
func (u *MediumPresenceUpsertBulk) SetMedium(v string) *MediumPresenceUpsertBulk {
	return u.Update(func(s *MediumPresenceUpsert) {
		s.SetMedium(v)
	})
}

// UpdateMedium sets the "medium" field to the value that was provided on create.
func (u *MediumPresenceUpsertBulk) UpdateMedium() *MediumPresenceUpsertBulk {
	return u.Update(func(s *MediumPresenceUpsert) {
		s.UpdateMedium()
	})
}

// SetUserID sets the "user_id" field.
func (u *MediumPresenceUpsertBulk) SetUserID(v string) *MediumPresenceUpsertBulk {
	return u.Update(func(s *MediumPresenceUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *MediumPresenceUpsertBulk) UpdateUserID() *MediumPresenceUpsertBulk {
	return u.Update(func(s *MediumPresenceUpsert) {
		s.UpdateUserID()
	})
}

// SetStatus sets the "status" field.
func (u *MediumPresenceUpsertBulk) SetStatus(v string) *MediumPresenceUpsertBulk {
	return u.Update(func(s *MediumPresenceUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MediumPresenceUpsertBulk) UpdateStatus() *MediumPresenceUpsertBulk {
	return u.Update(func(s *MediumPresenceUpsert) {
		s.UpdateStatus()
	})
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (u *MediumPresenceUpsertBulk) SetLastHeartbeat(v time.Time) *MediumPresenceUpsertBulk {
	return u.Update(func(s *MediumPresenceUpsert) {
		s.SetLastHeartbeat(v)
	})
}

// UpdateLastHeartbeat sets the "last_heartbeat" field to the value that was provided on create.
func (u *MediumPresenceUpsertBulk) UpdateLastHeartbeat() *MediumPresenceUpsertBulk {
	return u.Update(func(s *MediumPresenceUpsert) {
		s.UpdateLastHeartbeat()
	})
}

// SetChannels sets the "channels" field.
func (u *MediumPresenceUpsertBulk) SetChannels(v []map[string]interface{}) *MediumPresenceUpsertBulk {
	return u.Update(func(s *MediumPresenceUpsert) {
		s.SetChannels(v)
	})
}

// UpdateChannels sets the "channels" field to the value that was provided on create.
func (u *MediumPresenceUpsertBulk) UpdateChannels() *MediumPresenceUpsertBulk {
	return u.Update(func(s *MediumPresenceUpsert) {
		s.UpdateChannels()
	})
}

// ClearChannels clears the value of the "channels" field.
func (u *MediumPresenceUpsertBulk) ClearChannels() *MediumPresenceUpsertBulk {
	return u.Update(func(s *MediumPresenceUpsert) {
		s.ClearChannels()
	})
}

// Exec executes the query.
func (u *MediumPresenceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MediumPresenceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MediumPresenceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MediumPresenceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
