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
	"github.com/kestrel-ai/kestrel/ent/surfacedfinding"
)

// SurfacedFindingCreate is the builder for creating a SurfacedFinding entity.
type SurfacedFindingCreate struct {
	config
	mutation *SurfacedFindingMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetFindingID sets the "finding_id" field.
func (_c *SurfacedFindingCreate) SetFindingID(v string) *SurfacedFindingCreate {
	_c.mutation.SetFindingID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SurfacedFindingCreate) SetSessionID(v string) *SurfacedFindingCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SurfacedFindingCreate) SetCreatedAt(v time.Time) *SurfacedFindingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SurfacedFindingCreate) SetNillableCreatedAt(v *time.Time) *SurfacedFindingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SurfacedFindingCreate) SetID(v string) *SurfacedFindingCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SurfacedFindingMutation object of the builder.
func (_c *SurfacedFindingCreate) Mutation() *SurfacedFindingMutation {
	return _c.mutation
}

// Save creates the SurfacedFinding in the database.
func (_c *SurfacedFindingCreate) Save(ctx context.Context) (*SurfacedFinding, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SurfacedFindingCreate) SaveX(ctx context.Context) *SurfacedFinding {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SurfacedFindingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SurfacedFindingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SurfacedFindingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := surfacedfinding.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SurfacedFindingCreate) check() error {
	if _, ok := _c.mutation.FindingID(); !ok {
		return &ValidationError{Name: "finding_id", err: errors.New(`ent: missing required field "SurfacedFinding.finding_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SurfacedFinding.session_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SurfacedFinding.created_at"`)}
	}
	return nil
}

func (_c *SurfacedFindingCreate) sqlSave(ctx context.Context) (*SurfacedFinding, error) {
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
			return nil, fmt.Errorf("unexpected SurfacedFinding.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SurfacedFindingCreate) createSpec() (*SurfacedFinding, *sqlgraph.CreateSpec) {
	var (
		_node = &SurfacedFinding{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(surfacedfinding.Table, sqlgraph.NewFieldSpec(surfacedfinding.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.FindingID(); ok {
		_spec.SetField(surfacedfinding.FieldFindingID, field.TypeString, value)
		_node.FindingID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(surfacedfinding.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(surfacedfinding.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SurfacedFinding.Create().
//		SetFindingID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SurfacedFindingUpsert) {
//			SetFindingID(v+v).
//		}).
//		Exec(ctx)
func (_c *SurfacedFindingCreate) OnConflict(opts ...sql.ConflictOption) *SurfacedFindingUpsertOne {
	_c.conflict = opts
	return &SurfacedFindingUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SurfacedFinding.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SurfacedFindingCreate) OnConflictColumns(columns ...string) *SurfacedFindingUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SurfacedFindingUpsertOne{
		create: _c,
	}
}

type (
	// SurfacedFindingUpsertOne is the builder for "upsert"-ing
	//  one SurfacedFinding node.
	SurfacedFindingUpsertOne struct {
		create *SurfacedFindingCreate
	}

	// SurfacedFindingUpsert is the "OnConflict" setter.
	SurfacedFindingUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SurfacedFinding.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(surfacedfinding.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SurfacedFindingUpsertOne) UpdateNewValues() *SurfacedFindingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(surfacedfinding.FieldID)
		}
		if _, exists := u.create.mutation.FindingID(); exists {
			s.SetIgnore(surfacedfinding.FieldFindingID)
		}
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(surfacedfinding.FieldSessionID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(surfacedfinding.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SurfacedFinding.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SurfacedFindingUpsertOne) Ignore() *SurfacedFindingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SurfacedFindingUpsertOne) DoNothing() *SurfacedFindingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SurfacedFindingCreate.OnConflict
// documentation for more info.
func (u *SurfacedFindingUpsertOne) Update(set func(*SurfacedFindingUpsert)) *SurfacedFindingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SurfacedFindingUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *SurfacedFindingUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SurfacedFindingCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SurfacedFindingUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SurfacedFindingUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SurfacedFindingUpsertOne.ID is not supported by MySQL driver. Use SurfacedFindingUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SurfacedFindingUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SurfacedFindingCreateBulk is the builder for creating many SurfacedFinding entities in bulk.
type SurfacedFindingCreateBulk struct {
	config
	err      error
	builders []*SurfacedFindingCreate
	conflict []sql.ConflictOption
}

// Save creates the SurfacedFinding entities in the database.
func (_c *SurfacedFindingCreateBulk) Save(ctx context.Context) ([]*SurfacedFinding, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SurfacedFinding, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SurfacedFindingMutation)
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
func (_c *SurfacedFindingCreateBulk) SaveX(ctx context.Context) []*SurfacedFinding {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SurfacedFindingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SurfacedFindingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SurfacedFinding.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SurfacedFindingUpsert) {
//			SetFindingID(v+v).
//		}).
//		Exec(ctx)
func (_c *SurfacedFindingCreateBulk) OnConflict(opts ...sql.ConflictOption) *SurfacedFindingUpsertBulk {
	_c.conflict = opts
	return &SurfacedFindingUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SurfacedFinding.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SurfacedFindingCreateBulk) OnConflictColumns(columns ...string) *SurfacedFindingUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SurfacedFindingUpsertBulk{
		create: _c,
	}
}

// SurfacedFindingUpsertBulk is the builder for "upsert"-ing
// a bulk of SurfacedFinding nodes.
type SurfacedFindingUpsertBulk struct {
	create *SurfacedFindingCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SurfacedFinding.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(surfacedfinding.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SurfacedFindingUpsertBulk) UpdateNewValues() *SurfacedFindingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(surfacedfinding.FieldID)
			}
			if _, exists := b.mutation.FindingID(); exists {
				s.SetIgnore(surfacedfinding.FieldFindingID)
			}
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(surfacedfinding.FieldSessionID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(surfacedfinding.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SurfacedFinding.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SurfacedFindingUpsertBulk) Ignore() *SurfacedFindingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SurfacedFindingUpsertBulk) DoNothing() *SurfacedFindingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SurfacedFindingCreateBulk.OnConflict
// documentation for more info.
func (u *SurfacedFindingUpsertBulk) Update(set func(*SurfacedFindingUpsert)) *SurfacedFindingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SurfacedFindingUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *SurfacedFindingUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SurfacedFindingCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SurfacedFindingCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SurfacedFindingUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
