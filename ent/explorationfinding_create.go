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
	"github.com/kestrel-ai/kestrel/ent/explorationfinding"
)

// ExplorationFindingCreate is the builder for creating a ExplorationFinding entity.
type ExplorationFindingCreate struct {
	config
	mutation *ExplorationFindingMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *ExplorationFindingCreate) SetTaskID(v string) *ExplorationFindingCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetFinding sets the "finding" field.
func (_c *ExplorationFindingCreate) SetFinding(v string) *ExplorationFindingCreate {
	_c.mutation.SetFinding(v)
	return _c
}

// SetSourceContext sets the "source_context" field.
func (_c *ExplorationFindingCreate) SetSourceContext(v string) *ExplorationFindingCreate {
	_c.mutation.SetSourceContext(v)
	return _c
}

// SetNillableSourceContext sets the "source_context" field if the given value is not nil.
func (_c *ExplorationFindingCreate) SetNillableSourceContext(v *string) *ExplorationFindingCreate {
	if v != nil {
		_c.SetSourceContext(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ExplorationFindingCreate) SetConfidence(v float64) *ExplorationFindingCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ExplorationFindingCreate) SetNillableConfidence(v *float64) *ExplorationFindingCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetWorthSharing sets the "worth_sharing" field.
func (_c *ExplorationFindingCreate) SetWorthSharing(v bool) *ExplorationFindingCreate {
	_c.mutation.SetWorthSharing(v)
	return _c
}

// SetNillableWorthSharing sets the "worth_sharing" field if the given value is not nil.
func (_c *ExplorationFindingCreate) SetNillableWorthSharing(v *bool) *ExplorationFindingCreate {
	if v != nil {
		_c.SetWorthSharing(*v)
	}
	return _c
}

// SetShareMessage sets the "share_message" field.
func (_c *ExplorationFindingCreate) SetShareMessage(v string) *ExplorationFindingCreate {
	_c.mutation.SetShareMessage(v)
	return _c
}

// SetNillableShareMessage sets the "share_message" field if the given value is not nil.
func (_c *ExplorationFindingCreate) SetNillableShareMessage(v *string) *ExplorationFindingCreate {
	if v != nil {
		_c.SetShareMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExplorationFindingCreate) SetCreatedAt(v time.Time) *ExplorationFindingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExplorationFindingCreate) SetNillableCreatedAt(v *time.Time) *ExplorationFindingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExplorationFindingCreate) SetID(v string) *ExplorationFindingCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ExplorationFindingMutation object of the builder.
func (_c *ExplorationFindingCreate) Mutation() *ExplorationFindingMutation {
	return _c.mutation
}

// Save creates the ExplorationFinding in the database.
func (_c *ExplorationFindingCreate) Save(ctx context.Context) (*ExplorationFinding, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExplorationFindingCreate) SaveX(ctx context.Context) *ExplorationFinding {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExplorationFindingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExplorationFindingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExplorationFindingCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := explorationfinding.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.WorthSharing(); !ok {
		v := explorationfinding.DefaultWorthSharing
		_c.mutation.SetWorthSharing(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := explorationfinding.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExplorationFindingCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "ExplorationFinding.task_id"`)}
	}
	if _, ok := _c.mutation.Finding(); !ok {
		return &ValidationError{Name: "finding", err: errors.New(`ent: missing required field "ExplorationFinding.finding"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ExplorationFinding.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := explorationfinding.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "ExplorationFinding.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WorthSharing(); !ok {
		return &ValidationError{Name: "worth_sharing", err: errors.New(`ent: missing required field "ExplorationFinding.worth_sharing"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExplorationFinding.created_at"`)}
	}
	return nil
}

func (_c *ExplorationFindingCreate) sqlSave(ctx context.Context) (*ExplorationFinding, error) {
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
			return nil, fmt.Errorf("unexpected ExplorationFinding.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExplorationFindingCreate) createSpec() (*ExplorationFinding, *sqlgraph.CreateSpec) {
	var (
		_node = &ExplorationFinding{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(explorationfinding.Table, sqlgraph.NewFieldSpec(explorationfinding.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(explorationfinding.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.Finding(); ok {
		_spec.SetField(explorationfinding.FieldFinding, field.TypeString, value)
		_node.Finding = value
	}
	if value, ok := _c.mutation.SourceContext(); ok {
		_spec.SetField(explorationfinding.FieldSourceContext, field.TypeString, value)
		_node.SourceContext = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(explorationfinding.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.WorthSharing(); ok {
		_spec.SetField(explorationfinding.FieldWorthSharing, field.TypeBool, value)
		_node.WorthSharing = value
	}
	if value, ok := _c.mutation.ShareMessage(); ok {
		_spec.SetField(explorationfinding.FieldShareMessage, field.TypeString, value)
		_node.ShareMessage = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(explorationfinding.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExplorationFinding.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExplorationFindingUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExplorationFindingCreate) OnConflict(opts ...sql.ConflictOption) *ExplorationFindingUpsertOne {
	_c.conflict = opts
	return &ExplorationFindingUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExplorationFinding.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExplorationFindingCreate) OnConflictColumns(columns ...string) *ExplorationFindingUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExplorationFindingUpsertOne{
		create: _c,
	}
}

type (
	// ExplorationFindingUpsertOne is the builder for "upsert"-ing
	//  one ExplorationFinding node.
	ExplorationFindingUpsertOne struct {
		create *ExplorationFindingCreate
	}

	// ExplorationFindingUpsert is the "OnConflict" setter.
	ExplorationFindingUpsert struct {
		*sql.UpdateSet
	}
)

// SetSourceContext sets the "source_context" field.
func (u *ExplorationFindingUpsert) SetSourceContext(v string) *ExplorationFindingUpsert {
	u.Set(explorationfinding.FieldSourceContext, v)
	return u
}

// UpdateSourceContext sets the "source_context" field to the value that was provided on create.
func (u *ExplorationFindingUpsert) UpdateSourceContext() *ExplorationFindingUpsert {
	u.SetExcluded(explorationfinding.FieldSourceContext)
	return u
}

// ClearSourceContext clears the value of the "source_context" field.
func (u *ExplorationFindingUpsert) ClearSourceContext() *ExplorationFindingUpsert {
	u.SetNull(explorationfinding.FieldSourceContext)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *ExplorationFindingUpsert) SetConfidence(v float64) *ExplorationFindingUpsert {
	u.Set(explorationfinding.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *ExplorationFindingUpsert) UpdateConfidence() *ExplorationFindingUpsert {
	u.SetExcluded(explorationfinding.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *ExplorationFindingUpsert) AddConfidence(v float64) *ExplorationFindingUpsert {
	u.Add(explorationfinding.FieldConfidence, v)
	return u
}

// SetWorthSharing sets the "worth_sharing" field.
func (u *ExplorationFindingUpsert) SetWorthSharing(v bool) *ExplorationFindingUpsert {
	u.Set(explorationfinding.FieldWorthSharing, v)
	return u
}

// UpdateWorthSharing sets the "worth_sharing" field to the value that was provided on create.
func (u *ExplorationFindingUpsert) UpdateWorthSharing() *ExplorationFindingUpsert {
	u.SetExcluded(explorationfinding.FieldWorthSharing)
	return u
}

// SetShareMessage sets the "share_message" field.
func (u *ExplorationFindingUpsert) SetShareMessage(v string) *ExplorationFindingUpsert {
	u.Set(explorationfinding.FieldShareMessage, v)
	return u
}

// UpdateShareMessage sets the "share_message" field to the value that was provided on create.
func (u *ExplorationFindingUpsert) UpdateShareMessage() *ExplorationFindingUpsert {
	u.SetExcluded(explorationfinding.FieldShareMessage)
	return u
}

// ClearShareMessage clears the value of the "share_message" field.
func (u *ExplorationFindingUpsert) ClearShareMessage() *ExplorationFindingUpsert {
	u.SetNull(explorationfinding.FieldShareMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ExplorationFinding.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(explorationfinding.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExplorationFindingUpsertOne) UpdateNewValues() *ExplorationFindingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(explorationfinding.FieldID)
		}
		if _, exists := u.create.mutation.TaskID(); exists {
			s.SetIgnore(explorationfinding.FieldTaskID)
		}
		if _, exists := u.create.mutation.Finding(); exists {
			s.SetIgnore(explorationfinding.FieldFinding)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(explorationfinding.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExplorationFinding.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExplorationFindingUpsertOne) Ignore() *ExplorationFindingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExplorationFindingUpsertOne) DoNothing() *ExplorationFindingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExplorationFindingCreate.OnConflict
// documentation for more info.
func (u *ExplorationFindingUpsertOne) Update(set func(*ExplorationFindingUpsert)) *ExplorationFindingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExplorationFindingUpsert{UpdateSet: update})
	}))
	return u
}

// SetSourceContext sets the "source_context" field.
func (u *ExplorationFindingUpsertOne) SetSourceContext(v string) *ExplorationFindingUpsertOne {
	return u.Update(func(s *ExplorationFindingUpsert) {
		s.SetSourceContext(v)
	})
}

// UpdateSourceContext sets the "source_context" field to the value that was provided on create.
func (u *ExplorationFindingUpsertOne) UpdateSourceContext() *ExplorationFindingUpsertOne {
	return u.Update(func(s *ExplorationFindingUpsert) {
		s.UpdateSourceContext()
	})
}

// ClearSourceContext clears the value of the "source_context" field.
func (u *ExplorationFindingUpsertOne) ClearSourceContext() *ExplorationFindingUpsertOne {
	return u.Update(func(s *ExplorationFindingUpsert) {
		s.ClearSourceContext()
	})
}

// SetConfidence sets the "confidence" field.
func (u *ExplorationFindingUpsertOne) SetConfidence(v float64) *ExplorationFindingUpsertOne {
	return u.Update(func(s *ExplorationFindingUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *ExplorationFindingUpsertOne) AddConfidence(v float64) *ExplorationFindingUpsertOne {
	return u.Update(func(s *ExplorationFindingUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *ExplorationFindingUpsertOne) UpdateConfidence() *ExplorationFindingUpsertOne {
	return u.Update(func(s *ExplorationFindingUpsert) {
		s.UpdateConfidence()
	})
}

// SetWorthSharing sets the "worth_sharing" field.
func (u *ExplorationFindingUpsertOne) SetWorthSharing(v bool) *ExplorationFindingUpsertOne {
	return u.Update(func(s *ExplorationFindingUpsert) {
		s.SetWorthSharing(v)
	})
}

// UpdateWorthSharing sets the "worth_sharing" field to the value that was provided on create.
func (u *ExplorationFindingUpsertOne) UpdateWorthSharing() *ExplorationFindingUpsertOne {
	return u.Update(func(s *ExplorationFindingUpsert) {
		s.UpdateWorthSharing()
	})
}

// SetShareMessage sets the "share_message" field.
func (u *ExplorationFindingUpsertOne) SetShareMessage(v string) *ExplorationFindingUpsertOne {
	return u.Update(func(s *ExplorationFindingUpsert) {
		s.SetShareMessage(v)
	})
}

// UpdateShareMessage sets the "share_message" field to the value that was provided on create.
func (u *ExplorationFindingUpsertOne) UpdateShareMessage() *ExplorationFindingUpsertOne {
	return u.Update(func(s *ExplorationFindingUpsert) {
		s.UpdateShareMessage()
	})
}

// ClearShareMessage clears the value of the "share_message" field.
func (u *ExplorationFindingUpsertOne) ClearShareMessage() *ExplorationFindingUpsertOne {
	return u.Update(func(s *ExplorationFindingUpsert) {
		s.ClearShareMessage()
	})
}

// Exec executes the query.
func (u *ExplorationFindingUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExplorationFindingCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExplorationFindingUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExplorationFindingUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ExplorationFindingUpsertOne.ID is not supported by MySQL driver. Use ExplorationFindingUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExplorationFindingUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExplorationFindingCreateBulk is the builder for creating many ExplorationFinding entities in bulk.
type ExplorationFindingCreateBulk struct {
	config
	err      error
	builders []*ExplorationFindingCreate
	conflict []sql.ConflictOption
}

// Save creates the ExplorationFinding entities in the database.
func (_c *ExplorationFindingCreateBulk) Save(ctx context.Context) ([]*ExplorationFinding, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExplorationFinding, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExplorationFindingMutation)
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
func (_c *ExplorationFindingCreateBulk) SaveX(ctx context.Context) []*ExplorationFinding {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExplorationFindingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExplorationFindingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExplorationFinding.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExplorationFindingUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExplorationFindingCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExplorationFindingUpsertBulk {
	_c.conflict = opts
	return &ExplorationFindingUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExplorationFinding.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExplorationFindingCreateBulk) OnConflictColumns(columns ...string) *ExplorationFindingUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExplorationFindingUpsertBulk{
		create: _c,
	}
}

// ExplorationFindingUpsertBulk is the builder for "upsert"-ing
// a bulk of ExplorationFinding nodes.
type ExplorationFindingUpsertBulk struct {
	create *ExplorationFindingCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExplorationFinding.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(explorationfinding.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExplorationFindingUpsertBulk) UpdateNewValues() *ExplorationFindingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(explorationfinding.FieldID)
			}
			if _, exists := b.mutation.TaskID(); exists {
				s.SetIgnore(explorationfinding.FieldTaskID)
			}
			if _, exists := b.mutation.Finding(); exists {
				s.SetIgnore(explorationfinding.FieldFinding)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(explorationfinding.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExplorationFinding.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExplorationFindingUpsertBulk) Ignore() *ExplorationFindingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExplorationFindingUpsertBulk) DoNothing() *ExplorationFindingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExplorationFindingCreateBulk.OnConflict
// documentation for more info.
func (u *ExplorationFindingUpsertBulk) Update(set func(*ExplorationFindingUpsert)) *ExplorationFindingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExplorationFindingUpsert{UpdateSet: update})
	}))
	return u
}

// SetSourceContext sets the "source_context" field.
func (u *ExplorationFindingUpsertBulk) SetSourceContext(v string) *ExplorationFindingUpsertBulk {
	return u.Update(func(s *ExplorationFindingUpsert) {
		s.SetSourceContext(v)
	})
}

// UpdateSourceContext sets the "source_context" field to the value that was provided on create.
func (u *ExplorationFindingUpsertBulk) UpdateSourceContext() *ExplorationFindingUpsertBulk {
	return u.Update(func(s *ExplorationFindingUpsert) {
		s.UpdateSourceContext()
	})
}

// ClearSourceContext clears the value of the "source_context" field.
func (u *ExplorationFindingUpsertBulk) ClearSourceContext() *ExplorationFindingUpsertBulk {
	return u.Update(func(s *ExplorationFindingUpsert) {
		s.ClearSourceContext()
	})
}

// SetConfidence sets the "confidence" field.
func (u *ExplorationFindingUpsertBulk) SetConfidence(v float64) *ExplorationFindingUpsertBulk {
	return u.Update(func(s *ExplorationFindingUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *ExplorationFindingUpsertBulk) AddConfidence(v float64) *ExplorationFindingUpsertBulk {
	return u.Update(func(s *ExplorationFindingUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *ExplorationFindingUpsertBulk) UpdateConfidence() *ExplorationFindingUpsertBulk {
	return u.Update(func(s *ExplorationFindingUpsert) {
		s.UpdateConfidence()
	})
}

// SetWorthSharing sets the "worth_sharing" field.
func (u *ExplorationFindingUpsertBulk) SetWorthSharing(v bool) *ExplorationFindingUpsertBulk {
	return u.Update(func(s *ExplorationFindingUpsert) {
		s.SetWorthSharing(v)
	})
}

// UpdateWorthSharing sets the "worth_sharing" field to the value that was provided on create.
func (u *ExplorationFindingUpsertBulk) UpdateWorthSharing() *ExplorationFindingUpsertBulk {
	return u.Update(func(s *ExplorationFindingUpsert) {
		s.UpdateWorthSharing()
	})
}

// SetShareMessage sets the "share_message" field.
func (u *ExplorationFindingUpsertBulk) SetShareMessage(v string) *ExplorationFindingUpsertBulk {
	return u.Update(func(s *ExplorationFindingUpsert) {
		s.SetShareMessage(v)
	})
}

// UpdateShareMessage sets the "share_message" field to the value that was provided on create.
func (u *ExplorationFindingUpsertBulk) UpdateShareMessage() *ExplorationFindingUpsertBulk {
	return u.Update(func(s *ExplorationFindingUpsert) {
		s.UpdateShareMessage()
	})
}

// ClearShareMessage clears the value of the "share_message" field.
func (u *ExplorationFindingUpsertBulk) ClearShareMessage() *ExplorationFindingUpsertBulk {
	return u.Update(func(s *ExplorationFindingUpsert) {
		s.ClearShareMessage()
	})
}

// Exec executes the query.
func (u *ExplorationFindingUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExplorationFindingCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExplorationFindingCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExplorationFindingUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
