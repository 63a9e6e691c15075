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
	"github.com/kestrel-ai/kestrel/ent/entitymention"
)

// EntityMentionCreate is the builder for creating a EntityMention entity.
type EntityMentionCreate struct {
	config
	mutation *EntityMentionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetConversationID sets the "conversation_id" field.
func (_c *EntityMentionCreate) SetConversationID(v string) *EntityMentionCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_c *EntityMentionCreate) SetNillableConversationID(v *string) *EntityMentionCreate {
	if v != nil {
		_c.SetConversationID(*v)
	}
	return _c
}

// SetEntityType sets the "entity_type" field.
func (_c *EntityMentionCreate) SetEntityType(v string) *EntityMentionCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetRawValue sets the "raw_value" field.
func (_c *EntityMentionCreate) SetRawValue(v string) *EntityMentionCreate {
	_c.mutation.SetRawValue(v)
	return _c
}

// SetNormalizedValue sets the "normalized_value" field.
func (_c *EntityMentionCreate) SetNormalizedValue(v string) *EntityMentionCreate {
	_c.mutation.SetNormalizedValue(v)
	return _c
}

// SetFingerprint sets the "fingerprint" field.
func (_c *EntityMentionCreate) SetFingerprint(v string) *EntityMentionCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *EntityMentionCreate) SetConfidence(v float64) *EntityMentionCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetSpanStart sets the "span_start" field.
func (_c *EntityMentionCreate) SetSpanStart(v int) *EntityMentionCreate {
	_c.mutation.SetSpanStart(v)
	return _c
}

// SetNillableSpanStart sets the "span_start" field if the given value is not nil.
func (_c *EntityMentionCreate) SetNillableSpanStart(v *int) *EntityMentionCreate {
	if v != nil {
		_c.SetSpanStart(*v)
	}
	return _c
}

// SetSpanEnd sets the "span_end" field.
func (_c *EntityMentionCreate) SetSpanEnd(v int) *EntityMentionCreate {
	_c.mutation.SetSpanEnd(v)
	return _c
}

// SetNillableSpanEnd sets the "span_end" field if the given value is not nil.
func (_c *EntityMentionCreate) SetNillableSpanEnd(v *int) *EntityMentionCreate {
	if v != nil {
		_c.SetSpanEnd(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EntityMentionCreate) SetCreatedAt(v time.Time) *EntityMentionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EntityMentionCreate) SetNillableCreatedAt(v *time.Time) *EntityMentionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EntityMentionCreate) SetID(v string) *EntityMentionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EntityMentionMutation object of the builder.
func (_c *EntityMentionCreate) Mutation() *EntityMentionMutation {
	return _c.mutation
}

// Save creates the EntityMention in the database.
func (_c *EntityMentionCreate) Save(ctx context.Context) (*EntityMention, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntityMentionCreate) SaveX(ctx context.Context) *EntityMention {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityMentionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityMentionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EntityMentionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := entitymention.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntityMentionCreate) check() error {
	if _, ok := _c.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "EntityMention.entity_type"`)}
	}
	if _, ok := _c.mutation.RawValue(); !ok {
		return &ValidationError{Name: "raw_value", err: errors.New(`ent: missing required field "EntityMention.raw_value"`)}
	}
	if _, ok := _c.mutation.NormalizedValue(); !ok {
		return &ValidationError{Name: "normalized_value", err: errors.New(`ent: missing required field "EntityMention.normalized_value"`)}
	}
	if _, ok := _c.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "EntityMention.fingerprint"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "EntityMention.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := entitymention.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "EntityMention.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EntityMention.created_at"`)}
	}
	return nil
}

func (_c *EntityMentionCreate) sqlSave(ctx context.Context) (*EntityMention, error) {
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
			return nil, fmt.Errorf("unexpected EntityMention.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EntityMentionCreate) createSpec() (*EntityMention, *sqlgraph.CreateSpec) {
	var (
		_node = &EntityMention{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entitymention.Table, sqlgraph.NewFieldSpec(entitymention.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ConversationID(); ok {
		_spec.SetField(entitymention.FieldConversationID, field.TypeString, value)
		_node.ConversationID = value
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(entitymention.FieldEntityType, field.TypeString, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.RawValue(); ok {
		_spec.SetField(entitymention.FieldRawValue, field.TypeString, value)
		_node.RawValue = value
	}
	if value, ok := _c.mutation.NormalizedValue(); ok {
		_spec.SetField(entitymention.FieldNormalizedValue, field.TypeString, value)
		_node.NormalizedValue = value
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(entitymention.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(entitymention.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.SpanStart(); ok {
		_spec.SetField(entitymention.FieldSpanStart, field.TypeInt, value)
		_node.SpanStart = value
	}
	if value, ok := _c.mutation.SpanEnd(); ok {
		_spec.SetField(entitymention.FieldSpanEnd, field.TypeInt, value)
		_node.SpanEnd = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(entitymention.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EntityMention.Create().
//		SetConversationID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EntityMentionUpsert) {
//			SetConversationID(v+v).
//		}).
//		Exec(ctx)
func (_c *EntityMentionCreate) OnConflict(opts ...sql.ConflictOption) *EntityMentionUpsertOne {
	_c.conflict = opts
	return &EntityMentionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EntityMention.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EntityMentionCreate) OnConflictColumns(columns ...string) *EntityMentionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EntityMentionUpsertOne{
		create: _c,
	}
}

type (
	// EntityMentionUpsertOne is the builder for "upsert"-ing
	//  one EntityMention node.
	EntityMentionUpsertOne struct {
		create *EntityMentionCreate
	}

	// EntityMentionUpsert is the "OnConflict" setter.
	EntityMentionUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EntityMention.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(entitymention.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EntityMentionUpsertOne) UpdateNewValues() *EntityMentionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(entitymention.FieldID)
		}
		if _, exists := u.create.mutation.ConversationID(); exists {
			s.SetIgnore(entitymention.FieldConversationID)
		}
		if _, exists := u.create.mutation.EntityType(); exists {
			s.SetIgnore(entitymention.FieldEntityType)
		}
		if _, exists := u.create.mutation.RawValue(); exists {
			s.SetIgnore(entitymention.FieldRawValue)
		}
		if _, exists := u.create.mutation.NormalizedValue(); exists {
			s.SetIgnore(entitymention.FieldNormalizedValue)
		}
		if _, exists := u.create.mutation.Fingerprint(); exists {
			s.SetIgnore(entitymention.FieldFingerprint)
		}
		if _, exists := u.create.mutation.Confidence(); exists {
			s.SetIgnore(entitymention.FieldConfidence)
		}
		if _, exists := u.create.mutation.SpanStart(); exists {
			s.SetIgnore(entitymention.FieldSpanStart)
		}
		if _, exists := u.create.mutation.SpanEnd(); exists {
			s.SetIgnore(entitymention.FieldSpanEnd)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(entitymention.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EntityMention.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EntityMentionUpsertOne) Ignore() *EntityMentionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EntityMentionUpsertOne) DoNothing() *EntityMentionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EntityMentionCreate.OnConflict
// documentation for more info.
func (u *EntityMentionUpsertOne) Update(set func(*EntityMentionUpsert)) *EntityMentionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EntityMentionUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *EntityMentionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EntityMentionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EntityMentionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EntityMentionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EntityMentionUpsertOne.ID is not supported by MySQL driver. Use EntityMentionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EntityMentionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EntityMentionCreateBulk is the builder for creating many EntityMention entities in bulk.
type EntityMentionCreateBulk struct {
	config
	err      error
	builders []*EntityMentionCreate
	conflict []sql.ConflictOption
}

// Save creates the EntityMention entities in the database.
func (_c *EntityMentionCreateBulk) Save(ctx context.Context) ([]*EntityMention, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EntityMention, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntityMentionMutation)
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
func (_c *EntityMentionCreateBulk) SaveX(ctx context.Context) []*EntityMention {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityMentionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityMentionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EntityMention.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EntityMentionUpsert) {
//			SetConversationID(v+v).
//		}).
//		Exec(ctx)
func (_c *EntityMentionCreateBulk) OnConflict(opts ...sql.ConflictOption) *EntityMentionUpsertBulk {
	_c.conflict = opts
	return &EntityMentionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EntityMention.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EntityMentionCreateBulk) OnConflictColumns(columns ...string) *EntityMentionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EntityMentionUpsertBulk{
		create: _c,
	}
}

// EntityMentionUpsertBulk is the builder for "upsert"-ing
// a bulk of EntityMention nodes.
type EntityMentionUpsertBulk struct {
	create *EntityMentionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EntityMention.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(entitymention.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EntityMentionUpsertBulk) UpdateNewValues() *EntityMentionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(entitymention.FieldID)
			}
			if _, exists := b.mutation.ConversationID(); exists {
				s.SetIgnore(entitymention.FieldConversationID)
			}
			if _, exists := b.mutation.EntityType(); exists {
				s.SetIgnore(entitymention.FieldEntityType)
			}
			if _, exists := b.mutation.RawValue(); exists {
				s.SetIgnore(entitymention.FieldRawValue)
			}
			if _, exists := b.mutation.NormalizedValue(); exists {
				s.SetIgnore(entitymention.FieldNormalizedValue)
			}
			if _, exists := b.mutation.Fingerprint(); exists {
				s.SetIgnore(entitymention.FieldFingerprint)
			}
			if _, exists := b.mutation.Confidence(); exists {
				s.SetIgnore(entitymention.FieldConfidence)
			}
			if _, exists := b.mutation.SpanStart(); exists {
				s.SetIgnore(entitymention.FieldSpanStart)
			}
			if _, exists := b.mutation.SpanEnd(); exists {
				s.SetIgnore(entitymention.FieldSpanEnd)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(entitymention.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EntityMention.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EntityMentionUpsertBulk) Ignore() *EntityMentionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EntityMentionUpsertBulk) DoNothing() *EntityMentionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EntityMentionCreateBulk.OnConflict
// documentation for more info.
func (u *EntityMentionUpsertBulk) Update(set func(*EntityMentionUpsert)) *EntityMentionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EntityMentionUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *EntityMentionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EntityMentionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EntityMentionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EntityMentionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
