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
	"github.com/kestrel-ai/kestrel/ent/conversation"
)

// ConversationCreate is the builder for creating a Conversation entity.
type ConversationCreate struct {
	config
	mutation *ConversationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *ConversationCreate) SetSessionID(v string) *ConversationCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *ConversationCreate) SetRole(v conversation.Role) *ConversationCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *ConversationCreate) SetPrompt(v string) *ConversationCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConversationCreate) SetCreatedAt(v time.Time) *ConversationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableCreatedAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetMedium sets the "medium" field.
func (_c *ConversationCreate) SetMedium(v string) *ConversationCreate {
	_c.mutation.SetMedium(v)
	return _c
}

// SetNillableMedium sets the "medium" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableMedium(v *string) *ConversationCreate {
	if v != nil {
		_c.SetMedium(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ConversationCreate) SetUserID(v string) *ConversationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableUserID(v *string) *ConversationCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *ConversationCreate) SetLatencyMs(v int) *ConversationCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableLatencyMs(v *int) *ConversationCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetToolNames sets the "tool_names" field.
func (_c *ConversationCreate) SetToolNames(v []string) *ConversationCreate {
	_c.mutation.SetToolNames(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ConversationCreate) SetID(v string) *ConversationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ConversationMutation object of the builder.
func (_c *ConversationCreate) Mutation() *ConversationMutation {
	return _c.mutation
}

// Save creates the Conversation in the database.
func (_c *ConversationCreate) Save(ctx context.Context) (*Conversation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversationCreate) SaveX(ctx context.Context) *Conversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConversationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := conversation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversationCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Conversation.session_id"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "Conversation.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := conversation.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Conversation.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "Conversation.prompt"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Conversation.created_at"`)}
	}
	return nil
}

func (_c *ConversationCreate) sqlSave(ctx context.Context) (*Conversation, error) {
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
			return nil, fmt.Errorf("unexpected Conversation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConversationCreate) createSpec() (*Conversation, *sqlgraph.CreateSpec) {
	var (
		_node = &Conversation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversation.Table, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(conversation.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(conversation.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(conversation.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(conversation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Medium(); ok {
		_spec.SetField(conversation.FieldMedium, field.TypeString, value)
		_node.Medium = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(conversation.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(conversation.FieldLatencyMs, field.TypeInt, value)
		_node.LatencyMs = &value
	}
	if value, ok := _c.mutation.ToolNames(); ok {
		_spec.SetField(conversation.FieldToolNames, field.TypeJSON, value)
		_node.ToolNames = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Conversation.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConversationUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ConversationCreate) OnConflict(opts ...sql.ConflictOption) *ConversationUpsertOne {
	_c.conflict = opts
	return &ConversationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConversationCreate) OnConflictColumns(columns ...string) *ConversationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConversationUpsertOne{
		create: _c,
	}
}

type (
	// ConversationUpsertOne is the builder for "upsert"-ing
	//  one Conversation node.
	ConversationUpsertOne struct {
		create *ConversationCreate
	}

	// ConversationUpsert is the "OnConflict" setter.
	ConversationUpsert struct {
		*sql.UpdateSet
	}
)

// SetRole sets the "role" field.
func (u *ConversationUpsert) SetRole(v conversation.Role) *ConversationUpsert {
	u.Set(conversation.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateRole() *ConversationUpsert {
	u.SetExcluded(conversation.FieldRole)
	return u
}

// SetPrompt sets the "prompt" field.
func (u *ConversationUpsert) SetPrompt(v string) *ConversationUpsert {
	u.Set(conversation.FieldPrompt, v)
	return u
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *ConversationUpsert) UpdatePrompt() *ConversationUpsert {
	u.SetExcluded(conversation.FieldPrompt)
	return u
}

// SetMedium sets the "medium" field.
func (u *ConversationUpsert) SetMedium(v string) *ConversationUpsert {
	u.Set(conversation.FieldMedium, v)
	return u
}

// UpdateMedium sets the "medium" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateMedium() *ConversationUpsert {
	u.SetExcluded(conversation.FieldMedium)
	return u
}

// ClearMedium clears the value of the "medium" field.
func (u *ConversationUpsert) ClearMedium() *ConversationUpsert {
	u.SetNull(conversation.FieldMedium)
	return u
}

// SetUserID sets the "user_id" field.
func (u *ConversationUpsert) SetUserID(v string) *ConversationUpsert {
	u.Set(conversation.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateUserID() *ConversationUpsert {
	u.SetExcluded(conversation.FieldUserID)
	return u
}

// ClearUserID clears the value of the "user_id" field.
func (u *ConversationUpsert) ClearUserID() *ConversationUpsert {
	u.SetNull(conversation.FieldUserID)
	return u
}

// SetLatencyMs sets the "latency_ms" field.
func (u *ConversationUpsert) SetLatencyMs(v int) *ConversationUpsert {
	u.Set(conversation.FieldLatencyMs, v)
	return u
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateLatencyMs() *ConversationUpsert {
	u.SetExcluded(conversation.FieldLatencyMs)
	return u
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *ConversationUpsert) AddLatencyMs(v int) *ConversationUpsert {
	u.Add(conversation.FieldLatencyMs, v)
	return u
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (u *ConversationUpsert) ClearLatencyMs() *ConversationUpsert {
	u.SetNull(conversation.FieldLatencyMs)
	return u
}

// SetToolNames sets the "tool_names" field.
func (u *ConversationUpsert) SetToolNames(v []string) *ConversationUpsert {
	u.Set(conversation.FieldToolNames, v)
	return u
}

// UpdateToolNames sets the "tool_names" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateToolNames() *ConversationUpsert {
	u.SetExcluded(conversation.FieldToolNames)
	return u
}

// ClearToolNames clears the value of the "tool_names" field.
func (u *ConversationUpsert) ClearToolNames() *ConversationUpsert {
	u.SetNull(conversation.FieldToolNames)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(conversation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ConversationUpsertOne) UpdateNewValues() *ConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(conversation.FieldID)
		}
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(conversation.FieldSessionID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(conversation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Conversation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ConversationUpsertOne) Ignore() *ConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConversationUpsertOne) DoNothing() *ConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConversationCreate.OnConflict
// documentation for more info.
func (u *ConversationUpsertOne) Update(set func(*ConversationUpsert)) *ConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConversationUpsert{UpdateSet: update})
	}))
	return u
}

// SetRole sets the "role" field.
func (u *ConversationUpsertOne) SetRole(v conversation.Role) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateRole() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateRole()
	})
}

// SetPrompt sets the "prompt" field.
func (u *ConversationUpsertOne) SetPrompt(v string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdatePrompt() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdatePrompt()
	})
}

// SetMedium sets the "medium" field.
func (u *ConversationUpsertOne) SetMedium(v string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetMedium(v)
	})
}

// UpdateMedium sets the "medium" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateMedium() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateMedium()
	})
}

// ClearMedium clears the value of the "medium" field.
func (u *ConversationUpsertOne) ClearMedium() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearMedium()
	})
}

// SetUserID sets the "user_id" field.
func (u *ConversationUpsertOne) SetUserID(v string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateUserID() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *ConversationUpsertOne) ClearUserID() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearUserID()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *ConversationUpsertOne) SetLatencyMs(v int) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *ConversationUpsertOne) AddLatencyMs(v int) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateLatencyMs() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateLatencyMs()
	})
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (u *ConversationUpsertOne) ClearLatencyMs() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearLatencyMs()
	})
}

// SetToolNames sets the "tool_names" field.
func (u *ConversationUpsertOne) SetToolNames(v []string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetToolNames(v)
	})
}

// UpdateToolNames sets the "tool_names" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateToolNames() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateToolNames()
	})
}

// ClearToolNames clears the value of the "tool_names" field.
func (u *ConversationUpsertOne) ClearToolNames() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearToolNames()
	})
}

// Exec executes the query.
func (u *ConversationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ConversationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConversationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ConversationUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ConversationUpsertOne.ID is not supported by MySQL driver. Use ConversationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ConversationUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ConversationCreateBulk is the builder for creating many Conversation entities in bulk.
type ConversationCreateBulk struct {
	config
	err      error
	builders []*ConversationCreate
	conflict []sql.ConflictOption
}

// Save creates the Conversation entities in the database.
func (_c *ConversationCreateBulk) Save(ctx context.Context) ([]*Conversation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Conversation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversationMutation)
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
func (_c *ConversationCreateBulk) SaveX(ctx context.Context) []*Conversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Conversation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConversationUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ConversationCreateBulk) OnConflict(opts ...sql.ConflictOption) *ConversationUpsertBulk {
	_c.conflict = opts
	return &ConversationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConversationCreateBulk) OnConflictColumns(columns ...string) *ConversationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConversationUpsertBulk{
		create: _c,
	}
}

// ConversationUpsertBulk is the builder for "upsert"-ing
// a bulk of Conversation nodes.
type ConversationUpsertBulk struct {
	create *ConversationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(conversation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ConversationUpsertBulk) UpdateNewValues() *ConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(conversation.FieldID)
			}
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(conversation.FieldSessionID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(conversation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ConversationUpsertBulk) Ignore() *ConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConversationUpsertBulk) DoNothing() *ConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConversationCreateBulk.OnConflict
// documentation for more info.
func (u *ConversationUpsertBulk) Update(set func(*ConversationUpsert)) *ConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConversationUpsert{UpdateSet: update})
	}))
	return u
}

// SetRole sets the "role" field.
func (u *ConversationUpsertBulk) SetRole(v conversation.Role) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateRole() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateRole()
	})
}

// SetPrompt sets the "prompt" field.
func (u *ConversationUpsertBulk) SetPrompt(v string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdatePrompt() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdatePrompt()
	})
}

// SetMedium sets the "medium" field.
func (u *ConversationUpsertBulk) SetMedium(v string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetMedium(v)
	})
}

// UpdateMedium sets the "medium" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateMedium() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateMedium()
	})
}

// ClearMedium clears the value of the "medium" field.
func (u *ConversationUpsertBulk) ClearMedium() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearMedium()
	})
}

// SetUserID sets the "user_id" field.
func (u *ConversationUpsertBulk) SetUserID(v string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateUserID() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *ConversationUpsertBulk) ClearUserID() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearUserID()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *ConversationUpsertBulk) SetLatencyMs(v int) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *ConversationUpsertBulk) AddLatencyMs(v int) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateLatencyMs() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateLatencyMs()
	})
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (u *ConversationUpsertBulk) ClearLatencyMs() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearLatencyMs()
	})
}

// SetToolNames sets the "tool_names" field.
func (u *ConversationUpsertBulk) SetToolNames(v []string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetToolNames(v)
	})
}

// UpdateToolNames sets the "tool_names" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateToolNames() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateToolNames()
	})
}

// ClearToolNames clears the value of the "tool_names" field.
func (u *ConversationUpsertBulk) ClearToolNames() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearToolNames()
	})
}

// Exec executes the query.
func (u *ConversationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ConversationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ConversationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConversationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
