// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kestrel-ai/kestrel/ent/conversationblock"
)

// ConversationBlockCreate is the builder for creating a ConversationBlock entity.
type ConversationBlockCreate struct {
	config
	mutation *ConversationBlockMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetConversationID sets the "conversation_id" field.
func (_c *ConversationBlockCreate) SetConversationID(v string) *ConversationBlockCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetOrdinal sets the "ordinal" field.
func (_c *ConversationBlockCreate) SetOrdinal(v int) *ConversationBlockCreate {
	_c.mutation.SetOrdinal(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ConversationBlockCreate) SetKind(v conversationblock.Kind) *ConversationBlockCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetText sets the "text" field.
func (_c *ConversationBlockCreate) SetText(v string) *ConversationBlockCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_c *ConversationBlockCreate) SetNillableText(v *string) *ConversationBlockCreate {
	if v != nil {
		_c.SetText(*v)
	}
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *ConversationBlockCreate) SetToolName(v string) *ConversationBlockCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_c *ConversationBlockCreate) SetNillableToolName(v *string) *ConversationBlockCreate {
	if v != nil {
		_c.SetToolName(*v)
	}
	return _c
}

// SetToolUseID sets the "tool_use_id" field.
func (_c *ConversationBlockCreate) SetToolUseID(v string) *ConversationBlockCreate {
	_c.mutation.SetToolUseID(v)
	return _c
}

// SetNillableToolUseID sets the "tool_use_id" field if the given value is not nil.
func (_c *ConversationBlockCreate) SetNillableToolUseID(v *string) *ConversationBlockCreate {
	if v != nil {
		_c.SetToolUseID(*v)
	}
	return _c
}

// SetToolInput sets the "tool_input" field.
func (_c *ConversationBlockCreate) SetToolInput(v map[string]interface{}) *ConversationBlockCreate {
	_c.mutation.SetToolInput(v)
	return _c
}

// SetToolResult sets the "tool_result" field.
func (_c *ConversationBlockCreate) SetToolResult(v map[string]interface{}) *ConversationBlockCreate {
	_c.mutation.SetToolResult(v)
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *ConversationBlockCreate) SetEmbedding(v []float64) *ConversationBlockCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ConversationBlockCreate) SetID(v string) *ConversationBlockCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ConversationBlockMutation object of the builder.
func (_c *ConversationBlockCreate) Mutation() *ConversationBlockMutation {
	return _c.mutation
}

// Save creates the ConversationBlock in the database.
func (_c *ConversationBlockCreate) Save(ctx context.Context) (*ConversationBlock, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversationBlockCreate) SaveX(ctx context.Context) *ConversationBlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationBlockCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationBlockCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversationBlockCreate) check() error {
	if _, ok := _c.mutation.ConversationID(); !ok {
		return &ValidationError{Name: "conversation_id", err: errors.New(`ent: missing required field "ConversationBlock.conversation_id"`)}
	}
	if _, ok := _c.mutation.Ordinal(); !ok {
		return &ValidationError{Name: "ordinal", err: errors.New(`ent: missing required field "ConversationBlock.ordinal"`)}
	}
	if v, ok := _c.mutation.Ordinal(); ok {
		if err := conversationblock.OrdinalValidator(v); err != nil {
			return &ValidationError{Name: "ordinal", err: fmt.Errorf(`ent: validator failed for field "ConversationBlock.ordinal": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ConversationBlock.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := conversationblock.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ConversationBlock.kind": %w`, err)}
		}
	}
	return nil
}

func (_c *ConversationBlockCreate) sqlSave(ctx context.Context) (*ConversationBlock, error) {
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
			return nil, fmt.Errorf("unexpected ConversationBlock.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConversationBlockCreate) createSpec() (*ConversationBlock, *sqlgraph.CreateSpec) {
	var (
		_node = &ConversationBlock{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversationblock.Table, sqlgraph.NewFieldSpec(conversationblock.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ConversationID(); ok {
		_spec.SetField(conversationblock.FieldConversationID, field.TypeString, value)
		_node.ConversationID = value
	}
	if value, ok := _c.mutation.Ordinal(); ok {
		_spec.SetField(conversationblock.FieldOrdinal, field.TypeInt, value)
		_node.Ordinal = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(conversationblock.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(conversationblock.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(conversationblock.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.ToolUseID(); ok {
		_spec.SetField(conversationblock.FieldToolUseID, field.TypeString, value)
		_node.ToolUseID = value
	}
	if value, ok := _c.mutation.ToolInput(); ok {
		_spec.SetField(conversationblock.FieldToolInput, field.TypeJSON, value)
		_node.ToolInput = value
	}
	if value, ok := _c.mutation.ToolResult(); ok {
		_spec.SetField(conversationblock.FieldToolResult, field.TypeJSON, value)
		_node.ToolResult = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(conversationblock.FieldEmbedding, field.TypeJSON, value)
		_node.Embedding = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ConversationBlock.Create().
//		SetConversationID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConversationBlockUpsert) {
//			SetConversationID(v+v).
//		}).
//		Exec(ctx)
func (_c *ConversationBlockCreate) OnConflict(opts ...sql.ConflictOption) *ConversationBlockUpsertOne {
	_c.conflict = opts
	return &ConversationBlockUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ConversationBlock.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConversationBlockCreate) OnConflictColumns(columns ...string) *ConversationBlockUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConversationBlockUpsertOne{
		create: _c,
	}
}

type (
	// ConversationBlockUpsertOne is the builder for "upsert"-ing
	//  one ConversationBlock node.
	ConversationBlockUpsertOne struct {
		create *ConversationBlockCreate
	}

	// ConversationBlockUpsert is the "OnConflict" setter.
	ConversationBlockUpsert struct {
		*sql.UpdateSet
	}
)

// SetOrdinal sets the "ordinal" field.
func (u *ConversationBlockUpsert) SetOrdinal(v int) *ConversationBlockUpsert {
	u.Set(conversationblock.FieldOrdinal, v)
	return u
}

// UpdateOrdinal sets the "ordinal" field to the value that was provided on create.
func (u *ConversationBlockUpsert) UpdateOrdinal() *ConversationBlockUpsert {
	u.SetExcluded(conversationblock.FieldOrdinal)
	return u
}

// AddOrdinal adds v to the "ordinal" field.
func (u *ConversationBlockUpsert) AddOrdinal(v int) *ConversationBlockUpsert {
	u.Add(conversationblock.FieldOrdinal, v)
	return u
}

// SetKind sets the "kind" field.
func (u *ConversationBlockUpsert) SetKind(v conversationblock.Kind) *ConversationBlockUpsert {
	u.Set(conversationblock.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ConversationBlockUpsert) UpdateKind() *ConversationBlockUpsert {
	u.SetExcluded(conversationblock.FieldKind)
	return u
}

// SetText sets the "text" field.
func (u *ConversationBlockUpsert) SetText(v string) *ConversationBlockUpsert {
	u.Set(conversationblock.FieldText, v)
	return u
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *ConversationBlockUpsert) UpdateText() *ConversationBlockUpsert {
	u.SetExcluded(conversationblock.FieldText)
	return u
}

// ClearText clears the value of the "text" field.
func (u *ConversationBlockUpsert) ClearText() *ConversationBlockUpsert {
	u.SetNull(conversationblock.FieldText)
	return u
}

// SetToolName sets the "tool_name" field.
func (u *ConversationBlockUpsert) SetToolName(v string) *ConversationBlockUpsert {
	u.Set(conversationblock.FieldToolName, v)
	return u
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *ConversationBlockUpsert) UpdateToolName() *ConversationBlockUpsert {
	u.SetExcluded(conversationblock.FieldToolName)
	return u
}

// ClearToolName clears the value of the "tool_name" field.
func (u *ConversationBlockUpsert) ClearToolName() *ConversationBlockUpsert {
	u.SetNull(conversationblock.FieldToolName)
	return u
}

// SetToolUseID sets the "tool_use_id" field.
func (u *ConversationBlockUpsert) SetToolUseID(v string) *ConversationBlockUpsert {
	u.Set(conversationblock.FieldToolUseID, v)
	return u
}

// UpdateToolUseID sets the "tool_use_id" field to the value that was provided on create.
func (u *ConversationBlockUpsert) UpdateToolUseID() *ConversationBlockUpsert {
	u.SetExcluded(conversationblock.FieldToolUseID)
	return u
}

// ClearToolUseID clears the value of the "tool_use_id" field.
func (u *ConversationBlockUpsert) ClearToolUseID() *ConversationBlockUpsert {
	u.SetNull(conversationblock.FieldToolUseID)
	return u
}

// SetToolInput sets the "tool_input" field.
func (u *ConversationBlockUpsert) SetToolInput(v map[string]interface{}) *ConversationBlockUpsert {
	u.Set(conversationblock.FieldToolInput, v)
	return u
}

// UpdateToolInput sets the "tool_input" field to the value that was provided on create.
func (u *ConversationBlockUpsert) UpdateToolInput() *ConversationBlockUpsert {
	u.SetExcluded(conversationblock.FieldToolInput)
	return u
}

// ClearToolInput clears the value of the "tool_input" field.
func (u *ConversationBlockUpsert) ClearToolInput() *ConversationBlockUpsert {
	u.SetNull(conversationblock.FieldToolInput)
	return u
}

// SetToolResult sets the "tool_result" field.
func (u *ConversationBlockUpsert) SetToolResult(v map[string]interface{}) *ConversationBlockUpsert {
	u.Set(conversationblock.FieldToolResult, v)
	return u
}

// UpdateToolResult sets the "tool_result" field to the value that was provided on create.
func (u *ConversationBlockUpsert) UpdateToolResult() *ConversationBlockUpsert {
	u.SetExcluded(conversationblock.FieldToolResult)
	return u
}

// ClearToolResult clears the value of the "tool_result" field.
func (u *ConversationBlockUpsert) ClearToolResult() *ConversationBlockUpsert {
	u.SetNull(conversationblock.FieldToolResult)
	return u
}

// SetEmbedding sets the "embedding" field.
func (u *ConversationBlockUpsert) SetEmbedding(v []float64) *ConversationBlockUpsert {
	u.Set(conversationblock.FieldEmbedding, v)
	return u
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *ConversationBlockUpsert) UpdateEmbedding() *ConversationBlockUpsert {
	u.SetExcluded(conversationblock.FieldEmbedding)
	return u
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *ConversationBlockUpsert) ClearEmbedding() *ConversationBlockUpsert {
	u.SetNull(conversationblock.FieldEmbedding)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ConversationBlock.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(conversationblock.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ConversationBlockUpsertOne) UpdateNewValues() *ConversationBlockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(conversationblock.FieldID)
		}
		if _, exists := u.create.mutation.ConversationID(); exists {
			s.SetIgnore(conversationblock.FieldConversationID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ConversationBlock.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ConversationBlockUpsertOne) Ignore() *ConversationBlockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConversationBlockUpsertOne) DoNothing() *ConversationBlockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConversationBlockCreate.OnConflict
// documentation for more info.
func (u *ConversationBlockUpsertOne) Update(set func(*ConversationBlockUpsert)) *ConversationBlockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConversationBlockUpsert{UpdateSet: update})
	}))
	return u
}

// SetOrdinal sets the "ordinal" field.
func (u *ConversationBlockUpsertOne) SetOrdinal(v int) *ConversationBlockUpsertOne {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.SetOrdinal(v)
	})
}

// AddOrdinal adds v to the "ordinal" field.
func (u *ConversationBlockUpsertOne) AddOrdinal(v int) *ConversationBlockUpsertOne {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.AddOrdinal(v)
	})
}

// UpdateOrdinal sets the "ordinal" field to the value that was provided on create.
func (u *ConversationBlockUpsertOne) UpdateOrdinal() *ConversationBlockUpsertOne {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.UpdateOrdinal()
	})
}

// SetKind sets the "kind" field.
func (u *ConversationBlockUpsertOne) SetKind(v conversationblock.Kind) *ConversationBlockUpsertOne {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ConversationBlockUpsertOne) UpdateKind() *ConversationBlockUpsertOne {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.UpdateKind()
	})
}

// SetText sets the "text" field.
func (u *ConversationBlockUpsertOne) SetText(v string) *ConversationBlockUpsertOne {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *ConversationBlockUpsertOne) UpdateText() *ConversationBlockUpsertOne {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.UpdateText()
	})
}

// ClearText clears the value of the "text" field.
func (u *ConversationBlockUpsertOne) ClearText() *ConversationBlockUpsertOne {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.ClearText()
	})
}

// SetToolName sets the "tool_name" field.
func (u *ConversationBlockUpsertOne) SetToolName(v string) *ConversationBlockUpsertOne {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.SetToolName(v)
	})
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *ConversationBlockUpsertOne) UpdateToolName() *ConversationBlockUpsertOne {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.UpdateToolName()
	})
}

// ClearToolName clears the value of the "tool_name" field.
func (u *ConversationBlockUpsertOne) ClearToolName() *ConversationBlockUpsertOne {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.ClearToolName()
	})
}

// SetToolUseID sets the "tool_use_id" field.
func (u *ConversationBlockUpsertOne) SetToolUseID(v string) *ConversationBlockUpsertOne {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.SetToolUseID(v)
	})
}

// UpdateToolUseID sets the "tool_use_id" field to the value that was provided on create.
func (u *ConversationBlockUpsertOne) UpdateToolUseID() *ConversationBlockUpsertOne {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.UpdateToolUseID()
	})
}

// ClearToolUseID clears the value of the "tool_use_id" field.
func (u *ConversationBlockUpsertOne) ClearToolUseID() *ConversationBlockUpsertOne {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.ClearToolUseID()
	})
}

// SetToolInput sets the "tool_input" field.
func (u *ConversationBlockUpsertOne) SetToolInput(v map[string]interface{}) *ConversationBlockUpsertOne {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.SetToolInput(v)
	})
}

// UpdateToolInput sets the "tool_input" field to the value that was provided on create.
func (u *ConversationBlockUpsertOne) UpdateToolInput() *ConversationBlockUpsertOne {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.UpdateToolInput()
	})
}

// ClearToolInput clears the value of the "tool_input" field.
func (u *ConversationBlockUpsertOne) ClearToolInput() *ConversationBlockUpsertOne {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.ClearToolInput()
	})
}

// SetToolResult sets the "tool_result" field.
func (u *ConversationBlockUpsertOne) SetToolResult(v map[string]interface{}) *ConversationBlockUpsertOne {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.SetToolResult(v)
	})
}

// UpdateToolResult sets the "tool_result" field to the value that was provided on create.
func (u *ConversationBlockUpsertOne) UpdateToolResult() *ConversationBlockUpsertOne {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.UpdateToolResult()
	})
}

// ClearToolResult clears the value of the "tool_result" field.
func (u *ConversationBlockUpsertOne) ClearToolResult() *ConversationBlockUpsertOne {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.ClearToolResult()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *ConversationBlockUpsertOne) SetEmbedding(v []float64) *ConversationBlockUpsertOne {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *ConversationBlockUpsertOne) UpdateEmbedding() *ConversationBlockUpsertOne {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.UpdateEmbedding()
	})
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *ConversationBlockUpsertOne) ClearEmbedding() *ConversationBlockUpsertOne {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.ClearEmbedding()
	})
}

// Exec executes the query.
func (u *ConversationBlockUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ConversationBlockCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConversationBlockUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ConversationBlockUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ConversationBlockUpsertOne.ID is not supported by MySQL driver. Use ConversationBlockUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ConversationBlockUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ConversationBlockCreateBulk is the builder for creating many ConversationBlock entities in bulk.
type ConversationBlockCreateBulk struct {
	config
	err      error
	builders []*ConversationBlockCreate
	conflict []sql.ConflictOption
}

// Save creates the ConversationBlock entities in the database.
func (_c *ConversationBlockCreateBulk) Save(ctx context.Context) ([]*ConversationBlock, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConversationBlock, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversationBlockMutation)
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
func (_c *ConversationBlockCreateBulk) SaveX(ctx context.Context) []*ConversationBlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationBlockCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationBlockCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ConversationBlock.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConversationBlockUpsert) {
//			SetConversationID(v+v).
//		}).
//		Exec(ctx)
func (_c *ConversationBlockCreateBulk) OnConflict(opts ...sql.ConflictOption) *ConversationBlockUpsertBulk {
	_c.conflict = opts
	return &ConversationBlockUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ConversationBlock.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConversationBlockCreateBulk) OnConflictColumns(columns ...string) *ConversationBlockUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConversationBlockUpsertBulk{
		create: _c,
	}
}

// ConversationBlockUpsertBulk is the builder for "upsert"-ing
// a bulk of ConversationBlock nodes.
type ConversationBlockUpsertBulk struct {
	create *ConversationBlockCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ConversationBlock.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(conversationblock.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ConversationBlockUpsertBulk) UpdateNewValues() *ConversationBlockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(conversationblock.FieldID)
			}
			if _, exists := b.mutation.ConversationID(); exists {
				s.SetIgnore(conversationblock.FieldConversationID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ConversationBlock.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ConversationBlockUpsertBulk) Ignore() *ConversationBlockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConversationBlockUpsertBulk) DoNothing() *ConversationBlockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConversationBlockCreateBulk.OnConflict
// documentation for more info.
func (u *ConversationBlockUpsertBulk) Update(set func(*ConversationBlockUpsert)) *ConversationBlockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConversationBlockUpsert{UpdateSet: update})
	}))
	return u
}

// SetOrdinal sets the "ordinal" field.
func (u *ConversationBlockUpsertBulk) SetOrdinal(v int) *ConversationBlockUpsertBulk {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.SetOrdinal(v)
	})
}

// AddOrdinal adds v to the "ordinal" field.
func (u *ConversationBlockUpsertBulk) AddOrdinal(v int) *ConversationBlockUpsertBulk {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.AddOrdinal(v)
	})
}

// UpdateOrdinal sets the "ordinal" field to the value that was provided on create.
func (u *ConversationBlockUpsertBulk) UpdateOrdinal() *ConversationBlockUpsertBulk {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.UpdateOrdinal()
	})
}

// SetKind sets the "kind" field.
func (u *ConversationBlockUpsertBulk) SetKind(v conversationblock.Kind) *ConversationBlockUpsertBulk {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ConversationBlockUpsertBulk) UpdateKind() *ConversationBlockUpsertBulk {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.UpdateKind()
	})
}

// SetText sets the "text" field.
func (u *ConversationBlockUpsertBulk) SetText(v string) *ConversationBlockUpsertBulk {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *ConversationBlockUpsertBulk) UpdateText() *ConversationBlockUpsertBulk {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.UpdateText()
	})
}

// ClearText clears the value of the "text" field.
func (u *ConversationBlockUpsertBulk) ClearText() *ConversationBlockUpsertBulk {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.ClearText()
	})
}

// SetToolName sets the "tool_name" field.
func (u *ConversationBlockUpsertBulk) SetToolName(v string) *ConversationBlockUpsertBulk {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.SetToolName(v)
	})
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *ConversationBlockUpsertBulk) UpdateToolName() *ConversationBlockUpsertBulk {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.UpdateToolName()
	})
}

// ClearToolName clears the value of the "tool_name" field.
func (u *ConversationBlockUpsertBulk) ClearToolName() *ConversationBlockUpsertBulk {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.ClearToolName()
	})
}

// SetToolUseID sets the "tool_use_id" field.
func (u *ConversationBlockUpsertBulk) SetToolUseID(v string) *ConversationBlockUpsertBulk {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.SetToolUseID(v)
	})
}

// UpdateToolUseID sets the "tool_use_id" field to the value that was provided on create.
func (u *ConversationBlockUpsertBulk) UpdateToolUseID() *ConversationBlockUpsertBulk {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.UpdateToolUseID()
	})
}

// ClearToolUseID clears the value of the "tool_use_id" field.
func (u *ConversationBlockUpsertBulk) ClearToolUseID() *ConversationBlockUpsertBulk {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.ClearToolUseID()
	})
}

// SetToolInput sets the "tool_input" field.
func (u *ConversationBlockUpsertBulk) SetToolInput(v map[string]interface{}) *ConversationBlockUpsertBulk {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.SetToolInput(v)
	})
}

// UpdateToolInput sets the "tool_input" field to the value that was provided on create.
func (u *ConversationBlockUpsertBulk) UpdateToolInput() *ConversationBlockUpsertBulk {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.UpdateToolInput()
	})
}

// ClearToolInput clears the value of the "tool_input" field.
func (u *ConversationBlockUpsertBulk) ClearToolInput() *ConversationBlockUpsertBulk {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.ClearToolInput()
	})
}

// SetToolResult sets the "tool_result" field.
func (u *ConversationBlockUpsertBulk) SetToolResult(v map[string]interface{}) *ConversationBlockUpsertBulk {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.SetToolResult(v)
	})
}

// UpdateToolResult sets the "tool_result" field to the value that was provided on create.
func (u *ConversationBlockUpsertBulk) UpdateToolResult() *ConversationBlockUpsertBulk {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.UpdateToolResult()
	})
}

// ClearToolResult clears the value of the "tool_result" field.
func (u *ConversationBlockUpsertBulk) ClearToolResult() *ConversationBlockUpsertBulk {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.ClearToolResult()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *ConversationBlockUpsertBulk) SetEmbedding(v []float64) *ConversationBlockUpsertBulk {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *ConversationBlockUpsertBulk) UpdateEmbedding() *ConversationBlockUpsertBulk {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.UpdateEmbedding()
	})
}

// ClearEmbedding clears the value of the "embedding" field.
func (u *ConversationBlockUpsertBulk) ClearEmbedding() *ConversationBlockUpsertBulk {
	return u.Update(func(s *ConversationBlockUpsert) {
		s.ClearEmbedding()
	})
}

// Exec executes the query.
func (u *ConversationBlockUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ConversationBlockCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ConversationBlockCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConversationBlockUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
