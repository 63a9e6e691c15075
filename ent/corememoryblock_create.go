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
	"github.com/kestrel-ai/kestrel/ent/corememoryblock"
)

// CoreMemoryBlockCreate is the builder for creating a CoreMemoryBlock entity.
type CoreMemoryBlockCreate struct {
	config
	mutation *CoreMemoryBlockMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *CoreMemoryBlockCreate) SetUserID(v string) *CoreMemoryBlockCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *CoreMemoryBlockCreate) SetNillableUserID(v *string) *CoreMemoryBlockCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *CoreMemoryBlockCreate) SetSessionID(v string) *CoreMemoryBlockCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *CoreMemoryBlockCreate) SetNillableSessionID(v *string) *CoreMemoryBlockCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetBlockType sets the "block_type" field.
func (_c *CoreMemoryBlockCreate) SetBlockType(v string) *CoreMemoryBlockCreate {
	_c.mutation.SetBlockType(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *CoreMemoryBlockCreate) SetContent(v string) *CoreMemoryBlockCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *CoreMemoryBlockCreate) SetNillableContent(v *string) *CoreMemoryBlockCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetCharLimit sets the "char_limit" field.
func (_c *CoreMemoryBlockCreate) SetCharLimit(v int) *CoreMemoryBlockCreate {
	_c.mutation.SetCharLimit(v)
	return _c
}

// SetNillableCharLimit sets the "char_limit" field if the given value is not nil.
func (_c *CoreMemoryBlockCreate) SetNillableCharLimit(v *int) *CoreMemoryBlockCreate {
	if v != nil {
		_c.SetCharLimit(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *CoreMemoryBlockCreate) SetVersion(v int) *CoreMemoryBlockCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *CoreMemoryBlockCreate) SetNillableVersion(v *int) *CoreMemoryBlockCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CoreMemoryBlockCreate) SetCreatedAt(v time.Time) *CoreMemoryBlockCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CoreMemoryBlockCreate) SetNillableCreatedAt(v *time.Time) *CoreMemoryBlockCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CoreMemoryBlockCreate) SetUpdatedAt(v time.Time) *CoreMemoryBlockCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CoreMemoryBlockCreate) SetNillableUpdatedAt(v *time.Time) *CoreMemoryBlockCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CoreMemoryBlockCreate) SetID(v string) *CoreMemoryBlockCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CoreMemoryBlockMutation object of the builder.
func (_c *CoreMemoryBlockCreate) Mutation() *CoreMemoryBlockMutation {
	return _c.mutation
}

// Save creates the CoreMemoryBlock in the database.
func (_c *CoreMemoryBlockCreate) Save(ctx context.Context) (*CoreMemoryBlock, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CoreMemoryBlockCreate) SaveX(ctx context.Context) *CoreMemoryBlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CoreMemoryBlockCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CoreMemoryBlockCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CoreMemoryBlockCreate) defaults() {
	if _, ok := _c.mutation.Content(); !ok {
		v := corememoryblock.DefaultContent
		_c.mutation.SetContent(v)
	}
	if _, ok := _c.mutation.CharLimit(); !ok {
		v := corememoryblock.DefaultCharLimit
		_c.mutation.SetCharLimit(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := corememoryblock.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := corememoryblock.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := corememoryblock.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CoreMemoryBlockCreate) check() error {
	if _, ok := _c.mutation.BlockType(); !ok {
		return &ValidationError{Name: "block_type", err: errors.New(`ent: missing required field "CoreMemoryBlock.block_type"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "CoreMemoryBlock.content"`)}
	}
	if _, ok := _c.mutation.CharLimit(); !ok {
		return &ValidationError{Name: "char_limit", err: errors.New(`ent: missing required field "CoreMemoryBlock.char_limit"`)}
	}
	if v, ok := _c.mutation.CharLimit(); ok {
		if err := corememoryblock.CharLimitValidator(v); err != nil {
			return &ValidationError{Name: "char_limit", err: fmt.Errorf(`ent: validator failed for field "CoreMemoryBlock.char_limit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "CoreMemoryBlock.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CoreMemoryBlock.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CoreMemoryBlock.updated_at"`)}
	}
	return nil
}

func (_c *CoreMemoryBlockCreate) sqlSave(ctx context.Context) (*CoreMemoryBlock, error) {
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
			return nil, fmt.Errorf("unexpected CoreMemoryBlock.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CoreMemoryBlockCreate) createSpec() (*CoreMemoryBlock, *sqlgraph.CreateSpec) {
	var (
		_node = &CoreMemoryBlock{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(corememoryblock.Table, sqlgraph.NewFieldSpec(corememoryblock.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(corememoryblock.FieldUserID, field.TypeString, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(corememoryblock.FieldSessionID, field.TypeString, value)
		_node.SessionID = &value
	}
	if value, ok := _c.mutation.BlockType(); ok {
		_spec.SetField(corememoryblock.FieldBlockType, field.TypeString, value)
		_node.BlockType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(corememoryblock.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.CharLimit(); ok {
		_spec.SetField(corememoryblock.FieldCharLimit, field.TypeInt, value)
		_node.CharLimit = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(corememoryblock.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(corememoryblock.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(corememoryblock.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CoreMemoryBlock.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CoreMemoryBlockUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *CoreMemoryBlockCreate) OnConflict(opts ...sql.ConflictOption) *CoreMemoryBlockUpsertOne {
	_c.conflict = opts
	return &CoreMemoryBlockUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CoreMemoryBlock.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CoreMemoryBlockCreate) OnConflictColumns(columns ...string) *CoreMemoryBlockUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CoreMemoryBlockUpsertOne{
		create: _c,
	}
}

type (
	// CoreMemoryBlockUpsertOne is the builder for "upsert"-ing
	//  one CoreMemoryBlock node.
	CoreMemoryBlockUpsertOne struct {
		create *CoreMemoryBlockCreate
	}

	// CoreMemoryBlockUpsert is the "OnConflict" setter.
	CoreMemoryBlockUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *CoreMemoryBlockUpsert) SetUserID(v string) *CoreMemoryBlockUpsert {
	u.Set(corememoryblock.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CoreMemoryBlockUpsert) UpdateUserID() *CoreMemoryBlockUpsert {
	u.SetExcluded(corememoryblock.FieldUserID)
	return u
}

// ClearUserID clears the value of the "user_id" field.
func (u *CoreMemoryBlockUpsert) ClearUserID() *CoreMemoryBlockUpsert {
	u.SetNull(corememoryblock.FieldUserID)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *CoreMemoryBlockUpsert) SetSessionID(v string) *CoreMemoryBlockUpsert {
	u.Set(corememoryblock.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *CoreMemoryBlockUpsert) UpdateSessionID() *CoreMemoryBlockUpsert {
	u.SetExcluded(corememoryblock.FieldSessionID)
	return u
}

// ClearSessionID clears the value of the "session_id" field.
func (u *CoreMemoryBlockUpsert) ClearSessionID() *CoreMemoryBlockUpsert {
	u.SetNull(corememoryblock.FieldSessionID)
	return u
}

// SetBlockType sets the "block_type" field.
func (u *CoreMemoryBlockUpsert) SetBlockType(v string) *CoreMemoryBlockUpsert {
	u.Set(corememoryblock.FieldBlockType, v)
	return u
}

// UpdateBlockType sets the "block_type" field to the value that was provided on create.
func (u *CoreMemoryBlockUpsert) UpdateBlockType() *CoreMemoryBlockUpsert {
	u.SetExcluded(corememoryblock.FieldBlockType)
	return u
}

// SetContent sets the "content" field.
func (u *CoreMemoryBlockUpsert) SetContent(v string) *CoreMemoryBlockUpsert {
	u.Set(corememoryblock.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *CoreMemoryBlockUpsert) UpdateContent() *CoreMemoryBlockUpsert {
	u.SetExcluded(corememoryblock.FieldContent)
	return u
}

// SetCharLimit sets the "char_limit" field.
func (u *CoreMemoryBlockUpsert) SetCharLimit(v int) *CoreMemoryBlockUpsert {
	u.Set(corememoryblock.FieldCharLimit, v)
	return u
}

// UpdateCharLimit sets the "char_limit" field to the value that was provided on create.
func (u *CoreMemoryBlockUpsert) UpdateCharLimit() *CoreMemoryBlockUpsert {
	u.SetExcluded(corememoryblock.FieldCharLimit)
	return u
}

// AddCharLimit adds v to the "char_limit" field.
func (u *CoreMemoryBlockUpsert) AddCharLimit(v int) *CoreMemoryBlockUpsert {
	u.Add(corememoryblock.FieldCharLimit, v)
	return u
}

// SetVersion sets the "version" field.
func (u *CoreMemoryBlockUpsert) SetVersion(v int) *CoreMemoryBlockUpsert {
	u.Set(corememoryblock.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *CoreMemoryBlockUpsert) UpdateVersion() *CoreMemoryBlockUpsert {
	u.SetExcluded(corememoryblock.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *CoreMemoryBlockUpsert) AddVersion(v int) *CoreMemoryBlockUpsert {
	u.Add(corememoryblock.FieldVersion, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CoreMemoryBlockUpsert) SetUpdatedAt(v time.Time) *CoreMemoryBlockUpsert {
	u.Set(corememoryblock.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CoreMemoryBlockUpsert) UpdateUpdatedAt() *CoreMemoryBlockUpsert {
	u.SetExcluded(corememoryblock.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CoreMemoryBlock.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(corememoryblock.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CoreMemoryBlockUpsertOne) UpdateNewValues() *CoreMemoryBlockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(corememoryblock.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(corememoryblock.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CoreMemoryBlock.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CoreMemoryBlockUpsertOne) Ignore() *CoreMemoryBlockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CoreMemoryBlockUpsertOne) DoNothing() *CoreMemoryBlockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CoreMemoryBlockCreate.OnConflict
// documentation for more info.
func (u *CoreMemoryBlockUpsertOne) Update(set func(*CoreMemoryBlockUpsert)) *CoreMemoryBlockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CoreMemoryBlockUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *CoreMemoryBlockUpsertOne) SetUserID(v string) *CoreMemoryBlockUpsertOne {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CoreMemoryBlockUpsertOne) UpdateUserID() *CoreMemoryBlockUpsertOne {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *CoreMemoryBlockUpsertOne) ClearUserID() *CoreMemoryBlockUpsertOne {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.ClearUserID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *CoreMemoryBlockUpsertOne) SetSessionID(v string) *CoreMemoryBlockUpsertOne {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *CoreMemoryBlockUpsertOne) UpdateSessionID() *CoreMemoryBlockUpsertOne {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *CoreMemoryBlockUpsertOne) ClearSessionID() *CoreMemoryBlockUpsertOne {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.ClearSessionID()
	})
}

// SetBlockType sets the "block_type" field.
func (u *CoreMemoryBlockUpsertOne) SetBlockType(v string) *CoreMemoryBlockUpsertOne {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.SetBlockType(v)
	})
}

// UpdateBlockType sets the "block_type" field to the value that was provided on create.
func (u *CoreMemoryBlockUpsertOne) UpdateBlockType() *CoreMemoryBlockUpsertOne {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.UpdateBlockType()
	})
}

// SetContent sets the "content" field.
func (u *CoreMemoryBlockUpsertOne) SetContent(v string) *CoreMemoryBlockUpsertOne {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *CoreMemoryBlockUpsertOne) UpdateContent() *CoreMemoryBlockUpsertOne {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.UpdateContent()
	})
}

// SetCharLimit sets the "char_limit" field.
func (u *CoreMemoryBlockUpsertOne) SetCharLimit(v int) *CoreMemoryBlockUpsertOne {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.SetCharLimit(v)
	})
}

// AddCharLimit adds v to the "char_limit" field.
func (u *CoreMemoryBlockUpsertOne) AddCharLimit(v int) *CoreMemoryBlockUpsertOne {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.AddCharLimit(v)
	})
}

// UpdateCharLimit sets the "char_limit" field to the value that was provided on create.
func (u *CoreMemoryBlockUpsertOne) UpdateCharLimit() *CoreMemoryBlockUpsertOne {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.UpdateCharLimit()
	})
}

// SetVersion sets the "version" field.
func (u *CoreMemoryBlockUpsertOne) SetVersion(v int) *CoreMemoryBlockUpsertOne {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *CoreMemoryBlockUpsertOne) AddVersion(v int) *CoreMemoryBlockUpsertOne {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *CoreMemoryBlockUpsertOne) UpdateVersion() *CoreMemoryBlockUpsertOne {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.UpdateVersion()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CoreMemoryBlockUpsertOne) SetUpdatedAt(v time.Time) *CoreMemoryBlockUpsertOne {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CoreMemoryBlockUpsertOne) UpdateUpdatedAt() *CoreMemoryBlockUpsertOne {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CoreMemoryBlockUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CoreMemoryBlockCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CoreMemoryBlockUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CoreMemoryBlockUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CoreMemoryBlockUpsertOne.ID is not supported by MySQL driver. Use CoreMemoryBlockUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CoreMemoryBlockUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CoreMemoryBlockCreateBulk is the builder for creating many CoreMemoryBlock entities in bulk.
type CoreMemoryBlockCreateBulk struct {
	config
	err      error
	builders []*CoreMemoryBlockCreate
	conflict []sql.ConflictOption
}

// Save creates the CoreMemoryBlock entities in the database.
func (_c *CoreMemoryBlockCreateBulk) Save(ctx context.Context) ([]*CoreMemoryBlock, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CoreMemoryBlock, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CoreMemoryBlockMutation)
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
func (_c *CoreMemoryBlockCreateBulk) SaveX(ctx context.Context) []*CoreMemoryBlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CoreMemoryBlockCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CoreMemoryBlockCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CoreMemoryBlock.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CoreMemoryBlockUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *CoreMemoryBlockCreateBulk) OnConflict(opts ...sql.ConflictOption) *CoreMemoryBlockUpsertBulk {
	_c.conflict = opts
	return &CoreMemoryBlockUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CoreMemoryBlock.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CoreMemoryBlockCreateBulk) OnConflictColumns(columns ...string) *CoreMemoryBlockUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CoreMemoryBlockUpsertBulk{
		create: _c,
	}
}

// CoreMemoryBlockUpsertBulk is the builder for "upsert"-ing
// a bulk of CoreMemoryBlock nodes.
type CoreMemoryBlockUpsertBulk struct {
	create *CoreMemoryBlockCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CoreMemoryBlock.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(corememoryblock.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CoreMemoryBlockUpsertBulk) UpdateNewValues() *CoreMemoryBlockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(corememoryblock.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(corememoryblock.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CoreMemoryBlock.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CoreMemoryBlockUpsertBulk) Ignore() *CoreMemoryBlockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CoreMemoryBlockUpsertBulk) DoNothing() *CoreMemoryBlockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CoreMemoryBlockCreateBulk.OnConflict
// documentation for more info.
func (u *CoreMemoryBlockUpsertBulk) Update(set func(*CoreMemoryBlockUpsert)) *CoreMemoryBlockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CoreMemoryBlockUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *CoreMemoryBlockUpsertBulk) SetUserID(v string) *CoreMemoryBlockUpsertBulk {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *CoreMemoryBlockUpsertBulk) UpdateUserID() *CoreMemoryBlockUpsertBulk {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *CoreMemoryBlockUpsertBulk) ClearUserID() *CoreMemoryBlockUpsertBulk {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.ClearUserID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *CoreMemoryBlockUpsertBulk) SetSessionID(v string) *CoreMemoryBlockUpsertBulk {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *CoreMemoryBlockUpsertBulk) UpdateSessionID() *CoreMemoryBlockUpsertBulk {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.UpdateSessionID()
	})
}

// ClearSessionID clears the value of the "session_id" field.
func (u *CoreMemoryBlockUpsertBulk) ClearSessionID() *CoreMemoryBlockUpsertBulk {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.ClearSessionID()
	})
}

// SetBlockType sets the "block_type" field.
func (u *CoreMemoryBlockUpsertBulk) SetBlockType(v string) *CoreMemoryBlockUpsertBulk {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.SetBlockType(v)
	})
}

// UpdateBlockType sets the "block_type" field to the value that was provided on create.
func (u *CoreMemoryBlockUpsertBulk) UpdateBlockType() *CoreMemoryBlockUpsertBulk {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.UpdateBlockType()
	})
}

// SetContent sets the "content" field.
func (u *CoreMemoryBlockUpsertBulk) SetContent(v string) *CoreMemoryBlockUpsertBulk {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *CoreMemoryBlockUpsertBulk) UpdateContent() *CoreMemoryBlockUpsertBulk {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.UpdateContent()
	})
}

// SetCharLimit sets the "char_limit" field.
func (u *CoreMemoryBlockUpsertBulk) SetCharLimit(v int) *CoreMemoryBlockUpsertBulk {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.SetCharLimit(v)
	})
}

// AddCharLimit adds v to the "char_limit" field.
func (u *CoreMemoryBlockUpsertBulk) AddCharLimit(v int) *CoreMemoryBlockUpsertBulk {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.AddCharLimit(v)
	})
}

// UpdateCharLimit sets the "char_limit" field to the value that was provided on create.
func (u *CoreMemoryBlockUpsertBulk) UpdateCharLimit() *CoreMemoryBlockUpsertBulk {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.UpdateCharLimit()
	})
}

// SetVersion sets the "version" field.
func (u *CoreMemoryBlockUpsertBulk) SetVersion(v int) *CoreMemoryBlockUpsertBulk {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *CoreMemoryBlockUpsertBulk) AddVersion(v int) *CoreMemoryBlockUpsertBulk {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *CoreMemoryBlockUpsertBulk) UpdateVersion() *CoreMemoryBlockUpsertBulk {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.UpdateVersion()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CoreMemoryBlockUpsertBulk) SetUpdatedAt(v time.Time) *CoreMemoryBlockUpsertBulk {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CoreMemoryBlockUpsertBulk) UpdateUpdatedAt() *CoreMemoryBlockUpsertBulk {
	return u.Update(func(s *CoreMemoryBlockUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CoreMemoryBlockUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CoreMemoryBlockCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CoreMemoryBlockCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CoreMemoryBlockUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
