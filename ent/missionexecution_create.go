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
	"github.com/kestrel-ai/kestrel/ent/missionexecution"
)

// MissionExecutionCreate is the builder for creating a MissionExecution entity.
type MissionExecutionCreate struct {
	config
	mutation *MissionExecutionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetMissionID sets the "mission_id" field.
func (_c *MissionExecutionCreate) SetMissionID(v string) *MissionExecutionCreate {
	_c.mutation.SetMissionID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *MissionExecutionCreate) SetStatus(v missionexecution.Status) *MissionExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MissionExecutionCreate) SetNillableStatus(v *missionexecution.Status) *MissionExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *MissionExecutionCreate) SetStartedAt(v time.Time) *MissionExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *MissionExecutionCreate) SetNillableStartedAt(v *time.Time) *MissionExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *MissionExecutionCreate) SetCompletedAt(v time.Time) *MissionExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *MissionExecutionCreate) SetNillableCompletedAt(v *time.Time) *MissionExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetOutput sets the "output" field.
func (_c *MissionExecutionCreate) SetOutput(v string) *MissionExecutionCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_c *MissionExecutionCreate) SetNillableOutput(v *string) *MissionExecutionCreate {
	if v != nil {
		_c.SetOutput(*v)
	}
	return _c
}

// SetStructuredOutput sets the "structured_output" field.
func (_c *MissionExecutionCreate) SetStructuredOutput(v map[string]interface{}) *MissionExecutionCreate {
	_c.mutation.SetStructuredOutput(v)
	return _c
}

// SetToolCount sets the "tool_count" field.
func (_c *MissionExecutionCreate) SetToolCount(v int) *MissionExecutionCreate {
	_c.mutation.SetToolCount(v)
	return _c
}

// SetNillableToolCount sets the "tool_count" field if the given value is not nil.
func (_c *MissionExecutionCreate) SetNillableToolCount(v *int) *MissionExecutionCreate {
	if v != nil {
		_c.SetToolCount(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *MissionExecutionCreate) SetErrorMessage(v string) *MissionExecutionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *MissionExecutionCreate) SetNillableErrorMessage(v *string) *MissionExecutionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MissionExecutionCreate) SetCreatedAt(v time.Time) *MissionExecutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MissionExecutionCreate) SetNillableCreatedAt(v *time.Time) *MissionExecutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MissionExecutionCreate) SetID(v string) *MissionExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MissionExecutionMutation object of the builder.
func (_c *MissionExecutionCreate) Mutation() *MissionExecutionMutation {
	return _c.mutation
}

// Save creates the MissionExecution in the database.
func (_c *MissionExecutionCreate) Save(ctx context.Context) (*MissionExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MissionExecutionCreate) SaveX(ctx context.Context) *MissionExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MissionExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MissionExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MissionExecutionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := missionexecution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ToolCount(); !ok {
		v := missionexecution.DefaultToolCount
		_c.mutation.SetToolCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := missionexecution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MissionExecutionCreate) check() error {
	if _, ok := _c.mutation.MissionID(); !ok {
		return &ValidationError{Name: "mission_id", err: errors.New(`ent: missing required field "MissionExecution.mission_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "MissionExecution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := missionexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MissionExecution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ToolCount(); !ok {
		return &ValidationError{Name: "tool_count", err: errors.New(`ent: missing required field "MissionExecution.tool_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MissionExecution.created_at"`)}
	}
	return nil
}

func (_c *MissionExecutionCreate) sqlSave(ctx context.Context) (*MissionExecution, error) {
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
			return nil, fmt.Errorf("unexpected MissionExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MissionExecutionCreate) createSpec() (*MissionExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &MissionExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(missionexecution.Table, sqlgraph.NewFieldSpec(missionexecution.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.MissionID(); ok {
		_spec.SetField(missionexecution.FieldMissionID, field.TypeString, value)
		_node.MissionID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(missionexecution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(missionexecution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(missionexecution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(missionexecution.FieldOutput, field.TypeString, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.StructuredOutput(); ok {
		_spec.SetField(missionexecution.FieldStructuredOutput, field.TypeJSON, value)
		_node.StructuredOutput = value
	}
	if value, ok := _c.mutation.ToolCount(); ok {
		_spec.SetField(missionexecution.FieldToolCount, field.TypeInt, value)
		_node.ToolCount = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(missionexecution.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(missionexecution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MissionExecution.Create().
//		SetMissionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MissionExecutionUpsert) {
//			SetMissionID(v+v).
//		}).
//		Exec(ctx)
func (_c *MissionExecutionCreate) OnConflict(opts ...sql.ConflictOption) *MissionExecutionUpsertOne {
	_c.conflict = opts
	return &MissionExecutionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MissionExecution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MissionExecutionCreate) OnConflictColumns(columns ...string) *MissionExecutionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MissionExecutionUpsertOne{
		create: _c,
	}
}

type (
	// MissionExecutionUpsertOne is the builder for "upsert"-ing
	//  one MissionExecution node.
	MissionExecutionUpsertOne struct {
		create *MissionExecutionCreate
	}

	// MissionExecutionUpsert is the "OnConflict" setter.
	MissionExecutionUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *MissionExecutionUpsert) SetStatus(v missionexecution.Status) *MissionExecutionUpsert {
	u.Set(missionexecution.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MissionExecutionUpsert) UpdateStatus() *MissionExecutionUpsert {
	u.SetExcluded(missionexecution.FieldStatus)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *MissionExecutionUpsert) SetStartedAt(v time.Time) *MissionExecutionUpsert {
	u.Set(missionexecution.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *MissionExecutionUpsert) UpdateStartedAt() *MissionExecutionUpsert {
	u.SetExcluded(missionexecution.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *MissionExecutionUpsert) ClearStartedAt() *MissionExecutionUpsert {
	u.SetNull(missionexecution.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *MissionExecutionUpsert) SetCompletedAt(v time.Time) *MissionExecutionUpsert {
	u.Set(missionexecution.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *MissionExecutionUpsert) UpdateCompletedAt() *MissionExecutionUpsert {
	u.SetExcluded(missionexecution.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *MissionExecutionUpsert) ClearCompletedAt() *MissionExecutionUpsert {
	u.SetNull(missionexecution.FieldCompletedAt)
	return u
}

// SetOutput sets the "output" field.
func (u *MissionExecutionUpsert) SetOutput(v string) *MissionExecutionUpsert {
	u.Set(missionexecution.FieldOutput, v)
	return u
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *MissionExecutionUpsert) UpdateOutput() *MissionExecutionUpsert {
	u.SetExcluded(missionexecution.FieldOutput)
	return u
}

// ClearOutput clears the value of the "output" field.
func (u *MissionExecutionUpsert) ClearOutput() *MissionExecutionUpsert {
	u.SetNull(missionexecution.FieldOutput)
	return u
}

// SetStructuredOutput sets the "structured_output" field.
func (u *MissionExecutionUpsert) SetStructuredOutput(v map[string]interface{}) *MissionExecutionUpsert {
	u.Set(missionexecution.FieldStructuredOutput, v)
	return u
}

// UpdateStructuredOutput sets the "structured_output" field to the value that was provided on create.
func (u *MissionExecutionUpsert) UpdateStructuredOutput() *MissionExecutionUpsert {
	u.SetExcluded(missionexecution.FieldStructuredOutput)
	return u
}

// ClearStructuredOutput clears the value of the "structured_output" field.
func (u *MissionExecutionUpsert) ClearStructuredOutput() *MissionExecutionUpsert {
	u.SetNull(missionexecution.FieldStructuredOutput)
	return u
}

// SetToolCount sets the "tool_count" field.
func (u *MissionExecutionUpsert) SetToolCount(v int) *MissionExecutionUpsert {
	u.Set(missionexecution.FieldToolCount, v)
	return u
}

// UpdateToolCount sets the "tool_count" field to the value that was provided on create.
func (u *MissionExecutionUpsert) UpdateToolCount() *MissionExecutionUpsert {
	u.SetExcluded(missionexecution.FieldToolCount)
	return u
}

// AddToolCount adds v to the "tool_count" field.
func (u *MissionExecutionUpsert) AddToolCount(v int) *MissionExecutionUpsert {
	u.Add(missionexecution.FieldToolCount, v)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *MissionExecutionUpsert) SetErrorMessage(v string) *MissionExecutionUpsert {
	u.Set(missionexecution.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *MissionExecutionUpsert) UpdateErrorMessage() *MissionExecutionUpsert {
	u.SetExcluded(missionexecution.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *MissionExecutionUpsert) ClearErrorMessage() *MissionExecutionUpsert {
	u.SetNull(missionexecution.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MissionExecution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(missionexecution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MissionExecutionUpsertOne) UpdateNewValues() *MissionExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(missionexecution.FieldID)
		}
		if _, exists := u.create.mutation.MissionID(); exists {
			s.SetIgnore(missionexecution.FieldMissionID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(missionexecution.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MissionExecution.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MissionExecutionUpsertOne) Ignore() *MissionExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MissionExecutionUpsertOne) DoNothing() *MissionExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MissionExecutionCreate.OnConflict
// documentation for more info.
func (u *MissionExecutionUpsertOne) Update(set func(*MissionExecutionUpsert)) *MissionExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MissionExecutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *MissionExecutionUpsertOne) SetStatus(v missionexecution.Status) *MissionExecutionUpsertOne {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MissionExecutionUpsertOne) UpdateStatus() *MissionExecutionUpsertOne {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.UpdateStatus()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *MissionExecutionUpsertOne) SetStartedAt(v time.Time) *MissionExecutionUpsertOne {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *MissionExecutionUpsertOne) UpdateStartedAt() *MissionExecutionUpsertOne {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *MissionExecutionUpsertOne) ClearStartedAt() *MissionExecutionUpsertOne {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *MissionExecutionUpsertOne) SetCompletedAt(v time.Time) *MissionExecutionUpsertOne {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *MissionExecutionUpsertOne) UpdateCompletedAt() *MissionExecutionUpsertOne {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *MissionExecutionUpsertOne) ClearCompletedAt() *MissionExecutionUpsertOne {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetOutput sets the "output" field.
func (u *MissionExecutionUpsertOne) SetOutput(v string) *MissionExecutionUpsertOne {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.SetOutput(v)
	})
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *MissionExecutionUpsertOne) UpdateOutput() *MissionExecutionUpsertOne {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.UpdateOutput()
	})
}

// ClearOutput clears the value of the "output" field.
func (u *MissionExecutionUpsertOne) ClearOutput() *MissionExecutionUpsertOne {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.ClearOutput()
	})
}

// SetStructuredOutput sets the "structured_output" field.
func (u *MissionExecutionUpsertOne) SetStructuredOutput(v map[string]interface{}) *MissionExecutionUpsertOne {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.SetStructuredOutput(v)
	})
}

// UpdateStructuredOutput sets the "structured_output" field to the value that was provided on create.
func (u *MissionExecutionUpsertOne) UpdateStructuredOutput() *MissionExecutionUpsertOne {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.UpdateStructuredOutput()
	})
}

// ClearStructuredOutput clears the value of the "structured_output" field.
func (u *MissionExecutionUpsertOne) ClearStructuredOutput() *MissionExecutionUpsertOne {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.ClearStructuredOutput()
	})
}

// SetToolCount sets the "tool_count" field.
func (u *MissionExecutionUpsertOne) SetToolCount(v int) *MissionExecutionUpsertOne {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.SetToolCount(v)
	})
}

// AddToolCount adds v to the "tool_count" field.
func (u *MissionExecutionUpsertOne) AddToolCount(v int) *MissionExecutionUpsertOne {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.AddToolCount(v)
	})
}

// UpdateToolCount sets the "tool_count" field to the value that was provided on create.
func (u *MissionExecutionUpsertOne) UpdateToolCount() *MissionExecutionUpsertOne {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.UpdateToolCount()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *MissionExecutionUpsertOne) SetErrorMessage(v string) *MissionExecutionUpsertOne {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *MissionExecutionUpsertOne) UpdateErrorMessage() *MissionExecutionUpsertOne {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *MissionExecutionUpsertOne) ClearErrorMessage() *MissionExecutionUpsertOne {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *MissionExecutionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MissionExecutionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MissionExecutionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MissionExecutionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MissionExecutionUpsertOne.ID is not supported by MySQL driver. Use MissionExecutionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MissionExecutionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MissionExecutionCreateBulk is the builder for creating many MissionExecution entities in bulk.
type MissionExecutionCreateBulk struct {
	config
	err      error
	builders []*MissionExecutionCreate
	conflict []sql.ConflictOption
}

// Save creates the MissionExecution entities in the database.
func (_c *MissionExecutionCreateBulk) Save(ctx context.Context) ([]*MissionExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MissionExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MissionExecutionMutation)
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
func (_c *MissionExecutionCreateBulk) SaveX(ctx context.Context) []*MissionExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MissionExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MissionExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MissionExecution.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MissionExecutionUpsert) {
//			SetMissionID(v+v).
//		}).
//		Exec(ctx)
func (_c *MissionExecutionCreateBulk) OnConflict(opts ...sql.ConflictOption) *MissionExecutionUpsertBulk {
	_c.conflict = opts
	return &MissionExecutionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MissionExecution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MissionExecutionCreateBulk) OnConflictColumns(columns ...string) *MissionExecutionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MissionExecutionUpsertBulk{
		create: _c,
	}
}

// MissionExecutionUpsertBulk is the builder for "upsert"-ing
// a bulk of MissionExecution nodes.
type MissionExecutionUpsertBulk struct {
	create *MissionExecutionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MissionExecution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(missionexecution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MissionExecutionUpsertBulk) UpdateNewValues() *MissionExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(missionexecution.FieldID)
			}
			if _, exists := b.mutation.MissionID(); exists {
				s.SetIgnore(missionexecution.FieldMissionID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(missionexecution.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MissionExecution.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MissionExecutionUpsertBulk) Ignore() *MissionExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MissionExecutionUpsertBulk) DoNothing() *MissionExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MissionExecutionCreateBulk.OnConflict
// documentation for more info.
func (u *MissionExecutionUpsertBulk) Update(set func(*MissionExecutionUpsert)) *MissionExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MissionExecutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *MissionExecutionUpsertBulk) SetStatus(v missionexecution.Status) *MissionExecutionUpsertBulk {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MissionExecutionUpsertBulk) UpdateStatus() *MissionExecutionUpsertBulk {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.UpdateStatus()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *MissionExecutionUpsertBulk) SetStartedAt(v time.Time) *MissionExecutionUpsertBulk {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *MissionExecutionUpsertBulk) UpdateStartedAt() *MissionExecutionUpsertBulk {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *MissionExecutionUpsertBulk) ClearStartedAt() *MissionExecutionUpsertBulk {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *MissionExecutionUpsertBulk) SetCompletedAt(v time.Time) *MissionExecutionUpsertBulk {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *MissionExecutionUpsertBulk) UpdateCompletedAt() *MissionExecutionUpsertBulk {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *MissionExecutionUpsertBulk) ClearCompletedAt() *MissionExecutionUpsertBulk {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetOutput sets the "output" field.
func (u *MissionExecutionUpsertBulk) SetOutput(v string) *MissionExecutionUpsertBulk {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.SetOutput(v)
	})
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *MissionExecutionUpsertBulk) UpdateOutput() *MissionExecutionUpsertBulk {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.UpdateOutput()
	})
}

// ClearOutput clears the value of the "output" field.
func (u *MissionExecutionUpsertBulk) ClearOutput() *MissionExecutionUpsertBulk {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.ClearOutput()
	})
}

// SetStructuredOutput sets the "structured_output" field.
func (u *MissionExecutionUpsertBulk) SetStructuredOutput(v map[string]interface{}) *MissionExecutionUpsertBulk {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.SetStructuredOutput(v)
	})
}

// UpdateStructuredOutput sets the "structured_output" field to the value that was provided on create.
func (u *MissionExecutionUpsertBulk) UpdateStructuredOutput() *MissionExecutionUpsertBulk {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.UpdateStructuredOutput()
	})
}

// ClearStructuredOutput clears the value of the "structured_output" field.
func (u *MissionExecutionUpsertBulk) ClearStructuredOutput() *MissionExecutionUpsertBulk {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.ClearStructuredOutput()
	})
}

// SetToolCount sets the "tool_count" field.
func (u *MissionExecutionUpsertBulk) SetToolCount(v int) *MissionExecutionUpsertBulk {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.SetToolCount(v)
	})
}

// AddToolCount adds v to the "tool_count" field.
func (u *MissionExecutionUpsertBulk) AddToolCount(v int) *MissionExecutionUpsertBulk {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.AddToolCount(v)
	})
}

// UpdateToolCount sets the "tool_count" field to the value that was provided on create.
func (u *MissionExecutionUpsertBulk) UpdateToolCount() *MissionExecutionUpsertBulk {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.UpdateToolCount()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *MissionExecutionUpsertBulk) SetErrorMessage(v string) *MissionExecutionUpsertBulk {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *MissionExecutionUpsertBulk) UpdateErrorMessage() *MissionExecutionUpsertBulk {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *MissionExecutionUpsertBulk) ClearErrorMessage() *MissionExecutionUpsertBulk {
	return u.Update(func(s *MissionExecutionUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *MissionExecutionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MissionExecutionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MissionExecutionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MissionExecutionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
