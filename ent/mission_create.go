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
	"github.com/kestrel-ai/kestrel/ent/mission"
)

// MissionCreate is the builder for creating a Mission entity.
type MissionCreate struct {
	config
	mutation *MissionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *MissionCreate) SetName(v string) *MissionCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *MissionCreate) SetPrompt(v string) *MissionCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetSchedule sets the "schedule" field.
func (_c *MissionCreate) SetSchedule(v string) *MissionCreate {
	_c.mutation.SetSchedule(v)
	return _c
}

// SetNillableSchedule sets the "schedule" field if the given value is not nil.
func (_c *MissionCreate) SetNillableSchedule(v *string) *MissionCreate {
	if v != nil {
		_c.SetSchedule(*v)
	}
	return _c
}

// SetSandboxPolicy sets the "sandbox_policy" field.
func (_c *MissionCreate) SetSandboxPolicy(v string) *MissionCreate {
	_c.mutation.SetSandboxPolicy(v)
	return _c
}

// SetNillableSandboxPolicy sets the "sandbox_policy" field if the given value is not nil.
func (_c *MissionCreate) SetNillableSandboxPolicy(v *string) *MissionCreate {
	if v != nil {
		_c.SetSandboxPolicy(*v)
	}
	return _c
}

// SetPersonality sets the "personality" field.
func (_c *MissionCreate) SetPersonality(v string) *MissionCreate {
	_c.mutation.SetPersonality(v)
	return _c
}

// SetNillablePersonality sets the "personality" field if the given value is not nil.
func (_c *MissionCreate) SetNillablePersonality(v *string) *MissionCreate {
	if v != nil {
		_c.SetPersonality(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *MissionCreate) SetModel(v string) *MissionCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *MissionCreate) SetNillableModel(v *string) *MissionCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetTools sets the "tools" field.
func (_c *MissionCreate) SetTools(v []string) *MissionCreate {
	_c.mutation.SetTools(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *MissionCreate) SetStatus(v mission.Status) *MissionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MissionCreate) SetNillableStatus(v *mission.Status) *MissionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *MissionCreate) SetUserID(v string) *MissionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *MissionCreate) SetNillableUserID(v *string) *MissionCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MissionCreate) SetCreatedAt(v time.Time) *MissionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MissionCreate) SetNillableCreatedAt(v *time.Time) *MissionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MissionCreate) SetUpdatedAt(v time.Time) *MissionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MissionCreate) SetNillableUpdatedAt(v *time.Time) *MissionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MissionCreate) SetID(v string) *MissionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MissionMutation object of the builder.
func (_c *MissionCreate) Mutation() *MissionMutation {
	return _c.mutation
}

// Save creates the Mission in the database.
func (_c *MissionCreate) Save(ctx context.Context) (*Mission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MissionCreate) SaveX(ctx context.Context) *Mission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MissionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := mission.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := mission.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MissionCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Mission.name"`)}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "Mission.prompt"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Mission.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := mission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Mission.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Mission.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Mission.updated_at"`)}
	}
	return nil
}

func (_c *MissionCreate) sqlSave(ctx context.Context) (*Mission, error) {
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
			return nil, fmt.Errorf("unexpected Mission.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MissionCreate) createSpec() (*Mission, *sqlgraph.CreateSpec) {
	var (
		_node = &Mission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mission.Table, sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(mission.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(mission.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Schedule(); ok {
		_spec.SetField(mission.FieldSchedule, field.TypeString, value)
		_node.Schedule = value
	}
	if value, ok := _c.mutation.SandboxPolicy(); ok {
		_spec.SetField(mission.FieldSandboxPolicy, field.TypeString, value)
		_node.SandboxPolicy = value
	}
	if value, ok := _c.mutation.Personality(); ok {
		_spec.SetField(mission.FieldPersonality, field.TypeString, value)
		_node.Personality = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(mission.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Tools(); ok {
		_spec.SetField(mission.FieldTools, field.TypeJSON, value)
		_node.Tools = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(mission.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(mission.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(mission.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Mission.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MissionUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *MissionCreate) OnConflict(opts ...sql.ConflictOption) *MissionUpsertOne {
	_c.conflict = opts
	return &MissionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Mission.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MissionCreate) OnConflictColumns(columns ...string) *MissionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MissionUpsertOne{
		create: _c,
	}
}

type (
	// MissionUpsertOne is the builder for "upsert"-ing
	//  one Mission node.
	MissionUpsertOne struct {
		create *MissionCreate
	}

	// MissionUpsert is the "OnConflict" setter.
	MissionUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *MissionUpsert) SetName(v string) *MissionUpsert {
	u.Set(mission.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *MissionUpsert) UpdateName() *MissionUpsert {
	u.SetExcluded(mission.FieldName)
	return u
}

// SetPrompt sets the "prompt" field.
func (u *MissionUpsert) SetPrompt(v string) *MissionUpsert {
	u.Set(mission.FieldPrompt, v)
	return u
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *MissionUpsert) UpdatePrompt() *MissionUpsert {
	u.SetExcluded(mission.FieldPrompt)
	return u
}

// SetSchedule sets the "schedule" field.
func (u *MissionUpsert) SetSchedule(v string) *MissionUpsert {
	u.Set(mission.FieldSchedule, v)
	return u
}

// UpdateSchedule sets the "schedule" field to the value that was provided on create.
func (u *MissionUpsert) UpdateSchedule() *MissionUpsert {
	u.SetExcluded(mission.FieldSchedule)
	return u
}

// ClearSchedule clears the value of the "schedule" field.
func (u *MissionUpsert) ClearSchedule() *MissionUpsert {
	u.SetNull(mission.FieldSchedule)
	return u
}

// SetSandboxPolicy sets the "sandbox_policy" field.
func (u *MissionUpsert) SetSandboxPolicy(v string) *MissionUpsert {
	u.Set(mission.FieldSandboxPolicy, v)
	return u
}

// UpdateSandboxPolicy sets the "sandbox_policy" field to the value that was provided on create.
func (u *MissionUpsert) UpdateSandboxPolicy() *MissionUpsert {
	u.SetExcluded(mission.FieldSandboxPolicy)
	return u
}

// ClearSandboxPolicy clears the value of the "sandbox_policy" field.
func (u *MissionUpsert) ClearSandboxPolicy() *MissionUpsert {
	u.SetNull(mission.FieldSandboxPolicy)
	return u
}

// SetPersonality sets the "personality" field.
func (u *MissionUpsert) SetPersonality(v string) *MissionUpsert {
	u.Set(mission.FieldPersonality, v)
	return u
}

// UpdatePersonality sets the "personality" field to the value that was provided on create.
func (u *MissionUpsert) UpdatePersonality() *MissionUpsert {
	u.SetExcluded(mission.FieldPersonality)
	return u
}

// ClearPersonality clears the value of the "personality" field.
func (u *MissionUpsert) ClearPersonality() *MissionUpsert {
	u.SetNull(mission.FieldPersonality)
	return u
}

// SetModel sets the "model" field.
func (u *MissionUpsert) SetModel(v string) *MissionUpsert {
	u.Set(mission.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *MissionUpsert) UpdateModel() *MissionUpsert {
	u.SetExcluded(mission.FieldModel)
	return u
}

// ClearModel clears the value of the "model" field.
func (u *MissionUpsert) ClearModel() *MissionUpsert {
	u.SetNull(mission.FieldModel)
	return u
}

// SetTools sets the "tools" field.
func (u *MissionUpsert) SetTools(v []string) *MissionUpsert {
	u.Set(mission.FieldTools, v)
	return u
}

// UpdateTools sets the "tools" field to the value that was provided on create.
func (u *MissionUpsert) UpdateTools() *MissionUpsert {
	u.SetExcluded(mission.FieldTools)
	return u
}

// ClearTools clears the value of the "tools" field.
func (u *MissionUpsert) ClearTools() *MissionUpsert {
	u.SetNull(mission.FieldTools)
	return u
}

// SetStatus sets the "status" field.
func (u *MissionUpsert) SetStatus(v mission.Status) *MissionUpsert {
	u.Set(mission.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MissionUpsert) UpdateStatus() *MissionUpsert {
	u.SetExcluded(mission.FieldStatus)
	return u
}

// SetUserID sets the "user_id" field.
func (u *MissionUpsert) SetUserID(v string) *MissionUpsert {
	u.Set(mission.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *MissionUpsert) UpdateUserID() *MissionUpsert {
	u.SetExcluded(mission.FieldUserID)
	return u
}

// ClearUserID clears the value of the "user_id" field.
func (u *MissionUpsert) ClearUserID() *MissionUpsert {
	u.SetNull(mission.FieldUserID)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MissionUpsert) SetUpdatedAt(v time.Time) *MissionUpsert {
	u.Set(mission.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MissionUpsert) UpdateUpdatedAt() *MissionUpsert {
	u.SetExcluded(mission.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Mission.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mission.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MissionUpsertOne) UpdateNewValues() *MissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(mission.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(mission.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Mission.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MissionUpsertOne) Ignore() *MissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MissionUpsertOne) DoNothing() *MissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MissionCreate.OnConflict
// documentation for more info.
func (u *MissionUpsertOne) Update(set func(*MissionUpsert)) *MissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MissionUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *MissionUpsertOne) SetName(v string) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateName() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateName()
	})
}

// SetPrompt sets the "prompt" field.
func (u *MissionUpsertOne) SetPrompt(v string) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdatePrompt() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdatePrompt()
	})
}

// SetSchedule sets the "schedule" field.
func (u *MissionUpsertOne) SetSchedule(v string) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetSchedule(v)
	})
}

// UpdateSchedule sets the "schedule" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateSchedule() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateSchedule()
	})
}

// ClearSchedule clears the value of the "schedule" field.
func (u *MissionUpsertOne) ClearSchedule() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.ClearSchedule()
	})
}

// SetSandboxPolicy sets the "sandbox_policy" field.
func (u *MissionUpsertOne) SetSandboxPolicy(v string) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetSandboxPolicy(v)
	})
}

// UpdateSandboxPolicy sets the "sandbox_policy" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateSandboxPolicy() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateSandboxPolicy()
	})
}

// ClearSandboxPolicy clears the value of the "sandbox_policy" field.
func (u *MissionUpsertOne) ClearSandboxPolicy() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.ClearSandboxPolicy()
	})
}

// SetPersonality sets the "personality" field.
func (u *MissionUpsertOne) SetPersonality(v string) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetPersonality(v)
	})
}

// UpdatePersonality sets the "personality" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdatePersonality() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdatePersonality()
	})
}

// ClearPersonality clears the value of the "personality" field.
func (u *MissionUpsertOne) ClearPersonality() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.ClearPersonality()
	})
}

// SetModel sets the "model" field.
func (u *MissionUpsertOne) SetModel(v string) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateModel() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateModel()
	})
}

// ClearModel clears the value of the "model" field.
func (u *MissionUpsertOne) ClearModel() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.ClearModel()
	})
}

// SetTools sets the "tools" field.
func (u *MissionUpsertOne) SetTools(v []string) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetTools(v)
	})
}

// UpdateTools sets the "tools" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateTools() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateTools()
	})
}

// ClearTools clears the value of the "tools" field.
func (u *MissionUpsertOne) ClearTools() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.ClearTools()
	})
}

// SetStatus sets the "status" field.
func (u *MissionUpsertOne) SetStatus(v mission.Status) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateStatus() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateStatus()
	})
}

// SetUserID sets the "user_id" field.
func (u *MissionUpsertOne) SetUserID(v string) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateUserID() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *MissionUpsertOne) ClearUserID() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.ClearUserID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MissionUpsertOne) SetUpdatedAt(v time.Time) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateUpdatedAt() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MissionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MissionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MissionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MissionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MissionUpsertOne.ID is not supported by MySQL driver. Use MissionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MissionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MissionCreateBulk is the builder for creating many Mission entities in bulk.
type MissionCreateBulk struct {
	config
	err      error
	builders []*MissionCreate
	conflict []sql.ConflictOption
}

// Save creates the Mission entities in the database.
func (_c *MissionCreateBulk) Save(ctx context.Context) ([]*Mission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Mission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MissionMutation)
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
func (_c *MissionCreateBulk) SaveX(ctx context.Context) []*Mission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Mission.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MissionUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *MissionCreateBulk) OnConflict(opts ...sql.ConflictOption) *MissionUpsertBulk {
	_c.conflict = opts
	return &MissionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Mission.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MissionCreateBulk) OnConflictColumns(columns ...string) *MissionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MissionUpsertBulk{
		create: _c,
	}
}

// MissionUpsertBulk is the builder for "upsert"-ing
// a bulk of Mission nodes.
type MissionUpsertBulk struct {
	create *MissionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Mission.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mission.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MissionUpsertBulk) UpdateNewValues() *MissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(mission.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(mission.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Mission.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MissionUpsertBulk) Ignore() *MissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MissionUpsertBulk) DoNothing() *MissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MissionCreateBulk.OnConflict
// documentation for more info.
func (u *MissionUpsertBulk) Update(set func(*MissionUpsert)) *MissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MissionUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *MissionUpsertBulk) SetName(v string) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateName() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateName()
	})
}

// SetPrompt sets the "prompt" field.
func (u *MissionUpsertBulk) SetPrompt(v string) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdatePrompt() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdatePrompt()
	})
}

// SetSchedule sets the "schedule" field.
func (u *MissionUpsertBulk) SetSchedule(v string) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetSchedule(v)
	})
}

// UpdateSchedule sets the "schedule" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateSchedule() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateSchedule()
	})
}

// ClearSchedule clears the value of the "schedule" field.
func (u *MissionUpsertBulk) ClearSchedule() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.ClearSchedule()
	})
}

// SetSandboxPolicy sets the "sandbox_policy" field.
func (u *MissionUpsertBulk) SetSandboxPolicy(v string) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetSandboxPolicy(v)
	})
}

// UpdateSandboxPolicy sets the "sandbox_policy" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateSandboxPolicy() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateSandboxPolicy()
	})
}

// ClearSandboxPolicy clears the value of the "sandbox_policy" field.
func (u *MissionUpsertBulk) ClearSandboxPolicy() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.ClearSandboxPolicy()
	})
}

// SetPersonality sets the "personality" field.
func (u *MissionUpsertBulk) SetPersonality(v string) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetPersonality(v)
	})
}

// UpdatePersonality sets the "personality" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdatePersonality() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdatePersonality()
	})
}

// ClearPersonality clears the value of the "personality" field.
func (u *MissionUpsertBulk) ClearPersonality() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.ClearPersonality()
	})
}

// SetModel sets the "model" field.
func (u *MissionUpsertBulk) SetModel(v string) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateModel() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateModel()
	})
}

// ClearModel clears the value of the "model" field.
func (u *MissionUpsertBulk) ClearModel() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.ClearModel()
	})
}

// SetTools sets the "tools" field.
func (u *MissionUpsertBulk) SetTools(v []string) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetTools(v)
	})
}

// UpdateTools sets the "tools" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateTools() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateTools()
	})
}

// ClearTools clears the value of the "tools" field.
func (u *MissionUpsertBulk) ClearTools() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.ClearTools()
	})
}

// SetStatus sets the "status" field.
func (u *MissionUpsertBulk) SetStatus(v mission.Status) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateStatus() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateStatus()
	})
}

// SetUserID sets the "user_id" field.
func (u *MissionUpsertBulk) SetUserID(v string) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateUserID() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *MissionUpsertBulk) ClearUserID() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.ClearUserID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MissionUpsertBulk) SetUpdatedAt(v time.Time) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateUpdatedAt() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MissionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MissionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MissionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MissionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
