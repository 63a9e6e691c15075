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
	"github.com/kestrel-ai/kestrel/ent/session"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkingDir sets the "working_dir" field.
func (_c *SessionCreate) SetWorkingDir(v string) *SessionCreate {
	_c.mutation.SetWorkingDir(v)
	return _c
}

// SetNillableWorkingDir sets the "working_dir" field if the given value is not nil.
func (_c *SessionCreate) SetNillableWorkingDir(v *string) *SessionCreate {
	if v != nil {
		_c.SetWorkingDir(*v)
	}
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *SessionCreate) SetStartTime(v time.Time) *SessionCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStartTime(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetStartTime(*v)
	}
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *SessionCreate) SetEndTime(v time.Time) *SessionCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_c *SessionCreate) SetNillableEndTime(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetEndTime(*v)
	}
	return _c
}

// SetLastActivity sets the "last_activity" field.
func (_c *SessionCreate) SetLastActivity(v time.Time) *SessionCreate {
	_c.mutation.SetLastActivity(v)
	return _c
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_c *SessionCreate) SetNillableLastActivity(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetLastActivity(*v)
	}
	return _c
}

// SetContinuedFrom sets the "continued_from" field.
func (_c *SessionCreate) SetContinuedFrom(v string) *SessionCreate {
	_c.mutation.SetContinuedFrom(v)
	return _c
}

// SetNillableContinuedFrom sets the "continued_from" field if the given value is not nil.
func (_c *SessionCreate) SetNillableContinuedFrom(v *string) *SessionCreate {
	if v != nil {
		_c.SetContinuedFrom(*v)
	}
	return _c
}

// SetMedium sets the "medium" field.
func (_c *SessionCreate) SetMedium(v string) *SessionCreate {
	_c.mutation.SetMedium(v)
	return _c
}

// SetNillableMedium sets the "medium" field if the given value is not nil.
func (_c *SessionCreate) SetNillableMedium(v *string) *SessionCreate {
	if v != nil {
		_c.SetMedium(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *SessionCreate) SetUserID(v string) *SessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableUserID(v *string) *SessionCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetPersonality sets the "personality" field.
func (_c *SessionCreate) SetPersonality(v string) *SessionCreate {
	_c.mutation.SetPersonality(v)
	return _c
}

// SetNillablePersonality sets the "personality" field if the given value is not nil.
func (_c *SessionCreate) SetNillablePersonality(v *string) *SessionCreate {
	if v != nil {
		_c.SetPersonality(*v)
	}
	return _c
}

// SetSandboxPolicy sets the "sandbox_policy" field.
func (_c *SessionCreate) SetSandboxPolicy(v string) *SessionCreate {
	_c.mutation.SetSandboxPolicy(v)
	return _c
}

// SetNillableSandboxPolicy sets the "sandbox_policy" field if the given value is not nil.
func (_c *SessionCreate) SetNillableSandboxPolicy(v *string) *SessionCreate {
	if v != nil {
		_c.SetSandboxPolicy(*v)
	}
	return _c
}

// SetMissionID sets the "mission_id" field.
func (_c *SessionCreate) SetMissionID(v string) *SessionCreate {
	_c.mutation.SetMissionID(v)
	return _c
}

// SetNillableMissionID sets the "mission_id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableMissionID(v *string) *SessionCreate {
	if v != nil {
		_c.SetMissionID(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *SessionCreate) SetSummary(v string) *SessionCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *SessionCreate) SetNillableSummary(v *string) *SessionCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetSummaryUpdatedAt sets the "summary_updated_at" field.
func (_c *SessionCreate) SetSummaryUpdatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetSummaryUpdatedAt(v)
	return _c
}

// SetNillableSummaryUpdatedAt sets the "summary_updated_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableSummaryUpdatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetSummaryUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionCreate) SetID(v string) *SessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.StartTime(); !ok {
		v := session.DefaultStartTime()
		_c.mutation.SetStartTime(v)
	}
	if _, ok := _c.mutation.LastActivity(); !ok {
		v := session.DefaultLastActivity()
		_c.mutation.SetLastActivity(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "Session.start_time"`)}
	}
	if _, ok := _c.mutation.LastActivity(); !ok {
		return &ValidationError{Name: "last_activity", err: errors.New(`ent: missing required field "Session.last_activity"`)}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
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
			return nil, fmt.Errorf("unexpected Session.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkingDir(); ok {
		_spec.SetField(session.FieldWorkingDir, field.TypeString, value)
		_node.WorkingDir = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(session.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(session.FieldEndTime, field.TypeTime, value)
		_node.EndTime = &value
	}
	if value, ok := _c.mutation.LastActivity(); ok {
		_spec.SetField(session.FieldLastActivity, field.TypeTime, value)
		_node.LastActivity = value
	}
	if value, ok := _c.mutation.ContinuedFrom(); ok {
		_spec.SetField(session.FieldContinuedFrom, field.TypeString, value)
		_node.ContinuedFrom = &value
	}
	if value, ok := _c.mutation.Medium(); ok {
		_spec.SetField(session.FieldMedium, field.TypeString, value)
		_node.Medium = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(session.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Personality(); ok {
		_spec.SetField(session.FieldPersonality, field.TypeString, value)
		_node.Personality = value
	}
	if value, ok := _c.mutation.SandboxPolicy(); ok {
		_spec.SetField(session.FieldSandboxPolicy, field.TypeString, value)
		_node.SandboxPolicy = value
	}
	if value, ok := _c.mutation.MissionID(); ok {
		_spec.SetField(session.FieldMissionID, field.TypeString, value)
		_node.MissionID = &value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(session.FieldSummary, field.TypeString, value)
		_node.Summary = &value
	}
	if value, ok := _c.mutation.SummaryUpdatedAt(); ok {
		_spec.SetField(session.FieldSummaryUpdatedAt, field.TypeTime, value)
		_node.SummaryUpdatedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Session.Create().
//		SetWorkingDir(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionUpsert) {
//			SetWorkingDir(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionCreate) OnConflict(opts ...sql.ConflictOption) *SessionUpsertOne {
	_c.conflict = opts
	return &SessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionCreate) OnConflictColumns(columns ...string) *SessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionUpsertOne{
		create: _c,
	}
}

type (
	// SessionUpsertOne is the builder for "upsert"-ing
	//  one Session node.
	SessionUpsertOne struct {
		create *SessionCreate
	}

	// SessionUpsert is the "OnConflict" setter.
	SessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkingDir sets the "working_dir" field.
func (u *SessionUpsert) SetWorkingDir(v string) *SessionUpsert {
	u.Set(session.FieldWorkingDir, v)
	return u
}

// UpdateWorkingDir sets the "working_dir" field to the value that was provided on create.
func (u *SessionUpsert) UpdateWorkingDir() *SessionUpsert {
	u.SetExcluded(session.FieldWorkingDir)
	return u
}

// ClearWorkingDir clears the value of the "working_dir" field.
func (u *SessionUpsert) ClearWorkingDir() *SessionUpsert {
	u.SetNull(session.FieldWorkingDir)
	return u
}

// SetStartTime sets the "start_time" field.
func (u *SessionUpsert) SetStartTime(v time.Time) *SessionUpsert {
	u.Set(session.FieldStartTime, v)
	return u
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *SessionUpsert) UpdateStartTime() *SessionUpsert {
	u.SetExcluded(session.FieldStartTime)
	return u
}

// SetEndTime sets the "end_time" field.
func (u *SessionUpsert) SetEndTime(v time.Time) *SessionUpsert {
	u.Set(session.FieldEndTime, v)
	return u
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *SessionUpsert) UpdateEndTime() *SessionUpsert {
	u.SetExcluded(session.FieldEndTime)
	return u
}

// ClearEndTime clears the value of the "end_time" field.
func (u *SessionUpsert) ClearEndTime() *SessionUpsert {
	u.SetNull(session.FieldEndTime)
	return u
}

// SetLastActivity sets the "last_activity" field.
func (u *SessionUpsert) SetLastActivity(v time.Time) *SessionUpsert {
	u.Set(session.FieldLastActivity, v)
	return u
}

// UpdateLastActivity sets the "last_activity" field to the value that was provided on create.
func (u *SessionUpsert) UpdateLastActivity() *SessionUpsert {
	u.SetExcluded(session.FieldLastActivity)
	return u
}

// SetContinuedFrom sets the "continued_from" field.
func (u *SessionUpsert) SetContinuedFrom(v string) *SessionUpsert {
	u.Set(session.FieldContinuedFrom, v)
	return u
}

// UpdateContinuedFrom sets the "continued_from" field to the value that was provided on create.
func (u *SessionUpsert) UpdateContinuedFrom() *SessionUpsert {
	u.SetExcluded(session.FieldContinuedFrom)
	return u
}

// ClearContinuedFrom clears the value of the "continued_from" field.
func (u *SessionUpsert) ClearContinuedFrom() *SessionUpsert {
	u.SetNull(session.FieldContinuedFrom)
	return u
}

// SetMedium sets the "medium" field.
func (u *SessionUpsert) SetMedium(v string) *SessionUpsert {
	u.Set(session.FieldMedium, v)
	return u
}

// UpdateMedium sets the "medium" field to the value that was provided on create.
func (u *SessionUpsert) UpdateMedium() *SessionUpsert {
	u.SetExcluded(session.FieldMedium)
	return u
}

// ClearMedium clears the value of the "medium" field.
func (u *SessionUpsert) ClearMedium() *SessionUpsert {
	u.SetNull(session.FieldMedium)
	return u
}

// SetUserID sets the "user_id" field.
func (u *SessionUpsert) SetUserID(v string) *SessionUpsert {
	u.Set(session.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SessionUpsert) UpdateUserID() *SessionUpsert {
	u.SetExcluded(session.FieldUserID)
	return u
}

// ClearUserID clears the value of the "user_id" field.
func (u *SessionUpsert) ClearUserID() *SessionUpsert {
	u.SetNull(session.FieldUserID)
	return u
}

// SetPersonality sets the "personality" field.
func (u *SessionUpsert) SetPersonality(v string) *SessionUpsert {
	u.Set(session.FieldPersonality, v)
	return u
}

// UpdatePersonality sets the "personality" field to the value that was provided on create.
func (u *SessionUpsert) UpdatePersonality() *SessionUpsert {
	u.SetExcluded(session.FieldPersonality)
	return u
}

// ClearPersonality clears the value of the "personality" field.
func (u *SessionUpsert) ClearPersonality() *SessionUpsert {
	u.SetNull(session.FieldPersonality)
	return u
}

// SetSandboxPolicy sets the "sandbox_policy" field.
func (u *SessionUpsert) SetSandboxPolicy(v string) *SessionUpsert {
	u.Set(session.FieldSandboxPolicy, v)
	return u
}

// UpdateSandboxPolicy sets the "sandbox_policy" field to the value that was provided on create.
func (u *SessionUpsert) UpdateSandboxPolicy() *SessionUpsert {
	u.SetExcluded(session.FieldSandboxPolicy)
	return u
}

// ClearSandboxPolicy clears the value of the "sandbox_policy" field.
func (u *SessionUpsert) ClearSandboxPolicy() *SessionUpsert {
	u.SetNull(session.FieldSandboxPolicy)
	return u
}

// SetMissionID sets the "mission_id" field.
func (u *SessionUpsert) SetMissionID(v string) *SessionUpsert {
	u.Set(session.FieldMissionID, v)
	return u
}

// UpdateMissionID sets the "mission_id" field to the value that was provided on create.
func (u *SessionUpsert) UpdateMissionID() *SessionUpsert {
	u.SetExcluded(session.FieldMissionID)
	return u
}

// ClearMissionID clears the value of the "mission_id" field.
func (u *SessionUpsert) ClearMissionID() *SessionUpsert {
	u.SetNull(session.FieldMissionID)
	return u
}

// SetSummary sets the "summary" field.
func (u *SessionUpsert) SetSummary(v string) *SessionUpsert {
	u.Set(session.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *SessionUpsert) UpdateSummary() *SessionUpsert {
	u.SetExcluded(session.FieldSummary)
	return u
}

// ClearSummary clears the value of the "summary" field.
func (u *SessionUpsert) ClearSummary() *SessionUpsert {
	u.SetNull(session.FieldSummary)
	return u
}

// SetSummaryUpdatedAt sets the "summary_updated_at" field.
func (u *SessionUpsert) SetSummaryUpdatedAt(v time.Time) *SessionUpsert {
	u.Set(session.FieldSummaryUpdatedAt, v)
	return u
}

// UpdateSummaryUpdatedAt sets the "summary_updated_at" field to the value that was provided on create.
func (u *SessionUpsert) UpdateSummaryUpdatedAt() *SessionUpsert {
	u.SetExcluded(session.FieldSummaryUpdatedAt)
	return u
}

// ClearSummaryUpdatedAt clears the value of the "summary_updated_at" field.
func (u *SessionUpsert) ClearSummaryUpdatedAt() *SessionUpsert {
	u.SetNull(session.FieldSummaryUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(session.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionUpsertOne) UpdateNewValues() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(session.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SessionUpsertOne) Ignore() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionUpsertOne) DoNothing() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionCreate.OnConflict
// documentation for more info.
func (u *SessionUpsertOne) Update(set func(*SessionUpsert)) *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkingDir sets the "working_dir" field.
func (u *SessionUpsertOne) SetWorkingDir(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetWorkingDir(v)
	})
}

// UpdateWorkingDir sets the "working_dir" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateWorkingDir() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateWorkingDir()
	})
}

// ClearWorkingDir clears the value of the "working_dir" field.
func (u *SessionUpsertOne) ClearWorkingDir() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearWorkingDir()
	})
}

// SetStartTime sets the "start_time" field.
func (u *SessionUpsertOne) SetStartTime(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateStartTime() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *SessionUpsertOne) SetEndTime(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateEndTime() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateEndTime()
	})
}

// ClearEndTime clears the value of the "end_time" field.
func (u *SessionUpsertOne) ClearEndTime() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearEndTime()
	})
}

// SetLastActivity sets the "last_activity" field.
func (u *SessionUpsertOne) SetLastActivity(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetLastActivity(v)
	})
}

// UpdateLastActivity sets the "last_activity" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateLastActivity() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateLastActivity()
	})
}

// SetContinuedFrom sets the "continued_from" field.
func (u *SessionUpsertOne) SetContinuedFrom(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetContinuedFrom(v)
	})
}

// UpdateContinuedFrom sets the "continued_from" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateContinuedFrom() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateContinuedFrom()
	})
}

// ClearContinuedFrom clears the value of the "continued_from" field.
func (u *SessionUpsertOne) ClearContinuedFrom() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearContinuedFrom()
	})
}

// SetMedium sets the "medium" field.
func (u *SessionUpsertOne) SetMedium(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetMedium(v)
	})
}

// UpdateMedium sets the "medium" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateMedium() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateMedium()
	})
}

// ClearMedium clears the value of the "medium" field.
func (u *SessionUpsertOne) ClearMedium() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearMedium()
	})
}

// SetUserID sets the "user_id" field.
func (u *SessionUpsertOne) SetUserID(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateUserID() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *SessionUpsertOne) ClearUserID() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearUserID()
	})
}

// SetPersonality sets the "personality" field.
func (u *SessionUpsertOne) SetPersonality(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetPersonality(v)
	})
}

// UpdatePersonality sets the "personality" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdatePersonality() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdatePersonality()
	})
}

// ClearPersonality clears the value of the "personality" field.
func (u *SessionUpsertOne) ClearPersonality() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearPersonality()
	})
}

// SetSandboxPolicy sets the "sandbox_policy" field.
func (u *SessionUpsertOne) SetSandboxPolicy(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetSandboxPolicy(v)
	})
}

// UpdateSandboxPolicy sets the "sandbox_policy" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateSandboxPolicy() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateSandboxPolicy()
	})
}

// ClearSandboxPolicy clears the value of the "sandbox_policy" field.
func (u *SessionUpsertOne) ClearSandboxPolicy() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearSandboxPolicy()
	})
}

// SetMissionID sets the "mission_id" field.
func (u *SessionUpsertOne) SetMissionID(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetMissionID(v)
	})
}

// UpdateMissionID sets the "mission_id" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateMissionID() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateMissionID()
	})
}

// ClearMissionID clears the value of the "mission_id" field.
func (u *SessionUpsertOne) ClearMissionID() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearMissionID()
	})
}

// SetSummary sets the "summary" field.
func (u *SessionUpsertOne) SetSummary(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateSummary() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *SessionUpsertOne) ClearSummary() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearSummary()
	})
}

// SetSummaryUpdatedAt sets the "summary_updated_at" field.
func (u *SessionUpsertOne) SetSummaryUpdatedAt(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetSummaryUpdatedAt(v)
	})
}

// UpdateSummaryUpdatedAt sets the "summary_updated_at" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateSummaryUpdatedAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateSummaryUpdatedAt()
	})
}

// ClearSummaryUpdatedAt clears the value of the "summary_updated_at" field.
func (u *SessionUpsertOne) ClearSummaryUpdatedAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearSummaryUpdatedAt()
	})
}

// Exec executes the query.
func (u *SessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SessionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SessionUpsertOne.ID is not supported by MySQL driver. Use SessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SessionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
	conflict []sql.ConflictOption
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
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
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Session.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionUpsert) {
//			SetWorkingDir(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *SessionUpsertBulk {
	_c.conflict = opts
	return &SessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionCreateBulk) OnConflictColumns(columns ...string) *SessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionUpsertBulk{
		create: _c,
	}
}

// SessionUpsertBulk is the builder for "upsert"-ing
// a bulk of Session nodes.
type SessionUpsertBulk struct {
	create *SessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(session.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionUpsertBulk) UpdateNewValues() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(session.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SessionUpsertBulk) Ignore() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionUpsertBulk) DoNothing() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionCreateBulk.OnConflict
// documentation for more info.
func (u *SessionUpsertBulk) Update(set func(*SessionUpsert)) *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkingDir sets the "working_dir" field.
func (u *SessionUpsertBulk) SetWorkingDir(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetWorkingDir(v)
	})
}

// UpdateWorkingDir sets the "working_dir" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateWorkingDir() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateWorkingDir()
	})
}

// ClearWorkingDir clears the value of the "working_dir" field.
func (u *SessionUpsertBulk) ClearWorkingDir() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearWorkingDir()
	})
}

// SetStartTime sets the "start_time" field.
func (u *SessionUpsertBulk) SetStartTime(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateStartTime() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *SessionUpsertBulk) SetEndTime(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateEndTime() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateEndTime()
	})
}

// ClearEndTime clears the value of the "end_time" field.
func (u *SessionUpsertBulk) ClearEndTime() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearEndTime()
	})
}

// SetLastActivity sets the "last_activity" field.
func (u *SessionUpsertBulk) SetLastActivity(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetLastActivity(v)
	})
}

// UpdateLastActivity sets the "last_activity" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateLastActivity() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateLastActivity()
	})
}

// SetContinuedFrom sets the "continued_from" field.
func (u *SessionUpsertBulk) SetContinuedFrom(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetContinuedFrom(v)
	})
}

// UpdateContinuedFrom sets the "continued_from" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateContinuedFrom() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateContinuedFrom()
	})
}

// ClearContinuedFrom clears the value of the "continued_from" field.
func (u *SessionUpsertBulk) ClearContinuedFrom() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearContinuedFrom()
	})
}

// SetMedium sets the "medium" field.
func (u *SessionUpsertBulk) SetMedium(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetMedium(v)
	})
}

// UpdateMedium sets the "medium" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateMedium() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateMedium()
	})
}

// ClearMedium clears the value of the "medium" field.
func (u *SessionUpsertBulk) ClearMedium() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearMedium()
	})
}

// SetUserID sets the "user_id" field.
func (u *SessionUpsertBulk) SetUserID(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateUserID() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *SessionUpsertBulk) ClearUserID() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearUserID()
	})
}

// SetPersonality sets the "personality" field.
func (u *SessionUpsertBulk) SetPersonality(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetPersonality(v)
	})
}

// UpdatePersonality sets the "personality" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdatePersonality() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdatePersonality()
	})
}

// ClearPersonality clears the value of the "personality" field.
func (u *SessionUpsertBulk) ClearPersonality() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearPersonality()
	})
}

// SetSandboxPolicy sets the "sandbox_policy" field.
func (u *SessionUpsertBulk) SetSandboxPolicy(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetSandboxPolicy(v)
	})
}

// UpdateSandboxPolicy sets the "sandbox_policy" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateSandboxPolicy() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateSandboxPolicy()
	})
}

// ClearSandboxPolicy clears the value of the "sandbox_policy" field.
func (u *SessionUpsertBulk) ClearSandboxPolicy() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearSandboxPolicy()
	})
}

// SetMissionID sets the "mission_id" field.
func (u *SessionUpsertBulk) SetMissionID(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetMissionID(v)
	})
}

// UpdateMissionID sets the "mission_id" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateMissionID() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateMissionID()
	})
}

// ClearMissionID clears the value of the "mission_id" field.
func (u *SessionUpsertBulk) ClearMissionID() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearMissionID()
	})
}

// SetSummary sets the "summary" field.
func (u *SessionUpsertBulk) SetSummary(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateSummary() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *SessionUpsertBulk) ClearSummary() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearSummary()
	})
}

// SetSummaryUpdatedAt sets the "summary_updated_at" field.
func (u *SessionUpsertBulk) SetSummaryUpdatedAt(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetSummaryUpdatedAt(v)
	})
}

// UpdateSummaryUpdatedAt sets the "summary_updated_at" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateSummaryUpdatedAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateSummaryUpdatedAt()
	})
}

// ClearSummaryUpdatedAt clears the value of the "summary_updated_at" field.
func (u *SessionUpsertBulk) ClearSummaryUpdatedAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearSummaryUpdatedAt()
	})
}

// Exec executes the query.
func (u *SessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
