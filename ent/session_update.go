// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kestrel-ai/kestrel/ent/predicate"
	"github.com/kestrel-ai/kestrel/ent/session"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkingDir sets the "working_dir" field.
func (_u *SessionUpdate) SetWorkingDir(v string) *SessionUpdate {
	_u.mutation.SetWorkingDir(v)
	return _u
}

// SetNillableWorkingDir sets the "working_dir" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableWorkingDir(v *string) *SessionUpdate {
	if v != nil {
		_u.SetWorkingDir(*v)
	}
	return _u
}

// ClearWorkingDir clears the value of the "working_dir" field.
func (_u *SessionUpdate) ClearWorkingDir() *SessionUpdate {
	_u.mutation.ClearWorkingDir()
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *SessionUpdate) SetStartTime(v time.Time) *SessionUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStartTime(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *SessionUpdate) SetEndTime(v time.Time) *SessionUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableEndTime(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *SessionUpdate) ClearEndTime() *SessionUpdate {
	_u.mutation.ClearEndTime()
	return _u
}

// SetLastActivity sets the "last_activity" field.
func (_u *SessionUpdate) SetLastActivity(v time.Time) *SessionUpdate {
	_u.mutation.SetLastActivity(v)
	return _u
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableLastActivity(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetLastActivity(*v)
	}
	return _u
}

// SetContinuedFrom sets the "continued_from" field.
func (_u *SessionUpdate) SetContinuedFrom(v string) *SessionUpdate {
	_u.mutation.SetContinuedFrom(v)
	return _u
}

// SetNillableContinuedFrom sets the "continued_from" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableContinuedFrom(v *string) *SessionUpdate {
	if v != nil {
		_u.SetContinuedFrom(*v)
	}
	return _u
}

// ClearContinuedFrom clears the value of the "continued_from" field.
func (_u *SessionUpdate) ClearContinuedFrom() *SessionUpdate {
	_u.mutation.ClearContinuedFrom()
	return _u
}

// SetMedium sets the "medium" field.
func (_u *SessionUpdate) SetMedium(v string) *SessionUpdate {
	_u.mutation.SetMedium(v)
	return _u
}

// SetNillableMedium sets the "medium" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableMedium(v *string) *SessionUpdate {
	if v != nil {
		_u.SetMedium(*v)
	}
	return _u
}

// ClearMedium clears the value of the "medium" field.
func (_u *SessionUpdate) ClearMedium() *SessionUpdate {
	_u.mutation.ClearMedium()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionUpdate) SetUserID(v string) *SessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableUserID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *SessionUpdate) ClearUserID() *SessionUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetPersonality sets the "personality" field.
func (_u *SessionUpdate) SetPersonality(v string) *SessionUpdate {
	_u.mutation.SetPersonality(v)
	return _u
}

// SetNillablePersonality sets the "personality" field if the given value is not nil.
func (_u *SessionUpdate) SetNillablePersonality(v *string) *SessionUpdate {
	if v != nil {
		_u.SetPersonality(*v)
	}
	return _u
}

// ClearPersonality clears the value of the "personality" field.
func (_u *SessionUpdate) ClearPersonality() *SessionUpdate {
	_u.mutation.ClearPersonality()
	return _u
}

// SetSandboxPolicy sets the "sandbox_policy" field.
func (_u *SessionUpdate) SetSandboxPolicy(v string) *SessionUpdate {
	_u.mutation.SetSandboxPolicy(v)
	return _u
}

// SetNillableSandboxPolicy sets the "sandbox_policy" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableSandboxPolicy(v *string) *SessionUpdate {
	if v != nil {
		_u.SetSandboxPolicy(*v)
	}
	return _u
}

// ClearSandboxPolicy clears the value of the "sandbox_policy" field.
func (_u *SessionUpdate) ClearSandboxPolicy() *SessionUpdate {
	_u.mutation.ClearSandboxPolicy()
	return _u
}

// SetMissionID sets the "mission_id" field.
func (_u *SessionUpdate) SetMissionID(v string) *SessionUpdate {
	_u.mutation.SetMissionID(v)
	return _u
}

// SetNillableMissionID sets the "mission_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableMissionID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetMissionID(*v)
	}
	return _u
}

// ClearMissionID clears the value of the "mission_id" field.
func (_u *SessionUpdate) ClearMissionID() *SessionUpdate {
	_u.mutation.ClearMissionID()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *SessionUpdate) SetSummary(v string) *SessionUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableSummary(v *string) *SessionUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *SessionUpdate) ClearSummary() *SessionUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetSummaryUpdatedAt sets the "summary_updated_at" field.
func (_u *SessionUpdate) SetSummaryUpdatedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetSummaryUpdatedAt(v)
	return _u
}

// SetNillableSummaryUpdatedAt sets the "summary_updated_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableSummaryUpdatedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetSummaryUpdatedAt(*v)
	}
	return _u
}

// ClearSummaryUpdatedAt clears the value of the "summary_updated_at" field.
func (_u *SessionUpdate) ClearSummaryUpdatedAt() *SessionUpdate {
	_u.mutation.ClearSummaryUpdatedAt()
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkingDir(); ok {
		_spec.SetField(session.FieldWorkingDir, field.TypeString, value)
	}
	if _u.mutation.WorkingDirCleared() {
		_spec.ClearField(session.FieldWorkingDir, field.TypeString)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(session.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(session.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(session.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.LastActivity(); ok {
		_spec.SetField(session.FieldLastActivity, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ContinuedFrom(); ok {
		_spec.SetField(session.FieldContinuedFrom, field.TypeString, value)
	}
	if _u.mutation.ContinuedFromCleared() {
		_spec.ClearField(session.FieldContinuedFrom, field.TypeString)
	}
	if value, ok := _u.mutation.Medium(); ok {
		_spec.SetField(session.FieldMedium, field.TypeString, value)
	}
	if _u.mutation.MediumCleared() {
		_spec.ClearField(session.FieldMedium, field.TypeString)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(session.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(session.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Personality(); ok {
		_spec.SetField(session.FieldPersonality, field.TypeString, value)
	}
	if _u.mutation.PersonalityCleared() {
		_spec.ClearField(session.FieldPersonality, field.TypeString)
	}
	if value, ok := _u.mutation.SandboxPolicy(); ok {
		_spec.SetField(session.FieldSandboxPolicy, field.TypeString, value)
	}
	if _u.mutation.SandboxPolicyCleared() {
		_spec.ClearField(session.FieldSandboxPolicy, field.TypeString)
	}
	if value, ok := _u.mutation.MissionID(); ok {
		_spec.SetField(session.FieldMissionID, field.TypeString, value)
	}
	if _u.mutation.MissionIDCleared() {
		_spec.ClearField(session.FieldMissionID, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(session.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(session.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.SummaryUpdatedAt(); ok {
		_spec.SetField(session.FieldSummaryUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SummaryUpdatedAtCleared() {
		_spec.ClearField(session.FieldSummaryUpdatedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetWorkingDir sets the "working_dir" field.
func (_u *SessionUpdateOne) SetWorkingDir(v string) *SessionUpdateOne {
	_u.mutation.SetWorkingDir(v)
	return _u
}

// SetNillableWorkingDir sets the "working_dir" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableWorkingDir(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetWorkingDir(*v)
	}
	return _u
}

// ClearWorkingDir clears the value of the "working_dir" field.
func (_u *SessionUpdateOne) ClearWorkingDir() *SessionUpdateOne {
	_u.mutation.ClearWorkingDir()
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *SessionUpdateOne) SetStartTime(v time.Time) *SessionUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStartTime(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *SessionUpdateOne) SetEndTime(v time.Time) *SessionUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableEndTime(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *SessionUpdateOne) ClearEndTime() *SessionUpdateOne {
	_u.mutation.ClearEndTime()
	return _u
}

// SetLastActivity sets the "last_activity" field.
func (_u *SessionUpdateOne) SetLastActivity(v time.Time) *SessionUpdateOne {
	_u.mutation.SetLastActivity(v)
	return _u
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableLastActivity(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetLastActivity(*v)
	}
	return _u
}

// SetContinuedFrom sets the "continued_from" field.
func (_u *SessionUpdateOne) SetContinuedFrom(v string) *SessionUpdateOne {
	_u.mutation.SetContinuedFrom(v)
	return _u
}

// SetNillableContinuedFrom sets the "continued_from" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableContinuedFrom(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetContinuedFrom(*v)
	}
	return _u
}

// ClearContinuedFrom clears the value of the "continued_from" field.
func (_u *SessionUpdateOne) ClearContinuedFrom() *SessionUpdateOne {
	_u.mutation.ClearContinuedFrom()
	return _u
}

// SetMedium sets the "medium" field.
func (_u *SessionUpdateOne) SetMedium(v string) *SessionUpdateOne {
	_u.mutation.SetMedium(v)
	return _u
}

// SetNillableMedium sets the "medium" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableMedium(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetMedium(*v)
	}
	return _u
}

// ClearMedium clears the value of the "medium" field.
func (_u *SessionUpdateOne) ClearMedium() *SessionUpdateOne {
	_u.mutation.ClearMedium()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionUpdateOne) SetUserID(v string) *SessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableUserID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *SessionUpdateOne) ClearUserID() *SessionUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetPersonality sets the "personality" field.
func (_u *SessionUpdateOne) SetPersonality(v string) *SessionUpdateOne {
	_u.mutation.SetPersonality(v)
	return _u
}

// SetNillablePersonality sets the "personality" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillablePersonality(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetPersonality(*v)
	}
	return _u
}

// ClearPersonality clears the value of the "personality" field.
func (_u *SessionUpdateOne) ClearPersonality() *SessionUpdateOne {
	_u.mutation.ClearPersonality()
	return _u
}

// SetSandboxPolicy sets the "sandbox_policy" field.
func (_u *SessionUpdateOne) SetSandboxPolicy(v string) *SessionUpdateOne {
	_u.mutation.SetSandboxPolicy(v)
	return _u
}

// SetNillableSandboxPolicy sets the "sandbox_policy" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableSandboxPolicy(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetSandboxPolicy(*v)
	}
	return _u
}

// ClearSandboxPolicy clears the value of the "sandbox_policy" field.
func (_u *SessionUpdateOne) ClearSandboxPolicy() *SessionUpdateOne {
	_u.mutation.ClearSandboxPolicy()
	return _u
}

// SetMissionID sets the "mission_id" field.
func (_u *SessionUpdateOne) SetMissionID(v string) *SessionUpdateOne {
	_u.mutation.SetMissionID(v)
	return _u
}

// SetNillableMissionID sets the "mission_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableMissionID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetMissionID(*v)
	}
	return _u
}

// ClearMissionID clears the value of the "mission_id" field.
func (_u *SessionUpdateOne) ClearMissionID() *SessionUpdateOne {
	_u.mutation.ClearMissionID()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *SessionUpdateOne) SetSummary(v string) *SessionUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableSummary(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *SessionUpdateOne) ClearSummary() *SessionUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetSummaryUpdatedAt sets the "summary_updated_at" field.
func (_u *SessionUpdateOne) SetSummaryUpdatedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetSummaryUpdatedAt(v)
	return _u
}

// SetNillableSummaryUpdatedAt sets the "summary_updated_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableSummaryUpdatedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetSummaryUpdatedAt(*v)
	}
	return _u
}

// ClearSummaryUpdatedAt clears the value of the "summary_updated_at" field.
func (_u *SessionUpdateOne) ClearSummaryUpdatedAt() *SessionUpdateOne {
	_u.mutation.ClearSummaryUpdatedAt()
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkingDir(); ok {
		_spec.SetField(session.FieldWorkingDir, field.TypeString, value)
	}
	if _u.mutation.WorkingDirCleared() {
		_spec.ClearField(session.FieldWorkingDir, field.TypeString)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(session.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(session.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(session.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.LastActivity(); ok {
		_spec.SetField(session.FieldLastActivity, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ContinuedFrom(); ok {
		_spec.SetField(session.FieldContinuedFrom, field.TypeString, value)
	}
	if _u.mutation.ContinuedFromCleared() {
		_spec.ClearField(session.FieldContinuedFrom, field.TypeString)
	}
	if value, ok := _u.mutation.Medium(); ok {
		_spec.SetField(session.FieldMedium, field.TypeString, value)
	}
	if _u.mutation.MediumCleared() {
		_spec.ClearField(session.FieldMedium, field.TypeString)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(session.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(session.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Personality(); ok {
		_spec.SetField(session.FieldPersonality, field.TypeString, value)
	}
	if _u.mutation.PersonalityCleared() {
		_spec.ClearField(session.FieldPersonality, field.TypeString)
	}
	if value, ok := _u.mutation.SandboxPolicy(); ok {
		_spec.SetField(session.FieldSandboxPolicy, field.TypeString, value)
	}
	if _u.mutation.SandboxPolicyCleared() {
		_spec.ClearField(session.FieldSandboxPolicy, field.TypeString)
	}
	if value, ok := _u.mutation.MissionID(); ok {
		_spec.SetField(session.FieldMissionID, field.TypeString, value)
	}
	if _u.mutation.MissionIDCleared() {
		_spec.ClearField(session.FieldMissionID, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(session.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(session.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.SummaryUpdatedAt(); ok {
		_spec.SetField(session.FieldSummaryUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SummaryUpdatedAtCleared() {
		_spec.ClearField(session.FieldSummaryUpdatedAt, field.TypeTime)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
