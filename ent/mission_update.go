// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/kestrel-ai/kestrel/ent/mission"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// MissionUpdate is the builder for updating Mission entities.
type MissionUpdate struct {
	config
	hooks    []Hook
	mutation *MissionMutation
}

// Where appends a list predicates to the MissionUpdate builder.
func (_u *MissionUpdate) Where(ps ...predicate.Mission) *MissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *MissionUpdate) SetName(v string) *MissionUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableName(v *string) *MissionUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *MissionUpdate) SetPrompt(v string) *MissionUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *MissionUpdate) SetNillablePrompt(v *string) *MissionUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetSchedule sets the "schedule" field.
func (_u *MissionUpdate) SetSchedule(v string) *MissionUpdate {
	_u.mutation.SetSchedule(v)
	return _u
}

// SetNillableSchedule sets the "schedule" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableSchedule(v *string) *MissionUpdate {
	if v != nil {
		_u.SetSchedule(*v)
	}
	return _u
}

// ClearSchedule clears the value of the "schedule" field.
func (_u *MissionUpdate) ClearSchedule() *MissionUpdate {
	_u.mutation.ClearSchedule()
	return _u
}

// SetSandboxPolicy sets the "sandbox_policy" field.
func (_u *MissionUpdate) SetSandboxPolicy(v string) *MissionUpdate {
	_u.mutation.SetSandboxPolicy(v)
	return _u
}

// SetNillableSandboxPolicy sets the "sandbox_policy" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableSandboxPolicy(v *string) *MissionUpdate {
	if v != nil {
		_u.SetSandboxPolicy(*v)
	}
	return _u
}

// ClearSandboxPolicy clears the value of the "sandbox_policy" field.
func (_u *MissionUpdate) ClearSandboxPolicy() *MissionUpdate {
	_u.mutation.ClearSandboxPolicy()
	return _u
}

// SetPersonality sets the "personality" field.
func (_u *MissionUpdate) SetPersonality(v string) *MissionUpdate {
	_u.mutation.SetPersonality(v)
	return _u
}

// SetNillablePersonality sets the "personality" field if the given value is not nil.
func (_u *MissionUpdate) SetNillablePersonality(v *string) *MissionUpdate {
	if v != nil {
		_u.SetPersonality(*v)
	}
	return _u
}

// ClearPersonality clears the value of the "personality" field.
func (_u *MissionUpdate) ClearPersonality() *MissionUpdate {
	_u.mutation.ClearPersonality()
	return _u
}

// SetModel sets the "model" field.
func (_u *MissionUpdate) SetModel(v string) *MissionUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableModel(v *string) *MissionUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *MissionUpdate) ClearModel() *MissionUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetTools sets the "tools" field.
func (_u *MissionUpdate) SetTools(v []string) *MissionUpdate {
	_u.mutation.SetTools(v)
	return _u
}

// AppendTools appends value to the "tools" field.
func (_u *MissionUpdate) AppendTools(v []string) *MissionUpdate {
	_u.mutation.AppendTools(v)
	return _u
}

// ClearTools clears the value of the "tools" field.
func (_u *MissionUpdate) ClearTools() *MissionUpdate {
	_u.mutation.ClearTools()
	return _u
}

// SetStatus sets the "status" field.
func (_u *MissionUpdate) SetStatus(v mission.Status) *MissionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableStatus(v *mission.Status) *MissionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MissionUpdate) SetUserID(v string) *MissionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableUserID(v *string) *MissionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *MissionUpdate) ClearUserID() *MissionUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MissionUpdate) SetUpdatedAt(v time.Time) *MissionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MissionMutation object of the builder.
func (_u *MissionUpdate) Mutation() *MissionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MissionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MissionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mission.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MissionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := mission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Mission.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mission.Table, mission.Columns, sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(mission.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(mission.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Schedule(); ok {
		_spec.SetField(mission.FieldSchedule, field.TypeString, value)
	}
	if _u.mutation.ScheduleCleared() {
		_spec.ClearField(mission.FieldSchedule, field.TypeString)
	}
	if value, ok := _u.mutation.SandboxPolicy(); ok {
		_spec.SetField(mission.FieldSandboxPolicy, field.TypeString, value)
	}
	if _u.mutation.SandboxPolicyCleared() {
		_spec.ClearField(mission.FieldSandboxPolicy, field.TypeString)
	}
	if value, ok := _u.mutation.Personality(); ok {
		_spec.SetField(mission.FieldPersonality, field.TypeString, value)
	}
	if _u.mutation.PersonalityCleared() {
		_spec.ClearField(mission.FieldPersonality, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(mission.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(mission.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.Tools(); ok {
		_spec.SetField(mission.FieldTools, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTools(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mission.FieldTools, value)
		})
	}
	if _u.mutation.ToolsCleared() {
		_spec.ClearField(mission.FieldTools, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(mission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(mission.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(mission.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mission.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MissionUpdateOne is the builder for updating a single Mission entity.
type MissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MissionMutation
}

// SetName sets the "name" field.
func (_u *MissionUpdateOne) SetName(v string) *MissionUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableName(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *MissionUpdateOne) SetPrompt(v string) *MissionUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillablePrompt(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetSchedule sets the "schedule" field.
func (_u *MissionUpdateOne) SetSchedule(v string) *MissionUpdateOne {
	_u.mutation.SetSchedule(v)
	return _u
}

// SetNillableSchedule sets the "schedule" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableSchedule(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetSchedule(*v)
	}
	return _u
}

// ClearSchedule clears the value of the "schedule" field.
func (_u *MissionUpdateOne) ClearSchedule() *MissionUpdateOne {
	_u.mutation.ClearSchedule()
	return _u
}

// SetSandboxPolicy sets the "sandbox_policy" field.
func (_u *MissionUpdateOne) SetSandboxPolicy(v string) *MissionUpdateOne {
	_u.mutation.SetSandboxPolicy(v)
	return _u
}

// SetNillableSandboxPolicy sets the "sandbox_policy" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableSandboxPolicy(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetSandboxPolicy(*v)
	}
	return _u
}

// ClearSandboxPolicy clears the value of the "sandbox_policy" field.
func (_u *MissionUpdateOne) ClearSandboxPolicy() *MissionUpdateOne {
	_u.mutation.ClearSandboxPolicy()
	return _u
}

// SetPersonality sets the "personality" field.
func (_u *MissionUpdateOne) SetPersonality(v string) *MissionUpdateOne {
	_u.mutation.SetPersonality(v)
	return _u
}

// SetNillablePersonality sets the "personality" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillablePersonality(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetPersonality(*v)
	}
	return _u
}

// ClearPersonality clears the value of the "personality" field.
func (_u *MissionUpdateOne) ClearPersonality() *MissionUpdateOne {
	_u.mutation.ClearPersonality()
	return _u
}

// SetModel sets the "model" field.
func (_u *MissionUpdateOne) SetModel(v string) *MissionUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableModel(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *MissionUpdateOne) ClearModel() *MissionUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetTools sets the "tools" field.
func (_u *MissionUpdateOne) SetTools(v []string) *MissionUpdateOne {
	_u.mutation.SetTools(v)
	return _u
}

// AppendTools appends value to the "tools" field.
func (_u *MissionUpdateOne) AppendTools(v []string) *MissionUpdateOne {
	_u.mutation.AppendTools(v)
	return _u
}

// ClearTools clears the value of the "tools" field.
func (_u *MissionUpdateOne) ClearTools() *MissionUpdateOne {
	_u.mutation.ClearTools()
	return _u
}

// SetStatus sets the "status" field.
func (_u *MissionUpdateOne) SetStatus(v mission.Status) *MissionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableStatus(v *mission.Status) *MissionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MissionUpdateOne) SetUserID(v string) *MissionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableUserID(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *MissionUpdateOne) ClearUserID() *MissionUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MissionUpdateOne) SetUpdatedAt(v time.Time) *MissionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MissionMutation object of the builder.
func (_u *MissionUpdateOne) Mutation() *MissionMutation {
	return _u.mutation
}

// Where appends a list predicates to the MissionUpdate builder.
func (_u *MissionUpdateOne) Where(ps ...predicate.Mission) *MissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MissionUpdateOne) Select(field string, fields ...string) *MissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Mission entity.
func (_u *MissionUpdateOne) Save(ctx context.Context) (*Mission, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MissionUpdateOne) SaveX(ctx context.Context) *Mission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MissionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mission.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MissionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := mission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Mission.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MissionUpdateOne) sqlSave(ctx context.Context) (_node *Mission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mission.Table, mission.Columns, sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Mission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mission.FieldID)
		for _, f := range fields {
			if !mission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mission.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(mission.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(mission.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Schedule(); ok {
		_spec.SetField(mission.FieldSchedule, field.TypeString, value)
	}
	if _u.mutation.ScheduleCleared() {
		_spec.ClearField(mission.FieldSchedule, field.TypeString)
	}
	if value, ok := _u.mutation.SandboxPolicy(); ok {
		_spec.SetField(mission.FieldSandboxPolicy, field.TypeString, value)
	}
	if _u.mutation.SandboxPolicyCleared() {
		_spec.ClearField(mission.FieldSandboxPolicy, field.TypeString)
	}
	if value, ok := _u.mutation.Personality(); ok {
		_spec.SetField(mission.FieldPersonality, field.TypeString, value)
	}
	if _u.mutation.PersonalityCleared() {
		_spec.ClearField(mission.FieldPersonality, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(mission.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(mission.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.Tools(); ok {
		_spec.SetField(mission.FieldTools, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTools(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mission.FieldTools, value)
		})
	}
	if _u.mutation.ToolsCleared() {
		_spec.ClearField(mission.FieldTools, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(mission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(mission.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(mission.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mission.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Mission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
