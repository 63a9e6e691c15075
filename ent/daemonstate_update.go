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
	"github.com/kestrel-ai/kestrel/ent/daemonstate"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// DaemonStateUpdate is the builder for updating DaemonState entities.
type DaemonStateUpdate struct {
	config
	hooks    []Hook
	mutation *DaemonStateMutation
}

// Where appends a list predicates to the DaemonStateUpdate builder.
func (_u *DaemonStateUpdate) Where(ps ...predicate.DaemonState) *DaemonStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSuppressedUntil sets the "suppressed_until" field.
func (_u *DaemonStateUpdate) SetSuppressedUntil(v time.Time) *DaemonStateUpdate {
	_u.mutation.SetSuppressedUntil(v)
	return _u
}

// SetNillableSuppressedUntil sets the "suppressed_until" field if the given value is not nil.
func (_u *DaemonStateUpdate) SetNillableSuppressedUntil(v *time.Time) *DaemonStateUpdate {
	if v != nil {
		_u.SetSuppressedUntil(*v)
	}
	return _u
}

// ClearSuppressedUntil clears the value of the "suppressed_until" field.
func (_u *DaemonStateUpdate) ClearSuppressedUntil() *DaemonStateUpdate {
	_u.mutation.ClearSuppressedUntil()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *DaemonStateUpdate) SetLastInteractionAt(v time.Time) *DaemonStateUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *DaemonStateUpdate) SetNillableLastInteractionAt(v *time.Time) *DaemonStateUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *DaemonStateUpdate) ClearLastInteractionAt() *DaemonStateUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetLastProactiveContactAt sets the "last_proactive_contact_at" field.
func (_u *DaemonStateUpdate) SetLastProactiveContactAt(v time.Time) *DaemonStateUpdate {
	_u.mutation.SetLastProactiveContactAt(v)
	return _u
}

// SetNillableLastProactiveContactAt sets the "last_proactive_contact_at" field if the given value is not nil.
func (_u *DaemonStateUpdate) SetNillableLastProactiveContactAt(v *time.Time) *DaemonStateUpdate {
	if v != nil {
		_u.SetLastProactiveContactAt(*v)
	}
	return _u
}

// ClearLastProactiveContactAt clears the value of the "last_proactive_contact_at" field.
func (_u *DaemonStateUpdate) ClearLastProactiveContactAt() *DaemonStateUpdate {
	_u.mutation.ClearLastProactiveContactAt()
	return _u
}

// SetAutonomousWorkCount sets the "autonomous_work_count" field.
func (_u *DaemonStateUpdate) SetAutonomousWorkCount(v int) *DaemonStateUpdate {
	_u.mutation.ResetAutonomousWorkCount()
	_u.mutation.SetAutonomousWorkCount(v)
	return _u
}

// SetNillableAutonomousWorkCount sets the "autonomous_work_count" field if the given value is not nil.
func (_u *DaemonStateUpdate) SetNillableAutonomousWorkCount(v *int) *DaemonStateUpdate {
	if v != nil {
		_u.SetAutonomousWorkCount(*v)
	}
	return _u
}

// AddAutonomousWorkCount adds value to the "autonomous_work_count" field.
func (_u *DaemonStateUpdate) AddAutonomousWorkCount(v int) *DaemonStateUpdate {
	_u.mutation.AddAutonomousWorkCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DaemonStateUpdate) SetUpdatedAt(v time.Time) *DaemonStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DaemonStateMutation object of the builder.
func (_u *DaemonStateUpdate) Mutation() *DaemonStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DaemonStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DaemonStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DaemonStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DaemonStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DaemonStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := daemonstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *DaemonStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(daemonstate.Table, daemonstate.Columns, sqlgraph.NewFieldSpec(daemonstate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SuppressedUntil(); ok {
		_spec.SetField(daemonstate.FieldSuppressedUntil, field.TypeTime, value)
	}
	if _u.mutation.SuppressedUntilCleared() {
		_spec.ClearField(daemonstate.FieldSuppressedUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(daemonstate.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(daemonstate.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastProactiveContactAt(); ok {
		_spec.SetField(daemonstate.FieldLastProactiveContactAt, field.TypeTime, value)
	}
	if _u.mutation.LastProactiveContactAtCleared() {
		_spec.ClearField(daemonstate.FieldLastProactiveContactAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AutonomousWorkCount(); ok {
		_spec.SetField(daemonstate.FieldAutonomousWorkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAutonomousWorkCount(); ok {
		_spec.AddField(daemonstate.FieldAutonomousWorkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(daemonstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{daemonstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DaemonStateUpdateOne is the builder for updating a single DaemonState entity.
type DaemonStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DaemonStateMutation
}

// SetSuppressedUntil sets the "suppressed_until" field.
func (_u *DaemonStateUpdateOne) SetSuppressedUntil(v time.Time) *DaemonStateUpdateOne {
	_u.mutation.SetSuppressedUntil(v)
	return _u
}

// SetNillableSuppressedUntil sets the "suppressed_until" field if the given value is not nil.
func (_u *DaemonStateUpdateOne) SetNillableSuppressedUntil(v *time.Time) *DaemonStateUpdateOne {
	if v != nil {
		_u.SetSuppressedUntil(*v)
	}
	return _u
}

// ClearSuppressedUntil clears the value of the "suppressed_until" field.
func (_u *DaemonStateUpdateOne) ClearSuppressedUntil() *DaemonStateUpdateOne {
	_u.mutation.ClearSuppressedUntil()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *DaemonStateUpdateOne) SetLastInteractionAt(v time.Time) *DaemonStateUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *DaemonStateUpdateOne) SetNillableLastInteractionAt(v *time.Time) *DaemonStateUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *DaemonStateUpdateOne) ClearLastInteractionAt() *DaemonStateUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetLastProactiveContactAt sets the "last_proactive_contact_at" field.
func (_u *DaemonStateUpdateOne) SetLastProactiveContactAt(v time.Time) *DaemonStateUpdateOne {
	_u.mutation.SetLastProactiveContactAt(v)
	return _u
}

// SetNillableLastProactiveContactAt sets the "last_proactive_contact_at" field if the given value is not nil.
func (_u *DaemonStateUpdateOne) SetNillableLastProactiveContactAt(v *time.Time) *DaemonStateUpdateOne {
	if v != nil {
		_u.SetLastProactiveContactAt(*v)
	}
	return _u
}

// ClearLastProactiveContactAt clears the value of the "last_proactive_contact_at" field.
func (_u *DaemonStateUpdateOne) ClearLastProactiveContactAt() *DaemonStateUpdateOne {
	_u.mutation.ClearLastProactiveContactAt()
	return _u
}

// SetAutonomousWorkCount sets the "autonomous_work_count" field.
func (_u *DaemonStateUpdateOne) SetAutonomousWorkCount(v int) *DaemonStateUpdateOne {
	_u.mutation.ResetAutonomousWorkCount()
	_u.mutation.SetAutonomousWorkCount(v)
	return _u
}

// SetNillableAutonomousWorkCount sets the "autonomous_work_count" field if the given value is not nil.
func (_u *DaemonStateUpdateOne) SetNillableAutonomousWorkCount(v *int) *DaemonStateUpdateOne {
	if v != nil {
		_u.SetAutonomousWorkCount(*v)
	}
	return _u
}

// AddAutonomousWorkCount adds value to the "autonomous_work_count" field.
func (_u *DaemonStateUpdateOne) AddAutonomousWorkCount(v int) *DaemonStateUpdateOne {
	_u.mutation.AddAutonomousWorkCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DaemonStateUpdateOne) SetUpdatedAt(v time.Time) *DaemonStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DaemonStateMutation object of the builder.
func (_u *DaemonStateUpdateOne) Mutation() *DaemonStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the DaemonStateUpdate builder.
func (_u *DaemonStateUpdateOne) Where(ps ...predicate.DaemonState) *DaemonStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DaemonStateUpdateOne) Select(field string, fields ...string) *DaemonStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DaemonState entity.
func (_u *DaemonStateUpdateOne) Save(ctx context.Context) (*DaemonState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DaemonStateUpdateOne) SaveX(ctx context.Context) *DaemonState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DaemonStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DaemonStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DaemonStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := daemonstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *DaemonStateUpdateOne) sqlSave(ctx context.Context) (_node *DaemonState, err error) {
	_spec := sqlgraph.NewUpdateSpec(daemonstate.Table, daemonstate.Columns, sqlgraph.NewFieldSpec(daemonstate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DaemonState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, daemonstate.FieldID)
		for _, f := range fields {
			if !daemonstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != daemonstate.FieldID {
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
	if value, ok := _u.mutation.SuppressedUntil(); ok {
		_spec.SetField(daemonstate.FieldSuppressedUntil, field.TypeTime, value)
	}
	if _u.mutation.SuppressedUntilCleared() {
		_spec.ClearField(daemonstate.FieldSuppressedUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(daemonstate.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(daemonstate.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastProactiveContactAt(); ok {
		_spec.SetField(daemonstate.FieldLastProactiveContactAt, field.TypeTime, value)
	}
	if _u.mutation.LastProactiveContactAtCleared() {
		_spec.ClearField(daemonstate.FieldLastProactiveContactAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AutonomousWorkCount(); ok {
		_spec.SetField(daemonstate.FieldAutonomousWorkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAutonomousWorkCount(); ok {
		_spec.AddField(daemonstate.FieldAutonomousWorkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(daemonstate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DaemonState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{daemonstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
