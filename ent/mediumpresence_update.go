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
	"github.com/kestrel-ai/kestrel/ent/mediumpresence"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// MediumPresenceUpdate is the builder for updating MediumPresence entities.
type MediumPresenceUpdate struct {
	config
	hooks    []Hook
	mutation *MediumPresenceMutation
}

// Where appends a list predicates to the MediumPresenceUpdate builder.
func (_u *MediumPresenceUpdate) Where(ps ...predicate.MediumPresence) *MediumPresenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMedium sets the "medium" field.
func (_u *MediumPresenceUpdate) SetMedium(v string) *MediumPresenceUpdate {
	_u.mutation.SetMedium(v)
	return _u
}

// SetNillableMedium sets the "medium" field if the given value is not nil.
func (_u *MediumPresenceUpdate) SetNillableMedium(v *string) *MediumPresenceUpdate {
	if v != nil {
		_u.SetMedium(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MediumPresenceUpdate) SetUserID(v string) *MediumPresenceUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MediumPresenceUpdate) SetNillableUserID(v *string) *MediumPresenceUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MediumPresenceUpdate) SetStatus(v string) *MediumPresenceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MediumPresenceUpdate) SetNillableStatus(v *string) *MediumPresenceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *MediumPresenceUpdate) SetLastHeartbeat(v time.Time) *MediumPresenceUpdate {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *MediumPresenceUpdate) SetNillableLastHeartbeat(v *time.Time) *MediumPresenceUpdate {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// SetChannels sets the "channels" field.
func (_u *MediumPresenceUpdate) SetChannels(v []map[string]interface{}) *MediumPresenceUpdate {
	_u.mutation.SetChannels(v)
	return _u
}

// AppendChannels appends value to the "channels" field.
func (_u *MediumPresenceUpdate) AppendChannels(v []map[string]interface{}) *MediumPresenceUpdate {
	_u.mutation.AppendChannels(v)
	return _u
}

// ClearChannels clears the value of the "channels" field.
func (_u *MediumPresenceUpdate) ClearChannels() *MediumPresenceUpdate {
	_u.mutation.ClearChannels()
	return _u
}

// Mutation returns the MediumPresenceMutation object of the builder.
func (_u *MediumPresenceUpdate) Mutation() *MediumPresenceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MediumPresenceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MediumPresenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MediumPresenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MediumPresenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MediumPresenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(mediumpresence.Table, mediumpresence.Columns, sqlgraph.NewFieldSpec(mediumpresence.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Medium(); ok {
		_spec.SetField(mediumpresence.FieldMedium, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(mediumpresence.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(mediumpresence.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(mediumpresence.FieldLastHeartbeat, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Channels(); ok {
		_spec.SetField(mediumpresence.FieldChannels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChannels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mediumpresence.FieldChannels, value)
		})
	}
	if _u.mutation.ChannelsCleared() {
		_spec.ClearField(mediumpresence.FieldChannels, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mediumpresence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MediumPresenceUpdateOne is the builder for updating a single MediumPresence entity.
type MediumPresenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MediumPresenceMutation
}

// SetMedium sets the "medium" field.
func (_u *MediumPresenceUpdateOne) SetMedium(v string) *MediumPresenceUpdateOne {
	_u.mutation.SetMedium(v)
	return _u
}

// SetNillableMedium sets the "medium" field if the given value is not nil.
func (_u *MediumPresenceUpdateOne) SetNillableMedium(v *string) *MediumPresenceUpdateOne {
	if v != nil {
		_u.SetMedium(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MediumPresenceUpdateOne) SetUserID(v string) *MediumPresenceUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MediumPresenceUpdateOne) SetNillableUserID(v *string) *MediumPresenceUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MediumPresenceUpdateOne) SetStatus(v string) *MediumPresenceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MediumPresenceUpdateOne) SetNillableStatus(v *string) *MediumPresenceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *MediumPresenceUpdateOne) SetLastHeartbeat(v time.Time) *MediumPresenceUpdateOne {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *MediumPresenceUpdateOne) SetNillableLastHeartbeat(v *time.Time) *MediumPresenceUpdateOne {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// SetChannels sets the "channels" field.
func (_u *MediumPresenceUpdateOne) SetChannels(v []map[string]interface{}) *MediumPresenceUpdateOne {
	_u.mutation.SetChannels(v)
	return _u
}

// AppendChannels appends value to the "channels" field.
func (_u *MediumPresenceUpdateOne) AppendChannels(v []map[string]interface{}) *MediumPresenceUpdateOne {
	_u.mutation.AppendChannels(v)
	return _u
}

// ClearChannels clears the value of the "channels" field.
func (_u *MediumPresenceUpdateOne) ClearChannels() *MediumPresenceUpdateOne {
	_u.mutation.ClearChannels()
	return _u
}

// Mutation returns the MediumPresenceMutation object of the builder.
func (_u *MediumPresenceUpdateOne) Mutation() *MediumPresenceMutation {
	return _u.mutation
}

// Where appends a list predicates to the MediumPresenceUpdate builder.
func (_u *MediumPresenceUpdateOne) Where(ps ...predicate.MediumPresence) *MediumPresenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MediumPresenceUpdateOne) Select(field string, fields ...string) *MediumPresenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MediumPresence entity.
func (_u *MediumPresenceUpdateOne) Save(ctx context.Context) (*MediumPresence, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MediumPresenceUpdateOne) SaveX(ctx context.Context) *MediumPresence {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MediumPresenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MediumPresenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MediumPresenceUpdateOne) sqlSave(ctx context.Context) (_node *MediumPresence, err error) {
	_spec := sqlgraph.NewUpdateSpec(mediumpresence.Table, mediumpresence.Columns, sqlgraph.NewFieldSpec(mediumpresence.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MediumPresence.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mediumpresence.FieldID)
		for _, f := range fields {
			if !mediumpresence.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mediumpresence.FieldID {
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
	if value, ok := _u.mutation.Medium(); ok {
		_spec.SetField(mediumpresence.FieldMedium, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(mediumpresence.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(mediumpresence.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(mediumpresence.FieldLastHeartbeat, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Channels(); ok {
		_spec.SetField(mediumpresence.FieldChannels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChannels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mediumpresence.FieldChannels, value)
		})
	}
	if _u.mutation.ChannelsCleared() {
		_spec.ClearField(mediumpresence.FieldChannels, field.TypeJSON)
	}
	_node = &MediumPresence{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mediumpresence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
