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
	"github.com/kestrel-ai/kestrel/ent/ambientnotification"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// AmbientNotificationUpdate is the builder for updating AmbientNotification entities.
type AmbientNotificationUpdate struct {
	config
	hooks    []Hook
	mutation *AmbientNotificationMutation
}

// Where appends a list predicates to the AmbientNotificationUpdate builder.
func (_u *AmbientNotificationUpdate) Where(ps ...predicate.AmbientNotification) *AmbientNotificationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AmbientNotificationUpdate) SetUserID(v string) *AmbientNotificationUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AmbientNotificationUpdate) SetNillableUserID(v *string) *AmbientNotificationUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTargetMedium sets the "target_medium" field.
func (_u *AmbientNotificationUpdate) SetTargetMedium(v string) *AmbientNotificationUpdate {
	_u.mutation.SetTargetMedium(v)
	return _u
}

// SetNillableTargetMedium sets the "target_medium" field if the given value is not nil.
func (_u *AmbientNotificationUpdate) SetNillableTargetMedium(v *string) *AmbientNotificationUpdate {
	if v != nil {
		_u.SetTargetMedium(*v)
	}
	return _u
}

// ClearTargetMedium clears the value of the "target_medium" field.
func (_u *AmbientNotificationUpdate) ClearTargetMedium() *AmbientNotificationUpdate {
	_u.mutation.ClearTargetMedium()
	return _u
}

// SetTargetLocation sets the "target_location" field.
func (_u *AmbientNotificationUpdate) SetTargetLocation(v string) *AmbientNotificationUpdate {
	_u.mutation.SetTargetLocation(v)
	return _u
}

// SetNillableTargetLocation sets the "target_location" field if the given value is not nil.
func (_u *AmbientNotificationUpdate) SetNillableTargetLocation(v *string) *AmbientNotificationUpdate {
	if v != nil {
		_u.SetTargetLocation(*v)
	}
	return _u
}

// ClearTargetLocation clears the value of the "target_location" field.
func (_u *AmbientNotificationUpdate) ClearTargetLocation() *AmbientNotificationUpdate {
	_u.mutation.ClearTargetLocation()
	return _u
}

// SetMessage sets the "message" field.
func (_u *AmbientNotificationUpdate) SetMessage(v string) *AmbientNotificationUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *AmbientNotificationUpdate) SetNillableMessage(v *string) *AmbientNotificationUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *AmbientNotificationUpdate) SetPriority(v ambientnotification.Priority) *AmbientNotificationUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *AmbientNotificationUpdate) SetNillablePriority(v *ambientnotification.Priority) *AmbientNotificationUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetRoutingReasoning sets the "routing_reasoning" field.
func (_u *AmbientNotificationUpdate) SetRoutingReasoning(v string) *AmbientNotificationUpdate {
	_u.mutation.SetRoutingReasoning(v)
	return _u
}

// SetNillableRoutingReasoning sets the "routing_reasoning" field if the given value is not nil.
func (_u *AmbientNotificationUpdate) SetNillableRoutingReasoning(v *string) *AmbientNotificationUpdate {
	if v != nil {
		_u.SetRoutingReasoning(*v)
	}
	return _u
}

// ClearRoutingReasoning clears the value of the "routing_reasoning" field.
func (_u *AmbientNotificationUpdate) ClearRoutingReasoning() *AmbientNotificationUpdate {
	_u.mutation.ClearRoutingReasoning()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AmbientNotificationUpdate) SetStatus(v ambientnotification.Status) *AmbientNotificationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AmbientNotificationUpdate) SetNillableStatus(v *ambientnotification.Status) *AmbientNotificationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetParentNotificationID sets the "parent_notification_id" field.
func (_u *AmbientNotificationUpdate) SetParentNotificationID(v string) *AmbientNotificationUpdate {
	_u.mutation.SetParentNotificationID(v)
	return _u
}

// SetNillableParentNotificationID sets the "parent_notification_id" field if the given value is not nil.
func (_u *AmbientNotificationUpdate) SetNillableParentNotificationID(v *string) *AmbientNotificationUpdate {
	if v != nil {
		_u.SetParentNotificationID(*v)
	}
	return _u
}

// ClearParentNotificationID clears the value of the "parent_notification_id" field.
func (_u *AmbientNotificationUpdate) ClearParentNotificationID() *AmbientNotificationUpdate {
	_u.mutation.ClearParentNotificationID()
	return _u
}

// SetAcknowledged sets the "acknowledged" field.
func (_u *AmbientNotificationUpdate) SetAcknowledged(v bool) *AmbientNotificationUpdate {
	_u.mutation.SetAcknowledged(v)
	return _u
}

// SetNillableAcknowledged sets the "acknowledged" field if the given value is not nil.
func (_u *AmbientNotificationUpdate) SetNillableAcknowledged(v *bool) *AmbientNotificationUpdate {
	if v != nil {
		_u.SetAcknowledged(*v)
	}
	return _u
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (_u *AmbientNotificationUpdate) SetAcknowledgedAt(v time.Time) *AmbientNotificationUpdate {
	_u.mutation.SetAcknowledgedAt(v)
	return _u
}

// SetNillableAcknowledgedAt sets the "acknowledged_at" field if the given value is not nil.
func (_u *AmbientNotificationUpdate) SetNillableAcknowledgedAt(v *time.Time) *AmbientNotificationUpdate {
	if v != nil {
		_u.SetAcknowledgedAt(*v)
	}
	return _u
}

// ClearAcknowledgedAt clears the value of the "acknowledged_at" field.
func (_u *AmbientNotificationUpdate) ClearAcknowledgedAt() *AmbientNotificationUpdate {
	_u.mutation.ClearAcknowledgedAt()
	return _u
}

// SetResponseTimeSeconds sets the "response_time_seconds" field.
func (_u *AmbientNotificationUpdate) SetResponseTimeSeconds(v int) *AmbientNotificationUpdate {
	_u.mutation.ResetResponseTimeSeconds()
	_u.mutation.SetResponseTimeSeconds(v)
	return _u
}

// SetNillableResponseTimeSeconds sets the "response_time_seconds" field if the given value is not nil.
func (_u *AmbientNotificationUpdate) SetNillableResponseTimeSeconds(v *int) *AmbientNotificationUpdate {
	if v != nil {
		_u.SetResponseTimeSeconds(*v)
	}
	return _u
}

// AddResponseTimeSeconds adds value to the "response_time_seconds" field.
func (_u *AmbientNotificationUpdate) AddResponseTimeSeconds(v int) *AmbientNotificationUpdate {
	_u.mutation.AddResponseTimeSeconds(v)
	return _u
}

// ClearResponseTimeSeconds clears the value of the "response_time_seconds" field.
func (_u *AmbientNotificationUpdate) ClearResponseTimeSeconds() *AmbientNotificationUpdate {
	_u.mutation.ClearResponseTimeSeconds()
	return _u
}

// SetContextSnapshot sets the "context_snapshot" field.
func (_u *AmbientNotificationUpdate) SetContextSnapshot(v map[string]interface{}) *AmbientNotificationUpdate {
	_u.mutation.SetContextSnapshot(v)
	return _u
}

// ClearContextSnapshot clears the value of the "context_snapshot" field.
func (_u *AmbientNotificationUpdate) ClearContextSnapshot() *AmbientNotificationUpdate {
	_u.mutation.ClearContextSnapshot()
	return _u
}

// Mutation returns the AmbientNotificationMutation object of the builder.
func (_u *AmbientNotificationUpdate) Mutation() *AmbientNotificationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AmbientNotificationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AmbientNotificationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AmbientNotificationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AmbientNotificationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AmbientNotificationUpdate) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := ambientnotification.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "AmbientNotification.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ambientnotification.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AmbientNotification.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AmbientNotificationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ambientnotification.Table, ambientnotification.Columns, sqlgraph.NewFieldSpec(ambientnotification.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(ambientnotification.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetMedium(); ok {
		_spec.SetField(ambientnotification.FieldTargetMedium, field.TypeString, value)
	}
	if _u.mutation.TargetMediumCleared() {
		_spec.ClearField(ambientnotification.FieldTargetMedium, field.TypeString)
	}
	if value, ok := _u.mutation.TargetLocation(); ok {
		_spec.SetField(ambientnotification.FieldTargetLocation, field.TypeString, value)
	}
	if _u.mutation.TargetLocationCleared() {
		_spec.ClearField(ambientnotification.FieldTargetLocation, field.TypeString)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(ambientnotification.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(ambientnotification.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RoutingReasoning(); ok {
		_spec.SetField(ambientnotification.FieldRoutingReasoning, field.TypeString, value)
	}
	if _u.mutation.RoutingReasoningCleared() {
		_spec.ClearField(ambientnotification.FieldRoutingReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ambientnotification.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ParentNotificationID(); ok {
		_spec.SetField(ambientnotification.FieldParentNotificationID, field.TypeString, value)
	}
	if _u.mutation.ParentNotificationIDCleared() {
		_spec.ClearField(ambientnotification.FieldParentNotificationID, field.TypeString)
	}
	if value, ok := _u.mutation.Acknowledged(); ok {
		_spec.SetField(ambientnotification.FieldAcknowledged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AcknowledgedAt(); ok {
		_spec.SetField(ambientnotification.FieldAcknowledgedAt, field.TypeTime, value)
	}
	if _u.mutation.AcknowledgedAtCleared() {
		_spec.ClearField(ambientnotification.FieldAcknowledgedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResponseTimeSeconds(); ok {
		_spec.SetField(ambientnotification.FieldResponseTimeSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeSeconds(); ok {
		_spec.AddField(ambientnotification.FieldResponseTimeSeconds, field.TypeInt, value)
	}
	if _u.mutation.ResponseTimeSecondsCleared() {
		_spec.ClearField(ambientnotification.FieldResponseTimeSeconds, field.TypeInt)
	}
	if value, ok := _u.mutation.ContextSnapshot(); ok {
		_spec.SetField(ambientnotification.FieldContextSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.ContextSnapshotCleared() {
		_spec.ClearField(ambientnotification.FieldContextSnapshot, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ambientnotification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AmbientNotificationUpdateOne is the builder for updating a single AmbientNotification entity.
type AmbientNotificationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AmbientNotificationMutation
}

// SetUserID sets the "user_id" field.
func (_u *AmbientNotificationUpdateOne) SetUserID(v string) *AmbientNotificationUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AmbientNotificationUpdateOne) SetNillableUserID(v *string) *AmbientNotificationUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTargetMedium sets the "target_medium" field.
func (_u *AmbientNotificationUpdateOne) SetTargetMedium(v string) *AmbientNotificationUpdateOne {
	_u.mutation.SetTargetMedium(v)
	return _u
}

// SetNillableTargetMedium sets the "target_medium" field if the given value is not nil.
func (_u *AmbientNotificationUpdateOne) SetNillableTargetMedium(v *string) *AmbientNotificationUpdateOne {
	if v != nil {
		_u.SetTargetMedium(*v)
	}
	return _u
}

// ClearTargetMedium clears the value of the "target_medium" field.
func (_u *AmbientNotificationUpdateOne) ClearTargetMedium() *AmbientNotificationUpdateOne {
	_u.mutation.ClearTargetMedium()
	return _u
}

// SetTargetLocation sets the "target_location" field.
func (_u *AmbientNotificationUpdateOne) SetTargetLocation(v string) *AmbientNotificationUpdateOne {
	_u.mutation.SetTargetLocation(v)
	return _u
}

// SetNillableTargetLocation sets the "target_location" field if the given value is not nil.
func (_u *AmbientNotificationUpdateOne) SetNillableTargetLocation(v *string) *AmbientNotificationUpdateOne {
	if v != nil {
		_u.SetTargetLocation(*v)
	}
	return _u
}

// ClearTargetLocation clears the value of the "target_location" field.
func (_u *AmbientNotificationUpdateOne) ClearTargetLocation() *AmbientNotificationUpdateOne {
	_u.mutation.ClearTargetLocation()
	return _u
}

// SetMessage sets the "message" field.
func (_u *AmbientNotificationUpdateOne) SetMessage(v string) *AmbientNotificationUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *AmbientNotificationUpdateOne) SetNillableMessage(v *string) *AmbientNotificationUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *AmbientNotificationUpdateOne) SetPriority(v ambientnotification.Priority) *AmbientNotificationUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *AmbientNotificationUpdateOne) SetNillablePriority(v *ambientnotification.Priority) *AmbientNotificationUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetRoutingReasoning sets the "routing_reasoning" field.
func (_u *AmbientNotificationUpdateOne) SetRoutingReasoning(v string) *AmbientNotificationUpdateOne {
	_u.mutation.SetRoutingReasoning(v)
	return _u
}

// SetNillableRoutingReasoning sets the "routing_reasoning" field if the given value is not nil.
func (_u *AmbientNotificationUpdateOne) SetNillableRoutingReasoning(v *string) *AmbientNotificationUpdateOne {
	if v != nil {
		_u.SetRoutingReasoning(*v)
	}
	return _u
}

// ClearRoutingReasoning clears the value of the "routing_reasoning" field.
func (_u *AmbientNotificationUpdateOne) ClearRoutingReasoning() *AmbientNotificationUpdateOne {
	_u.mutation.ClearRoutingReasoning()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AmbientNotificationUpdateOne) SetStatus(v ambientnotification.Status) *AmbientNotificationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AmbientNotificationUpdateOne) SetNillableStatus(v *ambientnotification.Status) *AmbientNotificationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetParentNotificationID sets the "parent_notification_id" field.
func (_u *AmbientNotificationUpdateOne) SetParentNotificationID(v string) *AmbientNotificationUpdateOne {
	_u.mutation.SetParentNotificationID(v)
	return _u
}

// SetNillableParentNotificationID sets the "parent_notification_id" field if the given value is not nil.
func (_u *AmbientNotificationUpdateOne) SetNillableParentNotificationID(v *string) *AmbientNotificationUpdateOne {
	if v != nil {
		_u.SetParentNotificationID(*v)
	}
	return _u
}

// ClearParentNotificationID clears the value of the "parent_notification_id" field.
func (_u *AmbientNotificationUpdateOne) ClearParentNotificationID() *AmbientNotificationUpdateOne {
	_u.mutation.ClearParentNotificationID()
	return _u
}

// SetAcknowledged sets the "acknowledged" field.
func (_u *AmbientNotificationUpdateOne) SetAcknowledged(v bool) *AmbientNotificationUpdateOne {
	_u.mutation.SetAcknowledged(v)
	return _u
}

// SetNillableAcknowledged sets the "acknowledged" field if the given value is not nil.
func (_u *AmbientNotificationUpdateOne) SetNillableAcknowledged(v *bool) *AmbientNotificationUpdateOne {
	if v != nil {
		_u.SetAcknowledged(*v)
	}
	return _u
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (_u *AmbientNotificationUpdateOne) SetAcknowledgedAt(v time.Time) *AmbientNotificationUpdateOne {
	_u.mutation.SetAcknowledgedAt(v)
	return _u
}

// SetNillableAcknowledgedAt sets the "acknowledged_at" field if the given value is not nil.
func (_u *AmbientNotificationUpdateOne) SetNillableAcknowledgedAt(v *time.Time) *AmbientNotificationUpdateOne {
	if v != nil {
		_u.SetAcknowledgedAt(*v)
	}
	return _u
}

// ClearAcknowledgedAt clears the value of the "acknowledged_at" field.
func (_u *AmbientNotificationUpdateOne) ClearAcknowledgedAt() *AmbientNotificationUpdateOne {
	_u.mutation.ClearAcknowledgedAt()
	return _u
}

// SetResponseTimeSeconds sets the "response_time_seconds" field.
func (_u *AmbientNotificationUpdateOne) SetResponseTimeSeconds(v int) *AmbientNotificationUpdateOne {
	_u.mutation.ResetResponseTimeSeconds()
	_u.mutation.SetResponseTimeSeconds(v)
	return _u
}

// SetNillableResponseTimeSeconds sets the "response_time_seconds" field if the given value is not nil.
func (_u *AmbientNotificationUpdateOne) SetNillableResponseTimeSeconds(v *int) *AmbientNotificationUpdateOne {
	if v != nil {
		_u.SetResponseTimeSeconds(*v)
	}
	return _u
}

// AddResponseTimeSeconds adds value to the "response_time_seconds" field.
func (_u *AmbientNotificationUpdateOne) AddResponseTimeSeconds(v int) *AmbientNotificationUpdateOne {
	_u.mutation.AddResponseTimeSeconds(v)
	return _u
}

// ClearResponseTimeSeconds clears the value of the "response_time_seconds" field.
func (_u *AmbientNotificationUpdateOne) ClearResponseTimeSeconds() *AmbientNotificationUpdateOne {
	_u.mutation.ClearResponseTimeSeconds()
	return _u
}

// SetContextSnapshot sets the "context_snapshot" field.
func (_u *AmbientNotificationUpdateOne) SetContextSnapshot(v map[string]interface{}) *AmbientNotificationUpdateOne {
	_u.mutation.SetContextSnapshot(v)
	return _u
}

// ClearContextSnapshot clears the value of the "context_snapshot" field.
func (_u *AmbientNotificationUpdateOne) ClearContextSnapshot() *AmbientNotificationUpdateOne {
	_u.mutation.ClearContextSnapshot()
	return _u
}

// Mutation returns the AmbientNotificationMutation object of the builder.
func (_u *AmbientNotificationUpdateOne) Mutation() *AmbientNotificationMutation {
	return _u.mutation
}

// Where appends a list predicates to the AmbientNotificationUpdate builder.
func (_u *AmbientNotificationUpdateOne) Where(ps ...predicate.AmbientNotification) *AmbientNotificationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AmbientNotificationUpdateOne) Select(field string, fields ...string) *AmbientNotificationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AmbientNotification entity.
func (_u *AmbientNotificationUpdateOne) Save(ctx context.Context) (*AmbientNotification, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AmbientNotificationUpdateOne) SaveX(ctx context.Context) *AmbientNotification {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AmbientNotificationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AmbientNotificationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AmbientNotificationUpdateOne) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := ambientnotification.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "AmbientNotification.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ambientnotification.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AmbientNotification.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AmbientNotificationUpdateOne) sqlSave(ctx context.Context) (_node *AmbientNotification, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ambientnotification.Table, ambientnotification.Columns, sqlgraph.NewFieldSpec(ambientnotification.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AmbientNotification.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ambientnotification.FieldID)
		for _, f := range fields {
			if !ambientnotification.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ambientnotification.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(ambientnotification.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetMedium(); ok {
		_spec.SetField(ambientnotification.FieldTargetMedium, field.TypeString, value)
	}
	if _u.mutation.TargetMediumCleared() {
		_spec.ClearField(ambientnotification.FieldTargetMedium, field.TypeString)
	}
	if value, ok := _u.mutation.TargetLocation(); ok {
		_spec.SetField(ambientnotification.FieldTargetLocation, field.TypeString, value)
	}
	if _u.mutation.TargetLocationCleared() {
		_spec.ClearField(ambientnotification.FieldTargetLocation, field.TypeString)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(ambientnotification.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(ambientnotification.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RoutingReasoning(); ok {
		_spec.SetField(ambientnotification.FieldRoutingReasoning, field.TypeString, value)
	}
	if _u.mutation.RoutingReasoningCleared() {
		_spec.ClearField(ambientnotification.FieldRoutingReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ambientnotification.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ParentNotificationID(); ok {
		_spec.SetField(ambientnotification.FieldParentNotificationID, field.TypeString, value)
	}
	if _u.mutation.ParentNotificationIDCleared() {
		_spec.ClearField(ambientnotification.FieldParentNotificationID, field.TypeString)
	}
	if value, ok := _u.mutation.Acknowledged(); ok {
		_spec.SetField(ambientnotification.FieldAcknowledged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AcknowledgedAt(); ok {
		_spec.SetField(ambientnotification.FieldAcknowledgedAt, field.TypeTime, value)
	}
	if _u.mutation.AcknowledgedAtCleared() {
		_spec.ClearField(ambientnotification.FieldAcknowledgedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResponseTimeSeconds(); ok {
		_spec.SetField(ambientnotification.FieldResponseTimeSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeSeconds(); ok {
		_spec.AddField(ambientnotification.FieldResponseTimeSeconds, field.TypeInt, value)
	}
	if _u.mutation.ResponseTimeSecondsCleared() {
		_spec.ClearField(ambientnotification.FieldResponseTimeSeconds, field.TypeInt)
	}
	if value, ok := _u.mutation.ContextSnapshot(); ok {
		_spec.SetField(ambientnotification.FieldContextSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.ContextSnapshotCleared() {
		_spec.ClearField(ambientnotification.FieldContextSnapshot, field.TypeJSON)
	}
	_node = &AmbientNotification{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ambientnotification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
