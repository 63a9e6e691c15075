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
	"github.com/kestrel-ai/kestrel/ent/ambientnotification"
)

// AmbientNotificationCreate is the builder for creating a AmbientNotification entity.
type AmbientNotificationCreate struct {
	config
	mutation *AmbientNotificationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *AmbientNotificationCreate) SetUserID(v string) *AmbientNotificationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTargetMedium sets the "target_medium" field.
func (_c *AmbientNotificationCreate) SetTargetMedium(v string) *AmbientNotificationCreate {
	_c.mutation.SetTargetMedium(v)
	return _c
}

// SetNillableTargetMedium sets the "target_medium" field if the given value is not nil.
func (_c *AmbientNotificationCreate) SetNillableTargetMedium(v *string) *AmbientNotificationCreate {
	if v != nil {
		_c.SetTargetMedium(*v)
	}
	return _c
}

// SetTargetLocation sets the "target_location" field.
func (_c *AmbientNotificationCreate) SetTargetLocation(v string) *AmbientNotificationCreate {
	_c.mutation.SetTargetLocation(v)
	return _c
}

// SetNillableTargetLocation sets the "target_location" field if the given value is not nil.
func (_c *AmbientNotificationCreate) SetNillableTargetLocation(v *string) *AmbientNotificationCreate {
	if v != nil {
		_c.SetTargetLocation(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *AmbientNotificationCreate) SetMessage(v string) *AmbientNotificationCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *AmbientNotificationCreate) SetPriority(v ambientnotification.Priority) *AmbientNotificationCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *AmbientNotificationCreate) SetNillablePriority(v *ambientnotification.Priority) *AmbientNotificationCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetRoutingReasoning sets the "routing_reasoning" field.
func (_c *AmbientNotificationCreate) SetRoutingReasoning(v string) *AmbientNotificationCreate {
	_c.mutation.SetRoutingReasoning(v)
	return _c
}

// SetNillableRoutingReasoning sets the "routing_reasoning" field if the given value is not nil.
func (_c *AmbientNotificationCreate) SetNillableRoutingReasoning(v *string) *AmbientNotificationCreate {
	if v != nil {
		_c.SetRoutingReasoning(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AmbientNotificationCreate) SetStatus(v ambientnotification.Status) *AmbientNotificationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AmbientNotificationCreate) SetNillableStatus(v *ambientnotification.Status) *AmbientNotificationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetParentNotificationID sets the "parent_notification_id" field.
func (_c *AmbientNotificationCreate) SetParentNotificationID(v string) *AmbientNotificationCreate {
	_c.mutation.SetParentNotificationID(v)
	return _c
}

// SetNillableParentNotificationID sets the "parent_notification_id" field if the given value is not nil.
func (_c *AmbientNotificationCreate) SetNillableParentNotificationID(v *string) *AmbientNotificationCreate {
	if v != nil {
		_c.SetParentNotificationID(*v)
	}
	return _c
}

// SetAcknowledged sets the "acknowledged" field.
func (_c *AmbientNotificationCreate) SetAcknowledged(v bool) *AmbientNotificationCreate {
	_c.mutation.SetAcknowledged(v)
	return _c
}

// SetNillableAcknowledged sets the "acknowledged" field if the given value is not nil.
func (_c *AmbientNotificationCreate) SetNillableAcknowledged(v *bool) *AmbientNotificationCreate {
	if v != nil {
		_c.SetAcknowledged(*v)
	}
	return _c
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (_c *AmbientNotificationCreate) SetAcknowledgedAt(v time.Time) *AmbientNotificationCreate {
	_c.mutation.SetAcknowledgedAt(v)
	return _c
}

// SetNillableAcknowledgedAt sets the "acknowledged_at" field if the given value is not nil.
func (_c *AmbientNotificationCreate) SetNillableAcknowledgedAt(v *time.Time) *AmbientNotificationCreate {
	if v != nil {
		_c.SetAcknowledgedAt(*v)
	}
	return _c
}

// SetResponseTimeSeconds sets the "response_time_seconds" field.
func (_c *AmbientNotificationCreate) SetResponseTimeSeconds(v int) *AmbientNotificationCreate {
	_c.mutation.SetResponseTimeSeconds(v)
	return _c
}

// SetNillableResponseTimeSeconds sets the "response_time_seconds" field if the given value is not nil.
func (_c *AmbientNotificationCreate) SetNillableResponseTimeSeconds(v *int) *AmbientNotificationCreate {
	if v != nil {
		_c.SetResponseTimeSeconds(*v)
	}
	return _c
}

// SetContextSnapshot sets the "context_snapshot" field.
func (_c *AmbientNotificationCreate) SetContextSnapshot(v map[string]interface{}) *AmbientNotificationCreate {
	_c.mutation.SetContextSnapshot(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AmbientNotificationCreate) SetCreatedAt(v time.Time) *AmbientNotificationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AmbientNotificationCreate) SetNillableCreatedAt(v *time.Time) *AmbientNotificationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AmbientNotificationCreate) SetID(v string) *AmbientNotificationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AmbientNotificationMutation object of the builder.
func (_c *AmbientNotificationCreate) Mutation() *AmbientNotificationMutation {
	return _c.mutation
}

// Save creates the AmbientNotification in the database.
func (_c *AmbientNotificationCreate) Save(ctx context.Context) (*AmbientNotification, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AmbientNotificationCreate) SaveX(ctx context.Context) *AmbientNotification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AmbientNotificationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AmbientNotificationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AmbientNotificationCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := ambientnotification.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := ambientnotification.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Acknowledged(); !ok {
		v := ambientnotification.DefaultAcknowledged
		_c.mutation.SetAcknowledged(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ambientnotification.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AmbientNotificationCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AmbientNotification.user_id"`)}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "AmbientNotification.message"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "AmbientNotification.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := ambientnotification.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "AmbientNotification.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AmbientNotification.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := ambientnotification.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AmbientNotification.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Acknowledged(); !ok {
		return &ValidationError{Name: "acknowledged", err: errors.New(`ent: missing required field "AmbientNotification.acknowledged"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AmbientNotification.created_at"`)}
	}
	return nil
}

func (_c *AmbientNotificationCreate) sqlSave(ctx context.Context) (*AmbientNotification, error) {
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
			return nil, fmt.Errorf("unexpected AmbientNotification.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AmbientNotificationCreate) createSpec() (*AmbientNotification, *sqlgraph.CreateSpec) {
	var (
		_node = &AmbientNotification{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ambientnotification.Table, sqlgraph.NewFieldSpec(ambientnotification.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(ambientnotification.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TargetMedium(); ok {
		_spec.SetField(ambientnotification.FieldTargetMedium, field.TypeString, value)
		_node.TargetMedium = value
	}
	if value, ok := _c.mutation.TargetLocation(); ok {
		_spec.SetField(ambientnotification.FieldTargetLocation, field.TypeString, value)
		_node.TargetLocation = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(ambientnotification.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(ambientnotification.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.RoutingReasoning(); ok {
		_spec.SetField(ambientnotification.FieldRoutingReasoning, field.TypeString, value)
		_node.RoutingReasoning = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(ambientnotification.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ParentNotificationID(); ok {
		_spec.SetField(ambientnotification.FieldParentNotificationID, field.TypeString, value)
		_node.ParentNotificationID = &value
	}
	if value, ok := _c.mutation.Acknowledged(); ok {
		_spec.SetField(ambientnotification.FieldAcknowledged, field.TypeBool, value)
		_node.Acknowledged = value
	}
	if value, ok := _c.mutation.AcknowledgedAt(); ok {
		_spec.SetField(ambientnotification.FieldAcknowledgedAt, field.TypeTime, value)
		_node.AcknowledgedAt = &value
	}
	if value, ok := _c.mutation.ResponseTimeSeconds(); ok {
		_spec.SetField(ambientnotification.FieldResponseTimeSeconds, field.TypeInt, value)
		_node.ResponseTimeSeconds = &value
	}
	if value, ok := _c.mutation.ContextSnapshot(); ok {
		_spec.SetField(ambientnotification.FieldContextSnapshot, field.TypeJSON, value)
		_node.ContextSnapshot = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ambientnotification.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AmbientNotification.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AmbientNotificationUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *AmbientNotificationCreate) OnConflict(opts ...sql.ConflictOption) *AmbientNotificationUpsertOne {
	_c.conflict = opts
	return &AmbientNotificationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AmbientNotification.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AmbientNotificationCreate) OnConflictColumns(columns ...string) *AmbientNotificationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AmbientNotificationUpsertOne{
		create: _c,
	}
}

type (
	// AmbientNotificationUpsertOne is the builder for "upsert"-ing
	//  one AmbientNotification node.
	AmbientNotificationUpsertOne struct {
		create *AmbientNotificationCreate
	}

	// AmbientNotificationUpsert is the "OnConflict" setter.
	AmbientNotificationUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *AmbientNotificationUpsert) SetUserID(v string) *AmbientNotificationUpsert {
	u.Set(ambientnotification.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AmbientNotificationUpsert) UpdateUserID() *AmbientNotificationUpsert {
	u.SetExcluded(ambientnotification.FieldUserID)
	return u
}

// SetTargetMedium sets the "target_medium" field.
func (u *AmbientNotificationUpsert) SetTargetMedium(v string) *AmbientNotificationUpsert {
	u.Set(ambientnotification.FieldTargetMedium, v)
	return u
}

// UpdateTargetMedium sets the "target_medium" field to the value that was provided on create.
func (u *AmbientNotificationUpsert) UpdateTargetMedium() *AmbientNotificationUpsert {
	u.SetExcluded(ambientnotification.FieldTargetMedium)
	return u
}

// ClearTargetMedium clears the value of the "target_medium" field.
func (u *AmbientNotificationUpsert) ClearTargetMedium() *AmbientNotificationUpsert {
	u.SetNull(ambientnotification.FieldTargetMedium)
	return u
}

// SetTargetLocation sets the "target_location" field.
func (u *AmbientNotificationUpsert) SetTargetLocation(v string) *AmbientNotificationUpsert {
	u.Set(ambientnotification.FieldTargetLocation, v)
	return u
}

// UpdateTargetLocation sets the "target_location" field to the value that was provided on create.
func (u *AmbientNotificationUpsert) UpdateTargetLocation() *AmbientNotificationUpsert {
	u.SetExcluded(ambientnotification.FieldTargetLocation)
	return u
}

// ClearTargetLocation clears the value of the "target_location" field.
func (u *AmbientNotificationUpsert) ClearTargetLocation() *AmbientNotificationUpsert {
	u.SetNull(ambientnotification.FieldTargetLocation)
	return u
}

// SetMessage sets the "message" field.
func (u *AmbientNotificationUpsert) SetMessage(v string) *AmbientNotificationUpsert {
	u.Set(ambientnotification.FieldMessage, v)
	return u
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *AmbientNotificationUpsert) UpdateMessage() *AmbientNotificationUpsert {
	u.SetExcluded(ambientnotification.FieldMessage)
	return u
}

// SetPriority sets the "priority" field.
func (u *AmbientNotificationUpsert) SetPriority(v ambientnotification.Priority) *AmbientNotificationUpsert {
	u.Set(ambientnotification.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *AmbientNotificationUpsert) UpdatePriority() *AmbientNotificationUpsert {
	u.SetExcluded(ambientnotification.FieldPriority)
	return u
}

// SetRoutingReasoning sets the "routing_reasoning" field.
func (u *AmbientNotificationUpsert) SetRoutingReasoning(v string) *AmbientNotificationUpsert {
	u.Set(ambientnotification.FieldRoutingReasoning, v)
	return u
}

// UpdateRoutingReasoning sets the "routing_reasoning" field to the value that was provided on create.
func (u *AmbientNotificationUpsert) UpdateRoutingReasoning() *AmbientNotificationUpsert {
	u.SetExcluded(ambientnotification.FieldRoutingReasoning)
	return u
}

// ClearRoutingReasoning clears the value of the "routing_reasoning" field.
func (u *AmbientNotificationUpsert) ClearRoutingReasoning() *AmbientNotificationUpsert {
	u.SetNull(ambientnotification.FieldRoutingReasoning)
	return u
}

// SetStatus sets the "status" field.
func (u *AmbientNotificationUpsert) SetStatus(v ambientnotification.Status) *AmbientNotificationUpsert {
	u.Set(ambientnotification.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AmbientNotificationUpsert) UpdateStatus() *AmbientNotificationUpsert {
	u.SetExcluded(ambientnotification.FieldStatus)
	return u
}

// SetParentNotificationID sets the "parent_notification_id" field.
func (u *AmbientNotificationUpsert) SetParentNotificationID(v string) *AmbientNotificationUpsert {
	u.Set(ambientnotification.FieldParentNotificationID, v)
	return u
}

// UpdateParentNotificationID sets the "parent_notification_id" field to the value that was provided on create.
func (u *AmbientNotificationUpsert) UpdateParentNotificationID() *AmbientNotificationUpsert {
	u.SetExcluded(ambientnotification.FieldParentNotificationID)
	return u
}

// ClearParentNotificationID clears the value of the "parent_notification_id" field.
func (u *AmbientNotificationUpsert) ClearParentNotificationID() *AmbientNotificationUpsert {
	u.SetNull(ambientnotification.FieldParentNotificationID)
	return u
}

// SetAcknowledged sets the "acknowledged" field.
func (u *AmbientNotificationUpsert) SetAcknowledged(v bool) *AmbientNotificationUpsert {
	u.Set(ambientnotification.FieldAcknowledged, v)
	return u
}

// UpdateAcknowledged sets the "acknowledged" field to the value that was provided on create.
func (u *AmbientNotificationUpsert) UpdateAcknowledged() *AmbientNotificationUpsert {
	u.SetExcluded(ambientnotification.FieldAcknowledged)
	return u
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (u *AmbientNotificationUpsert) SetAcknowledgedAt(v time.Time) *AmbientNotificationUpsert {
	u.Set(ambientnotification.FieldAcknowledgedAt, v)
	return u
}

// UpdateAcknowledgedAt sets the "acknowledged_at" field to the value that was provided on create.
func (u *AmbientNotificationUpsert) UpdateAcknowledgedAt() *AmbientNotificationUpsert {
	u.SetExcluded(ambientnotification.FieldAcknowledgedAt)
	return u
}

// ClearAcknowledgedAt clears the value of the "acknowledged_at" field.
func (u *AmbientNotificationUpsert) ClearAcknowledgedAt() *AmbientNotificationUpsert {
	u.SetNull(ambientnotification.FieldAcknowledgedAt)
	return u
}

// SetResponseTimeSeconds sets the "response_time_seconds" field.
func (u *AmbientNotificationUpsert) SetResponseTimeSeconds(v int) *AmbientNotificationUpsert {
	u.Set(ambientnotification.FieldResponseTimeSeconds, v)
	return u
}

// UpdateResponseTimeSeconds sets the "response_time_seconds" field to the value that was provided on create.
func (u *AmbientNotificationUpsert) UpdateResponseTimeSeconds() *AmbientNotificationUpsert {
	u.SetExcluded(ambientnotification.FieldResponseTimeSeconds)
	return u
}

// AddResponseTimeSeconds adds v to the "response_time_seconds" field.
func (u *AmbientNotificationUpsert) AddResponseTimeSeconds(v int) *AmbientNotificationUpsert {
	u.Add(ambientnotification.FieldResponseTimeSeconds, v)
	return u
}

// ClearResponseTimeSeconds clears the value of the "response_time_seconds" field.
func (u *AmbientNotificationUpsert) ClearResponseTimeSeconds() *AmbientNotificationUpsert {
	u.SetNull(ambientnotification.FieldResponseTimeSeconds)
	return u
}

// SetContextSnapshot sets the "context_snapshot" field.
func (u *AmbientNotificationUpsert) SetContextSnapshot(v map[string]interface{}) *AmbientNotificationUpsert {
	u.Set(ambientnotification.FieldContextSnapshot, v)
	return u
}

// UpdateContextSnapshot sets the "context_snapshot" field to the value that was provided on create.
func (u *AmbientNotificationUpsert) UpdateContextSnapshot() *AmbientNotificationUpsert {
	u.SetExcluded(ambientnotification.FieldContextSnapshot)
	return u
}

// ClearContextSnapshot clears the value of the "context_snapshot" field.
func (u *AmbientNotificationUpsert) ClearContextSnapshot() *AmbientNotificationUpsert {
	u.SetNull(ambientnotification.FieldContextSnapshot)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AmbientNotification.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(ambientnotification.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AmbientNotificationUpsertOne) UpdateNewValues() *AmbientNotificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(ambientnotification.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(ambientnotification.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AmbientNotification.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AmbientNotificationUpsertOne) Ignore() *AmbientNotificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AmbientNotificationUpsertOne) DoNothing() *AmbientNotificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AmbientNotificationCreate.OnConflict
// documentation for more info.
func (u *AmbientNotificationUpsertOne) Update(set func(*AmbientNotificationUpsert)) *AmbientNotificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AmbientNotificationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *AmbientNotificationUpsertOne) SetUserID(v string) *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AmbientNotificationUpsertOne) UpdateUserID() *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.UpdateUserID()
	})
}

// SetTargetMedium sets the "target_medium" field.
func (u *AmbientNotificationUpsertOne) SetTargetMedium(v string) *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.SetTargetMedium(v)
	})
}

// UpdateTargetMedium sets the "target_medium" field to the value that was provided on create.
func (u *AmbientNotificationUpsertOne) UpdateTargetMedium() *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.UpdateTargetMedium()
	})
}

// ClearTargetMedium clears the value of the "target_medium" field.
func (u *AmbientNotificationUpsertOne) ClearTargetMedium() *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.ClearTargetMedium()
	})
}

// SetTargetLocation sets the "target_location" field.
func (u *AmbientNotificationUpsertOne) SetTargetLocation(v string) *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.SetTargetLocation(v)
	})
}

// UpdateTargetLocation sets the "target_location" field to the value that was provided on create.
func (u *AmbientNotificationUpsertOne) UpdateTargetLocation() *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.UpdateTargetLocation()
	})
}

// ClearTargetLocation clears the value of the "target_location" field.
func (u *AmbientNotificationUpsertOne) ClearTargetLocation() *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.ClearTargetLocation()
	})
}

// SetMessage sets the "message" field.
func (u *AmbientNotificationUpsertOne) SetMessage(v string) *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *AmbientNotificationUpsertOne) UpdateMessage() *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.UpdateMessage()
	})
}

// SetPriority sets the "priority" field.
func (u *AmbientNotificationUpsertOne) SetPriority(v ambientnotification.Priority) *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *AmbientNotificationUpsertOne) UpdatePriority() *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.UpdatePriority()
	})
}

// SetRoutingReasoning sets the "routing_reasoning" field.
func (u *AmbientNotificationUpsertOne) SetRoutingReasoning(v string) *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.SetRoutingReasoning(v)
	})
}

// UpdateRoutingReasoning sets the "routing_reasoning" field to the value that was provided on create.
func (u *AmbientNotificationUpsertOne) UpdateRoutingReasoning() *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.UpdateRoutingReasoning()
	})
}

// ClearRoutingReasoning clears the value of the "routing_reasoning" field.
func (u *AmbientNotificationUpsertOne) ClearRoutingReasoning() *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.ClearRoutingReasoning()
	})
}

// SetStatus sets the "status" field.
func (u *AmbientNotificationUpsertOne) SetStatus(v ambientnotification.Status) *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AmbientNotificationUpsertOne) UpdateStatus() *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.UpdateStatus()
	})
}

// SetParentNotificationID sets the "parent_notification_id" field.
func (u *AmbientNotificationUpsertOne) SetParentNotificationID(v string) *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.SetParentNotificationID(v)
	})
}

// UpdateParentNotificationID sets the "parent_notification_id" field to the value that was provided on create.
func (u *AmbientNotificationUpsertOne) UpdateParentNotificationID() *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.UpdateParentNotificationID()
	})
}

// ClearParentNotificationID clears the value of the "parent_notification_id" field.
func (u *AmbientNotificationUpsertOne) ClearParentNotificationID() *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.ClearParentNotificationID()
	})
}

// SetAcknowledged sets the "acknowledged" field.
func (u *AmbientNotificationUpsertOne) SetAcknowledged(v bool) *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.SetAcknowledged(v)
	})
}

// UpdateAcknowledged sets the "acknowledged" field to the value that was provided on create.
func (u *AmbientNotificationUpsertOne) UpdateAcknowledged() *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.UpdateAcknowledged()
	})
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (u *AmbientNotificationUpsertOne) SetAcknowledgedAt(v time.Time) *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.SetAcknowledgedAt(v)
	})
}

// UpdateAcknowledgedAt sets the "acknowledged_at" field to the value that was provided on create.
func (u *AmbientNotificationUpsertOne) UpdateAcknowledgedAt() *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.UpdateAcknowledgedAt()
	})
}

// ClearAcknowledgedAt clears the value of the "acknowledged_at" field.
func (u *AmbientNotificationUpsertOne) ClearAcknowledgedAt() *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.ClearAcknowledgedAt()
	})
}

// SetResponseTimeSeconds sets the "response_time_seconds" field.
func (u *AmbientNotificationUpsertOne) SetResponseTimeSeconds(v int) *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.SetResponseTimeSeconds(v)
	})
}

// AddResponseTimeSeconds adds v to the "response_time_seconds" field.
func (u *AmbientNotificationUpsertOne) AddResponseTimeSeconds(v int) *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.AddResponseTimeSeconds(v)
	})
}

// UpdateResponseTimeSeconds sets the "response_time_seconds" field to the value that was provided on create.
func (u *AmbientNotificationUpsertOne) UpdateResponseTimeSeconds() *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.UpdateResponseTimeSeconds()
	})
}

// ClearResponseTimeSeconds clears the value of the "response_time_seconds" field.
func (u *AmbientNotificationUpsertOne) ClearResponseTimeSeconds() *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.ClearResponseTimeSeconds()
	})
}

// SetContextSnapshot sets the "context_snapshot" field.
func (u *AmbientNotificationUpsertOne) SetContextSnapshot(v map[string]interface{}) *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.SetContextSnapshot(v)
	})
}

// UpdateContextSnapshot sets the "context_snapshot" field to the value that was provided on create.
func (u *AmbientNotificationUpsertOne) UpdateContextSnapshot() *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.UpdateContextSnapshot()
	})
}

// ClearContextSnapshot clears the value of the "context_snapshot" field.
func (u *AmbientNotificationUpsertOne) ClearContextSnapshot() *AmbientNotificationUpsertOne {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.ClearContextSnapshot()
	})
}

// Exec executes the query.
func (u *AmbientNotificationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AmbientNotificationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AmbientNotificationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AmbientNotificationUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AmbientNotificationUpsertOne.ID is not supported by MySQL driver. Use AmbientNotificationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AmbientNotificationUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AmbientNotificationCreateBulk is the builder for creating many AmbientNotification entities in bulk.
type AmbientNotificationCreateBulk struct {
	config
	err      error
	builders []*AmbientNotificationCreate
	conflict []sql.ConflictOption
}

// Save creates the AmbientNotification entities in the database.
func (_c *AmbientNotificationCreateBulk) Save(ctx context.Context) ([]*AmbientNotification, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AmbientNotification, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AmbientNotificationMutation)
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
func (_c *AmbientNotificationCreateBulk) SaveX(ctx context.Context) []*AmbientNotification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AmbientNotificationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AmbientNotificationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AmbientNotification.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AmbientNotificationUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *AmbientNotificationCreateBulk) OnConflict(opts ...sql.ConflictOption) *AmbientNotificationUpsertBulk {
	_c.conflict = opts
	return &AmbientNotificationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AmbientNotification.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AmbientNotificationCreateBulk) OnConflictColumns(columns ...string) *AmbientNotificationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AmbientNotificationUpsertBulk{
		create: _c,
	}
}

// AmbientNotificationUpsertBulk is the builder for "upsert"-ing
// a bulk of AmbientNotification nodes.
type AmbientNotificationUpsertBulk struct {
	create *AmbientNotificationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AmbientNotification.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(ambientnotification.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AmbientNotificationUpsertBulk) UpdateNewValues() *AmbientNotificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(ambientnotification.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(ambientnotification.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AmbientNotification.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AmbientNotificationUpsertBulk) Ignore() *AmbientNotificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AmbientNotificationUpsertBulk) DoNothing() *AmbientNotificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AmbientNotificationCreateBulk.OnConflict
// documentation for more info.
func (u *AmbientNotificationUpsertBulk) Update(set func(*AmbientNotificationUpsert)) *AmbientNotificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AmbientNotificationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *AmbientNotificationUpsertBulk) SetUserID(v string) *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AmbientNotificationUpsertBulk) UpdateUserID() *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.UpdateUserID()
	})
}

// SetTargetMedium sets the "target_medium" field.
func (u *AmbientNotificationUpsertBulk) SetTargetMedium(v string) *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.SetTargetMedium(v)
	})
}

// UpdateTargetMedium sets the "target_medium" field to the value that was provided on create.
func (u *AmbientNotificationUpsertBulk) UpdateTargetMedium() *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.UpdateTargetMedium()
	})
}

// ClearTargetMedium clears the value of the "target_medium" field.
func (u *AmbientNotificationUpsertBulk) ClearTargetMedium() *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.ClearTargetMedium()
	})
}

// SetTargetLocation sets the "target_location" field.
func (u *AmbientNotificationUpsertBulk) SetTargetLocation(v string) *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.SetTargetLocation(v)
	})
}

// UpdateTargetLocation sets the "target_location" field to the value that was provided on create.
func (u *AmbientNotificationUpsertBulk) UpdateTargetLocation() *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.UpdateTargetLocation()
	})
}

// ClearTargetLocation clears the value of the "target_location" field.
func (u *AmbientNotificationUpsertBulk) ClearTargetLocation() *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.ClearTargetLocation()
	})
}

// SetMessage sets the "message" field.
func (u *AmbientNotificationUpsertBulk) SetMessage(v string) *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *AmbientNotificationUpsertBulk) UpdateMessage() *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.UpdateMessage()
	})
}

// SetPriority sets the "priority" field.
func (u *AmbientNotificationUpsertBulk) SetPriority(v ambientnotification.Priority) *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *AmbientNotificationUpsertBulk) UpdatePriority() *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.UpdatePriority()
	})
}

// SetRoutingReasoning sets the "routing_reasoning" field.
func (u *AmbientNotificationUpsertBulk) SetRoutingReasoning(v string) *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.SetRoutingReasoning(v)
	})
}

// UpdateRoutingReasoning sets the "routing_reasoning" field to the value that was provided on create.
func (u *AmbientNotificationUpsertBulk) UpdateRoutingReasoning() *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.UpdateRoutingReasoning()
	})
}

// ClearRoutingReasoning clears the value of the "routing_reasoning" field.
func (u *AmbientNotificationUpsertBulk) ClearRoutingReasoning() *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.ClearRoutingReasoning()
	})
}

// SetStatus sets the "status" field.
func (u *AmbientNotificationUpsertBulk) SetStatus(v ambientnotification.Status) *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AmbientNotificationUpsertBulk) UpdateStatus() *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.UpdateStatus()
	})
}

// SetParentNotificationID sets the "parent_notification_id" field.
func (u *AmbientNotificationUpsertBulk) SetParentNotificationID(v string) *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.SetParentNotificationID(v)
	})
}

// UpdateParentNotificationID sets the "parent_notification_id" field to the value that was provided on create.
func (u *AmbientNotificationUpsertBulk) UpdateParentNotificationID() *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.UpdateParentNotificationID()
	})
}

// ClearParentNotificationID clears the value of the "parent_notification_id" field.
func (u *AmbientNotificationUpsertBulk) ClearParentNotificationID() *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.ClearParentNotificationID()
	})
}

// SetAcknowledged sets the "acknowledged" field.
func (u *AmbientNotificationUpsertBulk) SetAcknowledged(v bool) *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.SetAcknowledged(v)
	})
}

// UpdateAcknowledged sets the "acknowledged" field to the value that was provided on create.
func (u *AmbientNotificationUpsertBulk) UpdateAcknowledged() *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.UpdateAcknowledged()
	})
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (u *AmbientNotificationUpsertBulk) SetAcknowledgedAt(v time.Time) *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.SetAcknowledgedAt(v)
	})
}

// UpdateAcknowledgedAt sets the "acknowledged_at" field to the value that was provided on create.
func (u *AmbientNotificationUpsertBulk) UpdateAcknowledgedAt() *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.UpdateAcknowledgedAt()
	})
}

// ClearAcknowledgedAt clears the value of the "acknowledged_at" field.
func (u *AmbientNotificationUpsertBulk) ClearAcknowledgedAt() *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.ClearAcknowledgedAt()
	})
}

// SetResponseTimeSeconds sets the "response_time_seconds" field.
func (u *AmbientNotificationUpsertBulk) SetResponseTimeSeconds(v int) *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.SetResponseTimeSeconds(v)
	})
}

// AddResponseTimeSeconds adds v to the "response_time_seconds" field.
func (u *AmbientNotificationUpsertBulk) AddResponseTimeSeconds(v int) *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.AddResponseTimeSeconds(v)
	})
}

// UpdateResponseTimeSeconds sets the "response_time_seconds" field to the value that was provided on create.
func (u *AmbientNotificationUpsertBulk) UpdateResponseTimeSeconds() *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.UpdateResponseTimeSeconds()
	})
}

// ClearResponseTimeSeconds clears the value of the "response_time_seconds" field.
func (u *AmbientNotificationUpsertBulk) ClearResponseTimeSeconds() *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.ClearResponseTimeSeconds()
	})
}

// SetContextSnapshot sets the "context_snapshot" field.
func (u *AmbientNotificationUpsertBulk) SetContextSnapshot(v map[string]interface{}) *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.SetContextSnapshot(v)
	})
}

// UpdateContextSnapshot sets the "context_snapshot" field to the value that was provided on create.
func (u *AmbientNotificationUpsertBulk) UpdateContextSnapshot() *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.UpdateContextSnapshot()
	})
}

// ClearContextSnapshot clears the value of the "context_snapshot" field.
func (u *AmbientNotificationUpsertBulk) ClearContextSnapshot() *AmbientNotificationUpsertBulk {
	return u.Update(func(s *AmbientNotificationUpsert) {
		s.ClearContextSnapshot()
	})
}

// Exec executes the query.
func (u *AmbientNotificationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AmbientNotificationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AmbientNotificationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AmbientNotificationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
