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
	"github.com/kestrel-ai/kestrel/ent/contradictionreview"
)

// ContradictionReviewCreate is the builder for creating a ContradictionReview entity.
type ContradictionReviewCreate struct {
	config
	mutation *ContradictionReviewMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetNewFact sets the "new_fact" field.
func (_c *ContradictionReviewCreate) SetNewFact(v string) *ContradictionReviewCreate {
	_c.mutation.SetNewFact(v)
	return _c
}

// SetExistingFactUUID sets the "existing_fact_uuid" field.
func (_c *ContradictionReviewCreate) SetExistingFactUUID(v string) *ContradictionReviewCreate {
	_c.mutation.SetExistingFactUUID(v)
	return _c
}

// SetExistingFact sets the "existing_fact" field.
func (_c *ContradictionReviewCreate) SetExistingFact(v string) *ContradictionReviewCreate {
	_c.mutation.SetExistingFact(v)
	return _c
}

// SetSimilarity sets the "similarity" field.
func (_c *ContradictionReviewCreate) SetSimilarity(v float64) *ContradictionReviewCreate {
	_c.mutation.SetSimilarity(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *ContradictionReviewCreate) SetReason(v string) *ContradictionReviewCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *ContradictionReviewCreate) SetNillableReason(v *string) *ContradictionReviewCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *ContradictionReviewCreate) SetSource(v string) *ContradictionReviewCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *ContradictionReviewCreate) SetNillableSource(v *string) *ContradictionReviewCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetContext sets the "context" field.
func (_c *ContradictionReviewCreate) SetContext(v string) *ContradictionReviewCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_c *ContradictionReviewCreate) SetNillableContext(v *string) *ContradictionReviewCreate {
	if v != nil {
		_c.SetContext(*v)
	}
	return _c
}

// SetEntityNames sets the "entity_names" field.
func (_c *ContradictionReviewCreate) SetEntityNames(v []string) *ContradictionReviewCreate {
	_c.mutation.SetEntityNames(v)
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *ContradictionReviewCreate) SetGroupID(v string) *ContradictionReviewCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_c *ContradictionReviewCreate) SetNillableGroupID(v *string) *ContradictionReviewCreate {
	if v != nil {
		_c.SetGroupID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ContradictionReviewCreate) SetStatus(v contradictionreview.Status) *ContradictionReviewCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ContradictionReviewCreate) SetNillableStatus(v *contradictionreview.Status) *ContradictionReviewCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResolution sets the "resolution" field.
func (_c *ContradictionReviewCreate) SetResolution(v string) *ContradictionReviewCreate {
	_c.mutation.SetResolution(v)
	return _c
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_c *ContradictionReviewCreate) SetNillableResolution(v *string) *ContradictionReviewCreate {
	if v != nil {
		_c.SetResolution(*v)
	}
	return _c
}

// SetResolver sets the "resolver" field.
func (_c *ContradictionReviewCreate) SetResolver(v string) *ContradictionReviewCreate {
	_c.mutation.SetResolver(v)
	return _c
}

// SetNillableResolver sets the "resolver" field if the given value is not nil.
func (_c *ContradictionReviewCreate) SetNillableResolver(v *string) *ContradictionReviewCreate {
	if v != nil {
		_c.SetResolver(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *ContradictionReviewCreate) SetResolvedAt(v time.Time) *ContradictionReviewCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *ContradictionReviewCreate) SetNillableResolvedAt(v *time.Time) *ContradictionReviewCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContradictionReviewCreate) SetCreatedAt(v time.Time) *ContradictionReviewCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContradictionReviewCreate) SetNillableCreatedAt(v *time.Time) *ContradictionReviewCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContradictionReviewCreate) SetID(v string) *ContradictionReviewCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ContradictionReviewMutation object of the builder.
func (_c *ContradictionReviewCreate) Mutation() *ContradictionReviewMutation {
	return _c.mutation
}

// Save creates the ContradictionReview in the database.
func (_c *ContradictionReviewCreate) Save(ctx context.Context) (*ContradictionReview, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContradictionReviewCreate) SaveX(ctx context.Context) *ContradictionReview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContradictionReviewCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContradictionReviewCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContradictionReviewCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := contradictionreview.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contradictionreview.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContradictionReviewCreate) check() error {
	if _, ok := _c.mutation.NewFact(); !ok {
		return &ValidationError{Name: "new_fact", err: errors.New(`ent: missing required field "ContradictionReview.new_fact"`)}
	}
	if _, ok := _c.mutation.ExistingFactUUID(); !ok {
		return &ValidationError{Name: "existing_fact_uuid", err: errors.New(`ent: missing required field "ContradictionReview.existing_fact_uuid"`)}
	}
	if _, ok := _c.mutation.ExistingFact(); !ok {
		return &ValidationError{Name: "existing_fact", err: errors.New(`ent: missing required field "ContradictionReview.existing_fact"`)}
	}
	if _, ok := _c.mutation.Similarity(); !ok {
		return &ValidationError{Name: "similarity", err: errors.New(`ent: missing required field "ContradictionReview.similarity"`)}
	}
	if v, ok := _c.mutation.Similarity(); ok {
		if err := contradictionreview.SimilarityValidator(v); err != nil {
			return &ValidationError{Name: "similarity", err: fmt.Errorf(`ent: validator failed for field "ContradictionReview.similarity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ContradictionReview.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := contradictionreview.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ContradictionReview.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ContradictionReview.created_at"`)}
	}
	return nil
}

func (_c *ContradictionReviewCreate) sqlSave(ctx context.Context) (*ContradictionReview, error) {
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
			return nil, fmt.Errorf("unexpected ContradictionReview.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContradictionReviewCreate) createSpec() (*ContradictionReview, *sqlgraph.CreateSpec) {
	var (
		_node = &ContradictionReview{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contradictionreview.Table, sqlgraph.NewFieldSpec(contradictionreview.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.NewFact(); ok {
		_spec.SetField(contradictionreview.FieldNewFact, field.TypeString, value)
		_node.NewFact = value
	}
	if value, ok := _c.mutation.ExistingFactUUID(); ok {
		_spec.SetField(contradictionreview.FieldExistingFactUUID, field.TypeString, value)
		_node.ExistingFactUUID = value
	}
	if value, ok := _c.mutation.ExistingFact(); ok {
		_spec.SetField(contradictionreview.FieldExistingFact, field.TypeString, value)
		_node.ExistingFact = value
	}
	if value, ok := _c.mutation.Similarity(); ok {
		_spec.SetField(contradictionreview.FieldSimilarity, field.TypeFloat64, value)
		_node.Similarity = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(contradictionreview.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(contradictionreview.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(contradictionreview.FieldContext, field.TypeString, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.EntityNames(); ok {
		_spec.SetField(contradictionreview.FieldEntityNames, field.TypeJSON, value)
		_node.EntityNames = value
	}
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(contradictionreview.FieldGroupID, field.TypeString, value)
		_node.GroupID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(contradictionreview.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Resolution(); ok {
		_spec.SetField(contradictionreview.FieldResolution, field.TypeString, value)
		_node.Resolution = value
	}
	if value, ok := _c.mutation.Resolver(); ok {
		_spec.SetField(contradictionreview.FieldResolver, field.TypeString, value)
		_node.Resolver = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(contradictionreview.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contradictionreview.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ContradictionReview.Create().
//		SetNewFact(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContradictionReviewUpsert) {
//			SetNewFact(v+v).
//		}).
//		Exec(ctx)
func (_c *ContradictionReviewCreate) OnConflict(opts ...sql.ConflictOption) *ContradictionReviewUpsertOne {
	_c.conflict = opts
	return &ContradictionReviewUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ContradictionReview.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ContradictionReviewCreate) OnConflictColumns(columns ...string) *ContradictionReviewUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ContradictionReviewUpsertOne{
		create: _c,
	}
}

type (
	// ContradictionReviewUpsertOne is the builder for "upsert"-ing
	//  one ContradictionReview node.
	ContradictionReviewUpsertOne struct {
		create *ContradictionReviewCreate
	}

	// ContradictionReviewUpsert is the "OnConflict" setter.
	ContradictionReviewUpsert struct {
		*sql.UpdateSet
	}
)

// SetReason sets the "reason" field.
func (u *ContradictionReviewUpsert) SetReason(v string) *ContradictionReviewUpsert {
	u.Set(contradictionreview.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *ContradictionReviewUpsert) UpdateReason() *ContradictionReviewUpsert {
	u.SetExcluded(contradictionreview.FieldReason)
	return u
}

// ClearReason clears the value of the "reason" field.
func (u *ContradictionReviewUpsert) ClearReason() *ContradictionReviewUpsert {
	u.SetNull(contradictionreview.FieldReason)
	return u
}

// SetSource sets the "source" field.
func (u *ContradictionReviewUpsert) SetSource(v string) *ContradictionReviewUpsert {
	u.Set(contradictionreview.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *ContradictionReviewUpsert) UpdateSource() *ContradictionReviewUpsert {
	u.SetExcluded(contradictionreview.FieldSource)
	return u
}

// ClearSource clears the value of the "source" field.
func (u *ContradictionReviewUpsert) ClearSource() *ContradictionReviewUpsert {
	u.SetNull(contradictionreview.FieldSource)
	return u
}

// SetContext sets the "context" field.
func (u *ContradictionReviewUpsert) SetContext(v string) *ContradictionReviewUpsert {
	u.Set(contradictionreview.FieldContext, v)
	return u
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *ContradictionReviewUpsert) UpdateContext() *ContradictionReviewUpsert {
	u.SetExcluded(contradictionreview.FieldContext)
	return u
}

// ClearContext clears the value of the "context" field.
func (u *ContradictionReviewUpsert) ClearContext() *ContradictionReviewUpsert {
	u.SetNull(contradictionreview.FieldContext)
	return u
}

// SetEntityNames sets the "entity_names" field.
func (u *ContradictionReviewUpsert) SetEntityNames(v []string) *ContradictionReviewUpsert {
	u.Set(contradictionreview.FieldEntityNames, v)
	return u
}

// UpdateEntityNames sets the "entity_names" field to the value that was provided on create.
func (u *ContradictionReviewUpsert) UpdateEntityNames() *ContradictionReviewUpsert {
	u.SetExcluded(contradictionreview.FieldEntityNames)
	return u
}

// ClearEntityNames clears the value of the "entity_names" field.
func (u *ContradictionReviewUpsert) ClearEntityNames() *ContradictionReviewUpsert {
	u.SetNull(contradictionreview.FieldEntityNames)
	return u
}

// SetGroupID sets the "group_id" field.
func (u *ContradictionReviewUpsert) SetGroupID(v string) *ContradictionReviewUpsert {
	u.Set(contradictionreview.FieldGroupID, v)
	return u
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *ContradictionReviewUpsert) UpdateGroupID() *ContradictionReviewUpsert {
	u.SetExcluded(contradictionreview.FieldGroupID)
	return u
}

// ClearGroupID clears the value of the "group_id" field.
func (u *ContradictionReviewUpsert) ClearGroupID() *ContradictionReviewUpsert {
	u.SetNull(contradictionreview.FieldGroupID)
	return u
}

// SetStatus sets the "status" field.
func (u *ContradictionReviewUpsert) SetStatus(v contradictionreview.Status) *ContradictionReviewUpsert {
	u.Set(contradictionreview.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ContradictionReviewUpsert) UpdateStatus() *ContradictionReviewUpsert {
	u.SetExcluded(contradictionreview.FieldStatus)
	return u
}

// SetResolution sets the "resolution" field.
func (u *ContradictionReviewUpsert) SetResolution(v string) *ContradictionReviewUpsert {
	u.Set(contradictionreview.FieldResolution, v)
	return u
}

// UpdateResolution sets the "resolution" field to the value that was provided on create.
func (u *ContradictionReviewUpsert) UpdateResolution() *ContradictionReviewUpsert {
	u.SetExcluded(contradictionreview.FieldResolution)
	return u
}

// ClearResolution clears the value of the "resolution" field.
func (u *ContradictionReviewUpsert) ClearResolution() *ContradictionReviewUpsert {
	u.SetNull(contradictionreview.FieldResolution)
	return u
}

// SetResolver sets the "resolver" field.
func (u *ContradictionReviewUpsert) SetResolver(v string) *ContradictionReviewUpsert {
	u.Set(contradictionreview.FieldResolver, v)
	return u
}

// UpdateResolver sets the "resolver" field to the value that was provided on create.
func (u *ContradictionReviewUpsert) UpdateResolver() *ContradictionReviewUpsert {
	u.SetExcluded(contradictionreview.FieldResolver)
	return u
}

// ClearResolver clears the value of the "resolver" field.
func (u *ContradictionReviewUpsert) ClearResolver() *ContradictionReviewUpsert {
	u.SetNull(contradictionreview.FieldResolver)
	return u
}

// SetResolvedAt sets the "resolved_at" field.
func (u *ContradictionReviewUpsert) SetResolvedAt(v time.Time) *ContradictionReviewUpsert {
	u.Set(contradictionreview.FieldResolvedAt, v)
	return u
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *ContradictionReviewUpsert) UpdateResolvedAt() *ContradictionReviewUpsert {
	u.SetExcluded(contradictionreview.FieldResolvedAt)
	return u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *ContradictionReviewUpsert) ClearResolvedAt() *ContradictionReviewUpsert {
	u.SetNull(contradictionreview.FieldResolvedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ContradictionReview.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(contradictionreview.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ContradictionReviewUpsertOne) UpdateNewValues() *ContradictionReviewUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(contradictionreview.FieldID)
		}
		if _, exists := u.create.mutation.NewFact(); exists {
			s.SetIgnore(contradictionreview.FieldNewFact)
		}
		if _, exists := u.create.mutation.ExistingFactUUID(); exists {
			s.SetIgnore(contradictionreview.FieldExistingFactUUID)
		}
		if _, exists := u.create.mutation.ExistingFact(); exists {
			s.SetIgnore(contradictionreview.FieldExistingFact)
		}
		if _, exists := u.create.mutation.Similarity(); exists {
			s.SetIgnore(contradictionreview.FieldSimilarity)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(contradictionreview.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ContradictionReview.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ContradictionReviewUpsertOne) Ignore() *ContradictionReviewUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContradictionReviewUpsertOne) DoNothing() *ContradictionReviewUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContradictionReviewCreate.OnConflict
// documentation for more info.
func (u *ContradictionReviewUpsertOne) Update(set func(*ContradictionReviewUpsert)) *ContradictionReviewUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContradictionReviewUpsert{UpdateSet: update})
	}))
	return u
}

// SetReason sets the "reason" field.
func (u *ContradictionReviewUpsertOne) SetReason(v string) *ContradictionReviewUpsertOne {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *ContradictionReviewUpsertOne) UpdateReason() *ContradictionReviewUpsertOne {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.UpdateReason()
	})
}

// ClearReason clears the value of the "reason" field.
func (u *ContradictionReviewUpsertOne) ClearReason() *ContradictionReviewUpsertOne {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.ClearReason()
	})
}

// SetSource sets the "source" field.
func (u *ContradictionReviewUpsertOne) SetSource(v string) *ContradictionReviewUpsertOne {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *ContradictionReviewUpsertOne) UpdateSource() *ContradictionReviewUpsertOne {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.UpdateSource()
	})
}

// ClearSource clears the value of the "source" field.
func (u *ContradictionReviewUpsertOne) ClearSource() *ContradictionReviewUpsertOne {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.ClearSource()
	})
}

// SetContext sets the "context" field.
func (u *ContradictionReviewUpsertOne) SetContext(v string) *ContradictionReviewUpsertOne {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.SetContext(v)
	})
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *ContradictionReviewUpsertOne) UpdateContext() *ContradictionReviewUpsertOne {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.UpdateContext()
	})
}

// ClearContext clears the value of the "context" field.
func (u *ContradictionReviewUpsertOne) ClearContext() *ContradictionReviewUpsertOne {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.ClearContext()
	})
}

// SetEntityNames sets the "entity_names" field.
func (u *ContradictionReviewUpsertOne) SetEntityNames(v []string) *ContradictionReviewUpsertOne {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.SetEntityNames(v)
	})
}

// UpdateEntityNames sets the "entity_names" field to the value that was provided on create.
func (u *ContradictionReviewUpsertOne) UpdateEntityNames() *ContradictionReviewUpsertOne {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.UpdateEntityNames()
	})
}

// ClearEntityNames clears the value of the "entity_names" field.
func (u *ContradictionReviewUpsertOne) ClearEntityNames() *ContradictionReviewUpsertOne {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.ClearEntityNames()
	})
}

// SetGroupID sets the "group_id" field.
func (u *ContradictionReviewUpsertOne) SetGroupID(v string) *ContradictionReviewUpsertOne {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.SetGroupID(v)
	})
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *ContradictionReviewUpsertOne) UpdateGroupID() *ContradictionReviewUpsertOne {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.UpdateGroupID()
	})
}

// ClearGroupID clears the value of the "group_id" field.
func (u *ContradictionReviewUpsertOne) ClearGroupID() *ContradictionReviewUpsertOne {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.ClearGroupID()
	})
}

// SetStatus sets the "status" field.
func (u *ContradictionReviewUpsertOne) SetStatus(v contradictionreview.Status) *ContradictionReviewUpsertOne {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ContradictionReviewUpsertOne) UpdateStatus() *ContradictionReviewUpsertOne {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.UpdateStatus()
	})
}

// SetResolution sets the "resolution" field.
func (u *ContradictionReviewUpsertOne) SetResolution(v string) *ContradictionReviewUpsertOne {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.SetResolution(v)
	})
}

// UpdateResolution sets the "resolution" field to the value that was provided on create.
func (u *ContradictionReviewUpsertOne) UpdateResolution() *ContradictionReviewUpsertOne {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.UpdateResolution()
	})
}

// ClearResolution clears the value of the "resolution" field.
func (u *ContradictionReviewUpsertOne) ClearResolution() *ContradictionReviewUpsertOne {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.ClearResolution()
	})
}

// SetResolver sets the "resolver" field.
func (u *ContradictionReviewUpsertOne) SetResolver(v string) *ContradictionReviewUpsertOne {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.SetResolver(v)
	})
}

// UpdateResolver sets the "resolver" field to the value that was provided on create.
func (u *ContradictionReviewUpsertOne) UpdateResolver() *ContradictionReviewUpsertOne {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.UpdateResolver()
	})
}

// ClearResolver clears the value of the "resolver" field.
func (u *ContradictionReviewUpsertOne) ClearResolver() *ContradictionReviewUpsertOne {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.ClearResolver()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *ContradictionReviewUpsertOne) SetResolvedAt(v time.Time) *ContradictionReviewUpsertOne {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *ContradictionReviewUpsertOne) UpdateResolvedAt() *ContradictionReviewUpsertOne {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *ContradictionReviewUpsertOne) ClearResolvedAt() *ContradictionReviewUpsertOne {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.ClearResolvedAt()
	})
}

// Exec executes the query.
func (u *ContradictionReviewUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ContradictionReviewCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContradictionReviewUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ContradictionReviewUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ContradictionReviewUpsertOne.ID is not supported by MySQL driver. Use ContradictionReviewUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ContradictionReviewUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ContradictionReviewCreateBulk is the builder for creating many ContradictionReview entities in bulk.
type ContradictionReviewCreateBulk struct {
	config
	err      error
	builders []*ContradictionReviewCreate
	conflict []sql.ConflictOption
}

// Save creates the ContradictionReview entities in the database.
func (_c *ContradictionReviewCreateBulk) Save(ctx context.Context) ([]*ContradictionReview, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContradictionReview, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContradictionReviewMutation)
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
func (_c *ContradictionReviewCreateBulk) SaveX(ctx context.Context) []*ContradictionReview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContradictionReviewCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContradictionReviewCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ContradictionReview.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContradictionReviewUpsert) {
//			SetNewFact(v+v).
//		}).
//		Exec(ctx)
func (_c *ContradictionReviewCreateBulk) OnConflict(opts ...sql.ConflictOption) *ContradictionReviewUpsertBulk {
	_c.conflict = opts
	return &ContradictionReviewUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ContradictionReview.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ContradictionReviewCreateBulk) OnConflictColumns(columns ...string) *ContradictionReviewUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ContradictionReviewUpsertBulk{
		create: _c,
	}
}

// ContradictionReviewUpsertBulk is the builder for "upsert"-ing
// a bulk of ContradictionReview nodes.
type ContradictionReviewUpsertBulk struct {
	create *ContradictionReviewCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ContradictionReview.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(contradictionreview.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ContradictionReviewUpsertBulk) UpdateNewValues() *ContradictionReviewUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(contradictionreview.FieldID)
			}
			if _, exists := b.mutation.NewFact(); exists {
				s.SetIgnore(contradictionreview.FieldNewFact)
			}
			if _, exists := b.mutation.ExistingFactUUID(); exists {
				s.SetIgnore(contradictionreview.FieldExistingFactUUID)
			}
			if _, exists := b.mutation.ExistingFact(); exists {
				s.SetIgnore(contradictionreview.FieldExistingFact)
			}
			if _, exists := b.mutation.Similarity(); exists {
				s.SetIgnore(contradictionreview.FieldSimilarity)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(contradictionreview.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ContradictionReview.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ContradictionReviewUpsertBulk) Ignore() *ContradictionReviewUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContradictionReviewUpsertBulk) DoNothing() *ContradictionReviewUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContradictionReviewCreateBulk.OnConflict
// documentation for more info.
func (u *ContradictionReviewUpsertBulk) Update(set func(*ContradictionReviewUpsert)) *ContradictionReviewUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContradictionReviewUpsert{UpdateSet: update})
	}))
	return u
}

// SetReason sets the "reason" field.
func (u *ContradictionReviewUpsertBulk) SetReason(v string) *ContradictionReviewUpsertBulk {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *ContradictionReviewUpsertBulk) UpdateReason() *ContradictionReviewUpsertBulk {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.UpdateReason()
	})
}

// ClearReason clears the value of the "reason" field.
func (u *ContradictionReviewUpsertBulk) ClearReason() *ContradictionReviewUpsertBulk {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.ClearReason()
	})
}

// SetSource sets the "source" field.
func (u *ContradictionReviewUpsertBulk) SetSource(v string) *ContradictionReviewUpsertBulk {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *ContradictionReviewUpsertBulk) UpdateSource() *ContradictionReviewUpsertBulk {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.UpdateSource()
	})
}

// ClearSource clears the value of the "source" field.
func (u *ContradictionReviewUpsertBulk) ClearSource() *ContradictionReviewUpsertBulk {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.ClearSource()
	})
}

// SetContext sets the "context" field.
func (u *ContradictionReviewUpsertBulk) SetContext(v string) *ContradictionReviewUpsertBulk {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.SetContext(v)
	})
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *ContradictionReviewUpsertBulk) UpdateContext() *ContradictionReviewUpsertBulk {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.UpdateContext()
	})
}

// ClearContext clears the value of the "context" field.
func (u *ContradictionReviewUpsertBulk) ClearContext() *ContradictionReviewUpsertBulk {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.ClearContext()
	})
}

// SetEntityNames sets the "entity_names" field.
func (u *ContradictionReviewUpsertBulk) SetEntityNames(v []string) *ContradictionReviewUpsertBulk {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.SetEntityNames(v)
	})
}

// UpdateEntityNames sets the "entity_names" field to the value that was provided on create.
func (u *ContradictionReviewUpsertBulk) UpdateEntityNames() *ContradictionReviewUpsertBulk {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.UpdateEntityNames()
	})
}

// ClearEntityNames clears the value of the "entity_names" field.
func (u *ContradictionReviewUpsertBulk) ClearEntityNames() *ContradictionReviewUpsertBulk {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.ClearEntityNames()
	})
}

// SetGroupID sets the "group_id" field.
func (u *ContradictionReviewUpsertBulk) SetGroupID(v string) *ContradictionReviewUpsertBulk {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.SetGroupID(v)
	})
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *ContradictionReviewUpsertBulk) UpdateGroupID() *ContradictionReviewUpsertBulk {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.UpdateGroupID()
	})
}

// ClearGroupID clears the value of the "group_id" field.
func (u *ContradictionReviewUpsertBulk) ClearGroupID() *ContradictionReviewUpsertBulk {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.ClearGroupID()
	})
}

// SetStatus sets the "status" field.
func (u *ContradictionReviewUpsertBulk) SetStatus(v contradictionreview.Status) *ContradictionReviewUpsertBulk {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ContradictionReviewUpsertBulk) UpdateStatus() *ContradictionReviewUpsertBulk {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.UpdateStatus()
	})
}

// SetResolution sets the "resolution" field.
func (u *ContradictionReviewUpsertBulk) SetResolution(v string) *ContradictionReviewUpsertBulk {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.SetResolution(v)
	})
}

// UpdateResolution sets the "resolution" field to the value that was provided on create.
func (u *ContradictionReviewUpsertBulk) UpdateResolution() *ContradictionReviewUpsertBulk {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.UpdateResolution()
	})
}

// ClearResolution clears the value of the "resolution" field.
func (u *ContradictionReviewUpsertBulk) ClearResolution() *ContradictionReviewUpsertBulk {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.ClearResolution()
	})
}

// SetResolver sets the "resolver" field.
func (u *ContradictionReviewUpsertBulk) SetResolver(v string) *ContradictionReviewUpsertBulk {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.SetResolver(v)
	})
}

// UpdateResolver sets the "resolver" field to the value that was provided on create.
func (u *ContradictionReviewUpsertBulk) UpdateResolver() *ContradictionReviewUpsertBulk {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.UpdateResolver()
	})
}

// ClearResolver clears the value of the "resolver" field.
func (u *ContradictionReviewUpsertBulk) ClearResolver() *ContradictionReviewUpsertBulk {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.ClearResolver()
	})
}

// SetResolvedAt sets the "resolved_at" field.
func (u *ContradictionReviewUpsertBulk) SetResolvedAt(v time.Time) *ContradictionReviewUpsertBulk {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.SetResolvedAt(v)
	})
}

// UpdateResolvedAt sets the "resolved_at" field to the value that was provided on create.
func (u *ContradictionReviewUpsertBulk) UpdateResolvedAt() *ContradictionReviewUpsertBulk {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.UpdateResolvedAt()
	})
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (u *ContradictionReviewUpsertBulk) ClearResolvedAt() *ContradictionReviewUpsertBulk {
	return u.Update(func(s *ContradictionReviewUpsert) {
		s.ClearResolvedAt()
	})
}

// Exec executes the query.
func (u *ContradictionReviewUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ContradictionReviewCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ContradictionReviewCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContradictionReviewUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
