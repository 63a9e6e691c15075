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
	"github.com/kestrel-ai/kestrel/ent/contradictionreview"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// ContradictionReviewUpdate is the builder for updating ContradictionReview entities.
type ContradictionReviewUpdate struct {
	config
	hooks    []Hook
	mutation *ContradictionReviewMutation
}

// Where appends a list predicates to the ContradictionReviewUpdate builder.
func (_u *ContradictionReviewUpdate) Where(ps ...predicate.ContradictionReview) *ContradictionReviewUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReason sets the "reason" field.
func (_u *ContradictionReviewUpdate) SetReason(v string) *ContradictionReviewUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ContradictionReviewUpdate) SetNillableReason(v *string) *ContradictionReviewUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *ContradictionReviewUpdate) ClearReason() *ContradictionReviewUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetSource sets the "source" field.
func (_u *ContradictionReviewUpdate) SetSource(v string) *ContradictionReviewUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ContradictionReviewUpdate) SetNillableSource(v *string) *ContradictionReviewUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *ContradictionReviewUpdate) ClearSource() *ContradictionReviewUpdate {
	_u.mutation.ClearSource()
	return _u
}

// SetContext sets the "context" field.
func (_u *ContradictionReviewUpdate) SetContext(v string) *ContradictionReviewUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *ContradictionReviewUpdate) SetNillableContext(v *string) *ContradictionReviewUpdate {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *ContradictionReviewUpdate) ClearContext() *ContradictionReviewUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetEntityNames sets the "entity_names" field.
func (_u *ContradictionReviewUpdate) SetEntityNames(v []string) *ContradictionReviewUpdate {
	_u.mutation.SetEntityNames(v)
	return _u
}

// AppendEntityNames appends value to the "entity_names" field.
func (_u *ContradictionReviewUpdate) AppendEntityNames(v []string) *ContradictionReviewUpdate {
	_u.mutation.AppendEntityNames(v)
	return _u
}

// ClearEntityNames clears the value of the "entity_names" field.
func (_u *ContradictionReviewUpdate) ClearEntityNames() *ContradictionReviewUpdate {
	_u.mutation.ClearEntityNames()
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *ContradictionReviewUpdate) SetGroupID(v string) *ContradictionReviewUpdate {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *ContradictionReviewUpdate) SetNillableGroupID(v *string) *ContradictionReviewUpdate {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// ClearGroupID clears the value of the "group_id" field.
func (_u *ContradictionReviewUpdate) ClearGroupID() *ContradictionReviewUpdate {
	_u.mutation.ClearGroupID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ContradictionReviewUpdate) SetStatus(v contradictionreview.Status) *ContradictionReviewUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ContradictionReviewUpdate) SetNillableStatus(v *contradictionreview.Status) *ContradictionReviewUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResolution sets the "resolution" field.
func (_u *ContradictionReviewUpdate) SetResolution(v string) *ContradictionReviewUpdate {
	_u.mutation.SetResolution(v)
	return _u
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_u *ContradictionReviewUpdate) SetNillableResolution(v *string) *ContradictionReviewUpdate {
	if v != nil {
		_u.SetResolution(*v)
	}
	return _u
}

// ClearResolution clears the value of the "resolution" field.
func (_u *ContradictionReviewUpdate) ClearResolution() *ContradictionReviewUpdate {
	_u.mutation.ClearResolution()
	return _u
}

// SetResolver sets the "resolver" field.
func (_u *ContradictionReviewUpdate) SetResolver(v string) *ContradictionReviewUpdate {
	_u.mutation.SetResolver(v)
	return _u
}

// SetNillableResolver sets the "resolver" field if the given value is not nil.
func (_u *ContradictionReviewUpdate) SetNillableResolver(v *string) *ContradictionReviewUpdate {
	if v != nil {
		_u.SetResolver(*v)
	}
	return _u
}

// ClearResolver clears the value of the "resolver" field.
func (_u *ContradictionReviewUpdate) ClearResolver() *ContradictionReviewUpdate {
	_u.mutation.ClearResolver()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ContradictionReviewUpdate) SetResolvedAt(v time.Time) *ContradictionReviewUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ContradictionReviewUpdate) SetNillableResolvedAt(v *time.Time) *ContradictionReviewUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ContradictionReviewUpdate) ClearResolvedAt() *ContradictionReviewUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the ContradictionReviewMutation object of the builder.
func (_u *ContradictionReviewUpdate) Mutation() *ContradictionReviewMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContradictionReviewUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContradictionReviewUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContradictionReviewUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContradictionReviewUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContradictionReviewUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := contradictionreview.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ContradictionReview.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ContradictionReviewUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contradictionreview.Table, contradictionreview.Columns, sqlgraph.NewFieldSpec(contradictionreview.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(contradictionreview.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(contradictionreview.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(contradictionreview.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(contradictionreview.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(contradictionreview.FieldContext, field.TypeString, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(contradictionreview.FieldContext, field.TypeString)
	}
	if value, ok := _u.mutation.EntityNames(); ok {
		_spec.SetField(contradictionreview.FieldEntityNames, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEntityNames(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contradictionreview.FieldEntityNames, value)
		})
	}
	if _u.mutation.EntityNamesCleared() {
		_spec.ClearField(contradictionreview.FieldEntityNames, field.TypeJSON)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(contradictionreview.FieldGroupID, field.TypeString, value)
	}
	if _u.mutation.GroupIDCleared() {
		_spec.ClearField(contradictionreview.FieldGroupID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(contradictionreview.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Resolution(); ok {
		_spec.SetField(contradictionreview.FieldResolution, field.TypeString, value)
	}
	if _u.mutation.ResolutionCleared() {
		_spec.ClearField(contradictionreview.FieldResolution, field.TypeString)
	}
	if value, ok := _u.mutation.Resolver(); ok {
		_spec.SetField(contradictionreview.FieldResolver, field.TypeString, value)
	}
	if _u.mutation.ResolverCleared() {
		_spec.ClearField(contradictionreview.FieldResolver, field.TypeString)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(contradictionreview.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(contradictionreview.FieldResolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contradictionreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContradictionReviewUpdateOne is the builder for updating a single ContradictionReview entity.
type ContradictionReviewUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContradictionReviewMutation
}

// SetReason sets the "reason" field.
func (_u *ContradictionReviewUpdateOne) SetReason(v string) *ContradictionReviewUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ContradictionReviewUpdateOne) SetNillableReason(v *string) *ContradictionReviewUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *ContradictionReviewUpdateOne) ClearReason() *ContradictionReviewUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetSource sets the "source" field.
func (_u *ContradictionReviewUpdateOne) SetSource(v string) *ContradictionReviewUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ContradictionReviewUpdateOne) SetNillableSource(v *string) *ContradictionReviewUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *ContradictionReviewUpdateOne) ClearSource() *ContradictionReviewUpdateOne {
	_u.mutation.ClearSource()
	return _u
}

// SetContext sets the "context" field.
func (_u *ContradictionReviewUpdateOne) SetContext(v string) *ContradictionReviewUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *ContradictionReviewUpdateOne) SetNillableContext(v *string) *ContradictionReviewUpdateOne {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *ContradictionReviewUpdateOne) ClearContext() *ContradictionReviewUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetEntityNames sets the "entity_names" field.
func (_u *ContradictionReviewUpdateOne) SetEntityNames(v []string) *ContradictionReviewUpdateOne {
	_u.mutation.SetEntityNames(v)
	return _u
}

// AppendEntityNames appends value to the "entity_names" field.
func (_u *ContradictionReviewUpdateOne) AppendEntityNames(v []string) *ContradictionReviewUpdateOne {
	_u.mutation.AppendEntityNames(v)
	return _u
}

// ClearEntityNames clears the value of the "entity_names" field.
func (_u *ContradictionReviewUpdateOne) ClearEntityNames() *ContradictionReviewUpdateOne {
	_u.mutation.ClearEntityNames()
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *ContradictionReviewUpdateOne) SetGroupID(v string) *ContradictionReviewUpdateOne {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *ContradictionReviewUpdateOne) SetNillableGroupID(v *string) *ContradictionReviewUpdateOne {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// ClearGroupID clears the value of the "group_id" field.
func (_u *ContradictionReviewUpdateOne) ClearGroupID() *ContradictionReviewUpdateOne {
	_u.mutation.ClearGroupID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ContradictionReviewUpdateOne) SetStatus(v contradictionreview.Status) *ContradictionReviewUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ContradictionReviewUpdateOne) SetNillableStatus(v *contradictionreview.Status) *ContradictionReviewUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResolution sets the "resolution" field.
func (_u *ContradictionReviewUpdateOne) SetResolution(v string) *ContradictionReviewUpdateOne {
	_u.mutation.SetResolution(v)
	return _u
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_u *ContradictionReviewUpdateOne) SetNillableResolution(v *string) *ContradictionReviewUpdateOne {
	if v != nil {
		_u.SetResolution(*v)
	}
	return _u
}

// ClearResolution clears the value of the "resolution" field.
func (_u *ContradictionReviewUpdateOne) ClearResolution() *ContradictionReviewUpdateOne {
	_u.mutation.ClearResolution()
	return _u
}

// SetResolver sets the "resolver" field.
func (_u *ContradictionReviewUpdateOne) SetResolver(v string) *ContradictionReviewUpdateOne {
	_u.mutation.SetResolver(v)
	return _u
}

// SetNillableResolver sets the "resolver" field if the given value is not nil.
func (_u *ContradictionReviewUpdateOne) SetNillableResolver(v *string) *ContradictionReviewUpdateOne {
	if v != nil {
		_u.SetResolver(*v)
	}
	return _u
}

// ClearResolver clears the value of the "resolver" field.
func (_u *ContradictionReviewUpdateOne) ClearResolver() *ContradictionReviewUpdateOne {
	_u.mutation.ClearResolver()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ContradictionReviewUpdateOne) SetResolvedAt(v time.Time) *ContradictionReviewUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ContradictionReviewUpdateOne) SetNillableResolvedAt(v *time.Time) *ContradictionReviewUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ContradictionReviewUpdateOne) ClearResolvedAt() *ContradictionReviewUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the ContradictionReviewMutation object of the builder.
func (_u *ContradictionReviewUpdateOne) Mutation() *ContradictionReviewMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContradictionReviewUpdate builder.
func (_u *ContradictionReviewUpdateOne) Where(ps ...predicate.ContradictionReview) *ContradictionReviewUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContradictionReviewUpdateOne) Select(field string, fields ...string) *ContradictionReviewUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContradictionReview entity.
func (_u *ContradictionReviewUpdateOne) Save(ctx context.Context) (*ContradictionReview, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContradictionReviewUpdateOne) SaveX(ctx context.Context) *ContradictionReview {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContradictionReviewUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContradictionReviewUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContradictionReviewUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := contradictionreview.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ContradictionReview.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ContradictionReviewUpdateOne) sqlSave(ctx context.Context) (_node *ContradictionReview, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contradictionreview.Table, contradictionreview.Columns, sqlgraph.NewFieldSpec(contradictionreview.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContradictionReview.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contradictionreview.FieldID)
		for _, f := range fields {
			if !contradictionreview.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contradictionreview.FieldID {
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
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(contradictionreview.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(contradictionreview.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(contradictionreview.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(contradictionreview.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(contradictionreview.FieldContext, field.TypeString, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(contradictionreview.FieldContext, field.TypeString)
	}
	if value, ok := _u.mutation.EntityNames(); ok {
		_spec.SetField(contradictionreview.FieldEntityNames, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEntityNames(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contradictionreview.FieldEntityNames, value)
		})
	}
	if _u.mutation.EntityNamesCleared() {
		_spec.ClearField(contradictionreview.FieldEntityNames, field.TypeJSON)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(contradictionreview.FieldGroupID, field.TypeString, value)
	}
	if _u.mutation.GroupIDCleared() {
		_spec.ClearField(contradictionreview.FieldGroupID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(contradictionreview.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Resolution(); ok {
		_spec.SetField(contradictionreview.FieldResolution, field.TypeString, value)
	}
	if _u.mutation.ResolutionCleared() {
		_spec.ClearField(contradictionreview.FieldResolution, field.TypeString)
	}
	if value, ok := _u.mutation.Resolver(); ok {
		_spec.SetField(contradictionreview.FieldResolver, field.TypeString, value)
	}
	if _u.mutation.ResolverCleared() {
		_spec.ClearField(contradictionreview.FieldResolver, field.TypeString)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(contradictionreview.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(contradictionreview.FieldResolvedAt, field.TypeTime)
	}
	_node = &ContradictionReview{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contradictionreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
