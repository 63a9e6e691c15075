// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kestrel-ai/kestrel/ent/explorationfinding"
	"github.com/kestrel-ai/kestrel/ent/predicate"
)

// ExplorationFindingUpdate is the builder for updating ExplorationFinding entities.
type ExplorationFindingUpdate struct {
	config
	hooks    []Hook
	mutation *ExplorationFindingMutation
}

// Where appends a list predicates to the ExplorationFindingUpdate builder.
func (_u *ExplorationFindingUpdate) Where(ps ...predicate.ExplorationFinding) *ExplorationFindingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceContext sets the "source_context" field.
func (_u *ExplorationFindingUpdate) SetSourceContext(v string) *ExplorationFindingUpdate {
	_u.mutation.SetSourceContext(v)
	return _u
}

// SetNillableSourceContext sets the "source_context" field if the given value is not nil.
func (_u *ExplorationFindingUpdate) SetNillableSourceContext(v *string) *ExplorationFindingUpdate {
	if v != nil {
		_u.SetSourceContext(*v)
	}
	return _u
}

// ClearSourceContext clears the value of the "source_context" field.
func (_u *ExplorationFindingUpdate) ClearSourceContext() *ExplorationFindingUpdate {
	_u.mutation.ClearSourceContext()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExplorationFindingUpdate) SetConfidence(v float64) *ExplorationFindingUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExplorationFindingUpdate) SetNillableConfidence(v *float64) *ExplorationFindingUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExplorationFindingUpdate) AddConfidence(v float64) *ExplorationFindingUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetWorthSharing sets the "worth_sharing" field.
func (_u *ExplorationFindingUpdate) SetWorthSharing(v bool) *ExplorationFindingUpdate {
	_u.mutation.SetWorthSharing(v)
	return _u
}

// SetNillableWorthSharing sets the "worth_sharing" field if the given value is not nil.
func (_u *ExplorationFindingUpdate) SetNillableWorthSharing(v *bool) *ExplorationFindingUpdate {
	if v != nil {
		_u.SetWorthSharing(*v)
	}
	return _u
}

// SetShareMessage sets the "share_message" field.
func (_u *ExplorationFindingUpdate) SetShareMessage(v string) *ExplorationFindingUpdate {
	_u.mutation.SetShareMessage(v)
	return _u
}

// SetNillableShareMessage sets the "share_message" field if the given value is not nil.
func (_u *ExplorationFindingUpdate) SetNillableShareMessage(v *string) *ExplorationFindingUpdate {
	if v != nil {
		_u.SetShareMessage(*v)
	}
	return _u
}

// ClearShareMessage clears the value of the "share_message" field.
func (_u *ExplorationFindingUpdate) ClearShareMessage() *ExplorationFindingUpdate {
	_u.mutation.ClearShareMessage()
	return _u
}

// Mutation returns the ExplorationFindingMutation object of the builder.
func (_u *ExplorationFindingUpdate) Mutation() *ExplorationFindingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExplorationFindingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExplorationFindingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExplorationFindingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExplorationFindingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExplorationFindingUpdate) check() error {
	if v, ok := _u.mutation.Confidence(); ok {
		if err := explorationfinding.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "ExplorationFinding.confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *ExplorationFindingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(explorationfinding.Table, explorationfinding.Columns, sqlgraph.NewFieldSpec(explorationfinding.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceContext(); ok {
		_spec.SetField(explorationfinding.FieldSourceContext, field.TypeString, value)
	}
	if _u.mutation.SourceContextCleared() {
		_spec.ClearField(explorationfinding.FieldSourceContext, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(explorationfinding.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(explorationfinding.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WorthSharing(); ok {
		_spec.SetField(explorationfinding.FieldWorthSharing, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ShareMessage(); ok {
		_spec.SetField(explorationfinding.FieldShareMessage, field.TypeString, value)
	}
	if _u.mutation.ShareMessageCleared() {
		_spec.ClearField(explorationfinding.FieldShareMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{explorationfinding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExplorationFindingUpdateOne is the builder for updating a single ExplorationFinding entity.
type ExplorationFindingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExplorationFindingMutation
}

// SetSourceContext sets the "source_context" field.
func (_u *ExplorationFindingUpdateOne) SetSourceContext(v string) *ExplorationFindingUpdateOne {
	_u.mutation.SetSourceContext(v)
	return _u
}

// SetNillableSourceContext sets the "source_context" field if the given value is not nil.
func (_u *ExplorationFindingUpdateOne) SetNillableSourceContext(v *string) *ExplorationFindingUpdateOne {
	if v != nil {
		_u.SetSourceContext(*v)
	}
	return _u
}

// ClearSourceContext clears the value of the "source_context" field.
func (_u *ExplorationFindingUpdateOne) ClearSourceContext() *ExplorationFindingUpdateOne {
	_u.mutation.ClearSourceContext()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExplorationFindingUpdateOne) SetConfidence(v float64) *ExplorationFindingUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExplorationFindingUpdateOne) SetNillableConfidence(v *float64) *ExplorationFindingUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExplorationFindingUpdateOne) AddConfidence(v float64) *ExplorationFindingUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetWorthSharing sets the "worth_sharing" field.
func (_u *ExplorationFindingUpdateOne) SetWorthSharing(v bool) *ExplorationFindingUpdateOne {
	_u.mutation.SetWorthSharing(v)
	return _u
}

// SetNillableWorthSharing sets the "worth_sharing" field if the given value is not nil.
func (_u *ExplorationFindingUpdateOne) SetNillableWorthSharing(v *bool) *ExplorationFindingUpdateOne {
	if v != nil {
		_u.SetWorthSharing(*v)
	}
	return _u
}

// SetShareMessage sets the "share_message" field.
func (_u *ExplorationFindingUpdateOne) SetShareMessage(v string) *ExplorationFindingUpdateOne {
	_u.mutation.SetShareMessage(v)
	return _u
}

// SetNillableShareMessage sets the "share_message" field if the given value is not nil.
func (_u *ExplorationFindingUpdateOne) SetNillableShareMessage(v *string) *ExplorationFindingUpdateOne {
	if v != nil {
		_u.SetShareMessage(*v)
	}
	return _u
}

// ClearShareMessage clears the value of the "share_message" field.
func (_u *ExplorationFindingUpdateOne) ClearShareMessage() *ExplorationFindingUpdateOne {
	_u.mutation.ClearShareMessage()
	return _u
}

// Mutation returns the ExplorationFindingMutation object of the builder.
func (_u *ExplorationFindingUpdateOne) Mutation() *ExplorationFindingMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExplorationFindingUpdate builder.
func (_u *ExplorationFindingUpdateOne) Where(ps ...predicate.ExplorationFinding) *ExplorationFindingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExplorationFindingUpdateOne) Select(field string, fields ...string) *ExplorationFindingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExplorationFinding entity.
func (_u *ExplorationFindingUpdateOne) Save(ctx context.Context) (*ExplorationFinding, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExplorationFindingUpdateOne) SaveX(ctx context.Context) *ExplorationFinding {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExplorationFindingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExplorationFindingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExplorationFindingUpdateOne) check() error {
	if v, ok := _u.mutation.Confidence(); ok {
		if err := explorationfinding.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "ExplorationFinding.confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *ExplorationFindingUpdateOne) sqlSave(ctx context.Context) (_node *ExplorationFinding, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(explorationfinding.Table, explorationfinding.Columns, sqlgraph.NewFieldSpec(explorationfinding.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExplorationFinding.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, explorationfinding.FieldID)
		for _, f := range fields {
			if !explorationfinding.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != explorationfinding.FieldID {
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
	if value, ok := _u.mutation.SourceContext(); ok {
		_spec.SetField(explorationfinding.FieldSourceContext, field.TypeString, value)
	}
	if _u.mutation.SourceContextCleared() {
		_spec.ClearField(explorationfinding.FieldSourceContext, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(explorationfinding.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(explorationfinding.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WorthSharing(); ok {
		_spec.SetField(explorationfinding.FieldWorthSharing, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ShareMessage(); ok {
		_spec.SetField(explorationfinding.FieldShareMessage, field.TypeString, value)
	}
	if _u.mutation.ShareMessageCleared() {
		_spec.ClearField(explorationfinding.FieldShareMessage, field.TypeString)
	}
	_node = &ExplorationFinding{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{explorationfinding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
