// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kestrel-ai/kestrel/ent/predicate"
	"github.com/kestrel-ai/kestrel/ent/surfacedfinding"
)

// SurfacedFindingQuery is the builder for querying SurfacedFinding entities.
type SurfacedFindingQuery struct {
	config
	ctx        *QueryContext
	order      []surfacedfinding.OrderOption
	inters     []Interceptor
	predicates []predicate.SurfacedFinding
	modifiers  []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SurfacedFindingQuery builder.
func (_q *SurfacedFindingQuery) Where(ps ...predicate.SurfacedFinding) *SurfacedFindingQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *SurfacedFindingQuery) Limit(limit int) *SurfacedFindingQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *SurfacedFindingQuery) Offset(offset int) *SurfacedFindingQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *SurfacedFindingQuery) Unique(unique bool) *SurfacedFindingQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *SurfacedFindingQuery) Order(o ...surfacedfinding.OrderOption) *SurfacedFindingQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// First returns the first SurfacedFinding entity from the query.
// Returns a *NotFoundError when no SurfacedFinding was found.
func (_q *SurfacedFindingQuery) First(ctx context.Context) (*SurfacedFinding, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{surfacedfinding.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *SurfacedFindingQuery) FirstX(ctx context.Context) *SurfacedFinding {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SurfacedFinding ID from the query.
// Returns a *NotFoundError when no SurfacedFinding ID was found.
func (_q *SurfacedFindingQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{surfacedfinding.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *SurfacedFindingQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SurfacedFinding entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SurfacedFinding entity is found.
// Returns a *NotFoundError when no SurfacedFinding entities are found.
func (_q *SurfacedFindingQuery) Only(ctx context.Context) (*SurfacedFinding, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{surfacedfinding.Label}
	default:
		return nil, &NotSingularError{surfacedfinding.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *SurfacedFindingQuery) OnlyX(ctx context.Context) *SurfacedFinding {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SurfacedFinding ID in the query.
// Returns a *NotSingularError when more than one SurfacedFinding ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *SurfacedFindingQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{surfacedfinding.Label}
	default:
		err = &NotSingularError{surfacedfinding.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *SurfacedFindingQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SurfacedFindings.
func (_q *SurfacedFindingQuery) All(ctx context.Context) ([]*SurfacedFinding, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SurfacedFinding, *SurfacedFindingQuery]()
	return withInterceptors[[]*SurfacedFinding](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *SurfacedFindingQuery) AllX(ctx context.Context) []*SurfacedFinding {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SurfacedFinding IDs.
func (_q *SurfacedFindingQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(surfacedfinding.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *SurfacedFindingQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *SurfacedFindingQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*SurfacedFindingQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *SurfacedFindingQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *SurfacedFindingQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *SurfacedFindingQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SurfacedFindingQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *SurfacedFindingQuery) Clone() *SurfacedFindingQuery {
	if _q == nil {
		return nil
	}
	return &SurfacedFindingQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]surfacedfinding.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.SurfacedFinding{}, _q.predicates...),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		FindingID string `json:"finding_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.SurfacedFinding.Query().
//		GroupBy(surfacedfinding.FieldFindingID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *SurfacedFindingQuery) GroupBy(field string, fields ...string) *SurfacedFindingGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SurfacedFindingGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = surfacedfinding.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		FindingID string `json:"finding_id,omitempty"`
//	}
//
//	client.SurfacedFinding.Query().
//		Select(surfacedfinding.FieldFindingID).
//		Scan(ctx, &v)
func (_q *SurfacedFindingQuery) Select(fields ...string) *SurfacedFindingSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &SurfacedFindingSelect{SurfacedFindingQuery: _q}
	sbuild.label = surfacedfinding.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SurfacedFindingSelect configured with the given aggregations.
func (_q *SurfacedFindingQuery) Aggregate(fns ...AggregateFunc) *SurfacedFindingSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *SurfacedFindingQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !surfacedfinding.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *SurfacedFindingQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SurfacedFinding, error) {
	var (
		nodes = []*SurfacedFinding{}
		_spec = _q.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SurfacedFinding).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SurfacedFinding{config: _q.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (_q *SurfacedFindingQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *SurfacedFindingQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(surfacedfinding.Table, surfacedfinding.Columns, sqlgraph.NewFieldSpec(surfacedfinding.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, surfacedfinding.FieldID)
		for i := range fields {
			if fields[i] != surfacedfinding.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *SurfacedFindingQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(surfacedfinding.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = surfacedfinding.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *SurfacedFindingQuery) ForUpdate(opts ...sql.LockOption) *SurfacedFindingQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *SurfacedFindingQuery) ForShare(opts ...sql.LockOption) *SurfacedFindingQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// SurfacedFindingGroupBy is the group-by builder for SurfacedFinding entities.
type SurfacedFindingGroupBy struct {
	selector
	build *SurfacedFindingQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *SurfacedFindingGroupBy) Aggregate(fns ...AggregateFunc) *SurfacedFindingGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *SurfacedFindingGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SurfacedFindingQuery, *SurfacedFindingGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *SurfacedFindingGroupBy) sqlScan(ctx context.Context, root *SurfacedFindingQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// SurfacedFindingSelect is the builder for selecting fields of SurfacedFinding entities.
type SurfacedFindingSelect struct {
	*SurfacedFindingQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *SurfacedFindingSelect) Aggregate(fns ...AggregateFunc) *SurfacedFindingSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *SurfacedFindingSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SurfacedFindingQuery, *SurfacedFindingSelect](ctx, _s.SurfacedFindingQuery, _s, _s.inters, v)
}

func (_s *SurfacedFindingSelect) sqlScan(ctx context.Context, root *SurfacedFindingQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
