// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pygrounds/adaptive/ent/predicate"
	"github.com/pygrounds/adaptive/ent/zoneprogress"
)

// ZoneProgressQuery is the builder for querying ZoneProgress entities.
type ZoneProgressQuery struct {
	config
	ctx        *QueryContext
	order      []zoneprogress.OrderOption
	inters     []Interceptor
	predicates []predicate.ZoneProgress
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ZoneProgressQuery builder.
func (zpq *ZoneProgressQuery) Where(ps ...predicate.ZoneProgress) *ZoneProgressQuery {
	zpq.predicates = append(zpq.predicates, ps...)
	return zpq
}

// Limit the number of records to be returned by this query.
func (zpq *ZoneProgressQuery) Limit(limit int) *ZoneProgressQuery {
	zpq.ctx.Limit = &limit
	return zpq
}

// Offset to start from.
func (zpq *ZoneProgressQuery) Offset(offset int) *ZoneProgressQuery {
	zpq.ctx.Offset = &offset
	return zpq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (zpq *ZoneProgressQuery) Unique(unique bool) *ZoneProgressQuery {
	zpq.ctx.Unique = &unique
	return zpq
}

// Order specifies how the records should be ordered.
func (zpq *ZoneProgressQuery) Order(o ...zoneprogress.OrderOption) *ZoneProgressQuery {
	zpq.order = append(zpq.order, o...)
	return zpq
}

// First returns the first ZoneProgress entity from the query.
// Returns a *NotFoundError when no ZoneProgress was found.
func (zpq *ZoneProgressQuery) First(ctx context.Context) (*ZoneProgress, error) {
	nodes, err := zpq.Limit(1).All(setContextOp(ctx, zpq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{zoneprogress.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (zpq *ZoneProgressQuery) FirstX(ctx context.Context) *ZoneProgress {
	node, err := zpq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ZoneProgress ID from the query.
// Returns a *NotFoundError when no ZoneProgress ID was found.
func (zpq *ZoneProgressQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = zpq.Limit(1).IDs(setContextOp(ctx, zpq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{zoneprogress.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (zpq *ZoneProgressQuery) FirstIDX(ctx context.Context) int {
	id, err := zpq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ZoneProgress entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ZoneProgress entity is found.
// Returns a *NotFoundError when no ZoneProgress entities are found.
func (zpq *ZoneProgressQuery) Only(ctx context.Context) (*ZoneProgress, error) {
	nodes, err := zpq.Limit(2).All(setContextOp(ctx, zpq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{zoneprogress.Label}
	default:
		return nil, &NotSingularError{zoneprogress.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (zpq *ZoneProgressQuery) OnlyX(ctx context.Context) *ZoneProgress {
	node, err := zpq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ZoneProgress ID in the query.
// Returns a *NotSingularError when more than one ZoneProgress ID is found.
// Returns a *NotFoundError when no entities are found.
func (zpq *ZoneProgressQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = zpq.Limit(2).IDs(setContextOp(ctx, zpq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{zoneprogress.Label}
	default:
		err = &NotSingularError{zoneprogress.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (zpq *ZoneProgressQuery) OnlyIDX(ctx context.Context) int {
	id, err := zpq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ZoneProgresses.
func (zpq *ZoneProgressQuery) All(ctx context.Context) ([]*ZoneProgress, error) {
	ctx = setContextOp(ctx, zpq.ctx, ent.OpQueryAll)
	if err := zpq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ZoneProgress, *ZoneProgressQuery]()
	return withInterceptors[[]*ZoneProgress](ctx, zpq, qr, zpq.inters)
}

// AllX is like All, but panics if an error occurs.
func (zpq *ZoneProgressQuery) AllX(ctx context.Context) []*ZoneProgress {
	nodes, err := zpq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ZoneProgress IDs.
func (zpq *ZoneProgressQuery) IDs(ctx context.Context) (ids []int, err error) {
	if zpq.ctx.Unique == nil && zpq.path != nil {
		zpq.Unique(true)
	}
	ctx = setContextOp(ctx, zpq.ctx, ent.OpQueryIDs)
	if err = zpq.Select(zoneprogress.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (zpq *ZoneProgressQuery) IDsX(ctx context.Context) []int {
	ids, err := zpq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (zpq *ZoneProgressQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, zpq.ctx, ent.OpQueryCount)
	if err := zpq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, zpq, querierCount[*ZoneProgressQuery](), zpq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (zpq *ZoneProgressQuery) CountX(ctx context.Context) int {
	count, err := zpq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (zpq *ZoneProgressQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, zpq.ctx, ent.OpQueryExist)
	switch _, err := zpq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (zpq *ZoneProgressQuery) ExistX(ctx context.Context) bool {
	exist, err := zpq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ZoneProgressQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (zpq *ZoneProgressQuery) Clone() *ZoneProgressQuery {
	if zpq == nil {
		return nil
	}
	return &ZoneProgressQuery{
		config:     zpq.config,
		ctx:        zpq.ctx.Clone(),
		order:      append([]zoneprogress.OrderOption{}, zpq.order...),
		inters:     append([]Interceptor{}, zpq.inters...),
		predicates: append([]predicate.ZoneProgress{}, zpq.predicates...),
		// clone intermediate query.
		sql:  zpq.sql.Clone(),
		path: zpq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Learner string `json:"learner,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ZoneProgress.Query().
//		GroupBy(zoneprogress.FieldLearner).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (zpq *ZoneProgressQuery) GroupBy(field string, fields ...string) *ZoneProgressGroupBy {
	zpq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ZoneProgressGroupBy{build: zpq}
	grbuild.flds = &zpq.ctx.Fields
	grbuild.label = zoneprogress.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Learner string `json:"learner,omitempty"`
//	}
//
//	client.ZoneProgress.Query().
//		Select(zoneprogress.FieldLearner).
//		Scan(ctx, &v)
func (zpq *ZoneProgressQuery) Select(fields ...string) *ZoneProgressSelect {
	zpq.ctx.Fields = append(zpq.ctx.Fields, fields...)
	sbuild := &ZoneProgressSelect{ZoneProgressQuery: zpq}
	sbuild.label = zoneprogress.Label
	sbuild.flds, sbuild.scan = &zpq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ZoneProgressSelect configured with the given aggregations.
func (zpq *ZoneProgressQuery) Aggregate(fns ...AggregateFunc) *ZoneProgressSelect {
	return zpq.Select().Aggregate(fns...)
}

func (zpq *ZoneProgressQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range zpq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, zpq); err != nil {
				return err
			}
		}
	}
	for _, f := range zpq.ctx.Fields {
		if !zoneprogress.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if zpq.path != nil {
		prev, err := zpq.path(ctx)
		if err != nil {
			return err
		}
		zpq.sql = prev
	}
	return nil
}

func (zpq *ZoneProgressQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ZoneProgress, error) {
	var (
		nodes = []*ZoneProgress{}
		_spec = zpq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ZoneProgress).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ZoneProgress{config: zpq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, zpq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (zpq *ZoneProgressQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := zpq.querySpec()
	_spec.Node.Columns = zpq.ctx.Fields
	if len(zpq.ctx.Fields) > 0 {
		_spec.Unique = zpq.ctx.Unique != nil && *zpq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, zpq.driver, _spec)
}

func (zpq *ZoneProgressQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(zoneprogress.Table, zoneprogress.Columns, sqlgraph.NewFieldSpec(zoneprogress.FieldID, field.TypeInt))
	_spec.From = zpq.sql
	if unique := zpq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if zpq.path != nil {
		_spec.Unique = true
	}
	if fields := zpq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, zoneprogress.FieldID)
		for i := range fields {
			if fields[i] != zoneprogress.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := zpq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := zpq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := zpq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := zpq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (zpq *ZoneProgressQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(zpq.driver.Dialect())
	t1 := builder.Table(zoneprogress.Table)
	columns := zpq.ctx.Fields
	if len(columns) == 0 {
		columns = zoneprogress.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if zpq.sql != nil {
		selector = zpq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if zpq.ctx.Unique != nil && *zpq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range zpq.predicates {
		p(selector)
	}
	for _, p := range zpq.order {
		p(selector)
	}
	if offset := zpq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := zpq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ZoneProgressGroupBy is the group-by builder for ZoneProgress entities.
type ZoneProgressGroupBy struct {
	selector
	build *ZoneProgressQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (zpgb *ZoneProgressGroupBy) Aggregate(fns ...AggregateFunc) *ZoneProgressGroupBy {
	zpgb.fns = append(zpgb.fns, fns...)
	return zpgb
}

// Scan applies the selector query and scans the result into the given value.
func (zpgb *ZoneProgressGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, zpgb.build.ctx, ent.OpQueryGroupBy)
	if err := zpgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ZoneProgressQuery, *ZoneProgressGroupBy](ctx, zpgb.build, zpgb, zpgb.build.inters, v)
}

func (zpgb *ZoneProgressGroupBy) sqlScan(ctx context.Context, root *ZoneProgressQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(zpgb.fns))
	for _, fn := range zpgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*zpgb.flds)+len(zpgb.fns))
		for _, f := range *zpgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*zpgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := zpgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ZoneProgressSelect is the builder for selecting fields of ZoneProgress entities.
type ZoneProgressSelect struct {
	*ZoneProgressQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (zps *ZoneProgressSelect) Aggregate(fns ...AggregateFunc) *ZoneProgressSelect {
	zps.fns = append(zps.fns, fns...)
	return zps
}

// Scan applies the selector query and scans the result into the given value.
func (zps *ZoneProgressSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, zps.ctx, ent.OpQuerySelect)
	if err := zps.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ZoneProgressQuery, *ZoneProgressSelect](ctx, zps.ZoneProgressQuery, zps, zps.inters, v)
}

func (zps *ZoneProgressSelect) sqlScan(ctx context.Context, root *ZoneProgressQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(zps.fns))
	for _, fn := range zps.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*zps.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := zps.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
