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
	"github.com/pygrounds/adaptive/ent/topicproficiency"
)

// TopicProficiencyQuery is the builder for querying TopicProficiency entities.
type TopicProficiencyQuery struct {
	config
	ctx        *QueryContext
	order      []topicproficiency.OrderOption
	inters     []Interceptor
	predicates []predicate.TopicProficiency
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TopicProficiencyQuery builder.
func (tpq *TopicProficiencyQuery) Where(ps ...predicate.TopicProficiency) *TopicProficiencyQuery {
	tpq.predicates = append(tpq.predicates, ps...)
	return tpq
}

// Limit the number of records to be returned by this query.
func (tpq *TopicProficiencyQuery) Limit(limit int) *TopicProficiencyQuery {
	tpq.ctx.Limit = &limit
	return tpq
}

// Offset to start from.
func (tpq *TopicProficiencyQuery) Offset(offset int) *TopicProficiencyQuery {
	tpq.ctx.Offset = &offset
	return tpq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (tpq *TopicProficiencyQuery) Unique(unique bool) *TopicProficiencyQuery {
	tpq.ctx.Unique = &unique
	return tpq
}

// Order specifies how the records should be ordered.
func (tpq *TopicProficiencyQuery) Order(o ...topicproficiency.OrderOption) *TopicProficiencyQuery {
	tpq.order = append(tpq.order, o...)
	return tpq
}

// First returns the first TopicProficiency entity from the query.
// Returns a *NotFoundError when no TopicProficiency was found.
func (tpq *TopicProficiencyQuery) First(ctx context.Context) (*TopicProficiency, error) {
	nodes, err := tpq.Limit(1).All(setContextOp(ctx, tpq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{topicproficiency.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (tpq *TopicProficiencyQuery) FirstX(ctx context.Context) *TopicProficiency {
	node, err := tpq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TopicProficiency ID from the query.
// Returns a *NotFoundError when no TopicProficiency ID was found.
func (tpq *TopicProficiencyQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = tpq.Limit(1).IDs(setContextOp(ctx, tpq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{topicproficiency.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (tpq *TopicProficiencyQuery) FirstIDX(ctx context.Context) int {
	id, err := tpq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TopicProficiency entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TopicProficiency entity is found.
// Returns a *NotFoundError when no TopicProficiency entities are found.
func (tpq *TopicProficiencyQuery) Only(ctx context.Context) (*TopicProficiency, error) {
	nodes, err := tpq.Limit(2).All(setContextOp(ctx, tpq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{topicproficiency.Label}
	default:
		return nil, &NotSingularError{topicproficiency.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (tpq *TopicProficiencyQuery) OnlyX(ctx context.Context) *TopicProficiency {
	node, err := tpq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TopicProficiency ID in the query.
// Returns a *NotSingularError when more than one TopicProficiency ID is found.
// Returns a *NotFoundError when no entities are found.
func (tpq *TopicProficiencyQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = tpq.Limit(2).IDs(setContextOp(ctx, tpq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{topicproficiency.Label}
	default:
		err = &NotSingularError{topicproficiency.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (tpq *TopicProficiencyQuery) OnlyIDX(ctx context.Context) int {
	id, err := tpq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TopicProficiencies.
func (tpq *TopicProficiencyQuery) All(ctx context.Context) ([]*TopicProficiency, error) {
	ctx = setContextOp(ctx, tpq.ctx, ent.OpQueryAll)
	if err := tpq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TopicProficiency, *TopicProficiencyQuery]()
	return withInterceptors[[]*TopicProficiency](ctx, tpq, qr, tpq.inters)
}

// AllX is like All, but panics if an error occurs.
func (tpq *TopicProficiencyQuery) AllX(ctx context.Context) []*TopicProficiency {
	nodes, err := tpq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TopicProficiency IDs.
func (tpq *TopicProficiencyQuery) IDs(ctx context.Context) (ids []int, err error) {
	if tpq.ctx.Unique == nil && tpq.path != nil {
		tpq.Unique(true)
	}
	ctx = setContextOp(ctx, tpq.ctx, ent.OpQueryIDs)
	if err = tpq.Select(topicproficiency.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (tpq *TopicProficiencyQuery) IDsX(ctx context.Context) []int {
	ids, err := tpq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (tpq *TopicProficiencyQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, tpq.ctx, ent.OpQueryCount)
	if err := tpq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, tpq, querierCount[*TopicProficiencyQuery](), tpq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (tpq *TopicProficiencyQuery) CountX(ctx context.Context) int {
	count, err := tpq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (tpq *TopicProficiencyQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, tpq.ctx, ent.OpQueryExist)
	switch _, err := tpq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (tpq *TopicProficiencyQuery) ExistX(ctx context.Context) bool {
	exist, err := tpq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TopicProficiencyQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (tpq *TopicProficiencyQuery) Clone() *TopicProficiencyQuery {
	if tpq == nil {
		return nil
	}
	return &TopicProficiencyQuery{
		config:     tpq.config,
		ctx:        tpq.ctx.Clone(),
		order:      append([]topicproficiency.OrderOption{}, tpq.order...),
		inters:     append([]Interceptor{}, tpq.inters...),
		predicates: append([]predicate.TopicProficiency{}, tpq.predicates...),
		// clone intermediate query.
		sql:  tpq.sql.Clone(),
		path: tpq.path,
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
//	client.TopicProficiency.Query().
//		GroupBy(topicproficiency.FieldLearner).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (tpq *TopicProficiencyQuery) GroupBy(field string, fields ...string) *TopicProficiencyGroupBy {
	tpq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TopicProficiencyGroupBy{build: tpq}
	grbuild.flds = &tpq.ctx.Fields
	grbuild.label = topicproficiency.Label
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
//	client.TopicProficiency.Query().
//		Select(topicproficiency.FieldLearner).
//		Scan(ctx, &v)
func (tpq *TopicProficiencyQuery) Select(fields ...string) *TopicProficiencySelect {
	tpq.ctx.Fields = append(tpq.ctx.Fields, fields...)
	sbuild := &TopicProficiencySelect{TopicProficiencyQuery: tpq}
	sbuild.label = topicproficiency.Label
	sbuild.flds, sbuild.scan = &tpq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TopicProficiencySelect configured with the given aggregations.
func (tpq *TopicProficiencyQuery) Aggregate(fns ...AggregateFunc) *TopicProficiencySelect {
	return tpq.Select().Aggregate(fns...)
}

func (tpq *TopicProficiencyQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range tpq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, tpq); err != nil {
				return err
			}
		}
	}
	for _, f := range tpq.ctx.Fields {
		if !topicproficiency.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if tpq.path != nil {
		prev, err := tpq.path(ctx)
		if err != nil {
			return err
		}
		tpq.sql = prev
	}
	return nil
}

func (tpq *TopicProficiencyQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TopicProficiency, error) {
	var (
		nodes = []*TopicProficiency{}
		_spec = tpq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TopicProficiency).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TopicProficiency{config: tpq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, tpq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (tpq *TopicProficiencyQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := tpq.querySpec()
	_spec.Node.Columns = tpq.ctx.Fields
	if len(tpq.ctx.Fields) > 0 {
		_spec.Unique = tpq.ctx.Unique != nil && *tpq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, tpq.driver, _spec)
}

func (tpq *TopicProficiencyQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(topicproficiency.Table, topicproficiency.Columns, sqlgraph.NewFieldSpec(topicproficiency.FieldID, field.TypeInt))
	_spec.From = tpq.sql
	if unique := tpq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if tpq.path != nil {
		_spec.Unique = true
	}
	if fields := tpq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topicproficiency.FieldID)
		for i := range fields {
			if fields[i] != topicproficiency.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := tpq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := tpq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := tpq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := tpq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (tpq *TopicProficiencyQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(tpq.driver.Dialect())
	t1 := builder.Table(topicproficiency.Table)
	columns := tpq.ctx.Fields
	if len(columns) == 0 {
		columns = topicproficiency.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if tpq.sql != nil {
		selector = tpq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if tpq.ctx.Unique != nil && *tpq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range tpq.predicates {
		p(selector)
	}
	for _, p := range tpq.order {
		p(selector)
	}
	if offset := tpq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := tpq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// TopicProficiencyGroupBy is the group-by builder for TopicProficiency entities.
type TopicProficiencyGroupBy struct {
	selector
	build *TopicProficiencyQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (tpgb *TopicProficiencyGroupBy) Aggregate(fns ...AggregateFunc) *TopicProficiencyGroupBy {
	tpgb.fns = append(tpgb.fns, fns...)
	return tpgb
}

// Scan applies the selector query and scans the result into the given value.
func (tpgb *TopicProficiencyGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, tpgb.build.ctx, ent.OpQueryGroupBy)
	if err := tpgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TopicProficiencyQuery, *TopicProficiencyGroupBy](ctx, tpgb.build, tpgb, tpgb.build.inters, v)
}

func (tpgb *TopicProficiencyGroupBy) sqlScan(ctx context.Context, root *TopicProficiencyQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(tpgb.fns))
	for _, fn := range tpgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*tpgb.flds)+len(tpgb.fns))
		for _, f := range *tpgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*tpgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := tpgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// TopicProficiencySelect is the builder for selecting fields of TopicProficiency entities.
type TopicProficiencySelect struct {
	*TopicProficiencyQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (tps *TopicProficiencySelect) Aggregate(fns ...AggregateFunc) *TopicProficiencySelect {
	tps.fns = append(tps.fns, fns...)
	return tps
}

// Scan applies the selector query and scans the result into the given value.
func (tps *TopicProficiencySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, tps.ctx, ent.OpQuerySelect)
	if err := tps.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TopicProficiencyQuery, *TopicProficiencySelect](ctx, tps.TopicProficiencyQuery, tps, tps.inters, v)
}

func (tps *TopicProficiencySelect) sqlScan(ctx context.Context, root *TopicProficiencyQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(tps.fns))
	for _, fn := range tps.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*tps.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := tps.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
