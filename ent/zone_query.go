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
	"github.com/pygrounds/adaptive/ent/zone"
)

// ZoneQuery is the builder for querying Zone entities.
type ZoneQuery struct {
	config
	ctx        *QueryContext
	order      []zone.OrderOption
	inters     []Interceptor
	predicates []predicate.Zone
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ZoneQuery builder.
func (zq *ZoneQuery) Where(ps ...predicate.Zone) *ZoneQuery {
	zq.predicates = append(zq.predicates, ps...)
	return zq
}

// Limit the number of records to be returned by this query.
func (zq *ZoneQuery) Limit(limit int) *ZoneQuery {
	zq.ctx.Limit = &limit
	return zq
}

// Offset to start from.
func (zq *ZoneQuery) Offset(offset int) *ZoneQuery {
	zq.ctx.Offset = &offset
	return zq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (zq *ZoneQuery) Unique(unique bool) *ZoneQuery {
	zq.ctx.Unique = &unique
	return zq
}

// Order specifies how the records should be ordered.
func (zq *ZoneQuery) Order(o ...zone.OrderOption) *ZoneQuery {
	zq.order = append(zq.order, o...)
	return zq
}

// First returns the first Zone entity from the query.
// Returns a *NotFoundError when no Zone was found.
func (zq *ZoneQuery) First(ctx context.Context) (*Zone, error) {
	nodes, err := zq.Limit(1).All(setContextOp(ctx, zq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{zone.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (zq *ZoneQuery) FirstX(ctx context.Context) *Zone {
	node, err := zq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Zone ID from the query.
// Returns a *NotFoundError when no Zone ID was found.
func (zq *ZoneQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = zq.Limit(1).IDs(setContextOp(ctx, zq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{zone.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (zq *ZoneQuery) FirstIDX(ctx context.Context) int {
	id, err := zq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Zone entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Zone entity is found.
// Returns a *NotFoundError when no Zone entities are found.
func (zq *ZoneQuery) Only(ctx context.Context) (*Zone, error) {
	nodes, err := zq.Limit(2).All(setContextOp(ctx, zq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{zone.Label}
	default:
		return nil, &NotSingularError{zone.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (zq *ZoneQuery) OnlyX(ctx context.Context) *Zone {
	node, err := zq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Zone ID in the query.
// Returns a *NotSingularError when more than one Zone ID is found.
// Returns a *NotFoundError when no entities are found.
func (zq *ZoneQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = zq.Limit(2).IDs(setContextOp(ctx, zq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{zone.Label}
	default:
		err = &NotSingularError{zone.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (zq *ZoneQuery) OnlyIDX(ctx context.Context) int {
	id, err := zq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Zones.
func (zq *ZoneQuery) All(ctx context.Context) ([]*Zone, error) {
	ctx = setContextOp(ctx, zq.ctx, ent.OpQueryAll)
	if err := zq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Zone, *ZoneQuery]()
	return withInterceptors[[]*Zone](ctx, zq, qr, zq.inters)
}

// AllX is like All, but panics if an error occurs.
func (zq *ZoneQuery) AllX(ctx context.Context) []*Zone {
	nodes, err := zq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Zone IDs.
func (zq *ZoneQuery) IDs(ctx context.Context) (ids []int, err error) {
	if zq.ctx.Unique == nil && zq.path != nil {
		zq.Unique(true)
	}
	ctx = setContextOp(ctx, zq.ctx, ent.OpQueryIDs)
	if err = zq.Select(zone.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (zq *ZoneQuery) IDsX(ctx context.Context) []int {
	ids, err := zq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (zq *ZoneQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, zq.ctx, ent.OpQueryCount)
	if err := zq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, zq, querierCount[*ZoneQuery](), zq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (zq *ZoneQuery) CountX(ctx context.Context) int {
	count, err := zq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (zq *ZoneQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, zq.ctx, ent.OpQueryExist)
	switch _, err := zq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (zq *ZoneQuery) ExistX(ctx context.Context) bool {
	exist, err := zq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ZoneQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (zq *ZoneQuery) Clone() *ZoneQuery {
	if zq == nil {
		return nil
	}
	return &ZoneQuery{
		config:     zq.config,
		ctx:        zq.ctx.Clone(),
		order:      append([]zone.OrderOption{}, zq.order...),
		inters:     append([]Interceptor{}, zq.inters...),
		predicates: append([]predicate.Zone{}, zq.predicates...),
		// clone intermediate query.
		sql:  zq.sql.Clone(),
		path: zq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Zone.Query().
//		GroupBy(zone.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (zq *ZoneQuery) GroupBy(field string, fields ...string) *ZoneGroupBy {
	zq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ZoneGroupBy{build: zq}
	grbuild.flds = &zq.ctx.Fields
	grbuild.label = zone.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Zone.Query().
//		Select(zone.FieldName).
//		Scan(ctx, &v)
func (zq *ZoneQuery) Select(fields ...string) *ZoneSelect {
	zq.ctx.Fields = append(zq.ctx.Fields, fields...)
	sbuild := &ZoneSelect{ZoneQuery: zq}
	sbuild.label = zone.Label
	sbuild.flds, sbuild.scan = &zq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ZoneSelect configured with the given aggregations.
func (zq *ZoneQuery) Aggregate(fns ...AggregateFunc) *ZoneSelect {
	return zq.Select().Aggregate(fns...)
}

func (zq *ZoneQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range zq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, zq); err != nil {
				return err
			}
		}
	}
	for _, f := range zq.ctx.Fields {
		if !zone.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if zq.path != nil {
		prev, err := zq.path(ctx)
		if err != nil {
			return err
		}
		zq.sql = prev
	}
	return nil
}

func (zq *ZoneQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Zone, error) {
	var (
		nodes = []*Zone{}
		_spec = zq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Zone).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Zone{config: zq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, zq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (zq *ZoneQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := zq.querySpec()
	_spec.Node.Columns = zq.ctx.Fields
	if len(zq.ctx.Fields) > 0 {
		_spec.Unique = zq.ctx.Unique != nil && *zq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, zq.driver, _spec)
}

func (zq *ZoneQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(zone.Table, zone.Columns, sqlgraph.NewFieldSpec(zone.FieldID, field.TypeInt))
	_spec.From = zq.sql
	if unique := zq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if zq.path != nil {
		_spec.Unique = true
	}
	if fields := zq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, zone.FieldID)
		for i := range fields {
			if fields[i] != zone.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := zq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := zq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := zq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := zq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (zq *ZoneQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(zq.driver.Dialect())
	t1 := builder.Table(zone.Table)
	columns := zq.ctx.Fields
	if len(columns) == 0 {
		columns = zone.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if zq.sql != nil {
		selector = zq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if zq.ctx.Unique != nil && *zq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range zq.predicates {
		p(selector)
	}
	for _, p := range zq.order {
		p(selector)
	}
	if offset := zq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := zq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ZoneGroupBy is the group-by builder for Zone entities.
type ZoneGroupBy struct {
	selector
	build *ZoneQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (zgb *ZoneGroupBy) Aggregate(fns ...AggregateFunc) *ZoneGroupBy {
	zgb.fns = append(zgb.fns, fns...)
	return zgb
}

// Scan applies the selector query and scans the result into the given value.
func (zgb *ZoneGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, zgb.build.ctx, ent.OpQueryGroupBy)
	if err := zgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ZoneQuery, *ZoneGroupBy](ctx, zgb.build, zgb, zgb.build.inters, v)
}

func (zgb *ZoneGroupBy) sqlScan(ctx context.Context, root *ZoneQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(zgb.fns))
	for _, fn := range zgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*zgb.flds)+len(zgb.fns))
		for _, f := range *zgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*zgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := zgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ZoneSelect is the builder for selecting fields of Zone entities.
type ZoneSelect struct {
	*ZoneQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (zs *ZoneSelect) Aggregate(fns ...AggregateFunc) *ZoneSelect {
	zs.fns = append(zs.fns, fns...)
	return zs
}

// Scan applies the selector query and scans the result into the given value.
func (zs *ZoneSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, zs.ctx, ent.OpQuerySelect)
	if err := zs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ZoneQuery, *ZoneSelect](ctx, zs.ZoneQuery, zs, zs.inters, v)
}

func (zs *ZoneSelect) sqlScan(ctx context.Context, root *ZoneQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(zs.fns))
	for _, fn := range zs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*zs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := zs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
