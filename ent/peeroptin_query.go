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
	"github.com/abhisek/calibra/ent/peeroptin"
	"github.com/abhisek/calibra/ent/predicate"
)

// PeerOptInQuery is the builder for querying PeerOptIn entities.
type PeerOptInQuery struct {
	config
	ctx        *QueryContext
	order      []peeroptin.OrderOption
	inters     []Interceptor
	predicates []predicate.PeerOptIn
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PeerOptInQuery builder.
func (_q *PeerOptInQuery) Where(ps ...predicate.PeerOptIn) *PeerOptInQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PeerOptInQuery) Limit(limit int) *PeerOptInQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PeerOptInQuery) Offset(offset int) *PeerOptInQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PeerOptInQuery) Unique(unique bool) *PeerOptInQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PeerOptInQuery) Order(o ...peeroptin.OrderOption) *PeerOptInQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// First returns the first PeerOptIn entity from the query.
// Returns a *NotFoundError when no PeerOptIn was found.
func (_q *PeerOptInQuery) First(ctx context.Context) (*PeerOptIn, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{peeroptin.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PeerOptInQuery) FirstX(ctx context.Context) *PeerOptIn {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PeerOptIn ID from the query.
// Returns a *NotFoundError when no PeerOptIn ID was found.
func (_q *PeerOptInQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{peeroptin.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PeerOptInQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PeerOptIn entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PeerOptIn entity is found.
// Returns a *NotFoundError when no PeerOptIn entities are found.
func (_q *PeerOptInQuery) Only(ctx context.Context) (*PeerOptIn, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{peeroptin.Label}
	default:
		return nil, &NotSingularError{peeroptin.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PeerOptInQuery) OnlyX(ctx context.Context) *PeerOptIn {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PeerOptIn ID in the query.
// Returns a *NotSingularError when more than one PeerOptIn ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PeerOptInQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{peeroptin.Label}
	default:
		err = &NotSingularError{peeroptin.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PeerOptInQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PeerOptIns.
func (_q *PeerOptInQuery) All(ctx context.Context) ([]*PeerOptIn, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PeerOptIn, *PeerOptInQuery]()
	return withInterceptors[[]*PeerOptIn](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PeerOptInQuery) AllX(ctx context.Context) []*PeerOptIn {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PeerOptIn IDs.
func (_q *PeerOptInQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(peeroptin.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PeerOptInQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PeerOptInQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PeerOptInQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PeerOptInQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PeerOptInQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *PeerOptInQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PeerOptInQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PeerOptInQuery) Clone() *PeerOptInQuery {
	if _q == nil {
		return nil
	}
	return &PeerOptInQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]peeroptin.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.PeerOptIn{}, _q.predicates...),
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
//		UserID string `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PeerOptIn.Query().
//		GroupBy(peeroptin.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *PeerOptInQuery) GroupBy(field string, fields ...string) *PeerOptInGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PeerOptInGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = peeroptin.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//	}
//
//	client.PeerOptIn.Query().
//		Select(peeroptin.FieldUserID).
//		Scan(ctx, &v)
func (_q *PeerOptInQuery) Select(fields ...string) *PeerOptInSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PeerOptInSelect{PeerOptInQuery: _q}
	sbuild.label = peeroptin.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PeerOptInSelect configured with the given aggregations.
func (_q *PeerOptInQuery) Aggregate(fns ...AggregateFunc) *PeerOptInSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PeerOptInQuery) prepareQuery(ctx context.Context) error {
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
		if !peeroptin.ValidColumn(f) {
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

func (_q *PeerOptInQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PeerOptIn, error) {
	var (
		nodes = []*PeerOptIn{}
		_spec = _q.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PeerOptIn).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PeerOptIn{config: _q.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
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

func (_q *PeerOptInQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *PeerOptInQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(peeroptin.Table, peeroptin.Columns, sqlgraph.NewFieldSpec(peeroptin.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, peeroptin.FieldID)
		for i := range fields {
			if fields[i] != peeroptin.FieldID {
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

func (_q *PeerOptInQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(peeroptin.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = peeroptin.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
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

// PeerOptInGroupBy is the group-by builder for PeerOptIn entities.
type PeerOptInGroupBy struct {
	selector
	build *PeerOptInQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PeerOptInGroupBy) Aggregate(fns ...AggregateFunc) *PeerOptInGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PeerOptInGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PeerOptInQuery, *PeerOptInGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PeerOptInGroupBy) sqlScan(ctx context.Context, root *PeerOptInQuery, v any) error {
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

// PeerOptInSelect is the builder for selecting fields of PeerOptIn entities.
type PeerOptInSelect struct {
	*PeerOptInQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PeerOptInSelect) Aggregate(fns ...AggregateFunc) *PeerOptInSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PeerOptInSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PeerOptInQuery, *PeerOptInSelect](ctx, _s.PeerOptInQuery, _s, _s.inters, v)
}

func (_s *PeerOptInSelect) sqlScan(ctx context.Context, root *PeerOptInQuery, v any) error {
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
