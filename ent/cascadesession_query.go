// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/windlassio/windlass/ent/cascadesession"
	"github.com/windlassio/windlass/ent/checkpoint"
	"github.com/windlassio/windlass/ent/logrow"
	"github.com/windlassio/windlass/ent/predicate"
)

// CascadeSessionQuery is the builder for querying CascadeSession entities.
type CascadeSessionQuery struct {
	config
	ctx             *QueryContext
	order           []cascadesession.OrderOption
	inters          []Interceptor
	predicates      []predicate.CascadeSession
	withParent      *CascadeSessionQuery
	withChildren    *CascadeSessionQuery
	withLogRows     *LogRowQuery
	withCheckpoints *CheckpointQuery
	modifiers       []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CascadeSessionQuery builder.
func (_q *CascadeSessionQuery) Where(ps ...predicate.CascadeSession) *CascadeSessionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CascadeSessionQuery) Limit(limit int) *CascadeSessionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CascadeSessionQuery) Offset(offset int) *CascadeSessionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CascadeSessionQuery) Unique(unique bool) *CascadeSessionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CascadeSessionQuery) Order(o ...cascadesession.OrderOption) *CascadeSessionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryParent chains the current query on the "parent" edge.
func (_q *CascadeSessionQuery) QueryParent() *CascadeSessionQuery {
	query := (&CascadeSessionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(cascadesession.Table, cascadesession.FieldID, selector),
			sqlgraph.To(cascadesession.Table, cascadesession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, cascadesession.ParentTable, cascadesession.ParentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryChildren chains the current query on the "children" edge.
func (_q *CascadeSessionQuery) QueryChildren() *CascadeSessionQuery {
	query := (&CascadeSessionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(cascadesession.Table, cascadesession.FieldID, selector),
			sqlgraph.To(cascadesession.Table, cascadesession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, cascadesession.ChildrenTable, cascadesession.ChildrenColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryLogRows chains the current query on the "log_rows" edge.
func (_q *CascadeSessionQuery) QueryLogRows() *LogRowQuery {
	query := (&LogRowClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(cascadesession.Table, cascadesession.FieldID, selector),
			sqlgraph.To(logrow.Table, logrow.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, cascadesession.LogRowsTable, cascadesession.LogRowsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCheckpoints chains the current query on the "checkpoints" edge.
func (_q *CascadeSessionQuery) QueryCheckpoints() *CheckpointQuery {
	query := (&CheckpointClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(cascadesession.Table, cascadesession.FieldID, selector),
			sqlgraph.To(checkpoint.Table, checkpoint.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, cascadesession.CheckpointsTable, cascadesession.CheckpointsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CascadeSession entity from the query.
// Returns a *NotFoundError when no CascadeSession was found.
func (_q *CascadeSessionQuery) First(ctx context.Context) (*CascadeSession, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{cascadesession.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CascadeSessionQuery) FirstX(ctx context.Context) *CascadeSession {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CascadeSession ID from the query.
// Returns a *NotFoundError when no CascadeSession ID was found.
func (_q *CascadeSessionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{cascadesession.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CascadeSessionQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CascadeSession entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CascadeSession entity is found.
// Returns a *NotFoundError when no CascadeSession entities are found.
func (_q *CascadeSessionQuery) Only(ctx context.Context) (*CascadeSession, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{cascadesession.Label}
	default:
		return nil, &NotSingularError{cascadesession.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CascadeSessionQuery) OnlyX(ctx context.Context) *CascadeSession {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CascadeSession ID in the query.
// Returns a *NotSingularError when more than one CascadeSession ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CascadeSessionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{cascadesession.Label}
	default:
		err = &NotSingularError{cascadesession.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CascadeSessionQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CascadeSessions.
func (_q *CascadeSessionQuery) All(ctx context.Context) ([]*CascadeSession, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CascadeSession, *CascadeSessionQuery]()
	return withInterceptors[[]*CascadeSession](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CascadeSessionQuery) AllX(ctx context.Context) []*CascadeSession {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CascadeSession IDs.
func (_q *CascadeSessionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(cascadesession.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CascadeSessionQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CascadeSessionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CascadeSessionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CascadeSessionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CascadeSessionQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *CascadeSessionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CascadeSessionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CascadeSessionQuery) Clone() *CascadeSessionQuery {
	if _q == nil {
		return nil
	}
	return &CascadeSessionQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]cascadesession.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.CascadeSession{}, _q.predicates...),
		withParent:      _q.withParent.Clone(),
		withChildren:    _q.withChildren.Clone(),
		withLogRows:     _q.withLogRows.Clone(),
		withCheckpoints: _q.withCheckpoints.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithParent tells the query-builder to eager-load the nodes that are connected to
// the "parent" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CascadeSessionQuery) WithParent(opts ...func(*CascadeSessionQuery)) *CascadeSessionQuery {
	query := (&CascadeSessionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withParent = query
	return _q
}

// WithChildren tells the query-builder to eager-load the nodes that are connected to
// the "children" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CascadeSessionQuery) WithChildren(opts ...func(*CascadeSessionQuery)) *CascadeSessionQuery {
	query := (&CascadeSessionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withChildren = query
	return _q
}

// WithLogRows tells the query-builder to eager-load the nodes that are connected to
// the "log_rows" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CascadeSessionQuery) WithLogRows(opts ...func(*LogRowQuery)) *CascadeSessionQuery {
	query := (&LogRowClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLogRows = query
	return _q
}

// WithCheckpoints tells the query-builder to eager-load the nodes that are connected to
// the "checkpoints" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CascadeSessionQuery) WithCheckpoints(opts ...func(*CheckpointQuery)) *CascadeSessionQuery {
	query := (&CheckpointClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCheckpoints = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CascadeID string `json:"cascade_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CascadeSession.Query().
//		GroupBy(cascadesession.FieldCascadeID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CascadeSessionQuery) GroupBy(field string, fields ...string) *CascadeSessionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CascadeSessionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = cascadesession.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CascadeID string `json:"cascade_id,omitempty"`
//	}
//
//	client.CascadeSession.Query().
//		Select(cascadesession.FieldCascadeID).
//		Scan(ctx, &v)
func (_q *CascadeSessionQuery) Select(fields ...string) *CascadeSessionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CascadeSessionSelect{CascadeSessionQuery: _q}
	sbuild.label = cascadesession.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CascadeSessionSelect configured with the given aggregations.
func (_q *CascadeSessionQuery) Aggregate(fns ...AggregateFunc) *CascadeSessionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CascadeSessionQuery) prepareQuery(ctx context.Context) error {
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
		if !cascadesession.ValidColumn(f) {
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

func (_q *CascadeSessionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CascadeSession, error) {
	var (
		nodes       = []*CascadeSession{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withParent != nil,
			_q.withChildren != nil,
			_q.withLogRows != nil,
			_q.withCheckpoints != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CascadeSession).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CascadeSession{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
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
	if query := _q.withParent; query != nil {
		if err := _q.loadParent(ctx, query, nodes, nil,
			func(n *CascadeSession, e *CascadeSession) { n.Edges.Parent = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withChildren; query != nil {
		if err := _q.loadChildren(ctx, query, nodes,
			func(n *CascadeSession) { n.Edges.Children = []*CascadeSession{} },
			func(n *CascadeSession, e *CascadeSession) { n.Edges.Children = append(n.Edges.Children, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withLogRows; query != nil {
		if err := _q.loadLogRows(ctx, query, nodes,
			func(n *CascadeSession) { n.Edges.LogRows = []*LogRow{} },
			func(n *CascadeSession, e *LogRow) { n.Edges.LogRows = append(n.Edges.LogRows, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withCheckpoints; query != nil {
		if err := _q.loadCheckpoints(ctx, query, nodes,
			func(n *CascadeSession) { n.Edges.Checkpoints = []*Checkpoint{} },
			func(n *CascadeSession, e *Checkpoint) { n.Edges.Checkpoints = append(n.Edges.Checkpoints, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CascadeSessionQuery) loadParent(ctx context.Context, query *CascadeSessionQuery, nodes []*CascadeSession, init func(*CascadeSession), assign func(*CascadeSession, *CascadeSession)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*CascadeSession)
	for i := range nodes {
		if nodes[i].ParentSessionID == nil {
			continue
		}
		fk := *nodes[i].ParentSessionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(cascadesession.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "parent_session_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *CascadeSessionQuery) loadChildren(ctx context.Context, query *CascadeSessionQuery, nodes []*CascadeSession, init func(*CascadeSession), assign func(*CascadeSession, *CascadeSession)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*CascadeSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(cascadesession.FieldParentSessionID)
	}
	query.Where(predicate.CascadeSession(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(cascadesession.ChildrenColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ParentSessionID
		if fk == nil {
			return fmt.Errorf(`foreign-key "parent_session_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "parent_session_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *CascadeSessionQuery) loadLogRows(ctx context.Context, query *LogRowQuery, nodes []*CascadeSession, init func(*CascadeSession), assign func(*CascadeSession, *LogRow)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*CascadeSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(logrow.FieldSessionID)
	}
	query.Where(predicate.LogRow(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(cascadesession.LogRowsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *CascadeSessionQuery) loadCheckpoints(ctx context.Context, query *CheckpointQuery, nodes []*CascadeSession, init func(*CascadeSession), assign func(*CascadeSession, *Checkpoint)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*CascadeSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(checkpoint.FieldSessionID)
	}
	query.Where(predicate.Checkpoint(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(cascadesession.CheckpointsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *CascadeSessionQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *CascadeSessionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(cascadesession.Table, cascadesession.Columns, sqlgraph.NewFieldSpec(cascadesession.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cascadesession.FieldID)
		for i := range fields {
			if fields[i] != cascadesession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withParent != nil {
			_spec.Node.AddColumnOnce(cascadesession.FieldParentSessionID)
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

func (_q *CascadeSessionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(cascadesession.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = cascadesession.Columns
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
func (_q *CascadeSessionQuery) ForUpdate(opts ...sql.LockOption) *CascadeSessionQuery {
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
func (_q *CascadeSessionQuery) ForShare(opts ...sql.LockOption) *CascadeSessionQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// CascadeSessionGroupBy is the group-by builder for CascadeSession entities.
type CascadeSessionGroupBy struct {
	selector
	build *CascadeSessionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CascadeSessionGroupBy) Aggregate(fns ...AggregateFunc) *CascadeSessionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CascadeSessionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CascadeSessionQuery, *CascadeSessionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CascadeSessionGroupBy) sqlScan(ctx context.Context, root *CascadeSessionQuery, v any) error {
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

// CascadeSessionSelect is the builder for selecting fields of CascadeSession entities.
type CascadeSessionSelect struct {
	*CascadeSessionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CascadeSessionSelect) Aggregate(fns ...AggregateFunc) *CascadeSessionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CascadeSessionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CascadeSessionQuery, *CascadeSessionSelect](ctx, _s.CascadeSessionQuery, _s, _s.inters, v)
}

func (_s *CascadeSessionSelect) sqlScan(ctx context.Context, root *CascadeSessionQuery, v any) error {
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
