// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/windlassio/windlass/ent/cascadesession"
	"github.com/windlassio/windlass/ent/predicate"
)

// CascadeSessionDelete is the builder for deleting a CascadeSession entity.
type CascadeSessionDelete struct {
	config
	hooks    []Hook
	mutation *CascadeSessionMutation
}

// Where appends a list predicates to the CascadeSessionDelete builder.
func (_d *CascadeSessionDelete) Where(ps ...predicate.CascadeSession) *CascadeSessionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CascadeSessionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CascadeSessionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CascadeSessionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(cascadesession.Table, sqlgraph.NewFieldSpec(cascadesession.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CascadeSessionDeleteOne is the builder for deleting a single CascadeSession entity.
type CascadeSessionDeleteOne struct {
	_d *CascadeSessionDelete
}

// Where appends a list predicates to the CascadeSessionDelete builder.
func (_d *CascadeSessionDeleteOne) Where(ps ...predicate.CascadeSession) *CascadeSessionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CascadeSessionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{cascadesession.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CascadeSessionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
