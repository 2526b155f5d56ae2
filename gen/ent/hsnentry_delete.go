// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gstsuite/invoice-analyzer/gen/ent/hsnentry"
	"github.com/gstsuite/invoice-analyzer/gen/ent/predicate"
)

// HSNEntryDelete is the builder for deleting a HSNEntry entity.
type HSNEntryDelete struct {
	config
	hooks    []Hook
	mutation *HSNEntryMutation
}

// Where appends a list predicates to the HSNEntryDelete builder.
func (_d *HSNEntryDelete) Where(ps ...predicate.HSNEntry) *HSNEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *HSNEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *HSNEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *HSNEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(hsnentry.Table, sqlgraph.NewFieldSpec(hsnentry.FieldID, field.TypeInt))
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

// HSNEntryDeleteOne is the builder for deleting a single HSNEntry entity.
type HSNEntryDeleteOne struct {
	_d *HSNEntryDelete
}

// Where appends a list predicates to the HSNEntryDelete builder.
func (_d *HSNEntryDeleteOne) Where(ps ...predicate.HSNEntry) *HSNEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *HSNEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{hsnentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *HSNEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
