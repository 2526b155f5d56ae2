// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gstsuite/invoice-analyzer/gen/ent/hsnentry"
	"github.com/gstsuite/invoice-analyzer/gen/ent/predicate"
)

// HSNEntryUpdate is the builder for updating HSNEntry entities.
type HSNEntryUpdate struct {
	config
	hooks    []Hook
	mutation *HSNEntryMutation
}

// Where appends a list predicates to the HSNEntryUpdate builder.
func (_u *HSNEntryUpdate) Where(ps ...predicate.HSNEntry) *HSNEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetHsnCode sets the "hsn_code" field.
func (_u *HSNEntryUpdate) SetHsnCode(v string) *HSNEntryUpdate {
	_u.mutation.SetHsnCode(v)
	return _u
}

// SetNillableHsnCode sets the "hsn_code" field if the given value is not nil.
func (_u *HSNEntryUpdate) SetNillableHsnCode(v *string) *HSNEntryUpdate {
	if v != nil {
		_u.SetHsnCode(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *HSNEntryUpdate) SetCategory(v string) *HSNEntryUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *HSNEntryUpdate) SetNillableCategory(v *string) *HSNEntryUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetItemName sets the "item_name" field.
func (_u *HSNEntryUpdate) SetItemName(v string) *HSNEntryUpdate {
	_u.mutation.SetItemName(v)
	return _u
}

// SetNillableItemName sets the "item_name" field if the given value is not nil.
func (_u *HSNEntryUpdate) SetNillableItemName(v *string) *HSNEntryUpdate {
	if v != nil {
		_u.SetItemName(*v)
	}
	return _u
}

// SetGstRate sets the "gst_rate" field.
func (_u *HSNEntryUpdate) SetGstRate(v float64) *HSNEntryUpdate {
	_u.mutation.ResetGstRate()
	_u.mutation.SetGstRate(v)
	return _u
}

// SetNillableGstRate sets the "gst_rate" field if the given value is not nil.
func (_u *HSNEntryUpdate) SetNillableGstRate(v *float64) *HSNEntryUpdate {
	if v != nil {
		_u.SetGstRate(*v)
	}
	return _u
}

// AddGstRate adds value to the "gst_rate" field.
func (_u *HSNEntryUpdate) AddGstRate(v float64) *HSNEntryUpdate {
	_u.mutation.AddGstRate(v)
	return _u
}

// Mutation returns the HSNEntryMutation object of the builder.
func (_u *HSNEntryUpdate) Mutation() *HSNEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HSNEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HSNEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HSNEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HSNEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HSNEntryUpdate) check() error {
	if v, ok := _u.mutation.HsnCode(); ok {
		if err := hsnentry.HsnCodeValidator(v); err != nil {
			return &ValidationError{Name: "hsn_code", err: fmt.Errorf(`ent: validator failed for field "HSNEntry.hsn_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := hsnentry.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "HSNEntry.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemName(); ok {
		if err := hsnentry.ItemNameValidator(v); err != nil {
			return &ValidationError{Name: "item_name", err: fmt.Errorf(`ent: validator failed for field "HSNEntry.item_name": %w`, err)}
		}
	}
	return nil
}

func (_u *HSNEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hsnentry.Table, hsnentry.Columns, sqlgraph.NewFieldSpec(hsnentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.HsnCode(); ok {
		_spec.SetField(hsnentry.FieldHsnCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(hsnentry.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemName(); ok {
		_spec.SetField(hsnentry.FieldItemName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GstRate(); ok {
		_spec.SetField(hsnentry.FieldGstRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGstRate(); ok {
		_spec.AddField(hsnentry.FieldGstRate, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hsnentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HSNEntryUpdateOne is the builder for updating a single HSNEntry entity.
type HSNEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HSNEntryMutation
}

// SetHsnCode sets the "hsn_code" field.
func (_u *HSNEntryUpdateOne) SetHsnCode(v string) *HSNEntryUpdateOne {
	_u.mutation.SetHsnCode(v)
	return _u
}

// SetNillableHsnCode sets the "hsn_code" field if the given value is not nil.
func (_u *HSNEntryUpdateOne) SetNillableHsnCode(v *string) *HSNEntryUpdateOne {
	if v != nil {
		_u.SetHsnCode(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *HSNEntryUpdateOne) SetCategory(v string) *HSNEntryUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *HSNEntryUpdateOne) SetNillableCategory(v *string) *HSNEntryUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetItemName sets the "item_name" field.
func (_u *HSNEntryUpdateOne) SetItemName(v string) *HSNEntryUpdateOne {
	_u.mutation.SetItemName(v)
	return _u
}

// SetNillableItemName sets the "item_name" field if the given value is not nil.
func (_u *HSNEntryUpdateOne) SetNillableItemName(v *string) *HSNEntryUpdateOne {
	if v != nil {
		_u.SetItemName(*v)
	}
	return _u
}

// SetGstRate sets the "gst_rate" field.
func (_u *HSNEntryUpdateOne) SetGstRate(v float64) *HSNEntryUpdateOne {
	_u.mutation.ResetGstRate()
	_u.mutation.SetGstRate(v)
	return _u
}

// SetNillableGstRate sets the "gst_rate" field if the given value is not nil.
func (_u *HSNEntryUpdateOne) SetNillableGstRate(v *float64) *HSNEntryUpdateOne {
	if v != nil {
		_u.SetGstRate(*v)
	}
	return _u
}

// AddGstRate adds value to the "gst_rate" field.
func (_u *HSNEntryUpdateOne) AddGstRate(v float64) *HSNEntryUpdateOne {
	_u.mutation.AddGstRate(v)
	return _u
}

// Mutation returns the HSNEntryMutation object of the builder.
func (_u *HSNEntryUpdateOne) Mutation() *HSNEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the HSNEntryUpdate builder.
func (_u *HSNEntryUpdateOne) Where(ps ...predicate.HSNEntry) *HSNEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HSNEntryUpdateOne) Select(field string, fields ...string) *HSNEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HSNEntry entity.
func (_u *HSNEntryUpdateOne) Save(ctx context.Context) (*HSNEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HSNEntryUpdateOne) SaveX(ctx context.Context) *HSNEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HSNEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HSNEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HSNEntryUpdateOne) check() error {
	if v, ok := _u.mutation.HsnCode(); ok {
		if err := hsnentry.HsnCodeValidator(v); err != nil {
			return &ValidationError{Name: "hsn_code", err: fmt.Errorf(`ent: validator failed for field "HSNEntry.hsn_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := hsnentry.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "HSNEntry.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemName(); ok {
		if err := hsnentry.ItemNameValidator(v); err != nil {
			return &ValidationError{Name: "item_name", err: fmt.Errorf(`ent: validator failed for field "HSNEntry.item_name": %w`, err)}
		}
	}
	return nil
}

func (_u *HSNEntryUpdateOne) sqlSave(ctx context.Context) (_node *HSNEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hsnentry.Table, hsnentry.Columns, sqlgraph.NewFieldSpec(hsnentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HSNEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hsnentry.FieldID)
		for _, f := range fields {
			if !hsnentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != hsnentry.FieldID {
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
	if value, ok := _u.mutation.HsnCode(); ok {
		_spec.SetField(hsnentry.FieldHsnCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(hsnentry.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemName(); ok {
		_spec.SetField(hsnentry.FieldItemName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GstRate(); ok {
		_spec.SetField(hsnentry.FieldGstRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGstRate(); ok {
		_spec.AddField(hsnentry.FieldGstRate, field.TypeFloat64, value)
	}
	_node = &HSNEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hsnentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
