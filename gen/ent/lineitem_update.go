// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/gstsuite/invoice-analyzer/gen/ent/invoice"
	"github.com/gstsuite/invoice-analyzer/gen/ent/lineitem"
	"github.com/gstsuite/invoice-analyzer/gen/ent/predicate"
)

// LineItemUpdate is the builder for updating LineItem entities.
type LineItemUpdate struct {
	config
	hooks    []Hook
	mutation *LineItemMutation
}

// Where appends a list predicates to the LineItemUpdate builder.
func (_u *LineItemUpdate) Where(ps ...predicate.LineItem) *LineItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInvoiceID sets the "invoice_id" field.
func (_u *LineItemUpdate) SetInvoiceID(v uuid.UUID) *LineItemUpdate {
	_u.mutation.SetInvoiceID(v)
	return _u
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_u *LineItemUpdate) SetNillableInvoiceID(v *uuid.UUID) *LineItemUpdate {
	if v != nil {
		_u.SetInvoiceID(*v)
	}
	return _u
}

// SetItemName sets the "item_name" field.
func (_u *LineItemUpdate) SetItemName(v string) *LineItemUpdate {
	_u.mutation.SetItemName(v)
	return _u
}

// SetNillableItemName sets the "item_name" field if the given value is not nil.
func (_u *LineItemUpdate) SetNillableItemName(v *string) *LineItemUpdate {
	if v != nil {
		_u.SetItemName(*v)
	}
	return _u
}

// SetHsnCode sets the "hsn_code" field.
func (_u *LineItemUpdate) SetHsnCode(v string) *LineItemUpdate {
	_u.mutation.SetHsnCode(v)
	return _u
}

// SetNillableHsnCode sets the "hsn_code" field if the given value is not nil.
func (_u *LineItemUpdate) SetNillableHsnCode(v *string) *LineItemUpdate {
	if v != nil {
		_u.SetHsnCode(*v)
	}
	return _u
}

// ClearHsnCode clears the value of the "hsn_code" field.
func (_u *LineItemUpdate) ClearHsnCode() *LineItemUpdate {
	_u.mutation.ClearHsnCode()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *LineItemUpdate) SetQuantity(v float64) *LineItemUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *LineItemUpdate) SetNillableQuantity(v *float64) *LineItemUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *LineItemUpdate) AddQuantity(v float64) *LineItemUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *LineItemUpdate) SetUnitPrice(v float64) *LineItemUpdate {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *LineItemUpdate) SetNillableUnitPrice(v *float64) *LineItemUpdate {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *LineItemUpdate) AddUnitPrice(v float64) *LineItemUpdate {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetAmount sets the "amount" field.
func (_u *LineItemUpdate) SetAmount(v float64) *LineItemUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *LineItemUpdate) SetNillableAmount(v *float64) *LineItemUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *LineItemUpdate) AddAmount(v float64) *LineItemUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetGstRate sets the "gst_rate" field.
func (_u *LineItemUpdate) SetGstRate(v float64) *LineItemUpdate {
	_u.mutation.ResetGstRate()
	_u.mutation.SetGstRate(v)
	return _u
}

// SetNillableGstRate sets the "gst_rate" field if the given value is not nil.
func (_u *LineItemUpdate) SetNillableGstRate(v *float64) *LineItemUpdate {
	if v != nil {
		_u.SetGstRate(*v)
	}
	return _u
}

// AddGstRate adds value to the "gst_rate" field.
func (_u *LineItemUpdate) AddGstRate(v float64) *LineItemUpdate {
	_u.mutation.AddGstRate(v)
	return _u
}

// ClearGstRate clears the value of the "gst_rate" field.
func (_u *LineItemUpdate) ClearGstRate() *LineItemUpdate {
	_u.mutation.ClearGstRate()
	return _u
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_u *LineItemUpdate) SetInvoice(v *Invoice) *LineItemUpdate {
	return _u.SetInvoiceID(v.ID)
}

// Mutation returns the LineItemMutation object of the builder.
func (_u *LineItemUpdate) Mutation() *LineItemMutation {
	return _u.mutation
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (_u *LineItemUpdate) ClearInvoice() *LineItemUpdate {
	_u.mutation.ClearInvoice()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LineItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LineItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LineItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LineItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LineItemUpdate) check() error {
	if v, ok := _u.mutation.ItemName(); ok {
		if err := lineitem.ItemNameValidator(v); err != nil {
			return &ValidationError{Name: "item_name", err: fmt.Errorf(`ent: validator failed for field "LineItem.item_name": %w`, err)}
		}
	}
	if _u.mutation.InvoiceCleared() && len(_u.mutation.InvoiceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LineItem.invoice"`)
	}
	return nil
}

func (_u *LineItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lineitem.Table, lineitem.Columns, sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemName(); ok {
		_spec.SetField(lineitem.FieldItemName, field.TypeString, value)
	}
	if value, ok := _u.mutation.HsnCode(); ok {
		_spec.SetField(lineitem.FieldHsnCode, field.TypeString, value)
	}
	if _u.mutation.HsnCodeCleared() {
		_spec.ClearField(lineitem.FieldHsnCode, field.TypeString)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(lineitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(lineitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(lineitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(lineitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(lineitem.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(lineitem.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GstRate(); ok {
		_spec.SetField(lineitem.FieldGstRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGstRate(); ok {
		_spec.AddField(lineitem.FieldGstRate, field.TypeFloat64, value)
	}
	if _u.mutation.GstRateCleared() {
		_spec.ClearField(lineitem.FieldGstRate, field.TypeFloat64)
	}
	if _u.mutation.InvoiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lineitem.InvoiceTable,
			Columns: []string{lineitem.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lineitem.InvoiceTable,
			Columns: []string{lineitem.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lineitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LineItemUpdateOne is the builder for updating a single LineItem entity.
type LineItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LineItemMutation
}

// SetInvoiceID sets the "invoice_id" field.
func (_u *LineItemUpdateOne) SetInvoiceID(v uuid.UUID) *LineItemUpdateOne {
	_u.mutation.SetInvoiceID(v)
	return _u
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_u *LineItemUpdateOne) SetNillableInvoiceID(v *uuid.UUID) *LineItemUpdateOne {
	if v != nil {
		_u.SetInvoiceID(*v)
	}
	return _u
}

// SetItemName sets the "item_name" field.
func (_u *LineItemUpdateOne) SetItemName(v string) *LineItemUpdateOne {
	_u.mutation.SetItemName(v)
	return _u
}

// SetNillableItemName sets the "item_name" field if the given value is not nil.
func (_u *LineItemUpdateOne) SetNillableItemName(v *string) *LineItemUpdateOne {
	if v != nil {
		_u.SetItemName(*v)
	}
	return _u
}

// SetHsnCode sets the "hsn_code" field.
func (_u *LineItemUpdateOne) SetHsnCode(v string) *LineItemUpdateOne {
	_u.mutation.SetHsnCode(v)
	return _u
}

// SetNillableHsnCode sets the "hsn_code" field if the given value is not nil.
func (_u *LineItemUpdateOne) SetNillableHsnCode(v *string) *LineItemUpdateOne {
	if v != nil {
		_u.SetHsnCode(*v)
	}
	return _u
}

// ClearHsnCode clears the value of the "hsn_code" field.
func (_u *LineItemUpdateOne) ClearHsnCode() *LineItemUpdateOne {
	_u.mutation.ClearHsnCode()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *LineItemUpdateOne) SetQuantity(v float64) *LineItemUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *LineItemUpdateOne) SetNillableQuantity(v *float64) *LineItemUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *LineItemUpdateOne) AddQuantity(v float64) *LineItemUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *LineItemUpdateOne) SetUnitPrice(v float64) *LineItemUpdateOne {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *LineItemUpdateOne) SetNillableUnitPrice(v *float64) *LineItemUpdateOne {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *LineItemUpdateOne) AddUnitPrice(v float64) *LineItemUpdateOne {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetAmount sets the "amount" field.
func (_u *LineItemUpdateOne) SetAmount(v float64) *LineItemUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *LineItemUpdateOne) SetNillableAmount(v *float64) *LineItemUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *LineItemUpdateOne) AddAmount(v float64) *LineItemUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetGstRate sets the "gst_rate" field.
func (_u *LineItemUpdateOne) SetGstRate(v float64) *LineItemUpdateOne {
	_u.mutation.ResetGstRate()
	_u.mutation.SetGstRate(v)
	return _u
}

// SetNillableGstRate sets the "gst_rate" field if the given value is not nil.
func (_u *LineItemUpdateOne) SetNillableGstRate(v *float64) *LineItemUpdateOne {
	if v != nil {
		_u.SetGstRate(*v)
	}
	return _u
}

// AddGstRate adds value to the "gst_rate" field.
func (_u *LineItemUpdateOne) AddGstRate(v float64) *LineItemUpdateOne {
	_u.mutation.AddGstRate(v)
	return _u
}

// ClearGstRate clears the value of the "gst_rate" field.
func (_u *LineItemUpdateOne) ClearGstRate() *LineItemUpdateOne {
	_u.mutation.ClearGstRate()
	return _u
}

// SetInvoice sets the "invoice" edge to the Invoice entity.
func (_u *LineItemUpdateOne) SetInvoice(v *Invoice) *LineItemUpdateOne {
	return _u.SetInvoiceID(v.ID)
}

// Mutation returns the LineItemMutation object of the builder.
func (_u *LineItemUpdateOne) Mutation() *LineItemMutation {
	return _u.mutation
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (_u *LineItemUpdateOne) ClearInvoice() *LineItemUpdateOne {
	_u.mutation.ClearInvoice()
	return _u
}

// Where appends a list predicates to the LineItemUpdate builder.
func (_u *LineItemUpdateOne) Where(ps ...predicate.LineItem) *LineItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LineItemUpdateOne) Select(field string, fields ...string) *LineItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LineItem entity.
func (_u *LineItemUpdateOne) Save(ctx context.Context) (*LineItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LineItemUpdateOne) SaveX(ctx context.Context) *LineItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LineItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LineItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LineItemUpdateOne) check() error {
	if v, ok := _u.mutation.ItemName(); ok {
		if err := lineitem.ItemNameValidator(v); err != nil {
			return &ValidationError{Name: "item_name", err: fmt.Errorf(`ent: validator failed for field "LineItem.item_name": %w`, err)}
		}
	}
	if _u.mutation.InvoiceCleared() && len(_u.mutation.InvoiceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LineItem.invoice"`)
	}
	return nil
}

func (_u *LineItemUpdateOne) sqlSave(ctx context.Context) (_node *LineItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lineitem.Table, lineitem.Columns, sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LineItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lineitem.FieldID)
		for _, f := range fields {
			if !lineitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lineitem.FieldID {
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
	if value, ok := _u.mutation.ItemName(); ok {
		_spec.SetField(lineitem.FieldItemName, field.TypeString, value)
	}
	if value, ok := _u.mutation.HsnCode(); ok {
		_spec.SetField(lineitem.FieldHsnCode, field.TypeString, value)
	}
	if _u.mutation.HsnCodeCleared() {
		_spec.ClearField(lineitem.FieldHsnCode, field.TypeString)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(lineitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(lineitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(lineitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(lineitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(lineitem.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(lineitem.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GstRate(); ok {
		_spec.SetField(lineitem.FieldGstRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGstRate(); ok {
		_spec.AddField(lineitem.FieldGstRate, field.TypeFloat64, value)
	}
	if _u.mutation.GstRateCleared() {
		_spec.ClearField(lineitem.FieldGstRate, field.TypeFloat64)
	}
	if _u.mutation.InvoiceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lineitem.InvoiceTable,
			Columns: []string{lineitem.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoiceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lineitem.InvoiceTable,
			Columns: []string{lineitem.InvoiceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LineItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lineitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
