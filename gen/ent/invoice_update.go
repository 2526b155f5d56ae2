// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/gstsuite/invoice-analyzer/gen/ent/extractjob"
	"github.com/gstsuite/invoice-analyzer/gen/ent/invoice"
	"github.com/gstsuite/invoice-analyzer/gen/ent/invoicefile"
	"github.com/gstsuite/invoice-analyzer/gen/ent/lineitem"
	"github.com/gstsuite/invoice-analyzer/gen/ent/predicate"
	"github.com/gstsuite/invoice-analyzer/gen/ent/user"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *InvoiceUpdate) SetUserID(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableUserID(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *InvoiceUpdate) SetFileID(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableFileID(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// ClearFileID clears the value of the "file_id" field.
func (_u *InvoiceUpdate) ClearFileID() *InvoiceUpdate {
	_u.mutation.ClearFileID()
	return _u
}

// SetFilename sets the "filename" field.
func (_u *InvoiceUpdate) SetFilename(v string) *InvoiceUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableFilename(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetInvoiceNo sets the "invoice_no" field.
func (_u *InvoiceUpdate) SetInvoiceNo(v string) *InvoiceUpdate {
	_u.mutation.SetInvoiceNo(v)
	return _u
}

// SetNillableInvoiceNo sets the "invoice_no" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceNo(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceNo(*v)
	}
	return _u
}

// SetGstinNo sets the "gstin_no" field.
func (_u *InvoiceUpdate) SetGstinNo(v string) *InvoiceUpdate {
	_u.mutation.SetGstinNo(v)
	return _u
}

// SetNillableGstinNo sets the "gstin_no" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableGstinNo(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetGstinNo(*v)
	}
	return _u
}

// ClearGstinNo clears the value of the "gstin_no" field.
func (_u *InvoiceUpdate) ClearGstinNo() *InvoiceUpdate {
	_u.mutation.ClearGstinNo()
	return _u
}

// SetSellerName sets the "seller_name" field.
func (_u *InvoiceUpdate) SetSellerName(v string) *InvoiceUpdate {
	_u.mutation.SetSellerName(v)
	return _u
}

// SetNillableSellerName sets the "seller_name" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSellerName(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetSellerName(*v)
	}
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *InvoiceUpdate) SetCustomerName(v string) *InvoiceUpdate {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCustomerName(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// ClearCustomerName clears the value of the "customer_name" field.
func (_u *InvoiceUpdate) ClearCustomerName() *InvoiceUpdate {
	_u.mutation.ClearCustomerName()
	return _u
}

// SetPlace sets the "place" field.
func (_u *InvoiceUpdate) SetPlace(v string) *InvoiceUpdate {
	_u.mutation.SetPlace(v)
	return _u
}

// SetNillablePlace sets the "place" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillablePlace(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetPlace(*v)
	}
	return _u
}

// ClearPlace clears the value of the "place" field.
func (_u *InvoiceUpdate) ClearPlace() *InvoiceUpdate {
	_u.mutation.ClearPlace()
	return _u
}

// SetState sets the "state" field.
func (_u *InvoiceUpdate) SetState(v string) *InvoiceUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableState(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *InvoiceUpdate) ClearState() *InvoiceUpdate {
	_u.mutation.ClearState()
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdate) SetInvoiceDate(v time.Time) *InvoiceUpdate {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceDate(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *InvoiceUpdate) ClearInvoiceDate() *InvoiceUpdate {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetGrandTotal sets the "grand_total" field.
func (_u *InvoiceUpdate) SetGrandTotal(v float64) *InvoiceUpdate {
	_u.mutation.ResetGrandTotal()
	_u.mutation.SetGrandTotal(v)
	return _u
}

// SetNillableGrandTotal sets the "grand_total" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableGrandTotal(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetGrandTotal(*v)
	}
	return _u
}

// AddGrandTotal adds value to the "grand_total" field.
func (_u *InvoiceUpdate) AddGrandTotal(v float64) *InvoiceUpdate {
	_u.mutation.AddGrandTotal(v)
	return _u
}

// SetTotalGst sets the "total_gst" field.
func (_u *InvoiceUpdate) SetTotalGst(v float64) *InvoiceUpdate {
	_u.mutation.ResetTotalGst()
	_u.mutation.SetTotalGst(v)
	return _u
}

// SetNillableTotalGst sets the "total_gst" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTotalGst(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetTotalGst(*v)
	}
	return _u
}

// AddTotalGst adds value to the "total_gst" field.
func (_u *InvoiceUpdate) AddTotalGst(v float64) *InvoiceUpdate {
	_u.mutation.AddTotalGst(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvoiceUpdate) SetStatus(v string) *InvoiceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableStatus(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExtractedAt sets the "extracted_at" field.
func (_u *InvoiceUpdate) SetExtractedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetExtractedAt(v)
	return _u
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableExtractedAt(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetExtractedAt(*v)
	}
	return _u
}

// ClearExtractedAt clears the value of the "extracted_at" field.
func (_u *InvoiceUpdate) ClearExtractedAt() *InvoiceUpdate {
	_u.mutation.ClearExtractedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdate) SetCreatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCreatedAt(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdate) SetUpdatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *InvoiceUpdate) SetUser(v *User) *InvoiceUpdate {
	return _u.SetUserID(v.ID)
}

// SetFile sets the "file" edge to the InvoiceFile entity.
func (_u *InvoiceUpdate) SetFile(v *InvoiceFile) *InvoiceUpdate {
	return _u.SetFileID(v.ID)
}

// AddItemIDs adds the "items" edge to the LineItem entity by IDs.
func (_u *InvoiceUpdate) AddItemIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the LineItem entity.
func (_u *InvoiceUpdate) AddItems(v ...*LineItem) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *InvoiceUpdate) AddJobIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *InvoiceUpdate) AddJobs(v ...*ExtractJob) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdate) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *InvoiceUpdate) ClearUser() *InvoiceUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearFile clears the "file" edge to the InvoiceFile entity.
func (_u *InvoiceUpdate) ClearFile() *InvoiceUpdate {
	_u.mutation.ClearFile()
	return _u
}

// ClearItems clears all "items" edges to the LineItem entity.
func (_u *InvoiceUpdate) ClearItems() *InvoiceUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to LineItem entities by IDs.
func (_u *InvoiceUpdate) RemoveItemIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to LineItem entities.
func (_u *InvoiceUpdate) RemoveItems(v ...*LineItem) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *InvoiceUpdate) ClearJobs() *InvoiceUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *InvoiceUpdate) RemoveJobIDs(ids ...uuid.UUID) *InvoiceUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *InvoiceUpdate) RemoveJobs(v ...*ExtractJob) *InvoiceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := invoice.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Invoice.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InvoiceNo(); ok {
		if err := invoice.InvoiceNoValidator(v); err != nil {
			return &ValidationError{Name: "invoice_no", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_no": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SellerName(); ok {
		if err := invoice.SellerNameValidator(v); err != nil {
			return &ValidationError{Name: "seller_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.seller_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.user"`)
	}
	return nil
}

func (_u *InvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(invoice.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceNo(); ok {
		_spec.SetField(invoice.FieldInvoiceNo, field.TypeString, value)
	}
	if value, ok := _u.mutation.GstinNo(); ok {
		_spec.SetField(invoice.FieldGstinNo, field.TypeString, value)
	}
	if _u.mutation.GstinNoCleared() {
		_spec.ClearField(invoice.FieldGstinNo, field.TypeString)
	}
	if value, ok := _u.mutation.SellerName(); ok {
		_spec.SetField(invoice.FieldSellerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(invoice.FieldCustomerName, field.TypeString, value)
	}
	if _u.mutation.CustomerNameCleared() {
		_spec.ClearField(invoice.FieldCustomerName, field.TypeString)
	}
	if value, ok := _u.mutation.Place(); ok {
		_spec.SetField(invoice.FieldPlace, field.TypeString, value)
	}
	if _u.mutation.PlaceCleared() {
		_spec.ClearField(invoice.FieldPlace, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(invoice.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(invoice.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(invoice.FieldInvoiceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.GrandTotal(); ok {
		_spec.SetField(invoice.FieldGrandTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGrandTotal(); ok {
		_spec.AddField(invoice.FieldGrandTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalGst(); ok {
		_spec.SetField(invoice.FieldTotalGst, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalGst(); ok {
		_spec.AddField(invoice.FieldTotalGst, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedAt(); ok {
		_spec.SetField(invoice.FieldExtractedAt, field.TypeTime, value)
	}
	if _u.mutation.ExtractedAtCleared() {
		_spec.ClearField(invoice.FieldExtractedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.UserTable,
			Columns: []string{invoice.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.UserTable,
			Columns: []string{invoice.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.FileTable,
			Columns: []string{invoice.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoicefile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.FileTable,
			Columns: []string{invoice.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoicefile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.JobsTable,
			Columns: []string{invoice.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.JobsTable,
			Columns: []string{invoice.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.JobsTable,
			Columns: []string{invoice.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetUserID sets the "user_id" field.
func (_u *InvoiceUpdateOne) SetUserID(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableUserID(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *InvoiceUpdateOne) SetFileID(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableFileID(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// ClearFileID clears the value of the "file_id" field.
func (_u *InvoiceUpdateOne) ClearFileID() *InvoiceUpdateOne {
	_u.mutation.ClearFileID()
	return _u
}

// SetFilename sets the "filename" field.
func (_u *InvoiceUpdateOne) SetFilename(v string) *InvoiceUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableFilename(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetInvoiceNo sets the "invoice_no" field.
func (_u *InvoiceUpdateOne) SetInvoiceNo(v string) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceNo(v)
	return _u
}

// SetNillableInvoiceNo sets the "invoice_no" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceNo(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceNo(*v)
	}
	return _u
}

// SetGstinNo sets the "gstin_no" field.
func (_u *InvoiceUpdateOne) SetGstinNo(v string) *InvoiceUpdateOne {
	_u.mutation.SetGstinNo(v)
	return _u
}

// SetNillableGstinNo sets the "gstin_no" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableGstinNo(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetGstinNo(*v)
	}
	return _u
}

// ClearGstinNo clears the value of the "gstin_no" field.
func (_u *InvoiceUpdateOne) ClearGstinNo() *InvoiceUpdateOne {
	_u.mutation.ClearGstinNo()
	return _u
}

// SetSellerName sets the "seller_name" field.
func (_u *InvoiceUpdateOne) SetSellerName(v string) *InvoiceUpdateOne {
	_u.mutation.SetSellerName(v)
	return _u
}

// SetNillableSellerName sets the "seller_name" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSellerName(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSellerName(*v)
	}
	return _u
}

// SetCustomerName sets the "customer_name" field.
func (_u *InvoiceUpdateOne) SetCustomerName(v string) *InvoiceUpdateOne {
	_u.mutation.SetCustomerName(v)
	return _u
}

// SetNillableCustomerName sets the "customer_name" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCustomerName(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCustomerName(*v)
	}
	return _u
}

// ClearCustomerName clears the value of the "customer_name" field.
func (_u *InvoiceUpdateOne) ClearCustomerName() *InvoiceUpdateOne {
	_u.mutation.ClearCustomerName()
	return _u
}

// SetPlace sets the "place" field.
func (_u *InvoiceUpdateOne) SetPlace(v string) *InvoiceUpdateOne {
	_u.mutation.SetPlace(v)
	return _u
}

// SetNillablePlace sets the "place" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillablePlace(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetPlace(*v)
	}
	return _u
}

// ClearPlace clears the value of the "place" field.
func (_u *InvoiceUpdateOne) ClearPlace() *InvoiceUpdateOne {
	_u.mutation.ClearPlace()
	return _u
}

// SetState sets the "state" field.
func (_u *InvoiceUpdateOne) SetState(v string) *InvoiceUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableState(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *InvoiceUpdateOne) ClearState() *InvoiceUpdateOne {
	_u.mutation.ClearState()
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdateOne) SetInvoiceDate(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceDate(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *InvoiceUpdateOne) ClearInvoiceDate() *InvoiceUpdateOne {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetGrandTotal sets the "grand_total" field.
func (_u *InvoiceUpdateOne) SetGrandTotal(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetGrandTotal()
	_u.mutation.SetGrandTotal(v)
	return _u
}

// SetNillableGrandTotal sets the "grand_total" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableGrandTotal(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetGrandTotal(*v)
	}
	return _u
}

// AddGrandTotal adds value to the "grand_total" field.
func (_u *InvoiceUpdateOne) AddGrandTotal(v float64) *InvoiceUpdateOne {
	_u.mutation.AddGrandTotal(v)
	return _u
}

// SetTotalGst sets the "total_gst" field.
func (_u *InvoiceUpdateOne) SetTotalGst(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetTotalGst()
	_u.mutation.SetTotalGst(v)
	return _u
}

// SetNillableTotalGst sets the "total_gst" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTotalGst(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTotalGst(*v)
	}
	return _u
}

// AddTotalGst adds value to the "total_gst" field.
func (_u *InvoiceUpdateOne) AddTotalGst(v float64) *InvoiceUpdateOne {
	_u.mutation.AddTotalGst(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvoiceUpdateOne) SetStatus(v string) *InvoiceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableStatus(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExtractedAt sets the "extracted_at" field.
func (_u *InvoiceUpdateOne) SetExtractedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetExtractedAt(v)
	return _u
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableExtractedAt(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetExtractedAt(*v)
	}
	return _u
}

// ClearExtractedAt clears the value of the "extracted_at" field.
func (_u *InvoiceUpdateOne) ClearExtractedAt() *InvoiceUpdateOne {
	_u.mutation.ClearExtractedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdateOne) SetCreatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCreatedAt(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdateOne) SetUpdatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *InvoiceUpdateOne) SetUser(v *User) *InvoiceUpdateOne {
	return _u.SetUserID(v.ID)
}

// SetFile sets the "file" edge to the InvoiceFile entity.
func (_u *InvoiceUpdateOne) SetFile(v *InvoiceFile) *InvoiceUpdateOne {
	return _u.SetFileID(v.ID)
}

// AddItemIDs adds the "items" edge to the LineItem entity by IDs.
func (_u *InvoiceUpdateOne) AddItemIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the LineItem entity.
func (_u *InvoiceUpdateOne) AddItems(v ...*LineItem) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *InvoiceUpdateOne) AddJobIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *InvoiceUpdateOne) AddJobs(v ...*ExtractJob) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *InvoiceUpdateOne) ClearUser() *InvoiceUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearFile clears the "file" edge to the InvoiceFile entity.
func (_u *InvoiceUpdateOne) ClearFile() *InvoiceUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// ClearItems clears all "items" edges to the LineItem entity.
func (_u *InvoiceUpdateOne) ClearItems() *InvoiceUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to LineItem entities by IDs.
func (_u *InvoiceUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to LineItem entities.
func (_u *InvoiceUpdateOne) RemoveItems(v ...*LineItem) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *InvoiceUpdateOne) ClearJobs() *InvoiceUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *InvoiceUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *InvoiceUpdateOne) RemoveJobs(v ...*ExtractJob) *InvoiceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Invoice entity.
func (_u *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := invoice.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Invoice.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InvoiceNo(); ok {
		if err := invoice.InvoiceNoValidator(v); err != nil {
			return &ValidationError{Name: "invoice_no", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_no": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SellerName(); ok {
		if err := invoice.SellerNameValidator(v); err != nil {
			return &ValidationError{Name: "seller_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.seller_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := invoice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invoice.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.user"`)
	}
	return nil
}

func (_u *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(invoice.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceNo(); ok {
		_spec.SetField(invoice.FieldInvoiceNo, field.TypeString, value)
	}
	if value, ok := _u.mutation.GstinNo(); ok {
		_spec.SetField(invoice.FieldGstinNo, field.TypeString, value)
	}
	if _u.mutation.GstinNoCleared() {
		_spec.ClearField(invoice.FieldGstinNo, field.TypeString)
	}
	if value, ok := _u.mutation.SellerName(); ok {
		_spec.SetField(invoice.FieldSellerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomerName(); ok {
		_spec.SetField(invoice.FieldCustomerName, field.TypeString, value)
	}
	if _u.mutation.CustomerNameCleared() {
		_spec.ClearField(invoice.FieldCustomerName, field.TypeString)
	}
	if value, ok := _u.mutation.Place(); ok {
		_spec.SetField(invoice.FieldPlace, field.TypeString, value)
	}
	if _u.mutation.PlaceCleared() {
		_spec.ClearField(invoice.FieldPlace, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(invoice.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(invoice.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(invoice.FieldInvoiceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.GrandTotal(); ok {
		_spec.SetField(invoice.FieldGrandTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGrandTotal(); ok {
		_spec.AddField(invoice.FieldGrandTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalGst(); ok {
		_spec.SetField(invoice.FieldTotalGst, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalGst(); ok {
		_spec.AddField(invoice.FieldTotalGst, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedAt(); ok {
		_spec.SetField(invoice.FieldExtractedAt, field.TypeTime, value)
	}
	if _u.mutation.ExtractedAtCleared() {
		_spec.ClearField(invoice.FieldExtractedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.UserTable,
			Columns: []string{invoice.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.UserTable,
			Columns: []string{invoice.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.FileTable,
			Columns: []string{invoice.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoicefile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.FileTable,
			Columns: []string{invoice.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoicefile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.ItemsTable,
			Columns: []string{invoice.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.JobsTable,
			Columns: []string{invoice.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.JobsTable,
			Columns: []string{invoice.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.JobsTable,
			Columns: []string{invoice.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Invoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
