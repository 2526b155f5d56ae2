// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gstsuite/invoice-analyzer/gen/ent/hsnentry"
)

// HSNEntryCreate is the builder for creating a HSNEntry entity.
type HSNEntryCreate struct {
	config
	mutation *HSNEntryMutation
	hooks    []Hook
}

// SetHsnCode sets the "hsn_code" field.
func (_c *HSNEntryCreate) SetHsnCode(v string) *HSNEntryCreate {
	_c.mutation.SetHsnCode(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *HSNEntryCreate) SetCategory(v string) *HSNEntryCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetItemName sets the "item_name" field.
func (_c *HSNEntryCreate) SetItemName(v string) *HSNEntryCreate {
	_c.mutation.SetItemName(v)
	return _c
}

// SetGstRate sets the "gst_rate" field.
func (_c *HSNEntryCreate) SetGstRate(v float64) *HSNEntryCreate {
	_c.mutation.SetGstRate(v)
	return _c
}

// Mutation returns the HSNEntryMutation object of the builder.
func (_c *HSNEntryCreate) Mutation() *HSNEntryMutation {
	return _c.mutation
}

// Save creates the HSNEntry in the database.
func (_c *HSNEntryCreate) Save(ctx context.Context) (*HSNEntry, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HSNEntryCreate) SaveX(ctx context.Context) *HSNEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HSNEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HSNEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HSNEntryCreate) check() error {
	if _, ok := _c.mutation.HsnCode(); !ok {
		return &ValidationError{Name: "hsn_code", err: errors.New(`ent: missing required field "HSNEntry.hsn_code"`)}
	}
	if v, ok := _c.mutation.HsnCode(); ok {
		if err := hsnentry.HsnCodeValidator(v); err != nil {
			return &ValidationError{Name: "hsn_code", err: fmt.Errorf(`ent: validator failed for field "HSNEntry.hsn_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "HSNEntry.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := hsnentry.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "HSNEntry.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemName(); !ok {
		return &ValidationError{Name: "item_name", err: errors.New(`ent: missing required field "HSNEntry.item_name"`)}
	}
	if v, ok := _c.mutation.ItemName(); ok {
		if err := hsnentry.ItemNameValidator(v); err != nil {
			return &ValidationError{Name: "item_name", err: fmt.Errorf(`ent: validator failed for field "HSNEntry.item_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GstRate(); !ok {
		return &ValidationError{Name: "gst_rate", err: errors.New(`ent: missing required field "HSNEntry.gst_rate"`)}
	}
	return nil
}

func (_c *HSNEntryCreate) sqlSave(ctx context.Context) (*HSNEntry, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HSNEntryCreate) createSpec() (*HSNEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &HSNEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(hsnentry.Table, sqlgraph.NewFieldSpec(hsnentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.HsnCode(); ok {
		_spec.SetField(hsnentry.FieldHsnCode, field.TypeString, value)
		_node.HsnCode = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(hsnentry.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.ItemName(); ok {
		_spec.SetField(hsnentry.FieldItemName, field.TypeString, value)
		_node.ItemName = value
	}
	if value, ok := _c.mutation.GstRate(); ok {
		_spec.SetField(hsnentry.FieldGstRate, field.TypeFloat64, value)
		_node.GstRate = value
	}
	return _node, _spec
}

// HSNEntryCreateBulk is the builder for creating many HSNEntry entities in bulk.
type HSNEntryCreateBulk struct {
	config
	err      error
	builders []*HSNEntryCreate
}

// Save creates the HSNEntry entities in the database.
func (_c *HSNEntryCreateBulk) Save(ctx context.Context) ([]*HSNEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HSNEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HSNEntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *HSNEntryCreateBulk) SaveX(ctx context.Context) []*HSNEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HSNEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HSNEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
