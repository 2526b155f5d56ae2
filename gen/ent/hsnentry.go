// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gstsuite/invoice-analyzer/gen/ent/hsnentry"
)

// HSNEntry is the model entity for the HSNEntry schema.
type HSNEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// HsnCode holds the value of the "hsn_code" field.
	HsnCode string `json:"hsn_code,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// ItemName holds the value of the "item_name" field.
	ItemName string `json:"item_name,omitempty"`
	// GstRate holds the value of the "gst_rate" field.
	GstRate      float64 `json:"gst_rate,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HSNEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case hsnentry.FieldGstRate:
			values[i] = new(sql.NullFloat64)
		case hsnentry.FieldID:
			values[i] = new(sql.NullInt64)
		case hsnentry.FieldHsnCode, hsnentry.FieldCategory, hsnentry.FieldItemName:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HSNEntry fields.
func (_m *HSNEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case hsnentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case hsnentry.FieldHsnCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hsn_code", values[i])
			} else if value.Valid {
				_m.HsnCode = value.String
			}
		case hsnentry.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case hsnentry.FieldItemName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_name", values[i])
			} else if value.Valid {
				_m.ItemName = value.String
			}
		case hsnentry.FieldGstRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field gst_rate", values[i])
			} else if value.Valid {
				_m.GstRate = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HSNEntry.
// This includes values selected through modifiers, order, etc.
func (_m *HSNEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this HSNEntry.
// Note that you need to call HSNEntry.Unwrap() before calling this method if this HSNEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HSNEntry) Update() *HSNEntryUpdateOne {
	return NewHSNEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HSNEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HSNEntry) Unwrap() *HSNEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HSNEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HSNEntry) String() string {
	var builder strings.Builder
	builder.WriteString("HSNEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("hsn_code=")
	builder.WriteString(_m.HsnCode)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("item_name=")
	builder.WriteString(_m.ItemName)
	builder.WriteString(", ")
	builder.WriteString("gst_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.GstRate))
	builder.WriteByte(')')
	return builder.String()
}

// HSNEntries is a parsable slice of HSNEntry.
type HSNEntries []*HSNEntry
