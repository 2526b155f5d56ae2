// Code generated by ent, DO NOT EDIT.

package hsnentry

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the hsnentry type in the database.
	Label = "hsn_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldHsnCode holds the string denoting the hsn_code field in the database.
	FieldHsnCode = "hsn_code"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldItemName holds the string denoting the item_name field in the database.
	FieldItemName = "item_name"
	// FieldGstRate holds the string denoting the gst_rate field in the database.
	FieldGstRate = "gst_rate"
	// Table holds the table name of the hsnentry in the database.
	Table = "hsn_entries"
)

// Columns holds all SQL columns for hsnentry fields.
var Columns = []string{
	FieldID,
	FieldHsnCode,
	FieldCategory,
	FieldItemName,
	FieldGstRate,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// HsnCodeValidator is a validator for the "hsn_code" field. It is called by the builders before save.
	HsnCodeValidator func(string) error
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// ItemNameValidator is a validator for the "item_name" field. It is called by the builders before save.
	ItemNameValidator func(string) error
)

// OrderOption defines the ordering options for the HSNEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByHsnCode orders the results by the hsn_code field.
func ByHsnCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHsnCode, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByItemName orders the results by the item_name field.
func ByItemName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemName, opts...).ToFunc()
}

// ByGstRate orders the results by the gst_rate field.
func ByGstRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGstRate, opts...).ToFunc()
}
