// Code generated by ent, DO NOT EDIT.

package hsnentry

import (
	"entgo.io/ent/dialect/sql"
	"github.com/gstsuite/invoice-analyzer/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldLTE(FieldID, id))
}

// HsnCode applies equality check predicate on the "hsn_code" field. It's identical to HsnCodeEQ.
func HsnCode(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldEQ(FieldHsnCode, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldEQ(FieldCategory, v))
}

// ItemName applies equality check predicate on the "item_name" field. It's identical to ItemNameEQ.
func ItemName(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldEQ(FieldItemName, v))
}

// GstRate applies equality check predicate on the "gst_rate" field. It's identical to GstRateEQ.
func GstRate(v float64) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldEQ(FieldGstRate, v))
}

// HsnCodeEQ applies the EQ predicate on the "hsn_code" field.
func HsnCodeEQ(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldEQ(FieldHsnCode, v))
}

// HsnCodeNEQ applies the NEQ predicate on the "hsn_code" field.
func HsnCodeNEQ(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldNEQ(FieldHsnCode, v))
}

// HsnCodeIn applies the In predicate on the "hsn_code" field.
func HsnCodeIn(vs ...string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldIn(FieldHsnCode, vs...))
}

// HsnCodeNotIn applies the NotIn predicate on the "hsn_code" field.
func HsnCodeNotIn(vs ...string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldNotIn(FieldHsnCode, vs...))
}

// HsnCodeGT applies the GT predicate on the "hsn_code" field.
func HsnCodeGT(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldGT(FieldHsnCode, v))
}

// HsnCodeGTE applies the GTE predicate on the "hsn_code" field.
func HsnCodeGTE(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldGTE(FieldHsnCode, v))
}

// HsnCodeLT applies the LT predicate on the "hsn_code" field.
func HsnCodeLT(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldLT(FieldHsnCode, v))
}

// HsnCodeLTE applies the LTE predicate on the "hsn_code" field.
func HsnCodeLTE(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldLTE(FieldHsnCode, v))
}

// HsnCodeContains applies the Contains predicate on the "hsn_code" field.
func HsnCodeContains(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldContains(FieldHsnCode, v))
}

// HsnCodeHasPrefix applies the HasPrefix predicate on the "hsn_code" field.
func HsnCodeHasPrefix(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldHasPrefix(FieldHsnCode, v))
}

// HsnCodeHasSuffix applies the HasSuffix predicate on the "hsn_code" field.
func HsnCodeHasSuffix(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldHasSuffix(FieldHsnCode, v))
}

// HsnCodeEqualFold applies the EqualFold predicate on the "hsn_code" field.
func HsnCodeEqualFold(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldEqualFold(FieldHsnCode, v))
}

// HsnCodeContainsFold applies the ContainsFold predicate on the "hsn_code" field.
func HsnCodeContainsFold(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldContainsFold(FieldHsnCode, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldContainsFold(FieldCategory, v))
}

// ItemNameEQ applies the EQ predicate on the "item_name" field.
func ItemNameEQ(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldEQ(FieldItemName, v))
}

// ItemNameNEQ applies the NEQ predicate on the "item_name" field.
func ItemNameNEQ(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldNEQ(FieldItemName, v))
}

// ItemNameIn applies the In predicate on the "item_name" field.
func ItemNameIn(vs ...string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldIn(FieldItemName, vs...))
}

// ItemNameNotIn applies the NotIn predicate on the "item_name" field.
func ItemNameNotIn(vs ...string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldNotIn(FieldItemName, vs...))
}

// ItemNameGT applies the GT predicate on the "item_name" field.
func ItemNameGT(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldGT(FieldItemName, v))
}

// ItemNameGTE applies the GTE predicate on the "item_name" field.
func ItemNameGTE(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldGTE(FieldItemName, v))
}

// ItemNameLT applies the LT predicate on the "item_name" field.
func ItemNameLT(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldLT(FieldItemName, v))
}

// ItemNameLTE applies the LTE predicate on the "item_name" field.
func ItemNameLTE(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldLTE(FieldItemName, v))
}

// ItemNameContains applies the Contains predicate on the "item_name" field.
func ItemNameContains(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldContains(FieldItemName, v))
}

// ItemNameHasPrefix applies the HasPrefix predicate on the "item_name" field.
func ItemNameHasPrefix(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldHasPrefix(FieldItemName, v))
}

// ItemNameHasSuffix applies the HasSuffix predicate on the "item_name" field.
func ItemNameHasSuffix(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldHasSuffix(FieldItemName, v))
}

// ItemNameEqualFold applies the EqualFold predicate on the "item_name" field.
func ItemNameEqualFold(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldEqualFold(FieldItemName, v))
}

// ItemNameContainsFold applies the ContainsFold predicate on the "item_name" field.
func ItemNameContainsFold(v string) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldContainsFold(FieldItemName, v))
}

// GstRateEQ applies the EQ predicate on the "gst_rate" field.
func GstRateEQ(v float64) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldEQ(FieldGstRate, v))
}

// GstRateNEQ applies the NEQ predicate on the "gst_rate" field.
func GstRateNEQ(v float64) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldNEQ(FieldGstRate, v))
}

// GstRateIn applies the In predicate on the "gst_rate" field.
func GstRateIn(vs ...float64) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldIn(FieldGstRate, vs...))
}

// GstRateNotIn applies the NotIn predicate on the "gst_rate" field.
func GstRateNotIn(vs ...float64) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldNotIn(FieldGstRate, vs...))
}

// GstRateGT applies the GT predicate on the "gst_rate" field.
func GstRateGT(v float64) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldGT(FieldGstRate, v))
}

// GstRateGTE applies the GTE predicate on the "gst_rate" field.
func GstRateGTE(v float64) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldGTE(FieldGstRate, v))
}

// GstRateLT applies the LT predicate on the "gst_rate" field.
func GstRateLT(v float64) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldLT(FieldGstRate, v))
}

// GstRateLTE applies the LTE predicate on the "gst_rate" field.
func GstRateLTE(v float64) predicate.HSNEntry {
	return predicate.HSNEntry(sql.FieldLTE(FieldGstRate, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HSNEntry) predicate.HSNEntry {
	return predicate.HSNEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HSNEntry) predicate.HSNEntry {
	return predicate.HSNEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HSNEntry) predicate.HSNEntry {
	return predicate.HSNEntry(sql.NotPredicates(p))
}
