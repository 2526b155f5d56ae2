// Code generated by ent, DO NOT EDIT.

package lineitem

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/gstsuite/invoice-analyzer/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.LineItem {
	return predicate.LineItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.LineItem {
	return predicate.LineItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.LineItem {
	return predicate.LineItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.LineItem {
	return predicate.LineItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.LineItem {
	return predicate.LineItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.LineItem {
	return predicate.LineItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.LineItem {
	return predicate.LineItem(sql.FieldLTE(FieldID, id))
}

// InvoiceID applies equality check predicate on the "invoice_id" field. It's identical to InvoiceIDEQ.
func InvoiceID(v uuid.UUID) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldInvoiceID, v))
}

// ItemName applies equality check predicate on the "item_name" field. It's identical to ItemNameEQ.
func ItemName(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldItemName, v))
}

// HsnCode applies equality check predicate on the "hsn_code" field. It's identical to HsnCodeEQ.
func HsnCode(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldHsnCode, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldQuantity, v))
}

// UnitPrice applies equality check predicate on the "unit_price" field. It's identical to UnitPriceEQ.
func UnitPrice(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldUnitPrice, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldAmount, v))
}

// GstRate applies equality check predicate on the "gst_rate" field. It's identical to GstRateEQ.
func GstRate(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldGstRate, v))
}

// InvoiceIDEQ applies the EQ predicate on the "invoice_id" field.
func InvoiceIDEQ(v uuid.UUID) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldInvoiceID, v))
}

// InvoiceIDNEQ applies the NEQ predicate on the "invoice_id" field.
func InvoiceIDNEQ(v uuid.UUID) predicate.LineItem {
	return predicate.LineItem(sql.FieldNEQ(FieldInvoiceID, v))
}

// InvoiceIDIn applies the In predicate on the "invoice_id" field.
func InvoiceIDIn(vs ...uuid.UUID) predicate.LineItem {
	return predicate.LineItem(sql.FieldIn(FieldInvoiceID, vs...))
}

// InvoiceIDNotIn applies the NotIn predicate on the "invoice_id" field.
func InvoiceIDNotIn(vs ...uuid.UUID) predicate.LineItem {
	return predicate.LineItem(sql.FieldNotIn(FieldInvoiceID, vs...))
}

// ItemNameEQ applies the EQ predicate on the "item_name" field.
func ItemNameEQ(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldItemName, v))
}

// ItemNameNEQ applies the NEQ predicate on the "item_name" field.
func ItemNameNEQ(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldNEQ(FieldItemName, v))
}

// ItemNameIn applies the In predicate on the "item_name" field.
func ItemNameIn(vs ...string) predicate.LineItem {
	return predicate.LineItem(sql.FieldIn(FieldItemName, vs...))
}

// ItemNameNotIn applies the NotIn predicate on the "item_name" field.
func ItemNameNotIn(vs ...string) predicate.LineItem {
	return predicate.LineItem(sql.FieldNotIn(FieldItemName, vs...))
}

// ItemNameGT applies the GT predicate on the "item_name" field.
func ItemNameGT(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldGT(FieldItemName, v))
}

// ItemNameGTE applies the GTE predicate on the "item_name" field.
func ItemNameGTE(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldGTE(FieldItemName, v))
}

// ItemNameLT applies the LT predicate on the "item_name" field.
func ItemNameLT(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldLT(FieldItemName, v))
}

// ItemNameLTE applies the LTE predicate on the "item_name" field.
func ItemNameLTE(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldLTE(FieldItemName, v))
}

// ItemNameContains applies the Contains predicate on the "item_name" field.
func ItemNameContains(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldContains(FieldItemName, v))
}

// ItemNameHasPrefix applies the HasPrefix predicate on the "item_name" field.
func ItemNameHasPrefix(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldHasPrefix(FieldItemName, v))
}

// ItemNameHasSuffix applies the HasSuffix predicate on the "item_name" field.
func ItemNameHasSuffix(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldHasSuffix(FieldItemName, v))
}

// ItemNameEqualFold applies the EqualFold predicate on the "item_name" field.
func ItemNameEqualFold(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldEqualFold(FieldItemName, v))
}

// ItemNameContainsFold applies the ContainsFold predicate on the "item_name" field.
func ItemNameContainsFold(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldContainsFold(FieldItemName, v))
}

// HsnCodeEQ applies the EQ predicate on the "hsn_code" field.
func HsnCodeEQ(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldHsnCode, v))
}

// HsnCodeNEQ applies the NEQ predicate on the "hsn_code" field.
func HsnCodeNEQ(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldNEQ(FieldHsnCode, v))
}

// HsnCodeIn applies the In predicate on the "hsn_code" field.
func HsnCodeIn(vs ...string) predicate.LineItem {
	return predicate.LineItem(sql.FieldIn(FieldHsnCode, vs...))
}

// HsnCodeNotIn applies the NotIn predicate on the "hsn_code" field.
func HsnCodeNotIn(vs ...string) predicate.LineItem {
	return predicate.LineItem(sql.FieldNotIn(FieldHsnCode, vs...))
}

// HsnCodeGT applies the GT predicate on the "hsn_code" field.
func HsnCodeGT(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldGT(FieldHsnCode, v))
}

// HsnCodeGTE applies the GTE predicate on the "hsn_code" field.
func HsnCodeGTE(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldGTE(FieldHsnCode, v))
}

// HsnCodeLT applies the LT predicate on the "hsn_code" field.
func HsnCodeLT(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldLT(FieldHsnCode, v))
}

// HsnCodeLTE applies the LTE predicate on the "hsn_code" field.
func HsnCodeLTE(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldLTE(FieldHsnCode, v))
}

// HsnCodeContains applies the Contains predicate on the "hsn_code" field.
func HsnCodeContains(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldContains(FieldHsnCode, v))
}

// HsnCodeHasPrefix applies the HasPrefix predicate on the "hsn_code" field.
func HsnCodeHasPrefix(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldHasPrefix(FieldHsnCode, v))
}

// HsnCodeHasSuffix applies the HasSuffix predicate on the "hsn_code" field.
func HsnCodeHasSuffix(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldHasSuffix(FieldHsnCode, v))
}

// HsnCodeIsNil applies the IsNil predicate on the "hsn_code" field.
func HsnCodeIsNil() predicate.LineItem {
	return predicate.LineItem(sql.FieldIsNull(FieldHsnCode))
}

// HsnCodeNotNil applies the NotNil predicate on the "hsn_code" field.
func HsnCodeNotNil() predicate.LineItem {
	return predicate.LineItem(sql.FieldNotNull(FieldHsnCode))
}

// HsnCodeEqualFold applies the EqualFold predicate on the "hsn_code" field.
func HsnCodeEqualFold(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldEqualFold(FieldHsnCode, v))
}

// HsnCodeContainsFold applies the ContainsFold predicate on the "hsn_code" field.
func HsnCodeContainsFold(v string) predicate.LineItem {
	return predicate.LineItem(sql.FieldContainsFold(FieldHsnCode, v))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldLTE(FieldQuantity, v))
}

// UnitPriceEQ applies the EQ predicate on the "unit_price" field.
func UnitPriceEQ(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldUnitPrice, v))
}

// UnitPriceNEQ applies the NEQ predicate on the "unit_price" field.
func UnitPriceNEQ(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldNEQ(FieldUnitPrice, v))
}

// UnitPriceIn applies the In predicate on the "unit_price" field.
func UnitPriceIn(vs ...float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldIn(FieldUnitPrice, vs...))
}

// UnitPriceNotIn applies the NotIn predicate on the "unit_price" field.
func UnitPriceNotIn(vs ...float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldNotIn(FieldUnitPrice, vs...))
}

// UnitPriceGT applies the GT predicate on the "unit_price" field.
func UnitPriceGT(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldGT(FieldUnitPrice, v))
}

// UnitPriceGTE applies the GTE predicate on the "unit_price" field.
func UnitPriceGTE(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldGTE(FieldUnitPrice, v))
}

// UnitPriceLT applies the LT predicate on the "unit_price" field.
func UnitPriceLT(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldLT(FieldUnitPrice, v))
}

// UnitPriceLTE applies the LTE predicate on the "unit_price" field.
func UnitPriceLTE(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldLTE(FieldUnitPrice, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldLTE(FieldAmount, v))
}

// GstRateEQ applies the EQ predicate on the "gst_rate" field.
func GstRateEQ(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldEQ(FieldGstRate, v))
}

// GstRateNEQ applies the NEQ predicate on the "gst_rate" field.
func GstRateNEQ(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldNEQ(FieldGstRate, v))
}

// GstRateIn applies the In predicate on the "gst_rate" field.
func GstRateIn(vs ...float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldIn(FieldGstRate, vs...))
}

// GstRateNotIn applies the NotIn predicate on the "gst_rate" field.
func GstRateNotIn(vs ...float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldNotIn(FieldGstRate, vs...))
}

// GstRateGT applies the GT predicate on the "gst_rate" field.
func GstRateGT(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldGT(FieldGstRate, v))
}

// GstRateGTE applies the GTE predicate on the "gst_rate" field.
func GstRateGTE(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldGTE(FieldGstRate, v))
}

// GstRateLT applies the LT predicate on the "gst_rate" field.
func GstRateLT(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldLT(FieldGstRate, v))
}

// GstRateLTE applies the LTE predicate on the "gst_rate" field.
func GstRateLTE(v float64) predicate.LineItem {
	return predicate.LineItem(sql.FieldLTE(FieldGstRate, v))
}

// GstRateIsNil applies the IsNil predicate on the "gst_rate" field.
func GstRateIsNil() predicate.LineItem {
	return predicate.LineItem(sql.FieldIsNull(FieldGstRate))
}

// GstRateNotNil applies the NotNil predicate on the "gst_rate" field.
func GstRateNotNil() predicate.LineItem {
	return predicate.LineItem(sql.FieldNotNull(FieldGstRate))
}

// HasInvoice applies the HasEdge predicate on the "invoice" edge.
func HasInvoice() predicate.LineItem {
	return predicate.LineItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InvoiceTable, InvoiceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInvoiceWith applies the HasEdge predicate on the "invoice" edge with a given conditions (other predicates).
func HasInvoiceWith(preds ...predicate.Invoice) predicate.LineItem {
	return predicate.LineItem(func(s *sql.Selector) {
		step := newInvoiceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LineItem) predicate.LineItem {
	return predicate.LineItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LineItem) predicate.LineItem {
	return predicate.LineItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LineItem) predicate.LineItem {
	return predicate.LineItem(sql.NotPredicates(p))
}
