package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/gstsuite/invoice-analyzer/constants"
	"github.com/gstsuite/invoice-analyzer/db/ent/schema/utils"
)

type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoices"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("user_id", uuid.UUID{}),
		field.UUID("file_id", uuid.UUID{}).Optional().Nillable(),
		field.String("filename").NotEmpty(),
		field.String("invoice_no").NotEmpty(),
		field.String("gstin_no").Optional().Nillable(),
		field.String("seller_name").NotEmpty(),
		field.String("customer_name").Optional().Nillable(),
		field.String("place").Optional().Nillable(),
		field.String("state").Optional().Nillable(),
		field.Time("invoice_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Float("grand_total").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("total_gst").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("status").
			Default(string(constants.InvoiceStatusPending)).
			Validate(utils.EnumValidator(constants.InvoiceStatuses...)),
		field.Time("extracted_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY invoices -> ONE user (FK: invoices.user_id)
		edge.From("user", User.Type).
			Ref("invoices").
			Field("user_id").
			Required().
			Unique(),
		// OPTIONAL: MANY invoices -> ONE source file
		edge.From("file", InvoiceFile.Type).
			Ref("invoices").
			Field("file_id").
			Unique(),
		// ONE invoice -> MANY line items; items never outlive the invoice
		edge.To("items", LineItem.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		// ONE invoice -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "status", "created_at"),
		index.Fields("user_id", "invoice_no"),
	}
}
