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
)

type InvoiceFile struct {
	ent.Schema
}

func (InvoiceFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoice_files"},
	}
}

func (InvoiceFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FKs so we can define a composite unique index
		field.UUID("user_id", uuid.UUID{}),
		field.String("source_path").NotEmpty(),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.Int("file_size").NonNegative(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (InvoiceFile) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY files -> ONE user
		edge.From("user", User.Type).
			Ref("files").
			Field("user_id").
			Required().
			Unique(),
		// ONE file -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
		// ONE file -> MANY invoices
		edge.To("invoices", Invoice.Type),
	}
}

func (InvoiceFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "content_hash").Unique(),
		index.Fields("user_id", "uploaded_at"),
	}
}
