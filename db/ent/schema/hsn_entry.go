package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HSNEntry maps to the HSN/GST reference table. Rows are loaded in bulk
// from CSV and are read-only at runtime.
type HSNEntry struct {
	ent.Schema
}

func (HSNEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "hsn_entries"},
	}
}

func (HSNEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("hsn_code").NotEmpty(),
		field.String("category").NotEmpty(),
		field.String("item_name").NotEmpty().Unique().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float("gst_rate").
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
	}
}

func (HSNEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category"),
		index.Fields("hsn_code"),
	}
}
