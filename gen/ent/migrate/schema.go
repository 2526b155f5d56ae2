// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtractJobsColumns holds the columns for the "extract_jobs" table.
	ExtractJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "extraction_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "model_params", Type: field.TypeJSON, Nullable: true},
		{Name: "invoice_id", Type: field.TypeUUID, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// ExtractJobsTable holds the schema information for the "extract_jobs" table.
	ExtractJobsTable = &schema.Table{
		Name:       "extract_jobs",
		Columns:    ExtractJobsColumns,
		PrimaryKey: []*schema.Column{ExtractJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_jobs_invoices_jobs",
				Columns:    []*schema.Column{ExtractJobsColumns[12]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "extract_jobs_invoice_files_jobs",
				Columns:    []*schema.Column{ExtractJobsColumns[13]},
				RefColumns: []*schema.Column{InvoiceFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "extract_jobs_users_jobs",
				Columns:    []*schema.Column{ExtractJobsColumns[14]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_user_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobsColumns[14], ExtractJobsColumns[4], ExtractJobsColumns[2]},
			},
			{
				Name:    "extractjob_file_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobsColumns[13]},
			},
			{
				Name:    "extractjob_invoice_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobsColumns[12]},
			},
		},
	}
	// HsnEntriesColumns holds the columns for the "hsn_entries" table.
	HsnEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "hsn_code", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "item_name", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "gst_rate", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
	}
	// HsnEntriesTable holds the schema information for the "hsn_entries" table.
	HsnEntriesTable = &schema.Table{
		Name:       "hsn_entries",
		Columns:    HsnEntriesColumns,
		PrimaryKey: []*schema.Column{HsnEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "hsnentry_category",
				Unique:  false,
				Columns: []*schema.Column{HsnEntriesColumns[2]},
			},
			{
				Name:    "hsnentry_hsn_code",
				Unique:  false,
				Columns: []*schema.Column{HsnEntriesColumns[1]},
			},
		},
	}
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "invoice_no", Type: field.TypeString},
		{Name: "gstin_no", Type: field.TypeString, Nullable: true},
		{Name: "seller_name", Type: field.TypeString},
		{Name: "customer_name", Type: field.TypeString, Nullable: true},
		{Name: "place", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeString, Nullable: true},
		{Name: "invoice_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "grand_total", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total_gst", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "extracted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "file_id", Type: field.TypeUUID, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoices_invoice_files_invoices",
				Columns:    []*schema.Column{InvoicesColumns[15]},
				RefColumns: []*schema.Column{InvoiceFilesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "invoices_users_invoices",
				Columns:    []*schema.Column{InvoicesColumns[16]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_user_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[16], InvoicesColumns[11], InvoicesColumns[13]},
			},
			{
				Name:    "invoice_user_id_invoice_no",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[16], InvoicesColumns[2]},
			},
		},
	}
	// InvoiceFilesColumns holds the columns for the "invoice_files" table.
	InvoiceFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// InvoiceFilesTable holds the schema information for the "invoice_files" table.
	InvoiceFilesTable = &schema.Table{
		Name:       "invoice_files",
		Columns:    InvoiceFilesColumns,
		PrimaryKey: []*schema.Column{InvoiceFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoice_files_users_files",
				Columns:    []*schema.Column{InvoiceFilesColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoicefile_user_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{InvoiceFilesColumns[7], InvoiceFilesColumns[2]},
			},
			{
				Name:    "invoicefile_user_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{InvoiceFilesColumns[7], InvoiceFilesColumns[6]},
			},
		},
	}
	// LineItemsColumns holds the columns for the "line_items" table.
	LineItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "item_name", Type: field.TypeString},
		{Name: "hsn_code", Type: field.TypeString, Nullable: true},
		{Name: "quantity", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,3)"}},
		{Name: "unit_price", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "gst_rate", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "invoice_id", Type: field.TypeUUID},
	}
	// LineItemsTable holds the schema information for the "line_items" table.
	LineItemsTable = &schema.Table{
		Name:       "line_items",
		Columns:    LineItemsColumns,
		PrimaryKey: []*schema.Column{LineItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "line_items_invoices_items",
				Columns:    []*schema.Column{LineItemsColumns[7]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lineitem_invoice_id",
				Unique:  false,
				Columns: []*schema.Column{LineItemsColumns[7]},
			},
			{
				Name:    "lineitem_hsn_code",
				Unique:  false,
				Columns: []*schema.Column{LineItemsColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "aadhaar", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "user_type", Type: field.TypeString, Default: "CA"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtractJobsTable,
		HsnEntriesTable,
		InvoicesTable,
		InvoiceFilesTable,
		LineItemsTable,
		UsersTable,
	}
)

func init() {
	ExtractJobsTable.ForeignKeys[0].RefTable = InvoicesTable
	ExtractJobsTable.ForeignKeys[1].RefTable = InvoiceFilesTable
	ExtractJobsTable.ForeignKeys[2].RefTable = UsersTable
	ExtractJobsTable.Annotation = &entsql.Annotation{
		Table: "extract_jobs",
	}
	HsnEntriesTable.Annotation = &entsql.Annotation{
		Table: "hsn_entries",
	}
	InvoicesTable.ForeignKeys[0].RefTable = InvoiceFilesTable
	InvoicesTable.ForeignKeys[1].RefTable = UsersTable
	InvoicesTable.Annotation = &entsql.Annotation{
		Table: "invoices",
	}
	InvoiceFilesTable.ForeignKeys[0].RefTable = UsersTable
	InvoiceFilesTable.Annotation = &entsql.Annotation{
		Table: "invoice_files",
	}
	LineItemsTable.ForeignKeys[0].RefTable = InvoicesTable
	LineItemsTable.Annotation = &entsql.Annotation{
		Table: "line_items",
	}
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
}
