// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/gstsuite/invoice-analyzer/db/ent/schema"
	"github.com/gstsuite/invoice-analyzer/gen/ent/extractjob"
	"github.com/gstsuite/invoice-analyzer/gen/ent/hsnentry"
	"github.com/gstsuite/invoice-analyzer/gen/ent/invoice"
	"github.com/gstsuite/invoice-analyzer/gen/ent/invoicefile"
	"github.com/gstsuite/invoice-analyzer/gen/ent/lineitem"
	"github.com/gstsuite/invoice-analyzer/gen/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescFormat is the schema descriptor for format field.
	extractjobDescFormat := extractjobFields[4].Descriptor()
	// extractjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	extractjob.FormatValidator = func() func(string) error {
		validators := extractjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[5].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescStatus is the schema descriptor for status field.
	extractjobDescStatus := extractjobFields[7].Descriptor()
	// extractjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractjob.StatusValidator = extractjobDescStatus.Validators[0].(func(string) error)
	// extractjobDescNeedsReview is the schema descriptor for needs_review field.
	extractjobDescNeedsReview := extractjobFields[10].Descriptor()
	// extractjob.DefaultNeedsReview holds the default value on creation for the needs_review field.
	extractjob.DefaultNeedsReview = extractjobDescNeedsReview.Default.(bool)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
	hsnentryFields := schema.HSNEntry{}.Fields()
	_ = hsnentryFields
	// hsnentryDescHsnCode is the schema descriptor for hsn_code field.
	hsnentryDescHsnCode := hsnentryFields[0].Descriptor()
	// hsnentry.HsnCodeValidator is a validator for the "hsn_code" field. It is called by the builders before save.
	hsnentry.HsnCodeValidator = hsnentryDescHsnCode.Validators[0].(func(string) error)
	// hsnentryDescCategory is the schema descriptor for category field.
	hsnentryDescCategory := hsnentryFields[1].Descriptor()
	// hsnentry.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	hsnentry.CategoryValidator = hsnentryDescCategory.Validators[0].(func(string) error)
	// hsnentryDescItemName is the schema descriptor for item_name field.
	hsnentryDescItemName := hsnentryFields[2].Descriptor()
	// hsnentry.ItemNameValidator is a validator for the "item_name" field. It is called by the builders before save.
	hsnentry.ItemNameValidator = hsnentryDescItemName.Validators[0].(func(string) error)
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescFilename is the schema descriptor for filename field.
	invoiceDescFilename := invoiceFields[3].Descriptor()
	// invoice.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	invoice.FilenameValidator = invoiceDescFilename.Validators[0].(func(string) error)
	// invoiceDescInvoiceNo is the schema descriptor for invoice_no field.
	invoiceDescInvoiceNo := invoiceFields[4].Descriptor()
	// invoice.InvoiceNoValidator is a validator for the "invoice_no" field. It is called by the builders before save.
	invoice.InvoiceNoValidator = invoiceDescInvoiceNo.Validators[0].(func(string) error)
	// invoiceDescSellerName is the schema descriptor for seller_name field.
	invoiceDescSellerName := invoiceFields[6].Descriptor()
	// invoice.SellerNameValidator is a validator for the "seller_name" field. It is called by the builders before save.
	invoice.SellerNameValidator = invoiceDescSellerName.Validators[0].(func(string) error)
	// invoiceDescStatus is the schema descriptor for status field.
	invoiceDescStatus := invoiceFields[13].Descriptor()
	// invoice.DefaultStatus holds the default value on creation for the status field.
	invoice.DefaultStatus = invoiceDescStatus.Default.(string)
	// invoice.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	invoice.StatusValidator = invoiceDescStatus.Validators[0].(func(string) error)
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceFields[15].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceFields[16].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
	invoicefileFields := schema.InvoiceFile{}.Fields()
	_ = invoicefileFields
	// invoicefileDescSourcePath is the schema descriptor for source_path field.
	invoicefileDescSourcePath := invoicefileFields[2].Descriptor()
	// invoicefile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	invoicefile.SourcePathValidator = invoicefileDescSourcePath.Validators[0].(func(string) error)
	// invoicefileDescContentHash is the schema descriptor for content_hash field.
	invoicefileDescContentHash := invoicefileFields[3].Descriptor()
	// invoicefile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	invoicefile.ContentHashValidator = invoicefileDescContentHash.Validators[0].(func([]byte) error)
	// invoicefileDescFilename is the schema descriptor for filename field.
	invoicefileDescFilename := invoicefileFields[4].Descriptor()
	// invoicefile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	invoicefile.FilenameValidator = invoicefileDescFilename.Validators[0].(func(string) error)
	// invoicefileDescFileExt is the schema descriptor for file_ext field.
	invoicefileDescFileExt := invoicefileFields[5].Descriptor()
	// invoicefile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	invoicefile.FileExtValidator = invoicefileDescFileExt.Validators[0].(func(string) error)
	// invoicefileDescFileSize is the schema descriptor for file_size field.
	invoicefileDescFileSize := invoicefileFields[6].Descriptor()
	// invoicefile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	invoicefile.FileSizeValidator = invoicefileDescFileSize.Validators[0].(func(int) error)
	// invoicefileDescUploadedAt is the schema descriptor for uploaded_at field.
	invoicefileDescUploadedAt := invoicefileFields[7].Descriptor()
	// invoicefile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	invoicefile.DefaultUploadedAt = invoicefileDescUploadedAt.Default.(func() time.Time)
	// invoicefileDescID is the schema descriptor for id field.
	invoicefileDescID := invoicefileFields[0].Descriptor()
	// invoicefile.DefaultID holds the default value on creation for the id field.
	invoicefile.DefaultID = invoicefileDescID.Default.(func() uuid.UUID)
	lineitemFields := schema.LineItem{}.Fields()
	_ = lineitemFields
	// lineitemDescItemName is the schema descriptor for item_name field.
	lineitemDescItemName := lineitemFields[2].Descriptor()
	// lineitem.ItemNameValidator is a validator for the "item_name" field. It is called by the builders before save.
	lineitem.ItemNameValidator = lineitemDescItemName.Validators[0].(func(string) error)
	// lineitemDescID is the schema descriptor for id field.
	lineitemDescID := lineitemFields[0].Descriptor()
	// lineitem.DefaultID holds the default value on creation for the id field.
	lineitem.DefaultID = lineitemDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[1].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescAadhaar is the schema descriptor for aadhaar field.
	userDescAadhaar := userFields[3].Descriptor()
	// user.AadhaarValidator is a validator for the "aadhaar" field. It is called by the builders before save.
	user.AadhaarValidator = userDescAadhaar.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[4].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescUserType is the schema descriptor for user_type field.
	userDescUserType := userFields[5].Descriptor()
	// user.DefaultUserType holds the default value on creation for the user_type field.
	user.DefaultUserType = userDescUserType.Default.(string)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[6].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[7].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
