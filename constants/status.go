package constants

// JobStatus is the canonical status for rows in extract_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued  JobStatus = "QUEUED"  // waiting in the batch queue
	JobStatusRunning JobStatus = "RUNNING" // in progress
	JobStatusOCROK   JobStatus = "OCR_OK"  // stage 1 completed (text extracted)
	JobStatusLLMOK   JobStatus = "LLM_OK"  // stage 2 completed (fields extracted)
	JobStatusFailed  JobStatus = "FAILED"  // terminal failure
)

// InvoiceStatus is the extraction outcome recorded on an invoice row.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "PENDING"
	InvoiceStatusSuccess InvoiceStatus = "SUCCESS"
	InvoiceStatusFailed  InvoiceStatus = "FAILED"
)

// InvoiceStatuses holds the allowed values for the invoice status field.
var InvoiceStatuses = []string{
	string(InvoiceStatusPending),
	string(InvoiceStatusSuccess),
	string(InvoiceStatusFailed),
}

// JobStatuses holds the allowed values for the extract job status field.
var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusRunning),
	string(JobStatusOCROK),
	string(JobStatusLLMOK),
	string(JobStatusFailed),
}
