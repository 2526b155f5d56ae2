package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is one queued extraction request.
type Job struct {
	FileID      uuid.UUID
	SubmittedAt time.Time
	TraceID     string
}

// Queue accepts extraction jobs for background processing.
type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context) error
}
