package async

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstsuite/invoice-analyzer/internal/common"
	"github.com/gstsuite/invoice-analyzer/internal/entity"
	"github.com/gstsuite/invoice-analyzer/internal/pipeline"
)

// countingFiles counts pipeline entries; every job hits GetByID first.
type countingFiles struct {
	calls atomic.Int32
}

func (c *countingFiles) GetByID(context.Context, uuid.UUID) (*entity.InvoiceFile, error) {
	c.calls.Add(1)
	return nil, common.ErrNotFound
}

func (c *countingFiles) GetByUserAndHash(context.Context, uuid.UUID, []byte) (*entity.InvoiceFile, error) {
	return nil, common.ErrNotFound
}

func (c *countingFiles) Create(context.Context, uuid.UUID, string, string, string, int, []byte, time.Time) (*entity.InvoiceFile, error) {
	return nil, common.ErrNotFound
}

func (c *countingFiles) UpsertByHash(context.Context, uuid.UUID, string, string, string, int, []byte, time.Time) (*entity.InvoiceFile, bool, error) {
	return nil, false, common.ErrNotFound
}

func TestEnqueueAfterShutdown(t *testing.T) {
	q := NewProcessorQueue(nil, nil, WithWorkers(1), WithQueueSize(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, q.Shutdown(ctx))

	err := q.Enqueue(ctx, Job{FileID: uuid.New()})
	assert.ErrorIs(t, err, ErrQueueClosed)
}

func TestShutdownIsIdempotent(t *testing.T) {
	q := NewProcessorQueue(nil, nil)
	ctx := context.Background()
	require.NoError(t, q.Shutdown(ctx))
	require.NoError(t, q.Shutdown(ctx))
}

func TestShutdownRunsAcceptedJobs(t *testing.T) {
	files := &countingFiles{}
	proc := pipeline.NewProcessor(pipeline.NewOCRStage(files, nil, nil, nil), nil, nil)
	q := NewProcessorQueue(proc, nil, WithWorkers(1), WithQueueSize(8))

	ctx := context.Background()
	const jobs = 5
	for i := 0; i < jobs; i++ {
		require.NoError(t, q.Enqueue(ctx, Job{FileID: uuid.New()}))
	}
	require.NoError(t, q.Shutdown(ctx))
	assert.Equal(t, int32(jobs), files.calls.Load(),
		"every job accepted by Enqueue runs before Shutdown returns")
}
