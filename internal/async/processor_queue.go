package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gstsuite/invoice-analyzer/internal/pipeline"
)

var ErrQueueClosed = errors.New("queue is shut down")

const (
	defaultWorkers        = 4
	defaultQueueSize      = 256
	defaultProcessTimeout = 3 * time.Minute
)

// ProcessorQueue fans queued files out to a fixed worker pool, each
// worker running the full extraction pipeline with its own deadline.
type ProcessorQueue struct {
	proc    *pipeline.Processor
	log     *slog.Logger
	jobs    chan Job
	workers int
	timeout time.Duration

	startOnce sync.Once
	closeOnce sync.Once
	wg        sync.WaitGroup
	closed    chan struct{}
}

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.jobs = make(chan Job, n)
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewProcessorQueue(proc *pipeline.Processor, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ProcessorQueue{
		proc:    proc,
		log:     logger,
		jobs:    make(chan Job, defaultQueueSize),
		workers: defaultWorkers,
		timeout: defaultProcessTimeout,
		closed:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

func (q *ProcessorQueue) start() {
	q.startOnce.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go q.worker(i)
		}
		q.log.Info("processor queue started", "workers", q.workers, "capacity", cap(q.jobs))
	})
}

// Enqueue blocks when the queue is full, which backpressures large batch
// uploads instead of dropping files.
func (q *ProcessorQueue) Enqueue(ctx context.Context, job Job) error {
	q.start()
	if job.TraceID == "" {
		job.TraceID = uuid.NewString()
	}
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now()
	}
	select {
	case <-q.closed:
		return ErrQueueClosed
	default:
	}
	select {
	case q.jobs <- job:
		return nil
	case <-q.closed:
		return ErrQueueClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops intake, drains the queue and waits for in-flight work,
// or returns early when ctx expires. The jobs channel stays open so a
// racing Enqueue can never send on a closed channel.
func (q *ProcessorQueue) Shutdown(ctx context.Context) error {
	q.closeOnce.Do(func() {
		close(q.closed)
	})

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		// An Enqueue racing the close can still buffer a job after the
		// workers' final drain. It was accepted, so it still runs here.
		for {
			select {
			case job := <-q.jobs:
				q.run(-1, job)
			default:
				close(done)
				return
			}
		}
	}()
	select {
	case <-done:
		q.log.Info("processor queue drained")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *ProcessorQueue) worker(id int) {
	defer q.wg.Done()
	for {
		select {
		case job := <-q.jobs:
			q.run(id, job)
		case <-q.closed:
			// drain what was accepted before shutdown
			for {
				select {
				case job := <-q.jobs:
					q.run(id, job)
				default:
					return
				}
			}
		}
	}
}

func (q *ProcessorQueue) run(workerID int, job Job) {
	// Each job gets its own deadline; a stuck OCR or model call must not
	// hold a worker forever.
	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	defer cancel()

	started := time.Now()
	log := q.log.With("worker", workerID, "trace_id", job.TraceID, "file_id", job.FileID)

	inv, jobID, err := q.proc.ProcessFile(ctx, job.FileID)
	if err != nil {
		log.Error("queued extraction failed",
			"job_id", jobID, "wait_ms", started.Sub(job.SubmittedAt).Milliseconds(), "err", err)
		return
	}
	log.Info("queued extraction done",
		"job_id", jobID, "invoice_id", inv.ID, "elapsed_ms", time.Since(started).Milliseconds())
}
