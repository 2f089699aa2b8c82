package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/freshbox-tech/Freshbox-admin/internal/logger"
	"go.uber.org/zap"
)

var (
	ErrJobQueueIsFull = errors.New("job queue is full")
	ErrJobQueueClosed = errors.New("job queue is closed")
)

// Job is one unit of background work, such as provisioning a chat channel
// after an assignment.
type Job func(ctx context.Context)

// JobQueueService runs jobs on a fixed pool of workers. Side calls that
// must not block a request/response cycle go through here.
type JobQueueService struct {
	jobs    chan Job
	resume  chan struct{}
	paused  int32
	wg      sync.WaitGroup
	mu      sync.Mutex
	closing int32
}

// NewJobQueueService creates a queue with the given capacity and starts
// the workers immediately.
func NewJobQueueService(ctx context.Context, capacity, workers int) *JobQueueService {
	service := &JobQueueService{
		jobs:   make(chan Job, capacity),
		resume: make(chan struct{}),
	}
	service.start(ctx, workers)

	return service
}

func (jqs *JobQueueService) start(ctx context.Context, workers int) {
	for i := 0; i < workers; i++ {
		jqs.wg.Add(1)

		go func(workerID int) {
			defer jqs.wg.Done()

			for {
				select {
				case job, ok := <-jqs.jobs:
					if !ok {
						return
					}

					if atomic.LoadInt32(&jqs.paused) == 1 {
						<-jqs.resume
					}

					job(ctx)
				case <-ctx.Done():
					return
				}
			}
		}(i + 1)
	}
}

// Enqueue adds a job without blocking; a full or closed queue is an error
// the caller must handle.
func (jqs *JobQueueService) Enqueue(job Job) error {
	if atomic.LoadInt32(&jqs.closing) == 1 {
		return ErrJobQueueClosed
	}

	select {
	case jqs.jobs <- job:
		return nil
	default:
		return ErrJobQueueIsFull
	}
}

// ScheduleJob enqueues a job after the given delay.
func (jqs *JobQueueService) ScheduleJob(job Job, delay time.Duration) {
	time.AfterFunc(delay, func() {
		if err := jqs.Enqueue(job); err != nil {
			logger.Log.Error("failed to schedule job", zap.Error(err))
		}
	})
}

// Pause stops workers from picking up new jobs.
func (jqs *JobQueueService) Pause() {
	atomic.CompareAndSwapInt32(&jqs.paused, 0, 1)
}

// Resume releases workers blocked by Pause.
func (jqs *JobQueueService) Resume() {
	if atomic.CompareAndSwapInt32(&jqs.paused, 1, 0) {
		jqs.mu.Lock()
		defer jqs.mu.Unlock()
		close(jqs.resume)
		jqs.resume = make(chan struct{})
	}
}

// Shutdown closes the queue and waits for in-flight jobs to finish.
func (jqs *JobQueueService) Shutdown() {
	if atomic.CompareAndSwapInt32(&jqs.closing, 0, 1) {
		close(jqs.jobs)
		jqs.wg.Wait()
	}
}
