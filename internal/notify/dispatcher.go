package notify

import (
	"context"
	"sync"

	"jumatrek/pkg/logger"
)

type Job struct {
	Subject string
	HTML    string
	To      string
}

// Dispatcher sends mail off the request path. Its queue is bounded: when it
// is full new jobs are dropped, never waited on.
type Dispatcher struct {
	mailer  Mailer
	queue   chan Job
	workers int
	log     *logger.Logger

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

func NewDispatcher(mailer Mailer, queueSize, workers int, log *logger.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}
	if workers <= 0 {
		workers = 1
	}
	return &Dispatcher{
		mailer:  mailer,
		queue:   make(chan Job, queueSize),
		workers: workers,
		log:     log,
	}
}

func (d *Dispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.work(i)
	}
	d.log.Info("Notification dispatcher started", "workers", d.workers, "queue_size", cap(d.queue))
}

func (d *Dispatcher) work(id int) {
	defer d.wg.Done()
	for job := range d.queue {
		if !d.mailer.Send(context.Background(), job.Subject, job.HTML, job.To) {
			d.log.Debug("Queued email not delivered", "worker", id, "to", job.To, "subject", job.Subject)
		}
	}
}

// Enqueue reports whether the job was accepted.
func (d *Dispatcher) Enqueue(job Job) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		return false
	}

	select {
	case d.queue <- job:
		return true
	default:
		d.log.Warn("Notification queue full, dropping email", "to", job.To, "subject", job.Subject)
		return false
	}
}

// Stop closes the queue and waits for workers to drain it, or for ctx.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return nil
	}
	d.stopped = true
	close(d.queue)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.log.Info("Notification dispatcher drained")
		return nil
	case <-ctx.Done():
		d.log.Warn("Notification dispatcher stopped before draining", "pending", len(d.queue))
		return ctx.Err()
	}
}

// Pending is the number of queued jobs.
func (d *Dispatcher) Pending() int {
	return len(d.queue)
}
