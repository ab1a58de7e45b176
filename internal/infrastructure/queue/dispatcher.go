package queue

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/codewithemma/account-microservice/internal/api/metrics"
	"github.com/codewithemma/account-microservice/internal/core/domain"
	"github.com/codewithemma/account-microservice/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
	defaultTimeout = 5 * time.Second
)

// Dispatcher runs notification deliveries on a fixed worker pool, detached
// from the request that produced them. Outcomes are observed only through
// logs and metrics; a failed delivery never reaches the caller.
type Dispatcher struct {
	jobs     chan domain.EmailRequest
	notifier ports.Notifier
	timeout  time.Duration
	log      zerolog.Logger
	workers  int
	wg       sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers workers and a per-job
// delivery timeout. Non-positive arguments fall back to defaults.
func NewDispatcher(numWorkers int, timeout time.Duration, notifier ports.Notifier, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Dispatcher{
		jobs:     make(chan domain.EmailRequest, channelBuffer),
		notifier: notifier,
		timeout:  timeout,
		log:      log,
		workers:  numWorkers,
	}
}

// Start launches the worker goroutines. Workers drain the queue until Stop
// closes it or ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.runWorker(ctx, i)
	}
}

// Enqueue schedules a notification without blocking. When the buffer is full
// the job is dropped and logged; signup must never wait on the notification
// channel.
func (d *Dispatcher) Enqueue(req domain.EmailRequest) {
	select {
	case d.jobs <- req:
		metrics.NotificationQueueDepth.Set(float64(len(d.jobs)))
	default:
		metrics.NotificationsTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().Str("to", req.To).Msg("notification queue full, dropping")
	}
}

// Stop closes the queue and waits for in-flight deliveries to finish. Each
// delivery is already bounded by the per-job timeout, so Stop cannot hang
// indefinitely.
func (d *Dispatcher) Stop() {
	close(d.jobs)
	d.wg.Wait()
}

func (d *Dispatcher) runWorker(ctx context.Context, id int) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case req, ok := <-d.jobs:
			if !ok {
				return
			}
			metrics.NotificationQueueDepth.Set(float64(len(d.jobs)))
			d.deliver(ctx, id, req)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, id int, req domain.EmailRequest) {
	callCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := d.notifier.Post(callCtx, req); err != nil {
		metrics.NotificationsTotal.WithLabelValues("error").Inc()
		d.log.Error().Err(err).
			Str("to", req.To).
			Int("worker_id", id).
			Msg("notification delivery failed")
		return
	}

	metrics.NotificationsTotal.WithLabelValues("sent").Inc()
	d.log.Info().Str("to", req.To).Msg("notification delivered")
}
