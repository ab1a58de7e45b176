package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/codewithemma/account-microservice/internal/core/domain"
)

type stubNotifier struct {
	mu        sync.Mutex
	delivered []domain.EmailRequest
	err       error
	block     bool
}

func (n *stubNotifier) Post(ctx context.Context, req domain.EmailRequest) error {
	if n.block {
		<-ctx.Done()
		return ctx.Err()
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.delivered = append(n.delivered, req)
	return n.err
}

func (n *stubNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.delivered)
}

func TestDispatcher_DeliversEnqueuedJobs(t *testing.T) {
	notifier := &stubNotifier{}
	d := NewDispatcher(2, time.Second, notifier, zerolog.Nop())
	d.Start(context.Background())

	for i := 0; i < 5; i++ {
		d.Enqueue(domain.EmailRequest{To: "a@x.com", Subject: "hi"})
	}
	d.Stop()

	if got := notifier.count(); got != 5 {
		t.Fatalf("expected 5 deliveries, got %d", got)
	}
}

func TestDispatcher_EnqueueNeverBlocks(t *testing.T) {
	// No workers are started, so the buffer fills; the overflow must be
	// dropped rather than block the caller.
	d := NewDispatcher(1, time.Second, &stubNotifier{}, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		for i := 0; i < 2*channelBuffer; i++ {
			d.Enqueue(domain.EmailRequest{To: "a@x.com"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Enqueue blocked on a full buffer")
	}
}

func TestDispatcher_DeliveryFailureIsSwallowed(t *testing.T) {
	notifier := &stubNotifier{err: errors.New("endpoint down")}
	d := NewDispatcher(1, time.Second, notifier, zerolog.Nop())
	d.Start(context.Background())

	d.Enqueue(domain.EmailRequest{To: "a@x.com"})
	d.Stop()

	// The attempt happened and the failure stayed inside the dispatcher.
	if got := notifier.count(); got != 1 {
		t.Fatalf("expected 1 attempt, got %d", got)
	}
}

func TestDispatcher_BoundsSlowDeliveries(t *testing.T) {
	notifier := &stubNotifier{block: true}
	d := NewDispatcher(1, 20*time.Millisecond, notifier, zerolog.Nop())
	d.Start(context.Background())

	d.Enqueue(domain.EmailRequest{To: "a@x.com"})

	done := make(chan struct{})
	go func() {
		d.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Stop hung on a slow delivery; per-job timeout not applied")
	}
}
