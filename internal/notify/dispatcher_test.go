package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"jumatrek/pkg/logger"
)

// fakeMailer records sends; block, when set, holds each send until closed.
type fakeMailer struct {
	mu         sync.Mutex
	configured bool
	result     bool
	block      chan struct{}
	sent       []Job
}

func (f *fakeMailer) Configured() bool { return f.configured }

func (f *fakeMailer) Send(_ context.Context, subject, htmlBody, to string) bool {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, Job{Subject: subject, HTML: htmlBody, To: to})
	return f.result
}

func (f *fakeMailer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func TestDispatcher_DeliversAndDrains(t *testing.T) {
	mailer := &fakeMailer{configured: true, result: true}
	d := NewDispatcher(mailer, 10, 2, logger.Discard())
	d.Start()

	for i := 0; i < 5; i++ {
		if !d.Enqueue(Job{Subject: "s", To: "a@example.com"}) {
			t.Fatalf("enqueue %d rejected", i)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := d.Stop(ctx); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if mailer.count() != 5 {
		t.Errorf("sent %d, want 5", mailer.count())
	}
	if d.Enqueue(Job{To: "late@example.com"}) {
		t.Errorf("enqueue after stop should be rejected")
	}
	if err := d.Stop(ctx); err != nil {
		t.Errorf("second stop should be a no-op, got %v", err)
	}
}

func TestDispatcher_FullQueueDropsWithoutBlocking(t *testing.T) {
	mailer := &fakeMailer{configured: true, block: make(chan struct{})}
	d := NewDispatcher(mailer, 1, 1, logger.Discard())
	// No workers yet: the queue holds exactly one job.

	if !d.Enqueue(Job{To: "first@example.com"}) {
		t.Fatalf("first job should be accepted")
	}

	done := make(chan bool, 1)
	go func() { done <- d.Enqueue(Job{To: "second@example.com"}) }()

	select {
	case accepted := <-done:
		if accepted {
			t.Errorf("second job should be dropped")
		}
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}

	if d.Pending() != 1 {
		t.Errorf("pending = %d, want 1", d.Pending())
	}

	d.Start()
	close(mailer.block)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := d.Stop(ctx); err != nil {
		t.Fatalf("stop: %v", err)
	}
}
