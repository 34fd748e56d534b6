package workers_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
	"github.com/njuphywg-cyber/weight-loss-app/internal/core/workers"
)

type stubRecapGenerator struct {
	mu      sync.Mutex
	userIDs []string
	done    chan struct{}
}

func newStubRecapGenerator(expected int) *stubRecapGenerator {
	return &stubRecapGenerator{done: make(chan struct{}, expected)}
}

func (s *stubRecapGenerator) Generate(ctx context.Context, userID string, anchor domain.Date) (*domain.WeeklyRecap, error) {
	s.mu.Lock()
	s.userIDs = append(s.userIDs, userID)
	s.mu.Unlock()
	s.done <- struct{}{}
	return &domain.WeeklyRecap{UserID: userID, WeekStart: anchor.StartOfWeek()}, nil
}

func (s *stubRecapGenerator) processed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.userIDs...)
}

func TestRecapWorker_ProcessesEnqueuedJobs(t *testing.T) {
	gen := newStubRecapGenerator(2)
	worker := workers.NewRecapWorker(gen)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	worker.Start(ctx)

	worker.Enqueue("alice")
	worker.Enqueue("bob")

	for i := 0; i < 2; i++ {
		select {
		case <-gen.done:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for recap jobs")
		}
	}

	assert.ElementsMatch(t, []string{"alice", "bob"}, gen.processed())
}

func TestRecapWorker_StopsOnContextCancel(t *testing.T) {
	gen := newStubRecapGenerator(1)
	worker := workers.NewRecapWorker(gen)

	ctx, cancel := context.WithCancel(context.Background())
	worker.Start(ctx)
	cancel()

	// Give the goroutine a moment to observe the cancellation. A job
	// enqueued afterwards may sit in the buffer but must not be processed.
	time.Sleep(50 * time.Millisecond)
	worker.Enqueue("alice")
	time.Sleep(50 * time.Millisecond)

	assert.Empty(t, gen.processed())
}
