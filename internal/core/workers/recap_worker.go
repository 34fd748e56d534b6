package workers

import (
	"context"
	"log"

	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
)

// RecapGenerator is the slice of the recap service the worker needs.
type RecapGenerator interface {
	Generate(ctx context.Context, userID string, anchor domain.Date) (*domain.WeeklyRecap, error)
}

type RecapJob struct {
	UserID string
}

// RecapWorker regenerates the current week's recap in the background after
// each check-in save, so couple-space reads always see fresh numbers
// without paying the aggregation on the submit path.
type RecapWorker struct {
	gen  RecapGenerator
	jobs chan RecapJob
}

func NewRecapWorker(gen RecapGenerator) *RecapWorker {
	return &RecapWorker{
		gen:  gen,
		jobs: make(chan RecapJob, 100),
	}
}

func (w *RecapWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Recap Worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("Recap Worker shutting down...")
				return
			}
		}
	}()
}

func (w *RecapWorker) Enqueue(userID string) {
	select {
	case w.jobs <- RecapJob{UserID: userID}:
	default:
		log.Printf("Recap Worker queue full! Dropping job for user %s", userID)
	}
}

func (w *RecapWorker) processJob(ctx context.Context, job RecapJob) {
	recap, err := w.gen.Generate(ctx, job.UserID, domain.Today())
	if err != nil {
		log.Printf("Worker Error generating recap for %s: %v", job.UserID, err)
		return
	}
	log.Printf("Weekly recap refreshed for %s: %s", job.UserID, recap.Highlight)
}
