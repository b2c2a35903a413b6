package service

import (
	"context"
	"time"

	"wirecalc/internal/models"
	"wirecalc/internal/repository"

	"github.com/google/uuid"
)

// defaultMaxEventAge bounds how much calculator history is kept.
const defaultMaxEventAge = 30 * 24 * time.Hour

// RetentionService prunes old audit events in the background.
type RetentionService struct {
	eventRepo repository.EventRepo
	maxAge    time.Duration
}

// NewRetentionService returns a pruner; maxAge <= 0 selects the default.
func NewRetentionService(eventRepo repository.EventRepo, maxAge time.Duration) *RetentionService {
	if maxAge <= 0 {
		maxAge = defaultMaxEventAge
	}
	return &RetentionService{eventRepo: eventRepo, maxAge: maxAge}
}

// Run ticks at the given interval until ctx is canceled.
func (s *RetentionService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			s.pruneOnce(ctx, now.UTC())
		}
	}
}

// pruneOnce deletes events older than the retention window and records a
// PRUNE marker when anything was removed.
func (s *RetentionService) pruneOnce(ctx context.Context, now time.Time) {
	cutoff := now.Add(-s.maxAge)
	n, err := s.eventRepo.DeleteBefore(ctx, cutoff)
	if err != nil || n == 0 {
		return
	}
	_ = s.eventRepo.Append(ctx, models.CalcEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  now,
		Type:        EventPrune,
		Description: "Old calculator events removed",
		Metadata: map[string]any{
			"removed": n,
			"cutoff":  cutoff,
		},
	})
}
