package service

import (
	"context"
	"time"

	"wirecalc/internal/models"
	"wirecalc/internal/repository"
)

type MonitoringService struct {
	stateRepo repository.StateRepo
}

func NewMonitoringService(stateRepo repository.StateRepo) *MonitoringService {
	return &MonitoringService{stateRepo: stateRepo}
}

// GetState returns the latest persisted calculator state.
// If nothing was persisted yet, returns a baseline empty form.
func (s *MonitoringService) GetState(ctx context.Context) (models.CalculatorState, error) {
	state, err := s.stateRepo.Load(ctx)
	if err != nil {
		return models.CalculatorState{}, err
	}
	if state.ID == 0 {
		return s.baselineState(), nil
	}
	state.UpdatedAt = toUTC(state.UpdatedAt)
	return state, nil
}

// baselineState is the empty form: all quantities unset, nothing edited.
func (s *MonitoringService) baselineState() models.CalculatorState {
	return models.CalculatorState{
		ID:        stateRowID, // DB schema enforces single-row state with id=1
		UpdatedAt: time.Now().UTC(),
	}
}

// toUTC normalizes non-zero time to UTC, preserving zero values.
func toUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
