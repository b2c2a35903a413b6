package service

import (
	"context"
	"time"

	"wirecalc/internal/electrical"
	"wirecalc/internal/models"
	"wirecalc/internal/repository"

	"github.com/google/uuid"
)

// stateRowID matches the single-row constraint of calculator_state.
const stateRowID = 1

// CalculatorService runs the Ohm's-law reducer over the persisted state.
type CalculatorService struct {
	stateRepo repository.StateRepo
	eventRepo repository.EventRepo
}

func NewCalculatorService(stateRepo repository.StateRepo, eventRepo repository.EventRepo) *CalculatorService {
	return &CalculatorService{stateRepo: stateRepo, eventRepo: eventRepo}
}

// Input applies one field edit: the edited field becomes authoritative,
// derived quantities are recomputed, and the result is persisted. An
// empty value clears the form. Bad field names and non-numeric values
// come back as errors and leave the stored state untouched.
func (s *CalculatorService) Input(ctx context.Context, p InputParams) (models.CalculatorState, error) {
	now := time.Now().UTC()

	field, err := electrical.ParseField(p.Field)
	if err != nil {
		return models.CalculatorState{}, err
	}

	st, err := s.stateRepo.Load(ctx)
	if err != nil {
		return models.CalculatorState{}, err
	}

	next, err := electrical.Apply(st.State, field, p.Value)
	if err != nil {
		return models.CalculatorState{}, err
	}

	st.ID = stateRowID
	st.State = next
	st.UpdatedAt = now
	if err := s.stateRepo.Save(ctx, st); err != nil {
		return models.CalculatorState{}, err
	}

	ev := models.CalcEvent{
		EventID:    uuid.NewString(),
		OccurredAt: now,
	}
	if p.Value == "" {
		ev.Type = EventReset
		ev.Description = "Form cleared via empty " + p.Field
	} else {
		ev.Type = EventInput
		ev.Description = "Edited " + p.Field
		ev.Metadata = map[string]any{
			"field": p.Field,
			"value": p.Value,
			"state": next,
		}
	}
	if err := s.eventRepo.Append(ctx, ev); err != nil {
		return models.CalculatorState{}, err
	}

	return st, nil
}

// Reset clears all four quantities and the authoritative pair.
func (s *CalculatorService) Reset(ctx context.Context) (models.CalculatorState, error) {
	now := time.Now().UTC()

	st := models.CalculatorState{
		ID:        stateRowID,
		UpdatedAt: now,
	}
	if err := s.stateRepo.Save(ctx, st); err != nil {
		return models.CalculatorState{}, err
	}

	if err := s.eventRepo.Append(ctx, models.CalcEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  now,
		Type:        EventReset,
		Description: "Calculator reset",
	}); err != nil {
		return models.CalculatorState{}, err
	}

	return st, nil
}
