package service

import (
	"context"
	"errors"
	"fmt"

	"wirecalc/internal/electrical"
	"wirecalc/internal/repository"
)

// LossTableService tabulates resistive losses for wire sizing. When no
// voltage is supplied it reuses the solver's current volts, so the form
// feeds straight into the wire estimator.
type LossTableService struct {
	stateRepo repository.StateRepo
}

func NewLossTableService(stateRepo repository.StateRepo) *LossTableService {
	return &LossTableService{stateRepo: stateRepo}
}

var (
	errNoVoltage      = errors.New("no voltage available: pass volts or enter it in the calculator first")
	errNegativeLength = errors.New("one-way length must not be negative")
)

// Gauges returns the resistance reference rows for a unit system.
func (s *LossTableService) Gauges(system string) ([]electrical.GaugeResistance, error) {
	sys, err := electrical.ParseUnitSystem(system)
	if err != nil {
		return nil, err
	}
	return electrical.Reference(sys), nil
}

// Table builds the gauge × current loss table for the given selection.
func (s *LossTableService) Table(ctx context.Context, p LossParams) (electrical.LossTable, error) {
	sys, err := electrical.ParseUnitSystem(p.System)
	if err != nil {
		return electrical.LossTable{}, err
	}
	cond, err := electrical.ParseConductor(p.Conductor)
	if err != nil {
		return electrical.LossTable{}, err
	}
	if p.OneWayLength < 0 {
		return electrical.LossTable{}, errNegativeLength
	}

	volts := p.Volts
	if volts <= 0 {
		st, err := s.stateRepo.Load(ctx)
		if err != nil {
			return electrical.LossTable{}, fmt.Errorf("load calculator state: %w", err)
		}
		if !st.Volts.Valid || st.Volts.Value <= 0 {
			return electrical.LossTable{}, errNoVoltage
		}
		volts = st.Volts.Value
	}

	return electrical.BuildLossTable(sys, cond, volts, p.OneWayLength, p.Currents), nil
}
