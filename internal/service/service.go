package service

import (
	"context"
	"time"

	"wirecalc/internal/electrical"
	"wirecalc/internal/models"
	"wirecalc/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Calculator folds user edits into the persisted Ohm's-law form state.
type Calculator interface {
	Input(ctx context.Context, p InputParams) (models.CalculatorState, error)
	Reset(ctx context.Context) (models.CalculatorState, error)
}

// Monitoring exposes the current calculator snapshot read-only.
type Monitoring interface {
	GetState(ctx context.Context) (models.CalculatorState, error)
}

// LossTables renders wire power-loss tables from the reference data.
type LossTables interface {
	Gauges(system string) ([]electrical.GaugeResistance, error)
	Table(ctx context.Context, p LossParams) (electrical.LossTable, error)
}

// EventLog exposes the append-only audit trail with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.CalcEvent, error)
}

// Retention runs the background loop that prunes old audit events.
// Stop via context cancellation in main() for graceful shutdown.
type Retention interface {
	Run(ctx context.Context, tick time.Duration)
}

// Service aggregates all sub-services behind one wiring point.
type Service struct {
	Calculator
	Monitoring
	LossTables
	EventLog
	Retention
	Authorization
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository) *Service {
	return &Service{
		Calculator:    NewCalculatorService(repos.StateRepo, repos.EventRepo),
		Monitoring:    NewMonitoringService(repos.StateRepo),
		LossTables:    NewLossTableService(repos.StateRepo),
		EventLog:      NewEventLogService(repos.EventRepo),
		Retention:     NewRetentionService(repos.EventRepo, 0),
		Authorization: NewAuthService(repos.Auth),
	}
}
