package repository

import (
	"context"
	"database/sql"
	"time"

	"wirecalc/internal/models"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

type StateRepo interface {
	Save(ctx context.Context, s models.CalculatorState) error
	Load(ctx context.Context) (models.CalculatorState, error)
}

type EventRepo interface {
	Append(ctx context.Context, e models.CalcEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.CalcEvent, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type Repository struct {
	StateRepo StateRepo
	EventRepo EventRepo
	Auth      Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		StateRepo: NewStateSQLite(db),
		EventRepo: NewEventSQLite(db),
		Auth:      NewUserRepository(db),
	}
}
