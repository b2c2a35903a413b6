package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"wirecalc/internal/electrical"
	"wirecalc/internal/models"
)

type StateSQLite struct {
	db *sql.DB
}

func NewStateSQLite(db *sql.DB) *StateSQLite {
	return &StateSQLite{db: db}
}

const (
	calcStateRowID = 1

	upsertStateSQL = `
		INSERT INTO calculator_state (id, volts, amps, ohms, watts, last_updated, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			volts=excluded.volts,
			amps=excluded.amps,
			ohms=excluded.ohms,
			watts=excluded.watts,
			last_updated=excluded.last_updated,
			updated_at=excluded.updated_at
	`

	selectStateSQL = `
		SELECT id, volts, amps, ohms, watts, last_updated, updated_at
		FROM calculator_state WHERE id=?
	`
)

// quantityToNull maps an unset Quantity to SQL NULL.
func quantityToNull(q electrical.Quantity) sql.NullFloat64 {
	return sql.NullFloat64{Float64: q.Value, Valid: q.Valid}
}

func nullToQuantity(n sql.NullFloat64) electrical.Quantity {
	if !n.Valid {
		return electrical.Quantity{}
	}
	return electrical.Known(n.Float64)
}

// marshalRecent converts the MRU field list to a JSON string column.
func marshalRecent(r electrical.RecentFields) (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalRecent(s string) (electrical.RecentFields, error) {
	if s == "" || s == "null" {
		return nil, nil
	}
	var r electrical.RecentFields
	if err := json.Unmarshal([]byte(s), &r); err != nil {
		return nil, err
	}
	return r, nil
}

// Save upserts the calculator_state row (id always 1).
func (r *StateSQLite) Save(ctx context.Context, state models.CalculatorState) error {
	recentJSON, err := marshalRecent(state.LastUpdated)
	if err != nil {
		return err
	}

	// persist UpdatedAt as UTC; set if zero
	tsUTC := state.UpdatedAt
	if tsUTC.IsZero() {
		tsUTC = time.Now().UTC()
	} else {
		tsUTC = tsUTC.UTC()
	}

	_, err = r.db.ExecContext(ctx, upsertStateSQL,
		calcStateRowID,
		quantityToNull(state.Volts),
		quantityToNull(state.Amps),
		quantityToNull(state.Ohms),
		quantityToNull(state.Watts),
		recentJSON,
		tsUTC,
	)
	return err
}

// Load fetches the single calculator_state row (id=1).
// A missing row yields the zero value and a nil error.
func (r *StateSQLite) Load(ctx context.Context) (models.CalculatorState, error) {
	row := r.db.QueryRowContext(ctx, selectStateSQL, calcStateRowID)

	var (
		s          models.CalculatorState
		volts      sql.NullFloat64
		amps       sql.NullFloat64
		ohms       sql.NullFloat64
		watts      sql.NullFloat64
		recentJSON string
	)
	if err := row.Scan(
		&s.ID,
		&volts,
		&amps,
		&ohms,
		&watts,
		&recentJSON,
		&s.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CalculatorState{}, nil // no state yet
		}
		return models.CalculatorState{}, err
	}

	recent, err := unmarshalRecent(recentJSON)
	if err != nil {
		return models.CalculatorState{}, err
	}

	s.Volts = nullToQuantity(volts)
	s.Amps = nullToQuantity(amps)
	s.Ohms = nullToQuantity(ohms)
	s.Watts = nullToQuantity(watts)
	s.LastUpdated = recent
	s.UpdatedAt = s.UpdatedAt.UTC()

	return s, nil
}
