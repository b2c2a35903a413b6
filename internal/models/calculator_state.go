package models

import (
	"time"

	"wirecalc/internal/electrical"
)

// CalculatorState is the persisted snapshot of the Ohm's-law form.
// A single row (id=1) holds it; the embedded electrical.State carries the
// four quantities and the authoritative-pair list.
type CalculatorState struct {
	ID int `json:"id"`
	electrical.State
	UpdatedAt time.Time `json:"updated_at"`
}
