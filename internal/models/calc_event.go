package models

import "time"

// CalcEvent is a single audit-log entry for the calculator.
type CalcEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // INPUT | RESET | PRUNE
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
