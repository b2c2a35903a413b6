package service

import "time"

// Event types recorded in the audit log.
const (
	EventInput = "INPUT"
	EventReset = "RESET"
	EventPrune = "PRUNE"
)

// InputParams carries one edit of the calculator form.
type InputParams struct {
	Field string // "volts" | "amps" | "ohms" | "watts"
	Value string // raw text; empty clears the whole form
}

// LossParams selects a power-loss tabulation.
type LossParams struct {
	System       string    // "sae" | "iec"
	Conductor    string    // "solid" | "stranded"
	Volts        float64   // 0 means "use the solver's current volts"
	OneWayLength float64   // feet for sae, meters for iec
	Currents     []float64 // empty means the default render range
}

// LogFilter supports history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "INPUT", "RESET", "PRUNE"
}
