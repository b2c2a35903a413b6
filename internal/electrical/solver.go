package electrical

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// derivedDecimals controls rounding of derived values before storage; two
// places matches what the calculator form displays.
const derivedDecimals = 2

// ErrBadNumber is returned when a raw input value does not parse as a
// finite number. The previous state is returned unchanged in that case.
var ErrBadNumber = errors.New("value is not a number")

// Apply folds one user edit into the state and returns the new state.
//
// An empty raw value clears the whole form. A non-numeric value
// (including NaN and infinities) is rejected at the boundary. Negative
// input is stored as its absolute value. The edited field becomes the
// most recent entry of LastUpdated; once two distinct fields have been
// edited, the other two quantities are recomputed from that pair via
// Ohm's law (V = I·R) and the power law (P = V·I).
func Apply(s State, f Field, raw string) (State, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return State{}, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return s, fmt.Errorf("%w: %q", ErrBadNumber, raw)
	}

	s.put(f, Known(math.Abs(v)))
	s.LastUpdated = s.LastUpdated.Touch(f)

	a, b, ok := s.LastUpdated.Pair()
	if !ok {
		// Fewer than two fields edited so far; nothing to derive.
		return s, nil
	}
	s.derive(a, b)
	return s, nil
}

// derive recomputes the two fields outside the authoritative pair.
// a and b arrive in lexicographic order, so six cases cover every pair.
// Intermediate values stay unrounded; only stored results are rounded.
func (s *State) derive(a, b Field) {
	switch {
	case a == Amps && b == Ohms:
		volts := s.Amps.Value * s.Ohms.Value
		s.Volts = derived(volts)
		s.Watts = derived(volts * s.Amps.Value)
	case a == Amps && b == Volts:
		s.Ohms = derived(s.Volts.Value / s.Amps.Value)
		s.Watts = derived(s.Volts.Value * s.Amps.Value)
	case a == Amps && b == Watts:
		volts := s.Watts.Value / s.Amps.Value
		s.Volts = derived(volts)
		s.Ohms = derived(volts / s.Amps.Value)
	case a == Ohms && b == Volts:
		amps := s.Volts.Value / s.Ohms.Value
		s.Amps = derived(amps)
		s.Watts = derived(s.Volts.Value * amps)
	case a == Ohms && b == Watts:
		volts := math.Sqrt(s.Watts.Value * s.Ohms.Value)
		s.Volts = derived(volts)
		s.Amps = derived(volts / s.Ohms.Value)
	case a == Volts && b == Watts:
		amps := s.Watts.Value / s.Volts.Value
		s.Amps = derived(amps)
		s.Ohms = derived(s.Volts.Value / amps)
	}
}

// derived rounds a computed value for storage and normalizes the
// degenerate division results (0/0, x/0) to zero instead of NaN/Inf.
func derived(v float64) Quantity {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Known(0)
	}
	return Known(roundTo(v, derivedDecimals))
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
