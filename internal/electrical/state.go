// Package electrical implements the Ohm's-law solver and the wire
// power-loss estimator behind the calculator API. Everything here is
// pure: state goes in, new state comes out, no I/O and no clocks.
package electrical

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Field identifies one of the four related electrical quantities.
type Field string

const (
	Volts Field = "volts"
	Amps  Field = "amps"
	Ohms  Field = "ohms"
	Watts Field = "watts"
)

// ErrUnknownField is returned for field names outside the four quantities.
var ErrUnknownField = errors.New("unknown field")

// ParseField validates a wire-format field name.
func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case Volts, Amps, Ohms, Watts:
		return f, nil
	}
	return "", fmt.Errorf("%w %q: expected volts, amps, ohms or watts", ErrUnknownField, s)
}

// Quantity is a non-negative electrical value that may be unset.
// Unset models an empty input box, which is not the same as zero.
type Quantity struct {
	Value float64
	Valid bool
}

// Known returns a set Quantity holding v.
func Known(v float64) Quantity {
	return Quantity{Value: v, Valid: true}
}

// MarshalJSON encodes an unset Quantity as null, a set one as a number.
func (q Quantity) MarshalJSON() ([]byte, error) {
	if !q.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(q.Value)
}

func (q *Quantity) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*q = Quantity{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*q = Known(v)
	return nil
}

// maxRecent caps the MRU list: exactly two fields are ever authoritative.
const maxRecent = 2

// RecentFields tracks which fields the user edited, most recent first.
// Once two distinct entries exist they form the authoritative pair the
// remaining quantities are derived from.
type RecentFields []Field

// Touch returns the list with f moved to the front, truncated to capacity.
func (r RecentFields) Touch(f Field) RecentFields {
	out := make(RecentFields, 0, maxRecent)
	out = append(out, f)
	for _, g := range r {
		if g == f {
			continue
		}
		if len(out) == maxRecent {
			break
		}
		out = append(out, g)
	}
	return out
}

// Pair reports the authoritative pair in lexicographic order.
// ok is false until two distinct fields have been edited.
func (r RecentFields) Pair() (a, b Field, ok bool) {
	if len(r) < maxRecent {
		return "", "", false
	}
	a, b = r[0], r[1]
	if b < a {
		a, b = b, a
	}
	return a, b, true
}

// Contains reports whether f is one of the tracked fields.
func (r RecentFields) Contains(f Field) bool {
	for _, g := range r {
		if g == f {
			return true
		}
	}
	return false
}

// State is the solver's working set: the four quantities plus the MRU
// list of edited fields. The zero value is the cleared form.
type State struct {
	Volts       Quantity     `json:"volts"`
	Amps        Quantity     `json:"amps"`
	Ohms        Quantity     `json:"ohms"`
	Watts       Quantity     `json:"watts"`
	LastUpdated RecentFields `json:"last_updated,omitempty"`
}

// Get returns the quantity stored under f; unknown fields read as unset.
func (s State) Get(f Field) Quantity {
	switch f {
	case Volts:
		return s.Volts
	case Amps:
		return s.Amps
	case Ohms:
		return s.Ohms
	case Watts:
		return s.Watts
	}
	return Quantity{}
}

func (s *State) put(f Field, q Quantity) {
	switch f {
	case Volts:
		s.Volts = q
	case Amps:
		s.Amps = q
	case Ohms:
		s.Ohms = q
	case Watts:
		s.Watts = q
	}
}
