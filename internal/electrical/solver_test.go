package electrical

import (
	"errors"
	"math"
	"testing"
)

func mustApply(t *testing.T, s State, f Field, raw string) State {
	t.Helper()
	out, err := Apply(s, f, raw)
	if err != nil {
		t.Fatalf("Apply(%s, %q) error: %v", f, raw, err)
	}
	return out
}

func wantValue(t *testing.T, q Quantity, want float64, label string) {
	t.Helper()
	if !q.Valid {
		t.Fatalf("%s is unset, want %v", label, want)
	}
	if q.Value != want {
		t.Fatalf("%s = %v, want %v", label, q.Value, want)
	}
}

func TestApply_DerivesOhmsAndWattsFromVoltsAmps(t *testing.T) {
	s := mustApply(t, State{}, Volts, "120")
	s = mustApply(t, s, Amps, "2")

	wantValue(t, s.Watts, 240, "watts")
	wantValue(t, s.Ohms, 60, "ohms")
}

func TestApply_OrderOfAuthoritativePairDoesNotMatter(t *testing.T) {
	fields := []Field{Volts, Amps, Ohms, Watts}
	values := map[Field]string{Volts: "120", Amps: "2", Ohms: "60", Watts: "240"}

	for i, a := range fields {
		for _, b := range fields[i+1:] {
			ab := mustApply(t, mustApply(t, State{}, a, values[a]), b, values[b])
			ba := mustApply(t, mustApply(t, State{}, b, values[b]), a, values[a])

			for _, f := range fields {
				qa, qb := ab.Get(f), ba.Get(f)
				if qa != qb {
					t.Fatalf("pair {%s,%s}: %s differs, %v vs %v", a, b, f, qa, qb)
				}
			}
		}
	}
}

func TestApply_IdentityTable(t *testing.T) {
	cases := []struct {
		name   string
		first  Field
		fv     string
		second Field
		sv     string
		want   map[Field]float64
	}{
		{"amps_ohms", Amps, "2", Ohms, "60", map[Field]float64{Volts: 120, Watts: 240}},
		{"amps_watts", Amps, "2", Watts, "240", map[Field]float64{Volts: 120, Ohms: 60}},
		{"ohms_volts", Ohms, "60", Volts, "120", map[Field]float64{Amps: 2, Watts: 240}},
		{"ohms_watts", Ohms, "60", Watts, "240", map[Field]float64{Volts: 120, Amps: 2}},
		{"volts_watts", Volts, "120", Watts, "240", map[Field]float64{Amps: 2, Ohms: 60}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := mustApply(t, mustApply(t, State{}, tc.first, tc.fv), tc.second, tc.sv)
			for f, v := range tc.want {
				wantValue(t, s.Get(f), v, string(f))
			}
		})
	}
}

func TestApply_ThirdEditEvictsOldestField(t *testing.T) {
	s := mustApply(t, State{}, Volts, "120")
	s = mustApply(t, s, Amps, "2")
	s = mustApply(t, s, Ohms, "10")

	if len(s.LastUpdated) != 2 || s.LastUpdated[0] != Ohms || s.LastUpdated[1] != Amps {
		t.Fatalf("LastUpdated = %v, want [ohms amps]", s.LastUpdated)
	}
	// volts and watts now derive from {amps, ohms}, not the stale volts.
	wantValue(t, s.Volts, 20, "volts")
	wantValue(t, s.Watts, 40, "watts")
}

func TestApply_SingleEditDerivesNothing(t *testing.T) {
	s := mustApply(t, State{}, Watts, "500")

	wantValue(t, s.Watts, 500, "watts")
	for _, f := range []Field{Volts, Amps, Ohms} {
		if s.Get(f).Valid {
			t.Fatalf("%s should stay unset after a single edit, got %v", f, s.Get(f))
		}
	}
}

func TestApply_EmptyValueClearsEverything(t *testing.T) {
	s := mustApply(t, State{}, Volts, "120")
	s = mustApply(t, s, Amps, "2")
	s = mustApply(t, s, Amps, "")

	if len(s.LastUpdated) != 0 {
		t.Fatalf("expected cleared MRU list, got %v", s.LastUpdated)
	}
	for _, f := range []Field{Volts, Amps, Ohms, Watts} {
		if s.Get(f).Valid {
			t.Fatalf("%s should be unset after clear", f)
		}
	}
}

func TestApply_NegativeInputStoredAsAbsolute(t *testing.T) {
	s := mustApply(t, State{}, Volts, "-120")
	wantValue(t, s.Volts, 120, "volts")

	s = mustApply(t, s, Amps, "-2")
	wantValue(t, s.Amps, 2, "amps")
	wantValue(t, s.Watts, 240, "watts")
}

func TestApply_RejectsNonNumericInput(t *testing.T) {
	base := mustApply(t, mustApply(t, State{}, Volts, "120"), Amps, "2")

	for _, raw := range []string{"abc", "1.2.3", "NaN", "+Inf", "-Inf", "Infinity"} {
		got, err := Apply(base, Ohms, raw)
		if !errors.Is(err, ErrBadNumber) {
			t.Fatalf("Apply(ohms, %q): err = %v, want ErrBadNumber", raw, err)
		}
		if got.Ohms != base.Ohms || len(got.LastUpdated) != 2 || got.LastUpdated[0] != Amps {
			t.Fatalf("Apply(ohms, %q) changed state: %+v", raw, got)
		}
	}
}

func TestApply_ZeroDivisionNormalizesToZero(t *testing.T) {
	s := mustApply(t, State{}, Volts, "0")
	s = mustApply(t, s, Amps, "0")

	// 0/0 would be NaN; stored values must come back as plain zero.
	wantValue(t, s.Ohms, 0, "ohms")
	wantValue(t, s.Watts, 0, "watts")
}

func TestApply_DerivedValuesRoundedToTwoPlaces(t *testing.T) {
	s := mustApply(t, State{}, Volts, "120")
	s = mustApply(t, s, Amps, "8.33")

	wantValue(t, s.Watts, 999.6, "watts")
	wantValue(t, s.Ohms, 14.41, "ohms")
}

func TestApply_SqrtIdentityForOhmsWatts(t *testing.T) {
	s := mustApply(t, State{}, Ohms, "60")
	s = mustApply(t, s, Watts, "240")

	wantValue(t, s.Volts, 120, "volts")
	wantValue(t, s.Amps, 2, "amps")
}

func TestRecentFields_TouchKeepsAtMostTwoMostRecent(t *testing.T) {
	var r RecentFields

	r = r.Touch(Volts)
	if len(r) != 1 || r[0] != Volts {
		t.Fatalf("after first touch: %v", r)
	}

	r = r.Touch(Amps)
	if len(r) != 2 || r[0] != Amps || r[1] != Volts {
		t.Fatalf("after second touch: %v", r)
	}

	// Re-touching an existing field moves it to the front, no duplicate.
	r = r.Touch(Volts)
	if len(r) != 2 || r[0] != Volts || r[1] != Amps {
		t.Fatalf("after re-touch: %v", r)
	}

	r = r.Touch(Watts)
	if len(r) != 2 || r[0] != Watts || r[1] != Volts {
		t.Fatalf("after eviction: %v", r)
	}
}

func TestRecentFields_PairIsSorted(t *testing.T) {
	r := RecentFields{}.Touch(Watts).Touch(Amps)
	a, b, ok := r.Pair()
	if !ok || a != Amps || b != Watts {
		t.Fatalf("Pair() = %v %v %v", a, b, ok)
	}

	if _, _, ok := (RecentFields{Volts}).Pair(); ok {
		t.Fatalf("Pair() should report ok=false with one entry")
	}
}

func TestParseField(t *testing.T) {
	for _, s := range []string{"volts", "amps", "ohms", "watts"} {
		if _, err := ParseField(s); err != nil {
			t.Fatalf("ParseField(%q): %v", s, err)
		}
	}
	if _, err := ParseField("joules"); err == nil {
		t.Fatalf("ParseField should reject unknown names")
	}
}

func TestRoundTo(t *testing.T) {
	if got := roundTo(14.405762, 2); got != 14.41 {
		t.Fatalf("roundTo = %v", got)
	}
	if got := roundTo(math.Pi, 2); got != 3.14 {
		t.Fatalf("roundTo = %v", got)
	}
}
