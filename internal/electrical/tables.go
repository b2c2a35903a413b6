package electrical

import "fmt"

// UnitSystem selects the measurement convention for wire sizing.
type UnitSystem string

const (
	SAE UnitSystem = "sae" // AWG gauges, lengths in feet, Ω per 1000 ft
	IEC UnitSystem = "iec" // mm² cross sections, lengths in meters, Ω per km
)

// ParseUnitSystem validates a wire-format unit system name.
func ParseUnitSystem(s string) (UnitSystem, error) {
	switch u := UnitSystem(s); u {
	case SAE, IEC:
		return u, nil
	}
	return "", fmt.Errorf("unknown unit system %q: expected sae or iec", s)
}

// Conductor selects the wire construction the resistance data applies to.
type Conductor string

const (
	Solid    Conductor = "solid"
	Stranded Conductor = "stranded"
)

// ParseConductor validates a wire-format conductor construction name.
func ParseConductor(s string) (Conductor, error) {
	switch c := Conductor(s); c {
	case Solid, Stranded:
		return c, nil
	}
	return "", fmt.Errorf("unknown conductor %q: expected solid or stranded", s)
}

// GaugeResistance is one row of the reference data: a wire size and its
// resistance per 1000 length-units (feet for SAE, meters for IEC) for
// both constructions. These are published annealed-copper values at 20 °C
// and are reference data: do not recompute them from resistivity.
type GaugeResistance struct {
	Gauge    string  `json:"gauge"`
	Solid    float64 `json:"solid"`
	Stranded float64 `json:"stranded"`
}

var saeTable = []GaugeResistance{
	{"0000 AWG", 0.049, 0.05},
	{"000 AWG", 0.0618, 0.063},
	{"00 AWG", 0.0779, 0.0795},
	{"0 AWG", 0.0983, 0.1},
	{"1 AWG", 0.1239, 0.126},
	{"2 AWG", 0.1563, 0.159},
	{"4 AWG", 0.2485, 0.253},
	{"6 AWG", 0.3951, 0.403},
	{"8 AWG", 0.6282, 0.64},
	{"10 AWG", 0.9989, 1.02},
	{"12 AWG", 1.588, 1.62},
	{"14 AWG", 2.525, 2.58},
	{"16 AWG", 4.016, 4.1},
	{"18 AWG", 6.385, 6.51},
}

// IEC 60228 maximum resistance, class 1 (solid) and class 2 (stranded).
var iecTable = []GaugeResistance{
	{"0.5 mm²", 36.0, 39.0},
	{"0.75 mm²", 24.5, 26.0},
	{"1.0 mm²", 18.1, 19.5},
	{"1.5 mm²", 12.1, 13.3},
	{"2.5 mm²", 7.41, 7.98},
	{"4 mm²", 4.61, 4.95},
	{"6 mm²", 3.08, 3.3},
	{"10 mm²", 1.83, 1.91},
	{"16 mm²", 1.15, 1.21},
	{"25 mm²", 0.727, 0.78},
	{"35 mm²", 0.524, 0.554},
	{"50 mm²", 0.387, 0.386},
	{"70 mm²", 0.268, 0.272},
	{"95 mm²", 0.193, 0.206},
	{"120 mm²", 0.153, 0.161},
}

func table(sys UnitSystem) []GaugeResistance {
	switch sys {
	case SAE:
		return saeTable
	case IEC:
		return iecTable
	}
	return nil
}

// Reference returns a copy of the resistance rows for a unit system so
// callers can render the raw table without being able to mutate it.
func Reference(sys UnitSystem) []GaugeResistance {
	rows := table(sys)
	if rows == nil {
		return nil
	}
	out := make([]GaugeResistance, len(rows))
	copy(out, rows)
	return out
}

// Gauges lists the wire sizes of a unit system in table order
// (thickest first for SAE, thinnest first for IEC).
func Gauges(sys UnitSystem) []string {
	rows := table(sys)
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Gauge)
	}
	return out
}

// Resistance looks up Ω per 1000 length-units for a gauge.
func Resistance(sys UnitSystem, c Conductor, gauge string) (float64, bool) {
	for _, r := range table(sys) {
		if r.Gauge == gauge {
			return r.pick(c), true
		}
	}
	return 0, false
}

func (r GaugeResistance) pick(c Conductor) float64 {
	if c == Stranded {
		return r.Stranded
	}
	return r.Solid
}
