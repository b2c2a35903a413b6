package electrical

// DefaultCurrents is the current range the loss table is rendered over
// when the caller does not supply one.
var DefaultCurrents = []float64{1, 5, 10, 20, 40, 100}

// WarnPercent is the loss percentage above which a cell is highlighted.
const WarnPercent = 2.0

// LossPercent estimates the share of applied power lost to resistive
// voltage drop over a wire run. ohmsPerThousand is the gauge's resistance
// per 1000 length-units and oneWayLength the source-to-load distance in
// the unit the system implies (feet for SAE, meters for IEC); the return
// conductor doubles the effective length.
//
// Returns 0 when volts is not positive. The result is unbounded above;
// values at or past 100 are not meaningful and are flagged as overload
// by BuildLossTable.
func LossPercent(sys UnitSystem, volts, amps, ohmsPerThousand, oneWayLength float64) float64 {
	if volts <= 0 {
		return 0
	}
	perUnit := ohmsPerThousand / 1000
	roundTrip := 2 * oneWayLength * perUnit
	drop := amps * roundTrip
	return drop / volts * 100
}

// LossCell is one (gauge, current) entry of a rendered loss table.
type LossCell struct {
	Amps    float64 `json:"amps"`
	Percent float64 `json:"percent"`
	// Warn marks losses past WarnPercent that are still deliverable.
	Warn bool `json:"warn,omitempty"`
	// Overload marks losses at or past 100%, where the run cannot
	// deliver the requested current and the percentage is meaningless.
	Overload bool `json:"overload,omitempty"`
}

// LossRow holds the loss cells for a single gauge.
type LossRow struct {
	Gauge           string     `json:"gauge"`
	OhmsPerThousand float64    `json:"ohms_per_thousand"`
	Cells           []LossCell `json:"cells"`
}

// LossTable is the full gauge × current tabulation for one selection.
type LossTable struct {
	System       UnitSystem `json:"system"`
	Conductor    Conductor  `json:"conductor"`
	Volts        float64    `json:"volts"`
	OneWayLength float64    `json:"one_way_length"`
	Currents     []float64  `json:"currents"`
	Rows         []LossRow  `json:"rows"`
}

// BuildLossTable tabulates LossPercent for every gauge of the selected
// system and construction across the given currents. An empty currents
// slice falls back to DefaultCurrents. Percentages are rounded to two
// places for display.
func BuildLossTable(sys UnitSystem, c Conductor, volts, oneWayLength float64, currents []float64) LossTable {
	if len(currents) == 0 {
		currents = DefaultCurrents
	}
	t := LossTable{
		System:       sys,
		Conductor:    c,
		Volts:        volts,
		OneWayLength: oneWayLength,
		Currents:     currents,
	}
	for _, g := range table(sys) {
		r := g.pick(c)
		row := LossRow{Gauge: g.Gauge, OhmsPerThousand: r, Cells: make([]LossCell, 0, len(currents))}
		for _, a := range currents {
			pct := LossPercent(sys, volts, a, r, oneWayLength)
			cell := LossCell{Amps: a, Percent: roundTo(pct, derivedDecimals)}
			switch {
			case pct >= 100:
				cell.Overload = true
			case pct > WarnPercent:
				cell.Warn = true
			}
			row.Cells = append(row.Cells, cell)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
