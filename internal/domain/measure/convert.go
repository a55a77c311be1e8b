// Package measure converts between US customary and metric kitchen
// measurements and formats quantities for display. Conversion is
// display-only: callers render the converted pair but never persist it.
package measure

import "strings"

// Target selects which measurement system a quantity is displayed in.
type Target string

const (
	// TargetOriginal displays quantities exactly as stored.
	TargetOriginal Target = "original"
	// TargetMetric displays quantities converted to metric units.
	TargetMetric Target = "metric"
)

// Quantity pairs an amount with its unit for display.
type Quantity struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type conversion struct {
	unit   string
	factor float64
}

// usToMetric maps lower-cased US units to their metric equivalent and
// multiplicative factor.
var usToMetric = map[string]conversion{
	// Volume
	"cup":          {"ml", 236.588},
	"cups":         {"ml", 236.588},
	"tbsp":         {"ml", 14.787},
	"tablespoon":   {"ml", 14.787},
	"tablespoons":  {"ml", 14.787},
	"tsp":          {"ml", 4.929},
	"teaspoon":     {"ml", 4.929},
	"teaspoons":    {"ml", 4.929},
	"fl oz":        {"ml", 29.574},
	"fluid ounce":  {"ml", 29.574},
	"fluid ounces": {"ml", 29.574},
	"quart":        {"L", 0.946},
	"quarts":       {"L", 0.946},
	"gallon":       {"L", 3.785},
	"gallons":      {"L", 3.785},
	"pint":         {"ml", 473.176},
	"pints":        {"ml", 473.176},

	// Weight
	"oz":     {"g", 28.3495},
	"ounce":  {"g", 28.3495},
	"ounces": {"g", 28.3495},
	"lb":     {"g", 453.592},
	"lbs":    {"g", 453.592},
	"pound":  {"g", 453.592},
	"pounds": {"g", 453.592},

	// Length
	"inch":   {"cm", 2.54},
	"inches": {"cm", 2.54},
	"in":     {"cm", 2.54},
}

// metricToUS maps lower-cased metric units back to a US unit. Used only
// for display; the stored values always stay in their original system.
var metricToUS = map[string]conversion{
	"ml": {"tsp", 0.203},
	"l":  {"quart", 1.057},
	"g":  {"oz", 0.0353},
	"kg": {"lb", 2.205},
	"cm": {"inch", 0.394},
}

// Convert maps q into the requested target system. TargetOriginal (and any
// unrecognized target) is an explicit pass-through so callers can reset a
// previously converted display value back to the stored original.
func Convert(q Quantity, target Target) Quantity {
	if target != TargetMetric {
		return q
	}
	amount, unit := ToMetric(q.Amount, q.Unit)
	return Quantity{Amount: amount, Unit: unit}
}

// ToMetric converts a US customary amount to metric with smart rounding.
// Units without a table entry pass through unchanged.
func ToMetric(amount float64, unit string) (float64, string) {
	conv, ok := usToMetric[normalizeUnit(unit)]
	if !ok {
		return amount, unit
	}
	return SmartRound(amount*conv.factor, conv.unit), conv.unit
}

// ToUS converts a metric amount to US customary units, rounded to two
// decimal places. Units without a table entry pass through unchanged.
func ToUS(amount float64, unit string) (float64, string) {
	conv, ok := metricToUS[normalizeUnit(unit)]
	if !ok {
		return amount, unit
	}
	return roundTo(amount*conv.factor, 2), conv.unit
}

func normalizeUnit(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}
