package measure

import "math"

// niceValues holds the ascending reference amounts that read naturally in
// a recipe (250 ml rather than 237 ml), keyed by metric unit.
var niceValues = map[string][]float64{
	"ml": {5, 10, 15, 25, 50, 75, 100, 125, 150, 175, 200, 250, 300, 350, 400, 450, 500, 750, 1000},
	"g":  {5, 10, 15, 25, 50, 75, 100, 125, 150, 175, 200, 225, 250, 300, 350, 400, 450, 500, 750, 1000},
	"L":  {0.25, 0.5, 0.75, 1, 1.5, 2, 2.5, 3, 4, 5},
	"cm": {1, 2, 2.5, 3, 4, 5, 6, 7, 8, 9, 10, 12, 15, 20, 25, 30},
}

// smartRoundTolerance is the maximum relative error allowed when snapping
// a converted value to a nice reference amount.
const smartRoundTolerance = 0.15

// SmartRound rounds v to the reference value closest to it when that value
// is within 15% of v. Equidistant references resolve to the lower one.
// Values with no close reference, units without a reference list, and
// non-positive or non-finite inputs fall back to magnitude-based rounding:
// nearest 5 at or above 100, nearest integer at or above 10, otherwise one
// decimal place.
func SmartRound(v float64, unit string) float64 {
	refs, ok := niceValues[unit]
	if !ok {
		return roundTo(v, 1)
	}

	if v > 0 && !math.IsInf(v, 0) {
		closest := refs[0]
		for _, ref := range refs[1:] {
			// Strict improvement keeps the lower value on ties.
			if math.Abs(ref-v) < math.Abs(closest-v) {
				closest = ref
			}
		}
		if math.Abs(closest-v)/v <= smartRoundTolerance {
			return closest
		}
	}

	switch {
	case v >= 100:
		return math.Round(v/5) * 5
	case v >= 10:
		return math.Round(v)
	default:
		return roundTo(v, 1)
	}
}

func roundTo(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}
