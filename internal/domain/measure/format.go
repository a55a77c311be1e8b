package measure

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// commonFractions maps decimal remainders to the kitchen fractions cooks
// expect to read. Thirds use the two-digit approximations the parser
// produces so round-trips stay stable.
var commonFractions = []struct {
	value float64
	text  string
}{
	{0.125, "1/8"},
	{0.25, "1/4"},
	{0.33, "1/3"},
	{0.34, "1/3"},
	{0.375, "3/8"},
	{0.5, "1/2"},
	{0.625, "5/8"},
	{0.66, "2/3"},
	{0.67, "2/3"},
	{0.75, "3/4"},
	{0.875, "7/8"},
}

// usVolumeUnits lists the units whose quantities read better as fractions
// ("1/2 cup" rather than "0.5 cup").
var usVolumeUnits = map[string]bool{
	"cup":        true,
	"cups":       true,
	"tbsp":       true,
	"tablespoon": true,
	"tsp":        true,
	"teaspoon":   true,
}

// FormatQuantity renders v for display. Whole numbers drop the decimal
// point entirely; everything else keeps a single decimal digit.
func FormatQuantity(v float64) string {
	v = roundTo(v, 1)
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// FormatQuantityUnit renders v in the context of its unit. US volume units
// get fraction rendering, with mixed numbers for quantities above one.
func FormatQuantityUnit(v float64, unit string) string {
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}

	if usVolumeUnits[normalizeUnit(unit)] {
		whole := math.Trunc(v)
		frac := roundTo(v-whole, 2)
		for _, cf := range commonFractions {
			if frac == cf.value {
				if whole > 0 {
					return fmt.Sprintf("%d %s", int64(whole), cf.text)
				}
				return cf.text
			}
		}
	}

	if v >= 10 {
		return strconv.FormatInt(int64(math.Round(v)), 10)
	}
	return FormatQuantity(v)
}

// FormatConverted renders a converted quantity with its unit, e.g.
// "250 ml" or "1 1/2 cups".
func FormatConverted(q Quantity) string {
	return strings.TrimSpace(FormatQuantityUnit(q.Amount, q.Unit) + " " + q.Unit)
}
