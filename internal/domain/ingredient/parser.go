// Package ingredient parses free-text ingredient lines into structured
// records and renders them back for export. Parsing never fails: when a
// line cannot be decomposed, the whole line becomes the ingredient name so
// user input is always preserved.
package ingredient

import (
	"regexp"
	"strconv"
	"strings"
)

// Parsed is the structured form of a single ingredient line.
type Parsed struct {
	Quantity    *float64 `json:"quantity,omitempty"`
	Unit        string   `json:"unit,omitempty"`
	Name        string   `json:"name"`
	Preparation string   `json:"preparation,omitempty"`
	Optional    bool     `json:"optional,omitempty"`
}

var optionalMarker = regexp.MustCompile(`(?i)\s*\(\s*optional\s*\)\s*`)

// knownUnits is the explicit unit vocabulary. Matching is deliberately
// table-driven rather than pattern-based so that parsing stays
// deterministic. Tokens not listed here are treated as part of the name.
var knownUnits = map[string]bool{
	"cup": true, "cups": true,
	"tablespoon": true, "tablespoons": true, "tbsp": true,
	"teaspoon": true, "teaspoons": true, "tsp": true,
	"ounce": true, "ounces": true, "oz": true,
	"pound": true, "pounds": true, "lb": true, "lbs": true,
	"gram": true, "grams": true, "g": true,
	"kilogram": true, "kilograms": true, "kg": true,
	"milliliter": true, "milliliters": true, "ml": true,
	"liter": true, "liters": true, "l": true,
	"pinch": true, "dash": true,
	"clove": true, "cloves": true,
	"head": true, "heads": true,
	"slice": true, "slices": true,
	"piece": true, "pieces": true,
	"can": true, "cans": true,
	"package": true, "packages": true, "pkg": true,
	"bunch": true, "bunches": true,
	"sprig": true, "sprigs": true,
	"stalk": true, "stalks": true,
	"large": true, "medium": true, "small": true,
}

// twoWordUnits lists vocabulary entries that span two tokens.
var twoWordUnits = map[string]bool{
	"fl oz":        true,
	"fluid ounce":  true,
	"fluid ounces": true,
}

// ParseLine parses one ingredient line. The steps run in order and each
// consumes the text it matched: the "(optional)" marker, the preparation
// clause after the first comma, a leading quantity, then a known unit.
// Whatever remains is the name. If no name remains, the untouched input
// line becomes the name and every other field stays unset.
func ParseLine(text string) Parsed {
	original := strings.TrimSpace(text)
	work := original

	var p Parsed

	if optionalMarker.MatchString(work) {
		p.Optional = true
		work = strings.TrimSpace(optionalMarker.ReplaceAllString(work, " "))
	}

	// Only the first comma splits; later commas stay in the preparation.
	if i := strings.Index(work, ","); i >= 0 {
		p.Preparation = strings.TrimSpace(work[i+1:])
		work = strings.TrimSpace(work[:i])
	}

	fields := strings.Fields(work)
	idx := 0

	// A unit is only recognized after a quantity; without a leading
	// numeric token the whole remainder is the name.
	if qty, consumed, ok := parseLeadingQuantity(fields); ok {
		p.Quantity = &qty
		idx = consumed

		if unit, n := matchUnit(fields[idx:]); n > 0 {
			p.Unit = unit
			idx += n
		}
	}

	p.Name = strings.Join(fields[idx:], " ")
	if p.Name == "" {
		return Parsed{Name: original}
	}
	return p
}

// parseLeadingQuantity matches a numeric token at the start of fields:
// an integer, a decimal, a fraction a/b, or a mixed number "a b/c".
// It reports the parsed value and how many tokens it consumed.
func parseLeadingQuantity(fields []string) (float64, int, bool) {
	if len(fields) == 0 {
		return 0, 0, false
	}

	if len(fields) >= 2 {
		if whole, err := strconv.ParseFloat(fields[0], 64); err == nil {
			if frac, ok := parseFraction(fields[1]); ok {
				return whole + frac, 2, true
			}
		}
	}

	if q, ok := ParseQuantity(fields[0]); ok {
		return q, 1, true
	}
	return 0, 0, false
}

// matchUnit checks whether fields begin with a known unit token,
// preferring two-word units over single-word ones.
func matchUnit(fields []string) (string, int) {
	if len(fields) >= 2 {
		pair := strings.ToLower(fields[0] + " " + fields[1])
		if twoWordUnits[pair] {
			return pair, 2
		}
	}
	if len(fields) >= 1 {
		if tok := strings.ToLower(fields[0]); knownUnits[tok] {
			return tok, 1
		}
	}
	return "", 0
}

// commonQuantityFractions uses two-digit approximations for thirds so
// parsed values line up with how they are rendered back.
var commonQuantityFractions = map[string]float64{
	"1/8": 0.125,
	"1/4": 0.25,
	"1/3": 0.33,
	"3/8": 0.375,
	"1/2": 0.5,
	"5/8": 0.625,
	"2/3": 0.67,
	"3/4": 0.75,
	"7/8": 0.875,
}

// ParseQuantity parses a quantity string: "2", "2.5", "1/2", or "1 1/2".
func ParseQuantity(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	if parts := strings.Fields(value); len(parts) == 2 {
		whole, err := strconv.ParseFloat(parts[0], 64)
		if err == nil {
			if frac, ok := parseFraction(parts[1]); ok {
				return whole + frac, true
			}
		}
	}

	if frac, ok := parseFraction(value); ok {
		return frac, true
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseFraction(s string) (float64, bool) {
	if v, ok := commonQuantityFractions[s]; ok {
		return v, true
	}
	num, denom, found := strings.Cut(s, "/")
	if !found {
		return 0, false
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	d, err := strconv.ParseFloat(denom, 64)
	if err != nil || d == 0 {
		return 0, false
	}
	return n / d, true
}
