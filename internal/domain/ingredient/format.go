package ingredient

import (
	"strings"

	"github.com/homecook/cookbook/internal/domain/measure"
)

// String renders the parsed ingredient back into line form, the inverse
// of ParseLine: "1/2 cup butter, melted (optional)".
func (p Parsed) String() string {
	var b strings.Builder

	if p.Quantity != nil {
		b.WriteString(measure.FormatQuantityUnit(*p.Quantity, p.Unit))
		b.WriteByte(' ')
	}
	if p.Unit != "" {
		b.WriteString(p.Unit)
		b.WriteByte(' ')
	}
	b.WriteString(p.Name)
	if p.Preparation != "" {
		b.WriteString(", ")
		b.WriteString(p.Preparation)
	}
	if p.Optional {
		b.WriteString(" (optional)")
	}
	return b.String()
}

// FormatBlock renders parsed lines as a pipe-separated block, the wire
// form used by CSV export.
func FormatBlock(lines []Parsed) string {
	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = line.String()
	}
	return strings.Join(parts, "|")
}
