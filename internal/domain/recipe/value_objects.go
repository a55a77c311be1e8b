package recipe

import (
	"strings"

	"github.com/google/uuid"

	"github.com/homecook/cookbook/internal/domain/measure"
)

// Value objects - immutable descriptions of recipe content

// Ingredient is one line of a recipe's ingredient list. Quantity is nil
// for unmeasured ingredients ("salt to taste").
type Ingredient struct {
	ID          uuid.UUID
	Quantity    *float64
	Unit        string
	Name        string
	Preparation string
	Optional    bool
	SortOrder   int
}

// Validate validates the ingredient.
func (i Ingredient) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrIngredientNameRequired
	}
	if i.Quantity != nil && *i.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}

// Formatted renders the ingredient as a single display line,
// e.g. "1/2 cup butter, melted (optional)".
func (i Ingredient) Formatted() string {
	var b strings.Builder

	if i.Quantity != nil {
		b.WriteString(measure.FormatQuantityUnit(*i.Quantity, i.Unit))
		b.WriteByte(' ')
	}
	if i.Unit != "" {
		b.WriteString(i.Unit)
		b.WriteByte(' ')
	}
	b.WriteString(i.Name)
	if i.Preparation != "" {
		b.WriteString(", ")
		b.WriteString(i.Preparation)
	}
	if i.Optional {
		b.WriteString(" (optional)")
	}
	return b.String()
}

// Section is a named sub-group of a sectioned recipe ("Shell", "Filling")
// with its own ingredient list and instruction text. SortOrder preserves
// the source order for display.
type Section struct {
	Name         string
	Ingredients  []Ingredient
	Instructions string
	SortOrder    int
}

// Validate validates the section.
func (s Section) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrSectionNameRequired
	}
	if strings.TrimSpace(s.Instructions) == "" {
		return ErrSectionNeedsSteps
	}
	for _, ing := range s.Ingredients {
		if err := ing.Validate(); err != nil {
			return err
		}
	}
	return nil
}
