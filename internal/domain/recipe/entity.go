// Package recipe contains the core domain model for stored recipes.
// A recipe is either simple (one flat ingredient list plus instruction
// text) or sectioned (named sub-groups, each with its own ingredients and
// instructions, in display order).
package recipe

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/homecook/cookbook/internal/domain/shared"
)

// Recipe is the aggregate root for a stored recipe.
type Recipe struct {
	shared.AggregateRoot

	id          uuid.UUID
	title       string
	description string
	categoryID  *uuid.UUID

	prepTimeMinutes int
	cookTimeMinutes int
	restTimeMinutes int
	servings        int
	servingsUnit    string

	ingredients  []Ingredient
	sections     []Section
	instructions string

	notes    string
	source   string
	favorite bool

	createdAt time.Time
	updatedAt time.Time
}

// New creates a recipe with the minimum valid content: a title and either
// instruction text or sections (added afterwards).
func New(title, instructions string) (*Recipe, error) {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	now := time.Now()
	r := &Recipe{
		id:           uuid.New(),
		title:        title,
		instructions: strings.TrimSpace(instructions),
		servingsUnit: "servings",
		createdAt:    now,
		updatedAt:    now,
	}

	r.AddEvent(CreatedEvent{RecipeID: r.id, Title: title, CreatedAt: now})
	return r, nil
}

// Rehydrate reconstructs a recipe from persisted state without raising
// events or re-validating. Only repositories should call it.
func Rehydrate(
	id uuid.UUID,
	title, description string,
	categoryID *uuid.UUID,
	prepTime, cookTime, restTime, servings int,
	servingsUnit, instructions, notes, source string,
	favorite bool,
	ingredients []Ingredient,
	sections []Section,
	createdAt, updatedAt time.Time,
) *Recipe {
	return &Recipe{
		id:              id,
		title:           title,
		description:     description,
		categoryID:      categoryID,
		prepTimeMinutes: prepTime,
		cookTimeMinutes: cookTime,
		restTimeMinutes: restTime,
		servings:        servings,
		servingsUnit:    servingsUnit,
		instructions:    instructions,
		notes:           notes,
		source:          source,
		favorite:        favorite,
		ingredients:     ingredients,
		sections:        sections,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Accessors

func (r *Recipe) ID() uuid.UUID            { return r.id }
func (r *Recipe) Title() string            { return r.title }
func (r *Recipe) Description() string      { return r.description }
func (r *Recipe) CategoryID() *uuid.UUID   { return r.categoryID }
func (r *Recipe) PrepTimeMinutes() int     { return r.prepTimeMinutes }
func (r *Recipe) CookTimeMinutes() int     { return r.cookTimeMinutes }
func (r *Recipe) RestTimeMinutes() int     { return r.restTimeMinutes }
func (r *Recipe) Servings() int            { return r.servings }
func (r *Recipe) ServingsUnit() string     { return r.servingsUnit }
func (r *Recipe) Ingredients() []Ingredient { return r.ingredients }
func (r *Recipe) Sections() []Section      { return r.sections }
func (r *Recipe) Instructions() string     { return r.instructions }
func (r *Recipe) Notes() string            { return r.notes }
func (r *Recipe) Source() string           { return r.source }
func (r *Recipe) IsFavorite() bool         { return r.favorite }
func (r *Recipe) CreatedAt() time.Time     { return r.createdAt }
func (r *Recipe) UpdatedAt() time.Time     { return r.updatedAt }

// HasSections reports whether this is a sectioned recipe.
func (r *Recipe) HasSections() bool { return len(r.sections) > 0 }

// TotalTimeMinutes returns prep + cook + rest time.
func (r *Recipe) TotalTimeMinutes() int {
	return r.prepTimeMinutes + r.cookTimeMinutes + r.restTimeMinutes
}

// FormattedTotalTime renders the total time as "1h 30m". Zero total time
// yields an empty string.
func (r *Recipe) FormattedTotalTime() string {
	total := r.TotalTimeMinutes()
	if total == 0 {
		return ""
	}
	hours, minutes := total/60, total%60
	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// Mutations

// UpdateDetails replaces the recipe's descriptive fields.
func (r *Recipe) UpdateDetails(title, description, notes, source string) error {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return err
	}

	r.title = title
	r.description = strings.TrimSpace(description)
	r.notes = strings.TrimSpace(notes)
	r.source = strings.TrimSpace(source)
	r.touch()
	return nil
}

// SetCategory assigns the recipe to a category; nil clears it.
func (r *Recipe) SetCategory(categoryID *uuid.UUID) {
	r.categoryID = categoryID
	r.touch()
}

// SetTimes sets prep, cook, and rest time in minutes.
func (r *Recipe) SetTimes(prep, cook, rest int) error {
	if prep < 0 || cook < 0 || rest < 0 {
		return ErrInvalidTime
	}
	r.prepTimeMinutes, r.cookTimeMinutes, r.restTimeMinutes = prep, cook, rest
	r.touch()
	return nil
}

// SetServings sets the yield. An empty unit defaults to "servings".
func (r *Recipe) SetServings(count int, unit string) error {
	if count < 0 {
		return ErrInvalidServings
	}
	unit = strings.TrimSpace(unit)
	if unit == "" {
		unit = "servings"
	}
	r.servings = count
	r.servingsUnit = unit
	r.touch()
	return nil
}

// SetInstructions replaces the simple-recipe instruction text.
func (r *Recipe) SetInstructions(instructions string) {
	r.instructions = strings.TrimSpace(instructions)
	r.touch()
}

// ReplaceIngredients swaps the flat ingredient list, renumbering sort
// order by position. Sectioned recipes keep ingredients per section
// instead; calling this clears sections.
func (r *Recipe) ReplaceIngredients(ingredients []Ingredient) error {
	for _, ing := range ingredients {
		if err := ing.Validate(); err != nil {
			return err
		}
	}
	for i := range ingredients {
		ingredients[i].SortOrder = i
		if ingredients[i].ID == uuid.Nil {
			ingredients[i].ID = uuid.New()
		}
	}
	r.ingredients = ingredients
	r.sections = nil
	r.touch()
	return nil
}

// ReplaceSections swaps the section list, renumbering sort order by
// position. Calling this clears the flat ingredient list and simple
// instruction text.
func (r *Recipe) ReplaceSections(sections []Section) error {
	for _, sec := range sections {
		if err := sec.Validate(); err != nil {
			return err
		}
	}
	for i := range sections {
		sections[i].SortOrder = i
		for j := range sections[i].Ingredients {
			sections[i].Ingredients[j].SortOrder = j
			if sections[i].Ingredients[j].ID == uuid.Nil {
				sections[i].Ingredients[j].ID = uuid.New()
			}
		}
	}
	r.sections = sections
	r.ingredients = nil
	r.instructions = ""
	r.touch()
	return nil
}

// MarkDeleted records the deletion event before the aggregate is dropped.
func (r *Recipe) MarkDeleted() {
	r.AddEvent(DeletedEvent{RecipeID: r.id, Title: r.title, DeletedAt: time.Now()})
}

// ToggleFavorite flips the favorite flag and returns the new state.
func (r *Recipe) ToggleFavorite() bool {
	r.favorite = !r.favorite
	r.updatedAt = time.Now()
	r.AddEvent(FavoriteToggledEvent{RecipeID: r.id, Favorite: r.favorite, ToggledAt: r.updatedAt})
	return r.favorite
}

// ValidateForSave ensures the recipe is complete enough to persist:
// sectioned recipes carry their instructions per section, simple ones
// need instruction text.
func (r *Recipe) ValidateForSave() error {
	if r.HasSections() {
		return nil
	}
	if r.instructions == "" {
		return ErrInstructionsNeeded
	}
	return nil
}

func (r *Recipe) touch() {
	r.updatedAt = time.Now()
	r.AddEvent(UpdatedEvent{RecipeID: r.id, Title: r.title, UpdatedAt: r.updatedAt})
}

func validateTitle(title string) error {
	if title == "" {
		return ErrTitleRequired
	}
	if len(title) > 200 {
		return ErrTitleTooLong
	}
	return nil
}
