// Package category contains the recipe category domain model.
package category

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNameRequired = errors.New("category name is required")
	ErrNameTooLong  = errors.New("category name must not exceed 100 characters")
	ErrNotFound     = errors.New("category not found")
)

// Category groups recipes for browsing and filtering.
type Category struct {
	id          uuid.UUID
	name        string
	description string
	sortOrder   int
	createdAt   time.Time
}

// New creates a category with a validated name.
func New(name, description string, sortOrder int) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if len(name) > 100 {
		return nil, ErrNameTooLong
	}

	return &Category{
		id:          uuid.New(),
		name:        name,
		description: strings.TrimSpace(description),
		sortOrder:   sortOrder,
		createdAt:   time.Now(),
	}, nil
}

// Rehydrate reconstructs a category from persisted state.
func Rehydrate(id uuid.UUID, name, description string, sortOrder int, createdAt time.Time) *Category {
	return &Category{
		id:          id,
		name:        name,
		description: description,
		sortOrder:   sortOrder,
		createdAt:   createdAt,
	}
}

func (c *Category) ID() uuid.UUID        { return c.id }
func (c *Category) Name() string         { return c.name }
func (c *Category) Description() string  { return c.description }
func (c *Category) SortOrder() int       { return c.sortOrder }
func (c *Category) CreatedAt() time.Time { return c.createdAt }

// Rename updates the category name.
func (c *Category) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	if len(name) > 100 {
		return ErrNameTooLong
	}
	c.name = name
	return nil
}

// Seed is one entry of the default category set.
type Seed struct {
	Name        string
	Description string
	SortOrder   int
}

// Defaults returns the category set seeded into an empty database.
func Defaults() []Seed {
	return []Seed{
		{"Breakfast", "Morning meals and brunch dishes", 1},
		{"Lunch", "Midday meals and light fare", 2},
		{"Dinner", "Main courses and evening meals", 3},
		{"Appetizers", "Starters and finger foods", 4},
		{"Soups & Salads", "Soups, stews, and fresh salads", 5},
		{"Desserts", "Sweets, cakes, and treats", 6},
		{"Beverages", "Drinks and cocktails", 7},
		{"Snacks", "Quick bites and light snacks", 8},
		{"Sides", "Side dishes and accompaniments", 9},
		{"Sauces & Condiments", "Dressings, sauces, and dips", 10},
	}
}
