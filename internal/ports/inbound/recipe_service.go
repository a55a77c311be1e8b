// Package inbound defines the driving ports of the application.
package inbound

import (
	"context"

	"github.com/google/uuid"
	"github.com/homecook/cookbook/internal/domain/measure"
)

// RecipeService drives the recipe lifecycle.
type RecipeService interface {
	// Commands
	CreateRecipe(ctx context.Context, cmd CreateRecipeCommand) (*RecipeDTO, error)
	UpdateRecipe(ctx context.Context, cmd UpdateRecipeCommand) (*RecipeDTO, error)
	DeleteRecipe(ctx context.Context, id uuid.UUID) error
	ToggleFavorite(ctx context.Context, id uuid.UUID) (bool, error)

	// Queries
	GetRecipe(ctx context.Context, id uuid.UUID, target measure.Target) (*RecipeDTO, error)
	ListRecipes(ctx context.Context, query ListRecipesQuery) (*RecipeListDTO, error)
}

// CategoryService manages the recipe categories.
type CategoryService interface {
	CreateCategory(ctx context.Context, name string) (*CategoryDTO, error)
	RenameCategory(ctx context.Context, id uuid.UUID, name string) (*CategoryDTO, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ListCategories(ctx context.Context) ([]CategoryDTO, error)
}

// CreateRecipeCommand carries the fields of a new recipe. Ingredients is a
// pipe-separated block of free-text lines; both it and Instructions may use
// [Section] markers, in which case the recipe is stored section by section.
type CreateRecipeCommand struct {
	Title           string
	Description     string
	CategoryID      *uuid.UUID
	PrepTimeMinutes int
	CookTimeMinutes int
	RestTimeMinutes int
	Servings        int
	ServingsUnit    string
	Ingredients     string
	Instructions    string
	Notes           string
	Source          string
}

// UpdateRecipeCommand replaces the stored fields of an existing recipe.
type UpdateRecipeCommand struct {
	ID              uuid.UUID
	Title           string
	Description     string
	CategoryID      *uuid.UUID
	PrepTimeMinutes int
	CookTimeMinutes int
	RestTimeMinutes int
	Servings        int
	ServingsUnit    string
	Ingredients     string
	Instructions    string
	Notes           string
	Source          string
}

// ListRecipesQuery filters and orders the recipe collection.
type ListRecipesQuery struct {
	CategoryID    *uuid.UUID
	FavoritesOnly bool
	Search        string
	SortBy        string // title, created, updated
	Page          int
	PageSize      int
}

// IngredientDTO is one parsed ingredient, with quantities rendered for the
// requested measurement target.
type IngredientDTO struct {
	ID          uuid.UUID `json:"id"`
	Quantity    *float64  `json:"quantity,omitempty"`
	Unit        string    `json:"unit,omitempty"`
	Name        string    `json:"name"`
	Preparation string    `json:"preparation,omitempty"`
	Optional    bool      `json:"optional"`
	Display     string    `json:"display"`
}

// SectionDTO is a named recipe part with its own ingredients and steps.
type SectionDTO struct {
	Name         string          `json:"name"`
	Ingredients  []IngredientDTO `json:"ingredients"`
	Instructions string          `json:"instructions"`
}

// RecipeDTO is the full read model of a recipe.
type RecipeDTO struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description,omitempty"`
	CategoryID      *uuid.UUID      `json:"category_id,omitempty"`
	CategoryName    string          `json:"category_name,omitempty"`
	PrepTimeMinutes int             `json:"prep_time_minutes"`
	CookTimeMinutes int             `json:"cook_time_minutes"`
	RestTimeMinutes int             `json:"rest_time_minutes"`
	TotalTime       string          `json:"total_time,omitempty"`
	Servings        int             `json:"servings"`
	ServingsUnit    string          `json:"servings_unit"`
	Ingredients     []IngredientDTO `json:"ingredients"`
	Sections        []SectionDTO    `json:"sections,omitempty"`
	Instructions    string          `json:"instructions,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Source          string          `json:"source,omitempty"`
	Favorite        bool            `json:"favorite"`
	CreatedAt       string          `json:"created_at"`
	UpdatedAt       string          `json:"updated_at"`
}

// RecipeSummaryDTO is the list view of a recipe.
type RecipeSummaryDTO struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	CategoryID   *uuid.UUID `json:"category_id,omitempty"`
	CategoryName string     `json:"category_name,omitempty"`
	TotalTime    string     `json:"total_time,omitempty"`
	Servings     int        `json:"servings"`
	Favorite     bool       `json:"favorite"`
	UpdatedAt    string     `json:"updated_at"`
}

// RecipeListDTO is a paginated recipe listing.
type RecipeListDTO struct {
	Recipes  []RecipeSummaryDTO `json:"recipes"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// CategoryDTO is the read model of a category.
type CategoryDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	RecipeCount int64     `json:"recipe_count"`
}
