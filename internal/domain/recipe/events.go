package recipe

import (
	"time"

	"github.com/google/uuid"
)

// Domain events raised by the recipe aggregate

// CreatedEvent is raised when a new recipe is created.
type CreatedEvent struct {
	RecipeID  uuid.UUID
	Title     string
	CreatedAt time.Time
}

func (e CreatedEvent) EventName() string     { return "recipe.created" }
func (e CreatedEvent) OccurredAt() time.Time { return e.CreatedAt }

// UpdatedEvent is raised when recipe content changes.
type UpdatedEvent struct {
	RecipeID  uuid.UUID
	Title     string
	UpdatedAt time.Time
}

func (e UpdatedEvent) EventName() string     { return "recipe.updated" }
func (e UpdatedEvent) OccurredAt() time.Time { return e.UpdatedAt }

// DeletedEvent is raised when a recipe is removed.
type DeletedEvent struct {
	RecipeID  uuid.UUID
	Title     string
	DeletedAt time.Time
}

func (e DeletedEvent) EventName() string     { return "recipe.deleted" }
func (e DeletedEvent) OccurredAt() time.Time { return e.DeletedAt }

// FavoriteToggledEvent is raised when the favorite flag flips.
type FavoriteToggledEvent struct {
	RecipeID  uuid.UUID
	Favorite  bool
	ToggledAt time.Time
}

func (e FavoriteToggledEvent) EventName() string     { return "recipe.favorite_toggled" }
func (e FavoriteToggledEvent) OccurredAt() time.Time { return e.ToggledAt }
