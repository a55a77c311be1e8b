// Package outbound defines the driven ports implemented by infrastructure.
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/homecook/cookbook/internal/domain/category"
	"github.com/homecook/cookbook/internal/domain/recipe"
)

// RecipeFilter narrows and orders a recipe listing.
type RecipeFilter struct {
	CategoryID    *uuid.UUID
	FavoritesOnly bool
	Search        string
	SortBy        string
	Offset        int
	Limit         int
}

// RecipeRepository persists recipe aggregates.
type RecipeRepository interface {
	Create(ctx context.Context, r *recipe.Recipe) error
	Update(ctx context.Context, r *recipe.Recipe) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)
	List(ctx context.Context, filter RecipeFilter) ([]*recipe.Recipe, int64, error)
}

// CategoryRepository persists categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *category.Category) error
	Update(ctx context.Context, c *category.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*category.Category, error)
	FindByName(ctx context.Context, name string) (*category.Category, error)
	List(ctx context.Context) ([]*category.Category, error)
	RecipeCount(ctx context.Context, id uuid.UUID) (int64, error)
}

// CacheRepository is a byte cache with per-key expiry.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	DeletePattern(ctx context.Context, pattern string) error
}
