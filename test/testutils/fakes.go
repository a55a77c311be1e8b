package testutils

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/homecook/cookbook/internal/domain/category"
	"github.com/homecook/cookbook/internal/domain/recipe"
	"github.com/homecook/cookbook/internal/ports/outbound"
)

// FakeRecipeRepository is an in-memory RecipeRepository for service tests.
type FakeRecipeRepository struct {
	mu      sync.RWMutex
	recipes map[uuid.UUID]*recipe.Recipe

	// CreateErr, when set, is returned by Create to simulate failures.
	CreateErr error
}

// NewFakeRecipeRepository creates an empty fake repository.
func NewFakeRecipeRepository() *FakeRecipeRepository {
	return &FakeRecipeRepository{recipes: make(map[uuid.UUID]*recipe.Recipe)}
}

var _ outbound.RecipeRepository = (*FakeRecipeRepository)(nil)

func (f *FakeRecipeRepository) Create(ctx context.Context, r *recipe.Recipe) error {
	if f.CreateErr != nil {
		return f.CreateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recipes[r.ID()] = r
	return nil
}

func (f *FakeRecipeRepository) Update(ctx context.Context, r *recipe.Recipe) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recipes[r.ID()] = r
	return nil
}

func (f *FakeRecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.recipes, id)
	return nil
}

func (f *FakeRecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.recipes[id], nil
}

func (f *FakeRecipeRepository) List(ctx context.Context, filter outbound.RecipeFilter) ([]*recipe.Recipe, int64, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	matched := make([]*recipe.Recipe, 0, len(f.recipes))
	for _, r := range f.recipes {
		if filter.CategoryID != nil {
			if r.CategoryID() == nil || *r.CategoryID() != *filter.CategoryID {
				continue
			}
		}
		if filter.FavoritesOnly && !r.IsFavorite() {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(r.Title()), needle) &&
				!strings.Contains(strings.ToLower(r.Description()), needle) {
				continue
			}
		}
		matched = append(matched, r)
	}

	switch filter.SortBy {
	case "created":
		sort.Slice(matched, func(i, j int) bool {
			return matched[i].CreatedAt().After(matched[j].CreatedAt())
		})
	case "updated":
		sort.Slice(matched, func(i, j int) bool {
			return matched[i].UpdatedAt().After(matched[j].UpdatedAt())
		})
	default:
		sort.Slice(matched, func(i, j int) bool {
			return strings.ToLower(matched[i].Title()) < strings.ToLower(matched[j].Title())
		})
	}

	total := int64(len(matched))
	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			matched = nil
		} else {
			matched = matched[filter.Offset:]
		}
	}
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}

	return matched, total, nil
}

// Len reports how many recipes the fake holds.
func (f *FakeRecipeRepository) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.recipes)
}

// FakeCategoryRepository is an in-memory CategoryRepository. Recipe counts
// are set directly through the Counts map.
type FakeCategoryRepository struct {
	mu         sync.RWMutex
	categories map[uuid.UUID]*category.Category
	Counts     map[uuid.UUID]int64
}

// NewFakeCategoryRepository creates an empty fake repository.
func NewFakeCategoryRepository() *FakeCategoryRepository {
	return &FakeCategoryRepository{
		categories: make(map[uuid.UUID]*category.Category),
		Counts:     make(map[uuid.UUID]int64),
	}
}

var _ outbound.CategoryRepository = (*FakeCategoryRepository)(nil)

func (f *FakeCategoryRepository) Create(ctx context.Context, c *category.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categories[c.ID()] = c
	return nil
}

func (f *FakeCategoryRepository) Update(ctx context.Context, c *category.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categories[c.ID()] = c
	return nil
}

func (f *FakeCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.categories, id)
	return nil
}

func (f *FakeCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.categories[id], nil
}

func (f *FakeCategoryRepository) FindByName(ctx context.Context, name string) (*category.Category, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, c := range f.categories {
		if strings.EqualFold(c.Name(), name) {
			return c, nil
		}
	}
	return nil, nil
}

func (f *FakeCategoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]*category.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder() != out[j].SortOrder() {
			return out[i].SortOrder() < out[j].SortOrder()
		}
		return strings.ToLower(out[i].Name()) < strings.ToLower(out[j].Name())
	})
	return out, nil
}

func (f *FakeCategoryRepository) RecipeCount(ctx context.Context, id uuid.UUID) (int64, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.Counts[id], nil
}
