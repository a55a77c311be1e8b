// Package gorm provides GORM-based repository implementations
package gorm

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/homecook/cookbook/internal/domain/recipe"
	"github.com/homecook/cookbook/internal/ports/outbound"
)

// RecipeRepository implements the recipe repository interface using GORM
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) outbound.RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create creates a new recipe with its ingredient and section rows
func (r *RecipeRepository) Create(ctx context.Context, entity *recipe.Recipe) error {
	model := RecipeToModel(entity)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// Update replaces a recipe and all of its content rows
func (r *RecipeRepository) Update(ctx context.Context, entity *recipe.Recipe) error {
	model := RecipeToModel(entity)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Content rows are replaced wholesale; Save would only upsert
		if err := tx.Where("recipe_id = ?", model.ID).Delete(&IngredientModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", model.ID).Delete(&SectionModel{}).Error; err != nil {
			return err
		}

		result := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.New("recipe not found")
		}
		return nil
	})
}

// Delete removes a recipe and, via cascade, its content rows
func (r *RecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&IngredientModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&SectionModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&RecipeModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.New("recipe not found")
		}
		return nil
	})
}

// FindByID finds a recipe by ID. A missing recipe returns (nil, nil).
func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	var model RecipeModel

	result := r.db.WithContext(ctx).
		Preload("Ingredients").
		Preload("Sections").
		First(&model, "id = ?", id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToRecipe(&model), nil
}

// List returns a filtered page of recipes plus the unpaged total
func (r *RecipeRepository) List(ctx context.Context, filter outbound.RecipeFilter) ([]*recipe.Recipe, int64, error) {
	query := r.db.WithContext(ctx).Model(&RecipeModel{})

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.FavoritesOnly {
		query = query.Where("favorite = ?", true)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order(orderClause(filter.SortBy))
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var models []RecipeModel
	if err := query.Preload("Ingredients").Preload("Sections").Find(&models).Error; err != nil {
		return nil, 0, err
	}

	recipes := make([]*recipe.Recipe, len(models))
	for i := range models {
		recipes[i] = ModelToRecipe(&models[i])
	}

	return recipes, total, nil
}

// orderClause maps the sort key onto a safe ORDER BY expression
func orderClause(sortBy string) string {
	switch sortBy {
	case "title":
		return "LOWER(title) ASC"
	case "created":
		return "created_at DESC"
	case "updated":
		return "updated_at DESC"
	default:
		return "LOWER(title) ASC"
	}
}
