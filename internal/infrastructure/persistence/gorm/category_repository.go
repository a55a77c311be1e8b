package gorm

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/homecook/cookbook/internal/domain/category"
	"github.com/homecook/cookbook/internal/ports/outbound"
)

// CategoryRepository implements the category repository interface using GORM
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) outbound.CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create creates a new category
func (r *CategoryRepository) Create(ctx context.Context, entity *category.Category) error {
	model := CategoryToModel(entity)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing category
func (r *CategoryRepository) Update(ctx context.Context, entity *category.Category) error {
	model := CategoryToModel(entity)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("category not found")
	}
	return nil
}

// Delete removes a category. Recipes keep their rows; the service layer
// refuses deletion while any still reference it.
func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&CategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("category not found")
	}
	return nil
}

// FindByID finds a category by ID. A missing category returns (nil, nil).
func (r *CategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	var model CategoryModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToCategory(&model), nil
}

// FindByName finds a category by name, case-insensitively
func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*category.Category, error) {
	var model CategoryModel

	result := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).
		First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToCategory(&model), nil
}

// List returns all categories in display order
func (r *CategoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	var models []CategoryModel

	if err := r.db.WithContext(ctx).Order("sort_order ASC, LOWER(name) ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	categories := make([]*category.Category, len(models))
	for i := range models {
		categories[i] = ModelToCategory(&models[i])
	}
	return categories, nil
}

// RecipeCount counts the recipes assigned to a category
func (r *CategoryRepository) RecipeCount(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&RecipeModel{}).Where("category_id = ?", id).Count(&count).Error
	return count, err
}
