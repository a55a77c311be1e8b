// Package category provides the application layer for category management
package category

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/homecook/cookbook/internal/domain/category"
	"github.com/homecook/cookbook/internal/ports/inbound"
	"github.com/homecook/cookbook/internal/ports/outbound"
	"github.com/homecook/cookbook/pkg/errors"
)

// Service implements the category use cases
type Service struct {
	categoryRepo outbound.CategoryRepository
	logger       *zap.Logger
}

// NewService creates a new category service
func NewService(categoryRepo outbound.CategoryRepository, logger *zap.Logger) *Service {
	return &Service{
		categoryRepo: categoryRepo,
		logger:       logger.Named("category-service"),
	}
}

var _ inbound.CategoryService = (*Service)(nil)

// CreateCategory creates a category, rejecting duplicate names
func (s *Service) CreateCategory(ctx context.Context, name string) (*inbound.CategoryDTO, error) {
	name = strings.TrimSpace(name)

	existing, err := s.categoryRepo.FindByName(ctx, name)
	if err != nil {
		return nil, errors.NewDatabaseError("find category by name", err)
	}
	if existing != nil {
		return nil, errors.NewCategoryExistsError(name)
	}

	entity, err := category.New(name, "", 0)
	if err != nil {
		return nil, errors.Wrap(err, "invalid category")
	}

	if err := s.categoryRepo.Create(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("create category", err)
	}

	s.logger.Info("Category created",
		zap.String("category_id", entity.ID().String()),
		zap.String("name", entity.Name()),
	)

	return &inbound.CategoryDTO{ID: entity.ID(), Name: entity.Name()}, nil
}

// RenameCategory changes a category's name
func (s *Service) RenameCategory(ctx context.Context, id uuid.UUID, name string) (*inbound.CategoryDTO, error) {
	entity, err := s.loadCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if existing, err := s.categoryRepo.FindByName(ctx, name); err == nil && existing != nil && existing.ID() != id {
		return nil, errors.NewCategoryExistsError(name)
	}

	if err := entity.Rename(name); err != nil {
		return nil, errors.Wrap(err, "invalid category name")
	}

	if err := s.categoryRepo.Update(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("update category", err)
	}

	count, _ := s.categoryRepo.RecipeCount(ctx, id)
	return &inbound.CategoryDTO{ID: entity.ID(), Name: entity.Name(), RecipeCount: count}, nil
}

// DeleteCategory removes a category that has no recipes assigned
func (s *Service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	entity, err := s.loadCategory(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.categoryRepo.RecipeCount(ctx, id)
	if err != nil {
		return errors.NewDatabaseError("count category recipes", err)
	}
	if count > 0 {
		return errors.NewCategoryInUseError(entity.Name(), count)
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return errors.NewDatabaseError("delete category", err)
	}

	s.logger.Info("Category deleted", zap.String("category_id", id.String()))
	return nil
}

// ListCategories returns all categories ordered by name
func (s *Service) ListCategories(ctx context.Context) ([]inbound.CategoryDTO, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list categories", err)
	}

	dtos := make([]inbound.CategoryDTO, len(categories))
	for i, c := range categories {
		count, err := s.categoryRepo.RecipeCount(ctx, c.ID())
		if err != nil {
			count = 0
		}
		dtos[i] = inbound.CategoryDTO{ID: c.ID(), Name: c.Name(), RecipeCount: count}
	}
	return dtos, nil
}

func (s *Service) loadCategory(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	entity, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.NewDatabaseError("find category", err)
	}
	if entity == nil {
		return nil, errors.NewCategoryNotFoundError(id.String())
	}
	return entity, nil
}
