// Package recipe provides the application layer for recipe management
// This implements the use cases defined in the inbound ports
package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/homecook/cookbook/internal/domain/ingredient"
	"github.com/homecook/cookbook/internal/domain/measure"
	"github.com/homecook/cookbook/internal/domain/recipe"
	"github.com/homecook/cookbook/internal/ports/inbound"
	"github.com/homecook/cookbook/internal/ports/outbound"
	"github.com/homecook/cookbook/pkg/errors"
)

const (
	recipeCacheTTL  = time.Hour
	defaultPageSize = 20
	maxPageSize     = 100
)

// Service implements the recipe use cases
type Service struct {
	recipeRepo   outbound.RecipeRepository
	categoryRepo outbound.CategoryRepository
	cache        outbound.CacheRepository
	logger       *zap.Logger
}

// NewService creates a new recipe service
func NewService(
	recipeRepo outbound.RecipeRepository,
	categoryRepo outbound.CategoryRepository,
	cache outbound.CacheRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		recipeRepo:   recipeRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
		logger:       logger.Named("recipe-service"),
	}
}

var _ inbound.RecipeService = (*Service)(nil)

// CreateRecipe creates a new recipe from free-text ingredient lines
func (s *Service) CreateRecipe(ctx context.Context, cmd inbound.CreateRecipeCommand) (*inbound.RecipeDTO, error) {
	s.logger.Info("Creating new recipe", zap.String("title", cmd.Title))

	entity, err := recipe.New(cmd.Title, cmd.Instructions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create recipe entity")
	}

	if err := s.applyCommand(ctx, entity, recipeFields{
		title:        cmd.Title,
		description:  cmd.Description,
		categoryID:   cmd.CategoryID,
		prepTime:     cmd.PrepTimeMinutes,
		cookTime:     cmd.CookTimeMinutes,
		restTime:     cmd.RestTimeMinutes,
		servings:     cmd.Servings,
		servingsUnit: cmd.ServingsUnit,
		ingredients:  cmd.Ingredients,
		instructions: cmd.Instructions,
		notes:        cmd.Notes,
		source:       cmd.Source,
	}); err != nil {
		return nil, err
	}

	if err := entity.ValidateForSave(); err != nil {
		return nil, errors.Wrap(err, "recipe is not valid")
	}

	if err := s.recipeRepo.Create(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("create recipe", err)
	}

	s.drainEvents(entity)
	s.invalidateListCache(ctx)

	dto := s.entityToDTO(ctx, entity, measure.TargetOriginal)

	s.logger.Info("Recipe created successfully",
		zap.String("recipe_id", dto.ID.String()),
		zap.String("title", dto.Title),
	)

	return dto, nil
}

// UpdateRecipe replaces the stored fields of an existing recipe
func (s *Service) UpdateRecipe(ctx context.Context, cmd inbound.UpdateRecipeCommand) (*inbound.RecipeDTO, error) {
	s.logger.Info("Updating recipe", zap.String("recipe_id", cmd.ID.String()))

	entity, err := s.loadRecipe(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if err := s.applyCommand(ctx, entity, recipeFields{
		title:        cmd.Title,
		description:  cmd.Description,
		categoryID:   cmd.CategoryID,
		prepTime:     cmd.PrepTimeMinutes,
		cookTime:     cmd.CookTimeMinutes,
		restTime:     cmd.RestTimeMinutes,
		servings:     cmd.Servings,
		servingsUnit: cmd.ServingsUnit,
		ingredients:  cmd.Ingredients,
		instructions: cmd.Instructions,
		notes:        cmd.Notes,
		source:       cmd.Source,
	}); err != nil {
		return nil, err
	}

	if err := entity.ValidateForSave(); err != nil {
		return nil, errors.Wrap(err, "recipe is not valid")
	}

	if err := s.recipeRepo.Update(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("update recipe", err)
	}

	s.drainEvents(entity)
	s.invalidateRecipeCache(ctx, cmd.ID)
	s.invalidateListCache(ctx)

	return s.entityToDTO(ctx, entity, measure.TargetOriginal), nil
}

// DeleteRecipe removes a recipe
func (s *Service) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Deleting recipe", zap.String("recipe_id", id.String()))

	entity, err := s.loadRecipe(ctx, id)
	if err != nil {
		return err
	}

	if err := s.recipeRepo.Delete(ctx, id); err != nil {
		return errors.NewDatabaseError("delete recipe", err)
	}

	entity.MarkDeleted()
	s.drainEvents(entity)
	s.invalidateRecipeCache(ctx, id)
	s.invalidateListCache(ctx)

	return nil
}

// ToggleFavorite flips the favorite flag and returns the new state
func (s *Service) ToggleFavorite(ctx context.Context, id uuid.UUID) (bool, error) {
	entity, err := s.loadRecipe(ctx, id)
	if err != nil {
		return false, err
	}

	entity.ToggleFavorite()

	if err := s.recipeRepo.Update(ctx, entity); err != nil {
		return false, errors.NewDatabaseError("update recipe favorite", err)
	}

	s.drainEvents(entity)
	s.invalidateRecipeCache(ctx, id)
	s.invalidateListCache(ctx)

	return entity.IsFavorite(), nil
}

// GetRecipe retrieves a recipe, with quantities rendered for the requested
// measurement target
func (s *Service) GetRecipe(ctx context.Context, id uuid.UUID, target measure.Target) (*inbound.RecipeDTO, error) {
	if cached := s.getCachedRecipe(ctx, id, target); cached != nil {
		return cached, nil
	}

	entity, err := s.loadRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := s.entityToDTO(ctx, entity, target)
	s.cacheRecipe(ctx, dto, target)

	return dto, nil
}

// ListRecipes returns a filtered, ordered page of recipes
func (s *Service) ListRecipes(ctx context.Context, query inbound.ListRecipesQuery) (*inbound.RecipeListDTO, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	filter := outbound.RecipeFilter{
		CategoryID:    query.CategoryID,
		FavoritesOnly: query.FavoritesOnly,
		Search:        query.Search,
		SortBy:        query.SortBy,
		Offset:        (page - 1) * pageSize,
		Limit:         pageSize,
	}

	recipes, total, err := s.recipeRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.NewDatabaseError("list recipes", err)
	}

	names := s.categoryNames(ctx)

	summaries := make([]inbound.RecipeSummaryDTO, len(recipes))
	for i, r := range recipes {
		summaries[i] = inbound.RecipeSummaryDTO{
			ID:          r.ID(),
			Title:       r.Title(),
			Description: r.Description(),
			CategoryID:  r.CategoryID(),
			TotalTime:   r.FormattedTotalTime(),
			Servings:    r.Servings(),
			Favorite:    r.IsFavorite(),
			UpdatedAt:   r.UpdatedAt().Format(time.RFC3339),
		}
		if r.CategoryID() != nil {
			summaries[i].CategoryName = names[*r.CategoryID()]
		}
	}

	return &inbound.RecipeListDTO{
		Recipes:  summaries,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// recipeFields is the shared payload of create and update commands
type recipeFields struct {
	title        string
	description  string
	categoryID   *uuid.UUID
	prepTime     int
	cookTime     int
	restTime     int
	servings     int
	servingsUnit string
	ingredients  string
	instructions string
	notes        string
	source       string
}

// applyCommand maps command fields onto the aggregate, parsing the free-text
// ingredient block into either a flat list or named sections
func (s *Service) applyCommand(ctx context.Context, entity *recipe.Recipe, f recipeFields) error {
	if err := entity.UpdateDetails(f.title, f.description, f.notes, f.source); err != nil {
		return errors.Wrap(err, "failed to update recipe details")
	}

	if f.categoryID != nil {
		cat, err := s.categoryRepo.FindByID(ctx, *f.categoryID)
		if err != nil {
			return errors.NewDatabaseError("find category", err)
		}
		if cat == nil {
			return errors.NewCategoryNotFoundError(f.categoryID.String())
		}
	}
	entity.SetCategory(f.categoryID)

	if err := entity.SetTimes(f.prepTime, f.cookTime, f.restTime); err != nil {
		return errors.Wrap(err, "invalid recipe times")
	}
	if err := entity.SetServings(f.servings, f.servingsUnit); err != nil {
		return errors.Wrap(err, "invalid servings")
	}

	if ingredient.HasSections(f.ingredients) || ingredient.HasSections(f.instructions) {
		sections := ingredient.AssembleSections(f.ingredients, f.instructions)
		if err := entity.ReplaceSections(toDomainSections(sections)); err != nil {
			return errors.Wrap(err, "invalid recipe sections")
		}
	} else {
		parsed := ingredient.ParseBlock(f.ingredients)
		if err := entity.ReplaceIngredients(toDomainIngredients(parsed)); err != nil {
			return errors.Wrap(err, "invalid ingredients")
		}
		entity.SetInstructions(f.instructions)
	}

	return nil
}

// loadRecipe fetches an aggregate or returns a typed not-found error
func (s *Service) loadRecipe(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	entity, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.NewDatabaseError("find recipe", err)
	}
	if entity == nil {
		return nil, errors.NewRecipeNotFoundError(id.String())
	}
	return entity, nil
}

// drainEvents logs the domain events raised during the last operation
func (s *Service) drainEvents(entity *recipe.Recipe) {
	for _, event := range entity.Events() {
		s.logger.Debug("Domain event",
			zap.String("event", event.EventName()),
			zap.Time("occurred_at", event.OccurredAt()),
		)
	}
}

// categoryNames returns an id-to-name index of all categories
func (s *Service) categoryNames(ctx context.Context) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string)
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		s.logger.Warn("Failed to load categories", zap.Error(err))
		return names
	}
	for _, c := range categories {
		names[c.ID()] = c.Name()
	}
	return names
}

// Helper methods

// entityToDTO converts the aggregate into the read model, converting every
// quantity to the requested measurement target
func (s *Service) entityToDTO(ctx context.Context, entity *recipe.Recipe, target measure.Target) *inbound.RecipeDTO {
	dto := &inbound.RecipeDTO{
		ID:              entity.ID(),
		Title:           entity.Title(),
		Description:     entity.Description(),
		CategoryID:      entity.CategoryID(),
		PrepTimeMinutes: entity.PrepTimeMinutes(),
		CookTimeMinutes: entity.CookTimeMinutes(),
		RestTimeMinutes: entity.RestTimeMinutes(),
		TotalTime:       entity.FormattedTotalTime(),
		Servings:        entity.Servings(),
		ServingsUnit:    entity.ServingsUnit(),
		Ingredients:     []inbound.IngredientDTO{},
		Instructions:    entity.Instructions(),
		Notes:           entity.Notes(),
		Source:          entity.Source(),
		Favorite:        entity.IsFavorite(),
		CreatedAt:       entity.CreatedAt().Format(time.RFC3339),
		UpdatedAt:       entity.UpdatedAt().Format(time.RFC3339),
	}

	if entity.CategoryID() != nil {
		if cat, err := s.categoryRepo.FindByID(ctx, *entity.CategoryID()); err == nil && cat != nil {
			dto.CategoryName = cat.Name()
		}
	}

	for _, ing := range entity.Ingredients() {
		dto.Ingredients = append(dto.Ingredients, ingredientToDTO(ing, target))
	}
	for _, sec := range entity.Sections() {
		secDTO := inbound.SectionDTO{
			Name:         sec.Name,
			Ingredients:  []inbound.IngredientDTO{},
			Instructions: sec.Instructions,
		}
		for _, ing := range sec.Ingredients {
			secDTO.Ingredients = append(secDTO.Ingredients, ingredientToDTO(ing, target))
		}
		dto.Sections = append(dto.Sections, secDTO)
	}

	return dto
}

// ingredientToDTO renders one ingredient for the requested target
func ingredientToDTO(ing recipe.Ingredient, target measure.Target) inbound.IngredientDTO {
	dto := inbound.IngredientDTO{
		ID:          ing.ID,
		Quantity:    ing.Quantity,
		Unit:        ing.Unit,
		Name:        ing.Name,
		Preparation: ing.Preparation,
		Optional:    ing.Optional,
	}

	if ing.Quantity != nil {
		converted := measure.Convert(measure.Quantity{Amount: *ing.Quantity, Unit: ing.Unit}, target)
		amount := converted.Amount
		dto.Quantity = &amount
		dto.Unit = converted.Unit
	}

	dto.Display = displayLine(dto.Quantity, dto.Unit, ing.Name, ing.Preparation, ing.Optional)
	return dto
}

// displayLine renders a single human-readable ingredient line
func displayLine(quantity *float64, unit, name, preparation string, optional bool) string {
	line := ""
	if quantity != nil {
		line = measure.FormatQuantityUnit(*quantity, unit)
		if unit != "" {
			line += " " + unit
		}
		line += " "
	}
	line += name
	if preparation != "" {
		line += ", " + preparation
	}
	if optional {
		line += " (optional)"
	}
	return line
}

// toDomainIngredients maps parsed lines onto the aggregate's value objects
func toDomainIngredients(parsed []ingredient.Parsed) []recipe.Ingredient {
	out := make([]recipe.Ingredient, len(parsed))
	for i, p := range parsed {
		out[i] = recipe.Ingredient{
			Quantity:    p.Quantity,
			Unit:        p.Unit,
			Name:        p.Name,
			Preparation: p.Preparation,
			Optional:    p.Optional,
			SortOrder:   i,
		}
	}
	return out
}

// toDomainSections maps assembled sections onto the aggregate's value objects
func toDomainSections(sections []ingredient.Section) []recipe.Section {
	out := make([]recipe.Section, len(sections))
	for i, sec := range sections {
		out[i] = recipe.Section{
			Name:         sec.Name,
			Ingredients:  toDomainIngredients(sec.Ingredients),
			Instructions: sec.Instructions,
			SortOrder:    i,
		}
	}
	return out
}

// Cache operations

func recipeCacheKey(id uuid.UUID, target measure.Target) string {
	return fmt.Sprintf("recipe:%s:%s", id.String(), target)
}

// getCachedRecipe retrieves a recipe read model from cache
func (s *Service) getCachedRecipe(ctx context.Context, id uuid.UUID, target measure.Target) *inbound.RecipeDTO {
	data, err := s.cache.Get(ctx, recipeCacheKey(id, target))
	if err != nil || data == nil {
		return nil
	}
	var dto inbound.RecipeDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		s.logger.Warn("Failed to decode cached recipe", zap.Error(err))
		return nil
	}
	return &dto
}

// cacheRecipe stores a recipe read model in cache
func (s *Service) cacheRecipe(ctx context.Context, dto *inbound.RecipeDTO, target measure.Target) {
	data, err := json.Marshal(dto)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, recipeCacheKey(dto.ID, target), data, recipeCacheTTL); err != nil {
		s.logger.Warn("Failed to cache recipe", zap.Error(err))
	}
}

// invalidateRecipeCache drops every cached rendering of a recipe
func (s *Service) invalidateRecipeCache(ctx context.Context, id uuid.UUID) {
	if err := s.cache.DeletePattern(ctx, fmt.Sprintf("recipe:%s:*", id.String())); err != nil {
		s.logger.Warn("Failed to invalidate recipe cache", zap.Error(err))
	}
}

// invalidateListCache drops cached recipe listings
func (s *Service) invalidateListCache(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, "recipes:list:*"); err != nil {
		s.logger.Warn("Failed to invalidate list cache", zap.Error(err))
	}
}
