package gorm

import (
	"sort"

	"github.com/google/uuid"

	"github.com/homecook/cookbook/internal/domain/category"
	"github.com/homecook/cookbook/internal/domain/recipe"
)

// RecipeToModel converts the aggregate into its persistence shape. Section
// ingredients ride on the recipe's ingredient rows, linked by SectionID.
func RecipeToModel(r *recipe.Recipe) *RecipeModel {
	model := &RecipeModel{
		ID:              r.ID(),
		Title:           r.Title(),
		Description:     r.Description(),
		CategoryID:      r.CategoryID(),
		PrepTimeMinutes: r.PrepTimeMinutes(),
		CookTimeMinutes: r.CookTimeMinutes(),
		RestTimeMinutes: r.RestTimeMinutes(),
		Servings:        r.Servings(),
		ServingsUnit:    r.ServingsUnit(),
		Instructions:    r.Instructions(),
		HasSections:     r.HasSections(),
		Notes:           r.Notes(),
		Source:          r.Source(),
		Favorite:        r.IsFavorite(),
		CreatedAt:       r.CreatedAt(),
		UpdatedAt:       r.UpdatedAt(),
	}

	for _, ing := range r.Ingredients() {
		model.Ingredients = append(model.Ingredients, ingredientToModel(ing, r.ID(), nil))
	}

	for i, sec := range r.Sections() {
		secID := uuid.New()
		model.Sections = append(model.Sections, SectionModel{
			ID:           secID,
			RecipeID:     r.ID(),
			Name:         sec.Name,
			Instructions: sec.Instructions,
			SortOrder:    i,
		})
		for _, ing := range sec.Ingredients {
			model.Ingredients = append(model.Ingredients, ingredientToModel(ing, r.ID(), &secID))
		}
	}

	return model
}

func ingredientToModel(ing recipe.Ingredient, recipeID uuid.UUID, sectionID *uuid.UUID) IngredientModel {
	return IngredientModel{
		ID:          ing.ID,
		RecipeID:    recipeID,
		SectionID:   sectionID,
		Quantity:    ing.Quantity,
		Unit:        ing.Unit,
		Name:        ing.Name,
		Preparation: ing.Preparation,
		Optional:    ing.Optional,
		SortOrder:   ing.SortOrder,
	}
}

// ModelToRecipe reconstructs the aggregate from its persistence shape
func ModelToRecipe(model *RecipeModel) *recipe.Recipe {
	var flat []recipe.Ingredient
	bySection := make(map[uuid.UUID][]recipe.Ingredient)

	sort.Slice(model.Ingredients, func(i, j int) bool {
		return model.Ingredients[i].SortOrder < model.Ingredients[j].SortOrder
	})
	for _, ing := range model.Ingredients {
		domainIng := recipe.Ingredient{
			ID:          ing.ID,
			Quantity:    ing.Quantity,
			Unit:        ing.Unit,
			Name:        ing.Name,
			Preparation: ing.Preparation,
			Optional:    ing.Optional,
			SortOrder:   ing.SortOrder,
		}
		if ing.SectionID != nil {
			bySection[*ing.SectionID] = append(bySection[*ing.SectionID], domainIng)
		} else {
			flat = append(flat, domainIng)
		}
	}

	var sections []recipe.Section
	sort.Slice(model.Sections, func(i, j int) bool {
		return model.Sections[i].SortOrder < model.Sections[j].SortOrder
	})
	for _, sec := range model.Sections {
		sections = append(sections, recipe.Section{
			Name:         sec.Name,
			Ingredients:  bySection[sec.ID],
			Instructions: sec.Instructions,
			SortOrder:    sec.SortOrder,
		})
	}

	return recipe.Rehydrate(
		model.ID,
		model.Title, model.Description,
		model.CategoryID,
		model.PrepTimeMinutes, model.CookTimeMinutes, model.RestTimeMinutes, model.Servings,
		model.ServingsUnit, model.Instructions, model.Notes, model.Source,
		model.Favorite,
		flat,
		sections,
		model.CreatedAt, model.UpdatedAt,
	)
}

// CategoryToModel converts a category entity into its persistence shape
func CategoryToModel(c *category.Category) *CategoryModel {
	return &CategoryModel{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		SortOrder:   c.SortOrder(),
		CreatedAt:   c.CreatedAt(),
	}
}

// ModelToCategory reconstructs a category entity
func ModelToCategory(model *CategoryModel) *category.Category {
	return category.Rehydrate(model.ID, model.Name, model.Description, model.SortOrder, model.CreatedAt)
}
