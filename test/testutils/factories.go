// Package testutils provides test data factories and in-memory fakes.
package testutils

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/homecook/cookbook/internal/domain/category"
	"github.com/homecook/cookbook/internal/domain/recipe"
)

// RecipeFactory builds recipe aggregates with realistic fake data.
type RecipeFactory struct {
	faker *gofakeit.Faker
}

// NewRecipeFactory creates a factory with a seeded faker so tests
// stay deterministic.
func NewRecipeFactory(seed int64) *RecipeFactory {
	return &RecipeFactory{faker: gofakeit.New(seed)}
}

// Ingredient builds a single measured ingredient.
func (f *RecipeFactory) Ingredient(sortOrder int) recipe.Ingredient {
	qty := float64(f.faker.Number(1, 4))
	units := []string{"cup", "tablespoon", "teaspoon", "pound", "ounce"}
	return recipe.Ingredient{
		ID:        uuid.New(),
		Quantity:  &qty,
		Unit:      units[f.faker.Number(0, len(units)-1)],
		Name:      strings.ToLower(f.faker.Vegetable()),
		SortOrder: sortOrder,
	}
}

// Recipe builds a valid flat recipe with a few ingredients.
func (f *RecipeFactory) Recipe() *recipe.Recipe {
	r, err := recipe.New(f.faker.Dinner(), f.faker.Paragraph(1, 3, 8, " "))
	if err != nil {
		panic(fmt.Sprintf("factory produced invalid recipe: %v", err))
	}

	ingredients := make([]recipe.Ingredient, 0, 3)
	for i := 0; i < 3; i++ {
		ingredients = append(ingredients, f.Ingredient(i))
	}
	if err := r.ReplaceIngredients(ingredients); err != nil {
		panic(fmt.Sprintf("factory produced invalid ingredients: %v", err))
	}

	if err := r.SetTimes(f.faker.Number(5, 30), f.faker.Number(10, 90), 0); err != nil {
		panic(fmt.Sprintf("factory produced invalid times: %v", err))
	}
	if err := r.SetServings(f.faker.Number(2, 8), "servings"); err != nil {
		panic(fmt.Sprintf("factory produced invalid servings: %v", err))
	}

	return r
}

// SectionedRecipe builds a recipe with two named sections.
func (f *RecipeFactory) SectionedRecipe() *recipe.Recipe {
	r, err := recipe.New(f.faker.Dinner(), "")
	if err != nil {
		panic(fmt.Sprintf("factory produced invalid recipe: %v", err))
	}

	sections := []recipe.Section{
		{
			Name:         "Filling",
			Instructions: f.faker.Sentence(10),
			SortOrder:    0,
			Ingredients:  []recipe.Ingredient{f.Ingredient(0), f.Ingredient(1)},
		},
		{
			Name:         "Topping",
			Instructions: f.faker.Sentence(10),
			SortOrder:    1,
			Ingredients:  []recipe.Ingredient{f.Ingredient(0)},
		},
	}
	if err := r.ReplaceSections(sections); err != nil {
		panic(fmt.Sprintf("factory produced invalid sections: %v", err))
	}

	return r
}

// IngredientBlock renders a pipe-separated ingredient block the way a
// user would type it into the create form.
func (f *RecipeFactory) IngredientBlock(lines int) string {
	parts := make([]string, 0, lines)
	for i := 0; i < lines; i++ {
		ing := f.Ingredient(i)
		parts = append(parts, fmt.Sprintf("%g %s %s", *ing.Quantity, ing.Unit, ing.Name))
	}
	return strings.Join(parts, " | ")
}

// CategoryFactory builds category entities.
type CategoryFactory struct {
	faker *gofakeit.Faker
	n     int
}

// NewCategoryFactory creates a seeded category factory.
func NewCategoryFactory(seed int64) *CategoryFactory {
	return &CategoryFactory{faker: gofakeit.New(seed)}
}

// Category builds a category with a unique name.
func (f *CategoryFactory) Category() *category.Category {
	f.n++
	name := fmt.Sprintf("%s %d", f.faker.Word(), f.n)
	c, err := category.New(name, f.faker.Sentence(6), f.n)
	if err != nil {
		panic(fmt.Sprintf("factory produced invalid category: %v", err))
	}
	return c
}
