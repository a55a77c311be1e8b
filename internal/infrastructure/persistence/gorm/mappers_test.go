package gorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gormrepo "github.com/homecook/cookbook/internal/infrastructure/persistence/gorm"
	"github.com/homecook/cookbook/test/testutils"
)

func TestRecipeMapperRoundTrip(t *testing.T) {
	t.Run("FlatRecipe", func(t *testing.T) {
		original := testutils.NewRecipeFactory(1).Recipe()

		restored := gormrepo.ModelToRecipe(gormrepo.RecipeToModel(original))

		assert.Equal(t, original.ID(), restored.ID())
		assert.Equal(t, original.Title(), restored.Title())
		assert.Equal(t, original.PrepTimeMinutes(), restored.PrepTimeMinutes())
		assert.Equal(t, original.Servings(), restored.Servings())
		assert.Equal(t, original.ServingsUnit(), restored.ServingsUnit())
		assert.Equal(t, original.Instructions(), restored.Instructions())
		assert.Equal(t, original.Ingredients(), restored.Ingredients())
		assert.Empty(t, restored.Sections())
	})

	t.Run("SectionedRecipe", func(t *testing.T) {
		original := testutils.NewRecipeFactory(2).SectionedRecipe()

		model := gormrepo.RecipeToModel(original)
		require.Len(t, model.Sections, 2)
		require.Len(t, model.Ingredients, 3, "section ingredients ride on the recipe rows")
		for _, ing := range model.Ingredients {
			assert.NotNil(t, ing.SectionID)
		}

		restored := gormrepo.ModelToRecipe(model)
		require.Len(t, restored.Sections(), 2)
		assert.Equal(t, "Filling", restored.Sections()[0].Name)
		assert.Len(t, restored.Sections()[0].Ingredients, 2)
		assert.Equal(t, "Topping", restored.Sections()[1].Name)
		assert.Len(t, restored.Sections()[1].Ingredients, 1)
		assert.Empty(t, restored.Ingredients())
	})

	t.Run("SectionOrderSurvivesShuffledRows", func(t *testing.T) {
		original := testutils.NewRecipeFactory(3).SectionedRecipe()
		model := gormrepo.RecipeToModel(original)

		// Databases return rows in arbitrary order.
		model.Sections[0], model.Sections[1] = model.Sections[1], model.Sections[0]

		restored := gormrepo.ModelToRecipe(model)
		require.Len(t, restored.Sections(), 2)
		assert.Equal(t, "Filling", restored.Sections()[0].Name)
		assert.Equal(t, "Topping", restored.Sections()[1].Name)
	})
}

func TestCategoryMapperRoundTrip(t *testing.T) {
	original := testutils.NewCategoryFactory(4).Category()

	restored := gormrepo.ModelToCategory(gormrepo.CategoryToModel(original))

	assert.Equal(t, original.ID(), restored.ID())
	assert.Equal(t, original.Name(), restored.Name())
	assert.Equal(t, original.Description(), restored.Description())
	assert.Equal(t, original.SortOrder(), restored.SortOrder())
}
