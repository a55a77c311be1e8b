package recipe

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/homecook/cookbook/internal/domain/measure"
	"github.com/homecook/cookbook/internal/infrastructure/persistence/memory"
	"github.com/homecook/cookbook/internal/ports/inbound"
	"github.com/homecook/cookbook/pkg/errors"
	"github.com/homecook/cookbook/test/testutils"
)

type RecipeServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	recipeRepo   *testutils.FakeRecipeRepository
	categoryRepo *testutils.FakeCategoryRepository
	service      *Service
}

func (suite *RecipeServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.recipeRepo = testutils.NewFakeRecipeRepository()
	suite.categoryRepo = testutils.NewFakeCategoryRepository()
	suite.service = NewService(suite.recipeRepo, suite.categoryRepo, memory.NewCacheRepository(), zap.NewNop())
}

func (suite *RecipeServiceTestSuite) TestCreateRecipe() {
	suite.Run("FlatIngredients_ShouldParseEachLine", func() {
		dto, err := suite.service.CreateRecipe(suite.ctx, inbound.CreateRecipeCommand{
			Title:        "Pancakes",
			Ingredients:  "2 cups flour | 1/2 tsp salt | 3 eggs, beaten | salt to taste",
			Instructions: "Mix and fry.",
			Servings:     4,
		})

		require.NoError(suite.T(), err)
		require.Len(suite.T(), dto.Ingredients, 4)
		assert.Equal(suite.T(), "flour", dto.Ingredients[0].Name)
		require.NotNil(suite.T(), dto.Ingredients[0].Quantity)
		assert.Equal(suite.T(), 2.0, *dto.Ingredients[0].Quantity)
		assert.Equal(suite.T(), "beaten", dto.Ingredients[2].Preparation)
		assert.Nil(suite.T(), dto.Ingredients[3].Quantity)
		assert.Empty(suite.T(), dto.Sections)
		assert.Equal(suite.T(), "Mix and fry.", dto.Instructions)
		assert.Equal(suite.T(), 1, suite.recipeRepo.Len())
	})

	suite.Run("SectionMarkers_ShouldStoreSections", func() {
		dto, err := suite.service.CreateRecipe(suite.ctx, inbound.CreateRecipeCommand{
			Title:        "Cannoli",
			Ingredients:  "[Shells] 2 cups flour | 1 egg [Filling] 2 cups ricotta | 1/2 cup sugar",
			Instructions: "[Shells] Roll and fry. [Filling] Beat until smooth.",
		})

		require.NoError(suite.T(), err)
		require.Len(suite.T(), dto.Sections, 2)
		assert.Equal(suite.T(), "Shells", dto.Sections[0].Name)
		assert.Equal(suite.T(), "Roll and fry.", dto.Sections[0].Instructions)
		assert.Len(suite.T(), dto.Sections[0].Ingredients, 2)
		assert.Equal(suite.T(), "Filling", dto.Sections[1].Name)
		assert.Empty(suite.T(), dto.Ingredients)
	})

	suite.Run("UnknownCategory_ShouldFail", func() {
		missing := uuid.New()
		_, err := suite.service.CreateRecipe(suite.ctx, inbound.CreateRecipeCommand{
			Title:        "Soup",
			CategoryID:   &missing,
			Ingredients:  "1 onion",
			Instructions: "Simmer.",
		})

		require.Error(suite.T(), err)
		assert.Equal(suite.T(), errors.CodeCategoryNotFound, errors.GetCode(err))
	})

	suite.Run("KnownCategory_ShouldAttachNameToDTO", func() {
		cat := testutils.NewCategoryFactory(7).Category()
		require.NoError(suite.T(), suite.categoryRepo.Create(suite.ctx, cat))

		id := cat.ID()
		dto, err := suite.service.CreateRecipe(suite.ctx, inbound.CreateRecipeCommand{
			Title:        "Stew",
			CategoryID:   &id,
			Ingredients:  "1 pound beef",
			Instructions: "Braise.",
		})

		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), dto.CategoryID)
		assert.Equal(suite.T(), cat.Name(), dto.CategoryName)
	})

	suite.Run("EmptyTitle_ShouldFail", func() {
		_, err := suite.service.CreateRecipe(suite.ctx, inbound.CreateRecipeCommand{
			Ingredients:  "1 onion",
			Instructions: "Simmer.",
		})
		assert.Error(suite.T(), err)
	})
}

func (suite *RecipeServiceTestSuite) TestGetRecipe() {
	suite.Run("MetricTarget_ShouldConvertQuantities", func() {
		created, err := suite.service.CreateRecipe(suite.ctx, inbound.CreateRecipeCommand{
			Title:        "Bread",
			Ingredients:  "2 cups water",
			Instructions: "Knead and bake.",
		})
		require.NoError(suite.T(), err)

		dto, err := suite.service.GetRecipe(suite.ctx, created.ID, measure.TargetMetric)

		require.NoError(suite.T(), err)
		require.Len(suite.T(), dto.Ingredients, 1)
		require.NotNil(suite.T(), dto.Ingredients[0].Quantity)
		assert.Equal(suite.T(), "ml", dto.Ingredients[0].Unit)
		assert.InDelta(suite.T(), 450.0, *dto.Ingredients[0].Quantity, 0.001)
	})

	suite.Run("OriginalTarget_ShouldKeepUnits", func() {
		created, err := suite.service.CreateRecipe(suite.ctx, inbound.CreateRecipeCommand{
			Title:        "Rice",
			Ingredients:  "1 cup rice",
			Instructions: "Boil.",
		})
		require.NoError(suite.T(), err)

		dto, err := suite.service.GetRecipe(suite.ctx, created.ID, measure.TargetOriginal)

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "cup", dto.Ingredients[0].Unit)
	})

	suite.Run("SecondRead_ShouldServeFromCache", func() {
		created, err := suite.service.CreateRecipe(suite.ctx, inbound.CreateRecipeCommand{
			Title:        "Tea",
			Ingredients:  "1 tsp leaves",
			Instructions: "Steep.",
		})
		require.NoError(suite.T(), err)

		first, err := suite.service.GetRecipe(suite.ctx, created.ID, measure.TargetOriginal)
		require.NoError(suite.T(), err)

		// The repository copy goes away; the cached DTO must still serve.
		require.NoError(suite.T(), suite.recipeRepo.Delete(suite.ctx, created.ID))

		second, err := suite.service.GetRecipe(suite.ctx, created.ID, measure.TargetOriginal)
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), first.Title, second.Title)
	})

	suite.Run("MissingRecipe_ShouldReturnNotFound", func() {
		_, err := suite.service.GetRecipe(suite.ctx, uuid.New(), measure.TargetOriginal)

		require.Error(suite.T(), err)
		assert.Equal(suite.T(), errors.CodeRecipeNotFound, errors.GetCode(err))
	})
}

func (suite *RecipeServiceTestSuite) TestUpdateRecipe() {
	suite.Run("ShouldReplaceIngredientsAndInvalidateCache", func() {
		created, err := suite.service.CreateRecipe(suite.ctx, inbound.CreateRecipeCommand{
			Title:        "Salad",
			Ingredients:  "1 cucumber",
			Instructions: "Chop.",
		})
		require.NoError(suite.T(), err)

		// Warm the cache first.
		_, err = suite.service.GetRecipe(suite.ctx, created.ID, measure.TargetOriginal)
		require.NoError(suite.T(), err)

		updated, err := suite.service.UpdateRecipe(suite.ctx, inbound.UpdateRecipeCommand{
			ID:           created.ID,
			Title:        "Greek Salad",
			Ingredients:  "1 cucumber | 2 tomatoes | 1/2 cup feta, crumbled",
			Instructions: "Chop and toss.",
		})

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "Greek Salad", updated.Title)
		assert.Len(suite.T(), updated.Ingredients, 3)

		fetched, err := suite.service.GetRecipe(suite.ctx, created.ID, measure.TargetOriginal)
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "Greek Salad", fetched.Title)
	})

	suite.Run("MissingRecipe_ShouldReturnNotFound", func() {
		_, err := suite.service.UpdateRecipe(suite.ctx, inbound.UpdateRecipeCommand{
			ID:           uuid.New(),
			Title:        "Ghost",
			Ingredients:  "1 cup nothing",
			Instructions: "N/A",
		})

		require.Error(suite.T(), err)
		assert.Equal(suite.T(), errors.CodeRecipeNotFound, errors.GetCode(err))
	})
}

func (suite *RecipeServiceTestSuite) TestToggleFavorite() {
	created, err := suite.service.CreateRecipe(suite.ctx, inbound.CreateRecipeCommand{
		Title:        "Chili",
		Ingredients:  "2 pounds beef",
		Instructions: "Simmer for hours.",
	})
	require.NoError(suite.T(), err)

	on, err := suite.service.ToggleFavorite(suite.ctx, created.ID)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), on)

	off, err := suite.service.ToggleFavorite(suite.ctx, created.ID)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), off)
}

func (suite *RecipeServiceTestSuite) TestDeleteRecipe() {
	created, err := suite.service.CreateRecipe(suite.ctx, inbound.CreateRecipeCommand{
		Title:        "Toast",
		Ingredients:  "2 slices bread",
		Instructions: "Toast.",
	})
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), suite.service.DeleteRecipe(suite.ctx, created.ID))
	assert.Equal(suite.T(), 0, suite.recipeRepo.Len())

	err = suite.service.DeleteRecipe(suite.ctx, created.ID)
	assert.Equal(suite.T(), errors.CodeRecipeNotFound, errors.GetCode(err))
}

func (suite *RecipeServiceTestSuite) TestListRecipes() {
	for _, title := range []string{"Apple Pie", "Banana Bread", "Carrot Cake"} {
		_, err := suite.service.CreateRecipe(suite.ctx, inbound.CreateRecipeCommand{
			Title:        title,
			Ingredients:  "1 cup sugar",
			Instructions: "Bake.",
		})
		require.NoError(suite.T(), err)
	}

	suite.Run("DefaultSort_ShouldOrderByTitle", func() {
		list, err := suite.service.ListRecipes(suite.ctx, inbound.ListRecipesQuery{})

		require.NoError(suite.T(), err)
		assert.EqualValues(suite.T(), 3, list.Total)
		require.Len(suite.T(), list.Recipes, 3)
		assert.Equal(suite.T(), "Apple Pie", list.Recipes[0].Title)
		assert.Equal(suite.T(), 1, list.Page)
	})

	suite.Run("Search_ShouldMatchTitle", func() {
		list, err := suite.service.ListRecipes(suite.ctx, inbound.ListRecipesQuery{Search: "banana"})

		require.NoError(suite.T(), err)
		require.Len(suite.T(), list.Recipes, 1)
		assert.Equal(suite.T(), "Banana Bread", list.Recipes[0].Title)
	})

	suite.Run("Pagination_ShouldClampAndOffset", func() {
		list, err := suite.service.ListRecipes(suite.ctx, inbound.ListRecipesQuery{Page: 2, PageSize: 2})

		require.NoError(suite.T(), err)
		assert.EqualValues(suite.T(), 3, list.Total)
		require.Len(suite.T(), list.Recipes, 1)
		assert.Equal(suite.T(), "Carrot Cake", list.Recipes[0].Title)
		assert.Equal(suite.T(), 2, list.Page)
	})

	suite.Run("FavoritesOnly_ShouldFilter", func() {
		list, err := suite.service.ListRecipes(suite.ctx, inbound.ListRecipesQuery{})
		require.NoError(suite.T(), err)
		_, err = suite.service.ToggleFavorite(suite.ctx, list.Recipes[0].ID)
		require.NoError(suite.T(), err)

		favorites, err := suite.service.ListRecipes(suite.ctx, inbound.ListRecipesQuery{FavoritesOnly: true})
		require.NoError(suite.T(), err)
		require.Len(suite.T(), favorites.Recipes, 1)
		assert.True(suite.T(), favorites.Recipes[0].Favorite)
	})
}

func TestRecipeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeServiceTestSuite))
}
