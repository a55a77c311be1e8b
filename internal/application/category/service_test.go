package category

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/homecook/cookbook/pkg/errors"
	"github.com/homecook/cookbook/test/testutils"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    *testutils.FakeCategoryRepository
	service *Service
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repo = testutils.NewFakeCategoryRepository()
	suite.service = NewService(suite.repo, zap.NewNop())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory() {
	suite.Run("NewName_ShouldCreate", func() {
		dto, err := suite.service.CreateCategory(suite.ctx, "  Weeknight Dinners  ")

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "Weeknight Dinners", dto.Name)
		assert.NotEqual(suite.T(), uuid.Nil, dto.ID)
	})

	suite.Run("DuplicateName_ShouldConflict", func() {
		_, err := suite.service.CreateCategory(suite.ctx, "Desserts")
		require.NoError(suite.T(), err)

		_, err = suite.service.CreateCategory(suite.ctx, "desserts")

		require.Error(suite.T(), err)
		assert.Equal(suite.T(), errors.CodeCategoryExists, errors.GetCode(err))
	})

	suite.Run("EmptyName_ShouldFail", func() {
		_, err := suite.service.CreateCategory(suite.ctx, "   ")
		assert.Error(suite.T(), err)
	})
}

func (suite *CategoryServiceTestSuite) TestRenameCategory() {
	suite.Run("NewName_ShouldRename", func() {
		created, err := suite.service.CreateCategory(suite.ctx, "Sides")
		require.NoError(suite.T(), err)

		dto, err := suite.service.RenameCategory(suite.ctx, created.ID, "Side Dishes")

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "Side Dishes", dto.Name)
	})

	suite.Run("TakenName_ShouldConflict", func() {
		first, err := suite.service.CreateCategory(suite.ctx, "Soups")
		require.NoError(suite.T(), err)
		_, err = suite.service.CreateCategory(suite.ctx, "Stews")
		require.NoError(suite.T(), err)

		_, err = suite.service.RenameCategory(suite.ctx, first.ID, "Stews")

		assert.Equal(suite.T(), errors.CodeCategoryExists, errors.GetCode(err))
	})

	suite.Run("SameName_ShouldBeAllowed", func() {
		created, err := suite.service.CreateCategory(suite.ctx, "Breads")
		require.NoError(suite.T(), err)

		_, err = suite.service.RenameCategory(suite.ctx, created.ID, "Breads")
		assert.NoError(suite.T(), err)
	})

	suite.Run("MissingCategory_ShouldReturnNotFound", func() {
		_, err := suite.service.RenameCategory(suite.ctx, uuid.New(), "Anything")
		assert.Equal(suite.T(), errors.CodeCategoryNotFound, errors.GetCode(err))
	})
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory() {
	suite.Run("EmptyCategory_ShouldDelete", func() {
		created, err := suite.service.CreateCategory(suite.ctx, "Empty")
		require.NoError(suite.T(), err)

		require.NoError(suite.T(), suite.service.DeleteCategory(suite.ctx, created.ID))

		list, err := suite.service.ListCategories(suite.ctx)
		require.NoError(suite.T(), err)
		assert.Empty(suite.T(), list)
	})

	suite.Run("CategoryWithRecipes_ShouldConflict", func() {
		created, err := suite.service.CreateCategory(suite.ctx, "Busy")
		require.NoError(suite.T(), err)
		suite.repo.Counts[created.ID] = 3

		err = suite.service.DeleteCategory(suite.ctx, created.ID)

		assert.Equal(suite.T(), errors.CodeCategoryInUse, errors.GetCode(err))
	})
}

func (suite *CategoryServiceTestSuite) TestListCategories() {
	for _, name := range []string{"Mains", "Desserts", "Breakfast"} {
		_, err := suite.service.CreateCategory(suite.ctx, name)
		require.NoError(suite.T(), err)
	}

	list, err := suite.service.ListCategories(suite.ctx)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), list, 3)
	// All created with sort order 0, so names decide the order.
	assert.Equal(suite.T(), "Breakfast", list[0].Name)
	assert.Equal(suite.T(), "Desserts", list[1].Name)
	assert.Equal(suite.T(), "Mains", list[2].Name)
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
