package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// SectionsTestSuite covers block and section-marked parsing
type SectionsTestSuite struct {
	suite.Suite
}

func (suite *SectionsTestSuite) TestParseBlock() {
	suite.Run("PipeSeparated_ShouldParseEachLine", func() {
		lines := ParseBlock("2 cups flour|1 tsp salt|1/2 cup butter, melted")

		require.Len(suite.T(), lines, 3)
		assert.Equal(suite.T(), "flour", lines[0].Name)
		assert.Equal(suite.T(), "salt", lines[1].Name)
		assert.Equal(suite.T(), "butter", lines[2].Name)
		assert.Equal(suite.T(), "melted", lines[2].Preparation)
	})

	suite.Run("BlankSegments_ShouldBeSkipped", func() {
		lines := ParseBlock("2 cups flour||  |1 tsp salt|")

		require.Len(suite.T(), lines, 2)
		assert.Equal(suite.T(), "flour", lines[0].Name)
		assert.Equal(suite.T(), "salt", lines[1].Name)
	})

	suite.Run("EmptyInput_ShouldYieldNothing", func() {
		assert.Empty(suite.T(), ParseBlock(""))
	})
}

func (suite *SectionsTestSuite) TestParseSectioned() {
	suite.Run("TwoSections_ShouldSplitInSourceOrder", func() {
		input := "[Shell]2 cups flour|1/2 cup butter[Filling]2 cups ricotta|1 cup sugar"

		sections := ParseSectioned(input)

		require.Len(suite.T(), sections, 2)

		assert.Equal(suite.T(), "Shell", sections[0].Name)
		require.Len(suite.T(), sections[0].Ingredients, 2)
		assert.Equal(suite.T(), "flour", sections[0].Ingredients[0].Name)
		assert.Equal(suite.T(), "butter", sections[0].Ingredients[1].Name)
		require.NotNil(suite.T(), sections[0].Ingredients[1].Quantity)
		assert.Equal(suite.T(), 0.5, *sections[0].Ingredients[1].Quantity)

		assert.Equal(suite.T(), "Filling", sections[1].Name)
		require.Len(suite.T(), sections[1].Ingredients, 2)
		assert.Equal(suite.T(), "ricotta", sections[1].Ingredients[0].Name)
		assert.Equal(suite.T(), "sugar", sections[1].Ingredients[1].Name)
	})

	suite.Run("NoMarkers_ShouldYieldSingleUnnamedSection", func() {
		sections := ParseSectioned("2 cups flour|1 tsp salt")

		require.Len(suite.T(), sections, 1)
		assert.Empty(suite.T(), sections[0].Name)
		assert.Len(suite.T(), sections[0].Ingredients, 2)
	})

	suite.Run("TextBeforeFirstMarker_ShouldBeDiscarded", func() {
		sections := ParseSectioned("stray text[Shell]2 cups flour")

		require.Len(suite.T(), sections, 1)
		assert.Equal(suite.T(), "Shell", sections[0].Name)
	})
}

func (suite *SectionsTestSuite) TestHasSections() {
	assert.True(suite.T(), HasSections("[Shell]2 cups flour"))
	assert.False(suite.T(), HasSections("2 cups flour|1 tsp salt"))
}

func (suite *SectionsTestSuite) TestAssembleSections() {
	suite.Run("MatchingBlocks_ShouldMergeByName", func() {
		ingredients := "[Shell]2 cups flour|1/2 cup butter[Filling]2 cups ricotta"
		instructions := "[Shell]Mix and press into pan.[Filling]Beat until smooth."

		sections := AssembleSections(ingredients, instructions)

		require.Len(suite.T(), sections, 2)
		assert.Equal(suite.T(), "Shell", sections[0].Name)
		assert.Len(suite.T(), sections[0].Ingredients, 2)
		assert.Equal(suite.T(), "Mix and press into pan.", sections[0].Instructions)
		assert.Equal(suite.T(), "Filling", sections[1].Name)
		assert.Equal(suite.T(), "Beat until smooth.", sections[1].Instructions)
	})

	suite.Run("SectionWithoutInstructions_ShouldBeDropped", func() {
		ingredients := "[Shell]2 cups flour[Garnish]1/4 cup parsley"
		instructions := "[Shell]Mix and press into pan."

		sections := AssembleSections(ingredients, instructions)

		require.Len(suite.T(), sections, 1)
		assert.Equal(suite.T(), "Shell", sections[0].Name)
	})

	suite.Run("InstructionOnlySection_ShouldSurvive", func() {
		sections := AssembleSections("", "[Assembly]Layer and chill overnight.")

		require.Len(suite.T(), sections, 1)
		assert.Equal(suite.T(), "Assembly", sections[0].Name)
		assert.Empty(suite.T(), sections[0].Ingredients)
		assert.Equal(suite.T(), "Layer and chill overnight.", sections[0].Instructions)
	})

	suite.Run("InstructionBodies_AreNotPipeSplit", func() {
		sections := AssembleSections(
			"[Shell]2 cups flour",
			"[Shell]Mix|press|bake",
		)

		require.Len(suite.T(), sections, 1)
		assert.Equal(suite.T(), "Mix|press|bake", sections[0].Instructions)
	})
}

func TestSectionsTestSuite(t *testing.T) {
	suite.Run(t, new(SectionsTestSuite))
}
