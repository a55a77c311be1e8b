package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ParserTestSuite covers single-line ingredient parsing
type ParserTestSuite struct {
	suite.Suite
}

func (suite *ParserTestSuite) TestQuantityUnitName() {
	suite.Run("WholeQuantityWithUnit_ShouldSplitAllParts", func() {
		p := ParseLine("2 cups all-purpose flour")

		require.NotNil(suite.T(), p.Quantity)
		assert.Equal(suite.T(), 2.0, *p.Quantity)
		assert.Equal(suite.T(), "cups", p.Unit)
		assert.Equal(suite.T(), "all-purpose flour", p.Name)
		assert.Empty(suite.T(), p.Preparation)
		assert.False(suite.T(), p.Optional)
	})

	suite.Run("FractionQuantity_ShouldParseToDecimal", func() {
		p := ParseLine("1/2 tsp salt")

		require.NotNil(suite.T(), p.Quantity)
		assert.Equal(suite.T(), 0.5, *p.Quantity)
		assert.Equal(suite.T(), "tsp", p.Unit)
		assert.Equal(suite.T(), "salt", p.Name)
	})

	suite.Run("MixedNumber_ShouldSumWholeAndFraction", func() {
		p := ParseLine("1 1/2 cups sugar")

		require.NotNil(suite.T(), p.Quantity)
		assert.Equal(suite.T(), 1.5, *p.Quantity)
		assert.Equal(suite.T(), "cups", p.Unit)
		assert.Equal(suite.T(), "sugar", p.Name)
	})

	suite.Run("DecimalQuantity_ShouldParse", func() {
		p := ParseLine("2.5 lbs chicken thighs")

		require.NotNil(suite.T(), p.Quantity)
		assert.Equal(suite.T(), 2.5, *p.Quantity)
		assert.Equal(suite.T(), "lbs", p.Unit)
		assert.Equal(suite.T(), "chicken thighs", p.Name)
	})

	suite.Run("TwoWordUnit_ShouldMatch", func() {
		p := ParseLine("2 fl oz lime juice")

		require.NotNil(suite.T(), p.Quantity)
		assert.Equal(suite.T(), 2.0, *p.Quantity)
		assert.Equal(suite.T(), "fl oz", p.Unit)
		assert.Equal(suite.T(), "lime juice", p.Name)
	})

	suite.Run("UnitIsCaseInsensitive", func() {
		p := ParseLine("2 Cups flour")

		assert.Equal(suite.T(), "cups", p.Unit)
		assert.Equal(suite.T(), "flour", p.Name)
	})

	suite.Run("UnknownUnitToken_ShouldStayInName", func() {
		p := ParseLine("2 handfuls spinach")

		require.NotNil(suite.T(), p.Quantity)
		assert.Equal(suite.T(), 2.0, *p.Quantity)
		assert.Empty(suite.T(), p.Unit)
		assert.Equal(suite.T(), "handfuls spinach", p.Name)
	})

	suite.Run("NoQuantity_ShouldTreatWholeTextAsName", func() {
		p := ParseLine("salt to taste")

		assert.Nil(suite.T(), p.Quantity)
		assert.Empty(suite.T(), p.Unit)
		assert.Equal(suite.T(), "salt to taste", p.Name)
	})

	suite.Run("NoQuantity_UnitTokenIsNotConsumed", func() {
		// Without a leading quantity the unit vocabulary does not apply.
		p := ParseLine("pinch of nutmeg")

		assert.Nil(suite.T(), p.Quantity)
		assert.Empty(suite.T(), p.Unit)
		assert.Equal(suite.T(), "pinch of nutmeg", p.Name)
	})
}

func (suite *ParserTestSuite) TestPreparationClause() {
	suite.Run("TrailingComma_ShouldBecomePreparation", func() {
		p := ParseLine("butter, melted")

		assert.Nil(suite.T(), p.Quantity)
		assert.Empty(suite.T(), p.Unit)
		assert.Equal(suite.T(), "butter", p.Name)
		assert.Equal(suite.T(), "melted", p.Preparation)
	})

	suite.Run("QuantityUnitAndPreparation_ShouldAllParse", func() {
		p := ParseLine("2 cloves garlic, minced")

		require.NotNil(suite.T(), p.Quantity)
		assert.Equal(suite.T(), 2.0, *p.Quantity)
		assert.Equal(suite.T(), "cloves", p.Unit)
		assert.Equal(suite.T(), "garlic", p.Name)
		assert.Equal(suite.T(), "minced", p.Preparation)
	})

	suite.Run("MultipleCommas_OnlyFirstSplits", func() {
		p := ParseLine("1 cup butter, softened, divided")

		assert.Equal(suite.T(), "butter", p.Name)
		assert.Equal(suite.T(), "softened, divided", p.Preparation)
	})
}

func (suite *ParserTestSuite) TestOptionalMarker() {
	suite.Run("OptionalParenthetical_ShouldSetFlagAndBeRemoved", func() {
		p := ParseLine("parsley (optional)")

		assert.True(suite.T(), p.Optional)
		assert.Equal(suite.T(), "parsley", p.Name)
	})

	suite.Run("MarkerIsCaseInsensitive", func() {
		p := ParseLine("1/4 cup walnuts (Optional), chopped")

		assert.True(suite.T(), p.Optional)
		require.NotNil(suite.T(), p.Quantity)
		assert.Equal(suite.T(), 0.25, *p.Quantity)
		assert.Equal(suite.T(), "cup", p.Unit)
		assert.Equal(suite.T(), "walnuts", p.Name)
		assert.Equal(suite.T(), "chopped", p.Preparation)
	})

	suite.Run("MarkerMidLine_ShouldNotJoinWords", func() {
		p := ParseLine("fresh (optional) herbs")

		assert.True(suite.T(), p.Optional)
		assert.Equal(suite.T(), "fresh herbs", p.Name)
	})
}

func (suite *ParserTestSuite) TestFallback() {
	suite.Run("BareNumber_ShouldFallBackToWholeLineAsName", func() {
		// "2" parses to a quantity with nothing left for a name, so the
		// untouched line becomes the name and the quantity is dropped.
		p := ParseLine("2")

		assert.Nil(suite.T(), p.Quantity)
		assert.Empty(suite.T(), p.Unit)
		assert.Equal(suite.T(), "2", p.Name)
	})

	suite.Run("QuantityAndUnitOnly_ShouldFallBack", func() {
		p := ParseLine("2 cups")

		assert.Nil(suite.T(), p.Quantity)
		assert.Empty(suite.T(), p.Unit)
		assert.Equal(suite.T(), "2 cups", p.Name)
	})

	suite.Run("BlankLine_ShouldYieldEmptyRecord", func() {
		// Blank lines only reach ParseLine directly; block parsing skips
		// them before they get here.
		p := ParseLine("   ")

		assert.Empty(suite.T(), p.Name)
		assert.Nil(suite.T(), p.Quantity)
	})
}

func (suite *ParserTestSuite) TestParseQuantity() {
	cases := []struct {
		input string
		want  float64
	}{
		{"2", 2},
		{"2.5", 2.5},
		{"1/2", 0.5},
		{"1/4", 0.25},
		{"1/3", 0.33},
		{"2/3", 0.67},
		{"3/8", 0.375},
		{"5/8", 0.625},
		{"7/8", 0.875},
		{"1 1/2", 1.5},
		{"2 3/4", 2.75},
		{"3/5", 0.6},
	}

	for _, tc := range cases {
		got, ok := ParseQuantity(tc.input)
		require.True(suite.T(), ok, "ParseQuantity(%q)", tc.input)
		assert.Equal(suite.T(), tc.want, got, "ParseQuantity(%q)", tc.input)
	}

	for _, invalid := range []string{"", "abc", "1/0", "a/b", "1 b/c"} {
		_, ok := ParseQuantity(invalid)
		assert.False(suite.T(), ok, "ParseQuantity(%q)", invalid)
	}
}

func (suite *ParserTestSuite) TestFormatRoundTrip() {
	suite.Run("ParsedLine_ShouldRenderBack", func() {
		p := ParseLine("1/2 cup butter, melted (optional)")

		assert.Equal(suite.T(), "1/2 cup butter, melted (optional)", p.String())
	})

	suite.Run("NameOnly_ShouldRenderPlain", func() {
		p := ParseLine("salt to taste")

		assert.Equal(suite.T(), "salt to taste", p.String())
	})

	suite.Run("MixedNumber_ShouldRenderAsFraction", func() {
		p := ParseLine("1 1/2 cups sugar")

		assert.Equal(suite.T(), "1 1/2 cups sugar", p.String())
	})
}

func TestParserTestSuite(t *testing.T) {
	suite.Run(t, new(ParserTestSuite))
}
