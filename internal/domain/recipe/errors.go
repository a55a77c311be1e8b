package recipe

import "errors"

// Domain errors for recipe operations

var (
	// Entity validation errors
	ErrTitleRequired      = errors.New("recipe title is required")
	ErrTitleTooLong       = errors.New("recipe title must not exceed 200 characters")
	ErrInstructionsNeeded = errors.New("recipe must have instructions or at least one section")
	ErrInvalidServings    = errors.New("servings cannot be negative")
	ErrInvalidTime        = errors.New("time values cannot be negative")

	// Value object validation errors
	ErrIngredientNameRequired = errors.New("ingredient name is required")
	ErrNegativeQuantity       = errors.New("ingredient quantity cannot be negative")
	ErrSectionNameRequired    = errors.New("section name is required")
	ErrSectionNeedsSteps      = errors.New("section must have instruction text")

	// Lookup errors
	ErrNotFound = errors.New("recipe not found")
)
