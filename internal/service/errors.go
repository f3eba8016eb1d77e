package service

import "errors"

var (
	// ErrInvalidDate is returned for a plan date not in yyyy-MM-dd form.
	ErrInvalidDate = errors.New("invalid date, expected yyyy-MM-dd")
	// ErrInvalidMealType is returned for a meal type outside Breakfast, Lunch, Dinner and Snack.
	ErrInvalidMealType = errors.New("invalid meal type")
	// ErrInvalidRecipeID is returned for a recipe id that is not positive.
	ErrInvalidRecipeID = errors.New("recipe id must be positive")
	ErrMealNotFound    = errors.New("meal not found")
	ErrInvalidSession  = errors.New("invalid session token")
	// ErrExportDisabled is returned when no object storage is configured.
	ErrExportDisabled = errors.New("meal plan export is not configured")
)
