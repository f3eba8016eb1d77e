package types

import "strings"

// MealType is the slot a planned meal occupies within a day
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
	MealSnack     MealType = "Snack"
)

// ParseMealType matches a meal type case-insensitively.
func ParseMealType(s string) (MealType, bool) {
	for _, t := range []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack} {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, true
		}
	}
	return "", false
}

// Meal is a recipe scheduled into a meal slot
type Meal struct {
	ID     string        `json:"id"`
	Type   MealType      `json:"type"`
	Recipe RecipeSummary `json:"recipe"`
}

// MealPlan maps a yyyy-MM-dd date key to the meals planned for that day.
type MealPlan map[string][]Meal

// DateLayout is the layout of MealPlan keys.
const DateLayout = "2006-01-02"
