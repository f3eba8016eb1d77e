package types

// Difficulty is a heuristic derived from upstream health/cost flags.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// SpiceLevel is derived from ingredient names.
type SpiceLevel string

const (
	SpiceNone   SpiceLevel = "None"
	SpiceMild   SpiceLevel = "Mild"
	SpiceMedium SpiceLevel = "Medium"
	SpiceSpicy  SpiceLevel = "Spicy"
)

// DietaryClassification is derived from the upstream vegan/vegetarian flags.
type DietaryClassification string

const (
	DietVegan  DietaryClassification = "Vegan"
	DietVeg    DietaryClassification = "Veg"
	DietNonVeg DietaryClassification = "Non-Veg"
)

// Nutrition holds a partial macro breakdown. A nil field means unknown, not zero.
type Nutrition struct {
	Calories *float64 `json:"calories,omitempty"`
	Fat      *float64 `json:"fat,omitempty"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
}

// RecipeSummary is the lightweight representation used by browse cards
type RecipeSummary struct {
	ID                    int                   `json:"id"`
	Title                 string                `json:"title"`
	Image                 string                `json:"image"`
	ReadyInMinutes        *int                  `json:"readyInMinutes,omitempty"`
	Servings              *int                  `json:"servings,omitempty"`
	DishTypes             []string              `json:"dishTypes"`
	Difficulty            Difficulty            `json:"difficulty"`
	SpiceLevel            SpiceLevel            `json:"spiceLevel"`
	DietaryClassification DietaryClassification `json:"dietaryClassification"`
	SpoonacularScore      *float64              `json:"spoonacularScore,omitempty"`
	Nutrition             *Nutrition            `json:"nutrition,omitempty"`
}

// Ingredient is a single line of a detailed recipe
type Ingredient struct {
	Name    string  `json:"name"`
	Measure string  `json:"measure"`
	Image   *string `json:"image,omitempty"`
}

// Variations is reserved for preparation and regional variants.
type Variations struct {
	Preparation []string `json:"preparation"`
	Regional    []string `json:"regional"`
}

// RecipeWithDetails is the full recipe record shown on the detail view.
// Nutrition is always present; its fields may individually be unknown.
type RecipeWithDetails struct {
	RecipeSummary
	Instructions []string     `json:"instructions"`
	Tags         []string     `json:"tags"`
	SourceURL    *string      `json:"sourceUrl,omitempty"`
	Ingredients  []Ingredient `json:"ingredients"`
	Equipment    []string     `json:"equipment"`
	Nutrition    Nutrition    `json:"nutrition"`
	Variations   Variations   `json:"variations"`
}

// IngredientSubstitution is passed through from the upstream substitutes endpoint
type IngredientSubstitution struct {
	Ingredient  string   `json:"ingredient"`
	Substitutes []string `json:"substitutes"`
	Message     string   `json:"message"`
}
