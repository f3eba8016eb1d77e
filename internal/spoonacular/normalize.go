package spoonacular

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pageza/recipe-genie/backend/internal/types"
)

// Defaults substituted for missing upstream fields
const (
	DefaultTitle          = "Untitled Recipe"
	DefaultImage          = "https://placehold.co/600x400.png"
	IngredientImagePrefix = "https://spoonacular.com/cdn/ingredients_100x100/"
)

// SpiceTerms are matched case-insensitively as substrings of ingredient names.
var SpiceTerms = []string{
	"chili", "chile", "jalapeño", "habanero", "cayenne", "paprika", "sriracha", "gochujang",
	"wasabi", "horseradish", "pepperoncini", "tabasco", "ghost pepper",
}

// DeriveDifficulty maps the upstream health and cost flags onto a difficulty.
// This is a proxy heuristic, not a judgement about cooking effort: the
// "very healthy" flag is checked first, "cheap" second, Hard otherwise.
func DeriveDifficulty(veryHealthy, cheap bool) types.Difficulty {
	if veryHealthy {
		return types.DifficultyEasy
	}
	if cheap {
		return types.DifficultyMedium
	}
	return types.DifficultyHard
}

// DeriveSpiceLevel counts ingredients whose name mentions a spice term. Each
// ingredient counts once however many terms it mentions.
//
// NOTE: SpiceMild is never produced. Any positive count below three already
// maps to Medium; product review should decide whether Mild is wanted.
func DeriveSpiceLevel(ingredientNames []string) types.SpiceLevel {
	mentions := 0
	for _, name := range ingredientNames {
		lower := strings.ToLower(name)
		for _, term := range SpiceTerms {
			if strings.Contains(lower, term) {
				mentions++
				break
			}
		}
	}

	switch {
	case mentions >= 3:
		return types.SpiceSpicy
	case mentions >= 1:
		return types.SpiceMedium
	default:
		return types.SpiceNone
	}
}

// DeriveDietaryClassification reads the vegan flag before the vegetarian one.
func DeriveDietaryClassification(vegan, vegetarian bool) types.DietaryClassification {
	if vegan {
		return types.DietVegan
	}
	if vegetarian {
		return types.DietVeg
	}
	return types.DietNonVeg
}

// ToSummary normalizes one upstream recipe record.
func ToSummary(data json.RawMessage) types.RecipeSummary {
	return summaryFromRaw(parseRecipe(data))
}

// ToDetails normalizes one upstream recipe record into the detail shape.
func ToDetails(data json.RawMessage) types.RecipeWithDetails {
	return detailsFromRaw(parseRecipe(data))
}

// ToSummaries normalizes every record of a list response.
func ToSummaries(data json.RawMessage) []types.RecipeSummary {
	items := parseResultList(data)
	summaries := make([]types.RecipeSummary, 0, len(items))
	for _, item := range items {
		summaries = append(summaries, ToSummary(item))
	}
	return summaries
}

// ListIDs returns the recipe ids of a list response in order.
func ListIDs(data json.RawMessage) []int {
	return parseIDs(parseResultList(data))
}

// ToSubstitution reads the substitutes payload. Missing fields stay empty.
func ToSubstitution(data json.RawMessage) types.IngredientSubstitution {
	sub := types.IngredientSubstitution{Substitutes: []string{}}
	obj, ok := parseObject(data)
	if !ok {
		return sub
	}
	if v := obj.str("ingredient"); v != nil {
		sub.Ingredient = *v
	}
	if v := obj.strList("substitutes"); v != nil {
		sub.Substitutes = v
	}
	if v := obj.str("message"); v != nil {
		sub.Message = *v
	}
	return sub
}

// FilterByDifficulty keeps the summaries whose derived difficulty matches,
// ignoring case. An empty difficulty or "all" keeps everything.
func FilterByDifficulty(summaries []types.RecipeSummary, difficulty string) []types.RecipeSummary {
	difficulty = strings.TrimSpace(difficulty)
	if difficulty == "" || strings.EqualFold(difficulty, "all") {
		return summaries
	}
	filtered := make([]types.RecipeSummary, 0, len(summaries))
	for _, s := range summaries {
		if strings.EqualFold(string(s.Difficulty), difficulty) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

func summaryFromRaw(r rawRecipe) types.RecipeSummary {
	s := types.RecipeSummary{
		Title:                 DefaultTitle,
		Image:                 DefaultImage,
		ReadyInMinutes:        r.ReadyInMinutes,
		Servings:              r.Servings,
		DishTypes:             []string{},
		Difficulty:            DeriveDifficulty(r.VeryHealthy, r.Cheap),
		SpiceLevel:            DeriveSpiceLevel(ingredientNames(r.ExtendedIngredients)),
		DietaryClassification: DeriveDietaryClassification(r.Vegan, r.Vegetarian),
		SpoonacularScore:      r.SpoonacularScore,
	}
	if r.ID != nil {
		s.ID = *r.ID
	}
	if r.Title != nil && *r.Title != "" {
		s.Title = *r.Title
	}
	if r.Image != nil && *r.Image != "" {
		s.Image = *r.Image
	}
	if r.DishTypes != nil {
		s.DishTypes = r.DishTypes
	}
	if r.Nutrition != nil {
		n := nutritionFromRaw(r.Nutrition)
		s.Nutrition = &n
	}
	return s
}

func detailsFromRaw(r rawRecipe) types.RecipeWithDetails {
	summary := summaryFromRaw(r)

	d := types.RecipeWithDetails{
		RecipeSummary: summary,
		Instructions:  []string{},
		Tags:          append([]string{}, summary.DishTypes...),
		SourceURL:     r.SourceURL,
		Ingredients:   make([]types.Ingredient, 0, len(r.ExtendedIngredients)),
		Equipment:     []string{},
		Nutrition:     nutritionFromRaw(r.Nutrition),
		Variations: types.Variations{
			Preparation: []string{},
			Regional:    []string{},
		},
	}

	for _, ing := range r.ExtendedIngredients {
		item := types.Ingredient{Measure: measure(ing)}
		if ing.Name != nil {
			item.Name = *ing.Name
		}
		if ing.Image != nil && *ing.Image != "" {
			img := IngredientImagePrefix + *ing.Image
			item.Image = &img
		}
		d.Ingredients = append(d.Ingredients, item)
	}

	// Only the first instruction group is used.
	if len(r.AnalyzedInstructions) > 0 {
		seen := make(map[string]bool)
		for _, step := range r.AnalyzedInstructions[0].Steps {
			if step.Step != nil {
				d.Instructions = append(d.Instructions, *step.Step)
			}
			for _, name := range step.Equipment {
				if !seen[name] {
					seen[name] = true
					d.Equipment = append(d.Equipment, name)
				}
			}
		}
	}

	return d
}

func nutritionFromRaw(n *rawNutrition) types.Nutrition {
	var out types.Nutrition
	if n == nil {
		return out
	}
	out.Calories = nutrientAmount(n, "Calories")
	out.Fat = nutrientAmount(n, "Fat")
	out.Protein = nutrientAmount(n, "Protein")
	out.Carbs = nutrientAmount(n, "Carbohydrates")
	return out
}

func nutrientAmount(n *rawNutrition, name string) *float64 {
	for _, nut := range n.Nutrients {
		if nut.Name == name {
			return nut.Amount
		}
	}
	return nil
}

func ingredientNames(ings []rawIngredient) []string {
	names := make([]string, 0, len(ings))
	for _, ing := range ings {
		if ing.Name != nil {
			names = append(names, *ing.Name)
		}
	}
	return names
}

func measure(ing rawIngredient) string {
	var parts []string
	if ing.Amount != nil {
		parts = append(parts, strconv.FormatFloat(*ing.Amount, 'f', -1, 64))
	}
	if ing.Unit != nil && *ing.Unit != "" {
		parts = append(parts, *ing.Unit)
	}
	return strings.Join(parts, " ")
}
