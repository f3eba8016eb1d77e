package types

// AddFavoriteRequest represents the request body for saving a favorite recipe
type AddFavoriteRequest struct {
	RecipeID int `json:"recipe_id" binding:"required,gt=0"`
}

// AddMealRequest represents the request body for planning a meal
type AddMealRequest struct {
	Type   string        `json:"type" binding:"required,oneof=Breakfast Lunch Dinner Snack breakfast lunch dinner snack"`
	Recipe RecipeSummary `json:"recipe"`
}

// SessionResponse is returned when an anonymous session is issued
type SessionResponse struct {
	Token     string `json:"token"`
	OwnerID   string `json:"owner_id"`
	ExpiresAt int64  `json:"expires_at"`
}

// PlanExportResponse carries a time-limited link to an exported meal plan
type PlanExportResponse struct {
	URL       string `json:"url"`
	ExpiresIn int64  `json:"expires_in"`
}

// SearchPreset is a canned search linked from the diets and menus pages
type SearchPreset struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Query       map[string]string `json:"query"`
}
