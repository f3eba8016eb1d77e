package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pageza/recipe-genie/backend/config"
	"github.com/pageza/recipe-genie/backend/internal/database"
	"github.com/pageza/recipe-genie/backend/internal/service"
	"github.com/pageza/recipe-genie/backend/internal/types"
)

// demoMeals fills the coming days of the demo plan. The recipes are stored as
// snapshots, so seeding needs no upstream calls.
var demoMeals = []struct {
	dayOffset int
	mealType  types.MealType
	recipe    types.RecipeSummary
}{
	{0, types.MealBreakfast, types.RecipeSummary{ID: 715497, Title: "Berry Banana Breakfast Smoothie", Image: "https://img.spoonacular.com/recipes/715497-312x231.jpg", DishTypes: []string{"breakfast"}, Difficulty: types.DifficultyEasy, SpiceLevel: types.SpiceNone, DietaryClassification: types.DietVeg}},
	{0, types.MealDinner, types.RecipeSummary{ID: 716429, Title: "Pasta with Garlic, Scallions, Cauliflower & Breadcrumbs", Image: "https://img.spoonacular.com/recipes/716429-312x231.jpg", DishTypes: []string{"main course"}, Difficulty: types.DifficultyMedium, SpiceLevel: types.SpiceNone, DietaryClassification: types.DietVeg}},
	{1, types.MealLunch, types.RecipeSummary{ID: 782585, Title: "Cannellini Bean and Sausage Soup", Image: "https://img.spoonacular.com/recipes/782585-312x231.jpg", DishTypes: []string{"soup"}, Difficulty: types.DifficultyMedium, SpiceLevel: types.SpiceMedium, DietaryClassification: types.DietNonVeg}},
}

func main() {
	days := flag.Int("days", 7, "How many days the demo session stays valid")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	sessions := service.NewSessionService(cfg.JWTSecret, time.Duration(*days)*24*time.Hour)
	session, err := sessions.IssueSession()
	if err != nil {
		log.Fatalf("Failed to issue session: %v", err)
	}
	claims, err := sessions.ValidateToken(session.Token)
	if err != nil {
		log.Fatalf("Failed to read session: %v", err)
	}
	owner := claims.OwnerID

	ctx := context.Background()
	favorites := service.NewFavoriteService(db)
	plans := service.NewMealPlanService(db)
	today := time.Now().UTC()

	for _, m := range demoMeals {
		if err := favorites.AddFavorite(ctx, owner, m.recipe.ID); err != nil {
			log.Fatalf("Failed to add favorite %d: %v", m.recipe.ID, err)
		}
		date := today.AddDate(0, 0, m.dayOffset).Format(types.DateLayout)
		if _, _, err := plans.AddMeal(ctx, owner, date, string(m.mealType), m.recipe); err != nil {
			log.Fatalf("Failed to plan %q on %s: %v", m.recipe.Title, date, err)
		}
		log.Printf("Planned %s on %s: %s", m.mealType, date, m.recipe.Title)
	}

	fmt.Fprintf(os.Stdout, "Demo owner: %s\nToken: %s\n", session.OwnerID, session.Token)
}
