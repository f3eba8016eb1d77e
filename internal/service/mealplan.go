package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/recipe-genie/backend/internal/models"
	"github.com/pageza/recipe-genie/backend/internal/types"
)

// MealPlanService keeps each owner's meal plan, keyed by date.
type MealPlanService struct {
	db *gorm.DB
}

// NewMealPlanService creates a new MealPlanService instance
func NewMealPlanService(db *gorm.DB) *MealPlanService {
	return &MealPlanService{db: db}
}

// ParsePlanDate validates a yyyy-MM-dd date key.
func ParsePlanDate(date string) (string, error) {
	t, err := time.Parse(types.DateLayout, date)
	if err != nil {
		return "", ErrInvalidDate
	}
	return t.Format(types.DateLayout), nil
}

// AddMeal plans recipe as mealType on date. When the same recipe is already
// planned for that meal type on that date the existing meal is returned and
// created is false.
func (s *MealPlanService) AddMeal(ctx context.Context, owner uuid.UUID, date, mealType string, recipe types.RecipeSummary) (meal types.Meal, created bool, err error) {
	date, err = ParsePlanDate(date)
	if err != nil {
		return types.Meal{}, false, err
	}
	t, ok := types.ParseMealType(mealType)
	if !ok {
		return types.Meal{}, false, ErrInvalidMealType
	}
	if recipe.ID <= 0 {
		return types.Meal{}, false, ErrInvalidRecipeID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.PlannedMeal
		err := tx.Where("owner_id = ? AND plan_date = ? AND recipe_id = ? AND meal_type = ?", owner, date, recipe.ID, string(t)).
			First(&existing).Error
		if err == nil {
			meal = existing.ToMeal()
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		row := &models.PlannedMeal{
			OwnerID:  owner,
			PlanDate: date,
			MealType: string(t),
			RecipeID: recipe.ID,
			Recipe:   models.RecipeSnapshot(recipe),
		}
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		meal = row.ToMeal()
		created = true
		return nil
	})
	if err != nil {
		return types.Meal{}, false, fmt.Errorf("failed to add meal: %w", err)
	}
	return meal, created, nil
}

// RemoveMeal deletes one meal from date. Once the last meal of a date is
// removed the date no longer appears in the plan.
func (s *MealPlanService) RemoveMeal(ctx context.Context, owner uuid.UUID, date, mealID string) error {
	date, err := ParsePlanDate(date)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(mealID)
	if err != nil {
		return ErrMealNotFound
	}

	result := s.db.WithContext(ctx).
		Where("id = ? AND owner_id = ? AND plan_date = ?", id, owner, date).
		Delete(&models.PlannedMeal{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove meal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}

// MealsForDate returns the meals planned on date in the order they were added.
func (s *MealPlanService) MealsForDate(ctx context.Context, owner uuid.UUID, date string) ([]types.Meal, error) {
	date, err := ParsePlanDate(date)
	if err != nil {
		return nil, err
	}

	var rows []models.PlannedMeal
	err = s.db.WithContext(ctx).
		Where("owner_id = ? AND plan_date = ?", owner, date).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}

	meals := make([]types.Meal, 0, len(rows))
	for _, r := range rows {
		meals = append(meals, r.ToMeal())
	}
	return meals, nil
}

// Plan returns owner's whole meal plan.
func (s *MealPlanService) Plan(ctx context.Context, owner uuid.UUID) (types.MealPlan, error) {
	var rows []models.PlannedMeal
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", owner).
		Order("plan_date ASC, created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load meal plan: %w", err)
	}

	plan := types.MealPlan{}
	for _, r := range rows {
		plan[r.PlanDate] = append(plan[r.PlanDate], r.ToMeal())
	}
	return plan, nil
}
