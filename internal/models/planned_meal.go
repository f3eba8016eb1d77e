package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/recipe-genie/backend/internal/types"
)

// RecipeSnapshot stores the summary a meal was planned with as JSON, so the
// plan renders without calling the upstream API again.
type RecipeSnapshot types.RecipeSummary

// Value implements the driver.Valuer interface
func (r RecipeSnapshot) Value() (driver.Value, error) {
	return json.Marshal(types.RecipeSummary(r))
}

// Scan implements the sql.Scanner interface
func (r *RecipeSnapshot) Scan(value interface{}) error {
	var bytes []byte
	switch v := value.(type) {
	case nil:
		*r = RecipeSnapshot{}
		return nil
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported recipe snapshot type %T", value)
	}

	var summary types.RecipeSummary
	if err := json.Unmarshal(bytes, &summary); err != nil {
		return err
	}
	*r = RecipeSnapshot(summary)
	return nil
}

// PlannedMeal is one meal in an owner's plan. A date with no rows is absent
// from the plan.
type PlannedMeal struct {
	ID        uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	OwnerID   uuid.UUID      `gorm:"type:varchar(36);not null;index:idx_planned_meals_owner_date" json:"owner_id"`
	PlanDate  string         `gorm:"size:10;not null;index:idx_planned_meals_owner_date" json:"plan_date"`
	MealType  string         `gorm:"size:16;not null" json:"meal_type"`
	RecipeID  int            `gorm:"not null" json:"recipe_id"`
	Recipe    RecipeSnapshot `gorm:"type:jsonb;not null" json:"recipe"`
}

func (PlannedMeal) TableName() string {
	return "planned_meals"
}

func (m *PlannedMeal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// ToMeal converts the row to its API shape.
func (m PlannedMeal) ToMeal() types.Meal {
	return types.Meal{
		ID:     m.ID.String(),
		Type:   types.MealType(m.MealType),
		Recipe: types.RecipeSummary(m.Recipe),
	}
}
