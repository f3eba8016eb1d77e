package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite is one recipe id saved by a session owner.
type Favorite struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	OwnerID   uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_favorites_owner_recipe" json:"owner_id"`
	RecipeID  int       `gorm:"not null;uniqueIndex:idx_favorites_owner_recipe" json:"recipe_id"`
}

func (Favorite) TableName() string {
	return "recipe_favorites"
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
