package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/recipe-genie/backend/internal/models"
)

// FavoriteService keeps the set of favorite recipe ids of each session owner.
type FavoriteService struct {
	db *gorm.DB
}

// NewFavoriteService creates a new FavoriteService instance
func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// AddFavorite saves recipeID for owner. Adding an id twice is a no-op.
func (s *FavoriteService) AddFavorite(ctx context.Context, owner uuid.UUID, recipeID int) error {
	if recipeID <= 0 {
		return ErrInvalidRecipeID
	}
	fav := &models.Favorite{OwnerID: owner, RecipeID: recipeID}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(fav).Error
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// RemoveFavorite drops recipeID from owner's favorites. Removing an id that
// is not saved is a no-op.
func (s *FavoriteService) RemoveFavorite(ctx context.Context, owner uuid.UUID, recipeID int) error {
	err := s.db.WithContext(ctx).
		Where("owner_id = ? AND recipe_id = ?", owner, recipeID).
		Delete(&models.Favorite{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// ListFavorites returns owner's favorite ids, oldest first.
func (s *FavoriteService) ListFavorites(ctx context.Context, owner uuid.UUID) ([]int, error) {
	var favorites []models.Favorite
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", owner).
		Order("created_at ASC").
		Find(&favorites).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	ids := make([]int, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.RecipeID)
	}
	return ids, nil
}

// IsFavorite reports whether owner saved recipeID.
func (s *FavoriteService) IsFavorite(ctx context.Context, owner uuid.UUID, recipeID int) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("owner_id = ? AND recipe_id = ?", owner, recipeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return count > 0, nil
}
