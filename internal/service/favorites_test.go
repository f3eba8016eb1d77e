package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-genie/backend/internal/testhelpers"
)

func TestFavoriteService(t *testing.T) {
	ctx := context.Background()
	svc := NewFavoriteService(testhelpers.SetupSQLiteDB(t))
	owner := uuid.New()
	other := uuid.New()

	t.Run("should keep ids unique and in insertion order", func(t *testing.T) {
		require.NoError(t, svc.AddFavorite(ctx, owner, 10))
		require.NoError(t, svc.AddFavorite(ctx, owner, 20))
		require.NoError(t, svc.AddFavorite(ctx, owner, 10))

		ids, err := svc.ListFavorites(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, []int{10, 20}, ids)
	})

	t.Run("should scope favorites by owner", func(t *testing.T) {
		ids, err := svc.ListFavorites(ctx, other)
		require.NoError(t, err)
		assert.Empty(t, ids)

		ok, err := svc.IsFavorite(ctx, other, 10)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should remove favorites", func(t *testing.T) {
		require.NoError(t, svc.RemoveFavorite(ctx, owner, 10))
		require.NoError(t, svc.RemoveFavorite(ctx, owner, 999))

		ok, err := svc.IsFavorite(ctx, owner, 10)
		require.NoError(t, err)
		assert.False(t, ok)

		ids, err := svc.ListFavorites(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, []int{20}, ids)
	})

	t.Run("should reject non-positive ids", func(t *testing.T) {
		assert.ErrorIs(t, svc.AddFavorite(ctx, owner, 0), ErrInvalidRecipeID)
	})
}
