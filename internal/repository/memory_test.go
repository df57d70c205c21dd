package repository

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
	"github.com/rocketscienceinc/othello-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGameRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores and returns a copy", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository()

		// Given: a stored game after one move
		game := entity.NewGame("123")
		_, err := game.ApplyMove(2, 3, entity.Black)
		require.NoError(t, err)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: the caller keeps mutating its own value
		game.Board[0][0] = entity.White
		game.LastMove.Row = 7

		// Then: the stored game is unaffected
		stored, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, entity.Empty, stored.Board[0][0])
		assert.Equal(t, &entity.Position{Row: 2, Col: 3}, stored.LastMove)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository()

		// When: GetByID is called with non-existent ID
		game, err := gameRepo.GetByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, game)
	})

	t.Run("DeleteByID", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository()
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, entity.NewGame("123")))

		// When: the game is deleted twice
		first := gameRepo.DeleteByID(ctx, "123")
		second := gameRepo.DeleteByID(ctx, "123")

		// Then: only the first delete finds it
		require.NoError(t, first)
		require.ErrorIs(t, second, apperror.ErrGameNotFound)
	})
}
