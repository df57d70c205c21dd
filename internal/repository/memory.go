package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
	"github.com/rocketscienceinc/othello-backend/internal/entity"
)

// MemoryGameRepository keeps games in process memory; they are gone on restart.
type MemoryGameRepository struct {
	mu    sync.RWMutex
	games map[string]entity.Game
}

func NewMemoryGameRepository() *MemoryGameRepository {
	return &MemoryGameRepository{
		games: make(map[string]entity.Game),
	}
}

func (that *MemoryGameRepository) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[game.ID] = copyGame(game)

	return nil
}

func (that *MemoryGameRepository) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	game, ok := that.games[id]
	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	stored := copyGame(&game)

	return &stored, nil
}

func (that *MemoryGameRepository) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return apperror.ErrGameNotFound
	}

	delete(that.games, id)

	return nil
}

// copyGame detaches the stored value from the caller's pointers.
func copyGame(game *entity.Game) entity.Game {
	stored := *game
	if game.LastMove != nil {
		lastMove := *game.LastMove
		stored.LastMove = &lastMove
	}

	return stored
}
