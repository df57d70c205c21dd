package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/othello-backend/internal/entity"
	"github.com/rocketscienceinc/othello-backend/internal/othello"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
}

// GameManager runs game sessions. Moves are handled one at a time so every
// click completes its whole transition before the next one is read.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo

	mu sync.Mutex
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
	}
}

func (that *GameManager) CreateGame(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame(uuid.NewString())

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn plays the current player's stone in the given game. A rejected
// move is not saved and the stored game stays as it was.
func (that *GameManager) MakeTurn(ctx context.Context, id string, row, col int) (*entity.Game, *othello.TurnReport, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", id)

	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get game: %w", err)
	}

	report, err := othello.AttemptMove(game, row, col)
	if err != nil {
		log.Debug("move rejected", "row", row, "col", col, "error", err)
		return game, nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, nil, fmt.Errorf("failed to update game: %w", err)
	}

	log.Debug("move applied", "player", report.Player, "row", row, "col", col, "flipped", report.Move.Flipped)

	for _, player := range report.Passed {
		log.Info("player passed", "player", player)
	}

	if game.IsTerminal() {
		score := game.Score()
		log.Info("game finished", "result", game.Result(), "black", score.Black, "white", score.White)
	}

	return game, report, nil
}
