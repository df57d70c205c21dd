package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/othello-backend/internal/config"
	"github.com/rocketscienceinc/othello-backend/internal/repository"
	"github.com/rocketscienceinc/othello-backend/internal/repository/storage"
	"github.com/rocketscienceinc/othello-backend/internal/usecase"
	"github.com/rocketscienceinc/othello-backend/transport/rest"
)

// RunApp - runs the application until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gameRepo, closeRepo, err := newGameRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	gameManager := usecase.NewGameManager(logger, gameRepo)
	server := rest.New(logger, gameManager)

	log.Info("Starting HTTP server", "addr", conf.HTTPAddr())
	if err = server.Start(ctx, conf.HTTPAddr()); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// newGameRepository picks redis when enabled, otherwise process memory.
// Games left in redis by an earlier run are dropped.
func newGameRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.GameRepository, func(), error) {
	if !conf.Redis.Enabled {
		log.Info("Using in-memory game storage")
		return repository.NewMemoryGameRepository(), func() {}, nil
	}

	redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr(), conf.Redis.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeRedis := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	gameRepo := repository.NewGameRepository(redisStorage, conf.GameTTL)

	purged, err := gameRepo.Purge(ctx)
	if err != nil {
		closeRedis()
		return nil, nil, fmt.Errorf("could not purge stale games: %w", err)
	}

	log.Info("Using redis game storage", "addr", conf.Redis.GetRedisAddr(), "purged", purged)

	return gameRepo, closeRedis, nil
}
