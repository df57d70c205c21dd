package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/othello-backend/internal/apperror"
	"github.com/rocketscienceinc/othello-backend/internal/entity"
)

const (
	gameKeyPrefix = "othello:game:"
	purgeBatch    = 100
)

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

var (
	_ GameRepository = (*RedisGameRepository)(nil)
	_ GameRepository = (*MemoryGameRepository)(nil)
)

type RedisGameRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGameRepository stores games in redis. A zero ttl keeps keys until deleted.
func NewGameRepository(client *redis.Client, ttl time.Duration) *RedisGameRepository {
	return &RedisGameRepository{
		client: client,
		ttl:    ttl,
	}
}

func (that *RedisGameRepository) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	err = that.client.Set(ctx, gameKey(game.ID), gameJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *RedisGameRepository) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	response, err := that.client.Get(ctx, gameKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal([]byte(response), &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func (that *RedisGameRepository) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, gameKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game by id: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrGameNotFound
	}

	return nil
}

// Purge removes every stored game and returns how many were dropped.
func (that *RedisGameRepository) Purge(ctx context.Context) (int, error) {
	var (
		cursor uint64
		total  int
	)

	for {
		keys, next, err := that.client.Scan(ctx, cursor, gameKeyPrefix+"*", purgeBatch).Result()
		if err != nil {
			return total, fmt.Errorf("failed to scan games: %w", err)
		}

		if len(keys) > 0 {
			deleted, err := that.client.Del(ctx, keys...).Result()
			if err != nil {
				return total, fmt.Errorf("failed to delete games: %w", err)
			}
			total += int(deleted)
		}

		if next == 0 {
			return total, nil
		}
		cursor = next
	}
}

func gameKey(id string) string {
	return gameKeyPrefix + id
}
