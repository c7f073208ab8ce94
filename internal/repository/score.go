package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrScoreNotFound = errors.New("score not found")

const scoreKeyPrefix = "score:"

type ScoreRepository interface {
	Set(ctx context.Context, key string, score float64) error
	Get(ctx context.Context, key string) (float64, error)
	DeleteByKey(ctx context.Context, key string) error
}

type dbScore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewScoreRepository stores scores under score:<key>. A zero ttl keeps them
// forever.
func NewScoreRepository(client *redis.Client, ttl time.Duration) ScoreRepository {
	return &dbScore{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbScore) Set(ctx context.Context, key string, score float64) error {
	value := strconv.FormatFloat(score, 'g', -1, 64)

	if err := that.client.Set(ctx, scoreKeyPrefix+key, value, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set score: %w", err)
	}

	return nil
}

func (that *dbScore) Get(ctx context.Context, key string) (float64, error) {
	score, err := that.client.Get(ctx, scoreKeyPrefix+key).Float64()

	if errors.Is(err, redis.Nil) {
		return 0, ErrScoreNotFound
	}

	if err != nil {
		return 0, fmt.Errorf("failed to get score %s: %w", key, err)
	}

	return score, nil
}

func (that *dbScore) DeleteByKey(ctx context.Context, key string) error {
	if err := that.client.Del(ctx, scoreKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete score by key: %w", err)
	}

	return nil
}
