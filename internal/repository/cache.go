package repository

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/rahulraj/boardcore/internal/evaluator"
)

// RedisCache serves evaluator lookups from a ScoreRepository. Storage errors
// are logged and count as misses so a search never fails on the cache.
type RedisCache struct {
	ctx    context.Context //nolint: containedctx // the evaluator cache interface has no context
	repo   ScoreRepository
	logger *slog.Logger
}

func NewRedisCache(ctx context.Context, repo ScoreRepository, logger *slog.Logger) *RedisCache {
	return &RedisCache{
		ctx:    ctx,
		repo:   repo,
		logger: logger.With("component", "redis-cache"),
	}
}

func (that *RedisCache) Load(key string) (float64, bool) {
	score, err := that.repo.Get(that.ctx, key)
	if errors.Is(err, ErrScoreNotFound) {
		return 0, false
	}

	if err != nil {
		that.logger.Warn("failed to load score", "method", "Load", "key", key, "error", err)
		return 0, false
	}

	return score, true
}

func (that *RedisCache) Store(key string, score float64) {
	if err := that.repo.Set(that.ctx, key, score); err != nil {
		that.logger.Warn("failed to store score", "method", "Store", "key", key, "error", err)
	}
}

// MemoryCache keeps scores in process memory. It is safe for concurrent use.
type MemoryCache struct {
	mu     sync.RWMutex
	scores map[string]float64
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{scores: make(map[string]float64)}
}

func (that *MemoryCache) Load(key string) (float64, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	score, ok := that.scores[key]
	return score, ok
}

func (that *MemoryCache) Store(key string, score float64) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.scores[key] = score
}

func (that *MemoryCache) Len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.scores)
}

// TieredCache reads through a fast near cache before a shared far one and
// writes to both.
type TieredCache struct {
	near evaluator.Cache
	far  evaluator.Cache
}

func NewTieredCache(near, far evaluator.Cache) *TieredCache {
	return &TieredCache{near: near, far: far}
}

func (that *TieredCache) Load(key string) (float64, bool) {
	if score, ok := that.near.Load(key); ok {
		return score, true
	}

	score, ok := that.far.Load(key)
	if ok {
		that.near.Store(key, score)
	}
	return score, ok
}

func (that *TieredCache) Store(key string, score float64) {
	that.near.Store(key, score)
	that.far.Store(key, score)
}
