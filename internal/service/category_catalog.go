package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"trivia-api/internal/cache"
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// catalogLoadTimeout bounds a shared repository load, which outlives any single caller.
const catalogLoadTimeout = 10 * time.Second

// CategoryCatalog serves the ordered category list, read through the cache when one is configured.
// Cache failures are logged and fall back to the repository. Concurrent misses share one load.
//
// Cached lists are keyed by a generation counter that Invalidate bumps. A load captures the
// generation before reading the repository, so a list read before a mutation can only be
// stored under a generation no later reader asks for.
type CategoryCatalog struct {
	repo  domain.CategoryRepository
	cache domain.Cache
	ttl   time.Duration
	group singleflight.Group
}

// NewCategoryCatalog accepts a nil cache.
func NewCategoryCatalog(repo domain.CategoryRepository, c domain.Cache, ttl time.Duration) *CategoryCatalog {
	return &CategoryCatalog{repo: repo, cache: c, ttl: ttl}
}

func (c *CategoryCatalog) List(ctx context.Context) ([]*domain.Category, error) {
	if c.cache == nil {
		return c.share(ctx, "")
	}

	generation, err := c.generation(ctx)
	if err != nil {
		logger.Get().Warn("Category cache generation read failed", zap.Error(err))
		return c.share(ctx, "")
	}

	key := cache.CategoryListKey(generation)
	raw, err := c.cache.Get(ctx, key)
	switch {
	case err == nil:
		var cached []dto.CategoryResponse
		if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
			return fromCategoryResponses(cached), nil
		}
		logger.Get().Warn("Discarding undecodable cached category list", zap.String("key", key))
	case !errors.Is(err, domain.ErrCacheMiss):
		logger.Get().Warn("Category cache read failed", zap.String("key", key), zap.Error(err))
	}
	return c.share(ctx, key)
}

// share runs one load per key for all concurrent callers. Each caller stops waiting when its own
// ctx ends; the load itself keeps running for the others. An empty key loads without storing.
func (c *CategoryCatalog) share(ctx context.Context, key string) ([]*domain.Category, error) {
	flight := key
	if flight == "" {
		flight = "uncached"
	}
	ch := c.group.DoChan(flight, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), catalogLoadTimeout)
		defer cancel()
		return c.load(loadCtx, key)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]*domain.Category), nil
	}
}

func (c *CategoryCatalog) load(ctx context.Context, key string) ([]*domain.Category, error) {
	categories, err := c.repo.ListCategories(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to list categories", err)
	}

	if key != "" {
		data, err := json.Marshal(dto.NewCategoryResponses(categories))
		if err == nil {
			err = c.cache.Set(ctx, key, string(data), c.ttl)
		}
		if err != nil {
			logger.Get().Warn("Category cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return categories, nil
}

// generation reads the current list generation; an absent counter is generation 0.
func (c *CategoryCatalog) generation(ctx context.Context) (int64, error) {
	raw, err := c.cache.Get(ctx, cache.CategoryListGenerationKey())
	if errors.Is(err, domain.ErrCacheMiss) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(raw, 10, 64)
}

// Invalidate retires the cached list after a category mutation. It runs to completion even when
// the request that made the mutation has gone away.
func (c *CategoryCatalog) Invalidate(ctx context.Context) {
	if c.cache == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)
	generation, err := c.cache.Incr(ctx, cache.CategoryListGenerationKey())
	if err != nil {
		logger.Get().Warn("Category cache invalidation failed", zap.Error(err))
		return
	}
	// nothing reads the previous generation anymore
	if err := c.cache.Delete(ctx, cache.CategoryListKey(generation-1)); err != nil {
		logger.Get().Warn("Dropping retired category list failed", zap.Error(err))
	}
}

func fromCategoryResponses(in []dto.CategoryResponse) []*domain.Category {
	out := make([]*domain.Category, len(in))
	for i, c := range in {
		out[i] = &domain.Category{ID: c.ID, Type: c.Type}
	}
	return out
}
