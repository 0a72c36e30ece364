package aicache

import (
	"context"
	"log/slog"
	"time"

	"aprova.app/platform/model"
	"aprova.app/platform/repository/aicache"
)

// ComputeFunc produces a completion on a cache miss.
type ComputeFunc func(ctx context.Context) (*model.Completion, error)

type Business interface {
	Key(input model.PromptInput) (model.CacheKey, error)
	Resolve(ctx context.Context, key model.CacheKey, compute ComputeFunc) (*model.CachedCompletion, error)
}

type business struct {
	repo   aicache.Querier
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// NewAICacheBusiness creates the response cache over the ai_response_cache table
func NewAICacheBusiness(repo aicache.Querier, ttl time.Duration, logger *slog.Logger) Business {
	if logger == nil {
		logger = slog.Default()
	}
	return &business{
		repo:   repo,
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
	}
}
