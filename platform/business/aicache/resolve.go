package aicache

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"aprova.app/platform/errs"
	"aprova.app/platform/metrics"
	"aprova.app/platform/model"
	"aprova.app/platform/repository/aicache"
)

// Resolve serves key from the cache or computes and stores it. Failed
// computations are never cached.
func (b *business) Resolve(ctx context.Context, key model.CacheKey, compute ComputeFunc) (*model.CachedCompletion, error) {
	if hit, ok := b.lookup(ctx, key); ok {
		metrics.CacheLookups.WithLabelValues(string(key.Type), "hit").Inc()
		return hit, nil
	}
	metrics.CacheLookups.WithLabelValues(string(key.Type), "miss").Inc()

	completion, err := compute(ctx)
	if err != nil {
		return nil, err
	}
	if completion == nil || !json.Valid(completion.Content) {
		return nil, &errs.Error{Code: errs.Unavailable, Message: "completion returned invalid JSON"}
	}

	expiresAt := b.now().Add(b.ttl)
	result := &model.CachedCompletion{
		Completion: *completion,
		PromptHash: key.Hash,
		FromCache:  false,
		ExpiresAt:  &expiresAt,
	}

	_, err = b.repo.UpsertCacheEntry(ctx, aicache.UpsertCacheEntryParams{
		PromptHash: key.Hash,
		PromptType: string(key.Type),
		AiResponse: completion.Content,
		ModelUsed:  completion.Model,
		TokensUsed: completion.TokensUsed,
		CostUsd:    completion.CostUSD,
		ExpiresAt:  pgtype.Timestamptz{Time: expiresAt, Valid: true},
	})
	if err != nil {
		b.logger.Error("failed to store AI response in cache", "prompt_hash", key.Hash, "prompt_type", key.Type, "error", err)
	}

	return result, nil
}

// lookup returns a live entry. A lookup failure degrades to a miss.
func (b *business) lookup(ctx context.Context, key model.CacheKey) (*model.CachedCompletion, bool) {
	now := b.now()
	entry, err := b.repo.GetLiveCacheEntry(ctx, aicache.GetLiveCacheEntryParams{
		PromptHash: key.Hash,
		PromptType: string(key.Type),
		Now:        pgtype.Timestamptz{Time: now, Valid: true},
	})
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			b.logger.Warn("AI cache lookup failed, treating as miss", "prompt_hash", key.Hash, "error", err)
		}
		return nil, false
	}
	if !entry.ExpiresAt.Valid || !entry.ExpiresAt.Time.After(now) {
		return nil, false
	}

	if err := b.repo.RecordCacheHit(ctx, aicache.RecordCacheHitParams{
		ID:    entry.ID,
		HitAt: pgtype.Timestamptz{Time: now, Valid: true},
	}); err != nil {
		b.logger.Warn("failed to record AI cache hit", "cache_id", entry.ID, "error", err)
	}

	expiresAt := entry.ExpiresAt.Time
	return &model.CachedCompletion{
		Completion: model.Completion{
			Content: json.RawMessage(entry.AiResponse),
			Model:   entry.ModelUsed,
		},
		PromptHash: key.Hash,
		FromCache:  true,
		ExpiresAt:  &expiresAt,
	}, true
}
