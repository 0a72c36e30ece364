package assistant

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"aprova.app/config"
	"aprova.app/platform/business/aicache"
	"aprova.app/platform/mocks/business/aicache_business"
	"aprova.app/platform/mocks/business/usage_business"
	"aprova.app/platform/mocks/completion/completer"
	"aprova.app/platform/mocks/repository/assistant_repo"
	"aprova.app/platform/mocks/repository/tenant_repo"
	"aprova.app/platform/model"
)

type testDeps struct {
	repo       *assistant_repo.MockQuerier
	tenantRepo *tenant_repo.MockQuerier
	usage      *usage_business.MockBusiness
	cache      *aicache_business.MockBusiness
	completer  *completer.MockCompleter
}

func newTestBusiness(t *testing.T) (*business, *testDeps, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	deps := &testDeps{
		repo:       assistant_repo.NewMockQuerier(ctrl),
		tenantRepo: tenant_repo.NewMockQuerier(ctrl),
		usage:      usage_business.NewMockBusiness(ctrl),
		cache:      aicache_business.NewMockBusiness(ctrl),
		completer:  completer.NewMockCompleter(ctrl),
	}
	b := &business{
		repo:       deps.repo,
		tenantRepo: deps.tenantRepo,
		usage:      deps.usage,
		cache:      deps.cache,
		completer:  deps.completer,
		defaults: config.AIConfig{
			DefaultModel: "gpt-4o-mini",
			Timeout:      time.Minute,
			CacheTTL:     30 * 24 * time.Hour,
		},
		logger: slog.Default(),
	}
	return b, deps, ctrl
}

// expectRealKeys makes the cache mock derive keys the way the cache does.
func expectRealKeys(deps *testDeps) *[]model.CacheKey {
	var keys []model.CacheKey
	deps.cache.EXPECT().Key(gomock.Any()).DoAndReturn(func(input model.PromptInput) (model.CacheKey, error) {
		key, err := aicache.PromptKey(input)
		keys = append(keys, key)
		return key, err
	}).AnyTimes()
	return &keys
}

// resolveByComputing makes the cache mock behave as a miss.
func resolveByComputing(deps *testDeps) {
	deps.cache.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, key model.CacheKey, compute aicache.ComputeFunc) (*model.CachedCompletion, error) {
			c, err := compute(ctx)
			if err != nil {
				return nil, err
			}
			return &model.CachedCompletion{Completion: *c, PromptHash: key.Hash}, nil
		})
}
