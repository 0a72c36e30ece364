package assistant

import (
	"context"
	"log/slog"

	"aprova.app/config"
	"aprova.app/platform/business/aicache"
	"aprova.app/platform/business/usage"
	"aprova.app/platform/completion"
	"aprova.app/platform/model"
	"aprova.app/platform/repository/assistant"
	"aprova.app/platform/repository/tenants"
)

type Business interface {
	GenerateClientProfile(ctx context.Context, req *model.ClientProfileRequest) (*model.GenerationResult[*model.ClientProfile], error)
	GenerateMonthlyPlan(ctx context.Context, req *model.MonthlyPlanRequest) (*model.GenerationResult[*model.MonthlyPlan], error)
}

// business runs AI generations behind the usage gate and the response cache
type business struct {
	repo       assistant.Querier
	tenantRepo tenants.Querier
	usage      usage.Business
	cache      aicache.Business
	completer  completion.Completer
	defaults   config.AIConfig
	logger     *slog.Logger
}

// NewAssistantBusiness creates the AI assistant. defaults supplies the model
// used when an agency has no AI configuration of its own.
func NewAssistantBusiness(
	repo assistant.Querier,
	tenantRepo tenants.Querier,
	usageBusiness usage.Business,
	cache aicache.Business,
	completer completion.Completer,
	defaults config.AIConfig,
	logger *slog.Logger,
) Business {
	if logger == nil {
		logger = slog.Default()
	}
	return &business{
		repo:       repo,
		tenantRepo: tenantRepo,
		usage:      usageBusiness,
		cache:      cache,
		completer:  completer,
		defaults:   defaults,
		logger:     logger,
	}
}
