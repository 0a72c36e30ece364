package assistant

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"aprova.app/platform/errs"
	"aprova.app/platform/model"
	"aprova.app/platform/repository/tenants"
)

const (
	profileTemperature = 0.7
	profileMaxTokens   = 2000
	planTemperature    = 0.8
	planMaxTokens      = 4000
)

// aiConfig merges the agency's AI configuration over the defaults. An empty
// API key leaves the completion client on its configured key.
func (b *business) aiConfig(ctx context.Context, agencyID uuid.UUID) (model.AIConfig, error) {
	cfg := model.AIConfig{
		Model:       b.defaults.DefaultModel,
		Temperature: profileTemperature,
		MaxTokens:   profileMaxTokens,
	}

	row, err := b.repo.GetAIConfiguration(ctx, agencyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return cfg, nil
		}
		b.logger.Error("failed to load AI configuration", "agency_id", agencyID, "error", err)
		return cfg, &errs.Error{Code: errs.Internal, Message: "failed to load AI configuration"}
	}

	if row.Model.Valid && row.Model.String != "" {
		cfg.Model = row.Model.String
	}
	if row.ApiKey.Valid {
		cfg.APIKey = row.ApiKey.String
	}
	cfg.Behavior = row.PromptBehavior.String
	cfg.Skills = row.PromptSkills.String
	if row.Temperature.Valid {
		cfg.Temperature = row.Temperature.Float32
	}
	if row.MaxTokens.Valid && row.MaxTokens.Int32 > 0 {
		cfg.MaxTokens = int(row.MaxTokens.Int32)
	}
	return cfg, nil
}

func (b *business) clientTenant(ctx context.Context, clientID uuid.UUID) (tenants.GetClientTenantRow, error) {
	tenant, err := b.tenantRepo.GetClientTenant(ctx, clientID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tenant, &errs.Error{Code: errs.NotFound, Message: "client not found"}
		}
		b.logger.Error("failed to load client", "client_id", clientID, "error", err)
		return tenant, &errs.Error{Code: errs.Internal, Message: "failed to load client"}
	}
	return tenant, nil
}

// recordUsage logs the served request. A failed write does not fail the
// generation the client already paid for.
func (b *business) recordUsage(ctx context.Context, tenant tenants.GetClientTenantRow, userID *uuid.UUID, feature string, result *model.CachedCompletion) {
	err := b.usage.Record(ctx, model.UsageRecord{
		UserID:     userID,
		AgencyID:   tenant.AgencyID,
		ClientID:   tenant.ClientID,
		Feature:    feature,
		ModelUsed:  result.Model,
		TokensUsed: result.TokensUsed,
		CostUSD:    result.CostUSD,
		FromCache:  result.FromCache,
	})
	if err != nil {
		b.logger.Error("failed to record AI usage", "client_id", tenant.ClientID, "feature", feature, "error", err)
	}
}
