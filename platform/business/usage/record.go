package usage

import (
	"context"

	"github.com/google/uuid"

	"aprova.app/platform/errs"
	"aprova.app/platform/model"
	"aprova.app/platform/repository/usage"
)

// Record appends one usage log row. Rows with FromCache set are kept for
// reporting but never count against the monthly limit.
func (b *business) Record(ctx context.Context, record model.UsageRecord) error {
	if record.Feature == "" {
		return &errs.Error{Code: errs.InvalidArgument, Message: "feature is required"}
	}

	params := usage.CreateUsageLogParams{
		AgencyID:   record.AgencyID,
		ClientID:   record.ClientID,
		Feature:    record.Feature,
		ModelUsed:  record.ModelUsed,
		TokensUsed: record.TokensUsed,
		CostUsd:    record.CostUSD,
		FromCache:  record.FromCache,
	}
	if record.UserID != nil {
		params.UserID = uuid.NullUUID{UUID: *record.UserID, Valid: true}
	}
	if record.FromCache {
		params.ModelUsed = CachedModel
		params.TokensUsed = 0
		params.CostUsd = 0
	}

	if err := b.repo.CreateUsageLog(ctx, params); err != nil {
		b.logger.Error("failed to record AI usage", "client_id", record.ClientID, "feature", record.Feature, "error", err)
		return &errs.Error{Code: errs.Internal, Message: "failed to record AI usage"}
	}
	return nil
}
