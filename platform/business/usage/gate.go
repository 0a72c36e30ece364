package usage

import (
	"context"

	"github.com/google/uuid"

	"aprova.app/platform/errs"
	"aprova.app/platform/metrics"
	"aprova.app/platform/model"
)

const limitReachedMessage = "Monthly AI usage limit reached. Please upgrade your plan."

// Gate fails with ResourceExhausted when the client has no allowance left.
// It runs before the AI cache, so cache hits are gated too.
func (b *business) Gate(ctx context.Context, clientID uuid.UUID) (*model.UsageStatus, error) {
	status, err := b.Status(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if status.CanUse {
		return status, nil
	}

	metrics.UsageGateDenials.Inc()
	b.logger.Info("AI usage limit reached", "client_id", clientID, "current_usage", status.CurrentUsage, "limit", *status.Limit)
	return status, &errs.Error{
		Code:    errs.ResourceExhausted,
		Message: limitReachedMessage,
		Details: errs.Details{
			"reason":        "limit_reached",
			"limit":         *status.Limit,
			"current_usage": status.CurrentUsage,
		},
	}
}
