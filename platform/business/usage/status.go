package usage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"aprova.app/platform/errs"
	"aprova.app/platform/model"
	"aprova.app/platform/repository/usage"
)

// Status reports the client's allowance for the current month. A plan with no
// entitlement row or a null limit is unlimited.
func (b *business) Status(ctx context.Context, clientID uuid.UUID) (*model.UsageStatus, error) {
	entitlement, err := b.repo.GetClientEntitlement(ctx, clientID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "client not found"}
		}
		b.logger.Error("failed to load client entitlement", "client_id", clientID, "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load client entitlement"}
	}

	periodStart, periodEnd := MonthWindow(b.now(), b.location)
	current, err := b.repo.CountBillableUsage(ctx, usage.CountBillableUsageParams{
		ClientID:    clientID,
		PeriodStart: pgtype.Timestamptz{Time: periodStart, Valid: true},
		PeriodEnd:   pgtype.Timestamptz{Time: periodEnd, Valid: true},
	})
	if err != nil {
		b.logger.Error("failed to count AI usage", "client_id", clientID, "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to count AI usage"}
	}

	status := &model.UsageStatus{
		CurrentUsage: current,
		PeriodStart:  periodStart,
		PeriodEnd:    periodEnd,
	}

	if !entitlement.AiUsesLimit.Valid {
		status.CanUse = true
		status.IsUnlimited = true
		return status, nil
	}

	limit := entitlement.AiUsesLimit.Int32
	remaining := max(int64(limit)-current, 0)
	status.Limit = &limit
	status.Remaining = &remaining
	status.CanUse = current < int64(limit)
	if limit > 0 {
		status.Percentage = min(float64(current)/float64(limit)*100, 100)
	} else {
		status.Percentage = 100
	}
	return status, nil
}
