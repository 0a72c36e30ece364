package notification

import (
	"context"

	"github.com/google/uuid"

	"aprova.app/platform/errs"
	"aprova.app/platform/model"
)

// ListQueued returns up to limit queued notification ids, oldest first.
func (b *business) ListQueued(ctx context.Context, limit int32) ([]uuid.UUID, error) {
	if limit <= 0 {
		limit = DefaultDrainLimit
	}
	ids, err := b.repo.ListQueuedNotificationIDs(ctx, limit)
	if err != nil {
		b.logger.Error("failed to list queued notifications", "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list queued notifications"}
	}
	return ids, nil
}

// DrainQueue dispatches each queued notification once. Unconfigured
// destinations are skipped; other failures are counted and do not stop the
// pass.
func (b *business) DrainQueue(ctx context.Context, limit int32) (*model.DrainResult, error) {
	ids, err := b.ListQueued(ctx, limit)
	if err != nil {
		return nil, err
	}

	result := &model.DrainResult{}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.Processed++

		dispatched, err := b.Dispatch(ctx, id)
		switch {
		case errs.Is(err, errs.FailedPrecondition):
			result.Skipped++
		case err != nil:
			b.logger.Error("drain dispatch failed", "notification_id", id, "error", err)
			result.Failed++
		case dispatched.Status == model.NotificationStatusSent:
			result.Sent++
		default:
			result.Failed++
		}
	}

	b.logger.Info("notification queue drained", "processed", result.Processed, "sent", result.Sent, "failed", result.Failed, "skipped", result.Skipped)
	return result, nil
}
