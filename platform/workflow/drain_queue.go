package workflow

import (
	"github.com/google/uuid"
	"go.temporal.io/sdk/workflow"

	"aprova.app/platform/errs"
	"aprova.app/platform/model"
)

const DrainQueueWorkflowID = "drain-notification-queue"

// DrainQueueWorkflowParams contains parameters for one drain pass
type DrainQueueWorkflowParams struct {
	Limit int32 `json:"limit"`
}

// DrainNotificationQueue dispatches each queued notification once. Missing
// destinations are skipped, other failures are counted, and a stop signal
// ends the pass before the next dispatch.
func DrainNotificationQueue(ctx workflow.Context, params DrainQueueWorkflowParams) (*model.DrainResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting queue drain", "limit", params.Limit)

	var ids []uuid.UUID
	if err := workflow.ExecuteActivity(singleAttempt(ctx), ListQueuedNotificationsActivity, params.Limit).Get(ctx, &ids); err != nil {
		logger.Error("Failed to list queued notifications", "error", err)
		return nil, err
	}

	stopCh := workflow.GetSignalChannel(ctx, StopDrainSignalName)
	result := &model.DrainResult{}

	for _, id := range ids {
		var stop StopDrainSignal
		if stopCh.ReceiveAsync(&stop) {
			logger.Info("Queue drain stopped", "reason", stop.Reason, "processed", result.Processed)
			break
		}
		result.Processed++

		var dispatched *model.DispatchResult
		err := workflow.ExecuteActivity(singleAttempt(ctx), DispatchNotificationActivity, id).Get(ctx, &dispatched)
		switch {
		case hasCode(err, errs.FailedPrecondition):
			result.Skipped++
		case err != nil:
			logger.Error("Drain dispatch failed", "notificationID", id, "error", err)
			result.Failed++
		case dispatched != nil && dispatched.Status == model.NotificationStatusSent:
			result.Sent++
		default:
			result.Failed++
		}
	}

	logger.Info("Queue drain completed", "processed", result.Processed, "sent", result.Sent, "failed", result.Failed, "skipped", result.Skipped)
	return result, nil
}
