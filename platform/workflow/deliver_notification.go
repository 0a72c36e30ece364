package workflow

import (
	"github.com/google/uuid"
	"go.temporal.io/sdk/workflow"

	"aprova.app/platform/errs"
	"aprova.app/platform/model"
)

// DeliverNotificationWorkflowParams contains parameters for an async delivery
type DeliverNotificationWorkflowParams struct {
	NotificationID uuid.UUID `json:"notification_id"`
}

func DeliverNotificationWorkflowID(id uuid.UUID) string {
	return "deliver-notification-" + id.String()
}

// DeliverNotification dispatches one queued notification. A notification
// whose destination is not configured stays queued for a later drain.
func DeliverNotification(ctx workflow.Context, params DeliverNotificationWorkflowParams) (*model.DispatchResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting notification delivery", "notificationID", params.NotificationID)

	var result *model.DispatchResult
	err := workflow.ExecuteActivity(singleAttempt(ctx), DispatchNotificationActivity, params.NotificationID).Get(ctx, &result)
	if err != nil {
		if hasCode(err, errs.FailedPrecondition) {
			logger.Warn("Notification left queued", "notificationID", params.NotificationID, "error", err)
			return nil, nil
		}
		logger.Error("Notification delivery failed", "notificationID", params.NotificationID, "error", err)
		return nil, err
	}

	logger.Info("Notification delivery completed", "notificationID", params.NotificationID, "status", result.Status)
	return result, nil
}
