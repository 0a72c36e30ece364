package workflow

import (
	"context"

	"github.com/google/uuid"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"aprova.app/platform/business/notification"
	"aprova.app/platform/errs"
	"aprova.app/platform/model"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	NotificationBusiness notification.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(notificationBusiness notification.Business) {
	activityDeps = &ActivityDependencies{
		NotificationBusiness: notificationBusiness,
	}
}

func dependencies(ctx context.Context) (notification.Business, error) {
	if activityDeps == nil || activityDeps.NotificationBusiness == nil {
		activity.GetLogger(ctx).Error("Activity dependencies not set")
		return nil, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}
	return activityDeps.NotificationBusiness, nil
}

// ListQueuedNotificationsActivity returns the ids of queued notifications, oldest first
func ListQueuedNotificationsActivity(ctx context.Context, limit int32) ([]uuid.UUID, error) {
	business, err := dependencies(ctx)
	if err != nil {
		return nil, err
	}

	ids, err := business.ListQueued(ctx, limit)
	if err != nil {
		activity.GetLogger(ctx).Error("Failed to list queued notifications", "error", err)
		return nil, applicationError(err)
	}
	return ids, nil
}

// DispatchNotificationActivity makes exactly one delivery attempt
func DispatchNotificationActivity(ctx context.Context, notificationID uuid.UUID) (*model.DispatchResult, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Dispatching notification", "notificationID", notificationID)

	business, err := dependencies(ctx)
	if err != nil {
		return nil, err
	}

	result, err := business.Dispatch(ctx, notificationID)
	if err != nil {
		logger.Error("Failed to dispatch notification", "notificationID", notificationID, "error", err)
		return nil, applicationError(err)
	}

	logger.Info("Notification dispatched", "notificationID", notificationID, "status", result.Status, "attempt", result.AttemptNumber)
	return result, nil
}

// applicationError carries the error code across the activity boundary as
// the application error type. Attempts are never retried by Temporal since
// every retry would write another attempt row.
func applicationError(err error) error {
	return temporal.NewNonRetryableApplicationError(err.Error(), errs.Code(err).String(), err)
}
