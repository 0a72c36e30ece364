package workflow

import (
	"go.temporal.io/sdk/worker"
)

// Register adds the notification workflows and activities to a worker.
func Register(w worker.Worker) {
	w.RegisterWorkflow(DeliverNotification)
	w.RegisterWorkflow(DrainNotificationQueue)
	w.RegisterActivity(ListQueuedNotificationsActivity)
	w.RegisterActivity(DispatchNotificationActivity)
}
