package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"aprova.app/platform/errs"
	"aprova.app/platform/model"
)

// SendInternalNotification records an ops alert and delivers it to the
// internal webhook immediately.
func (b *business) SendInternalNotification(ctx context.Context, n *model.InternalNotification) (*model.Notification, *model.DispatchResult, error) {
	if n.Priority == "" {
		n.Priority = model.PriorityMedium
	}
	if n.Timestamp.IsZero() {
		n.Timestamp = b.now().UTC()
	}

	payload, err := json.Marshal(n)
	if err != nil {
		return nil, nil, &errs.Error{Code: errs.InvalidArgument, Message: "details must be JSON serializable"}
	}

	return b.RecordEvent(ctx, &model.EventInput{
		Event:    eventName(n.Type),
		Category: model.CategoryInternal,
		Payload:  payload,
		Mode:     model.DeliverySync,
	})
}

func eventName(t model.InternalNotificationType) string {
	return fmt.Sprintf("internal.%s", t)
}
