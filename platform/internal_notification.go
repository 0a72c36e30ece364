package platform

import (
	"context"

	"aprova.app/platform/errs"
	"aprova.app/platform/model"
)

type InternalNotificationRequest struct {
	Type     model.InternalNotificationType `json:"type" validate:"required,oneof=error warning info report security"`
	Subject  string                         `json:"subject" validate:"required,max=200"`
	Message  string                         `json:"message" validate:"required,max=5000"`
	Details  map[string]any                 `json:"details"`
	Source   string                         `json:"source" validate:"max=100"`
	Priority model.Priority                 `json:"priority" validate:"omitempty,oneof=low medium high critical"`
}

// SendInternalNotification records an ops alert and delivers it to the
// internal webhook in the same request.
func (s *Service) SendInternalNotification(ctx context.Context, req *InternalNotificationRequest) (*NotificationResponse, error) {
	n, dispatched, err := s.notifications.SendInternalNotification(ctx, &model.InternalNotification{
		Type:     req.Type,
		Subject:  req.Subject,
		Message:  req.Message,
		Details:  req.Details,
		Source:   req.Source,
		Priority: req.Priority,
	})
	if err != nil {
		s.logger.Error("failed to send internal notification", "type", req.Type, "error", err)
		return nil, err
	}

	return &NotificationResponse{
		Notification: n,
		Dispatch:     dispatched,
	}, nil
}

func (r *InternalNotificationRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
