package platform

import (
	"context"

	"github.com/google/uuid"

	"aprova.app/platform/model"
)

type GetNotificationResponse struct {
	Notification *model.Notification `json:"notification"`
}

func (s *Service) GetNotification(ctx context.Context, id uuid.UUID) (*GetNotificationResponse, error) {
	n, err := s.notifications.GetNotification(ctx, id)
	if err != nil {
		s.logger.Error("failed to get notification", "error", err, "id", id)
		return nil, err
	}

	return &GetNotificationResponse{
		Notification: n,
	}, nil
}
