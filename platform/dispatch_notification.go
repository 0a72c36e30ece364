package platform

import (
	"context"

	"github.com/google/uuid"

	"aprova.app/platform/model"
)

type DispatchResponse struct {
	Result *model.DispatchResult `json:"result"`
}

// DispatchNotification makes one delivery attempt. Every call adds an
// attempt row.
func (s *Service) DispatchNotification(ctx context.Context, id uuid.UUID) (*DispatchResponse, error) {
	result, err := s.notifications.Dispatch(ctx, id)
	if err != nil {
		s.logger.Error("failed to dispatch notification", "error", err, "id", id)
		return nil, err
	}

	return &DispatchResponse{
		Result: result,
	}, nil
}
