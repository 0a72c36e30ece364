package platform

import (
	"context"

	"github.com/google/uuid"

	"aprova.app/platform/business/notification"
	"aprova.app/platform/errs"
	"aprova.app/platform/model"
)

type ListNotificationsRequest struct {
	Status   model.NotificationStatus `form:"status" json:"status" validate:"omitempty,oneof=queued pending sent error"`
	AgencyID string                   `form:"agency_id" json:"agency_id" validate:"omitempty,uuid"`
	Limit    int32                    `form:"limit" json:"limit" validate:"min=0,max=100"`
	Offset   int32                    `form:"offset" json:"offset" validate:"min=0"`
}

type ListNotificationsResponse struct {
	Notifications []*model.Notification `json:"notifications"`
	Total         int64                 `json:"total"`
	Limit         int32                 `json:"limit"`
	Offset        int32                 `json:"offset"`
}

// ListNotifications returns notifications newest first.
func (s *Service) ListNotifications(ctx context.Context, req *ListNotificationsRequest) (*ListNotificationsResponse, error) {
	limit := req.Limit
	if limit == 0 {
		limit = notification.DefaultListLimit
	}

	var agencyID *uuid.UUID
	if req.AgencyID != "" {
		id, err := uuid.Parse(req.AgencyID)
		if err != nil {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid agency_id"}
		}
		agencyID = &id
	}

	notifications, total, err := s.notifications.ListNotifications(ctx, model.NotificationFilter{
		Status:   req.Status,
		AgencyID: agencyID,
		Limit:    limit,
		Offset:   req.Offset,
	})
	if err != nil {
		s.logger.Error("failed to list notifications", "error", err)
		return nil, err
	}
	if notifications == nil {
		notifications = []*model.Notification{}
	}

	return &ListNotificationsResponse{
		Notifications: notifications,
		Total:         total,
		Limit:         limit,
		Offset:        req.Offset,
	}, nil
}

func (r *ListNotificationsRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
