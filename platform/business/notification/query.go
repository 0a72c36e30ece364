package notification

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"aprova.app/platform/errs"
	"aprova.app/platform/model"
	"aprova.app/platform/repository/notifications"
)

// GetNotification returns the notification with its attempt history.
func (b *business) GetNotification(ctx context.Context, id uuid.UUID) (*model.Notification, error) {
	row, err := b.repo.GetNotification(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "notification not found"}
		}
		b.logger.Error("failed to get notification", "notification_id", id, "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get notification"}
	}

	attempts, err := b.repo.ListAttemptsByNotification(ctx, id)
	if err != nil {
		b.logger.Error("failed to list attempts", "notification_id", id, "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list delivery attempts"}
	}

	n := toNotification(row)
	n.Attempts = make([]model.Attempt, 0, len(attempts))
	for _, a := range attempts {
		n.Attempts = append(n.Attempts, toAttempt(a))
	}
	return n, nil
}

// ListNotifications returns one page, newest first, and the total count for the filter.
func (b *business) ListNotifications(ctx context.Context, filter model.NotificationFilter) ([]*model.Notification, int64, error) {
	if filter.Limit == 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit < 0 || filter.Limit > MaxListLimit {
		return nil, 0, &errs.Error{Code: errs.InvalidArgument, Message: "limit must be between 1 and 100"}
	}
	if filter.Offset < 0 {
		return nil, 0, &errs.Error{Code: errs.InvalidArgument, Message: "offset must not be negative"}
	}

	status := pgtype.Text{}
	if filter.Status != "" {
		status = pgtype.Text{String: string(filter.Status), Valid: true}
	}
	agencyID := nullUUID(filter.AgencyID)

	rows, err := b.repo.ListNotifications(ctx, notifications.ListNotificationsParams{
		Status:   status,
		AgencyID: agencyID,
		Limit:    filter.Limit,
		Offset:   filter.Offset,
	})
	if err != nil {
		b.logger.Error("failed to list notifications", "error", err)
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list notifications"}
	}

	total, err := b.repo.CountNotifications(ctx, notifications.CountNotificationsParams{
		Status:   status,
		AgencyID: agencyID,
	})
	if err != nil {
		b.logger.Error("failed to count notifications", "error", err)
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count notifications"}
	}

	result := make([]*model.Notification, 0, len(rows))
	for _, row := range rows {
		result = append(result, toNotification(row))
	}
	return result, total, nil
}
