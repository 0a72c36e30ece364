package notification

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"aprova.app/platform/model"
	"aprova.app/platform/repository/notifications"
)

func toNotification(row notifications.Notification) *model.Notification {
	n := &model.Notification{
		ID:           row.ID,
		Event:        row.Event,
		Category:     model.Category(row.Category),
		ClientID:     uuidPtr(row.ClientID),
		AgencyID:     uuidPtr(row.AgencyID),
		Payload:      json.RawMessage(row.Payload),
		Status:       model.NotificationStatus(row.Status),
		ErrorMessage: textPtr(row.ErrorMessage),
		AttemptCount: row.AttemptCount,
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
	}
	if row.SentAt.Valid {
		sentAt := row.SentAt.Time
		n.SentAt = &sentAt
	}
	return n
}

func toAttempt(row notifications.NotificationAttempt) model.Attempt {
	a := model.Attempt{
		ID:             row.ID,
		NotificationID: row.NotificationID,
		AttemptNumber:  row.AttemptNumber,
		TargetURL:      row.TargetUrl,
		Status:         model.AttemptStatus(row.Status),
		ResponseBody:   textPtr(row.ResponseBody),
		ErrorMessage:   textPtr(row.ErrorMessage),
		DurationMs:     row.DurationMs,
		CreatedAt:      row.CreatedAt.Time,
	}
	if row.StatusCode.Valid {
		code := row.StatusCode.Int32
		a.StatusCode = &code
	}
	if row.CompletedAt.Valid {
		completedAt := row.CompletedAt.Time
		a.CompletedAt = &completedAt
	}
	return a
}

func uuidPtr(v uuid.NullUUID) *uuid.UUID {
	if !v.Valid {
		return nil
	}
	id := v.UUID
	return &id
}

func nullUUID(v *uuid.UUID) uuid.NullUUID {
	if v == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *v, Valid: true}
}

func textPtr(v pgtype.Text) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
