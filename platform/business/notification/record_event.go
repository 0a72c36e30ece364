package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"aprova.app/platform/errs"
	"aprova.app/platform/model"
	"aprova.app/platform/repository/notifications"
	"aprova.app/platform/repository/tenants"
)

// RecordEvent stores a business event as a notification. In sync mode the
// row is written as pending and dispatched before returning; otherwise it is
// queued for a later Dispatch.
func (b *business) RecordEvent(ctx context.Context, input *model.EventInput) (*model.Notification, *model.DispatchResult, error) {
	payload, err := decodePayload(input.Payload)
	if err != nil {
		return nil, nil, err
	}

	clientID, agencyID := input.ClientID, input.AgencyID
	var tenant *tenants.GetClientTenantRow
	if clientID != nil {
		tenant, err = b.clientTenant(ctx, *clientID)
		if err != nil {
			return nil, nil, err
		}
		if agencyID == nil {
			agencyID = &tenant.AgencyID
		} else if *agencyID != tenant.AgencyID {
			return nil, nil, &errs.Error{Code: errs.InvalidArgument, Message: "client does not belong to agency"}
		}
	}

	b.enrichWithContent(ctx, payload, tenant)

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, &errs.Error{Code: errs.Internal, Message: "failed to encode payload"}
	}

	status := model.NotificationStatusQueued
	if input.Mode == model.DeliverySync {
		status = model.NotificationStatusPending
	}

	row, err := b.repo.CreateNotification(ctx, notifications.CreateNotificationParams{
		Event:    input.Event,
		Category: string(input.Category),
		ClientID: nullUUID(clientID),
		AgencyID: nullUUID(agencyID),
		Payload:  encoded,
		Status:   string(status),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return nil, nil, &errs.Error{Code: errs.NotFound, Message: "agency or client not found"}
		}
		b.logger.Error("failed to record notification", "event", input.Event, "error", err)
		return nil, nil, &errs.Error{Code: errs.Internal, Message: "failed to record notification"}
	}

	n := toNotification(row)
	b.logger.Info("notification recorded", "notification_id", n.ID, "event", n.Event, "status", n.Status)

	if input.Mode != model.DeliverySync {
		return n, nil, nil
	}

	result, err := b.Dispatch(ctx, n.ID)
	if err != nil {
		if errors.Is(err, errWebhookNotConfigured) {
			b.requeue(ctx, n)
		}
		return n, nil, err
	}
	n.Status = result.Status
	n.AttemptCount = result.AttemptNumber
	return n, result, nil
}

// requeue hands a pending notification whose destination is missing over to
// the queue drain, so it is delivered once a webhook is configured.
func (b *business) requeue(ctx context.Context, n *model.Notification) {
	row, err := b.repo.UpdateNotificationDelivery(context.WithoutCancel(ctx), notifications.UpdateNotificationDeliveryParams{
		ID:           n.ID,
		Status:       string(model.NotificationStatusQueued),
		ErrorMessage: pgtype.Text{String: errWebhookNotConfigured.Message, Valid: true},
	})
	if err != nil {
		b.logger.Error("failed to requeue notification", "notification_id", n.ID, "error", err)
		return
	}
	*n = *toNotification(row)
}

// decodePayload accepts a JSON object; an absent payload is an empty object.
func decodePayload(raw json.RawMessage) (map[string]any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return map[string]any{}, nil
	}
	var payload map[string]any
	if err := json.Unmarshal(trimmed, &payload); err != nil || payload == nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "payload must be a JSON object"}
	}
	return payload, nil
}

func (b *business) clientTenant(ctx context.Context, clientID uuid.UUID) (*tenants.GetClientTenantRow, error) {
	row, err := b.tenantRepo.GetClientTenant(ctx, clientID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "client not found"}
		}
		b.logger.Error("failed to load client", "client_id", clientID, "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load client"}
	}
	return &row, nil
}

// enrichWithContent expands a content_id in the payload into content,
// client and agency summaries. Lookup failures leave the payload as is.
func (b *business) enrichWithContent(ctx context.Context, payload map[string]any, tenant *tenants.GetClientTenantRow) {
	raw, ok := payload["content_id"].(string)
	if !ok {
		return
	}
	contentID, err := uuid.Parse(raw)
	if err != nil {
		return
	}

	content, err := b.tenantRepo.GetContentSummary(ctx, contentID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			b.logger.Warn("failed to load content for notification payload", "content_id", contentID, "error", err)
		}
		return
	}

	summary := map[string]any{
		"id":     content.ID,
		"title":  content.Title,
		"type":   content.Type,
		"status": content.Status,
	}
	if content.Date.Valid {
		summary["date"] = content.Date.Time
	}
	payload["content"] = summary

	if tenant == nil || tenant.ClientID != content.ClientID {
		row, err := b.tenantRepo.GetClientTenant(ctx, content.ClientID)
		if err != nil {
			b.logger.Warn("failed to load content client for notification payload", "client_id", content.ClientID, "error", err)
			return
		}
		tenant = &row
	}
	payload["client"] = map[string]any{"id": tenant.ClientID, "name": tenant.ClientName}
	payload["agency"] = map[string]any{"id": tenant.AgencyID, "name": tenant.AgencyName}
}
