package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"aprova.app/platform/domain"
	"aprova.app/platform/errs"
	"aprova.app/platform/metrics"
	"aprova.app/platform/model"
	"aprova.app/platform/repository/notifications"
	"aprova.app/platform/webhook"
)

// Envelope is the JSON body posted to webhook destinations.
type Envelope struct {
	NotificationID uuid.UUID       `json:"notification_id"`
	Event          string          `json:"event"`
	Category       model.Category  `json:"category"`
	ClientID       *uuid.UUID      `json:"client_id"`
	AgencyID       *uuid.UUID      `json:"agency_id"`
	CreatedAt      time.Time       `json:"created_at"`
	Payload        json.RawMessage `json:"payload"`
}

// Dispatch performs exactly one delivery attempt for the notification.
// Delivery failures are reported in the result; the error return is for
// missing notifications, missing configuration and store failures.
func (b *business) Dispatch(ctx context.Context, id uuid.UUID) (*model.DispatchResult, error) {
	row, err := b.repo.GetNotification(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "notification not found"}
		}
		b.logger.Error("failed to load notification", "notification_id", id, "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load notification"}
	}

	n := toNotification(row)
	if n.Status == model.NotificationStatusSent {
		return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "notification already sent"}
	}

	url, err := b.webhookURL(ctx, n.Category, n.AgencyID)
	if err != nil {
		return nil, err
	}
	if url == "" {
		metrics.WebhookDispatches.WithLabelValues(string(n.Category), "not_configured").Inc()
		b.logger.Warn("webhook not configured", "notification_id", id, "category", n.Category)
		return nil, errWebhookNotConfigured
	}

	body, err := json.Marshal(Envelope{
		NotificationID: n.ID,
		Event:          n.Event,
		Category:       n.Category,
		ClientID:       n.ClientID,
		AgencyID:       n.AgencyID,
		CreatedAt:      n.CreatedAt,
		Payload:        n.Payload,
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to encode notification envelope"}
	}

	attempt, err := b.stateMachine.BeginAttempt(ctx, id, url)
	if err != nil {
		return nil, err
	}

	resp, sendErr := b.sender.Send(ctx, webhook.Request{
		URL:        url,
		Event:      n.Event,
		DeliveryID: attempt.ID.String(),
		Body:       body,
	})

	outcome := attemptOutcome(attempt, resp, sendErr)
	metrics.WebhookDispatches.WithLabelValues(string(n.Category), string(outcome.Status)).Inc()
	metrics.WebhookDispatchDuration.WithLabelValues(string(n.Category)).Observe(float64(outcome.DurationMs) / 1000)

	// The attempt is already claimed; record its result even if the caller went away.
	updated, err := b.stateMachine.CompleteAttempt(context.WithoutCancel(ctx), outcome)
	if err != nil {
		b.logger.Error("failed to record delivery attempt", "notification_id", id, "attempt_id", attempt.ID, "error", err)
		return nil, err
	}

	result := &model.DispatchResult{
		NotificationID: id,
		AttemptNumber:  attempt.AttemptNumber,
		Status:         model.NotificationStatus(updated.Status),
	}
	if resp != nil {
		result.StatusCode = resp.StatusCode
	}
	if outcome.ErrorMessage != nil {
		result.Error = *outcome.ErrorMessage
	}

	if outcome.Status == model.AttemptStatusSent {
		b.logger.Info("notification delivered", "notification_id", id, "attempt", attempt.AttemptNumber, "status_code", result.StatusCode)
	} else {
		b.logger.Warn("notification delivery failed", "notification_id", id, "attempt", attempt.AttemptNumber, "error", result.Error)
	}
	return result, nil
}

// attemptOutcome maps a webhook response or transport error onto the
// attempt result.
func attemptOutcome(attempt notifications.NotificationAttempt, resp *webhook.Response, sendErr error) domain.AttemptOutcome {
	outcome := domain.AttemptOutcome{
		AttemptID:      attempt.ID,
		NotificationID: attempt.NotificationID,
		Status:         model.AttemptStatusError,
	}

	if sendErr != nil {
		msg := sendErr.Error()
		outcome.ErrorMessage = &msg
		return outcome
	}

	code := int32(resp.StatusCode)
	outcome.StatusCode = &code
	outcome.DurationMs = resp.Duration.Milliseconds()
	if resp.Body != "" {
		body := resp.Body
		outcome.ResponseBody = &body
	}

	if resp.OK() {
		outcome.Status = model.AttemptStatusSent
		return outcome
	}

	msg := fmt.Sprintf("HTTP %d", resp.StatusCode)
	if resp.Body != "" {
		msg += ": " + resp.Body
	}
	outcome.ErrorMessage = &msg
	return outcome
}
