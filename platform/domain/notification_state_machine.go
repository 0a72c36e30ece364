package domain

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"aprova.app/platform/errs"
	"aprova.app/platform/model"
	"aprova.app/platform/repository/notifications"
)

// AttemptOutcome is what happened to a claimed attempt once the webhook call
// returned.
type AttemptOutcome struct {
	AttemptID      uuid.UUID
	NotificationID uuid.UUID
	Status         model.AttemptStatus
	StatusCode     *int32
	ResponseBody   *string
	ErrorMessage   *string
	DurationMs     int64
}

// StateMachine owns the notification status transitions. Each transition runs
// in its own transaction holding the notification row lock; the webhook call
// itself happens between BeginAttempt and CompleteAttempt with no lock held.
type StateMachine interface {
	BeginAttempt(ctx context.Context, id uuid.UUID, targetURL string) (notifications.NotificationAttempt, error)
	CompleteAttempt(ctx context.Context, outcome AttemptOutcome) (notifications.Notification, error)
}

type notificationStateMachine struct {
	db     *pgxpool.Pool
	repo   *notifications.Queries
	logger *slog.Logger
}

// NewNotificationStateMachine creates a state machine over the notifications tables
func NewNotificationStateMachine(db *pgxpool.Pool, repo *notifications.Queries, logger *slog.Logger) StateMachine {
	if logger == nil {
		logger = slog.Default()
	}
	return &notificationStateMachine{
		db:     db,
		repo:   repo,
		logger: logger,
	}
}

// withLock runs fn in a transaction after locking the notification row
func (sm *notificationStateMachine) withLock(ctx context.Context, id uuid.UUID, fn func(q *notifications.Queries, current notifications.Notification) error) error {
	tx, err := sm.db.Begin(ctx)
	if err != nil {
		sm.logger.Error("failed to start transaction", "notification_id", id, "error", err)
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	q := sm.repo.WithTx(tx)

	current, err := q.GetNotificationForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "notification not found"}
		}
		sm.logger.Error("failed to lock notification", "notification_id", id, "error", err)
		return &errs.Error{Code: errs.Internal, Message: "failed to lock notification for state transition"}
	}

	if err := fn(q, current); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		sm.logger.Error("failed to commit notification transition", "notification_id", id, "error", err)
		return &errs.Error{Code: errs.Internal, Message: "failed to commit state transition"}
	}
	return nil
}

// BeginAttempt allocates the next attempt number and records an in-flight
// attempt. Sent notifications are terminal.
func (sm *notificationStateMachine) BeginAttempt(ctx context.Context, id uuid.UUID, targetURL string) (notifications.NotificationAttempt, error) {
	var attempt notifications.NotificationAttempt
	err := sm.withLock(ctx, id, func(q *notifications.Queries, current notifications.Notification) error {
		if current.Status == string(model.NotificationStatusSent) {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "notification already sent"}
		}

		number, err := q.IncrementAttemptCount(ctx, id)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to allocate attempt number"}
		}

		attempt, err = q.CreateAttempt(ctx, notifications.CreateAttemptParams{
			NotificationID: id,
			AttemptNumber:  number,
			TargetUrl:      targetURL,
		})
		if err != nil {
			sm.logger.Error("failed to create attempt", "notification_id", id, "attempt_number", number, "error", err)
			return &errs.Error{Code: errs.Internal, Message: "failed to create delivery attempt"}
		}
		return nil
	})
	return attempt, err
}

// CompleteAttempt stores the attempt result and moves the notification to
// sent or error. A notification another attempt already marked sent keeps
// that status.
func (sm *notificationStateMachine) CompleteAttempt(ctx context.Context, outcome AttemptOutcome) (notifications.Notification, error) {
	var updated notifications.Notification
	err := sm.withLock(ctx, outcome.NotificationID, func(q *notifications.Queries, current notifications.Notification) error {
		_, err := q.CompleteAttempt(ctx, notifications.CompleteAttemptParams{
			ID:           outcome.AttemptID,
			Status:       string(outcome.Status),
			StatusCode:   int4(outcome.StatusCode),
			ResponseBody: text(outcome.ResponseBody),
			ErrorMessage: text(outcome.ErrorMessage),
			DurationMs:   outcome.DurationMs,
		})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &errs.Error{Code: errs.FailedPrecondition, Message: "attempt is not in flight"}
			}
			return &errs.Error{Code: errs.Internal, Message: "failed to complete delivery attempt"}
		}

		status := model.NotificationStatusError
		if outcome.Status == model.AttemptStatusSent {
			status = model.NotificationStatusSent
		}
		updated, err = q.UpdateNotificationDelivery(ctx, notifications.UpdateNotificationDeliveryParams{
			ID:           outcome.NotificationID,
			Status:       string(status),
			ErrorMessage: text(outcome.ErrorMessage),
		})
		if errors.Is(err, pgx.ErrNoRows) {
			updated = current
			return nil
		}
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to update notification status"}
		}
		return nil
	})
	return updated, err
}

func int4(v *int32) pgtype.Int4 {
	if v == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: *v, Valid: true}
}

func text(v *string) pgtype.Text {
	if v == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *v, Valid: true}
}
