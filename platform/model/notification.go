package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID           uuid.UUID          `json:"id"`
	Event        string             `json:"event"`
	Category     Category           `json:"category"`
	ClientID     *uuid.UUID         `json:"client_id,omitempty"`
	AgencyID     *uuid.UUID         `json:"agency_id,omitempty"`
	Payload      json.RawMessage    `json:"payload"`
	Status       NotificationStatus `json:"status"`
	ErrorMessage *string            `json:"error_message,omitempty"`
	AttemptCount int32              `json:"attempt_count"`
	SentAt       *time.Time         `json:"sent_at,omitempty"`
	Attempts     []Attempt          `json:"attempts,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

type NotificationStatus string

const (
	NotificationStatusQueued  NotificationStatus = "queued"
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusError   NotificationStatus = "error"
)

type Category string

const (
	CategoryClient    Category = "client"
	CategoryInternal  Category = "internal"
	CategoryTwoFactor Category = "two_factor"
)

// WebhookSettingKey names the settings entry holding the destination URL for
// notifications of this category.
func (c Category) WebhookSettingKey() string {
	switch c {
	case CategoryInternal:
		return "internal_webhook_url"
	case CategoryTwoFactor:
		return "two_factor_webhook_url"
	default:
		return "client_notifications_webhook_url"
	}
}

// EventInput is a business event to record as a notification.
type EventInput struct {
	Event    string
	Category Category
	ClientID *uuid.UUID
	AgencyID *uuid.UUID
	Payload  json.RawMessage
	Mode     DeliveryMode
}

type DeliveryMode string

const (
	DeliveryNone  DeliveryMode = "none"
	DeliverySync  DeliveryMode = "sync"
	DeliveryAsync DeliveryMode = "async"
)

// Attempt is one dispatch invocation against a notification.
type Attempt struct {
	ID             uuid.UUID     `json:"id"`
	NotificationID uuid.UUID     `json:"notification_id"`
	AttemptNumber  int32         `json:"attempt_number"`
	TargetURL      string        `json:"target_url"`
	Status         AttemptStatus `json:"status"`
	StatusCode     *int32        `json:"status_code,omitempty"`
	ResponseBody   *string       `json:"response_body,omitempty"`
	ErrorMessage   *string       `json:"error_message,omitempty"`
	DurationMs     int64         `json:"duration_ms"`
	CreatedAt      time.Time     `json:"created_at"`
	CompletedAt    *time.Time    `json:"completed_at,omitempty"`
}

type AttemptStatus string

const (
	AttemptStatusInFlight AttemptStatus = "in_flight"
	AttemptStatusSent     AttemptStatus = "sent"
	AttemptStatusError    AttemptStatus = "error"
)

// DispatchResult is the outcome of a single delivery attempt.
type DispatchResult struct {
	NotificationID uuid.UUID          `json:"notification_id"`
	AttemptNumber  int32              `json:"attempt_number"`
	Status         NotificationStatus `json:"status"`
	StatusCode     int                `json:"status_code,omitempty"`
	Error          string             `json:"error,omitempty"`
}

type NotificationFilter struct {
	Status   NotificationStatus
	AgencyID *uuid.UUID
	Limit    int32
	Offset   int32
}

// DrainResult summarises one pass over the queued notifications.
type DrainResult struct {
	Processed int `json:"processed"`
	Sent      int `json:"sent"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}
