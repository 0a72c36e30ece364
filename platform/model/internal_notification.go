package model

import "time"

type InternalNotificationType string

const (
	InternalNotificationError    InternalNotificationType = "error"
	InternalNotificationWarning  InternalNotificationType = "warning"
	InternalNotificationInfo     InternalNotificationType = "info"
	InternalNotificationReport   InternalNotificationType = "report"
	InternalNotificationSecurity InternalNotificationType = "security"
)

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// InternalNotification is an ops alert routed to the internal webhook.
type InternalNotification struct {
	Type      InternalNotificationType `json:"type"`
	Subject   string                   `json:"subject"`
	Message   string                   `json:"message"`
	Details   map[string]any           `json:"details,omitempty"`
	Source    string                   `json:"source,omitempty"`
	Priority  Priority                 `json:"priority"`
	Timestamp time.Time                `json:"timestamp"`
}
