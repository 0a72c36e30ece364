package model

import "time"

// IdempotencyKey scopes a client key to the route it was sent to, e.g.
// Route "POST /v1/notifications".
type IdempotencyKey struct {
	Route string
	Key   string
}

type IdempotencyState string

const (
	IdempotencyProcessing IdempotencyState = "processing"
	IdempotencyCompleted  IdempotencyState = "completed"
)

// IdempotencyRecord is the stored outcome of the first request made with a key.
type IdempotencyRecord struct {
	State       IdempotencyState
	BodyHash    string
	StatusCode  int
	Body        []byte
	StartedAt   time.Time
	CompletedAt time.Time
}
