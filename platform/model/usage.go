package model

import (
	"time"

	"github.com/google/uuid"
)

// UsageStatus is the client's AI allowance for the current calendar month.
type UsageStatus struct {
	CanUse       bool      `json:"can_use"`
	CurrentUsage int64     `json:"current_usage"`
	Limit        *int32    `json:"limit"`
	Remaining    *int64    `json:"remaining"`
	Percentage   float64   `json:"percentage"`
	IsUnlimited  bool      `json:"is_unlimited"`
	PeriodStart  time.Time `json:"period_start"`
	PeriodEnd    time.Time `json:"period_end"`
}

type UsageRecord struct {
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	AgencyID   uuid.UUID  `json:"agency_id"`
	ClientID   uuid.UUID  `json:"client_id"`
	Feature    string     `json:"feature"`
	ModelUsed  string     `json:"model_used"`
	TokensUsed int32      `json:"tokens_used"`
	CostUSD    float64    `json:"cost_usd"`
	FromCache  bool       `json:"from_cache"`
}

// Tenant pairs a client with its agency and plan.
type Tenant struct {
	ClientID         uuid.UUID `json:"client_id"`
	ClientName       string    `json:"client_name"`
	AgencyID         uuid.UUID `json:"agency_id"`
	AgencyName       string    `json:"agency_name"`
	Plan             string    `json:"plan"`
	MonthlyCreatives *int32    `json:"monthly_creatives,omitempty"`
}
