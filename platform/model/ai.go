package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type PromptType string

const (
	PromptTypeBriefing    PromptType = "briefing"
	PromptTypeMonthlyPlan PromptType = "monthly_plan"
)

// PromptInput is everything that influences a completion. Two inputs that
// serialize to the same canonical JSON share a cache entry.
type PromptInput struct {
	Type      PromptType     `json:"type"`
	Template  string         `json:"template"`
	Responses map[string]any `json:"responses,omitempty"`
	Behavior  string         `json:"behavior,omitempty"`
	Skills    string         `json:"skills,omitempty"`
	Context   map[string]any `json:"context,omitempty"`
}

// CacheKey addresses one cached completion.
type CacheKey struct {
	Hash string     `json:"hash"`
	Type PromptType `json:"type"`
}

// Completion is a parsed JSON completion and what it cost.
type Completion struct {
	Content    json.RawMessage `json:"content"`
	Model      string          `json:"model"`
	TokensUsed int32           `json:"tokens_used"`
	CostUSD    float64         `json:"cost_usd"`
}

// CachedCompletion is what Resolve hands back: the completion plus whether
// it was served from the cache. Hits always report zero tokens and cost.
type CachedCompletion struct {
	Completion
	PromptHash string     `json:"prompt_hash"`
	FromCache  bool       `json:"from_cache"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

// AIConfig is the per-agency completion setup, already merged with defaults.
type AIConfig struct {
	APIKey      string  `json:"-"`
	Model       string  `json:"model"`
	Behavior    string  `json:"behavior"`
	Skills      string  `json:"skills"`
	Temperature float32 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

type ClientProfile struct {
	ClientID       uuid.UUID       `json:"client_id"`
	Summary        string          `json:"summary"`
	ToneOfVoice    []string        `json:"tone_of_voice"`
	TargetPersona  json.RawMessage `json:"target_persona,omitempty"`
	ContentPillars []string        `json:"content_pillars"`
	EditorialLine  string          `json:"editorial_line"`
	Raw            json.RawMessage `json:"raw"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type PlanPeriod string

const (
	PlanPeriodMonth     PlanPeriod = "month"
	PlanPeriodFortnight PlanPeriod = "fortnight"
	PlanPeriodWeek      PlanPeriod = "week"
)

type MonthlyPlan struct {
	ID        uuid.UUID       `json:"id"`
	ClientID  uuid.UUID       `json:"client_id"`
	Month     string          `json:"month"`
	Period    PlanPeriod      `json:"period"`
	PostCount int             `json:"post_count"`
	Plan      json.RawMessage `json:"plan"`
	CreatedAt time.Time       `json:"created_at"`
}

// GenerationResult wraps an assistant output with its cache and usage view.
type GenerationResult[T any] struct {
	Result     T       `json:"result"`
	FromCache  bool    `json:"from_cache"`
	PromptHash string  `json:"prompt_hash"`
	Model      string  `json:"model"`
	TokensUsed int32   `json:"tokens_used"`
	CostUSD    float64 `json:"cost_usd"`
}

type ClientProfileRequest struct {
	ClientID uuid.UUID
	UserID   *uuid.UUID
	// BriefingID selects a briefing; the client's latest one is used when nil
	BriefingID *uuid.UUID
}

type MonthlyPlanRequest struct {
	ClientID uuid.UUID
	UserID   *uuid.UUID
	Period   PlanPeriod
	// Month is the planned calendar month, formatted YYYY-MM
	Month string
}
