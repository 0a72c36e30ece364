package usage

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"aprova.app/platform/model"
	"aprova.app/platform/repository/usage"
)

// Feature names recorded in ai_usage_logs.
const (
	FeatureClientProfile = "client_profile"
	FeatureMonthlyPlan   = "monthly_plan"
)

// CachedModel is the model name recorded for usage served from the AI cache.
const CachedModel = "cached"

type Business interface {
	Status(ctx context.Context, clientID uuid.UUID) (*model.UsageStatus, error)
	Gate(ctx context.Context, clientID uuid.UUID) (*model.UsageStatus, error)
	Record(ctx context.Context, record model.UsageRecord) error
}

type business struct {
	repo     usage.Querier
	location *time.Location
	now      func() time.Time
	logger   *slog.Logger
}

// NewUsageBusiness creates the monthly AI usage gate. Calendar months are
// evaluated in location.
func NewUsageBusiness(repo usage.Querier, location *time.Location, logger *slog.Logger) Business {
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &business{
		repo:     repo,
		location: location,
		now:      time.Now,
		logger:   logger,
	}
}

// MonthWindow returns [start of month, start of next month) containing t in loc.
func MonthWindow(t time.Time, loc *time.Location) (time.Time, time.Time) {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}
