package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"aprova.app/platform/business/usage"
	"aprova.app/platform/completion"
	"aprova.app/platform/errs"
	"aprova.app/platform/model"
	"aprova.app/platform/repository/assistant"
)

const (
	defaultMonthlyCreatives = 12
	maxReferenceTemplates   = 5
)

// PostCount is the number of posts planned for period given the client's
// monthly quota.
func PostCount(monthlyCreatives int, period model.PlanPeriod) int {
	if monthlyCreatives <= 0 {
		monthlyCreatives = defaultMonthlyCreatives
	}
	switch period {
	case model.PlanPeriodFortnight:
		return (monthlyCreatives + 1) / 2
	case model.PlanPeriodWeek:
		return (monthlyCreatives + 3) / 4
	default:
		return monthlyCreatives
	}
}

// GenerateMonthlyPlan drafts the client's posts for a period from its AI profile.
func (b *business) GenerateMonthlyPlan(ctx context.Context, req *model.MonthlyPlanRequest) (*model.GenerationResult[*model.MonthlyPlan], error) {
	switch req.Period {
	case model.PlanPeriodMonth, model.PlanPeriodFortnight, model.PlanPeriodWeek:
	default:
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "period must be month, fortnight or week"}
	}
	if _, err := time.Parse("2006-01", req.Month); err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "month must be formatted YYYY-MM"}
	}

	tenant, err := b.clientTenant(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}

	if _, err := b.usage.Gate(ctx, req.ClientID); err != nil {
		return nil, err
	}

	profileRow, err := b.repo.GetClientAIProfile(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "client has no AI profile, generate one from a briefing first"}
		}
		b.logger.Error("failed to load client profile", "client_id", req.ClientID, "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load client profile"}
	}
	profile := toClientProfile(profileRow)

	cfg, err := b.aiConfig(ctx, tenant.AgencyID)
	if err != nil {
		return nil, err
	}
	cfg.Temperature = planTemperature
	cfg.MaxTokens = planMaxTokens

	templates, err := b.repo.ListContentTemplateNames(ctx, assistant.ListContentTemplateNamesParams{
		AgencyID: tenant.AgencyID,
		Limit:    maxReferenceTemplates,
	})
	if err != nil {
		b.logger.Warn("failed to load content templates, planning without them", "agency_id", tenant.AgencyID, "error", err)
		templates = nil
	}
	if templates == nil {
		templates = []string{}
	}

	monthly := 0
	if tenant.MonthlyCreatives.Valid {
		monthly = int(tenant.MonthlyCreatives.Int32)
	}
	pc := planContext{
		ClientName:     tenant.ClientName,
		Month:          req.Month,
		Period:         req.Period,
		PostCount:      PostCount(monthly, req.Period),
		Summary:        profile.Summary,
		ToneOfVoice:    nonNil(profile.ToneOfVoice),
		ContentPillars: nonNil(profile.ContentPillars),
		EditorialLine:  profile.EditorialLine,
		Templates:      templates,
	}

	key, err := b.cache.Key(model.PromptInput{
		Type:     model.PromptTypeMonthlyPlan,
		Template: planTemplate,
		Behavior: cfg.Behavior,
		Skills:   cfg.Skills,
		Context:  pc.cacheContext(req.ClientID.String()),
	})
	if err != nil {
		return nil, err
	}

	result, err := b.cache.Resolve(ctx, key, func(ctx context.Context) (*model.Completion, error) {
		c, err := b.completer.Complete(ctx, completion.Request{
			APIKey:       cfg.APIKey,
			Model:        cfg.Model,
			SystemPrompt: planSystemPrompt(pc, cfg),
			UserPrompt:   planUserPrompt(pc),
			Temperature:  cfg.Temperature,
			MaxTokens:    cfg.MaxTokens,
		})
		if err != nil {
			return nil, err
		}
		if err := checkPlan(c.Content); err != nil {
			return nil, err
		}
		return c, nil
	})
	if err != nil {
		b.logger.Error("monthly plan generation failed", "client_id", req.ClientID, "month", req.Month, "error", err)
		return nil, err
	}
	if err := checkPlan(result.Content); err != nil {
		return nil, err
	}

	row, err := b.repo.CreateContentPlan(ctx, assistant.CreateContentPlanParams{
		ClientID:   req.ClientID,
		Month:      req.Month,
		Period:     string(req.Period),
		PostCount:  int32(pc.PostCount),
		Plan:       result.Content,
		PromptHash: result.PromptHash,
	})
	if err != nil {
		b.logger.Error("failed to store content plan", "client_id", req.ClientID, "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to store content plan"}
	}

	b.recordUsage(ctx, tenant, req.UserID, usage.FeatureMonthlyPlan, result)

	return &model.GenerationResult[*model.MonthlyPlan]{
		Result: &model.MonthlyPlan{
			ID:        row.ID,
			ClientID:  row.ClientID,
			Month:     row.Month,
			Period:    model.PlanPeriod(row.Period),
			PostCount: int(row.PostCount),
			Plan:      row.Plan,
			CreatedAt: row.CreatedAt.Time,
		},
		FromCache:  result.FromCache,
		PromptHash: result.PromptHash,
		Model:      result.Model,
		TokensUsed: result.TokensUsed,
		CostUSD:    result.CostUSD,
	}, nil
}

// checkPlan rejects completions without a posts array. It runs inside the
// cache computation so a malformed plan is never stored.
func checkPlan(content json.RawMessage) error {
	var shape struct {
		Posts []json.RawMessage `json:"posts"`
	}
	if err := json.Unmarshal(content, &shape); err != nil || shape.Posts == nil {
		return &errs.Error{Code: errs.Unavailable, Message: "completion returned a plan without posts"}
	}
	return nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
