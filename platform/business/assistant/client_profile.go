package assistant

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"aprova.app/platform/business/usage"
	"aprova.app/platform/completion"
	"aprova.app/platform/errs"
	"aprova.app/platform/model"
	"aprova.app/platform/repository/assistant"
)

// generatedProfile is the subset of the completion stored on the client.
type generatedProfile struct {
	Summary        string          `json:"summary"`
	TargetPersona  json.RawMessage `json:"target_persona"`
	ContentPillars []string        `json:"content_pillars"`
	ToneOfVoice    []string        `json:"tone_of_voice"`
	EditorialLine  string          `json:"editorial_line"`
}

// GenerateClientProfile turns a client briefing into an AI profile.
func (b *business) GenerateClientProfile(ctx context.Context, req *model.ClientProfileRequest) (*model.GenerationResult[*model.ClientProfile], error) {
	tenant, err := b.clientTenant(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}

	if _, err := b.usage.Gate(ctx, req.ClientID); err != nil {
		return nil, err
	}

	briefing, err := b.briefing(ctx, req)
	if err != nil {
		return nil, err
	}

	var responses map[string]any
	if err := json.Unmarshal(briefing.Responses, &responses); err != nil {
		return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "briefing responses are not a JSON object"}
	}

	cfg, err := b.aiConfig(ctx, tenant.AgencyID)
	if err != nil {
		return nil, err
	}

	input := model.PromptInput{
		Type:      model.PromptTypeBriefing,
		Template:  briefing.SystemPrompt,
		Responses: responses,
		Behavior:  cfg.Behavior,
		Skills:    cfg.Skills,
	}
	key, err := b.cache.Key(input)
	if err != nil {
		return nil, err
	}

	result, err := b.cache.Resolve(ctx, key, func(ctx context.Context) (*model.Completion, error) {
		userPrompt, err := profileUserPrompt(responses)
		if err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to encode briefing responses"}
		}
		c, err := b.completer.Complete(ctx, completion.Request{
			APIKey:       cfg.APIKey,
			Model:        cfg.Model,
			SystemPrompt: profileSystemPrompt(briefing.SystemPrompt, cfg),
			UserPrompt:   userPrompt,
			Temperature:  cfg.Temperature,
			MaxTokens:    cfg.MaxTokens,
		})
		if err != nil {
			return nil, err
		}
		if _, err := decodeProfile(c.Content); err != nil {
			return nil, err
		}
		return c, nil
	})
	if err != nil {
		b.logger.Error("client profile generation failed", "client_id", req.ClientID, "error", err)
		return nil, err
	}

	generated, err := decodeProfile(result.Content)
	if err != nil {
		return nil, err
	}

	stored, err := b.repo.UpsertClientAIProfile(ctx, assistant.UpsertClientAIProfileParams{
		ClientID:       req.ClientID,
		Summary:        generated.Summary,
		ToneOfVoice:    mustJSON(generated.ToneOfVoice),
		TargetPersona:  generated.TargetPersona,
		ContentPillars: mustJSON(generated.ContentPillars),
		EditorialLine:  generated.EditorialLine,
		Raw:            result.Content,
	})
	if err != nil {
		b.logger.Error("failed to store client profile", "client_id", req.ClientID, "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to store client profile"}
	}

	b.recordUsage(ctx, tenant, req.UserID, usage.FeatureClientProfile, result)

	return &model.GenerationResult[*model.ClientProfile]{
		Result:     toClientProfile(stored),
		FromCache:  result.FromCache,
		PromptHash: result.PromptHash,
		Model:      result.Model,
		TokensUsed: result.TokensUsed,
		CostUSD:    result.CostUSD,
	}, nil
}

// decodeProfile parses a profile completion. It runs inside the cache
// computation so a malformed profile is never stored.
func decodeProfile(content json.RawMessage) (generatedProfile, error) {
	var generated generatedProfile
	if err := json.Unmarshal(content, &generated); err != nil {
		return generated, &errs.Error{Code: errs.Unavailable, Message: "completion returned an unexpected profile shape"}
	}
	return generated, nil
}

// briefing loads the requested briefing, or the client's latest one.
func (b *business) briefing(ctx context.Context, req *model.ClientProfileRequest) (assistant.GetClientBriefingRow, error) {
	var (
		row assistant.GetClientBriefingRow
		err error
	)
	if req.BriefingID != nil {
		row, err = b.repo.GetClientBriefing(ctx, assistant.GetClientBriefingParams{
			ID:       *req.BriefingID,
			ClientID: req.ClientID,
		})
	} else {
		var latest assistant.GetLatestClientBriefingRow
		latest, err = b.repo.GetLatestClientBriefing(ctx, req.ClientID)
		row = assistant.GetClientBriefingRow(latest)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if req.BriefingID != nil {
				return row, &errs.Error{Code: errs.NotFound, Message: "briefing not found"}
			}
			return row, &errs.Error{Code: errs.FailedPrecondition, Message: "client has no briefing"}
		}
		b.logger.Error("failed to load briefing", "client_id", req.ClientID, "error", err)
		return row, &errs.Error{Code: errs.Internal, Message: "failed to load briefing"}
	}
	return row, nil
}

func toClientProfile(row assistant.ClientAiProfile) *model.ClientProfile {
	p := &model.ClientProfile{
		ClientID:      row.ClientID,
		Summary:       row.Summary,
		EditorialLine: row.EditorialLine,
		Raw:           row.Raw,
		UpdatedAt:     row.UpdatedAt.Time,
	}
	if len(row.TargetPersona) > 0 {
		p.TargetPersona = row.TargetPersona
	}
	_ = json.Unmarshal(row.ToneOfVoice, &p.ToneOfVoice)
	_ = json.Unmarshal(row.ContentPillars, &p.ContentPillars)
	return p
}

// mustJSON encodes a string list; nil encodes as an empty array.
func mustJSON(values []string) []byte {
	if values == nil {
		values = []string{}
	}
	encoded, _ := json.Marshal(values)
	return encoded
}
