package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"aprova.app/platform/completion"
	"aprova.app/platform/errs"
	"aprova.app/platform/model"
	"aprova.app/platform/repository/assistant"
	"aprova.app/platform/repository/tenants"
)

const profileJSON = `{
	"summary": "Family bakery in Lisbon",
	"target_persona": {"age_range": "25-45"},
	"content_pillars": ["craft", "community"],
	"tone_of_voice": ["warm", "playful"],
	"editorial_line": "Behind the counter stories"
}`

func TestGenerateClientProfile(t *testing.T) {
	clientID := uuid.New()
	agencyID := uuid.New()
	userID := uuid.New()
	briefingID := uuid.New()

	tenant := tenants.GetClientTenantRow{ClientID: clientID, ClientName: "Padaria", AgencyID: agencyID, AgencyName: "Studio", Plan: "starter"}
	briefing := assistant.GetLatestClientBriefingRow{
		BriefingID:   briefingID,
		ClientID:     clientID,
		Responses:    []byte(`{"business":"bakery","city":"Lisbon"}`),
		TemplateID:   uuid.New(),
		SystemPrompt: "You are a brand strategist.",
	}

	t.Run("miss_calls_completion_and_records_usage", func(t *testing.T) {
		b, deps, ctrl := newTestBusiness(t)
		defer ctrl.Finish()

		deps.tenantRepo.EXPECT().GetClientTenant(gomock.Any(), clientID).Return(tenant, nil)
		deps.usage.EXPECT().Gate(gomock.Any(), clientID).Return(&model.UsageStatus{CanUse: true}, nil)
		deps.repo.EXPECT().GetLatestClientBriefing(gomock.Any(), clientID).Return(briefing, nil)
		deps.repo.EXPECT().GetAIConfiguration(gomock.Any(), agencyID).Return(assistant.AiConfiguration{}, pgx.ErrNoRows)
		keys := expectRealKeys(deps)
		resolveByComputing(deps)

		deps.completer.EXPECT().Complete(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, req completion.Request) (*model.Completion, error) {
				assert.Equal(t, "gpt-4o-mini", req.Model)
				assert.Empty(t, req.APIKey)
				assert.InDelta(t, 0.7, req.Temperature, 0.0001)
				assert.Equal(t, 2000, req.MaxTokens)
				assert.Contains(t, req.SystemPrompt, "You are a brand strategist.")
				assert.Contains(t, req.SystemPrompt, "Professional and objective")
				assert.Contains(t, req.UserPrompt, `"city": "Lisbon"`)
				return &model.Completion{Content: json.RawMessage(profileJSON), Model: "gpt-4o-mini-2024-07-18", TokensUsed: 1200, CostUSD: 0.0004}, nil
			})

		deps.repo.EXPECT().UpsertClientAIProfile(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, arg assistant.UpsertClientAIProfileParams) (assistant.ClientAiProfile, error) {
				assert.Equal(t, clientID, arg.ClientID)
				assert.Equal(t, "Family bakery in Lisbon", arg.Summary)
				assert.JSONEq(t, `["warm","playful"]`, string(arg.ToneOfVoice))
				assert.JSONEq(t, `["craft","community"]`, string(arg.ContentPillars))
				assert.JSONEq(t, `{"age_range":"25-45"}`, string(arg.TargetPersona))
				return assistant.ClientAiProfile{
					ClientID:       arg.ClientID,
					Summary:        arg.Summary,
					ToneOfVoice:    arg.ToneOfVoice,
					TargetPersona:  arg.TargetPersona,
					ContentPillars: arg.ContentPillars,
					EditorialLine:  arg.EditorialLine,
					Raw:            arg.Raw,
					UpdatedAt:      pgtype.Timestamptz{Valid: true},
				}, nil
			})

		deps.usage.EXPECT().Record(gomock.Any(), model.UsageRecord{
			UserID:     &userID,
			AgencyID:   agencyID,
			ClientID:   clientID,
			Feature:    "client_profile",
			ModelUsed:  "gpt-4o-mini-2024-07-18",
			TokensUsed: 1200,
			CostUSD:    0.0004,
		}).Return(nil)

		result, err := b.GenerateClientProfile(context.Background(), &model.ClientProfileRequest{ClientID: clientID, UserID: &userID})

		require.NoError(t, err)
		assert.False(t, result.FromCache)
		assert.Equal(t, int32(1200), result.TokensUsed)
		assert.Equal(t, []string{"warm", "playful"}, result.Result.ToneOfVoice)
		assert.Equal(t, []string{"craft", "community"}, result.Result.ContentPillars)
		require.Len(t, *keys, 1)
		assert.Equal(t, model.PromptTypeBriefing, (*keys)[0].Type)
		assert.Equal(t, (*keys)[0].Hash, result.PromptHash)
	})

	t.Run("hit_skips_completion_and_records_cached_usage", func(t *testing.T) {
		b, deps, ctrl := newTestBusiness(t)
		defer ctrl.Finish()

		key := model.CacheKey{Hash: "cafe", Type: model.PromptTypeBriefing}
		deps.tenantRepo.EXPECT().GetClientTenant(gomock.Any(), clientID).Return(tenant, nil)
		deps.usage.EXPECT().Gate(gomock.Any(), clientID).Return(&model.UsageStatus{CanUse: true}, nil)
		deps.repo.EXPECT().GetClientBriefing(gomock.Any(), assistant.GetClientBriefingParams{ID: briefingID, ClientID: clientID}).
			Return(assistant.GetClientBriefingRow(briefing), nil)
		deps.repo.EXPECT().GetAIConfiguration(gomock.Any(), agencyID).Return(assistant.AiConfiguration{
			AgencyID:       agencyID,
			Model:          pgtype.Text{String: "gpt-4o", Valid: true},
			PromptBehavior: pgtype.Text{String: "Bold", Valid: true},
		}, nil)
		deps.cache.EXPECT().Key(gomock.Any()).DoAndReturn(func(input model.PromptInput) (model.CacheKey, error) {
			assert.Equal(t, "Bold", input.Behavior)
			assert.Equal(t, "You are a brand strategist.", input.Template)
			assert.Equal(t, "bakery", input.Responses["business"])
			return key, nil
		})
		deps.cache.EXPECT().Resolve(gomock.Any(), key, gomock.Any()).Return(&model.CachedCompletion{
			Completion: model.Completion{Content: json.RawMessage(profileJSON), Model: "gpt-4o"},
			PromptHash: key.Hash,
			FromCache:  true,
		}, nil)
		deps.repo.EXPECT().UpsertClientAIProfile(gomock.Any(), gomock.Any()).Return(assistant.ClientAiProfile{ClientID: clientID}, nil)
		deps.usage.EXPECT().Record(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, record model.UsageRecord) error {
				assert.True(t, record.FromCache)
				assert.Zero(t, record.TokensUsed)
				assert.Nil(t, record.UserID)
				return errors.New("usage table locked")
			})

		result, err := b.GenerateClientProfile(context.Background(), &model.ClientProfileRequest{ClientID: clientID, BriefingID: &briefingID})

		require.NoError(t, err)
		assert.True(t, result.FromCache)
		assert.Zero(t, result.TokensUsed)
		assert.Zero(t, result.CostUSD)
	})

	t.Run("gate_denial_short_circuits", func(t *testing.T) {
		b, deps, ctrl := newTestBusiness(t)
		defer ctrl.Finish()

		deps.tenantRepo.EXPECT().GetClientTenant(gomock.Any(), clientID).Return(tenant, nil)
		deps.usage.EXPECT().Gate(gomock.Any(), clientID).Return(nil, &errs.Error{
			Code:    errs.ResourceExhausted,
			Message: "Monthly AI usage limit reached. Please upgrade your plan.",
		})

		result, err := b.GenerateClientProfile(context.Background(), &model.ClientProfileRequest{ClientID: clientID})

		assert.Nil(t, result)
		assert.Equal(t, errs.ResourceExhausted, errs.Code(err))
	})

	t.Run("client_without_briefing", func(t *testing.T) {
		b, deps, ctrl := newTestBusiness(t)
		defer ctrl.Finish()

		deps.tenantRepo.EXPECT().GetClientTenant(gomock.Any(), clientID).Return(tenant, nil)
		deps.usage.EXPECT().Gate(gomock.Any(), clientID).Return(&model.UsageStatus{CanUse: true}, nil)
		deps.repo.EXPECT().GetLatestClientBriefing(gomock.Any(), clientID).Return(assistant.GetLatestClientBriefingRow{}, pgx.ErrNoRows)

		_, err := b.GenerateClientProfile(context.Background(), &model.ClientProfileRequest{ClientID: clientID})
		assert.Equal(t, errs.FailedPrecondition, errs.Code(err))
	})

	t.Run("unknown_client", func(t *testing.T) {
		b, deps, ctrl := newTestBusiness(t)
		defer ctrl.Finish()

		deps.tenantRepo.EXPECT().GetClientTenant(gomock.Any(), clientID).Return(tenants.GetClientTenantRow{}, pgx.ErrNoRows)

		_, err := b.GenerateClientProfile(context.Background(), &model.ClientProfileRequest{ClientID: clientID})
		assert.Equal(t, errs.NotFound, errs.Code(err))
	})

	t.Run("completion_failure_propagates", func(t *testing.T) {
		b, deps, ctrl := newTestBusiness(t)
		defer ctrl.Finish()

		deps.tenantRepo.EXPECT().GetClientTenant(gomock.Any(), clientID).Return(tenant, nil)
		deps.usage.EXPECT().Gate(gomock.Any(), clientID).Return(&model.UsageStatus{CanUse: true}, nil)
		deps.repo.EXPECT().GetLatestClientBriefing(gomock.Any(), clientID).Return(briefing, nil)
		deps.repo.EXPECT().GetAIConfiguration(gomock.Any(), agencyID).Return(assistant.AiConfiguration{}, pgx.ErrNoRows)
		expectRealKeys(deps)
		resolveByComputing(deps)
		deps.completer.EXPECT().Complete(gomock.Any(), gomock.Any()).
			Return(nil, &errs.Error{Code: errs.Unavailable, Message: "completion API error: HTTP 500"})

		result, err := b.GenerateClientProfile(context.Background(), &model.ClientProfileRequest{ClientID: clientID})
		assert.Nil(t, result)
		assert.Equal(t, errs.Unavailable, errs.Code(err))
	})
}

func TestAIConfig(t *testing.T) {
	agencyID := uuid.New()

	testCases := []struct {
		name     string
		row      assistant.AiConfiguration
		rowError error
		expected model.AIConfig
		code     errs.ErrCode
	}{
		{
			name:     "defaults_without_configuration",
			rowError: pgx.ErrNoRows,
			expected: model.AIConfig{Model: "gpt-4o-mini", Temperature: 0.7, MaxTokens: 2000},
			code:     errs.OK,
		},
		{
			name: "agency_overrides",
			row: assistant.AiConfiguration{
				Model:          pgtype.Text{String: "gpt-4o", Valid: true},
				ApiKey:         pgtype.Text{String: "sk-agency", Valid: true},
				PromptBehavior: pgtype.Text{String: "Friendly", Valid: true},
				PromptSkills:   pgtype.Text{String: "Copywriting", Valid: true},
				Temperature:    pgtype.Float4{Float32: 0.3, Valid: true},
				MaxTokens:      pgtype.Int4{Int32: 1500, Valid: true},
			},
			expected: model.AIConfig{APIKey: "sk-agency", Model: "gpt-4o", Behavior: "Friendly", Skills: "Copywriting", Temperature: 0.3, MaxTokens: 1500},
			code:     errs.OK,
		},
		{
			name: "blank_model_keeps_default",
			row: assistant.AiConfiguration{
				Model:     pgtype.Text{String: "", Valid: true},
				MaxTokens: pgtype.Int4{Int32: 0, Valid: true},
			},
			expected: model.AIConfig{Model: "gpt-4o-mini", Temperature: 0.7, MaxTokens: 2000},
			code:     errs.OK,
		},
		{
			name:     "store_failure",
			rowError: errors.New("boom"),
			code:     errs.Internal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, deps, ctrl := newTestBusiness(t)
			defer ctrl.Finish()

			deps.repo.EXPECT().GetAIConfiguration(gomock.Any(), agencyID).Return(tc.row, tc.rowError)

			cfg, err := b.aiConfig(context.Background(), agencyID)
			assert.Equal(t, tc.code, errs.Code(err))
			if tc.code == errs.OK {
				assert.Equal(t, tc.expected, cfg)
			}
		})
	}
}
