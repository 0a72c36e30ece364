package notification

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"aprova.app/platform/errs"
	"aprova.app/platform/model"
	"aprova.app/platform/repository/settings"
)

func TestConfigureWebhook(t *testing.T) {
	agencyID := uuid.New()

	testCases := []struct {
		name         string
		category     model.Category
		agencyID     *uuid.UUID
		url          string
		expectAgency *settings.UpsertAgencySettingParams
		expectSystem *settings.UpsertSystemSettingParams
		repoError    error
		expectedCode errs.ErrCode
	}{
		{
			name:         "agency_override",
			category:     model.CategoryClient,
			agencyID:     &agencyID,
			url:          " https://n8n.agency.example.com/webhook/aprova ",
			expectAgency: &settings.UpsertAgencySettingParams{AgencyID: agencyID, Key: "client_notifications_webhook_url", Value: "https://n8n.agency.example.com/webhook/aprova"},
			expectedCode: errs.OK,
		},
		{
			name:         "system_default",
			category:     model.CategoryTwoFactor,
			url:          "http://sms-gateway.internal/hook",
			expectSystem: &settings.UpsertSystemSettingParams{Key: "two_factor_webhook_url", Value: "http://sms-gateway.internal/hook"},
			expectedCode: errs.OK,
		},
		{
			name:         "empty_url_clears",
			category:     model.CategoryInternal,
			url:          "",
			expectSystem: &settings.UpsertSystemSettingParams{Key: "internal_webhook_url", Value: ""},
			expectedCode: errs.OK,
		},
		{name: "relative_url", category: model.CategoryClient, url: "/webhook", expectedCode: errs.InvalidArgument},
		{name: "non_http_scheme", category: model.CategoryClient, url: "ftp://example.com/x", expectedCode: errs.InvalidArgument},
		{name: "unknown_category", category: model.Category("sms"), url: "https://example.com", expectedCode: errs.InvalidArgument},
		{
			name:         "unknown_agency",
			category:     model.CategoryClient,
			agencyID:     &agencyID,
			url:          "https://example.com/hook",
			expectAgency: &settings.UpsertAgencySettingParams{AgencyID: agencyID, Key: "client_notifications_webhook_url", Value: "https://example.com/hook"},
			repoError:    &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation},
			expectedCode: errs.NotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, deps, ctrl := newTestBusiness(t)
			defer ctrl.Finish()

			if tc.expectAgency != nil {
				deps.settingsRepo.EXPECT().UpsertAgencySetting(gomock.Any(), *tc.expectAgency).Return(tc.repoError)
			}
			if tc.expectSystem != nil {
				deps.settingsRepo.EXPECT().UpsertSystemSetting(gomock.Any(), *tc.expectSystem).Return(tc.repoError)
			}

			err := b.ConfigureWebhook(context.Background(), tc.category, tc.agencyID, tc.url)
			assert.Equal(t, tc.expectedCode, errs.Code(err))
		})
	}
}
