package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"aprova.app/platform/domain"
	"aprova.app/platform/errs"
	"aprova.app/platform/model"
	"aprova.app/platform/repository/notifications"
	"aprova.app/platform/repository/settings"
	"aprova.app/platform/webhook"
)

func TestDispatch(t *testing.T) {
	notificationID := uuid.New()
	agencyID := uuid.New()
	clientID := uuid.New()
	attemptID := uuid.New()
	agencyURL := "https://hooks.agency.example.com/aprova"
	systemURL := "https://hooks.example.com/aprova"

	queuedRow := notifications.Notification{
		ID:        notificationID,
		Event:     "content.submitted",
		Category:  string(model.CategoryClient),
		ClientID:  uuid.NullUUID{UUID: clientID, Valid: true},
		AgencyID:  uuid.NullUUID{UUID: agencyID, Valid: true},
		Payload:   []byte(`{"content_id":"abc"}`),
		Status:    string(model.NotificationStatusQueued),
		CreatedAt: pgtype.Timestamptz{Time: fixedNow, Valid: true},
	}
	sentRow := queuedRow
	sentRow.Status = string(model.NotificationStatusSent)

	testCases := []struct {
		name                 string
		row                  notifications.Notification
		getError             error
		agencySetting        string
		agencySettingError   error
		systemSetting        string
		systemSettingError   error
		expectSettings       bool
		expectSystemSetting  bool
		expectedURL          string
		sendResponse         *webhook.Response
		sendError            error
		completeStatus       string
		completeError        error
		expectedCode         errs.ErrCode
		expectedStatus       model.NotificationStatus
		expectedStatusCode   int
		expectedResultError  string
		expectedAttemptState model.AttemptStatus
	}{
		{
			name:                 "agency_destination_accepts",
			row:                  queuedRow,
			agencySetting:        agencyURL,
			expectSettings:       true,
			expectedURL:          agencyURL,
			sendResponse:         &webhook.Response{StatusCode: 200, Body: "ok", Duration: 120 * time.Millisecond},
			completeStatus:       "sent",
			expectedCode:         errs.OK,
			expectedStatus:       model.NotificationStatusSent,
			expectedStatusCode:   200,
			expectedAttemptState: model.AttemptStatusSent,
		},
		{
			name:                 "falls_back_to_system_destination",
			row:                  queuedRow,
			agencySettingError:   pgx.ErrNoRows,
			systemSetting:        systemURL,
			expectSettings:       true,
			expectSystemSetting:  true,
			expectedURL:          systemURL,
			sendResponse:         &webhook.Response{StatusCode: 204},
			completeStatus:       "sent",
			expectedCode:         errs.OK,
			expectedStatus:       model.NotificationStatusSent,
			expectedStatusCode:   204,
			expectedAttemptState: model.AttemptStatusSent,
		},
		{
			name:                 "blank_agency_setting_counts_as_absent",
			row:                  queuedRow,
			agencySetting:        "   ",
			systemSetting:        systemURL,
			expectSettings:       true,
			expectSystemSetting:  true,
			expectedURL:          systemURL,
			sendResponse:         &webhook.Response{StatusCode: 200},
			completeStatus:       "sent",
			expectedCode:         errs.OK,
			expectedStatus:       model.NotificationStatusSent,
			expectedStatusCode:   200,
			expectedAttemptState: model.AttemptStatusSent,
		},
		{
			name:                 "non_2xx_marks_error_with_body",
			row:                  queuedRow,
			agencySetting:        agencyURL,
			expectSettings:       true,
			expectedURL:          agencyURL,
			sendResponse:         &webhook.Response{StatusCode: 500, Body: "workflow crashed"},
			completeStatus:       "error",
			expectedCode:         errs.OK,
			expectedStatus:       model.NotificationStatusError,
			expectedStatusCode:   500,
			expectedResultError:  "HTTP 500: workflow crashed",
			expectedAttemptState: model.AttemptStatusError,
		},
		{
			name:                 "network_failure_marks_error",
			row:                  queuedRow,
			agencySetting:        agencyURL,
			expectSettings:       true,
			expectedURL:          agencyURL,
			sendError:            errors.New("post webhook: dial tcp: connection refused"),
			completeStatus:       "error",
			expectedCode:         errs.OK,
			expectedStatus:       model.NotificationStatusError,
			expectedResultError:  "post webhook: dial tcp: connection refused",
			expectedAttemptState: model.AttemptStatusError,
		},
		{
			name:                "not_configured_fails_without_attempt",
			row:                 queuedRow,
			agencySettingError:  pgx.ErrNoRows,
			systemSettingError:  pgx.ErrNoRows,
			expectSettings:      true,
			expectSystemSetting: true,
			expectedCode:        errs.FailedPrecondition,
		},
		{
			name:                "empty_system_setting_is_not_configured",
			row:                 queuedRow,
			agencySettingError:  pgx.ErrNoRows,
			systemSetting:       "",
			expectSettings:      true,
			expectSystemSetting: true,
			expectedCode:        errs.FailedPrecondition,
		},
		{
			name:               "settings_failure",
			row:                queuedRow,
			agencySettingError: errors.New("connection reset"),
			expectSettings:     true,
			expectedCode:       errs.Internal,
		},
		{
			name:         "already_sent",
			row:          sentRow,
			expectedCode: errs.FailedPrecondition,
		},
		{
			name:         "not_found",
			getError:     pgx.ErrNoRows,
			expectedCode: errs.NotFound,
		},
		{
			name:           "attempt_bookkeeping_failure",
			row:            queuedRow,
			agencySetting:  agencyURL,
			expectSettings: true,
			expectedURL:    agencyURL,
			sendResponse:   &webhook.Response{StatusCode: 200},
			completeError:  &errs.Error{Code: errs.Internal, Message: "failed to commit state transition"},
			expectedCode:   errs.Internal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, deps, ctrl := newTestBusiness(t)
			defer ctrl.Finish()

			deps.repo.EXPECT().GetNotification(gomock.Any(), notificationID).Return(tc.row, tc.getError)

			if tc.expectSettings {
				deps.settingsRepo.EXPECT().
					GetAgencySetting(gomock.Any(), settings.GetAgencySettingParams{AgencyID: agencyID, Key: "client_notifications_webhook_url"}).
					Return(tc.agencySetting, tc.agencySettingError)
			}
			if tc.expectSystemSetting {
				deps.settingsRepo.EXPECT().
					GetSystemSetting(gomock.Any(), "client_notifications_webhook_url").
					Return(tc.systemSetting, tc.systemSettingError)
			}

			if tc.expectedURL != "" {
				deps.stateMachine.EXPECT().
					BeginAttempt(gomock.Any(), notificationID, tc.expectedURL).
					Return(notifications.NotificationAttempt{ID: attemptID, NotificationID: notificationID, AttemptNumber: 3}, nil)

				deps.sender.EXPECT().
					Send(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req webhook.Request) (*webhook.Response, error) {
						assert.Equal(t, tc.expectedURL, req.URL)
						assert.Equal(t, "content.submitted", req.Event)
						assert.Equal(t, attemptID.String(), req.DeliveryID)

						var envelope Envelope
						require.NoError(t, json.Unmarshal(req.Body, &envelope))
						assert.Equal(t, notificationID, envelope.NotificationID)
						assert.Equal(t, model.CategoryClient, envelope.Category)
						assert.Equal(t, &clientID, envelope.ClientID)
						assert.Equal(t, &agencyID, envelope.AgencyID)
						assert.JSONEq(t, `{"content_id":"abc"}`, string(envelope.Payload))
						return tc.sendResponse, tc.sendError
					})

				deps.stateMachine.EXPECT().
					CompleteAttempt(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, outcome domain.AttemptOutcome) (notifications.Notification, error) {
						assert.Equal(t, attemptID, outcome.AttemptID)
						assert.Equal(t, notificationID, outcome.NotificationID)
						if tc.expectedAttemptState != "" {
							assert.Equal(t, tc.expectedAttemptState, outcome.Status)
						}
						updated := tc.row
						updated.Status = tc.completeStatus
						return updated, tc.completeError
					})
			}

			result, err := b.Dispatch(context.Background(), notificationID)

			assert.Equal(t, tc.expectedCode, errs.Code(err))
			if tc.expectedCode != errs.OK {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.Equal(t, notificationID, result.NotificationID)
			assert.Equal(t, int32(3), result.AttemptNumber)
			assert.Equal(t, tc.expectedStatus, result.Status)
			assert.Equal(t, tc.expectedStatusCode, result.StatusCode)
			assert.Equal(t, tc.expectedResultError, result.Error)
		})
	}
}

func TestDispatch_CategoryRoutesToSettingKey(t *testing.T) {
	testCases := []struct {
		name        string
		category    model.Category
		expectedKey string
	}{
		{name: "client", category: model.CategoryClient, expectedKey: "client_notifications_webhook_url"},
		{name: "internal", category: model.CategoryInternal, expectedKey: "internal_webhook_url"},
		{name: "two_factor", category: model.CategoryTwoFactor, expectedKey: "two_factor_webhook_url"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, deps, ctrl := newTestBusiness(t)
			defer ctrl.Finish()

			id := uuid.New()
			deps.repo.EXPECT().GetNotification(gomock.Any(), id).Return(notifications.Notification{
				ID:       id,
				Event:    "internal.error",
				Category: string(tc.category),
				Payload:  []byte(`{}`),
				Status:   string(model.NotificationStatusPending),
			}, nil)
			deps.settingsRepo.EXPECT().GetSystemSetting(gomock.Any(), tc.expectedKey).Return("", pgx.ErrNoRows)

			_, err := b.Dispatch(context.Background(), id)
			assert.True(t, errs.Is(err, errs.FailedPrecondition))
		})
	}
}

func TestAttemptOutcome(t *testing.T) {
	attempt := notifications.NotificationAttempt{ID: uuid.New(), NotificationID: uuid.New()}

	testCases := []struct {
		name             string
		resp             *webhook.Response
		sendErr          error
		expectedStatus   model.AttemptStatus
		expectedCode     *int32
		expectedError    *string
		expectedBody     *string
		expectedDuration int64
	}{
		{
			name:             "accepted",
			resp:             &webhook.Response{StatusCode: 202, Duration: 250 * time.Millisecond},
			expectedStatus:   model.AttemptStatusSent,
			expectedCode:     ptr(int32(202)),
			expectedDuration: 250,
		},
		{
			name:           "rejected_without_body",
			resp:           &webhook.Response{StatusCode: 404},
			expectedStatus: model.AttemptStatusError,
			expectedCode:   ptr(int32(404)),
			expectedError:  ptr("HTTP 404"),
		},
		{
			name:           "rejected_with_body",
			resp:           &webhook.Response{StatusCode: 401, Body: "bad token"},
			expectedStatus: model.AttemptStatusError,
			expectedCode:   ptr(int32(401)),
			expectedError:  ptr("HTTP 401: bad token"),
			expectedBody:   ptr("bad token"),
		},
		{
			name:           "transport_error",
			sendErr:        errors.New("context deadline exceeded"),
			expectedStatus: model.AttemptStatusError,
			expectedError:  ptr("context deadline exceeded"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			outcome := attemptOutcome(attempt, tc.resp, tc.sendErr)
			assert.Equal(t, attempt.ID, outcome.AttemptID)
			assert.Equal(t, tc.expectedStatus, outcome.Status)
			assert.Equal(t, tc.expectedCode, outcome.StatusCode)
			assert.Equal(t, tc.expectedError, outcome.ErrorMessage)
			assert.Equal(t, tc.expectedBody, outcome.ResponseBody)
			assert.Equal(t, tc.expectedDuration, outcome.DurationMs)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
