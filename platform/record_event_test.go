package platform

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.uber.org/mock/gomock"

	"aprova.app/platform/errs"
	"aprova.app/platform/model"
	"aprova.app/platform/workflow"
)

func TestRecordEvent(t *testing.T) {
	clientID := uuid.New()
	notificationID := uuid.New()

	testCases := []struct {
		name              string
		request           *RecordEventRequest
		expectedInput     *model.EventInput
		businessReturn    *model.Notification
		businessDispatch  *model.DispatchResult
		businessError     error
		expectWorkflow    bool
		mockTemporalError error
		expectedError     string
	}{
		{
			name:    "defaults_to_client_category_without_delivery",
			request: &RecordEventRequest{Event: "content.approved", ClientID: &clientID, Payload: json.RawMessage(`{"content_id":"c1"}`)},
			expectedInput: &model.EventInput{
				Event:    "content.approved",
				Category: model.CategoryClient,
				ClientID: &clientID,
				Payload:  json.RawMessage(`{"content_id":"c1"}`),
				Mode:     model.DeliveryNone,
			},
			businessReturn: &model.Notification{ID: notificationID, Event: "content.approved", Status: model.NotificationStatusQueued},
		},
		{
			name:    "sync_returns_dispatch_result",
			request: &RecordEventRequest{Event: "content.approved", Category: model.CategoryClient, Mode: model.DeliverySync},
			expectedInput: &model.EventInput{
				Event:    "content.approved",
				Category: model.CategoryClient,
				Mode:     model.DeliverySync,
			},
			businessReturn:   &model.Notification{ID: notificationID, Status: model.NotificationStatusSent},
			businessDispatch: &model.DispatchResult{NotificationID: notificationID, AttemptNumber: 1, Status: model.NotificationStatusSent, StatusCode: 200},
		},
		{
			name:    "async_starts_delivery_workflow",
			request: &RecordEventRequest{Event: "content.approved", Mode: model.DeliveryAsync},
			expectedInput: &model.EventInput{
				Event:    "content.approved",
				Category: model.CategoryClient,
				Mode:     model.DeliveryAsync,
			},
			businessReturn: &model.Notification{ID: notificationID, Status: model.NotificationStatusQueued},
			expectWorkflow: true,
		},
		{
			name:    "async_workflow_failure_does_not_fail_request",
			request: &RecordEventRequest{Event: "content.approved", Mode: model.DeliveryAsync},
			expectedInput: &model.EventInput{
				Event:    "content.approved",
				Category: model.CategoryClient,
				Mode:     model.DeliveryAsync,
			},
			businessReturn:    &model.Notification{ID: notificationID, Status: model.NotificationStatusQueued},
			expectWorkflow:    true,
			mockTemporalError: errors.New("temporal unavailable"),
		},
		{
			name:    "async_workflow_already_started",
			request: &RecordEventRequest{Event: "content.approved", Mode: model.DeliveryAsync},
			expectedInput: &model.EventInput{
				Event:    "content.approved",
				Category: model.CategoryClient,
				Mode:     model.DeliveryAsync,
			},
			businessReturn:    &model.Notification{ID: notificationID, Status: model.NotificationStatusQueued},
			expectWorkflow:    true,
			mockTemporalError: serviceerror.NewWorkflowExecutionAlreadyStarted("already started", "", ""),
		},
		{
			name:    "business_error_is_returned",
			request: &RecordEventRequest{Event: "content.approved", ClientID: &clientID, Mode: model.DeliveryAsync},
			expectedInput: &model.EventInput{
				Event:    "content.approved",
				Category: model.CategoryClient,
				ClientID: &clientID,
				Mode:     model.DeliveryAsync,
			},
			businessError: &errs.Error{Code: errs.NotFound, Message: "client not found"},
			expectedError: "client not found",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, deps := newTestService(t)
			runInline(s)

			deps.notifications.EXPECT().
				RecordEvent(gomock.Any(), tc.expectedInput).
				Return(tc.businessReturn, tc.businessDispatch, tc.businessError).
				Times(1)

			if tc.expectWorkflow {
				deps.temporal.On("ExecuteWorkflow",
					mock.Anything,
					client.StartWorkflowOptions{
						ID:        workflow.DeliverNotificationWorkflowID(notificationID),
						TaskQueue: "aprova-notifications",
					},
					mock.Anything,
					workflow.DeliverNotificationWorkflowParams{NotificationID: notificationID},
				).Return(nil, tc.mockTemporalError).Once()
			}

			response, err := s.RecordEvent(context.Background(), tc.request)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, response)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.businessReturn, response.Notification)
			assert.Equal(t, tc.businessDispatch, response.Dispatch)
		})
	}
}

func TestRecordEventRequest_Validation(t *testing.T) {
	testCases := []struct {
		name          string
		request       *RecordEventRequest
		expectedError string
	}{
		{
			name:    "valid_request",
			request: &RecordEventRequest{Event: "content.approved", Category: model.CategoryClient, Mode: model.DeliverySync},
		},
		{
			name:    "valid_minimal_request",
			request: &RecordEventRequest{Event: "approval_requested"},
		},
		{
			name:          "missing_event",
			request:       &RecordEventRequest{},
			expectedError: "required",
		},
		{
			name:          "event_with_uppercase",
			request:       &RecordEventRequest{Event: "Content.Approved"},
			expectedError: "event_name",
		},
		{
			name:          "event_with_spaces",
			request:       &RecordEventRequest{Event: "content approved"},
			expectedError: "event_name",
		},
		{
			name:          "event_too_long",
			request:       &RecordEventRequest{Event: string(make([]byte, 101))},
			expectedError: "max",
		},
		{
			name:          "unknown_category",
			request:       &RecordEventRequest{Event: "content.approved", Category: "sms"},
			expectedError: "oneof",
		},
		{
			name:          "unknown_mode",
			request:       &RecordEventRequest{Event: "content.approved", Mode: "later"},
			expectedError: "oneof",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Equal(t, errs.InvalidArgument, errs.Code(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
