package platform

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"aprova.app/platform/errs"
	"aprova.app/platform/model"
	"aprova.app/platform/workflow"
)

type RecordEventRequest struct {
	Event    string             `json:"event" validate:"required,max=100,event_name"`
	Category model.Category     `json:"category" validate:"omitempty,oneof=client internal two_factor"`
	ClientID *uuid.UUID         `json:"client_id"`
	AgencyID *uuid.UUID         `json:"agency_id"`
	Payload  json.RawMessage    `json:"payload"`
	Mode     model.DeliveryMode `json:"mode" validate:"omitempty,oneof=none sync async"`
}

type NotificationResponse struct {
	Notification *model.Notification   `json:"notification"`
	Dispatch     *model.DispatchResult `json:"dispatch,omitempty"`
}

// RecordEvent stores a business event as a notification and delivers it
// according to the requested mode.
func (s *Service) RecordEvent(ctx context.Context, req *RecordEventRequest) (*NotificationResponse, error) {
	if req.Category == "" {
		req.Category = model.CategoryClient
	}
	if req.Mode == "" {
		req.Mode = model.DeliveryNone
	}

	n, dispatched, err := s.notifications.RecordEvent(ctx, &model.EventInput{
		Event:    req.Event,
		Category: req.Category,
		ClientID: req.ClientID,
		AgencyID: req.AgencyID,
		Payload:  req.Payload,
		Mode:     req.Mode,
	})
	if err != nil {
		s.logger.Error("failed to record event", "event", req.Event, "error", err)
		return nil, err
	}

	if req.Mode == model.DeliveryAsync {
		id := n.ID
		s.background("start delivery workflow", func(ctx context.Context) error {
			return s.startDeliveryWorkflow(ctx, id)
		})
	}

	return &NotificationResponse{
		Notification: n,
		Dispatch:     dispatched,
	}, nil
}

func (r *RecordEventRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

// startDeliveryWorkflow starts the background delivery of a queued notification
func (s *Service) startDeliveryWorkflow(ctx context.Context, id uuid.UUID) error {
	workflowID := workflow.DeliverNotificationWorkflowID(id)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: s.config.TaskQueue,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.DeliverNotification, workflow.DeliverNotificationWorkflowParams{
		NotificationID: id,
	})
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			s.logger.Info("workflow already started", "notification_id", id, "workflow_id", workflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}
	return nil
}
