package platform

import (
	"context"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"aprova.app/platform/errs"
	"aprova.app/platform/workflow"
)

type DrainQueueRequest struct {
	Limit int32 `json:"limit" validate:"min=0,max=100"`
}

type DrainQueueResponse struct {
	WorkflowID     string `json:"workflow_id"`
	RunID          string `json:"run_id,omitempty"`
	AlreadyRunning bool   `json:"already_running"`
}

// DrainQueue starts the queue drain workflow. Only one drain runs at a time.
func (s *Service) DrainQueue(ctx context.Context, req *DrainQueueRequest) (*DrainQueueResponse, error) {
	limit := req.Limit
	if limit == 0 {
		limit = s.config.DrainBatchSize
	}

	options := client.StartWorkflowOptions{
		ID:        workflow.DrainQueueWorkflowID,
		TaskQueue: s.config.TaskQueue,
	}

	run, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.DrainNotificationQueue, workflow.DrainQueueWorkflowParams{
		Limit: limit,
	})
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			s.logger.Info("drain already running", "workflow_id", workflow.DrainQueueWorkflowID)
			return &DrainQueueResponse{WorkflowID: workflow.DrainQueueWorkflowID, AlreadyRunning: true}, nil
		}
		s.logger.Error("failed to start drain workflow", "error", err)
		return nil, &errs.Error{Code: errs.Unavailable, Message: "failed to start queue drain"}
	}

	return &DrainQueueResponse{
		WorkflowID: run.GetID(),
		RunID:      run.GetRunID(),
	}, nil
}

func (r *DrainQueueRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
