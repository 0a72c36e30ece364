package workflow

import (
	"errors"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"aprova.app/platform/errs"
)

// singleAttempt runs an activity once. Dispatch records its own attempt
// history, so Temporal must not add attempts behind its back.
func singleAttempt(ctx workflow.Context) workflow.Context {
	return workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	})
}

// hasCode reports whether an activity failed with the given error code.
func hasCode(err error, code errs.ErrCode) bool {
	var appErr *temporal.ApplicationError
	return errors.As(err, &appErr) && appErr.Type() == code.String()
}
