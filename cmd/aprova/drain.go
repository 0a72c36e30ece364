package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"aprova.app/platform"
	"aprova.app/platform/model"
)

func drainCmd(opts *rootOptions) *cobra.Command {
	var (
		limit int32
		wait  bool
	)

	cmd := &cobra.Command{
		Use:   "drain",
		Short: "Start the queued notification drain workflow",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &platform.DrainQueueRequest{Limit: limit}
			if err := req.Validate(); err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), opts, true)
			if err != nil {
				return err
			}
			defer a.Close()

			resp, err := a.service.DrainQueue(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := newPrinter(cmd.OutOrStdout(), opts.output)
			if !wait {
				return out.print(resp,
					[]string{"WORKFLOW", "RUN", "ALREADY_RUNNING"},
					[][]string{{resp.WorkflowID, orDash(resp.RunID), strconv.FormatBool(resp.AlreadyRunning)}},
				)
			}

			var result model.DrainResult
			if err := a.temporal.GetWorkflow(cmd.Context(), resp.WorkflowID, resp.RunID).Get(cmd.Context(), &result); err != nil {
				return fmt.Errorf("wait for drain: %w", err)
			}
			return out.print(result,
				[]string{"PROCESSED", "SENT", "FAILED", "SKIPPED"},
				drainRows(result),
			)
		},
	}

	cmd.Flags().Int32VarP(&limit, "limit", "n", 0, "maximum notifications to dispatch (0 uses webhook.drain_batch_size)")
	cmd.Flags().BoolVarP(&wait, "wait", "w", false, "wait for the drain to finish and print its counts")
	return cmd
}

func drainRows(result model.DrainResult) [][]string {
	return [][]string{{
		strconv.Itoa(result.Processed),
		strconv.Itoa(result.Sent),
		strconv.Itoa(result.Failed),
		strconv.Itoa(result.Skipped),
	}}
}
