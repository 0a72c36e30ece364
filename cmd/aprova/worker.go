package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.temporal.io/sdk/worker"

	"aprova.app/platform/workflow"
)

func workerCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Run the Temporal worker for notification delivery",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), opts, true)
			if err != nil {
				return err
			}
			defer a.Close()

			workflow.SetActivityDependencies(a.notifications)

			w := worker.New(a.temporal, a.cfg.Temporal.TaskQueue, worker.Options{})
			workflow.Register(w)

			a.logger.Info("temporal worker started", "task_queue", a.cfg.Temporal.TaskQueue)
			if err := w.Run(worker.InterruptCh()); err != nil {
				return fmt.Errorf("run worker: %w", err)
			}
			return nil
		},
	}
}
