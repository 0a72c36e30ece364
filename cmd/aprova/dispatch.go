package main

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"aprova.app/platform/model"
)

func dispatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dispatch <notification-id>",
		Short: "Make one delivery attempt for a notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid notification id %q: %w", args[0], err)
			}

			a, err := newApp(cmd.Context(), opts, false)
			if err != nil {
				return err
			}
			defer a.Close()

			resp, err := a.service.DispatchNotification(cmd.Context(), id)
			if err != nil {
				return err
			}
			return newPrinter(cmd.OutOrStdout(), opts.output).print(resp,
				[]string{"NOTIFICATION", "ATTEMPT", "STATUS", "HTTP", "ERROR"},
				dispatchRows(resp.Result),
			)
		},
	}
}

func dispatchRows(result *model.DispatchResult) [][]string {
	statusCode := "-"
	if result.StatusCode != 0 {
		statusCode = strconv.Itoa(result.StatusCode)
	}
	return [][]string{{
		result.NotificationID.String(),
		strconv.Itoa(int(result.AttemptNumber)),
		string(result.Status),
		statusCode,
		orDash(result.Error),
	}}
}
