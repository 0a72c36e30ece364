package main

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"aprova.app/platform/model"
)

func usageCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "usage <client-id>",
		Short: "Show a client's AI usage for the current month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid client id %q: %w", args[0], err)
			}

			a, err := newApp(cmd.Context(), opts, false)
			if err != nil {
				return err
			}
			defer a.Close()

			resp, err := a.service.UsageStatus(cmd.Context(), clientID)
			if err != nil {
				return err
			}
			return newPrinter(cmd.OutOrStdout(), opts.output).print(resp,
				[]string{"CLIENT", "USED", "LIMIT", "REMAINING", "PERCENT", "CAN_USE", "PERIOD"},
				usageRows(resp.ClientID, resp.Usage),
			)
		},
	}
}

func usageRows(clientID uuid.UUID, status *model.UsageStatus) [][]string {
	limit, remaining := "unlimited", "unlimited"
	if !status.IsUnlimited {
		if status.Limit != nil {
			limit = strconv.Itoa(int(*status.Limit))
		}
		if status.Remaining != nil {
			remaining = strconv.FormatInt(*status.Remaining, 10)
		}
	}
	return [][]string{{
		clientID.String(),
		strconv.FormatInt(status.CurrentUsage, 10),
		limit,
		remaining,
		strconv.FormatFloat(status.Percentage, 'f', 1, 64),
		strconv.FormatBool(status.CanUse),
		status.PeriodStart.Format("2006-01"),
	}}
}
