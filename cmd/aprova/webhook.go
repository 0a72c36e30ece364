package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"aprova.app/platform"
	"aprova.app/platform/model"
)

func webhookCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhook",
		Short: "Manage notification webhook destinations",
	}
	cmd.AddCommand(webhookSetCmd(opts))
	return cmd
}

func webhookSetCmd(opts *rootOptions) *cobra.Command {
	var agency string

	cmd := &cobra.Command{
		Use:   "set <category> <url>",
		Short: "Set the webhook URL for a category; an empty url clears it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := webhookRequest(args[0], args[1], agency)
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), opts, false)
			if err != nil {
				return err
			}
			defer a.Close()

			resp, err := a.service.ConfigureWebhook(cmd.Context(), req)
			if err != nil {
				return err
			}

			scope := "global"
			if resp.AgencyID != nil {
				scope = resp.AgencyID.String()
			}
			return newPrinter(cmd.OutOrStdout(), opts.output).print(resp,
				[]string{"CATEGORY", "SETTING", "SCOPE", "URL"},
				[][]string{{string(resp.Category), resp.SettingKey, scope, orDash(resp.URL)}},
			)
		},
	}

	cmd.Flags().StringVar(&agency, "agency", "", "agency id; defaults to the global setting")
	return cmd
}

func webhookRequest(category, url, agency string) (*platform.ConfigureWebhookRequest, error) {
	req := &platform.ConfigureWebhookRequest{
		Category: model.Category(category),
		URL:      url,
	}
	if agency != "" {
		id, err := uuid.Parse(agency)
		if err != nil {
			return nil, fmt.Errorf("invalid agency id %q: %w", agency, err)
		}
		req.AgencyID = &id
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}
