package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"aprova.app/platform/store"
)

func migrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), opts, false)
			if err != nil {
				return err
			}
			defer a.Close()

			applied, err := store.Migrate(cmd.Context(), a.pool)
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				a.logger.Info("schema is up to date")
			}

			rows := make([][]string, 0, len(applied))
			for _, version := range applied {
				rows = append(rows, []string{strconv.Itoa(version)})
			}
			return newPrinter(cmd.OutOrStdout(), opts.output).print(
				map[string]any{"applied": applied},
				[]string{"VERSION"},
				rows,
			)
		},
	}
}
