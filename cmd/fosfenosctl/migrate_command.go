package main

import (
	"fmt"

	"fosfenos/internal/storage/postgresql"

	"github.com/spf13/cobra"
)

func newMigrateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := ctx.database(cmd.Context())
			if err != nil {
				return err
			}

			applied, err := postgresql.Migrate(cmd.Context(), pool)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(applied) == 0 {
				fmt.Fprintln(out, "Schema is up to date")
				return nil
			}
			for _, name := range applied {
				fmt.Fprintf(out, "%s %s\n", okMark(), name)
			}
			return nil
		},
	}
}
