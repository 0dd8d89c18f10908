package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// rollbackTables lists the seeded content tables children first. Users and
// the schema itself are never touched.
var rollbackTables = []string{
	"service_features",
	"services",
	"additional_infos",
	"platforms",
	"awards",
	"technical_infos",
	"child_contents",
	"brands",
	"team_members",
}

var errRollbackNotConfirmed = errors.New("rollback deletes all seeded content: re-run with --confirm")

func newRollbackCommand(ctx *commandContext) *cobra.Command {
	var confirm bool
	var withConfig bool

	cmd := &cobra.Command{
		Use:   "rollback",
		Short: "Delete all seeded content in one transaction",
		Long: "Deletes every row of the content tables, children before parents, inside a single\n" +
			"transaction. Admin accounts are kept. Run seed afterwards to load the data again.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if !confirm {
				fmt.Fprintf(out, "%s nothing deleted\n", warnMark())
				return errRollbackNotConfirmed
			}

			tables := rollbackPlan(withConfig)

			repo, err := ctx.repository(cmd.Context())
			if err != nil {
				return err
			}

			deleted, err := repo.Purge(cmd.Context(), tables)
			if err != nil {
				fmt.Fprintf(out, "%s rollback failed, no rows were deleted: %v\n", failMark(), err)
				return err
			}

			rows := make([][]string, 0, len(tables))
			for _, table := range tables {
				rows = append(rows, []string{table, strconv.FormatInt(deleted[table], 10)})
			}
			fmt.Fprintln(out, renderTable([]string{"Table", "Deleted"}, rows, []columnAlignment{alignLeft, alignRight}))
			fmt.Fprintf(out, "%s rollback complete, run seed to load the data again\n", okMark())

			return nil
		},
	}

	cmd.Flags().BoolVar(&confirm, "confirm", false, "Actually delete the data")
	cmd.Flags().BoolVar(&withConfig, "include-site-config", false, "Also delete site configuration entries")

	return cmd
}

func rollbackPlan(withConfig bool) []string {
	tables := append([]string(nil), rollbackTables...)
	if withConfig {
		tables = append(tables, "site_configs")
	}
	return tables
}
