package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"fosfenos/internal/repository"
	usersvc "fosfenos/internal/services/user_service"

	"github.com/spf13/cobra"
)

var verifiedTables = []string{
	"users",
	"team_members",
	"brands",
	"child_contents",
	"technical_infos",
	"awards",
	"platforms",
	"additional_infos",
	"services",
	"service_features",
	"site_configs",
}

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check configuration, database reachability and seeded data",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s config loaded (env=%s, cache=%s)\n", okMark(), cfg.Env, cfg.Cache.Driver)

			repo, err := ctx.repository(cmd.Context())
			if err != nil {
				fmt.Fprintf(out, "%s database: %v\n", failMark(), err)
				return err
			}

			pingCtx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			if err := repo.Ping(pingCtx); err != nil {
				fmt.Fprintf(out, "%s database ping: %v\n", failMark(), err)
				return err
			}
			fmt.Fprintf(out, "%s database reachable\n", okMark())

			return reportData(cmd.Context(), out, ctx, repo)
		},
	}
}

func reportData(ctx context.Context, out io.Writer, cc *commandContext, repo *repository.Repository) error {
	counts, err := repo.TableCounts(ctx, verifiedTables)
	if err != nil {
		fmt.Fprintf(out, "%s table counts: %v\n", failMark(), err)
		return err
	}

	rows := make([][]string, 0, len(verifiedTables))
	empty := 0
	for _, table := range verifiedTables {
		n := counts[table]
		if n == 0 {
			empty++
		}
		rows = append(rows, []string{table, strconv.Itoa(n)})
	}
	fmt.Fprintln(out, renderTable([]string{"Table", "Rows"}, rows, []columnAlignment{alignLeft, alignRight}))

	admins, err := usersvc.NewUserService(cc.logger(), repo.User).AdminCount(ctx)
	if err != nil {
		return err
	}

	switch {
	case admins == 0:
		fmt.Fprintf(out, "%s no admin account, run create-admin\n", warnMark())
	default:
		fmt.Fprintf(out, "%s %d admin account(s)\n", okMark(), admins)
	}
	if empty > 0 {
		fmt.Fprintf(out, "%s %d empty table(s), run seed to load demo data\n", warnMark(), empty)
	}
	return nil
}
