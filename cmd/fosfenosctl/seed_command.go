package main

import (
	"fmt"
	"strconv"

	"fosfenos/internal/app"
	"fosfenos/internal/seed"
	brandsvc "fosfenos/internal/services/brand_service"
	catalogsvc "fosfenos/internal/services/catalog_service"
	contentsvc "fosfenos/internal/services/content_service"
	"fosfenos/internal/services/reader"
	configsvc "fosfenos/internal/services/site_config_service"
	teamsvc "fosfenos/internal/services/team_service"
	usersvc "fosfenos/internal/services/user_service"

	"github.com/spf13/cobra"
)

func newSeedCommand(ctx *commandContext) *cobra.Command {
	var skipAdmin bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the demo catalog and the bootstrap admin",
		Long: "Load the demo contents, team, services, brands and site settings.\n" +
			"Existing rows are left alone, so the command can be repeated.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			repo, err := ctx.repository(cmd.Context())
			if err != nil {
				return err
			}

			log := ctx.logger()

			// Seeding goes through the same cache as the server so its
			// invalidations reach running instances sharing redis.
			readCache, redisClient, err := app.NewReadCache(cmd.Context(), log, cfg)
			if err != nil {
				return err
			}
			if redisClient != nil {
				defer redisClient.Close()
			}
			rd := reader.New(log, readCache)

			seeder := seed.New(log,
				usersvc.NewUserService(log, repo.User),
				contentsvc.NewContentService(log, repo.Content, rd),
				teamsvc.NewTeamService(log, repo.Team, rd),
				brandsvc.NewBrandService(log, repo.Brand, rd),
				catalogsvc.NewCatalogService(log, repo.Service, rd),
				configsvc.NewSiteConfigService(log, repo.SiteConfig, rd),
			)

			admin := seed.Admin{Email: cfg.Admin.Email, Password: cfg.Admin.Password, Name: cfg.Admin.Name}
			if skipAdmin {
				admin.Password = ""
			}

			rep, err := seeder.Run(cmd.Context(), admin)
			if err != nil {
				return err
			}

			rows := [][]string{
				{"contents", strconv.Itoa(rep.ContentsCreated), strconv.Itoa(rep.ContentsSkipped)},
				{"team members", strconv.Itoa(rep.TeamCreated), strconv.Itoa(rep.TeamSkipped)},
				{"services", strconv.Itoa(rep.Services), "-"},
				{"brands", strconv.Itoa(rep.Brands), "-"},
				{"site config", strconv.Itoa(rep.SiteConfig), "-"},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Section", "Written", "Skipped"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight},
			))
			if rep.Admin {
				fmt.Fprintf(cmd.OutOrStdout(), "%s admin %s\n", okMark(), cfg.Admin.Email)
			} else if !skipAdmin {
				fmt.Fprintf(cmd.OutOrStdout(), "%s admin password not configured, skipped\n", warnMark())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipAdmin, "skip-admin", false, "Do not create or update the admin account")

	return cmd
}
