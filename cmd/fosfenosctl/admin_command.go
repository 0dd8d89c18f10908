package main

import (
	"fmt"
	"strings"

	usersvc "fosfenos/internal/services/user_service"

	"github.com/spf13/cobra"
)

func newCreateAdminCommand(ctx *commandContext) *cobra.Command {
	var email, password, name string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create the admin account or reset its password",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if strings.TrimSpace(email) == "" {
				email = cfg.Admin.Email
			}
			if password == "" {
				password = cfg.Admin.Password
			}
			if strings.TrimSpace(name) == "" {
				name = cfg.Admin.Name
			}
			if password == "" {
				return fmt.Errorf("password is required: pass --password or set ADMIN_PASSWORD")
			}

			repo, err := ctx.repository(cmd.Context())
			if err != nil {
				return err
			}

			id, err := usersvc.NewUserService(ctx.logger(), repo.User).EnsureAdmin(cmd.Context(), email, password, name)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s admin %s (%s)\n", okMark(), strings.ToLower(strings.TrimSpace(email)), id)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Admin email (defaults to admin.email)")
	cmd.Flags().StringVar(&password, "password", "", "Admin password (defaults to admin.password)")
	cmd.Flags().StringVar(&name, "name", "", "Display name (defaults to admin.name)")

	return cmd
}
