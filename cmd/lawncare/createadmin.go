package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/auth"
	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/config"
	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/db"
	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/store"
)

func newCreateAdminCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create-admin <email> [display name]",
		Short: "Create an admin user for credential login",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := strings.TrimSpace(args[0])
			if email == "" || !strings.Contains(email, "@") {
				return fmt.Errorf("%q is not a valid email address", args[0])
			}
			displayName := email
			if len(args) == 2 {
				displayName = args[1]
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			fmt.Fprint(os.Stderr, "Password: ")
			password, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Fprintln(os.Stderr)
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			if len(password) < 8 {
				return fmt.Errorf("password must be at least 8 characters")
			}

			hash, err := auth.HashPassword(string(password))
			if err != nil {
				return err
			}

			users := store.NewUserStore(database)
			user, err := users.Create(cmd.Context(), email, displayName, hash)
			if err != nil {
				return fmt.Errorf("create user: %w", err)
			}

			fmt.Printf("created admin %s (%s)\n", user.Email, user.ID)
			return nil
		},
	}
}
