package main

import (
	"context"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/auth"
	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/config"
	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/db"
	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/handler"
	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
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

			sessionManager := auth.NewSessionManager(database, cfg.DB.Driver, cfg.SessionLifetime)

			var oidcProvider *auth.Provider
			if cfg.SSOEnabled() {
				oidcProvider, err = auth.NewProvider(context.Background(), cfg)
				if err != nil {
					return err
				}
			}

			userStore := store.NewUserStore(database)
			serviceStore := store.NewServiceStore(database)
			galleryStore := store.NewGalleryStore(database)
			settingsStore := store.NewSettingsStore(database)
			contactStore := store.NewContactStore(database)

			gate := auth.NewGate(sessionManager, userStore, cfg.Auth.JWTSecret, cfg.Auth.SkipLocal)
			authService := auth.NewService(sessionManager, userStore)
			authHandlers := auth.NewHandlers(authService, oidcProvider, userStore)
			pageGate := auth.NewPageGate(gate, cfg.SSOEnabled())

			if cfg.Auth.SkipLocal {
				log.Printf("WARNING: auth.skip_local is on; loopback requests bypass authentication")
			}

			router := handler.NewRouter(handler.Deps{
				SessionManager: sessionManager,
				AuthHandlers:   authHandlers,
				AuthService:    authService,
				Gate:           gate,
				PageGate:       pageGate,
				ServiceStore:   serviceStore,
				GalleryStore:   galleryStore,
				SettingsStore:  settingsStore,
				ContactStore:   contactStore,
				UploadsDir:     cfg.UploadsDir,
				SSOEnabled:     cfg.SSOEnabled(),
			})

			log.Printf("listening on %s", cfg.HTTP.Addr)
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}
