package main

import (
	"errors"

	"github.com/spf13/cobra"

	"caseregistry/internal/platform/config"
	"caseregistry/internal/platform/logger"
	"caseregistry/internal/platform/postgres"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.Postgres.DSN == "" {
				return errors.New("DATABASE_URL is required to migrate")
			}
			log := logger.New(cfg.Server.LogLevel)

			ctx := cmd.Context()
			db, err := postgres.Open(ctx, cfg.Postgres)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := postgres.Migrate(ctx, db); err != nil {
				return err
			}
			log.InfoContext(ctx, "migrations applied")
			return nil
		},
	}
}
