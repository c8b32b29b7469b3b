package main

import (
	"context"
	"database/sql"
	"fmt"

	"lexiflow/internal/config"
	"lexiflow/internal/repository"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database schema migrations",
	}
	cmd.AddCommand(
		newMigrateSubCmd("up", "Apply all pending migrations", repository.MigrateUp),
		newMigrateSubCmd("down", "Roll back the most recent migration", repository.MigrateDown),
		newMigrateSubCmd("status", "Show migration status", repository.MigrateStatus),
	)
	return cmd
}

func newMigrateSubCmd(use, short string, run func(context.Context, *sql.DB) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newAppLogger(config.Cfg.Log.Level)

			db, err := repository.NewDB(config.Cfg.Database.URL, logger)
			if err != nil {
				return fmt.Errorf("initialize database: %w", err)
			}
			sqlDB, err := db.DB()
			if err != nil {
				return fmt.Errorf("get sql.DB: %w", err)
			}
			defer sqlDB.Close()

			if err := run(cmd.Context(), sqlDB); err != nil {
				return err
			}
			logger.Info("Migration command finished", "command", use)
			return nil
		},
	}
}
