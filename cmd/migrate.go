package cmd

import (
	"context"
	"database/sql"

	"github.com/vibast-solutions/ms-go-authn/app/repository"
	"github.com/vibast-solutions/ms-go-authn/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withStore(cmd.Context(), func(ctx context.Context, db *sql.DB, d repository.Dialect) error {
			if err := repository.Migrate(ctx, db, d); err != nil {
				return err
			}
			logrus.WithField("driver", d).Info("Migrations applied")
			return nil
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withStore(cmd.Context(), func(ctx context.Context, db *sql.DB, d repository.Dialect) error {
			if err := repository.Rollback(ctx, db, d); err != nil {
				return err
			}
			logrus.WithField("driver", d).Info("Migration rolled back")
			return nil
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the migration status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withStore(cmd.Context(), repository.MigrationStatus)
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
	rootCmd.AddCommand(migrateCmd)
}

func withStore(ctx context.Context, fn func(context.Context, *sql.DB, repository.Dialect) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err = configureLogging(cfg); err != nil {
		return err
	}

	db, dialect, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(ctx, db, dialect)
}
