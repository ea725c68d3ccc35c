package cmd

import (
	"context"
	"os"

	"github.com/Jaychaware/hrms-lite/internal/database"
	"github.com/Jaychaware/hrms-lite/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	migrateCmd = &cobra.Command{
		RunE:  runMigration,
		Use:   "migrate [command] [args]",
		Short: "to run db migration files for the configured database",
		Long: `Runs goose against the configured database. The command defaults to "up";
"down", "status", "reset", "redo" and "version" are also accepted.`,
		Args: cobra.ArbitraryArgs,
	}
	migrateRollback bool
	migrateDir      string
)

func init() {
	migrateCmd.Flags().BoolVarP(&migrateRollback, "rollback", "r", false, "to rollback the latest version of sql migration")
	migrateCmd.PersistentFlags().StringVarP(&migrateDir, "dir", "d", "", "sql migrations directory (default: embedded migrations for the driver)")
}

func runMigration(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg, err := loadConfig(".")
	if err != nil {
		return err
	}
	lg := logger.Configure(os.Stdout, cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)

	opts := database.MigrateOptions{Command: "up", Dir: migrateDir}
	if len(args) > 0 {
		opts.Command, opts.Args = args[0], args[1:]
	}
	if migrateRollback {
		opts.Command = "down"
	}

	lg.Info("running migrations", "command", opts.Command, "driver", cfg.Database.Driver)
	if err := database.Migrate(ctx, cfg.Database, opts); err != nil {
		lg.Error("migration failed", "error", err)
		return err
	}
	lg.Info("migrations complete")
	return nil
}
