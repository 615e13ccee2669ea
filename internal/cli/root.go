package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rogerio-castellano/inventory-manager/internal/config"
	"github.com/rogerio-castellano/inventory-manager/internal/db"
	"github.com/rogerio-castellano/inventory-manager/internal/logging"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
	"github.com/rogerio-castellano/inventory-manager/internal/shell"
)

// NewRootCmd builds the root command: open the database, ensure the schema
// and hand control to the interactive shell.
func NewRootCmd() *cobra.Command {
	v := config.New()

	cmd := &cobra.Command{
		Use:          "inventory",
		Short:        "Interactive inventory manager backed by an embedded SQLite database",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			logger := logging.New(cfg.LogLevel)

			database, err := db.Open(ctx, cfg.Database)
			if err != nil {
				return fmt.Errorf("could not open database %q: %w", cfg.Database, err)
			}
			defer database.Close()

			if err := db.EnsureSchema(ctx, database); err != nil {
				return err
			}
			logger.Debug().Str("database", cfg.Database).Msg("database ready")

			s := shell.New(repo.NewSQLiteProductRepository(database), cmd.InOrStdin(), cmd.OutOrStdout(), logger)
			s.Run(ctx)
			return nil
		},
	}

	cmd.Flags().String("database", "inventory.db", "path to the SQLite database file")
	cmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
	_ = v.BindPFlag("database", cmd.Flags().Lookup("database"))
	_ = v.BindPFlag("log-level", cmd.Flags().Lookup("log-level"))

	return cmd
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}
