// Command blackout-seed loads a legacy marker export into the store.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/meur/blackout/internal/config"
	"github.com/meur/blackout/internal/logger"
	"github.com/meur/blackout/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd(config.New()).Execute(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	var (
		inputPath string
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:           "blackout-seed",
		Short:         "Load legacy markers from a JSON export",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			logger.SetDebug(cfg.Debug)

			raw, err := os.ReadFile(inputPath)
			if err != nil {
				return fmt.Errorf("read markers: %w", err)
			}
			entries, err := decodeExport(raw)
			if err != nil {
				return err
			}

			markers, skipped := toMarkers(entries, time.Now().UTC())
			logger.Info("Loaded %d legacy marker(s) from %s", len(entries), inputPath)
			if skipped > 0 {
				logger.Warning("Skipped %d marker(s) without a user id", skipped)
			}

			if dryRun {
				logger.Info("Dry run: would seed %d marker(s) into %s", len(markers), cfg.DBPath)
				return nil
			}

			store, err := storage.New(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer store.Close()

			if err := store.SaveMarkers(markers); err != nil {
				return fmt.Errorf("seed markers: %w", err)
			}
			logger.Success("Seeded %d marker(s) into %s", len(markers), cfg.DBPath)
			return nil
		},
	}

	cmd.Flags().String("db", "", "SQLite database path (default from config)")
	v.BindPFlag("db_path", cmd.Flags().Lookup("db"))
	cmd.Flags().StringVar(&inputPath, "markers", "./seeds/legacy_markers.json", "Legacy marker export (JSON array)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print summary without writing to the database")

	return cmd
}
