package main

import (
	"fmt"
	"strconv"

	"github.com/meur/blackout/internal/config"
	"github.com/meur/blackout/internal/logger"
	"github.com/meur/blackout/internal/migration"
	"github.com/meur/blackout/internal/models"
	"github.com/meur/blackout/internal/rep"
	"github.com/meur/blackout/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func openStore(v *viper.Viper) (*storage.Store, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	logger.SetDebug(cfg.Debug)
	logger.Debug("Opening %s", cfg.DBPath)
	return storage.New(cfg.DBPath)
}

// newStatsCmd creates the "stats" command.
func newStatsCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count markers that still need migrating",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(v)
			if err != nil {
				return err
			}
			defer store.Close()

			markers, err := store.ListMarkers("")
			if err != nil {
				return fmt.Errorf("list markers: %w", err)
			}

			stats := migration.GetMigrationStats(markers)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total markers:    %d\n", stats.Total)
			fmt.Fprintf(out, "Needs migration:  %d\n", stats.NeedsMigration)
			fmt.Fprintf(out, "Already migrated: %d (%d%%)\n", stats.AlreadyMigrated, stats.MigrationPercentage)
			return nil
		},
	}
}

// newRunCmd creates the "run" command.
func newRunCmd(v *viper.Viper) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Migrate legacy markers and store the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(v)
			if err != nil {
				return err
			}
			defer store.Close()

			markers, err := store.ListMarkers("")
			if err != nil {
				return fmt.Errorf("list markers: %w", err)
			}

			pending := make([]models.Marker, 0, len(markers))
			for _, m := range markers {
				if migration.NeedsMigration(m) {
					pending = append(pending, m)
				}
			}
			if len(pending) == 0 {
				logger.Success("Nothing to migrate (%d marker(s) already current)", len(markers))
				return nil
			}

			result := migration.BulkMigrateWithValidation(pending)
			for _, e := range result.Errors {
				logger.Warning("%s: %s", e.MarkerID, e.Error)
			}

			if dryRun {
				logger.Info("Dry run: would migrate %d marker(s), %d failure(s)", result.SuccessCount, result.FailureCount)
				return nil
			}

			if err := store.SaveMarkers(result.MigratedMarkers); err != nil {
				return fmt.Errorf("save migrated markers: %w", err)
			}
			logger.Success("Migrated %d marker(s), %d failure(s)", result.SuccessCount, result.FailureCount)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report without writing to the database")
	return cmd
}

// newRankCmd creates the "rank" command.
func newRankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rank <rep>",
		Short: "Show the rank and progress for a REP total",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("rep must be an integer: %w", err)
			}

			p := rep.RankProgressFor(total)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Rank: %s\n", p.CurrentRank)
			if p.NextRank == nil {
				fmt.Fprintln(out, "Top rank reached")
				return nil
			}
			fmt.Fprintf(out, "Next: %s in %d REP (%.0f%%)\n", *p.NextRank, p.RepToNextLevel, p.Progress)
			return nil
		},
	}
}

// newCalcCmd creates the "calc" command.
func newCalcCmd() *cobra.Command {
	var opts models.RepOptions

	cmd := &cobra.Command{
		Use:   "calc <surface> <graffiti-type>",
		Short: "Calculate the REP for a drop",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := rep.Calculate(models.SurfaceType(args[0]), models.GraffitiType(args[1]), opts)

			out := cmd.OutOrStdout()
			b := result.Breakdown
			fmt.Fprintf(out, "REP: %d\n", result.Rep)
			fmt.Fprintf(out, "Base: %d + %d, multiplier ×%.4g\n", b.SurfaceBase, b.GraffitiBase, b.TotalMultiplier)
			for _, bonus := range b.Bonuses {
				fmt.Fprintf(out, "  + %s\n", bonus)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.IsHeaven, "heaven", false, "Heaven spot")
	cmd.Flags().BoolVar(&opts.IsMovingTarget, "moving", false, "Moving target")
	cmd.Flags().BoolVar(&opts.IsHighRisk, "high-risk", false, "High-risk spot")
	cmd.Flags().BoolVar(&opts.IsCollaboration, "collab", false, "Crew collaboration")
	cmd.Flags().BoolVar(&opts.HasStreakBonus, "streak", false, "Streak bonus")
	return cmd
}
