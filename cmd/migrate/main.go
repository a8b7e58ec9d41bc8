// Command blackout-migrate inspects and upgrades legacy marker records and
// answers REP and rank questions from the command line.
package main

import (
	"os"

	"github.com/meur/blackout/internal/config"
	"github.com/meur/blackout/internal/logger"
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
	rootCmd := &cobra.Command{
		Use:           "blackout-migrate",
		Short:         "Legacy marker migration and REP tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().String("db", "", "SQLite database path (default from config)")
	v.BindPFlag("db_path", rootCmd.PersistentFlags().Lookup("db"))

	rootCmd.AddCommand(newStatsCmd(v))
	rootCmd.AddCommand(newRunCmd(v))
	rootCmd.AddCommand(newRankCmd())
	rootCmd.AddCommand(newCalcCmd())

	return rootCmd
}
