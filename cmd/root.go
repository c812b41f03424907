package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "calibra",
	Short: "Confidence calibration trainer",
	Long: `Calibra tracks how well a learner's confidence matches their performance,
surfaces recurring failure patterns and drills weak spots with controlled-failure
challenges.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides CALIBRA_DB env var)")
	pf.String("config", "", "Path to config file (overrides CALIBRA_CONFIG env var)")
	pf.StringP("user", "u", "", "Learner id (defaults to CALIBRA_USER, then the OS user)")
	pf.Bool("json", false, "Print JSON instead of tables")

	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(challengeCmd)
	rootCmd.AddCommand(retriesCmd)
	rootCmd.AddCommand(optinCmd)
	rootCmd.AddCommand(benchmarkCmd)
	rootCmd.AddCommand(poolCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}
