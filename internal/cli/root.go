package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quicdiff/internal/app"
)

var (
	appInstance *app.App
	version     = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "quicdiff",
	Short: "📊 quicdiff - Compare QUIC congestion control benchmark runs",
	Long: `📊 quicdiff - Compare QUIC congestion control benchmark runs

  Normalize benchmark result JSON and classify a candidate run against
  a baseline, metric by metric.

  Quick start:
    quicdiff show results/baseline_bbrv2_good_light.json
    quicdiff compare bbrv2.json bbrv3.json -o report.md
    quicdiff matrix results-bbrv2/ results-bbrv3/ --json report.json
    quicdiff tui results-bbrv2/ results-bbrv3/

  Core features:
    • Tolerant ingestion of heterogeneous benchmark result JSON
    • Polarity-aware ±threshold classification per metric
    • Console, Markdown, JSON and Prometheus textfile reports
    • Interactive TUI for browsing batch comparisons`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		metricsPath, _ := cmd.Flags().GetString("metrics")
		verbose, _ := cmd.Flags().GetBool("verbose")

		var err error
		appInstance, err = app.New(app.Options{MetricsPath: metricsPath, Verbose: verbose})
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if appInstance != nil {
			return appInstance.Close()
		}
		return nil
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().String("metrics", "", "metric table file (YAML)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("📊 quicdiff %s\n", version)
	},
}
