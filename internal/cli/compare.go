package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quicdiff/internal/compare"
	"quicdiff/internal/metrics"
	"quicdiff/internal/report"
	"quicdiff/internal/result"
)

var compareCmd = &cobra.Command{
	Use:   "compare <baseline.json> <candidate.json>",
	Short: "Compare two benchmark result files",
	Long: `Compare a candidate benchmark result against a baseline.

Prints both canonical records, the per-metric comparison table, and the
improvement/degradation summary. Report files are written on request:
Markdown with -o, JSON with --json, Prometheus textfile with --prom.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := tableFromFlags(cmd)
		if err != nil {
			return err
		}

		loader := result.NewLoader(result.LoaderConfig{}, appInstance.Logger)
		baseRaw, err := loader.LoadFile(args[0])
		if err != nil {
			return err
		}
		candRaw, err := loader.LoadFile(args[1])
		if err != nil {
			return err
		}

		pair := compare.Pair{
			Key:       fmt.Sprintf("%s_vs_%s", result.Stem(args[0]), result.Stem(args[1])),
			Baseline:  metrics.Extract(baseRaw),
			Candidate: metrics.Extract(candRaw),
		}

		comparator := compare.NewComparator(table)
		rep := report.New(reportTitle(cmd, "Benchmark Comparison Report"),
			[]compare.PairComparison{comparator.ComparePair(pair)})
		rep.BaselineLabel = args[0]
		rep.CandidateLabel = args[1]
		rep.Threshold = table.Threshold

		report.RenderConsole(os.Stdout, rep)
		return writeArtifacts(cmd, rep)
	},
}

func init() {
	addReportFlags(compareCmd)
	rootCmd.AddCommand(compareCmd)
}
