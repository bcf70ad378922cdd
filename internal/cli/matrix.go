package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"quicdiff/internal/compare"
	"quicdiff/internal/report"
	"quicdiff/internal/result"
	"quicdiff/pkg/errors"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix <baseline-dir> <candidate-dir>",
	Short: "Compare paired results across two directories",
	Long: `Compare benchmark results in bulk by pairing {prefix}_{profile}_{load}
file stems across two directories.

Stems present on only one side are reported as skipped. By default every
common profile/load key is compared; restrict the grid with --profiles and
--loads.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		table, err := tableFromFlags(cmd)
		if err != nil {
			return err
		}
		workers, _ := cmd.Flags().GetInt64("workers")
		basePrefix, _ := cmd.Flags().GetString("baseline-prefix")
		candPrefix, _ := cmd.Flags().GetString("candidate-prefix")
		profiles, _ := cmd.Flags().GetStringSlice("profiles")
		loads, _ := cmd.Flags().GetStringSlice("loads")

		loader := result.NewLoader(result.LoaderConfig{Workers: workers}, appInstance.Logger)

		baseColl, err := loadDirWithProgress(ctx, loader, args[0], "baseline")
		if err != nil {
			return err
		}
		candColl, err := loadDirWithProgress(ctx, loader, args[1], "candidate")
		if err != nil {
			return err
		}

		set := compare.BuildPairs(baseColl.Extract(), candColl.Extract(), compare.PairOptions{
			BaselinePrefix:  basePrefix,
			CandidatePrefix: candPrefix,
			Profiles:        profiles,
			Loads:           loads,
		})
		if len(set.Pairs) == 0 {
			return fmt.Errorf("%w: no common %s_* / %s_* stems between %s and %s",
				errors.ErrNoPairs, basePrefix, candPrefix, args[0], args[1])
		}

		comparator := compare.NewComparator(table)
		comparisons := comparator.CompareSet(set)

		rep := report.New(reportTitle(cmd, "Benchmark Comparison Matrix"), comparisons)
		rep.BaselineLabel = args[0]
		rep.CandidateLabel = args[1]
		rep.Threshold = table.Threshold
		rep.Tally = comparator.Tally(comparisons)
		rep.SkippedBaseline = set.BaselineOnly
		rep.SkippedCandidate = set.CandidateOnly

		report.RenderConsole(os.Stdout, rep)
		return writeArtifacts(cmd, rep)
	},
}

// loadDirWithProgress loads one side, printing per-file progress lines and a
// load summary. Failed files are reported and skipped.
func loadDirWithProgress(ctx context.Context, loader *result.Loader, dir, side string) (result.Collection, error) {
	fmt.Printf("Loading %s results from %s...\n", side, dir)

	progress := func(status result.FileStatus, current, total int) {
		if status.Err != nil {
			fmt.Printf("  [%d/%d] ❌ %s\n", current, total, filepath.Base(status.Path))
			return
		}
		fmt.Printf("  [%d/%d] ✅ %s\n", current, total, filepath.Base(status.Path))
	}

	coll, loadReport, err := loader.LoadDir(ctx, dir, progress)
	if err != nil {
		return nil, err
	}
	if loadReport.Failed > 0 {
		fmt.Printf("  %d loaded, %d failed (%.1fs)\n\n",
			loadReport.Loaded, loadReport.Failed, loadReport.Duration.Seconds())
	} else {
		fmt.Printf("  %d loaded (%.1fs)\n\n", loadReport.Loaded, loadReport.Duration.Seconds())
	}
	return coll, nil
}

func init() {
	matrixCmd.Flags().Int64P("workers", "w", 8, "number of concurrent file loaders")
	matrixCmd.Flags().String("baseline-prefix", "baseline_bbrv2", "file stem prefix on the baseline side")
	matrixCmd.Flags().String("candidate-prefix", "baseline_bbrv3", "file stem prefix on the candidate side")
	matrixCmd.Flags().StringSlice("profiles", nil, "restrict pairing to these network profiles")
	matrixCmd.Flags().StringSlice("loads", nil, "restrict pairing to these load levels")
	addReportFlags(matrixCmd)

	rootCmd.AddCommand(matrixCmd)
}
