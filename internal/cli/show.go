package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"quicdiff/internal/metrics"
	"quicdiff/internal/report"
	"quicdiff/internal/result"
)

var showCmd = &cobra.Command{
	Use:   "show <result.json>",
	Short: "Print one benchmark result in canonical form",
	Long: `Extract a benchmark result file into the canonical metric record and
print it. Missing fields extract to zero, so partial results still render.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		loader := result.NewLoader(result.LoaderConfig{}, appInstance.Logger)
		raw, err := loader.LoadFile(args[0])
		if err != nil {
			return err
		}
		rec := metrics.Extract(raw)

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(rec)
		}

		report.RenderRecord(os.Stdout, "📊 "+result.Stem(args[0]), rec)
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("json", false, "print the canonical record as JSON")
	rootCmd.AddCommand(showCmd)
}
