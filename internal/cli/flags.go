package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"quicdiff/internal/compare"
	"quicdiff/internal/report"
)

// addReportFlags registers the flags shared by compare and matrix.
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().Float64P("threshold", "t", 0, "classification threshold in percent (default from metric table)")
	cmd.Flags().StringP("output", "o", "", "write a Markdown report to this path")
	cmd.Flags().String("json", "", "write a JSON report to this path")
	cmd.Flags().String("prom", "", "write a Prometheus textfile export to this path")
	cmd.Flags().String("title", "", "report title")
}

// tableFromFlags applies a per-command threshold override to the active
// metric table.
func tableFromFlags(cmd *cobra.Command) (compare.Table, error) {
	table := appInstance.Table
	if cmd.Flags().Changed("threshold") {
		threshold, _ := cmd.Flags().GetFloat64("threshold")
		if threshold <= 0 {
			return compare.Table{}, fmt.Errorf("threshold must be positive, got %v", threshold)
		}
		table = table.WithThreshold(threshold)
	}
	return table, nil
}

func reportTitle(cmd *cobra.Command, fallback string) string {
	title, _ := cmd.Flags().GetString("title")
	if title != "" {
		return title
	}
	return fallback
}

// writeArtifacts writes whichever report files the flags asked for.
func writeArtifacts(cmd *cobra.Command, rep *report.Report) error {
	output, _ := cmd.Flags().GetString("output")
	jsonPath, _ := cmd.Flags().GetString("json")
	promPath, _ := cmd.Flags().GetString("prom")

	if output != "" {
		if err := report.WriteMarkdown(output, rep); err != nil {
			return err
		}
		fmt.Printf("\n📝 Markdown report written to %s\n", output)
	}
	if jsonPath != "" {
		if err := report.WriteJSON(jsonPath, rep); err != nil {
			return err
		}
		fmt.Printf("📄 JSON report written to %s\n", jsonPath)
	}
	if promPath != "" {
		if err := report.WritePromFile(promPath, rep); err != nil {
			return err
		}
		fmt.Printf("📈 Prometheus textfile written to %s\n", promPath)
	}
	return nil
}
