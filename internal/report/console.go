package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"quicdiff/internal/compare"
	"quicdiff/internal/metrics"
)

var (
	consoleHeaderStyle = lipgloss.NewStyle().Bold(true)
	consoleDimStyle    = lipgloss.NewStyle().Faint(true)
)

// RenderConsole writes the full human-readable comparison report.
func RenderConsole(w io.Writer, rep *Report) {
	rule := strings.Repeat("═", 64)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, consoleHeaderStyle.Render(" 📊 "+rep.Title))
	fmt.Fprintln(w, rule)
	if rep.BaselineLabel != "" || rep.CandidateLabel != "" {
		fmt.Fprintf(w, "Baseline: %s | Candidate: %s | Threshold: ±%.1f%%\n",
			rep.BaselineLabel, rep.CandidateLabel, rep.Threshold)
	}

	for i := range rep.Comparisons {
		pc := &rep.Comparisons[i]
		fmt.Fprintln(w)
		if rep.batch() {
			fmt.Fprintln(w, consoleHeaderStyle.Render("📡 "+pairTitle(pc.Pair)))
			fmt.Fprintln(w)
		}
		RenderRecord(w, "🔵 Baseline", pc.Pair.Baseline)
		fmt.Fprintln(w)
		RenderRecord(w, "🟢 Candidate", pc.Pair.Candidate)
		fmt.Fprintln(w)
		renderResultTable(w, pc.Results)
		renderSummary(w, pc.Summary)
	}

	if rep.batch() {
		renderTally(w, rep.Tally)
	}
	renderSkips(w, rep)
}

// RenderRecord writes one canonical record block in the long-report style.
// Controller internals only appear when the run recorded them.
func RenderRecord(w io.Writer, title string, rec metrics.Record) {
	fmt.Fprintln(w, consoleHeaderStyle.Render(title))
	row := func(label, value string) {
		fmt.Fprintf(w, "   %-17s %s\n", label+":", value)
	}

	row("Throughput", fmt.Sprintf("%.3f Mbps", rec.ThroughputMbps))
	row("Bytes Sent", fmt.Sprintf("%d", rec.BytesSent))
	row("Duration", fmt.Sprintf("%.0f s", rec.DurationSeconds))
	if rec.Connections > 0 {
		row("Connections", fmt.Sprintf("%d", rec.Connections))
	}
	if rec.Streams > 0 {
		row("Streams", fmt.Sprintf("%d", rec.Streams))
	}
	row("RTT Min", fmt.Sprintf("%.2f ms", rec.RTTMinMs))
	row("RTT P50", fmt.Sprintf("%.2f ms", rec.RTTP50Ms))
	row("RTT P95", fmt.Sprintf("%.2f ms", rec.RTTP95Ms))
	row("RTT P99", fmt.Sprintf("%.2f ms", rec.RTTP99Ms))
	row("Average RTT", fmt.Sprintf("%.2f ms", rec.RTTAverageMs))
	row("Jitter", fmt.Sprintf("%.2f ms", rec.JitterMs))
	row("Packet Loss", fmt.Sprintf("%.3f%%", rec.PacketLossPct))
	row("Retransmits", fmt.Sprintf("%d", rec.Retransmits))
	row("Errors", fmt.Sprintf("%d", rec.Errors))
	row("Success", fmt.Sprintf("%d", rec.Success))
	row("Bufferbloat", fmt.Sprintf("%.3f", rec.BufferbloatFactor))
	row("Fairness Index", fmt.Sprintf("%.3f", rec.FairnessIndex))

	if rec.Phase != "N/A" && rec.Phase != "" {
		row("Phase", rec.Phase)
		row("BW Fast", fmt.Sprintf("%.3f Mbps", rec.BwFastMbps))
		row("BW Slow", fmt.Sprintf("%.3f Mbps", rec.BwSlowMbps))
		row("Convergence", fmt.Sprintf("%.3f", rec.Convergence))
		row("Loss Rate Round", fmt.Sprintf("%.3f%%", rec.LossRateRoundPct))
		row("Headroom Usage", fmt.Sprintf("%.1f%%", rec.HeadroomUsagePct))
	}
}

func renderResultTable(w io.Writer, results []compare.Result) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "METRIC\tBASELINE\tCANDIDATE\tCHANGE\tSTATUS")
	fmt.Fprintln(tw, "------\t--------\t---------\t------\t------")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			r.MetricName,
			formatValue(r.BaselineValue),
			formatValue(r.CandidateValue),
			formatChange(r.PercentChange),
			statusGlyph(r.Classification))
	}
	tw.Flush()
}

func statusGlyph(c compare.Classification) string {
	switch c {
	case compare.Improvement:
		return "✅"
	case compare.Degradation:
		return "⚠️"
	}
	return "·"
}

func renderSummary(w io.Writer, s compare.Summary) {
	fmt.Fprintln(w)
	if len(s.Improvements) > 0 {
		fmt.Fprintf(w, "🎉 Improvements (%d):\n", len(s.Improvements))
		for _, name := range s.Improvements {
			fmt.Fprintf(w, "   ✅ %s\n", name)
		}
	}
	if len(s.Degradations) > 0 {
		fmt.Fprintf(w, "⚠️  Degradations (%d):\n", len(s.Degradations))
		for _, name := range s.Degradations {
			fmt.Fprintf(w, "   ⚠️  %s\n", name)
		}
	}
	if len(s.Improvements) == 0 && len(s.Degradations) == 0 {
		fmt.Fprintln(w, consoleDimStyle.Render("No significant changes (inside the neutral band)."))
	}
	fmt.Fprintf(w, "Verdict: %s\n", s.Verdict)
}

func renderTally(w io.Writer, tally []compare.MetricTally) {
	if len(tally) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, consoleHeaderStyle.Render("📈 Aggregate across pairs"))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "METRIC\tIMPROVED\tDEGRADED\tNEUTRAL")
	fmt.Fprintln(tw, "------\t--------\t--------\t-------")
	for _, t := range tally {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", t.Name, t.Improvements, t.Degradations, t.Neutral)
	}
	tw.Flush()
}

func renderSkips(w io.Writer, rep *Report) {
	if len(rep.SkippedBaseline) == 0 && len(rep.SkippedCandidate) == 0 {
		return
	}
	fmt.Fprintln(w)
	for _, key := range rep.SkippedBaseline {
		fmt.Fprintln(w, consoleDimStyle.Render(fmt.Sprintf("⏭  %s skipped: no candidate result", key)))
	}
	for _, key := range rep.SkippedCandidate {
		fmt.Fprintln(w, consoleDimStyle.Render(fmt.Sprintf("⏭  %s skipped: no baseline result", key)))
	}
}
