package report

import (
	"fmt"
	"io"
	"os"

	"quicdiff/pkg/errors"
)

// RenderMarkdown writes the report as a Markdown document.
func RenderMarkdown(w io.Writer, rep *Report) error {
	var err error
	p := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, args...)
	}

	p("# %s\n\n", rep.Title)
	p("**Date:** %s\n", rep.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	p("**Report ID:** %s\n", rep.ID)
	if rep.BaselineLabel != "" || rep.CandidateLabel != "" {
		p("**Baseline:** %s\n", rep.BaselineLabel)
		p("**Candidate:** %s\n", rep.CandidateLabel)
	}
	p("**Threshold:** ±%.1f%%\n", rep.Threshold)

	batch := rep.batch()
	for i := range rep.Comparisons {
		pc := &rep.Comparisons[i]
		section := "##"
		if batch {
			p("\n## %s\n", pairTitle(pc.Pair))
			section = "###"
		}

		p("\n%s Baseline Results\n\n", section)
		p("| Metric | Value |\n")
		p("|--------|-------|\n")
		for _, r := range pc.Results {
			p("| %s | %s |\n", r.MetricName, formatValue(r.BaselineValue))
		}

		p("\n%s Candidate Results\n\n", section)
		p("| Metric | Value |\n")
		p("|--------|-------|\n")
		for _, r := range pc.Results {
			p("| %s | %s |\n", r.MetricName, formatValue(r.CandidateValue))
		}

		p("\n%s Comparison\n\n", section)
		p("| Metric | Baseline | Candidate | Change | Classification |\n")
		p("|--------|----------|-----------|--------|----------------|\n")
		for _, r := range pc.Results {
			p("| %s | %s | %s | %s | %s %s |\n",
				r.MetricName,
				formatValue(r.BaselineValue),
				formatValue(r.CandidateValue),
				formatChange(r.PercentChange),
				statusGlyph(r.Classification), r.Classification)
		}

		p("\n%s Summary\n\n", section)
		p("- Improvements: %d\n", len(pc.Summary.Improvements))
		for _, name := range pc.Summary.Improvements {
			p("  - %s\n", name)
		}
		p("- Degradations: %d\n", len(pc.Summary.Degradations))
		for _, name := range pc.Summary.Degradations {
			p("  - %s\n", name)
		}
		p("- Verdict: **%s**\n", pc.Summary.Verdict)
	}

	if batch {
		p("\n## Aggregate\n\n")
		p("| Metric | Improved | Degraded | Neutral |\n")
		p("|--------|----------|----------|---------|\n")
		for _, t := range rep.Tally {
			p("| %s | %d | %d | %d |\n", t.Name, t.Improvements, t.Degradations, t.Neutral)
		}
		renderMarkdownSkips(p, rep)
	}
	return err
}

func renderMarkdownSkips(p func(string, ...any), rep *Report) {
	if len(rep.SkippedBaseline) == 0 && len(rep.SkippedCandidate) == 0 {
		return
	}
	p("\n## Skipped Pairs\n\n")
	for _, key := range rep.SkippedBaseline {
		p("- `%s`: no candidate result\n", key)
	}
	for _, key := range rep.SkippedCandidate {
		p("- `%s`: no baseline result\n", key)
	}
}

// WriteMarkdown renders the report to a Markdown file at path.
func WriteMarkdown(path string, rep *Report) error {
	f, err := os.Create(path)
	if err != nil {
		return &errors.ReportError{Path: path, Format: "markdown", Err: err}
	}
	if err := RenderMarkdown(f, rep); err != nil {
		f.Close()
		return &errors.ReportError{Path: path, Format: "markdown", Err: err}
	}
	if err := f.Close(); err != nil {
		return &errors.ReportError{Path: path, Format: "markdown", Err: err}
	}
	return nil
}
