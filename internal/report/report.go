package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"quicdiff/internal/compare"
)

// Report is the rendered view of one comparison run, a single pair or a
// whole batch. Renderers only format what is here; all computation happens
// upstream in the compare package.
type Report struct {
	Title          string
	ID             string
	GeneratedAt    time.Time
	BaselineLabel  string
	CandidateLabel string
	Threshold      float64

	Comparisons []compare.PairComparison

	// Batch-only fields.
	Tally            []compare.MetricTally
	SkippedBaseline  []string
	SkippedCandidate []string
}

// New assembles a report with a fresh ID and timestamp. Callers fill in the
// labels and batch fields they have.
func New(title string, comparisons []compare.PairComparison) *Report {
	return &Report{
		Title:       title,
		ID:          uuid.NewString(),
		GeneratedAt: time.Now(),
		Comparisons: comparisons,
	}
}

// Batch reports render per-pair headings and an aggregate section; single
// reports render one flat table set.
func (r *Report) batch() bool {
	return len(r.Comparisons) > 1 || len(r.Tally) > 0
}

// pairTitle names a pair section: "profile / load" when the key follows the
// naming convention, the bare key otherwise.
func pairTitle(p compare.Pair) string {
	if p.Profile != "" && p.Load != "" {
		return p.Profile + " / " + p.Load
	}
	return p.Key
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatChange(pct float64) string {
	return fmt.Sprintf("%+.2f%%", pct)
}
