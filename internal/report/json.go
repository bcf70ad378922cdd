package report

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"quicdiff/internal/compare"
	"quicdiff/pkg/errors"
)

// Document is the machine-readable envelope for a report.
type Document struct {
	ReportID         string                   `json:"report_id"`
	Title            string                   `json:"title"`
	GeneratedAt      time.Time                `json:"generated_at"`
	Baseline         string                   `json:"baseline,omitempty"`
	Candidate        string                   `json:"candidate,omitempty"`
	ThresholdPct     float64                  `json:"threshold_pct"`
	Pairs            []compare.PairComparison `json:"pairs"`
	Tally            []compare.MetricTally    `json:"tally,omitempty"`
	SkippedBaseline  []string                 `json:"skipped_baseline,omitempty"`
	SkippedCandidate []string                 `json:"skipped_candidate,omitempty"`
}

// NewDocument converts a report into its serializable form.
func NewDocument(rep *Report) Document {
	return Document{
		ReportID:         rep.ID,
		Title:            rep.Title,
		GeneratedAt:      rep.GeneratedAt,
		Baseline:         rep.BaselineLabel,
		Candidate:        rep.CandidateLabel,
		ThresholdPct:     rep.Threshold,
		Pairs:            rep.Comparisons,
		Tally:            rep.Tally,
		SkippedBaseline:  rep.SkippedBaseline,
		SkippedCandidate: rep.SkippedCandidate,
	}
}

// RenderJSON writes the report as indented JSON.
func RenderJSON(w io.Writer, rep *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(rep))
}

// WriteJSON renders the report to a JSON file at path.
func WriteJSON(path string, rep *Report) error {
	f, err := os.Create(path)
	if err != nil {
		return &errors.ReportError{Path: path, Format: "json", Err: err}
	}
	if err := RenderJSON(f, rep); err != nil {
		f.Close()
		return &errors.ReportError{Path: path, Format: "json", Err: err}
	}
	if err := f.Close(); err != nil {
		return &errors.ReportError{Path: path, Format: "json", Err: err}
	}
	return nil
}
