package compare

import "quicdiff/internal/metrics"

// Classification is the verdict for one metric delta.
type Classification string

const (
	Improvement Classification = "improvement"
	Degradation Classification = "degradation"
	Neutral     Classification = "neutral"
)

// Result is the comparison outcome for one metric descriptor.
type Result struct {
	MetricName     string         `json:"metric"`
	Key            string         `json:"key"`
	BaselineValue  float64        `json:"baseline"`
	CandidateValue float64        `json:"candidate"`
	PercentChange  float64        `json:"percent_change"`
	Classification Classification `json:"classification"`
}

// Comparator classifies per-metric deltas between two records against a
// metric table. It is stateless after construction and safe for concurrent
// use.
type Comparator struct {
	table Table
}

// NewComparator builds a Comparator from a validated table. A non-positive
// threshold falls back to DefaultThreshold.
func NewComparator(table Table) *Comparator {
	if table.Threshold <= 0 {
		table.Threshold = DefaultThreshold
	}
	return &Comparator{table: table}
}

// Table returns the table the Comparator was built from.
func (c *Comparator) Table() Table { return c.table }

// Compare walks the table in order and produces one Result per descriptor.
// Result order matches table order, so report layouts stay stable.
func (c *Comparator) Compare(baseline, candidate metrics.Record) []Result {
	results := make([]Result, 0, len(c.table.Metrics))
	for _, d := range c.table.Metrics {
		b, _ := baseline.Value(d.Key)
		v, _ := candidate.Value(d.Key)
		pct := PercentChange(b, v)
		results = append(results, Result{
			MetricName:     d.Name,
			Key:            d.Key,
			BaselineValue:  b,
			CandidateValue: v,
			PercentChange:  pct,
			Classification: classify(pct, d.HigherIsBetter, c.table.Threshold),
		})
	}
	return results
}

// ComparePair runs the full comparison for one pair.
func (c *Comparator) ComparePair(p Pair) PairComparison {
	results := c.Compare(p.Baseline, p.Candidate)
	return PairComparison{Pair: p, Results: results, Summary: Summarize(results)}
}

// CompareSet compares every pair in the set, preserving pair order.
func (c *Comparator) CompareSet(ps *PairSet) []PairComparison {
	comparisons := make([]PairComparison, 0, len(ps.Pairs))
	for _, p := range ps.Pairs {
		comparisons = append(comparisons, c.ComparePair(p))
	}
	return comparisons
}

// PercentChange returns the relative change from baseline to candidate in
// percent. A zero baseline yields 0, never a division error.
func PercentChange(baseline, candidate float64) float64 {
	if baseline == 0 {
		return 0
	}
	return (candidate - baseline) / baseline * 100
}

// classify applies the polarity-aware threshold. The band is strict: a
// change of exactly ±threshold stays neutral.
func classify(pct float64, higherIsBetter bool, threshold float64) Classification {
	if !higherIsBetter {
		pct = -pct
	}
	switch {
	case pct > threshold:
		return Improvement
	case pct < -threshold:
		return Degradation
	}
	return Neutral
}

// PairComparison bundles one pair with its per-metric results and summary.
type PairComparison struct {
	Pair    Pair     `json:"pair"`
	Results []Result `json:"results"`
	Summary Summary  `json:"summary"`
}

// Verdict is the overall outcome of one comparison.
type Verdict string

const (
	VerdictImproved  Verdict = "improved"
	VerdictRegressed Verdict = "regressed"
	VerdictMixed     Verdict = "mixed"
	VerdictUnchanged Verdict = "unchanged"
)

// Summary groups comparison results into improvement and degradation name
// lists and an overall verdict.
type Summary struct {
	Improvements []string `json:"improvements,omitempty"`
	Degradations []string `json:"degradations,omitempty"`
	Verdict      Verdict  `json:"verdict"`
}

// Summarize collects improved and degraded metric names in result order and
// derives the verdict.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Classification {
		case Improvement:
			s.Improvements = append(s.Improvements, r.MetricName)
		case Degradation:
			s.Degradations = append(s.Degradations, r.MetricName)
		}
	}
	s.Verdict = verdictOf(len(s.Improvements), len(s.Degradations))
	return s
}

func verdictOf(improvements, degradations int) Verdict {
	switch {
	case improvements > 0 && degradations > 0:
		return VerdictMixed
	case improvements > 0:
		return VerdictImproved
	case degradations > 0:
		return VerdictRegressed
	}
	return VerdictUnchanged
}

// MetricTally counts pair-level classifications of one metric across a
// batch comparison.
type MetricTally struct {
	Name         string `json:"name"`
	Key          string `json:"key"`
	Improvements int    `json:"improvements"`
	Degradations int    `json:"degradations"`
	Neutral      int    `json:"neutral"`
}

// Tally aggregates classifications per metric across pair comparisons, in
// table order.
func (c *Comparator) Tally(comparisons []PairComparison) []MetricTally {
	tallies := make([]MetricTally, len(c.table.Metrics))
	index := make(map[string]*MetricTally, len(tallies))
	for i, d := range c.table.Metrics {
		tallies[i] = MetricTally{Name: d.Name, Key: d.Key}
		index[d.Key] = &tallies[i]
	}

	for _, pc := range comparisons {
		for _, r := range pc.Results {
			t, ok := index[r.Key]
			if !ok {
				continue
			}
			switch r.Classification {
			case Improvement:
				t.Improvements++
			case Degradation:
				t.Degradations++
			default:
				t.Neutral++
			}
		}
	}
	return tallies
}
