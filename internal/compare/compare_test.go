package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quicdiff/internal/metrics"
)

func twoMetricTable() Table {
	return Table{
		Threshold: 5,
		Metrics: []Descriptor{
			{Name: "Throughput (Mbps)", Key: "throughput_mbps", HigherIsBetter: true},
			{Name: "RTT P95 (ms)", Key: "rtt_p95_ms"},
		},
	}
}

func TestCompareIdenticalRecordsIsNeutral(t *testing.T) {
	rec := metrics.Record{
		ThroughputMbps: 50,
		RTTP95Ms:       88.4,
		JitterMs:       3.5,
		Retransmits:    42,
	}

	results := NewComparator(DefaultTable()).Compare(rec, rec)

	require.Len(t, results, len(DefaultTable().Metrics))
	for _, r := range results {
		assert.Zero(t, r.PercentChange, r.MetricName)
		assert.Equal(t, Neutral, r.Classification, r.MetricName)
	}
}

func TestCompareResultsKeepTableOrder(t *testing.T) {
	table := DefaultTable()
	results := NewComparator(table).Compare(metrics.Record{}, metrics.Record{})

	require.Len(t, results, len(table.Metrics))
	for i, d := range table.Metrics {
		assert.Equal(t, d.Name, results[i].MetricName)
		assert.Equal(t, d.Key, results[i].Key)
	}
}

func TestCompareZeroBaseline(t *testing.T) {
	baseline := metrics.Record{}
	candidate := metrics.Record{ThroughputMbps: 60}

	results := NewComparator(twoMetricTable()).Compare(baseline, candidate)

	assert.Zero(t, results[0].PercentChange)
	assert.Equal(t, Neutral, results[0].Classification)
	assert.Equal(t, 60.0, results[0].CandidateValue)
}

func TestClassificationThreshold(t *testing.T) {
	tests := []struct {
		name           string
		baseline       float64
		candidate      float64
		higherIsBetter bool
		want           Classification
	}{
		{"higher better, +6%", 100, 106, true, Improvement},
		{"higher better, exactly +5% stays neutral", 100, 105, true, Neutral},
		{"higher better, +5.01% improves", 10000, 10501, true, Improvement},
		{"higher better, exactly -5% stays neutral", 100, 95, true, Neutral},
		{"higher better, -6%", 100, 94, true, Degradation},
		{"lower better, -6%", 100, 94, false, Improvement},
		{"lower better, exactly -5% stays neutral", 100, 95, false, Neutral},
		{"lower better, +6%", 100, 106, false, Degradation},
		{"lower better, exactly +5% stays neutral", 100, 105, false, Neutral},
		{"no change", 100, 100, true, Neutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := Table{
				Threshold: 5,
				Metrics:   []Descriptor{{Name: "m", Key: "throughput_mbps", HigherIsBetter: tt.higherIsBetter}},
			}
			results := NewComparator(table).Compare(
				metrics.Record{ThroughputMbps: tt.baseline},
				metrics.Record{ThroughputMbps: tt.candidate},
			)
			require.Len(t, results, 1)
			assert.Equal(t, tt.want, results[0].Classification)
		})
	}
}

// 375 MB over 60s against 450 MB over the same window is 50 vs 60 Mbps,
// a +20% throughput improvement.
func TestCompareExtractedRecords(t *testing.T) {
	baseline := metrics.Extract(metrics.RawResult{
		"test_config": map[string]any{"duration": "60s"},
		"metrics":     map[string]any{"bytes_sent": float64(375_000_000)},
	})
	candidate := metrics.Extract(metrics.RawResult{
		"test_config": map[string]any{"duration": "60s"},
		"metrics":     map[string]any{"bytes_sent": float64(450_000_000)},
	})

	require.Equal(t, 50.0, baseline.ThroughputMbps)
	require.Equal(t, 60.0, candidate.ThroughputMbps)

	results := NewComparator(twoMetricTable()).Compare(baseline, candidate)

	assert.InDelta(t, 20.0, results[0].PercentChange, 1e-9)
	assert.Equal(t, Improvement, results[0].Classification)
}

func TestPercentChange(t *testing.T) {
	assert.Zero(t, PercentChange(0, 100))
	assert.Zero(t, PercentChange(0, 0))
	assert.InDelta(t, 20.0, PercentChange(50, 60), 1e-9)
	assert.InDelta(t, -50.0, PercentChange(100, 50), 1e-9)
}

func TestCustomThresholdWidensNeutralBand(t *testing.T) {
	table := twoMetricTable().WithThreshold(25)
	results := NewComparator(table).Compare(
		metrics.Record{ThroughputMbps: 50},
		metrics.Record{ThroughputMbps: 60},
	)
	assert.Equal(t, Neutral, results[0].Classification, "+20% is inside a ±25% band")
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		results []Result
		want    Summary
	}{
		{
			"mixed",
			[]Result{
				{MetricName: "Throughput (Mbps)", Classification: Improvement},
				{MetricName: "RTT P95 (ms)", Classification: Degradation},
				{MetricName: "Jitter (ms)", Classification: Neutral},
			},
			Summary{
				Improvements: []string{"Throughput (Mbps)"},
				Degradations: []string{"RTT P95 (ms)"},
				Verdict:      VerdictMixed,
			},
		},
		{
			"improved",
			[]Result{{MetricName: "a", Classification: Improvement}},
			Summary{Improvements: []string{"a"}, Verdict: VerdictImproved},
		},
		{
			"regressed",
			[]Result{{MetricName: "a", Classification: Degradation}},
			Summary{Degradations: []string{"a"}, Verdict: VerdictRegressed},
		},
		{
			"unchanged",
			[]Result{{MetricName: "a", Classification: Neutral}},
			Summary{Verdict: VerdictUnchanged},
		},
		{
			"empty",
			nil,
			Summary{Verdict: VerdictUnchanged},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.results))
		})
	}
}

func TestComparePairCarriesPairAndSummary(t *testing.T) {
	p := Pair{
		Key:       "good_light",
		Profile:   "good",
		Load:      "light",
		Baseline:  metrics.Record{ThroughputMbps: 50},
		Candidate: metrics.Record{ThroughputMbps: 60},
	}

	pc := NewComparator(twoMetricTable()).ComparePair(p)

	assert.Equal(t, p, pc.Pair)
	assert.Equal(t, VerdictImproved, pc.Summary.Verdict)
	assert.Equal(t, []string{"Throughput (Mbps)"}, pc.Summary.Improvements)
}

func TestCompareSetPreservesPairOrder(t *testing.T) {
	set := &PairSet{Pairs: []Pair{
		{Key: "good_light"},
		{Key: "mobile_light"},
		{Key: "satellite_medium"},
	}}

	comparisons := NewComparator(twoMetricTable()).CompareSet(set)

	require.Len(t, comparisons, 3)
	for i, p := range set.Pairs {
		assert.Equal(t, p.Key, comparisons[i].Pair.Key)
	}
}

func TestTally(t *testing.T) {
	cmp := NewComparator(twoMetricTable())
	comparisons := cmp.CompareSet(&PairSet{Pairs: []Pair{
		{
			Key:       "good_light",
			Baseline:  metrics.Record{ThroughputMbps: 50, RTTP95Ms: 100},
			Candidate: metrics.Record{ThroughputMbps: 60, RTTP95Ms: 100},
		},
		{
			Key:       "mobile_light",
			Baseline:  metrics.Record{ThroughputMbps: 50, RTTP95Ms: 100},
			Candidate: metrics.Record{ThroughputMbps: 40, RTTP95Ms: 90},
		},
	}})

	tallies := cmp.Tally(comparisons)

	require.Len(t, tallies, 2)
	assert.Equal(t, MetricTally{
		Name: "Throughput (Mbps)", Key: "throughput_mbps",
		Improvements: 1, Degradations: 1,
	}, tallies[0])
	assert.Equal(t, MetricTally{
		Name: "RTT P95 (ms)", Key: "rtt_p95_ms",
		Improvements: 1, Neutral: 1,
	}, tallies[1])
}
