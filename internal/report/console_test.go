package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"quicdiff/internal/compare"
	"quicdiff/internal/metrics"
)

// sampleRecords returns a baseline/candidate pair with a throughput and RTT
// P95 improvement, a packet loss degradation, and everything else flat.
func sampleRecords() (baseline, candidate metrics.Record) {
	baseline = metrics.Record{
		ThroughputMbps:    50,
		BytesSent:         375_000_000,
		DurationSeconds:   60,
		RTTMinMs:          10,
		RTTP50Ms:          20,
		RTTP95Ms:          40,
		RTTP99Ms:          60,
		RTTAverageMs:      25,
		JitterMs:          4,
		PacketLossPct:     1,
		Retransmits:       100,
		Success:           1000,
		BufferbloatFactor: 2,
		FairnessIndex:     0.9,
		Phase:             "N/A",
	}
	candidate = baseline
	candidate.ThroughputMbps = 60
	candidate.BytesSent = 450_000_000
	candidate.RTTP95Ms = 30
	candidate.PacketLossPct = 2
	return baseline, candidate
}

func sampleComparison(key string) compare.PairComparison {
	baseline, candidate := sampleRecords()
	profile, load := compare.SplitKey(key)
	cmp := compare.NewComparator(compare.DefaultTable())
	return cmp.ComparePair(compare.Pair{
		Key:       key,
		Profile:   profile,
		Load:      load,
		Baseline:  baseline,
		Candidate: candidate,
	})
}

func singleReport() *Report {
	rep := New("BBRv2 vs BBRv3", []compare.PairComparison{sampleComparison("good_light")})
	rep.BaselineLabel = "baseline_bbrv2_good_light.json"
	rep.CandidateLabel = "baseline_bbrv3_good_light.json"
	rep.Threshold = 5
	return rep
}

func batchReport() *Report {
	comparisons := []compare.PairComparison{
		sampleComparison("good_light"),
		sampleComparison("satellite_medium"),
	}
	rep := New("BBRv2 vs BBRv3 matrix", comparisons)
	rep.BaselineLabel = "results/bbrv2"
	rep.CandidateLabel = "results/bbrv3"
	rep.Threshold = 5
	cmp := compare.NewComparator(compare.DefaultTable())
	rep.Tally = cmp.Tally(comparisons)
	rep.SkippedBaseline = []string{"mobile_light"}
	return rep
}

func TestRenderConsoleSingle(t *testing.T) {
	var buf bytes.Buffer
	RenderConsole(&buf, singleReport())
	out := buf.String()

	assert.Contains(t, out, "📊 BBRv2 vs BBRv3")
	assert.Contains(t, out, "Threshold: ±5.0%")
	assert.Contains(t, out, "🔵 Baseline")
	assert.Contains(t, out, "🟢 Candidate")
	assert.Contains(t, out, "50.000 Mbps")
	assert.Contains(t, out, "60.000 Mbps")

	assert.Contains(t, out, "METRIC")
	assert.Contains(t, out, "+20.00%")
	assert.Contains(t, out, "+100.00%")
	assert.Contains(t, out, "✅")
	assert.Contains(t, out, "⚠️")

	assert.Contains(t, out, "🎉 Improvements (2):")
	assert.Contains(t, out, "⚠️  Degradations (1):")
	assert.Contains(t, out, "Verdict: mixed")

	assert.NotContains(t, out, "📡")
	assert.NotContains(t, out, "Aggregate")
}

func TestRenderConsoleSkipsControllerBlockWithoutPhase(t *testing.T) {
	var buf bytes.Buffer
	RenderConsole(&buf, singleReport())
	assert.NotContains(t, buf.String(), "Headroom Usage")
}

func TestRenderConsoleBatch(t *testing.T) {
	var buf bytes.Buffer
	RenderConsole(&buf, batchReport())
	out := buf.String()

	assert.Contains(t, out, "📡 good / light")
	assert.Contains(t, out, "📡 satellite / medium")
	assert.Equal(t, 2, strings.Count(out, "Verdict: mixed"))

	assert.Contains(t, out, "📈 Aggregate across pairs")
	assert.Contains(t, out, "IMPROVED")
	assert.Contains(t, out, "⏭  mobile_light skipped: no candidate result")
}

func TestRenderRecordControllerBlock(t *testing.T) {
	rec := metrics.Record{
		ThroughputMbps:   92.4,
		Phase:            "PROBE_BW",
		BwFastMbps:       95.1,
		BwSlowMbps:       88.2,
		Convergence:      0.073,
		LossRateRoundPct: 0.42,
		HeadroomUsagePct: 87.5,
	}

	var buf bytes.Buffer
	RenderRecord(&buf, "🔵 Baseline", rec)
	out := buf.String()

	assert.Contains(t, out, "PROBE_BW")
	assert.Contains(t, out, "95.100 Mbps")
	assert.Contains(t, out, "Convergence")
	assert.Contains(t, out, "87.5%")
}

func TestStatusGlyph(t *testing.T) {
	assert.Equal(t, "✅", statusGlyph(compare.Improvement))
	assert.Equal(t, "⚠️", statusGlyph(compare.Degradation))
	assert.Equal(t, "·", statusGlyph(compare.Neutral))
}
