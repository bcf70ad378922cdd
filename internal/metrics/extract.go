package metrics

import "math"

// Extract normalizes one raw result document into a Record.
//
// Reported values win over derived ones: a positive throughput_mbps or
// bufferbloat_factor from the producer is used as-is, and the derived
// formula only fills the gap. Latency values are already milliseconds and
// are copied unscaled. Missing or malformed fields extract as zero, so an
// empty document yields a zero Record with Phase "N/A".
func Extract(raw RawResult) Record {
	met := raw.Object("metrics")
	lat := met.Object("latency")
	bbr := raw.Object("BBRv3Metrics")
	cfg := raw.Object("test_config")

	rec := Record{
		BytesSent:       met.Int("bytes_sent"),
		DurationSeconds: ParseDuration(cfg["duration"]),
		RTTMinMs:        lat.Float("min"),
		RTTP50Ms:        lat.Float("p50"),
		RTTP95Ms:        lat.Float("p95"),
		RTTP99Ms:        lat.Float("p99"),
		RTTAverageMs:    lat.Float("average"),
		JitterMs:        lat.Float("jitter"),
		PacketLossPct:   met.Float("packet_loss"),
		Retransmits:     met.Int("retransmits"),
		Errors:          met.Int("errors"),
		Success:         met.Int("success"),
		FairnessIndex:   met.Float("fairness_index"),
		Connections:     cfg.Int("connections"),
		Streams:         cfg.Int("streams"),
		Phase:           "N/A",
	}

	if reported := met.Float("throughput_mbps"); reported > 0 {
		rec.ThroughputMbps = reported
	} else if rec.DurationSeconds > 0 && rec.BytesSent > 0 {
		rec.ThroughputMbps = ThroughputMbps(rec.BytesSent, rec.DurationSeconds)
	}

	if reported := met.Float("bufferbloat_factor"); reported > 0 {
		rec.BufferbloatFactor = reported
	} else if rec.RTTMinMs > 0 {
		rec.BufferbloatFactor = rec.RTTAverageMs/rec.RTTMinMs - 1
	}

	if phase := bbr.String("phase"); phase != "" {
		rec.Phase = phase
	}
	rec.BwFastMbps = bbr.Float("bw_fast") / 1e6
	rec.BwSlowMbps = bbr.Float("bw_slow") / 1e6
	rec.LossRateRoundPct = bbr.Float("loss_rate_round")
	rec.HeadroomUsagePct = bbr.Float("headroom_usage") * 100

	if maxBw := math.Max(rec.BwFastMbps, rec.BwSlowMbps); maxBw > 0 {
		rec.Convergence = math.Abs(rec.BwFastMbps-rec.BwSlowMbps) / maxBw
	}

	return rec
}

// ThroughputMbps derives throughput from payload volume and wall time.
// Non-positive durations yield 0.
func ThroughputMbps(bytesSent int64, seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}
	return float64(bytesSent) * 8 / (seconds * 1e6)
}
