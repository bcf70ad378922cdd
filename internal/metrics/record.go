package metrics

// Record is the canonical, flat view of one benchmark run. Every field
// defaults to its zero value when the source document omits it; Phase
// defaults to "N/A". The JSON tags double as the canonical metric keys
// accepted by Value and by comparison tables.
type Record struct {
	ThroughputMbps    float64 `json:"throughput_mbps"`
	BytesSent         int64   `json:"bytes_sent"`
	DurationSeconds   float64 `json:"duration_seconds"`
	RTTMinMs          float64 `json:"rtt_min_ms"`
	RTTP50Ms          float64 `json:"rtt_p50_ms"`
	RTTP95Ms          float64 `json:"rtt_p95_ms"`
	RTTP99Ms          float64 `json:"rtt_p99_ms"`
	RTTAverageMs      float64 `json:"rtt_average_ms"`
	JitterMs          float64 `json:"jitter_ms"`
	PacketLossPct     float64 `json:"packet_loss_pct"`
	Retransmits       int64   `json:"retransmits"`
	Errors            int64   `json:"errors"`
	Success           int64   `json:"success"`
	BufferbloatFactor float64 `json:"bufferbloat_factor"`
	FairnessIndex     float64 `json:"fairness_index"`
	Connections       int64   `json:"connections"`
	Streams           int64   `json:"streams"`

	// Congestion-controller internals, zero unless the producer recorded them.
	Phase            string  `json:"phase"`
	BwFastMbps       float64 `json:"bw_fast_mbps"`
	BwSlowMbps       float64 `json:"bw_slow_mbps"`
	LossRateRoundPct float64 `json:"loss_rate_round_pct"`
	HeadroomUsagePct float64 `json:"headroom_usage_pct"`
	Convergence      float64 `json:"convergence"`
}

// Value resolves a canonical metric key to its numeric field. Phase is a
// string and has no key.
func (r Record) Value(key string) (float64, bool) {
	switch key {
	case "throughput_mbps":
		return r.ThroughputMbps, true
	case "bytes_sent":
		return float64(r.BytesSent), true
	case "duration_seconds":
		return r.DurationSeconds, true
	case "rtt_min_ms":
		return r.RTTMinMs, true
	case "rtt_p50_ms":
		return r.RTTP50Ms, true
	case "rtt_p95_ms":
		return r.RTTP95Ms, true
	case "rtt_p99_ms":
		return r.RTTP99Ms, true
	case "rtt_average_ms":
		return r.RTTAverageMs, true
	case "jitter_ms":
		return r.JitterMs, true
	case "packet_loss_pct":
		return r.PacketLossPct, true
	case "retransmits":
		return float64(r.Retransmits), true
	case "errors":
		return float64(r.Errors), true
	case "success":
		return float64(r.Success), true
	case "bufferbloat_factor":
		return r.BufferbloatFactor, true
	case "fairness_index":
		return r.FairnessIndex, true
	case "connections":
		return float64(r.Connections), true
	case "streams":
		return float64(r.Streams), true
	case "bw_fast_mbps":
		return r.BwFastMbps, true
	case "bw_slow_mbps":
		return r.BwSlowMbps, true
	case "loss_rate_round_pct":
		return r.LossRateRoundPct, true
	case "headroom_usage_pct":
		return r.HeadroomUsagePct, true
	case "convergence":
		return r.Convergence, true
	}
	return 0, false
}

// ValidKey reports whether key names a numeric Record field.
func ValidKey(key string) bool {
	_, ok := Record{}.Value(key)
	return ok
}

// MetricKeys lists every canonical metric key in Record field order.
func MetricKeys() []string {
	return []string{
		"throughput_mbps",
		"bytes_sent",
		"duration_seconds",
		"rtt_min_ms",
		"rtt_p50_ms",
		"rtt_p95_ms",
		"rtt_p99_ms",
		"rtt_average_ms",
		"jitter_ms",
		"packet_loss_pct",
		"retransmits",
		"errors",
		"success",
		"bufferbloat_factor",
		"fairness_index",
		"connections",
		"streams",
		"bw_fast_mbps",
		"bw_slow_mbps",
		"loss_rate_round_pct",
		"headroom_usage_pct",
		"convergence",
	}
}
