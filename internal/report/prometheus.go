package report

import (
	"github.com/prometheus/client_golang/prometheus"

	"quicdiff/internal/compare"
	"quicdiff/pkg/errors"
)

const promNamespace = "quicdiff"

// WritePromFile exports the report in Prometheus text exposition format,
// suitable for the node_exporter textfile collector.
func WritePromFile(path string, rep *Report) error {
	reg := prometheus.NewRegistry()

	value := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: promNamespace,
		Name:      "metric_value",
		Help:      "Raw metric value per pair and side.",
	}, []string{"pair", "side", "metric"})
	change := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: promNamespace,
		Name:      "metric_percent_change",
		Help:      "Percent change from baseline to candidate.",
	}, []string{"pair", "metric"})
	class := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: promNamespace,
		Name:      "metric_classification",
		Help:      "Per-metric classification: 1 improvement, 0 neutral, -1 degradation.",
	}, []string{"pair", "metric"})
	pairs := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: promNamespace,
		Name:      "pairs_total",
		Help:      "Number of compared pairs in the report.",
	})
	threshold := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: promNamespace,
		Name:      "threshold_percent",
		Help:      "Half-width of the neutral band in percent.",
	})
	reg.MustRegister(value, change, class, pairs, threshold)

	pairs.Set(float64(len(rep.Comparisons)))
	threshold.Set(rep.Threshold)
	for i := range rep.Comparisons {
		pc := &rep.Comparisons[i]
		for _, r := range pc.Results {
			value.WithLabelValues(pc.Pair.Key, "baseline", r.Key).Set(r.BaselineValue)
			value.WithLabelValues(pc.Pair.Key, "candidate", r.Key).Set(r.CandidateValue)
			change.WithLabelValues(pc.Pair.Key, r.Key).Set(r.PercentChange)
			class.WithLabelValues(pc.Pair.Key, r.Key).Set(classificationScore(r.Classification))
		}
	}

	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return &errors.ReportError{Path: path, Format: "prometheus", Err: err}
	}
	return nil
}

func classificationScore(c compare.Classification) float64 {
	switch c {
	case compare.Improvement:
		return 1
	case compare.Degradation:
		return -1
	}
	return 0
}
