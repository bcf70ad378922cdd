package compare

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"quicdiff/internal/metrics"
	"quicdiff/pkg/errors"
)

// DefaultThreshold is the classification band in percentage points. Changes
// within ±DefaultThreshold are neutral.
const DefaultThreshold = 5.0

// Descriptor names one metric to compare: a display name, the canonical
// Record key, and its polarity.
type Descriptor struct {
	Name           string `yaml:"name" json:"name"`
	Key            string `yaml:"key" json:"key"`
	HigherIsBetter bool   `yaml:"higher_is_better" json:"higher_is_better"`
}

// Table is the ordered metric set a Comparator works through, plus the
// classification threshold. Tables are loaded once and treated as read-only.
type Table struct {
	Threshold float64      `yaml:"threshold" json:"threshold"`
	Metrics   []Descriptor `yaml:"metrics" json:"metrics"`
}

// DefaultTable returns the built-in metric set used when no table file is
// given. The order is the report layout order.
func DefaultTable() Table {
	return Table{
		Threshold: DefaultThreshold,
		Metrics: []Descriptor{
			{Name: "Throughput (Mbps)", Key: "throughput_mbps", HigherIsBetter: true},
			{Name: "RTT Min (ms)", Key: "rtt_min_ms"},
			{Name: "RTT P50 (ms)", Key: "rtt_p50_ms"},
			{Name: "RTT P95 (ms)", Key: "rtt_p95_ms"},
			{Name: "RTT P99 (ms)", Key: "rtt_p99_ms"},
			{Name: "Jitter (ms)", Key: "jitter_ms"},
			{Name: "Average RTT (ms)", Key: "rtt_average_ms"},
			{Name: "Bufferbloat Factor", Key: "bufferbloat_factor"},
			{Name: "Fairness Index", Key: "fairness_index", HigherIsBetter: true},
			{Name: "Packet Loss (%)", Key: "packet_loss_pct"},
			{Name: "Retransmits", Key: "retransmits"},
		},
	}
}

// LoadTable reads a metric table from a YAML file. A zero or omitted
// threshold falls back to DefaultThreshold; an invalid table is rejected
// with a TableError.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, &errors.TableError{Path: path, Err: err}
	}

	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Table{}, &errors.TableError{Path: path, Err: err}
	}

	if err := t.normalize(); err != nil {
		return Table{}, &errors.TableError{Path: path, Err: err}
	}
	return t, nil
}

// WithThreshold returns a copy of the table with the threshold replaced.
// Non-positive values leave the table unchanged.
func (t Table) WithThreshold(threshold float64) Table {
	if threshold <= 0 {
		return t
	}
	out := t
	out.Threshold = threshold
	return out
}

// Keys returns the canonical keys in table order.
func (t Table) Keys() []string {
	keys := make([]string, len(t.Metrics))
	for i, d := range t.Metrics {
		keys[i] = d.Key
	}
	return keys
}

func (t *Table) normalize() error {
	if len(t.Metrics) == 0 {
		return errors.ErrTableEmpty
	}
	if t.Threshold < 0 {
		return fmt.Errorf("%w: %v", errors.ErrNegativeThreshold, t.Threshold)
	}
	if t.Threshold == 0 {
		t.Threshold = DefaultThreshold
	}

	seen := make(map[string]bool, len(t.Metrics))
	for i := range t.Metrics {
		d := &t.Metrics[i]
		if !metrics.ValidKey(d.Key) {
			return fmt.Errorf("%w: %q (valid keys: %v)", errors.ErrUnknownMetricKey, d.Key, metrics.MetricKeys())
		}
		if seen[d.Key] {
			return fmt.Errorf("%w: %q", errors.ErrDuplicateMetricKey, d.Key)
		}
		seen[d.Key] = true
		if d.Name == "" {
			d.Name = d.Key
		}
	}
	return nil
}
