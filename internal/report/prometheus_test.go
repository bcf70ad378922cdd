package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quicdiff/pkg/errors"
)

func TestWritePromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.prom")
	require.NoError(t, WritePromFile(path, singleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "# TYPE quicdiff_metric_value gauge")
	assert.Contains(t, out, `quicdiff_pairs_total 1`)
	assert.Contains(t, out, `quicdiff_threshold_percent 5`)

	assert.Contains(t, out,
		`quicdiff_metric_value{metric="throughput_mbps",pair="good_light",side="baseline"} 50`)
	assert.Contains(t, out,
		`quicdiff_metric_value{metric="throughput_mbps",pair="good_light",side="candidate"} 60`)
	assert.Contains(t, out,
		`quicdiff_metric_percent_change{metric="throughput_mbps",pair="good_light"} 20`)
	assert.Contains(t, out,
		`quicdiff_metric_classification{metric="throughput_mbps",pair="good_light"} 1`)
	assert.Contains(t, out,
		`quicdiff_metric_classification{metric="packet_loss_pct",pair="good_light"} -1`)
	assert.Contains(t, out,
		`quicdiff_metric_classification{metric="rtt_min_ms",pair="good_light"} 0`)
}

func TestWritePromFileBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.prom")
	require.NoError(t, WritePromFile(path, batchReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, `quicdiff_pairs_total 2`)
	assert.Contains(t, out,
		`quicdiff_metric_value{metric="throughput_mbps",pair="satellite_medium",side="baseline"} 50`)
}

func TestWritePromFileBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.prom")
	err := WritePromFile(path, singleReport())

	var repErr *errors.ReportError
	require.ErrorAs(t, err, &repErr)
	assert.Equal(t, "prometheus", repErr.Format)
}
