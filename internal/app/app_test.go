package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quicdiff/internal/compare"
)

func TestNewDefaults(t *testing.T) {
	a, err := New(Options{})
	require.NoError(t, err)

	assert.NotNil(t, a.Logger)
	assert.Equal(t, compare.DefaultTable(), a.Table)
	assert.NoError(t, a.Close())
}

func TestNewVerbose(t *testing.T) {
	a, err := New(Options{Verbose: true})
	require.NoError(t, err)

	assert.True(t, a.Logger.Core().Enabled(0))
	assert.NoError(t, a.Close())
}

func TestNewWithMetricsTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.yaml")
	table := `
threshold: 10
metrics:
  - name: Throughput (Mbps)
    key: throughput_mbps
    higher_is_better: true
`
	require.NoError(t, os.WriteFile(path, []byte(table), 0o644))

	a, err := New(Options{MetricsPath: path})
	require.NoError(t, err)

	assert.Equal(t, 10.0, a.Table.Threshold)
	require.Len(t, a.Table.Metrics, 1)
	assert.Equal(t, "throughput_mbps", a.Table.Metrics[0].Key)
	assert.NoError(t, a.Close())
}

func TestNewWithBadMetricsTable(t *testing.T) {
	_, err := New(Options{MetricsPath: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}
