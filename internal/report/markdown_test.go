package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quicdiff/pkg/errors"
)

func TestRenderMarkdownSingle(t *testing.T) {
	rep := singleReport()

	var buf bytes.Buffer
	require.NoError(t, RenderMarkdown(&buf, rep))
	out := buf.String()

	assert.Contains(t, out, "# BBRv2 vs BBRv3\n")
	assert.Contains(t, out, "**Report ID:** "+rep.ID)
	assert.Contains(t, out, "**Threshold:** ±5.0%")

	assert.Contains(t, out, "## Baseline Results")
	assert.Contains(t, out, "## Candidate Results")
	assert.Contains(t, out, "## Comparison")
	assert.NotContains(t, out, "### Baseline Results")
	assert.NotContains(t, out, "## Aggregate")

	idxBase := strings.Index(out, "## Baseline Results")
	idxCand := strings.Index(out, "## Candidate Results")
	idxCmp := strings.Index(out, "## Comparison")
	assert.Less(t, idxBase, idxCand)
	assert.Less(t, idxCand, idxCmp)

	assert.Contains(t, out, "| Throughput (Mbps) | 50.00 |")
	assert.Contains(t, out, "| Throughput (Mbps) | 50.00 | 60.00 | +20.00% | ✅ improvement |")
	assert.Contains(t, out, "| Packet Loss (%) | 1.00 | 2.00 | +100.00% | ⚠️ degradation |")
	assert.Contains(t, out, "| RTT Min (ms) | 10.00 | 10.00 | +0.00% | · neutral |")
	assert.Contains(t, out, "- Improvements: 2\n  - Throughput (Mbps)\n  - RTT P95 (ms)\n")
	assert.Contains(t, out, "- Degradations: 1\n  - Packet Loss (%)\n")
	assert.Contains(t, out, "- Verdict: **mixed**")
}

func TestRenderMarkdownBatch(t *testing.T) {
	rep := batchReport()

	var buf bytes.Buffer
	require.NoError(t, RenderMarkdown(&buf, rep))
	out := buf.String()

	assert.Contains(t, out, "## good / light")
	assert.Contains(t, out, "## satellite / medium")
	assert.Contains(t, out, "### Baseline Results")
	assert.Contains(t, out, "### Comparison")

	assert.Contains(t, out, "## Aggregate")
	assert.Contains(t, out, "| Throughput (Mbps) | 2 | 0 | 0 |")
	assert.Contains(t, out, "| RTT Min (ms) | 0 | 0 | 2 |")

	assert.Contains(t, out, "## Skipped Pairs")
	assert.Contains(t, out, "- `mobile_light`: no candidate result")
}

func TestWriteMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	require.NoError(t, WriteMarkdown(path, singleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# BBRv2 vs BBRv3")
}

func TestWriteMarkdownBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.md")
	err := WriteMarkdown(path, singleReport())
	require.Error(t, err)

	var repErr *errors.ReportError
	require.ErrorAs(t, err, &repErr)
	assert.Equal(t, "markdown", repErr.Format)
	assert.Equal(t, path, repErr.Path)
}
