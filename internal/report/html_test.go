package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHTML(t *testing.T) {
	analysis := sampleAnalysis()

	html, err := RenderHTML(analysis)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, `<p class="score excellent">100/100</p>`)
	assert.Contains(t, html, "ATS COMPATIBILITY SCORE: 100/100")
}

func TestRenderHTML_EscapesReportText(t *testing.T) {
	analysis := sampleAnalysis()
	analysis.Skills.Phrases = []string{"<script>alert(1)</script>"}

	html, err := RenderHTML(analysis)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestScoreBucket(t *testing.T) {
	assert.Equal(t, "excellent", scoreBucket(80))
	assert.Equal(t, "good", scoreBucket(79))
	assert.Equal(t, "good", scoreBucket(60))
	assert.Equal(t, "fair", scoreBucket(59))
	assert.Equal(t, "fair", scoreBucket(40))
	assert.Equal(t, "poor", scoreBucket(39))
}

func TestWriteHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")

	require.NoError(t, WriteHTML(sampleAnalysis(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<title>ATS Compatibility Report</title>")
}
