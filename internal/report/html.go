package report

import (
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/jonathan/ats-scanner/internal/types"
)

// pageTemplate wraps the text report in a minimal standalone HTML page so it
// can be viewed in a browser or printed to PDF.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>ATS Compatibility Report</title>
<style>
body { font-family: Georgia, serif; margin: 2em auto; max-width: 52em; color: #1a1a1a; }
h1 { font-size: 1.4em; border-bottom: 2px solid #1a1a1a; padding-bottom: 0.3em; }
.score { font-size: 2.5em; font-weight: bold; }
.score.excellent { color: #2e7d32; }
.score.good { color: #558b2f; }
.score.fair { color: #ef6c00; }
.score.poor { color: #c62828; }
pre { font-family: "Courier New", monospace; font-size: 0.85em; white-space: pre-wrap; }
</style>
</head>
<body>
<h1>ATS Compatibility Report</h1>
<p class="score {{.Bucket}}">{{.Score}}/100</p>
<pre>{{.Report}}</pre>
</body>
</html>
`

// pageData is the data passed to the HTML page template.
type pageData struct {
	Score  int
	Bucket string
	Report string
}

// RenderHTML renders the analysis as a standalone HTML page.
func RenderHTML(analysis *types.Analysis) (string, error) {
	tmpl, err := template.New("report").Parse(pageTemplate)
	if err != nil {
		return "", &RenderError{Message: "failed to parse HTML template", Cause: err}
	}

	var sb strings.Builder
	err = tmpl.Execute(&sb, pageData{
		Score:  analysis.ATSScore,
		Bucket: scoreBucket(analysis.ATSScore),
		Report: Build(analysis),
	})
	if err != nil {
		return "", &RenderError{Message: "failed to execute HTML template", Cause: err}
	}

	return sb.String(), nil
}

// WriteHTML renders the HTML page and writes it to path.
func WriteHTML(analysis *types.Analysis, path string) error {
	html, err := RenderHTML(analysis)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return &RenderError{Message: fmt.Sprintf("failed to write HTML report to %s", path), Cause: err}
	}
	return nil
}

// scoreBucket maps a score to its CSS class, mirroring the status buckets in
// the text report.
func scoreBucket(score int) string {
	switch {
	case score >= 80:
		return "excellent"
	case score >= 60:
		return "good"
	case score >= 40:
		return "fair"
	default:
		return "poor"
	}
}
