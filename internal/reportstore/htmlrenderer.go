package reportstore

import (
	"bytes"
	"html/template"

	"github.com/hardgate/scanengine/internal/model"
)

// HTMLRenderer renders a ValidationResult to the self-contained
// hard_gate_report_{scan_id}.html document, following the same summary
// rollup (implemented/partial/not-implemented/not-applicable gate counts)
// and secret-scan callout that codegates' reports.SharedReportGenerator
// computes for its VS Code and HTML report paths.
type HTMLRenderer struct{}

func NewHTMLRenderer() *HTMLRenderer { return &HTMLRenderer{} }

type summaryStats struct {
	Total            int
	Implemented      int
	Partial          int
	NotImplemented   int
	NotApplicable    int
}

type secretsCallout struct {
	Status  string
	Message string
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Hard Gate Report - {{.Result.ProjectName}}</title>
<style>
body { font-family: -apple-system, sans-serif; margin: 2rem; color: #1a1a1a; }
h1 { margin-bottom: 0; }
.meta { color: #666; margin-bottom: 1.5rem; }
.score { font-size: 2.5rem; font-weight: 600; }
table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
th, td { border: 1px solid #ddd; padding: 0.5rem 0.75rem; text-align: left; }
th { background: #f5f5f5; }
.PASS { color: #1a7f37; }
.WARNING { color: #9a6700; }
.FAIL, .FAILED { color: #cf222e; }
.NOT_APPLICABLE, .UNSUPPORTED { color: #999; }
</style>
</head>
<body>
<h1>{{.Result.ProjectName}}</h1>
<div class="meta">{{.RenderContext.RepositoryURL}} {{.RenderContext.Branch}} &middot; scan {{.RenderContext.ScanID}}</div>
<div class="score">{{printf "%.1f" .Result.OverallScore}}</div>
<p>{{.Summary.Implemented}} passed, {{.Summary.Partial}} warning, {{.Summary.NotImplemented}} failed, {{.Summary.NotApplicable}} not applicable (of {{.Summary.Total}} gates)</p>
<p><strong>Secrets:</strong> <span class="{{.Secrets.Status}}">{{.Secrets.Message}}</span></p>
<table>
<tr><th>Gate</th><th>Status</th><th>Score</th><th>Coverage</th><th>Quality</th><th>Expected</th><th>Found</th></tr>
{{range .Result.GateScores}}<tr>
<td>{{.Gate}}</td>
<td class="{{.Status}}">{{.Status}}</td>
<td>{{printf "%.1f" .FinalScore}}</td>
<td>{{printf "%.1f" .Coverage}}</td>
<td>{{printf "%.1f" .QualityScore}}</td>
<td>{{.Expected}}</td>
<td>{{.Found}}</td>
</tr>
{{end}}</table>
{{if .Result.CriticalIssues}}<h2>Critical Issues</h2><ul>{{range .Result.CriticalIssues}}<li>{{.}}</li>{{end}}</ul>{{end}}
<h2>Recommendations</h2>
<ul>{{range .Result.Recommendations}}<li>{{.}}</li>{{end}}</ul>
</body>
</html>
`))

type reportView struct {
	Result        *model.ValidationResult
	RenderContext RenderContext
	Summary       summaryStats
	Secrets       secretsCallout
}

func (HTMLRenderer) Render(result *model.ValidationResult, rc RenderContext) ([]byte, error) {
	summary := summaryStats{Total: len(result.GateScores)}
	var secrets secretsCallout

	for _, g := range result.GateScores {
		switch g.Status {
		case model.StatusPass:
			summary.Implemented++
		case model.StatusWarning:
			summary.Partial++
		case model.StatusFail, model.StatusFailed:
			summary.NotImplemented++
		case model.StatusNotApplicable, model.StatusUnsupported:
			summary.NotApplicable++
		}

		if g.Gate != model.GateAvoidLoggingSecrets {
			continue
		}
		switch {
		case g.Status == model.StatusPass:
			secrets = secretsCallout{Status: "PASS", Message: "No secrets or confidential data detected"}
		case g.Found > 0:
			secrets = secretsCallout{Status: "WARNING", Message: "potential confidential data logging violations found"}
		default:
			secrets = secretsCallout{Status: "unknown", Message: "secret logging not evaluated"}
		}
	}

	var buf bytes.Buffer
	view := reportView{Result: result, RenderContext: rc, Summary: summary, Secrets: secrets}
	if err := reportTemplate.Execute(&buf, view); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
