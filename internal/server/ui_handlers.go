package server

import (
	"html/template"
	"log/slog"
	"net/http"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<title>roots</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.4em 0.8em; text-align: left; }
th { background: #f0f0f0; }
.failed { color: #b00; }
.completed { color: #080; }
</style>
</head>
<body>
<h1>Solve Jobs</h1>
{{if .}}
<table>
<tr><th>ID</th><th>State</th><th>Kind</th><th>Method</th><th>Iterations</th><th>Roots</th><th>Error</th></tr>
{{range .}}
<tr>
<td><a href="/api/v1/jobs/{{.ID}}/status">{{.ID}}</a></td>
<td class="{{.State}}">{{.State}}</td>
<td>{{.Config.Kind}}</td>
<td>{{.Config.Method}}</td>
<td>{{.Iterations}}</td>
<td>{{range .Roots}}{{printf "%.6g " .}}{{end}}</td>
<td>{{.Error}}</td>
</tr>
{{end}}
</table>
{{else}}
<p>No jobs yet. POST a solve request to /api/v1/jobs.</p>
{{end}}
</body>
</html>
`))

// handleIndex handles GET /
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	// Only handle exact root path
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	jobs := s.jobManager.ListJobs()

	if err := indexTemplate.Execute(w, jobs); err != nil {
		slog.Error("Failed to render index", "error", err)
	}
}
