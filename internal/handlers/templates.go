package handlers

import (
	"embed"
	"html/template"
)

// Pages ship inside the binary so the server (and its tests) never depend
// on the working directory.
//
//go:embed templates/*.html
var templateFS embed.FS

func pageTemplates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}
