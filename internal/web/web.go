// Package web holds the embedded HTML views.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

// Templates parses all views. Each page template is named after its file.
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(templateFiles, "templates/*.tmpl")
}
