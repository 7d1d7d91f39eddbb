// Package web holds the server-rendered HTML templates.
package web

import (
	"embed"
	"html/template"
	"time"
)

//go:embed templates/*.html
var files embed.FS

// DisplayDateFormat is how calendar dates are shown on the pages.
const DisplayDateFormat = "02/01/2006"

// Templates parses every embedded page template.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"date": func(t time.Time) string { return t.Format(DisplayDateFormat) },
		"iso":  func(t time.Time) string { return t.Format(time.DateOnly) },
	}).ParseFS(files, "templates/*.html")
}
