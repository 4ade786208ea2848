// Package templates holds the public HTML pages, compiled into the binary so
// the server and the static exporter render identical output.
package templates

import (
	"embed"
	"html/template"
	"io"
)

//go:embed *.html
var files embed.FS

var pages = template.Must(template.ParseFS(files, "*.html"))

// ListenPage is the data for a product's public listen page.
type ListenPage struct {
	Name        string
	Description string
}

// Render writes the named page to w.
func Render(w io.Writer, name string, data any) error {
	return pages.ExecuteTemplate(w, name, data)
}
