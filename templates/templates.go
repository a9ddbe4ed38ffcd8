package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Load parses every page template; pages are addressed by file name.
func Load() (*template.Template, error) {
	return template.ParseFS(files, "*.html")
}
