package react

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded theme template.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
