package flutter

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded theme and pubspec templates.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
