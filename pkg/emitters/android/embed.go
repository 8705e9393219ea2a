package android

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded resource templates for callers that want
// to render the stock Android theming files themselves.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
