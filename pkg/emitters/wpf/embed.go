package wpf

import "embed"

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded templates, mainly for tests.
func TemplatesFS() embed.FS { return embeddedTemplates }
