// Package emit defines the back-end contract: emitters lower a template into
// a pure plan of files, and Apply materializes a plan into a project tree.
// Planning never touches the filesystem, so plans can be inspected, diffed or
// discarded; all I/O is concentrated in the writer.
package emit

import "uilift/pkg/ir"

// Emitter lowers a template into the file plan for one target platform.
type Emitter interface {
	// Name returns the stable target id used for registry lookup and CLI
	// selection.
	Name() string
	// Plan lowers the template into an ordered file set. Equal templates
	// must produce byte-identical plans.
	Plan(template *ir.Template) (*Plan, error)
}
