// Package extract holds the vocabulary shared by the extraction front-ends:
// result classification, the error taxonomy for unreadable sources and the
// per-run asset staging layout. The front-ends themselves live in
// internal/apk, internal/screenshot and internal/site; each exposes its own
// typed Extract method because their inputs have nothing in common beyond
// producing a template.
package extract

import "uilift/pkg/ir"

// Status classifies a finished extraction.
type Status string

const (
	// StatusComplete means the template has screens and all provenance the
	// front-end is expected to resolve.
	StatusComplete Status = "complete"
	// StatusPartial means the pipeline finished but produced zero screens or
	// left required metadata unset. Partial results are still usable.
	StatusPartial Status = "partial"
)

// Result carries the extracted template plus diagnostics. A partial result is
// a warning-carrying success, never an error: callers decide whether partial
// output is acceptable.
type Result struct {
	Template *ir.Template
	Status   Status
	Warnings []string
}

// Partial reports whether the extraction was classified partial.
func (r *Result) Partial() bool {
	return r != nil && r.Status == StatusPartial
}
