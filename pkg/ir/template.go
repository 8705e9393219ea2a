package ir

import (
	"fmt"
	"sort"
)

// Metadata records where and how a template was extracted. Beyond the core
// created/source/platform/tags keys it carries optional provenance filled in
// by individual extractors.
type Metadata struct {
	Created         string         `json:"created,omitempty"`
	Source          string         `json:"source,omitempty"`
	Platform        string         `json:"platform,omitempty"`
	Tags            []string       `json:"tags,omitempty"`
	PackageName     string         `json:"package_name,omitempty"`
	AppLabel        string         `json:"app_label,omitempty"`
	BundleSHA256    string         `json:"bundle_sha256,omitempty"`
	ScreenshotCount int            `json:"screenshot_count,omitempty"`
	ResourceCounts  map[string]int `json:"resource_counts,omitempty"`
	ExtractionID    string         `json:"extraction_id,omitempty"`
}

// Template is one complete extracted UI design: a style model, one component
// tree per screen, a navigation graph between screen names, staged assets and
// extraction metadata.
//
// A template is built by exactly one extractor invocation and is immutable
// from that point on. It is encoded once and may be decoded many times by
// independent emitter runs; regenerating UI means re-running extraction.
type Template struct {
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Style       StyleModel          `json:"style"`
	Screens     map[string]*Node    `json:"screens"`
	Navigation  map[string][]string `json:"navigation,omitempty"`
	Assets      map[string]string   `json:"assets,omitempty"`
	Metadata    Metadata            `json:"metadata"`
}

// ScreenNames returns the screen names in sorted order so walks over Screens
// are deterministic.
func (t *Template) ScreenNames() []string {
	names := make([]string, 0, len(t.Screens))
	for name := range t.Screens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NodeCount returns the total number of component nodes across all screens.
func (t *Template) NodeCount() int {
	total := 0
	for _, root := range t.Screens {
		total += root.Count()
	}
	return total
}

// ValidationError reports a semantic problem with a template, found by
// Validate before emission.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("ir: invalid template: %s: %s", e.Field, e.Message)
}

// Validate checks semantic integrity deferred by the codec: every navigation
// target must name an existing screen. Extraction never fails on dangling
// edges; emission refuses to start on them.
func (t *Template) Validate() error {
	if t == nil {
		return &ValidationError{Field: "template", Message: "template is nil"}
	}
	sources := make([]string, 0, len(t.Navigation))
	for source := range t.Navigation {
		sources = append(sources, source)
	}
	sort.Strings(sources)
	for _, source := range sources {
		for _, target := range t.Navigation[source] {
			if _, ok := t.Screens[target]; !ok {
				return &ValidationError{
					Field:   "navigation." + source,
					Message: fmt.Sprintf("target screen %q does not exist", target),
				}
			}
		}
	}
	return nil
}
