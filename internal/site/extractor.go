// Package site builds representative templates from URL heuristics. No
// network fetch happens: the screens come from a catalog of common marketing
// page patterns, and the palette from go-theme brand manifests matched
// against the URL.
package site

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	theme "github.com/goliatone/go-theme"

	"uilift/internal/logutil"
	"uilift/pkg/extract"
	"uilift/pkg/ir"
)

// BrandMatcher resolves a URL to a theme selection. Catalog is the default
// implementation.
type BrandMatcher interface {
	MatchURL(url string) (*theme.Selection, bool)
}

var _ BrandMatcher = (*Catalog)(nil)

// Extractor is the heuristic site front-end.
type Extractor struct {
	catalog BrandMatcher
	logger  *slog.Logger
}

// Option customises the extractor.
type Option func(*Extractor)

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithCatalog swaps the brand catalog.
func WithCatalog(catalog BrandMatcher) Option {
	return func(e *Extractor) {
		if catalog != nil {
			e.catalog = catalog
		}
	}
}

// New constructs an Extractor backed by the embedded brand catalog.
func New(options ...Option) *Extractor {
	e := &Extractor{
		catalog: DefaultCatalog(),
		logger:  logutil.Discard(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Extract lowers a URL into a two-screen template: a home page with header,
// hero, feature cards and footer, plus a contact page, linked bidirectionally.
// A recognized brand substring swaps in that brand's palette; anything else
// keeps the style defaults. An empty URL is SourceNotFoundError.
func (e *Extractor) Extract(ctx context.Context, url string) (*extract.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, &extract.SourceNotFoundError{}
	}

	style := ir.DefaultStyle()
	if selection, ok := e.catalog.MatchURL(url); ok {
		for key, value := range selection.Manifest.Tokens {
			style.Colors[key] = value
		}
		e.logger.Debug("brand palette matched", "url", url, "theme", selection.Theme)
	}

	template := &ir.Template{
		Name:        "UI from " + url,
		Description: "UI extracted from website " + url,
		Style:       style,
		Screens: map[string]*ir.Node{
			"home":    buildHomeScreen(),
			"contact": buildContactScreen(),
		},
		Navigation: map[string][]string{
			"home":    {"contact"},
			"contact": {"home"},
		},
		Metadata: ir.Metadata{
			Created:      time.Now().UTC().Format(time.RFC3339),
			Source:       url,
			Platform:     "web",
			Tags:         []string{"extracted", "web"},
			ExtractionID: uuid.NewString(),
		},
	}

	e.logger.Debug("site template built", "url", url, "screens", len(template.Screens))

	return &extract.Result{Template: template, Status: extract.StatusComplete}, nil
}
