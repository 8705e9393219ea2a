package site

import (
	_ "embed"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

//go:embed palettes.yaml
var palettesYAML []byte

type catalogDocument struct {
	Themes []catalogTheme `yaml:"themes"`
}

type catalogTheme struct {
	Name    string            `yaml:"name"`
	Version string            `yaml:"version"`
	Match   []string          `yaml:"match"`
	Tokens  map[string]string `yaml:"tokens"`
}

// brandEntry pairs a registered manifest with the URL substrings that select
// it. Entries keep document order so overlapping substrings resolve the same
// way every run.
type brandEntry struct {
	manifest *theme.Manifest
	match    []string
}

// Catalog is the brand palette catalog backing the site extractor. It
// implements the go-theme selector contract; palette tokens ride on the
// manifests.
type Catalog struct {
	entries []brandEntry
	byName  map[string]*theme.Manifest
}

var _ theme.ThemeSelector = (*Catalog)(nil)

// NewCatalog parses a YAML catalog document and registers every manifest.
func NewCatalog(document []byte) (*Catalog, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(document, &doc); err != nil {
		return nil, fmt.Errorf("site: parse palette catalog: %w", err)
	}
	if len(doc.Themes) == 0 {
		return nil, fmt.Errorf("site: palette catalog declares no themes")
	}

	registry := theme.NewRegistry()
	catalog := &Catalog{byName: make(map[string]*theme.Manifest, len(doc.Themes))}
	for _, entry := range doc.Themes {
		if strings.TrimSpace(entry.Name) == "" {
			return nil, fmt.Errorf("site: palette catalog entry without a name")
		}
		manifest := &theme.Manifest{
			Name:    entry.Name,
			Version: entry.Version,
			Tokens:  entry.Tokens,
		}
		if err := registry.Register(manifest); err != nil {
			return nil, fmt.Errorf("site: register theme %s: %w", entry.Name, err)
		}
		catalog.entries = append(catalog.entries, brandEntry{manifest: manifest, match: entry.Match})
		catalog.byName[entry.Name] = manifest
	}
	return catalog, nil
}

// DefaultCatalog builds the catalog from the embedded palette document. The
// document ships with the binary, so a failure here is a programming error.
func DefaultCatalog() *Catalog {
	catalog, err := NewCatalog(palettesYAML)
	if err != nil {
		panic(err)
	}
	return catalog
}

// Select resolves a theme by name, honoring the go-theme selector contract.
func (c *Catalog) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	manifest, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("site: unknown theme %q", name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("site: theme %q has no variant %q", name, variant)
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

// MatchURL returns the selection for the first catalog entry whose match
// substring occurs in the URL, or ok=false when no brand is recognized.
func (c *Catalog) MatchURL(url string) (*theme.Selection, bool) {
	lowered := strings.ToLower(url)
	for _, entry := range c.entries {
		for _, fragment := range entry.match {
			if fragment != "" && strings.Contains(lowered, strings.ToLower(fragment)) {
				return &theme.Selection{Theme: entry.manifest.Name, Manifest: entry.manifest}, true
			}
		}
	}
	return nil, false
}

// Themes lists the catalog's theme names in document order.
func (c *Catalog) Themes() []string {
	names := make([]string, 0, len(c.entries))
	for _, entry := range c.entries {
		names = append(names, entry.manifest.Name)
	}
	return names
}
