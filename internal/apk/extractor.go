// Package apk lowers zip-format Android application bundles into the IR. It
// reads the textual manifest, resource dictionaries and layout descriptors,
// and stages bitmap resources into the caller's cache root. Binary-encoded
// manifests and layouts are a documented limitation: they fall through the
// degradation ladder instead of failing the run.
package apk

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"uilift/internal/logutil"
	"uilift/pkg/extract"
	"uilift/pkg/ir"
)

// Extractor is the mobile-bundle front-end. Construct with New; the cache
// root owns the staged assets and must outlive emission.
type Extractor struct {
	cacheRoot string
	logger    *slog.Logger
}

// Option customises the extractor.
type Option func(*Extractor)

// WithLogger attaches a logger. Extraction logs progress at debug level and
// degradations at warn level.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New constructs an Extractor. cacheRoot is required: staged assets are
// written beneath it and referenced from the template's asset map.
func New(cacheRoot string, options ...Option) *Extractor {
	e := &Extractor{
		cacheRoot: strings.TrimSpace(cacheRoot),
		logger:    logutil.Discard(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Extract unpacks the bundle at bundlePath and lowers it into a template.
// The unpack directory is removed on every exit path; staged assets persist
// under the cache root. A missing bundle is SourceNotFoundError, a corrupt
// archive SourceUnreadableError. An unparsable manifest or an absence of
// layout files degrades to a partial result, never an error.
func (e *Extractor) Extract(ctx context.Context, bundlePath string) (*extract.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if e.cacheRoot == "" {
		return nil, fmt.Errorf("apk: cache root not configured")
	}

	info, err := os.Stat(bundlePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &extract.SourceNotFoundError{Path: bundlePath}
		}
		return nil, &extract.SourceUnreadableError{Path: bundlePath, Err: err}
	}
	if info.IsDir() {
		return nil, &extract.SourceUnreadableError{Path: bundlePath, Err: fmt.Errorf("bundle is a directory")}
	}

	digest, err := bundleDigest(bundlePath)
	if err != nil {
		return nil, &extract.SourceUnreadableError{Path: bundlePath, Err: err}
	}

	workDir, err := os.MkdirTemp("", "uilift-apk-")
	if err != nil {
		return nil, fmt.Errorf("apk: create unpack dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	if err := unpackBundle(bundlePath, workDir); err != nil {
		return nil, &extract.SourceUnreadableError{Path: bundlePath, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var warnings []string

	packageName := readPackageName(workDir)
	if packageName == "" {
		warnings = append(warnings, "manifest not parsable; package name unset")
		e.logger.Warn("manifest not parsable", "bundle", bundlePath)
	}
	appLabel := readAppLabel(workDir)

	style := ir.DefaultStyle()
	scanColors(workDir, style.Colors)
	scanDimensions(workDir, style.Dimensions)

	screens, layoutWarnings := buildScreens(workDir)
	warnings = append(warnings, layoutWarnings...)
	if len(screens) == 0 {
		warnings = append(warnings, "no layout descriptors found; template has no screens")
	}

	runID := uuid.NewString()
	assets, assetWarnings := e.stageAssets(workDir, runID)
	warnings = append(warnings, assetWarnings...)

	bundleName := filepath.Base(bundlePath)
	described := packageName
	if described == "" {
		described = bundleName
	}

	template := &ir.Template{
		Name:        "UI from " + bundleName,
		Description: "UI extracted from " + described,
		Style:       style,
		Screens:     screens,
		Navigation:  map[string][]string{},
		Assets:      assets,
		Metadata: ir.Metadata{
			Created:        time.Now().UTC().Format(time.RFC3339),
			Source:         bundlePath,
			Platform:       "android",
			Tags:           []string{"extracted", "android"},
			PackageName:    packageName,
			AppLabel:       appLabel,
			BundleSHA256:   digest,
			ResourceCounts: countResources(workDir),
			ExtractionID:   runID,
		},
	}

	status := extract.StatusComplete
	if len(screens) == 0 || packageName == "" {
		status = extract.StatusPartial
	}

	e.logger.Debug("bundle extracted",
		"bundle", bundlePath,
		"screens", len(screens),
		"assets", len(assets),
		"status", string(status))

	return &extract.Result{Template: template, Status: status, Warnings: warnings}, nil
}
