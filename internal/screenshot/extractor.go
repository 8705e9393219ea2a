// Package screenshot infers templates from sets of raster captures. Pixel
// clustering recovers a palette, colors under Sobel edges approximate text
// colors, and Otsu thresholding plus connected-component labeling turns dark
// regions into positioned component nodes. An undecodable image is skipped
// with a warning instead of failing the set.
package screenshot

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"uilift/internal/logutil"
	"uilift/pkg/extract"
	"uilift/pkg/ir"
)

// Extractor is the screenshot front-end. Construct with New; the cache root
// owns the staged assets and must outlive emission.
type Extractor struct {
	cacheRoot string
	logger    *slog.Logger
	decoder   Decoder
	workers   int
}

// Option customises the extractor.
type Option func(*Extractor)

// WithLogger attaches a logger. Skipped images log at warn level.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithDecoder swaps the image decoder.
func WithDecoder(decoder Decoder) Option {
	return func(e *Extractor) {
		if decoder != nil {
			e.decoder = decoder
		}
	}
}

// WithWorkers bounds the number of images analysed concurrently. The default
// is the CPU count.
func WithWorkers(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.workers = n
		}
	}
}

// New constructs an Extractor. cacheRoot is required: screenshots are staged
// beneath it and referenced from the template's asset map.
func New(cacheRoot string, options ...Option) *Extractor {
	e := &Extractor{
		cacheRoot: strings.TrimSpace(cacheRoot),
		logger:    logutil.Discard(),
		decoder:   defaultDecoder(),
		workers:   runtime.NumCPU(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// analysis is the per-image output of the vision passes.
type analysis struct {
	palette []paletteEntry
	text    []paletteEntry
	screen  *ir.Node
	err     error
}

// Extract analyses the screenshots at paths and lowers them into a template
// named after appName. Every path must exist up front; a path that later
// fails to decode is skipped with a warning and leaves a gap in the screen
// numbering. The result is partial when no screen survives.
func (e *Extractor) Extract(ctx context.Context, paths []string, appName string) (*extract.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if e.cacheRoot == "" {
		return nil, fmt.Errorf("screenshot: cache root not configured")
	}
	if len(paths) == 0 {
		return nil, &extract.SourceNotFoundError{}
	}
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, &extract.SourceNotFoundError{Path: path}
			}
			return nil, &extract.SourceUnreadableError{Path: path, Err: err}
		}
		if info.IsDir() {
			return nil, &extract.SourceUnreadableError{Path: path, Err: fmt.Errorf("screenshot is a directory")}
		}
	}

	results := e.analyzeAll(paths)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var warnings []string
	screens := make(map[string]*ir.Node)
	var palettes, texts [][]paletteEntry
	for i, res := range results {
		if res.err != nil {
			warnings = append(warnings, fmt.Sprintf("screenshot %s skipped: %v", filepath.Base(paths[i]), res.err))
			e.logger.Warn("screenshot skipped", "path", paths[i], "error", res.err)
			continue
		}
		screens[fmt.Sprintf("Screen_%d", i+1)] = res.screen
		palettes = append(palettes, res.palette)
		texts = append(texts, res.text)
	}
	if len(screens) == 0 {
		warnings = append(warnings, "no screenshot decoded; template has no screens")
	}

	style := ir.DefaultStyle()
	applyPalette(style.Colors, mergePalettes(palettes), mergePalettes(texts))

	runID := uuid.NewString()
	assets, assetWarnings := e.stageScreenshots(paths, runID)
	warnings = append(warnings, assetWarnings...)

	name := strings.TrimSpace(appName)
	if name == "" {
		name = "screenshots"
	}

	template := &ir.Template{
		Name:        "UI from " + name,
		Description: "UI extracted from " + name + " screenshots",
		Style:       style,
		Screens:     screens,
		Navigation:  map[string][]string{},
		Assets:      assets,
		Metadata: ir.Metadata{
			Created:         time.Now().UTC().Format(time.RFC3339),
			Source:          "screenshots",
			Platform:        "unknown",
			Tags:            []string{"extracted", "screenshots"},
			ScreenshotCount: len(paths),
			ExtractionID:    runID,
		},
	}

	status := extract.StatusComplete
	if len(screens) == 0 {
		status = extract.StatusPartial
	}

	e.logger.Debug("screenshots extracted",
		"count", len(paths),
		"screens", len(screens),
		"status", string(status))

	return &extract.Result{Template: template, Status: status, Warnings: warnings}, nil
}

// analyzeAll fans the vision passes out across a bounded worker pool and
// returns results in input order.
func (e *Extractor) analyzeAll(paths []string) []*analysis {
	results := make([]*analysis, len(paths))
	workers := e.workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(paths) {
		workers = len(paths)
	}
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(slot int, path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[slot] = e.analyze(path)
		}(i, path)
	}
	wg.Wait()
	return results
}

func (e *Extractor) analyze(path string) *analysis {
	img, err := e.decoder.Decode(path)
	if err != nil {
		return &analysis{err: err}
	}
	return &analysis{
		palette: clusterColors(samplePixels(img), paletteClusters),
		text:    darkOnly(clusterColors(edgePixels(img), textClusters)),
		screen:  buildScreen(img),
	}
}

// applyPalette maps merged clusters onto the style color slots: the heaviest
// cluster becomes background and surface, the next two primary and secondary,
// and the heaviest dark edge clusters the text colors. Unresolved slots keep
// their defaults.
func applyPalette(colors map[string]string, dominant, text []paletteEntry) {
	if len(dominant) > 0 {
		colors["background"] = dominant[0].Hex
		colors["surface"] = dominant[0].Hex
	}
	if len(dominant) > 1 {
		colors["primary"] = dominant[1].Hex
	}
	if len(dominant) > 2 {
		colors["secondary"] = dominant[2].Hex
	}
	if len(text) > 0 {
		colors["text_primary"] = text[0].Hex
	}
	if len(text) > 1 {
		colors["text_secondary"] = text[1].Hex
	}
}

// stageScreenshots copies every input into the per-run staging dir, numbered
// by input position with the source extension preserved.
func (e *Extractor) stageScreenshots(paths []string, runID string) (map[string]string, []string) {
	if len(paths) == 0 {
		return nil, nil
	}
	stagingDir, err := extract.AssetStagingDir(e.cacheRoot, runID)
	if err != nil {
		return nil, []string{fmt.Sprintf("stage screenshots: %v", err)}
	}
	assets := make(map[string]string, len(paths))
	var warnings []string
	for i, path := range paths {
		key := fmt.Sprintf("screenshot_%d", i+1)
		staged, err := extract.StageFile(stagingDir, key+filepath.Ext(path), path)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("stage %s: %v", filepath.Base(path), err))
			continue
		}
		assets[key] = staged
	}
	return assets, warnings
}
