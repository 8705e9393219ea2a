// Package uilift turns existing app artifacts into a canonical UI template
// and replays that template into new projects. The root package re-exports
// the pieces most callers need: one entry point per extraction source, Apply
// to write a template into a project tree, and the shared template types.
package uilift

import (
	"context"
	"log/slog"

	"uilift/internal/apk"
	"uilift/internal/screenshot"
	"uilift/internal/site"
	"uilift/pkg/emit"
	"uilift/pkg/emitters"
	"uilift/pkg/extract"
	"uilift/pkg/ir"
)

// Template is the canonical design document every extractor produces and
// every emitter consumes.
type Template = ir.Template

// Node is one element of a screen tree.
type Node = ir.Node

// StyleModel carries the design tokens shared by all screens of a template.
type StyleModel = ir.StyleModel

// Result is the outcome of one extraction run: the template plus a status
// and any warnings gathered along the way.
type Result = extract.Result

// ApplyResult reports what Apply wrote and where.
type ApplyResult = emit.Result

// Option adjusts how the entry points run.
type Option func(*settings)

type settings struct {
	logger  *slog.Logger
	workers int
}

// WithLogger routes extraction and apply progress through the given logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithWorkers caps the screenshot decode pool.
func WithWorkers(n int) Option {
	return func(s *settings) {
		s.workers = n
	}
}

func collect(options []Option) settings {
	var s settings
	for _, opt := range options {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// ExtractAPK pulls a template out of an Android application bundle. Staged
// assets land under cacheRoot so the returned template keeps pointing at
// files that outlive the call.
func ExtractAPK(ctx context.Context, bundlePath, cacheRoot string, options ...Option) (*Result, error) {
	s := collect(options)
	return apk.New(cacheRoot, apk.WithLogger(s.logger)).Extract(ctx, bundlePath)
}

// ExtractScreenshots infers a template from a set of screen captures. The
// appName becomes the template name and the capture file names become the
// screen names.
func ExtractScreenshots(ctx context.Context, paths []string, appName, cacheRoot string, options ...Option) (*Result, error) {
	s := collect(options)
	opts := []screenshot.Option{screenshot.WithLogger(s.logger)}
	if s.workers > 0 {
		opts = append(opts, screenshot.WithWorkers(s.workers))
	}
	return screenshot.New(cacheRoot, opts...).Extract(ctx, paths, appName)
}

// ExtractSite derives a starter template for a URL from its domain and the
// built-in brand catalog. It performs no network traffic.
func ExtractSite(ctx context.Context, url string, options ...Option) (*Result, error) {
	s := collect(options)
	return site.New(site.WithLogger(s.logger)).Extract(ctx, url)
}

// Apply validates the template and writes the generated files for the named
// target under projectRoot. Nothing is written when validation or planning
// fails.
func Apply(ctx context.Context, template *Template, projectRoot, target string, options ...Option) (*ApplyResult, error) {
	s := collect(options)
	return emit.Apply(ctx, emitters.NewRegistry(), target, template, projectRoot, emit.WithLogger(s.logger))
}

// Targets lists the registered target identifiers in sorted order.
func Targets() []string {
	return emitters.Targets()
}
