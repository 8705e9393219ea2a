package emit

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"uilift/internal/logutil"
	"uilift/pkg/ir"
)

// Result reports one completed Apply run.
type Result struct {
	// Target is the emitter id that produced the output.
	Target string
	// Root is the project root the plan was written under.
	Root string
	// Written lists the absolute paths written, in plan order.
	Written []string
}

// ApplyOption customises an Apply run.
type ApplyOption func(*applyConfig)

type applyConfig struct {
	logger *slog.Logger
}

// WithLogger attaches a logger to the apply pipeline.
func WithLogger(logger *slog.Logger) ApplyOption {
	return func(cfg *applyConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// Apply lowers the template onto a project tree: resolve the target emitter,
// validate the template, verify the project root, plan, then write. Every
// failure mode up to and including planning surfaces before a single output
// byte lands, so a rejected Apply leaves the project untouched.
func Apply(ctx context.Context, registry *Registry, target string, template *ir.Template, projectRoot string, options ...ApplyOption) (*Result, error) {
	cfg := applyConfig{logger: logutil.Discard()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if registry == nil {
		return nil, fmt.Errorf("emit: registry is required")
	}
	emitter, err := registry.Get(target)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, fmt.Errorf("emit: template is required")
	}
	if err := template.Validate(); err != nil {
		return nil, err
	}
	if err := probeRoot(projectRoot); err != nil {
		return nil, err
	}

	plan, err := emitter.Plan(template)
	if err != nil {
		return nil, fmt.Errorf("emit: plan %s: %w", target, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	written, err := writePlan(projectRoot, plan)
	if err != nil {
		return nil, err
	}

	cfg.logger.Info("template applied",
		"target", target,
		"root", projectRoot,
		"files", len(written))

	return &Result{Target: target, Root: projectRoot, Written: written}, nil
}

// probeRoot verifies the project root is an existing writable directory
// before any planning happens. The probe file never survives the check.
func probeRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return &WriteFailureError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return &WriteFailureError{Path: root, Err: fmt.Errorf("not a directory")}
	}
	probe, err := os.CreateTemp(root, ".uilift-probe-*")
	if err != nil {
		return &WriteFailureError{Path: root, Err: err}
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)
	return nil
}
