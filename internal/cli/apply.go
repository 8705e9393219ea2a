package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"uilift"
	"uilift/internal/store"
)

// ApplyOptions holds the apply command flags.
type ApplyOptions struct {
	*RootOptions

	// Target selects the emitter. Empty falls back to the configured
	// default_target, then to an interactive prompt.
	Target string
}

// ApplySummary is the payload reported after a successful apply.
type ApplySummary struct {
	Target string   `json:"target"`
	Root   string   `json:"root"`
	Files  []string `json:"files"`
}

// NewApplyCommand creates the apply command.
func NewApplyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ApplyOptions{RootOptions: rootOpts}
	cmd := &cobra.Command{
		Use:           "apply <template.json> <project-root>",
		Short:         "Apply a stored template to a target project",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(opts, cmd, args[0], args[1])
		},
	}
	cmd.Flags().StringVarP(&opts.Target, "target", "t", "", "target id (run 'uilift targets' for the list)")
	return cmd
}

func runApply(opts *ApplyOptions, cmd *cobra.Command, templatePath, projectRoot string) error {
	formatter := opts.formatter(cmd)

	s, err := store.New(opts.Config.CacheDir)
	if err != nil {
		return formatter.Failure(CodeInternal, err.Error(), nil)
	}
	template, err := s.Load(templatePath)
	if err != nil {
		return formatter.Failure(ErrorCode(err), err.Error(), nil)
	}

	target, err := resolveTarget(opts)
	if err != nil {
		return formatter.Failure(CodeUnsupportedTarget, err.Error(), nil)
	}
	formatter.VerboseLog("applying %q to %s as %s", template.Name, projectRoot, target)

	result, err := uilift.Apply(cmd.Context(), template, projectRoot, target, uilift.WithLogger(opts.Logger))
	if err != nil {
		return formatter.Failure(ErrorCode(err), err.Error(), nil)
	}

	summary := ApplySummary{Target: result.Target, Root: result.Root, Files: result.Written}
	return formatter.Success(summary, func(w io.Writer) {
		fmt.Fprintf(w, "✓ Applied %q to %s (%s)\n", template.Name, summary.Root, summary.Target)
		for _, file := range summary.Files {
			fmt.Fprintf(w, "  %s\n", file)
		}
	})
}

// resolveTarget picks the emit target: the --target flag wins, then the
// configured default, then an interactive prompt.
func resolveTarget(opts *ApplyOptions) (string, error) {
	if opts.Target != "" {
		return opts.Target, nil
	}
	if opts.Config.DefaultTarget != "" {
		return opts.Config.DefaultTarget, nil
	}
	if opts.Prompter == nil {
		return "", errors.New("no target selected: pass --target or set default_target")
	}
	return opts.Prompter.SelectTarget(uilift.Targets())
}
