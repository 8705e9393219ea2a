// Package cli implements the uilift command tree: extract front-ends, apply,
// targets and inspect, with a shared text/JSON output envelope.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"uilift/internal/config"
	"uilift/internal/logutil"
)

// RootOptions holds global flags and the resolved runtime environment shared
// by all commands.
type RootOptions struct {
	Verbose    bool
	Format     string
	ConfigPath string

	Config *config.Config
	Logger *slog.Logger

	// Prompter drives interactive questions. Tests replace it; nil means
	// prompting is unavailable.
	Prompter PromptDriver
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the uilift root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Prompter: newSurveyDriver()}

	cmd := &cobra.Command{
		Use:   "uilift",
		Short: "Extract UI design templates and retarget them",
		Long: `uilift extracts the visual design of an existing app (a mobile bundle,
a set of screenshots, or a site URL) into a portable template, and applies
that template to projects for other UI frameworks.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			opts.Config = cfg

			level := logutil.LevelFromString(cfg.LogLevel)
			if opts.Verbose {
				level = slog.LevelDebug
			}
			opts.Logger = logutil.New(cmd.ErrOrStderr(), level, logutil.Format(cfg.LogFormat))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a uilift.yaml config file")

	cmd.AddCommand(NewExtractCommand(opts))
	cmd.AddCommand(NewApplyCommand(opts))
	cmd.AddCommand(NewTargetsCommand(opts))
	cmd.AddCommand(NewInspectCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func (o *RootOptions) formatter(cmd *cobra.Command) *Formatter {
	return &Formatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}
