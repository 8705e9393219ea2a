package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"uilift"
	"uilift/internal/store"
	"uilift/pkg/emit"
	"uilift/pkg/extract"
	"uilift/pkg/ir"
)

// ExtractOptions holds the flags shared by the extract subcommands.
type ExtractOptions struct {
	*RootOptions

	// Name overrides the extracted template name. Required for screenshot
	// extraction, optional elsewhere.
	Name string
	// Output writes the template JSON to an explicit path instead of the
	// cache store.
	Output string
}

// ExtractionSummary is the payload reported after a successful extraction.
type ExtractionSummary struct {
	Name     string   `json:"name"`
	Source   string   `json:"source"`
	Status   string   `json:"status"`
	Screens  int      `json:"screens"`
	Nodes    int      `json:"nodes"`
	Assets   int      `json:"assets"`
	Output   string   `json:"output"`
	Warnings []string `json:"warnings,omitempty"`
}

// NewExtractCommand creates the extract command group.
func NewExtractCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract a UI template from an existing app",
	}
	cmd.AddCommand(newExtractAPKCommand(rootOpts))
	cmd.AddCommand(newExtractScreensCommand(rootOpts))
	cmd.AddCommand(newExtractSiteCommand(rootOpts))
	return cmd
}

func newExtractAPKCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExtractOptions{RootOptions: rootOpts}
	cmd := &cobra.Command{
		Use:           "apk <bundle>",
		Short:         "Extract a template from an Android application bundle",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := uilift.ExtractAPK(cmd.Context(), args[0], opts.Config.CacheDir,
				uilift.WithLogger(opts.Logger))
			return finishExtraction(opts, cmd, result, err)
		},
	}
	cmd.Flags().StringVar(&opts.Name, "name", "", "override the template name")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write the template JSON to this path instead of the cache")
	return cmd
}

func newExtractScreensCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExtractOptions{RootOptions: rootOpts}
	cmd := &cobra.Command{
		Use:           "screens <image>...",
		Short:         "Extract a template from app screenshots",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := uilift.ExtractScreenshots(cmd.Context(), args, opts.Name, opts.Config.CacheDir,
				uilift.WithLogger(opts.Logger), uilift.WithWorkers(opts.Config.Workers))
			return finishExtraction(opts, cmd, result, err)
		},
	}
	cmd.Flags().StringVar(&opts.Name, "name", "", "name for the extracted template")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write the template JSON to this path instead of the cache")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newExtractSiteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExtractOptions{RootOptions: rootOpts}
	cmd := &cobra.Command{
		Use:           "site <url>",
		Short:         "Derive a starter template from a site URL",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := uilift.ExtractSite(cmd.Context(), args[0], uilift.WithLogger(opts.Logger))
			return finishExtraction(opts, cmd, result, err)
		},
	}
	cmd.Flags().StringVar(&opts.Name, "name", "", "override the template name")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write the template JSON to this path instead of the cache")
	return cmd
}

// finishExtraction persists the result and reports it. A partial extraction
// still succeeds; its warnings are part of the report.
func finishExtraction(opts *ExtractOptions, cmd *cobra.Command, result *extract.Result, err error) error {
	formatter := opts.formatter(cmd)
	if err != nil {
		return formatter.Failure(ErrorCode(err), err.Error(), nil)
	}

	template := result.Template
	if opts.Name != "" {
		template.Name = opts.Name
	}

	path, err := writeTemplate(opts, template)
	if err != nil {
		return formatter.Failure(ErrorCode(err), err.Error(), nil)
	}

	summary := ExtractionSummary{
		Name:     template.Name,
		Source:   template.Metadata.Source,
		Status:   string(result.Status),
		Screens:  len(template.Screens),
		Nodes:    template.NodeCount(),
		Assets:   len(template.Assets),
		Output:   path,
		Warnings: result.Warnings,
	}
	return formatter.Success(summary, func(w io.Writer) {
		fmt.Fprintf(w, "✓ Extracted %q (%s)\n", summary.Name, summary.Status)
		fmt.Fprintf(w, "  Screens: %d\n", summary.Screens)
		fmt.Fprintf(w, "  Nodes:   %d\n", summary.Nodes)
		fmt.Fprintf(w, "  Assets:  %d\n", summary.Assets)
		for _, warning := range summary.Warnings {
			fmt.Fprintf(w, "  Warning: %s\n", warning)
		}
		fmt.Fprintf(w, "Template written to %s\n", summary.Output)
	})
}

func writeTemplate(opts *ExtractOptions, template *ir.Template) (string, error) {
	if opts.Output != "" {
		data, err := ir.Encode(template)
		if err != nil {
			return "", err
		}
		if err := os.WriteFile(opts.Output, data, 0o644); err != nil {
			return "", &emit.WriteFailureError{Path: opts.Output, Err: err}
		}
		return opts.Output, nil
	}

	s, err := store.New(opts.Config.CacheDir)
	if err != nil {
		return "", err
	}
	path, err := s.Save(template)
	if err != nil {
		return "", &emit.WriteFailureError{Path: s.Dir(), Err: err}
	}
	return path, nil
}
