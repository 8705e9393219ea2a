package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"uilift/internal/store"
)

// InspectSummary describes a stored template without applying it anywhere.
type InspectSummary struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Source      string            `json:"source,omitempty"`
	Platform    string            `json:"platform,omitempty"`
	Created     string            `json:"created,omitempty"`
	Screens     []string          `json:"screens"`
	Nodes       int               `json:"nodes"`
	Assets      int               `json:"assets"`
	Colors      map[string]string `json:"colors,omitempty"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "inspect <template.json>",
		Short:         "Summarise a stored template",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(rootOpts, cmd, args[0])
		},
	}
}

func runInspect(opts *RootOptions, cmd *cobra.Command, path string) error {
	formatter := opts.formatter(cmd)

	s, err := store.New(opts.Config.CacheDir)
	if err != nil {
		return formatter.Failure(CodeInternal, err.Error(), nil)
	}
	template, err := s.Load(path)
	if err != nil {
		return formatter.Failure(ErrorCode(err), err.Error(), nil)
	}

	summary := InspectSummary{
		Name:        template.Name,
		Description: template.Description,
		Source:      template.Metadata.Source,
		Platform:    template.Metadata.Platform,
		Created:     template.Metadata.Created,
		Screens:     template.ScreenNames(),
		Nodes:       template.NodeCount(),
		Assets:      len(template.Assets),
		Colors:      template.Style.Colors,
	}
	return formatter.Success(summary, func(w io.Writer) {
		fmt.Fprintf(w, "Template: %s\n", summary.Name)
		if summary.Description != "" {
			fmt.Fprintf(w, "Description: %s\n", summary.Description)
		}
		if summary.Source != "" {
			fmt.Fprintf(w, "Source: %s\n", summary.Source)
		}
		if summary.Platform != "" {
			fmt.Fprintf(w, "Platform: %s\n", summary.Platform)
		}
		if summary.Created != "" {
			fmt.Fprintf(w, "Created: %s\n", summary.Created)
		}
		fmt.Fprintf(w, "Screens: %d\n", len(summary.Screens))
		for _, screen := range summary.Screens {
			fmt.Fprintf(w, "  %s\n", screen)
		}
		fmt.Fprintf(w, "Nodes: %d\n", summary.Nodes)
		fmt.Fprintf(w, "Assets: %d\n", summary.Assets)
		if len(summary.Colors) > 0 {
			fmt.Fprintln(w, "Colors:")
			for _, name := range sortedNames(summary.Colors) {
				fmt.Fprintf(w, "  %s: %s\n", name, summary.Colors[name])
			}
		}
	})
}

func sortedNames(m map[string]string) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
