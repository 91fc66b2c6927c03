package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for lss
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lss [path]",
		Short: "Smart listing that groups numbered files into sequences",
		Long: `lss lists a directory the way ls does, but collapses files that differ
only in one embedded frame number into a single sequence entry.

  shot_001.png shot_002.png shot_003.png  ->  3 shot_%03d.png 1-3

No delimiter or zero-padding convention is assumed: every digit run of every
name is considered, and each file joins the pattern most other files share.
Ranges show gaps and strides, e.g. "1-2, 4-5" or "5-15x5".

Configuration is loaded from $LSS_CONFIG or ~/.config/lss/config.yaml if
present. CLI flags override configuration file settings.

Examples:
  lss                         # List the current directory
  lss renders/shot_010        # List another directory
  lss -f json renders         # Machine readable output
  lss --ext exr --files-only  # Only EXR frames
  lss -w renders              # Keep listing as files appear
  lss -o listing.txt renders  # Write the listing to a file`,
		Version: Version,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runList,
		// main prints the error; silence cobra's copy and the usage text
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().String("config", "", "Path to config file (default: $LSS_CONFIG or ~/.config/lss/config.yaml)")
	cmd.Flags().String("log-level", "", "Diagnostic verbosity on stderr (trace, debug, info, warn, error)")
	cmd.Flags().StringP("format", "f", "", "Output format (text, json, yaml)")
	cmd.Flags().String("color", "", "Colorize text output (auto, always, never)")
	cmd.Flags().Bool("hidden", true, "Include entries starting with '.'")
	cmd.Flags().Bool("files-only", false, "Skip subdirectories")
	cmd.Flags().StringSlice("ext", nil, "Only list files with these extensions (repeatable, e.g. --ext exr,dpx)")
	cmd.Flags().Int("workers", 0, "Goroutines used to group names (0 = sequential)")
	cmd.Flags().StringP("output", "o", "", "Write the listing to this file instead of stdout")
	cmd.Flags().BoolP("watch", "w", false, "Refresh the listing whenever the directory changes")
	cmd.Flags().Duration("debounce", 0, "Quiet period before a watch refresh (e.g. 250ms)")

	return cmd
}
