package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// maxWarningFiles caps how many names a warning lists before summarizing.
const maxWarningFiles = 10

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning, in yellow when colorize is set
func (w Warning) Display(out io.Writer, colorize bool) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		if len(w.Files) == 1 {
			b.WriteString("    Affected file:\n")
		} else {
			b.WriteString("    Affected files:\n")
		}

		shown := w.Files
		if len(shown) > maxWarningFiles {
			shown = shown[:maxWarningFiles]
		}
		for i, file := range shown {
			b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, file))
		}
		if rest := len(w.Files) - len(shown); rest > 0 {
			b.WriteString(fmt.Sprintf("      ... and %d more\n", rest))
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	fmt.Fprint(out, newColor(colorize, color.FgYellow).Sprint(b.String()))
}

// WarnEmptyListing creates a warning for a path that produced no entries.
// skipped holds the names the active filters removed.
func WarnEmptyListing(path string, skipped []string) Warning {
	w := Warning{
		Title: fmt.Sprintf("No entries found in %s", path),
	}
	if len(skipped) > 0 {
		w.Message = "Every entry was removed by the active filters"
		w.Files = skipped
		w.Suggestion = "Check --ext, --files-only and --hidden"
	}
	return w
}
