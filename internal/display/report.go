package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/lss/internal/config"
	"github.com/harrison/lss/internal/sequence"
	"gopkg.in/yaml.v3"
)

// Entry is one line of a listing.
type Entry struct {
	Count    int    `json:"count" yaml:"count"`
	Template string `json:"template" yaml:"template"`
	Range    string `json:"range" yaml:"range"`
	Frames   []int  `json:"frames,omitempty" yaml:"frames,omitempty"`
}

// Report is the listing of one path.
type Report struct {
	Path    string  `json:"path" yaml:"path"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// NewReport builds a report from sequences already sorted by template.
func NewReport(path string, seqs []sequence.Sequence) Report {
	entries := make([]Entry, len(seqs))
	for i, s := range seqs {
		entries[i] = Entry{
			Count:    s.Len(),
			Template: s.Template,
			Range:    s.Range(),
			Frames:   s.Frames.Sorted(),
		}
	}
	return Report{Path: path, Entries: entries}
}

// Total returns the number of entries the listing covers.
func (r Report) Total() int {
	total := 0
	for _, e := range r.Entries {
		total += e.Count
	}
	return total
}

// Header returns the title line of the text format. Path separators are
// shown as " >" breadcrumbs.
func (r Report) Header() string {
	return "Smart Listing: " + strings.ReplaceAll(r.Path, "/", " >")
}

// Render writes the report in format. colorize only affects the text format.
func (r Report) Render(out io.Writer, format string, colorize bool) error {
	switch format {
	case config.FormatText, "":
		return r.renderText(out, colorize)
	case config.FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode json report: %w", err)
		}
		return nil
	case config.FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode yaml report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func (r Report) renderText(out io.Writer, colorize bool) error {
	count := newColor(colorize, color.FgCyan)
	rng := newColor(colorize, color.FgGreen)
	header := newColor(colorize, color.Bold)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(header.Sprint(r.Header()))
	b.WriteString("\n\n")

	for _, e := range r.Entries {
		b.WriteString(count.Sprint(e.Count))
		b.WriteString(" ")
		b.WriteString(e.Template)
		if e.Range != "" {
			b.WriteString(" ")
			b.WriteString(rng.Sprint(e.Range))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(out, b.String())
	return err
}

// newColor returns a color whose output is forced on or off regardless of
// the package-wide TTY detection.
func newColor(enabled bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
