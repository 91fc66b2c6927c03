// Package display renders sequence listings and user-facing warnings.
//
// A Report is built from the grouped sequences of one path and written in one
// of three formats:
//
//	report := display.NewReport(path, seqs)
//	err := report.Render(os.Stdout, config.FormatText, display.ShouldColor(config.ColorAuto, os.Stdout))
//
// The text format mirrors a plain directory listing:
//
//	Smart Listing: renders >shot_010
//
//	3 shot_%03d.png 1-3
//	1 notes.txt
//
// json and yaml carry the same fields plus the individual frame numbers.
// All functions accept io.Writer for testability.
package display
