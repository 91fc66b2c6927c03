// Package sequence groups file names into frame sequences.
//
// A sequence is a family of names that differ only in one embedded number,
// such as shot_001.png, shot_002.png and shot_003.png. The package works in
// three steps:
//
//   - Extract lists every template a single name could belong to.
//   - Aggregate ranks those templates by how many names in the whole
//     collection share them and assigns each name to exactly one template.
//   - FrameSet collects the numbers of each template and renders them as a
//     compact range such as "1-3, 7-15x4".
//
// Everything here is a pure in-memory transformation. Listing directories and
// printing results is left to the callers.
//
// # Usage
//
//	seqs := sequence.Aggregate([]string{"a1.png", "a2.png", "a4.png"})
//	for _, s := range seqs {
//	    fmt.Println(s.Len(), s.Template, s.Range())
//	}
//	// Output: 3 a%d.png 1-2, 4
package sequence
