package sequence

import (
	"fmt"
	"strconv"
)

// Priority breaks ties between candidates whose templates are equally common.
// Higher wins.
type Priority int

const (
	// PriorityNonPadded is a run replaced by %d.
	PriorityNonPadded Priority = 0
	// PriorityPadded is a run replaced by a fixed-width %0Nd.
	PriorityPadded Priority = 1
	// PriorityWhole is the file name itself, kept as a standalone entry.
	PriorityWhole Priority = 2
)

// Candidate is one possible interpretation of a file name.
type Candidate struct {
	// Template is the name with one digit run replaced by a placeholder,
	// or the unmodified name for PriorityWhole.
	Template string
	Priority Priority
	// Frame is the value of the replaced run. Only meaningful when HasFrame is set.
	Frame    int
	HasFrame bool
}

// digitRun is the half-open byte span [start, end) of a maximal run of ASCII digits.
type digitRun struct {
	start, end int
}

// findDigitRuns returns every maximal run of ASCII digits in s, left to right.
func findDigitRuns(s string) []digitRun {
	var runs []digitRun
	for i := 0; i < len(s); {
		if !isDigit(s[i]) {
			i++
			continue
		}
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		runs = append(runs, digitRun{start: i, end: j})
		i = j
	}
	return runs
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Extract returns every candidate template for filename.
//
// The whole-name candidate always comes first, followed by one non-padded
// candidate per digit run that %d reproduces exactly (no leading zero), then
// one padded candidate per digit run at least two characters wide. A run too
// large to fit an int yields no candidates of its own.
func Extract(filename string) []Candidate {
	runs := findDigitRuns(filename)
	candidates := make([]Candidate, 0, 1+2*len(runs))
	candidates = append(candidates, Candidate{Template: filename, Priority: PriorityWhole})

	for _, r := range runs {
		digits := filename[r.start:r.end]
		// A lone "0" is reproduced by %d, so it stays a non-padded candidate
		// even though it starts with a zero.
		if digits[0] == '0' && len(digits) > 1 {
			continue
		}
		frame, err := strconv.Atoi(digits)
		if err != nil {
			continue
		}
		candidates = append(candidates, Candidate{
			Template: filename[:r.start] + "%d" + filename[r.end:],
			Priority: PriorityNonPadded,
			Frame:    frame,
			HasFrame: true,
		})
	}

	for _, r := range runs {
		width := r.end - r.start
		if width < 2 {
			continue
		}
		frame, err := strconv.Atoi(filename[r.start:r.end])
		if err != nil {
			continue
		}
		candidates = append(candidates, Candidate{
			Template: filename[:r.start] + fmt.Sprintf("%%0%dd", width) + filename[r.end:],
			Priority: PriorityPadded,
			Frame:    frame,
			HasFrame: true,
		})
	}

	return candidates
}
