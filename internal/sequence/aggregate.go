package sequence

import (
	"sort"
	"sync"
)

// Sequence is one entry of the listing: a template and the frames of every
// file assigned to it.
type Sequence struct {
	Template string
	Frames   *FrameSet
}

// Len returns the number of files in the sequence, at least 1.
func (s Sequence) Len() int {
	return s.Frames.Len()
}

// Range returns the rendered frame range. Standalone files have an empty range.
func (s Sequence) Range() string {
	return s.Frames.String()
}

// Popularity counts, for each template, how many candidates across the whole
// collection offered it.
type Popularity map[string]int

// Tally builds the popularity table for filenames. A name that offers the
// same template twice is counted twice.
func Tally(filenames []string) Popularity {
	pop := make(Popularity)
	for _, name := range filenames {
		pop.add(Extract(name))
	}
	return pop
}

func (p Popularity) add(candidates []Candidate) {
	for _, c := range candidates {
		p[c.Template]++
	}
}

// Best returns the candidate with the highest (popularity, priority). On a
// full tie the earliest candidate wins, so the leftmost digit run is preferred.
// candidates must not be empty.
func (p Popularity) Best(candidates []Candidate) Candidate {
	best := candidates[0]
	bestCount := p[best.Template]
	for _, c := range candidates[1:] {
		count := p[c.Template]
		if count > bestCount || (count == bestCount && c.Priority > best.Priority) {
			best, bestCount = c, count
		}
	}
	return best
}

// Select assigns filename to its best template.
func (p Popularity) Select(filename string) Candidate {
	return p.Best(Extract(filename))
}

// Aggregate groups filenames into sequences sorted by template.
// Duplicate names are ignored and input order does not affect the result.
func Aggregate(filenames []string) []Sequence {
	names := uniqueNames(filenames)
	pop := Tally(names)

	groups := make(map[string]*FrameSet)
	for _, name := range names {
		accumulate(groups, pop.Select(name))
	}
	return sortedSequences(groups)
}

// AggregateParallel is Aggregate spread over up to workers goroutines.
// It returns the same result as Aggregate. workers < 2 runs sequentially.
func AggregateParallel(filenames []string, workers int) []Sequence {
	names := uniqueNames(filenames)
	if workers < 2 || len(names) < 2 {
		return Aggregate(names)
	}
	chunks := split(names, workers)

	// Pass 1: per-chunk tallies merged into one read-only table.
	partials := make([]Popularity, len(chunks))
	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		go func(i int, chunk []string) {
			defer wg.Done()
			partials[i] = Tally(chunk)
		}(i, chunk)
	}
	wg.Wait()

	pop := make(Popularity)
	for _, part := range partials {
		for tmpl, n := range part {
			pop[tmpl] += n
		}
	}

	// Pass 2: selection reads pop only.
	selected := make([][]Candidate, len(chunks))
	for i, chunk := range chunks {
		wg.Add(1)
		go func(i int, chunk []string) {
			defer wg.Done()
			picks := make([]Candidate, len(chunk))
			for j, name := range chunk {
				picks[j] = pop.Select(name)
			}
			selected[i] = picks
		}(i, chunk)
	}
	wg.Wait()

	// Pass 3: accumulation.
	groups := make(map[string]*FrameSet)
	for _, picks := range selected {
		for _, c := range picks {
			accumulate(groups, c)
		}
	}
	return sortedSequences(groups)
}

func accumulate(groups map[string]*FrameSet, c Candidate) {
	fs, ok := groups[c.Template]
	if !ok {
		fs = NewFrameSet()
		groups[c.Template] = fs
	}
	if c.HasFrame {
		fs.Add(c.Frame)
	}
}

func sortedSequences(groups map[string]*FrameSet) []Sequence {
	out := make([]Sequence, 0, len(groups))
	for tmpl, fs := range groups {
		out = append(out, Sequence{Template: tmpl, Frames: fs})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Template < out[j].Template
	})
	return out
}

// uniqueNames returns the distinct names in ascending order.
func uniqueNames(filenames []string) []string {
	seen := make(map[string]struct{}, len(filenames))
	out := make([]string, 0, len(filenames))
	for _, name := range filenames {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// split divides names into at most n contiguous chunks of near-equal size.
func split(names []string, n int) [][]string {
	if n > len(names) {
		n = len(names)
	}
	size := (len(names) + n - 1) / n
	chunks := make([][]string, 0, n)
	for start := 0; start < len(names); start += size {
		end := min(start+size, len(names))
		chunks = append(chunks, names[start:end])
	}
	return chunks
}
