package sequence

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// FrameSet is a set of frame numbers belonging to one template.
// The zero value is not usable; create one with NewFrameSet.
type FrameSet struct {
	frames map[int]struct{}
}

// NewFrameSet returns a FrameSet holding frames.
func NewFrameSet(frames ...int) *FrameSet {
	fs := &FrameSet{frames: make(map[int]struct{}, len(frames))}
	for _, f := range frames {
		fs.Add(f)
	}
	return fs
}

// Add inserts frame. Adding a frame twice has no effect.
func (fs *FrameSet) Add(frame int) {
	fs.frames[frame] = struct{}{}
}

// Count returns the number of distinct frames, which may be zero.
func (fs *FrameSet) Count() int {
	return len(fs.frames)
}

// Len returns the number of entries the set stands for. A template with no
// frames is a single standalone file, so Len never returns less than 1.
func (fs *FrameSet) Len() int {
	return max(1, fs.Count())
}

// Sorted returns the frames in ascending order.
func (fs *FrameSet) Sorted() []int {
	out := make([]int, 0, len(fs.frames))
	for f := range fs.frames {
		out = append(out, f)
	}
	sort.Ints(out)
	return out
}

// String renders the set as a range expression. See Compress.
func (fs *FrameSet) String() string {
	return Compress(fs.Sorted())
}

// Subrange is a run of frames from Start to End sharing a constant Step.
// A single frame has Start == End.
type Subrange struct {
	Start, End, Step int
}

// String formats the subrange as "start", "start-end" or "start-endxstep".
func (s Subrange) String() string {
	return FormatSubrange(s.Start, s.End, s.Step)
}

// FormatSubrange formats one subrange.
func FormatSubrange(start, end, step int) string {
	switch {
	case start == end:
		return strconv.Itoa(start)
	case step == 1:
		return fmt.Sprintf("%d-%d", start, end)
	default:
		return fmt.Sprintf("%d-%dx%d", start, end, step)
	}
}

// splitState tracks the subrange currently being built by Subranges.
type splitState int

const (
	stateNoSubrange splitState = iota
	stateOnePoint
	stateStepKnown
)

// Subranges splits ascending, duplicate-free frames into maximal runs of
// equal step. The second frame of a run always fixes its step, so any two
// frames form a run; a frame that breaks the step closes the run at the
// previous frame and opens a new one.
func Subranges(frames []int) []Subrange {
	var (
		out   []Subrange
		state = stateNoSubrange
		cur   Subrange
	)

	for _, f := range frames {
		switch state {
		case stateNoSubrange:
			cur = Subrange{Start: f, End: f}
			state = stateOnePoint
		case stateOnePoint:
			cur.Step = f - cur.End
			cur.End = f
			state = stateStepKnown
		case stateStepKnown:
			if cur.End+cur.Step == f {
				cur.End = f
				continue
			}
			out = append(out, cur)
			cur = Subrange{Start: f, End: f}
			state = stateOnePoint
		}
	}

	if state != stateNoSubrange {
		out = append(out, cur)
	}
	return out
}

// Compress renders ascending, duplicate-free frames as a comma separated
// range expression, e.g. {1, 2, 3, 5, 9} renders as "1-3, 5-9x4".
// No frames yield "".
func Compress(frames []int) string {
	subranges := Subranges(frames)
	parts := make([]string, len(subranges))
	for i, s := range subranges {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}
