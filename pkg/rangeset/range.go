package rangeset

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is a (start, end) span over a timeline or token index, with
// start <= end. Ranges order lexicographically on (start, end).
type Range struct {
	Start float64
	End   float64
}

func RangeFrom(start, end float64) Range {
	return Range{Start: start, End: end}
}

// ParseRange parses a span of the form "start-end", e.g. "2.5-10".
// The start may be negative, as in "-3-7"; a negative end cannot be
// expressed in this form.
func ParseRange(s string) (Range, error) {
	var r Range
	h := strings.LastIndexByte(s, '-')
	if h == -1 {
		return r, fmt.Errorf("no hyphen in range %q", s)
	}
	from, to := s[:h], s[h+1:]
	start, err := strconv.ParseFloat(from, 64)
	if err != nil {
		return r, fmt.Errorf("invalid start %q in range %q", from, s)
	}
	end, err := strconv.ParseFloat(to, 64)
	if err != nil {
		return r, fmt.Errorf("invalid end %q in range %q", to, s)
	}
	r = Range{Start: start, End: end}
	if !r.IsValid() {
		return Range{}, fmt.Errorf("invalid range %q: start is bigger then end", s)
	}
	return r, nil
}

func (r Range) String() string {
	return fmt.Sprintf("%g-%g", r.Start, r.End)
}

func (r Range) IsValid() bool {
	return r.Start <= r.End
}

func (r Range) IsZero() bool {
	return r == Range{}
}

func (r Range) Length() float64 {
	return r.End - r.Start
}

// Less orders ranges by start, then by end.
func (r Range) Less(other Range) bool {
	if r.Start != other.Start {
		return r.Start < other.Start
	}
	return r.End < other.End
}
