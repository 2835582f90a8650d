// Package rangeset maintains a sorted set of mutually compatible spans
// while candidate spans arrive one at a time. A candidate is admitted,
// rejected, or admitted while evicting one existing neighbor, depending
// on how much of a span's own length the overlap covers.
package rangeset

import (
	"fmt"
	"slices"
	"sort"
	"sync"
)

// DefaultOverlapRatio is the fraction of a span's own length that an
// intersection must exceed before it counts as a disqualifying overlap.
// Used by Insert when the caller does not supply a ratio of its own.
const DefaultOverlapRatio = 0.25

type RangeSet[T1 any] interface {
	// Insert is InsertWithRatio at DefaultOverlapRatio.
	Insert(q Range, id T1) (bool, Entry[T1], error)
	// InsertWithRatio classifies q against the current content. It returns
	// (false, nil, nil) when q was admitted without conflict, (true, nil, nil)
	// when q was rejected (or admitted against two conflicting neighbors is
	// not possible, so the set stays untouched), and (true, evicted, nil)
	// when q was admitted and pushed the returned entry out.
	InsertWithRatio(q Range, id T1, overlapRatio float64) (bool, Entry[T1], error)

	Iterate() *Iterator[T1]

	Size() int
	Ranges() []Range
	IDs() []T1
	Entries() Entries[T1]

	// Validate checks the sorted invariant over the whole set.
	Validate() error
}

func New[T1 any]() RangeSet[T1] {
	return &rangeSet[T1]{
		m:       new(sync.RWMutex),
		entries: Entries[T1]{},
	}
}

type rangeSet[T1 any] struct {
	m       *sync.RWMutex
	entries Entries[T1]
}

func (r *rangeSet[T1]) Insert(q Range, id T1) (bool, Entry[T1], error) {
	return r.InsertWithRatio(q, id, DefaultOverlapRatio)
}

func (r *rangeSet[T1]) InsertWithRatio(q Range, id T1, overlapRatio float64) (bool, Entry[T1], error) {
	r.m.Lock()
	defer r.m.Unlock()

	if !q.IsValid() {
		return false, nil, fmt.Errorf("%w: %s", ErrInvalidRange, q)
	}
	if overlapRatio <= 0 || overlapRatio > 1 {
		return false, nil, fmt.Errorf("%w: got %g", ErrInvalidRatio, overlapRatio)
	}

	idx := r.search(q)
	if len(r.entries) == 0 {
		r.insertAt(idx, NewEntry(q, id))
		return false, nil, nil
	}
	if err := r.checkSorted(idx); err != nil {
		return false, nil, err
	}

	// overlapping relative to the query's own length: too much of the
	// candidate is already covered, drop it outright
	if idx > 0 {
		left := r.entries[idx-1].Range()
		if left.End-q.Start > q.Length()*overlapRatio {
			return true, nil, nil
		}
	}
	if idx < len(r.entries) {
		right := r.entries[idx].Range()
		if q.End-right.Start > q.Length()*overlapRatio {
			return true, nil, nil
		}
	}

	// overlapping relative to each neighbor's own length
	overlapLeft := false
	if idx > 0 {
		left := r.entries[idx-1].Range()
		overlapLeft = left.End-q.Start > left.Length()*overlapRatio
	}
	overlapRight := false
	if idx < len(r.entries) {
		right := r.entries[idx].Range()
		overlapRight = q.End-right.Start > right.Length()*overlapRatio
	}

	// a candidate can evict a neighbor only when it conflicts with exactly
	// one side; one insertion never removes two entries
	switch {
	case overlapLeft && !overlapRight:
		r.insertAt(idx, NewEntry(q, id))
		return true, r.removeAt(idx - 1), nil
	case overlapRight && !overlapLeft:
		r.insertAt(idx, NewEntry(q, id))
		return true, r.removeAt(idx + 1), nil
	case overlapLeft && overlapRight:
		return true, nil, nil
	default:
		r.insertAt(idx, NewEntry(q, id))
		return false, nil, nil
	}
}

// search returns the leftmost position where q keeps the entries sorted
// by the (start, end) pair ordering.
func (r *rangeSet[T1]) search(q Range) int {
	return sort.Search(len(r.entries), func(i int) bool {
		return !r.entries[i].Range().Less(q)
	})
}

func (r *rangeSet[T1]) insertAt(idx int, e Entry[T1]) {
	r.entries = slices.Insert(r.entries, idx, e)
}

func (r *rangeSet[T1]) removeAt(idx int) Entry[T1] {
	e := r.entries[idx]
	r.entries = slices.Delete(r.entries, idx, idx+1)
	return e
}

// checkSorted verifies the two entries consulted around idx are still
// ordered before any mutation happens.
func (r *rangeSet[T1]) checkSorted(idx int) error {
	if idx > 0 && idx < len(r.entries) {
		if r.entries[idx].Range().Less(r.entries[idx-1].Range()) {
			return fmt.Errorf("%w: %s sorts before %s", ErrInvariantViolation,
				r.entries[idx].Range(), r.entries[idx-1].Range())
		}
	}
	return nil
}

func (r *rangeSet[T1]) Iterate() *Iterator[T1] {
	r.m.RLock()
	defer r.m.RUnlock()

	return &Iterator[T1]{current: -1, entries: slices.Clone(r.entries)}
}

func (r *rangeSet[T1]) Size() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.entries)
}

func (r *rangeSet[T1]) Ranges() []Range {
	r.m.RLock()
	defer r.m.RUnlock()

	ranges := make([]Range, 0, len(r.entries))
	for _, e := range r.entries {
		ranges = append(ranges, e.Range())
	}
	return ranges
}

func (r *rangeSet[T1]) IDs() []T1 {
	r.m.RLock()
	defer r.m.RUnlock()

	ids := make([]T1, 0, len(r.entries))
	for _, e := range r.entries {
		ids = append(ids, e.ID())
	}
	return ids
}

func (r *rangeSet[T1]) Entries() Entries[T1] {
	r.m.RLock()
	defer r.m.RUnlock()

	return slices.Clone(r.entries)
}

func (r *rangeSet[T1]) Validate() error {
	r.m.RLock()
	defer r.m.RUnlock()

	for i, e := range r.entries {
		if !e.Range().IsValid() {
			return fmt.Errorf("%w: entry %d has range %s", ErrInvariantViolation, i, e.Range())
		}
		if i > 0 && e.Range().Less(r.entries[i-1].Range()) {
			return fmt.Errorf("%w: entry %d sorts before its predecessor", ErrInvariantViolation, i)
		}
	}
	return nil
}
