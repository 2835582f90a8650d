package rangeset

import "fmt"

// Entry pairs a range with the identifier of its owner, e.g. the
// index of a selected segment.
type Entry[T1 any] interface {
	Range() Range
	ID() T1
	String() string
}

type entry[T1 any] struct {
	r  Range
	id T1
}

type Entries[T1 any] []Entry[T1]

func (r entry[T1]) Range() Range { return r.r }
func (r entry[T1]) ID() T1       { return r.id }
func (r entry[T1]) String() string {
	return fmt.Sprintf("range: %s, id: %v", r.r, r.id)
}

func NewEntry[T1 any](rng Range, id T1) Entry[T1] {
	return entry[T1]{
		r:  rng,
		id: id,
	}
}
