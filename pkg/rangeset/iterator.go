package rangeset

type Iterator[T1 any] struct {
	current int
	entries Entries[T1]
}

func (r *Iterator[T1]) Value() Entry[T1] {
	return r.entries[r.current]
}

func (r *Iterator[T1]) Range() Range {
	return r.entries[r.current].Range()
}

func (r *Iterator[T1]) ID() T1 {
	return r.entries[r.current].ID()
}

func (r *Iterator[T1]) Next() bool {
	r.current++
	return r.current < len(r.entries)
}
