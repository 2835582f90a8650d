// Package segmenttable admits labeled segments through a range set,
// keeping per-segment metadata for downstream selection.
package segmenttable

import (
	"fmt"
	"sync"

	"github.com/henderiw/rangeset/pkg/rangeset"
	"k8s.io/apimachinery/pkg/labels"
)

type SegmentTable interface {
	Insert(segment int64, r rangeset.Range, lbls labels.Set) (bool, Segment, error)
	InsertWithRatio(segment int64, r rangeset.Range, lbls labels.Set, overlapRatio float64) (bool, Segment, error)

	Get(segment int64) (Segment, error)
	Has(segment int64) bool
	Size() int

	GetAll() Segments
	GetByLabel(selector labels.Selector) Segments
}

func New() SegmentTable {
	return &segmentTable{
		m:      new(sync.RWMutex),
		set:    rangeset.New[int64](),
		labels: map[int64]labels.Set{},
	}
}

type segmentTable struct {
	m      *sync.RWMutex
	set    rangeset.RangeSet[int64]
	labels map[int64]labels.Set
}

func (r *segmentTable) Insert(segment int64, rng rangeset.Range, lbls labels.Set) (bool, Segment, error) {
	return r.InsertWithRatio(segment, rng, lbls, rangeset.DefaultOverlapRatio)
}

func (r *segmentTable) InsertWithRatio(segment int64, rng rangeset.Range, lbls labels.Set, overlapRatio float64) (bool, Segment, error) {
	r.m.Lock()
	defer r.m.Unlock()

	if _, ok := r.labels[segment]; ok {
		return false, nil, fmt.Errorf("insert failed segment %d already claimed", segment)
	}

	overlap, evicted, err := r.set.InsertWithRatio(rng, segment, overlapRatio)
	if err != nil {
		return overlap, nil, err
	}
	if !overlap {
		r.labels[segment] = lbls
		return false, nil, nil
	}
	if evicted != nil {
		dlbls := r.labels[evicted.ID()]
		delete(r.labels, evicted.ID())
		r.labels[segment] = lbls
		return true, NewSegment(evicted.ID(), evicted.Range(), dlbls), nil
	}
	return true, nil, nil
}

func (r *segmentTable) Get(segment int64) (Segment, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	lbls, ok := r.labels[segment]
	if !ok {
		return nil, fmt.Errorf("no match found for: %d", segment)
	}
	iter := r.set.Iterate()
	for iter.Next() {
		if iter.ID() == segment {
			return NewSegment(segment, iter.Range(), lbls), nil
		}
	}
	return nil, fmt.Errorf("no match found for: %d", segment)
}

func (r *segmentTable) Has(segment int64) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.labels[segment]
	return ok
}

func (r *segmentTable) Size() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.set.Size()
}

func (r *segmentTable) GetAll() Segments {
	r.m.RLock()
	defer r.m.RUnlock()

	segments := make(Segments, 0, r.set.Size())
	iter := r.set.Iterate()
	for iter.Next() {
		segments = append(segments, NewSegment(iter.ID(), iter.Range(), r.labels[iter.ID()]))
	}
	return segments
}

func (r *segmentTable) GetByLabel(selector labels.Selector) Segments {
	segments := make(Segments, 0, r.set.Size())

	for _, segment := range r.GetAll() {
		if selector.Matches(segment.Labels()) {
			segments = append(segments, segment)
		}
	}
	return segments
}
