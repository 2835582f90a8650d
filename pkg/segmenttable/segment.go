package segmenttable

import (
	"fmt"

	"github.com/henderiw/rangeset/pkg/rangeset"
	"k8s.io/apimachinery/pkg/labels"
)

type Segment interface {
	Index() int64
	Range() rangeset.Range
	Labels() labels.Set
	String() string
	Equal(s2 Segment) bool
}

type segment struct {
	index  int64
	r      rangeset.Range
	labels labels.Set
}

type Segments []Segment

func (r segment) Index() int64          { return r.index }
func (r segment) Range() rangeset.Range { return r.r }
func (r segment) Labels() labels.Set    { return r.labels }
func (r segment) String() string {
	return fmt.Sprintf("segment: %d, range: %s, labels: %s", r.index, r.r, r.labels.String())
}
func (r segment) Equal(s2 Segment) bool {
	if r.Index() == s2.Index() &&
		r.Range() == s2.Range() &&
		r.labels.String() == s2.Labels().String() {
		return true
	}
	return false
}

func NewSegment(index int64, rng rangeset.Range, lbls labels.Set) Segment {
	return segment{
		index:  index,
		r:      rng,
		labels: lbls,
	}
}
