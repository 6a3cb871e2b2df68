package arctable

import (
	"fmt"

	"github.com/henderiw/arctable/pkg/arc"
	"github.com/henderiw/arctable/pkg/cleartree"
	"github.com/henderiw/arctable/pkg/covertable"
	"github.com/henderiw/arctable/pkg/record"
	"k8s.io/apimachinery/pkg/labels"
)

// Cover is one applied covering segment together with the labels of
// the record that produced it.
type Cover struct {
	Segment arc.Segment
	Labels  labels.Set
}

func (c Cover) String() string {
	return fmt.Sprintf("segment: %s, labels: %s", c.Segment, c.Labels.String())
}

// ArcTable combines the clear tree with an audit table of every
// cover applied to it.
type ArcTable interface {
	Cover(x1, x2 float64, d labels.Set) error
	CoverRecord(rec record.Record, d labels.Set) error
	LargestClearArc() arc.Segment
	Leaves() []arc.Segment
	TotalClear() float64
	IsExhausted() bool
	Count() int
	GetAll() map[int64]Cover
	GetByLabel(selector labels.Selector) map[int64]Cover
}

func New() ArcTable {
	return &arcTable{
		tree:  cleartree.New(),
		table: covertable.NewTable[Cover](),
	}
}

type arcTable struct {
	tree  cleartree.ClearTree
	table covertable.Table[Cover]
}

// Cover validates the segment (x1, x2), removes it from the clear
// area and records it with the given labels. Segments with x1 >= x2
// or bounds outside the domain never reach the tree.
func (r *arcTable) Cover(x1, x2 float64, d labels.Set) error {
	s, err := arc.New(x1, x2)
	if err != nil {
		return err
	}
	return r.cover(s, d)
}

// CoverRecord applies all component segments of a parsed input
// record, labeling each component identically. A wrap record
// contributes two components.
func (r *arcTable) CoverRecord(rec record.Record, d labels.Set) error {
	for _, s := range rec.Segments() {
		if err := r.cover(s, d); err != nil {
			return err
		}
	}
	return nil
}

func (r *arcTable) cover(s arc.Segment, d labels.Set) error {
	if err := r.tree.Cover(s); err != nil {
		return err
	}
	r.table.Record(Cover{Segment: s, Labels: d})
	return nil
}

func (r *arcTable) LargestClearArc() arc.Segment {
	return r.tree.LargestClearArc()
}

func (r *arcTable) Leaves() []arc.Segment {
	return r.tree.Leaves()
}

func (r *arcTable) TotalClear() float64 {
	return r.tree.TotalClear()
}

func (r *arcTable) IsExhausted() bool {
	return r.tree.IsExhausted()
}

func (r *arcTable) Count() int {
	return r.table.Count()
}

func (r *arcTable) GetAll() map[int64]Cover {
	return r.table.GetAll()
}

func (r *arcTable) GetByLabel(selector labels.Selector) map[int64]Cover {
	entries := map[int64]Cover{}

	iter := r.table.Iterate()
	for iter.Next() {
		if selector.Matches(iter.Value().Labels) {
			entries[iter.ID()] = iter.Value()
		}
	}
	return entries
}
