package cleartree

import (
	"fmt"
	"sync"

	"github.com/henderiw/arctable/pkg/arc"
)

// ClearTree tracks the portion of the cyclic unit domain not yet
// covered by any segment. Its leaves, read left to right, partition
// the remaining clear area into disjoint segments in increasing
// domain order. The clear area only shrinks: once covered, a
// sub-range never becomes clear again. An exhausted tree (no clear
// area left) stays exhausted.
//
// The tree is an exclusively-owned, strictly sequential structure;
// it is not designed for concurrent mutation.
type ClearTree interface {
	Cover(s arc.Segment) error
	LargestClearArc() arc.Segment
	Leaves() []arc.Segment
	TotalClear() float64
	Size() int
	IsExhausted() bool
	Iterate() *Iterator
	PrintNodes()
}

// New returns a tree seeded with the full domain as one clear leaf.
func New() ClearTree {
	return &clearTree{
		m:    new(sync.RWMutex),
		root: &node{seg: arc.Full()},
	}
}

type clearTree struct {
	m    *sync.RWMutex
	root *node // nil once the whole domain is covered
}

// node is one tree vertex. A leaf (both children nil) holds a
// currently clear segment. An internal node always has exactly two
// children covering disjoint sub-ranges of its original range in
// domain order; its own segment is historical and is never read once
// children exist, except as an upper bound for the overlap checks.
type node struct {
	seg   arc.Segment
	left  *node
	right *node
}

func (n *node) isLeaf() bool {
	return n.left == nil
}

// Cover removes s from the clear area. Covering a segment that does
// not overlap any clear leaf is a no-op, as is any cover once the
// tree is exhausted. The segment must satisfy the domain invariant;
// a violation is a contract error and is rejected before the tree is
// touched.
func (r *clearTree) Cover(s arc.Segment) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("cover failed: %w", err)
	}

	r.m.Lock()
	defer r.m.Unlock()

	if r.root == nil {
		return nil
	}
	r.root = cover(r.root, s)
	return nil
}

// cover applies covering segment s to the subtree rooted at n and
// returns the node that must take n's place in the parent's slot.
// A nil return means the subtree was fully subsumed and deleted.
//
// The checks run in order on the current segment, and the two trim
// checks are independent of the subsume/splice checks that follow:
// more than one may fire for the same call.
func cover(n *node, s arc.Segment) *node {
	wasLeaf := n.isLeaf()

	// covering segment overlaps the start of this range: trim the
	// left bound up to the end of the cover
	if s.OverlapsStartOf(n.seg) {
		n.seg = n.seg.TrimmedLeft(s.X2)
	}

	// covering segment sits strictly inside a clear leaf: split the
	// leaf into the two remainders on either side
	if wasLeaf && s.InMiddleOf(n.seg) {
		n.left = &node{seg: arc.Of(n.seg.X1, s.X1)}
		n.right = &node{seg: arc.Of(s.X2, n.seg.X2)}
	}

	// covering segment overlaps the end of this range: trim the
	// right bound down to the start of the cover
	if s.OverlapsEndOf(n.seg) {
		n.seg = n.seg.TrimmedRight(s.X1)
	}

	// the whole remaining range is covered: drop the subtree
	if n.seg.CoveredBy(s) {
		return nil
	}

	if !n.isLeaf() {
		// a fully subsumed child takes its whole subtree with it and
		// leaves this node with a single child, which is not allowed:
		// splice this node out and promote the sibling. The cover may
		// reach into the sibling as well, so it is applied there
		// before the sibling takes this node's place.
		if n.left.seg.CoveredBy(s) {
			if s.Overlaps(n.right.seg) {
				return cover(n.right, s)
			}
			return n.right
		}
		if n.right.seg.CoveredBy(s) {
			if s.Overlaps(n.left.seg) {
				return cover(n.left, s)
			}
			return n.left
		}
		// overlap is checked here, at the parent, so a non-overlapping
		// child is never entered. A descend can still empty the
		// child's whole subtree through a deeper splice: after a
		// splice the child's vestigial segment is a strict superset
		// of its subtree's hull, so the subsume checks above may not
		// fire for a cover that subsumes the hull. A nil return is
		// that case; the sibling is promoted exactly as above.
		if s.Overlaps(n.left.seg) {
			if n.left = cover(n.left, s); n.left == nil {
				if s.Overlaps(n.right.seg) {
					return cover(n.right, s)
				}
				return n.right
			}
		}
		if s.Overlaps(n.right.seg) {
			if n.right = cover(n.right, s); n.right == nil {
				return n.left
			}
		}
	}
	return n
}

// LargestClearArc returns the largest remaining clear arc. The two
// boundary leaves are fused into one wrap-around arc when together
// they beat the largest interior leaf; the wrap answer is expressed
// as the pair (rightmost.X1, leftmost.X2) crossing the join point,
// with the combined length. An exhausted tree yields the zero arc at
// DomainMin; an untouched tree yields the full domain.
func (r *clearTree) LargestClearArc() arc.Segment {
	r.m.RLock()
	defer r.m.RUnlock()

	if r.root == nil {
		return arc.Zero()
	}

	largest := arc.Zero()
	leftmost := arc.Segment{X1: arc.DomainMax, X2: arc.DomainMax}
	rightmost := arc.Segment{X1: arc.DomainMin, X2: arc.DomainMin}

	iter := r.iterate()
	for iter.Next() {
		seg := iter.Segment()
		if seg.Length > largest.Length {
			largest = seg
		}
		if seg.X1 < leftmost.X1 {
			leftmost = seg
		}
		if seg.X2 > rightmost.X2 {
			rightmost = seg
		}
	}

	// both boundary leaves touch the domain ends: candidate wrap arc,
	// unless they are the one untouched full-domain leaf
	if leftmost.X1 == arc.DomainMin && rightmost.X2 == arc.DomainMax && leftmost != rightmost {
		if wrapLength := leftmost.Length + rightmost.Length; wrapLength > largest.Length {
			return arc.Segment{X1: rightmost.X1, X2: leftmost.X2, Length: wrapLength}
		}
	}
	return largest
}

// Leaves returns the clear segments in increasing domain order.
func (r *clearTree) Leaves() []arc.Segment {
	r.m.RLock()
	defer r.m.RUnlock()

	segs := []arc.Segment{}
	iter := r.iterate()
	for iter.Next() {
		segs = append(segs, iter.Segment())
	}
	return segs
}

// TotalClear returns the combined length of all clear segments.
func (r *clearTree) TotalClear() float64 {
	r.m.RLock()
	defer r.m.RUnlock()

	var total float64
	iter := r.iterate()
	for iter.Next() {
		total += iter.Segment().Length
	}
	return total
}

// Size returns the number of clear leaves.
func (r *clearTree) Size() int {
	r.m.RLock()
	defer r.m.RUnlock()

	var size int
	iter := r.iterate()
	for iter.Next() {
		size++
	}
	return size
}

// IsExhausted reports whether the whole domain has been covered.
func (r *clearTree) IsExhausted() bool {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.root == nil
}

func (r *clearTree) Iterate() *Iterator {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.iterate()
}

func (r *clearTree) iterate() *Iterator {
	iter := &Iterator{}
	if r.root != nil {
		iter.stack = []*node{r.root}
	}
	return iter
}

func (r *clearTree) PrintNodes() {
	r.m.RLock()
	defer r.m.RUnlock()

	printNodes(r.root, 0)
}

func printNodes(n *node, depth int) {
	if n == nil {
		return
	}
	kind := "node"
	if n.isLeaf() {
		kind = "leaf"
	}
	fmt.Printf("%*s%s %s\n", 2*depth, "", kind, n.seg)
	printNodes(n.left, depth+1)
	printNodes(n.right, depth+1)
}
