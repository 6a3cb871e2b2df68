package cleartree

import (
	"github.com/henderiw/arctable/pkg/arc"
)

// Iterator walks the clear leaves in increasing domain order.
type Iterator struct {
	stack   []*node
	current *node
}

func (r *Iterator) Next() bool {
	for len(r.stack) > 0 {
		n := r.stack[len(r.stack)-1]
		r.stack = r.stack[:len(r.stack)-1]
		if n.isLeaf() {
			r.current = n
			return true
		}
		// right below left so the left subtree pops first
		r.stack = append(r.stack, n.right, n.left)
	}
	return false
}

func (r *Iterator) Segment() arc.Segment {
	return r.current.seg
}
