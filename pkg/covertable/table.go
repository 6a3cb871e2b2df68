package covertable

import (
	"fmt"
	"sort"
	"sync"
)

// Table records every covering segment applied to a clear tree, in
// application order, keyed by a monotonically increasing sequence id.
// Covers are never released: the clear area only shrinks, so the
// table is append-only.
type Table[T1 any] interface {
	Record(d T1) int64
	Get(id int64) (T1, error)
	Has(id int64) bool
	Count() int
	Iterate() *Iterator[T1]
	GetAll() map[int64]T1
}

func NewTable[T1 any]() Table[T1] {
	return &table[T1]{
		m:     new(sync.RWMutex),
		table: map[int64]T1{},
	}
}

type table[T1 any] struct {
	m     *sync.RWMutex
	table map[int64]T1
	next  int64
}

func (r *table[T1]) Record(d T1) int64 {
	r.m.Lock()
	defer r.m.Unlock()

	id := r.next
	r.table[id] = d
	r.next++
	return id
}

func (r *table[T1]) Get(id int64) (T1, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	d, ok := r.table[id]
	if !ok {
		return d, fmt.Errorf("no match found for: %v", id)
	}
	return d, nil
}

func (r *table[T1]) Has(id int64) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.table[id]
	return ok
}

func (r *table[T1]) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.table)
}

func (r *table[T1]) Iterate() *Iterator[T1] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.iterate()
}

func (r *table[T1]) iterate() *Iterator[T1] {
	keys := make([]int64, 0, len(r.table))
	for key := range r.table {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i int, j int) bool {
		return keys[i] < keys[j]
	})

	return &Iterator[T1]{current: -1, keys: keys, table: r.table}
}

func (r *table[T1]) GetAll() map[int64]T1 {
	r.m.RLock()
	defer r.m.RUnlock()

	entries := make(map[int64]T1, len(r.table))

	iter := r.iterate()
	for iter.Next() {
		entries[iter.ID()] = iter.Value()
	}
	return entries
}
