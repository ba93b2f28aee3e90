package astar

import (
	"container/heap"

	"github.com/katalvlaran/torus/torusgraph"
)

// openItem is a node waiting in the open set with its current f-score.
// seq is assigned once, when the node first enters the open set, and breaks f ties.
type openItem struct {
	id    torusgraph.ID
	f     int
	seq   uint64
	index int // position in openQueue, maintained by Swap/Push/Pop
}

// openQueue is a min-heap of *openItem ordered by (f, seq) ascending.
type openQueue []*openItem

// Len returns the number of items in the heap.
func (q openQueue) Len() int { return len(q) }

// Less orders by f, then by first insertion.
func (q openQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}

	return q[i].seq < q[j].seq
}

// Swap swaps two elements and keeps their indices current.
func (q openQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

// Push adds x, which must be *openItem. Called by heap.Push.
func (q *openQueue) Push(x interface{}) {
	item := x.(*openItem)
	item.index = len(*q)
	*q = append(*q, item)
}

// Pop removes and returns the last element. Called by heap.Pop.
func (q *openQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]

	return item
}

// frontier is the open set: a heap for selection plus an index for membership
// and in-place score decrease.
type frontier struct {
	queue   openQueue
	items   map[torusgraph.ID]*openItem
	nextSeq uint64
}

func newFrontier() *frontier {
	return &frontier{items: make(map[torusgraph.ID]*openItem)}
}

// Len returns the number of open nodes.
func (fr *frontier) Len() int { return fr.queue.Len() }

// contains reports whether id is currently open.
func (fr *frontier) contains(id torusgraph.ID) bool {
	_, ok := fr.items[id]

	return ok
}

// push adds id with score f, or lowers the score of an id that is already open.
// A lowered node keeps its original sequence number.
func (fr *frontier) push(id torusgraph.ID, f int) {
	if item, ok := fr.items[id]; ok {
		item.f = f
		heap.Fix(&fr.queue, item.index)

		return
	}
	item := &openItem{id: id, f: f, seq: fr.nextSeq}
	fr.nextSeq++
	fr.items[id] = item
	heap.Push(&fr.queue, item)
}

// pop removes and returns the open node with the lowest (f, seq).
// The caller must check Len first.
func (fr *frontier) pop() torusgraph.ID {
	item := heap.Pop(&fr.queue).(*openItem)
	delete(fr.items, item.id)

	return item.id
}
