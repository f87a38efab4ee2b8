package gridastar

import "container/heap"

// frontier is the open set: a min-heap of node indices keyed by F.
//
// Ties on F go to the lower H (closer to the goal), then to the node discovered first.
// Which of several equal-cost paths is returned depends on this order; the cost does not.
type frontier struct {
	table   *nodeTable
	items   []int
	nextSeq int
}

func newFrontier(table *nodeTable) *frontier {
	return &frontier{table: table}
}

func (q *frontier) Len() int { return len(q.items) }

func (q *frontier) Less(i, j int) bool {
	a, b := q.table.at(q.items[i]), q.table.at(q.items[j])
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

func (q *frontier) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.table.at(q.items[i]).heapIndex = i
	q.table.at(q.items[j]).heapIndex = j
}

func (q *frontier) Push(x any) {
	i := x.(int)
	q.table.at(i).heapIndex = len(q.items)
	q.items = append(q.items, i)
}

func (q *frontier) Pop() any {
	n := len(q.items)
	i := q.items[n-1]
	q.items = q.items[:n-1]
	q.table.at(i).heapIndex = notQueued
	return i
}

// insert adds a newly discovered node. Its G/F must already be set.
func (q *frontier) insert(i int) {
	q.table.at(i).seq = q.nextSeq
	q.nextSeq++
	heap.Push(q, i)
}

// extractMin removes the node with the smallest F.
func (q *frontier) extractMin() (int, error) {
	if len(q.items) == 0 {
		return 0, errEmptyFrontier
	}
	return heap.Pop(q).(int), nil
}

// decrease restores heap order after node i's F went down.
func (q *frontier) decrease(i int) {
	if idx := q.table.at(i).heapIndex; idx != notQueued {
		heap.Fix(q, idx)
	}
}

// open returns the queued node indices in heap order.
func (q *frontier) open() []int {
	out := make([]int, len(q.items))
	copy(out, q.items)
	return out
}
