package search

// frontierItem is a heap entry. The same index may be pushed several times
// when its state improves; older entries go stale and are expanded again
// when popped.
type frontierItem struct {
	priority uint64
	index    int
}

// frontier is a max-heap for container/heap. Equal priorities pop the
// higher state index first.
type frontier []frontierItem

func (q frontier) Len() int { return len(q) }
func (q frontier) Less(i, j int) bool {
	if q[i].priority == q[j].priority {
		return q[i].index > q[j].index
	}

	return q[i].priority > q[j].priority
}
func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *frontier) Push(x any) {
	*q = append(*q, x.(frontierItem))
}

func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}
