package gridpath

import "github.com/pdrpinto/gridpath/internal/arena"

// frontierItem is one entry of the open set. Stale entries for cells that
// were closed after being pushed stay in the queue and are skipped on pop.
type frontierItem struct {
	Node     arena.Handle
	FCost    int
	HCost    int
	Sequence uint64
}

// frontier is a min-heap ordered by f, then h, then insertion order.
type frontier []frontierItem

func (queue frontier) Len() int { return len(queue) }
func (queue frontier) Less(i, j int) bool {
	if queue[i].FCost != queue[j].FCost {
		return queue[i].FCost < queue[j].FCost
	}
	if queue[i].HCost != queue[j].HCost {
		return queue[i].HCost < queue[j].HCost
	}
	return queue[i].Sequence < queue[j].Sequence
}
func (queue frontier) Swap(i, j int) { queue[i], queue[j] = queue[j], queue[i] }

func (queue *frontier) Push(x any) {
	*queue = append(*queue, x.(frontierItem))
}

func (queue *frontier) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	*queue = oldQueue[:n-1]
	return item
}
