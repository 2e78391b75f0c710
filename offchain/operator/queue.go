package operator

import (
	"github.com/google/btree"
)

const queueDegree = 8

// queueItem orders actions by due time, then fund, then kind priority
type queueItem struct {
	action Action
}

// Less implements btree.Item
func (a *queueItem) Less(b btree.Item) bool {
	x, y := a.action, b.(*queueItem).action
	if x.DueAt != y.DueAt {
		return x.DueAt < y.DueAt
	}
	if x.FundID != y.FundID {
		return x.FundID < y.FundID
	}
	return x.Kind.priority() < y.Kind.priority()
}

// Queue holds planned actions ordered by due time. It is not safe for
// concurrent use; the Planner serializes access.
type Queue struct {
	tree *btree.BTree
	ids  map[string]struct{}
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{
		tree: btree.New(queueDegree),
		ids:  make(map[string]struct{}),
	}
}

// Push adds a once; it returns false if a was already queued
func (q *Queue) Push(a Action) bool {
	id := a.ID()
	if _, ok := q.ids[id]; ok {
		return false
	}
	q.ids[id] = struct{}{}
	q.tree.ReplaceOrInsert(&queueItem{action: a})
	return true
}

// Has reports whether the action with id is queued
func (q *Queue) Has(id string) bool {
	_, ok := q.ids[id]
	return ok
}

// PopDue removes up to limit actions with DueAt <= now. A limit <= 0 means no limit.
func (q *Queue) PopDue(now int64, limit int) []Action {
	var out []Action
	q.tree.Ascend(func(item btree.Item) bool {
		a := item.(*queueItem).action
		if a.DueAt > now || (limit > 0 && len(out) >= limit) {
			return false
		}
		out = append(out, a)
		return true
	})
	for _, a := range out {
		q.tree.Delete(&queueItem{action: a})
		delete(q.ids, a.ID())
	}
	return out
}

// Peek returns the earliest action without removing it
func (q *Queue) Peek() (Action, bool) {
	item := q.tree.Min()
	if item == nil {
		return Action{}, false
	}
	return item.(*queueItem).action, true
}

// Len returns the number of queued actions
func (q *Queue) Len() int {
	return q.tree.Len()
}
