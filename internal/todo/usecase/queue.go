package usecase

import (
	"container/heap"
	"time"

	"voice-todo/internal/model"
)

type dueEntry struct {
	id  string
	due time.Time
}

// dueHeap orders pending reminders by due date, earliest first.
type dueHeap []dueEntry

func (h dueHeap) Len() int           { return len(h) }
func (h dueHeap) Less(i, j int) bool { return h[i].due.Before(h[j].due) }
func (h dueHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *dueHeap) Push(x any) { *h = append(*h, x.(dueEntry)) }

func (h *dueHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// dueQueue holds the due thresholds of tasks that may still need a reminder.
// Entries can go stale (task deleted, done, already notified); they are
// re-checked against the task when popped.
type dueQueue struct {
	h dueHeap
}

func (q *dueQueue) push(id string, due time.Time) {
	heap.Push(&q.h, dueEntry{id: id, due: due})
}

func (q *dueQueue) peek() (dueEntry, bool) {
	if len(q.h) == 0 {
		return dueEntry{}, false
	}
	return q.h[0], true
}

func (q *dueQueue) pop() dueEntry {
	return heap.Pop(&q.h).(dueEntry)
}

func (q *dueQueue) len() int {
	return len(q.h)
}

// enqueue schedules t when it can still produce a reminder.
func (uc *implUseCase) enqueue(t model.Task) {
	if !t.HasDueDate() || t.Done || t.Notified {
		return
	}
	uc.queue.push(t.ID, *t.DueDate)
}
