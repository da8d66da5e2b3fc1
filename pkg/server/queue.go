package server

import (
	"container/heap"

	"github.com/getmockd/wsmock/pkg/stub"
)

// msgQueue is the session's outbound priority queue, ordered by the earliest
// AvailableAt. It is owned by a single session goroutine and needs no lock.
type msgQueue struct {
	items msgHeap
}

func newMsgQueue() *msgQueue {
	return &msgQueue{}
}

func (q *msgQueue) push(m *stub.Msg) {
	heap.Push(&q.items, m)
}

// peek returns the earliest message without removing it, or nil when empty.
func (q *msgQueue) peek() *stub.Msg {
	if len(q.items) == 0 {
		return nil
	}
	return q.items[0]
}

func (q *msgQueue) pop() *stub.Msg {
	if len(q.items) == 0 {
		return nil
	}
	return heap.Pop(&q.items).(*stub.Msg)
}

func (q *msgQueue) len() int {
	return len(q.items)
}

// msgHeap implements heap.Interface over messages by availability instant.
type msgHeap []*stub.Msg

func (h msgHeap) Len() int { return len(h) }

func (h msgHeap) Less(i, j int) bool { return h[i].AvailableAt.Before(h[j].AvailableAt) }

func (h msgHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *msgHeap) Push(x interface{}) {
	*h = append(*h, x.(*stub.Msg))
}

func (h *msgHeap) Pop() interface{} {
	old := *h
	n := len(old)
	m := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return m
}
