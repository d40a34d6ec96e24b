package remote

import (
	"net"
	"sync"
)

// Event is one accepted remote command waiting for the main loop.
type Event struct {
	Seq     uint64
	Command Command
	Name    string
	From    net.Addr
}

// Queue is a FIFO of events safe to Post from any goroutine. The main loop
// takes everything queued with Drain.
type Queue struct {
	mu    sync.Mutex
	items []Event
}

// Post adds an event.
func (q *Queue) Post(evt Event) {
	if q == nil {
		return
	}
	q.mu.Lock()
	q.items = append(q.items, evt)
	q.mu.Unlock()
}

// Drain returns all events and clears the queue.
func (q *Queue) Drain() []Event {
	if q == nil {
		return nil
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
