package kocombus

import (
	"container/heap"
	"context"
	"sync"

	"github.com/kkweon/kocom-bridge/internal/kocomasdu"
)

// Priority orders jobs in the command Queue. Lower values run first.
type Priority int

const (
	// PriorityHigh is for commands originating from Home Assistant —
	// a human is waiting on these.
	PriorityHigh Priority = 0
	// PriorityLow is for the periodic scan's own CHECK probes.
	PriorityLow Priority = 9
)

// FrameEncoder is anything the Queue can turn into an outgoing Frame.
// device.Light, device.Thermostat and friends implement this.
type FrameEncoder interface {
	EncodeFrame(cmd kocomasdu.CommandCode) kocomasdu.Frame
}

// Job is one pending write: encode Target with Command and put the
// result on the wire.
type Job struct {
	Priority Priority
	Target   FrameEncoder
	Command  kocomasdu.CommandCode
	sequence uint64
}

type jobHeap []*Job

func (h jobHeap) Len() int { return len(h) }
func (h jobHeap) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}
	// Equal priority: earliest-enqueued first. The original Python
	// queue broke priority ties by comparing id(device), an incidental
	// memory-address ordering; a monotonic sequence number gives the
	// same queue the FIFO tiebreak it was presumably trying for.
	return h[i].sequence < h[j].sequence
}
func (h jobHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *jobHeap) Push(x any)   { *h = append(*h, x.(*Job)) }
func (h *jobHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Queue is a two-priority command queue safe for concurrent use by one
// writer goroutine and any number of producers.
type Queue struct {
	mu     sync.Mutex
	h      jobHeap
	next   uint64
	signal chan struct{}
}

// NewQueue returns an empty Queue.
func NewQueue() *Queue {
	return &Queue{signal: make(chan struct{}, 1)}
}

// Put enqueues a job. Safe to call from any goroutine.
func (q *Queue) Put(priority Priority, target FrameEncoder, cmd kocomasdu.CommandCode) {
	q.mu.Lock()
	q.next++
	heap.Push(&q.h, &Job{Priority: priority, Target: target, Command: cmd, sequence: q.next})
	q.mu.Unlock()

	select {
	case q.signal <- struct{}{}:
	default:
	}
}

// Get blocks until a job is available and returns it. Equivalent to
// GetContext(context.Background()).
func (q *Queue) Get() *Job {
	return q.GetContext(context.Background())
}

// GetContext blocks until a job is available or ctx is cancelled, in
// which case it returns nil. Unlike a condition variable wait, this
// never leaves a goroutine parked past ctx's cancellation — callers
// that select on ctx.Done() elsewhere (the engine's writeLoop) can
// call this directly instead of wrapping it in their own goroutine.
func (q *Queue) GetContext(ctx context.Context) *Job {
	for {
		q.mu.Lock()
		if len(q.h) > 0 {
			job := heap.Pop(&q.h).(*Job)
			q.mu.Unlock()
			return job
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil
		case <-q.signal:
		}
	}
}

// Len reports how many jobs are waiting.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.h)
}
