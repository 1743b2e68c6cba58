package input

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// Queue is a serialized event loop. Callbacks posted to it run one at a time, in post order,
// on a single worker goroutine. Native adapters post every platform callback and timer tick
// through one Queue so that camera mutations never run concurrently with each other.
type Queue struct {
	mu     sync.Mutex
	pool   worker.DynamicWorkerPool
	seq    int
	closed bool
}

// NewQueue starts a queue with the given backlog capacity.
//
// Parameters:
//   - capacity: number of callbacks that may be pending before Post blocks
//
// Returns:
//   - *Queue: the running queue
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = 256
	}
	return &Queue{
		pool: worker.NewDynamicWorkerPool(1, capacity, time.Second),
	}
}

// Post enqueues fn. Posting to a closed queue drops fn.
// Must not be called with a full backlog from inside a queued callback.
//
// Parameters:
//   - fn: the callback to run on the queue goroutine
//
// Returns:
//   - bool: false if the queue is closed and fn was dropped
func (q *Queue) Post(fn func()) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.seq++
	id := q.seq
	q.mu.Unlock()

	q.pool.SubmitTask(worker.Task{
		ID: id,
		Do: func() (any, error) {
			fn()
			return nil, nil
		},
	})
	return true
}

// Flush blocks until every callback posted before the call has run.
// Calling Flush from inside a queued callback deadlocks.
func (q *Queue) Flush() {
	done := make(chan struct{})
	if !q.Post(func() { close(done) }) {
		return
	}
	<-done
}

// Close drains pending callbacks and stops the worker. Safe to call more than once.
func (q *Queue) Close() {
	q.Flush()

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	q.pool.Stop()
}
