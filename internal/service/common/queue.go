//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"sync"
)

// Queue is an unbounded FIFO Dispatcher drained by Run.
// The goroutine calling Run plays the role of the UI thread.
type Queue struct {
	// mu protects tasks and closed.
	mu sync.Mutex
	// tasks are the pending callbacks in submission order.
	tasks []func()
	// closed is set once Run has returned; later posts are dropped.
	closed bool
	// wake is signalled when tasks become non-empty.
	wake chan struct{}
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{wake: make(chan struct{}, 1)}
}

// Post appends fn to the queue. It never blocks.
func (q *Queue) Post(fn func()) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()

		return
	}

	q.tasks = append(q.tasks, fn)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Run executes callbacks until ctx is done. Pending callbacks are discarded
// afterwards and the queue rejects new ones.
func (q *Queue) Run(ctx context.Context) {
	defer q.close()

	for {
		for {
			fn, ok := q.pop()
			if !ok {
				break
			}

			if ctx.Err() != nil {
				return
			}

			fn()
		}

		select {
		case <-ctx.Done():
			return
		case <-q.wake:
		}
	}
}

// pop removes the oldest callback.
func (q *Queue) pop() (func(), bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.tasks) == 0 {
		return nil, false
	}

	fn := q.tasks[0]
	q.tasks[0] = nil
	q.tasks = q.tasks[1:]

	return fn, true
}

// close marks the queue closed and drops pending callbacks.
func (q *Queue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.tasks = nil
}
