package bridge

import (
	"context"
	"errors"
	"sync"
)

// errQueueClosed is returned by next once the queue is closed and drained.
var errQueueClosed = errors.New("queue closed")

// queuedTask is one entry of a taskQueue. A quit entry carries no work; it
// tells the consumer to return.
type queuedTask struct {
	run  func()
	quit bool
}

// taskQueue is an unbounded, thread-safe FIFO of tasks with one consumer.
//
// Producers never block. The consumer waits on a signal channel (buffered,
// size 1) so waiting composes with context cancellation.
type taskQueue struct {
	mu     sync.Mutex
	tasks  []queuedTask
	closed bool
	signal chan struct{}
}

func newTaskQueue() *taskQueue {
	return &taskQueue{
		tasks:  make([]queuedTask, 0, 16),
		signal: make(chan struct{}, 1),
	}
}

// push appends t. It returns false if the queue is closed.
func (q *taskQueue) push(t queuedTask) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}
	q.tasks = append(q.tasks, t)

	select {
	case q.signal <- struct{}{}:
	default:
	}
	return true
}

// tryPop removes the front task without blocking.
func (q *taskQueue) tryPop() (queuedTask, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.tasks) == 0 {
		return queuedTask{}, false
	}
	t := q.tasks[0]
	q.tasks[0] = queuedTask{}
	if len(q.tasks) == 1 {
		q.tasks = q.tasks[:0]
	} else {
		q.tasks = q.tasks[1:]
	}
	return t, true
}

// next blocks until a task is available, the queue is closed and empty
// (errQueueClosed), or ctx is done. Queued tasks are still returned after
// close.
func (q *taskQueue) next(ctx context.Context) (queuedTask, error) {
	for {
		if t, ok := q.tryPop(); ok {
			return t, nil
		}

		q.mu.Lock()
		drained := q.closed && len(q.tasks) == 0
		q.mu.Unlock()
		if drained {
			return queuedTask{}, errQueueClosed
		}

		select {
		case <-ctx.Done():
			return queuedTask{}, ctx.Err()
		case <-q.signal:
		}
	}
}

// size returns the number of queued tasks.
func (q *taskQueue) size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// close stops further pushes and wakes the consumer.
func (q *taskQueue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	close(q.signal)
}
