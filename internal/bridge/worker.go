package bridge

import (
	"context"
	"log/slog"
)

// Worker runs submitted tasks one at a time, in submission order, on a
// single goroutine it owns.
type Worker struct {
	queue  *taskQueue
	done   chan struct{}
	logger *slog.Logger
}

// NewWorker starts a worker goroutine. Call Close to stop it.
func NewWorker(logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	w := &Worker{
		queue:  newTaskQueue(),
		done:   make(chan struct{}),
		logger: logger,
	}
	go w.run()
	return w
}

// Submit queues task. It never blocks and returns false once the worker is
// closed.
func (w *Worker) Submit(task func()) bool {
	return w.queue.push(queuedTask{run: task})
}

// Pending returns the number of tasks waiting to run.
func (w *Worker) Pending() int {
	return w.queue.size()
}

// Close rejects new tasks, waits for the queued ones to finish, and stops
// the goroutine. Close is idempotent.
func (w *Worker) Close() {
	w.queue.close()
	<-w.done
}

func (w *Worker) run() {
	defer close(w.done)
	for {
		t, err := w.queue.next(context.Background())
		if err != nil {
			return
		}
		w.runTask(t.run)
	}
}

// runTask runs one task; a panic is logged and the worker keeps going.
func (w *Worker) runTask(task func()) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("worker task panicked", "panic", r)
		}
	}()
	task()
}
