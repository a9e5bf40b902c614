package bridge

import "context"

// Executor runs tasks on a particular execution context. The bridge posts
// every reply to the caller's Executor.
type Executor interface {
	Post(task func())
}

// Looper is an Executor whose tasks run on the goroutine that calls Run. It
// stands in for the UI thread of a host application.
type Looper struct {
	queue *taskQueue
}

// NewLooper returns an idle looper.
func NewLooper() *Looper {
	return &Looper{queue: newTaskQueue()}
}

// Post queues task to run on the looper goroutine, after everything posted
// before it.
func (l *Looper) Post(task func()) {
	l.queue.push(queuedTask{run: task})
}

// Quit makes Run return once the tasks posted before Quit have run. A Quit
// posted while no Run is active ends the next Run.
func (l *Looper) Quit() {
	l.queue.push(queuedTask{quit: true})
}

// Run executes posted tasks in order on the calling goroutine until a Quit
// marker is reached, returning nil, or ctx is done, returning ctx.Err().
func (l *Looper) Run(ctx context.Context) error {
	for {
		t, err := l.queue.next(ctx)
		if err != nil {
			return err
		}
		if t.quit {
			return nil
		}
		t.run()
	}
}

// runUntil is Run that also returns nil as soon as done is closed, checked
// after every task.
func (l *Looper) runUntil(ctx context.Context, done <-chan struct{}) error {
	for {
		select {
		case <-done:
			return nil
		default:
		}
		t, err := l.queue.next(ctx)
		if err != nil {
			return err
		}
		if t.quit {
			return nil
		}
		t.run()
	}
}

// Pending returns the number of tasks waiting to run.
func (l *Looper) Pending() int {
	return l.queue.size()
}

var _ Executor = (*Looper)(nil)
