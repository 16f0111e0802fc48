package editor

import "sync"

// Loop is the deferred task queue of the single event-handling goroutine.
// Tasks posted during a turn run on the next call to RunPending, after the
// event that posted them has fully completed. Post may be called from other
// goroutines; tasks themselves only ever run on the goroutine calling
// RunPending.
type Loop struct {
	mu    sync.Mutex
	queue []func()
}

// NewLoop creates an empty loop.
func NewLoop() *Loop {
	return &Loop{}
}

// Post queues a single-shot task for the next turn.
func (l *Loop) Post(task func()) {
	if task == nil {
		return
	}
	l.mu.Lock()
	l.queue = append(l.queue, task)
	l.mu.Unlock()
}

// Pending returns the number of queued tasks.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// RunPending runs the tasks queued before the call, in post order, and
// returns how many ran. Tasks they post wait for the next turn.
func (l *Loop) RunPending() int {
	l.mu.Lock()
	tasks := l.queue
	l.queue = nil
	l.mu.Unlock()

	for _, task := range tasks {
		task()
	}
	return len(tasks)
}
