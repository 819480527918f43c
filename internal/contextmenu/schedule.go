package contextmenu

// Scheduler runs a function on a later turn of the event loop.
type Scheduler interface {
	Defer(fn func())
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(fn func())

func (f SchedulerFunc) Defer(fn func()) { f(fn) }

// Queue is a Scheduler whose tasks run when the owner calls Flush, typically
// in response to a message delivered on the next event-loop turn.
type Queue struct {
	tasks []func()
}

// Defer appends fn to the queue.
func (q *Queue) Defer(fn func()) {
	if fn == nil {
		return
	}
	q.tasks = append(q.tasks, fn)
}

// Pending reports whether tasks are waiting.
func (q *Queue) Pending() bool {
	return len(q.tasks) > 0
}

// Flush runs the tasks queued before the call and returns how many ran.
// Tasks deferred while flushing wait for the next Flush.
func (q *Queue) Flush() int {
	if len(q.tasks) == 0 {
		return 0
	}
	tasks := q.tasks
	q.tasks = nil
	for _, task := range tasks {
		task()
	}
	return len(tasks)
}
