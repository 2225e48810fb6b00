package coop

// Notifier marks a task ready for its next poll.
// Implementations must be safe for concurrent use.
type Notifier interface {
	Wake()
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func()

// Wake calls f.
func (f NotifierFunc) Wake() { f() }

// queueNotifier pushes a task identity into a ready queue.
// Every queueNotifier bound to the same task is interchangeable.
type queueNotifier struct {
	id    TaskID
	queue ReadyQueue
}

func (n queueNotifier) Wake() {
	// A false return means the identity is already queued,
	// the pending entry covers this wake too.
	n.queue.Push(uint64(n.id))
}
