package session

import "github.com/zhubert/replywriter/internal/generation"

// Outcome is how a submitted request resolved. Err is the client's own error
// and is meant for diagnostics; users only ever see the session's message.
type Outcome struct {
	Result string
	Err    error
}

// Task tracks one in-flight generation request.
type Task struct {
	Request generation.Request

	done    chan struct{}
	outcome Outcome
}

func newTask(req generation.Request) *Task {
	return &Task{Request: req, done: make(chan struct{})}
}

// Done is closed once the session has applied the outcome and notified
// observers.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the request resolves.
func (t *Task) Wait() Outcome {
	<-t.done
	return t.outcome
}

func (t *Task) finish(o Outcome) {
	t.outcome = o
	close(t.done)
}
