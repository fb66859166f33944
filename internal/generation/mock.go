package generation

import (
	"context"
	"sync"
	"time"
)

// MockResult is one canned outcome for MockClient.
type MockResult struct {
	Response Response
	Err      error
}

// MockClient is a test double for Client that never touches the network.
// Queued results are returned in order; once the queue is empty the default
// result is used.
//
// NOTE: This file is also used by the demo scenarios and internal/app tests.
type MockClient struct {
	mu sync.Mutex

	calls    []Request
	queue    []MockResult
	fallback MockResult
	delay    time.Duration
	gate     chan struct{}

	// OnGenerate is called with each request before it is answered.
	OnGenerate func(req Request)
}

// NewMockClient returns a mock whose default answer is reply as plain text.
func NewMockClient(reply string) *MockClient {
	return &MockClient{fallback: MockResult{Response: TextResponse(reply)}}
}

// TextResponse builds a text/plain Response.
func TextResponse(text string) Response {
	return Response{Body: []byte(text), ContentType: "text/plain; charset=utf-8"}
}

// JSONResponse builds an application/json Response from a raw document.
func JSONResponse(doc string) Response {
	return Response{Body: []byte(doc), ContentType: "application/json"}
}

// QueueReply queues a plain-text reply.
func (m *MockClient) QueueReply(text string) {
	m.queueResult(MockResult{Response: TextResponse(text)})
}

// QueueResponse queues an arbitrary response.
func (m *MockClient) QueueResponse(resp Response) {
	m.queueResult(MockResult{Response: resp})
}

// QueueError queues a failure.
func (m *MockClient) QueueError(err error) {
	m.queueResult(MockResult{Err: err})
}

func (m *MockClient) queueResult(r MockResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, r)
}

// SetDefault replaces the result used when the queue is empty.
func (m *MockClient) SetDefault(resp Response, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallback = MockResult{Response: resp, Err: err}
}

// SetDelay makes every call wait d before answering.
func (m *MockClient) SetDelay(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delay = d
}

// Hold blocks calls made from now on until the returned release func is
// called. Lets tests observe the Loading phase deterministically.
func (m *MockClient) Hold() (release func()) {
	gate := make(chan struct{})
	m.mu.Lock()
	m.gate = gate
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			if m.gate == gate {
				m.gate = nil
			}
			m.mu.Unlock()
			close(gate)
		})
	}
}

// Calls returns a copy of every request received so far.
func (m *MockClient) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns how many requests were received.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Generate implements Client.
func (m *MockClient) Generate(ctx context.Context, req Request) (Response, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	result := m.fallback
	if len(m.queue) > 0 {
		result = m.queue[0]
		m.queue = m.queue[1:]
	}
	delay, gate, onGenerate := m.delay, m.gate, m.OnGenerate
	m.mu.Unlock()

	if onGenerate != nil {
		onGenerate(req)
	}

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return Response{}, ctx.Err()
		}
	}
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return Response{}, ctx.Err()
		}
	}
	return result.Response, result.Err
}
