package generation

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMockClient_QueueThenDefault(t *testing.T) {
	m := NewMockClient("default reply")
	m.QueueReply("first")
	m.QueueError(errors.New("second fails"))

	ctx := context.Background()

	resp, err := m.Generate(ctx, Request{EmailContent: "a"})
	if err != nil || resp.Text() != "first" {
		t.Errorf("call 1 = %q, %v", resp.Text(), err)
	}
	if _, err := m.Generate(ctx, Request{EmailContent: "b"}); err == nil {
		t.Error("call 2 should fail")
	}
	resp, err = m.Generate(ctx, Request{EmailContent: "c", Tone: "formal"})
	if err != nil || resp.Text() != "default reply" {
		t.Errorf("call 3 = %q, %v", resp.Text(), err)
	}

	calls := m.Calls()
	if len(calls) != 3 || m.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", len(calls))
	}
	if calls[2].Tone != "formal" {
		t.Errorf("calls[2] = %+v", calls[2])
	}
}

func TestMockClient_Hold(t *testing.T) {
	m := NewMockClient("held")
	release := m.Hold()

	done := make(chan string, 1)
	go func() {
		resp, _ := m.Generate(context.Background(), Request{EmailContent: "x"})
		done <- resp.Text()
	}()

	select {
	case <-done:
		t.Fatal("Generate returned before release")
	case <-time.After(50 * time.Millisecond):
	}

	release()
	release() // idempotent

	select {
	case got := <-done:
		if got != "held" {
			t.Errorf("got %q", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Generate did not return after release")
	}
}

func TestMockClient_DelayHonoursContext(t *testing.T) {
	m := NewMockClient("slow")
	m.SetDelay(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := m.Generate(ctx, Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}

func TestMockClient_OnGenerate(t *testing.T) {
	m := NewMockClient("")
	var seen Request
	m.OnGenerate = func(req Request) { seen = req }

	m.Generate(context.Background(), Request{EmailContent: "hello"})
	if seen.EmailContent != "hello" {
		t.Errorf("OnGenerate saw %+v", seen)
	}
}
