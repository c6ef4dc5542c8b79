package hub

import (
	"testing"
	"time"
)

func recvOne(t *testing.T, s *Subscriber) Envelope {
	t.Helper()
	select {
	case env, ok := <-s.C():
		if !ok {
			t.Fatal("subscriber channel closed unexpectedly")
		}
		return env
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for frame")
	}
	return Envelope{}
}

func assertNoFrame(t *testing.T, s *Subscriber) {
	t.Helper()
	select {
	case env, ok := <-s.C():
		if ok {
			t.Fatalf("expected no frame, got %+v", env)
		}
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_BroadcastReachesAllCurrentSubscribers(t *testing.T) {
	h := New(nil)
	a := h.Subscribe()
	b := h.Subscribe()
	defer h.Unsubscribe(a)
	defer h.Unsubscribe(b)

	h.RelayMessage("hi")

	for _, s := range []*Subscriber{a, b} {
		env := recvOne(t, s)
		if env.Event != EventMessage {
			t.Fatalf("expected %q event, got %q", EventMessage, env.Event)
		}
		if env.Data != "hi" {
			t.Fatalf("expected data %q, got %v", "hi", env.Data)
		}
	}

	// exactly once: no second copy pending
	assertNoFrame(t, a)
	assertNoFrame(t, b)
}

func TestHub_LateSubscriberMissesEarlierFrames(t *testing.T) {
	h := New(nil)
	a := h.Subscribe()
	defer h.Unsubscribe(a)

	h.RelayMessage("hi")

	late := h.Subscribe()
	defer h.Unsubscribe(late)

	recvOne(t, a)
	assertNoFrame(t, late)
}

func TestHub_PublishTaskCreatedPayload(t *testing.T) {
	h := New(nil)
	s := h.Subscribe()
	defer h.Unsubscribe(s)

	h.PublishTaskCreated("Unit Test Task")

	env := recvOne(t, s)
	if env.Event != EventNewTask {
		t.Fatalf("expected %q event, got %q", EventNewTask, env.Event)
	}
	payload, ok := env.Data.(TaskCreated)
	if !ok {
		t.Fatalf("unexpected payload type: %T", env.Data)
	}
	if payload.Title != "Unit Test Task" {
		t.Fatalf("unexpected title: %q", payload.Title)
	}
}

func TestHub_PublishNeverBlocksOnFullSubscriber(t *testing.T) {
	h := New(nil)
	slow := h.Subscribe()
	defer h.Unsubscribe(slow)

	done := make(chan struct{})
	go func() {
		defer close(done)
		// overflow the buffer without anyone draining it
		for i := 0; i < subscriberBuffer*3; i++ {
			h.RelayMessage("flood")
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

func TestHub_UnsubscribeClosesChannelAndIsIdempotent(t *testing.T) {
	h := New(nil)
	s := h.Subscribe()

	h.Unsubscribe(s)
	if _, ok := <-s.C(); ok {
		t.Fatal("expected closed channel after Unsubscribe")
	}

	// repeat is a no-op, not a panic
	h.Unsubscribe(s)

	// publishing after the client is gone delivers to no one and does not panic
	h.RelayMessage("into the void")
}
