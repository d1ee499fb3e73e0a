package session_test

import (
	"sync"
	"testing"

	"github.com/tailored-agentic-units/planner/core/protocol"
	"github.com/tailored-agentic-units/planner/session"
)

func TestNewMemoryHistory(t *testing.T) {
	h := session.NewMemoryHistory()

	if h.ID() == "" {
		t.Error("history ID should not be empty")
	}
	if h.Len() != 0 {
		t.Errorf("new history should have 0 messages, got %d", h.Len())
	}
}

func TestHistory_ID_Unique(t *testing.T) {
	h1 := session.NewMemoryHistory()
	h2 := session.NewMemoryHistory()

	if h1.ID() == h2.ID() {
		t.Errorf("two histories should have different IDs, both got %q", h1.ID())
	}
}

func TestHistory_Append_Order(t *testing.T) {
	h := session.NewMemoryHistory()

	contents := []string{"first", "second", "third"}
	for _, c := range contents {
		h.Append(protocol.NewMessage(protocol.RoleUser, c))
	}

	msgs := h.Messages()
	if len(msgs) != len(contents) {
		t.Fatalf("got %d messages, want %d", len(msgs), len(contents))
	}
	for i, msg := range msgs {
		if msg.Content != contents[i] {
			t.Errorf("message %d: got %q, want %q", i, msg.Content, contents[i])
		}
	}
}

func TestHistory_Messages_DefensiveCopy(t *testing.T) {
	h := session.NewMemoryHistory()
	h.Append(protocol.NewMessage(protocol.RoleUser, "hello"))
	h.Append(protocol.NewMessage(protocol.RoleAssistant, "hi"))

	msgs := h.Messages()
	msgs[0] = protocol.NewMessage(protocol.RoleAssistant, "tampered")
	_ = append(msgs, protocol.NewMessage(protocol.RoleUser, "extra"))

	original := h.Messages()
	if len(original) != 2 {
		t.Fatalf("got %d messages, want 2", len(original))
	}
	if original[0].Content != "hello" {
		t.Errorf("first message was mutated: got %q", original[0].Content)
	}
}

func TestHistory_Concurrent_AppendAndRead(t *testing.T) {
	h := session.NewMemoryHistory()
	const n = 100

	var wg sync.WaitGroup
	wg.Add(2 * n)
	for range n {
		go func() {
			defer wg.Done()
			h.Append(protocol.NewMessage(protocol.RoleUser, "msg"))
		}()
		go func() {
			defer wg.Done()
			_ = h.Messages()
		}()
	}
	wg.Wait()

	if h.Len() != n {
		t.Errorf("got %d messages, want %d", h.Len(), n)
	}
}
