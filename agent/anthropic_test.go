package agent_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/tailored-agentic-units/planner/agent"
	"github.com/tailored-agentic-units/planner/core/protocol"
)

type messagesBody struct {
	Model     string `json:"model"`
	MaxTokens int    `json:"max_tokens"`
	Stream    bool   `json:"stream"`
	System    []struct {
		Text string `json:"text"`
	} `json:"system"`
	Messages []struct {
		Role    string `json:"role"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"messages"`
}

func newTestAgent(t *testing.T, handler http.HandlerFunc) agent.Agent {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := agent.Config{Model: "test-model", APIKey: "sk-test", BaseURL: srv.URL + "/"}
	a, err := agent.New(&cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return a
}

func decodeBody(t *testing.T, r *http.Request) messagesBody {
	t.Helper()

	var body messagesBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		t.Errorf("decode request body: %v", err)
	}
	return body
}

const messageJSON = `{
	"id": "msg_01",
	"type": "message",
	"role": "assistant",
	"model": "test-model",
	"content": [{"type": "text", "text": "Start at the Louvre."}],
	"stop_reason": "end_turn",
	"usage": {"input_tokens": 12, "output_tokens": 5}
}`

func TestAnthropic_Chat(t *testing.T) {
	var got messagesBody
	a := newTestAgent(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || !strings.HasSuffix(r.URL.Path, "/v1/messages") {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if key := r.Header.Get("X-Api-Key"); key != "sk-test" {
			t.Errorf("got api key %q, want %q", key, "sk-test")
		}
		got = decodeBody(t, r)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, messageJSON)
	})

	reply, err := a.Chat(context.Background(), agent.Request{
		System: "You are a travel planner.",
		Messages: []protocol.Message{
			protocol.NewMessage(protocol.RoleUser, "Hello"),
			protocol.NewMessage(protocol.RoleAssistant, "Where to?"),
			protocol.NewMessage(protocol.RoleUser, "Paris"),
		},
		MaxTokens: 2048,
	})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}

	if reply != "Start at the Louvre." {
		t.Errorf("got reply %q, want %q", reply, "Start at the Louvre.")
	}
	if got.Model != "test-model" {
		t.Errorf("got model %q, want %q", got.Model, "test-model")
	}
	if got.MaxTokens != 2048 {
		t.Errorf("got max_tokens %d, want 2048", got.MaxTokens)
	}
	if len(got.System) != 1 || got.System[0].Text != "You are a travel planner." {
		t.Errorf("got system %+v, want single travel planner block", got.System)
	}
	if len(got.Messages) != 3 {
		t.Fatalf("got %d messages, want 3", len(got.Messages))
	}
	wantRoles := []string{"user", "assistant", "user"}
	for i, msg := range got.Messages {
		if msg.Role != wantRoles[i] {
			t.Errorf("message %d: got role %q, want %q", i, msg.Role, wantRoles[i])
		}
	}
	if got.Messages[2].Content[0].Text != "Paris" {
		t.Errorf("got last content %q, want %q", got.Messages[2].Content[0].Text, "Paris")
	}
}

func TestAnthropic_Chat_ErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		kind   agent.ErrorKind
	}{
		{"unauthorized", http.StatusUnauthorized, agent.KindAuth},
		{"rate limited", http.StatusTooManyRequests, agent.KindRateLimit},
		{"bad request", http.StatusBadRequest, agent.KindBadRequest},
		{"server error", http.StatusInternalServerError, agent.KindServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			a := newTestAgent(t, func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				fmt.Fprint(w, `{"type":"error","error":{"type":"api_error","message":"nope"}}`)
			})

			_, err := a.Chat(context.Background(), agent.Request{
				Messages:  protocol.InitMessages(protocol.RoleUser, "hi"),
				MaxTokens: 16,
			})

			e, ok := agent.AsError(err)
			if !ok {
				t.Fatalf("got %v, want *agent.Error", err)
			}
			if e.Kind != tt.kind {
				t.Errorf("got kind %q, want %q", e.Kind, tt.kind)
			}
			if e.StatusCode != tt.status {
				t.Errorf("got status %d, want %d", e.StatusCode, tt.status)
			}
			if n := calls.Load(); n != 1 {
				t.Errorf("server received %d calls, want 1 (no retries)", n)
			}
		})
	}
}

func TestAnthropic_Chat_InvalidRequest(t *testing.T) {
	var calls atomic.Int32
	a := newTestAgent(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	_, err := a.Chat(context.Background(), agent.Request{MaxTokens: 16})
	if !errors.Is(err, agent.ErrNoMessages) {
		t.Errorf("got %v, want %v", err, agent.ErrNoMessages)
	}
	if calls.Load() != 0 {
		t.Error("invalid request reached the server")
	}
}

func writeEvent(w http.ResponseWriter, name, data string) {
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, data)
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func streamPrologue(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	writeEvent(w, "message_start", `{"type":"message_start","message":{"id":"msg_01","type":"message","role":"assistant","model":"test-model","content":[],"stop_reason":null,"usage":{"input_tokens":10,"output_tokens":1}}}`)
	writeEvent(w, "content_block_start", `{"type":"content_block_start","index":0,"content_block":{"type":"text","text":""}}`)
}

func textDelta(text string) string {
	data, _ := json.Marshal(map[string]any{
		"type":  "content_block_delta",
		"index": 0,
		"delta": map[string]string{"type": "text_delta", "text": text},
	})
	return string(data)
}

func TestAnthropic_Stream(t *testing.T) {
	fragments := []string{"Take the ", "RER B ", "to Châtelet."}

	var got messagesBody
	a := newTestAgent(t, func(w http.ResponseWriter, r *http.Request) {
		got = decodeBody(t, r)
		streamPrologue(w)
		for _, f := range fragments {
			writeEvent(w, "content_block_delta", textDelta(f))
		}
		writeEvent(w, "content_block_stop", `{"type":"content_block_stop","index":0}`)
		writeEvent(w, "message_delta", `{"type":"message_delta","delta":{"stop_reason":"end_turn","stop_sequence":null},"usage":{"output_tokens":8}}`)
		writeEvent(w, "message_stop", `{"type":"message_stop"}`)
	})

	var received []string
	reply, err := a.Stream(context.Background(), agent.Request{
		Messages:  protocol.InitMessages(protocol.RoleUser, "How do I get from CDG to Paris?"),
		MaxTokens: 1024,
	}, func(fragment string) {
		received = append(received, fragment)
	})
	if err != nil {
		t.Fatalf("Stream failed: %v", err)
	}

	if !got.Stream {
		t.Error("request did not ask for a stream")
	}
	if len(received) != len(fragments) {
		t.Fatalf("got %d fragments, want %d", len(received), len(fragments))
	}
	if joined := strings.Join(received, ""); joined != reply {
		t.Errorf("fragments %q do not concatenate to reply %q", joined, reply)
	}
	if reply != "Take the RER B to Châtelet." {
		t.Errorf("got reply %q", reply)
	}
}

func TestAnthropic_Stream_InterruptedKeepsPartialText(t *testing.T) {
	a := newTestAgent(t, func(w http.ResponseWriter, r *http.Request) {
		streamPrologue(w)
		writeEvent(w, "content_block_delta", textDelta("Partial "))
		writeEvent(w, "error", `{"type":"error","error":{"type":"overloaded_error","message":"Overloaded"}}`)
	})

	var received strings.Builder
	reply, err := a.Stream(context.Background(), agent.Request{
		Messages:  protocol.InitMessages(protocol.RoleUser, "hi"),
		MaxTokens: 16,
	}, func(fragment string) {
		received.WriteString(fragment)
	})

	if !errors.Is(err, agent.ErrStreamInterrupted) {
		t.Fatalf("got %v, want %v", err, agent.ErrStreamInterrupted)
	}
	if reply != "Partial " {
		t.Errorf("got partial reply %q, want %q", reply, "Partial ")
	}
	if received.String() != reply {
		t.Errorf("printed %q, returned %q", received.String(), reply)
	}
}
