// Package mock provides a scripted agent.Agent for tests. Replies are served
// in order; every request is recorded so tests can assert on what was sent.
package mock

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/tailored-agentic-units/planner/agent"
	"github.com/tailored-agentic-units/planner/core/protocol"
)

// ErrNoMoreReplies is returned once the scripted replies are exhausted.
var ErrNoMoreReplies = errors.New("mock: no more replies configured")

// Option configures a MockAgent.
type Option func(*MockAgent)

// WithReplies queues replies served by successive calls.
func WithReplies(replies ...string) Option {
	return func(m *MockAgent) { m.replies = append(m.replies, replies...) }
}

// WithError makes call number n (zero-based) fail with err.
func WithError(n int, err error) Option {
	return func(m *MockAgent) { m.errs[n] = err }
}

// WithFragmentSize splits streamed replies into fragments of at most size runes.
func WithFragmentSize(size int) Option {
	return func(m *MockAgent) { m.fragmentSize = size }
}

// WithCallback runs fn at the start of every call, before any reply is chosen.
func WithCallback(fn func(ctx context.Context, req agent.Request)) Option {
	return func(m *MockAgent) { m.callback = fn }
}

// MockAgent is a scripted, concurrency-safe agent.Agent.
type MockAgent struct {
	mu           sync.Mutex
	replies      []string
	errs         map[int]error
	requests     []agent.Request
	fragmentSize int
	callback     func(ctx context.Context, req agent.Request)
}

// New creates a MockAgent. With no replies configured every call returns
// ErrNoMoreReplies.
func New(opts ...Option) *MockAgent {
	m := &MockAgent{
		errs:         make(map[int]error),
		fragmentSize: 4,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MockAgent) Chat(ctx context.Context, req agent.Request) (string, error) {
	return m.next(ctx, req)
}

func (m *MockAgent) Stream(ctx context.Context, req agent.Request, fn agent.FragmentHandler) (string, error) {
	reply, err := m.next(ctx, req)
	if err != nil {
		return "", err
	}
	if fn != nil {
		for _, fragment := range split(reply, m.fragmentSize) {
			fn(fragment)
		}
	}
	return reply, nil
}

// Requests returns a copy of every request received, in order.
func (m *MockAgent) Requests() []agent.Request {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make([]agent.Request, len(m.requests))
	for i, req := range m.requests {
		copied[i] = req
		copied[i].Messages = slices.Clone(req.Messages)
	}
	return copied
}

// Calls returns the number of requests received.
func (m *MockAgent) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

func (m *MockAgent) next(ctx context.Context, req agent.Request) (string, error) {
	if m.callback != nil {
		m.callback(ctx, req)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	req.Messages = slices.Clone(req.Messages)
	n := len(m.requests)
	m.requests = append(m.requests, req)

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err, ok := m.errs[n]; ok {
		return "", err
	}
	if len(m.replies) == 0 {
		return "", ErrNoMoreReplies
	}

	reply := m.replies[0]
	m.replies = m.replies[1:]
	return reply, nil
}

// split cuts s into fragments of at most size runes.
func split(s string, size int) []string {
	runes := []rune(s)
	if size <= 0 || len(runes) <= size {
		return []string{s}
	}
	var out []string
	for len(runes) > size {
		out = append(out, string(runes[:size]))
		runes = runes[size:]
	}
	return append(out, string(runes))
}

// Transcript is a convenience for building alternating user/assistant
// histories in tests.
func Transcript(contents ...string) []protocol.Message {
	msgs := make([]protocol.Message, len(contents))
	for i, c := range contents {
		role := protocol.RoleUser
		if i%2 == 1 {
			role = protocol.RoleAssistant
		}
		msgs[i] = protocol.NewMessage(role, c)
	}
	return msgs
}
