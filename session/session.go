// Package session owns a single trip-planning conversation: an immutable
// system instruction, the transcript, and a turn counter. Every Send carries
// the entire transcript so the remote model sees all prior turns.
//
//	s := session.New(a, &cfg)
//	greeting, err := s.Open(ctx)
//	reply, err := s.Send(ctx, "Three weeks in Southeast Asia, $3000.")
//	s, reply, err = s.Reset(ctx)
package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/tailored-agentic-units/planner/agent"
	"github.com/tailored-agentic-units/planner/core/protocol"
	"github.com/tailored-agentic-units/planner/observability"
)

// State is the lifecycle state of a Session.
type State int

const (
	StateEmpty State = iota
	StateActive
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateActive:
		return "active"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Option configures a Session.
type Option func(*Session)

// WithObserver sets the event observer. Defaults to NoOpObserver.
func WithObserver(o observability.Observer) Option {
	return func(s *Session) { s.observer = o }
}

// Session is one conversation. It is driven by a single goroutine; the
// transcript is never shared with another Session.
type Session struct {
	agent    agent.Agent
	cfg      Config
	history  History
	turns    int
	observer observability.Observer
}

// New creates an empty Session. No request is made; callers that want the
// greeting pair call Open.
func New(a agent.Agent, cfg *Config, opts ...Option) *Session {
	s := &Session{
		agent:    a,
		cfg:      *cfg,
		history:  NewMemoryHistory(),
		observer: observability.NoOpObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the transcript identifier.
func (s *Session) ID() string { return s.history.ID() }

// System returns the system instruction sent with every request.
func (s *Session) System() string { return s.cfg.SystemPrompt }

// Turns returns how many Send calls have been attempted.
func (s *Session) Turns() int { return s.turns }

// Len returns the number of turns in the transcript.
func (s *Session) Len() int { return s.history.Len() }

// Messages returns a copy of the transcript.
func (s *Session) Messages() []protocol.Message { return s.history.Messages() }

// State reports whether any turn has been recorded.
func (s *Session) State() State {
	if s.history.Len() == 0 {
		return StateEmpty
	}
	return StateActive
}

// Open sends the canned greeting-elicitation prompt.
func (s *Session) Open(ctx context.Context) (string, error) {
	return s.Send(ctx, s.cfg.Greeting)
}

// Send appends a user turn, sends the whole transcript, and appends the
// reply as an assistant turn. If the remote call fails the user turn stays
// in the transcript without a reply and the error is returned unchanged in
// its chain; Send never retries.
func (s *Session) Send(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyMessage
	}

	s.turns++
	s.history.Append(protocol.NewMessage(protocol.RoleUser, text))

	observability.Emit(ctx, s.observer, observability.Event{
		Type:   EventSendStart,
		Level:  observability.LevelVerbose,
		Source: "session.Send",
		Data: map[string]any{
			"session": s.ID(),
			"turn":    s.turns,
			"history": s.history.Len(),
		},
	})

	reply, err := s.agent.Chat(ctx, agent.Request{
		System:    s.cfg.SystemPrompt,
		Messages:  s.history.Messages(),
		MaxTokens: s.cfg.MaxTokens,
	})
	if err != nil {
		observability.Emit(ctx, s.observer, observability.Event{
			Type:   EventError,
			Level:  observability.LevelError,
			Source: "session.Send",
			Data: map[string]any{
				"session": s.ID(),
				"turn":    s.turns,
				"error":   err.Error(),
			},
		})
		return "", fmt.Errorf("turn %d: %w", s.turns, err)
	}

	s.history.Append(protocol.NewMessage(protocol.RoleAssistant, reply))

	observability.Emit(ctx, s.observer, observability.Event{
		Type:   EventReply,
		Level:  observability.LevelInfo,
		Source: "session.Send",
		Data: map[string]any{
			"session":      s.ID(),
			"turn":         s.turns,
			"reply_length": len(reply),
		},
	})

	return reply, nil
}

// Reset starts a new conversation with the same agent and configuration and
// reseeds it with the canned reset prompt. The receiver is left untouched.
// The new Session is returned even when the reseed fails so the caller can
// inspect it.
func (s *Session) Reset(ctx context.Context) (*Session, string, error) {
	fresh := &Session{
		agent:    s.agent,
		cfg:      s.cfg,
		history:  NewMemoryHistory(),
		observer: s.observer,
	}

	observability.Emit(ctx, s.observer, observability.Event{
		Type:   EventReset,
		Level:  observability.LevelInfo,
		Source: "session.Reset",
		Data: map[string]any{
			"previous":  s.ID(),
			"session":   fresh.ID(),
			"discarded": s.history.Len(),
		},
	})

	reply, err := fresh.Send(ctx, s.cfg.ResetPrompt)
	return fresh, reply, err
}
