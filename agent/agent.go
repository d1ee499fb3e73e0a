// Package agent is the boundary to the hosted chat-completion API. An Agent
// turns a system instruction plus an ordered list of turns into a reply,
// either as one complete block of text or as a stream of fragments.
//
// The production implementation wraps the Anthropic Messages API:
//
//	a, err := agent.New(&cfg)
//	reply, err := a.Chat(ctx, agent.Request{
//		System:    "You are a travel planner.",
//		Messages:  protocol.InitMessages(protocol.RoleUser, "Plan a day in Paris."),
//		MaxTokens: 1024,
//	})
package agent

import (
	"context"
	"fmt"

	"github.com/tailored-agentic-units/planner/core/protocol"
)

// Request is a single call to the remote model.
type Request struct {
	System    string
	Messages  []protocol.Message
	MaxTokens int
}

// Validate checks that the request can be sent.
func (r Request) Validate() error {
	if len(r.Messages) == 0 {
		return ErrNoMessages
	}
	if r.MaxTokens <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxTokens, r.MaxTokens)
	}
	for i, msg := range r.Messages {
		if !msg.Role.IsValid() {
			return fmt.Errorf("message %d: %w: unknown role %q", i, ErrInvalidRole, msg.Role)
		}
		// The instruction travels in System, never as a turn.
		if msg.Role == protocol.RoleSystem {
			return fmt.Errorf("message %d: %w: system turns belong in Request.System", i, ErrInvalidRole)
		}
	}
	return nil
}

// FragmentHandler receives streamed text fragments in arrival order.
type FragmentHandler func(fragment string)

// Agent issues requests to the remote model. Both methods block until the
// reply completes, the context is cancelled, or the call fails.
type Agent interface {
	// Chat returns the full reply text.
	Chat(ctx context.Context, req Request) (string, error)
	// Stream calls fn for every text fragment as it arrives and returns the
	// concatenation of all fragments. On a mid-stream failure the text
	// received so far is returned together with the error.
	Stream(ctx context.Context, req Request, fn FragmentHandler) (string, error)
}
