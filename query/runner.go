// Package query runs independent, single-turn prompts against the remote
// model. Nothing is remembered between prompts: each request carries the
// system instruction and exactly one user message.
package query

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/tailored-agentic-units/planner/agent"
	"github.com/tailored-agentic-units/planner/core/protocol"
	"github.com/tailored-agentic-units/planner/observability"
)

const ruleWidth = 60

// Option configures a Runner.
type Option func(*Runner)

// WithObserver sets the event observer. Defaults to NoOpObserver.
func WithObserver(o observability.Observer) Option {
	return func(r *Runner) { r.observer = o }
}

// Runner streams replies for stateless prompts to an output writer.
type Runner struct {
	agent     agent.Agent
	system    string
	maxTokens int
	out       io.Writer
	observer  observability.Observer
}

// New creates a Runner that writes headers and streamed replies to out.
func New(a agent.Agent, cfg *Config, out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		agent:     a,
		system:    cfg.SystemPrompt,
		maxTokens: cfg.MaxTokens,
		out:       out,
		observer:  observability.NoOpObserver{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run sends prompt as the sole turn of a new request, printing each fragment
// as it arrives. The returned text is the concatenation of every fragment.
// If the stream breaks after some text was printed, that text is kept on the
// output and returned alongside the error.
func (r *Runner) Run(ctx context.Context, prompt string) (string, error) {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(r.out, "\n%s\nQuery: %s\n%s\n\n", rule, prompt, rule)

	observability.Emit(ctx, r.observer, observability.Event{
		Type:   EventStart,
		Level:  observability.LevelVerbose,
		Source: "query.Run",
		Data:   map[string]any{"prompt_length": len(prompt)},
	})

	start := time.Now()
	reply, err := r.agent.Stream(ctx, agent.Request{
		System:    r.system,
		Messages:  protocol.InitMessages(protocol.RoleUser, prompt),
		MaxTokens: r.maxTokens,
	}, func(fragment string) {
		io.WriteString(r.out, fragment)
	})
	fmt.Fprint(r.out, "\n\n")

	if err != nil {
		observability.Emit(ctx, r.observer, observability.Event{
			Type:   EventError,
			Level:  observability.LevelError,
			Source: "query.Run",
			Data: map[string]any{
				"error":          err.Error(),
				"partial_length": len(reply),
			},
		})
		return reply, fmt.Errorf("query %q: %w", prompt, err)
	}

	observability.Emit(ctx, r.observer, observability.Event{
		Type:   EventComplete,
		Level:  observability.LevelInfo,
		Source: "query.Run",
		Data: map[string]any{
			"reply_length": len(reply),
			"duration":     time.Since(start),
		},
	})

	return reply, nil
}

// RunAll runs prompts in order and stops at the first failure, returning the
// replies collected before it.
func (r *Runner) RunAll(ctx context.Context, prompts []string) ([]string, error) {
	replies := make([]string, 0, len(prompts))
	for _, prompt := range prompts {
		reply, err := r.Run(ctx, prompt)
		if err != nil {
			return replies, err
		}
		replies = append(replies, reply)
	}
	return replies, nil
}
