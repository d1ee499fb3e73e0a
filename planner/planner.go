// Package planner wires configuration, the remote agent, context notes, and
// observability into the two front ends: interactive sessions and the
// stateless query runner.
//
//	cfg, err := planner.LoadConfig(".env", "")
//	p, err := planner.New(ctx, cfg)
//	s := p.NewSession()
//	r := p.NewRunner(os.Stdout)
package planner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/tailored-agentic-units/planner/agent"
	"github.com/tailored-agentic-units/planner/memory"
	"github.com/tailored-agentic-units/planner/observability"
	"github.com/tailored-agentic-units/planner/query"
	"github.com/tailored-agentic-units/planner/session"
)

// Option configures a Planner after config-driven initialization.
type Option func(*Planner)

// WithAgent overrides the config-created agent.
func WithAgent(a agent.Agent) Option {
	return func(p *Planner) { p.agent = a }
}

// WithObserver adds o alongside the default SlogObserver. Events reach the
// observers in the order they were added.
func WithObserver(o observability.Observer) Option {
	return func(p *Planner) {
		p.observer = observability.NewMultiObserver(p.observer, o)
	}
}

// WithMemoryStore overrides the config-created context note store.
func WithMemoryStore(s memory.Store) Option {
	return func(p *Planner) { p.store = s }
}

// Planner builds sessions and runners that share one agent.
type Planner struct {
	agent     agent.Agent
	store     memory.Store
	observer  observability.Observer
	session   session.Config
	query     query.Config
	demoPause time.Duration
}

// New creates a Planner from configuration. A missing credential fails with
// ErrMissingCredential before any subsystem is created. Context notes, when
// configured, are appended to both system instructions here and never
// reloaded.
func New(ctx context.Context, cfg *Config, opts ...Option) (*Planner, error) {
	if cfg.Agent.APIKey == "" {
		return nil, ErrMissingCredential
	}

	a, err := agent.New(&cfg.Agent)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	store, err := memory.NewStore(&cfg.Memory)
	if err != nil {
		return nil, fmt.Errorf("failed to create memory store: %w", err)
	}

	p := &Planner{
		agent:     a,
		store:     store,
		observer:  observability.NewSlogObserver(slog.Default()),
		session:   cfg.Session,
		query:     cfg.Query,
		demoPause: cfg.DemoPause,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.session.SystemPrompt, err = memory.Compose(ctx, p.store, p.session.SystemPrompt); err != nil {
		return nil, err
	}
	if p.query.SystemPrompt, err = memory.Compose(ctx, p.store, p.query.SystemPrompt); err != nil {
		return nil, err
	}

	return p, nil
}

// Start loads configuration from DefaultEnvFile, configFile, and the process
// environment, installs a slog logger on logOut as the default, and creates a
// Planner whose default observer writes to that logger.
func Start(ctx context.Context, logOut io.Writer, configFile string, opts ...Option) (*Planner, error) {
	cfg, err := LoadConfig(DefaultEnvFile, configFile)
	if err != nil {
		return nil, err
	}

	logger, err := NewLogger(logOut, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	return New(ctx, cfg, opts...)
}

// NewSession creates an empty conversation.
func (p *Planner) NewSession() *session.Session {
	return session.New(p.agent, &p.session, session.WithObserver(p.observer))
}

// NewRunner creates a stateless query runner that streams to out.
func (p *Planner) NewRunner(out io.Writer) *query.Runner {
	return query.New(p.agent, &p.query, out, query.WithObserver(p.observer))
}

// Prompts returns the configured stateless prompts.
func (p *Planner) Prompts() []string {
	prompts := make([]string, len(p.query.Prompts))
	copy(prompts, p.query.Prompts)
	return prompts
}

// DemoPause returns the delay between scripted demo turns.
func (p *Planner) DemoPause() time.Duration {
	return p.demoPause
}
