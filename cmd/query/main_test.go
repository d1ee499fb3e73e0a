package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/tailored-agentic-units/planner/agent"
	"github.com/tailored-agentic-units/planner/agent/mock"
	"github.com/tailored-agentic-units/planner/planner"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, key := range []string{
		planner.CredentialEnv,
		planner.ConfigFileEnv,
		"PLANNER_QUERY_SYSTEM_PROMPT",
		"PLANNER_MEMORY_PATH",
		"PLANNER_LOG_LEVEL",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func execute(t *testing.T, ctx context.Context, opts ...planner.Option) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd(opts...)
	cmd.SetArgs([]string{})
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestRoot_MissingCredential(t *testing.T) {
	isolate(t)
	m := mock.New()

	_, err := execute(t, context.Background(), planner.WithAgent(m))
	if !errors.Is(err, planner.ErrMissingCredential) {
		t.Fatalf("got error %v, want ErrMissingCredential", err)
	}
	if m.Calls() != 0 {
		t.Errorf("agent called %d times", m.Calls())
	}
}

func TestRoot_RunsEveryPrompt(t *testing.T) {
	isolate(t)
	t.Setenv(planner.CredentialEnv, "sk-test")
	m := mock.New(mock.WithReplies("a1", "a2", "a3", "a4", "a5"))

	out, err := execute(t, context.Background(), planner.WithAgent(m))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(out, strings.Repeat("=", 60)+"\nParis Trip Planning Agent") {
		t.Errorf("unexpected header:\n%s", out)
	}
	if !strings.Contains(out, "Demo Complete!") {
		t.Error("missing closing summary")
	}

	reqs := m.Requests()
	if len(reqs) != 5 {
		t.Fatalf("got %d requests, want 5", len(reqs))
	}
	for i, req := range reqs {
		if len(req.Messages) != 1 {
			t.Errorf("request %d carried %d messages, want 1", i, len(req.Messages))
		}
	}
}

func TestRoot_StopsAtFirstFailure(t *testing.T) {
	isolate(t)
	t.Setenv(planner.CredentialEnv, "sk-test")
	m := mock.New(
		mock.WithReplies("a1"),
		mock.WithError(1, &agent.Error{Kind: agent.KindRateLimit, StatusCode: 429}),
	)

	out, err := execute(t, context.Background(), planner.WithAgent(m))
	var got *agent.Error
	if !errors.As(err, &got) || got.Kind != agent.KindRateLimit {
		t.Fatalf("got error %v, want rate limit agent error", err)
	}
	if m.Calls() != 2 {
		t.Errorf("got %d calls, want 2", m.Calls())
	}
	if strings.Contains(out, "Demo Complete!") {
		t.Error("summary printed after failure")
	}
}

func TestRoot_Interrupted(t *testing.T) {
	isolate(t)
	t.Setenv(planner.CredentialEnv, "sk-test")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m := mock.New(
		mock.WithReplies("a1"),
		mock.WithCallback(func(context.Context, agent.Request) { cancel() }),
	)

	out, err := execute(t, ctx, planner.WithAgent(m))
	if err != nil {
		t.Fatalf("interrupt should end normally, got %v", err)
	}
	if !strings.Contains(out, "Program interrupted by user.") {
		t.Errorf("missing interrupt notice:\n%s", out)
	}
}
