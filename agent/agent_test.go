package agent_test

import (
	"errors"
	"testing"

	"github.com/tailored-agentic-units/planner/agent"
	"github.com/tailored-agentic-units/planner/core/protocol"
)

func TestRequest_Validate(t *testing.T) {
	user := protocol.InitMessages(protocol.RoleUser, "hi")

	tests := []struct {
		name    string
		req     agent.Request
		wantErr error
	}{
		{"valid", agent.Request{Messages: user, MaxTokens: 10}, nil},
		{"no messages", agent.Request{MaxTokens: 10}, agent.ErrNoMessages},
		{"zero max tokens", agent.Request{Messages: user}, agent.ErrInvalidMaxTokens},
		{
			"system role in transcript",
			agent.Request{Messages: protocol.InitMessages(protocol.RoleSystem, "x"), MaxTokens: 10},
			agent.ErrInvalidRole,
		},
		{
			"unknown role",
			agent.Request{Messages: protocol.InitMessages(protocol.Role("tool"), "x"), MaxTokens: 10},
			agent.ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := error(&agent.Error{Kind: agent.KindNetwork, Cause: cause})

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not reach the cause")
	}

	e, ok := agent.AsError(err)
	if !ok {
		t.Fatal("AsError returned false")
	}
	if e.Kind != agent.KindNetwork {
		t.Errorf("got kind %q, want %q", e.Kind, agent.KindNetwork)
	}
}

func TestError_Message(t *testing.T) {
	err := &agent.Error{Kind: agent.KindAuth, StatusCode: 401, Cause: errors.New("invalid x-api-key")}

	want := "agent auth (status 401): invalid x-api-key"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}
