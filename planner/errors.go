package planner

import (
	"errors"
	"strings"

	"github.com/tailored-agentic-units/planner/agent"
)

// ErrMissingCredential is returned by New when no API key is configured.
// It is raised before any agent is built, so no request can be attempted.
var ErrMissingCredential = errors.New(CredentialEnv + " environment variable not set")

// Remediation returns operator-facing hints for err.
func Remediation(err error) string {
	var b strings.Builder

	if errors.Is(err, ErrMissingCredential) || errors.Is(err, agent.ErrMissingAPIKey) {
		b.WriteString("Please set your Anthropic API key:\n")
		b.WriteString("\nOn Windows:\n")
		b.WriteString("  set " + CredentialEnv + "=your-key-here\n")
		b.WriteString("\nOn Linux/Mac:\n")
		b.WriteString("  export " + CredentialEnv + "=your-key-here\n")
		b.WriteString("\nOr create a " + DefaultEnvFile + " file containing:\n")
		b.WriteString("  " + CredentialEnv + "=your-key-here\n")
		b.WriteString("\nGet your API key from: https://console.anthropic.com/\n")
		return b.String()
	}

	b.WriteString("Make sure you have:\n")
	b.WriteString("1. Set the " + CredentialEnv + " environment variable (or a " + DefaultEnvFile + " file)\n")
	b.WriteString("2. Network access to the Anthropic API\n")

	if e, ok := agent.AsError(err); ok {
		switch e.Kind {
		case agent.KindAuth:
			b.WriteString("3. A valid, active API key (the server rejected the credential)\n")
		case agent.KindRateLimit:
			b.WriteString("3. Remaining quota (the server is rate limiting requests; wait and try again)\n")
		case agent.KindBadRequest:
			b.WriteString("3. A valid model name and request settings in your configuration\n")
		case agent.KindServer:
			b.WriteString("3. Patience: the service reported an internal error; try again shortly\n")
		}
	}
	return b.String()
}
