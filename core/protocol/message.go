// Package protocol defines the conversation primitives shared by the session,
// the stateless query runner, and the agent adapters.
package protocol

import "fmt"

// Role identifies the sender of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}

// Message is a single turn in a conversation. Messages are values: once
// appended to a transcript they are never modified.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// NewMessage creates a Message with the given role and content.
//
// Example:
//
//	msg := protocol.NewMessage(protocol.RoleUser, "Plan a week in Lisbon.")
func NewMessage(role Role, content string) Message {
	return Message{Role: role, Content: content}
}

// InitMessages creates a single-element message slice from a role and content string.
// Used for stateless requests that carry exactly one turn.
func InitMessages(role Role, content string) []Message {
	return []Message{NewMessage(role, content)}
}

// ValidateAlternation checks that messages start with a user turn and strictly
// alternate user, assistant, user, ... . Returns nil for an empty slice.
func ValidateAlternation(messages []Message) error {
	for i, msg := range messages {
		want := RoleUser
		if i%2 == 1 {
			want = RoleAssistant
		}
		if msg.Role != want {
			return fmt.Errorf("message %d: got role %q, want %q", i, msg.Role, want)
		}
	}
	return nil
}
