package session

import "github.com/tailored-agentic-units/planner/observability"

// Session event types.
const (
	EventSendStart observability.EventType = "session.send.start"
	EventReply     observability.EventType = "session.reply"
	EventReset     observability.EventType = "session.reset"
	EventError     observability.EventType = "session.error"
)
