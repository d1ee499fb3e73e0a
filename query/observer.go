package query

import "github.com/tailored-agentic-units/planner/observability"

// Runner event types.
const (
	EventStart    observability.EventType = "query.start"
	EventComplete observability.EventType = "query.complete"
	EventError    observability.EventType = "query.error"
)
