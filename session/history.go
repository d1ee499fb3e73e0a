package session

import (
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/tailored-agentic-units/planner/core/protocol"
)

// History is an append-only, ordered transcript of conversation turns.
// Implementations must be safe for concurrent use.
type History interface {
	// ID returns the unique transcript identifier.
	ID() string
	// Append adds a turn to the end of the transcript.
	Append(msg protocol.Message)
	// Messages returns a defensive copy of the transcript.
	Messages() []protocol.Message
	// Len returns the number of turns.
	Len() int
}

type memoryHistory struct {
	id       string
	messages []protocol.Message
	mu       sync.RWMutex
}

// NewMemoryHistory creates a History backed by an in-memory slice and
// assigns it a UUIDv7 identifier.
func NewMemoryHistory() History {
	return &memoryHistory{
		id: uuid.Must(uuid.NewV7()).String(),
	}
}

func (h *memoryHistory) ID() string {
	return h.id
}

func (h *memoryHistory) Append(msg protocol.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, msg)
}

func (h *memoryHistory) Messages() []protocol.Message {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.messages)
}

func (h *memoryHistory) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.messages)
}
