// Package memory loads context notes that are folded into a system
// instruction at construction time. Notes are keyed by their /-separated
// path relative to the store root. The store is read-only; nothing a
// conversation produces is ever written back.
package memory

import (
	"context"
	"fmt"
	"strings"
)

// Store lists and loads context notes.
type Store interface {
	// List returns all available keys in lexical order.
	List(ctx context.Context) ([]string, error)
	// Load retrieves entries for the specified keys, in argument order.
	Load(ctx context.Context, keys ...string) ([]Entry, error)
}

// Compose appends every note in store to base, separated by blank lines.
// A nil store or an empty store returns base unchanged.
func Compose(ctx context.Context, store Store, base string) (string, error) {
	if store == nil {
		return base, nil
	}

	keys, err := store.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list context notes: %w", err)
	}
	if len(keys) == 0 {
		return base, nil
	}

	entries, err := store.Load(ctx, keys...)
	if err != nil {
		return "", fmt.Errorf("failed to load context notes: %w", err)
	}

	var b strings.Builder
	b.WriteString(base)
	for _, entry := range entries {
		note := strings.TrimSpace(string(entry.Value))
		if note == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(note)
	}
	return b.String(), nil
}
