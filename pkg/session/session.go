// Package session holds the pointer linking a signed-in client to its
// backing user and account documents. The store is injected at composition
// time; nothing reads it from ambient globals.
package session

import "context"

// Slot is the persisted key the pointer lives under.
const Slot = "userDocId"

// Store is a single named slot surviving restarts. Last write wins; there
// is no expiry and no transactional guarantee across writers.
type Store interface {
	// Set persists id as the active session pointer, overwriting any
	// previous value.
	Set(ctx context.Context, id string) error

	// Get returns the stored pointer. ok is false when the slot is empty.
	Get(ctx context.Context) (id string, ok bool, err error)

	// Clear removes the pointer. Clearing an empty slot is a no-op.
	Clear(ctx context.Context) error
}
