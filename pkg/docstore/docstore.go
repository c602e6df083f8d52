// Package docstore defines the boundary to the hosted document database
// backing user, account and profile records.
package docstore

import (
	"context"
	"errors"
)

// Collection names used by the platform. Profile keeps its historical
// capitalized name from the hosted store.
const (
	Users    = "users"
	Accounts = "accounts"
	Profiles = "Profile"
)

var (
	// ErrNotFound is returned by Update when no document exists at the id.
	ErrNotFound = errors.New("document not found")
)

// Document is a schema-less record identified by collection name + key.
type Document map[string]any

// Store exposes get/set/merge over named collections. Every call is exactly
// one round trip; transient failures propagate to the caller without retry.
type Store interface {
	// Get retrieves the document at id. A missing document is not an
	// error: Get returns (nil, nil).
	Get(ctx context.Context, collection, id string) (Document, error)

	// Set creates or fully replaces the document at id.
	Set(ctx context.Context, collection, id string, doc Document) error

	// Update merges fields into the existing document at id. Returns
	// ErrNotFound when no document exists there.
	Update(ctx context.Context, collection, id string, fields Document) error
}

// Clone returns a shallow copy so callers can mutate fetched documents
// without aliasing store internals.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// String returns the field as a string, or fallback when absent or not a
// string.
func (d Document) String(field, fallback string) string {
	if v, ok := d[field].(string); ok && v != "" {
		return v
	}
	return fallback
}

// Float returns the field as a float64 when present.
func (d Document) Float(field string) (float64, bool) {
	v, ok := d[field].(float64)
	return v, ok
}
