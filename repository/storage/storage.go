// Package storage is the durable key-value store that keeps the session
// across restarts. Multi-key writes and deletes are atomic in every
// implementation so related keys never diverge.
package storage

import "context"

// Repository defines methods for reading and writing persisted client state.
type Repository interface {
	// GetMany returns the values of the keys that exist; absent keys are
	// simply missing from the map.
	GetMany(ctx context.Context, keys ...string) (map[string]string, error)
	// SetMany writes every pair or none of them.
	SetMany(ctx context.Context, values map[string]string) error
	// Delete removes the keys; deleting an absent key is not an error.
	Delete(ctx context.Context, keys ...string) error
}
