// Package storage persists serialized documents under fixed keys.
package storage

import "context"

// DefaultKey is the key the word store document is saved under
const DefaultKey = "spellingTrainerData"

// DocumentStore is the key-value persistence boundary for serialized documents
type DocumentStore interface {
	// Get returns the stored bytes and true, or false if nothing is stored under key
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set overwrites whatever is stored under key
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes the key; removing a missing key is not an error
	Remove(ctx context.Context, key string) error

	// Close releases the backend connection
	Close() error
}
