package storage

import (
	"github.com/statside/statside/internal/extract"
)

// Storage is the interface for all export backends.
type Storage interface {
	// Store persists a batch of extracted records with their source URL.
	Store(source string, records []*extract.Record) error

	// Close flushes pending writes and releases resources.
	Close() error

	// Name returns the storage backend identifier.
	Name() string
}
