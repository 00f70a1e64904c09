// Package docstore provides create/find access to named collections of
// schemaless documents, backed by Postgres in production and by an
// in-memory store for tests.
package docstore

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Document is one record in a named collection. Documents returned by
// Find carry their generated identifier under the "id" key.
type Document map[string]any

// Filter selects documents by exact field equality.
type Filter map[string]any

// Store is the interface all document store backends implement.
// It performs no uniqueness or referential checks; any such check must
// happen in the caller before invoking Create.
type Store interface {
	// Create durably persists one document in a collection and returns
	// the generated identifier.
	Create(ctx context.Context, collection string, doc Document) (string, error)

	// Find returns documents matching every filter field, in storage
	// order, capped to limit when limit > 0.
	Find(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error)

	// Collections returns the names of all collections that contain data.
	Collections(ctx context.Context) ([]string, error)
}

// New creates a Store based on the backend name.
//
// Supported backends:
//
//	"postgres" - documents table on the given GORM connection (default)
//	"memory"   - in-memory (ephemeral, for testing)
func New(backend string, db *gorm.DB) (Store, error) {
	switch backend {
	case "postgres", "":
		if db == nil {
			return nil, fmt.Errorf("postgres store backend requires a database connection")
		}
		return NewPostgresStore(db)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %q (supported: postgres, memory)", backend)
	}
}
