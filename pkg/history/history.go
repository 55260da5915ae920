// Package history records completed displacement calculations.
//
// Each successful calculation becomes an [Entry] identified by a UUID.
// The [Store] interface has four backends:
//   - memory: in-process storage for development and tests
//   - file: JSON files in a state directory, the CLI default
//   - redis: list-backed storage with TTL for shared deployments
//   - mongo: document storage for long-lived history
//
// All backends list entries newest-first. History is a shell feature: the
// route core never touches it, and a store failure must not fail the
// calculation it was recording.
package history

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/driftcli/drift/pkg/route"
)

// Entry is one recorded calculation.
type Entry struct {
	ID         string    `json:"id" bson:"_id"`
	Route      string    `json:"route" bson:"route"`
	Distance   float64   `json:"distance" bson:"distance"`
	Horizontal float64   `json:"horizontal" bson:"horizontal"`
	Vertical   float64   `json:"vertical" bson:"vertical"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// NewEntry builds an Entry for a route and its computed displacement,
// assigning a fresh UUID and the current time.
func NewEntry(routeStr string, d route.Displacement) Entry {
	return Entry{
		ID:         uuid.NewString(),
		Route:      routeStr,
		Distance:   d.Distance(),
		Horizontal: d.Horizontal,
		Vertical:   d.Vertical,
		CreatedAt:  time.Now().UTC(),
	}
}

// Store persists calculation history.
type Store interface {
	// Put records an entry.
	Put(ctx context.Context, e Entry) error

	// List returns up to limit entries, newest first.
	// A limit <= 0 returns all entries.
	List(ctx context.Context, limit int) ([]Entry, error)

	// Clear removes all entries.
	Clear(ctx context.Context) error

	// Close releases any backend resources.
	Close() error
}
