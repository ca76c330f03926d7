// Package store persists named diagrams. Two backends exist: a plain
// file store for local CLI use and a MongoDB store for shared setups.
// Both keep the portable JSON document format, so files written by one
// backend can be imported into the other.
package store

import (
	"context"
	"time"

	"github.com/ishidiag/fishbone/pkg/bone"
)

// Info describes a stored diagram without loading its full tree.
type Info struct {
	Name      string
	Head      string
	Bones     int
	UpdatedAt time.Time
}

// Store saves and loads diagrams under user-chosen names.
type Store interface {
	// Save writes the diagram under name, overwriting any previous
	// version.
	Save(ctx context.Context, name string, d *bone.Diagram) error

	// Load returns the diagram stored under name.
	Load(ctx context.Context, name string) (*bone.Diagram, error)

	// List returns info for every stored diagram, sorted by name.
	List(ctx context.Context) ([]Info, error)

	// Delete removes the diagram stored under name.
	Delete(ctx context.Context, name string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
