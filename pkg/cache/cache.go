// Package cache provides pluggable byte caches and the key scheme used
// by the render pipeline. Stages cache by content hash, so an unchanged
// diagram re-renders without recomputing layout or invoking converters.
package cache

import (
	"context"
	"time"
)

// Default TTLs per pipeline stage. Layouts are cheap to recompute, so
// they expire sooner than converted artifacts, which may have shelled
// out to librsvg.
const (
	TTLLayout   = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache stores opaque byte values under string keys with optional TTL.
type Cache interface {
	// Get returns the cached value and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// LayoutKeyOpts captures every input that changes a computed layout.
type LayoutKeyOpts struct {
	MinWidth  float64
	MinHeight float64
}

// ArtifactKeyOpts captures every input that changes a rendered artifact.
type ArtifactKeyOpts struct {
	Format       string
	Style        string
	Scale        float64
	View         string
	Detailed     bool
	EditOverlays bool
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// DiagramKey keys a parsed diagram by its source document.
	DiagramKey(source []byte) string

	// LayoutKey keys a computed layout by the diagram hash and layout options.
	LayoutKey(diagramHash string, opts LayoutKeyOpts) string

	// ArtifactKey keys a rendered artifact by the layout hash and render options.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key scheme: a stage prefix plus a
// SHA-256 hash of the stage inputs.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

func (k *DefaultKeyer) DiagramKey(source []byte) string {
	return "diagram:" + Hash(source)
}

func (k *DefaultKeyer) LayoutKey(diagramHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", diagramHash, opts)
}

func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
