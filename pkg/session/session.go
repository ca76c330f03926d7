// Package session provides crash recovery for interactive editing.
//
// Every edit session gets a unique ID and periodically snapshots the
// diagram being edited. If the editor exits cleanly the snapshot is
// deleted; after a crash the next invocation can offer to resume from
// the most recent snapshot.
//
// Create and persist a session:
//
//	store, err := session.NewFileStore("")  // ~/.config/fishbone/sessions/
//	sess, err := session.New("incidents", diagram, session.DefaultTTL)
//	store.Set(ctx, sess)
//
// Recover after a crash:
//
//	sess, err := store.Latest(ctx, "incidents")
//	if sess != nil {
//	    d, err := sess.Diagram()
//	}
package session

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ishidiag/fishbone/pkg/bone"
	"github.com/ishidiag/fishbone/pkg/fishio"
)

// Sentinel errors for session operations.
var (
	// ErrNotFound is returned when a session does not exist.
	ErrNotFound = errors.New("not found")

	// ErrExpired is returned when a session has exceeded its TTL.
	ErrExpired = errors.New("expired")
)

// DefaultTTL is how long an abandoned snapshot survives before Cleanup
// removes it.
const DefaultTTL = 7 * 24 * time.Hour

// Session is one autosaved snapshot of an editing session.
type Session struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Document  []byte    `json:"document"`
	SavedAt   time.Time `json:"saved_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired returns true if the snapshot has outlived its TTL.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Diagram decodes the snapshotted diagram.
func (s *Session) Diagram() (*bone.Diagram, error) {
	return fishio.Read(bytes.NewReader(s.Document))
}

// Snapshot replaces the stored document with the diagram's current
// state and refreshes the save time.
func (s *Session) Snapshot(d *bone.Diagram, ttl time.Duration) error {
	var buf bytes.Buffer
	if err := fishio.Write(d, &buf); err != nil {
		return err
	}
	now := time.Now()
	s.Document = buf.Bytes()
	s.SavedAt = now
	s.ExpiresAt = now.Add(ttl)
	return nil
}

// Store is the interface for session snapshot storage.
type Store interface {
	// Get retrieves a session by ID. Returns nil, nil if the session
	// doesn't exist and nil, ErrExpired if it exists but has expired.
	Get(ctx context.Context, id string) (*Session, error)

	// Set stores a session.
	Set(ctx context.Context, sess *Session) error

	// Delete removes a session.
	Delete(ctx context.Context, id string) error

	// Latest returns the most recently saved live session for the named
	// diagram, or nil if none exists.
	Latest(ctx context.Context, name string) (*Session, error)

	// Cleanup removes expired sessions.
	Cleanup(ctx context.Context) error
}

// New creates a session for editing the named diagram, snapshotting its
// current state.
func New(name string, d *bone.Diagram, ttl time.Duration) (*Session, error) {
	s := &Session{
		ID:   uuid.NewString(),
		Name: name,
	}
	if err := s.Snapshot(d, ttl); err != nil {
		return nil, err
	}
	return s, nil
}
