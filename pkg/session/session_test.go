package session

import (
	"context"
	"testing"
	"time"

	"github.com/ishidiag/fishbone/pkg/bone"
)

func editDiagram() *bone.Diagram {
	d := bone.New("flaky tests")
	big := d.AddBig("environment")
	d.AddMid(big.ID, "shared state")
	return d
}

func TestNewSession(t *testing.T) {
	sess, err := New("flaky", editDiagram(), DefaultTTL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if sess.ID == "" {
		t.Error("session should get an ID")
	}
	if sess.Name != "flaky" {
		t.Errorf("name = %q, want flaky", sess.Name)
	}
	if sess.IsExpired() {
		t.Error("fresh session should not be expired")
	}

	other, err := New("flaky", editDiagram(), DefaultTTL)
	if err != nil {
		t.Fatal(err)
	}
	if other.ID == sess.ID {
		t.Error("sessions should get unique IDs")
	}
}

func TestSessionDiagramRoundTrip(t *testing.T) {
	sess, err := New("flaky", editDiagram(), DefaultTTL)
	if err != nil {
		t.Fatal(err)
	}
	d, err := sess.Diagram()
	if err != nil {
		t.Fatalf("Diagram: %v", err)
	}
	if d.Head != "flaky tests" || d.BoneCount() != 2 {
		t.Errorf("decoded diagram wrong: head=%q bones=%d", d.Head, d.BoneCount())
	}
}

func TestSnapshotRefreshes(t *testing.T) {
	d := editDiagram()
	sess, err := New("flaky", d, DefaultTTL)
	if err != nil {
		t.Fatal(err)
	}
	before := sess.SavedAt

	d.AddBig("tooling")
	time.Sleep(time.Millisecond)
	if err := sess.Snapshot(d, DefaultTTL); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if !sess.SavedAt.After(before) {
		t.Error("Snapshot should advance SavedAt")
	}
	got, err := sess.Diagram()
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Bones) != 2 {
		t.Errorf("snapshot should carry the new bone, got %d bones", len(got.Bones))
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	sess, err := New("flaky", editDiagram(), DefaultTTL)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Set(ctx, sess); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.Name != "flaky" {
		t.Errorf("Get = %+v, want name flaky", got)
	}

	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err = store.Get(ctx, sess.ID)
	if err != nil || got != nil {
		t.Errorf("Get after delete = %+v, %v; want nil, nil", got, err)
	}
}

func TestFileStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	sess, err := New("flaky", editDiagram(), time.Nanosecond)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Set(ctx, sess); err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, err := store.Get(ctx, sess.ID); err != ErrExpired {
		t.Errorf("Get expired = %v, want ErrExpired", err)
	}
}

func TestFileStoreLatest(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if sess, err := store.Latest(ctx, "flaky"); err != nil || sess != nil {
		t.Errorf("Latest on empty store = %+v, %v", sess, err)
	}

	first, _ := New("flaky", editDiagram(), DefaultTTL)
	first.SavedAt = time.Now().Add(-time.Hour)
	second, _ := New("flaky", editDiagram(), DefaultTTL)
	other, _ := New("deploys", editDiagram(), DefaultTTL)
	for _, s := range []*Session{first, second, other} {
		if err := store.Set(ctx, s); err != nil {
			t.Fatal(err)
		}
	}

	got, err := store.Latest(ctx, "flaky")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if got == nil || got.ID != second.ID {
		t.Errorf("Latest should pick the newest snapshot for the name")
	}
}

func TestFileStoreCleanup(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	stale, _ := New("flaky", editDiagram(), time.Nanosecond)
	live, _ := New("flaky", editDiagram(), DefaultTTL)
	for _, s := range []*Session{stale, live} {
		if err := store.Set(ctx, s); err != nil {
			t.Fatal(err)
		}
	}
	time.Sleep(10 * time.Millisecond)

	if err := store.Cleanup(ctx); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if _, err := store.Get(ctx, stale.ID); err == ErrExpired {
		t.Error("Cleanup should have removed the expired snapshot")
	}
	if got, err := store.Get(ctx, live.ID); err != nil || got == nil {
		t.Errorf("Cleanup removed a live snapshot: %v", err)
	}
}
