package store

import (
	"context"
	"testing"

	"github.com/ishidiag/fishbone/pkg/bone"
	fberrors "github.com/ishidiag/fishbone/pkg/errors"
)

func testDiagram() *bone.Diagram {
	d := bone.New("slow builds")
	big := d.AddBig("caching")
	mid := d.AddMid(big.ID, "cold cache")
	d.AddSmall(big.ID, mid.ID, "no shared cache")
	return d
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if err := s.Save(ctx, "builds", testDiagram()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load(ctx, "builds")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Head != "slow builds" {
		t.Errorf("head = %q, want slow builds", got.Head)
	}
	if got.BoneCount() != 3 {
		t.Errorf("bones = %d, want 3", got.BoneCount())
	}
}

func TestFileStoreList(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	infos, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List on empty store: %v", err)
	}
	if len(infos) != 0 {
		t.Errorf("empty store listed %d diagrams", len(infos))
	}

	for _, name := range []string{"zeta", "alpha"} {
		if err := s.Save(ctx, name, testDiagram()); err != nil {
			t.Fatal(err)
		}
	}
	infos, err = s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 2 || infos[0].Name != "alpha" || infos[1].Name != "zeta" {
		t.Errorf("List = %+v, want alpha then zeta", infos)
	}
	if infos[0].Head != "slow builds" || infos[0].Bones != 3 {
		t.Errorf("Info not populated: %+v", infos[0])
	}
}

func TestFileStoreDelete(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, "gone", testDiagram()); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, "gone"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Load(ctx, "gone"); fberrors.GetCode(err) != fberrors.ErrCodeDiagramNotFound {
		t.Errorf("Load after delete: %v, want DIAGRAM_NOT_FOUND", err)
	}
	if err := s.Delete(ctx, "gone"); fberrors.GetCode(err) != fberrors.ErrCodeDiagramNotFound {
		t.Errorf("double delete: %v, want DIAGRAM_NOT_FOUND", err)
	}
}

func TestFileStoreRejectsBadNames(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"", "../escape", "a/b", ".hidden"} {
		if err := s.Save(ctx, name, testDiagram()); err == nil {
			t.Errorf("Save(%q) should be rejected", name)
		}
	}
}

func TestFileStoreReadDocument(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, "raw", testDiagram()); err != nil {
		t.Fatal(err)
	}
	data, err := s.ReadDocument("raw")
	if err != nil {
		t.Fatalf("ReadDocument: %v", err)
	}
	if len(data) == 0 || data[0] != '{' {
		t.Errorf("ReadDocument should return the JSON document, got %q", data)
	}
}
