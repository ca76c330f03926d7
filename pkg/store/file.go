package store

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ishidiag/fishbone/pkg/bone"
	fberrors "github.com/ishidiag/fishbone/pkg/errors"
	"github.com/ishidiag/fishbone/pkg/fishio"
)

// FileStore keeps each diagram as <name>.json in a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a file store in dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fberrors.Wrap(fberrors.ErrCodeStoreUnavailable, err, "create store directory")
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Save(ctx context.Context, name string, d *bone.Diagram) error {
	if err := fberrors.ValidateDiagramName(name); err != nil {
		return err
	}
	return fishio.Export(d, s.path(name))
}

func (s *FileStore) Load(ctx context.Context, name string) (*bone.Diagram, error) {
	if err := fberrors.ValidateDiagramName(name); err != nil {
		return nil, err
	}
	d, err := fishio.Import(s.path(name))
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil, fberrors.New(fberrors.ErrCodeDiagramNotFound, "no diagram named %q", name)
	}
	return d, err
}

func (s *FileStore) List(ctx context.Context) ([]Info, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fberrors.Wrap(fberrors.ErrCodeStoreUnavailable, err, "read store directory")
	}

	var infos []Info
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".json")
		info, err := s.stat(name, e)
		if err != nil {
			// Skip files that are not diagram documents.
			continue
		}
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

func (s *FileStore) stat(name string, e os.DirEntry) (Info, error) {
	d, err := fishio.Import(s.path(name))
	if err != nil {
		return Info{}, err
	}
	info := Info{Name: name, Head: d.Head, Bones: d.BoneCount()}
	if fi, err := e.Info(); err == nil {
		info.UpdatedAt = fi.ModTime()
	}
	return info, nil
}

func (s *FileStore) Delete(ctx context.Context, name string) error {
	if err := fberrors.ValidateDiagramName(name); err != nil {
		return err
	}
	err := os.Remove(s.path(name))
	if os.IsNotExist(err) {
		return fberrors.New(fberrors.ErrCodeDiagramNotFound, "no diagram named %q", name)
	}
	return err
}

func (s *FileStore) Close(ctx context.Context) error {
	return nil
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// ReadDocument returns the raw JSON document for name, for callers that
// serve the stored bytes directly.
func (s *FileStore) ReadDocument(name string) ([]byte, error) {
	if err := fberrors.ValidateDiagramName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return nil, fberrors.New(fberrors.ErrCodeDiagramNotFound, "no diagram named %q", name)
	}
	return bytes.TrimSpace(data), err
}

var _ Store = (*FileStore)(nil)
