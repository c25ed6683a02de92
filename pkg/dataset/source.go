package dataset

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"
)

// Source reads raw dataset files. Names use forward slashes relative to the
// dataset root. Missing files and directories are reported with
// ErrDatasetNotFound.
type Source interface {
	ReadFile(ctx context.Context, name string) ([]byte, error)
	// ListDir returns the sorted base names of the files directly inside dir.
	ListDir(ctx context.Context, dir string) ([]string, error)
}

//go:embed all:data
var embedded embed.FS

// Embedded returns the dataset compiled into the module.
func Embedded() *FSSource {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// the embed directive guarantees the directory exists
		panic(err)
	}
	return NewFSSource(sub)
}

// FSSource reads datasets from an fs.FS.
type FSSource struct {
	fsys fs.FS
}

func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

// NewDirSource reads datasets from a directory on disk.
func NewDirSource(dir string) (*FSSource, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatasetNotFound, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDatasetNotFound, dir)
	}
	return NewFSSource(os.DirFS(dir)), nil
}

func (s *FSSource) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, mapFSError(name, err)
	}
	return data, nil
}

func (s *FSSource) ListDir(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := fs.ReadDir(s.fsys, dir)
	if err != nil {
		return nil, mapFSError(dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

func mapFSError(name string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrDatasetNotFound, name)
	}
	return errors.Join(ErrSourceRead, err)
}

// MemorySource serves files from memory.
type MemorySource struct {
	files map[string][]byte
}

// NewMemorySource copies files, keyed by slash-separated path.
func NewMemorySource(files map[string]string) *MemorySource {
	m := &MemorySource{files: make(map[string][]byte, len(files))}
	for name, content := range files {
		m.files[path.Clean(name)] = []byte(content)
	}
	return m
}

func (m *MemorySource) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, ok := m.files[path.Clean(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, name)
	}
	return slices.Clone(data), nil
}

func (m *MemorySource) ListDir(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	prefix := path.Clean(dir) + "/"
	var names []string
	for name := range m.files {
		rest, ok := strings.CutPrefix(name, prefix)
		if ok && rest != "" && !strings.Contains(rest, "/") {
			names = append(names, rest)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, dir)
	}
	slices.Sort(names)
	return names, nil
}
