package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

type Opener interface {
	Open(string) (io.ReadCloser, error)
}

type WriteOpener interface {
	Open(string) (io.WriteCloser, error)
}

// FileStore keeps objects as files beneath Root. Storage paths are slash
// separated and are joined to Root as relative paths.
type FileStore struct {
	Root        string
	Opener      Opener
	WriteOpener WriteOpener
}

// NewFileStore returns a FileStore over the local filesystem.
func NewFileStore(root string) *FileStore {
	return &FileStore{
		Root:        root,
		Opener:      fileOpener{},
		WriteOpener: fileWriteOpener{},
	}
}

// LocalPath returns the filename used for storagePath.
func (s *FileStore) LocalPath(storagePath string) string {
	return filepath.Join(s.Root, filepath.FromSlash(storagePath))
}

func (s *FileStore) Get(ctx context.Context, storagePath string) ([]byte, error) {
	filename := s.LocalPath(storagePath)
	f, err := s.Opener.Open(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, storagePath)
		}
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// Put writes data to the file for storagePath, replacing any existing
// content. The file is not synced.
func (s *FileStore) Put(ctx context.Context, storagePath string, data []byte, _ map[string]string) error {
	return writeAll(s.WriteOpener, s.LocalPath(storagePath), data)
}

func writeAll(wo WriteOpener, filename string, data []byte) error {
	f, err := wo.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := f.Write(data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return fmt.Errorf("%w: %s", ErrWriteIncomplete, filename)
	}
	return nil
}

type fileOpener struct{}

func (fileOpener) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// fileWriteOpener creates missing parent directories and truncates existing
// files.
type fileWriteOpener struct{}

func (fileWriteOpener) Open(name string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return nil, err
	}
	return os.Create(name)
}
