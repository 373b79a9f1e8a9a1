package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmathew/go-giftsmart/internal/config"
)

// Storage is the persistence backend for the encoded birthday collection:
// a single keyed blob, read once at startup and rewritten on every mutation.
type Storage interface {
	// Load returns the persisted blob, or fs.ErrNotExist when nothing has
	// been saved yet.
	Load() ([]byte, error)

	// Save atomically replaces the persisted blob.
	Save(data []byte) error
}

// FileStorage persists the blob to a single file, writing through a temp
// file and rename so a crash mid-write never leaves a partial collection.
// The previous blob is kept as a .bak sibling.
type FileStorage struct {
	Path string
}

// NewFileStorage creates a FileStorage rooted at path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{Path: path}
}

// Load reads the blob from disk.
func (f *FileStorage) Load() ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fs.ErrNotExist
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Save writes the blob via temp file + rename with owner-only permissions.
func (f *FileStorage) Save(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), config.DirPermUserRWX); err != nil {
		return fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	// Keep the previous blob around; best effort only.
	if _, err := os.Stat(f.Path); err == nil {
		_ = os.Rename(f.Path, f.Path+config.SuffixBackup)
	}

	tmp := f.Path + config.SuffixTmp
	if err := os.WriteFile(tmp, data, config.FilePermUserRW); err != nil {
		return err
	}
	return os.Rename(tmp, f.Path)
}

// MemStorage is an in-memory Storage used by tests and ephemeral runs.
type MemStorage struct {
	Blob []byte
	// FailSave, when set, is returned from Save to simulate write failures.
	FailSave error
	// Saves counts successful Save calls.
	Saves int
}

// Load returns the held blob, or fs.ErrNotExist when none was ever saved.
func (m *MemStorage) Load() ([]byte, error) {
	if m.Blob == nil {
		return nil, fs.ErrNotExist
	}
	return m.Blob, nil
}

// Save replaces the held blob.
func (m *MemStorage) Save(data []byte) error {
	if m.FailSave != nil {
		return m.FailSave
	}
	m.Blob = append([]byte(nil), data...)
	m.Saves++
	return nil
}
