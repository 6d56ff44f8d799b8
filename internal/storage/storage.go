// Package storage keeps a single saved cave between runs.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// ErrEmpty is returned by Load when nothing has been stored yet.
var ErrEmpty = errors.New("storage slot is empty")

// Slot holds exactly one encoded cave. Load may return garbage; callers
// must decode and verify before trusting it.
type Slot interface {
	Load() ([]byte, error)
	Store(data []byte) error
}

// FileSlot stores the cave in a single file.
type FileSlot struct {
	Path string
}

// NewFileSlot returns a slot backed by the file at path.
func NewFileSlot(path string) *FileSlot {
	return &FileSlot{Path: path}
}

// Load reads the whole file. A missing file reports ErrEmpty.
func (s *FileSlot) Load() ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("load cave from %s: %w", s.Path, err)
	}
	return data, nil
}

// Store replaces the file contents. The data is written to a temporary
// file in the same directory and renamed over the old one, so a crash
// never leaves half a cave behind.
func (s *FileSlot) Store(data []byte) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store cave: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("store cave: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("store cave to %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store cave to %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("store cave to %s: %w", s.Path, err)
	}
	return nil
}

// MemorySlot keeps the cave in memory, for tests and for runs without a
// save file.
type MemorySlot struct {
	data   []byte
	stored bool
	Writes int
}

// NewMemorySlot returns a slot preloaded with data, or an empty one when
// data is nil.
func NewMemorySlot(data []byte) *MemorySlot {
	return &MemorySlot{data: slices.Clone(data), stored: data != nil}
}

// Load returns a copy of the stored bytes.
func (s *MemorySlot) Load() ([]byte, error) {
	if !s.stored {
		return nil, ErrEmpty
	}
	return slices.Clone(s.data), nil
}

// Store keeps a copy of data.
func (s *MemorySlot) Store(data []byte) error {
	s.data = slices.Clone(data)
	s.stored = true
	s.Writes++
	return nil
}
