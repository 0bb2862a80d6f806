package pocketbook

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Store persists whole snapshots to a single slot. Load never fails on an
// absent or corrupt slot: it logs and returns an empty ledger, so a damaged
// file degrades the book instead of breaking startup. Save overwrites the
// slot atomically from the caller's perspective.
type Store interface {
	Load() (*Ledger, error)
	Save(*Ledger) error
}

// Store backends selectable via configuration.
const (
	FileBackend   = "file"
	SQLiteBackend = "sqlite"
)

// OpenStore builds the store for the given backend name. The returned close
// function releases backend resources and is safe to call on any path.
func OpenStore(backend, path string) (Store, func() error, error) {
	switch backend {
	case "", FileBackend:
		return NewFileStore(path), func() error { return nil }, nil
	case SQLiteBackend:
		s, err := OpenSQLiteStore(path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

// FileStore keeps the snapshot in a single JSON file.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore { return &FileStore{Path: path} }

// Load reads the snapshot file. A missing file is a fresh book; a corrupt
// one is logged and treated as empty rather than failing startup.
func (s *FileStore) Load() (*Ledger, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return NewLedger(), &PersistenceError{Op: "load", Err: err}
	}

	ledger, err := DecodeLedger(bytes.NewReader(data))
	if err != nil {
		log.Printf("warning: ledger file %q is corrupt, starting empty: %v", s.Path, err)
		return NewLedger(), nil
	}
	return ledger, nil
}

// Save writes the snapshot to a temporary file in the same directory and
// renames it over the slot, so a reader never observes a partial write.
func (s *FileStore) Save(l *Ledger) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".tmp-*")
	if err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	defer os.Remove(tmp.Name())

	if err := EncodeLedger(tmp, l); err != nil {
		tmp.Close()
		return &PersistenceError{Op: "save", Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}
