// Package store implements the single-file JSON document store that backs
// every collection in the application.
//
// The persistence model is deliberately simple: Load materializes the whole
// document into memory, Save serializes the whole document back. There is no
// query engine and no per-record I/O. All mutations go through Update, which
// serializes load-mutate-save under a process-wide mutex so two in-flight
// requests can never interleave their writes. Within that model the document
// is last-save-wins; the mutex is the correctness floor for a single-process
// deployment, not a substitute for a transactional database.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/voyago/voyago-api/internal/domain"
)

// Store is the persistence interface the service layer depends on.
// Services depend on this interface, not the concrete file implementation,
// which lets tests substitute the in-memory store.
type Store interface {
	// Load returns the current document. A store with no backing data
	// returns a document with empty collections, not an error.
	Load(ctx context.Context) (domain.Document, error)

	// Update runs fn on the current document and persists the result,
	// all under the store's write lock. If fn returns an error the
	// document is not saved and the error is returned unchanged, so
	// policy failures leave no partial effect.
	Update(ctx context.Context, fn func(doc *domain.Document) error) error
}

// FileStore persists the document as pretty-printed JSON at a single path.
// Writes are atomic: the document is written to a temp file in the same
// directory and renamed over the target, so a crash mid-write can never
// leave a partially-written document behind.
type FileStore struct {
	path string
	mu   chan struct{} // 1-slot semaphore instead of sync.Mutex so Lock can respect ctx
}

// NewFileStore returns a FileStore backed by path. The file (and its parent
// directory) are created on first save; a missing file loads as an empty
// document.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, mu: make(chan struct{}, 1)}
}

// Load reads and decodes the whole document.
func (s *FileStore) Load(ctx context.Context) (domain.Document, error) {
	if err := s.lock(ctx); err != nil {
		return domain.Document{}, err
	}
	defer s.unlock()
	return s.read()
}

// Update applies fn to the document and writes it back atomically.
func (s *FileStore) Update(ctx context.Context, fn func(doc *domain.Document) error) error {
	if err := s.lock(ctx); err != nil {
		return err
	}
	defer s.unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(&doc); err != nil {
		return err
	}
	return s.write(doc)
}

func (s *FileStore) lock(ctx context.Context) error {
	// Check ctx up front: select picks arbitrarily when both cases are
	// ready, and a canceled request must never proceed to a write.
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("store: acquire lock: %w", err)
	}
	select {
	case s.mu <- struct{}{}:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("store: acquire lock: %w", ctx.Err())
	}
}

func (s *FileStore) unlock() { <-s.mu }

// read decodes the backing file. Callers must hold the lock.
func (s *FileStore) read() (domain.Document, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return emptyDocument(), nil
	}
	if err != nil {
		return domain.Document{}, fmt.Errorf("store: read %s: %w", s.path, err)
	}

	var doc domain.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return domain.Document{}, fmt.Errorf("store: decode %s: %w", s.path, err)
	}
	return doc, nil
}

// write persists doc atomically. Callers must hold the lock.
func (s *FileStore) write(doc domain.Document) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store: create %s: %w", dir, err)
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode document: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".db-*.json")
	if err != nil {
		return fmt.Errorf("store: create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("store: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store: close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store: replace %s: %w", s.path, err)
	}
	return nil
}

// emptyDocument returns a document with every collection present but empty,
// so a fresh deployment serves [] rather than null everywhere.
func emptyDocument() domain.Document {
	return domain.Document{
		Users:      []domain.User{},
		Packages:   []domain.Package{},
		Trips:      []domain.Trip{},
		Bookings:   []domain.Booking{},
		Checklists: []domain.ChecklistItem{},
	}
}
