package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/voyago/voyago-api/internal/domain"
)

// Memory is an in-memory Store with the same semantics as FileStore.
// It backs unit tests and any caller that wants document-store behavior
// without touching disk. Load returns a deep copy, so callers can never
// mutate shared state outside an Update.
type Memory struct {
	mu  sync.Mutex
	doc domain.Document
}

// NewMemory returns a Memory store seeded with doc.
func NewMemory(doc domain.Document) *Memory {
	return &Memory{doc: doc}
}

// Load returns a deep copy of the current document.
func (m *Memory) Load(ctx context.Context) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return domain.Document{}, fmt.Errorf("store: load: %w", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return clone(m.doc)
}

// Update applies fn to a copy of the document and commits it only if fn
// succeeds, mirroring FileStore's no-partial-effect guarantee.
func (m *Memory) Update(ctx context.Context, fn func(doc *domain.Document) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("store: update: %w", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, err := clone(m.doc)
	if err != nil {
		return err
	}
	if err := fn(&doc); err != nil {
		return err
	}
	m.doc = doc
	return nil
}

// clone deep-copies a document via a JSON round trip. The document is plain
// data, so the round trip is lossless.
func clone(doc domain.Document) (domain.Document, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return domain.Document{}, fmt.Errorf("store: clone: encode: %w", err)
	}
	var out domain.Document
	if err := json.Unmarshal(b, &out); err != nil {
		return domain.Document{}, fmt.Errorf("store: clone: decode: %w", err)
	}
	return out, nil
}
