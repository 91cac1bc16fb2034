package repository

import (
	"sync"

	"github.com/gogotex/docstore/internal/document"
	"github.com/google/uuid"
)

// MemoryRepo keeps documents in a map guarded by a single RWMutex. Insertion
// order of ids is tracked so search results come back in a stable order.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]document.Document
	order []string
	newID func() string
}

// Option configures a MemoryRepo.
type Option func(*MemoryRepo)

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(fn func() string) Option {
	return func(m *MemoryRepo) {
		if fn != nil {
			m.newID = fn
		}
	}
}

// NewMemoryRepo returns an empty repository that assigns UUIDs by default.
func NewMemoryRepo(opts ...Option) *MemoryRepo {
	m := &MemoryRepo{
		store: make(map[string]document.Document),
		newID: uuid.NewString,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Save inserts doc, or replaces the entry with the same id. A document
// without an id gets a fresh one. The stored value is returned, with
// replaced set when an existing entry was overwritten.
func (m *MemoryRepo) Save(doc document.Document) (saved document.Document, replaced bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if doc.ID == "" {
		doc = doc.WithID(m.newID())
	}
	_, replaced = m.store[doc.ID]
	if !replaced {
		m.order = append(m.order, doc.ID)
	}
	m.store[doc.ID] = doc
	return doc, replaced
}

// FindByID returns the document stored under id and whether it exists.
func (m *MemoryRepo) FindByID(id string) (document.Document, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.store[id]
	return d, ok
}

// Search returns every stored document matching req, never nil.
func (m *MemoryRepo) Search(req document.SearchRequest) []document.Document {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]document.Document, 0, len(m.order))
	for _, id := range m.order {
		d := m.store[id]
		if req.Matches(d) {
			out = append(out, d)
		}
	}
	return out
}

// Len reports how many documents are stored.
func (m *MemoryRepo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store)
}
