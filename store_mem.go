package stockroom

import "sync"

// MemStore keeps collections in memory. It backs tests and ephemeral books;
// nothing survives the process.
type MemStore struct {
	mu   sync.Mutex
	docs map[string][]byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{docs: make(map[string][]byte)}
}

// Read returns the document for name, or nil when absent.
func (s *MemStore) Read(name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[name]
	if !ok {
		return nil, nil
	}
	// Copy so a caller cannot mutate the stored document.
	out := make([]byte, len(doc))
	copy(out, doc)
	return out, nil
}

// Commit stores every document in puts.
func (s *MemStore) Commit(puts map[string][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, data := range puts {
		doc := make([]byte, len(data))
		copy(doc, data)
		s.docs[name] = doc
	}
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemStore) Close() error { return nil }

var _ Store = (*MemStore)(nil)
