package history

import "sync"

// MemoryStore is an in-memory snapshot stack. Data is lost when the
// process exits.
type MemoryStore struct {
	mu      sync.Mutex
	entries [][]byte
	closed  bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Push implements Store.
func (m *MemoryStore) Push(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	// Copy to avoid retaining the caller's slice.
	stored := make([]byte, len(data))
	copy(stored, data)
	m.entries = append(m.entries, stored)
	return nil
}

// Pop implements Store.
func (m *MemoryStore) Pop() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrStoreClosed
	}
	if len(m.entries) == 0 {
		return nil, ErrEmptyHistory
	}

	last := len(m.entries) - 1
	data := m.entries[last]
	m.entries = m.entries[:last]
	return data, nil
}

// Len implements Store.
func (m *MemoryStore) Len() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return 0, ErrStoreClosed
	}
	return len(m.entries), nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.entries = nil
	return nil
}
