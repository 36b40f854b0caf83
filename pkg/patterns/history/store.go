// Package history provides last-in-first-out snapshot storage for the
// memento caretaker. Stores hold opaque snapshot bytes; encoding is the
// caller's concern.
package history

import "errors"

// Store is a LIFO stack of snapshots.
// Implementations must be safe for concurrent use.
type Store interface {
	// Push appends a snapshot to the top of the stack.
	Push(data []byte) error

	// Pop removes and returns the most recent snapshot.
	// Returns ErrEmptyHistory if the stack is empty.
	Pop() ([]byte, error)

	// Len returns the number of stored snapshots.
	Len() (int, error)

	// Close releases any resources (connections, files).
	Close() error
}

// Sentinel errors for history operations.
var (
	// ErrEmptyHistory indicates Pop was called on an empty stack.
	ErrEmptyHistory = errors.New("history is empty")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("history store closed")
)
