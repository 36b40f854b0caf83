package behavioral

// Collection is an ordered sequence traversed through iterators. Each
// call to Iterator returns a fresh iterator positioned before the first
// element, so multiple traversals can run in parallel.
type Collection[T any] struct {
	items []T
}

// NewCollection creates a collection over a copy of the given items.
func NewCollection[T any](items ...T) *Collection[T] {
	stored := make([]T, len(items))
	copy(stored, items)
	return &Collection[T]{items: stored}
}

// Iterator returns a new iterator positioned before the first element.
func (c *Collection[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{collection: c}
}

// Len returns the number of elements.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// Iterator traverses a collection front to back.
type Iterator[T any] struct {
	collection *Collection[T]
	pos        int
}

// HasMore reports whether unread elements remain.
func (it *Iterator[T]) HasMore() bool {
	return it.pos < len(it.collection.items)
}

// Next returns the next element and advances the position. When no
// elements remain it returns the zero value rather than failing.
func (it *Iterator[T]) Next() T {
	if !it.HasMore() {
		var zero T
		return zero
	}
	item := it.collection.items[it.pos]
	it.pos++
	return item
}
