package behavioral

import (
	"fmt"
	"strconv"

	"github.com/zheny5/gopatterns/pkg/patterns/history"
)

// Memento is an immutable snapshot of the game's counter. Only the
// originator reads its contents.
type Memento struct {
	data int
}

// Game is the originator: it owns a counter and can snapshot or
// restore it.
type Game struct {
	data int
}

// NewGame creates a game with the counter at zero.
func NewGame() *Game {
	return &Game{}
}

// Play reports the current counter, then advances it.
func (g *Game) Play() string {
	out := fmt.Sprintf("play : %d", g.data)
	g.data++
	return out
}

// Save snapshots the current state into a memento.
func (g *Game) Save() Memento {
	return Memento{data: g.data}
}

// Restore resets the game to the memento's state.
func (g *Game) Restore(m Memento) {
	g.data = m.data
}

// Caretaker stacks mementos in a history.Store and returns the most
// recent on undo. The caretaker never inspects memento contents beyond
// serializing them.
type Caretaker struct {
	store history.Store
}

// NewCaretaker creates a caretaker over the given store. A nil store
// defaults to an in-memory one.
func NewCaretaker(store history.Store) *Caretaker {
	if store == nil {
		store = history.NewMemoryStore()
	}
	return &Caretaker{store: store}
}

// Backup pushes a memento onto the history stack.
func (c *Caretaker) Backup(m Memento) error {
	if err := c.store.Push([]byte(strconv.Itoa(m.data))); err != nil {
		return fmt.Errorf("backup memento: %w", err)
	}
	return nil
}

// Undo pops and returns the most recent memento.
// Returns history.ErrEmptyHistory if no backups exist.
func (c *Caretaker) Undo() (Memento, error) {
	data, err := c.store.Pop()
	if err != nil {
		return Memento{}, fmt.Errorf("undo: %w", err)
	}
	value, err := strconv.Atoi(string(data))
	if err != nil {
		return Memento{}, fmt.Errorf("decode memento: %w", err)
	}
	return Memento{data: value}, nil
}

// Len returns the number of stored backups.
func (c *Caretaker) Len() (int, error) {
	return c.store.Len()
}
