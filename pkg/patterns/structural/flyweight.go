package structural

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Cat is the shared flyweight. It holds only intrinsic state: the
// texture name it was created for and a short ID that makes sharing
// visible in output. Extrinsic state (position) lives in MovingCat.
type Cat struct {
	texture string
	id      string
}

// Texture returns the intrinsic texture name.
func (c *Cat) Texture() string { return c.texture }

// ID returns the instance identifier.
func (c *Cat) ID() string { return c.id }

// CatFactory caches Cat instances keyed by texture. The factory
// exclusively owns all cached instances for its lifetime; callers hold
// shared handles. Safe for concurrent use.
type CatFactory struct {
	mu   sync.RWMutex
	cats map[string]*Cat
}

// NewCatFactory creates an empty flyweight cache.
func NewCatFactory() *CatFactory {
	return &CatFactory{cats: make(map[string]*Cat)}
}

// Cat returns the shared instance for the texture, creating and caching
// it on first request. Equal textures always yield the same instance.
func (f *CatFactory) Cat(texture string) *Cat {
	f.mu.RLock()
	c, ok := f.cats[texture]
	f.mu.RUnlock()
	if ok {
		return c
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	// Double-check after acquiring the write lock.
	if c, ok := f.cats[texture]; ok {
		return c
	}

	c = &Cat{
		texture: texture,
		id:      fmt.Sprintf("cat-%s", uuid.New().String()[:8]),
	}
	f.cats[texture] = c
	return c
}

// Len returns the number of distinct cached instances.
func (f *CatFactory) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.cats)
}

// MovingCat pairs a shared Cat with per-use extrinsic state. The
// position is never stored in the shared instance.
type MovingCat struct {
	cat *Cat
	pos int
}

// NewMovingCat places a shared cat at a position.
func NewMovingCat(cat *Cat, pos int) MovingCat {
	return MovingCat{cat: cat, pos: pos}
}

// Show returns the cat's intrinsic state followed by its position.
func (m MovingCat) Show() string {
	return fmt.Sprintf("%s %s position: %d", m.cat.Texture(), m.cat.ID(), m.pos)
}
