package catalog

import (
	"io"
	"strings"
	"sync"
)

// Family groups demos by pattern category.
type Family string

const (
	FamilyCreational Family = "creational"
	FamilyStructural Family = "structural"
	FamilyBehavioral Family = "behavioral"
)

// DemoFunc exercises one pattern with fixed inputs and writes its
// illustrative output to w.
type DemoFunc func(w io.Writer) error

// Demo is a registered pattern demonstration.
type Demo struct {
	Name   string
	Family Family
	Run    DemoFunc
}

// Catalog is a thread-safe registry of demos. Iteration follows
// registration order.
type Catalog struct {
	mu    sync.RWMutex
	demos map[string]Demo
	order []string
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		demos: make(map[string]Demo),
	}
}

// Register adds a demo to the catalog. Registration happens once at
// startup, so malformed demos panic rather than returning errors.
func (c *Catalog) Register(d Demo) *Catalog {
	if d.Name == "" {
		panic("catalog: demo name cannot be empty")
	}
	if strings.ContainsAny(d.Name, " \t\n\r") {
		panic("catalog: demo name cannot contain whitespace")
	}
	if d.Run == nil {
		panic("catalog: demo function cannot be nil")
	}
	switch d.Family {
	case FamilyCreational, FamilyStructural, FamilyBehavioral:
	default:
		panic("catalog: unknown demo family " + string(d.Family))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.demos[d.Name]; exists {
		panic("catalog: duplicate demo name " + d.Name)
	}
	c.demos[d.Name] = d
	c.order = append(c.order, d.Name)
	return c
}

// Get returns the demo for a name and whether it exists.
func (c *Catalog) Get(name string) (Demo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.demos[name]
	return d, ok
}

// Names returns all demo names in registration order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// ByFamily returns the demos of one family in registration order.
func (c *Catalog) ByFamily(f Family) []Demo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []Demo
	for _, name := range c.order {
		if d := c.demos[name]; d.Family == f {
			out = append(out, d)
		}
	}
	return out
}

// Len returns the number of registered demos.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.demos)
}
