package catalog

import (
	"github.com/zheny5/gopatterns/pkg/patterns/history"
)

// BuildOptions configures the stock catalog.
type BuildOptions struct {
	// History backs the memento demo's caretaker. Nil means an
	// in-memory store.
	History history.Store
}

// Build assembles the full catalog: every pattern demo, registered in
// family order.
func Build(opts BuildOptions) *Catalog {
	c := New()
	registerCreational(c)
	registerStructural(c)
	registerBehavioral(c, opts)
	return c
}

// Default assembles the full catalog with in-memory history.
func Default() *Catalog {
	return Build(BuildOptions{})
}
