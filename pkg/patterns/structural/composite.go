package structural

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Component is a node in the composite tree: either a leaf or a
// composite of further components.
type Component interface {
	Show() string
}

// Leaf is a terminal tree node. Each leaf carries a short unique ID so
// distinct leaves are distinguishable in output.
type Leaf struct {
	name string
	id   string
}

// NewLeaf creates a leaf with the given display name.
func NewLeaf(name string) *Leaf {
	return &Leaf{
		name: name,
		id:   fmt.Sprintf("leaf-%s", uuid.New().String()[:8]),
	}
}

// Show implements Component.
func (l *Leaf) Show() string {
	return l.name + " " + l.id
}

// Composite holds an ordered list of child components and recurses over
// them in insertion order.
type Composite struct {
	children []Component
}

// NewComposite creates an empty composite node.
func NewComposite() *Composite {
	return &Composite{}
}

// Add appends a child to the composite.
func (c *Composite) Add(child Component) {
	c.children = append(c.children, child)
}

// Remove deletes the first child matching by identity.
// Removing a component that is not present is a no-op.
func (c *Composite) Remove(child Component) {
	for i, existing := range c.children {
		if existing == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return
		}
	}
}

// Children returns a copy of the child list in insertion order.
func (c *Composite) Children() []Component {
	out := make([]Component, len(c.children))
	copy(out, c.children)
	return out
}

// Show implements Component. It reports the child count, then each
// child's Show output in insertion order, one per line.
func (c *Composite) Show() string {
	lines := make([]string, 0, len(c.children)+1)
	lines = append(lines, fmt.Sprintf("size: %d", len(c.children)))
	for _, child := range c.children {
		lines = append(lines, child.Show())
	}
	return strings.Join(lines, "\n")
}
