package structural

// Coffee is the capability decorated by the wrappers below.
type Coffee interface {
	Show() string
}

// OriginalCoffee is the undecorated base.
type OriginalCoffee struct{}

// Show implements Coffee.
func (OriginalCoffee) Show() string { return "original coffee" }

// HoneyDecorator wraps a Coffee, invoking it first and appending its
// own effect. Layers compose in wrap order.
type HoneyDecorator struct {
	wrapped Coffee
}

// WithHoney wraps the given coffee with honey.
func WithHoney(c Coffee) *HoneyDecorator {
	return &HoneyDecorator{wrapped: c}
}

// Show implements Coffee.
func (d *HoneyDecorator) Show() string {
	return d.wrapped.Show() + " add honey-"
}

// MilkDecorator wraps a Coffee, invoking it first and appending its
// own effect.
type MilkDecorator struct {
	wrapped Coffee
}

// WithMilk wraps the given coffee with milk.
func WithMilk(c Coffee) *MilkDecorator {
	return &MilkDecorator{wrapped: c}
}

// Show implements Coffee.
func (d *MilkDecorator) Show() string {
	return d.wrapped.Show() + " add milk-"
}
