package creational

import "errors"

// ErrNoBuilder indicates a Director construction method was invoked
// before SetBuilder. The director reports the absence instead of
// building anything.
var ErrNoBuilder = errors.New("director has no builder")

// Assembly is the product assembled part by part. It is a plain value;
// once returned from a builder it is independent of the builder's
// internal state.
type Assembly struct {
	PartA string
	PartB string
	PartC string
}

// Show returns the assembled parts as a single comma-separated line.
func (a Assembly) Show() string {
	return a.PartA + ", " + a.PartB + ", " + a.PartC
}

// Builder accumulates named parts and yields the assembled product.
type Builder interface {
	BuildPartA(p string)
	BuildPartB(p string)
	BuildPartC(p string)
	Assembly() Assembly
}

// BuilderA assembles parts with the "A" finish.
type BuilderA struct {
	assembly Assembly
}

// BuildPartA implements Builder.
func (b *BuilderA) BuildPartA(p string) { b.assembly.PartA = "A" + p }

// BuildPartB implements Builder.
func (b *BuilderA) BuildPartB(p string) { b.assembly.PartB = "A" + p }

// BuildPartC implements Builder.
func (b *BuilderA) BuildPartC(p string) { b.assembly.PartC = "A" + p }

// Assembly implements Builder.
func (b *BuilderA) Assembly() Assembly { return b.assembly }

// BuilderB assembles parts with the "B" finish.
type BuilderB struct {
	assembly Assembly
}

// BuildPartA implements Builder.
func (b *BuilderB) BuildPartA(p string) { b.assembly.PartA = "B" + p }

// BuildPartB implements Builder.
func (b *BuilderB) BuildPartB(p string) { b.assembly.PartB = "B" + p }

// BuildPartC implements Builder.
func (b *BuilderB) BuildPartC(p string) { b.assembly.PartC = "B" + p }

// Assembly implements Builder.
func (b *BuilderB) Assembly() Assembly { return b.assembly }

// Director sequences builder calls into named construction recipes.
// The recipes are independent of which concrete builder is supplied.
type Director struct {
	builder Builder
}

// NewDirector creates a director with no builder attached.
func NewDirector() *Director {
	return &Director{}
}

// SetBuilder attaches the builder used by subsequent recipes.
func (d *Director) SetBuilder(b Builder) {
	d.builder = b
}

// ConstructOrdered builds parts "0", "1", "2" in sequence.
// Returns ErrNoBuilder if no builder is attached.
func (d *Director) ConstructOrdered() error {
	if d.builder == nil {
		return ErrNoBuilder
	}
	d.builder.BuildPartA("0")
	d.builder.BuildPartB("1")
	d.builder.BuildPartC("2")
	return nil
}

// ConstructUniform builds every part from the same input.
// Returns ErrNoBuilder if no builder is attached.
func (d *Director) ConstructUniform() error {
	if d.builder == nil {
		return ErrNoBuilder
	}
	d.builder.BuildPartA("great")
	d.builder.BuildPartB("great")
	d.builder.BuildPartC("great")
	return nil
}

// Assembly returns the current builder's assembled product.
// Returns ErrNoBuilder if no builder is attached.
func (d *Director) Assembly() (Assembly, error) {
	if d.builder == nil {
		return Assembly{}, ErrNoBuilder
	}
	return d.builder.Assembly(), nil
}
