package structural

// Implementation is the implementation side of the bridge. Abstractions
// delegate part of their behavior to it, and the two sides vary
// independently: any abstraction works with any implementation.
type Implementation interface {
	Show() string
}

// ImplOne is the first concrete implementation.
type ImplOne struct{}

// Show implements Implementation.
func (ImplOne) Show() string { return "implementation 1" }

// ImplTwo is the second concrete implementation.
type ImplTwo struct{}

// Show implements Implementation.
func (ImplTwo) Show() string { return "implementation 2" }

// Abstraction is anything on the abstraction side of the bridge.
type Abstraction interface {
	Show() string
}

// AbstractionOne is a refined abstraction delegating to its implementation.
type AbstractionOne struct {
	impl Implementation
}

// NewAbstractionOne pairs the abstraction with an implementation.
func NewAbstractionOne(impl Implementation) *AbstractionOne {
	return &AbstractionOne{impl: impl}
}

// Show implements Abstraction.
func (a *AbstractionOne) Show() string {
	return "abstraction 1\n" + a.impl.Show()
}

// AbstractionTwo is a second refined abstraction.
type AbstractionTwo struct {
	impl Implementation
}

// NewAbstractionTwo pairs the abstraction with an implementation.
func NewAbstractionTwo(impl Implementation) *AbstractionTwo {
	return &AbstractionTwo{impl: impl}
}

// Show implements Abstraction.
func (a *AbstractionTwo) Show() string {
	return "abstraction 2\n" + a.impl.Show()
}
