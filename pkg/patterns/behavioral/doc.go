// Package behavioral contains the object-collaboration patterns: chain
// of responsibility, command with invoker, iterator, mediator, memento
// with a pluggable caretaker, observer, a finite-state machine,
// strategy, template method, and visitor.
package behavioral
