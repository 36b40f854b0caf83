package catalog

import (
	"errors"
	"fmt"
)

// ErrDemoNotFound indicates a run request named a demo that is not
// registered.
var ErrDemoNotFound = errors.New("demo not found")

// DemoError wraps a failure from one demo with enough context to
// identify it.
type DemoError struct {
	Name string
	Err  error
}

func (e *DemoError) Error() string {
	return fmt.Sprintf("demo %q: %v", e.Name, e.Err)
}

func (e *DemoError) Unwrap() error {
	return e.Err
}
