package behavioral

import (
	"errors"
	"fmt"
)

// ErrNoStrategy indicates the navigator was asked for a route before a
// strategy was set.
var ErrNoStrategy = errors.New("no strategy set")

// Strategy is a pluggable routing algorithm.
type Strategy interface {
	BuildRoute(from, to string) string
}

// BikeStrategy routes by bike.
type BikeStrategy struct{}

// BuildRoute implements Strategy.
func (BikeStrategy) BuildRoute(from, to string) string {
	return fmt.Sprintf("bike: %s-%s", from, to)
}

// WalkingStrategy routes on foot.
type WalkingStrategy struct{}

// BuildRoute implements Strategy.
func (WalkingStrategy) BuildRoute(from, to string) string {
	return fmt.Sprintf("walking: %s-%s", from, to)
}

// Navigator delegates routing entirely to whichever strategy is
// currently set. Setting a strategy swaps the algorithm at runtime.
type Navigator struct {
	strategy Strategy
}

// SetStrategy installs the routing algorithm.
func (n *Navigator) SetStrategy(s Strategy) {
	n.strategy = s
}

// Route builds a route with the current strategy.
// Returns ErrNoStrategy if none is set.
func (n *Navigator) Route(from, to string) (string, error) {
	if n.strategy == nil {
		return "", ErrNoStrategy
	}
	return n.strategy.BuildRoute(from, to), nil
}
