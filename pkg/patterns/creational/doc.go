// Package creational contains the object-construction patterns:
// simple factory, factory method, abstract factory, builder with
// director, prototype, and a lazily initialized singleton.
//
// Each pattern is self-contained. Operations return strings instead of
// printing so that callers decide where output goes.
package creational
