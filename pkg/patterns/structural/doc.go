// Package structural contains the object-composition patterns: adapter,
// bridge, composite, decorator, facade, flyweight, and proxy.
package structural
