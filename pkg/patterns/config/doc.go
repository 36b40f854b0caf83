// Package config provides map-backed configuration with type-safe
// accessors for the pattern catalogue.
//
// A Config wraps a plain map[string]any, typically decoded from a
// YAML or JSON file. Accessors never fail; a missing key or a value
// of the wrong type yields the caller's default. Nested sections are
// reached with Sub.
package config
