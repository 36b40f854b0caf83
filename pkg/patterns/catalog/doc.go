// Package catalog registers and runs design-pattern demonstrations.
//
// Every pattern contributes one Demo: a named function that exercises
// the pattern with fixed inputs and writes its illustrative output to
// an io.Writer. Demos are grouped into three families (creational,
// structural, behavioral) and executed by a Runner that adds
// structured logging, metrics, and tracing around each run.
package catalog
