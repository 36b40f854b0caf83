package creational

import "sync"

// Singleton is the single process-wide instance. Callers obtain it via
// Instance and hold a pointer, so copying the handle never duplicates
// the instance. The zero value is not usable; construction happens only
// inside Instance.
type Singleton struct {
	// unexported so the struct cannot be constructed outside the package
	initialized bool
}

var (
	singletonOnce sync.Once
	singleton     *Singleton
)

// Instance returns the process-wide Singleton, creating it on first
// access. The check-and-create step runs under mutual exclusion, so
// concurrent first calls still observe exactly one instance; later
// reads are lock-free.
func Instance() *Singleton {
	singletonOnce.Do(func() {
		singleton = &Singleton{initialized: true}
	})
	return singleton
}

// Show returns the singleton's identifying line.
func (s *Singleton) Show() string {
	return "I am singleton !"
}
