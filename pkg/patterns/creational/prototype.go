package creational

// Prototype is anything that can produce an independent copy of itself
// without the caller knowing its concrete type.
type Prototype interface {
	Clone() Prototype
	Show() string
}

// Document is a concrete prototype holding two data fields.
type Document struct {
	Data  string
	Data2 string
}

// Clone returns a new Document with the same field values.
// Mutating the clone never affects the source.
func (d *Document) Clone() Prototype {
	dup := *d
	return &dup
}

// Show returns both data fields as a single line.
func (d *Document) Show() string {
	return d.Data + ", " + d.Data2
}
