package behavioral

// Visitor has one method per concrete element kind. Adding a new
// visitor needs no element changes; adding a new element kind means
// updating every visitor.
type Visitor interface {
	VisitCircle(c *Circle) string
	VisitSquare(s *Square) string
}

// Element accepts visitors and double-dispatches to the overload
// matching its own concrete type.
type Element interface {
	Accept(v Visitor) string
}

// Circle is a concrete element.
type Circle struct{}

// Accept implements Element.
func (c *Circle) Accept(v Visitor) string {
	return v.VisitCircle(c)
}

// Square is a concrete element.
type Square struct{}

// Accept implements Element.
func (s *Square) Accept(v Visitor) string {
	return v.VisitSquare(s)
}

// XMLExporter renders elements as XML-ish lines.
type XMLExporter struct{}

// VisitCircle implements Visitor.
func (XMLExporter) VisitCircle(*Circle) string { return "xml export: circle" }

// VisitSquare implements Visitor.
func (XMLExporter) VisitSquare(*Square) string { return "xml export: square" }

// JSONExporter renders elements as JSON-ish lines.
type JSONExporter struct{}

// VisitCircle implements Visitor.
func (JSONExporter) VisitCircle(*Circle) string { return "json export: circle" }

// VisitSquare implements Visitor.
func (JSONExporter) VisitSquare(*Square) string { return "json export: square" }
