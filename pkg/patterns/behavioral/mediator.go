package behavioral

import "fmt"

// Mediator routes messages between components so they never reference
// each other directly.
type Mediator interface {
	// Notify delivers a message from the sender to the recipient fixed
	// by the mediator's routing rules.
	Notify(sender Component, msg string)
}

// Component sends and receives messages through a mediator.
type Component interface {
	Send(msg string)
	Receive(msg string)
}

// Dialog is the concrete mediator. Routing is fixed by sender identity:
// the button talks to the textbox, the textbox to the button, and the
// label to itself.
type Dialog struct {
	button  Component
	textbox Component
	label   Component
}

// Attach registers the dialog's components.
func (d *Dialog) Attach(button, textbox, label Component) {
	d.button = button
	d.textbox = textbox
	d.label = label
}

// Notify implements Mediator.
func (d *Dialog) Notify(sender Component, msg string) {
	switch sender {
	case d.button:
		d.textbox.Receive(msg)
	case d.textbox:
		d.button.Receive(msg)
	case d.label:
		d.label.Receive(msg)
	}
}

// widget is the shared behavior of the dialog components: sends go
// through the mediator, receipts are recorded for inspection.
type widget struct {
	name     string
	mediator Mediator
	received []string
}

func (w *widget) record(msg string) {
	w.received = append(w.received, fmt.Sprintf("%s receives: %s", w.name, msg))
}

// Received returns every message the component has received, in order.
func (w *widget) Received() []string {
	out := make([]string, len(w.received))
	copy(out, w.received)
	return out
}

// Button is a dialog component.
type Button struct{ widget }

// NewButton creates a button wired to the mediator.
func NewButton(m Mediator) *Button {
	return &Button{widget{name: "button", mediator: m}}
}

// Send implements Component.
func (b *Button) Send(msg string) { b.mediator.Notify(b, msg) }

// Receive implements Component.
func (b *Button) Receive(msg string) { b.record(msg) }

// Textbox is a dialog component.
type Textbox struct{ widget }

// NewTextbox creates a textbox wired to the mediator.
func NewTextbox(m Mediator) *Textbox {
	return &Textbox{widget{name: "textbox", mediator: m}}
}

// Send implements Component.
func (t *Textbox) Send(msg string) { t.mediator.Notify(t, msg) }

// Receive implements Component.
func (t *Textbox) Receive(msg string) { t.record(msg) }

// Label is a dialog component.
type Label struct{ widget }

// NewLabel creates a label wired to the mediator.
func NewLabel(m Mediator) *Label {
	return &Label{widget{name: "label", mediator: m}}
}

// Send implements Component.
func (l *Label) Send(msg string) { l.mediator.Notify(l, msg) }

// Receive implements Component.
func (l *Label) Receive(msg string) { l.record(msg) }
