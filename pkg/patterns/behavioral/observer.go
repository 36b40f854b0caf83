package behavioral

import "fmt"

// Subscriber receives published values.
type Subscriber interface {
	Update(value int)
}

// Publisher holds an ordered list of subscribers and notifies them in
// subscription order.
type Publisher struct {
	subscribers []Subscriber
}

// Subscribe appends a subscriber.
func (p *Publisher) Subscribe(s Subscriber) {
	p.subscribers = append(p.subscribers, s)
}

// Unsubscribe removes the first subscriber matching by identity.
// Unsubscribing an absent subscriber is a no-op.
func (p *Publisher) Unsubscribe(s Subscriber) {
	for i, existing := range p.subscribers {
		if existing == s {
			p.subscribers = append(p.subscribers[:i], p.subscribers[i+1:]...)
			return
		}
	}
}

// Notify invokes every subscriber's Update with the same value, in
// subscription order.
func (p *Publisher) Notify(value int) {
	for _, s := range p.subscribers {
		s.Update(value)
	}
}

// LogSubscriber records every update it receives, formatted with its
// name, so demos and tests can inspect delivery order.
type LogSubscriber struct {
	name    string
	updates []string
}

// NewLogSubscriber creates a named recording subscriber.
func NewLogSubscriber(name string) *LogSubscriber {
	return &LogSubscriber{name: name}
}

// Update implements Subscriber.
func (s *LogSubscriber) Update(value int) {
	s.updates = append(s.updates, fmt.Sprintf("%s :%d", s.name, value))
}

// Updates returns the recorded update lines in delivery order.
func (s *LogSubscriber) Updates() []string {
	out := make([]string, len(s.updates))
	copy(out, s.updates)
	return out
}
