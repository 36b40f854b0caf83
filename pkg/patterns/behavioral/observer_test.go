package behavioral

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifyInSubscriptionOrder(t *testing.T) {
	s1 := NewLogSubscriber("subscriber1")
	s2 := NewLogSubscriber("subscriber2")

	var pub Publisher
	pub.Subscribe(s1)
	pub.Subscribe(s2)

	order := make([]string, 0, 2)
	probe1 := subscriberFunc(func(int) { order = append(order, "s1") })
	probe2 := subscriberFunc(func(int) { order = append(order, "s2") })

	var probes Publisher
	probes.Subscribe(probe1)
	probes.Subscribe(probe2)
	probes.Notify(0)
	assert.Equal(t, []string{"s1", "s2"}, order)

	pub.Notify(0)
	pub.Notify(1)
	assert.Equal(t, []string{"subscriber1 :0", "subscriber1 :1"}, s1.Updates())
	assert.Equal(t, []string{"subscriber2 :0", "subscriber2 :1"}, s2.Updates())
}

// subscriberFunc adapts a function to the Subscriber interface.
type subscriberFunc func(int)

func (f subscriberFunc) Update(v int) { f(v) }

func TestUnsubscribeByIdentity(t *testing.T) {
	s1 := NewLogSubscriber("subscriber1")
	s2 := NewLogSubscriber("subscriber2")

	var pub Publisher
	pub.Subscribe(s1)
	pub.Subscribe(s2)

	pub.Unsubscribe(s1)
	pub.Notify(7)

	assert.Empty(t, s1.Updates())
	assert.Equal(t, []string{"subscriber2 :7"}, s2.Updates())
}

func TestUnsubscribeAbsentIsNoOp(t *testing.T) {
	s1 := NewLogSubscriber("subscriber1")

	var pub Publisher
	pub.Subscribe(s1)
	pub.Unsubscribe(NewLogSubscriber("subscriber1")) // same name, different identity

	pub.Notify(3)
	assert.Equal(t, []string{"subscriber1 :3"}, s1.Updates())
}
