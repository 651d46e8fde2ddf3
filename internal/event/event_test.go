// internal/event/event_test.go
package event

import "testing"

type countingListener struct {
	seen []Event
}

func (c *countingListener) OnEvent(e Event) {
	c.seen = append(c.seen, e)
}

func TestDispatchReachesOnlySubscribers(t *testing.T) {
	d := NewDispatcher()
	a := &countingListener{}
	b := &countingListener{}
	d.Subscribe(EnemyKilled, a)
	d.Subscribe(WaveEnded, b)

	d.Dispatch(Event{Type: EnemyKilled, Data: 42})

	if len(a.seen) != 1 {
		t.Fatalf("Subscriber received %d events, want 1", len(a.seen))
	}
	if got := a.seen[0].Data.(int); got != 42 {
		t.Errorf("Payload = %v, want 42", got)
	}
	if len(b.seen) != 0 {
		t.Errorf("Listener on a different type received %d events", len(b.seen))
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	d := NewDispatcher()
	a := &countingListener{}
	d.Subscribe(EnemyKilled, a)
	d.Unsubscribe(EnemyKilled, a)

	d.Dispatch(Event{Type: EnemyKilled})
	if len(a.seen) != 0 {
		t.Errorf("Unsubscribed listener received %d events", len(a.seen))
	}

	// Unsubscribing an unknown listener is a no-op.
	d.Unsubscribe(WaveEnded, a)
}

func TestSubscriptionOrderPreserved(t *testing.T) {
	d := NewDispatcher()
	var order []int
	first := listenerFunc(func(Event) { order = append(order, 1) })
	second := listenerFunc(func(Event) { order = append(order, 2) })
	d.Subscribe(WaveStarted, first)
	d.Subscribe(WaveStarted, second)

	d.Dispatch(Event{Type: WaveStarted})
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("Delivery order = %v, want [1 2]", order)
	}
}

type listenerFunc func(Event)

func (f listenerFunc) OnEvent(e Event) { f(e) }
