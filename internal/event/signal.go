// Package event provides synchronous observer signals. Subscribing returns a
// Subscription token; cancelling it detaches the handler deterministically,
// so teardown never depends on the garbage collector.
package event

// Signal delivers values of type T to its subscribers in subscription order.
// It is meant for the single-threaded update loop and is not safe for
// concurrent use.
type Signal[T any] struct {
	handlers []handler[T]
	nextID   uint64
}

type handler[T any] struct {
	id uint64
	fn func(T)
}

// Subscription detaches a handler from its signal.
type Subscription struct {
	cancel func()
}

// Cancel detaches the handler. Calling it more than once is a no-op,
// as is cancelling the zero Subscription.
func (s *Subscription) Cancel() {
	if s == nil || s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
}

// Active reports whether the subscription has not been cancelled.
func (s *Subscription) Active() bool {
	return s != nil && s.cancel != nil
}

// Subscribe registers fn and returns the token that detaches it.
func (s *Signal[T]) Subscribe(fn func(T)) *Subscription {
	s.nextID++
	id := s.nextID
	s.handlers = append(s.handlers, handler[T]{id: id, fn: fn})
	return &Subscription{cancel: func() { s.remove(id) }}
}

func (s *Signal[T]) remove(id uint64) {
	for i, h := range s.handlers {
		if h.id == id {
			s.handlers = append(s.handlers[:i:i], s.handlers[i+1:]...)
			return
		}
	}
}

// Emit calls every subscribed handler with v. Handlers added or removed
// while emitting take effect from the next Emit.
func (s *Signal[T]) Emit(v T) {
	if len(s.handlers) == 0 {
		return
	}
	snapshot := s.handlers
	for _, h := range snapshot {
		h.fn(v)
	}
}

// Len returns the number of active subscribers.
func (s *Signal[T]) Len() int {
	return len(s.handlers)
}

// Group collects subscriptions so they can be cancelled together.
type Group struct {
	subs []*Subscription
}

// Add tracks sub in the group.
func (g *Group) Add(sub *Subscription) {
	g.subs = append(g.subs, sub)
}

// Cancel detaches every tracked subscription and empties the group.
func (g *Group) Cancel() {
	for _, sub := range g.subs {
		sub.Cancel()
	}
	g.subs = nil
}
