package obstacle

import "github.com/vovakirdan/precision-drop/internal/event"

// Bus fans in the signals of every obstacle a builder produces, so
// consumers subscribe once instead of per ring.
type Bus struct {
	Passed        event.Signal[Handle]
	Collided      event.Signal[Handle]
	HazardTouched event.Signal[Handle]

	subs  event.Group
	perOb map[Handle]*event.Group
}

// NewBus attaches a bus to b. Obstacles built before the call are not seen.
func NewBus(b *Builder) *Bus {
	bus := &Bus{perOb: make(map[Handle]*event.Group)}
	bus.subs.Add(b.Built.Subscribe(bus.attach))
	bus.subs.Add(b.arena.Removed.Subscribe(bus.release))
	return bus
}

func (bus *Bus) attach(o *Obstacle) {
	g := &event.Group{}
	g.Add(o.Passed.Subscribe(func(o *Obstacle) { bus.Passed.Emit(o.handle) }))
	g.Add(o.Collided.Subscribe(func(o *Obstacle) { bus.Collided.Emit(o.handle) }))
	g.Add(o.HazardTouched.Subscribe(func(o *Obstacle) { bus.HazardTouched.Emit(o.handle) }))
	bus.perOb[o.handle] = g
}

func (bus *Bus) release(h Handle) {
	if g, ok := bus.perOb[h]; ok {
		g.Cancel()
		delete(bus.perOb, h)
	}
}

// Close detaches the bus from the builder and every obstacle.
func (bus *Bus) Close() {
	bus.subs.Cancel()
	for h, g := range bus.perOb {
		g.Cancel()
		delete(bus.perOb, h)
	}
}
