package obstacle

import "github.com/vovakirdan/precision-drop/internal/event"

// Arena tracks live obstacles by handle in build order.
type Arena struct {
	byHandle map[Handle]*Obstacle
	order    []Handle
	spawner  Spawner

	// Removed fires for every evicted obstacle.
	Removed event.Signal[Handle]
}

func newArena(spawner Spawner) *Arena {
	return &Arena{byHandle: make(map[Handle]*Obstacle), spawner: spawner}
}

func (a *Arena) add(o *Obstacle) {
	a.byHandle[o.handle] = o
	a.order = append(a.order, o.handle)
}

// Get returns the obstacle for h.
func (a *Arena) Get(h Handle) (*Obstacle, bool) {
	o, ok := a.byHandle[h]
	return o, ok
}

// Tracks reports whether h is a live obstacle.
func (a *Arena) Tracks(h Handle) bool {
	_, ok := a.byHandle[h]
	return ok
}

// Current returns the top-most intact obstacle, the one the player is
// falling towards.
func (a *Arena) Current() *Obstacle {
	for _, h := range a.order {
		if o := a.byHandle[h]; o.state == Intact {
			return o
		}
	}
	return nil
}

// All returns the live obstacles in build order.
func (a *Arena) All() []*Obstacle {
	out := make([]*Obstacle, 0, len(a.order))
	for _, h := range a.order {
		out = append(out, a.byHandle[h])
	}
	return out
}

// Len returns the number of live obstacles.
func (a *Arena) Len() int { return len(a.order) }

// Evict removes passed obstacles sitting more than distance above
// playerDepth and returns how many were removed.
func (a *Arena) Evict(playerDepth, distance float64) int {
	kept := a.order[:0]
	var removed []Handle
	for _, h := range a.order {
		o := a.byHandle[h]
		if o.state == Passed && o.depth-playerDepth > distance {
			removed = append(removed, h)
			continue
		}
		kept = append(kept, h)
	}
	a.order = kept
	for _, h := range removed {
		a.byHandle[h].detach()
		delete(a.byHandle, h)
		a.spawner.Despawn(h)
		a.Removed.Emit(h)
	}
	return len(removed)
}
