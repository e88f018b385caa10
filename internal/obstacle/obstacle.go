package obstacle

import (
	"time"

	"github.com/vovakirdan/precision-drop/internal/core"
	"github.com/vovakirdan/precision-drop/internal/event"
	"github.com/vovakirdan/precision-drop/internal/ring"
)

// Handle identifies an obstacle inside the arena.
type Handle uint64

// State is the lifecycle state of an obstacle.
type State int

const (
	Intact State = iota
	Passed
)

func (s State) String() string {
	if s == Passed {
		return "passed"
	}
	return "intact"
}

// DefaultBounceCooldown is the window in which repeated solid contacts are
// collapsed into one collision.
const DefaultBounceCooldown = 150 * time.Millisecond

// Obstacle is the runtime state of one ring: Intact until the player passes
// through a gap or the ring is smashed, then Passed for good.
type Obstacle struct {
	handle   Handle
	depth    float64
	rotation float64
	segments []*Segment

	state       State
	clock       core.Clock
	cooldown    time.Duration
	bounceUntil time.Duration
	pieceSubs   event.Group
	onBreak     func(*Obstacle)

	// Passed fires once, when a gap trigger is entered.
	Passed event.Signal[*Obstacle]
	// Collided fires for every solid or hazard contact outside the cooldown.
	Collided event.Signal[*Obstacle]
	// HazardTouched fires alongside Collided when the contact was a hazard.
	HazardTouched event.Signal[*Obstacle]
}

func newObstacle(h Handle, depth, rotation float64, segments []*Segment, clock core.Clock, cooldown time.Duration, onBreak func(*Obstacle)) *Obstacle {
	o := &Obstacle{
		handle:   h,
		depth:    depth,
		rotation: rotation,
		segments: segments,
		clock:    clock,
		cooldown: cooldown,
		onBreak:  onBreak,
	}
	for _, s := range segments {
		o.pieceSubs.Add(s.contacts.Subscribe(o.pieceContacted))
		o.pieceSubs.Add(s.triggers.Subscribe(o.piecePassed))
	}
	return o
}

// Handle returns the arena handle of the obstacle.
func (o *Obstacle) Handle() Handle { return o.handle }

// Depth returns the vertical position; deeper obstacles are more negative.
func (o *Obstacle) Depth() float64 { return o.depth }

// Rotation returns the rotation offset in degrees.
func (o *Obstacle) Rotation() float64 { return o.rotation }

// State returns the lifecycle state.
func (o *Obstacle) State() State { return o.state }

// Segments returns the ordered segments. The slice must not be modified.
func (o *Obstacle) Segments() []*Segment { return o.segments }

// Variants returns the variant of every segment in ring order.
func (o *Obstacle) Variants() []ring.Variant {
	out := make([]ring.Variant, len(o.segments))
	for i, s := range o.segments {
		out[i] = s.variant
	}
	return out
}

func (o *Obstacle) pieceContacted(s *Segment) {
	if o.state == Passed {
		return
	}
	now := o.clock.Now()
	if now < o.bounceUntil {
		return
	}
	o.bounceUntil = now + o.cooldown

	o.Collided.Emit(o)
	if s.variant == ring.Hazard {
		o.HazardTouched.Emit(o)
	}
}

func (o *Obstacle) piecePassed(*Segment) {
	if !o.finish() {
		return
	}
	o.Passed.Emit(o)
}

// Smash breaks the obstacle without a pass-through. It reports false when
// the obstacle had already been passed. Passed is not emitted.
func (o *Obstacle) Smash() bool {
	return o.finish()
}

// finish performs the one-way transition to Passed: it detaches every
// piece listener, disables colliders and hands the ring to the breaker.
func (o *Obstacle) finish() bool {
	if o.state == Passed {
		return false
	}
	o.state = Passed
	o.pieceSubs.Cancel()
	for _, s := range o.segments {
		s.disableCollider()
	}
	if o.onBreak != nil {
		o.onBreak(o)
	}
	return true
}

// detach drops piece listeners and consumers; used on eviction.
func (o *Obstacle) detach() {
	o.pieceSubs.Cancel()
}
