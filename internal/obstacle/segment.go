package obstacle

import (
	"github.com/vovakirdan/precision-drop/internal/event"
	"github.com/vovakirdan/precision-drop/internal/ring"
)

// Segment is one angular slice of an obstacle. The physics collaborator
// reports contacts and trigger entries against it; it never changes the
// segment's variant.
type Segment struct {
	index    int
	variant  ring.Variant
	angle    float64
	collider bool
	trigger  bool
	visible  bool

	contacts event.Signal[*Segment]
	triggers event.Signal[*Segment]
}

func newSegment(index int, variant ring.Variant, angle float64) *Segment {
	s := &Segment{
		index:    index,
		variant:  variant,
		angle:    angle,
		collider: true,
		visible:  true,
	}
	// Gap pieces are invisible trigger volumes.
	if variant == ring.Gap {
		s.trigger = true
		s.visible = false
	}
	return s
}

// Index returns the segment position in the ring.
func (s *Segment) Index() int { return s.index }

// Variant returns the segment tag.
func (s *Segment) Variant() ring.Variant { return s.variant }

// Angle returns the world angle of the segment's leading edge in degrees.
func (s *Segment) Angle() float64 { return s.angle }

// ColliderEnabled reports whether the segment still takes part in physics.
func (s *Segment) ColliderEnabled() bool { return s.collider }

// IsTrigger reports whether the segment is a pass-through trigger volume.
func (s *Segment) IsTrigger() bool { return s.trigger }

// Visible reports whether the segment should be rendered.
func (s *Segment) Visible() bool { return s.visible }

// ReportContact signals a solid collision against the segment.
// Ignored for triggers and disabled colliders.
func (s *Segment) ReportContact() {
	if !s.collider || s.trigger {
		return
	}
	s.contacts.Emit(s)
}

// ReportTrigger signals that the player entered the segment's trigger zone.
// Ignored for solid pieces and disabled colliders.
func (s *Segment) ReportTrigger() {
	if !s.collider || !s.trigger {
		return
	}
	s.triggers.Emit(s)
}

func (s *Segment) disableCollider() {
	s.collider = false
}
