// Package sim is the headless physics collaborator: a ball falling through
// a rotating tower of rings. It instantiates rings for the obstacle builder
// and reports contacts and gap entries back to their segments.
package sim

import (
	"math"
	"sort"

	"github.com/vovakirdan/precision-drop/internal/core"
	"github.com/vovakirdan/precision-drop/internal/obstacle"
)

// Physics holds ball parameters in world units per second.
type Physics struct {
	Gravity      float64
	JumpStrength float64
	MaxFallSpeed float64
}

// BallAngle is the fixed world angle the ball drops along.
const BallAngle = 0.0

// StartHeight is how far above the first ring the ball spawns.
const StartHeight = 2.0

// ShardLifetime is how long, in seconds, broken ring pieces stay visible.
const ShardLifetime = 0.8

type body struct {
	handle   obstacle.Handle
	depth    float64
	rotation float64
	segments []*obstacle.Segment
}

// Shard is a flying fragment of a broken ring.
type Shard struct {
	Ring     obstacle.Handle
	Segments core.AngularRange
	Depth    float64
	Rotation float64
	Heading  float64
	Force    float64
	Age      float64
}

// World is the ring tower and ball. It implements obstacle.Spawner.
type World struct {
	physics Physics

	ballY    float64
	ballVel  float64
	towerRot float64

	bodies map[obstacle.Handle]*body
	shards []Shard
}

// NewWorld creates an empty tower with the ball above depth 0.
func NewWorld(p Physics) *World {
	return &World{
		physics: p,
		ballY:   StartHeight,
		bodies:  make(map[obstacle.Handle]*body),
	}
}

// Spawn places a ring in the tower.
func (w *World) Spawn(p obstacle.Placement) error {
	w.bodies[p.Handle] = &body{
		handle:   p.Handle,
		depth:    p.Depth,
		rotation: p.Rotation,
		segments: p.Segments,
	}
	return nil
}

// Shatter turns a ring into flying shards.
func (w *World) Shatter(h obstacle.Handle, fragments []obstacle.Fragment) {
	b, ok := w.bodies[h]
	if !ok {
		return
	}
	for _, f := range fragments {
		w.shards = append(w.shards, Shard{
			Ring:     h,
			Segments: f.Segments,
			Depth:    b.depth,
			Rotation: b.rotation,
			Heading:  f.Heading,
			Force:    f.Force,
		})
	}
}

// Despawn removes a ring from the tower.
func (w *World) Despawn(h obstacle.Handle) {
	delete(w.bodies, h)
}

// BallDepth returns the ball's vertical position.
func (w *World) BallDepth() float64 { return w.ballY }

// BallVelocity returns the ball's vertical velocity, positive is up.
func (w *World) BallVelocity() float64 { return w.ballVel }

// TowerRotation returns the tower rotation in degrees.
func (w *World) TowerRotation() float64 { return w.towerRot }

// Rotate turns the tower by deg degrees.
func (w *World) Rotate(deg float64) {
	w.towerRot = core.NormalizeDegrees(w.towerRot + deg)
}

// Jump sets the ball's upward velocity to the jump strength.
func (w *World) Jump() {
	w.ballVel = w.physics.JumpStrength
}

// Shards returns the live shards.
func (w *World) Shards() []Shard { return w.shards }

// Rings returns the spawned rings sorted from top to bottom.
func (w *World) Rings() []RingView {
	out := make([]RingView, 0, len(w.bodies))
	for _, b := range w.bodies {
		out = append(out, RingView{Handle: b.handle, Depth: b.depth, Rotation: b.rotation, Segments: b.segments})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Depth > out[j].Depth })
	return out
}

// RingView is a read-only view of a spawned ring.
type RingView struct {
	Handle   obstacle.Handle
	Depth    float64
	Rotation float64
	Segments []*obstacle.Segment
}

// SegmentAt returns the segment of r lying at world angle deg for the
// given tower rotation.
func (r RingView) SegmentAt(deg, towerRot float64) *obstacle.Segment {
	n := len(r.Segments)
	if n == 0 {
		return nil
	}
	local := core.NormalizeDegrees(deg - towerRot - r.Rotation)
	i := int(local / (360.0 / float64(n)))
	if i >= n {
		i = n - 1
	}
	return r.Segments[i]
}

// Solid reports whether the ring still has live colliders.
func (r RingView) Solid() bool {
	for _, s := range r.Segments {
		if s.ColliderEnabled() {
			return true
		}
	}
	return false
}

// Step advances the ball by dt seconds and reports every ring it crosses.
func (w *World) Step(dt float64) {
	w.stepShards(dt)

	w.ballVel -= w.physics.Gravity * dt
	if w.ballVel < -w.physics.MaxFallSpeed {
		w.ballVel = -w.physics.MaxFallSpeed
	}
	prev := w.ballY
	next := prev + w.ballVel*dt
	if next >= prev {
		w.ballY = next
		return
	}

	// Rings may be spawned while reporting; only the snapshot is crossed.
	for _, r := range w.Rings() {
		if r.Depth > prev || r.Depth < next {
			continue
		}
		seg := r.SegmentAt(BallAngle, w.towerRot)
		if seg == nil || !seg.ColliderEnabled() {
			continue
		}
		if seg.IsTrigger() {
			seg.ReportTrigger()
			continue
		}
		// Land on the ring; a bounce listener may relaunch the ball.
		w.ballY = r.Depth
		w.ballVel = 0
		seg.ReportContact()
		return
	}
	w.ballY = next
}

func (w *World) stepShards(dt float64) {
	kept := w.shards[:0]
	for _, s := range w.shards {
		s.Age += dt
		if s.Age < ShardLifetime {
			kept = append(kept, s)
		}
	}
	w.shards = kept
}

// Offset returns the shard's current planar displacement along its heading.
func (s Shard) Offset() (dx, dy float64) {
	dist := s.Force * s.Age
	rad := s.Heading * math.Pi / 180
	return math.Cos(rad) * dist, math.Sin(rad) * dist
}
