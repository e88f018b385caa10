// Package rules holds the streak rules selectable by name.
package rules

import "github.com/vovakirdan/precision-drop/internal/registry"

func init() {
	registry.Register(PlainID, func(registry.Options) registry.Rule { return &Plain{} })
}

// PlainID identifies the pass-through rule.
const PlainID = "plain"

// Plain counts passes but never fires a combo.
type Plain struct {
	streak int
}

func (p *Plain) ID() string    { return PlainID }
func (p *Plain) Title() string { return "Plain pass-through" }

func (p *Plain) OnPass() registry.Outcome {
	p.streak++
	return registry.Outcome{Streak: p.streak}
}

func (p *Plain) OnCollision() { p.streak = 0 }
func (p *Plain) Streak() int  { return p.streak }
func (p *Plain) Reset()       { p.streak = 0 }
