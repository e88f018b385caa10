package rules

import "github.com/vovakirdan/precision-drop/internal/registry"

func init() {
	registry.Register(ComboID, func(opts registry.Options) registry.Rule { return NewCombo(opts.ComboThreshold) })
}

// ComboID identifies the break-after-threshold rule.
const ComboID = "combo"

// DefaultComboThreshold is the streak that must be exceeded for a combo.
const DefaultComboThreshold = 2

// Combo fires once the streak exceeds its threshold, then starts over.
type Combo struct {
	threshold int
	streak    int
}

// NewCombo creates a combo rule. A non-positive threshold uses the default.
func NewCombo(threshold int) *Combo {
	if threshold <= 0 {
		threshold = DefaultComboThreshold
	}
	return &Combo{threshold: threshold}
}

func (c *Combo) ID() string    { return ComboID }
func (c *Combo) Title() string { return "Combo smash" }

// Threshold returns the streak that must be exceeded.
func (c *Combo) Threshold() int { return c.threshold }

func (c *Combo) OnPass() registry.Outcome {
	c.streak++
	if c.streak > c.threshold {
		out := registry.Outcome{Streak: c.streak, Combo: true}
		c.streak = 0
		return out
	}
	return registry.Outcome{Streak: c.streak}
}

func (c *Combo) OnCollision() { c.streak = 0 }
func (c *Combo) Streak() int  { return c.streak }
func (c *Combo) Reset()       { c.streak = 0 }
