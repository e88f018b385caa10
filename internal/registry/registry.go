// Package registry provides a global registry for streak rule factories.
// Rules register themselves in init() functions, allowing the flow
// coordinator to pick one by name from configuration.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Outcome is what a rule decides after a pass.
type Outcome struct {
	// Streak is the consecutive pass count after the rule ran.
	Streak int
	// Combo asks the coordinator to smash the next obstacle as a bonus pass.
	Combo bool
}

// Rule tracks consecutive passes and decides when a combo fires.
// Rules hold pure state and never touch obstacles themselves.
type Rule interface {
	// ID returns a unique identifier for this rule (e.g., "plain", "combo").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// OnPass records a pass through a gap.
	OnPass() Outcome

	// OnCollision records a solid or hazard contact.
	OnCollision()

	// Streak returns the current consecutive pass count.
	Streak() int

	// Reset clears the streak for a new run.
	Reset()
}

// Options tunes a rule at construction.
type Options struct {
	ComboThreshold int
}

// RuleInfo contains metadata about a registered rule.
type RuleInfo struct {
	ID    string
	Title string
}

// Factory creates a new rule instance.
type Factory func(opts Options) Rule

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a rule factory to the registry.
// Panics if a rule with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: rule %q already registered", id))
	}

	factories[id] = f
	titles[id] = f(Options{}).Title()
}

// List returns information about all registered rules, sorted by ID.
func List() []RuleInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]RuleInfo, 0, len(factories))
	for id := range factories {
		result = append(result, RuleInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a rule by its ID.
func Create(id string, opts Options) (Rule, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown rule %q", id)
	}

	return f(opts), nil
}

// Exists checks if a rule with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
