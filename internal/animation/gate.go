package animation

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Default cooldown windows
const (
	DefaultPageCooldown = 300 * time.Millisecond
	DefaultItemCooldown = 200 * time.Millisecond
)

// State is the transition state of a gate
type State int

const (
	StateIdle State = iota
	StateTransitioning
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTransitioning:
		return "transitioning"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// GateConfig holds the tunables of a gate
type GateConfig struct {
	Name     string
	Cooldown time.Duration
}

// PageGateConfig returns the gate configuration used for screen transitions
func PageGateConfig() GateConfig {
	return GateConfig{Name: "page", Cooldown: DefaultPageCooldown}
}

// ItemGateConfig returns the gate configuration used for list item entrances
func ItemGateConfig() GateConfig {
	return GateConfig{Name: "item", Cooldown: DefaultItemCooldown}
}

// Validate rejects negative cooldowns
func (c GateConfig) Validate() error {
	if c.Cooldown < 0 {
		return &ConfigurationError{Field: "cooldown", Reason: fmt.Sprintf("must not be negative, got %s", c.Cooldown)}
	}
	return nil
}

// Decision is the outcome of evaluating one trigger
type Decision struct {
	ShouldAnimate bool
}

// ResetFunc restores the owner's animatable values before an effect is replayed
type ResetFunc func(opacity, offset float64)

// Gate decides which triggers start a transition. At most one transition is in flight;
// triggers arriving while one is running are dropped, not queued. A gate is used from a
// single goroutine, the one driving its owner.
type Gate struct {
	name          string
	cooldown      time.Duration
	clock         Clock
	lastTrigger   time.Time
	triggered     bool
	transitioning bool
	pendingLabel  string
	hasPending    bool
	onReset       ResetFunc
	disposed      bool
}

// NewGate creates a gate; a nil clock means the system clock
func NewGate(cfg GateConfig, clock Clock) (*Gate, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = NewSystemClock()
	}
	return &Gate{
		name:     cfg.Name,
		cooldown: cfg.Cooldown,
		clock:    clock,
	}, nil
}

// Trigger evaluates a trigger happening now
func (g *Gate) Trigger(forceReset bool) Decision {
	return g.EvaluateTrigger(g.clock.Now(), forceReset)
}

// EvaluateTrigger decides whether a trigger at now starts a transition
func (g *Gate) EvaluateTrigger(now time.Time, forceReset bool) Decision {
	return g.evaluate(now, forceReset, "", false)
}

// EvaluateLabeled is EvaluateTrigger for a trigger carrying a destination label, which is
// held as pending until the transition completes
func (g *Gate) EvaluateLabeled(now time.Time, forceReset bool, label string) Decision {
	return g.evaluate(now, forceReset, label, true)
}

func (g *Gate) evaluate(now time.Time, forceReset bool, label string, labeled bool) Decision {
	if g.disposed {
		logrus.Debugf("Gate %s: trigger refused, gate disposed", g.name)
		return Decision{}
	}
	if g.transitioning {
		logrus.Debugf("Gate %s: trigger dropped while transitioning", g.name)
		return Decision{}
	}

	accept := !g.triggered || forceReset
	if !accept {
		elapsed := now.Sub(g.lastTrigger)
		if elapsed < 0 {
			elapsed = 0
		}
		accept = elapsed > g.cooldown
	}
	if !accept {
		logrus.Debugf("Gate %s: trigger suppressed within %s cooldown", g.name, g.cooldown)
		return Decision{}
	}

	if !g.triggered || now.After(g.lastTrigger) {
		g.lastTrigger = now
	}
	g.triggered = true
	g.transitioning = true
	g.pendingLabel, g.hasPending = label, labeled

	logrus.Debugf("Gate %s: transition started (force=%t, label=%q)", g.name, forceReset, label)
	return Decision{ShouldAnimate: true}
}

// Complete is the effect-complete callback. It returns the gate to idle and hands back
// the pending label, if the transition carried one.
func (g *Gate) Complete() (string, bool) {
	if !g.transitioning {
		return "", false
	}
	label, ok := g.pendingLabel, g.hasPending
	g.transitioning = false
	g.pendingLabel, g.hasPending = "", false
	logrus.Debugf("Gate %s: transition complete", g.name)
	return label, ok
}

// OnReset registers the owner's reset callback
func (g *Gate) OnReset(fn ResetFunc) {
	g.onReset = fn
}

// ResetTo signals the owner to restore its animatable values before replaying
func (g *Gate) ResetTo(initialOpacity, initialOffset float64) {
	if g.onReset != nil {
		g.onReset(initialOpacity, initialOffset)
	}
}

// SetCooldown changes the cooldown window, used on configuration reload
func (g *Gate) SetCooldown(cooldown time.Duration) error {
	if err := (GateConfig{Cooldown: cooldown}).Validate(); err != nil {
		return err
	}
	g.cooldown = cooldown
	return nil
}

// Dispose ends the gate's lifecycle; every later trigger is refused
func (g *Gate) Dispose() {
	g.disposed = true
	g.transitioning = false
	g.pendingLabel, g.hasPending = "", false
	g.onReset = nil
}

// State returns the current transition state
func (g *Gate) State() State {
	if g.transitioning {
		return StateTransitioning
	}
	return StateIdle
}

// IsTransitioning reports whether a transition is in flight
func (g *Gate) IsTransitioning() bool { return g.transitioning }

// Disposed reports whether Dispose was called
func (g *Gate) Disposed() bool { return g.disposed }

// Cooldown returns the current cooldown window
func (g *Gate) Cooldown() time.Duration { return g.cooldown }

// LastTrigger returns the time of the last accepted trigger
func (g *Gate) LastTrigger() (time.Time, bool) { return g.lastTrigger, g.triggered }

// PendingLabel returns the label of the in-flight transition
func (g *Gate) PendingLabel() (string, bool) { return g.pendingLabel, g.hasPending }
