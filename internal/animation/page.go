package animation

import (
	"fmt"
	"time"
)

// Page fade durations
const (
	DefaultFadeOut = 200 * time.Millisecond
	DefaultFadeIn  = 300 * time.Millisecond
)

// PagePhase is the phase of a page transition
type PagePhase int

const (
	PhaseIdle PagePhase = iota
	PhaseFadingOut
	PhaseFadingIn
)

// PageConfig configures screen transitions
type PageConfig struct {
	Gate    GateConfig
	FadeOut time.Duration
	FadeIn  time.Duration
}

// DefaultPageConfig returns the screen transition configuration
func DefaultPageConfig() PageConfig {
	return PageConfig{Gate: PageGateConfig(), FadeOut: DefaultFadeOut, FadeIn: DefaultFadeIn}
}

// Validate checks the fade durations and gate
func (c PageConfig) Validate() error {
	if err := c.Gate.Validate(); err != nil {
		return err
	}
	if c.FadeOut < 0 || c.FadeIn < 0 {
		return &ConfigurationError{Field: "fade", Reason: fmt.Sprintf("durations must not be negative, got %s / %s", c.FadeOut, c.FadeIn)}
	}
	return nil
}

// PageTransition fades the current screen out, swaps to the pending one and fades it in
type PageTransition struct {
	cfg        PageConfig
	gate       *Gate
	clock      Clock
	current    string
	phase      PagePhase
	phaseStart time.Time
	opacity    float64
}

// NewPageTransition creates a transition controller showing initial
func NewPageTransition(initial string, cfg PageConfig, clock Clock) (*PageTransition, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = NewSystemClock()
	}
	gate, err := NewGate(cfg.Gate, clock)
	if err != nil {
		return nil, err
	}
	return &PageTransition{cfg: cfg, gate: gate, clock: clock, current: initial, opacity: 1}, nil
}

// Navigate requests a switch to label. Navigating to the current page, or while a
// transition is running, does nothing.
func (p *PageTransition) Navigate(label string, forceReset bool) bool {
	if label == p.current || p.gate.IsTransitioning() {
		return false
	}
	now := p.clock.Now()
	if !p.gate.EvaluateLabeled(now, forceReset, label).ShouldAnimate {
		return false
	}
	p.phase = PhaseFadingOut
	p.phaseStart = now
	return true
}

// Step advances the fades and reports whether the transition is still running
func (p *PageTransition) Step(now time.Time) bool {
	elapsed := now.Sub(p.phaseStart)

	switch p.phase {
	case PhaseFadingOut:
		if elapsed < p.cfg.FadeOut {
			p.opacity = 1 - progress(elapsed, p.cfg.FadeOut)
			return true
		}
		if label, ok := p.gate.PendingLabel(); ok {
			p.current = label
		}
		p.phase = PhaseFadingIn
		p.phaseStart = now
		p.opacity = 0
		return true

	case PhaseFadingIn:
		if elapsed < p.cfg.FadeIn {
			p.opacity = progress(elapsed, p.cfg.FadeIn)
			return true
		}
		p.opacity = 1
		p.phase = PhaseIdle
		p.gate.Complete()
		return false
	}
	return false
}

func progress(elapsed, total time.Duration) float64 {
	if total <= 0 || elapsed < 0 {
		return 0
	}
	return float64(elapsed) / float64(total)
}

// Current returns the page being shown
func (p *PageTransition) Current() string { return p.current }

// Pending returns the destination of the running transition
func (p *PageTransition) Pending() (string, bool) { return p.gate.PendingLabel() }

// Opacity returns the opacity of the visible page
func (p *PageTransition) Opacity() float64 { return p.opacity }

// Phase returns the current phase
func (p *PageTransition) Phase() PagePhase { return p.phase }

// Transitioning reports whether a transition is running
func (p *PageTransition) Transitioning() bool { return p.gate.IsTransitioning() }

// Gate exposes the page gate
func (p *PageTransition) Gate() *Gate { return p.gate }
