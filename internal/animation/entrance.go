package animation

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Entrance defaults: fade in from transparent while sliding up by 20 units
const (
	DefaultEntranceDuration = 300 * time.Millisecond
	DefaultInitialOpacity   = 0
	DefaultInitialOffset    = 20
	DefaultFPS              = 60
	DefaultSpringFrequency  = 18.0
	DefaultSpringDamping    = 1.0

	settleEpsilon = 0.01
)

// EntranceConfig configures a staggered item entrance
type EntranceConfig struct {
	Gate           GateConfig
	Stagger        StaggerSpec
	Duration       time.Duration
	InitialOpacity float64
	InitialOffset  float64
	FPS            int
	Frequency      float64
	Damping        float64
}

// DefaultEntranceConfig returns the list item entrance configuration
func DefaultEntranceConfig() EntranceConfig {
	return EntranceConfig{
		Gate:           ItemGateConfig(),
		Stagger:        DefaultStaggerSpec(),
		Duration:       DefaultEntranceDuration,
		InitialOpacity: DefaultInitialOpacity,
		InitialOffset:  DefaultInitialOffset,
		FPS:            DefaultFPS,
		Frequency:      DefaultSpringFrequency,
		Damping:        DefaultSpringDamping,
	}
}

// Validate checks every timing value
func (c EntranceConfig) Validate() error {
	if err := c.Gate.Validate(); err != nil {
		return err
	}
	if err := c.Stagger.Validate(); err != nil {
		return err
	}
	if c.Duration <= 0 {
		return &ConfigurationError{Field: "duration", Reason: fmt.Sprintf("must be positive, got %s", c.Duration)}
	}
	if c.FPS <= 0 {
		return &ConfigurationError{Field: "fps", Reason: fmt.Sprintf("must be positive, got %d", c.FPS)}
	}
	if c.Frequency <= 0 || c.Damping < 0 {
		return &ConfigurationError{Field: "spring", Reason: fmt.Sprintf("invalid frequency %g / damping %g", c.Frequency, c.Damping)}
	}
	return nil
}

// Entrance animates one list item in: the item owns opacity and vertical offset, and its
// gate decides when they are reset and replayed.
type Entrance struct {
	cfg    EntranceConfig
	gate   *Gate
	clock  Clock
	spring harmonica.Spring
	delay  time.Duration

	opacity    float64
	opacityVel float64
	offset     float64
	offsetVel  float64

	startAt time.Time
	running bool
}

// NewEntrance creates the entrance of the item at index
func NewEntrance(index int, cfg EntranceConfig, clock Clock) (*Entrance, error) {
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

	e := &Entrance{
		cfg:     cfg,
		gate:    gate,
		clock:   clock,
		spring:  harmonica.NewSpring(harmonica.FPS(cfg.FPS), cfg.Frequency, cfg.Damping),
		delay:   ComputeStaggerDelay(index, cfg.Stagger),
		opacity: cfg.InitialOpacity,
		offset:  cfg.InitialOffset,
	}
	gate.OnReset(e.reset)
	return e, nil
}

func (e *Entrance) reset(opacity, offset float64) {
	e.opacity, e.opacityVel = opacity, 0
	e.offset, e.offsetVel = offset, 0
}

// Start triggers the entrance (mount, navigation, new data). It reports whether the
// effect will play.
func (e *Entrance) Start(forceReset bool) bool {
	now := e.clock.Now()
	if !e.gate.EvaluateTrigger(now, forceReset).ShouldAnimate {
		return false
	}
	e.gate.ResetTo(e.cfg.InitialOpacity, e.cfg.InitialOffset)
	e.startAt = now.Add(e.delay)
	e.running = true
	return true
}

// Step advances the effect by one frame and reports whether it is still running
func (e *Entrance) Step(now time.Time) bool {
	if !e.running {
		return false
	}
	if now.Before(e.startAt) {
		return true
	}

	e.opacity, e.opacityVel = e.spring.Update(e.opacity, e.opacityVel, 1)
	e.offset, e.offsetVel = e.spring.Update(e.offset, e.offsetVel, 0)

	settled := math.Abs(1-e.opacity) < settleEpsilon && math.Abs(e.offset) < settleEpsilon
	if settled || now.Sub(e.startAt) >= e.cfg.Duration {
		e.reset(1, 0)
		e.running = false
		e.gate.Complete()
	}
	return e.running
}

// Dispose tears down the item's gate
func (e *Entrance) Dispose() {
	e.running = false
	e.gate.Dispose()
}

// Opacity returns the current opacity in [0, 1]
func (e *Entrance) Opacity() float64 {
	return math.Max(0, math.Min(1, e.opacity))
}

// Offset returns the current vertical offset in baseline units
func (e *Entrance) Offset() float64 { return e.offset }

// Delay returns the stagger delay of this item
func (e *Entrance) Delay() time.Duration { return e.delay }

// Animating reports whether the entrance is waiting for its delay or playing
func (e *Entrance) Animating() bool { return e.running }

// Gate exposes the item's gate
func (e *Entrance) Gate() *Gate { return e.gate }
