package animation

import (
	"fmt"
	"time"
)

// DefaultStaggerIncrement is the per-item delay used by list entrances
const DefaultStaggerIncrement = 50 * time.Millisecond

// StaggerSpec describes a sequential reveal across sibling items
type StaggerSpec struct {
	BaseDelay        time.Duration
	PerItemIncrement time.Duration
}

// DefaultStaggerSpec returns the list entrance stagger: no base delay, 50ms per item
func DefaultStaggerSpec() StaggerSpec {
	return StaggerSpec{PerItemIncrement: DefaultStaggerIncrement}
}

// Validate rejects negative delays
func (s StaggerSpec) Validate() error {
	if s.BaseDelay < 0 {
		return &ConfigurationError{Field: "stagger_base", Reason: fmt.Sprintf("must not be negative, got %s", s.BaseDelay)}
	}
	if s.PerItemIncrement < 0 {
		return &ConfigurationError{Field: "stagger_increment", Reason: fmt.Sprintf("must not be negative, got %s", s.PerItemIncrement)}
	}
	return nil
}

// ComputeStaggerDelay returns the start delay for the item at index. Negative indexes count as 0.
func ComputeStaggerDelay(index int, spec StaggerSpec) time.Duration {
	if index < 0 {
		index = 0
	}
	return spec.BaseDelay + time.Duration(index)*spec.PerItemIncrement
}

// StaggerDelays returns the delays for a batch of n items
func StaggerDelays(n int, spec StaggerSpec) []time.Duration {
	if n <= 0 {
		return nil
	}
	delays := make([]time.Duration, n)
	for i := range delays {
		delays[i] = ComputeStaggerDelay(i, spec)
	}
	return delays
}
