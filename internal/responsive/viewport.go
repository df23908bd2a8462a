package responsive

import "sync"

// Size is a width/height pair in device-independent units
type Size struct {
	Width  float64
	Height float64
}

// Viewport holds the live window dimensions shared by every engine reading it.
// It is owned by the composition root and refreshed by the resize handler.
type Viewport struct {
	mu   sync.RWMutex
	size Size
}

// NewViewport creates the viewport state from the host's initial window size
func NewViewport(width, height float64) (*Viewport, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	return &Viewport{size: Size{Width: width, Height: height}}, nil
}

// Refresh replaces the current dimensions. Invalid dimensions leave the previous state intact.
func (v *Viewport) Refresh(width, height float64) error {
	if err := checkDimensions(width, height); err != nil {
		return err
	}

	v.mu.Lock()
	v.size = Size{Width: width, Height: height}
	v.mu.Unlock()
	return nil
}

// Size returns a snapshot of the current dimensions
func (v *Viewport) Size() Size {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.size
}

func checkDimensions(width, height float64) error {
	// NaN fails both comparisons, so test for positivity rather than <= 0
	if !(width > 0) || !(height > 0) {
		return &PreconditionViolation{Width: width, Height: height}
	}
	return nil
}
