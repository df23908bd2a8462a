package responsive

import (
	"fmt"
	"math"
)

// Default reference design viewport (iPhone 12 Pro)
const (
	DefaultBaseWidth      = 390
	DefaultBaseHeight     = 844
	DefaultPixelRatio     = 3
	DefaultTabletMinWidth = 600
)

// Baseline is the viewport every layout constant is authored against
type Baseline struct {
	BaseWidth  float64
	BaseHeight float64
}

// DefaultBaseline is the 390x844 design viewport
var DefaultBaseline = Baseline{BaseWidth: DefaultBaseWidth, BaseHeight: DefaultBaseHeight}

// Engine converts baseline units into units for the current viewport.
// Every call reads the viewport at call time; nothing is cached across refreshes.
type Engine struct {
	baseline       Baseline
	viewport       *Viewport
	pixelRatio     float64
	tabletMinWidth float64
	fontAdjustment FontAdjustment
}

// Option customizes an Engine
type Option func(*Engine)

// WithPixelRatio sets the device pixel density used when rounding font sizes
func WithPixelRatio(ratio float64) Option {
	return func(e *Engine) {
		e.pixelRatio = ratio
	}
}

// WithFontAdjustment installs the platform font policy
func WithFontAdjustment(adjust FontAdjustment) Option {
	return func(e *Engine) {
		e.fontAdjustment = adjust
	}
}

// WithTabletMinWidth sets the width at which the viewport is classified as a tablet
func WithTabletMinWidth(width float64) Option {
	return func(e *Engine) {
		e.tabletMinWidth = width
	}
}

// NewEngine creates a scale engine bound to the given viewport
func NewEngine(baseline Baseline, viewport *Viewport, opts ...Option) (*Engine, error) {
	if !(baseline.BaseWidth > 0) || !(baseline.BaseHeight > 0) {
		return nil, &ConfigurationError{
			Field:  "baseline",
			Reason: fmt.Sprintf("must be positive, got %gx%g", baseline.BaseWidth, baseline.BaseHeight),
		}
	}
	if viewport == nil {
		return nil, &ConfigurationError{Field: "viewport", Reason: "is required"}
	}

	e := &Engine{
		baseline:       baseline,
		viewport:       viewport,
		pixelRatio:     DefaultPixelRatio,
		tabletMinWidth: DefaultTabletMinWidth,
		fontAdjustment: NoFontAdjustment,
	}
	for _, opt := range opts {
		opt(e)
	}

	if !(e.pixelRatio > 0) {
		return nil, &ConfigurationError{Field: "pixel_ratio", Reason: fmt.Sprintf("must be positive, got %g", e.pixelRatio)}
	}
	if !(e.tabletMinWidth > 0) {
		return nil, &ConfigurationError{Field: "tablet_min_width", Reason: fmt.Sprintf("must be positive, got %g", e.tabletMinWidth)}
	}
	if e.fontAdjustment == nil {
		e.fontAdjustment = NoFontAdjustment
	}

	return e, nil
}

// Baseline returns the reference viewport
func (e *Engine) Baseline() Baseline {
	return e.baseline
}

// Viewport returns a snapshot of the current viewport
func (e *Engine) Viewport() Size {
	return e.viewport.Size()
}

// RefreshViewport is called by the resize handler when the window changes
func (e *Engine) RefreshViewport(width, height float64) error {
	return e.viewport.Refresh(width, height)
}

// ScaleByWidth scales a baseline size proportionally to the viewport width
func (e *Engine) ScaleByWidth(size float64) float64 {
	return e.viewport.Size().Width * size / e.baseline.BaseWidth
}

// ScaleByHeight scales a baseline size proportionally to the viewport height
func (e *Engine) ScaleByHeight(size float64) float64 {
	return e.viewport.Size().Height * size / e.baseline.BaseHeight
}

// ResponsiveSize is the general-purpose size helper; it follows the width
func (e *Engine) ResponsiveSize(size float64) float64 {
	return e.ScaleByWidth(size)
}

// ScaleFont scales a font size by width, snaps it to the pixel grid and applies the platform policy
func (e *Engine) ScaleFont(size float64) int {
	scale := e.viewport.Size().Width / e.baseline.BaseWidth
	rounded := int(math.Round(RoundToNearestPixel(size*scale, e.pixelRatio)))
	return e.fontAdjustment(rounded)
}

// IsLandscape reports whether the viewport is wider than it is tall. A square viewport is portrait.
func (e *Engine) IsLandscape() bool {
	s := e.viewport.Size()
	return s.Width > s.Height
}

// IsTablet reports whether the viewport width reaches the tablet threshold
func (e *Engine) IsTablet() bool {
	return e.viewport.Size().Width >= e.tabletMinWidth
}

// ClassifyFormFactor returns tablet on tablet-width viewports and phone otherwise
func ClassifyFormFactor[T any](e *Engine, phone, tablet T) T {
	if e.IsTablet() {
		return tablet
	}
	return phone
}
