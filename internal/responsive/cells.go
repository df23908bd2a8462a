package responsive

import (
	"fmt"
	"math"
)

// Default size of one terminal cell in device-independent units. An 80x50 terminal
// then approximates the 390x844 baseline.
const (
	DefaultCellWidth  = 5
	DefaultCellHeight = 17
)

// CellMetrics converts between terminal cells and device-independent units
type CellMetrics struct {
	CellWidth  float64
	CellHeight float64
}

// DefaultCellMetrics returns the default cell size
func DefaultCellMetrics() CellMetrics {
	return CellMetrics{CellWidth: DefaultCellWidth, CellHeight: DefaultCellHeight}
}

// Validate checks that both cell dimensions are positive
func (c CellMetrics) Validate() error {
	if !(c.CellWidth > 0) || !(c.CellHeight > 0) {
		return &ConfigurationError{
			Field:  "cell",
			Reason: fmt.Sprintf("cell size must be positive, got %gx%g", c.CellWidth, c.CellHeight),
		}
	}
	return nil
}

// FromCells converts a terminal size in cells into viewport units
func (c CellMetrics) FromCells(cols, rows int) (float64, float64) {
	return float64(cols) * c.CellWidth, float64(rows) * c.CellHeight
}

// ColumnsFor returns the number of whole columns covering a horizontal size
func (c CellMetrics) ColumnsFor(size float64) int {
	return int(math.Round(size / c.CellWidth))
}

// RowsFor returns the number of whole rows covering a vertical size
func (c CellMetrics) RowsFor(size float64) int {
	return int(math.Round(size / c.CellHeight))
}
