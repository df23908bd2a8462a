package tui

import (
	"strings"
	"time"

	"github.com/HaiFongPan/tripguide/internal/animation"
	"github.com/HaiFongPan/tripguide/internal/responsive"
	tuiconfig "github.com/HaiFongPan/tripguide/internal/tui/config"
	"github.com/HaiFongPan/tripguide/internal/tui/theme"
)

// metrics turns baseline layout constants into terminal cells for the current window
type metrics struct {
	engine *responsive.Engine
	cells  responsive.CellMetrics
	cols   int
	rows   int
}

func (m metrics) columns(size float64) int {
	return m.cells.ColumnsFor(m.engine.ScaleByWidth(size))
}

func (m metrics) rowsFor(size float64) int {
	return m.cells.RowsFor(m.engine.ScaleByHeight(size))
}

// paddingX is the horizontal screen padding in columns
func (m metrics) paddingX() int {
	return m.cells.ColumnsFor(m.engine.ResponsiveSize(tuiconfig.ScreenPaddingHorizontal))
}

// contentWidth is the usable width between the screen paddings
func (m metrics) contentWidth() int {
	return max(m.cols-2*m.paddingX(), 10)
}

// cardColumns is the number of cards per row
func (m metrics) cardColumns() int {
	return responsive.ClassifyFormFactor(m.engine, tuiconfig.PhoneCardColumns, tuiconfig.TabletCardColumns)
}

func (m metrics) headingStyle(size float64) func(...string) string {
	style := theme.CreateHeadingStyle(m.engine.ScaleFont(size))
	return style.Render
}

// entranceGroup owns the entrances of the sibling blocks of one screen
type entranceGroup struct {
	items []*animation.Entrance
}

func newEntranceGroup(n int, cfg animation.EntranceConfig, clock animation.Clock) (*entranceGroup, error) {
	g := &entranceGroup{items: make([]*animation.Entrance, 0, n)}
	for i := 0; i < n; i++ {
		e, err := animation.NewEntrance(i, cfg, clock)
		if err != nil {
			g.Dispose()
			return nil, err
		}
		g.items = append(g.items, e)
	}
	return g, nil
}

// Enter triggers every entrance and reports whether any will play
func (g *entranceGroup) Enter(force bool) bool {
	started := false
	for _, e := range g.items {
		if e.Start(force) {
			started = true
		}
	}
	return started
}

// Step advances every entrance and reports whether any is still running
func (g *entranceGroup) Step(now time.Time) bool {
	running := false
	for _, e := range g.items {
		if e.Step(now) {
			running = true
		}
	}
	return running
}

// SetCooldown applies a reloaded item cooldown
func (g *entranceGroup) SetCooldown(d time.Duration) error {
	for _, e := range g.items {
		if err := e.Gate().SetCooldown(d); err != nil {
			return err
		}
	}
	return nil
}

// Dispose ends every entrance
func (g *entranceGroup) Dispose() {
	for _, e := range g.items {
		e.Dispose()
	}
}

// render applies the entrance of block i: offset rows above, then the fade
func (g *entranceGroup) render(i int, block string, m metrics) string {
	if i >= len(g.items) {
		return block
	}
	e := g.items[i]
	offset := max(m.rowsFor(e.Offset()), 0)
	faded := theme.Fade(block, e.Opacity())
	if offset == 0 {
		return faded
	}
	return strings.Repeat("\n", offset) + faded
}
