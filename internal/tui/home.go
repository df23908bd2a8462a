package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/HaiFongPan/tripguide/internal/animation"
	"github.com/HaiFongPan/tripguide/internal/trip"
	tuiconfig "github.com/HaiFongPan/tripguide/internal/tui/config"
	"github.com/HaiFongPan/tripguide/internal/tui/theme"
)

// Home screen blocks, in entrance order
const (
	homeBlockFeature = iota
	homeBlockStayHome
	homeBlockGames
	homeBlockHowTo
	homeBlockDailyTitle
	homeStaticBlocks
)

// HomeModel is the home feed screen
type HomeModel struct {
	feed      trip.Feed
	clock     animation.Clock
	entrances *entranceGroup
}

// NewHomeModel creates the home screen with one entrance per feed block and daily item
func NewHomeModel(feed trip.Feed, cfg animation.EntranceConfig, clock animation.Clock) (*HomeModel, error) {
	group, err := newEntranceGroup(homeStaticBlocks+len(feed.DailyList), cfg, clock)
	if err != nil {
		return nil, fmt.Errorf("failed to create home entrances: %w", err)
	}
	return &HomeModel{feed: feed, clock: clock, entrances: group}, nil
}

// Enter is called whenever the screen becomes visible
func (h *HomeModel) Enter(force bool) bool {
	return h.entrances.Enter(force)
}

// Step advances the entrances
func (h *HomeModel) Step(now time.Time) bool {
	return h.entrances.Step(now)
}

// Dispose releases the screen's gates
func (h *HomeModel) Dispose() {
	h.entrances.Dispose()
}

// View renders the home feed
func (h *HomeModel) View(m metrics) string {
	width := m.contentWidth()
	pad := m.columns(tuiconfig.CardPadding)

	blocks := []string{h.renderHeader(m)}

	cards := []string{
		h.entrances.render(homeBlockFeature, h.renderCard(h.feed.Feature, width, pad, m), m),
		h.entrances.render(homeBlockStayHome, h.renderCard(h.feed.StayHome, width, pad, m), m),
		h.entrances.render(homeBlockGames, h.renderGames(width, pad, m), m),
		h.entrances.render(homeBlockHowTo, h.renderCard(h.feed.HowTo, width, pad, m), m),
	}
	blocks = append(blocks, grid(cards, m.cardColumns(), m.columns(tuiconfig.CardGap)))

	title := m.headingStyle(theme.FontH3)("Daily list")
	blocks = append(blocks, h.entrances.render(homeBlockDailyTitle, title, m))
	for i, item := range h.feed.DailyList {
		row := renderGameRow(item, width)
		blocks = append(blocks, h.entrances.render(homeStaticBlocks+i, row, m))
	}

	return strings.Join(blocks, "\n")
}

func (h *HomeModel) renderHeader(m metrics) string {
	date := strings.ToUpper(h.clock.Now().Format("Monday, January 2"))
	return lipgloss.JoinVertical(lipgloss.Left,
		theme.CreateDateStyle().Render(date),
		m.headingStyle(theme.FontH1)("Today"),
	)
}

func (h *HomeModel) renderCard(card trip.Card, width, pad int, m metrics) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		theme.CreateLabelStyle().Render(card.Label),
		m.headingStyle(theme.FontH2)(card.Title),
		theme.CreateSecondaryTextStyle().Render(card.Subtitle),
	)
	return theme.CreateCardStyle(cardWidth(width, m), pad).Render(body)
}

func (h *HomeModel) renderGames(width, pad int, m metrics) string {
	inner := max(cardWidth(width, m)-2-2*pad, 10)
	rows := []string{m.headingStyle(theme.FontXL)("Gaming")}
	for _, g := range h.feed.Games {
		rows = append(rows, renderGameRow(g, inner))
	}
	return theme.CreateCardStyle(cardWidth(width, m), pad).Render(strings.Join(rows, "\n"))
}

func renderGameRow(g trip.Game, width int) string {
	action := theme.CreateActionStyle().Render(g.Action)
	text := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(g.Title),
		theme.CreateSecondaryTextStyle().Render(g.Subtitle),
	)
	gap := max(width-lipgloss.Width(text)-lipgloss.Width(action), 1)
	return lipgloss.JoinHorizontal(lipgloss.Center, text, strings.Repeat(" ", gap), action)
}

func cardWidth(width int, m metrics) int {
	cols := m.cardColumns()
	if cols <= 1 {
		return width
	}
	gap := m.columns(tuiconfig.CardGap)
	return max((width-gap*(cols-1))/cols, 10)
}

// grid lays blocks out in rows of cols
func grid(blocks []string, cols, gap int) string {
	if cols <= 1 {
		return strings.Join(blocks, "\n")
	}
	var rows []string
	for i := 0; i < len(blocks); i += cols {
		end := min(i+cols, len(blocks))
		var row []string
		for j, b := range blocks[i:end] {
			if j > 0 {
				row = append(row, strings.Repeat(" ", gap))
			}
			row = append(row, b)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}
