package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/HaiFongPan/tripguide/internal/animation"
	"github.com/HaiFongPan/tripguide/internal/trip"
	tuiconfig "github.com/HaiFongPan/tripguide/internal/tui/config"
	"github.com/HaiFongPan/tripguide/internal/tui/messaging"
	"github.com/HaiFongPan/tripguide/internal/tui/theme"
)

type planField int

const (
	fieldDate planField = iota
	fieldPlace
	fieldCoordinate
	fieldInterest
	fieldSubmit
	planFieldCount
)

// PlanSubmittedMsg is sent when a valid plan is submitted
type PlanSubmittedMsg struct {
	Plan trip.Plan
}

// statusMsg asks the app to show a status message
type statusMsg struct {
	text    string
	msgType messaging.MessageType
}

func statusCmd(text string, msgType messaging.MessageType) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, msgType: msgType}
	}
}

// PlanModel is the plan creation form
type PlanModel struct {
	keyMap     KeyMap
	places     []trip.Place
	date       time.Time
	placeIdx   int
	coordinate trip.Coordinate
	distance   float64
	coordInput textinput.Model
	interest   textarea.Model
	focus      planField
	entrances  *entranceGroup
}

// NewPlanModel creates the plan form with one entrance per form section
func NewPlanModel(places []trip.Place, cfg animation.EntranceConfig, clock animation.Clock) (*PlanModel, error) {
	if len(places) == 0 {
		return nil, trip.ErrNoPlaces
	}
	group, err := newEntranceGroup(int(planFieldCount), cfg, clock)
	if err != nil {
		return nil, fmt.Errorf("failed to create plan entrances: %w", err)
	}

	coord := textinput.New()
	coord.Placeholder = trip.DefaultCoordinate.String()
	coord.CharLimit = 40
	coord.Prompt = ""

	interest := textarea.New()
	interest.Placeholder = "What would you like to do?"
	interest.CharLimit = trip.MaxInterestLength
	interest.ShowLineNumbers = false

	nearest, dist, _ := trip.Nearest(trip.DefaultCoordinate, places)
	idx := 0
	for i, p := range places {
		if p.Name == nearest.Name {
			idx = i
		}
	}

	return &PlanModel{
		keyMap:     DefaultKeyMap(),
		places:     places,
		date:       clock.Now().Truncate(time.Minute),
		placeIdx:   idx,
		coordinate: trip.DefaultCoordinate,
		distance:   dist,
		coordInput: coord,
		interest:   interest,
		entrances:  group,
	}, nil
}

// Enter is called whenever the screen becomes visible
func (p *PlanModel) Enter(force bool) bool {
	return p.entrances.Enter(force)
}

// Step advances the entrances
func (p *PlanModel) Step(now time.Time) bool {
	return p.entrances.Step(now)
}

// Dispose releases the screen's gates
func (p *PlanModel) Dispose() {
	p.entrances.Dispose()
}

// Draft returns the plan as currently filled in
func (p *PlanModel) Draft() trip.Plan {
	return trip.Plan{
		Date:     p.date,
		Place:    p.places[p.placeIdx],
		Interest: p.interest.Value(),
	}
}

// Editing reports whether keystrokes go to a text field
func (p *PlanModel) Editing() bool {
	return p.focus == fieldCoordinate || p.focus == fieldInterest
}

// StopEditing moves focus off a text field onto the control it feeds: the place picker
// for the coordinate input and the submit button for the interests
func (p *PlanModel) StopEditing() {
	switch p.focus {
	case fieldCoordinate:
		p.setFocus(fieldPlace)
	case fieldInterest:
		p.setFocus(fieldSubmit)
	}
}

// Update handles key input for the focused field
func (p *PlanModel) Update(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, p.keyMap.NextField):
		return p.setFocus((p.focus + 1) % planFieldCount)
	case key.Matches(msg, p.keyMap.PrevField):
		return p.setFocus((p.focus + planFieldCount - 1) % planFieldCount)
	case key.Matches(msg, p.keyMap.Copy):
		return copyToClipboard(p.Draft().Summary())
	}

	switch p.focus {
	case fieldDate:
		switch {
		case key.Matches(msg, p.keyMap.Up):
			p.date = p.date.AddDate(0, 0, -1)
		case key.Matches(msg, p.keyMap.Down):
			p.date = p.date.AddDate(0, 0, 1)
		}
		return nil

	case fieldPlace:
		switch {
		case key.Matches(msg, p.keyMap.Up):
			p.selectPlace((p.placeIdx + len(p.places) - 1) % len(p.places))
		case key.Matches(msg, p.keyMap.Down):
			p.selectPlace((p.placeIdx + 1) % len(p.places))
		}
		return nil

	case fieldCoordinate:
		if key.Matches(msg, p.keyMap.Submit) {
			return p.resolveCoordinate()
		}
		var cmd tea.Cmd
		p.coordInput, cmd = p.coordInput.Update(msg)
		return cmd

	case fieldInterest:
		var cmd tea.Cmd
		p.interest, cmd = p.interest.Update(msg)
		return cmd

	case fieldSubmit:
		if key.Matches(msg, p.keyMap.Submit) {
			return p.submit()
		}
	}
	return nil
}

func (p *PlanModel) setFocus(f planField) tea.Cmd {
	p.focus = f
	p.coordInput.Blur()
	p.interest.Blur()

	switch f {
	case fieldCoordinate:
		return p.coordInput.Focus()
	case fieldInterest:
		return p.interest.Focus()
	}
	return nil
}

func (p *PlanModel) selectPlace(i int) {
	p.placeIdx = i
	p.coordinate = p.places[i].Location
	p.distance = 0
}

// resolveCoordinate snaps the typed coordinate to the nearest known place
func (p *PlanModel) resolveCoordinate() tea.Cmd {
	c, err := trip.ParseCoordinate(p.coordInput.Value())
	if err != nil {
		return statusCmd(fmt.Sprintf("Invalid coordinate: %v", err), messaging.MessageError)
	}

	nearest, dist, err := trip.Nearest(c, p.places)
	if err != nil {
		return statusCmd(err.Error(), messaging.MessageError)
	}
	for i, place := range p.places {
		if place.Name == nearest.Name {
			p.placeIdx = i
		}
	}
	p.coordinate = c
	p.distance = dist

	logrus.Debugf("Plan: coordinate %s resolved to %s (%.3f km)", c, nearest.Name, dist)
	return statusCmd(fmt.Sprintf("Nearest place: %s (%s)", nearest.Name, trip.FormatDistance(dist)), messaging.MessageInfo)
}

func (p *PlanModel) submit() tea.Cmd {
	plan := p.Draft()
	if err := plan.Validate(); err != nil {
		return statusCmd(err.Error(), messaging.MessageError)
	}
	return func() tea.Msg {
		return PlanSubmittedMsg{Plan: plan}
	}
}

// View renders the form
func (p *PlanModel) View(m metrics) string {
	width := m.contentWidth()
	inner := max(width-4, 10)

	p.interest.SetWidth(inner)
	p.interest.SetHeight(max(m.rowsFor(tuiconfig.InterestBoxHeight), 3))

	sections := []string{
		p.field(fieldDate, "Date & time", p.date.Format("Mon, Jan 2 2006  15:04"), width, m),
		p.field(fieldPlace, "Location", p.renderLocation(inner, m), width, m),
		p.field(fieldCoordinate, "Search by coordinates", p.coordInput.View(), width, m),
		p.field(fieldInterest, "Interests", p.renderInterest(inner), width, m),
		p.renderSubmit(),
	}

	blocks := []string{m.headingStyle(theme.FontH1)("Make a plan")}
	for i, s := range sections {
		blocks = append(blocks, p.entrances.render(i, s, m))
	}
	return strings.Join(blocks, "\n")
}

func (p *PlanModel) field(f planField, label, body string, width int, m metrics) string {
	title := m.headingStyle(theme.FontLG)(label)
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		theme.CreateFieldStyle(width, p.focus == f).Render(body),
	)
}

func (p *PlanModel) renderLocation(width int, m metrics) string {
	place := p.places[p.placeIdx]
	lines := []string{
		lipgloss.NewStyle().Bold(true).Render("◉ " + place.Name),
		theme.CreateSecondaryTextStyle().Render(p.coordinate.String()),
	}
	if p.distance > 0 {
		lines = append(lines, theme.CreateSecondaryTextStyle().Render(trip.FormatDistance(p.distance)+" from the selected point"))
	}

	// map preview area keeps its scaled height
	height := max(m.rowsFor(tuiconfig.MapPreviewHeight), len(lines))
	return lipgloss.NewStyle().Width(width).Height(height).Render(strings.Join(lines, "\n"))
}

func (p *PlanModel) renderInterest(width int) string {
	count := len([]rune(p.interest.Value()))
	counter := theme.CreateCounterStyle(count >= trip.MaxInterestLength).
		Render(fmt.Sprintf("%d / %d", count, trip.MaxInterestLength))
	return lipgloss.JoinVertical(lipgloss.Right,
		p.interest.View(),
		lipgloss.PlaceHorizontal(width, lipgloss.Right, counter),
	)
}

func (p *PlanModel) renderSubmit() string {
	return theme.CreateButtonStyle(p.focus == fieldSubmit).Render("Create plan")
}
