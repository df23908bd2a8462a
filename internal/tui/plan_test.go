package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HaiFongPan/tripguide/internal/animation"
	"github.com/HaiFongPan/tripguide/internal/trip"
	"github.com/HaiFongPan/tripguide/internal/tui/messaging"
)

func newTestPlan(t *testing.T) *PlanModel {
	t.Helper()
	p, err := NewPlanModel(trip.DemoPlaces, animation.DefaultEntranceConfig(), animation.NewManualClock(testStart))
	require.NoError(t, err)
	t.Cleanup(p.Dispose)
	return p
}

func pressTab(p *PlanModel, n int) {
	for i := 0; i < n; i++ {
		p.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
}

func TestPlan_DefaultsToNearestPlace(t *testing.T) {
	p := newTestPlan(t)

	draft := p.Draft()
	assert.Equal(t, "Tokyo Tower", draft.Place.Name)
	assert.Equal(t, testStart, draft.Date)
	assert.False(t, p.Editing())
}

func TestPlan_DateAndPlacePickers(t *testing.T) {
	p := newTestPlan(t)

	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 17, p.Draft().Date.Day())

	pressTab(p, 1)
	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, trip.DemoPlaces[1].Name, p.Draft().Place.Name)
	p.Update(tea.KeyMsg{Type: tea.KeyUp})
	p.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, trip.DemoPlaces[len(trip.DemoPlaces)-1].Name, p.Draft().Place.Name)
}

func TestPlan_CoordinateResolvesNearestPlace(t *testing.T) {
	p := newTestPlan(t)
	pressTab(p, 2)
	require.True(t, p.Editing())

	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("35.711, 139.809")})
	cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(statusMsg)
	require.True(t, ok)
	assert.Contains(t, msg.text, "Tokyo Skytree")
	assert.Equal(t, messaging.MessageInfo, msg.msgType)
	assert.Equal(t, "Tokyo Skytree", p.Draft().Place.Name)
}

func TestPlan_InvalidCoordinate(t *testing.T) {
	p := newTestPlan(t)
	pressTab(p, 2)

	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("north")})
	msg, ok := p.Update(tea.KeyMsg{Type: tea.KeyEnter})().(statusMsg)
	require.True(t, ok)
	assert.Equal(t, messaging.MessageError, msg.msgType)
}

func TestPlan_SubmitAndInterestLimit(t *testing.T) {
	p := newTestPlan(t)
	pressTab(p, 3)

	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("sushi and temples")})
	assert.Equal(t, "sushi and temples", p.Draft().Interest)

	pressTab(p, 1)
	cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	submitted, ok := cmd().(PlanSubmittedMsg)
	require.True(t, ok)
	assert.Equal(t, "sushi and temples", submitted.Plan.Interest)
	assert.Equal(t, "Tokyo Tower", submitted.Plan.Place.Name)

	assert.Equal(t, trip.MaxInterestLength, p.interest.CharLimit)
}

func TestPlan_CopySummary(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	p := newTestPlan(t)
	cmd := p.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)

	msg, ok := cmd().(statusMsg)
	require.True(t, ok)
	if msg.msgType == messaging.MessageWarning {
		t.Skip("clipboard unsupported on this system")
	}
	assert.Equal(t, messaging.MessageSuccess, msg.msgType)
	assert.Equal(t, p.Draft().Summary(), copied)
}
