package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageTransition_FadeOutSwapFadeIn(t *testing.T) {
	clock := NewManualClock(epoch)
	p, err := NewPageTransition("home", DefaultPageConfig(), clock)
	require.NoError(t, err)

	require.True(t, p.Navigate("make-plan", false))
	assert.Equal(t, PhaseFadingOut, p.Phase())
	pending, ok := p.Pending()
	require.True(t, ok)
	assert.Equal(t, "make-plan", pending)

	clock.Advance(100 * time.Millisecond)
	assert.True(t, p.Step(clock.Now()))
	assert.InDelta(t, 0.5, p.Opacity(), 1e-9)
	assert.Equal(t, "home", p.Current())

	clock.Advance(100 * time.Millisecond)
	assert.True(t, p.Step(clock.Now()))
	assert.Equal(t, "make-plan", p.Current())
	assert.Equal(t, PhaseFadingIn, p.Phase())
	assert.Equal(t, 0.0, p.Opacity())

	clock.Advance(150 * time.Millisecond)
	assert.True(t, p.Step(clock.Now()))
	assert.InDelta(t, 0.5, p.Opacity(), 1e-9)

	clock.Advance(150 * time.Millisecond)
	assert.False(t, p.Step(clock.Now()))
	assert.Equal(t, 1.0, p.Opacity())
	assert.False(t, p.Transitioning())
}

func TestPageTransition_IgnoresSamePageAndBusy(t *testing.T) {
	clock := NewManualClock(epoch)
	p, err := NewPageTransition("home", DefaultPageConfig(), clock)
	require.NoError(t, err)

	assert.False(t, p.Navigate("home", true))
	require.True(t, p.Navigate("make-plan", false))
	assert.False(t, p.Navigate("settings", true))

	pending, _ := p.Pending()
	assert.Equal(t, "make-plan", pending)
}

func TestPageTransition_Cooldown(t *testing.T) {
	clock := NewManualClock(epoch)
	cfg := DefaultPageConfig()
	cfg.FadeOut, cfg.FadeIn = 0, 0
	p, err := NewPageTransition("home", cfg, clock)
	require.NoError(t, err)

	require.True(t, p.Navigate("make-plan", false))
	p.Step(clock.Now())
	p.Step(clock.Now())
	require.Equal(t, "make-plan", p.Current())
	require.False(t, p.Transitioning())

	clock.Advance(100 * time.Millisecond)
	assert.False(t, p.Navigate("home", false))
	assert.True(t, p.Navigate("home", true))
}

func TestPageConfig_Validate(t *testing.T) {
	cfg := DefaultPageConfig()
	cfg.FadeIn = -time.Millisecond
	_, err := NewPageTransition("home", cfg, nil)
	assert.Error(t, err)
}
