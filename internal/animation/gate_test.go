package animation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

func newTestGate(t *testing.T, cooldown time.Duration) *Gate {
	t.Helper()
	g, err := NewGate(GateConfig{Name: "test", Cooldown: cooldown}, NewManualClock(epoch))
	require.NoError(t, err)
	return g
}

func TestGate_CooldownScenario(t *testing.T) {
	g := newTestGate(t, 300*time.Millisecond)

	assert.True(t, g.EvaluateTrigger(at(0), false).ShouldAnimate, "first trigger is always accepted")
	assert.Equal(t, StateTransitioning, g.State())
	g.Complete()
	assert.Equal(t, StateIdle, g.State())

	assert.False(t, g.EvaluateTrigger(at(250), false).ShouldAnimate)
	assert.True(t, g.EvaluateTrigger(at(301), false).ShouldAnimate, "measured from the last accepted trigger")

	last, ok := g.LastTrigger()
	require.True(t, ok)
	assert.Equal(t, at(301), last)
}

func TestGate_ExactlyCooldownIsSuppressed(t *testing.T) {
	g := newTestGate(t, 300*time.Millisecond)
	require.True(t, g.EvaluateTrigger(at(0), false).ShouldAnimate)
	g.Complete()

	assert.False(t, g.EvaluateTrigger(at(300), false).ShouldAnimate)
}

func TestGate_ForceResetBypassesCooldown(t *testing.T) {
	g := newTestGate(t, 300*time.Millisecond)
	require.True(t, g.EvaluateTrigger(at(0), false).ShouldAnimate)
	g.Complete()

	assert.True(t, g.EvaluateTrigger(at(10), true).ShouldAnimate)
	last, _ := g.LastTrigger()
	assert.Equal(t, at(10), last)
}

func TestGate_AcceptedCountMatchesCooldownRule(t *testing.T) {
	cooldown := 200 * time.Millisecond
	g := newTestGate(t, cooldown)
	timestamps := []int{0, 50, 199, 201, 250, 402, 600, 601, 1000}

	var accepted []int
	lastAccepted := -1
	var expected []int
	for _, ts := range timestamps {
		if lastAccepted < 0 || time.Duration(ts-lastAccepted)*time.Millisecond > cooldown {
			expected = append(expected, ts)
			lastAccepted = ts
		}
		if g.EvaluateTrigger(at(ts), false).ShouldAnimate {
			accepted = append(accepted, ts)
			g.Complete()
		}
	}

	assert.Equal(t, expected, accepted)
	assert.Equal(t, []int{0, 201, 402, 1000}, accepted)
}

// Drop semantics: triggers during a transition are discarded, never queued or restarted.
func TestGate_DropsTriggersWhileTransitioning(t *testing.T) {
	g := newTestGate(t, 300*time.Millisecond)
	require.True(t, g.EvaluateTrigger(at(0), false).ShouldAnimate)

	assert.False(t, g.EvaluateTrigger(at(1000), false).ShouldAnimate)
	assert.False(t, g.EvaluateTrigger(at(1001), true).ShouldAnimate, "force does not preempt")

	g.Complete()
	last, _ := g.LastTrigger()
	assert.Equal(t, at(0), last, "dropped triggers do not move the window")

	// nothing was queued: the next evaluation is independent
	assert.True(t, g.EvaluateTrigger(at(1002), false).ShouldAnimate)
}

func TestGate_LastTriggerIsMonotonic(t *testing.T) {
	g := newTestGate(t, 100*time.Millisecond)
	require.True(t, g.EvaluateTrigger(at(500), false).ShouldAnimate)
	g.Complete()

	assert.False(t, g.EvaluateTrigger(at(100), false).ShouldAnimate, "earlier clock reading counts as no elapsed time")
	assert.True(t, g.EvaluateTrigger(at(100), true).ShouldAnimate)
	last, _ := g.LastTrigger()
	assert.Equal(t, at(500), last)
}

func TestGate_LabelsAndComplete(t *testing.T) {
	g := newTestGate(t, 300*time.Millisecond)

	_, ok := g.Complete()
	assert.False(t, ok, "completing an idle gate is a no-op")

	require.True(t, g.EvaluateLabeled(at(0), false, "make-plan").ShouldAnimate)
	label, ok := g.PendingLabel()
	require.True(t, ok)
	assert.Equal(t, "make-plan", label)

	label, ok = g.Complete()
	assert.True(t, ok)
	assert.Equal(t, "make-plan", label)
	_, ok = g.PendingLabel()
	assert.False(t, ok)
}

func TestGate_ResetToSignalsOwner(t *testing.T) {
	g := newTestGate(t, 0)
	g.ResetTo(0, 20) // no owner registered

	var gotOpacity, gotOffset float64
	g.OnReset(func(opacity, offset float64) {
		gotOpacity, gotOffset = opacity, offset
	})
	g.ResetTo(0.25, 12)
	assert.Equal(t, 0.25, gotOpacity)
	assert.Equal(t, 12.0, gotOffset)
}

func TestGate_TriggerUsesClock(t *testing.T) {
	clock := NewManualClock(epoch)
	g, err := NewGate(PageGateConfig(), clock)
	require.NoError(t, err)

	require.True(t, g.Trigger(false).ShouldAnimate)
	g.Complete()
	clock.Advance(250 * time.Millisecond)
	assert.False(t, g.Trigger(false).ShouldAnimate)
	clock.Advance(51 * time.Millisecond)
	assert.True(t, g.Trigger(false).ShouldAnimate)
}

func TestGate_Dispose(t *testing.T) {
	g := newTestGate(t, 0)
	require.True(t, g.EvaluateTrigger(at(0), false).ShouldAnimate)

	g.Dispose()
	assert.True(t, g.Disposed())
	assert.Equal(t, StateIdle, g.State())
	assert.False(t, g.EvaluateTrigger(at(5000), true).ShouldAnimate)
}

func TestGate_Configuration(t *testing.T) {
	assert.Equal(t, 300*time.Millisecond, PageGateConfig().Cooldown)
	assert.Equal(t, 200*time.Millisecond, ItemGateConfig().Cooldown)

	_, err := NewGate(GateConfig{Cooldown: -time.Millisecond}, nil)
	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "cooldown", cfgErr.Field)

	g := newTestGate(t, 300*time.Millisecond)
	require.NoError(t, g.SetCooldown(50*time.Millisecond))
	assert.Equal(t, 50*time.Millisecond, g.Cooldown())
	assert.Error(t, g.SetCooldown(-1))
	assert.Equal(t, 50*time.Millisecond, g.Cooldown())
}
