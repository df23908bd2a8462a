package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = time.Second / DefaultFPS

func runFrames(clock *ManualClock, e *Entrance, limit int) int {
	frames := 0
	for ; frames < limit; frames++ {
		clock.Advance(frame)
		if !e.Step(clock.Now()) {
			break
		}
	}
	return frames
}

func TestEntrance_StaggeredPlayback(t *testing.T) {
	clock := NewManualClock(epoch)
	cfg := DefaultEntranceConfig()
	cfg.Stagger = StaggerSpec{BaseDelay: 150 * time.Millisecond, PerItemIncrement: 50 * time.Millisecond}

	e, err := NewEntrance(2, cfg, clock)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, e.Delay())

	require.True(t, e.Start(false))
	assert.Equal(t, 0.0, e.Opacity())
	assert.Equal(t, 20.0, e.Offset())

	// still waiting for the stagger delay
	clock.Advance(200 * time.Millisecond)
	assert.True(t, e.Step(clock.Now()))
	assert.Equal(t, 0.0, e.Opacity())

	clock.Advance(60 * time.Millisecond)
	assert.True(t, e.Step(clock.Now()))
	assert.Greater(t, e.Opacity(), 0.0)
	assert.Less(t, e.Offset(), 20.0)

	runFrames(clock, e, 100)
	assert.False(t, e.Animating())
	assert.Equal(t, 1.0, e.Opacity())
	assert.Equal(t, 0.0, e.Offset())
	assert.Equal(t, StateIdle, e.Gate().State())
}

func TestEntrance_FinishesWithinDuration(t *testing.T) {
	clock := NewManualClock(epoch)
	cfg := DefaultEntranceConfig()
	cfg.Frequency = 0.5 // slow spring, bounded by duration

	e, err := NewEntrance(0, cfg, clock)
	require.NoError(t, err)
	require.True(t, e.Start(false))

	frames := runFrames(clock, e, 1000)
	assert.False(t, e.Animating())
	assert.LessOrEqual(t, time.Duration(frames+1)*frame, cfg.Duration+frame)
}

func TestEntrance_RetriggerRules(t *testing.T) {
	clock := NewManualClock(epoch)
	e, err := NewEntrance(0, DefaultEntranceConfig(), clock)
	require.NoError(t, err)

	require.True(t, e.Start(false))
	assert.False(t, e.Start(true), "dropped while playing")

	runFrames(clock, e, 1000)
	require.False(t, e.Animating())

	// within 200ms of the last accepted start
	clock.SetTime(epoch.Add(150 * time.Millisecond))
	assert.False(t, e.Start(false))
	assert.True(t, e.Start(true))
	assert.Equal(t, 0.0, e.Opacity(), "values reset before replay")
}

func TestEntrance_Dispose(t *testing.T) {
	clock := NewManualClock(epoch)
	e, err := NewEntrance(0, DefaultEntranceConfig(), clock)
	require.NoError(t, err)

	e.Dispose()
	assert.False(t, e.Start(true))
	assert.False(t, e.Step(clock.Now()))
}

func TestEntranceConfig_Validate(t *testing.T) {
	cfg := DefaultEntranceConfig()
	cfg.Duration = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultEntranceConfig()
	cfg.FPS = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultEntranceConfig()
	cfg.Gate.Cooldown = -time.Second
	_, err := NewEntrance(0, cfg, nil)
	assert.Error(t, err)
}
