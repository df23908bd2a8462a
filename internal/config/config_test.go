package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HaiFongPan/tripguide/internal/animation"
	"github.com/HaiFongPan/tripguide/internal/responsive"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 390.0, cfg.Layout.BaseWidth)
	assert.Equal(t, 844.0, cfg.Layout.BaseHeight)
	assert.Equal(t, "ios", cfg.Layout.Platform)
	assert.Equal(t, 600.0, cfg.Layout.TabletMinWidth)
	assert.Equal(t, 300*time.Millisecond, cfg.Animation.PageCooldown)
	assert.Equal(t, 200*time.Millisecond, cfg.Animation.ItemCooldown)
	assert.Equal(t, 50*time.Millisecond, cfg.Animation.StaggerIncrement)
	assert.Equal(t, time.Duration(0), cfg.Animation.StaggerBase)
	assert.Equal(t, 60, cfg.Animation.FPS)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileOverrides(t *testing.T) {
	path := writeConfig(t, `
[layout]
platform = "android"
pixel_ratio = 2.0

[animation]
page_cooldown = "450ms"
stagger_base = "150ms"

[log]
level = "debug"
format = "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "android", cfg.Layout.Platform)
	assert.Equal(t, 2.0, cfg.Layout.PixelRatio)
	assert.Equal(t, 450*time.Millisecond, cfg.Animation.PageCooldown)
	assert.Equal(t, 150*time.Millisecond, cfg.Animation.Stagger().BaseDelay)
	assert.Equal(t, "json", cfg.Log.Format)

	vp, err := responsive.NewViewport(780, 1688)
	require.NoError(t, err)
	engine, err := cfg.Layout.NewEngine(vp)
	require.NoError(t, err)
	assert.Equal(t, 26, engine.ScaleFont(14))
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TRIPGUIDE_ITEM_COOLDOWN", "120ms")
	t.Setenv("TRIPGUIDE_PLATFORM", "none")

	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, 120*time.Millisecond, cfg.Animation.ItemCooldown)
	assert.Equal(t, "none", cfg.Layout.Platform)
	assert.Equal(t, 120*time.Millisecond, cfg.Animation.Entrance().Gate.Cooldown)
}

func TestLoad_NumericDurationsAreMilliseconds(t *testing.T) {
	path := writeConfig(t, `
[animation]
page_cooldown = 300
item_cooldown = 12.5
fade_in = "1.5s"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 300*time.Millisecond, cfg.Animation.PageCooldown)
	assert.Equal(t, 12500*time.Microsecond, cfg.Animation.ItemCooldown)
	assert.Equal(t, 1500*time.Millisecond, cfg.Animation.FadeIn)
	assert.Equal(t, 300*time.Millisecond, cfg.Animation.Page().Gate.Cooldown)

	t.Setenv("TRIPGUIDE_ITEM_COOLDOWN", "120")
	cfg, err = Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, 120*time.Millisecond, cfg.Animation.ItemCooldown)

	_, err = Load(writeConfig(t, "[animation]\npage_cooldown = -5\n"))
	assert.Error(t, err)
}

func TestGetDefaultConfigPath(t *testing.T) {
	t.Setenv("HOME", "/home/traveler")
	assert.Equal(t, filepath.Join("/home/traveler", ".tripguide", "config.toml"), GetDefaultConfigPath())
}

func TestLoad_RejectsNegativeCooldown(t *testing.T) {
	_, err := Load(writeConfig(t, "[animation]\npage_cooldown = \"-1s\"\n"))
	require.Error(t, err)

	var cfgErr *animation.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "cooldown", cfgErr.Field)
}

func TestLoad_RejectsBadLayout(t *testing.T) {
	_, err := Load(writeConfig(t, "[layout]\nbase_width = 0\n"))
	var cfgErr *responsive.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "baseline", cfgErr.Field)

	_, err = Load(writeConfig(t, "[layout]\nplatform = \"palm\"\n"))
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "platform", cfgErr.Field)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate_Log(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	cfg.Log.Level = "verbose"
	assert.Error(t, Validate(cfg))

	cfg.Log.Level = "warn"
	cfg.Log.Format = "xml"
	assert.Error(t, Validate(cfg))
}

func TestWatch_ReportsWhetherFileIsUsed(t *testing.T) {
	watching, err := Watch(writeConfig(t, ""), func(*Config, error) {})
	require.NoError(t, err)
	assert.True(t, watching)
}
