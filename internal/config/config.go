package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/HaiFongPan/tripguide/internal/animation"
	"github.com/HaiFongPan/tripguide/internal/responsive"
)

// Config holds the complete application configuration
type Config struct {
	Layout    LayoutConfig    `mapstructure:"layout"`
	Animation AnimationConfig `mapstructure:"animation"`
	Log       LogConfig       `mapstructure:"log"`
}

// LayoutConfig holds the responsive scaling configuration
type LayoutConfig struct {
	BaseWidth      float64 `mapstructure:"base_width"`
	BaseHeight     float64 `mapstructure:"base_height"`
	Platform       string  `mapstructure:"platform"`
	PixelRatio     float64 `mapstructure:"pixel_ratio"`
	TabletMinWidth float64 `mapstructure:"tablet_min_width"`
	CellWidth      float64 `mapstructure:"cell_width"`
	CellHeight     float64 `mapstructure:"cell_height"`
}

// AnimationConfig holds the transition timing configuration
type AnimationConfig struct {
	PageCooldown     time.Duration `mapstructure:"page_cooldown"`
	ItemCooldown     time.Duration `mapstructure:"item_cooldown"`
	FadeOut          time.Duration `mapstructure:"fade_out"`
	FadeIn           time.Duration `mapstructure:"fade_in"`
	ItemDuration     time.Duration `mapstructure:"item_duration"`
	StaggerBase      time.Duration `mapstructure:"stagger_base"`
	StaggerIncrement time.Duration `mapstructure:"stagger_increment"`
	InitialOpacity   float64       `mapstructure:"initial_opacity"`
	InitialOffset    float64       `mapstructure:"initial_offset"`
	FPS              int           `mapstructure:"fps"`
	SpringFrequency  float64       `mapstructure:"spring_frequency"`
	SpringDamping    float64       `mapstructure:"spring_damping"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// Load loads configuration from multiple sources with priority:
// 1. Environment variables (highest)
// 2. Configuration file
// 3. Defaults (lowest)
func Load(configPath string) (*Config, error) {
	v, err := newViper(configPath)
	if err != nil {
		return nil, err
	}
	return decode(v)
}

func newViper(configPath string) (*viper.Viper, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("TRIPGUIDE")
	v.AutomaticEnv()

	v.BindEnv("layout.platform", "TRIPGUIDE_PLATFORM")
	v.BindEnv("layout.pixel_ratio", "TRIPGUIDE_PIXEL_RATIO")
	v.BindEnv("animation.page_cooldown", "TRIPGUIDE_PAGE_COOLDOWN")
	v.BindEnv("animation.item_cooldown", "TRIPGUIDE_ITEM_COOLDOWN")
	v.BindEnv("log.level", "TRIPGUIDE_LOG_LEVEL")
	v.BindEnv("log.format", "TRIPGUIDE_LOG_FORMAT")
	v.BindEnv("log.file", "TRIPGUIDE_LOG_FILE")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")

		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.tripguide")
		v.AddConfigPath("/etc/tripguide/")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Defaults and env vars are enough without a file
	}

	return v, nil
}

func decode(v *viper.Viper) (*Config, error) {
	var config Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		millisecondsHook(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&config, hook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// millisecondsHook reads unit-less numbers for duration fields as milliseconds, so
// page_cooldown = 300 means 300ms. Durations with units ("1.5s") pass through.
func millisecondsHook() mapstructure.DecodeHookFuncType {
	durationType := reflect.TypeOf(time.Duration(0))
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != durationType || from == durationType {
			return data, nil
		}

		switch from.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return time.Duration(reflect.ValueOf(data).Int()) * time.Millisecond, nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return time.Duration(reflect.ValueOf(data).Uint()) * time.Millisecond, nil
		case reflect.Float32, reflect.Float64:
			return time.Duration(reflect.ValueOf(data).Float() * float64(time.Millisecond)), nil
		case reflect.String:
			if ms, err := strconv.ParseFloat(reflect.ValueOf(data).String(), 64); err == nil {
				return time.Duration(ms * float64(time.Millisecond)), nil
			}
		}
		return data, nil
	}
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	// Layout defaults
	v.SetDefault("layout.base_width", responsive.DefaultBaseWidth)
	v.SetDefault("layout.base_height", responsive.DefaultBaseHeight)
	v.SetDefault("layout.platform", responsive.PlatformIOS)
	v.SetDefault("layout.pixel_ratio", responsive.DefaultPixelRatio)
	v.SetDefault("layout.tablet_min_width", responsive.DefaultTabletMinWidth)
	v.SetDefault("layout.cell_width", responsive.DefaultCellWidth)
	v.SetDefault("layout.cell_height", responsive.DefaultCellHeight)

	// Animation defaults
	v.SetDefault("animation.page_cooldown", animation.DefaultPageCooldown)
	v.SetDefault("animation.item_cooldown", animation.DefaultItemCooldown)
	v.SetDefault("animation.fade_out", animation.DefaultFadeOut)
	v.SetDefault("animation.fade_in", animation.DefaultFadeIn)
	v.SetDefault("animation.item_duration", animation.DefaultEntranceDuration)
	v.SetDefault("animation.stagger_base", 0)
	v.SetDefault("animation.stagger_increment", animation.DefaultStaggerIncrement)
	v.SetDefault("animation.initial_opacity", animation.DefaultInitialOpacity)
	v.SetDefault("animation.initial_offset", animation.DefaultInitialOffset)
	v.SetDefault("animation.fps", animation.DefaultFPS)
	v.SetDefault("animation.spring_frequency", animation.DefaultSpringFrequency)
	v.SetDefault("animation.spring_damping", animation.DefaultSpringDamping)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", filepath.Join(os.TempDir(), "tripguide", "app.log"))
}

// Baseline returns the scaling baseline
func (c *LayoutConfig) Baseline() responsive.Baseline {
	return responsive.Baseline{BaseWidth: c.BaseWidth, BaseHeight: c.BaseHeight}
}

// Cells returns the terminal cell metrics
func (c *LayoutConfig) Cells() responsive.CellMetrics {
	return responsive.CellMetrics{CellWidth: c.CellWidth, CellHeight: c.CellHeight}
}

// NewEngine builds a scale engine over viewport from the layout settings
func (c *LayoutConfig) NewEngine(viewport *responsive.Viewport) (*responsive.Engine, error) {
	adjust, err := responsive.FontAdjustmentFor(c.Platform)
	if err != nil {
		return nil, err
	}
	return responsive.NewEngine(c.Baseline(), viewport,
		responsive.WithPixelRatio(c.PixelRatio),
		responsive.WithTabletMinWidth(c.TabletMinWidth),
		responsive.WithFontAdjustment(adjust),
	)
}

// Page returns the screen transition configuration
func (c *AnimationConfig) Page() animation.PageConfig {
	return animation.PageConfig{
		Gate:    animation.GateConfig{Name: "page", Cooldown: c.PageCooldown},
		FadeOut: c.FadeOut,
		FadeIn:  c.FadeIn,
	}
}

// Stagger returns the list stagger
func (c *AnimationConfig) Stagger() animation.StaggerSpec {
	return animation.StaggerSpec{BaseDelay: c.StaggerBase, PerItemIncrement: c.StaggerIncrement}
}

// Entrance returns the list item entrance configuration
func (c *AnimationConfig) Entrance() animation.EntranceConfig {
	return animation.EntranceConfig{
		Gate:           animation.GateConfig{Name: "item", Cooldown: c.ItemCooldown},
		Stagger:        c.Stagger(),
		Duration:       c.ItemDuration,
		InitialOpacity: c.InitialOpacity,
		InitialOffset:  c.InitialOffset,
		FPS:            c.FPS,
		Frequency:      c.SpringFrequency,
		Damping:        c.SpringDamping,
	}
}

// GetDefaultConfigPath returns the default configuration file path
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./config.toml"
	}
	return filepath.Join(homeDir, ".tripguide", "config.toml")
}
