package config

import (
	"fmt"
	"strings"

	"github.com/HaiFongPan/tripguide/internal/responsive"
)

// Validate validates the configuration and returns an error if invalid
func Validate(config *Config) error {
	if err := validateLayoutConfig(&config.Layout); err != nil {
		return fmt.Errorf("layout config validation failed: %w", err)
	}

	if err := validateAnimationConfig(&config.Animation); err != nil {
		return fmt.Errorf("animation config validation failed: %w", err)
	}

	if err := validateLogConfig(&config.Log); err != nil {
		return fmt.Errorf("log config validation failed: %w", err)
	}

	return nil
}

// validateLayoutConfig validates the scaling baseline and cell metrics
func validateLayoutConfig(config *LayoutConfig) error {
	if config.BaseWidth <= 0 || config.BaseHeight <= 0 {
		return &responsive.ConfigurationError{
			Field:  "baseline",
			Reason: fmt.Sprintf("must be positive, got %gx%g", config.BaseWidth, config.BaseHeight),
		}
	}

	if _, err := responsive.FontAdjustmentFor(config.Platform); err != nil {
		return err
	}

	if config.PixelRatio <= 0 {
		return &responsive.ConfigurationError{Field: "pixel_ratio", Reason: fmt.Sprintf("must be positive, got %g", config.PixelRatio)}
	}

	if config.TabletMinWidth <= 0 {
		return &responsive.ConfigurationError{Field: "tablet_min_width", Reason: fmt.Sprintf("must be positive, got %g", config.TabletMinWidth)}
	}

	return config.Cells().Validate()
}

// validateAnimationConfig validates cooldowns, fades and the entrance spring
func validateAnimationConfig(config *AnimationConfig) error {
	if err := config.Page().Validate(); err != nil {
		return err
	}

	return config.Entrance().Validate()
}

// validateLogConfig validates log configuration
func validateLogConfig(config *LogConfig) error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"fatal": true,
		"panic": true,
	}

	level := strings.ToLower(config.Level)
	if !validLevels[level] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error, fatal, panic)", config.Level)
	}

	validFormats := map[string]bool{
		"text": true,
		"json": true,
	}

	format := strings.ToLower(config.Format)
	if !validFormats[format] {
		return fmt.Errorf("invalid log format: %s (valid: text, json)", config.Format)
	}

	return nil
}
