package responsive

import (
	"fmt"
	"math"
	"strings"
)

// Platform names accepted by FontAdjustmentFor
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
	PlatformNone    = "none"
)

// AndroidFontCorrection compensates for the larger default glyph metrics on Android
const AndroidFontCorrection = 2

// FontAdjustment maps a rounded scaled font size to the size used on the target platform
type FontAdjustment func(size int) int

// NoFontAdjustment returns the size unchanged
func NoFontAdjustment(size int) int {
	return size
}

// FixedFontCorrection subtracts a constant number of units from every font size
func FixedFontCorrection(units int) FontAdjustment {
	return func(size int) int {
		return size - units
	}
}

// FontAdjustmentFor selects the font policy for a target platform
func FontAdjustmentFor(platform string) (FontAdjustment, error) {
	switch strings.ToLower(strings.TrimSpace(platform)) {
	case PlatformIOS, PlatformNone, "":
		return NoFontAdjustment, nil
	case PlatformAndroid:
		return FixedFontCorrection(AndroidFontCorrection), nil
	default:
		return nil, &ConfigurationError{
			Field:  "platform",
			Reason: fmt.Sprintf("unknown platform %q (valid: ios, android, none)", platform),
		}
	}
}

// RoundToNearestPixel snaps a layout size to the closest value representable on a
// display with the given pixel density
func RoundToNearestPixel(size, pixelRatio float64) float64 {
	return math.Round(size*pixelRatio) / pixelRatio
}
