package trip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	tower := DemoPlaces[0].Location
	assert.Equal(t, 0.0, Distance(tower, tower))

	// Tokyo Tower to Osaka Castle is roughly 400 km
	d := Distance(tower, DemoPlaces[5].Location)
	assert.InDelta(t, 400, d, 15)
	assert.InDelta(t, d, Distance(DemoPlaces[5].Location, tower), 1e-9)

	// a quarter of the equator
	q := Distance(Coordinate{0, 0}, Coordinate{0, 90})
	assert.InDelta(t, EarthRadiusKm*3.141592653589793/2, q, 1e-6)
}

func TestNearest(t *testing.T) {
	p, d, err := Nearest(Coordinate{Latitude: 35.711, Longitude: 139.809}, DemoPlaces)
	require.NoError(t, err)
	assert.Equal(t, "Tokyo Skytree", p.Name)
	assert.Less(t, d, 1.0)

	p, _, err = Nearest(DefaultCoordinate, DemoPlaces)
	require.NoError(t, err)
	assert.Equal(t, "Tokyo Tower", p.Name)

	_, _, err = Nearest(DefaultCoordinate, nil)
	assert.ErrorIs(t, err, ErrNoPlaces)
}

func TestParseCoordinate(t *testing.T) {
	c, err := ParseCoordinate("35.0394, 135.7292")
	require.NoError(t, err)
	assert.Equal(t, Coordinate{Latitude: 35.0394, Longitude: 135.7292}, c)
	assert.Equal(t, "35.0394, 135.7292", c.String())

	c, err = ParseCoordinate("  -33.8 151.2 ")
	require.NoError(t, err)
	assert.Equal(t, -33.8, c.Latitude)

	for _, bad := range []string{"", "35.0", "abc, 1", "1, x", "91, 0", "0, 181"} {
		_, err := ParseCoordinate(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "250 m", FormatDistance(0.25))
	assert.Equal(t, "1,234.5 km", FormatDistance(1234.5))
	assert.Equal(t, "12 km", FormatDistance(12))
}

func TestPlan(t *testing.T) {
	date := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)
	p := Plan{Date: date, Place: DemoPlaces[0], Interest: "ramen"}
	require.NoError(t, p.Validate())
	assert.Equal(t, "Plan: Tokyo Tower at Oct 16 09:30 (ramen)", p.Summary())

	p.Interest = string(make([]rune, MaxInterestLength+1))
	assert.Error(t, p.Validate())

	assert.Error(t, Plan{Place: DemoPlaces[0]}.Validate())
	assert.Error(t, Plan{Date: date}.Validate())
}

func TestHomeFeed(t *testing.T) {
	f := HomeFeed()
	assert.Len(t, f.Games, 4)
	assert.NotEmpty(t, f.DailyList)
}
