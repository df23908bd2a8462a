package trip

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances
const EarthRadiusKm = 6371.0

// Coordinate is a WGS84 latitude/longitude pair in degrees
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Place is a named point of interest
type Place struct {
	Name     string
	Location Coordinate
}

// DefaultCoordinate is the map center used before a location is chosen (Tokyo Tower area)
var DefaultCoordinate = Coordinate{Latitude: 35.6585, Longitude: 139.7454}

// DemoPlaces are the places offered by the plan form
var DemoPlaces = []Place{
	{Name: "Tokyo Tower", Location: Coordinate{Latitude: 35.6586, Longitude: 139.7454}},
	{Name: "Senso-ji", Location: Coordinate{Latitude: 35.7147, Longitude: 139.7966}},
	{Name: "Tokyo Skytree", Location: Coordinate{Latitude: 35.7100, Longitude: 139.8107}},
	{Name: "Shibuya Scramble Crossing", Location: Coordinate{Latitude: 35.6595, Longitude: 139.7004}},
	{Name: "Kinkaku-ji, Kyoto", Location: Coordinate{Latitude: 35.0394, Longitude: 135.7292}},
	{Name: "Osaka Castle", Location: Coordinate{Latitude: 34.6873, Longitude: 135.5262}},
	{Name: "Universal Studios Japan", Location: Coordinate{Latitude: 34.6654, Longitude: 135.4323}},
	{Name: "Okinawa Churaumi Aquarium", Location: Coordinate{Latitude: 26.6939, Longitude: 127.8781}},
	{Name: "Mount Fuji", Location: Coordinate{Latitude: 35.3606, Longitude: 138.7274}},
	{Name: "Sapporo Clock Tower", Location: Coordinate{Latitude: 43.0622, Longitude: 141.3540}},
}

// ErrNoPlaces is returned when searching an empty place list
var ErrNoPlaces = errors.New("no places to search")

// Distance returns the haversine great-circle distance between a and b in kilometres
func Distance(a, b Coordinate) float64 {
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Latitude))*math.Cos(toRadians(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Nearest returns the place closest to c and its distance in kilometres
func Nearest(c Coordinate, places []Place) (Place, float64, error) {
	if len(places) == 0 {
		return Place{}, 0, ErrNoPlaces
	}

	best := places[0]
	bestDist := Distance(c, best.Location)
	for _, p := range places[1:] {
		if d := Distance(c, p.Location); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best, bestDist, nil
}

// ParseCoordinate parses "lat, lon" or "lat lon"
func ParseCoordinate(s string) (Coordinate, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return Coordinate{}, fmt.Errorf("expected \"latitude, longitude\", got %q", s)
	}

	lat, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("invalid latitude %q: %w", fields[0], err)
	}
	lon, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("invalid longitude %q: %w", fields[1], err)
	}
	if lat < -90 || lat > 90 {
		return Coordinate{}, fmt.Errorf("latitude out of range: %g", lat)
	}
	if lon < -180 || lon > 180 {
		return Coordinate{}, fmt.Errorf("longitude out of range: %g", lon)
	}
	return Coordinate{Latitude: lat, Longitude: lon}, nil
}

// String formats the coordinate with four decimals
func (c Coordinate) String() string {
	return fmt.Sprintf("%.4f, %.4f", c.Latitude, c.Longitude)
}

// FormatDistance renders a distance in kilometres for display
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%s m", humanize.Comma(int64(math.Round(km*1000))))
	}
	return fmt.Sprintf("%s km", humanize.CommafWithDigits(km, 1))
}
