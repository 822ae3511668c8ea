package geo

import (
	"fmt"
	"math"
	"strconv"
)

// PlaceTolerance is the per-axis coordinate delta under which two rounded
// coordinates count as the same place. Roughly 70 feet at mid latitudes.
const PlaceTolerance = 0.0002

// placeEpsilon absorbs float64 noise on the 4-decimal grid so that a delta of
// exactly 0.0002 stays inside the tolerance.
const placeEpsilon = 1e-9

// Coordinate is a latitude/longitude pair rounded to 4 decimal places
// (about an 11 m grid). All equality and aggregation downstream operates on
// this rounded form.
type Coordinate struct {
	Lat float64 `json:"latitude"`
	Lon float64 `json:"longitude"`
}

// Round4 rounds a coordinate component to 4 decimal places.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// NewCoordinate builds a rounded Coordinate from raw components.
func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{Lat: Round4(lat), Lon: Round4(lon)}
}

// ParseCoordinate builds a rounded Coordinate from decimal strings.
func ParseCoordinate(lat, lon string) (Coordinate, error) {
	latF, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("invalid latitude %q: %w", lat, err)
	}
	lonF, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("invalid longitude %q: %w", lon, err)
	}
	return NewCoordinate(latF, lonF), nil
}

// LatString returns the latitude formatted with exactly 4 decimal places,
// the form used for output and for last-digit anonymization.
func (c Coordinate) LatString() string {
	return strconv.FormatFloat(c.Lat, 'f', 4, 64)
}

// LonString returns the longitude formatted with exactly 4 decimal places.
func (c Coordinate) LonString() string {
	return strconv.FormatFloat(c.Lon, 'f', 4, 64)
}

// SamePlace reports whether two rounded coordinates are practically the same
// location. It is a square tolerance on each axis, not a true distance
// metric: displacement at pedestrian scale is the target use case and no
// spherical correction is applied.
func SamePlace(a, b Coordinate) bool {
	return math.Abs(a.Lat-b.Lat) <= PlaceTolerance+placeEpsilon &&
		math.Abs(a.Lon-b.Lon) <= PlaceTolerance+placeEpsilon
}
