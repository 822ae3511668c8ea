package geo

import (
	"github.com/golang/geo/s2"
)

// EarthRadiusMeters is the mean Earth radius used for great-circle distances.
const EarthRadiusMeters = 6371000.0

// DistanceMeters calculates the great-circle distance between two coordinates
// in meters. Used for diagnostics only; place equality is the fixed-delta
// SamePlace predicate.
func DistanceMeters(a, b Coordinate) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lon)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// SpreadRadiusMeters returns the largest great-circle distance from the
// center to any of the points. A large spread around an inferred home is a
// hint that the inference is low confidence.
func SpreadRadiusMeters(center Coordinate, points []Coordinate) float64 {
	var max float64
	for _, p := range points {
		if d := DistanceMeters(center, p); d > max {
			max = d
		}
	}
	return max
}
