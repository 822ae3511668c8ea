package home

import (
	"errors"
	"fmt"

	"github.com/ducktracker/reports-backend-go/internal/geo"
	"github.com/ducktracker/reports-backend-go/internal/models"
)

// ErrNoValidPings marks a history with zero usable measurements: no home can
// be inferred and the user should be skipped, not crash the run.
var ErrNoValidPings = errors.New("no usable location data")

// Result is an inferred home location with the evidence behind it.
type Result struct {
	Coordinate geo.Coordinate
	ValidPings int  // valid measurements considered
	ModeCount  int  // occurrences of the winning coordinate
	// LowConfidence is set when no coordinate was strictly most frequent and
	// the chronologically first valid coordinate was used instead. That
	// fallback is a heuristic for users with too little history, not a sound
	// inference.
	LowConfidence bool
}

// Locator infers a user's home location as the most frequently visited
// rounded coordinate in their history. Pure function of the input; the home
// is derived once per user and held immutable for the whole export pass.
type Locator struct{}

// Locate returns the coordinate with the strictly highest occurrence count
// among the history's valid pings. On a tie (including the degenerate
// all-distinct case) it falls back to the first valid coordinate and flags
// the result low confidence. A history with no valid pings yields
// ErrNoValidPings.
func (Locator) Locate(history models.UserHistory) (Result, error) {
	var order []geo.Coordinate
	counts := make(map[geo.Coordinate]int)

	for _, p := range history.Pings {
		if !p.Valid() {
			continue
		}
		c, err := geo.ParseCoordinate(p.Latitude, p.Longitude)
		if err != nil {
			return Result{}, fmt.Errorf("user %s: %w", history.UserID, err)
		}
		if _, seen := counts[c]; !seen {
			order = append(order, c)
		}
		counts[c]++
	}

	if len(order) == 0 {
		return Result{}, fmt.Errorf("user %s: %w", history.UserID, ErrNoValidPings)
	}

	valid := 0
	for _, n := range counts {
		valid += n
	}

	// First pass over insertion order finds the highest count; second check
	// decides whether that count is unique.
	best := order[0]
	for _, c := range order[1:] {
		if counts[c] > counts[best] {
			best = c
		}
	}
	ties := 0
	for _, n := range counts {
		if n == counts[best] {
			ties++
		}
	}

	if ties > 1 {
		// No unique mode: first valid coordinate wins.
		return Result{
			Coordinate:    order[0],
			ValidPings:    valid,
			ModeCount:     counts[order[0]],
			LowConfidence: true,
		}, nil
	}

	return Result{Coordinate: best, ValidPings: valid, ModeCount: counts[best]}, nil
}

// Coordinates returns the rounded coordinates of the history's valid pings,
// for spread diagnostics.
func Coordinates(history models.UserHistory) []geo.Coordinate {
	var coords []geo.Coordinate
	for _, p := range history.Pings {
		if !p.Valid() {
			continue
		}
		c, err := geo.ParseCoordinate(p.Latitude, p.Longitude)
		if err != nil {
			continue
		}
		coords = append(coords, c)
	}
	return coords
}
