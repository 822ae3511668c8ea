// Package dwell turns a user's raw ping stream into report rows annotated
// with cumulative time at the current location.
package dwell

import (
	"fmt"
	"time"

	"github.com/ducktracker/reports-backend-go/internal/geo"
	"github.com/ducktracker/reports-backend-go/internal/home"
	"github.com/ducktracker/reports-backend-go/internal/models"
)

// inputLayout is the timestamp key format of the tracker database.
const inputLayout = "2006-01-02 15:04:05"

// sentinel is outside the valid lat/lon range, so the first valid ping of a
// scan never matches it and always takes the new-location branch.
var sentinel = geo.Coordinate{Lat: -999, Lon: -999}

// scanState is the per-user accumulator carried across one segmentation
// pass. Created fresh for each user and discarded when the scan ends, so
// nothing leaks between users.
type scanState struct {
	prev         geo.Coordinate
	prevDate     string
	prevTime     string
	dwellMinutes int
}

// Segmenter drives the dwell-time state machine over one user's history.
// The sampling interval is fixed at construction; it sizes both the per-step
// dwell increment and the 2x continuity window.
type Segmenter struct {
	tsiMinutes int
	window     geo.Window
}

// NewSegmenter builds a segmenter for the given temporal sampling interval
// in minutes.
func NewSegmenter(tsiMinutes int) *Segmenter {
	return &Segmenter{
		tsiMinutes: tsiMinutes,
		window:     geo.NewWindow(tsiMinutes),
	}
}

// Segment scans the history in input order and produces one report row per
// valid ping. Consecutive pings at the same place within the continuity
// window accumulate dwell time; a location change or a measurement gap
// resets it. Rows at the user's home get the masked coordinate; the real
// coordinate still drives all comparisons. A malformed timestamp aborts the
// scan.
func (s *Segmenter) Segment(history models.UserHistory, homeCoord geo.Coordinate, masked home.MaskedCoordinate) ([]models.ReportRow, error) {
	st := scanState{prev: sentinel}
	rows := make([]models.ReportRow, 0, len(history.Pings))

	for _, p := range history.Pings {
		if !p.Valid() {
			continue
		}

		date, clock, err := splitTimestamp(p.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("user %s: %w", history.UserID, err)
		}
		coord, err := geo.ParseCoordinate(p.Latitude, p.Longitude)
		if err != nil {
			return nil, fmt.Errorf("user %s: %w", history.UserID, err)
		}

		if geo.SamePlace(coord, st.prev) {
			ok, err := s.window.Within(st.prevDate, st.prevTime, date, clock)
			if err != nil {
				return nil, fmt.Errorf("user %s: %w", history.UserID, err)
			}
			if ok {
				// Still at the same place, samples contiguous: one more
				// interval of dwelling.
				st.dwellMinutes += s.tsiMinutes
			} else {
				// Same place after a gap: fresh arrival.
				st.dwellMinutes = 0
			}
		} else {
			st.dwellMinutes = 0
			st.prev = coord
		}
		st.prevDate, st.prevTime = date, clock

		lat, lon := coord.LatString(), coord.LonString()
		if geo.SamePlace(coord, homeCoord) {
			lat, lon = masked.Lat, masked.Lon
		}

		rows = append(rows, models.ReportRow{
			UserID:       history.UserID,
			Date:         date,
			Time:         clock,
			Latitude:     lat,
			Longitude:    lon,
			DwellMinutes: st.dwellMinutes,
		})
	}

	return rows, nil
}

// splitTimestamp converts a "YYYY-MM-DD HH:MM:SS" database key into the
// report's MM/DD/YYYY date and HH:MM:SS time. A key that does not parse is a
// fatal input-format error.
func splitTimestamp(key string) (date, clock string, err error) {
	t, err := time.Parse(inputLayout, key)
	if err != nil {
		return "", "", fmt.Errorf("malformed timestamp key %q: %w", key, err)
	}
	return t.Format("01/02/2006"), t.Format("15:04:05"), nil
}
