package dwell

import (
	"testing"

	"github.com/ducktracker/reports-backend-go/internal/geo"
	"github.com/ducktracker/reports-backend-go/internal/home"
	"github.com/ducktracker/reports-backend-go/internal/models"
)

// farAway keeps home anonymization out of tests that are not about it.
var farAway = geo.Coordinate{Lat: 80.0, Lon: 170.0}

func ping(ts, lat, lon string) models.PingRecord {
	return models.PingRecord{Timestamp: ts, Latitude: lat, Longitude: lon}
}

func segment(t *testing.T, pings ...models.PingRecord) []models.ReportRow {
	t.Helper()
	rows, err := NewSegmenter(5).Segment(
		models.UserHistory{UserID: "u1", Pings: pings},
		farAway,
		home.MaskedCoordinate{Lat: "0.0000", Lon: "0.0000"},
	)
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}
	return rows
}

func dwellValues(rows []models.ReportRow) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.DwellMinutes
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSegmentAccumulatesDwell(t *testing.T) {
	rows := segment(t,
		ping("2023-01-01 09:00:00", "40.0", "-75.0"),
		ping("2023-01-01 09:05:00", "40.0", "-75.0"),
		ping("2023-01-01 09:10:00", "40.0", "-75.0"),
		ping("2023-01-01 09:15:00", "40.0", "-75.0"),
	)

	if got := dwellValues(rows); !equalInts(got, []int{0, 5, 10, 15}) {
		t.Errorf("dwell = %v, want [0 5 10 15]", got)
	}
}

func TestSegmentGapResetsDwell(t *testing.T) {
	// Third ping is 15 minutes after the second: past the 10-minute
	// continuity window even though the place did not change.
	rows := segment(t,
		ping("2023-01-01 09:00:00", "40.0000", "-75.0000"),
		ping("2023-01-01 09:05:00", "40.0000", "-75.0000"),
		ping("2023-01-01 09:20:00", "40.0000", "-75.0000"),
	)

	if got := dwellValues(rows); !equalInts(got, []int{0, 5, 0}) {
		t.Errorf("dwell = %v, want [0 5 0]", got)
	}
}

func TestSegmentNewLocationResetsDwell(t *testing.T) {
	rows := segment(t,
		ping("2023-01-01 09:00:00", "40.0", "-75.0"),
		ping("2023-01-01 09:05:00", "40.0", "-75.0"),
		ping("2023-01-01 09:10:00", "41.0", "-74.0"),
		ping("2023-01-01 09:15:00", "41.0", "-74.0"),
	)

	if got := dwellValues(rows); !equalInts(got, []int{0, 5, 0, 5}) {
		t.Errorf("dwell = %v, want [0 5 0 5]", got)
	}
	if rows[2].Latitude != "41.0000" || rows[2].Longitude != "-74.0000" {
		t.Errorf("row 2 coordinate = (%s, %s), want (41.0000, -74.0000)", rows[2].Latitude, rows[2].Longitude)
	}
}

func TestSegmentSkipsInvalidPings(t *testing.T) {
	// The invalid ping must not produce a row, touch the dwell clock, or
	// advance the previous timestamp: 09:00 -> 09:10 is still within the
	// window, so dwell keeps accumulating.
	rows := segment(t,
		ping("2023-01-01 09:00:00", "40.0", "-75.0"),
		ping("2023-01-01 09:05:00", "", ""),
		ping("2023-01-01 09:10:00", "40.0", "-75.0"),
	)

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if got := dwellValues(rows); !equalInts(got, []int{0, 5}) {
		t.Errorf("dwell = %v, want [0 5]", got)
	}
}

func TestSegmentToleranceTreatedAsSamePlace(t *testing.T) {
	// 0.0002 off on each axis is still the same place.
	rows := segment(t,
		ping("2023-01-01 09:00:00", "40.0000", "-75.0000"),
		ping("2023-01-01 09:05:00", "40.0002", "-74.9998"),
	)

	if got := dwellValues(rows); !equalInts(got, []int{0, 5}) {
		t.Errorf("dwell = %v, want [0 5]", got)
	}
	// The stored previous coordinate is unchanged, so the printed value is
	// the current ping's own rounded coordinate.
	if rows[1].Latitude != "40.0002" {
		t.Errorf("row 1 latitude = %s, want 40.0002", rows[1].Latitude)
	}
}

func TestSegmentTimestampFormats(t *testing.T) {
	rows := segment(t, ping("2023-01-05 14:30:09", "40.0", "-75.0"))

	if rows[0].Date != "01/05/2023" {
		t.Errorf("date = %s, want 01/05/2023", rows[0].Date)
	}
	if rows[0].Time != "14:30:09" {
		t.Errorf("time = %s, want 14:30:09", rows[0].Time)
	}
}

func TestSegmentMalformedTimestampFatal(t *testing.T) {
	_, err := NewSegmenter(5).Segment(
		models.UserHistory{UserID: "u1", Pings: []models.PingRecord{
			ping("01/01/2023 09:00:00", "40.0", "-75.0"),
		}},
		farAway,
		home.MaskedCoordinate{},
	)
	if err == nil {
		t.Fatal("expected error for malformed timestamp key")
	}
}

func TestSegmentAnonymizesHomeRows(t *testing.T) {
	homeCoord := geo.NewCoordinate(40.0, -75.0)
	masked := home.MaskedCoordinate{Lat: "40.0007", Lon: "-75.0003"}

	rows, err := NewSegmenter(5).Segment(
		models.UserHistory{UserID: "u1", Pings: []models.PingRecord{
			ping("2023-01-01 09:00:00", "40.0", "-75.0"),
			ping("2023-01-01 09:05:00", "41.0", "-74.0"),
			ping("2023-01-01 09:10:00", "40.0", "-75.0"),
		}},
		homeCoord,
		masked,
	)
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}

	for _, i := range []int{0, 2} {
		if rows[i].Latitude != "40.0007" || rows[i].Longitude != "-75.0003" {
			t.Errorf("home row %d = (%s, %s), want masked (40.0007, -75.0003)", i, rows[i].Latitude, rows[i].Longitude)
		}
	}
	if rows[1].Latitude != "41.0000" || rows[1].Longitude != "-74.0000" {
		t.Errorf("away row = (%s, %s), want real (41.0000, -74.0000)", rows[1].Latitude, rows[1].Longitude)
	}
}

func TestSegmentTSIConfigurable(t *testing.T) {
	// With a 10-minute interval the continuity window stretches to 20
	// minutes and each contiguous sample adds 10.
	rows, err := NewSegmenter(10).Segment(
		models.UserHistory{UserID: "u1", Pings: []models.PingRecord{
			ping("2023-01-01 09:00:00", "40.0", "-75.0"),
			ping("2023-01-01 09:20:00", "40.0", "-75.0"),
			ping("2023-01-01 09:41:00", "40.0", "-75.0"),
		}},
		farAway,
		home.MaskedCoordinate{},
	)
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}

	if got := dwellValues(rows); !equalInts(got, []int{0, 10, 0}) {
		t.Errorf("dwell = %v, want [0 10 0]", got)
	}
}
