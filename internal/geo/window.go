package geo

import (
	"fmt"
	"time"
)

// stampLayout is the fixed date+time representation used for continuity
// checks and report rows.
const stampLayout = "01/02/2006-15:04:05"

// Window decides whether two consecutive samples at the same place represent
// continuous dwelling or a measurement gap (device offline, app closed).
// The tolerance is twice the temporal sampling interval.
type Window struct {
	tsi time.Duration
}

// NewWindow builds a continuity window for the given sampling interval in
// minutes.
func NewWindow(tsiMinutes int) Window {
	return Window{tsi: time.Duration(tsiMinutes) * time.Minute}
}

// Within reports whether the elapsed wall-clock time between the two
// date/time pairs is at most twice the sampling interval. Dates are
// MM/DD/YYYY, times are HH:MM:SS; a malformed stamp is an input-format error
// and aborts the run.
func (w Window) Within(beforeDate, beforeTime, afterDate, afterTime string) (bool, error) {
	before, err := time.Parse(stampLayout, beforeDate+"-"+beforeTime)
	if err != nil {
		return false, fmt.Errorf("malformed timestamp %q %q: %w", beforeDate, beforeTime, err)
	}
	after, err := time.Parse(stampLayout, afterDate+"-"+afterTime)
	if err != nil {
		return false, fmt.Errorf("malformed timestamp %q %q: %w", afterDate, afterTime, err)
	}
	return after.Sub(before) <= 2*w.tsi, nil
}
