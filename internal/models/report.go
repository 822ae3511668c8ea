package models

// ReportRow is one line of the human-readable report: a valid ping annotated
// with cumulative dwell minutes. Latitude/longitude are the 4-decimal rounded
// values, or the anonymized values when the ping falls at the user's inferred
// home.
type ReportRow struct {
	UserID       string `json:"userId"`
	Date         string `json:"date"` // Format: MM/DD/YYYY
	Time         string `json:"time"` // Format: HH:MM:SS
	Latitude     string `json:"latitude"`
	Longitude    string `json:"longitude"`
	DwellMinutes int    `json:"dwellMinutes"`
}

// HomeReport is the diagnostic view of a user's inferred home location.
type HomeReport struct {
	UserID             string  `json:"userId"`
	Latitude           string  `json:"latitude"`
	Longitude          string  `json:"longitude"`
	ValidPings         int     `json:"validPings"`
	ModeCount          int     `json:"modeCount"`
	LowConfidence      bool    `json:"lowConfidence"`
	SpreadRadiusMeters float64 `json:"spreadRadiusMeters"`
}
