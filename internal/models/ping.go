package models

// PingRecord is one raw GPS measurement as stored in the tracker database.
// Latitude/longitude are kept as the decimal strings the collector uploaded;
// either may be empty when the device had no fix.
type PingRecord struct {
	Timestamp string `json:"timestamp" db:"recorded_at"` // Format: 2023-01-01 09:00:00
	Latitude  string `json:"latitude" db:"latitude"`
	Longitude string `json:"longitude" db:"longitude"`
}

// Valid reports whether the ping carries both coordinates. Invalid pings are
// excluded from home inference, dwell accounting and output — a documented
// data-quality policy, not an error.
func (p PingRecord) Valid() bool {
	return p.Latitude != "" && p.Longitude != ""
}

// UserHistory is one user's ping records in ascending timestamp order.
type UserHistory struct {
	UserID string       `json:"userId"`
	Pings  []PingRecord `json:"pings"`
}

// Snapshot is a full capture of the tracker database: every user's history,
// sorted by user ID so repeated exports over the same data produce the same
// row order.
type Snapshot struct {
	Users []UserHistory `json:"users"`
}
