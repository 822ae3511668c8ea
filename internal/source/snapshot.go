// Package source loads tracker database snapshots: the JSON export shape is
// a map from user ID to a map from "YYYY-MM-DD HH:MM:SS" timestamp keys to
// latitude/longitude string pairs.
package source

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/ducktracker/reports-backend-go/internal/models"
)

type rawPing struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// Decode parses a snapshot JSON document. Object key order is lost in
// decoding, so chronology is restored by sorting the timestamp keys — the
// ISO-like format sorts lexicographically in time order. Users are sorted by
// ID so an export over the same snapshot is reproducible.
func Decode(r io.Reader) (models.Snapshot, error) {
	var raw map[string]map[string]rawPing
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	snap := models.Snapshot{Users: make([]models.UserHistory, 0, len(raw))}
	for userID, entries := range raw {
		keys := make([]string, 0, len(entries))
		for k := range entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		h := models.UserHistory{UserID: userID, Pings: make([]models.PingRecord, 0, len(keys))}
		for _, k := range keys {
			h.Pings = append(h.Pings, models.PingRecord{
				Timestamp: k,
				Latitude:  entries[k].Latitude,
				Longitude: entries[k].Longitude,
			})
		}
		snap.Users = append(snap.Users, h)
	}

	sort.Slice(snap.Users, func(i, j int) bool {
		return snap.Users[i].UserID < snap.Users[j].UserID
	})
	return snap, nil
}
