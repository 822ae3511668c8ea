package source

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ducktracker/reports-backend-go/internal/models"
)

// HTTPSource fetches a snapshot from a realtime-database JSON export URL
// (the `/.json` endpoint of the tracker's hosted database).
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource creates an HTTP-backed snapshot source.
func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		URL:    url,
		Client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Histories downloads and decodes the hosted snapshot.
func (s *HTTPSource) Histories() ([]models.UserHistory, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("snapshot fetch returned status %d", resp.StatusCode)
	}

	snap, err := Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("snapshot from %s: %w", s.URL, err)
	}
	return snap.Users, nil
}
