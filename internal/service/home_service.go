package service

import (
	"github.com/ducktracker/reports-backend-go/internal/geo"
	"github.com/ducktracker/reports-backend-go/internal/home"
	"github.com/ducktracker/reports-backend-go/internal/models"
	"github.com/ducktracker/reports-backend-go/internal/repository"
)

// HomeService answers home-location diagnostics for single users
type HomeService struct {
	repo    *repository.PingRepository
	locator home.Locator
}

// NewHomeService creates a new home service
func NewHomeService(repo *repository.PingRepository) *HomeService {
	return &HomeService{repo: repo}
}

// Report infers the user's home and packages the evidence: valid ping count,
// mode count, the low-confidence flag and the great-circle spread of the
// user's pings around the inferred home. Returns home.ErrNoValidPings when
// the user has no usable measurements.
func (s *HomeService) Report(userID string) (*models.HomeReport, error) {
	h, err := s.repo.History(userID)
	if err != nil {
		return nil, err
	}

	res, err := s.locator.Locate(h)
	if err != nil {
		return nil, err
	}

	spread := geo.SpreadRadiusMeters(res.Coordinate, home.Coordinates(h))

	return &models.HomeReport{
		UserID:             userID,
		Latitude:           res.Coordinate.LatString(),
		Longitude:          res.Coordinate.LonString(),
		ValidPings:         res.ValidPings,
		ModeCount:          res.ModeCount,
		LowConfidence:      res.LowConfidence,
		SpreadRadiusMeters: spread,
	}, nil
}
