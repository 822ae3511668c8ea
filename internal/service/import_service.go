package service

import (
	"io"
	"log"

	"github.com/ducktracker/reports-backend-go/internal/models"
	"github.com/ducktracker/reports-backend-go/internal/repository"
	"github.com/ducktracker/reports-backend-go/internal/source"
)

// ImportService archives uploaded snapshots into the ping store
type ImportService struct {
	repo *repository.PingRepository
}

// NewImportService creates a new import service
func NewImportService(repo *repository.PingRepository) *ImportService {
	return &ImportService{repo: repo}
}

// ImportSnapshot decodes a snapshot JSON document and stores every ping.
// Returns the number of users and rows imported.
func (s *ImportService) ImportSnapshot(r io.Reader) (users, rows int, err error) {
	snap, err := source.Decode(r)
	if err != nil {
		return 0, 0, err
	}

	saved, err := s.repo.SaveSnapshot(snap)
	if err != nil {
		return 0, 0, err
	}

	log.Printf("[ImportService] imported snapshot: %d users, %d pings", len(snap.Users), saved)
	return len(snap.Users), saved, nil
}

// Save stores an already-decoded snapshot.
func (s *ImportService) Save(snap models.Snapshot) (int, error) {
	return s.repo.SaveSnapshot(snap)
}
