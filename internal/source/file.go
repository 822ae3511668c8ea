package source

import (
	"fmt"
	"os"

	"github.com/ducktracker/reports-backend-go/internal/models"
)

// FileSource reads a snapshot from a local JSON export file.
type FileSource struct {
	Path string
}

// NewFileSource creates a file-backed snapshot source.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Histories loads and decodes the snapshot file.
func (s *FileSource) Histories() ([]models.UserHistory, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer f.Close()

	snap, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("snapshot file %s: %w", s.Path, err)
	}
	return snap.Users, nil
}
