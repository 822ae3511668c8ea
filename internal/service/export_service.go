package service

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sort"

	"github.com/google/uuid"

	"github.com/ducktracker/reports-backend-go/internal/dwell"
	"github.com/ducktracker/reports-backend-go/internal/export"
	"github.com/ducktracker/reports-backend-go/internal/home"
	"github.com/ducktracker/reports-backend-go/internal/models"
)

// HistoryProvider supplies per-user ping histories for an export run. The
// sqlite repository and the file/HTTP snapshot sources all satisfy it.
type HistoryProvider interface {
	Histories() ([]models.UserHistory, error)
}

// ExportService runs the full derivation pipeline: home inference, home
// anonymization and dwell segmentation per user, streamed to a report sink
// in per-user chunks.
type ExportService struct {
	provider  HistoryProvider
	locator   home.Locator
	segmenter *dwell.Segmenter
	digits    home.DigitSource
}

// NewExportService creates an export service. The digit source feeds home
// anonymization; pass a deterministic one to make exports reproducible.
func NewExportService(provider HistoryProvider, tsiMinutes int, digits home.DigitSource) *ExportService {
	return &ExportService{
		provider:  provider,
		segmenter: dwell.NewSegmenter(tsiMinutes),
		digits:    digits,
	}
}

// Run writes the tab-separated report for every user to w. Users with no
// usable location data are reported and skipped; any other failure aborts
// the run. The caller owns the sink's lifecycle.
func (s *ExportService) Run(w io.Writer) error {
	taskID := uuid.NewString()
	log.Printf("[ExportService] starting export task %s", taskID)

	histories, err := s.provider.Histories()
	if err != nil {
		return fmt.Errorf("failed to load histories: %w", err)
	}
	// Providers return sorted users already; re-sorting keeps the row order
	// guarantee independent of the provider.
	sort.Slice(histories, func(i, j int) bool {
		return histories[i].UserID < histories[j].UserID
	})

	rw := export.NewWriter(w)
	if err := rw.WriteHeader(); err != nil {
		return err
	}

	var exported, skipped int
	for _, h := range histories {
		res, err := s.locator.Locate(h)
		if errors.Is(err, home.ErrNoValidPings) {
			log.Printf("[ExportService] task %s: no usable location data for user %s, skipping", taskID, h.UserID)
			skipped++
			continue
		}
		if err != nil {
			return err
		}
		if res.LowConfidence {
			log.Printf("[ExportService] task %s: low-confidence home for user %s (no unique mode in %d valid pings)",
				taskID, h.UserID, res.ValidPings)
		}

		masked := home.Mask(res.Coordinate, s.digits)
		rows, err := s.segmenter.Segment(h, res.Coordinate, masked)
		if err != nil {
			return err
		}
		if err := rw.WriteRows(rows); err != nil {
			return err
		}
		exported++
	}

	if err := rw.Flush(); err != nil {
		return err
	}

	log.Printf("[ExportService] task %s finished: %d users exported, %d skipped", taskID, exported, skipped)
	return nil
}
