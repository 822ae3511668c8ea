package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ducktracker/reports-backend-go/internal/models"
)

// Header is the fixed first line of the tab-separated report.
const Header = "User I.D.\tDate\tTime\tLatitude\tLongitude\tTime at Location"

// Writer emits report rows as tab-separated text. It buffers the underlying
// sink; callers must Flush once after the last chunk.
type Writer struct {
	w *bufio.Writer
}

// NewWriter wraps an output sink.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteHeader writes the report header line.
func (w *Writer) WriteHeader() error {
	if _, err := w.w.WriteString(Header + "\n"); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}
	return nil
}

// WriteRows appends one user's chunk of rows in order.
func (w *Writer) WriteRows(rows []models.ReportRow) error {
	for _, r := range rows {
		line := strings.Join([]string{
			r.UserID,
			r.Date,
			r.Time,
			r.Latitude,
			r.Longitude,
			strconv.Itoa(r.DwellMinutes),
		}, "\t")
		if _, err := w.w.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("failed to write report row: %w", err)
		}
	}
	return nil
}

// Flush drains the buffer to the sink.
func (w *Writer) Flush() error {
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}
	return nil
}
