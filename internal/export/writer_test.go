package export

import (
	"bytes"
	"testing"

	"github.com/ducktracker/reports-backend-go/internal/models"
)

func TestWriterOutput(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	if err := w.WriteHeader(); err != nil {
		t.Fatalf("WriteHeader failed: %v", err)
	}
	err := w.WriteRows([]models.ReportRow{
		{UserID: "alice", Date: "01/01/2023", Time: "09:00:00", Latitude: "40.0000", Longitude: "-75.0000", DwellMinutes: 0},
		{UserID: "alice", Date: "01/01/2023", Time: "09:05:00", Latitude: "40.0000", Longitude: "-75.0000", DwellMinutes: 5},
	})
	if err != nil {
		t.Fatalf("WriteRows failed: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	want := "User I.D.\tDate\tTime\tLatitude\tLongitude\tTime at Location\n" +
		"alice\t01/01/2023\t09:00:00\t40.0000\t-75.0000\t0\n" +
		"alice\t01/01/2023\t09:05:00\t40.0000\t-75.0000\t5\n"
	if got := buf.String(); got != want {
		t.Errorf("report = %q, want %q", got, want)
	}
}

type failingSink struct{}

func (failingSink) Write(p []byte) (int, error) {
	return 0, bytes.ErrTooLarge
}

func TestWriterSinkFailureSurfaces(t *testing.T) {
	w := NewWriter(failingSink{})

	// bufio defers the write; the failure must surface by Flush at the
	// latest.
	err := w.WriteHeader()
	if err == nil {
		err = w.Flush()
	}
	if err == nil {
		t.Error("expected sink failure to surface")
	}
}
