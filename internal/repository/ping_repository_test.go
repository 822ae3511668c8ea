package repository

import (
	"path/filepath"
	"testing"

	"github.com/ducktracker/reports-backend-go/internal/database"
	"github.com/ducktracker/reports-backend-go/internal/models"
)

func testRepo(t *testing.T) *PingRepository {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPingRepository(db)
}

func testSnapshot() models.Snapshot {
	return models.Snapshot{Users: []models.UserHistory{
		{
			UserID: "abe",
			Pings: []models.PingRecord{
				{Timestamp: "2023-01-01 09:00:00", Latitude: "40.0", Longitude: "-75.0"},
				{Timestamp: "2023-01-01 09:05:00", Latitude: "", Longitude: ""},
			},
		},
		{
			UserID: "zoe",
			Pings: []models.PingRecord{
				{Timestamp: "2023-01-01 10:00:00", Latitude: "50.0", Longitude: "8.0"},
			},
		},
	}}
}

func TestSaveSnapshotAndHistories(t *testing.T) {
	repo := testRepo(t)

	saved, err := repo.SaveSnapshot(testSnapshot())
	if err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	if saved != 3 {
		t.Errorf("saved = %d, want 3 (invalid pings are archived too)", saved)
	}

	histories, err := repo.Histories()
	if err != nil {
		t.Fatalf("Histories failed: %v", err)
	}
	if len(histories) != 2 {
		t.Fatalf("got %d histories, want 2", len(histories))
	}
	if histories[0].UserID != "abe" || histories[1].UserID != "zoe" {
		t.Errorf("user order = [%s, %s], want [abe, zoe]", histories[0].UserID, histories[1].UserID)
	}
	if len(histories[0].Pings) != 2 {
		t.Errorf("abe has %d pings, want 2", len(histories[0].Pings))
	}
	if histories[0].Pings[0].Timestamp != "2023-01-01 09:00:00" {
		t.Errorf("first ping = %s, want the earliest timestamp", histories[0].Pings[0].Timestamp)
	}
}

func TestSaveSnapshotReplacesDuplicates(t *testing.T) {
	repo := testRepo(t)

	if _, err := repo.SaveSnapshot(testSnapshot()); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	// Re-importing the same snapshot must not duplicate rows.
	if _, err := repo.SaveSnapshot(testSnapshot()); err != nil {
		t.Fatalf("second SaveSnapshot failed: %v", err)
	}

	h, err := repo.History("abe")
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(h.Pings) != 2 {
		t.Errorf("abe has %d pings after re-import, want 2", len(h.Pings))
	}
}

func TestHistoryUnknownUser(t *testing.T) {
	repo := testRepo(t)

	h, err := repo.History("nobody")
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(h.Pings) != 0 {
		t.Errorf("unknown user has %d pings, want 0", len(h.Pings))
	}
}

func TestUsers(t *testing.T) {
	repo := testRepo(t)

	if _, err := repo.SaveSnapshot(testSnapshot()); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	users, err := repo.Users()
	if err != nil {
		t.Fatalf("Users failed: %v", err)
	}
	if len(users) != 2 || users[0] != "abe" || users[1] != "zoe" {
		t.Errorf("users = %v, want [abe zoe]", users)
	}
}
