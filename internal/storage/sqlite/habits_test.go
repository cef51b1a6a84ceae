package sqlite

import (
	"reflect"
	"testing"

	"github.com/hearthhq/hearth/internal/models"
)

func TestHabitRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	h := testHabit("h1", "m1", "dishes")
	h.Category = "chores"
	h.CompletedDates = []string{"2025-06-11", "2025-06-10"}
	h.Count = 1
	h.TotalCount = 12
	h.StreakDays = 2

	if err := store.AddHabit(h); err != nil {
		t.Fatalf("AddHabit() failed: %v", err)
	}

	got, err := store.GetHabit("h1")
	if err != nil {
		t.Fatalf("GetHabit() failed: %v", err)
	}
	if got.Name != "dishes" || got.Category != "chores" {
		t.Errorf("GetHabit() = %+v, want name/category preserved", got)
	}
	if !reflect.DeepEqual(got.CompletedDates, h.CompletedDates) {
		t.Errorf("CompletedDates = %v, want %v", got.CompletedDates, h.CompletedDates)
	}
	if got.Count != 1 || got.TotalCount != 12 || got.StreakDays != 2 {
		t.Errorf("counters = %d/%d/%d, want 1/12/2", got.Count, got.TotalCount, got.StreakDays)
	}
	if !got.LastUpdated.Valid() {
		t.Error("LastUpdated came back invalid")
	}
}

func TestHabitInvalidStoredTimestamp(t *testing.T) {
	store := setupTestStore(t)

	h := testHabit("h1", "m1", "dishes")
	if err := store.AddHabit(h); err != nil {
		t.Fatalf("AddHabit() failed: %v", err)
	}

	// Simulate a row written by an older build with a corrupted timestamp.
	if _, err := store.GetDB().Exec(`UPDATE habits SET last_updated = 'corrupted' WHERE id = 'h1'`); err != nil {
		t.Fatalf("failed to corrupt timestamp: %v", err)
	}

	got, err := store.GetHabit("h1")
	if err != nil {
		t.Fatalf("GetHabit() failed: %v", err)
	}
	if got.LastUpdated.Valid() {
		t.Error("corrupted last_updated parsed as valid, want invalid")
	}
}

func TestGetHabitByName(t *testing.T) {
	store := setupTestStore(t)

	if err := store.AddHabit(testHabit("h1", "m1", "dishes")); err != nil {
		t.Fatalf("AddHabit() failed: %v", err)
	}

	got, err := store.GetHabitByName("dishes")
	if err != nil {
		t.Fatalf("GetHabitByName() failed: %v", err)
	}
	if got.ID != "h1" {
		t.Errorf("GetHabitByName() ID = %q, want h1", got.ID)
	}

	if _, err := store.GetHabitByName("nonexistent"); err == nil {
		t.Error("GetHabitByName(nonexistent) succeeded, want error")
	}
}

func TestGetAllHabitsFiltering(t *testing.T) {
	store := setupTestStore(t)

	for _, h := range []models.Habit{
		testHabit("h1", "m1", "active"),
		testHabit("h2", "m1", "archived"),
		testHabit("h3", "m1", "deleted"),
	} {
		if err := store.AddHabit(h); err != nil {
			t.Fatalf("AddHabit(%s) failed: %v", h.Name, err)
		}
	}
	if err := store.ArchiveHabit("h2"); err != nil {
		t.Fatalf("ArchiveHabit() failed: %v", err)
	}
	if err := store.DeleteHabit("h3"); err != nil {
		t.Fatalf("DeleteHabit() failed: %v", err)
	}

	tests := []struct {
		name                             string
		includeArchived, includeDeleted  bool
		want                             int
	}{
		{"live only", false, false, 1},
		{"with archived", true, false, 2},
		{"with deleted", false, true, 2},
		{"everything", true, true, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			habits, err := store.GetAllHabits(tt.includeArchived, tt.includeDeleted)
			if err != nil {
				t.Fatalf("GetAllHabits() failed: %v", err)
			}
			if len(habits) != tt.want {
				t.Errorf("GetAllHabits(%v, %v) returned %d habits, want %d",
					tt.includeArchived, tt.includeDeleted, len(habits), tt.want)
			}
		})
	}
}

func TestGetHabitsForMember(t *testing.T) {
	store := setupTestStore(t)

	if err := store.AddHabit(testHabit("h1", "m1", "dishes")); err != nil {
		t.Fatalf("AddHabit() failed: %v", err)
	}
	if err := store.AddHabit(testHabit("h2", "m2", "reading")); err != nil {
		t.Fatalf("AddHabit() failed: %v", err)
	}

	habits, err := store.GetHabitsForMember("m1")
	if err != nil {
		t.Fatalf("GetHabitsForMember() failed: %v", err)
	}
	if len(habits) != 1 || habits[0].ID != "h1" {
		t.Errorf("GetHabitsForMember(m1) = %v, want only h1", habits)
	}
}

func TestArchiveRestoreLifecycle(t *testing.T) {
	store := setupTestStore(t)

	if err := store.AddHabit(testHabit("h1", "m1", "dishes")); err != nil {
		t.Fatalf("AddHabit() failed: %v", err)
	}

	if err := store.ArchiveHabit("h1"); err != nil {
		t.Fatalf("ArchiveHabit() failed: %v", err)
	}
	if err := store.ArchiveHabit("h1"); err == nil {
		t.Error("second ArchiveHabit() succeeded, want error")
	}
	if err := store.UnarchiveHabit("h1"); err != nil {
		t.Fatalf("UnarchiveHabit() failed: %v", err)
	}

	if err := store.DeleteHabit("h1"); err != nil {
		t.Fatalf("DeleteHabit() failed: %v", err)
	}
	if _, err := store.GetHabit("h1"); err == nil {
		t.Error("GetHabit() found a deleted habit")
	}
	if err := store.RestoreHabit("h1"); err != nil {
		t.Fatalf("RestoreHabit() failed: %v", err)
	}
	if _, err := store.GetHabit("h1"); err != nil {
		t.Errorf("GetHabit() after restore failed: %v", err)
	}
}
