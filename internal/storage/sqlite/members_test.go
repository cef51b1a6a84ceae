package sqlite

import "testing"

func TestMemberRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	if err := store.AddMember(testMember("m1", "sam")); err != nil {
		t.Fatalf("AddMember() failed: %v", err)
	}

	got, err := store.GetMember("m1")
	if err != nil {
		t.Fatalf("GetMember() failed: %v", err)
	}
	if got.Name != "sam" || got.Points != 0 {
		t.Errorf("GetMember() = %+v, want sam with 0 points", got)
	}

	byName, err := store.GetMemberByName("sam")
	if err != nil {
		t.Fatalf("GetMemberByName() failed: %v", err)
	}
	if byName.ID != "m1" {
		t.Errorf("GetMemberByName() ID = %q, want m1", byName.ID)
	}
}

func TestApplyPointsDelta(t *testing.T) {
	store := setupTestStore(t)

	if err := store.AddMember(testMember("m1", "sam")); err != nil {
		t.Fatalf("AddMember() failed: %v", err)
	}

	deltas := []int{15, 10, -5}
	for _, d := range deltas {
		if err := store.ApplyPointsDelta("m1", d); err != nil {
			t.Fatalf("ApplyPointsDelta(%d) failed: %v", d, err)
		}
	}

	got, err := store.GetMember("m1")
	if err != nil {
		t.Fatalf("GetMember() failed: %v", err)
	}
	if got.Points != 20 {
		t.Errorf("Points = %d, want 20", got.Points)
	}

	// Totals may go negative; there is no floor on a member's balance.
	if err := store.ApplyPointsDelta("m1", -100); err != nil {
		t.Fatalf("ApplyPointsDelta(-100) failed: %v", err)
	}
	got, _ = store.GetMember("m1")
	if got.Points != -80 {
		t.Errorf("Points = %d, want -80", got.Points)
	}
}

func TestApplyPointsDeltaUnknownMember(t *testing.T) {
	store := setupTestStore(t)
	if err := store.ApplyPointsDelta("ghost", 10); err == nil {
		t.Error("ApplyPointsDelta(unknown member) succeeded, want error")
	}
}

func TestDeleteMember(t *testing.T) {
	store := setupTestStore(t)

	if err := store.AddMember(testMember("m1", "sam")); err != nil {
		t.Fatalf("AddMember() failed: %v", err)
	}
	if err := store.DeleteMember("m1"); err != nil {
		t.Fatalf("DeleteMember() failed: %v", err)
	}
	if _, err := store.GetMember("m1"); err == nil {
		t.Error("GetMember() found a deleted member")
	}

	all, err := store.GetAllMembers(true)
	if err != nil {
		t.Fatalf("GetAllMembers(true) failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("GetAllMembers(true) returned %d members, want the soft-deleted row", len(all))
	}
}
