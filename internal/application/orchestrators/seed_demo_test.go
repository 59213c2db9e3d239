package orchestrators

import (
	"context"
	"testing"
)

// TestExecuteSeedDemo_FreshDatabase tests that an empty database gets the
// demo roster.
func TestExecuteSeedDemo_FreshDatabase(t *testing.T) {
	members, trainers := newMockMemberStore(), newMockTrainerStore()
	rooms, staffs := newMockRoomStore(), newMockStaffStore()
	err := ExecuteSeedDemo(context.Background(), SeedDemoDeps{
		MemberStore: members, TrainerStore: trainers,
		RoomStore: rooms, StaffStore: staffs, Now: fixedNow,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(members.members) == 0 || len(trainers.trainers) == 0 || len(rooms.rooms) == 0 || len(staffs.staff) == 0 {
		t.Error("expected every roster to be seeded")
	}
}

// TestExecuteSeedDemo_AlreadySeeded tests that seeding is a no-op when
// members already exist.
func TestExecuteSeedDemo_AlreadySeeded(t *testing.T) {
	members, trainers := newMockMemberStore(), newMockTrainerStore()
	rooms, staffs := newMockRoomStore(), newMockStaffStore()
	seedMember(members, "Ava", "Nguyen", "ava@example.com")

	err := ExecuteSeedDemo(context.Background(), SeedDemoDeps{
		MemberStore: members, TrainerStore: trainers,
		RoomStore: rooms, StaffStore: staffs, Now: fixedNow,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(members.members) != 1 {
		t.Errorf("expected no new members, have %d", len(members.members))
	}
	if len(trainers.trainers) != 0 || len(rooms.rooms) != 0 {
		t.Error("expected no trainers or rooms seeded")
	}
}
