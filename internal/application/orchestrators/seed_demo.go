package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/room"
	"gymdesk/internal/domain/staff"
	"gymdesk/internal/domain/trainer"
)

// MemberStoreForSeed defines the store interface needed to seed members.
type MemberStoreForSeed interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, m member.Member) (int64, error)
}

// TrainerStoreForSeed defines the store interface needed to seed trainers.
type TrainerStoreForSeed interface {
	Create(ctx context.Context, t trainer.Trainer) (int64, error)
}

// RoomStoreForSeed defines the store interface needed to seed rooms.
type RoomStoreForSeed interface {
	Create(ctx context.Context, r room.Room) (int64, error)
}

// StaffStoreForSeed defines the store interface needed to seed admin staff.
type StaffStoreForSeed interface {
	Create(ctx context.Context, a staff.AdminStaff) (int64, error)
}

// SeedDemoDeps holds dependencies for SeedDemo.
type SeedDemoDeps struct {
	MemberStore  MemberStoreForSeed
	TrainerStore TrainerStoreForSeed
	RoomStore    RoomStoreForSeed
	StaffStore   StaffStoreForSeed
	Now          func() time.Time
}

// ExecuteSeedDemo loads a small demo roster so a fresh database is usable
// immediately. Runs once: a database that already holds members is left
// untouched.
// POST: Demo members, trainers, rooms, and staff persisted on first run
func ExecuteSeedDemo(ctx context.Context, deps SeedDemoDeps) error {
	count, err := deps.MemberStore.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		slog.Info("seed_event", "event", "seed_skipped", "existing_members", count)
		return nil
	}

	today := deps.Now()

	members := []member.Member{
		{FirstName: "Ava", LastName: "Nguyen", DateOfBirth: time.Date(1992, 4, 11, 0, 0, 0, 0, time.UTC),
			Gender: "F", Email: "ava.nguyen@example.com", Phone: "021-555-0101",
			Address: "12 Harbour St", JoinDate: today, MembershipStatus: member.StatusActive},
		{FirstName: "Marcus", LastName: "Reed", DateOfBirth: time.Date(1985, 9, 2, 0, 0, 0, 0, time.UTC),
			Gender: "M", Email: "marcus.reed@example.com", Phone: "021-555-0102",
			Address: "48 Victoria Ave", JoinDate: today, MembershipStatus: member.StatusActive},
		{FirstName: "Priya", LastName: "Sharma", DateOfBirth: time.Date(1998, 1, 27, 0, 0, 0, 0, time.UTC),
			Gender: "F", Email: "priya.sharma@example.com",
			JoinDate: today, MembershipStatus: member.StatusActive},
	}
	for _, m := range members {
		if _, err := deps.MemberStore.Create(ctx, m); err != nil {
			return err
		}
	}

	trainers := []trainer.Trainer{
		{FirstName: "Jordan", LastName: "Blake", Email: "jordan.blake@example.com",
			Specialty: "Strength & Conditioning", HireDate: today.AddDate(-2, 0, 0)},
		{FirstName: "Sofia", LastName: "Castillo", Email: "sofia.castillo@example.com",
			Specialty: "Yoga", HireDate: today.AddDate(-1, 0, 0)},
	}
	for _, t := range trainers {
		if _, err := deps.TrainerStore.Create(ctx, t); err != nil {
			return err
		}
	}

	rooms := []room.Room{
		{Number: "101", Capacity: 30, Type: "Studio"},
		{Number: "102", Capacity: 12, Type: "Weights"},
		{Number: "201", Capacity: 2, Type: "PT Suite"},
	}
	for _, r := range rooms {
		if _, err := deps.RoomStore.Create(ctx, r); err != nil {
			return err
		}
	}

	admins := []staff.AdminStaff{
		{FirstName: "Dana", LastName: "Whitfield", Email: "dana.whitfield@example.com",
			Role: "Front Desk", HireDate: today.AddDate(-3, 0, 0)},
	}
	for _, a := range admins {
		if _, err := deps.StaffStore.Create(ctx, a); err != nil {
			return err
		}
	}

	slog.Info("seed_event", "event", "seed_completed",
		"members", len(members), "trainers", len(trainers), "rooms", len(rooms), "staff", len(admins))
	return nil
}
