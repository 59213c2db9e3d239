// Command gymdesk is the interactive front end for the gym management
// backend. It parses console input, hands it to the facades, and prints the
// results; all decisions live in the application layer.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"

	"gymdesk/internal/adapters/storage"
	"gymdesk/internal/application/facades"
	"gymdesk/internal/application/orchestrators"
	"gymdesk/internal/application/projections"
	"gymdesk/internal/config"
	"gymdesk/internal/domain/validate"
)

func main() {
	seed := flag.Bool("seed", false, "load demo data into an empty database and exit")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)",
		cfg.Database.Path, cfg.Database.BusyTimeoutMS)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	ctx := context.Background()
	app := &cli{
		members:  facades.NewMemberService(db),
		trainers: facades.NewTrainerService(db),
		admins:   facades.NewAdminService(db),
		in:       bufio.NewScanner(os.Stdin),
	}

	if *seed {
		if err := app.admins.SeedDemo(ctx); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
		fmt.Println("Demo data loaded.")
		return
	}

	app.run(ctx)
}

type cli struct {
	members  *facades.MemberService
	trainers *facades.TrainerService
	admins   *facades.AdminService
	in       *bufio.Scanner
}

func (c *cli) run(ctx context.Context) {
	for {
		fmt.Println("\n=== GymDesk ===")
		fmt.Println("1. Member menu")
		fmt.Println("2. Trainer menu")
		fmt.Println("3. Admin menu")
		fmt.Println("0. Exit")
		switch c.prompt("Choice") {
		case "1":
			c.memberMenu(ctx)
		case "2":
			c.trainerMenu(ctx)
		case "3":
			c.adminMenu(ctx)
		case "0":
			return
		default:
			fmt.Println("Unknown choice.")
		}
	}
}

func (c *cli) memberMenu(ctx context.Context) {
	for {
		fmt.Println("\n--- Member ---")
		fmt.Println("1. Register member")
		fmt.Println("2. Update profile")
		fmt.Println("3. Add fitness goal")
		fmt.Println("4. Log health metric")
		fmt.Println("5. Schedule session")
		fmt.Println("0. Back")
		switch c.prompt("Choice") {
		case "1":
			c.registerMember(ctx)
		case "2":
			c.updateProfile(ctx)
		case "3":
			c.addFitnessGoal(ctx)
		case "4":
			c.logHealthMetric(ctx)
		case "5":
			c.scheduleSession(ctx)
		case "0":
			return
		default:
			fmt.Println("Unknown choice.")
		}
	}
}

func (c *cli) trainerMenu(ctx context.Context) {
	for {
		fmt.Println("\n--- Trainer ---")
		fmt.Println("1. Check availability")
		fmt.Println("2. View schedule")
		fmt.Println("3. Look up member")
		fmt.Println("0. Back")
		switch c.prompt("Choice") {
		case "1":
			c.checkAvailability(ctx)
		case "2":
			c.viewSchedule(ctx)
		case "3":
			c.lookupMember(ctx)
		case "0":
			return
		default:
			fmt.Println("Unknown choice.")
		}
	}
}

func (c *cli) adminMenu(ctx context.Context) {
	for {
		fmt.Println("\n--- Admin ---")
		fmt.Println("1. Assign room to session")
		fmt.Println("2. Log maintenance issue")
		fmt.Println("3. Update maintenance issue")
		fmt.Println("4. Create invoice")
		fmt.Println("5. Record payment")
		fmt.Println("0. Back")
		switch c.prompt("Choice") {
		case "1":
			c.assignRoom(ctx)
		case "2":
			c.logMaintenanceIssue(ctx)
		case "3":
			c.updateMaintenanceIssue(ctx)
		case "4":
			c.createInvoice(ctx)
		case "5":
			c.recordPayment(ctx)
		case "0":
			return
		default:
			fmt.Println("Unknown choice.")
		}
	}
}

// --- member actions ---

func (c *cli) registerMember(ctx context.Context) {
	input := orchestrators.RegisterMemberInput{
		FirstName: c.prompt("First name"),
		LastName:  c.prompt("Last name"),
		Gender:    c.prompt("Gender (M/F/O, blank to skip)"),
		Email:     c.prompt("Email"),
		Phone:     c.prompt("Phone (blank to skip)"),
		Address:   c.prompt("Address (blank to skip)"),
	}
	if s := c.prompt("Date of birth (YYYY-MM-DD, blank to skip)"); s != "" {
		dob, err := validate.ParseDate(s)
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		input.DateOfBirth = dob
	}
	m, err := c.members.RegisterMember(ctx, input)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Registered member %d: %s <%s>\n", m.ID, m.FullName(), m.Email)
}

func (c *cli) updateProfile(ctx context.Context) {
	id, err := c.promptID("Member ID")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	input := orchestrators.UpdateProfileInput{MemberID: id}
	input.FirstName = c.promptOptional("New first name (blank to keep)")
	input.LastName = c.promptOptional("New last name (blank to keep)")
	input.Email = c.promptOptional("New email (blank to keep)")
	input.Phone = c.promptOptional("New phone (blank to keep, '-' to clear)")
	input.Address = c.promptOptional("New address (blank to keep, '-' to clear)")
	input.MembershipStatus = c.promptOptional("New status (blank to keep)")
	m, err := c.members.UpdateProfile(ctx, input)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Updated member %d: %s <%s> [%s]\n", m.ID, m.FullName(), m.Email, m.MembershipStatus)
}

func (c *cli) addFitnessGoal(ctx context.Context) {
	id, err := c.promptID("Member ID")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	input := orchestrators.AddFitnessGoalInput{
		MemberID: id,
		GoalType: c.prompt("Goal type"),
		Notes:    c.prompt("Notes (blank to skip)"),
	}
	if w, err := c.promptFloat("Target body weight kg (blank to skip)"); err != nil {
		fmt.Println("Error:", err)
		return
	} else {
		input.TargetBodyWeight = w
	}
	if bf, err := c.promptFloat("Target body fat % (blank to skip)"); err != nil {
		fmt.Println("Error:", err)
		return
	} else {
		input.TargetBodyFatPercentage = bf
	}
	if s := c.prompt("Target date (YYYY-MM-DD, blank for open-ended)"); s != "" {
		d, err := validate.ParseDate(s)
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		input.TargetDate = d
	}
	g, err := c.members.AddFitnessGoal(ctx, input)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Added goal %d (%s) for member %d\n", g.ID, g.GoalType, g.MemberID)
}

func (c *cli) logHealthMetric(ctx context.Context) {
	id, err := c.promptID("Member ID")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	input := orchestrators.LogHealthMetricInput{MemberID: id, Notes: c.prompt("Notes (blank to skip)")}
	if v, err := c.promptFloat("Height cm (blank to skip)"); err != nil {
		fmt.Println("Error:", err)
		return
	} else {
		input.Height = v
	}
	if v, err := c.promptFloat("Weight kg (blank to skip)"); err != nil {
		fmt.Println("Error:", err)
		return
	} else {
		input.Weight = v
	}
	if v, err := c.promptFloat("Body fat % (blank to skip)"); err != nil {
		fmt.Println("Error:", err)
		return
	} else {
		input.BodyFatPercentage = v
	}
	if s := c.prompt("Resting heart rate bpm (blank to skip)"); s != "" {
		hr, err := strconv.Atoi(s)
		if err != nil {
			fmt.Println("Error: invalid number")
			return
		}
		input.RestingHeartRate = &hr
	}
	h, err := c.members.LogHealthMetric(ctx, input)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Logged metric %d for member %d on %s\n", h.ID, h.MemberID, validate.FormatDate(h.RecordedDate))
}

func (c *cli) scheduleSession(ctx context.Context) {
	memberID, err := c.promptID("Member ID")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	trainerID, err := c.promptID("Trainer ID")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	input := orchestrators.ScheduleSessionInput{
		MemberID:  memberID,
		TrainerID: trainerID,
	}
	if s := c.prompt("Room ID (blank for none)"); s != "" {
		roomID, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			fmt.Println("Error: invalid number")
			return
		}
		input.RoomID = roomID
	}
	date, err := validate.ParseDate(c.prompt("Date (YYYY-MM-DD)"))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	input.Date = date
	input.StartTime = c.prompt("Start time (HH:MM)")
	input.EndTime = c.prompt("End time (HH:MM)")
	input.Type = c.prompt("Type (Personal Training / Group Class)")
	if s := c.prompt("Max capacity (group classes only, blank to skip)"); s != "" {
		capacity, err := strconv.Atoi(s)
		if err != nil {
			fmt.Println("Error: invalid number")
			return
		}
		input.MaxCapacity = capacity
	}
	input.Notes = c.prompt("Notes (blank to skip)")

	booked, err := c.members.ScheduleSession(ctx, input)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Scheduled session %d on %s %s\n", booked.ID, validate.FormatDate(booked.Date), booked.Window())
}

// --- trainer actions ---

func (c *cli) checkAvailability(ctx context.Context) {
	trainerID, err := c.promptID("Trainer ID")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	date, err := validate.ParseDate(c.prompt("Date (YYYY-MM-DD)"))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	conf, err := c.trainers.SetAvailability(ctx, orchestrators.SetAvailabilityInput{
		TrainerID: trainerID,
		Date:      date,
		StartTime: c.prompt("Start time (HH:MM)"),
		EndTime:   c.prompt("End time (HH:MM)"),
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if conf.Available {
		fmt.Printf("Available. Confirmation %s\n", conf.Reference)
	} else {
		fmt.Printf("Not available: conflicts with session %d. Confirmation %s\n", conf.ConflictSessionID, conf.Reference)
	}
}

func (c *cli) viewSchedule(ctx context.Context) {
	trainerID, err := c.promptID("Trainer ID")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	query := projections.GetTrainerScheduleQuery{TrainerID: trainerID}
	if s := c.prompt("From date (YYYY-MM-DD, blank for today)"); s != "" {
		from, err := validate.ParseDate(s)
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		query.FromDate = from
	}
	result, err := c.trainers.ViewSchedule(ctx, query)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Schedule for %s from %s:\n", result.TrainerName, validate.FormatDate(result.FromDate))
	if len(result.Entries) == 0 {
		fmt.Println("  (no sessions)")
		return
	}
	for _, e := range result.Entries {
		fmt.Printf("  #%d %s %s-%s %s with %s\n",
			e.SessionID, validate.FormatDate(e.Date), e.StartTime, e.EndTime, e.Type, e.MemberName)
	}
}

func (c *cli) lookupMember(ctx context.Context) {
	result, err := c.trainers.LookupMember(ctx, projections.FindMembersQuery{Term: c.prompt("Name search")})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if len(result.Matches) == 0 {
		fmt.Println("No members found.")
		return
	}
	for _, match := range result.Matches {
		m := match.Member
		fmt.Printf("  #%d %s <%s> [%s]\n", m.ID, m.FullName(), m.Email, m.MembershipStatus)
		if g := match.LatestGoal; g != nil {
			fmt.Printf("      latest goal: %s (%s)\n", g.GoalType, g.Status)
		}
		if h := match.LatestMetric; h != nil {
			fmt.Printf("      latest metric: %s\n", validate.FormatDate(h.RecordedDate))
		}
	}
}

// --- admin actions ---

func (c *cli) assignRoom(ctx context.Context) {
	sessionID, err := c.promptID("Session ID")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	roomID, err := c.promptID("Room ID")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	s, err := c.admins.AssignRoom(ctx, orchestrators.AssignRoomInput{SessionID: sessionID, RoomID: roomID})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Session %d moved to room %d\n", s.ID, s.RoomID)
}

func (c *cli) logMaintenanceIssue(ctx context.Context) {
	roomID, err := c.promptID("Room ID")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	adminID, err := c.promptID("Admin staff ID")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	issue, err := c.admins.LogMaintenanceIssue(ctx, orchestrators.LogMaintenanceIssueInput{
		RoomID:        roomID,
		AdminID:       adminID,
		Description:   c.prompt("Description"),
		EquipmentName: c.prompt("Equipment name (blank to skip)"),
		Priority:      c.prompt("Priority (Low/Medium/High/Critical, blank for Medium)"),
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Logged issue %d [%s/%s]\n", issue.ID, issue.Priority, issue.Status)
}

func (c *cli) updateMaintenanceIssue(ctx context.Context) {
	issueID, err := c.promptID("Issue ID")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	input := orchestrators.UpdateMaintenanceIssueInput{IssueID: issueID}
	if s := c.prompt("New priority (blank to keep)"); s != "" {
		input.Priority = &s
	}
	if s := c.prompt("New status (blank to keep)"); s != "" {
		input.Status = &s
	}
	if s := c.prompt("Assigned repair date (YYYY-MM-DD, blank to keep)"); s != "" {
		d, err := validate.ParseDate(s)
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		input.AssignedRepairDate = &d
	}
	if s := c.prompt("Resolution date (YYYY-MM-DD, blank to keep)"); s != "" {
		d, err := validate.ParseDate(s)
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		input.ResolutionDate = &d
	}
	if s := c.prompt("Resolution notes (blank to keep)"); s != "" {
		input.ResolutionNotes = &s
	}
	issue, err := c.admins.UpdateMaintenanceIssue(ctx, input)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Issue %d now [%s/%s]\n", issue.ID, issue.Priority, issue.Status)
}

func (c *cli) createInvoice(ctx context.Context) {
	payerID, err := c.promptID("Payer member ID")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	input := orchestrators.CreateInvoiceInput{
		Number:  c.prompt("Invoice number"),
		PayerID: payerID,
	}
	if s := c.prompt("Session ID (blank for none)"); s != "" {
		sessionID, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			fmt.Println("Error: invalid number")
			return
		}
		input.SessionID = sessionID
	}
	due, err := validate.ParseDate(c.prompt("Due date (YYYY-MM-DD)"))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	input.DueDate = due
	amount, err := strconv.ParseFloat(c.prompt("Amount"), 64)
	if err != nil {
		fmt.Println("Error: invalid amount")
		return
	}
	input.Amount = amount
	input.ServiceDescription = c.prompt("Service description")

	inv, err := c.admins.CreateInvoice(ctx, input)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Created invoice %s (#%d) for $%.2f, due %s\n",
		inv.Number, inv.ID, inv.Amount, validate.FormatDate(inv.DueDate))
}

func (c *cli) recordPayment(ctx context.Context) {
	invoiceID, err := c.promptID("Invoice ID")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	input := orchestrators.RecordPaymentInput{
		InvoiceID: invoiceID,
		Method:    c.prompt("Payment method"),
	}
	if s := c.prompt("Paid date (YYYY-MM-DD, blank for today)"); s != "" {
		d, err := validate.ParseDate(s)
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		input.PaidDate = d
	}
	inv, err := c.admins.RecordPayment(ctx, input)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Invoice %s paid via %s on %s\n", inv.Number, inv.PaymentMethod, validate.FormatDate(inv.PaidDate))
}

// --- input helpers ---

func (c *cli) prompt(label string) string {
	fmt.Printf("%s: ", label)
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *cli) promptID(label string) (int64, error) {
	id, err := strconv.ParseInt(c.prompt(label), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id")
	}
	return id, nil
}

// promptOptional returns nil when the answer is blank; "-" answers become an
// empty string so callers can clear a stored value.
func (c *cli) promptOptional(label string) *string {
	s := c.prompt(label)
	if s == "" {
		return nil
	}
	if s == "-" {
		s = ""
	}
	return &s
}

func (c *cli) promptFloat(label string) (*float64, error) {
	s := c.prompt(label)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number")
	}
	return &v, nil
}
