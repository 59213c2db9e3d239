package validate

import (
	"testing"
	"time"

	"gymdesk/internal/errs"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestRequiredText tests presence and length enforcement.
func TestRequiredText(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		max     int
		want    string
		wantErr bool
	}{
		{"valid", "Alice", 50, "Alice", false},
		{"trimmed", "  Alice  ", 50, "Alice", false},
		{"empty", "", 50, "", true},
		{"whitespace only", "   ", 50, "", true},
		{"too long", "abcdef", 5, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RequiredText("first name", tt.value, tt.max)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RequiredText(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("RequiredText(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

// TestEmail tests the minimal address shape and case folding.
func TestEmail(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"valid", "a@b.com", "a@b.com", false},
		{"case folded", "Alice@Example.COM", "alice@example.com", false},
		{"no at", "alice.example.com", "", true},
		{"nothing before at", "@example.com", "", true},
		{"no dot after at", "alice@examplecom", "", true},
		{"dot only before at", "a.b@examplecom", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Email(tt.value, 100)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Email(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Email(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

// TestAgeYears tests the 365-day year convention.
func TestAgeYears(t *testing.T) {
	today := date(2026, 9, 1)
	tests := []struct {
		name string
		dob  time.Time
		want int
	}{
		{"exactly 25 years of days", today.AddDate(0, 0, -25*365), 25},
		{"one day short of 13", today.AddDate(0, 0, -(13*365 - 1)), 12},
		{"just turned 13", today.AddDate(0, 0, -13*365), 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AgeYears(tt.dob, today); got != tt.want {
				t.Errorf("AgeYears = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestDateOfBirth tests the age range gates.
func TestDateOfBirth(t *testing.T) {
	today := date(2026, 9, 1)
	if err := DateOfBirth(date(2000, 1, 1), today); err != nil {
		t.Errorf("unexpected error for adult dob: %v", err)
	}
	if err := DateOfBirth(today.AddDate(0, 0, 1), today); err == nil {
		t.Error("expected error for future dob")
	}
	if err := DateOfBirth(date(2020, 1, 1), today); err == nil {
		t.Error("expected error for under-age dob")
	}
	if err := DateOfBirth(date(1880, 1, 1), today); err == nil {
		t.Error("expected error for over-age dob")
	}
	if err := DateOfBirth(date(2020, 1, 1), today); !errs.IsKind(err, errs.KindInvalidInput) {
		t.Errorf("expected InvalidInput kind, got %v", errs.KindOf(err))
	}
}

// TestRound2 tests monetary rounding.
func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{19.999, 20.00},
		{55.556, 55.56},
		{10.004, 10.00},
		{1.0 / 3.0, 0.33},
		{100, 100},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestDaysBetween tests whole-day arithmetic across time-of-day noise.
func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)
	b := time.Date(2026, 3, 2, 0, 1, 0, 0, time.UTC)
	if got := DaysBetween(a, b); got != 1 {
		t.Errorf("DaysBetween = %d, want 1", got)
	}
	if got := DaysBetween(b, a); got != -1 {
		t.Errorf("DaysBetween reversed = %d, want -1", got)
	}
	if got := DaysBetween(a, a); got != 0 {
		t.Errorf("DaysBetween same day = %d, want 0", got)
	}
}

// TestSanitizeSearchTerm tests marker stripping.
func TestSanitizeSearchTerm(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"smith", "smith"},
		{"  smith  ", "smith"},
		{"smith; DROP TABLE member", "smith DROP TABLE member"},
		{"smith--comment", "smithcomment"},
		{"sm/*x*/ith", "smxith"},
	}
	for _, tt := range tests {
		if got := SanitizeSearchTerm(tt.in); got != tt.want {
			t.Errorf("SanitizeSearchTerm(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestEscapeLike tests wildcard escaping.
func TestEscapeLike(t *testing.T) {
	if got := EscapeLike(`50%_off\`); got != `50\%\_off\\` {
		t.Errorf("EscapeLike = %q", got)
	}
}

// TestAtLeastOne tests the optional-field group guard.
func TestAtLeastOne(t *testing.T) {
	if err := AtLeastOne("height, weight", false, true); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := AtLeastOne("height, weight", false, false); err == nil {
		t.Error("expected error when no field present")
	}
}

// TestOneOf tests closed-set membership.
func TestOneOf(t *testing.T) {
	allowed := []string{"Active", "Inactive"}
	if err := OneOf("status", "Active", allowed); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := OneOf("status", "Archived", allowed); err == nil {
		t.Error("expected error for unknown value")
	}
}
