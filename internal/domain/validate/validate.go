// Package validate holds the field and range checks shared by every domain
// entity. All failures are InvalidInput errors.
package validate

import (
	"math"
	"strings"
	"time"

	"gymdesk/internal/errs"
)

// Age bounds for people records.
const (
	MinAgeYears = 13
	MaxAgeYears = 120
)

// DateLayout is the calendar-date format used throughout storage and IO.
const DateLayout = "2006-01-02"

// RequiredText trims value and enforces presence and a maximum length.
// POST: Returns the trimmed value, or an InvalidInput error
func RequiredText(field, value string, max int) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", errs.Invalidf("%s is required", field)
	}
	if len(trimmed) > max {
		return "", errs.Invalidf("%s cannot exceed %d characters", field, max)
	}
	return trimmed, nil
}

// OptionalText trims value and enforces a maximum length; empty is allowed.
func OptionalText(field, value string, max int) (string, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) > max {
		return "", errs.Invalidf("%s cannot exceed %d characters", field, max)
	}
	return trimmed, nil
}

// Email checks the minimal shape of an email address (an @ with something
// before it and a dot somewhere after it) and returns it trimmed and
// case-folded. Full RFC validation is deliberately out of scope.
func Email(value string, max int) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", errs.Invalidf("email is required")
	}
	if len(trimmed) > max {
		return "", errs.Invalidf("email cannot exceed %d characters", max)
	}
	at := strings.LastIndex(trimmed, "@")
	if at < 1 || at == len(trimmed)-1 {
		return "", errs.Invalidf("email address is not valid")
	}
	if !strings.Contains(trimmed[at+1:], ".") {
		return "", errs.Invalidf("email address is not valid")
	}
	return strings.ToLower(trimmed), nil
}

// OneOf checks membership in a closed value set.
func OneOf(field, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return errs.Invalidf("%s must be one of: %s", field, strings.Join(allowed, ", "))
}

// PositiveID checks that an entity reference is a positive integer.
func PositiveID(field string, id int64) error {
	if id <= 0 {
		return errs.Invalidf("%s must be a positive integer", field)
	}
	return nil
}

// AgeYears returns whole years between dob and today, counting 365 days per
// year.
func AgeYears(dob, today time.Time) int {
	return DaysBetween(dob, today) / 365
}

// DateOfBirth checks that dob is in the past and yields an age within the
// accepted range.
func DateOfBirth(dob, today time.Time) error {
	if DateAfter(dob, today) {
		return errs.Invalidf("date of birth cannot be in the future")
	}
	age := AgeYears(dob, today)
	if age < MinAgeYears {
		return errs.Invalidf("must be at least %d years old", MinAgeYears)
	}
	if age > MaxAgeYears {
		return errs.Invalidf("age cannot exceed %d years", MaxAgeYears)
	}
	return nil
}

// PositiveMax checks a measurement is positive and at most max.
func PositiveMax(field string, value, max float64) error {
	if value <= 0 {
		return errs.Invalidf("%s must be positive", field)
	}
	if value > max {
		return errs.Invalidf("%s cannot exceed %v", field, max)
	}
	return nil
}

// Percent checks a percentage lies in [0, 100].
func Percent(field string, value float64) error {
	if value < 0 || value > 100 {
		return errs.Invalidf("%s must be between 0 and 100", field)
	}
	return nil
}

// IntRange checks an integer lies in [min, max].
func IntRange(field string, value, min, max int) error {
	if value < min || value > max {
		return errs.Invalidf("%s must be between %d and %d", field, min, max)
	}
	return nil
}

// Round2 rounds a monetary amount to 2 decimal places, half away from zero.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatDate renders a calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errs.Invalidf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

// dateOnly strips the time-of-day and location so comparisons work on whole
// calendar days.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateAfter reports whether a falls on a later calendar day than b.
func DateAfter(a, b time.Time) bool {
	return dateOnly(a).After(dateOnly(b))
}

// DateBefore reports whether a falls on an earlier calendar day than b.
func DateBefore(a, b time.Time) bool {
	return dateOnly(a).Before(dateOnly(b))
}

// DaysBetween returns the number of whole days from a to b. Negative when b
// precedes a.
func DaysBetween(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)).Hours() / 24)
}

// SanitizeSearchTerm strips SQL comment and statement markers from free-text
// search input.
func SanitizeSearchTerm(term string) string {
	term = strings.TrimSpace(term)
	for _, marker := range []string{";", "--", "/*", "*/"} {
		term = strings.ReplaceAll(term, marker, "")
	}
	return term
}

// EscapeLike escapes LIKE wildcards in user input for use with ESCAPE '\'.
func EscapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

// AtLeastOne checks that at least one of a group of optional fields is
// present. fields names the group for the error message.
func AtLeastOne(fields string, present ...bool) error {
	for _, p := range present {
		if p {
			return nil
		}
	}
	return errs.Invalidf("at least one of %s must be provided", fields)
}
