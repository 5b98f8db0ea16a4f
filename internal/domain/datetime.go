package domain

import (
	"fmt"
	"regexp"
	"time"
)

// DateTimeLayout is the input and storage format of task date-times.
// Equivalent to "dd-MM-yyyy ha", e.g. "01-01-2024 6PM".
const DateTimeLayout = "02-01-2006 3PM"

// dateTimePattern is the strict grammar for date-times: dd-mm-yyyy hAM/PM.
var dateTimePattern = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])-(0[1-9]|1[0-2])-([1-9][0-9]{3}) ([1-9]|1[0-2])(AM|PM)$`)

// MatchesDateTime reports whether s matches the date-time grammar.
// It does not check calendar validity.
func MatchesDateTime(s string) bool {
	return dateTimePattern.MatchString(s)
}

// ParseDateTime parses a date-time in DateTimeLayout.
// Grammar mismatches return ErrInvalidDateFormat; grammar-valid strings naming
// an impossible calendar date (e.g. 31-04-2024) return ErrInvalidDate.
// Values are wall-clock times held in UTC so that no zone's daylight-saving
// rules can shift the hour the user typed.
func ParseDateTime(s string) (time.Time, error) {
	if !MatchesDateTime(s) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	t, err := time.ParseInLocation(DateTimeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDateTime formats t in DateTimeLayout.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}
