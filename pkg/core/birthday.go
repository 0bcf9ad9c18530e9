package core

import (
	"fmt"
	"strings"
	"time"
)

// BirthdayLayout is the canonical rendering of a birthday.
const BirthdayLayout = "2006-01-02"

var birthdayLayouts = []string{BirthdayLayout, "02.01.2006"}

// Birthday is a calendar date. Only month and day matter for the yearly
// window, the year may be a placeholder.
type Birthday struct {
	date time.Time
}

// NewBirthday builds a Birthday from a date, dropping the time of day.
func NewBirthday(year int, month time.Month, day int) Birthday {
	return Birthday{date: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseBirthday accepts "2006-01-02" or "02.01.2006" and rejects dates
// after the current wall clock.
func ParseBirthday(raw string) (Birthday, error) {
	return ParseBirthdayAt(raw, time.Now())
}

// ParseBirthdayAt is ParseBirthday with an explicit "now", so dates are
// validated against the same clock that drives birthday windows.
func ParseBirthdayAt(raw string, now time.Time) (Birthday, error) {
	raw = strings.TrimSpace(raw)
	today := truncateDay(now)
	for _, layout := range birthdayLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			if t.After(today) {
				return Birthday{}, fmt.Errorf("%w: %s is in the future", ErrInvalidBirthday, raw)
			}
			return Birthday{date: t}, nil
		}
	}
	return Birthday{}, fmt.Errorf("%w: %q, expected YYYY-MM-DD or DD.MM.YYYY", ErrInvalidBirthday, raw)
}

// Month returns the birthday month.
func (b Birthday) Month() time.Month { return b.date.Month() }

// Day returns the day of the month.
func (b Birthday) Day() int { return b.date.Day() }

// Year returns the stored year.
func (b Birthday) Year() int { return b.date.Year() }

// Time returns the date at midnight UTC.
func (b Birthday) Time() time.Time { return b.date }

// In projects the month/day onto year. February 29 falls on February 28
// in non-leap years.
func (b Birthday) In(year int) time.Time {
	day := b.Day()
	if b.Month() == time.February && day == 29 && !isLeap(year) {
		day = 28
	}
	return time.Date(year, b.Month(), day, 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the number of whole days from today to the next
// occurrence of the birthday, 0 when it is today.
func (b Birthday) DaysUntil(today time.Time) int {
	today = truncateDay(today)
	next := b.In(today.Year())
	if next.Before(today) {
		next = b.In(today.Year() + 1)
	}
	return int(next.Sub(today).Hours() / 24)
}

func (b Birthday) String() string { return b.date.Format(BirthdayLayout) }

// truncateDay drops the time of day and normalizes the location to UTC so
// day arithmetic is not affected by DST.
func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
