// Package valueobject contains immutable domain value types.
package valueobject

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// ErrInvalidCalendarDate is returned when a stored date cannot be read as a calendar date.
var ErrInvalidCalendarDate = errors.New("invalid calendar date, expected YYYY-MM-DD")

// ErrInvalidClock is returned when a stored time of day cannot be read.
var ErrInvalidClock = errors.New("invalid time of day, expected HH:MM or HH:MM:SS")

// ParseCalendarDate reads a "YYYY-MM-DD" date. A full ISO timestamp is accepted
// and reduced to its date part.
func ParseCalendarDate(value string) (civil.Date, error) {
	value = strings.TrimSpace(value)
	if i := strings.IndexByte(value, 'T'); i >= 0 {
		value = value[:i]
	}
	d, err := civil.ParseDate(value)
	if err != nil || !d.IsValid() {
		return civil.Date{}, fmt.Errorf("%w: %q", ErrInvalidCalendarDate, value)
	}
	return d, nil
}

// ParseClock reads a time of day with or without seconds.
func ParseClock(value string) (civil.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := civil.ParseTime(value); err == nil {
		return t, nil
	}
	t, err := time.Parse("15:04", value)
	if err != nil {
		return civil.Time{}, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}
	return civil.TimeOf(t), nil
}

// ParseDateTime combines a calendar date and an optional clock time into one
// instant without time zone. When the date already carries a time part the
// separate clock value is ignored.
func ParseDateTime(date, clock string) (civil.DateTime, error) {
	date = strings.TrimSpace(date)
	if strings.IndexByte(date, 'T') >= 0 {
		if t, err := time.Parse(time.RFC3339Nano, date); err == nil {
			return civil.DateTimeOf(t), nil
		}
		if dt, err := civil.ParseDateTime(date); err == nil {
			return dt, nil
		}
		if len(date) >= 16 {
			if t, err := time.Parse("2006-01-02T15:04", date[:16]); err == nil {
				return civil.DateTimeOf(t), nil
			}
		}
		return civil.DateTime{}, fmt.Errorf("%w: %q", ErrInvalidCalendarDate, date)
	}

	d, err := ParseCalendarDate(date)
	if err != nil {
		return civil.DateTime{}, err
	}
	if strings.TrimSpace(clock) == "" {
		return civil.DateTime{Date: d}, nil
	}
	t, err := ParseClock(clock)
	if err != nil {
		return civil.DateTime{}, err
	}
	return civil.DateTime{Date: d, Time: t}, nil
}

// MonthInterval is the inclusive range of calendar days of one month.
type MonthInterval struct {
	Start civil.Date
	End   civil.Date
}

// MonthIntervalOf returns the month containing now, read in now's location.
func MonthIntervalOf(now time.Time) MonthInterval {
	today := civil.DateOf(now)
	start := civil.Date{Year: today.Year, Month: today.Month, Day: 1}
	end := civil.DateOf(start.In(time.UTC).AddDate(0, 1, -1))
	return MonthInterval{Start: start, End: end}
}

// Contains reports whether d falls within the interval, both ends included.
func (m MonthInterval) Contains(d civil.Date) bool {
	return !d.Before(m.Start) && !d.After(m.End)
}

// MonthKey identifies a calendar month as "YYYY-MM".
type MonthKey string

// MonthKeyOf returns the month key of a calendar date.
func MonthKeyOf(d civil.Date) MonthKey {
	return MonthKey(fmt.Sprintf("%04d-%02d", d.Year, int(d.Month)))
}

// Label renders the month for charts, e.g. "Jul 2024".
func (k MonthKey) Label() string {
	t, err := time.Parse("2006-01", string(k))
	if err != nil {
		return string(k)
	}
	return t.Format("Jan 2006")
}
